package service_test

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/maxviazov/menu-catalog-service/internal/model"
	"github.com/maxviazov/menu-catalog-service/internal/paging"
	"github.com/maxviazov/menu-catalog-service/internal/repository"
)

// fakeMenuRepo keeps menus in memory and records the last query it saw.
type fakeMenuRepo struct {
	nextCode int64
	menus    map[int64]model.Menu

	lastQuery  paging.QueryDescriptor
	lastFilter repository.MenuFilter
	lastSort   paging.Sort
	updates    []model.Menu
	failWith   error
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{nextCode: 1, menus: map[int64]model.Menu{}}
}

func (f *fakeMenuRepo) seed(n int) {
	for i := 0; i < n; i++ {
		_, _ = f.Create(context.Background(), model.Menu{
			MenuName:        "Menu",
			MenuPrice:       1000 * (i + 1),
			CategoryCode:    1,
			OrderableStatus: model.Orderable,
		})
	}
}

func (f *fakeMenuRepo) Create(_ context.Context, m model.Menu) (model.Menu, error) {
	if f.failWith != nil {
		return model.Menu{}, f.failWith
	}
	m.MenuCode = f.nextCode
	f.nextCode++
	f.menus[m.MenuCode] = m
	return m, nil
}

func (f *fakeMenuRepo) GetByCode(_ context.Context, code int64) (model.Menu, error) {
	m, ok := f.menus[code]
	if !ok {
		return model.Menu{}, repository.ErrNotFound
	}
	return m, nil
}

func (f *fakeMenuRepo) Update(_ context.Context, m model.Menu) (model.Menu, error) {
	if _, ok := f.menus[m.MenuCode]; !ok {
		return model.Menu{}, repository.ErrNotFound
	}
	f.updates = append(f.updates, m)
	f.menus[m.MenuCode] = m
	return m, nil
}

func (f *fakeMenuRepo) Delete(_ context.Context, code int64) error {
	if _, ok := f.menus[code]; !ok {
		return repository.ErrNotFound
	}
	delete(f.menus, code)
	return nil
}

// sorted returns every menu ordered by code, descending when desc is set.
func (f *fakeMenuRepo) sorted(desc bool) []model.Menu {
	out := make([]model.Menu, 0, len(f.menus))
	for _, m := range f.menus {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if desc {
			return out[i].MenuCode > out[j].MenuCode
		}
		return out[i].MenuCode < out[j].MenuCode
	})
	return out
}

func (f *fakeMenuRepo) List(_ context.Context, q paging.QueryDescriptor) (repository.PageResult[model.Menu], error) {
	f.lastQuery = q
	if f.failWith != nil {
		return repository.PageResult[model.Menu]{}, f.failWith
	}
	all := f.sorted(q.Sort.Direction == paging.Desc)
	from := q.Skip()
	if from > len(all) {
		from = len(all)
	}
	to := from + q.PageSize
	if to > len(all) {
		to = len(all)
	}
	return repository.NewPageResult(all[from:to], int64(len(all)), q), nil
}

func (f *fakeMenuRepo) Find(_ context.Context, flt repository.MenuFilter, s paging.Sort) ([]model.Menu, error) {
	f.lastFilter = flt
	f.lastSort = s
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []model.Menu
	for _, m := range f.sorted(false) {
		switch {
		case flt.PriceAbove != nil && m.MenuPrice <= *flt.PriceAbove:
		case flt.PriceBelow != nil && m.MenuPrice >= *flt.PriceBelow:
		case flt.PriceFrom != nil && m.MenuPrice < *flt.PriceFrom:
		case flt.PriceTo != nil && m.MenuPrice > *flt.PriceTo:
		case flt.NameContains != "" && !strings.Contains(m.MenuName, flt.NameContains):
		default:
			out = append(out, m)
		}
	}
	return out, nil
}

var _ repository.MenuRepository = (*fakeMenuRepo)(nil)

type fakeCategoryRepo struct {
	categories []model.Category
}

func (f *fakeCategoryRepo) Create(_ context.Context, c model.Category) (model.Category, error) {
	c.CategoryCode = int64(len(f.categories) + 1)
	f.categories = append(f.categories, c)
	return c, nil
}

func (f *fakeCategoryRepo) GetByCode(_ context.Context, code int64) (model.Category, error) {
	for _, c := range f.categories {
		if c.CategoryCode == code {
			return c, nil
		}
	}
	return model.Category{}, repository.ErrNotFound
}

func (f *fakeCategoryRepo) ListAll(context.Context) ([]model.Category, error) {
	return f.categories, nil
}

var _ repository.CategoryRepository = (*fakeCategoryRepo)(nil)

// fakeTx counts units of work and runs them inline.
type fakeTx struct{ calls int }

func (f *fakeTx) WithinTx(ctx context.Context, fn repository.TxFunc) error {
	f.calls++
	return fn(ctx)
}

var _ repository.TxManager = (*fakeTx)(nil)

var errBoom = errors.New("boom")
