// Package contract holds behaviour suites every store implementation must pass.
package contract

import (
	"context"
	"errors"
	"testing"

	"github.com/maxviazov/menu-catalog-service/internal/model"
	"github.com/maxviazov/menu-catalog-service/internal/paging"
	"github.com/maxviazov/menu-catalog-service/internal/repository"
)

// CategorySeeder creates a category and returns its code.
type CategorySeeder func(ctx context.Context, name string) (int64, error)

type MenuFactory func(t *testing.T) (repo repository.MenuRepository, mkCategory CategorySeeder, cleanup func())

type CategoryFactory func(t *testing.T) (repository.CategoryRepository, func())

type TxFactory func(t *testing.T) (tx repository.TxManager, menus repository.MenuRepository, mkCategory CategorySeeder, cleanup func())

type PingerFactory func(t *testing.T) (repository.Pinger, func())

var byCodeDesc = paging.By(repository.SortMenuCode).Descending()

func RunMenuRepositoryContract(t *testing.T, makeRepo MenuFactory) {
	t.Helper()

	t.Run("create_and_get", func(t *testing.T) {
		repo, mkCategory, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		cat := mustCategory(t, mkCategory, "Food")
		created, err := repo.Create(ctx, model.Menu{MenuName: "Bibimbap", MenuPrice: 9000, CategoryCode: cat, OrderableStatus: model.Orderable})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if created.MenuCode == 0 {
			t.Fatalf("expected generated code, got %+v", created)
		}
		got, err := repo.GetByCode(ctx, created.MenuCode)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got != created {
			t.Fatalf("mismatch: got %+v want %+v", got, created)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByCode(context.Background(), 999999)
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("create_unknown_category_conflict", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.Create(context.Background(), model.Menu{MenuName: "Orphan", MenuPrice: 1, CategoryCode: 424242, OrderableStatus: model.Orderable})
		if !errors.Is(err, repository.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})

	t.Run("list_pagination_totals", func(t *testing.T) {
		repo, mkCategory, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		codes := seedMenus(t, repo, mustCategory(t, mkCategory, "Food"), 7)

		first, err := repo.List(ctx, paging.Normalize(1, 3, byCodeDesc))
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(first.Items) != 3 || first.TotalElements != 7 || first.TotalPages != 3 {
			t.Fatalf("unexpected page: len=%d total=%d pages=%d", len(first.Items), first.TotalElements, first.TotalPages)
		}
		if first.Items[0].MenuCode != codes[len(codes)-1] || !first.IsFirst || first.IsLast {
			t.Fatalf("expected newest menu first on the first page, got %+v", first)
		}

		last, err := repo.List(ctx, paging.Normalize(3, 3, byCodeDesc))
		if err != nil {
			t.Fatalf("list last: %v", err)
		}
		if len(last.Items) != 1 || last.NumberOfElements != 1 || !last.IsLast || last.Number != 2 {
			t.Fatalf("unexpected last page: %+v", last)
		}
		if last.Items[0].MenuCode != codes[0] {
			t.Fatalf("expected oldest menu on last page, got %d", last.Items[0].MenuCode)
		}
	})

	t.Run("list_past_end_keeps_totals", func(t *testing.T) {
		repo, mkCategory, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		seedMenus(t, repo, mustCategory(t, mkCategory, "Food"), 4)

		res, err := repo.List(context.Background(), paging.Normalize(10, 3, byCodeDesc))
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(res.Items) != 0 || res.TotalElements != 4 || res.TotalPages != 2 {
			t.Fatalf("unexpected page past end: %+v", res)
		}
	})

	t.Run("list_empty", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		res, err := repo.List(context.Background(), paging.Normalize(1, 10, byCodeDesc))
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if res.Items == nil || len(res.Items) != 0 || res.TotalPages != 0 {
			t.Fatalf("unexpected empty page: %+v", res)
		}
	})

	t.Run("list_rejects_unknown_sort", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.List(context.Background(), paging.Normalize(1, 10, paging.By("menu_code; DROP TABLE tbl_menu")))
		if !errors.Is(err, repository.ErrInvalidSort) {
			t.Fatalf("expected ErrInvalidSort, got %v", err)
		}
	})

	t.Run("find_filters_and_order", func(t *testing.T) {
		repo, mkCategory, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		cat := mustCategory(t, mkCategory, "Food")
		for _, m := range []model.Menu{
			{MenuName: "Kimchi Stew", MenuPrice: 1000},
			{MenuName: "Bulgogi", MenuPrice: 2000},
			{MenuName: "Soybean Stew", MenuPrice: 3000},
			{MenuName: "100% Juice", MenuPrice: 4000},
		} {
			m.CategoryCode = cat
			m.OrderableStatus = model.Orderable
			if _, err := repo.Create(ctx, m); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		byPriceAsc := paging.By(repository.SortMenuPrice)
		byPriceDesc := byPriceAsc.Descending()

		cases := []struct {
			name   string
			filter repository.MenuFilter
			sort   paging.Sort
			want   []int
		}{
			{"above", repository.MenuFilter{PriceAbove: intPtr(2000)}, byPriceDesc, []int{4000, 3000}},
			{"below", repository.MenuFilter{PriceBelow: intPtr(3000)}, byPriceAsc, []int{1000, 2000}},
			{"between_inclusive", repository.MenuFilter{PriceFrom: intPtr(2000), PriceTo: intPtr(3000)}, byPriceDesc, []int{3000, 2000}},
			{"between_inverted", repository.MenuFilter{PriceFrom: intPtr(3000), PriceTo: intPtr(2000)}, byPriceDesc, []int{}},
			{"name_contains", repository.MenuFilter{NameContains: "Stew"}, byPriceAsc, []int{1000, 3000}},
			{"name_wildcard_literal", repository.MenuFilter{NameContains: "%"}, byPriceAsc, []int{4000}},
			{"no_filter", repository.MenuFilter{}, byPriceAsc, []int{1000, 2000, 3000, 4000}},
		}
		for _, tc := range cases {
			got, err := repo.Find(ctx, tc.filter, tc.sort)
			if err != nil {
				t.Fatalf("%s: find: %v", tc.name, err)
			}
			prices := make([]int, 0, len(got))
			for _, m := range got {
				prices = append(prices, m.MenuPrice)
			}
			if !equalInts(prices, tc.want) {
				t.Fatalf("%s: got prices %v want %v", tc.name, prices, tc.want)
			}
		}
	})

	t.Run("update", func(t *testing.T) {
		repo, mkCategory, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		cat := mustCategory(t, mkCategory, "Food")
		created, err := repo.Create(ctx, model.Menu{MenuName: "Old", MenuPrice: 500, CategoryCode: cat, OrderableStatus: model.Orderable})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		created.MenuName = "New"
		if _, err := repo.Update(ctx, created); err != nil {
			t.Fatalf("update: %v", err)
		}
		got, err := repo.GetByCode(ctx, created.MenuCode)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.MenuName != "New" || got.MenuPrice != 500 {
			t.Fatalf("unexpected row after update: %+v", got)
		}

		_, err = repo.Update(ctx, model.Menu{MenuCode: 999999, MenuName: "x", CategoryCode: cat, OrderableStatus: model.Orderable})
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound for missing menu, got %v", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		repo, mkCategory, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		codes := seedMenus(t, repo, mustCategory(t, mkCategory, "Food"), 1)
		if err := repo.Delete(ctx, codes[0]); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, err := repo.GetByCode(ctx, codes[0]); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound after delete, got %v", err)
		}
		if err := repo.Delete(ctx, codes[0]); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound on second delete, got %v", err)
		}
	})
}

func RunCategoryRepositoryContract(t *testing.T, makeRepo CategoryFactory) {
	t.Helper()

	t.Run("create_and_get_with_parent", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		parent, err := repo.Create(ctx, model.Category{CategoryName: "Beverage"})
		if err != nil {
			t.Fatalf("create parent: %v", err)
		}
		child, err := repo.Create(ctx, model.Category{CategoryName: "Coffee", RefCategoryCode: &parent.CategoryCode})
		if err != nil {
			t.Fatalf("create child: %v", err)
		}
		got, err := repo.GetByCode(ctx, child.CategoryCode)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.CategoryName != "Coffee" || got.RefCategoryCode == nil || *got.RefCategoryCode != parent.CategoryCode {
			t.Fatalf("mismatch: %+v", got)
		}
		top, err := repo.GetByCode(ctx, parent.CategoryCode)
		if err != nil {
			t.Fatalf("get parent: %v", err)
		}
		if top.RefCategoryCode != nil {
			t.Fatalf("expected no parent, got %d", *top.RefCategoryCode)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByCode(context.Background(), 999999)
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("list_all_by_code", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		for _, name := range []string{"Food", "Beverage", "Dessert"} {
			if _, err := repo.Create(ctx, model.Category{CategoryName: name}); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		all, err := repo.ListAll(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(all) != 3 {
			t.Fatalf("expected 3 categories, got %d", len(all))
		}
		for i := 1; i < len(all); i++ {
			if all[i-1].CategoryCode >= all[i].CategoryCode {
				t.Fatalf("categories not ordered by code: %+v", all)
			}
		}
	})
}

func RunTxManagerContract(t *testing.T, makeTx TxFactory) {
	t.Helper()

	t.Run("commit_on_nil_error", func(t *testing.T) {
		tx, menus, mkCategory, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		cat := mustCategory(t, mkCategory, "Food")
		var createdCode int64
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			out, err := menus.Create(ctx, model.Menu{MenuName: "TxCommit", MenuPrice: 1, CategoryCode: cat, OrderableStatus: model.Orderable})
			if err != nil {
				return err
			}
			createdCode = out.MenuCode
			return nil
		})
		if err != nil {
			t.Fatalf("WithinTx: %v", err)
		}
		if _, err := menus.GetByCode(ctx, createdCode); err != nil {
			t.Fatalf("expected committed row visible, got err=%v", err)
		}
	})

	t.Run("rollback_on_error", func(t *testing.T) {
		tx, menus, mkCategory, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		cat := mustCategory(t, mkCategory, "Food")
		var createdCode int64
		errMarker := errors.New("boom")
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			out, err := menus.Create(ctx, model.Menu{MenuName: "TxRollback", MenuPrice: 1, CategoryCode: cat, OrderableStatus: model.Orderable})
			if err != nil {
				return err
			}
			createdCode = out.MenuCode
			return errMarker
		})
		if !errors.Is(err, errMarker) {
			t.Fatalf("expected marker error, got %v", err)
		}
		if _, err := menus.GetByCode(ctx, createdCode); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound after rollback, got %v", err)
		}
	})
}

func RunPingerContract(t *testing.T, makePinger PingerFactory) {
	t.Helper()
	t.Run("ping_ok", func(t *testing.T) {
		p, cleanup := makePinger(t)
		t.Cleanup(cleanup)
		if err := p.Ping(context.Background()); err != nil {
			t.Fatalf("expected ping ok, got %v", err)
		}
	})
}

func mustCategory(t *testing.T, mk CategorySeeder, name string) int64 {
	t.Helper()
	code, err := mk(context.Background(), name)
	if err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return code
}

// seedMenus creates n menus and returns their codes in creation order.
func seedMenus(t *testing.T, repo repository.MenuRepository, category int64, n int) []int64 {
	t.Helper()
	codes := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		m, err := repo.Create(context.Background(), model.Menu{
			MenuName:        "Menu-" + string(rune('A'+i)),
			MenuPrice:       1000 * (i + 1),
			CategoryCode:    category,
			OrderableStatus: model.Orderable,
		})
		if err != nil {
			t.Fatalf("seed menu %d: %v", i, err)
		}
		codes = append(codes, m.MenuCode)
	}
	return codes
}

func intPtr(v int) *int { return &v }

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
