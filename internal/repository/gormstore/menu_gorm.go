package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/maxviazov/menu-catalog-service/internal/mapper"
	"github.com/maxviazov/menu-catalog-service/internal/model"
	"github.com/maxviazov/menu-catalog-service/internal/paging"
	"github.com/maxviazov/menu-catalog-service/internal/repository"
)

type menuRepository struct {
	db     *gorm.DB
	mapper mapper.Mapper
}

func (r *menuRepository) Create(ctx context.Context, m model.Menu) (model.Menu, error) {
	rec, err := mapper.To[menuRecord](r.mapper, m)
	if err != nil {
		return model.Menu{}, err
	}
	rec.MenuCode = 0
	if err := conn(ctx, r.db).Create(&rec).Error; err != nil {
		return model.Menu{}, repository.MapGormError(err)
	}
	return mapper.To[model.Menu](r.mapper, rec)
}

func (r *menuRepository) GetByCode(ctx context.Context, code int64) (model.Menu, error) {
	var rec menuRecord
	if err := conn(ctx, r.db).Where("menu_code = ?", code).Take(&rec).Error; err != nil {
		return model.Menu{}, repository.MapGormError(err)
	}
	return mapper.To[model.Menu](r.mapper, rec)
}

func (r *menuRepository) Update(ctx context.Context, m model.Menu) (model.Menu, error) {
	res := conn(ctx, r.db).Model(&menuRecord{}).
		Where("menu_code = ?", m.MenuCode).
		Updates(map[string]any{
			"menu_name":        m.MenuName,
			"menu_price":       m.MenuPrice,
			"category_code":    m.CategoryCode,
			"orderable_status": m.OrderableStatus,
		})
	if res.Error != nil {
		return model.Menu{}, repository.MapGormError(res.Error)
	}
	if res.RowsAffected == 0 {
		return model.Menu{}, repository.ErrNotFound
	}
	return r.GetByCode(ctx, m.MenuCode)
}

func (r *menuRepository) Delete(ctx context.Context, code int64) error {
	res := conn(ctx, r.db).Where("menu_code = ?", code).Delete(&menuRecord{})
	if res.Error != nil {
		return repository.MapGormError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *menuRepository) List(ctx context.Context, q paging.QueryDescriptor) (repository.PageResult[model.Menu], error) {
	orderBy, err := repository.MenuOrderBy(q.Sort)
	if err != nil {
		return repository.PageResult[model.Menu]{}, err
	}
	db := conn(ctx, r.db)

	var total int64
	if err := db.Model(&menuRecord{}).Count(&total).Error; err != nil {
		return repository.PageResult[model.Menu]{}, repository.MapGormError(err)
	}
	if q.PageSize <= 0 || total == 0 {
		return repository.NewPageResult[model.Menu](nil, total, q), nil
	}

	var recs []menuRecord
	if err := db.Order(orderBy).Limit(q.PageSize).Offset(q.Skip()).Find(&recs).Error; err != nil {
		return repository.PageResult[model.Menu]{}, repository.MapGormError(err)
	}
	items, err := mapper.Slice[model.Menu](r.mapper, recs)
	if err != nil {
		return repository.PageResult[model.Menu]{}, err
	}
	return repository.NewPageResult(items, total, q), nil
}

// Find matches names with sqlite's LIKE, which ignores ASCII case.
func (r *menuRepository) Find(ctx context.Context, f repository.MenuFilter, sort paging.Sort) ([]model.Menu, error) {
	orderBy, err := repository.MenuOrderBy(sort)
	if err != nil {
		return nil, err
	}
	db := conn(ctx, r.db).Model(&menuRecord{})
	if f.PriceAbove != nil {
		db = db.Where("menu_price > ?", *f.PriceAbove)
	}
	if f.PriceBelow != nil {
		db = db.Where("menu_price < ?", *f.PriceBelow)
	}
	if f.PriceFrom != nil {
		db = db.Where("menu_price >= ?", *f.PriceFrom)
	}
	if f.PriceTo != nil {
		db = db.Where("menu_price <= ?", *f.PriceTo)
	}
	if f.NameContains != "" {
		db = db.Where(`menu_name LIKE ? ESCAPE '\'`, "%"+repository.EscapeLike(f.NameContains)+"%")
	}

	var recs []menuRecord
	if err := db.Order(orderBy).Find(&recs).Error; err != nil {
		return nil, repository.MapGormError(err)
	}
	return mapper.Slice[model.Menu](r.mapper, recs)
}

var _ repository.MenuRepository = (*menuRepository)(nil)
