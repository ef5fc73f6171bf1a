package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/maxviazov/menu-catalog-service/internal/mapper"
	"github.com/maxviazov/menu-catalog-service/internal/model"
	"github.com/maxviazov/menu-catalog-service/internal/repository"
)

type categoryRepository struct {
	db     *gorm.DB
	mapper mapper.Mapper
}

func (r *categoryRepository) Create(ctx context.Context, c model.Category) (model.Category, error) {
	rec, err := mapper.To[categoryRecord](r.mapper, c)
	if err != nil {
		return model.Category{}, err
	}
	rec.CategoryCode = 0
	if err := conn(ctx, r.db).Create(&rec).Error; err != nil {
		return model.Category{}, repository.MapGormError(err)
	}
	return mapper.To[model.Category](r.mapper, rec)
}

func (r *categoryRepository) GetByCode(ctx context.Context, code int64) (model.Category, error) {
	var rec categoryRecord
	if err := conn(ctx, r.db).Where("category_code = ?", code).Take(&rec).Error; err != nil {
		return model.Category{}, repository.MapGormError(err)
	}
	return mapper.To[model.Category](r.mapper, rec)
}

func (r *categoryRepository) ListAll(ctx context.Context) ([]model.Category, error) {
	var recs []categoryRecord
	if err := conn(ctx, r.db).Order("category_code ASC").Find(&recs).Error; err != nil {
		return nil, repository.MapGormError(err)
	}
	return mapper.Slice[model.Category](r.mapper, recs)
}

var _ repository.CategoryRepository = (*categoryRepository)(nil)
