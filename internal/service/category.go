package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/maxviazov/menu-catalog-service/internal/mapper"
	"github.com/maxviazov/menu-catalog-service/internal/model"
	"github.com/maxviazov/menu-catalog-service/internal/repository"
)

type categoryService struct {
	repo   repository.CategoryRepository
	mapper mapper.Mapper
	log    zerolog.Logger
}

func NewCategoryService(repo repository.CategoryRepository, m mapper.Mapper, logger zerolog.Logger) CategoryService {
	l := logger.With().Str("module", "service").Str("component", "category").Logger()
	return &categoryService{repo: repo, mapper: m, log: l}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]model.CategoryDTO, error) {
	categories, err := s.repo.ListAll(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list categories failed")
		return nil, err
	}
	return mapper.Slice[model.CategoryDTO](s.mapper, categories)
}

func (s *categoryService) FindCategoryByCode(ctx context.Context, code int64) (model.CategoryDTO, error) {
	if err := newInvalidInput(validateCode("category_code", code)); err != nil {
		return model.CategoryDTO{}, err
	}
	c, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		return model.CategoryDTO{}, err
	}
	return mapper.To[model.CategoryDTO](s.mapper, c)
}
