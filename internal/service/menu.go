package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/menu-catalog-service/internal/mapper"
	"github.com/maxviazov/menu-catalog-service/internal/model"
	"github.com/maxviazov/menu-catalog-service/internal/paging"
	"github.com/maxviazov/menu-catalog-service/internal/repository"
)

type menuService struct {
	menus  repository.MenuRepository
	tx     repository.TxManager
	mapper mapper.Mapper
	paging PagingSettings
	log    zerolog.Logger
}

func NewMenuService(menus repository.MenuRepository, tx repository.TxManager, m mapper.Mapper, settings PagingSettings, logger zerolog.Logger) MenuService {
	if settings.GroupSize < 1 {
		settings.GroupSize = paging.DefaultGroupSize
	}
	if settings.MenuSort.Key == "" {
		settings.MenuSort = paging.By(repository.SortMenuCode).Descending()
	}
	l := logger.With().Str("module", "service").Str("component", "menu").Logger()
	return &menuService{menus: menus, tx: tx, mapper: m, paging: settings, log: l}
}

func (s *menuService) FindMenuByCode(ctx context.Context, code int64) (model.MenuDTO, error) {
	if err := newInvalidInput(validateCode("menu_code", code)); err != nil {
		return model.MenuDTO{}, err
	}
	m, err := s.menus.GetByCode(ctx, code)
	if err != nil {
		return model.MenuDTO{}, err
	}
	return mapper.To[model.MenuDTO](s.mapper, m)
}

func (s *menuService) ListMenus(ctx context.Context) ([]model.MenuDTO, error) {
	return s.find(ctx, "list menus", repository.MenuFilter{}, s.paging.MenuSort)
}

// ListMenuPage fetches one page in the configured order and attaches the
// button window for the page that was actually returned.
func (s *menuService) ListMenuPage(ctx context.Context, page, size int) (model.MenuPage, error) {
	if size < 1 {
		return model.MenuPage{}, newInvalidInput([]FieldError{{Field: "size", Message: "must be >= 1"}})
	}
	q := paging.Normalize(page, size, s.paging.MenuSort)

	res, err := s.menus.List(ctx, q)
	if err != nil {
		s.log.Error().Err(err).Int("offset", q.Offset).Int("size", q.PageSize).Msg("list menu page failed")
		return model.MenuPage{}, err
	}
	items, err := mapper.Slice[model.MenuDTO](s.mapper, res.Items)
	if err != nil {
		return model.MenuPage{}, err
	}

	buttons := paging.ComputeWindow(res.Number+1, res.TotalPages, s.paging.GroupSize)
	s.log.Debug().
		Int("page", buttons.CurrentPage).
		Int("start_page", buttons.StartPage).
		Int("end_page", buttons.EndPage).
		Int("total_pages", res.TotalPages).
		Msg("menu page window")

	return model.MenuPage{
		Items:            items,
		Number:           res.Number,
		PageSize:         res.PageSize,
		NumberOfElements: res.NumberOfElements,
		TotalElements:    res.TotalElements,
		TotalPages:       res.TotalPages,
		First:            res.IsFirst,
		Last:             res.IsLast,
		Sort:             res.Sort.String(),
		Paging:           buttons,
	}, nil
}

func (s *menuService) FindByPriceGreaterThan(ctx context.Context, price int) ([]model.MenuDTO, error) {
	return s.find(ctx, "find by price greater than",
		repository.MenuFilter{PriceAbove: &price},
		paging.By(repository.SortMenuPrice).Descending())
}

func (s *menuService) FindByPriceLessThan(ctx context.Context, price int) ([]model.MenuDTO, error) {
	return s.find(ctx, "find by price less than",
		repository.MenuFilter{PriceBelow: &price},
		paging.By(repository.SortMenuPrice))
}

func (s *menuService) FindByNameContaining(ctx context.Context, name string) ([]model.MenuDTO, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, newInvalidInput([]FieldError{{Field: "name", Message: "must not be empty"}})
	}
	return s.find(ctx, "find by name",
		repository.MenuFilter{NameContains: name},
		paging.By(repository.SortMenuCode).Descending())
}

// FindByPriceBetween is inclusive on both ends. An inverted range matches nothing.
func (s *menuService) FindByPriceBetween(ctx context.Context, minPrice, maxPrice int) ([]model.MenuDTO, error) {
	return s.find(ctx, "find by price between",
		repository.MenuFilter{PriceFrom: &minPrice, PriceTo: &maxPrice},
		paging.By(repository.SortMenuPrice).Descending())
}

func (s *menuService) find(ctx context.Context, op string, f repository.MenuFilter, sort paging.Sort) ([]model.MenuDTO, error) {
	menus, err := s.menus.Find(ctx, f, sort)
	if err != nil {
		s.log.Error().Err(err).Str("op", op).Msg("menu query failed")
		return nil, err
	}
	return mapper.Slice[model.MenuDTO](s.mapper, menus)
}

func (s *menuService) RegisterMenu(ctx context.Context, in model.MenuDTO) (model.MenuDTO, error) {
	start := time.Now()
	in.MenuName = strings.TrimSpace(in.MenuName)
	in.OrderableStatus = normalizeOrderable(in.OrderableStatus)
	if err := newInvalidInput(validateNewMenu(in)); err != nil {
		s.log.Debug().Interface("menu", in).Msg("menu validation failed")
		return model.MenuDTO{}, err
	}

	entity, err := mapper.To[model.Menu](s.mapper, in)
	if err != nil {
		return model.MenuDTO{}, err
	}
	entity.MenuCode = 0

	var created model.Menu
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.menus.Create(ctx, entity)
		return err
	})
	if err != nil {
		// Repository surfaces domain-level errors already, do not wrap.
		s.log.Error().Err(err).Str("menu_name", in.MenuName).Int64("category_code", in.CategoryCode).Msg("register menu failed")
		return model.MenuDTO{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("menu_code", created.MenuCode).Msg("menu registered")
	return mapper.To[model.MenuDTO](s.mapper, created)
}

// ModifyMenu renames an existing menu. Other fields of in are ignored.
func (s *menuService) ModifyMenu(ctx context.Context, in model.MenuDTO) (model.MenuDTO, error) {
	in.MenuName = strings.TrimSpace(in.MenuName)
	ferrs := validateCode("menu_code", in.MenuCode)
	ferrs = append(ferrs, validateMenuName(in.MenuName)...)
	if err := newInvalidInput(ferrs); err != nil {
		return model.MenuDTO{}, err
	}

	var updated model.Menu
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.menus.GetByCode(ctx, in.MenuCode)
		if err != nil {
			return err
		}
		current.MenuName = in.MenuName
		updated, err = s.menus.Update(ctx, current)
		return err
	})
	if err != nil {
		s.log.Error().Err(err).Int64("menu_code", in.MenuCode).Msg("modify menu failed")
		return model.MenuDTO{}, err
	}
	s.log.Info().Int64("menu_code", updated.MenuCode).Msg("menu modified")
	return mapper.To[model.MenuDTO](s.mapper, updated)
}

func (s *menuService) DeleteMenu(ctx context.Context, code int64) error {
	if err := newInvalidInput(validateCode("menu_code", code)); err != nil {
		return err
	}
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.menus.Delete(ctx, code)
	})
	if err != nil {
		s.log.Error().Err(err).Int64("menu_code", code).Msg("delete menu failed")
		return err
	}
	s.log.Info().Int64("menu_code", code).Msg("menu deleted")
	return nil
}
