// Package service holds the catalog use cases: input validation, transaction
// boundaries and the entity to DTO mapping. Transport and SQL stay out of it.
package service

import (
	"context"
	"errors"

	"github.com/maxviazov/menu-catalog-service/internal/model"
	"github.com/maxviazov/menu-catalog-service/internal/paging"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// newInvalidInput returns nil when fe is empty.
func newInvalidInput(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// NewInvalidInputError lets the transport layer report its own parse failures
// the same way the services report validation failures.
func NewInvalidInputError(fe ...FieldError) error {
	return newInvalidInput(fe)
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	var v interface{ Fields() []FieldError }
	if errors.As(err, &v) && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// PagingSettings configures the paged menu listing.
type PagingSettings struct {
	// GroupSize is the number of page buttons shown at once.
	GroupSize int
	// MenuSort is applied to every menu page regardless of the request.
	MenuSort paging.Sort
}

// MenuService defines menu use cases.
type MenuService interface {
	FindMenuByCode(ctx context.Context, code int64) (model.MenuDTO, error)
	ListMenus(ctx context.Context) ([]model.MenuDTO, error)
	// ListMenuPage takes a 1-based page number; values below 1 mean the first page.
	ListMenuPage(ctx context.Context, page, size int) (model.MenuPage, error)
	FindByPriceGreaterThan(ctx context.Context, price int) ([]model.MenuDTO, error)
	FindByPriceLessThan(ctx context.Context, price int) ([]model.MenuDTO, error)
	FindByNameContaining(ctx context.Context, name string) ([]model.MenuDTO, error)
	FindByPriceBetween(ctx context.Context, minPrice, maxPrice int) ([]model.MenuDTO, error)
	RegisterMenu(ctx context.Context, menu model.MenuDTO) (model.MenuDTO, error)
	ModifyMenu(ctx context.Context, menu model.MenuDTO) (model.MenuDTO, error)
	DeleteMenu(ctx context.Context, code int64) error
}

// CategoryService defines category use cases.
type CategoryService interface {
	ListCategories(ctx context.Context) ([]model.CategoryDTO, error)
	FindCategoryByCode(ctx context.Context, code int64) (model.CategoryDTO, error)
}
