package repository

import (
	"context"

	"github.com/maxviazov/menu-catalog-service/internal/model"
	"github.com/maxviazov/menu-catalog-service/internal/paging"
)

// Pinger represents a minimal readiness probe capability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TxFunc is the unit of work executed within a transaction boundary.
type TxFunc func(ctx context.Context) error

// TxManager runs fn in a transaction; repositories called with the ctx handed to fn join it.
// I prefer a single entry point so transaction boundaries stay explicit in the services.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// Sort keys accepted by MenuRepository. Anything else is rejected with ErrInvalidSort.
const (
	SortMenuCode     = "menu_code"
	SortMenuName     = "menu_name"
	SortMenuPrice    = "menu_price"
	SortCategoryCode = "category_code"
)

// MenuFilter narrows a menu query. Zero-valued fields do not filter.
// Bounds are pointers so a price of 0 is still a usable bound.
type MenuFilter struct {
	PriceAbove   *int   // menu_price > x
	PriceBelow   *int   // menu_price < x
	PriceFrom    *int   // menu_price >= x
	PriceTo      *int   // menu_price <= x
	NameContains string // substring match, wildcards in the input are literal
}

// MenuRepository declares persistence operations for menus.
// Implementations return the sentinels from errors.go rather than driver errors.
type MenuRepository interface {
	Create(ctx context.Context, m model.Menu) (model.Menu, error)
	GetByCode(ctx context.Context, code int64) (model.Menu, error)
	// Update overwrites every column of the menu identified by m.MenuCode.
	Update(ctx context.Context, m model.Menu) (model.Menu, error)
	Delete(ctx context.Context, code int64) error
	List(ctx context.Context, q paging.QueryDescriptor) (PageResult[model.Menu], error)
	// Find returns every menu matching f in the given order.
	Find(ctx context.Context, f MenuFilter, sort paging.Sort) ([]model.Menu, error)
}

// CategoryRepository declares read operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, c model.Category) (model.Category, error)
	GetByCode(ctx context.Context, code int64) (model.Category, error)
	ListAll(ctx context.Context) ([]model.Category, error)
}
