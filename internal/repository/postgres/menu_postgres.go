package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxviazov/menu-catalog-service/internal/model"
	"github.com/maxviazov/menu-catalog-service/internal/paging"
	"github.com/maxviazov/menu-catalog-service/internal/repository"
)

const menuColumns = `menu_code, menu_name, menu_price, category_code, orderable_status`

type menuRepository struct{ pool *pgxpool.Pool }

func NewMenuRepository(pool *pgxpool.Pool) repository.MenuRepository {
	return &menuRepository{pool: pool}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMenu(row scanner) (model.Menu, error) {
	var m model.Menu
	err := row.Scan(&m.MenuCode, &m.MenuName, &m.MenuPrice, &m.CategoryCode, &m.OrderableStatus)
	return m, err
}

func (r *menuRepository) Create(ctx context.Context, m model.Menu) (model.Menu, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Menu{}, err
	}
	row := getQ(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO tbl_menu (menu_name, menu_price, category_code, orderable_status)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+menuColumns,
		m.MenuName, m.MenuPrice, m.CategoryCode, m.OrderableStatus,
	)
	out, err := scanMenu(row)
	if err != nil {
		return model.Menu{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *menuRepository) GetByCode(ctx context.Context, code int64) (model.Menu, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Menu{}, err
	}
	row := getQ(ctx, r.pool).QueryRow(ctx,
		`SELECT `+menuColumns+` FROM tbl_menu WHERE menu_code = $1`, code,
	)
	out, err := scanMenu(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Menu{}, repository.ErrNotFound
		}
		return model.Menu{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *menuRepository) Update(ctx context.Context, m model.Menu) (model.Menu, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Menu{}, err
	}
	row := getQ(ctx, r.pool).QueryRow(ctx,
		`UPDATE tbl_menu
		 SET menu_name = $2, menu_price = $3, category_code = $4, orderable_status = $5
		 WHERE menu_code = $1
		 RETURNING `+menuColumns,
		m.MenuCode, m.MenuName, m.MenuPrice, m.CategoryCode, m.OrderableStatus,
	)
	out, err := scanMenu(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Menu{}, repository.ErrNotFound
		}
		return model.Menu{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *menuRepository) Delete(ctx context.Context, code int64) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	tag, err := getQ(ctx, r.pool).Exec(ctx, `DELETE FROM tbl_menu WHERE menu_code = $1`, code)
	if err != nil {
		return repository.MapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// List counts separately from the page query so pages past the end still
// report the real total.
func (r *menuRepository) List(ctx context.Context, q paging.QueryDescriptor) (repository.PageResult[model.Menu], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.Menu]{}, err
	}
	orderBy, err := repository.MenuOrderBy(q.Sort)
	if err != nil {
		return repository.PageResult[model.Menu]{}, err
	}
	exec := getQ(ctx, r.pool)

	var total int64
	if err := exec.QueryRow(ctx, `SELECT COUNT(*) FROM tbl_menu`).Scan(&total); err != nil {
		return repository.PageResult[model.Menu]{}, repository.MapPgError(err)
	}
	if q.PageSize <= 0 || total == 0 {
		return repository.NewPageResult[model.Menu](nil, total, q), nil
	}

	rows, err := exec.Query(ctx,
		`SELECT `+menuColumns+` FROM tbl_menu ORDER BY `+orderBy+` LIMIT $1 OFFSET $2`,
		q.PageSize, q.Skip(),
	)
	if err != nil {
		return repository.PageResult[model.Menu]{}, repository.MapPgError(err)
	}
	items, err := collectMenus(rows)
	if err != nil {
		return repository.PageResult[model.Menu]{}, err
	}
	return repository.NewPageResult(items, total, q), nil
}

func (r *menuRepository) Find(ctx context.Context, f repository.MenuFilter, sort paging.Sort) ([]model.Menu, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	orderBy, err := repository.MenuOrderBy(sort)
	if err != nil {
		return nil, err
	}
	where, args := menuWhere(f)
	rows, err := getQ(ctx, r.pool).Query(ctx,
		`SELECT `+menuColumns+` FROM tbl_menu`+where+` ORDER BY `+orderBy, args...,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	return collectMenus(rows)
}

// menuWhere renders f as a WHERE clause with positional parameters.
func menuWhere(f repository.MenuFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.PriceAbove != nil {
		add("menu_price > $%d", *f.PriceAbove)
	}
	if f.PriceBelow != nil {
		add("menu_price < $%d", *f.PriceBelow)
	}
	if f.PriceFrom != nil {
		add("menu_price >= $%d", *f.PriceFrom)
	}
	if f.PriceTo != nil {
		add("menu_price <= $%d", *f.PriceTo)
	}
	if f.NameContains != "" {
		add(`menu_name LIKE $%d ESCAPE '\'`, "%"+repository.EscapeLike(f.NameContains)+"%")
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func collectMenus(rows pgx.Rows) ([]model.Menu, error) {
	defer rows.Close()
	items := make([]model.Menu, 0)
	for rows.Next() {
		m, err := scanMenu(rows)
		if err != nil {
			return nil, repository.MapPgError(err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return items, nil
}

var _ repository.MenuRepository = (*menuRepository)(nil)
