package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxviazov/menu-catalog-service/internal/model"
	"github.com/maxviazov/menu-catalog-service/internal/repository"
)

type categoryRepository struct{ pool *pgxpool.Pool }

func NewCategoryRepository(pool *pgxpool.Pool) repository.CategoryRepository {
	return &categoryRepository{pool: pool}
}

func (r *categoryRepository) Create(ctx context.Context, c model.Category) (model.Category, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Category{}, err
	}
	row := getQ(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO tbl_category (category_name, ref_category_code)
		 VALUES ($1, $2)
		 RETURNING category_code, category_name, ref_category_code`,
		c.CategoryName, c.RefCategoryCode,
	)
	var out model.Category
	if err := row.Scan(&out.CategoryCode, &out.CategoryName, &out.RefCategoryCode); err != nil {
		return model.Category{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *categoryRepository) GetByCode(ctx context.Context, code int64) (model.Category, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Category{}, err
	}
	row := getQ(ctx, r.pool).QueryRow(ctx,
		`SELECT category_code, category_name, ref_category_code
		 FROM tbl_category WHERE category_code = $1`, code,
	)
	var out model.Category
	if err := row.Scan(&out.CategoryCode, &out.CategoryName, &out.RefCategoryCode); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Category{}, repository.ErrNotFound
		}
		return model.Category{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *categoryRepository) ListAll(ctx context.Context) ([]model.Category, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	rows, err := getQ(ctx, r.pool).Query(ctx,
		`SELECT category_code, category_name, ref_category_code
		 FROM tbl_category ORDER BY category_code`,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()
	out := make([]model.Category, 0)
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.CategoryCode, &c.CategoryName, &c.RefCategoryCode); err != nil {
			return nil, repository.MapPgError(err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return out, nil
}

var _ repository.CategoryRepository = (*categoryRepository)(nil)
