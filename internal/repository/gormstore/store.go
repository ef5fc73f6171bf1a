// Package gormstore is the embedded SQLite backend, built on GORM.
//
// It implements the same repository interfaces as the Postgres store and is
// meant for local development and for running the service without a database
// server. The schema is created with AutoMigrate; default categories are
// seeded into an empty database.
package gormstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/maxviazov/menu-catalog-service/internal/mapper"
	"github.com/maxviazov/menu-catalog-service/internal/repository"
)

// Store wraps the GORM handle shared by the sqlite repositories.
type Store struct {
	db     *gorm.DB
	mapper mapper.Mapper
	logger zerolog.Logger
}

// Open connects to the sqlite database at path and migrates the schema.
// Foreign keys are switched on through the DSN, since sqlite leaves them off by default.
func Open(path string, m mapper.Mapper, logger zerolog.Logger) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	l := logger.With().Str("component", "sqlite").Logger()

	db, err := gorm.Open(sqlite.Open(withForeignKeys(path)), &gorm.Config{
		TranslateError: true,
		Logger:         newGormLogger(l),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve sql.DB from GORM: %w", err)
	}
	// single writer; in-memory databases also live only as long as their connection
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&categoryRecord{}, &menuRecord{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate models: %w", err)
	}

	l.Info().Str("path", path).Msg("opened sqlite store")
	return &Store{db: db, mapper: m, logger: l}, nil
}

func withForeignKeys(path string) string {
	if strings.Contains(path, "_foreign_keys=") || strings.Contains(path, "_fk=") {
		return path
	}
	if strings.Contains(path, "?") {
		return path + "&_foreign_keys=on"
	}
	return path + "?_foreign_keys=on"
}

// SeedCategories inserts the default categories when the table is empty.
func (s *Store) SeedCategories(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&categoryRecord{}).Count(&count).Error; err != nil {
		return repository.MapGormError(err)
	}
	if count > 0 {
		return nil
	}
	seed := defaultCategories()
	if err := s.db.WithContext(ctx).Create(&seed).Error; err != nil {
		return repository.MapGormError(err)
	}
	s.logger.Info().Int("count", len(seed)).Msg("seeded default categories")
	return nil
}

func defaultCategories() []categoryRecord {
	food, beverage, dessert := int64(1), int64(2), int64(3)
	return []categoryRecord{
		{CategoryCode: 1, CategoryName: "Food"},
		{CategoryCode: 2, CategoryName: "Beverage"},
		{CategoryCode: 3, CategoryName: "Dessert"},
		{CategoryCode: 4, CategoryName: "Korean", RefCategoryCode: &food},
		{CategoryCode: 5, CategoryName: "Chinese", RefCategoryCode: &food},
		{CategoryCode: 6, CategoryName: "Japanese", RefCategoryCode: &food},
		{CategoryCode: 7, CategoryName: "Western", RefCategoryCode: &food},
		{CategoryCode: 8, CategoryName: "Coffee", RefCategoryCode: &beverage},
		{CategoryCode: 9, CategoryName: "Juice", RefCategoryCode: &beverage},
		{CategoryCode: 10, CategoryName: "Cake", RefCategoryCode: &dessert},
	}
}

// Menus returns the menu repository backed by this store.
func (s *Store) Menus() repository.MenuRepository { return &menuRepository{db: s.db, mapper: s.mapper} }

// Categories returns the category repository backed by this store.
func (s *Store) Categories() repository.CategoryRepository {
	return &categoryRepository{db: s.db, mapper: s.mapper}
}

// TxManager returns a transaction manager whose transactions the repositories above join.
func (s *Store) TxManager() repository.TxManager { return &txManager{db: s.db} }

// Ping checks the underlying connection.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to retrieve sql.DB for closing: %w", err)
	}
	return sqlDB.Close()
}

var _ repository.Pinger = (*Store)(nil)
