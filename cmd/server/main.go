package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/maxviazov/menu-catalog-service/internal/config"
	"github.com/maxviazov/menu-catalog-service/internal/handler"
	"github.com/maxviazov/menu-catalog-service/internal/logger"
	"github.com/maxviazov/menu-catalog-service/internal/mapper"
	"github.com/maxviazov/menu-catalog-service/internal/repository"
	"github.com/maxviazov/menu-catalog-service/internal/repository/gormstore"
	"github.com/maxviazov/menu-catalog-service/internal/repository/postgres"
	"github.com/maxviazov/menu-catalog-service/internal/server"
	"github.com/maxviazov/menu-catalog-service/internal/service"
)

// store is the set of repositories a storage driver hands to the services.
type store struct {
	menus      repository.MenuRepository
	categories repository.CategoryRepository
	tx         repository.TxManager
	pinger     repository.Pinger
	close      func()
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file; empty uses defaults and env only")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	if !repository.ValidMenuSortKey(cfg.Paging.MenuSort.Key) {
		appLogger.Fatal().Str("key", cfg.Paging.MenuSort.Key).Msg("unsupported paging.menu_sort.key")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("storage initialization failed")
	}
	defer st.close()

	m := mapper.New()
	services := handler.Services{
		Menus: service.NewMenuService(st.menus, st.tx, m, service.PagingSettings{
			GroupSize: cfg.Paging.GroupSize,
			MenuSort:  cfg.Paging.MenuSort.Sort(),
		}, appLogger),
		Categories: service.NewCategoryService(st.categories, m, appLogger),
	}

	router := server.NewRouter(cfg.App, appLogger)
	handler.Register(router, st.pinger, services, handler.PageLimits{
		DefaultSize: cfg.Paging.DefaultPageSize,
		MaxSize:     cfg.Paging.MaxPageSize,
	})

	appLogger.Info().
		Str("version", cfg.App.Version).
		Str("driver", cfg.Storage.Driver).
		Int("port", cfg.App.Port).
		Msg("🚀 Service started")

	if err := server.New(cfg.App, router, appLogger).Run(ctx); err != nil {
		appLogger.Error().Err(err).Msg("server stopped with error")
		return
	}
	appLogger.Info().Msg("service stopped")
}

func openStore(ctx context.Context, cfg *config.Config, l zerolog.Logger) (*store, error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		s, err := gormstore.Open(cfg.Storage.SQLitePath, mapper.New(), l)
		if err != nil {
			return nil, err
		}
		if err := s.SeedCategories(ctx); err != nil {
			_ = s.Close()
			return nil, err
		}
		return &store{
			menus:      s.Menus(),
			categories: s.Categories(),
			tx:         s.TxManager(),
			pinger:     s,
			close: func() {
				if err := s.Close(); err != nil {
					l.Warn().Err(err).Msg("closing sqlite store")
				}
			},
		}, nil

	case config.DriverPostgres:
		db, err := repository.New(ctx, cfg, &l)
		if err != nil {
			return nil, err
		}
		if cfg.Postgres.Migrate {
			if err := db.Migrate(ctx); err != nil {
				db.Close()
				return nil, err
			}
		}
		pool := db.Pool()
		return &store{
			menus:      postgres.NewMenuRepository(pool),
			categories: postgres.NewCategoryRepository(pool),
			tx:         postgres.NewTxManager(pool),
			pinger:     postgres.NewPinger(pool),
			close:      db.Close,
		}, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
