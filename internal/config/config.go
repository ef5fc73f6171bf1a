package config

import (
	"time"

	"github.com/maxviazov/menu-catalog-service/internal/logger"
	"github.com/maxviazov/menu-catalog-service/internal/paging"
)

// Supported storage drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App      AppConfig           `mapstructure:"app"`
	Logger   logger.LoggerConfig `mapstructure:"logger" validate:"-"`
	Storage  StorageConfig       `mapstructure:"storage"`
	Postgres PostgresConfig      `mapstructure:"postgres"`
	Paging   PagingConfig        `mapstructure:"paging"`
}

type AppConfig struct {
	Name            string        `mapstructure:"name" validate:"required"`
	Version         string        `mapstructure:"version"`
	Env             string        `mapstructure:"env"`
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
}

type StorageConfig struct {
	Driver     string `mapstructure:"driver" validate:"oneof=postgres sqlite"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

// PostgresConfig holds connection and pool settings. Lifetimes are in seconds.
type PostgresConfig struct {
	Host              string `mapstructure:"host"`
	Port              int    `mapstructure:"port"`
	User              string `mapstructure:"user"`
	Password          string `mapstructure:"password"`
	DBName            string `mapstructure:"db"`
	SSLMode           string `mapstructure:"sslmode"`
	MaxConns          int32  `mapstructure:"max_conns"`
	MinConns          int32  `mapstructure:"min_conns"`
	MaxConnLifetime   int    `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime   int    `mapstructure:"max_conn_idle_time"`
	HealthCheckPeriod int    `mapstructure:"health_check_period"`
	Migrate           bool   `mapstructure:"migrate"`
}

// PagingConfig drives the paged menu listing.
type PagingConfig struct {
	DefaultPageSize int        `mapstructure:"default_page_size" validate:"min=1"`
	MaxPageSize     int        `mapstructure:"max_page_size" validate:"gtefield=DefaultPageSize"`
	GroupSize       int        `mapstructure:"group_size" validate:"min=1"`
	MenuSort        SortConfig `mapstructure:"menu_sort"`
}

// SortConfig is the fixed ordering applied to a listing regardless of what the client asks for.
type SortConfig struct {
	Key       string `mapstructure:"key" validate:"required"`
	Direction string `mapstructure:"direction" validate:"oneof=asc desc ASC DESC"`
}

// Sort converts the configured ordering. Direction has already been validated by Load.
func (s SortConfig) Sort() paging.Sort {
	dir, err := paging.ParseDirection(s.Direction)
	if err != nil {
		dir = paging.Desc
	}
	return paging.Sort{Key: s.Key, Direction: dir}
}
