package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from defaults, the YAML file at path (skipped when
// path is empty) and APP_* environment variables, in increasing precedence.
// Postgres credentials are expected from the environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	// Secrets also accept the names used by the postgres image and CI.
	_ = v.BindEnv("postgres.user", "APP_POSTGRES_USER", "POSTGRES_USER", "DB_USER")
	_ = v.BindEnv("postgres.password", "APP_POSTGRES_PASSWORD", "POSTGRES_PASSWORD", "DB_PASSWORD")
	_ = v.BindEnv("postgres.db", "APP_POSTGRES_DB", "POSTGRES_DB", "DB_NAME")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validate(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "menu-catalog-service")
	v.SetDefault("app.version", "0.1.0")
	v.SetDefault("app.env", "prod")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.read_timeout", "15s")
	v.SetDefault("app.write_timeout", "15s")
	v.SetDefault("app.shutdown_timeout", "10s")
	v.SetDefault("app.request_timeout", "5s")

	v.SetDefault("logger.env", "prod")

	v.SetDefault("storage.driver", DriverPostgres)
	v.SetDefault("storage.sqlite_path", "menu.db")

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.user", "")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.db", "")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("postgres.min_conns", 1)
	v.SetDefault("postgres.max_conn_lifetime", 3600)
	v.SetDefault("postgres.max_conn_idle_time", 300)
	v.SetDefault("postgres.health_check_period", 30)
	v.SetDefault("postgres.migrate", true)

	v.SetDefault("paging.default_page_size", 10)
	v.SetDefault("paging.max_page_size", 100)
	v.SetDefault("paging.group_size", 10)
	v.SetDefault("paging.menu_sort.key", "menu_code")
	v.SetDefault("paging.menu_sort.direction", "desc")
}

func validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation error: %w", err)
	}
	if cfg.Storage.Driver == DriverPostgres {
		var missing []string
		if cfg.Postgres.User == "" {
			missing = append(missing, "postgres.user")
		}
		if cfg.Postgres.Password == "" {
			missing = append(missing, "postgres.password")
		}
		if cfg.Postgres.DBName == "" {
			missing = append(missing, "postgres.db")
		}
		if len(missing) > 0 {
			return errors.New("missing required postgres settings: " + strings.Join(missing, ", "))
		}
	}
	if cfg.Storage.Driver == DriverSQLite && cfg.Storage.SQLitePath == "" {
		return errors.New("storage.sqlite_path is required for the sqlite driver")
	}
	return nil
}
