package config

import (
	"github.com/maxviazov/board-service/internal/logger"
)

type Config struct {
	App      AppConfig           `mapstructure:"app"`
	Logger   logger.LoggerConfig `mapstructure:"logger"`
	Storage  StorageConfig       `mapstructure:"storage"`
	Postgres PostgresConfig      `mapstructure:"postgres"`
	Board    BoardConfig         `mapstructure:"board"`
}

// AppConfig holds process-level settings for the HTTP server.
type AppConfig struct {
	Name            string   `mapstructure:"name"`
	Version         string   `mapstructure:"version"`
	Env             string   `mapstructure:"env" validate:"oneof=dev test staging prod"`
	Port            int      `mapstructure:"port" validate:"min=1,max=65535"`
	ShutdownTimeout int      `mapstructure:"shutdown_timeout" validate:"min=0"` // seconds
	CORSOrigins     []string `mapstructure:"cors_origins"`
}

// StorageConfig selects the post repository implementation.
type StorageConfig struct {
	Driver   string `mapstructure:"driver" validate:"oneof=memory postgres"`
	SeedFile string `mapstructure:"seed_file"`
}

// PostgresConfig carries connection and pool tuning for the postgres driver.
// Durations are in seconds.
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
}

// BoardConfig tunes the board listing.
type BoardConfig struct {
	PageSize    int `mapstructure:"page_size" validate:"min=1,max=100"`
	MaxPageSize int `mapstructure:"max_page_size" validate:"min=1,max=500"`
}
