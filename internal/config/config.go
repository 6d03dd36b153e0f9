package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	Service ServiceConfig `mapstructure:"service" validate:"required"`
	Store   StoreConfig   `mapstructure:"store"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port              int           `mapstructure:"port"                validate:"required,gt=0,lt=65536"`
	LogLevel          string        `mapstructure:"log_level"           validate:"required,oneof=debug info warn error"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"    validate:"gt=0"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" validate:"gt=0"`
}

// ServiceConfig describes the service as reported by the index endpoint.
type ServiceConfig struct {
	Name    string `mapstructure:"name"    validate:"required"`
	Version string `mapstructure:"version" validate:"required"`
}

// StoreConfig controls the in-memory task store.
type StoreConfig struct {
	// Seed loads the three sample tasks at startup.
	Seed bool `mapstructure:"seed"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"    validate:"omitempty,startswith=/"`
}
