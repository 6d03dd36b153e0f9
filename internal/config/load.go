package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the service reads,
// e.g. TASK_SERVER_PORT.
const EnvPrefix = "TASK"

// Default values applied before any other source is consulted.
const (
	DefaultPort              = 5000
	DefaultLogLevel          = "info"
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultServiceName       = "task-service"
	DefaultServiceVersion    = "1.0.0"
	DefaultMetricsPath       = "/metrics"
)

// Flag names understood by LoadWithFlags.
const (
	FlagConfig   = "config"
	FlagPort     = "port"
	FlagLogLevel = "log-level"
)

// Load configuration from defaults, an optional config.yaml in the working
// directory, and environment variables. Environment variables take precedence
// over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadWithFlags(nil)
}

// LoadWithFlags behaves like Load and additionally applies any flags set on fs,
// which take precedence over every other source. A --config flag, when set,
// names the config file to read instead of ./config.yaml.
func LoadWithFlags(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	configFile := ""
	if fs != nil {
		if f := fs.Lookup(FlagConfig); f != nil {
			configFile = f.Value.String()
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicitly named file must exist; the implicit one is optional.
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// PORT and LOG_LEVEL are the conventional unprefixed names used by
	// container platforms; the prefixed form wins when both are set.
	bindEnvs := []struct {
		key     string
		envVars []string
	}{
		{"server.port", []string{EnvPrefix + "_SERVER_PORT", "PORT"}},
		{"server.log_level", []string{EnvPrefix + "_SERVER_LOG_LEVEL", "LOG_LEVEL"}},
	}
	for _, env := range bindEnvs {
		args := append([]string{env.key}, env.envVars...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("error binding environment variable %s: %w", env.envVars[0], err)
		}
	}

	if fs != nil {
		bindFlags := map[string]string{
			"server.port":      FlagPort,
			"server.log_level": FlagLogLevel,
		}
		for key, name := range bindFlags {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("error binding flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	cfg.Server.LogLevel = strings.ToLower(cfg.Server.LogLevel)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks a Config against its struct tags.
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

// Default returns the configuration used when no other source sets a value.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:              DefaultPort,
			LogLevel:          DefaultLogLevel,
			ShutdownTimeout:   DefaultShutdownTimeout,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
		},
		Service: ServiceConfig{
			Name:    DefaultServiceName,
			Version: DefaultServiceVersion,
		},
		Store: StoreConfig{Seed: true},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    DefaultMetricsPath,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.log_level", d.Server.LogLevel)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)
	v.SetDefault("server.read_header_timeout", d.Server.ReadHeaderTimeout)
	v.SetDefault("service.name", d.Service.Name)
	v.SetDefault("service.version", d.Service.Version)
	v.SetDefault("store.seed", d.Store.Seed)
	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
	v.SetDefault("metrics.path", d.Metrics.Path)
}
