package config

import (
	"os"
	"strconv"
	"time"

	"netmotive-switcher/internal/domain/errors"

	"gopkg.in/yaml.v3"
)

// Storage backends
const (
	BackendFile  = "file"
	BackendMySQL = "mysql"
)

// Duration is a time.Duration that decodes YAML values like "30s"
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config is a struct that holds application configuration
type Config struct {
	Storage  StorageConfig  `yaml:"storage"`
	Database DatabaseConfig `yaml:"database"`
	Apply    ApplyConfig    `yaml:"apply"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// StorageConfig selects and parameterizes the profile repository
type StorageConfig struct {
	Backend     string `yaml:"backend"`
	ProfileFile string `yaml:"profile_file"`
}

// DatabaseConfig is a struct that holds database configuration for the
// MySQL storage backend
type DatabaseConfig struct {
	Host         string        `yaml:"host"`
	Port         string        `yaml:"port"`
	User         string        `yaml:"user"`
	Password     string        `yaml:"password"`
	Database     string        `yaml:"database"`
	MaxOpenConns int           `yaml:"max_open_conns"`
	MaxIdleConns int           `yaml:"max_idle_conns"`
	MaxLifetime  Duration      `yaml:"max_lifetime"`
}

// ApplyConfig is a struct that holds apply engine configuration
type ApplyConfig struct {
	CommandTimeout Duration `yaml:"command_timeout"`
}

// MetricsConfig is a struct that holds metrics endpoint configuration.
// An empty port disables the endpoint.
type MetricsConfig struct {
	Port string `yaml:"port"`
}

// ConfigLoader is an interface for loading configuration
type ConfigLoader interface {
	Load() (*Config, error)
}

// FileEnvConfigLoader loads configuration from an optional YAML file and
// applies environment variable overrides on top
type FileEnvConfigLoader struct {
	path string
}

// NewFileEnvConfigLoader creates a loader for the given config file path.
// An empty path falls back to SWITCHER_CONFIG or ./switcher.yaml.
func NewFileEnvConfigLoader(path string) ConfigLoader {
	if path == "" {
		path = getEnvOrDefault("SWITCHER_CONFIG", "switcher.yaml")
	}
	return &FileEnvConfigLoader{path: path}
}

// Load loads and validates the configuration
func (l *FileEnvConfigLoader) Load() (*Config, error) {
	config := defaults()

	if data, err := os.ReadFile(l.path); err == nil {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, errors.NewFormatError("failed to parse config file: "+l.path, err)
		}
	}

	l.applyEnvOverrides(config)

	if err := l.validate(config); err != nil {
		return nil, err
	}

	return config, nil
}

func defaults() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:     BackendFile,
			ProfileFile: "profiles.json",
		},
		Database: DatabaseConfig{
			Host:         "127.0.0.1",
			Port:         "3306",
			User:         "switcher",
			Database:     "switcher",
			MaxOpenConns: 5,
			MaxIdleConns: 2,
			MaxLifetime:  Duration(5 * time.Minute),
		},
		Apply: ApplyConfig{
			CommandTimeout: Duration(30 * time.Second),
		},
		Metrics: MetricsConfig{
			Port: "",
		},
	}
}

func (l *FileEnvConfigLoader) applyEnvOverrides(config *Config) {
	config.Storage.Backend = getEnvOrDefault("SWITCHER_STORAGE_BACKEND", config.Storage.Backend)
	config.Storage.ProfileFile = getEnvOrDefault("SWITCHER_PROFILE_FILE", config.Storage.ProfileFile)

	config.Database.Host = getEnvOrDefault("DB_HOST", config.Database.Host)
	config.Database.Port = getEnvOrDefault("DB_PORT", config.Database.Port)
	config.Database.User = getEnvOrDefault("DB_USER", config.Database.User)
	config.Database.Password = getEnvOrDefault("DB_PASSWORD", config.Database.Password)
	config.Database.Database = getEnvOrDefault("DB_NAME", config.Database.Database)
	config.Database.MaxOpenConns = getEnvIntOrDefault("DB_MAX_OPEN_CONNS", config.Database.MaxOpenConns)
	config.Database.MaxIdleConns = getEnvIntOrDefault("DB_MAX_IDLE_CONNS", config.Database.MaxIdleConns)
	config.Database.MaxLifetime = Duration(getEnvDurationOrDefault("DB_MAX_LIFETIME", config.Database.MaxLifetime.Std()))

	config.Apply.CommandTimeout = Duration(getEnvDurationOrDefault("COMMAND_TIMEOUT", config.Apply.CommandTimeout.Std()))
	config.Metrics.Port = getEnvOrDefault("METRICS_PORT", config.Metrics.Port)
}

// validate validates the configuration
func (l *FileEnvConfigLoader) validate(config *Config) error {
	switch config.Storage.Backend {
	case BackendFile:
		if config.Storage.ProfileFile == "" {
			return errors.NewValidationError("profile file path not configured", nil)
		}
	case BackendMySQL:
		if config.Database.Host == "" {
			return errors.NewValidationError("database host not configured", nil)
		}
		if config.Database.Port == "" {
			return errors.NewValidationError("database port not configured", nil)
		}
		if config.Database.User == "" {
			return errors.NewValidationError("database user not configured", nil)
		}
		if config.Database.Database == "" {
			return errors.NewValidationError("database name not configured", nil)
		}
	default:
		return errors.NewValidationError("unknown storage backend: "+config.Storage.Backend, nil)
	}

	if config.Apply.CommandTimeout <= 0 {
		return errors.NewValidationError("invalid command timeout", nil)
	}

	return nil
}

// Environment variable helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
