package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Store drivers.
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

type Config struct {
	APIURL            string        `yaml:"api_url"`            // Backend base URL (default: http://localhost:4000/api)
	HTTPTimeout       time.Duration `yaml:"http_timeout"`       // Backend request timeout (default: 10s)
	StoreDriver       string        `yaml:"store_driver"`       // Refresh token store: sqlite, redis or memory (default: sqlite)
	DatabaseFile      string        `yaml:"database_file"`      // SQLite file (default: ./console.db)
	RedisAddr         string        `yaml:"redis_addr"`         // Redis address (default: localhost:6379)
	RedisPassword     string        `yaml:"redis_password"`     // Optional
	RedisDB           int           `yaml:"redis_db"`           // Redis logical database (default: 0)
	MasterKeyPath     string        `yaml:"master_key_path"`    // Key sealing the stored refresh token (sqlite default: <database_file>.key)
	KeepAliveInterval time.Duration `yaml:"keepalive_interval"` // Token keep-alive interval (default: 1m)

	Env                 string        `yaml:"env"`                   // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        `yaml:"log_level"`             // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        `yaml:"log_format"`            // Log format (json, text) (default: json)
	Host                string        `yaml:"host"`                  // HTTP bind address (default: 127.0.0.1)
	Port                int           `yaml:"port"`                  // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration `yaml:"shutdown_grace_period"` // Graceful shutdown timeout (default: 10s)
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		APIURL:              "http://localhost:4000/api",
		HTTPTimeout:         10 * time.Second,
		StoreDriver:         DriverSQLite,
		DatabaseFile:        "console.db",
		RedisAddr:           "localhost:6379",
		KeepAliveInterval:   time.Minute,
		Env:                 "dev",
		LogLevel:            "info",
		LogFormat:           "json",
		Host:                "127.0.0.1",
		Port:                8080,
		ShutdownGracePeriod: 10 * time.Second,
	}
}

// LoadConfig builds the configuration from defaults, then the YAML file named
// by CONSOLE_CONFIG_FILE if there is one, then environment variables.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if err := loadFile(os.Getenv("CONSOLE_CONFIG_FILE"), &cfg); err != nil {
		return cfg, err
	}

	cfg.APIURL = getEnvOrDefault("CONSOLE_API_URL", cfg.APIURL)
	cfg.HTTPTimeout = getEnvDurationOrDefault("CONSOLE_HTTP_TIMEOUT", cfg.HTTPTimeout)
	cfg.StoreDriver = getEnvOrDefault("CONSOLE_STORE_DRIVER", cfg.StoreDriver)
	cfg.DatabaseFile = getEnvOrDefault("CONSOLE_DATABASE_FILE", cfg.DatabaseFile)
	cfg.RedisAddr = getEnvOrDefault("CONSOLE_REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisPassword = getEnvOrDefault("CONSOLE_REDIS_PASSWORD", cfg.RedisPassword)
	cfg.RedisDB = getEnvIntOrDefault("CONSOLE_REDIS_DB", cfg.RedisDB)
	cfg.MasterKeyPath = getEnvOrDefault("CONSOLE_MASTER_KEY_PATH", cfg.MasterKeyPath)
	cfg.KeepAliveInterval = getEnvDurationOrDefault("CONSOLE_KEEPALIVE_INTERVAL", cfg.KeepAliveInterval)
	cfg.Env = getEnvOrDefault("ENV", cfg.Env)
	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnvOrDefault("LOG_FORMAT", cfg.LogFormat)
	cfg.Host = getEnvOrDefault("CONSOLE_HOST", cfg.Host)
	cfg.Port = getEnvIntOrDefault("PORT", cfg.Port)
	cfg.ShutdownGracePeriod = getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", cfg.ShutdownGracePeriod)

	return cfg, cfg.Validate()
}

// Validate rejects configurations the console cannot start with.
func (c Config) Validate() error {
	switch c.StoreDriver {
	case DriverSQLite, DriverRedis, DriverMemory:
	default:
		return fmt.Errorf("unknown store driver %q", c.StoreDriver)
	}
	if c.APIURL == "" {
		return errors.New("api url is required")
	}
	return nil
}

// loadFile overlays the YAML file at path onto cfg. A missing file is not
// an error; a malformed one is.
func loadFile(path string, cfg *Config) error {
	if path == "" {
		return nil
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
