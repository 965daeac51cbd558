package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Environment  string

	// Database configuration
	MongoURI                    string
	MongoDatabase               string
	MongoMaxPoolSize            uint64
	MongoMinPoolSize            uint64
	MongoServerSelectionTimeout time.Duration
	MongoSocketTimeout          time.Duration
	MongoMaxConnIdleTime        time.Duration
	QueryTimeout                time.Duration
	RunMigrations               bool

	// Upload and paging configuration
	MaxUploadSize   int64
	MaxBodySize     int64
	DefaultPageSize int
	MaxPageSize     int

	// Logging configuration
	LogLevel string
}

// Load loads configuration from environment variables. Variables from a .env
// file in the working directory are applied first, without overriding the
// process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		ServerPort:                  getEnv("SERVER_PORT", "8080"),
		ReadTimeout:                 getEnvDuration("HTTP_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:                getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:                 getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		Environment:                 getEnv("APP_ENV", "production"),
		MongoURI:                    getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:               getEnv("MONGODB_DATABASE", "mini_news"),
		MongoMaxPoolSize:            uint64(getEnvInt("MONGODB_MAX_POOL_SIZE", 10)),
		MongoMinPoolSize:            uint64(getEnvInt("MONGODB_MIN_POOL_SIZE", 0)),
		MongoServerSelectionTimeout: getEnvDuration("MONGODB_SERVER_SELECTION_TIMEOUT", 5*time.Second),
		MongoSocketTimeout:          getEnvDuration("MONGODB_SOCKET_TIMEOUT", 45*time.Second),
		MongoMaxConnIdleTime:        getEnvDuration("MONGODB_MAX_CONN_IDLE_TIME", 30*time.Second),
		QueryTimeout:                getEnvDuration("QUERY_TIMEOUT", 8*time.Second),
		RunMigrations:               getEnvBool("RUN_MIGRATIONS", true),
		MaxUploadSize:               getEnvInt64("MAX_UPLOAD_SIZE", 5<<20),
		MaxBodySize:                 getEnvInt64("MAX_BODY_SIZE", 10<<20),
		DefaultPageSize:             getEnvInt("DEFAULT_PAGE_SIZE", 20),
		MaxPageSize:                 getEnvInt("MAX_PAGE_SIZE", 100),
		LogLevel:                    getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsDevelopment reports whether internal error details may be returned to clients.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.MongoURI == "" {
		return fmt.Errorf("MONGODB_URI is required")
	}
	if c.MongoDatabase == "" {
		return fmt.Errorf("MONGODB_DATABASE is required")
	}
	if c.MongoMaxPoolSize < 1 {
		return fmt.Errorf("MONGODB_MAX_POOL_SIZE must be at least 1")
	}
	if c.MongoMinPoolSize > c.MongoMaxPoolSize {
		return fmt.Errorf("MONGODB_MIN_POOL_SIZE must not exceed MONGODB_MAX_POOL_SIZE")
	}
	if c.QueryTimeout <= 0 {
		return fmt.Errorf("QUERY_TIMEOUT must be positive")
	}
	if c.MaxUploadSize < 1 {
		return fmt.Errorf("MAX_UPLOAD_SIZE must be at least 1")
	}
	if c.MaxBodySize < c.MaxUploadSize {
		return fmt.Errorf("MAX_BODY_SIZE must be at least MAX_UPLOAD_SIZE")
	}
	if c.DefaultPageSize < 1 {
		return fmt.Errorf("DEFAULT_PAGE_SIZE must be at least 1")
	}
	if c.MaxPageSize < c.DefaultPageSize {
		return fmt.Errorf("MAX_PAGE_SIZE must be at least DEFAULT_PAGE_SIZE")
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvInt64 gets an environment variable as int64 with a default value.
func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as bool with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
