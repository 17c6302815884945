// Package config reads service settings from the environment, an optional
// .env file and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Keys. Each one is read from the upper-cased environment variable of the
// same name.
const (
	KeyHTTPAddr        = "http_addr"
	KeyDatabaseDriver  = "database_driver"
	KeyDatabaseURL     = "database_url"
	KeyJWTSecret       = "jwt_secret"
	KeyAccessTokenTTL  = "access_token_ttl"
	KeyRefreshTokenTTL = "refresh_token_ttl"
	KeyRedisURL        = "redis_url"
	KeyRedisHost       = "redis_host"
	KeyRedisPort       = "redis_port"
	KeyRedisPassword   = "redis_password"
	KeyRedisDB         = "redis_db"
	KeyNatsURL         = "nats_url"
	KeyLogLevel        = "log_level"
	KeyLogFormat       = "log_format"
	KeyFreeBoardLimit  = "free_board_limit"
)

type Config struct {
	HTTPAddr        string
	DatabaseDriver  string
	DatabaseURL     string
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	RedisURL        string
	RedisHost       string
	RedisPort       string
	RedisPassword   string
	RedisDB         int
	NatsURL         string
	LogLevel        string
	LogFormat       string
	FreeBoardLimit  int
}

// LoadDotEnv loads a .env file from the working directory when there is one.
func LoadDotEnv(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// New returns a viper instance with defaults set and environment lookup
// enabled. Callers bind their flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyHTTPAddr, ":8080")
	v.SetDefault(KeyDatabaseDriver, "postgres")
	v.SetDefault(KeyDatabaseURL, "")
	v.SetDefault(KeyJWTSecret, "")
	v.SetDefault(KeyAccessTokenTTL, 30*time.Minute)
	v.SetDefault(KeyRefreshTokenTTL, 24*time.Hour)
	v.SetDefault(KeyRedisURL, "")
	v.SetDefault(KeyRedisHost, "")
	v.SetDefault(KeyRedisPort, "6379")
	v.SetDefault(KeyRedisPassword, "")
	v.SetDefault(KeyRedisDB, 0)
	v.SetDefault(KeyNatsURL, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyFreeBoardLimit, 3)
	v.AutomaticEnv()
	return v
}

func Load(v *viper.Viper) *Config {
	return &Config{
		HTTPAddr:        v.GetString(KeyHTTPAddr),
		DatabaseDriver:  v.GetString(KeyDatabaseDriver),
		DatabaseURL:     v.GetString(KeyDatabaseURL),
		JWTSecret:       v.GetString(KeyJWTSecret),
		AccessTokenTTL:  v.GetDuration(KeyAccessTokenTTL),
		RefreshTokenTTL: v.GetDuration(KeyRefreshTokenTTL),
		RedisURL:        v.GetString(KeyRedisURL),
		RedisHost:       v.GetString(KeyRedisHost),
		RedisPort:       v.GetString(KeyRedisPort),
		RedisPassword:   v.GetString(KeyRedisPassword),
		RedisDB:         v.GetInt(KeyRedisDB),
		NatsURL:         v.GetString(KeyNatsURL),
		LogLevel:        v.GetString(KeyLogLevel),
		LogFormat:       v.GetString(KeyLogFormat),
		FreeBoardLimit:  v.GetInt(KeyFreeBoardLimit),
	}
}

// ValidateStore checks the settings every command that opens the database
// needs.
func (c *Config) ValidateStore() error {
	switch c.DatabaseDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("DATABASE_DRIVER must be postgres or sqlite, got %q", c.DatabaseDriver)
	}
	if c.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	return nil
}

// Validate checks everything serve needs.
func (c *Config) Validate() error {
	if err := c.ValidateStore(); err != nil {
		return err
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if c.AccessTokenTTL <= 0 || c.RefreshTokenTTL <= 0 {
		return errors.New("token lifetimes must be positive")
	}
	return nil
}
