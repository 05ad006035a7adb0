package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Collaborators
	Postgres PostgresConfig
	Auth     AuthConfig
	Gemini   GeminiConfig

	// AI core
	Routing RoutingConfig
	Quota   QuotaConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	DSN string
}

type AuthConfig struct {
	JWTSecret string
}

type GeminiConfig struct {
	APIURL string
}

// RoutingConfig tunes the per-message failover loop.
type RoutingConfig struct {
	CallTimeout time.Duration
}

// QuotaConfig tunes admission accounting and the per-model circuit breaker.
type QuotaConfig struct {
	ResetWindow      time.Duration
	FailureThreshold int
	CircuitCooldown  time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("postgres.dsn (or DATABASE_URL) is required")
	}

	// Auth
	cfg.Auth.JWTSecret = viper.GetString("auth.jwt_secret")
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret (or JWT_SECRET) is required")
	}

	// Gemini
	cfg.Gemini.APIURL = viper.GetString("gemini.api_url")

	// Routing
	var err error
	cfg.Routing.CallTimeout, err = parseDuration("routing.call_timeout")
	if err != nil {
		return nil, err
	}

	// Quota
	cfg.Quota.ResetWindow, err = parseDuration("quota.reset_window")
	if err != nil {
		return nil, err
	}
	cfg.Quota.FailureThreshold = viper.GetInt("quota.failure_threshold")
	cfg.Quota.CircuitCooldown, err = parseDuration("quota.circuit_cooldown")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// Routing defaults
	viper.SetDefault("routing.call_timeout", "30s")

	// Quota defaults: daily free-tier reset, breaker opens after 3
	// consecutive failures and cools down for 5 minutes.
	viper.SetDefault("quota.reset_window", "24h")
	viper.SetDefault("quota.failure_threshold", 3)
	viper.SetDefault("quota.circuit_cooldown", "5m")
}

// parseDuration reads a viper key as time.Duration with a clear error.
func parseDuration(key string) (time.Duration, error) {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %q", key, raw)
	}
	return d, nil
}
