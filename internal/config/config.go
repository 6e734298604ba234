// Package config loads runtime configuration for the prediction service
// from the environment, with sane defaults for local runs.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the server needs at startup.
type Config struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	LogLevel        string
	OTELEnabled     bool
	ServiceName     string
}

// Load reads configuration from environment variables (PORT, LOG_LEVEL,
// OTEL_ENABLED, ...) falling back to defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("port", 8080)
	v.SetDefault("read_timeout", 15*time.Second)
	v.SetDefault("write_timeout", 15*time.Second)
	v.SetDefault("idle_timeout", 60*time.Second)
	v.SetDefault("request_timeout", 60*time.Second)
	v.SetDefault("shutdown_timeout", 30*time.Second)
	v.SetDefault("log_level", "INFO")
	v.SetDefault("otel_enabled", false)
	v.SetDefault("otel_service_name", "composite-predictor")

	v.AutomaticEnv()

	cfg := &Config{
		Port:            v.GetInt("port"),
		ReadTimeout:     v.GetDuration("read_timeout"),
		WriteTimeout:    v.GetDuration("write_timeout"),
		IdleTimeout:     v.GetDuration("idle_timeout"),
		RequestTimeout:  v.GetDuration("request_timeout"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
		LogLevel:        v.GetString("log_level"),
		OTELEnabled:     v.GetBool("otel_enabled"),
		ServiceName:     v.GetString("otel_service_name"),
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}

	return cfg, nil
}

// Addr returns the listen address derived from the configured port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
