package config

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a fully valid configuration for testing.
func validConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:        "exercises-service",
			Version:     "1.0.0",
			Environment: "test",
		},
		Server: ServerConfig{
			Port:            8080,
			Host:            "127.0.0.1",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			MaxRequestSize:  64 << 10,
		},
		Log: LogConfig{
			Level:  "debug",
			Format: "text",
		},
		Client: ClientConfig{
			Timeout: 2 * time.Second,
			Retry: RetryConfig{
				MaxAttempts:     2,
				InitialInterval: 50 * time.Millisecond,
				MaxInterval:     time.Second,
				Multiplier:      2.0,
				JitterFactor:    0.1,
			},
			CircuitBreaker: CircuitBreakerConfig{
				MaxFailures:   3,
				Timeout:       10 * time.Second,
				HalfOpenLimit: 1,
			},
			Transport: TransportConfig{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 2,
				IdleConnTimeout:     30 * time.Second,
			},
		},
		Exercises: ExercisesConfig{
			Root:      "/srv/exercises",
			MaxPowers: 64,
			MaxBatch:  10,
			MaxFiles:  4,
		},
		Services: ServicesConfig{
			Calculator: ServiceEndpointConfig{
				BaseURL: "http://localhost:8080",
				Name:    "exercises-service",
			},
		},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestConfig_Validate_Fields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		field   string
		message string
	}{
		{"missing app name", func(c *Config) { c.App.Name = "" }, "app.name", "is required"},
		{"invalid environment", func(c *Config) { c.App.Environment = "staging" }, "app.environment", "must be one of"},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "server.port", "must be at most"},
		{"read timeout too short", func(c *Config) { c.Server.ReadTimeout = time.Millisecond }, "server.read_timeout", "must be at least"},
		{"invalid log level", func(c *Config) { c.Log.Level = "verbose" }, "log.level", "must be one of"},
		{"uppercase log level", func(c *Config) { c.Log.Level = "DEBUG" }, "log.level", "must be one of"},
		{"invalid log format", func(c *Config) { c.Log.Format = "xml" }, "log.format", "must be one of"},
		{"log file without path", func(c *Config) {
			c.Log.File.Enabled = true
			c.Log.File.Path = ""
		}, "log.file.path", "is required when"},
		{"telemetry without endpoint", func(c *Config) {
			c.Telemetry.Enabled = true
			c.Telemetry.ServiceName = "svc"
		}, "telemetry.endpoint", "is required when"},
		{"auth without subject header", func(c *Config) {
			c.Auth.Enabled = true
			c.Auth.SubjectHeader = ""
		}, "auth.subject_header", "is required when"},
		{"max interval below initial", func(c *Config) {
			c.Client.Retry.InitialInterval = time.Second
			c.Client.Retry.MaxInterval = 500 * time.Millisecond
		}, "client.retry.max_interval", "must not be less than initialinterval"},
		{"retry multiplier too small", func(c *Config) { c.Client.Retry.Multiplier = 1.0 }, "client.retry.multiplier", "must be at least"},
		{"missing exercises root", func(c *Config) { c.Exercises.Root = "" }, "exercises.root", "is required"},
		{"max powers too high", func(c *Config) { c.Exercises.MaxPowers = 65 }, "exercises.max_powers", "must be at most"},
		{"max batch zero", func(c *Config) { c.Exercises.MaxBatch = 0 }, "exercises.max_batch", "is required"},
		{"calculator url invalid", func(c *Config) { c.Services.Calculator.BaseURL = "not a url" }, "services.calculator.base_url", "must be a valid URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestConfig_Validate_ValidLogLevels(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error"} {
		t.Run(level, func(t *testing.T) {
			cfg := validConfig()
			cfg.Log.Level = level

			assert.NoError(t, cfg.Validate())
		})
	}
}

func TestConfig_Validate_SamplingRate(t *testing.T) {
	tests := []struct {
		rate  float64
		valid bool
	}{
		{0, true},
		{0.5, true},
		{1, true},
		{-0.1, false},
		{1.1, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("rate_%v", tt.rate), func(t *testing.T) {
			cfg := validConfig()
			cfg.Telemetry.SamplingRate = tt.rate

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "telemetry.sampling_rate")
			}
		})
	}
}

func TestConfig_Validate_MultipleErrors(t *testing.T) {
	cfg := &Config{
		App: AppConfig{Environment: "invalid"},
	}

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "config validation failed")
	assert.Contains(t, errStr, "app.name")
	assert.Contains(t, errStr, "app.version")
	assert.Contains(t, errStr, "exercises")
}

func TestKeyPath(t *testing.T) {
	tests := []struct {
		namespace string
		expected  string
	}{
		{"Config.server.port", "server.port"},
		{"Config.exercises.max_powers", "exercises.max_powers"},
		{"Config.services.calculator.base_url", "services.calculator.base_url"},
		{"port", "port"},
	}

	for _, tt := range tests {
		t.Run(tt.namespace, func(t *testing.T) {
			assert.Equal(t, tt.expected, keyPath(tt.namespace))
		})
	}
}
