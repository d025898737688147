// Package config provides configuration loading and validation for the
// planfix client and CLI. Configuration is loaded using a layered system:
// defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the client and CLI.
type Config struct {
	Log       LogConfig       `koanf:"log"`
	Planfix   PlanfixConfig   `koanf:"planfix"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// PlanfixConfig holds the Planfix account endpoint, credentials, and the
// outbound HTTP client policy used to reach it.
type PlanfixConfig struct {
	// BaseURL is the account root, e.g. "https://example.planfix.com/".
	// The "rest/" segment is appended by the client.
	BaseURL string `koanf:"base_url"`
	// Token is the REST API bearer token.
	Token string `koanf:"token"`
	// CommentTag, when set, is prepended to comment descriptions as a
	// <span> marker so comments posted by this client can be recognized.
	CommentTag string `koanf:"comment_tag"`

	Timeout        time.Duration        `koanf:"timeout"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side rate limiting settings.
// A zero RequestsPerSecond disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
