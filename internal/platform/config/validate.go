package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Log.validate(),
		c.Planfix.validate(),
		c.Telemetry.validate(),
	)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (p *PlanfixConfig) validate() error {
	var errs []error

	if p.BaseURL == "" {
		errs = append(errs, errors.New("planfix.base_url must not be empty"))
	} else if u, err := url.Parse(p.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("planfix.base_url must be an absolute URL, got %q", p.BaseURL))
	}
	if p.Token == "" {
		errs = append(errs, errors.New("planfix.token must not be empty"))
	}
	if p.Timeout <= 0 {
		errs = append(errs, errors.New("planfix.timeout must be positive"))
	}
	if p.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("planfix.circuit_breaker.max_failures must be >= 1, got %d",
			p.CircuitBreaker.MaxFailures))
	}
	if p.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("planfix.rate_limit.requests_per_second must not be negative, got %f",
			p.RateLimit.RequestsPerSecond))
	}
	if p.RateLimit.RequestsPerSecond > 0 && p.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("planfix.rate_limit.burst_size must be >= 1 when rate limiting, got %d",
			p.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
