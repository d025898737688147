package config

const (
	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"log.level":  "info",
		"log.format": "text",

		"planfix.base_url":                        "",
		"planfix.token":                           "",
		"planfix.comment_tag":                     "",
		"planfix.timeout":                         "30s",
		"planfix.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"planfix.circuit_breaker.timeout":         "30s",
		"planfix.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"planfix.rate_limit.requests_per_second":  0,
		"planfix.rate_limit.burst_size":           1,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "planfix-cli",
	}
}
