// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Log        LogConfig        `koanf:"log"`
	Store      StoreConfig      `koanf:"store"`
	Coherence  CoherenceConfig  `koanf:"coherence"`
	Derivation DerivationConfig `koanf:"derivation"`
	Modules    []ModuleConfig   `koanf:"modules"`
	Client     ClientConfig     `koanf:"client"`
	Telemetry  TelemetryConfig  `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// StoreConfig selects and configures the goal store backend.
type StoreConfig struct {
	Driver string       `koanf:"driver"`
	SQLite SQLiteConfig `koanf:"sqlite"`
}

// SQLiteConfig holds settings for the SQLite-backed store.
type SQLiteConfig struct {
	Path string `koanf:"path"`
}

// CoherenceConfig tunes the coherence check protocol.
type CoherenceConfig struct {
	// FirstFailureOnly stops constraint evaluation at the first violation
	// instead of accumulating every violation.
	FirstFailureOnly bool `koanf:"first_failure_only"`
	// CrossDomainWorkers caps concurrent cross-domain module queries.
	CrossDomainWorkers int `koanf:"cross_domain_workers"`
}

// DerivationConfig holds the constraint derivation rule table. An empty rule
// list means the built-in defaults are used.
type DerivationConfig struct {
	Rules []DerivationRule `koanf:"rules"`
}

// DerivationRule binds a goal-hint key to the constraint type and domain it
// derives.
type DerivationRule struct {
	Hint   string `koanf:"hint"`
	Type   string `koanf:"type"`
	Domain string `koanf:"domain"`
}

// ModuleConfig describes a domain module to register at process start.
type ModuleConfig struct {
	Name                  string `koanf:"name"`
	Domain                string `koanf:"domain"`
	BaseURL               string `koanf:"base_url"`
	CrossDomainInterested bool   `koanf:"cross_domain_interested"`
}

// ClientConfig holds the shared outbound HTTP policy applied to every remote
// domain module client. Each module carries its own base URL in ModuleConfig.
type ClientConfig struct {
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds outbound request rate limiting settings.
// A zero RequestsPerSecond disables rate limiting.
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
