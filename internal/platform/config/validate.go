package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Store.validate(),
		c.Coherence.validate(),
		c.Derivation.validate(),
		validateModules(c.Modules),
		c.Client.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}

	return errors.Join(errs...)
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

func (s *StoreConfig) validate() error {
	var errs []error

	switch s.Driver {
	case "memory":
		// No further settings.
	case "sqlite":
		if s.SQLite.Path == "" {
			errs = append(errs, errors.New("store.sqlite.path must not be empty when driver is sqlite"))
		}
	default:
		errs = append(errs, fmt.Errorf("store.driver must be one of: memory, sqlite; got %q", s.Driver))
	}

	return errors.Join(errs...)
}

func (c *CoherenceConfig) validate() error {
	if c.CrossDomainWorkers < 0 {
		return fmt.Errorf("coherence.cross_domain_workers must be >= 0, got %d", c.CrossDomainWorkers)
	}
	return nil
}

func (d *DerivationConfig) validate() error {
	var errs []error

	seen := make(map[string]struct{}, len(d.Rules))
	for i, r := range d.Rules {
		if r.Hint == "" {
			errs = append(errs, fmt.Errorf("derivation.rules[%d].hint must not be empty", i))
			continue
		}
		if _, dup := seen[r.Hint]; dup {
			errs = append(errs, fmt.Errorf("derivation.rules[%d]: duplicate hint %q", i, r.Hint))
		}
		seen[r.Hint] = struct{}{}

		if r.Type == "" {
			errs = append(errs, fmt.Errorf("derivation.rules[%d].type must not be empty", i))
		}
		if r.Domain == "" {
			errs = append(errs, fmt.Errorf("derivation.rules[%d].domain must not be empty", i))
		}
	}

	return errors.Join(errs...)
}

func validateModules(modules []ModuleConfig) error {
	var errs []error

	seen := make(map[string]struct{}, len(modules))
	for i, m := range modules {
		if m.Name == "" {
			errs = append(errs, fmt.Errorf("modules[%d].name must not be empty", i))
		}
		if _, dup := seen[m.Name]; dup && m.Name != "" {
			errs = append(errs, fmt.Errorf("modules[%d]: duplicate name %q", i, m.Name))
		}
		seen[m.Name] = struct{}{}

		if m.Domain == "" {
			errs = append(errs, fmt.Errorf("modules[%d].domain must not be empty", i))
		}

		u, err := url.Parse(m.BaseURL)
		if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
			errs = append(errs, fmt.Errorf("modules[%d].base_url must be an absolute http(s) URL, got %q",
				i, m.BaseURL))
		}
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("client.rate_limit.requests_per_second must be >= 0, got %f",
			cl.RateLimit.RequestsPerSecond))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("client.rate_limit.burst_size must be >= 1 when rate limiting is on, got %d",
			cl.RateLimit.BurstSize))
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
