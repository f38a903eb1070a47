package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Storage formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Storage.validate(),
		c.Log.validate(),
		c.Server.validate(),
		c.Telemetry.validate(),
	)
}

// ResolvedFormat returns the storage format, inferring it from the file
// extension when Format is empty. Anything other than .yaml or .yml is JSON.
func (s *StorageConfig) ResolvedFormat() string {
	if s.Format != "" {
		return strings.ToLower(s.Format)
	}
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

func (s *StorageConfig) validate() error {
	var errs []error

	if strings.TrimSpace(s.Path) == "" {
		errs = append(errs, errors.New("storage.path must not be empty"))
	}

	switch strings.ToLower(s.Format) {
	case "", FormatJSON, FormatYAML:
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("storage.format must be one of: json, yaml; got %q", s.Format))
	}

	if s.Autosave.Interval < 0 {
		errs = append(errs, errors.New("storage.autosave.interval must not be negative"))
	}
	if s.Autosave.Interval > 0 {
		if s.Autosave.MaxFailures < 1 {
			errs = append(errs, fmt.Errorf("storage.autosave.max_failures must be >= 1, got %d",
				s.Autosave.MaxFailures))
		}
		if s.Autosave.Cooldown <= 0 {
			errs = append(errs, errors.New("storage.autosave.cooldown must be positive"))
		}
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
	if s.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("server.shutdown_timeout must be positive"))
	}
	if s.RequestTimeout <= 0 {
		errs = append(errs, errors.New("server.request_timeout must be positive"))
	}
	if s.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, errors.New("server.rate_limit.requests_per_second must not be negative"))
	}
	if s.RateLimit.RequestsPerSecond > 0 && s.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("server.rate_limit.burst_size must be at least 1, got %d", s.RateLimit.BurstSize))
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
	if t.ServiceName == "" {
		errs = append(errs, errors.New("telemetry.service_name must not be empty"))
	}

	return errors.Join(errs...)
}
