// Package config provides configuration loading and validation for phonebook.
// Configuration is loaded with a layered system:
// defaults -> base.yaml -> {profile}.yaml -> PHONEBOOK_ env vars.
package config

import "time"

// Config holds all configuration for phonebook.
type Config struct {
	Storage   StorageConfig   `koanf:"storage"`
	Log       LogConfig       `koanf:"log"`
	Server    ServerConfig    `koanf:"server"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// StorageConfig holds settings for the persisted contact file.
type StorageConfig struct {
	// Path is the contact file location.
	Path string `koanf:"path"`
	// Format is "json" or "yaml". Empty means infer from the Path extension.
	Format string `koanf:"format"`
	// Strict rejects contacts with an empty name or phone at the store.
	Strict bool `koanf:"strict"`
	// PassphraseEnv names the environment variable holding the passphrase
	// used to seal the file. Empty disables sealing.
	PassphraseEnv string         `koanf:"passphrase_env"`
	Autosave      AutosaveConfig `koanf:"autosave"`
}

// AutosaveConfig holds settings for the periodic background save used by
// long-running presentation layers.
type AutosaveConfig struct {
	// Interval between saves. Zero disables autosave.
	Interval time.Duration `koanf:"interval"`
	// MaxFailures is the number of consecutive failed saves that opens the
	// circuit and pauses autosave.
	MaxFailures int `koanf:"max_failures"`
	// Cooldown is how long the circuit stays open before a trial save.
	Cooldown time.Duration `koanf:"cooldown"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	// File is the log destination: "" or "-" for stderr, or a path to append to.
	File string `koanf:"file"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// RequestTimeout bounds each API request, including any save it triggers.
	RequestTimeout time.Duration   `koanf:"request_timeout"`
	RateLimit      RateLimitConfig `koanf:"rate_limit"`
}

// RateLimitConfig throttles the API. A zero RequestsPerSecond disables it.
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
