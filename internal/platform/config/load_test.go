package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jsamuelsen11/phonebook/internal/platform/config"
)

// Tests that chdir to the repository root read configs/ and cannot run in
// parallel.

func TestLoad_Profiles(t *testing.T) {
	tests := []struct {
		profile string
		check   func(t *testing.T, cfg *config.Config)
	}{
		{
			profile: "local",
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Log.Level != "debug" {
					t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
				}
				if cfg.Storage.Autosave.Interval != 30*time.Second {
					t.Errorf("Storage.Autosave.Interval = %v, want 30s", cfg.Storage.Autosave.Interval)
				}
				if cfg.Telemetry.Enabled {
					t.Error("Telemetry.Enabled = true, want false")
				}
			},
		},
		{
			profile: "prod",
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Log.Format != "json" {
					t.Errorf("Log.Format = %q, want json", cfg.Log.Format)
				}
				if !cfg.Storage.Strict {
					t.Error("Storage.Strict = false, want true")
				}
				if cfg.Storage.PassphraseEnv != "PHONEBOOK_PASSPHRASE" {
					t.Errorf("Storage.PassphraseEnv = %q, want PHONEBOOK_PASSPHRASE", cfg.Storage.PassphraseEnv)
				}
				if cfg.Telemetry.Exporter != "otlp" {
					t.Errorf("Telemetry.Exporter = %q, want otlp", cfg.Telemetry.Exporter)
				}
			},
		},
		{
			// Keys local.yaml leaves alone come from base.yaml.
			profile: "local",
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Storage.Path != "phone_directory.json" {
					t.Errorf("Storage.Path = %q, want phone_directory.json", cfg.Storage.Path)
				}
				if cfg.Storage.Autosave.MaxFailures != 3 {
					t.Errorf("Storage.Autosave.MaxFailures = %d, want 3", cfg.Storage.Autosave.MaxFailures)
				}
				if cfg.Server.Port != 8080 {
					t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.profile, func(t *testing.T) {
			t.Chdir("../../..")

			cfg, err := config.Load(tt.profile)
			if err != nil {
				t.Fatalf("Load(%q) error: %v", tt.profile, err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoad_NoConfigDirUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load("", config.WithConfigDir(t.TempDir()))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Storage.Path != "phone_directory.json" {
		t.Errorf("Storage.Path = %q, want default", cfg.Storage.Path)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want \"info\"", cfg.Log.Level)
	}
	if cfg.Storage.Autosave.Cooldown != time.Minute {
		t.Errorf("Storage.Autosave.Cooldown = %v, want 1m", cfg.Storage.Autosave.Cooldown)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		value string
		got   func(*config.Config) any
		want  any
	}{
		{
			name:  "snake case key",
			env:   "PHONEBOOK_STORAGE_PASSPHRASE_ENV",
			value: "MY_SECRET",
			got:   func(c *config.Config) any { return c.Storage.PassphraseEnv },
			want:  "MY_SECRET",
		},
		{
			name:  "nested key",
			env:   "PHONEBOOK_STORAGE_AUTOSAVE_MAX_FAILURES",
			value: "7",
			got:   func(c *config.Config) any { return c.Storage.Autosave.MaxFailures },
			want:  7,
		},
		{
			name:  "rate limit burst",
			env:   "PHONEBOOK_SERVER_RATE_LIMIT_BURST_SIZE",
			value: "40",
			got:   func(c *config.Config) any { return c.Server.RateLimit.BurstSize },
			want:  40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir("../../..")
			t.Setenv(tt.env, tt.value)

			cfg, err := config.Load("local")
			if err != nil {
				t.Fatalf("Load error: %v", err)
			}
			if got := tt.got(cfg); got != tt.want {
				t.Errorf("%s: got %v (%T), want %v (%T)", tt.env, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestLoad_OverrideBeatsEnv(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("PHONEBOOK_STORAGE_PATH", "from-env.json")

	cfg, err := config.Load("local", config.WithOverride("storage.path", "from-flag.yaml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Storage.Path != "from-flag.yaml" {
		t.Errorf("Storage.Path = %q, want from-flag.yaml", cfg.Storage.Path)
	}
	if got := cfg.Storage.ResolvedFormat(); got != config.FormatYAML {
		t.Errorf("ResolvedFormat() = %q, want yaml", got)
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestLoad_ProfileTraversalRejected(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"../etc", "a/b", " "} {
		if _, err := config.Load(profile, config.WithConfigDir(t.TempDir())); err == nil {
			t.Errorf("Load(%q) returned nil error, want error", profile)
		}
	}
}

func TestLoad_InvalidBaseYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "base.yaml"), []byte("storage: [unclosed"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := config.Load("", config.WithConfigDir(dir)); err == nil {
		t.Fatal("Load() with malformed base.yaml returned nil error")
	}
}

func TestStorageConfig_Passphrase(t *testing.T) {
	t.Setenv("PHONEBOOK_TEST_PASSPHRASE", "s3cret")

	s := config.StorageConfig{PassphraseEnv: "PHONEBOOK_TEST_PASSPHRASE"}
	if got := s.Passphrase(); got != "s3cret" {
		t.Errorf("Passphrase() = %q, want s3cret", got)
	}

	disabled := config.StorageConfig{}
	if got := disabled.Passphrase(); got != "" {
		t.Errorf("Passphrase() with no env = %q, want empty", got)
	}
}
