package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "PHONEBOOK_"
	defaultConfigDir = "configs"
)

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
	overrides map[string]any
}

// WithConfigDir sets the directory where config YAML files are located.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// WithOverride sets a dotted key after every other layer, for values that
// come from command-line flags (e.g. "storage.path").
func WithOverride(key string, value any) Option {
	return func(o *loadOptions) {
		if o.overrides == nil {
			o.overrides = make(map[string]any)
		}
		o.overrides[key] = value
	}
}

// Load reads configuration using a layered hierarchy (highest precedence last):
//
//  1. Built-in defaults
//  2. Base config ({configDir}/base.yaml), skipped if absent
//  3. Profile config ({configDir}/{profile}.yaml), required when profile is set
//  4. Environment variables (PHONEBOOK_ prefix)
//  5. Overrides passed with WithOverride
//
// Environment variables name the dotted key in upper snake case:
//
//	PHONEBOOK_STORAGE_PATH                  -> storage.path
//	PHONEBOOK_STORAGE_AUTOSAVE_MAX_FAILURES -> storage.autosave.max_failures
//	PHONEBOOK_LOG_LEVEL                     -> log.level
func Load(profile string, opts ...Option) (*Config, error) {
	if profile != "" {
		if err := validateProfile(profile); err != nil {
			return nil, err
		}
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")

	// Layer 1: Defaults.
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// Layer 2: Base config, optional so the CLI runs without a configs dir.
	basePath := filepath.Join(o.configDir, "base.yaml")
	if err := loadYAML(k, basePath, false); err != nil {
		return nil, err
	}

	// Layer 3: Profile-specific config.
	if profile != "" {
		if err := loadYAML(k, filepath.Join(o.configDir, profile+".yaml"), true); err != nil {
			return nil, err
		}
	}

	// Layer 4: PHONEBOOK_ environment variables.
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envKeyMapper(k.Keys()),
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	// Layer 5: Flag overrides.
	if len(o.overrides) > 0 {
		if err := k.Load(confmap.Provider(o.overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("loading overrides: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Passphrase returns the sealing passphrase named by PassphraseEnv, or ""
// when sealing is disabled.
func (s *StorageConfig) Passphrase() string {
	if s.PassphraseEnv == "" {
		return ""
	}
	return os.Getenv(s.PassphraseEnv)
}

// loadYAML merges a YAML file into k. A missing file is an error only when
// required is set.
func loadYAML(k *koanf.Koanf, path string, required bool) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) && !required {
		return nil
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading config %s: %w", path, err)
	}
	return nil
}

// validateProfile rejects profile names that could escape the config dir.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be blank")
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("profile %q must be a bare file name", profile)
	}
	return nil
}

// envKeyMapper maps PHONEBOOK_ variables onto known dotted keys, so
// PHONEBOOK_STORAGE_PASSPHRASE_ENV lands on storage.passphrase_env rather than
// storage.passphrase.env. Unknown variables split on every underscore.
func envKeyMapper(known []string) func(key, value string) (string, any) {
	byEnvName := make(map[string]string, len(known))
	for _, key := range known {
		byEnvName[strings.ReplaceAll(key, ".", "_")] = key
	}
	return func(key, value string) (string, any) {
		name := strings.ToLower(strings.TrimPrefix(key, envPrefix))
		if dotted, ok := byEnvName[name]; ok {
			return dotted, value
		}
		return strings.ReplaceAll(name, "_", "."), value
	}
}
