// Package config loads c4validate settings from defaults, config files and
// the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable the tool reads.
const EnvPrefix = "C4VALIDATE_"

// DefaultLocalPath is the project-level config file looked up by default.
const DefaultLocalPath = ".c4validate.json"

// Configuration represents the c4validate CLI tool configuration
type Configuration struct {
	Format         string `koanf:"format" validate:"required,oneof=text json yaml"`
	NoColor        bool   `koanf:"no_color"`
	ShowProgress   bool   `koanf:"show_progress"`    // Spinner on stderr while checks run
	FailOnWarnings bool   `koanf:"fail_on_warnings"` // Exit 1 on warnings as well as errors
	IncludePrefix  string `koanf:"include_prefix" validate:"required"`
	InjectEnabled  bool   `koanf:"inject_enabled"`
	AutoInclude    bool   `koanf:"auto_include"`
}

// GlobalPath returns the user-level config file location.
func GlobalPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".c4validate", "config.json"), nil
}

// Load loads configuration from global, local, and environment sources
// Priority: Environment variables > Local config > Global config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	k := defaultKoanf()

	if globalPath, err := GlobalPath(); err == nil {
		if err := loadFile(k, globalPath); err != nil {
			return nil, fmt.Errorf("failed to load global config: %w", err)
		}
	}

	if localConfigPath != "" {
		if err := loadFile(k, localConfigPath); err != nil {
			return nil, fmt.Errorf("failed to load local config: %w", err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))

	if err := ValidateConfigValues(&cfg, sourceLabel(localConfigPath)); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Default returns the built-in configuration without reading any file or
// environment variable.
func Default() *Configuration {
	var cfg Configuration
	if err := defaultKoanf().Unmarshal("", &cfg); err != nil {
		panic(fmt.Sprintf("config: defaults do not unmarshal: %v", err))
	}
	return &cfg
}

func defaultKoanf() *koanf.Koanf {
	k := koanf.New(".")
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
	return k
}

// loadFile merges a JSON config file into k. A missing file is skipped.
func loadFile(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := ValidateJSONSyntax(path); err != nil {
		return err
	}
	return k.Load(file.Provider(path), json.Parser())
}

// envTransform converts environment variable names to config keys
// Example: C4VALIDATE_FAIL_ON_WARNINGS -> fail_on_warnings
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

func sourceLabel(localConfigPath string) string {
	if localConfigPath == "" {
		return "config"
	}
	return localConfigPath
}

var validate = newValidator()

// newValidator reports field errors by their config key rather than the Go field name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("koanf"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}
