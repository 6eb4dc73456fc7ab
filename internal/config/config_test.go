// Package config_test tests configuration loading, merging hierarchy, and environment variable overrides.
// Related: internal/config/config.go
// Tags: config, loading, merging, env-vars, json, precedence
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateHome points HOME at an empty temp dir so no real global config is read.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// TestLoad_Defaults tests that defaults are applied when no config files exist.
// NO t.Parallel() due to HOME changes.
func TestLoad_Defaults(t *testing.T) {
	isolateHome(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "text", cfg.Format)
	assert.False(t, cfg.NoColor)
	assert.False(t, cfg.ShowProgress)
	assert.False(t, cfg.FailOnWarnings)
	assert.Equal(t, "c4framework", cfg.IncludePrefix)
	assert.True(t, cfg.InjectEnabled)
	assert.True(t, cfg.AutoInclude)
}

func TestLoad_MissingLocalFileIsIgnored(t *testing.T) {
	isolateHome(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Format)
}

func TestLoad_LocalOverride(t *testing.T) {
	isolateHome(t)

	configPath := filepath.Join(t.TempDir(), ".c4validate.json")
	writeConfig(t, configPath, `{
		"format": "json",
		"fail_on_warnings": true,
		"include_prefix": "vendor/c4"
	}`)

	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.True(t, cfg.FailOnWarnings)
	assert.Equal(t, "vendor/c4", cfg.IncludePrefix)
}

func TestLoad_Precedence(t *testing.T) {
	home := isolateHome(t)

	writeConfig(t, filepath.Join(home, ".c4validate", "config.json"), `{"format": "yaml", "no_color": true}`)
	localPath := filepath.Join(t.TempDir(), "local.json")
	writeConfig(t, localPath, `{"format": "json"}`)

	cfg, err := Load(localPath)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format, "local overrides global")
	assert.True(t, cfg.NoColor, "global value survives when local does not set it")

	t.Setenv("C4VALIDATE_FORMAT", "TEXT")
	cfg, err = Load(localPath)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Format, "environment overrides files")
}

func TestLoad_EnvOverride(t *testing.T) {
	isolateHome(t)
	t.Setenv("C4VALIDATE_FAIL_ON_WARNINGS", "true")
	t.Setenv("C4VALIDATE_SHOW_PROGRESS", "true")
	t.Setenv("C4VALIDATE_AUTO_INCLUDE", "false")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.FailOnWarnings)
	assert.True(t, cfg.ShowProgress)
	assert.False(t, cfg.AutoInclude)
}

func TestLoad_InvalidFormat(t *testing.T) {
	isolateHome(t)

	configPath := filepath.Join(t.TempDir(), "bad.json")
	writeConfig(t, configPath, `{"format": "xml"}`)

	_, err := Load(configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field 'format'")
	assert.Contains(t, err.Error(), "must be one of: text, json, yaml")
}

func TestLoad_EmptyIncludePrefix(t *testing.T) {
	isolateHome(t)
	t.Setenv("C4VALIDATE_INCLUDE_PREFIX", "")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field 'include_prefix': is required")
}

func TestLoad_MalformedJSON(t *testing.T) {
	isolateHome(t)

	configPath := filepath.Join(t.TempDir(), "broken.json")
	writeConfig(t, configPath, "{\n  \"format\": \"json\",\n}\n")

	_, err := Load(configPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load local config")
	assert.Contains(t, err.Error(), "broken.json:3:")
}

func TestEnvTransform(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "fail_on_warnings", envTransform("C4VALIDATE_FAIL_ON_WARNINGS"))
	assert.Equal(t, "format", envTransform("C4VALIDATE_FORMAT"))
}

func TestGlobalPath(t *testing.T) {
	home := isolateHome(t)

	path, err := GlobalPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".c4validate", "config.json"), path)
}
