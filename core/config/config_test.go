// File: config_test.go
// Title: Configuration Tests
// Description: Tests for configuration loading, format detection,
//              environment variable overrides, and file discovery.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial test implementation

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoad_TOML(t *testing.T) {
	path := writeTempConfig(t, "config.toml", `
[log]
level = "debug"
format = "json"

[netrc]
file = "/tmp/custom-netrc"
mask = true
timeout = 30
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cfg.GetString("log.level"); got != "debug" {
		t.Errorf("log.level = %q, want debug", got)
	}
	if got := cfg.GetString("netrc.file"); got != "/tmp/custom-netrc" {
		t.Errorf("netrc.file = %q, want /tmp/custom-netrc", got)
	}
	if !cfg.GetBool("netrc.mask") {
		t.Error("netrc.mask = false, want true")
	}
	if got := cfg.GetInt("netrc.timeout"); got != 30 {
		t.Errorf("netrc.timeout = %d, want 30", got)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", `
log:
  level: warn
netrc:
  mask: false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cfg.GetString("log.level"); got != "warn" {
		t.Errorf("log.level = %q, want warn", got)
	}
	if cfg.GetBool("netrc.mask", true) {
		t.Error("netrc.mask = true, want false")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err == nil {
		t.Fatal("Load() expected error for missing file")
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	if err == nil {
		t.Fatal("Load() expected error for empty path")
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := writeTempConfig(t, "config.toml", "this is [not valid toml")
	if _, err := Load(path); err == nil {
		t.Fatal("Load() expected parse error")
	}
}

func TestLoadFromString(t *testing.T) {
	cfg, err := LoadFromString(`level = "info"`, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}
	if got := cfg.GetString("level"); got != "info" {
		t.Errorf("level = %q, want info", got)
	}
}

func TestGetString_Default(t *testing.T) {
	cfg, err := LoadFromString("", FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}
	if got := cfg.GetString("missing.key", "fallback"); got != "fallback" {
		t.Errorf("GetString default = %q, want fallback", got)
	}
}

func TestEnvOverride(t *testing.T) {
	path := writeTempConfig(t, "config.toml", `
[log]
level = "info"
`)

	cfg, err := LoadWithOptions(path, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: "NETRCTEST",
	})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}

	t.Setenv("NETRCTEST_LOG_LEVEL", "error")

	if got := cfg.GetString("log.level"); got != "error" {
		t.Errorf("log.level = %q, want env override error", got)
	}
}

func TestDefaults(t *testing.T) {
	path := writeTempConfig(t, "config.toml", `existing = "file"`)

	cfg, err := LoadWithOptions(path, LoadOptions{
		Format: FormatAuto,
		Defaults: map[string]interface{}{
			"existing": "default",
			"extra":    "default",
		},
	})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}

	if got := cfg.GetString("existing"); got != "file" {
		t.Errorf("existing = %q, want file value to win", got)
	}
	if got := cfg.GetString("extra"); got != "default" {
		t.Errorf("extra = %q, want default", got)
	}
}

func TestSetAndHas(t *testing.T) {
	cfg, err := LoadFromString("", FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	if cfg.Has("nested.key") {
		t.Error("Has() = true before Set")
	}
	cfg.Set("nested.key", "value")
	if !cfg.Has("nested.key") {
		t.Error("Has() = false after Set")
	}
	if got := cfg.GetString("nested.key"); got != "value" {
		t.Errorf("nested.key = %q, want value", got)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "netrc.toml")
	if err := os.WriteFile(path, []byte(`[log]
level = "debug"
`), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Discover(DiscoveryOptions{
		Paths:     []string{dir},
		Filenames: []string{"netrc"},
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if got := cfg.GetString("log.level"); got != "debug" {
		t.Errorf("log.level = %q, want debug", got)
	}
	if cfg.FilePath() != path {
		t.Errorf("FilePath() = %q, want %q", cfg.FilePath(), path)
	}
}

func TestDiscover_NotFoundOptional(t *testing.T) {
	cfg, err := Discover(DiscoveryOptions{
		Paths:    []string{t.TempDir()},
		Required: false,
	})
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if cfg == nil {
		t.Fatal("Discover() returned nil config")
	}
}

func TestDiscover_NotFoundRequired(t *testing.T) {
	_, err := Discover(DiscoveryOptions{
		Paths:    []string{t.TempDir()},
		Required: true,
	})
	if err == nil {
		t.Fatal("Discover() expected error when required")
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte("a: 1\n"), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	found, err := FindConfigFile(DiscoveryOptions{
		Paths:      []string{dir},
		Filenames:  []string{"config"},
		Extensions: []string{".toml", ".yaml", ".yml"},
	})
	if err != nil {
		t.Fatalf("FindConfigFile() error = %v", err)
	}
	if found != path {
		t.Errorf("FindConfigFile() = %q, want %q", found, path)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"config.toml", FormatTOML},
		{"config.yaml", FormatYAML},
		{"config.yml", FormatYAML},
		{"config.conf", FormatTOML},
	}

	for _, tt := range tests {
		if got := detectFormat(tt.path); got != tt.want {
			t.Errorf("detectFormat(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
