// FileLens - Media Filename Analysis Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filelens

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Backend.URL != "http://localhost:8001" {
		t.Errorf("Backend.URL = %q, want http://localhost:8001", cfg.Backend.URL)
	}
	if cfg.Backend.Timeout != 30*time.Second {
		t.Errorf("Backend.Timeout = %v, want 30s", cfg.Backend.Timeout)
	}
	if cfg.Backend.Breaker.Enabled {
		t.Error("Backend.Breaker.Enabled should be false by default")
	}
	if cfg.Controller.Ordering != OrderingLastWriteWins {
		t.Errorf("Controller.Ordering = %q, want %q", cfg.Controller.Ordering, OrderingLastWriteWins)
	}
	if cfg.Server.Port != 8787 {
		t.Errorf("Server.Port = %d, want 8787", cfg.Server.Port)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got: %v", err)
	}
}

// clearEnv blanks every mapped variable so the host environment cannot leak in
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(ConfigPathEnvVar, "")
	for key := range envMappings {
		t.Setenv(strings.ToUpper(key), "")
		os.Unsetenv(strings.ToUpper(key))
	}
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Backend.URL != "http://localhost:8001" {
		t.Errorf("Backend.URL = %q", cfg.Backend.URL)
	}
	if cfg.Server.Addr() != "127.0.0.1:8787" {
		t.Errorf("Server.Addr() = %q", cfg.Server.Addr())
	}
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	t.Setenv("BACKEND_URL", "https://lens.example.com/")
	t.Setenv("BACKEND_TIMEOUT", "5s")
	t.Setenv("FILELENS_ORDERING", "latest-issued")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("BREAKER_ENABLED", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Backend.URL != "https://lens.example.com/" {
		t.Errorf("Backend.URL = %q", cfg.Backend.URL)
	}
	if cfg.Backend.AnalyzeURL() != "https://lens.example.com/api/analyze-file" {
		t.Errorf("AnalyzeURL() = %q", cfg.Backend.AnalyzeURL())
	}
	if cfg.Backend.StatsURL() != "https://lens.example.com/api/stats" {
		t.Errorf("StatsURL() = %q", cfg.Backend.StatsURL())
	}
	if cfg.Backend.Timeout != 5*time.Second {
		t.Errorf("Backend.Timeout = %v, want 5s", cfg.Backend.Timeout)
	}
	if cfg.Controller.Ordering != OrderingLatestIssued {
		t.Errorf("Controller.Ordering = %q", cfg.Controller.Ordering)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if len(cfg.Server.CORSOrigins) != 2 || cfg.Server.CORSOrigins[1] != "http://b.test" {
		t.Errorf("Server.CORSOrigins = %v", cfg.Server.CORSOrigins)
	}
	if !cfg.Backend.Breaker.Enabled {
		t.Error("Backend.Breaker.Enabled should be true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
}

func TestLoadFile_FileThenEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "custom.yaml")
	content := `backend:
  url: http://file.test:9001
  timeout: 12s
server:
  port: 7000
  cors_origins:
    - http://ui.test
logging:
  level: warn
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("HTTP_PORT", "7100")

	cfg, err := LoadFile(path, nil)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Backend.URL != "http://file.test:9001" {
		t.Errorf("Backend.URL = %q, want value from file", cfg.Backend.URL)
	}
	if cfg.Backend.Timeout != 12*time.Second {
		t.Errorf("Backend.Timeout = %v, want 12s", cfg.Backend.Timeout)
	}
	if cfg.Server.Port != 7100 {
		t.Errorf("Server.Port = %d, env should override file", cfg.Server.Port)
	}
	if len(cfg.Server.CORSOrigins) != 1 || cfg.Server.CORSOrigins[0] != "http://ui.test" {
		t.Errorf("Server.CORSOrigins = %v", cfg.Server.CORSOrigins)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	clearEnv(t)
	if _, err := LoadFile("/non/existent/filelens.yaml", nil); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoadFile_OverridesBeatEnvBeforeValidation(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("BACKEND_URL", "ftp://broken.test")
	t.Setenv("HTTP_PORT", "7100")

	if _, err := LoadFile("", nil); err == nil {
		t.Fatal("expected the bad BACKEND_URL to fail validation without overrides")
	}

	cfg, err := LoadFile("", map[string]interface{}{
		"backend.url":   "http://flag.test:9000",
		"logging.level": "error",
		"server.port":   "9090",
	})
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Backend.URL != "http://flag.test:9000" {
		t.Errorf("Backend.URL = %q, want override", cfg.Backend.URL)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want override", cfg.Logging.Level)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want override over env", cfg.Server.Port)
	}

	if _, err := LoadFile("", map[string]interface{}{"logging.level": "loud"}); err == nil {
		t.Error("an invalid override should fail validation")
	}
}

func TestFindConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)

	if got := findConfigFile(); got != "" {
		t.Errorf("findConfigFile() = %q, want empty", got)
	}

	if err := os.WriteFile(filepath.Join(dir, "filelens.yaml"), []byte("logging:\n  level: info\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if got := findConfigFile(); got != "filelens.yaml" {
		t.Errorf("findConfigFile() = %q, want filelens.yaml", got)
	}

	custom := filepath.Join(dir, "other.yaml")
	if err := os.WriteFile(custom, []byte("{}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, custom)
	if got := findConfigFile(); got != custom {
		t.Errorf("findConfigFile() = %q, want CONFIG_PATH %q", got, custom)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"BACKEND_URL", "backend.url"},
		{"FILELENS_BACKEND_URL", "backend.url"},
		{"HTTP_PORT", "server.port"},
		{"FILELENS_ORDERING", "controller.ordering"},
		{"BREAKER_FAILURE_THRESHOLD", "backend.breaker.failure_threshold"},
		{"HOME", ""},
		{"PATH", ""},
	}
	for _, tt := range tests {
		if got := envTransformFunc(tt.in); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+): it changes the working
// directory for the duration of the test and restores it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir(%s): %v", dir, err)
	}
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("Chdir(%s): %v", wd, err)
		}
	})
}
