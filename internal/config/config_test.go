// ABOUTME: Tests for configuration loading
// ABOUTME: Covers defaults, environment overrides, and validation
package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ALERTSTORE_DB", "")
	t.Setenv("ALERTSTORE_AUTO_CREATE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DBPath == "" {
		t.Error("DBPath default is empty")
	}
	if !strings.HasSuffix(cfg.DBPath, "alerts.db") {
		t.Errorf("DBPath = %q, want default alerts.db path", cfg.DBPath)
	}
	if !cfg.AutoCreate {
		t.Error("AutoCreate should default to true")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ALERTSTORE_DB", "/tmp/custom-alerts.db")
	t.Setenv("ALERTSTORE_AUTO_CREATE", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DBPath != "/tmp/custom-alerts.db" {
		t.Errorf("DBPath = %q, want /tmp/custom-alerts.db", cfg.DBPath)
	}
	if cfg.AutoCreate {
		t.Error("AutoCreate should be false")
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"1", true},
		{"false", false},
		{"0", false},
		{"yes", false},
	}

	for _, tt := range tests {
		t.Setenv("ALERTSTORE_TEST_BOOL", tt.value)
		if got := getEnvBool("ALERTSTORE_TEST_BOOL", false); got != tt.want {
			t.Errorf("getEnvBool(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestValidateRejectsEmptyPath(t *testing.T) {
	cfg := &Config{DBPath: ""}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() succeeded on empty DBPath, want error")
	}
}
