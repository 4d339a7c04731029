package cfg

import (
	"testing"
	"time"
)

func TestGetVersion(t *testing.T) {
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}

	old := Version
	Version = ""
	defer func() { Version = old }()

	if GetVersion() != "unknown" {
		t.Errorf("Expected 'unknown' for empty version, got '%s'", GetVersion())
	}
}

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs([]string{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.Source != "sample" {
		t.Errorf("Expected source 'sample', got '%s'", cfg.Source)
	}
	if cfg.Port != "8080" {
		t.Errorf("Expected port '8080', got '%s'", cfg.Port)
	}
	if cfg.FetchTimeout != 30*time.Second {
		t.Errorf("Expected fetch timeout 30s, got %v", cfg.FetchTimeout)
	}
	if cfg.PreviewLength != 150 {
		t.Errorf("Expected preview length 150, got %d", cfg.PreviewLength)
	}
	if cfg.RateLimit != 0 {
		t.Errorf("Expected rate limiting disabled, got %v", cfg.RateLimit)
	}
	if Get() != cfg {
		t.Error("Expected Get to return the loaded configuration")
	}
}

func TestLoadArgsFlags(t *testing.T) {
	cfg, err := LoadArgs([]string{
		"--source", "file",
		"--source-path", "./posts.yml",
		"--port", "9090",
		"--rate-limit", "5",
		"--preview-length", "80",
		"--debug",
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.Source != "file" {
		t.Errorf("Expected source 'file', got '%s'", cfg.Source)
	}
	if cfg.SourcePath != "./posts.yml" {
		t.Errorf("Expected source path './posts.yml', got '%s'", cfg.SourcePath)
	}
	if cfg.Port != "9090" {
		t.Errorf("Expected port '9090', got '%s'", cfg.Port)
	}
	if cfg.RateLimit != 5 {
		t.Errorf("Expected rate limit 5, got %v", cfg.RateLimit)
	}
	if cfg.PreviewLength != 80 {
		t.Errorf("Expected preview length 80, got %d", cfg.PreviewLength)
	}
	if !cfg.Debug {
		t.Error("Expected debug to be enabled")
	}
}

func TestLoadArgsEnvironment(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("API_ACCESS_KEY", "secret")

	cfg, err := LoadArgs([]string{})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if cfg.Port != "7070" {
		t.Errorf("Expected port '7070' from environment, got '%s'", cfg.Port)
	}
	if cfg.APIAccessKey != "secret" {
		t.Errorf("Expected API key from environment, got '%s'", cfg.APIAccessKey)
	}
}

func TestLoadArgsInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown source", []string{"--source", "postgres"}},
		{"file without path", []string{"--source", "file"}},
		{"negative preview", []string{"--preview-length=-1"}},
		{"negative rate", []string{"--rate-limit=-2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadArgs(tt.args); err == nil {
				t.Errorf("Expected error for %v", tt.args)
			}
		})
	}
}
