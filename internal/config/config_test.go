package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig_GetTestPath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name: "default path",
			config: &Config{
				ProjectPath: ".",
				TestPath:    ".",
				Flags:       Flags{},
			},
			expected: ".",
		},
		{
			name: "with test path flag",
			config: &Config{
				ProjectPath: "/project",
				TestPath:    ".",
				Flags: Flags{
					TestPath: "build/tests",
				},
			},
			expected: "/project/build/tests",
		},
		{
			name: "absolute test path",
			config: &Config{
				ProjectPath: "/project",
				TestPath:    ".",
				Flags: Flags{
					TestPath: "/absolute/path",
				},
			},
			expected: "/absolute/path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetTestPath()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}

	if len(cfg.PathsToIgnore) != len(DefaultPathsToIgnore) {
		t.Errorf("expected %d paths to ignore, got %d", len(DefaultPathsToIgnore), len(cfg.PathsToIgnore))
	}

	if len(cfg.AcceptedExitCodes) != 3 {
		t.Errorf("expected 3 accepted exit codes, got %d", len(cfg.AcceptedExitCodes))
	}

	if cfg.UseListContent {
		t.Error("hierarchical listing should be off by default")
	}
}

func TestConfig_LoadProjectFile(t *testing.T) {
	dir := t.TempDir()
	content := `
test_path: build/tests
accepted_exit_codes: [0, 200]
use_list_content: true
extra_args:
  - --catch_system_errors=no
`
	if err := os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg := New()
	cfg.ProjectPath = dir
	if err := cfg.LoadProjectFile(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.TestPath != "build/tests" {
		t.Errorf("expected test path from file, got %s", cfg.TestPath)
	}
	if len(cfg.AcceptedExitCodes) != 2 {
		t.Errorf("expected exit codes overridden, got %v", cfg.AcceptedExitCodes)
	}
	if !cfg.UseListContent {
		t.Error("expected hierarchical listing enabled")
	}
	if len(cfg.ExtraArgs) != 1 || cfg.ExtraArgs[0] != "--catch_system_errors=no" {
		t.Errorf("unexpected extra args: %v", cfg.ExtraArgs)
	}

	t.Run("missing file is not an error", func(t *testing.T) {
		cfg := New()
		cfg.ProjectPath = t.TempDir()
		if err := cfg.LoadProjectFile(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, DefaultConfigFile), []byte("test_path: [broken"), 0644); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}
		cfg := New()
		cfg.ProjectPath = dir
		if err := cfg.LoadProjectFile(); err == nil {
			t.Error("expected a parse error")
		}
	})
}

func TestConfig_GetOutputPath(t *testing.T) {
	cfg := New()
	cfg.ProjectPath = "/project"
	expected := filepath.Join("/project", DefaultOutputJSONDir, DefaultOutputJSONFile)
	if got := cfg.GetOutputPath(); got != expected {
		t.Errorf("expected %s, got %s", expected, got)
	}
}
