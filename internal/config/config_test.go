package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Helper to clear all config-related env vars
func clearEnv(t *testing.T) {
	t.Helper()
	envVars := []string{
		"STRIDE_CONFIG_PATH",
		"STRIDE_WORKBOOK",
		"STRIDE_LOG_LEVEL",
		"STRIDE_LOG_FORMAT",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	// Point at a config file that does not exist so defaults apply.
	os.Setenv("STRIDE_CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))
	defer os.Unsetenv("STRIDE_CONFIG_PATH")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Workbook.Path != DefaultWorkbookName {
		t.Errorf("Workbook.Path = %q, want %q", cfg.Workbook.Path, DefaultWorkbookName)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, "text")
	}
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "stride.yaml")
	yamlContent := `
workbook:
  path: /tmp/planner.xlsx
log:
  level: debug
  format: json
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatal(err)
	}

	os.Setenv("STRIDE_CONFIG_PATH", configPath)
	defer os.Unsetenv("STRIDE_CONFIG_PATH")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Workbook.Path != "/tmp/planner.xlsx" {
		t.Errorf("Workbook.Path = %q, want %q", cfg.Workbook.Path, "/tmp/planner.xlsx")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, "json")
	}
}

func TestLoad_EnvVarOverridesYAML(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "stride.yaml")
	yamlContent := `
workbook:
  path: /tmp/from-yaml.xlsx
log:
  level: warn
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatal(err)
	}

	os.Setenv("STRIDE_CONFIG_PATH", configPath)
	os.Setenv("STRIDE_WORKBOOK", "/tmp/from-env.xlsx")
	os.Setenv("STRIDE_LOG_LEVEL", "error")
	defer clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Workbook.Path != "/tmp/from-env.xlsx" {
		t.Errorf("Workbook.Path = %q, want env override", cfg.Workbook.Path)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "error")
	}
}

func TestLoad_PartialYAMLKeepsDefaults(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "stride.yaml")
	if err := os.WriteFile(configPath, []byte("log:\n  level: debug\n"), 0644); err != nil {
		t.Fatal(err)
	}

	os.Setenv("STRIDE_CONFIG_PATH", configPath)
	defer os.Unsetenv("STRIDE_CONFIG_PATH")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Workbook.Path != DefaultWorkbookName {
		t.Errorf("Workbook.Path = %q, want default %q", cfg.Workbook.Path, DefaultWorkbookName)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "stride.yaml")
	if err := os.WriteFile(configPath, []byte("log: [not a mapping"), 0644); err != nil {
		t.Fatal(err)
	}

	os.Setenv("STRIDE_CONFIG_PATH", configPath)
	defer os.Unsetenv("STRIDE_CONFIG_PATH")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail on malformed YAML")
	}
}

func TestLoad_RejectsBadLogLevel(t *testing.T) {
	clearEnv(t)
	os.Setenv("STRIDE_CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))
	os.Setenv("STRIDE_LOG_LEVEL", "verbose")
	defer clearEnv(t)

	_, err := Load()
	if err == nil {
		t.Fatal("Load() should reject unknown log level")
	}
	if !strings.Contains(err.Error(), "verbose") {
		t.Errorf("error should name the bad level, got: %v", err)
	}
}

func TestLoad_RejectsBadLogFormat(t *testing.T) {
	clearEnv(t)
	os.Setenv("STRIDE_CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))
	os.Setenv("STRIDE_LOG_FORMAT", "xml")
	defer clearEnv(t)

	if _, err := Load(); err == nil {
		t.Fatal("Load() should reject unknown log format")
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	clearEnv(t)

	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("LoadFromFile() should fail when the file is missing")
	}
}

func TestLoadFromFile_Explicit(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(configPath, []byte("workbook:\n  path: goals.xlsx\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if cfg.Workbook.Path != "goals.xlsx" {
		t.Errorf("Workbook.Path = %q, want %q", cfg.Workbook.Path, "goals.xlsx")
	}
}

func TestLoad_RejectsBlankWorkbookPath(t *testing.T) {
	clearEnv(t)

	configPath := filepath.Join(t.TempDir(), "stride.yaml")
	if err := os.WriteFile(configPath, []byte("workbook:\n  path: \"  \"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	os.Setenv("STRIDE_CONFIG_PATH", configPath)
	defer os.Unsetenv("STRIDE_CONFIG_PATH")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should reject a blank workbook path")
	}
}
