package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ProfilePath != "profile.json" {
		t.Errorf("expected default profile %q, got %q", "profile.json", cfg.ProfilePath)
	}
	if cfg.OutputDir != "dist" {
		t.Errorf("expected default output_dir %q, got %q", "dist", cfg.OutputDir)
	}
	if cfg.Serve.Port != 4173 {
		t.Errorf("expected default serve.port 4173, got %d", cfg.Serve.Port)
	}
	if !cfg.Serve.Watch {
		t.Error("expected serve.watch enabled by default")
	}
	if cfg.Assets.MaxDimension != 400 {
		t.Errorf("expected default assets.max_dimension 400, got %d", cfg.Assets.MaxDimension)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.linkforge.yml")

	original := DefaultConfig()
	original.ProfilePath = "pages/me.json"
	original.OutputDir = "public"
	original.Serve.Port = 9000
	original.Assets.Include = []string{"img/**/*.png", "img/**/*.jpg"}
	original.Assets.TargetKB = 200

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.ProfilePath != original.ProfilePath {
		t.Errorf("profile: got %q, want %q", loaded.ProfilePath, original.ProfilePath)
	}
	if loaded.OutputDir != original.OutputDir {
		t.Errorf("output_dir: got %q, want %q", loaded.OutputDir, original.OutputDir)
	}
	if loaded.Serve.Port != original.Serve.Port {
		t.Errorf("serve.port: got %d, want %d", loaded.Serve.Port, original.Serve.Port)
	}
	if loaded.Assets.TargetKB != original.Assets.TargetKB {
		t.Errorf("assets.target_kb: got %d, want %d", loaded.Assets.TargetKB, original.Assets.TargetKB)
	}
	if len(loaded.Assets.Include) != len(original.Assets.Include) {
		t.Errorf("assets.include length: got %d, want %d", len(loaded.Assets.Include), len(original.Assets.Include))
	}
	for i, v := range loaded.Assets.Include {
		if v != original.Assets.Include[i] {
			t.Errorf("assets.include[%d]: got %q, want %q", i, v, original.Assets.Include[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.OutputDir != "dist" {
		t.Errorf("expected default output_dir, got %q", cfg.OutputDir)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	os.Setenv("LINKFORGE_OUTPUT_DIR", "elsewhere")
	defer os.Unsetenv("LINKFORGE_OUTPUT_DIR")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.OutputDir != "elsewhere" {
		t.Errorf("env override failed: got %q, want %q", loaded.OutputDir, "elsewhere")
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateEmptyProfile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ProfilePath = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty profile")
	}
}

func TestValidateEmptyOutputDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutputDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty output_dir")
	}
}

func TestValidatePortOutOfRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Serve.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for out-of-range port")
	}
}

func TestValidateBadAssets(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Assets.MaxDimension = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for zero max_dimension")
	}

	cfg = DefaultConfig()
	cfg.Assets.TargetKB = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for negative target_kb")
	}
}

func TestSuggestUsername(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Jane Doe", "janedoe"},
		{"  Alex  ", "alex"},
		{"Ω", "username"},
		{"a.b_c-d", "a.b_c-d"},
	}
	for _, tt := range tests {
		got := suggestUsername(tt.input)
		if got != tt.want {
			t.Errorf("suggestUsername(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
