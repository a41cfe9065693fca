package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Error("missing file reported as existing")
	}
	if resolved == "" {
		t.Error("resolved path should be populated")
	}
	if cfg.Downloader.Binary != "yt-dlp" || cfg.Transcription.Model != "small" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.Storage.Backend != "files" {
		t.Errorf("storage backend = %q", cfg.Storage.Backend)
	}
}

func TestLoadOverridesAndNormalizes(t *testing.T) {
	path := writeConfig(t, `
[paths]
work_dir = "~/sync-work"
api_bind = "  0.0.0.0:9000  "

[transcription]
model = "large-v3"

[storage]
backend = "SQLite"
`)
	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Fatal("config file not found")
	}
	if strings.HasPrefix(cfg.Paths.WorkDir, "~") {
		t.Errorf("work_dir not expanded: %q", cfg.Paths.WorkDir)
	}
	if cfg.Paths.APIBind != "0.0.0.0:9000" {
		t.Errorf("api_bind = %q", cfg.Paths.APIBind)
	}
	if cfg.Transcription.Model != "large-v3" {
		t.Errorf("model = %q", cfg.Transcription.Model)
	}
	if cfg.Storage.Backend != "sqlite" {
		t.Errorf("backend = %q", cfg.Storage.Backend)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad bind", "[paths]\napi_bind = \"not-a-bind\"\n"},
		{"bad backend", "[storage]\nbackend = \"postgres\"\n"},
		{"bad log level", "[logging]\nlevel = \"verbose\"\n"},
		{"bad catalog url", "[catalog]\nenabled = true\nbase_url = \"nope\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, _, _, err := Load(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := writeConfig(t, "not toml [[[")
	if _, _, _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatal(err)
	}
	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Fatal("sample not found after write")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("sample config invalid: %v", err)
	}
}
