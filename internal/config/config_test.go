// ABOUTME: Tests for vidafit configuration management.
// ABOUTME: Covers load, save, defaults, backend selection, and path expansion.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestGetBackendDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetBackend(); got != "charm" {
		t.Errorf("GetBackend() = %q, want %q", got, "charm")
	}
}

func TestGetBackendExplicit(t *testing.T) {
	cfg := &Config{Backend: "file"}
	if got := cfg.GetBackend(); got != "file" {
		t.Errorf("GetBackend() = %q, want %q", got, "file")
	}
}

func TestOpenStoreUnknownBackend(t *testing.T) {
	cfg := &Config{Backend: "postgres"}
	if _, err := cfg.OpenStore(); err == nil {
		t.Error("OpenStore() with unknown backend did not error")
	}
}

func TestOpenStoreFileBackend(t *testing.T) {
	cfg := &Config{Backend: "file", DataDir: t.TempDir()}
	store, err := cfg.OpenStore()
	if err != nil {
		t.Fatalf("OpenStore() error: %v", err)
	}
	defer store.Close()

	b, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if b == nil {
		t.Error("file backend returned nil bundle")
	}
}

func TestGetDataDirDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetDataDir(); got == "" {
		t.Error("GetDataDir() returned empty string")
	}
}

func TestGetDataDirExplicit(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/vidafit-test"}
	if got := cfg.GetDataDir(); got != "/tmp/vidafit-test" {
		t.Errorf("GetDataDir() = %q, want %q", got, "/tmp/vidafit-test")
	}
}

func TestExpandPathEmpty(t *testing.T) {
	if got := ExpandPath(""); got != "" {
		t.Errorf("ExpandPath(\"\") = %q, want %q", got, "")
	}
}

func TestExpandPathAbsolute(t *testing.T) {
	if got := ExpandPath("/tmp/foo"); got != "/tmp/foo" {
		t.Errorf("ExpandPath(\"/tmp/foo\") = %q, want %q", got, "/tmp/foo")
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, _ := os.UserHomeDir()
	if got := ExpandPath("~"); got != home {
		t.Errorf("ExpandPath(\"~\") = %q, want %q", got, home)
	}
}

func TestExpandPathTildeSlash(t *testing.T) {
	home, _ := os.UserHomeDir()
	got := ExpandPath("~/data/vidafit")
	want := filepath.Join(home, "data/vidafit")
	if got != want {
		t.Errorf("ExpandPath(\"~/data/vidafit\") = %q, want %q", got, want)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadFrom() on missing file errored: %v", err)
	}
	if cfg.Backend != "" {
		t.Errorf("missing file did not yield defaults: %+v", cfg)
	}
}

func TestLoadFromInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{bad"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() on invalid JSON did not error")
	}
}

func TestSaveToAndLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := &Config{Backend: "file", DataDir: "~/vidafit", Model: "gemini-2.0-flash"}

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	// Saved file is valid JSON with the expected fields.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("saved config is not valid JSON: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if loaded.Backend != "file" || loaded.Model != "gemini-2.0-flash" {
		t.Errorf("roundtrip lost fields: %+v", loaded)
	}
}

func TestGeminiAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("API_KEY", "")
	if _, err := GeminiAPIKey(); err == nil {
		t.Error("GeminiAPIKey() with no env did not error")
	}

	t.Setenv("API_KEY", "fallback-key")
	key, err := GeminiAPIKey()
	if err != nil {
		t.Fatalf("GeminiAPIKey() error: %v", err)
	}
	if key != "fallback-key" {
		t.Errorf("key = %q, want fallback-key", key)
	}

	t.Setenv("GEMINI_API_KEY", "primary-key")
	key, _ = GeminiAPIKey()
	if key != "primary-key" {
		t.Errorf("key = %q, want GEMINI_API_KEY to take precedence", key)
	}
}
