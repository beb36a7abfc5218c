package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var envKeys = []string{
	"LOG_LEVEL", "LOG_FORMAT", "TRAWLER_SEED", "TRAWLER_MAP",
	"TRAWLER_LEAKS", "TRAWLER_WEAK_HULL", "TRAWLER_AUDIO", "TRAWLER_LANG",
}

// clearEnv blanks every key so values from the host don't leak into tests.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("log settings = %q/%q, want info/text", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.MapFile != "trawler_hull.json" {
		t.Errorf("MapFile = %q", cfg.MapFile)
	}
	if !cfg.Leaks || cfg.WeakHull || !cfg.Audio {
		t.Errorf("flags = leaks:%v weak:%v audio:%v, want true/false/true", cfg.Leaks, cfg.WeakHull, cfg.Audio)
	}
	if cfg.Language != "en" {
		t.Errorf("Language = %q, want en", cfg.Language)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "trace")
	t.Setenv("TRAWLER_SEED", "42")
	t.Setenv("TRAWLER_LEAKS", "false")
	t.Setenv("TRAWLER_WEAK_HULL", "1")
	t.Setenv("TRAWLER_AUDIO", "0")
	t.Setenv("TRAWLER_LANG", "es")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}
	if cfg.LogLevel != "trace" {
		t.Errorf("LogLevel = %q, want trace", cfg.LogLevel)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.Leaks || !cfg.WeakHull || cfg.Audio {
		t.Errorf("flags = leaks:%v weak:%v audio:%v, want false/true/false", cfg.Leaks, cfg.WeakHull, cfg.Audio)
	}
	if cfg.Language != "es" {
		t.Errorf("Language = %q, want es", cfg.Language)
	}
}

func TestFromEnvInvalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"TRAWLER_SEED", "not-a-number"},
		{"TRAWLER_LEAKS", "sometimes"},
		{"TRAWLER_WEAK_HULL", "maybe"},
		{"TRAWLER_AUDIO", "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()
			if err == nil {
				t.Fatalf("FromEnv() with %s=%q should fail", tt.key, tt.value)
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Errorf("error %q should name %s", err, tt.key)
			}
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already set, even empty ones.
	os.Unsetenv("TRAWLER_SEED")
	os.Unsetenv("TRAWLER_WEAK_HULL")

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("TRAWLER_SEED=7\nTRAWLER_WEAK_HULL=true\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Unsetenv("TRAWLER_SEED")
		os.Unsetenv("TRAWLER_WEAK_HULL")
	})

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Seed != 7 || !cfg.WeakHull {
		t.Errorf("cfg = seed:%d weak:%v, want 7/true", cfg.Seed, cfg.WeakHull)
	}
}

func TestLoadMissingEnvFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
	}
}
