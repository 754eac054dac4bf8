package config

import (
	"log/slog"
	"testing"
	"time"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv(envMap(nil))
	if cfg != Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
	if cfg.SplashDuration != 15*time.Second {
		t.Errorf("Expected 15s splash, got %v", cfg.SplashDuration)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	cfg := FromEnv(envMap(map[string]string{
		"SPLASH_WINDOW_WIDTH":  "640",
		"SPLASH_WINDOW_HEIGHT": "480",
		"SPLASH_DURATION":      "3s",
		"SPLASH_STARS":         "50",
		"SPLASH_SKIP_ALWAYS":   "true",
		"SPLASH_SOUNDTRACK":    "intro.mp3",
		"SPLASH_LOG_LEVEL":     "debug",
	}))

	if cfg.WindowWidth != 640 || cfg.WindowHeight != 480 {
		t.Errorf("Expected 640x480, got %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.SplashDuration != 3*time.Second {
		t.Errorf("Expected 3s, got %v", cfg.SplashDuration)
	}
	if cfg.Stars != 50 {
		t.Errorf("Expected 50 stars, got %d", cfg.Stars)
	}
	if !cfg.SkipAlways {
		t.Error("Expected SkipAlways")
	}
	if cfg.Soundtrack != "intro.mp3" {
		t.Errorf("Expected soundtrack path, got %q", cfg.Soundtrack)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("Expected debug level, got %v", cfg.LogLevel)
	}
}

func TestFromEnvIgnoresMalformed(t *testing.T) {
	cfg := FromEnv(envMap(map[string]string{
		"SPLASH_WINDOW_WIDTH": "wide",
		"SPLASH_DURATION":     "-2s",
		"SPLASH_STARS":        "-1",
		"SPLASH_SKIP_ALWAYS":  "maybe",
		"SPLASH_LOG_LEVEL":    "loud",
	}))
	if cfg != Default() {
		t.Errorf("Expected malformed values to be ignored, got %+v", cfg)
	}
}
