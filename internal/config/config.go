package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	WindowWidth  = 1280
	WindowHeight = 800

	// Skip button, anchored to the top right corner
	SkipButtonWidth  = 96
	SkipButtonHeight = 32
	SkipButtonMargin = 32

	// Splash timing
	SplashDuration = 15 * time.Second
	HandoffDelay   = 100 * time.Millisecond

	// Session flag written once the splash has played
	SessionFlagKey   = "hasSeenSplash"
	SessionFlagValue = "true"

	// Animation parameters
	StarCount       = 2000
	TrailLength     = 80
	CycleDuration   = 15 * time.Second
	RandomSeed      = 1234
	ChangeEventTime = 0.32
	CameraZ         = -400
	CameraTravel    = 3400
	StartDotYOffset = 28
	ViewZoom        = 100

	// Dock
	DockItemSize    = 40
	DockItemGap     = 12
	DockMagnified   = 64
	DockMagnifyDist = 150
	DockBottomGap   = 16
)

// Config holds the values that can be overridden from the environment.
type Config struct {
	WindowWidth    int
	WindowHeight   int
	SplashDuration time.Duration
	Stars          int
	Soundtrack     string
	SkipAlways     bool
	LogLevel       slog.Level
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		WindowWidth:    WindowWidth,
		WindowHeight:   WindowHeight,
		SplashDuration: SplashDuration,
		Stars:          StarCount,
		LogLevel:       slog.LevelInfo,
	}
}

// Load reads an optional .env file from the working directory and then
// applies SPLASH_* environment variables on top of Default. Malformed
// values are logged and ignored.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to read .env", "error", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) Config {
	cfg := Default()

	if v := getenv("SPLASH_WINDOW_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.WindowWidth = n
		} else {
			slog.Warn("ignoring SPLASH_WINDOW_WIDTH", "value", v)
		}
	}
	if v := getenv("SPLASH_WINDOW_HEIGHT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.WindowHeight = n
		} else {
			slog.Warn("ignoring SPLASH_WINDOW_HEIGHT", "value", v)
		}
	}
	if v := getenv("SPLASH_DURATION"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.SplashDuration = d
		} else {
			slog.Warn("ignoring SPLASH_DURATION", "value", v)
		}
	}
	if v := getenv("SPLASH_STARS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Stars = n
		} else {
			slog.Warn("ignoring SPLASH_STARS", "value", v)
		}
	}
	if v := getenv("SPLASH_SKIP_ALWAYS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.SkipAlways = b
		} else {
			slog.Warn("ignoring SPLASH_SKIP_ALWAYS", "value", v)
		}
	}
	cfg.Soundtrack = getenv("SPLASH_SOUNDTRACK")
	if v := getenv("SPLASH_LOG_LEVEL"); v != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(strings.ToUpper(v))); err == nil {
			cfg.LogLevel = lvl
		} else {
			slog.Warn("ignoring SPLASH_LOG_LEVEL", "value", v)
		}
	}
	return cfg
}
