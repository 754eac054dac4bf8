package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/spiral-splash/internal/app"
	"github.com/iburimskiy/spiral-splash/internal/config"
	"github.com/iburimskiy/spiral-splash/internal/splash"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("Portfolio - Enter: skip, Space: pause, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// one process is one browsing session
	g := app.New(cfg, splash.NewMemorySession())
	g.Mount()
	defer g.Close()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("game loop failed", "error", err)
		g.Close()
		os.Exit(1)
	}
}
