// Command spiral-tty plays the splash animation in a terminal.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/spiral-splash/internal/config"
	"github.com/iburimskiy/spiral-splash/internal/spiral"
	"github.com/iburimskiy/spiral-splash/internal/splash"
	"github.com/iburimskiy/spiral-splash/internal/tty"
)

func main() {
	cfg := config.Load()

	stars := flag.Int("stars", cfg.Stars, "number of stars")
	fps := flag.Int("fps", 30, "frames per second")
	duration := flag.Duration("duration", cfg.SplashDuration, "splash length before exiting")
	loop := flag.Bool("loop", false, "keep animating until q is pressed")
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	// stderr belongs to the terminal UI
	handler := slog.DiscardHandler
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		handler = slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.LogLevel})
	}
	slog.SetDefault(slog.New(handler))

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		os.Exit(1)
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.HideCursor()
	screen.Clear()

	anim := spiral.DefaultOptions()
	anim.Stars = *stars

	timing := splash.DefaultTiming()
	timing.Duration = *duration

	runErr := tty.Run(screen, tty.Options{
		Animation: anim,
		Timing:    timing,
		FPS:       *fps,
		Loop:      *loop,
	})
	screen.Fini()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "%v\n", runErr)
		os.Exit(1)
	}
}
