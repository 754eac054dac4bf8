// Package soundtrack plays an optional audio file underneath the splash.
package soundtrack

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

var ErrUnsupported = errors.New("soundtrack: unsupported file type")

// Decode opens path and picks a decoder by extension. The caller owns the
// returned streamer and must Close it.
func Decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	var decode func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		decode = func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(f) }
	case ".mp3":
		decode = func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return mp3.Decode(f) }
	case ".flac":
		decode = func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return flac.Decode(f) }
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupported, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("soundtrack: %w", err)
	}
	streamer, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, fmt.Errorf("soundtrack: decode %s: %w", path, err)
	}
	// the decoders close the underlying file along with the streamer
	return streamer, format, nil
}

// Player owns the speaker while the splash is on screen.
type Player struct {
	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
	format   beep.Format
	playing  bool
}

// Play decodes path and starts it on the speaker.
func Play(path string) (*Player, error) {
	streamer, format, err := Decode(path)
	if err != nil {
		return nil, err
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/20)); err != nil {
		_ = streamer.Close()
		return nil, fmt.Errorf("soundtrack: speaker init: %w", err)
	}

	p := &Player{streamer: streamer, format: format, playing: true}
	p.ctrl = &beep.Ctrl{Streamer: streamer}

	speaker.Play(beep.Seq(p.ctrl, beep.Callback(func() {
		slog.Debug("soundtrack finished", "path", path)
	})))

	length := format.SampleRate.D(streamer.Len())
	slog.Info("soundtrack playing", "path", path, "length", length.Round(time.Second))
	return p, nil
}

// SetPaused pauses or resumes playback.
func (p *Player) SetPaused(paused bool) {
	if p == nil || !p.playing {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = paused
	speaker.Unlock()
}

// Stop ends playback and releases the file. Safe to call more than once.
func (p *Player) Stop() {
	if p == nil || !p.playing {
		return
	}
	p.playing = false
	speaker.Clear()
	if err := p.streamer.Close(); err != nil {
		slog.Warn("soundtrack close failed", "error", err)
	}
}
