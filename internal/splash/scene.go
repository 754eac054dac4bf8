package splash

import (
	"log/slog"
	"time"
)

// Animation is what the scene drives each frame. surface.Surface fits.
type Animation interface {
	Tick(dt time.Duration) bool
	Pause()
	Resume()
	Close()
}

// Scene couples a Sequencer with the animation it gates. The animation
// only receives ticks while the splash is on screen.
type Scene struct {
	seq    *Sequencer
	anim   Animation
	paused bool
	frames int
}

func NewScene(seq *Sequencer, anim Animation) *Scene {
	return &Scene{seq: seq, anim: anim}
}

func (s *Scene) Sequencer() *Sequencer { return s.seq }

// Mount starts the scene. When the flag is already set the animation is
// released before it ever draws.
func (s *Scene) Mount() {
	if s.seq.Mount() == Done {
		s.anim.Close()
	}
}

// Visible reports whether the splash should be drawn this frame.
func (s *Scene) Visible() bool {
	p := s.seq.Phase()
	return p == Playing || p == Completing
}

func (s *Scene) Update(dt time.Duration) {
	if s.paused || s.seq.unmounted {
		return
	}
	if s.Visible() && s.anim.Tick(dt) {
		s.frames++
	}
	s.seq.Update(dt)
	if s.seq.Phase() == Done {
		s.anim.Close()
	}
}

func (s *Scene) Paused() bool { return s.paused }

// TogglePause freezes both the animation and the splash timer.
func (s *Scene) TogglePause() {
	if !s.seq.Playing() {
		return
	}
	s.paused = !s.paused
	if s.paused {
		s.anim.Pause()
	} else {
		s.anim.Resume()
	}
	slog.Debug("splash pause toggled", "paused", s.paused)
}

func (s *Scene) Skip() {
	if s.paused {
		s.paused = false
		s.anim.Resume()
	}
	s.seq.Skip()
}

// Unmount cancels pending transitions and releases the animation.
func (s *Scene) Unmount() {
	s.seq.Unmount()
	s.anim.Close()
}

// Frames counts the animation frames drawn so far.
func (s *Scene) Frames() int { return s.frames }
