// Package splash plays the intro animation once per session and then hands
// control to the next screen.
package splash

import (
	"log/slog"
	"time"

	"github.com/iburimskiy/spiral-splash/internal/config"
)

type Phase int

const (
	Pending Phase = iota
	Playing
	Completing // flag written, waiting out the hand-off delay
	Done
)

func (p Phase) String() string {
	switch p {
	case Pending:
		return "pending"
	case Playing:
		return "playing"
	case Completing:
		return "completing"
	case Done:
		return "done"
	}
	return "unknown"
}

type Timing struct {
	Duration     time.Duration
	HandoffDelay time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		Duration:     config.SplashDuration,
		HandoffDelay: config.HandoffDelay,
	}
}

// Sequencer is driven by frame time: Update must be called once per frame
// with the elapsed duration. All timers are counters, so Unmount cancels
// them simply by stopping further callbacks.
type Sequencer struct {
	store     SessionStore
	timing    Timing
	onHandoff func()

	phase     Phase
	elapsed   time.Duration
	handoffIn time.Duration
	unmounted bool
}

func NewSequencer(store SessionStore, timing Timing, onHandoff func()) *Sequencer {
	return &Sequencer{
		store:     store,
		timing:    timing,
		onHandoff: onHandoff,
	}
}

// Mount reads the session flag. When the splash was already seen the
// hand-off happens immediately and the returned phase is Done.
func (s *Sequencer) Mount() Phase {
	if s.phase != Pending || s.unmounted {
		return s.phase
	}
	if v, ok := s.store.Get(config.SessionFlagKey); ok && v == config.SessionFlagValue {
		slog.Info("splash already seen this session, skipping")
		s.finish()
		return s.phase
	}
	slog.Info("splash started", "duration", s.timing.Duration)
	s.phase = Playing
	return s.phase
}

func (s *Sequencer) Phase() Phase { return s.phase }

// Playing reports whether the animation should be ticking and drawn.
func (s *Sequencer) Playing() bool { return s.phase == Playing }

// ShowSkip reports whether the skip affordance is visible.
func (s *Sequencer) ShowSkip() bool { return s.phase == Playing && !s.unmounted }

// Elapsed is the playback time so far.
func (s *Sequencer) Elapsed() time.Duration { return s.elapsed }

// Skip completes playback early.
func (s *Sequencer) Skip() {
	if s.phase != Playing || s.unmounted {
		return
	}
	slog.Info("splash skipped", "elapsed", s.elapsed)
	s.complete()
}

func (s *Sequencer) Update(dt time.Duration) {
	if s.unmounted {
		return
	}
	switch s.phase {
	case Playing:
		s.elapsed += dt
		if s.elapsed >= s.timing.Duration {
			s.complete()
		}
	case Completing:
		s.handoffIn -= dt
		if s.handoffIn <= 0 {
			s.finish()
		}
	}
}

// Unmount cancels any pending transition. No hand-off fires afterwards.
func (s *Sequencer) Unmount() {
	s.unmounted = true
}

func (s *Sequencer) complete() {
	s.store.Set(config.SessionFlagKey, config.SessionFlagValue)
	s.phase = Completing
	s.handoffIn = s.timing.HandoffDelay
	if s.handoffIn <= 0 {
		s.finish()
	}
}

func (s *Sequencer) finish() {
	s.phase = Done
	slog.Info("handing off to dashboard")
	if s.onHandoff != nil {
		s.onHandoff()
	}
}
