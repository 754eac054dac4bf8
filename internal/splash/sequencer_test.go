package splash

import (
	"testing"
	"time"

	"github.com/iburimskiy/spiral-splash/internal/config"
	"github.com/iburimskiy/spiral-splash/internal/spiral"
	"github.com/iburimskiy/spiral-splash/internal/spiral/spiraltest"
	"github.com/iburimskiy/spiral-splash/internal/surface"
)

const frame = time.Second / 60

type fakeAnimation struct {
	ticks, pauses, resumes, closes int
	paused                         bool
}

func (a *fakeAnimation) Tick(time.Duration) bool {
	if a.paused || a.closes > 0 {
		return false
	}
	a.ticks++
	return true
}
func (a *fakeAnimation) Pause()  { a.pauses++; a.paused = true }
func (a *fakeAnimation) Resume() { a.resumes++; a.paused = false }
func (a *fakeAnimation) Close()  { a.closes++ }

func flagSet(store SessionStore) bool {
	v, ok := store.Get(config.SessionFlagKey)
	return ok && v == config.SessionFlagValue
}

func newRecordedScene(t *testing.T, store SessionStore, handoffs *int) (*Scene, *spiraltest.Recorder) {
	t.Helper()
	var rec *spiraltest.Recorder
	opts := spiral.DefaultOptions()
	opts.Stars = 50
	surf := surface.New(func(px int, dpr float64) (*spiraltest.Recorder, error) {
		rec = spiraltest.NewRecorder()
		return rec, nil
	}, opts)
	if err := surf.Resize(800, 600, 1); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	seq := NewSequencer(store, DefaultTiming(), func() { *handoffs++ })
	return NewScene(seq, surf), rec
}

func TestSessionScenario(t *testing.T) {
	store := NewMemorySession()

	// first visit
	handoffs := 0
	scene, rec := newRecordedScene(t, store, &handoffs)
	scene.Mount()

	if !scene.Visible() {
		t.Fatal("Expected the splash to play on first visit")
	}
	if flagSet(store) {
		t.Fatal("Expected flag unset while playing")
	}

	for i := 0; i < 14*60; i++ {
		scene.Update(frame)
	}
	if flagSet(store) || handoffs != 0 {
		t.Fatal("Expected no completion before the full duration")
	}
	if scene.Frames() != 14*60 {
		t.Errorf("Expected %d frames, got %d", 14*60, scene.Frames())
	}
	if n := rec.Count(spiraltest.OpClear); n != scene.Frames() {
		t.Errorf("Expected one clear per frame, got %d for %d frames", n, scene.Frames())
	}

	for i := 0; i < 6*60; i++ {
		scene.Update(frame)
	}
	if !flagSet(store) {
		t.Error("Expected flag set after the full duration")
	}
	if handoffs != 1 {
		t.Errorf("Expected exactly one hand-off, got %d", handoffs)
	}
	if scene.Sequencer().Phase() != Done {
		t.Errorf("Expected done, got %v", scene.Sequencer().Phase())
	}

	// second visit in the same session
	handoffs = 0
	scene, rec = newRecordedScene(t, store, &handoffs)
	scene.Mount()

	if scene.Visible() {
		t.Error("Expected the splash to be skipped")
	}
	if handoffs != 1 {
		t.Errorf("Expected immediate hand-off, got %d", handoffs)
	}
	for i := 0; i < 60; i++ {
		scene.Update(frame)
	}
	if scene.Frames() != 0 || len(rec.Ops) != 0 {
		t.Errorf("Expected no animation frames, got %d frames and %d ops", scene.Frames(), len(rec.Ops))
	}
	if handoffs != 1 {
		t.Errorf("Expected hand-off to stay at one, got %d", handoffs)
	}
}

func TestHandoffDelay(t *testing.T) {
	store := NewMemorySession()
	handoffs := 0
	seq := NewSequencer(store, Timing{Duration: time.Second, HandoffDelay: 100 * time.Millisecond}, func() { handoffs++ })
	seq.Mount()

	seq.Update(time.Second)
	if seq.Phase() != Completing {
		t.Fatalf("Expected completing, got %v", seq.Phase())
	}
	if !flagSet(store) {
		t.Error("Expected flag written before the hand-off")
	}
	if handoffs != 0 {
		t.Error("Expected hand-off to wait for the delay")
	}

	seq.Update(50 * time.Millisecond)
	if handoffs != 0 {
		t.Error("Expected hand-off to wait the full delay")
	}
	seq.Update(50 * time.Millisecond)
	if handoffs != 1 || seq.Phase() != Done {
		t.Errorf("Expected hand-off after 100ms, got %d in %v", handoffs, seq.Phase())
	}

	seq.Update(time.Second)
	seq.Skip()
	if handoffs != 1 {
		t.Errorf("Expected a single hand-off, got %d", handoffs)
	}
}

func TestSkip(t *testing.T) {
	store := NewMemorySession()
	handoffs := 0
	seq := NewSequencer(store, DefaultTiming(), func() { handoffs++ })

	seq.Skip()
	if flagSet(store) {
		t.Error("Expected skip before mount to be ignored")
	}

	seq.Mount()
	if !seq.ShowSkip() {
		t.Error("Expected the skip affordance while playing")
	}
	seq.Update(2 * time.Second)
	seq.Skip()
	seq.Skip()

	if !flagSet(store) {
		t.Error("Expected flag set on skip")
	}
	if seq.ShowSkip() {
		t.Error("Expected skip affordance hidden after skipping")
	}
	seq.Update(config.HandoffDelay)
	if handoffs != 1 {
		t.Errorf("Expected one hand-off, got %d", handoffs)
	}
}

func TestUnmountCancelsHandoff(t *testing.T) {
	store := NewMemorySession()
	handoffs := 0
	seq := NewSequencer(store, DefaultTiming(), func() { handoffs++ })
	seq.Mount()
	seq.Skip()
	seq.Unmount()

	seq.Update(time.Second)
	if handoffs != 0 {
		t.Errorf("Expected no hand-off after unmount, got %d", handoffs)
	}

	// playback interrupted before completion never writes the flag
	store = NewMemorySession()
	seq = NewSequencer(store, DefaultTiming(), func() { handoffs++ })
	seq.Mount()
	seq.Unmount()
	seq.Update(time.Minute)
	if flagSet(store) || handoffs != 0 {
		t.Error("Expected nothing to happen after unmount")
	}
}

func TestScenePause(t *testing.T) {
	store := NewMemorySession()
	anim := &fakeAnimation{}
	handoffs := 0
	scene := NewScene(NewSequencer(store, Timing{Duration: time.Second, HandoffDelay: 0}, func() { handoffs++ }), anim)
	scene.Mount()

	scene.Update(500 * time.Millisecond)
	scene.TogglePause()
	if !scene.Paused() || anim.pauses != 1 {
		t.Fatal("Expected the scene to pause the animation")
	}
	scene.Update(5 * time.Second)
	if handoffs != 0 || anim.ticks != 1 {
		t.Errorf("Expected time to stand still while paused, got %d hand-offs and %d ticks", handoffs, anim.ticks)
	}

	scene.TogglePause()
	if anim.resumes != 1 {
		t.Error("Expected resume")
	}
	scene.Update(500 * time.Millisecond)
	if handoffs != 1 {
		t.Errorf("Expected hand-off once the remaining time elapsed, got %d", handoffs)
	}
	if anim.closes == 0 {
		t.Error("Expected the animation to be released after hand-off")
	}
}

func TestSceneUnmountReleasesAnimation(t *testing.T) {
	anim := &fakeAnimation{}
	scene := NewScene(NewSequencer(NewMemorySession(), DefaultTiming(), nil), anim)
	scene.Mount()
	scene.Update(frame)
	scene.Unmount()
	scene.Unmount()

	if anim.closes == 0 {
		t.Error("Expected the animation to be closed")
	}
	before := anim.ticks
	scene.Update(frame)
	if anim.ticks != before {
		t.Error("Expected no ticks after unmount")
	}
}
