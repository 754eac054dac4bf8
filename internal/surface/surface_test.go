package surface

import (
	"errors"
	"testing"
	"time"

	"github.com/iburimskiy/spiral-splash/internal/spiral"
	"github.com/iburimskiy/spiral-splash/internal/spiral/spiraltest"
)

type factoryLog struct {
	sides []int
	dprs  []float64
	fail  bool
}

func (f *factoryLog) make(px int, dpr float64) (*spiraltest.Recorder, error) {
	f.sides = append(f.sides, px)
	f.dprs = append(f.dprs, dpr)
	if f.fail {
		return nil, errors.New("no context")
	}
	return spiraltest.NewRecorder(), nil
}

func smallOptions() spiral.Options {
	opts := spiral.DefaultOptions()
	opts.Stars = 20
	return opts
}

func TestSide(t *testing.T) {
	tests := []struct {
		w, h int
		dpr  float64
		side int
		dev  int
	}{
		{1280, 800, 1, 1280, 1280},
		{800, 1280, 2, 1280, 2560},
		{500, 500, 1.5, 500, 750},
		{333, 100, 1.25, 333, 417},
	}
	for _, tt := range tests {
		if got := Side(tt.w, tt.h); got != tt.side {
			t.Errorf("Side(%d, %d) = %d, want %d", tt.w, tt.h, got, tt.side)
		}
		if got := DeviceSide(tt.w, tt.h, tt.dpr); got != tt.dev {
			t.Errorf("DeviceSide(%d, %d, %v) = %d, want %d", tt.w, tt.h, tt.dpr, got, tt.dev)
		}
	}
}

func TestResizeBuildsController(t *testing.T) {
	f := &factoryLog{}
	s := New(f.make, smallOptions())

	if err := s.Resize(1280, 800, 2); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if len(f.sides) != 1 || f.sides[0] != 2560 || f.dprs[0] != 2 {
		t.Fatalf("Expected one 2560px canvas at dpr 2, got %v %v", f.sides, f.dprs)
	}
	if s.Controller() == nil {
		t.Fatal("Expected a controller")
	}
	if len(s.Controller().Stars()) != 20 {
		t.Errorf("Expected 20 stars, got %d", len(s.Controller().Stars()))
	}

	rec, ok := s.Canvas()
	if !ok || rec == nil {
		t.Fatal("Expected a canvas")
	}
	if !s.Tick(time.Second) {
		t.Fatal("Expected a frame")
	}
	// the controller centres on the logical side, not device pixels
	for _, op := range rec.Ops {
		if op.Kind == spiraltest.OpTranslate {
			if op.X != 640 || op.Y != 640 {
				t.Errorf("Expected translate to (640, 640), got (%v, %v)", op.X, op.Y)
			}
			break
		}
	}
}

func TestResizeSameSizeKeepsState(t *testing.T) {
	f := &factoryLog{}
	s := New(f.make, smallOptions())
	s.Resize(640, 480, 1)
	s.Tick(3 * time.Second)
	before := s.Controller()

	s.Resize(640, 480, 1)
	if len(f.sides) != 1 {
		t.Errorf("Expected no rebuild, factory called %d times", len(f.sides))
	}
	if s.Controller() != before {
		t.Error("Expected the same controller")
	}
}

func TestResizeRebuildsFresh(t *testing.T) {
	f := &factoryLog{}
	s := New(f.make, smallOptions())
	s.Resize(640, 480, 1)
	s.Tick(3 * time.Second)
	old := s.Controller()

	if err := s.Resize(1024, 768, 1); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if old.State() != spiral.Destroyed {
		t.Errorf("Expected old controller destroyed, got %v", old.State())
	}
	if s.Controller() == old {
		t.Fatal("Expected a new controller")
	}
	if s.Controller().Progress() != 0 {
		t.Errorf("Expected progress reset, got %v", s.Controller().Progress())
	}
	if len(f.sides) != 2 || f.sides[1] != 1024 {
		t.Errorf("Expected a 1024px canvas, got %v", f.sides)
	}
}

func TestResizeWithoutCanvas(t *testing.T) {
	f := &factoryLog{fail: true}
	s := New(f.make, smallOptions())

	if err := s.Resize(640, 480, 1); err == nil {
		t.Fatal("Expected an error when the canvas is unavailable")
	}
	if s.Controller() != nil {
		t.Error("Expected no controller")
	}
	if _, ok := s.Canvas(); ok {
		t.Error("Expected no canvas")
	}
	if s.Tick(time.Second) {
		t.Error("Expected ticks to be no-ops")
	}
	s.Pause()
	s.Resume()
	s.Close()
}

func TestResizeInvalidViewport(t *testing.T) {
	f := &factoryLog{}
	s := New(f.make, smallOptions())

	err := s.Resize(0, 480, 1)
	if !errors.Is(err, ErrInvalidViewport) {
		t.Fatalf("Expected ErrInvalidViewport, got %v", err)
	}
	if len(f.sides) != 0 {
		t.Error("Expected no canvas for an empty viewport")
	}
}

func TestCloseIdempotent(t *testing.T) {
	f := &factoryLog{}
	s := New(f.make, smallOptions())
	s.Resize(640, 480, 1)
	ctrl := s.Controller()

	s.Close()
	s.Close()

	if ctrl.State() != spiral.Destroyed {
		t.Errorf("Expected controller destroyed, got %v", ctrl.State())
	}
	if s.Tick(time.Second) {
		t.Error("Expected no frames after close")
	}
	if err := s.Resize(800, 600, 1); err != nil || len(f.sides) != 1 {
		t.Error("Expected resize after close to be ignored")
	}
}

func TestPauseResume(t *testing.T) {
	f := &factoryLog{}
	s := New(f.make, smallOptions())
	s.Resize(640, 480, 1)

	s.Pause()
	if s.Tick(time.Second) {
		t.Error("Expected no frame while paused")
	}
	s.Resume()
	if !s.Tick(time.Second) {
		t.Error("Expected a frame after resume")
	}
}
