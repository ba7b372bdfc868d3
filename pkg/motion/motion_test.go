package motion

import (
	"math"
	"testing"

	"github.com/taigrr/vecalg/pkg/math3d"
)

func TestAxisDecays(t *testing.T) {
	a := NewAxis(60)
	a.Velocity = 1
	a.Update()

	if a.Position != 1 {
		t.Errorf("Position = %v, want 1", a.Position)
	}
	if a.Velocity <= 0 || a.Velocity >= 1 {
		t.Errorf("Velocity = %v, want in (0, 1)", a.Velocity)
	}

	for range 600 {
		a.Update()
	}
	if math.Abs(a.Velocity) > 1e-3 {
		t.Errorf("Velocity after 10s = %v, want ~0", a.Velocity)
	}
}

func TestFollowerConverges(t *testing.T) {
	f := NewFollower(60, 6.0, 1.0, math3d.V3(0, 0, 0))
	target := math3d.V3(3, -2, 5)

	for range 600 {
		f.Update(target)
	}
	if !f.Settled(target, 1e-3) {
		t.Errorf("follower at %v (vel %v), want settled at %v", f.Pos, f.Vel, target)
	}
}

func TestFollowerAtRestStays(t *testing.T) {
	start := math3d.V3(1, 2, 3)
	f := NewFollower(60, 6.0, 1.0, start)
	if got := f.Update(start); got != start {
		t.Errorf("Update(at rest) = %v, want %v", got, start)
	}
}

func TestSpinIdle(t *testing.T) {
	s := NewSpin(60, math3d.V3(0, math.Pi/2, 0))
	v := math3d.V3(1, 0, 0)
	s.Apply(&v)

	if math.Abs(v.X) > 1e-9 || math.Abs(v.Y) > 1e-9 || math.Abs(v.Z+1) > 1e-9 {
		t.Errorf("after one frame v = %v, want (0, 0, -1)", v)
	}
}

func TestSpinImpulseRelaxes(t *testing.T) {
	idle := math3d.V3(0, 0.01, 0)
	s := NewSpin(60, idle)
	s.Impulse(math3d.V3(0.5, 0, 0))

	if s.Omega().X != 0.5 {
		t.Fatalf("Omega after impulse = %v", s.Omega())
	}

	for range 600 {
		s.Step()
	}
	if d := s.Omega().Distance(idle); d > 1e-3 {
		t.Errorf("Omega = %v, want ~%v", s.Omega(), idle)
	}

	s.Impulse(math3d.V3(1, 1, 1))
	s.Reset()
	if s.Omega() != idle {
		t.Errorf("Omega after Reset = %v, want %v", s.Omega(), idle)
	}
}

func TestSpinStopped(t *testing.T) {
	s := NewSpin(60, math3d.Vec3{})
	if _, _, ok := s.Step(); ok {
		t.Error("stopped spin reported an axis")
	}

	v := math3d.V3(1, 2, 3)
	s.Apply(&v)
	if v != math3d.V3(1, 2, 3) {
		t.Errorf("stopped spin moved v to %v", v)
	}
}

func TestHop(t *testing.T) {
	h := NewHop(60, 0)
	if got := h.Update(); got != (math3d.Vec3{}) {
		t.Fatalf("resting hop = %v, want zero", got)
	}

	h.Launch(math3d.V3(0, 0, 0), math3d.V3(1, 5, 0))
	if !h.Airborne() {
		t.Fatal("hop not airborne after Launch")
	}

	peak := 0.0
	frames := 0
	for h.Airborne() && frames < 1000 {
		peak = max(peak, h.Update().Y)
		frames++
	}

	if h.Airborne() {
		t.Fatal("hop never landed")
	}
	// v²/2g
	if want := 25 / (2 * 9.81); math.Abs(peak-want) > 0.1 {
		t.Errorf("peak = %v, want ~%v", peak, want)
	}
	// 2v/g seconds at 60 fps
	if want := int(math.Round(2 * 5 / 9.81 * 60)); frames < want-3 || frames > want+3 {
		t.Errorf("flight took %d frames, want ~%d", frames, want)
	}

	landed := h.Update()
	if landed.Y != 0 || landed.X <= 0 {
		t.Errorf("landed at %v, want on the floor downrange", landed)
	}
}
