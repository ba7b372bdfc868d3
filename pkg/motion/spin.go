package motion

import (
	"github.com/taigrr/vecalg/pkg/math3d"
)

// Spin is an angular velocity: its direction is the rotation axis and its
// length the rate in radians per frame. Impulses push it away from an idle
// spin, which it springs back to.
type Spin struct {
	idle     math3d.Vec3
	follower *Follower
}

// NewSpin creates a spin that relaxes to idle.
func NewSpin(fps int, idle math3d.Vec3) *Spin {
	return &Spin{
		idle:     idle,
		follower: NewFollower(fps, 4.0, 1.0, idle),
	}
}

// Omega returns the current angular velocity.
func (s *Spin) Omega() math3d.Vec3 { return s.follower.Pos }

// Impulse adds an angular velocity kick.
func (s *Spin) Impulse(kick math3d.Vec3) {
	s.follower.Pos.Add(kick)
}

// SetIdle changes the spin the motion relaxes to.
func (s *Spin) SetIdle(idle math3d.Vec3) { s.idle = idle }

// Reset drops all motion and returns to the idle spin.
func (s *Spin) Reset() {
	s.follower.Pos = s.idle
	s.follower.Vel = math3d.Vec3{}
}

// Step advances one frame and returns the axis and angle to rotate by.
// ok is false while the spin is stopped.
func (s *Spin) Step() (axis math3d.Vec3, angle float64, ok bool) {
	omega := s.follower.Update(s.idle)
	axis, ok = omega.Direction()
	return axis, omega.Len(), ok
}

// Apply rotates v by one frame of spin.
func (s *Spin) Apply(v *math3d.Vec3) {
	if axis, angle, ok := s.Step(); ok {
		v.RotateAbout(axis, math3d.Scalar(angle))
	}
}
