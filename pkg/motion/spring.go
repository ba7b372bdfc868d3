// Package motion animates vectors over fixed time steps: spring-damped
// followers that ease toward a target and ballistic projectiles.
package motion

import (
	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/vecalg/pkg/math3d"
)

// Axis tracks a position and a velocity that decays toward zero.
type Axis struct {
	Position float64
	Velocity float64
	spring   harmonica.Spring
	accel    float64 // spring velocity of Velocity itself
}

// NewAxis creates an axis whose velocity decays with a critically damped
// spring at the given frame rate.
func NewAxis(fps int) Axis {
	// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
	return Axis{spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0)}
}

// Update applies velocity to position and eases velocity toward 0.
func (a *Axis) Update() {
	a.Position += a.Velocity
	a.Velocity, a.accel = a.spring.Update(a.Velocity, a.accel, 0)
}

// Follower moves a Vec3 toward a target with one spring per component.
type Follower struct {
	Pos    math3d.Vec3
	Vel    math3d.Vec3
	spring harmonica.Spring
}

// NewFollower creates a follower resting at pos.
func NewFollower(fps int, frequency, damping float64, pos math3d.Vec3) *Follower {
	return &Follower{
		Pos:    pos,
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
}

// Update advances one frame toward target and returns the new position.
func (f *Follower) Update(target math3d.Vec3) math3d.Vec3 {
	f.Pos.X, f.Vel.X = f.spring.Update(f.Pos.X, f.Vel.X, target.X)
	f.Pos.Y, f.Vel.Y = f.spring.Update(f.Pos.Y, f.Vel.Y, target.Y)
	f.Pos.Z, f.Vel.Z = f.spring.Update(f.Pos.Z, f.Vel.Z, target.Z)
	return f.Pos
}

// Settled reports whether the follower is within eps of target and nearly
// at rest.
func (f *Follower) Settled(target math3d.Vec3, eps float64) bool {
	return f.Pos.DistanceSq(target) < eps*eps && f.Vel.LenSq() < eps*eps
}
