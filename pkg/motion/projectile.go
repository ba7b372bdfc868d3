package motion

import (
	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/vecalg/pkg/math3d"
	"github.com/taigrr/vecalg/pkg/math3d/adapt"
)

// Hop is a ballistic offset that lands back on a floor height.
type Hop struct {
	fps   int
	floor float64
	rest  math3d.Vec3
	p     *harmonica.Projectile
}

// NewHop creates a hop resting on floor.
func NewHop(fps int, floor float64) *Hop {
	return &Hop{fps: fps, floor: floor, rest: math3d.Vec3{Y: floor}}
}

// Launch starts a new hop from pos with the given initial velocity under
// gravity. A hop already in flight is replaced.
func (h *Hop) Launch(pos, vel math3d.Vec3) {
	h.p = harmonica.NewProjectile(harmonica.FPS(h.fps), adapt.ToPoint(pos), adapt.ToVector(vel), harmonica.Gravity)
}

// Airborne reports whether a hop is in flight.
func (h *Hop) Airborne() bool { return h.p != nil }

// Update advances one frame and returns the offset. Once the hop falls to
// the floor it lands there and stays until the next Launch.
func (h *Hop) Update() math3d.Vec3 {
	if h.p == nil {
		return h.rest
	}
	pos := adapt.FromPoint(h.p.Update())
	if pos.Y <= h.floor && adapt.FromVector(h.p.Velocity()).Y <= 0 {
		h.p = nil
		pos.Y = h.floor
		h.rest = pos
	}
	return pos
}
