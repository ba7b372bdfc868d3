// Package adapt converts vector values owned by other libraries into
// math3d operands and back. Classification inside math3d only recognises
// its own types, arrays, slices and Tuple; everything else must pass
// through here first.
package adapt

import (
	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/vecalg/pkg/math3d"
)

// XYer is implemented by foreign 2D types that expose their components.
type XYer interface {
	XY() (x, y float64)
}

// XYZer is implemented by foreign 3D types that expose their components.
type XYZer interface {
	XYZ() (x, y, z float64)
}

// Operand classifies x, additionally accepting harmonica values
// and the XYer/XYZer getters. Unknown shapes are math3d.None.
func Operand(x any) math3d.Operand {
	switch v := x.(type) {
	case harmonica.Point:
		return FromPoint(v)
	case harmonica.Vector:
		return FromVector(v)
	case XYZer:
		return math3d.V3(v.XYZ())
	case XYer:
		return math3d.V2(v.XY())
	}
	return math3d.Of(x)
}

// FromPoint converts a harmonica position.
func FromPoint(p harmonica.Point) math3d.Vec3 { return math3d.V3(p.X, p.Y, p.Z) }

// ToPoint converts v to a harmonica position.
func ToPoint(v math3d.Vec3) harmonica.Point { return harmonica.Point{X: v.X, Y: v.Y, Z: v.Z} }

// FromVector converts a harmonica velocity or acceleration.
func FromVector(v harmonica.Vector) math3d.Vec3 { return math3d.V3(v.X, v.Y, v.Z) }

// ToVector converts v to a harmonica velocity or acceleration.
func ToVector(v math3d.Vec3) harmonica.Vector { return harmonica.Vector{X: v.X, Y: v.Y, Z: v.Z} }
