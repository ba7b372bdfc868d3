package math3d

import "math"

// cosSin derives the rotation (cos θ, sin θ) from a scalar angle in radians
// or from the direction of a Vec2.
func cosSin(by Operand) (c, s float64, ok bool) {
	switch KindOf(by) {
	case KindScalar:
		rad := by.components()[0]
		return math.Cos(rad), math.Sin(rad), true
	case KindVec2:
		d, ok := direction(by.(Vec2))
		return d.X, d.Y, ok
	}
	return 0, 0, false
}

// RotateAbout rotates v in place around axis using Rodrigues' formula:
//
//	v' = v cosθ + (k × v) sinθ + k (k · v)(1 - cosθ)
//
// where k is the unit axis. by is an angle in radians or a Vec2 whose
// direction supplies (cosθ, sinθ). A zero axis or direction leaves v as is.
func (v *Vec3) RotateAbout(axis Vec3, by Operand) *Vec3 {
	k, ok := axis.Direction()
	if !ok {
		return v
	}
	c, s, ok := cosSin(by)
	if !ok {
		return v
	}
	across := k.Cross(*v).Prod(Scalar(s))
	along := k.Prod(Scalar(k.Dot(*v) * (1 - c)))
	return v.Mul(Scalar(c)).Add(across).Add(along)
}

// Rotated returns v rotated around axis. See RotateAbout.
func (v Vec3) Rotated(axis Vec3, by Operand) Vec3 {
	return *v.RotateAbout(axis, by)
}
