package math3d

import "math"

// Vec2 represents a 2D vector (also used for texture coordinates).
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// New2 builds a Vec2 from two scalars, a single broadcast Scalar or a Vec2
// copy. Anything else gives the zero vector.
func New2(parts ...Operand) Vec2 {
	return gather[Vec2](parts)
}

// FromAngle returns the unit vector at rad radians from +X.
func FromAngle(rad float64) Vec2 {
	return Vec2{math.Cos(rad), math.Sin(rad)}
}

// Kind implements Operand.
func (v Vec2) Kind() Kind { return KindVec2 }

func (v Vec2) components() [4]float64 { return [4]float64{v.X, v.Y, 0, 0} }

// Array returns the components as an array.
func (v Vec2) Array() [2]float64 { return [2]float64{v.X, v.Y} }

// Float32 returns the components narrowed to float32.
func (v Vec2) Float32() [2]float32 { return [2]float32{float32(v.X), float32(v.Y)} }

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool { return isZero(v) }

// Add adds o to v in place and returns v.
func (v *Vec2) Add(o Operand) *Vec2 { return update(v, o, OpAdd) }

// Sub subtracts o from v in place and returns v.
func (v *Vec2) Sub(o Operand) *Vec2 { return update(v, o, OpSub) }

// Mul multiplies v by o in place and returns v.
func (v *Vec2) Mul(o Operand) *Vec2 { return update(v, o, OpMul) }

// Div divides v by o in place and returns v. Zero divisors give zero.
func (v *Vec2) Div(o Operand) *Vec2 { return update(v, o, OpDiv) }

// Assign copies o into v and returns v.
func (v *Vec2) Assign(o Operand) *Vec2 { return update(v, o, OpAssign) }

// Compare replaces each component of v with f(v[i], o[i]) and returns v.
func (v *Vec2) Compare(o Operand, f Func) *Vec2 { return update(v, o, f) }

// CompareMixed is Compare that also accepts a Vec3 or Vec4, of which only
// X and Y are used.
func (v *Vec2) CompareMixed(o Operand, f Func) *Vec2 { return updateMixed(v, o, f) }

// Sum returns v + o.
func (v Vec2) Sum(o Operand) Vec2 { return combine(v, o, OpAdd) }

// Diff returns v - o.
func (v Vec2) Diff(o Operand) Vec2 { return combine(v, o, OpSub) }

// Prod returns the component-wise product v * o.
func (v Vec2) Prod(o Operand) Vec2 { return combine(v, o, OpMul) }

// Quot returns the component-wise quotient v / o.
func (v Vec2) Quot(o Operand) Vec2 { return combine(v, o, OpDiv) }

// Min returns the component-wise minimum.
func (v Vec2) Min(o Operand) Vec2 { return combine(v, o, OpMin) }

// Max returns the component-wise maximum.
func (v Vec2) Max(o Operand) Vec2 { return combine(v, o, OpMax) }

// Clamp returns v limited component-wise to [lo, hi].
func (v Vec2) Clamp(lo, hi Operand) Vec2 { return as[Vec2](Clamp(v, lo, hi)) }

// Mix returns the linear interpolation between v and b by t.
func (v Vec2) Mix(b Vec2, t Operand) Vec2 { return as[Vec2](Mix(v, b, t)) }

// Smoothstep returns the Hermite step of v between edge0 and edge1.
func (v Vec2) Smoothstep(edge0, edge1 Operand) Vec2 {
	return as[Vec2](Smoothstep(edge0, edge1, v))
}

// Dot returns the dot product v · b.
func (v Vec2) Dot(b Vec2) float64 { return dot(v, b) }

// Cross returns the z component of the 3D cross product of v and b.
func (v Vec2) Cross(b Vec2) float64 { return v.X*b.Y - v.Y*b.X }

// LenSq returns the squared length.
func (v Vec2) LenSq() float64 { return lenSq(v) }

// Len returns the length.
func (v Vec2) Len() float64 { return length(v) }

// SetLen rescales v to the given length. A vector argument contributes its
// own length. The zero vector is left unchanged.
func (v *Vec2) SetLen(o Operand) *Vec2 { return setLength(v, o) }

// Normalize scales v to unit length in place.
func (v *Vec2) Normalize() *Vec2 { return setLength(v, Scalar(1)) }

// Direction returns the unit vector in the same direction as v.
// ok is false for the zero vector.
func (v Vec2) Direction() (Vec2, bool) { return direction(v) }

// Unit returns the unit vector in the same direction, or the zero vector.
func (v Vec2) Unit() Vec2 {
	u, _ := direction(v)
	return u
}

// Negate flips the sign of both components in place.
func (v *Vec2) Negate() *Vec2 { return negate(v) }

// Negated returns -v.
func (v Vec2) Negated() Vec2 { return *negate(&v) }

// Angle returns the angle of v measured from +X.
// ok is false for the zero vector.
func (v Vec2) Angle() (float64, bool) { return axisAngle(v.Y, v.X, v.IsZero()) }

// AngleTo returns the angle of the segment from v to b.
func (v Vec2) AngleTo(b Vec2) float64 { return math.Atan2(b.Y-v.Y, b.X-v.X) }

// Rotate points v along an angle in radians, or along the direction of a
// Vec2, keeping its length.
func (v *Vec2) Rotate(by Operand) *Vec2 {
	c, s, ok := cosSin(by)
	if !ok {
		return v
	}
	l := v.Len()
	*v = Vec2{l * c, l * s}
	return v
}

// RotateAround places v at its current length from center, along an angle
// in radians or along the direction of a Vec2.
func (v *Vec2) RotateAround(center Vec2, by Operand) *Vec2 {
	c, s, ok := cosSin(by)
	if !ok {
		return v
	}
	l := v.Len()
	*v = center.Sum(Vec2{l * c, l * s})
	return v
}

// Reflect returns the reflection of v off a surface with normal n.
func (v Vec2) Reflect(n Vec2) Vec2 { return reflect(v, n) }

// Refract returns the refraction of v through a surface with normal n, or the
// zero vector on total internal reflection.
func (v Vec2) Refract(n Vec2, eta float64) Vec2 { return refract(v, n, eta) }

// Project returns the projection of v onto b.
func (v Vec2) Project(b Vec2) Vec2 { return project(v, b) }

// Reject returns the component of v perpendicular to b.
func (v Vec2) Reject(b Vec2) Vec2 { return reject(v, b) }

// Distance returns the distance between two points.
func (v Vec2) Distance(b Vec2) float64 { return distance(v, b) }

// DistanceSq returns the squared distance between two points.
func (v Vec2) DistanceSq(b Vec2) float64 { return distanceSq(v, b) }

// Equals reports whether both components match.
func (v Vec2) Equals(b Vec2) bool { return v == b }

// EqualLen reports whether v and b have the same length.
func (v Vec2) EqualLen(b Vec2) bool { return length(v) == length(b) }
