package math3d

import "math"

// Vec3 represents a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// V3 creates a new Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// New3 builds a Vec3 from any left-to-right grouping of scalars and smaller
// vectors that adds up to three components, e.g. New3(v2, Scalar(1)) or
// New3(Scalar(0), v2). A lone Scalar is broadcast, a lone Vec3 is copied and
// no arguments give the zero vector. Any other shape gives the zero vector.
func New3(parts ...Operand) Vec3 {
	return gather[Vec3](parts)
}

// Zero3 returns the zero vector.
func Zero3() Vec3 {
	return Vec3{}
}

// Up returns the world up vector (0, 1, 0).
func Up() Vec3 {
	return Vec3{0, 1, 0}
}

// Forward returns the world forward vector (0, 0, -1).
func Forward() Vec3 {
	return Vec3{0, 0, -1}
}

// Right returns the world right vector (1, 0, 0).
func Right() Vec3 {
	return Vec3{1, 0, 0}
}

// Kind implements Operand.
func (v Vec3) Kind() Kind { return KindVec3 }

func (v Vec3) components() [4]float64 { return [4]float64{v.X, v.Y, v.Z, 0} }

// Array returns the components as an array.
func (v Vec3) Array() [3]float64 { return [3]float64{v.X, v.Y, v.Z} }

// Float32 returns the components narrowed to float32.
func (v Vec3) Float32() [3]float32 { return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)} }

// IsZero reports whether every component is exactly zero.
func (v Vec3) IsZero() bool { return isZero(v) }

// Add adds o to v in place and returns v.
func (v *Vec3) Add(o Operand) *Vec3 { return update(v, o, OpAdd) }

// Sub subtracts o from v in place and returns v.
func (v *Vec3) Sub(o Operand) *Vec3 { return update(v, o, OpSub) }

// Mul multiplies v by o in place and returns v.
func (v *Vec3) Mul(o Operand) *Vec3 { return update(v, o, OpMul) }

// Div divides v by o in place and returns v. Zero divisors give zero.
func (v *Vec3) Div(o Operand) *Vec3 { return update(v, o, OpDiv) }

// Assign copies o into v and returns v.
func (v *Vec3) Assign(o Operand) *Vec3 { return update(v, o, OpAssign) }

// Compare replaces each component of v with f(v[i], o[i]) and returns v.
func (v *Vec3) Compare(o Operand, f Func) *Vec3 { return update(v, o, f) }

// CompareMixed is Compare that also accepts a Vec2 or Vec4: only the shared
// components are combined.
func (v *Vec3) CompareMixed(o Operand, f Func) *Vec3 { return updateMixed(v, o, f) }

// Sum returns v + o.
func (v Vec3) Sum(o Operand) Vec3 { return combine(v, o, OpAdd) }

// Diff returns v - o.
func (v Vec3) Diff(o Operand) Vec3 { return combine(v, o, OpSub) }

// Prod returns the component-wise product v * o.
func (v Vec3) Prod(o Operand) Vec3 { return combine(v, o, OpMul) }

// Quot returns the component-wise quotient v / o.
func (v Vec3) Quot(o Operand) Vec3 { return combine(v, o, OpDiv) }

// Min returns the component-wise minimum.
func (v Vec3) Min(o Operand) Vec3 { return combine(v, o, OpMin) }

// Max returns the component-wise maximum.
func (v Vec3) Max(o Operand) Vec3 { return combine(v, o, OpMax) }

// Clamp returns v limited component-wise to [lo, hi].
func (v Vec3) Clamp(lo, hi Operand) Vec3 { return as[Vec3](Clamp(v, lo, hi)) }

// Mix returns the linear interpolation between v and b by t.
func (v Vec3) Mix(b Vec3, t Operand) Vec3 { return as[Vec3](Mix(v, b, t)) }

// Smoothstep returns the Hermite step of v between edge0 and edge1.
func (v Vec3) Smoothstep(edge0, edge1 Operand) Vec3 {
	return as[Vec3](Smoothstep(edge0, edge1, v))
}

// Dot returns the dot product v · b.
func (v Vec3) Dot(b Vec3) float64 { return dot(v, b) }

// Cross returns the cross product v × b.
func (v Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		v.Y*b.Z - v.Z*b.Y,
		v.Z*b.X - v.X*b.Z,
		v.X*b.Y - v.Y*b.X,
	}
}

// LenSq returns the squared length.
func (v Vec3) LenSq() float64 { return lenSq(v) }

// Len returns the length (magnitude) of the vector.
func (v Vec3) Len() float64 { return length(v) }

// LenXY returns the length of the projection onto the XY plane.
func (v Vec3) LenXY() float64 { return math.Hypot(v.X, v.Y) }

// LenXZ returns the length of the projection onto the XZ plane.
func (v Vec3) LenXZ() float64 { return math.Hypot(v.X, v.Z) }

// LenYZ returns the length of the projection onto the YZ plane.
func (v Vec3) LenYZ() float64 { return math.Hypot(v.Y, v.Z) }

// SetLen rescales v to the given length. A vector argument contributes its
// own length. The zero vector is left unchanged.
func (v *Vec3) SetLen(o Operand) *Vec3 { return setLength(v, o) }

// Normalize scales v to unit length in place.
func (v *Vec3) Normalize() *Vec3 { return setLength(v, Scalar(1)) }

// Direction returns the unit vector in the same direction as v.
// ok is false for the zero vector.
func (v Vec3) Direction() (Vec3, bool) { return direction(v) }

// Unit returns the unit vector in the same direction, or the zero vector.
func (v Vec3) Unit() Vec3 {
	u, _ := direction(v)
	return u
}

// Negate flips the sign of every component in place.
func (v *Vec3) Negate() *Vec3 { return negate(v) }

// Negated returns -v.
func (v Vec3) Negated() Vec3 { return *negate(&v) }

// PhiX returns the angle between v and the X axis.
// ok is false for the zero vector.
func (v Vec3) PhiX() (float64, bool) { return axisAngle(v.LenYZ(), v.X, v.IsZero()) }

// PhiY returns the angle between v and the Y axis.
func (v Vec3) PhiY() (float64, bool) { return axisAngle(v.LenXZ(), v.Y, v.IsZero()) }

// PhiZ returns the angle between v and the Z axis.
func (v Vec3) PhiZ() (float64, bool) { return axisAngle(v.LenXY(), v.Z, v.IsZero()) }

// AngleXY returns the angle of the XY projection measured from +X toward +Y.
func (v Vec3) AngleXY() (float64, bool) { return axisAngle(v.Y, v.X, v.IsZero()) }

// AngleXZ returns the angle of the XZ projection measured from +X toward +Z.
func (v Vec3) AngleXZ() (float64, bool) { return axisAngle(v.Z, v.X, v.IsZero()) }

// AngleYZ returns the angle of the YZ projection measured from +Y toward +Z.
func (v Vec3) AngleYZ() (float64, bool) { return axisAngle(v.Z, v.Y, v.IsZero()) }

// Theta returns the azimuth, the same as AngleXY.
func (v Vec3) Theta() (float64, bool) { return v.AngleXY() }

// Reflect returns the reflection of v off a surface with normal n.
func (v Vec3) Reflect(n Vec3) Vec3 { return reflect(v, n) }

// Refract returns the refraction of v through a surface with normal n and
// ratio of indices eta, or the zero vector on total internal reflection.
func (v Vec3) Refract(n Vec3, eta float64) Vec3 { return refract(v, n, eta) }

// Project returns the projection of v onto b.
func (v Vec3) Project(b Vec3) Vec3 { return project(v, b) }

// Reject returns the component of v perpendicular to b.
func (v Vec3) Reject(b Vec3) Vec3 { return reject(v, b) }

// Distance returns the distance between two points.
func (v Vec3) Distance(b Vec3) float64 { return distance(v, b) }

// DistanceSq returns the squared distance between two points.
func (v Vec3) DistanceSq(b Vec3) float64 { return distanceSq(v, b) }

// Equals reports whether every component matches.
func (v Vec3) Equals(b Vec3) bool { return v == b }

// EqualLen reports whether v and b have the same length.
func (v Vec3) EqualLen(b Vec3) bool { return length(v) == length(b) }

// Abs returns the component-wise absolute value.
func (v Vec3) Abs() Vec3 {
	return Vec3{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)}
}
