package math3d

// Vec4 represents a 4D vector (or homogeneous 3D point).
type Vec4 struct {
	X, Y, Z, W float64
}

// V4 creates a new Vec4.
func V4(x, y, z, w float64) Vec4 {
	return Vec4{x, y, z, w}
}

// New4 builds a Vec4 from any left-to-right grouping of scalars and smaller
// vectors that adds up to four components: New4(v3, Scalar(1)),
// New4(v2, v2), New4(Scalar(x), v2, Scalar(w)) and so on. A lone Scalar is
// broadcast and a lone Vec4 copied. Any other shape gives the zero vector.
func New4(parts ...Operand) Vec4 {
	return gather[Vec4](parts)
}

// Kind implements Operand.
func (v Vec4) Kind() Kind { return KindVec4 }

func (v Vec4) components() [4]float64 { return [4]float64{v.X, v.Y, v.Z, v.W} }

// Array returns the components as an array.
func (v Vec4) Array() [4]float64 { return v.components() }

// Float32 returns the components narrowed to float32.
func (v Vec4) Float32() [4]float32 {
	return [4]float32{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)}
}

// PerspectiveDivide returns Vec3 after dividing by W.
func (v Vec4) PerspectiveDivide() Vec3 {
	if v.W == 0 {
		return v.XYZ()
	}
	return v.XYZ().Quot(Scalar(v.W))
}

// IsZero reports whether every component is exactly zero.
func (v Vec4) IsZero() bool { return isZero(v) }

// Add adds o to v in place and returns v.
func (v *Vec4) Add(o Operand) *Vec4 { return update(v, o, OpAdd) }

// Sub subtracts o from v in place and returns v.
func (v *Vec4) Sub(o Operand) *Vec4 { return update(v, o, OpSub) }

// Mul multiplies v by o in place and returns v.
func (v *Vec4) Mul(o Operand) *Vec4 { return update(v, o, OpMul) }

// Div divides v by o in place and returns v. Zero divisors give zero.
func (v *Vec4) Div(o Operand) *Vec4 { return update(v, o, OpDiv) }

// Assign copies o into v and returns v.
func (v *Vec4) Assign(o Operand) *Vec4 { return update(v, o, OpAssign) }

// Compare replaces each component of v with f(v[i], o[i]) and returns v.
func (v *Vec4) Compare(o Operand, f Func) *Vec4 { return update(v, o, f) }

// CompareMixed is Compare that also accepts a Vec2 or Vec3: only the shared
// components are combined.
func (v *Vec4) CompareMixed(o Operand, f Func) *Vec4 { return updateMixed(v, o, f) }

// Sum returns v + o.
func (v Vec4) Sum(o Operand) Vec4 { return combine(v, o, OpAdd) }

// Diff returns v - o.
func (v Vec4) Diff(o Operand) Vec4 { return combine(v, o, OpSub) }

// Prod returns the component-wise product v * o.
func (v Vec4) Prod(o Operand) Vec4 { return combine(v, o, OpMul) }

// Quot returns the component-wise quotient v / o.
func (v Vec4) Quot(o Operand) Vec4 { return combine(v, o, OpDiv) }

// Min returns the component-wise minimum.
func (v Vec4) Min(o Operand) Vec4 { return combine(v, o, OpMin) }

// Max returns the component-wise maximum.
func (v Vec4) Max(o Operand) Vec4 { return combine(v, o, OpMax) }

// Clamp returns v limited component-wise to [lo, hi].
func (v Vec4) Clamp(lo, hi Operand) Vec4 { return as[Vec4](Clamp(v, lo, hi)) }

// Mix returns the linear interpolation between v and b by t.
func (v Vec4) Mix(b Vec4, t Operand) Vec4 { return as[Vec4](Mix(v, b, t)) }

// Smoothstep returns the Hermite step of v between edge0 and edge1.
func (v Vec4) Smoothstep(edge0, edge1 Operand) Vec4 {
	return as[Vec4](Smoothstep(edge0, edge1, v))
}

// Dot returns the dot product v · b.
func (v Vec4) Dot(b Vec4) float64 { return dot(v, b) }

// LenSq returns the squared length.
func (v Vec4) LenSq() float64 { return lenSq(v) }

// Len returns the length.
func (v Vec4) Len() float64 { return length(v) }

// LenXYZ returns the length of the XYZ part.
func (v Vec4) LenXYZ() float64 { return norm([4]float64{v.X, v.Y, v.Z}) }

// LenYZW returns the length of the YZW part.
func (v Vec4) LenYZW() float64 { return norm([4]float64{v.Y, v.Z, v.W}) }

// LenXZW returns the length of the XZW part.
func (v Vec4) LenXZW() float64 { return norm([4]float64{v.X, v.Z, v.W}) }

// LenXYW returns the length of the XYW part.
func (v Vec4) LenXYW() float64 { return norm([4]float64{v.X, v.Y, v.W}) }

// SetLen rescales v to the given length. A vector argument contributes its
// own length. The zero vector is left unchanged.
func (v *Vec4) SetLen(o Operand) *Vec4 { return setLength(v, o) }

// Normalize scales v to unit length in place.
func (v *Vec4) Normalize() *Vec4 { return setLength(v, Scalar(1)) }

// Direction returns the unit vector. ok is false for the zero vector.
func (v Vec4) Direction() (Vec4, bool) { return direction(v) }

// Unit returns the unit vector in the same direction, or the zero vector.
func (v Vec4) Unit() Vec4 {
	u, _ := direction(v)
	return u
}

// Negate flips the sign of every component in place.
func (v *Vec4) Negate() *Vec4 { return negate(v) }

// Negated returns -v.
func (v Vec4) Negated() Vec4 { return *negate(&v) }

// PhiX returns the angle between v and the X axis.
// ok is false for the zero vector.
func (v Vec4) PhiX() (float64, bool) { return axisAngle(v.LenYZW(), v.X, v.IsZero()) }

// PhiY returns the angle between v and the Y axis.
func (v Vec4) PhiY() (float64, bool) { return axisAngle(v.LenXZW(), v.Y, v.IsZero()) }

// PhiZ returns the angle between v and the Z axis.
func (v Vec4) PhiZ() (float64, bool) { return axisAngle(v.LenXYW(), v.Z, v.IsZero()) }

// PhiW returns the angle between v and the W axis.
func (v Vec4) PhiW() (float64, bool) { return axisAngle(v.LenXYZ(), v.W, v.IsZero()) }

// Reflect returns the reflection of v off a surface with normal n.
func (v Vec4) Reflect(n Vec4) Vec4 { return reflect(v, n) }

// Refract returns the refraction of v through a surface with normal n and
// ratio of indices eta, or the zero vector on total internal reflection.
func (v Vec4) Refract(n Vec4, eta float64) Vec4 { return refract(v, n, eta) }

// Project returns the projection of v onto b.
func (v Vec4) Project(b Vec4) Vec4 { return project(v, b) }

// Reject returns the component of v perpendicular to b.
func (v Vec4) Reject(b Vec4) Vec4 { return reject(v, b) }

// Distance returns the distance between v and b.
func (v Vec4) Distance(b Vec4) float64 { return distance(v, b) }

// DistanceSq returns the squared distance between v and b.
func (v Vec4) DistanceSq(b Vec4) float64 { return distanceSq(v, b) }

// Equals reports whether every component matches.
func (v Vec4) Equals(b Vec4) bool { return v == b }

// EqualLen reports whether v and b have the same length.
func (v Vec4) EqualLen(b Vec4) bool { return length(v) == length(b) }
