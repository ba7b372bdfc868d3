package math3d

import "math"

// Mix returns a + (b - a) * t. Each argument may be a vector or a scalar.
func Mix(a, b, t Operand) Operand {
	return Apply(a, Apply(Apply(b, a, OpSub), t, OpMul), OpAdd)
}

// Clamp returns max(lo, min(x, hi)) component-wise.
func Clamp(x, lo, hi Operand) Operand {
	return Apply(lo, Apply(x, hi, OpMin), OpMax)
}

// Smoothstep performs Hermite interpolation of x between edge0 and edge1:
//
//	k = clamp((x - edge0) / (edge1 - edge0), 0, 1)
//	k * k * (3 - 2k)
func Smoothstep(edge0, edge1, x Operand) Operand {
	k := Apply(Apply(x, edge0, OpSub), Apply(edge1, edge0, OpSub), OpDiv)
	k = Clamp(k, Scalar(0), Scalar(1))
	return Apply(Apply(k, k, OpMul), Apply(Scalar(3), Apply(Scalar(2), k, OpMul), OpSub), OpMul)
}

// Dot returns the dot product of two vectors of the same size.
func Dot[V Vector](a, b V) float64 {
	return dot(a, b)
}

// axisAngle returns atan2(y, x), or false when the vector it was derived from
// has no direction.
func axisAngle(y, x float64, zero bool) (float64, bool) {
	if zero {
		return 0, false
	}
	return math.Atan2(y, x), true
}

// reflect returns i - 2 * dot(n̂, i) * n̂. The normal is reduced to unit length
// first; a zero normal leaves i unchanged.
func reflect[V Vector](i, n V) V {
	u, ok := direction(n)
	if !ok {
		return i
	}
	return combine(i, combine(u, Scalar(2*dot(u, i)), OpMul), OpSub)
}

// refract follows the GLSL definition with both inputs reduced to unit length.
func refract[V Vector](i, n V, eta float64) V {
	var zero V
	ui, ok := direction(i)
	if !ok {
		return zero
	}
	un, ok := direction(n)
	if !ok {
		return zero
	}
	d := dot(un, ui)
	k := 1 - eta*eta*(1-d*d)
	if k < 0 {
		return zero
	}
	return combine(combine(ui, Scalar(eta), OpMul), combine(un, Scalar(eta*d+math.Sqrt(k)), OpMul), OpSub)
}

func project[V Vector](v, onto V) V {
	u, ok := direction(onto)
	if !ok {
		var zero V
		return zero
	}
	return combine(u, Scalar(dot(v, u)), OpMul)
}

func reject[V Vector](v, onto V) V {
	if isZero(onto) {
		var zero V
		return zero
	}
	return combine(v, project(v, onto), OpSub)
}
