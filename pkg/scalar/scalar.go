// Package scalar provides generic floating-point helpers shared by the vector
// packages.
package scalar

import "golang.org/x/exp/constraints"

// Clamp limits v to the range [lo, hi].
func Clamp[T constraints.Float](v, lo, hi T) T {
	return max(lo, min(v, hi))
}

// Saturate clamps v to [0, 1].
func Saturate[T constraints.Float](v T) T {
	return Clamp(v, 0, 1)
}

// Mix linearly interpolates between a and b by t.
func Mix[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// Smoothstep performs Hermite interpolation between edge0 and edge1.
// Returns 0 below edge0 and 1 above edge1.
func Smoothstep[T constraints.Float](edge0, edge1, x T) T {
	k := Saturate(SafeDiv(x-edge0, edge1-edge0))
	return k * k * (3 - 2*k)
}

// SafeDiv returns a / b, or 0 when b is zero.
func SafeDiv[T constraints.Float](a, b T) T {
	if b == 0 {
		return 0
	}
	return a / b
}
