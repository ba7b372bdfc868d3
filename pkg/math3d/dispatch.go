package math3d

import (
	"math"

	"github.com/taigrr/vecalg/pkg/scalar"
)

// Func combines one component of the left operand with the matching
// component of the right operand.
type Func func(a, b float64) float64

// OpAdd returns a + b.
func OpAdd(a, b float64) float64 { return a + b }

// OpSub returns a - b.
func OpSub(a, b float64) float64 { return a - b }

// OpMul returns a * b.
func OpMul(a, b float64) float64 { return a * b }

// OpDiv returns a / b, saturating to 0 when b is zero.
func OpDiv(a, b float64) float64 { return scalar.SafeDiv(a, b) }

// OpMin returns the smaller of a and b.
func OpMin(a, b float64) float64 { return math.Min(a, b) }

// OpMax returns the larger of a and b.
func OpMax(a, b float64) float64 { return math.Max(a, b) }

// OpAssign returns b.
func OpAssign(_, b float64) float64 { return b }

// zip combines the first n components of a and b with f.
func zip(a, b [4]float64, n int, f Func) [4]float64 {
	var c [4]float64
	for i := range n {
		c[i] = f(a[i], b[i])
	}
	return c
}

// dispatch resolves the shapes of a and b and combines them with f:
//
//	vecN ⊗ vecN   -> vecN, component by component
//	vecN ⊗ scalar -> vecN, scalar broadcast
//	scalar ⊗ vecN -> vecN, scalar broadcast
//	scalar ⊗ scalar -> scalar
//
// Any other pairing reports false.
func dispatch(a, b Operand, f Func) (Kind, [4]float64, bool) {
	ka, kb := KindOf(a), KindOf(b)
	switch {
	case ka.IsVector() && (kb == ka || kb == KindScalar):
		return ka, zip(a.components(), b.components(), ka.Dim(), f), true
	case ka == KindScalar && (kb.IsVector() || kb == KindScalar):
		return kb, zip(a.components(), b.components(), kb.Dim(), f), true
	}
	return KindNone, [4]float64{}, false
}

// dispatchMixed is dispatch with the cross-dimension fallback: two vectors of
// different sizes are combined over the components they share and the rest of
// a is carried through.
func dispatchMixed(a, b Operand, f Func) (Kind, [4]float64, bool) {
	ka, kb := KindOf(a), KindOf(b)
	if !ka.IsVector() || !kb.IsVector() || ka == kb {
		return dispatch(a, b, f)
	}
	c, cb := a.components(), b.components()
	for i := range min(ka.Dim(), kb.Dim()) {
		c[i] = f(c[i], cb[i])
	}
	return ka, c, true
}

// Apply combines a and b component-wise with f and returns the result as a
// new operand, leaving both inputs unchanged.
//
// Vectors must have the same size. When the shapes cannot be combined the
// result is the zero vector shaped like a (or like b when a is not a vector),
// or None when neither side is a vector.
func Apply(a, b Operand, f Func) Operand {
	k, c, ok := dispatch(a, b, f)
	if !ok {
		return zeroLike(a, b)
	}
	return build(k, c)
}

// ApplyMixed is Apply, except that vectors of different sizes are combined
// over their shared leading components. The result keeps the shape of a.
func ApplyMixed(a, b Operand, f Func) Operand {
	k, c, ok := dispatchMixed(a, b, f)
	if !ok {
		return zeroLike(a, b)
	}
	return build(k, c)
}

func zeroLike(a, b Operand) Operand {
	switch {
	case KindOf(a).IsVector():
		return build(a.Kind(), [4]float64{})
	case KindOf(b).IsVector():
		return build(b.Kind(), [4]float64{})
	}
	return None
}
