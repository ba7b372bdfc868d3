package math3d

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name string
		a, b Operand
		f    Func
		want Operand
	}{
		{"vec+vec", V3(1, 2, 3), V3(4, 5, 6), OpAdd, V3(5, 7, 9)},
		{"vec-scalar", V2(5, 6), Scalar(1), OpSub, V2(4, 5)},
		{"scalar-vec", Scalar(10), V2(1, 2), OpSub, V2(9, 8)},
		{"scalar*scalar", Scalar(2), Scalar(3), OpMul, Scalar(6)},
		{"vec/zero scalar", V2(2, 4), Scalar(0), OpDiv, V2(0, 0)},
		{"vec/zero vector", V3(1, 2, 3), V3(0, 0, 0), OpDiv, V3(0, 0, 0)},
		{"vec/partial zero", V3(1, 2, 3), V3(0, 2, 0), OpDiv, V3(0, 1, 0)},
		{"min", V4(1, 5, 2, 8), Scalar(3), OpMin, V4(1, 3, 2, 3)},
		{"max", V4(1, 5, 2, 8), V4(2, 2, 2, 2), OpMax, V4(2, 5, 2, 8)},
		{"assign", V2(1, 2), Scalar(7), OpAssign, V2(7, 7)},
		{"size mismatch", V3(1, 2, 3), V2(1, 1), OpAdd, V3(0, 0, 0)},
		{"none rhs", V2(1, 2), None, OpAdd, V2(0, 0)},
		{"nil rhs", V4(1, 2, 3, 4), nil, OpAdd, V4(0, 0, 0, 0)},
		{"none lhs", None, V2(1, 2), OpAdd, V2(0, 0)},
		{"no vector", None, Scalar(1), OpAdd, None},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Apply(tc.a, tc.b, tc.f); got != tc.want {
				t.Errorf("Apply(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestApplyMixed(t *testing.T) {
	tests := []struct {
		name string
		a, b Operand
		want Operand
	}{
		{"vec3+vec2", V3(1, 2, 3), V2(10, 20), V3(11, 22, 3)},
		{"vec2+vec4", V2(1, 2), V4(1, 1, 1, 1), V2(2, 3)},
		{"vec4+vec3", V4(1, 1, 1, 1), V3(1, 2, 3), V4(2, 3, 4, 1)},
		{"same size", V2(1, 2), V2(3, 4), V2(4, 6)},
		{"scalar", V3(1, 2, 3), Scalar(1), V3(2, 3, 4)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ApplyMixed(tc.a, tc.b, OpAdd); got != tc.want {
				t.Errorf("ApplyMixed(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestMutatingReturnsReceiver(t *testing.T) {
	v := V3(1, 2, 3)
	if p := v.Add(Scalar(1)); p != &v {
		t.Fatal("Add did not return its receiver")
	}

	v.Sub(V3(1, 1, 1)).Mul(Scalar(2)).Div(V3(1, 2, 0))
	if v != V3(2, 2, 0) {
		t.Errorf("chained result = %v, want (2, 2, 0)", v)
	}
}

func TestMutatingMismatchIsNoop(t *testing.T) {
	v := V3(1, 2, 3)
	v.Add(V2(1, 1))
	v.Mul(None)
	v.Sub(nil)
	if v != V3(1, 2, 3) {
		t.Errorf("v = %v, want unchanged", v)
	}

	w := V2(1, 2)
	w.Assign(V4(9, 9, 9, 9))
	if w != V2(1, 2) {
		t.Errorf("w = %v, want unchanged", w)
	}
}

func TestCompare(t *testing.T) {
	v := V2(1, 5)
	v.Compare(V2(3, 3), OpMax)
	if v != V2(3, 5) {
		t.Errorf("Compare = %v, want (3, 5)", v)
	}

	w := V3(1, 5, 3)
	w.CompareMixed(V2(4, 4), OpMax)
	if w != V3(4, 5, 3) {
		t.Errorf("CompareMixed = %v, want (4, 5, 3)", w)
	}

	u := V4(1, 2, 3, 4)
	u.CompareMixed(V2(0, 0), func(a, b float64) float64 { return a - b + 1 })
	if u != V4(2, 3, 3, 4) {
		t.Errorf("CompareMixed custom = %v, want (2, 3, 3, 4)", u)
	}
}

func TestPureLeavesOperands(t *testing.T) {
	a, b := V2(1, 2), V2(3, 4)
	_ = a.Sum(b)
	_ = a.Quot(Scalar(0))
	_ = Apply(a, b, OpMul)
	if a != V2(1, 2) || b != V2(3, 4) {
		t.Errorf("operands changed: a=%v b=%v", a, b)
	}
}

func TestVec2PureOps(t *testing.T) {
	a, b := V2(6, -2), V2(3, 4)
	tests := []struct {
		name string
		got  Vec2
		want Vec2
	}{
		{"sum", a.Sum(b), V2(9, 2)},
		{"diff", a.Diff(b), V2(3, -6)},
		{"prod", a.Prod(Scalar(2)), V2(12, -4)},
		{"quot", a.Quot(b), V2(2, -0.5)},
		{"min", a.Min(b), V2(3, -2)},
		{"max", a.Max(b), V2(6, 4)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %v, want %v", tc.got, tc.want)
			}
		})
	}
}

func TestScalarMatchesBroadcast(t *testing.T) {
	v := V4(1, -2, 3.5, 0)
	ops := map[string]Func{
		"add": OpAdd, "sub": OpSub, "mul": OpMul,
		"div": OpDiv, "min": OpMin, "max": OpMax,
	}
	for _, s := range []float64{-1.5, 0, 2} {
		for name, f := range ops {
			byScalar := Apply(v, Scalar(s), f)
			byVector := Apply(v, V4(s, s, s, s), f)
			if byScalar != byVector {
				t.Errorf("%s %v: scalar %v != broadcast %v", name, s, byScalar, byVector)
			}
		}
	}
}

func TestSumComponents(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 100 {
		v := V3(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64())
		s := rng.NormFloat64()
		got := v.Sum(Scalar(s))
		if got.X != v.X+s || got.Y != v.Y+s || got.Z != v.Z+s {
			t.Fatalf("%v + %v = %v", v, s, got)
		}
	}
}

func TestSumDiffRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for range 100 {
		a := V4(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64())
		b := V4(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64())
		got := a.Sum(b).Diff(b)
		if !near(got, a) {
			t.Fatalf("(%v + %v) - %v = %v", a, b, b, got)
		}
	}
}

func TestOpDiv(t *testing.T) {
	if got := OpDiv(1, 0); got != 0 {
		t.Errorf("OpDiv(1, 0) = %v, want 0", got)
	}
	if got := OpDiv(-1, 0); math.IsInf(got, 0) || got != 0 {
		t.Errorf("OpDiv(-1, 0) = %v, want 0", got)
	}
	if got := OpDiv(6, 3); got != 2 {
		t.Errorf("OpDiv(6, 3) = %v, want 2", got)
	}
}
