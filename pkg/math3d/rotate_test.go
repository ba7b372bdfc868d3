package math3d

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestRotateAbout(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		axis Vec3
		by   Operand
		want Vec3
	}{
		{"x about z", V3(1, 0, 0), V3(0, 0, 1), Scalar(math.Pi / 2), V3(0, 1, 0)},
		{"keeps axial part", V3(1, 0, 1), V3(0, 0, 1), Scalar(math.Pi / 2), V3(0, 1, 1)},
		{"non-unit axis", V3(1, 0, 1), V3(0, 0, 5), Scalar(math.Pi / 2), V3(0, 1, 1)},
		{"half turn", V3(1, 2, 3), V3(0, 1, 0), Scalar(math.Pi), V3(-1, 2, -3)},
		{"direction", V3(1, 0, 0), V3(0, 0, 1), V2(0, 3), V3(0, 1, 0)},
		{"on the axis", V3(0, 0, 2), V3(0, 0, 1), Scalar(1), V3(0, 0, 2)},
		{"zero axis", V3(1, 2, 3), Vec3{}, Scalar(1), V3(1, 2, 3)},
		{"zero direction", V3(1, 2, 3), V3(0, 0, 1), Vec2{}, V3(1, 2, 3)},
		{"bad angle", V3(1, 2, 3), V3(0, 0, 1), None, V3(1, 2, 3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := tc.v
			if p := v.RotateAbout(tc.axis, tc.by); p != &v {
				t.Fatal("RotateAbout did not return its receiver")
			}
			if !near(v, tc.want) {
				t.Errorf("got %v, want %v", v, tc.want)
			}
			if got := tc.v.Rotated(tc.axis, tc.by); !near(got, tc.want) {
				t.Errorf("Rotated = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRotateAboutPreservesLength(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 14))
	for range 100 {
		v := V3(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64())
		axis := Random3(rng)
		angle := rng.Float64() * 2 * math.Pi

		got := v.Rotated(axis, Scalar(angle))
		if math.Abs(got.Len()-v.Len()) > eps {
			t.Fatalf("|rotate(%v)| = %v, want %v", v, got.Len(), v.Len())
		}
		if math.Abs(got.Dot(axis)-v.Dot(axis)) > eps {
			t.Fatalf("axial component changed: %v -> %v", v.Dot(axis), got.Dot(axis))
		}
		back := got.Rotated(axis, Scalar(-angle))
		if !near(back, v) {
			t.Fatalf("rotate there and back = %v, want %v", back, v)
		}
	}
}
