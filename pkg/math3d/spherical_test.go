package math3d

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestFromSpherical(t *testing.T) {
	tests := []struct {
		name       string
		r, th, phi float64
		want       Vec3
	}{
		{"pole", 2, 0, 0, V3(0, 0, 2)},
		{"equator +X", 2, 0, math.Pi / 2, V3(2, 0, 0)},
		{"equator +Y", 1, math.Pi / 2, math.Pi / 2, V3(0, 1, 0)},
		{"south pole", 3, 1, math.Pi, V3(0, 0, -3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FromSpherical(tc.r, tc.th, tc.phi); !near(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSphericalRoundTrip(t *testing.T) {
	v := FromAngles(0.7, 1.1)
	theta, ok := v.Theta()
	if !ok || math.Abs(theta-0.7) > eps {
		t.Errorf("Theta() = %v, want 0.7", theta)
	}
	phi, ok := v.PhiZ()
	if !ok || math.Abs(phi-1.1) > eps {
		t.Errorf("PhiZ() = %v, want 1.1", phi)
	}
}

func TestRandomUnit(t *testing.T) {
	rng := rand.New(rand.NewPCG(15, 16))
	for range 100 {
		if l := Random3(rng).Len(); math.Abs(l-1) > eps {
			t.Fatalf("|Random3| = %v", l)
		}
		if l := Random2(rng).Len(); math.Abs(l-1) > eps {
			t.Fatalf("|Random2| = %v", l)
		}
	}
}
