package math3d

import (
	"math"
	"math/rand/v2"
)

// FromSpherical converts spherical coordinates to a vector. theta is the
// azimuth in the XY plane and phi the polar angle from +Z.
func FromSpherical(r, theta, phi float64) Vec3 {
	sinPhi := math.Sin(phi)
	return Vec3{
		r * sinPhi * math.Cos(theta),
		r * sinPhi * math.Sin(theta),
		r * math.Cos(phi),
	}
}

// FromAngles returns the unit vector with the given azimuth and polar angle.
func FromAngles(theta, phi float64) Vec3 {
	return FromSpherical(1, theta, phi)
}

// Random3 returns a unit vector uniformly distributed on the sphere.
func Random3(rng *rand.Rand) Vec3 {
	theta := rng.Float64() * 2 * math.Pi
	phi := math.Acos(2*rng.Float64() - 1)
	return FromAngles(theta, phi)
}

// Random2 returns a unit vector at a uniformly random angle.
func Random2(rng *rand.Rand) Vec2 {
	return FromAngle(rng.Float64() * 2 * math.Pi)
}
