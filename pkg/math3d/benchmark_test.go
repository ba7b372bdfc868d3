package math3d

import (
	"testing"
)

func BenchmarkApplyVecVec(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = Apply(v1, v2, OpAdd)
	}
}

func BenchmarkApplyVecScalar(b *testing.B) {
	v := V4(1, 2, 3, 4)

	for b.Loop() {
		_ = Apply(v, Scalar(2), OpMul)
	}
}

func BenchmarkVec3Sum(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.Sum(v2)
	}
}

func BenchmarkVec3AddChain(b *testing.B) {
	v := V3(1, 2, 3)

	for b.Loop() {
		v.Add(Scalar(1)).Sub(Scalar(1)).Mul(Scalar(1))
	}
}

func BenchmarkVec3Normalize(b *testing.B) {
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = v.Unit()
	}
}

func BenchmarkVec3Cross(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.Cross(v2)
	}
}

func BenchmarkVec3Dot(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.Dot(v2)
	}
}

func BenchmarkVec3Reflect(b *testing.B) {
	i := V3(1, -1, 0.5)
	n := V3(0, 1, 0)

	for b.Loop() {
		_ = i.Reflect(n)
	}
}

func BenchmarkRotateAbout(b *testing.B) {
	// Spin a point the way the demo does every frame
	axis := V3(0.3, 1, 0.2)
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = v.Rotated(axis, Scalar(0.01))
	}
}

func BenchmarkSwizzleGenerated(b *testing.B) {
	v := V4(1, 2, 3, 4)

	for b.Loop() {
		_ = v.ZXY()
	}
}

func BenchmarkSwizzleRuntime(b *testing.B) {
	v := V4(1, 2, 3, 4)

	for b.Loop() {
		_ = v.Swizzle("zxy")
	}
}
