package math3d

import "testing"

type tuple []float64

func (t tuple) Components() []float64 { return t }

func TestClassify(t *testing.T) {
	var nilVec *Vec3

	tests := []struct {
		name string
		in   any
		want Kind
	}{
		{"float64", 2.5, KindScalar},
		{"float32", float32(1), KindScalar},
		{"int", 3, KindScalar},
		{"int8", int8(-2), KindScalar},
		{"int16", int16(2), KindScalar},
		{"uint", uint(3), KindScalar},
		{"uint8", uint8(3), KindScalar},
		{"uint16", uint16(3), KindScalar},
		{"uint32", uint32(3), KindScalar},
		{"uint64", uint64(3), KindScalar},
		{"Scalar", Scalar(4), KindScalar},
		{"Vec2", V2(1, 2), KindVec2},
		{"Vec3 pointer", &Vec3{1, 2, 3}, KindVec3},
		{"nil Vec3 pointer", nilVec, KindNone},
		{"Vec4", V4(1, 2, 3, 4), KindVec4},
		{"array 3", [3]float64{1, 2, 3}, KindVec3},
		{"float32 array 4", [4]float32{1, 2, 3, 4}, KindVec4},
		{"slice 2", []float64{1, 2}, KindVec2},
		{"slice 1", []float64{1}, KindNone},
		{"slice 5", []float64{1, 2, 3, 4, 5}, KindNone},
		{"float32 slice 2", []float32{1, 2}, KindVec2},
		{"float32 slice 4", []float32{1, 2, 3, 4}, KindVec4},
		{"float32 slice 5", []float32{1, 2, 3, 4, 5}, KindNone},
		{"tuple 3", tuple{1, 2, 3}, KindVec3},
		{"tuple 0", tuple{}, KindNone},
		{"string", "xyz", KindNone},
		{"nil", nil, KindNone},
		{"None", None, KindNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.in); got != tc.want {
				t.Errorf("Classify(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestOfKeepsComponents(t *testing.T) {
	if got := Of(uint8(200)); got != Scalar(200) {
		t.Errorf("Of(uint8) = %v, want 200", got)
	}
	if got := Of(int8(-5)); got != Scalar(-5) {
		t.Errorf("Of(int8) = %v, want -5", got)
	}
	if got := Of([]float32{0.5, -2, 8}); got != V3(0.5, -2, 8) {
		t.Errorf("Of([]float32) = %v", got)
	}
	if got := Of([4]float64{1, 2, 3, 4}); got != V4(1, 2, 3, 4) {
		t.Errorf("Of(array) = %v", got)
	}
	if got := Of(tuple{5, 6}); got != V2(5, 6) {
		t.Errorf("Of(tuple) = %v", got)
	}
	if got := Of(&Vec2{7, 8}); got != V2(7, 8) {
		t.Errorf("Of(*Vec2) = %v", got)
	}
	if got := Of(int64(9)); got != Scalar(9) {
		t.Errorf("Of(int64) = %v", got)
	}
}

func TestKindDim(t *testing.T) {
	tests := []struct {
		kind   Kind
		dim    int
		vector bool
		name   string
	}{
		{KindNone, 0, false, "none"},
		{KindScalar, 1, false, "scalar"},
		{KindVec2, 2, true, "vec2"},
		{KindVec3, 3, true, "vec3"},
		{KindVec4, 4, true, "vec4"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.kind.Dim(); got != tc.dim {
				t.Errorf("Dim() = %d, want %d", got, tc.dim)
			}
			if got := tc.kind.IsVector(); got != tc.vector {
				t.Errorf("IsVector() = %v, want %v", got, tc.vector)
			}
			if got := tc.kind.String(); got != tc.name {
				t.Errorf("String() = %q, want %q", got, tc.name)
			}
		})
	}
}

func TestKindOfNil(t *testing.T) {
	if k := KindOf(nil); k != KindNone {
		t.Errorf("KindOf(nil) = %v, want none", k)
	}
}
