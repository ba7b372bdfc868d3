// Package math3d provides 2-, 3- and 4-component vectors whose arithmetic
// accepts either another vector or a scalar as the right-hand operand.
package math3d

// Kind is the runtime shape of an operand.
type Kind uint8

const (
	KindNone Kind = iota // not usable as an operand
	KindScalar
	KindVec2
	KindVec3
	KindVec4
)

// Dim returns the component count: 1 for scalars, 2..4 for vectors, 0 otherwise.
func (k Kind) Dim() int {
	switch k {
	case KindScalar:
		return 1
	case KindVec2:
		return 2
	case KindVec3:
		return 3
	case KindVec4:
		return 4
	}
	return 0
}

// IsVector reports whether k is one of the vector kinds.
func (k Kind) IsVector() bool {
	return k >= KindVec2 && k <= KindVec4
}

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindVec2:
		return "vec2"
	case KindVec3:
		return "vec3"
	case KindVec4:
		return "vec4"
	}
	return "none"
}

// vectorKind returns the vector kind with n components.
func vectorKind(n int) Kind {
	switch n {
	case 2:
		return KindVec2
	case 3:
		return KindVec3
	case 4:
		return KindVec4
	}
	return KindNone
}

// Operand is the right-hand side of a component-wise operation.
// It is implemented by Scalar, Vec2, Vec3 and Vec4.
type Operand interface {
	Kind() Kind
	// components returns the operand laid out in x, y, z, w order.
	// Slots past the operand's dimension are zero; a scalar fills all four.
	components() [4]float64
}

// Scalar is a real operand broadcast across every component.
type Scalar float64

// Kind implements Operand.
func (s Scalar) Kind() Kind { return KindScalar }

func (s Scalar) components() [4]float64 {
	f := float64(s)
	return [4]float64{f, f, f, f}
}

// none is the operand for values that have no vector or scalar shape.
type none struct{}

func (none) Kind() Kind             { return KindNone }
func (none) components() [4]float64 { return [4]float64{} }

// None is the operand every unclassifiable value resolves to.
var None Operand = none{}

// KindOf returns the kind of o. A nil operand is KindNone.
func KindOf(o Operand) Kind {
	if o == nil {
		return KindNone
	}
	return o.Kind()
}

// Tuple is implemented by foreign types that expose their components
// positionally.
type Tuple interface {
	Components() []float64
}

// Of classifies x by shape and returns it as an Operand.
//
// Values of any built-in integer or float type become Scalars. Vec2, Vec3,
// Vec4 and pointers to them are returned as-is. Arrays and slices of 2 to 4
// floats, and Tuple values, become the vector of matching size. Everything
// else is None.
func Of(x any) Operand {
	switch v := x.(type) {
	case *Vec2:
		if v != nil {
			return *v
		}
	case *Vec3:
		if v != nil {
			return *v
		}
	case *Vec4:
		if v != nil {
			return *v
		}
	case Operand:
		return v
	case float64:
		return Scalar(v)
	case float32:
		return Scalar(v)
	case int:
		return Scalar(v)
	case int8:
		return Scalar(v)
	case int16:
		return Scalar(v)
	case int32:
		return Scalar(v)
	case int64:
		return Scalar(v)
	case uint:
		return Scalar(v)
	case uint8:
		return Scalar(v)
	case uint16:
		return Scalar(v)
	case uint32:
		return Scalar(v)
	case uint64:
		return Scalar(v)
	case uintptr:
		return Scalar(v)
	case [2]float64:
		return Vec2{v[0], v[1]}
	case [3]float64:
		return Vec3{v[0], v[1], v[2]}
	case [4]float64:
		return Vec4{v[0], v[1], v[2], v[3]}
	case [2]float32:
		return Vec2{float64(v[0]), float64(v[1])}
	case [3]float32:
		return Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
	case [4]float32:
		return Vec4{float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3])}
	case []float64:
		return fromSlice(v)
	case []float32:
		if len(v) > 4 {
			return None
		}
		var c [4]float64
		for i, f := range v {
			c[i] = float64(f)
		}
		return fromSlice(c[:len(v)])
	case Tuple:
		return fromSlice(v.Components())
	}
	return None
}

// Classify reports the shape of an arbitrary value.
func Classify(x any) Kind {
	return Of(x).Kind()
}

func fromSlice(s []float64) Operand {
	var c [4]float64
	k := vectorKind(copy(c[:], s))
	if k == KindNone || len(s) > 4 {
		return None
	}
	return build(k, c)
}

// build returns the operand of kind k holding c.
func build(k Kind, c [4]float64) Operand {
	switch k {
	case KindScalar:
		return Scalar(c[0])
	case KindVec2:
		return Vec2{c[0], c[1]}
	case KindVec3:
		return Vec3{c[0], c[1], c[2]}
	case KindVec4:
		return Vec4{c[0], c[1], c[2], c[3]}
	}
	return None
}
