package math3d

import "math"

// Vector is the set of fixed-size vector types.
type Vector interface {
	Vec2 | Vec3 | Vec4
	Operand
}

// pack builds a V from the leading components of c.
func pack[V Vector](c [4]float64) V {
	var v V
	switch p := any(&v).(type) {
	case *Vec2:
		*p = Vec2{c[0], c[1]}
	case *Vec3:
		*p = Vec3{c[0], c[1], c[2]}
	case *Vec4:
		*p = Vec4{c[0], c[1], c[2], c[3]}
	}
	return v
}

// as converts o back to V, or returns the zero V when o has another shape.
func as[V Vector](o Operand) V {
	if v, ok := o.(V); ok {
		return v
	}
	var zero V
	return zero
}

// combine is the pure dispatch mode: it returns a new V and leaves a alone.
func combine[V Vector](a V, b Operand, f Func) V {
	_, c, ok := dispatch(a, b, f)
	if !ok {
		var zero V
		return zero
	}
	return pack[V](c)
}

// update is the mutating dispatch mode: it writes the result into dst and
// returns dst. dst is left untouched when b cannot be combined with it.
func update[V Vector](dst *V, b Operand, f Func) *V {
	if _, c, ok := dispatch(*dst, b, f); ok {
		*dst = pack[V](c)
	}
	return dst
}

func updateMixed[V Vector](dst *V, b Operand, f Func) *V {
	if _, c, ok := dispatchMixed(*dst, b, f); ok {
		*dst = pack[V](c)
	}
	return dst
}

func isZero[V Vector](v V) bool {
	return v.components() == [4]float64{}
}

func dot[V Vector](a, b V) float64 {
	c := combine(a, b, OpMul).components()
	return c[0] + c[1] + c[2] + c[3]
}

func lenSq[V Vector](v V) float64 {
	if isZero(v) {
		return 0
	}
	return dot(v, v)
}

func length[V Vector](v V) float64 {
	return norm(v.components())
}

// maxAbs returns the largest absolute component of c.
func maxAbs(c [4]float64) float64 {
	m := 0.0
	for _, x := range c {
		if x = math.Abs(x); x > m || math.IsNaN(x) {
			m = x
		}
	}
	return m
}

// finite reports whether every component of c is a finite number.
func finite(c [4]float64) bool {
	m := maxAbs(c)
	return !math.IsInf(m, 0) && !math.IsNaN(m)
}

// norm returns the Euclidean length of c. Components are scaled by the
// largest one first so the sum of squares neither overflows nor underflows.
func norm(c [4]float64) float64 {
	m := maxAbs(c)
	if m == 0 || !finite(c) {
		return m
	}
	s := 0.0
	for _, x := range c {
		x /= m
		s += x * x
	}
	return m * math.Sqrt(s)
}

// magnitude returns the length of a vector operand, or the value of a scalar.
func magnitude(o Operand) (float64, bool) {
	switch k := KindOf(o); {
	case k == KindScalar:
		return o.components()[0], true
	case k.IsVector():
		return norm(o.components()), true
	}
	return 0, false
}

// setLength rescales v to the length of o. v is first divided by its largest
// component, which keeps tiny and huge vectors representable. Zero and
// non-finite vectors are left unchanged.
func setLength[V Vector](v *V, o Operand) *V {
	c := (*v).components()
	if isZero(*v) || !finite(c) {
		return v
	}
	l, ok := magnitude(o)
	if !ok {
		return v
	}
	u := combine(*v, Scalar(maxAbs(c)), OpDiv)
	*v = combine(u, Scalar(OpDiv(l, length(u))), OpMul)
	return v
}

// direction returns the unit vector along v. ok is false, and the result the
// zero vector, when v has no direction or a non-finite component.
func direction[V Vector](v V) (V, bool) {
	if isZero(v) || !finite(v.components()) {
		var zero V
		return zero, false
	}
	setLength(&v, Scalar(1))
	return v, true
}

func negate[V Vector](v *V) *V {
	if isZero(*v) {
		return v
	}
	return update(v, Scalar(-1), OpMul)
}

func distance[V Vector](a, b V) float64 {
	if isZero(a) && isZero(b) {
		return 0
	}
	return length(combine(a, b, OpSub))
}

func distanceSq[V Vector](a, b V) float64 {
	if isZero(a) && isZero(b) {
		return 0
	}
	d := combine(a, b, OpSub)
	return dot(d, d)
}

// gather assembles an n-component vector from parts laid out left to right.
// A single scalar is broadcast. Parts that do not add up to exactly n
// components yield the zero vector.
func gather[V Vector](parts []Operand) V {
	var c [4]float64
	n := pack[V](c).Kind().Dim()
	if len(parts) == 1 && KindOf(parts[0]) == KindScalar {
		return pack[V](parts[0].components())
	}
	i := 0
	for _, p := range parts {
		k := KindOf(p)
		if k == KindNone || i+k.Dim() > n {
			return pack[V]([4]float64{})
		}
		pc := p.components()
		copy(c[i:i+k.Dim()], pc[:k.Dim()])
		i += k.Dim()
	}
	if i != n && i != 0 {
		return pack[V]([4]float64{})
	}
	return pack[V](c)
}
