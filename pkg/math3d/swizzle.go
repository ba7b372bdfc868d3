package math3d

//go:generate go run ../../internal/swizzlegen -o swizzle_gen.go

// axisIndex maps a swizzle letter to its component slot.
func axisIndex(r byte) int {
	switch r {
	case 'x':
		return 0
	case 'y':
		return 1
	case 'z':
		return 2
	case 'w':
		return 3
	}
	return -1
}

// swizzle reads the components of o named by letters, in letter order.
func swizzle(o Operand, letters string) Operand {
	k := vectorKind(len(letters))
	if k == KindNone {
		return None
	}
	n, src := o.Kind().Dim(), o.components()
	var c [4]float64
	for i := range len(letters) {
		j := axisIndex(letters[i])
		if j < 0 || j >= n {
			return None
		}
		c[i] = src[j]
	}
	return build(k, c)
}

// unswizzle writes o into the components of dst named by letters: the i-th
// component of o goes to the slot of the i-th letter. A scalar is broadcast.
// Letters must be distinct axes of dst and o must have at least as many
// components as there are letters, otherwise dst is unchanged.
func unswizzle[V Vector](dst *V, letters string, o Operand) *V {
	n := (*dst).Kind().Dim()
	if len(letters) == 0 || len(letters) > n {
		return dst
	}
	switch k := KindOf(o); {
	case k == KindScalar:
	case k.IsVector() && k.Dim() >= len(letters):
	default:
		return dst
	}
	var seen [4]bool
	for i := range len(letters) {
		j := axisIndex(letters[i])
		if j < 0 || j >= n || seen[j] {
			return dst
		}
		seen[j] = true
	}
	c, src := (*dst).components(), o.components()
	for i := range len(letters) {
		c[axisIndex(letters[i])] = src[i]
	}
	*dst = pack[V](c)
	return dst
}

// Swizzle returns the components named by letters, e.g. "yx", as a new
// vector. Letters other than x and y give None.
func (v Vec2) Swizzle(letters string) Operand { return swizzle(v, letters) }

// Swizzle returns the components named by letters, e.g. "zx" or "xzy", as a
// new vector. Letters other than x, y and z give None.
func (v Vec3) Swizzle(letters string) Operand { return swizzle(v, letters) }

// Swizzle returns the components named by letters, e.g. "wz" or "zyxw", as a
// new vector.
func (v Vec4) Swizzle(letters string) Operand { return swizzle(v, letters) }

// SetSwizzle assigns o to the components named by letters and returns v.
func (v *Vec2) SetSwizzle(letters string, o Operand) *Vec2 { return unswizzle(v, letters, o) }

// SetSwizzle assigns o to the components named by letters and returns v.
func (v *Vec3) SetSwizzle(letters string, o Operand) *Vec3 { return unswizzle(v, letters, o) }

// SetSwizzle assigns o to the components named by letters and returns v.
func (v *Vec4) SetSwizzle(letters string, o Operand) *Vec4 { return unswizzle(v, letters, o) }
