package render

import (
	"math"

	"github.com/taigrr/vecalg/pkg/math3d"
)

// Plane represents a plane in 3D space using the equation: Ax + By + Cz + D = 0
// where (A, B, C) is the normal and D is the distance from origin.
type Plane struct {
	Normal math3d.Vec3
	D      float64
}

// PlaneThrough returns the plane with the given normal passing through point.
func PlaneThrough(normal, point math3d.Vec3) Plane {
	return Plane{Normal: normal, D: -normal.Dot(point)}
}

// Normalize normalizes the plane equation so the normal has unit length.
func (p *Plane) Normalize() {
	n := p.Normal.Len()
	if n == 0 {
		return
	}
	p.Normal.Div(math3d.Scalar(n))
	p.D /= n
}

// DistanceToPoint returns the signed distance from the plane to a point.
// Positive = in front (same side as normal), negative = behind.
func (p Plane) DistanceToPoint(point math3d.Vec3) float64 {
	return p.Normal.Dot(point) + p.D
}

// Frustum represents the 6 planes of a view frustum.
// Planes are ordered: Left, Right, Bottom, Top, Near, Far.
// Each plane's normal points inward (toward the center of the frustum).
type Frustum struct {
	Planes [6]Plane
}

// FrustumPlane indices for clarity.
const (
	FrustumLeft = iota
	FrustumRight
	FrustumBottom
	FrustumTop
	FrustumNear
	FrustumFar
)

// NewFrustum builds the frustum planes directly from the camera basis.
// The side planes pass through the eye and lean outward by the half field
// of view; near and far are offset along the view direction.
func NewFrustum(c *Camera) Frustum {
	var f Frustum
	tanY := math.Tan(c.FOV / 2)
	tanX := tanY * c.AspectRatio
	fwd, right, up := c.Forward(), c.Right(), c.Up()
	eye := c.Position

	lean := func(side math3d.Vec3, t float64) math3d.Vec3 {
		return side.Sum(fwd.Prod(math3d.Scalar(t)))
	}

	f.Planes[FrustumLeft] = PlaneThrough(lean(right, tanX), eye)
	f.Planes[FrustumRight] = PlaneThrough(lean(right.Negated(), tanX), eye)
	f.Planes[FrustumBottom] = PlaneThrough(lean(up, tanY), eye)
	f.Planes[FrustumTop] = PlaneThrough(lean(up.Negated(), tanY), eye)
	f.Planes[FrustumNear] = PlaneThrough(fwd, eye.Sum(fwd.Prod(math3d.Scalar(c.Near))))
	f.Planes[FrustumFar] = PlaneThrough(fwd.Negated(), eye.Sum(fwd.Prod(math3d.Scalar(c.Far))))

	for i := range f.Planes {
		f.Planes[i].Normalize()
	}
	return f
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math3d.Vec3
	Max math3d.Vec3
}

// NewAABB creates an AABB from min and max points.
func NewAABB(min, max math3d.Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// BoundPoints returns the smallest AABB containing every point.
// An empty input yields the zero box.
func BoundPoints(points ...math3d.Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	b := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b.Min.Compare(p, math3d.OpMin)
		b.Max.Compare(p, math3d.OpMax)
	}
	return b
}

// Center returns the center of the AABB.
func (b AABB) Center() math3d.Vec3 {
	return b.Min.Mix(b.Max, math3d.Scalar(0.5))
}

// Size returns the dimensions of the AABB.
func (b AABB) Size() math3d.Vec3 {
	return b.Max.Diff(b.Min)
}

// HalfSize returns half the dimensions (extents from center).
func (b AABB) HalfSize() math3d.Vec3 {
	return b.Size().Prod(math3d.Scalar(0.5))
}

// Corner returns corner i of the box, 0 through 7. Bit 0 selects Max.X,
// bit 1 Max.Y and bit 2 Max.Z.
func (b AABB) Corner(i int) math3d.Vec3 {
	return math3d.V3(
		selectComponent(i&1 != 0, b.Max.X, b.Min.X),
		selectComponent(i&2 != 0, b.Max.Y, b.Min.Y),
		selectComponent(i&4 != 0, b.Max.Z, b.Min.Z),
	)
}

// Transform returns an AABB that bounds the original AABB after fn is
// applied to each of its corners.
func (b AABB) Transform(fn func(math3d.Vec3) math3d.Vec3) AABB {
	var corners [8]math3d.Vec3
	for i := range corners {
		corners[i] = fn(b.Corner(i))
	}
	return BoundPoints(corners[:]...)
}

// Rotated bounds the box after rotating it about axis through the origin.
func (b AABB) Rotated(axis math3d.Vec3, by float64) AABB {
	return b.Transform(func(p math3d.Vec3) math3d.Vec3 {
		return p.Rotated(axis, math3d.Scalar(by))
	})
}

// Translated returns the box shifted by offset.
func (b AABB) Translated(offset math3d.Vec3) AABB {
	return AABB{Min: b.Min.Sum(offset), Max: b.Max.Sum(offset)}
}

// ContainsPoint returns true if the point is inside the AABB.
func (b AABB) ContainsPoint(p math3d.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// IntersectAABB tests if the AABB intersects or is inside the frustum.
// Returns true if any part of the AABB is visible.
// Uses the "positive vertex" optimization for faster rejection.
func (f Frustum) IntersectAABB(box AABB) bool {
	for i := range f.Planes {
		plane := f.Planes[i]

		// The corner furthest along the normal. If it is outside, all are.
		pVertex := math3d.V3(
			selectComponent(plane.Normal.X >= 0, box.Max.X, box.Min.X),
			selectComponent(plane.Normal.Y >= 0, box.Max.Y, box.Min.Y),
			selectComponent(plane.Normal.Z >= 0, box.Max.Z, box.Min.Z),
		)
		if plane.DistanceToPoint(pVertex) < 0 {
			return false
		}
	}
	return true
}

// ContainsAABB tests if the AABB is completely inside the frustum.
func (f Frustum) ContainsAABB(box AABB) bool {
	for i := range f.Planes {
		plane := f.Planes[i]

		nVertex := math3d.V3(
			selectComponent(plane.Normal.X >= 0, box.Min.X, box.Max.X),
			selectComponent(plane.Normal.Y >= 0, box.Min.Y, box.Max.Y),
			selectComponent(plane.Normal.Z >= 0, box.Min.Z, box.Max.Z),
		)
		if plane.DistanceToPoint(nVertex) < 0 {
			return false
		}
	}
	return true
}

// ContainsPoint tests if a point is inside the frustum.
func (f Frustum) ContainsPoint(p math3d.Vec3) bool {
	for i := range f.Planes {
		if f.Planes[i].DistanceToPoint(p) < 0 {
			return false
		}
	}
	return true
}

// IntersectsSphere tests if a sphere intersects the frustum.
func (f Frustum) IntersectsSphere(center math3d.Vec3, radius float64) bool {
	for i := range f.Planes {
		if f.Planes[i].DistanceToPoint(center) < -radius {
			return false
		}
	}
	return true
}

func selectComponent(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}
