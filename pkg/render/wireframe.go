package render

import (
	"math"

	"github.com/taigrr/vecalg/pkg/math3d"
	"github.com/taigrr/vecalg/pkg/scalar"
)

// Shape is a triangle mesh the renderers can draw. models.Mesh satisfies it.
type Shape interface {
	VertexCount() int
	TriangleCount() int
	GetVertex(i int) (pos, normal math3d.Vec3)
	GetFace(i int) [3]int
	GetBounds() (min, max math3d.Vec3)
	Edges() [][2]int
}

// FaceColorer is implemented by shapes that carry per-face colour.
type FaceColorer interface {
	FaceColor(i int) math3d.Vec4
}

// CullingStats tracks frustum culling per frame.
type CullingStats struct {
	MeshesTested int
	MeshesCulled int
	MeshesDrawn  int
}

// clipPlanes are the six homogeneous clip-space half spaces, each written
// so that a point p is inside when p·plane >= 0.
var clipPlanes = [6]math3d.Vec4{
	{X: 1, W: 1}, {X: -1, W: 1},
	{Y: 1, W: 1}, {Y: -1, W: 1},
	{Z: 1, W: 1}, {Z: -1, W: 1},
}

// clipSegment trims the clip-space segment a-b to the view volume using
// Liang-Barsky. ok is false when nothing remains.
func clipSegment(a, b math3d.Vec4) (math3d.Vec4, math3d.Vec4, bool) {
	t0, t1 := 0.0, 1.0
	for _, p := range clipPlanes {
		da, db := a.Dot(p), b.Dot(p)
		switch {
		case da < 0 && db < 0:
			return a, b, false
		case da < 0:
			t0 = math.Max(t0, da/(da-db))
		case db < 0:
			t1 = math.Min(t1, da/(da-db))
		}
	}
	if t0 > t1 {
		return a, b, false
	}
	return a.Mix(b, math3d.Scalar(t0)), a.Mix(b, math3d.Scalar(t1)), true
}

// Wireframe renders 3D wireframe objects.
type Wireframe struct {
	camera *Camera
	fb     *Framebuffer

	// HiddenLines drops edges of triangles facing away from the camera.
	HiddenLines bool

	// Light is the direction toward the light used to shade face edges.
	// The zero vector disables shading.
	Light math3d.Vec3

	Stats CullingStats
}

// NewWireframe creates a new wireframe renderer.
func NewWireframe(camera *Camera, fb *Framebuffer) *Wireframe {
	return &Wireframe{
		camera: camera,
		fb:     fb,
	}
}

// ResetStats zeroes the culling counters.
func (w *Wireframe) ResetStats() {
	w.Stats = CullingStats{}
}

// DrawLine3D draws the visible part of a line in 3D space.
func (w *Wireframe) DrawLine3D(p1, p2 math3d.Vec3, color Color) {
	a, b, ok := clipSegment(w.camera.Clip(p1), w.camera.Clip(p2))
	if !ok {
		return
	}
	x1, y1, _ := ClipToScreen(a, w.fb.Width, w.fb.Height)
	x2, y2, _ := ClipToScreen(b, w.fb.Width, w.fb.Height)
	w.fb.DrawLine(int(x1), int(y1), int(x2), int(y2), color)
}

// visible reports whether the shape's bounds intersect the view frustum.
func (w *Wireframe) visible(s Shape) bool {
	w.Stats.MeshesTested++
	lo, hi := s.GetBounds()
	if !w.camera.Frustum().IntersectAABB(NewAABB(lo, hi)) {
		w.Stats.MeshesCulled++
		return false
	}
	w.Stats.MeshesDrawn++
	return true
}

// DrawMesh draws every edge of s. With HiddenLines set only edges of
// camera-facing triangles are drawn, each in its face colour shaded by
// Light when s provides colours. It reports whether s survived culling.
func (w *Wireframe) DrawMesh(s Shape, color Color) bool {
	if !w.visible(s) {
		return false
	}
	if !w.HiddenLines {
		for _, e := range s.Edges() {
			a, _ := s.GetVertex(e[0])
			b, _ := s.GetVertex(e[1])
			w.DrawLine3D(a, b, color)
		}
		return true
	}

	colors, _ := s.(FaceColorer)
	light := w.Light.Unit()
	for i := range s.TriangleCount() {
		f := s.GetFace(i)
		var v [3]math3d.Vec3
		for j := range v {
			v[j], _ = s.GetVertex(f[j])
		}
		n := v[1].Diff(v[0]).Cross(v[2].Diff(v[0]))
		if n.Dot(w.camera.Position.Diff(v[0])) <= 0 {
			continue
		}
		c := color
		if colors != nil {
			c = ColorFromVec4(colors.FaceColor(i))
		}
		if !light.IsZero() {
			c = Shade(c, lambert(n.Unit(), light))
		}
		for j := range v {
			w.DrawLine3D(v[j], v[(j+1)%3], c)
		}
	}
	return true
}

// ambient is the light a face receives when turned away from Light.
const ambient = 0.3

// lambert returns the ambient plus diffuse factor for a unit normal.
func lambert(n, light math3d.Vec3) float64 {
	return scalar.Mix(ambient, 1, scalar.Saturate(n.Dot(light)))
}

// cubeEdges index the corners produced by AABB.Corner.
var cubeEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7}, // along X
	{0, 2}, {1, 3}, {4, 6}, {5, 7}, // along Y
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // along Z
}

// DrawCube draws a wireframe cube.
func (w *Wireframe) DrawCube(center math3d.Vec3, size float64, color Color) {
	w.DrawRotatedCube(center, size, math3d.Up(), 0, color)
}

// DrawRotatedCube draws a cube turned about axis through its center.
func (w *Wireframe) DrawRotatedCube(center math3d.Vec3, size float64, axis math3d.Vec3, by float64, color Color) {
	h := math3d.Scalar(size / 2)
	box := AABB{Min: math3d.New3(h).Negated(), Max: math3d.New3(h)}

	var corners [8]math3d.Vec3
	for i := range corners {
		corners[i] = box.Corner(i)
		corners[i].RotateAbout(axis, math3d.Scalar(by)).Add(center)
	}
	for _, e := range cubeEdges {
		w.DrawLine3D(corners[e[0]], corners[e[1]], color)
	}
}

// DrawAxes draws the coordinate axes at the origin.
func (w *Wireframe) DrawAxes(length float64) {
	origin := math3d.Zero3()
	w.DrawLine3D(origin, math3d.V3(length, 0, 0), ColorRed)   // X axis
	w.DrawLine3D(origin, math3d.V3(0, length, 0), ColorGreen) // Y axis
	w.DrawLine3D(origin, math3d.V3(0, 0, length), ColorBlue)  // Z axis
}

// DrawGrid draws a grid on the XZ plane at height y.
func (w *Wireframe) DrawGrid(size, step, y float64, color Color) {
	if step <= 0 {
		return
	}
	half := size / 2
	for x := -half; x <= half; x += step {
		w.DrawLine3D(math3d.V3(x, y, -half), math3d.V3(x, y, half), color)
	}
	for z := -half; z <= half; z += step {
		w.DrawLine3D(math3d.V3(-half, y, z), math3d.V3(half, y, z), color)
	}
}

// DrawPoint draws a point as a small cross.
func (w *Wireframe) DrawPoint(pos math3d.Vec3, size float64, color Color) {
	for _, axis := range [3]math3d.Vec3{math3d.Right(), math3d.Up(), math3d.Forward()} {
		arm := axis.Prod(math3d.Scalar(size / 2))
		w.DrawLine3D(pos.Diff(arm), pos.Sum(arm), color)
	}
}
