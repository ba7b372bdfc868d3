package render

import (
	"math"

	"github.com/taigrr/vecalg/pkg/math3d"
)

// Vertex is a world-space vertex with the attributes the rasterizer
// interpolates.
type Vertex struct {
	Position math3d.Vec3
	Normal   math3d.Vec3
	Color    Color
}

// Triangle represents a triangle to be rasterized.
type Triangle struct {
	V [3]Vertex
}

// Rasterizer fills triangles into a framebuffer with a depth buffer and
// per-vertex (Gouraud) lighting.
type Rasterizer struct {
	camera  *Camera
	fb      *Framebuffer
	zbuffer []float64 // row-major, NDC depth

	// Light is the direction toward the light. The zero vector leaves
	// vertex colours unlit.
	Light math3d.Vec3

	// DisableBackfaceCulling renders both sides of triangles.
	DisableBackfaceCulling bool

	Stats CullingStats
}

// NewRasterizer creates a new rasterizer.
func NewRasterizer(camera *Camera, fb *Framebuffer) *Rasterizer {
	r := &Rasterizer{camera: camera, fb: fb}
	r.Resize()
	return r
}

// Resize resizes the depth buffer to match the framebuffer.
func (r *Rasterizer) Resize() {
	r.zbuffer = make([]float64, r.fb.Width*r.fb.Height)
	r.ClearDepth()
}

// ClearDepth resets the depth buffer. Call it before each frame.
func (r *Rasterizer) ClearDepth() {
	n := len(r.zbuffer)
	if n == 0 {
		return
	}
	// copy-doubling fill
	r.zbuffer[0] = math.MaxFloat64
	for i := 1; i < n; i *= 2 {
		copy(r.zbuffer[i:], r.zbuffer[:i])
	}
}

// Depth returns the stored depth at (x, y), or MaxFloat64 out of bounds.
func (r *Rasterizer) Depth(x, y int) float64 {
	if x < 0 || x >= r.fb.Width || y < 0 || y >= r.fb.Height {
		return math.MaxFloat64
	}
	return r.zbuffer[y*r.fb.Width+x]
}

// screenVertex holds a vertex transformed to screen space.
type screenVertex struct {
	P     math3d.Vec2 // pixel position
	Z     float64     // NDC depth
	Color math3d.Vec4 // lit colour, 0-1
}

// lit returns the vertex colour after lighting as a 0-1 vector.
func (r *Rasterizer) lit(v Vertex) math3d.Vec4 {
	c := ColorToVec4(v.Color)
	light, ok := r.Light.Direction()
	if !ok {
		return c
	}
	k := lambert(v.Normal.Unit(), light)
	return c.Prod(math3d.V4(k, k, k, 1))
}

// DrawTriangle rasterizes one triangle. Triangles with a vertex at or
// behind the near plane are skipped whole.
func (r *Rasterizer) DrawTriangle(tri Triangle) {
	p0, p1, p2 := tri.V[0].Position, tri.V[1].Position, tri.V[2].Position
	if !r.DisableBackfaceCulling {
		n := p1.Diff(p0).Cross(p2.Diff(p0))
		if n.Dot(r.camera.Position.Diff(p0)) <= 0 {
			return
		}
	}

	var sv [3]screenVertex
	for i, v := range tri.V {
		clip := r.camera.Clip(v.Position)
		if clip.W < r.camera.Near {
			return
		}
		x, y, z := ClipToScreen(clip, r.fb.Width, r.fb.Height)
		sv[i] = screenVertex{P: math3d.V2(x, y), Z: z, Color: r.lit(v)}
	}

	a, b, c := sv[0].P, sv[1].P, sv[2].P
	area := b.Diff(a).Cross(c.Diff(a))
	if area == 0 {
		return
	}

	lo := a.Min(b).Min(c)
	hi := a.Max(b).Max(c)
	minX := max(0, int(math.Floor(lo.X)))
	maxX := min(r.fb.Width-1, int(math.Ceil(hi.X)))
	minY := max(0, int(math.Floor(lo.Y)))
	maxY := min(r.fb.Height-1, int(math.Ceil(hi.Y)))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := math3d.V2(float64(x)+0.5, float64(y)+0.5)

			// Edge functions give barycentric weights for either winding.
			w0 := b.Diff(p).Cross(c.Diff(p)) / area
			w1 := c.Diff(p).Cross(a.Diff(p)) / area
			w2 := 1 - w0 - w1
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*sv[0].Z + w1*sv[1].Z + w2*sv[2].Z
			if z < -1 || z > 1 || z >= r.Depth(x, y) {
				continue
			}

			col := sv[0].Color.Prod(math3d.Scalar(w0)).
				Sum(sv[1].Color.Prod(math3d.Scalar(w1))).
				Sum(sv[2].Color.Prod(math3d.Scalar(w2)))

			r.zbuffer[y*r.fb.Width+x] = z
			r.fb.SetPixel(x, y, ColorFromVec4(col))
		}
	}
}

// DrawMesh fills every triangle of s in color, or in the face colour when s
// provides one. It reports whether s survived frustum culling.
func (r *Rasterizer) DrawMesh(s Shape, color Color) bool {
	r.Stats.MeshesTested++
	lo, hi := s.GetBounds()
	if !r.camera.Frustum().IntersectAABB(NewAABB(lo, hi)) {
		r.Stats.MeshesCulled++
		return false
	}
	r.Stats.MeshesDrawn++

	colors, _ := s.(FaceColorer)
	for i := range s.TriangleCount() {
		f := s.GetFace(i)
		c := color
		if colors != nil {
			c = ColorFromVec4(colors.FaceColor(i))
		}
		var tri Triangle
		for j := range tri.V {
			pos, normal := s.GetVertex(f[j])
			tri.V[j] = Vertex{Position: pos, Normal: normal, Color: c}
		}
		r.DrawTriangle(tri)
	}
	return true
}
