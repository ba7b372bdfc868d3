// Package models provides mesh loading and representation for the demo.
package models

import (
	"github.com/taigrr/vecalg/pkg/math3d"
)

// Mesh represents a triangle mesh with per-face materials.
type Mesh struct {
	Name      string
	Vertices  []Vertex
	Faces     []Face
	Materials []Material

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// Vertex holds the attributes of one mesh vertex.
type Vertex struct {
	Position math3d.Vec3
	Normal   math3d.Vec3
}

// Face represents a triangle face with vertex indices and material reference.
type Face struct {
	V        [3]int // Indices into Mesh.Vertices
	Material int    // Index into Mesh.Materials (-1 for no material)
}

// Material is the flat colour part of a PBR material.
type Material struct {
	Name      string
	BaseColor math3d.Vec4 // RGBA in 0-1 range
	Metallic  float64     // 0 = dielectric, 1 = metal
	Roughness float64     // 0 = smooth, 1 = rough
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]Vertex, 0),
		Faces:    make([]Face, 0),
	}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		m.BoundsMin, m.BoundsMax = math3d.Vec3{}, math3d.Vec3{}
		return
	}

	m.BoundsMin = m.Vertices[0].Position
	m.BoundsMax = m.Vertices[0].Position

	for _, v := range m.Vertices[1:] {
		m.BoundsMin.Compare(v.Position, math3d.OpMin)
		m.BoundsMax.Compare(v.Position, math3d.OpMax)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Mix(m.BoundsMax, math3d.Scalar(0.5))
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Diff(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// faceNormal returns the unnormalized normal of face f.
func (m *Mesh) faceNormal(f Face) math3d.Vec3 {
	v0 := m.Vertices[f.V[0]].Position
	v1 := m.Vertices[f.V[1]].Position
	v2 := m.Vertices[f.V[2]].Position
	return v1.Diff(v0).Cross(v2.Diff(v0))
}

// CalculateNormals assigns each face's normal to its vertices. Shared
// vertices end up with the normal of the last face that touches them.
func (m *Mesh) CalculateNormals() {
	for _, f := range m.Faces {
		normal := m.faceNormal(f).Unit()
		for _, i := range f.V {
			m.Vertices[i].Normal = normal
		}
	}
}

// CalculateSmoothNormals computes area-weighted averaged normals.
func (m *Mesh) CalculateSmoothNormals() {
	for i := range m.Vertices {
		m.Vertices[i].Normal = math3d.Zero3()
	}

	for _, f := range m.Faces {
		normal := m.faceNormal(f) // Don't normalize yet
		for _, i := range f.V {
			m.Vertices[i].Normal.Add(normal)
		}
	}

	for i := range m.Vertices {
		m.Vertices[i].Normal.Normalize()
	}
}

// Rotate turns the mesh about axis through the origin by an angle in radians
// or by the direction of a Vec2.
func (m *Mesh) Rotate(axis math3d.Vec3, by math3d.Operand) {
	for i := range m.Vertices {
		m.Vertices[i].Position.RotateAbout(axis, by)
		m.Vertices[i].Normal.RotateAbout(axis, by)
	}
	m.CalculateBounds()
}

// Scale multiplies every position by a scalar or per-axis Vec3.
func (m *Mesh) Scale(by math3d.Operand) {
	for i := range m.Vertices {
		m.Vertices[i].Position.Mul(by)
		// Normals take the inverse scale. A zero axis collapses to 0.
		m.Vertices[i].Normal.Div(by).Normalize()
	}
	m.CalculateBounds()
}

// Translate moves every position by a scalar or Vec3 offset.
func (m *Mesh) Translate(by math3d.Operand) {
	for i := range m.Vertices {
		m.Vertices[i].Position.Add(by)
	}
	m.CalculateBounds()
}

// FitUnit centers the mesh on the origin and scales it uniformly so that its
// largest dimension spans [-1, 1].
func (m *Mesh) FitUnit() {
	m.CalculateBounds()
	m.Translate(m.Center().Negated())

	size := m.Size()
	extent := max(size.X, size.Y, size.Z)
	if extent == 0 {
		return
	}
	m.Scale(math3d.Scalar(2 / extent))
}

// Edges returns each undirected triangle edge once, lower index first, in
// order of first appearance.
func (m *Mesh) Edges() [][2]int {
	seen := make(map[[2]int]bool, len(m.Faces)*3/2)
	edges := make([][2]int, 0, len(m.Faces)*3/2)
	for _, f := range m.Faces {
		for j := range 3 {
			a, b := f.V[j], f.V[(j+1)%3]
			e := [2]int{min(a, b), max(a, b)}
			if !seen[e] {
				seen[e] = true
				edges = append(edges, e)
			}
		}
	}
	return edges
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]Vertex, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
		Materials: make([]Material, len(m.Materials)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	copy(clone.Materials, m.Materials)
	return clone
}

// GetFaceMaterial returns the material index for face i.
// Returns -1 if no material assigned.
func (m *Mesh) GetFaceMaterial(i int) int {
	return m.Faces[i].Material
}

// GetMaterial returns the material at index i.
// Returns nil if index is out of bounds or -1.
func (m *Mesh) GetMaterial(i int) *Material {
	if i < 0 || i >= len(m.Materials) {
		return nil
	}
	return &m.Materials[i]
}

// MaterialCount returns the number of materials.
func (m *Mesh) MaterialCount() int {
	return len(m.Materials)
}

// GetBounds returns the axis-aligned bounding box.
func (m *Mesh) GetBounds() (min, max math3d.Vec3) {
	return m.BoundsMin, m.BoundsMax
}

// GetVertex returns the position and normal of vertex i.
func (m *Mesh) GetVertex(i int) (pos, normal math3d.Vec3) {
	v := m.Vertices[i]
	return v.Position, v.Normal
}

// GetFace returns the vertex indices of face i.
func (m *Mesh) GetFace(i int) [3]int {
	return m.Faces[i].V
}

// FaceColor returns the base colour of the material on face i, or opaque
// white when the face has none.
func (m *Mesh) FaceColor(i int) math3d.Vec4 {
	if mat := m.GetMaterial(m.Faces[i].Material); mat != nil {
		return mat.BaseColor
	}
	return math3d.V4(1, 1, 1, 1)
}
