package models

import "github.com/taigrr/vecalg/pkg/math3d"

// Cube returns an axis-aligned cube of the given edge length centered on the
// origin. Vertex normals point out through the corners.
func Cube(size float64) *Mesh {
	m := NewMesh("cube")
	h := size / 2
	for i := range 8 {
		// bit 0 = x, bit 1 = y, bit 2 = z
		corner := math3d.V3(-h, -h, -h)
		if i&1 != 0 {
			corner.X = h
		}
		if i&2 != 0 {
			corner.Y = h
		}
		if i&4 != 0 {
			corner.Z = h
		}
		m.Vertices = append(m.Vertices, Vertex{Position: corner, Normal: corner.Unit()})
	}

	quads := [6][4]int{
		{0, 2, 3, 1}, // -Z
		{4, 5, 7, 6}, // +Z
		{0, 1, 5, 4}, // -Y
		{2, 6, 7, 3}, // +Y
		{0, 4, 6, 2}, // -X
		{1, 3, 7, 5}, // +X
	}
	for _, q := range quads {
		m.Faces = append(m.Faces,
			Face{V: [3]int{q[0], q[1], q[2]}, Material: -1},
			Face{V: [3]int{q[0], q[2], q[3]}, Material: -1},
		)
	}

	m.CalculateBounds()
	return m
}

// Octahedron returns the regular octahedron with vertices on the unit axes.
func Octahedron() *Mesh {
	m := NewMesh("octahedron")
	for _, p := range []math3d.Vec3{
		math3d.V3(1, 0, 0), math3d.V3(-1, 0, 0),
		math3d.V3(0, 1, 0), math3d.V3(0, -1, 0),
		math3d.V3(0, 0, 1), math3d.V3(0, 0, -1),
	} {
		m.Vertices = append(m.Vertices, Vertex{Position: p, Normal: p})
	}

	for _, f := range [8][3]int{
		{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
		{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
	} {
		m.Faces = append(m.Faces, Face{V: f, Material: -1})
	}

	m.CalculateBounds()
	return m
}
