package models

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/qmuntal/gltf"

	"github.com/taigrr/vecalg/pkg/math3d"
)

// testDoc builds a document with one primitive: a tetrahedron corner made of
// two triangles sharing the edge 0-1.
func testDoc(positions [][3]float32, indices []uint16) *gltf.Document {
	var buf []byte
	for _, p := range positions {
		for _, c := range p {
			buf = binary.LittleEndian.AppendUint32(buf, math32.Float32bits(c))
		}
	}
	idxOffset := len(buf)
	for _, i := range indices {
		buf = binary.LittleEndian.AppendUint16(buf, i)
	}

	posView, idxView := 0, 1
	posAcc, idxAcc := 0, 1
	mat := 0
	metallic := 0.5

	return &gltf.Document{
		Buffers: []*gltf.Buffer{{Data: buf}},
		BufferViews: []*gltf.BufferView{
			{Buffer: 0, ByteLength: idxOffset},
			{Buffer: 0, ByteOffset: idxOffset, ByteLength: len(buf) - idxOffset},
		},
		Accessors: []*gltf.Accessor{
			{BufferView: &posView, Count: len(positions), Type: gltf.AccessorVec3, ComponentType: gltf.ComponentFloat},
			{BufferView: &idxView, Count: len(indices), Type: gltf.AccessorScalar, ComponentType: gltf.ComponentUshort},
		},
		Materials: []*gltf.Material{{
			Name:                 "steel",
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{MetallicFactor: &metallic},
		}},
		Meshes: []*gltf.Mesh{{
			Name: "corner",
			Primitives: []*gltf.Primitive{{
				Attributes: map[string]int{gltf.POSITION: posAcc},
				Indices:    &idxAcc,
				Material:   &mat,
				Mode:       gltf.PrimitiveTriangles,
			}},
		}},
	}
}

var cornerPositions = [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 2}}

func TestFromDocument(t *testing.T) {
	doc := testDoc(cornerPositions, []uint16{0, 1, 2, 0, 3, 1})

	loader := NewGLTFLoader()
	loader.SmoothNormals = false
	mesh, err := loader.FromDocument(doc, "corner.glb")
	if err != nil {
		t.Fatalf("FromDocument: %v", err)
	}

	if mesh.VertexCount() != 4 || mesh.TriangleCount() != 2 {
		t.Fatalf("got %d vertices, %d faces; want 4, 2", mesh.VertexCount(), mesh.TriangleCount())
	}
	if mesh.Faces[1].V != [3]int{0, 3, 1} {
		t.Errorf("face 1 = %v, want [0 3 1]", mesh.Faces[1].V)
	}
	if mesh.BoundsMax != math3d.V3(1, 1, 2) || mesh.BoundsMin != math3d.V3(0, 0, 0) {
		t.Errorf("bounds = %v..%v", mesh.BoundsMin, mesh.BoundsMax)
	}

	// face 0 lies in z=0 and winds counter-clockwise seen from +Z
	if n := mesh.Vertices[2].Normal; n != math3d.V3(0, 0, 1) {
		t.Errorf("normal of vertex 2 = %v, want +Z", n)
	}

	mat := mesh.GetMaterial(mesh.GetFaceMaterial(0))
	if mat == nil || mat.Name != "steel" {
		t.Fatalf("face material = %+v, want steel", mat)
	}
	if mat.Metallic != 0.5 || mat.Roughness != 1 || mat.BaseColor != math3d.V4(1, 1, 1, 1) {
		t.Errorf("material = %+v", mat)
	}
}

func TestFromDocumentErrors(t *testing.T) {
	nan := float32(math.NaN())

	tests := []struct {
		name      string
		positions [][3]float32
		indices   []uint16
		wantErr   error
	}{
		{"index out of range", cornerPositions, []uint16{0, 1, 9}, nil},
		{"non-finite position", [][3]float32{{0, 0, 0}, {nan, 0, 0}, {0, 1, 0}}, []uint16{0, 1, 2}, errNonFinite},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGLTFLoader().FromDocument(testDoc(tc.positions, tc.indices), "bad")
			if err == nil {
				t.Fatal("expected an error")
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Errorf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestFromDocumentTruncatedBuffer(t *testing.T) {
	doc := testDoc(cornerPositions, []uint16{0, 1, 2})
	doc.Accessors[0].Count = 100

	if _, err := NewGLTFLoader().FromDocument(doc, "short"); err == nil {
		t.Error("expected an error for an accessor past the end of its buffer")
	}
}

func TestLoadGLBInvalidPath(t *testing.T) {
	_, err := LoadGLB("/nonexistent/path.glb")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestGLTFLoaderCreation(t *testing.T) {
	loader := NewGLTFLoader()
	if loader == nil {
		t.Error("NewGLTFLoader returned nil")
		return
	}
	if !loader.CalculateNormals {
		t.Error("CalculateNormals should default to true")
	}
	if !loader.SmoothNormals {
		t.Error("SmoothNormals should default to true")
	}
}
