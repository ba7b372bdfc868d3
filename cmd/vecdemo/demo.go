package main

import (
	"fmt"
	"math"
	"math/rand/v2"
	"path/filepath"
	"strings"

	"github.com/taigrr/vecalg/pkg/math3d"
	"github.com/taigrr/vecalg/pkg/models"
	"github.com/taigrr/vecalg/pkg/motion"
	"github.com/taigrr/vecalg/pkg/render"
	"github.com/taigrr/vecalg/pkg/scalar"
)

const (
	minDistance = 1.5
	maxDistance = 20
)

// demo owns the scene state: the mesh, its spin and hop, the camera and the
// two renderers. It knows nothing about the terminal.
type demo struct {
	scene Scene
	bg    render.Color
	mesh  *models.Mesh

	spin *motion.Spin
	hop  *motion.Hop
	lift math3d.Vec3 // current hop offset applied to the mesh
	zoom motion.Axis

	camera *render.Camera
	fb     *render.Framebuffer
	wire   *render.Wireframe
	raster *render.Rasterizer

	rng *rand.Rand
}

// loadMesh opens a glTF model scaled to fit the unit cube, or returns the
// built-in cube when path is empty.
func loadMesh(path string) (*models.Mesh, error) {
	if path == "" {
		return models.Cube(1.5), nil
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".glb", ".gltf":
	default:
		return nil, fmt.Errorf("unsupported format: %s (use .glb or .gltf)", ext)
	}
	mesh, err := models.NewGLTFLoader().Load(path)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	mesh.FitUnit()
	return mesh, nil
}

// newDemo builds a demo drawing into a terminal area of cols x rows cells.
func newDemo(scene Scene, mesh *models.Mesh, cols, rows int) (*demo, error) {
	if err := scene.Validate(); err != nil {
		return nil, err
	}
	bg, _ := parseBackground(scene.Background)

	d := &demo{
		scene: scene,
		bg:    bg,
		mesh:  mesh,
		spin:  motion.NewSpin(scene.FPS, scene.IdleSpin()),
		hop:   motion.NewHop(scene.FPS, 0),
		zoom:  motion.NewAxis(scene.FPS),
		rng:   rand.New(rand.NewPCG(1, 2)),
	}
	d.zoom.Position = scene.Distance

	d.camera = render.NewCamera()
	d.camera.SetFOV(math.Pi / 3)
	d.camera.SetClipPlanes(0.1, 100)
	d.fb = render.NewFramebuffer(cols, rows*2)
	d.wire = render.NewWireframe(d.camera, d.fb)
	d.wire.HiddenLines = true
	d.raster = render.NewRasterizer(d.camera, d.fb)

	light := math3d.V3(0.5, 1, 0.8)
	d.wire.Light = light
	d.raster.Light = light

	d.resize(cols, rows)
	d.placeCamera()
	return d, nil
}

// resize matches the framebuffer to a terminal of cols x rows cells. Each
// cell holds two roughly square pixels stacked vertically.
func (d *demo) resize(cols, rows int) {
	d.fb.Resize(cols, rows*2)
	d.raster.Resize()
	if rows > 0 {
		d.camera.SetAspectRatio(float64(cols) / float64(rows*2))
	}
}

// placeCamera keeps the camera on the +Z axis at the zoom distance.
func (d *demo) placeCamera() {
	d.camera.SetPosition(math3d.V3(0, 0, d.zoom.Position))
}

// key applies one key press. It reports false when the demo should exit.
func (d *demo) key(k string) bool {
	const kick = 0.05
	switch k {
	case "esc", "escape", "q", "ctrl+c":
		return false
	case "left", "a":
		d.spin.Impulse(math3d.V3(0, -kick, 0))
	case "right", "d":
		d.spin.Impulse(math3d.V3(0, kick, 0))
	case "up", "w":
		d.spin.Impulse(math3d.V3(-kick, 0, 0))
	case "down", "s":
		d.spin.Impulse(math3d.V3(kick, 0, 0))
	case "space":
		if !d.hop.Airborne() {
			d.hop.Launch(math3d.Vec3{}, math3d.V3(0, 4, 0))
		}
	case "enter":
		d.spin.Impulse(math3d.Random3(d.rng).Prod(math3d.Scalar(0.15)))
	case "+", "=":
		d.zoom.Velocity -= 0.1
	case "-", "_":
		d.zoom.Velocity += 0.1
	case "m":
		if d.scene.Mode == ModeWire {
			d.scene.Mode = ModeSolid
		} else {
			d.scene.Mode = ModeWire
		}
	case "h":
		d.wire.HiddenLines = !d.wire.HiddenLines
	case "r":
		d.spin.Reset()
		d.zoom = motion.NewAxis(d.scene.FPS)
		d.zoom.Position = d.scene.Distance
	}
	return true
}

// step advances the simulation one frame. The mesh spins about its own
// origin and is then moved to the hop offset.
func (d *demo) step() {
	axis, angle, spinning := d.spin.Step()
	lift := d.hop.Update()
	if spinning || lift != d.lift {
		d.mesh.Translate(d.lift.Negated())
		if spinning {
			d.mesh.Rotate(axis, math3d.Scalar(angle))
		}
		d.mesh.Translate(lift)
		d.lift = lift
	}

	d.zoom.Update()
	if z := scalar.Clamp(d.zoom.Position, minDistance, maxDistance); z != d.zoom.Position {
		d.zoom.Position, d.zoom.Velocity = z, 0
	}
	d.placeCamera()
}

// draw renders the current frame into the framebuffer.
func (d *demo) draw() {
	d.fb.Clear(d.bg)
	d.wire.ResetStats()
	d.wire.DrawGrid(6, 0.5, -1.5, render.Shade(render.ColorGray, 0.6))
	switch d.scene.Mode {
	case ModeSolid:
		d.raster.ClearDepth()
		d.raster.DrawMesh(d.mesh, render.RGB(200, 200, 200))
	default:
		d.wire.DrawMesh(d.mesh, render.RGB(0, 255, 128))
	}

	// Spin meter along the bottom edge.
	y := float64(d.fb.Height - 1)
	w := scalar.Smoothstep(0, 0.1, d.spin.Omega().Len()) * float64(d.fb.Width-1)
	d.fb.FillRect(math3d.V2(0, y), math3d.V2(w, y), render.ColorYellow)
}

func (d *demo) status() string {
	omega := d.spin.Omega()
	return fmt.Sprintf("%s  %d tris  %s  ω=%.3f rad/frame  zoom=%.1f",
		d.mesh.Name, d.mesh.TriangleCount(), d.scene.Mode, omega.Len(), d.zoom.Position)
}
