package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/taigrr/vecalg/pkg/math3d"
	"github.com/taigrr/vecalg/pkg/render"
)

// Scene is the demo configuration. It can be loaded from a YAML file and
// then overridden by flags.
type Scene struct {
	Model      string  `yaml:"model"`
	FPS        int     `yaml:"fps"`
	Axis       string  `yaml:"axis"`
	Speed      float64 `yaml:"speed"` // radians per second
	Background string  `yaml:"bg"`
	Mode       string  `yaml:"mode"`
	Distance   float64 `yaml:"distance"`
}

// Render modes.
const (
	ModeWire  = "wire"
	ModeSolid = "solid"
)

func defaultScene() Scene {
	return Scene{
		FPS:        60,
		Axis:       "0,1,0",
		Speed:      1,
		Background: "30,30,40",
		Mode:       ModeWire,
		Distance:   5,
	}
}

// loadScene reads a YAML scene file over the defaults. Keys missing from
// the file keep their default values.
func loadScene(path string) (Scene, error) {
	s := defaultScene()
	f, err := os.Open(path)
	if err != nil {
		return s, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&s); err != nil {
		return s, fmt.Errorf("decode scene %s: %w", path, err)
	}
	return s, nil
}

// Validate checks the scene for values the demo cannot run with.
func (s Scene) Validate() error {
	if s.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", s.FPS)
	}
	if s.Distance <= 0 {
		return fmt.Errorf("distance must be positive, got %v", s.Distance)
	}
	if s.Mode != ModeWire && s.Mode != ModeSolid {
		return fmt.Errorf("unknown mode %q (use %s or %s)", s.Mode, ModeWire, ModeSolid)
	}
	if _, err := parseAxis(s.Axis); err != nil {
		return err
	}
	if _, err := parseBackground(s.Background); err != nil {
		return err
	}
	return nil
}

// IdleSpin returns the angular velocity per frame for the configured axis
// and speed.
func (s Scene) IdleSpin() math3d.Vec3 {
	axis, _ := parseAxis(s.Axis)
	return axis.Prod(math3d.Scalar(s.Speed / float64(s.FPS)))
}

var errZeroAxis = errors.New("axis must not be zero")

// parseAxis accepts a named axis ("x", "-y", ...) or three comma separated
// components and returns the unit direction.
func parseAxis(s string) (math3d.Vec3, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	sign := 1.0
	name := s
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		sign, name = -1, rest
	}
	switch name {
	case "x":
		return math3d.Right().Prod(math3d.Scalar(sign)), nil
	case "y":
		return math3d.Up().Prod(math3d.Scalar(sign)), nil
	case "z":
		return math3d.V3(0, 0, sign), nil
	}

	c, err := parseTriple(s)
	if err != nil {
		return math3d.Vec3{}, fmt.Errorf("invalid axis %q: %w", s, err)
	}
	v := math3d.New3(c[0], c[1], c[2])
	u, ok := v.Direction()
	if !ok {
		return math3d.Vec3{}, fmt.Errorf("invalid axis %q: %w", s, errZeroAxis)
	}
	return u, nil
}

func parseTriple(s string) ([3]math3d.Scalar, error) {
	var out [3]math3d.Scalar
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return out, fmt.Errorf("want 3 components, got %d", len(parts))
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return out, err
		}
		out[i] = math3d.Scalar(f)
	}
	return out, nil
}

// parseBackground accepts "R,G,B" with 0-255 components or "#rrggbb".
func parseBackground(s string) (render.Color, error) {
	if strings.HasPrefix(s, "#") {
		return render.ParseColor(s)
	}
	c, err := parseTriple(s)
	if err != nil {
		return render.Color{}, fmt.Errorf("invalid background %q: %w", s, err)
	}
	v := math3d.New3(c[0], c[1], c[2])
	if v.Clamp(math3d.Scalar(0), math3d.Scalar(255)) != v {
		return render.Color{}, fmt.Errorf("invalid background %q: components must be 0-255", s)
	}
	return render.RGB(uint8(v.X), uint8(v.Y), uint8(v.Z)), nil
}
