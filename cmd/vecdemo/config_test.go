package main

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/taigrr/vecalg/pkg/math3d"
	"github.com/taigrr/vecalg/pkg/render"
)

func TestParseAxis(t *testing.T) {
	s := 1 / math.Sqrt(2)
	tests := []struct {
		in   string
		want math3d.Vec3
	}{
		{"x", math3d.V3(1, 0, 0)},
		{"Y", math3d.V3(0, 1, 0)},
		{"-z", math3d.V3(0, 0, -1)},
		{" -x ", math3d.V3(-1, 0, 0)},
		{"0,2,0", math3d.V3(0, 1, 0)},
		{"1, 1, 0", math3d.V3(s, s, 0)},
		{"0,0,-3", math3d.V3(0, 0, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseAxis(tt.in)
			if err != nil {
				t.Fatalf("parseAxis(%q) error: %v", tt.in, err)
			}
			if got.Distance(tt.want) > 1e-9 {
				t.Errorf("parseAxis(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseAxisErrors(t *testing.T) {
	for _, in := range []string{"", "w", "1,2", "1,2,3,4", "a,b,c", "0,0,0"} {
		t.Run(in, func(t *testing.T) {
			if _, err := parseAxis(in); err == nil {
				t.Errorf("parseAxis(%q) = nil error, want error", in)
			}
		})
	}
	if _, err := parseAxis("0,0,0"); !errors.Is(err, errZeroAxis) {
		t.Errorf("zero axis error = %v, want errZeroAxis", err)
	}
}

func TestParseBackground(t *testing.T) {
	tests := []struct {
		in   string
		want render.Color
		ok   bool
	}{
		{"30,30,40", render.RGB(30, 30, 40), true},
		{"0, 128, 255", render.RGB(0, 128, 255), true},
		{"#ff8000", render.RGB(255, 128, 0), true},
		{"256,0,0", render.Color{}, false},
		{"-1,0,0", render.Color{}, false},
		{"1,2", render.Color{}, false},
		{"#zz0000", render.Color{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseBackground(tt.in)
			if (err == nil) != tt.ok {
				t.Fatalf("parseBackground(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
			}
			if tt.ok && got != tt.want {
				t.Errorf("parseBackground(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSceneValidate(t *testing.T) {
	if err := defaultScene().Validate(); err != nil {
		t.Fatalf("default scene invalid: %v", err)
	}

	tests := []struct {
		name  string
		apply func(*Scene)
	}{
		{"zero fps", func(s *Scene) { s.FPS = 0 }},
		{"negative distance", func(s *Scene) { s.Distance = -1 }},
		{"unknown mode", func(s *Scene) { s.Mode = "points" }},
		{"bad axis", func(s *Scene) { s.Axis = "0,0,0" }},
		{"bad background", func(s *Scene) { s.Background = "red" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := defaultScene()
			tt.apply(&s)
			if err := s.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestIdleSpin(t *testing.T) {
	s := defaultScene()
	s.Axis = "-x"
	s.Speed = 3
	s.FPS = 30
	want := math3d.V3(-0.1, 0, 0)
	if got := s.IdleSpin(); got.Distance(want) > 1e-9 {
		t.Errorf("IdleSpin() = %v, want %v", got, want)
	}
}

func TestLoadScene(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	data := "fps: 30\naxis: z\nbg: \"#102030\"\nmode: solid\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := loadScene(path)
	if err != nil {
		t.Fatalf("loadScene: %v", err)
	}
	if s.FPS != 30 || s.Axis != "z" || s.Background != "#102030" || s.Mode != ModeSolid {
		t.Errorf("loaded scene = %+v", s)
	}
	// Keys missing from the file keep their defaults.
	def := defaultScene()
	if s.Speed != def.Speed || s.Distance != def.Distance || s.Model != "" {
		t.Errorf("defaults not kept: %+v", s)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("loaded scene invalid: %v", err)
	}
}

func TestLoadSceneErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := loadScene(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("loadScene(missing) = nil error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("fps: [1, 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadScene(bad); err == nil {
		t.Error("loadScene(bad yaml) = nil error")
	}
}

func TestResolveScene(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	if err := os.WriteFile(path, []byte("fps: 30\nmode: solid\nspeed: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCmd()
	if err := cmd.ParseFlags([]string{"--config", path, "--fps", "24"}); err != nil {
		t.Fatal(err)
	}
	opts := options{config: path, fps: 24, mode: ModeWire, speed: 1}

	s, err := resolveScene(cmd, opts, []string{"ship.glb"})
	if err != nil {
		t.Fatalf("resolveScene: %v", err)
	}
	if s.FPS != 24 {
		t.Errorf("FPS = %d, want flag value 24", s.FPS)
	}
	if s.Mode != ModeSolid || s.Speed != 2 {
		t.Errorf("unset flags overrode the file: %+v", s)
	}
	if s.Model != "ship.glb" {
		t.Errorf("Model = %q, want ship.glb", s.Model)
	}
}
