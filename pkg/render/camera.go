package render

import (
	"math"

	"github.com/taigrr/vecalg/pkg/math3d"
)

// Camera is a perspective camera described by a position and an orthonormal
// basis. Points are projected by dotting against the basis, so no matrices
// are involved.
type Camera struct {
	// Position in world space
	Position math3d.Vec3

	forward math3d.Vec3
	right   math3d.Vec3
	up      math3d.Vec3

	// Projection parameters
	FOV         float64 // Vertical field of view in radians
	AspectRatio float64 // Width / Height
	Near        float64 // Near clipping plane
	Far         float64 // Far clipping plane
}

// NewCamera creates a camera at (0, 0, 5) looking down -Z at the origin.
func NewCamera() *Camera {
	return &Camera{
		Position:    math3d.V3(0, 0, 5),
		forward:     math3d.Forward(),
		right:       math3d.Right(),
		up:          math3d.Up(),
		FOV:         math.Pi / 3, // 60 degrees
		AspectRatio: 16.0 / 9.0,
		Near:        0.1,
		Far:         1000,
	}
}

// SetPosition sets the camera position without changing where it faces.
func (c *Camera) SetPosition(pos math3d.Vec3) {
	c.Position = pos
}

// SetFOV sets the field of view (in radians).
func (c *Camera) SetFOV(fov float64) {
	c.FOV = fov
}

// SetAspectRatio sets the aspect ratio.
func (c *Camera) SetAspectRatio(aspect float64) {
	c.AspectRatio = aspect
}

// SetClipPlanes sets the near and far clipping planes.
func (c *Camera) SetClipPlanes(near, far float64) {
	c.Near = near
	c.Far = far
}

// Forward returns the unit view direction.
func (c *Camera) Forward() math3d.Vec3 { return c.forward }

// Right returns the unit right direction.
func (c *Camera) Right() math3d.Vec3 { return c.right }

// Up returns the unit up direction.
func (c *Camera) Up() math3d.Vec3 { return c.up }

// face rebuilds the basis so that the camera looks along dir with the world
// Y axis as the up hint. A zero dir leaves the basis untouched.
func (c *Camera) face(dir math3d.Vec3) {
	f, ok := dir.Direction()
	if !ok {
		return
	}
	r := f.Cross(math3d.Up())
	if r.LenSq() < 1e-12 {
		// Looking straight up or down.
		r = math3d.Right()
	}
	r.Normalize()
	c.forward = f
	c.right = r
	c.up = r.Cross(f)
}

// LookAt turns the camera toward target.
func (c *Camera) LookAt(target math3d.Vec3) {
	c.face(target.Diff(c.Position))
}

// MoveForward moves the camera forward (or backward if negative).
func (c *Camera) MoveForward(distance float64) {
	c.Position.Add(c.forward.Prod(math3d.Scalar(distance)))
}

// MoveRight moves the camera right (or left if negative).
func (c *Camera) MoveRight(distance float64) {
	c.Position.Add(c.right.Prod(math3d.Scalar(distance)))
}

// MoveUp moves the camera along the world Y axis.
func (c *Camera) MoveUp(distance float64) {
	c.Position.Add(math3d.V3(0, distance, 0))
}

// Rotate turns the camera basis about axis by the given angle in radians.
// The position is unchanged.
func (c *Camera) Rotate(axis math3d.Vec3, by float64) {
	c.forward.RotateAbout(axis, math3d.Scalar(by)).Normalize()
	c.up.RotateAbout(axis, math3d.Scalar(by)).Normalize()
	c.right = c.forward.Cross(c.up).Unit()
}

// Orbit swings the camera about axis through target and keeps it aimed at
// target.
func (c *Camera) Orbit(target, axis math3d.Vec3, by float64) {
	arm := c.Position.Diff(target)
	arm.RotateAbout(axis, math3d.Scalar(by))
	c.Position = target.Sum(arm)
	c.LookAt(target)
}

// ToView returns p in camera space: X right, Y up, looking down -Z.
func (c *Camera) ToView(p math3d.Vec3) math3d.Vec3 {
	d := p.Diff(c.Position)
	return math3d.V3(d.Dot(c.right), d.Dot(c.up), -d.Dot(c.forward))
}

// ViewToClip applies the perspective projection to a camera-space point.
// W carries the distance in front of the camera.
func (c *Camera) ViewToClip(v math3d.Vec3) math3d.Vec4 {
	t := math.Tan(c.FOV / 2)
	n, f := c.Near, c.Far
	return math3d.V4(
		v.X/(t*c.AspectRatio),
		v.Y/t,
		(v.Z*(f+n)+2*f*n)/(n-f),
		-v.Z,
	)
}

// Clip returns p in homogeneous clip space.
func (c *Camera) Clip(p math3d.Vec3) math3d.Vec4 {
	return c.ViewToClip(c.ToView(p))
}

// ClipToScreen maps a clip-space point with positive W to pixel
// coordinates and NDC depth.
func ClipToScreen(clip math3d.Vec4, screenWidth, screenHeight int) (x, y, depth float64) {
	ndc := clip.PerspectiveDivide()
	x = (ndc.X + 1) * 0.5 * float64(screenWidth)
	y = (1 - ndc.Y) * 0.5 * float64(screenHeight) // Y is flipped
	return x, y, ndc.Z
}

// WorldToScreen transforms a world point to screen coordinates.
// Returns (screenX, screenY, depth, visible).
func (c *Camera) WorldToScreen(worldPos math3d.Vec3, screenWidth, screenHeight int) (x, y, depth float64, visible bool) {
	clip := c.Clip(worldPos)
	if clip.W <= 0 {
		return 0, 0, 0, false
	}

	ndc := clip.PerspectiveDivide()
	if ndc.X < -1 || ndc.X > 1 || ndc.Y < -1 || ndc.Y > 1 || ndc.Z < -1 || ndc.Z > 1 {
		return 0, 0, 0, false
	}

	x, y, depth = ClipToScreen(clip, screenWidth, screenHeight)
	return x, y, depth, true
}

// Frustum returns the view frustum for the current pose.
func (c *Camera) Frustum() Frustum {
	return NewFrustum(c)
}
