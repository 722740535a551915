package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Aerial home pose.
var (
	HomePosition = rl.Vector3{X: 180, Y: 110, Z: 180}
	HomeTarget   = rl.Vector3{X: 0, Y: 15, Z: 0}
)

// Input is one frame of user intent. Move is (right, forward) in [-1, 1];
// Orbit is a drag delta in pixels; Zoom is wheel steps, positive zooms in.
type Input struct {
	Move  rl.Vector2
	Orbit rl.Vector2
	Zoom  float32
}

// OrbitCamera circles a target. Azimuth is measured about +Y from +Z and
// Polar down from +Y, both in radians.
type OrbitCamera struct {
	Target   rl.Vector3
	Distance float32
	Azimuth  float32
	Polar    float32

	MinDistance float32
	MaxDistance float32
	MinPolar    float32
	MaxPolar    float32
	MinHeight   float32
	MoveSpeed   float32 // units per second
	OrbitSpeed  float32 // radians per pixel
	ZoomStep    float32 // fraction of distance per wheel step
	Fovy        float32
}

func New() *OrbitCamera {
	c := &OrbitCamera{
		MinDistance: 60,
		MaxDistance: 260,
		MinPolar:    math.Pi / 4,
		MaxPolar:    math.Pi / 1.8,
		MinHeight:   5,
		MoveSpeed:   40,
		OrbitSpeed:  0.005,
		ZoomStep:    0.1,
		Fovy:        60,
	}
	c.Reset()
	return c
}

// Reset restores the aerial home pose.
func (c *OrbitCamera) Reset() {
	c.LookAt(HomePosition, HomeTarget)
}

// LookAt places the camera at pos facing target.
func (c *OrbitCamera) LookAt(pos, target rl.Vector3) {
	off := rl.Vector3Subtract(pos, target)
	c.Target = target
	c.Distance = rl.Vector3Length(off)
	if c.Distance == 0 {
		c.Polar = c.MinPolar
		return
	}
	c.Azimuth = float32(math.Atan2(float64(off.X), float64(off.Z)))
	c.Polar = float32(math.Acos(float64(off.Y / c.Distance)))
}

func (c *OrbitCamera) Position() rl.Vector3 {
	sinP, cosP := math.Sincos(float64(c.Polar))
	sinA, cosA := math.Sincos(float64(c.Azimuth))
	d := float64(c.Distance)
	return rl.Vector3{
		X: c.Target.X + float32(d*sinP*sinA),
		Y: c.Target.Y + float32(d*cosP),
		Z: c.Target.Z + float32(d*sinP*cosA),
	}
}

// Apply moves the camera by one frame of input and enforces its limits.
func (c *OrbitCamera) Apply(in Input, dt float32) {
	c.Azimuth -= in.Orbit.X * c.OrbitSpeed
	c.Polar -= in.Orbit.Y * c.OrbitSpeed
	if in.Zoom != 0 {
		c.Distance *= float32(math.Pow(float64(1-c.ZoomStep), float64(in.Zoom)))
	}

	move := in.Move
	if l := rl.Vector2Length(move); l > 1 {
		move = rl.Vector2Scale(move, 1/l)
	}
	if move.X != 0 || move.Y != 0 {
		sinA, cosA := math.Sincos(float64(c.Azimuth))
		forward := rl.Vector3{X: float32(-sinA), Z: float32(-cosA)}
		right := rl.Vector3{X: float32(cosA), Z: float32(-sinA)}
		step := c.MoveSpeed * dt
		delta := rl.Vector3Add(rl.Vector3Scale(forward, move.Y*step), rl.Vector3Scale(right, move.X*step))
		c.Target = rl.Vector3Add(c.Target, delta)
	}

	c.clamp()
}

func (c *OrbitCamera) clamp() {
	c.Distance = rl.Clamp(c.Distance, c.MinDistance, c.MaxDistance)
	c.Polar = rl.Clamp(c.Polar, c.MinPolar, c.MaxPolar)
	if y := c.Position().Y; y < c.MinHeight {
		c.Target.Y += c.MinHeight - y
	}
}

// Update reads WASD, right-drag orbit and the mouse wheel.
func (c *OrbitCamera) Update(deltaTime float32) {
	var in Input
	if rl.IsKeyDown(rl.KeyW) {
		in.Move.Y++
	}
	if rl.IsKeyDown(rl.KeyS) {
		in.Move.Y--
	}
	if rl.IsKeyDown(rl.KeyD) {
		in.Move.X++
	}
	if rl.IsKeyDown(rl.KeyA) {
		in.Move.X--
	}
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		in.Orbit = rl.GetMouseDelta()
	}
	in.Zoom = rl.GetMouseWheelMove()
	c.Apply(in, deltaTime)
}

func (c *OrbitCamera) GetRaylibCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   c.Position(),
		Target:     c.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.Fovy,
		Projection: rl.CameraPerspective,
	}
}
