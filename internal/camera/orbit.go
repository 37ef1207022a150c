package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	minPitch    = -89.0
	maxPitch    = 89.0
	sensitivity = 0.3
	zoomStep    = 1.1
)

// Orbit is a camera circling a target point, used to look at the grid from outside.
type Orbit struct {
	Target   mgl32.Vec3
	Distance float32
	Yaw      float32 // degrees around +Y
	Pitch    float32 // degrees above the XZ plane

	FOV       float32
	NearPlane float32
	FarPlane  float32
	Width     int
	Height    int

	minDistance float32
	maxDistance float32
}

// NewOrbit frames a grid of meshCount cells per axis from the front-right.
func NewOrbit(width, height int, meshCount float32) *Orbit {
	half := meshCount / 2
	return &Orbit{
		Target:      mgl32.Vec3{half, half, half},
		Distance:    meshCount * 2.2,
		Yaw:         35,
		Pitch:       25,
		FOV:         60,
		NearPlane:   0.1,
		FarPlane:    meshCount * 20,
		Width:       width,
		Height:      height,
		minDistance: 1,
		maxDistance: meshCount * 8,
	}
}

// SetViewport updates the framebuffer size.
func (o *Orbit) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	o.Width, o.Height = width, height
}

// AspectRatio of the viewport
func (o *Orbit) AspectRatio() float32 {
	if o.Height == 0 {
		return 1
	}
	return float32(o.Width) / float32(o.Height)
}

// Eye returns the camera position.
func (o *Orbit) Eye() mgl32.Vec3 {
	yaw := mgl32.DegToRad(o.Yaw)
	pitch := mgl32.DegToRad(o.Pitch)
	dir := mgl32.Vec3{
		math32.Cos(pitch) * math32.Sin(yaw),
		math32.Sin(pitch),
		math32.Cos(pitch) * math32.Cos(yaw),
	}
	return o.Target.Add(dir.Mul(o.Distance))
}

// View returns the view matrix.
func (o *Orbit) View() mgl32.Mat4 {
	return mgl32.LookAtV(o.Eye(), o.Target, mgl32.Vec3{0, 1, 0})
}

// Projection returns the perspective projection matrix.
func (o *Orbit) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(o.FOV), o.AspectRatio(), o.NearPlane, o.FarPlane)
}

// MVP returns projection * view; the grid has no model transform.
func (o *Orbit) MVP() mgl32.Mat4 {
	return o.Projection().Mul4(o.View())
}

// Rotate applies a mouse delta in screen pixels.
func (o *Orbit) Rotate(dx, dy float64) {
	o.Yaw -= float32(dx) * sensitivity
	o.Pitch += float32(dy) * sensitivity
	o.Pitch = mgl32.Clamp(o.Pitch, minPitch, maxPitch)
}

// Zoom moves the camera towards (positive steps) or away from the target.
func (o *Orbit) Zoom(steps float64) {
	factor := math32.Pow(zoomStep, float32(-steps))
	o.Distance = mgl32.Clamp(o.Distance*factor, o.minDistance, o.maxDistance)
}

// Ray returns the world-space ray through a window position given in
// pixels from the top-left corner, as a near-plane point and a unit direction.
func (o *Orbit) Ray(x, y float64) (origin, dir mgl32.Vec3, err error) {
	view, proj := o.View(), o.Projection()
	wy := float32(o.Height) - float32(y)
	near, err := mgl32.UnProject(mgl32.Vec3{float32(x), wy, 0}, view, proj, 0, 0, o.Width, o.Height)
	if err != nil {
		return mgl32.Vec3{}, mgl32.Vec3{}, err
	}
	far, err := mgl32.UnProject(mgl32.Vec3{float32(x), wy, 1}, view, proj, 0, 0, o.Width, o.Height)
	if err != nil {
		return mgl32.Vec3{}, mgl32.Vec3{}, err
	}
	return near, far.Sub(near).Normalize(), nil
}
