package hover

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is a perspective camera looking down -z from Perspective units away.
type Camera struct {
	Perspective float64
	Near        float64
	Far         float64

	Width  float64
	Height float64
	Aspect float64
	FOV    float64

	proj  mgl32.Mat4
	dirty bool
}

// NewCamera creates a camera sized to the viewport.
func NewCamera(perspective, near, far, width, height float64) *Camera {
	c := &Camera{
		Perspective: perspective,
		Near:        near,
		Far:         far,
	}
	c.Resize(width, height)
	return c
}

// Resize recomputes aspect and field of view and marks the projection dirty.
func (c *Camera) Resize(width, height float64) {
	c.Width, c.Height = width, height
	c.Aspect = 1
	if height > 0 {
		c.Aspect = width / height
	}
	c.FOV = FOV(height, c.Perspective)
	c.dirty = true
}

// Dirty reports if the projection must be recomputed before the next draw.
func (c *Camera) Dirty() bool { return c.dirty }

// Projection returns the projection matrix, rebuilding it if dirty.
func (c *Camera) Projection() mgl32.Mat4 {
	if c.dirty {
		c.proj = mgl32.Perspective(
			mgl32.DegToRad(float32(c.FOV)),
			float32(c.Aspect),
			float32(c.Near),
			float32(c.Far),
		)
		c.dirty = false
	}
	return c.proj
}

// View returns the view matrix, camera at (0,0,Perspective) facing the origin.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(
		mgl32.Vec3{0, 0, float32(c.Perspective)},
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{0, 1, 0},
	)
}

// Mesh is the single textured plane, unit geometry scaled to Size.
type Mesh struct {
	Size     mgl32.Vec2
	Position mgl32.Vec3
}

// Model returns translate * scale.
func (m Mesh) Model() mgl32.Mat4 {
	return mgl32.Translate3D(m.Position.X(), m.Position.Y(), m.Position.Z()).
		Mul4(mgl32.Scale3D(m.Size.X(), m.Size.Y(), 1))
}
