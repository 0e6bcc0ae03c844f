package hover

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestCameraPixelMapping(t *testing.T) {
	c := NewCamera(1000, 0.1, 2000, 1280, 800)
	assert.True(t, c.Dirty())

	pv := c.Projection().Mul4(c.View())
	assert.False(t, c.Dirty())

	// the viewport corner in pixels lands on the ndc corner
	clip := pv.Mul4x1(mgl32.Vec4{640, 400, 0, 1})
	assert.InDelta(t, 1, clip.X()/clip.W(), 1e-4)
	assert.InDelta(t, 1, clip.Y()/clip.W(), 1e-4)

	c.Resize(800, 600)
	pv = c.Projection().Mul4(c.View())
	clip = pv.Mul4x1(mgl32.Vec4{-400, -300, 0, 1})
	assert.InDelta(t, -1, clip.X()/clip.W(), 1e-4)
	assert.InDelta(t, -1, clip.Y()/clip.W(), 1e-4)
}

func TestCameraProjectionCached(t *testing.T) {
	c := NewCamera(1000, 0.1, 2000, 1280, 800)
	p1 := c.Projection()
	c.FOV = 10 // ignored until the next Resize
	assert.Equal(t, p1, c.Projection())

	c.Resize(1280, 800)
	assert.Equal(t, p1, c.Projection())
}

func TestMeshModel(t *testing.T) {
	m := Mesh{
		Size:     mgl32.Vec2{650, 850},
		Position: mgl32.Vec3{-630, 390, 0},
	}
	p := m.Model().Mul4x1(mgl32.Vec4{0.5, 0.5, 0, 1})
	assert.InDelta(t, -630+325, p.X(), 1e-3)
	assert.InDelta(t, 390+425, p.Y(), 1e-3)
}
