package hover

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl32"
)

// Shader uniform names.
const (
	UniformTexture = "uTexture"
	UniformAlpha   = "uAlpha"
	UniformOffset  = "uOffset"
)

// Renderer draws frames produced by the Controller.
type Renderer interface {
	Resize(width, height float64)
	Draw(f Frame) error
}

// Handler receives input events, implemented by Controller.
type Handler interface {
	PointerMove(x, y float64)
	LinkEnter(i int)
	HoverEnter()
	HoverLeave()
	Resize(width, height float64)
}

// Uniforms are the values fed to the plane shader.
type Uniforms struct {
	Texture int
	Alpha   float64
	Offset  mgl32.Vec2
}

// Pointer is the last known cursor position in screen space.
type Pointer struct {
	X, Y float64
}

// Frame is what a Renderer needs to draw the plane once.
type Frame struct {
	Projection mgl32.Mat4
	View       mgl32.Mat4
	Model      mgl32.Mat4

	Texture int
	Alpha   float32
	Offset  mgl32.Vec2

	Width, Height float64
}

// State is a snapshot of the controller.
type State struct {
	Target   Pointer
	Offset   Pointer
	Hovering bool
	Uniforms Uniforms
	Mesh     Mesh
}

// Controller owns the scene state and advances it one frame per Step.
type Controller struct {
	cfg      Config
	renderer Renderer

	target   Pointer
	offset   Pointer
	hovering bool
	uniforms Uniforms
	links    []int

	camera *Camera
	mesh   Mesh
}

var _ Handler = (*Controller)(nil)

// NewController validates cfg and sets up the camera and plane for a
// width x height viewport.
func NewController(cfg Config, r Renderer, width, height float64) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("%w: nil renderer", ErrConfig)
	}
	c := &Controller{
		cfg:      cfg,
		renderer: r,
		links:    cfg.LinkTable(),
		camera:   NewCamera(cfg.Perspective, cfg.Near, cfg.Far, width, height),
		mesh: Mesh{
			Size: mgl32.Vec2{float32(cfg.Plane.Width), float32(cfg.Plane.Height)},
		},
	}
	c.placeMesh()
	r.Resize(width, height)
	return c, nil
}

// Camera returns the controller camera.
func (c *Controller) Camera() *Camera { return c.camera }

// State returns a copy of the current state.
func (c *Controller) State() State {
	return State{
		Target:   c.target,
		Offset:   c.offset,
		Hovering: c.hovering,
		Uniforms: c.uniforms,
		Mesh:     c.mesh,
	}
}

// PointerMove sets the pointer target.
func (c *Controller) PointerMove(x, y float64) {
	c.target = Pointer{x, y}
}

// LinkEnter swaps the active texture to the one bound to link i.
func (c *Controller) LinkEnter(i int) {
	if i < 0 || i >= len(c.links) {
		log.Printf("hover: link %d has no texture", i)
		return
	}
	c.uniforms.Texture = c.links[i]
}

// HoverEnter starts fading the plane in.
func (c *Controller) HoverEnter() { c.hovering = true }

// HoverLeave starts fading the plane out.
func (c *Controller) HoverLeave() { c.hovering = false }

// Resize updates the camera and the renderer to the new viewport.
func (c *Controller) Resize(width, height float64) {
	c.camera.Resize(width, height)
	c.renderer.Resize(width, height)
	c.placeMesh()
}

// Step advances a single frame.
//
// With Lag set the frame is drawn before updating, so every draw shows the
// values computed on the previous step. Otherwise the update runs first.
func (c *Controller) Step() error {
	if !c.cfg.Lag {
		c.update()
	}
	if err := c.renderer.Draw(c.frame()); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	if c.cfg.Lag {
		c.update()
	}
	return nil
}

func (c *Controller) update() {
	k := c.cfg.Factors.Offset
	c.uniforms.Offset = mgl32.Vec2{
		float32((c.target.X - c.offset.X) * k),
		float32(-(c.target.Y - c.offset.Y) * k),
	}

	alpha := 0.0
	if c.hovering {
		alpha = 1
	}
	c.uniforms.Alpha = Lerp(c.uniforms.Alpha, alpha, c.cfg.Factors.Fade)

	c.ease()
	c.placeMesh()
}

func (c *Controller) ease() {
	t := c.cfg.Factors.Ease
	c.offset.X = Lerp(c.offset.X, c.target.X, t)
	c.offset.Y = Lerp(c.offset.Y, c.target.Y, t)
}

// placeMesh converts the top-left based offset into the centred, y up world.
func (c *Controller) placeMesh() {
	c.mesh.Position = mgl32.Vec3{
		float32(c.offset.X - c.camera.Width/2),
		float32(-c.offset.Y + c.camera.Height/2),
		0,
	}
}

func (c *Controller) frame() Frame {
	return Frame{
		Projection: c.camera.Projection(),
		View:       c.camera.View(),
		Model:      c.mesh.Model(),
		Texture:    c.uniforms.Texture,
		Alpha:      float32(c.uniforms.Alpha),
		Offset:     c.uniforms.Offset,
		Width:      c.camera.Width,
		Height:     c.camera.Height,
	}
}
