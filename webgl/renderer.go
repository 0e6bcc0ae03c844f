//go:build js && wasm

// Package webgl draws the hover plane with a raw WebGL 1 context.
package webgl

import (
	"errors"
	"fmt"
	"log"
	"path"
	"syscall/js"

	"github.com/stdiopt/gowasm-hoverplane/hover"
	"github.com/stdiopt/gowasm-hoverplane/placeholder"
)

var (
	// ErrNoContext is returned when the canvas refuses a webgl context.
	ErrNoContext = errors.New("browser might not support webgl")
	// ErrContextLost is returned by Draw after the context was lost.
	ErrContextLost = errors.New("webgl context lost")
)

// placeholder texture size, same aspect as the default plane
const placeholderW, placeholderH = 130, 170

// Renderer implements hover.Renderer.
type Renderer struct {
	// OnError receives asynchronous failures such as image loads.
	OnError func(error)

	canvas js.Value
	gl     js.Value

	prog      js.Value
	aPosition int
	aUV       int

	uProjection js.Value
	uView       js.Value
	uModel      js.Value
	uTexture    js.Value
	uAlpha      js.Value
	uOffset     js.Value

	posBuf js.Value
	uvBuf  js.Value
	idxBuf js.Value
	count  int

	textures []js.Value
	mat      *mat4Scratch
	clear    [4]float32
}

var _ hover.Renderer = (*Renderer)(nil)

// New prepares a renderer on canvas, textures start as placeholders and are
// swapped for the configured images as they load.
func New(canvas js.Value, cfg hover.Config) (*Renderer, error) {
	attrs := map[string]interface{}{
		"antialias": true,
		"alpha":     true,
	}
	gl := canvas.Call("getContext", "webgl", attrs)
	if gl.IsNull() || gl.IsUndefined() {
		gl = canvas.Call("getContext", "experimental-webgl", attrs)
	}
	// once again
	if gl.IsNull() || gl.IsUndefined() {
		return nil, ErrNoContext
	}

	r := &Renderer{
		canvas: canvas,
		gl:     gl,
		mat:    newMat4Scratch(),
	}
	r.clear[0], r.clear[1], r.clear[2], r.clear[3] = cfg.ClearColor()

	var err error
	r.prog, err = programFromSrc(gl, hover.VertexShader, hover.FragmentShader)
	if err != nil {
		return nil, err
	}
	r.aPosition = gl.Call("getAttribLocation", r.prog, hover.AttribPosition).Int()
	r.aUV = gl.Call("getAttribLocation", r.prog, hover.AttribUV).Int()
	r.uProjection = gl.Call("getUniformLocation", r.prog, hover.UniformProjection)
	r.uView = gl.Call("getUniformLocation", r.prog, hover.UniformView)
	r.uModel = gl.Call("getUniformLocation", r.prog, hover.UniformModel)
	r.uTexture = gl.Call("getUniformLocation", r.prog, hover.UniformTexture)
	r.uAlpha = gl.Call("getUniformLocation", r.prog, hover.UniformAlpha)
	r.uOffset = gl.Call("getUniformLocation", r.prog, hover.UniformOffset)

	geom := hover.PlaneGeometry(1, 1, cfg.Plane.Segments, cfg.Plane.Segments)
	r.posBuf = gl.Call("createBuffer")
	gl.Call("bindBuffer", gl.Get("ARRAY_BUFFER"), r.posBuf)
	gl.Call("bufferData", gl.Get("ARRAY_BUFFER"), float32Array(geom.Positions), gl.Get("STATIC_DRAW"))

	r.uvBuf = gl.Call("createBuffer")
	gl.Call("bindBuffer", gl.Get("ARRAY_BUFFER"), r.uvBuf)
	gl.Call("bufferData", gl.Get("ARRAY_BUFFER"), float32Array(geom.UVs), gl.Get("STATIC_DRAW"))

	r.idxBuf = gl.Call("createBuffer")
	gl.Call("bindBuffer", gl.Get("ELEMENT_ARRAY_BUFFER"), r.idxBuf)
	gl.Call("bufferData", gl.Get("ELEMENT_ARRAY_BUFFER"), uint16Array(geom.Indices), gl.Get("STATIC_DRAW"))
	r.count = len(geom.Indices)

	gl.Call("enable", gl.Get("BLEND"))
	gl.Call("blendFuncSeparate",
		gl.Get("SRC_ALPHA"), gl.Get("ONE_MINUS_SRC_ALPHA"),
		gl.Get("ONE"), gl.Get("ONE_MINUS_SRC_ALPHA"),
	)
	gl.Call("pixelStorei", gl.Get("UNPACK_FLIP_Y_WEBGL"), true)

	base := cfg.PlaceholderColor()
	for i, url := range cfg.Images {
		img, err := placeholder.Render(placeholderW, placeholderH, path.Base(url), base)
		if err != nil {
			return nil, fmt.Errorf("texture %d: %w", i, err)
		}
		r.textures = append(r.textures, createTexture(gl, img))
	}
	return r, nil
}

// LoadTextures starts fetching every configured image.
func (r *Renderer) LoadTextures(urls []string) {
	for i, url := range urls {
		if i >= len(r.textures) {
			break
		}
		r.loadImage(r.textures[i], url)
	}
}

func (r *Renderer) fail(err error) {
	if r.OnError != nil {
		r.OnError(err)
		return
	}
	log.Println("webgl:", err)
}

// Resize sizes the drawing buffer to the viewport at device resolution.
func (r *Renderer) Resize(width, height float64) {
	dpr := js.Global().Get("devicePixelRatio").Float()
	if dpr <= 0 {
		dpr = 1
	}
	bw, bh := int(width*dpr), int(height*dpr)
	r.canvas.Set("width", bw)
	r.canvas.Set("height", bh)
	style := r.canvas.Get("style")
	style.Set("width", fmt.Sprintf("%vpx", width))
	style.Set("height", fmt.Sprintf("%vpx", height))
	r.gl.Call("viewport", 0, 0, bw, bh)
}

// Draw renders f.
func (r *Renderer) Draw(f hover.Frame) error {
	gl := r.gl
	if gl.Call("isContextLost").Bool() {
		return ErrContextLost
	}
	if f.Texture < 0 || f.Texture >= len(r.textures) {
		return fmt.Errorf("no texture %d", f.Texture)
	}

	gl.Call("clearColor", r.clear[0], r.clear[1], r.clear[2], r.clear[3])
	gl.Call("clear", gl.Get("COLOR_BUFFER_BIT").Int()|gl.Get("DEPTH_BUFFER_BIT").Int())

	gl.Call("useProgram", r.prog)

	gl.Call("bindBuffer", gl.Get("ARRAY_BUFFER"), r.posBuf)
	gl.Call("enableVertexAttribArray", r.aPosition)
	gl.Call("vertexAttribPointer", r.aPosition, 3, gl.Get("FLOAT"), false, 0, 0)

	gl.Call("bindBuffer", gl.Get("ARRAY_BUFFER"), r.uvBuf)
	gl.Call("enableVertexAttribArray", r.aUV)
	gl.Call("vertexAttribPointer", r.aUV, 2, gl.Get("FLOAT"), false, 0, 0)

	gl.Call("uniformMatrix4fv", r.uProjection, false, r.mat.set(f.Projection[:]))
	gl.Call("uniformMatrix4fv", r.uView, false, r.mat.set(f.View[:]))
	gl.Call("uniformMatrix4fv", r.uModel, false, r.mat.set(f.Model[:]))

	gl.Call("activeTexture", gl.Get("TEXTURE0"))
	gl.Call("bindTexture", gl.Get("TEXTURE_2D"), r.textures[f.Texture])
	gl.Call("uniform1i", r.uTexture, 0)
	gl.Call("uniform1f", r.uAlpha, f.Alpha)
	gl.Call("uniform2f", r.uOffset, f.Offset.X(), f.Offset.Y())

	gl.Call("bindBuffer", gl.Get("ELEMENT_ARRAY_BUFFER"), r.idxBuf)
	gl.Call("drawElements", gl.Get("TRIANGLES"), r.count, gl.Get("UNSIGNED_SHORT"), 0)
	return nil
}

// Release frees the gl resources.
func (r *Renderer) Release() {
	gl := r.gl
	for _, t := range r.textures {
		gl.Call("deleteTexture", t)
	}
	r.textures = nil
	gl.Call("deleteBuffer", r.posBuf)
	gl.Call("deleteBuffer", r.uvBuf)
	gl.Call("deleteBuffer", r.idxBuf)
	gl.Call("deleteProgram", r.prog)
}
