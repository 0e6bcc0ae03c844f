//go:build js && wasm

package webgl

import (
	"errors"
	"fmt"
	"image"
	"log"
	"syscall/js"
)

// ErrTextureLoad is reported when an image can not be fetched or decoded.
var ErrTextureLoad = errors.New("texture load failed")

// createTexture makes a linear, edge clamped texture filled with img.
func createTexture(gl js.Value, img *image.RGBA) js.Value {
	tex := gl.Call("createTexture")
	gl.Call("bindTexture", gl.Get("TEXTURE_2D"), tex)

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	pix := js.Global().Get("Uint8Array").New(len(img.Pix))
	js.CopyBytesToJS(pix, img.Pix)
	gl.Call("texImage2D",
		gl.Get("TEXTURE_2D"),
		0,
		gl.Get("RGBA"),
		w, h,
		0,
		gl.Get("RGBA"),
		gl.Get("UNSIGNED_BYTE"),
		pix,
	)
	setTextureParams(gl)
	return tex
}

// set the filtering so we don't need mips, images are rarely power of two
func setTextureParams(gl js.Value) {
	gl.Call("texParameteri", gl.Get("TEXTURE_2D"), gl.Get("TEXTURE_MIN_FILTER"), gl.Get("LINEAR"))
	gl.Call("texParameteri", gl.Get("TEXTURE_2D"), gl.Get("TEXTURE_MAG_FILTER"), gl.Get("LINEAR"))
	gl.Call("texParameteri", gl.Get("TEXTURE_2D"), gl.Get("TEXTURE_WRAP_S"), gl.Get("CLAMP_TO_EDGE"))
	gl.Call("texParameteri", gl.Get("TEXTURE_2D"), gl.Get("TEXTURE_WRAP_T"), gl.Get("CLAMP_TO_EDGE"))
}

// loadImage replaces tex content with the image at url once it loads.
// Callbacks are released after either outcome.
func (r *Renderer) loadImage(tex js.Value, url string) {
	img := js.Global().Get("Image").New()
	img.Set("crossOrigin", "anonymous")

	var onLoad, onError js.Func
	release := func() {
		img.Set("onload", js.Null())
		img.Set("onerror", js.Null())
		onLoad.Release()
		onError.Release()
	}
	onLoad = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		defer release()
		gl := r.gl
		gl.Call("bindTexture", gl.Get("TEXTURE_2D"), tex)
		gl.Call("texImage2D",
			gl.Get("TEXTURE_2D"),
			0,
			gl.Get("RGBA"),
			gl.Get("RGBA"),
			gl.Get("UNSIGNED_BYTE"),
			img,
		)
		setTextureParams(gl)
		log.Printf("webgl: loaded %s (%dx%d)", url, img.Get("naturalWidth").Int(), img.Get("naturalHeight").Int())
		return nil
	})
	onError = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		defer release()
		r.fail(fmt.Errorf("%w: %s", ErrTextureLoad, url))
		return nil
	})
	img.Set("onload", onLoad)
	img.Set("onerror", onError)
	img.Set("src", url)
}
