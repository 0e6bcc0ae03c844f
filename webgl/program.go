//go:build js && wasm

package webgl

import (
	"fmt"
	"syscall/js"
)

func compileShader(gl, shaderType js.Value, shaderSrc string) (js.Value, error) {
	var shader = gl.Call("createShader", shaderType)
	gl.Call("shaderSource", shader, shaderSrc)
	gl.Call("compileShader", shader)

	if !gl.Call("getShaderParameter", shader, gl.Get("COMPILE_STATUS")).Bool() {
		defer gl.Call("deleteShader", shader)
		return js.Undefined(), fmt.Errorf("could not compile shader: %v", gl.Call("getShaderInfoLog", shader).String())
	}
	return shader, nil
}

func linkProgram(gl, vertexShader, fragmentShader js.Value) (js.Value, error) {
	var program = gl.Call("createProgram")
	gl.Call("attachShader", program, vertexShader)
	gl.Call("attachShader", program, fragmentShader)
	gl.Call("linkProgram", program)
	if !gl.Call("getProgramParameter", program, gl.Get("LINK_STATUS")).Bool() {
		defer gl.Call("deleteProgram", program)
		return js.Undefined(), fmt.Errorf("could not link program: %v", gl.Call("getProgramInfoLog", program).String())
	}
	return program, nil
}

func programFromSrc(gl js.Value, vertShaderSrc, fragShaderSrc string) (js.Value, error) {
	vertexShader, err := compileShader(gl, gl.Get("VERTEX_SHADER"), vertShaderSrc)
	if err != nil {
		return js.Undefined(), err
	}
	defer gl.Call("deleteShader", vertexShader)

	fragShader, err := compileShader(gl, gl.Get("FRAGMENT_SHADER"), fragShaderSrc)
	if err != nil {
		return js.Undefined(), err
	}
	defer gl.Call("deleteShader", fragShader)

	return linkProgram(gl, vertexShader, fragShader)
}

// typed arrays

func float32Array(data []float32) js.Value {
	buf := float32Bytes(nil, data)
	u8 := js.Global().Get("Uint8Array").New(len(buf))
	js.CopyBytesToJS(u8, buf)
	return js.Global().Get("Float32Array").New(u8.Get("buffer"))
}

func uint16Array(data []uint16) js.Value {
	buf := uint16Bytes(data)
	u8 := js.Global().Get("Uint8Array").New(len(buf))
	js.CopyBytesToJS(u8, buf)
	return js.Global().Get("Uint16Array").New(u8.Get("buffer"))
}

// mat4Scratch is a reusable Float32Array(16) for matrix uniforms.
type mat4Scratch struct {
	buf []byte
	u8  js.Value
	f32 js.Value
}

func newMat4Scratch() *mat4Scratch {
	u8 := js.Global().Get("Uint8Array").New(16 * 4)
	return &mat4Scratch{
		buf: make([]byte, 16*4),
		u8:  u8,
		f32: js.Global().Get("Float32Array").New(u8.Get("buffer")),
	}
}

func (m *mat4Scratch) set(data []float32) js.Value {
	m.buf = float32Bytes(m.buf, data)
	js.CopyBytesToJS(m.u8, m.buf)
	return m.f32
}
