//go:build js && wasm

// Package dom adapts browser events and animation frames to the hover
// controller.
package dom

import (
	"errors"
	"fmt"
	"syscall/js"

	"github.com/stdiopt/gowasm-hoverplane/hover"
)

// ErrMissingAnchor is returned when a required element is not in the page.
var ErrMissingAnchor = errors.New("missing dom anchor")

// Anchors are the page elements the scene hooks into.
type Anchors struct {
	Container js.Value
	Links     []js.Value
	Hover     js.Value
	FPS       js.Value // optional, may be undefined
}

// Lookup queries every element named by cfg.
func Lookup(cfg hover.Config) (Anchors, error) {
	doc := js.Global().Get("document")

	a := Anchors{FPS: js.Undefined()}
	a.Container = doc.Call("querySelector", cfg.Container)
	if a.Container.IsNull() {
		return a, fmt.Errorf("%w: container %q", ErrMissingAnchor, cfg.Container)
	}

	list := doc.Call("querySelectorAll", cfg.Links)
	for i := 0; i < list.Length(); i++ {
		a.Links = append(a.Links, list.Index(i))
	}
	if len(a.Links) == 0 {
		return a, fmt.Errorf("%w: links %q", ErrMissingAnchor, cfg.Links)
	}

	a.Hover = a.Links[0]
	if cfg.Hover != "" {
		a.Hover = doc.Call("querySelector", cfg.Hover)
		if a.Hover.IsNull() {
			return a, fmt.Errorf("%w: hover %q", ErrMissingAnchor, cfg.Hover)
		}
	}

	if cfg.FPS != "" {
		if el := doc.Call("getElementById", cfg.FPS); !el.IsNull() {
			a.FPS = el
		}
	}
	return a, nil
}

// Viewport returns the window inner size in css pixels.
func Viewport() (width, height float64) {
	win := js.Global()
	return win.Get("innerWidth").Float(), win.Get("innerHeight").Float()
}

// Bind forwards window and anchor events to h until release is called.
func Bind(a Anchors, h hover.Handler) (release func()) {
	win := js.Global()

	type listener struct {
		target js.Value
		event  string
		fn     js.Func
	}
	var ls []listener
	on := func(target js.Value, event string, fn func(e js.Value)) {
		f := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			fn(args[0])
			return nil
		})
		target.Call("addEventListener", event, f)
		ls = append(ls, listener{target, event, f})
	}

	on(win, "resize", func(js.Value) {
		h.Resize(Viewport())
	})
	on(win, "mousemove", func(e js.Value) {
		h.PointerMove(e.Get("clientX").Float(), e.Get("clientY").Float())
	})
	for i, link := range a.Links {
		i := i
		on(link, "mouseenter", func(js.Value) {
			h.LinkEnter(i)
		})
	}
	on(a.Hover, "mouseenter", func(js.Value) { h.HoverEnter() })
	on(a.Hover, "mouseleave", func(js.Value) { h.HoverLeave() })

	return func() {
		for _, l := range ls {
			l.target.Call("removeEventListener", l.event, l.fn)
			l.fn.Release()
		}
		ls = nil
	}
}

// RAF schedules frames with requestAnimationFrame.
type RAF struct{}

var _ hover.Scheduler = RAF{}

// RequestFrame implements hover.Scheduler.
func (RAF) RequestFrame(fn func(now float64)) (cancel func()) {
	var renderFrame js.Func
	done := false
	renderFrame = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		renderFrame.Release()
		done = true
		fn(args[0].Float())
		return nil
	})
	id := js.Global().Call("requestAnimationFrame", renderFrame)
	return func() {
		if done {
			return
		}
		done = true
		js.Global().Call("cancelAnimationFrame", id)
		renderFrame.Release()
	}
}
