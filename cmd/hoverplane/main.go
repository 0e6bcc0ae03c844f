//go:build js && wasm

// Hover plane: a textured plane that follows the mouse, fades in while the
// first link is hovered and swaps texture per hovered link.
//
// compile: GOOS=js GOARCH=wasm go build -o main.wasm ./cmd/hoverplane
package main

import (
	_ "embed"
	"fmt"
	"log"
	"syscall/js"

	"github.com/stdiopt/gowasm-hoverplane/dom"
	"github.com/stdiopt/gowasm-hoverplane/hover"
	"github.com/stdiopt/gowasm-hoverplane/webgl"
)

//go:embed config.yaml
var configData []byte

func main() {
	done := make(chan struct{})

	stop, err := start()
	if err != nil {
		fatal(err)
		return
	}
	defer stop()

	<-done
}

func start() (stop func(), err error) {
	cfg, err := hover.ParseConfig(configData)
	if err != nil {
		return nil, err
	}
	anchors, err := dom.Lookup(cfg)
	if err != nil {
		return nil, err
	}

	canvasEl := js.Global().Get("document").Call("createElement", "canvas")
	anchors.Container.Call("appendChild", canvasEl)

	renderer, err := webgl.New(canvasEl, cfg)
	if err != nil {
		return nil, err
	}

	width, height := dom.Viewport()
	ctrl, err := hover.NewController(cfg, renderer, width, height)
	if err != nil {
		renderer.Release()
		return nil, err
	}

	var stopLoop func()
	halt := func(err error) {
		fatal(err)
		if stopLoop != nil {
			stopLoop()
		}
	}
	renderer.OnError = halt
	renderer.LoadTextures(cfg.Images)

	release := dom.Bind(anchors, ctrl)

	meter := hover.FrameMeter{Window: 10}
	stopLoop = hover.Run(dom.RAF{}, func(now float64) error {
		if fps, ok := meter.Mark(now); ok && !anchors.FPS.IsUndefined() {
			anchors.FPS.Set("innerHTML", fmt.Sprintf("FPS: %.01f", fps))
		}
		return ctrl.Step()
	}, halt)

	log.Printf("hoverplane: %d links, %d images, viewport %vx%v", len(anchors.Links), len(cfg.Images), width, height)

	return func() {
		stopLoop()
		release()
		renderer.Release()
	}, nil
}

func fatal(err error) {
	log.Println("hoverplane:", err)
	js.Global().Call("alert", err.Error())
}
