package main

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/alan0201tw/MandelbrotSet/camera"
)

// NewWindow creates the fixed-size render window, makes its GL context
// current and initializes the bindings. Close releases the window and
// terminates glfw.
func NewWindow(width, height int, title string, vsync bool) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw.Init failed: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}

	w := &Window{Window: window}
	w.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("gl.Init failed: %w", err)
	}

	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	return w, nil
}

type Window struct {
	*glfw.Window
}

// Input samples the held navigation keys for this frame: Q/E zoom in/out,
// WASD pans.
func (w *Window) Input() camera.Input {
	return camera.Input{
		ZoomIn:  w.GetKey(glfw.KeyQ) == glfw.Press,
		ZoomOut: w.GetKey(glfw.KeyE) == glfw.Press,
		Up:      w.GetKey(glfw.KeyW) == glfw.Press,
		Down:    w.GetKey(glfw.KeyS) == glfw.Press,
		Left:    w.GetKey(glfw.KeyA) == glfw.Press,
		Right:   w.GetKey(glfw.KeyD) == glfw.Press,
	}
}

func (w *Window) Close() {
	w.Destroy()
	glfw.Terminate()
}
