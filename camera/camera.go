// Package camera tracks the navigable view state of the fractal viewer and
// derives the per-frame projection that maps the screen quad onto the
// currently visible region of the complex plane.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// MinZoom is the zoom-in floor. Below it the orthographic volume
	// degenerates and the projection inverts.
	MinZoom = 1e-4

	// MaxZoom pins zoom-out at the initial full extent.
	MaxZoom = 1.0
)

// Input holds the navigation commands sampled for one frame.
// Opposing commands on the same axis don't combine; the first of each pair
// wins, matching how the keys are sampled.
type Input struct {
	ZoomIn, ZoomOut bool
	Up, Down        bool
	Left, Right     bool
}

// Camera is the host-side view state. All updates saturate rather than
// fail; every state reachable from New is valid.
type Camera struct {
	zoom   float32
	offset mgl32.Vec2
}

// New returns a camera showing the full default extent.
func New() *Camera {
	return &Camera{zoom: 1}
}

// Zoom returns the current zoom factor in [MinZoom, MaxZoom].
func (c *Camera) Zoom() float32 {
	return c.zoom
}

// Offset returns the current complex-plane center shift.
func (c *Camera) Offset() mgl32.Vec2 {
	return c.offset
}

// Update applies one frame's worth of navigation. Deltas scale with dt and
// with the current zoom, so apparent pan/zoom speed stays constant relative
// to the visible extent regardless of frame rate.
func (c *Camera) Update(in Input, dt float32) {
	if in.ZoomIn {
		c.zoom -= dt * c.zoom
	} else if in.ZoomOut {
		c.zoom += dt * c.zoom
	}
	if c.zoom < MinZoom {
		c.zoom = MinZoom
	}
	if c.zoom > MaxZoom {
		c.zoom = MaxZoom
	}

	if in.Up {
		c.offset[1] -= dt * c.zoom
	} else if in.Down {
		c.offset[1] += dt * c.zoom
	}
	if in.Left {
		c.offset[0] += dt * c.zoom
	} else if in.Right {
		c.offset[0] -= dt * c.zoom
	}
}

// Projection builds the orthographic transform for the current state. The
// visible extent is [-zoom-offset.x, zoom-offset.x] × [-zoom-offset.y,
// zoom-offset.y]; depth bounds are arbitrary since the quad is flat.
func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Ortho(
		-c.zoom-c.offset[0], c.zoom-c.offset[0],
		-c.zoom-c.offset[1], c.zoom-c.offset[1],
		1, -1,
	)
}
