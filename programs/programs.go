// Package programs holds the render programs of the viewer. Each program
// pairs the GLSL sources executed on the device with a CPU pixel function
// implementing the identical escape-time computation, so the evaluator can
// be exercised without a GL context.
package programs

import (
	_ "embed"

	"github.com/go-gl/mathgl/mgl32"
)

//go:embed shaders/default.vert
var defaultVertexShader string

// PixelFunc computes the color for the complex coordinate c, mirroring the
// program's fragment stage. Pure and total; safe to call concurrently.
type PixelFunc func(uniforms Uniforms, c mgl32.Vec2) mgl32.Vec3

type Program struct {
	Name           string
	VertexShader   string
	FragmentShader string
	GetPixel       PixelFunc
}

var programs []Program

func NewProgram(p Program) {
	programs = append(programs, p)
}

func NumPrograms() int {
	return len(programs)
}

func GetProgram(i int) Program {
	return programs[i]
}

// LookupProgram finds a registered program by name.
func LookupProgram(name string) (Program, bool) {
	for _, p := range programs {
		if p.Name == name {
			return p, true
		}
	}
	return Program{}, false
}

// Names lists the registered program names in registration order.
func Names() []string {
	names := make([]string, len(programs))
	for i, p := range programs {
		names[i] = p.Name
	}
	return names
}

// ComplexCoord is the vertex stage's remap from quad-local position to the
// complex plane: c = 2*pos - (1, 0). At the default camera the visible
// region is [-3,1]×[-2,2], the classic Mandelbrot framing.
func ComplexCoord(pos mgl32.Vec2) mgl32.Vec2 {
	return pos.Mul(2).Sub(mgl32.Vec2{1, 0})
}
