package programs

import (
	_ "embed"

	"github.com/go-gl/mathgl/mgl32"
)

//go:embed shaders/grayscale.frag
var grayscaleFragment string

func init() {
	NewProgram(Program{
		Name:           "grayscale",
		VertexShader:   defaultVertexShader,
		FragmentShader: grayscaleFragment,
		GetPixel: func(uniforms Uniforms, c mgl32.Vec2) mgl32.Vec3 {
			// Non-escaping points saturate to 1, so the set interior
			// renders white. Intentional; see the hue program for the
			// black-interior convention.
			intensity := escapeIntensity(c, uniforms.Iterations)
			return mgl32.Vec3{intensity, intensity, intensity}
		},
	})
}
