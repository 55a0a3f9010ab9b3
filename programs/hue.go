package programs

import (
	_ "embed"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

//go:embed shaders/hue.frag
var hueFragment string

func init() {
	NewProgram(Program{
		Name:           "hue",
		VertexShader:   defaultVertexShader,
		FragmentShader: hueFragment,
		GetPixel: func(uniforms Uniforms, c mgl32.Vec2) mgl32.Vec3 {
			intensity := smoothedIntensity(c, uniforms.Iterations)

			// ceil(intensity) is a 0/1 mask: non-escaping points carry
			// intensity 0 and stay black instead of taking the hue at 0.
			mask := float32(math.Ceil(float64(intensity)))
			return hsv2rgb(mgl32.Vec3{intensity, 1, 1}).Mul(mask)
		},
	})
}
