package programs

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Uniforms is uploaded to the active program once per frame. Field tags name
// the GLSL uniform each field feeds; the renderer resolves and uploads them
// reflectively.
type Uniforms struct {
	Camera     mgl32.Mat4 `uniform:"camera"`
	Iterations int32      `uniform:"iterations"`
}

func (u *Uniforms) DefaultValues() {
	u.Camera = mgl32.Ident4()
	u.Iterations = 100
}
