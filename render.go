package main

import (
	"fmt"
	"log"
	"reflect"
	"runtime"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/alan0201tw/MandelbrotSet/camera"
	"github.com/alan0201tw/MandelbrotSet/programs"
)

// The screen quad in local space. The vertex stage remaps xy onto the
// complex plane; the camera projection decides where each corner lands on
// screen.
var quadVertices = []float32{
	-1, -1, 0,
	1, -1, 0,
	1, 1, 0,
	-1, 1, 0,
}

var quadIndices = []uint32{0, 1, 2, 2, 3, 0}

// Renderer owns all device-side state: the quad buffers, the compiled
// program and its uniform locations. Constructed once after the window's
// context is current; Close releases everything it created.
type Renderer struct {
	window *Window
	camera *camera.Camera

	vao, vbo, ibo    uint32
	program          uint32
	vertexAttrib     uint32
	uniformLocations map[string]int32

	uniforms programs.Uniforms
}

func NewRenderer(window *Window, program programs.Program, iterations int32, debug bool) (*Renderer, error) {
	r := &Renderer{
		window: window,
		camera: camera.New(),
	}
	r.uniforms.DefaultValues()
	r.uniforms.Iterations = iterations

	gl.DebugMessageCallback(glDebugMessage, nil)
	if debug {
		gl.Enable(gl.DEBUG_OUTPUT)
	}

	gl.ClearColor(1, 0, 0.1, 1)

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(quadIndices)*4, gl.Ptr(quadIndices), gl.STATIC_DRAW)

	if err := r.loadProgram(program); err != nil {
		return nil, err
	}

	return r, nil
}

// Run drives the frame loop until the window is asked to close: poll input,
// advance the camera by the elapsed time, upload the projection and draw the
// quad. Escape requests close.
func (r *Renderer) Run() {
	previous := glfw.GetTime()
	for !r.window.ShouldClose() {
		now := glfw.GetTime()
		dt := float32(now - previous)
		previous = now

		glfw.PollEvents()
		if r.window.GetKey(glfw.KeyEscape) == glfw.Press {
			r.window.SetShouldClose(true)
		}

		r.camera.Update(r.window.Input(), dt)
		r.uniforms.Camera = r.camera.Projection()

		gl.Clear(gl.COLOR_BUFFER_BIT)
		gl.UseProgram(r.program)
		r.loadUniforms()
		gl.BindVertexArray(r.vao)
		gl.DrawElementsWithOffset(gl.TRIANGLES, int32(len(quadIndices)), gl.UNSIGNED_INT, 0)

		r.window.SwapBuffers()
	}
}

func (r *Renderer) Close() {
	gl.DeleteProgram(r.program)
	gl.DeleteBuffers(1, &r.ibo)
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
}

// loadUniforms uploads every field of r.uniforms to the location named by
// its tag.
func (r *Renderer) loadUniforms() {
	v := reflect.ValueOf(&r.uniforms).Elem()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)

		ptr := f.Addr().UnsafePointer()
		loc := r.uniformLocations[v.Type().Field(i).Tag.Get("uniform")]

		switch f.Type() {
		case reflect.TypeOf(mgl32.Mat4{}):
			gl.UniformMatrix4fv(loc, 1, false, (*float32)(ptr))
		case reflect.TypeOf(mgl32.Vec2{}):
			gl.Uniform2fv(loc, 1, (*float32)(ptr))
		case reflect.TypeOf(int32(0)):
			gl.Uniform1iv(loc, 1, (*int32)(ptr))
		case reflect.TypeOf(float32(0)):
			gl.Uniform1fv(loc, 1, (*float32)(ptr))
		default:
			log.Printf("unsupported uniform type %v", f.Type())
		}
	}
}

// loadProgram compiles, links and activates a render program. Link failure
// is fatal to startup; the info log rides along in the returned error.
func (r *Renderer) loadProgram(program programs.Program) error {
	vertexShader, err := compileShader(program.VertexShader+"\x00", gl.VERTEX_SHADER)
	if err != nil {
		return err
	}

	fragmentShader, err := compileShader(program.FragmentShader+"\x00", gl.FRAGMENT_SHADER)
	if err != nil {
		return err
	}

	r.program = gl.CreateProgram()
	gl.AttachShader(r.program, vertexShader)
	gl.AttachShader(r.program, fragmentShader)
	gl.LinkProgram(r.program)
	gl.UseProgram(r.program)

	defer gl.DeleteShader(vertexShader)
	defer gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(r.program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetProgramiv(r.program, gl.INFO_LOG_LENGTH, &l)

		infoLog := strings.Repeat("\x00", int(l+1))
		gl.GetProgramInfoLog(r.program, l, nil, gl.Str(infoLog))
		return fmt.Errorf("failed to link program %q: %v", program.Name, infoLog)
	}

	r.uniformLocations = make(map[string]int32)
	t := reflect.TypeOf(r.uniforms)
	for i := 0; i < t.NumField(); i++ {
		name := t.Field(i).Tag.Get("uniform")
		r.uniformLocations[name] = gl.GetUniformLocation(r.program, gl.Str(name+"\x00"))
	}

	gl.BindFragDataLocation(r.program, 0, gl.Str("outputColor\x00"))

	r.vertexAttrib = uint32(gl.GetAttribLocation(r.program, gl.Str("vert\x00")))
	gl.EnableVertexAttribArray(r.vertexAttrib)
	gl.VertexAttribPointerWithOffset(r.vertexAttrib, 3, gl.FLOAT, false, 3*4, 0)

	return nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	defer runtime.KeepAlive(source)
	cstring, free := gl.Strs(source)
	defer free()

	shader := gl.CreateShader(shaderType)
	gl.ShaderSource(shader, 1, cstring, nil)
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var l int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &l)

		infoLog := strings.Repeat("\x00", int(l+1))
		gl.GetShaderInfoLog(shader, l, nil, gl.Str(infoLog))
		return 0, fmt.Errorf("shader\n\"\n%v\n\"\nfailed to compile: %v", source, infoLog)
	}

	return shader, nil
}

var (
	glSources = map[uint32]string{
		gl.DEBUG_SOURCE_API:             "api",
		gl.DEBUG_SOURCE_APPLICATION:     "application",
		gl.DEBUG_SOURCE_OTHER:           "other",
		gl.DEBUG_SOURCE_SHADER_COMPILER: "shaderCompiler",
		gl.DEBUG_SOURCE_THIRD_PARTY:     "thirdParty",
		gl.DEBUG_SOURCE_WINDOW_SYSTEM:   "windowSystem",
	}

	glSeverities = map[uint32]string{
		gl.DEBUG_SEVERITY_HIGH:         "high",
		gl.DEBUG_SEVERITY_MEDIUM:       "medium",
		gl.DEBUG_SEVERITY_LOW:          "low",
		gl.DEBUG_SEVERITY_NOTIFICATION: "notification",
	}

	glTypes = map[uint32]string{
		gl.DEBUG_TYPE_ERROR:               "error",
		gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR: "deprecatedBehavior",
		gl.DEBUG_TYPE_MARKER:              "marker",
		gl.DEBUG_TYPE_OTHER:               "other",
		gl.DEBUG_TYPE_PERFORMANCE:         "performance",
		gl.DEBUG_TYPE_PORTABILITY:         "portability",
		gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:  "undefinedBehavior",
	}
)

func glName(names map[uint32]string, key uint32) string {
	if name, ok := names[key]; ok {
		return name
	}
	return "unknown"
}

func glDebugMessage(
	source,
	gltype,
	id,
	severity uint32,
	length int32,
	message string,
	user unsafe.Pointer,
) {
	log.Printf("%v(%v): %v; %v\n",
		glName(glSources, source),
		glName(glSeverities, severity),
		glName(glTypes, gltype),
		message,
	)
}
