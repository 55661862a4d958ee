// Package opengl presents rasterized scene frames in an OpenGL 4.1 window.
package opengl

import (
	"fmt"
	"image"
	"image/draw"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/gridtable/render/raster"
	"github.com/go-theft-auto/gridtable/scene"
)

// vertex is one corner of the screen quad.
type vertex struct {
	Pos      [2]float32
	TexCoord [2]float32
}

// Renderer implements scene.Renderer by rasterizing the DrawList on the CPU and drawing the
// frame as a single textured quad.
type Renderer struct {
	shader   uint32
	vao, vbo uint32
	frameTex uint32
	projLoc  int32
	texLoc   int32
	width    int
	height   int

	raster *raster.Rasterizer
	pixels *image.RGBA
}

// Vertex shader source
const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;

out vec2 TexCoord;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
}
` + "\x00"

// Fragment shader source
const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;

out vec4 FragColor;

uniform sampler2D frameTexture;

void main() {
    FragColor = texture(frameTexture, TexCoord);
}
` + "\x00"

// NewRenderer creates a renderer for a width x height viewport.
// A GL context must be current.
func NewRenderer(width, height int, opts ...raster.Option) (*Renderer, error) {
	rast, err := raster.New(width, height, opts...)
	if err != nil {
		return nil, fmt.Errorf("rasterizer: %w", err)
	}

	r := &Renderer{
		width:  width,
		height: height,
		raster: rast,
	}

	r.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("frameTexture\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	// Vertex layout: Pos (2 floats) + TexCoord (2 floats)
	stride := int32(unsafe.Sizeof(vertex{}))

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(vertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	gl.GenTextures(1, &r.frameTex)
	gl.BindTexture(gl.TEXTURE_2D, r.frameTex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return r, nil
}

// Measurer returns a text measurer matching the frames this renderer draws.
func (r *Renderer) Measurer() scene.TextMeasurer {
	return r.raster.Measurer()
}

// Resize updates the viewport size.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
	r.raster.Resize(width, height)
}

// Render rasterizes dl and draws it over the whole viewport.
func (r *Renderer) Render(dl *scene.DrawList) error {
	if dl == nil || r.width <= 0 || r.height <= 0 {
		return nil
	}
	if err := r.raster.Render(dl); err != nil {
		return err
	}
	r.upload(r.raster.Image())

	// Save GL state
	var lastProgram int32
	var lastBlendSrc, lastBlendDst int32
	var blendEnabled, depthEnabled, cullEnabled bool

	gl.GetIntegerv(gl.CURRENT_PROGRAM, &lastProgram)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &lastBlendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &lastBlendDst)
	blendEnabled = gl.IsEnabled(gl.BLEND)
	depthEnabled = gl.IsEnabled(gl.DEPTH_TEST)
	cullEnabled = gl.IsEnabled(gl.CULL_FACE)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)

	gl.UseProgram(r.shader)

	proj := orthoMatrix(0, float32(r.width), float32(r.height), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.frameTex)
	gl.Uniform1i(r.texLoc, 0)

	quad := screenQuad(float32(r.width), float32(r.height))
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*int(unsafe.Sizeof(vertex{})), gl.Ptr(&quad[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, int32(len(quad)))

	// Restore GL state
	gl.UseProgram(uint32(lastProgram))
	gl.BlendFunc(uint32(lastBlendSrc), uint32(lastBlendDst))

	if blendEnabled {
		gl.Enable(gl.BLEND)
	} else {
		gl.Disable(gl.BLEND)
	}
	if depthEnabled {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	if cullEnabled {
		gl.Enable(gl.CULL_FACE)
	} else {
		gl.Disable(gl.CULL_FACE)
	}

	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindVertexArray(0)

	return nil
}

// upload copies the frame into the texture, converting to RGBA when needed.
func (r *Renderer) upload(img image.Image) {
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != rgba.Rect.Dx()*4 {
		b := img.Bounds()
		if r.pixels == nil || r.pixels.Bounds() != b {
			r.pixels = image.NewRGBA(b)
		}
		draw.Draw(r.pixels, b, img, b.Min, draw.Src)
		rgba = r.pixels
	}

	w, h := int32(rgba.Rect.Dx()), int32(rgba.Rect.Dy())
	gl.BindTexture(gl.TEXTURE_2D, r.frameTex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, w, h, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// screenQuad covers [0,w]x[0,h] with the frame texture, top-left origin.
func screenQuad(w, h float32) [4]vertex {
	return [4]vertex{
		{Pos: [2]float32{0, 0}, TexCoord: [2]float32{0, 0}},
		{Pos: [2]float32{w, 0}, TexCoord: [2]float32{1, 0}},
		{Pos: [2]float32{0, h}, TexCoord: [2]float32{0, 1}},
		{Pos: [2]float32{w, h}, TexCoord: [2]float32{1, 1}},
	}
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	if r.frameTex != 0 {
		gl.DeleteTextures(1, &r.frameTex)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader compilation failed: %w", err)
	}
	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, fmt.Errorf("fragment shader compilation failed: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	// Linked into the program now
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	return program, nil
}

func compileShader(source string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s", string(log))
	}
	return shader, nil
}

// orthoMatrix creates an orthographic projection matrix.
func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}

var _ scene.Renderer = (*Renderer)(nil)
