// Package opengl renders panes contexts with OpenGL 3.3 core and hosts
// them in GLFW windows.
package opengl

import (
	"errors"
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/panes"
	"github.com/go-theft-auto/panes/gui"
)

// ErrNotInitialized is returned when drawing with a renderer whose Init
// has not succeeded.
var ErrNotInitialized = errors.New("opengl: renderer not initialized")

// Renderer is a panes.Backend. Each RenderContext gets its own Renderer,
// created by NewRenderer as the registry's backend factory.
type Renderer struct {
	shader    uint32
	vao, vbo  uint32
	ebo       uint32
	fontTex   uint32
	projLoc   int32
	texLoc    int32
	useTexLoc int32
	version   string
}

var _ panes.Backend = (*Renderer)(nil)

const vertexShaderSource = `
#version 330 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

out vec2 TexCoord;
out vec4 Color;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
    Color = aColor;
}
` + "\x00"

// The glyph atlas stores coverage in the red channel.
const fragmentShaderSource = `
#version 330 core
in vec2 TexCoord;
in vec4 Color;

out vec4 FragColor;

uniform sampler2D fontTexture;
uniform bool useTexture;

void main() {
    if (useTexture) {
        FragColor = vec4(Color.rgb, Color.a * texture(fontTexture, TexCoord).r);
    } else {
        FragColor = Color;
    }
}
` + "\x00"

// NewRenderer returns an uninitialized renderer.
func NewRenderer() panes.Backend {
	return &Renderer{}
}

// Init loads GL entry points for the current context, checks its version
// and creates the shader, buffers and glyph atlas.
func (r *Renderer) Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("load gl: %w", err)
	}
	version := gl.GoStr(gl.GetString(gl.VERSION))
	if err := checkVersion(version); err != nil {
		return err
	}
	r.version = version

	shader, err := createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return fmt.Errorf("create shader: %w", err)
	}
	r.shader = shader
	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("fontTexture\x00"))
	r.useTexLoc = gl.GetUniformLocation(r.shader, gl.Str("useTexture\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	// Pos, TexCoord as floats, Color as normalized RGBA bytes.
	stride := int32(unsafe.Sizeof(gui.Vertex{}))
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(gui.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, unsafe.Offsetof(gui.Vertex{}.Color))
	gl.EnableVertexAttribArray(2)
	gl.BindVertexArray(0)

	r.fontTex = createFontTexture()

	panes.Logger().Debug("OpenGL renderer ready", slog.String("version", version))
	return nil
}

// Version returns the GL_VERSION string seen by Init.
func (r *Renderer) Version() string { return r.version }

// FontTextureID returns the glyph atlas texture.
func (r *Renderer) FontTextureID() uint32 {
	return r.fontTex
}

// NewFrame recreates the glyph atlas if the driver lost it.
func (r *Renderer) NewFrame() {
	if r.shader != 0 && (r.fontTex == 0 || !gl.IsTexture(r.fontTex)) {
		r.fontTex = createFontTexture()
	}
}

// Shutdown deletes everything Init created.
func (r *Renderer) Shutdown() {
	if r.fontTex != 0 {
		gl.DeleteTextures(1, &r.fontTex)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
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
	*r = Renderer{}
}

// glState is the GL state RenderDrawData changes and puts back.
type glState struct {
	program, texture, vao     int32
	blendSrc, blendDst        int32
	scissorBox                [4]int32
	blend, depth, cull, clips bool
}

func saveGLState() glState {
	var s glState
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &s.program)
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &s.texture)
	gl.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &s.vao)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &s.blendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &s.blendDst)
	gl.GetIntegerv(gl.SCISSOR_BOX, &s.scissorBox[0])
	s.blend = gl.IsEnabled(gl.BLEND)
	s.depth = gl.IsEnabled(gl.DEPTH_TEST)
	s.cull = gl.IsEnabled(gl.CULL_FACE)
	s.clips = gl.IsEnabled(gl.SCISSOR_TEST)
	return s
}

func setCap(capability uint32, on bool) {
	if on {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}

func (s glState) restore() {
	gl.UseProgram(uint32(s.program))
	gl.BindTexture(gl.TEXTURE_2D, uint32(s.texture))
	gl.BindVertexArray(uint32(s.vao))
	gl.BlendFunc(uint32(s.blendSrc), uint32(s.blendDst))
	setCap(gl.BLEND, s.blend)
	setCap(gl.DEPTH_TEST, s.depth)
	setCap(gl.CULL_FACE, s.cull)
	setCap(gl.SCISSOR_TEST, s.clips)
	gl.Scissor(s.scissorBox[0], s.scissorBox[1], s.scissorBox[2], s.scissorBox[3])
}

// RenderDrawData draws every list of data in order. A zero-sized display
// draws nothing. GL errors raised while drawing are returned.
func (r *Renderer) RenderDrawData(data *gui.DrawData) error {
	if r.shader == 0 {
		return ErrNotInitialized
	}
	width, height := data.DisplaySize.X, data.DisplaySize.Y
	if width <= 0 || height <= 0 || data.TotalVtxCount() == 0 {
		return nil
	}

	saved := saveGLState()
	defer saved.restore()

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(r.shader)
	proj := orthoMatrix(0, width, height, 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.texLoc, 0)
	gl.BindVertexArray(r.vao)

	for _, dl := range data.Lists {
		r.renderList(dl, height)
	}

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("opengl: draw failed with error 0x%04x", code)
	}
	return nil
}

func (r *Renderer) renderList(dl *gui.DrawList, height float32) {
	if len(dl.VtxBuffer) == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*int(unsafe.Sizeof(gui.Vertex{})),
		gl.Ptr(dl.VtxBuffer), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(dl.IdxBuffer)*2,
		gl.Ptr(dl.IdxBuffer), gl.STREAM_DRAW)

	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			continue
		}
		x, y, w, h, ok := scissorRect(cmd.ClipRect, height)
		if !ok {
			continue
		}
		gl.Scissor(x, y, w, h)

		if cmd.TextureID != 0 {
			gl.BindTexture(gl.TEXTURE_2D, cmd.TextureID)
			gl.Uniform1i(r.useTexLoc, 1)
		} else {
			gl.Uniform1i(r.useTexLoc, 0)
		}
		gl.DrawElementsBaseVertexWithOffset(
			gl.TRIANGLES,
			int32(cmd.ElemCount),
			gl.UNSIGNED_SHORT,
			uintptr(cmd.IndexOffset)*2,
			int32(cmd.VertexOffset),
		)
	}
}

// scissorRect converts a top-left origin clip rectangle to GL window
// coordinates, clamped to the surface. ok is false for empty results.
func scissorRect(clip [4]float32, height float32) (x, y, w, h int32, ok bool) {
	x = int32(clip[0])
	y = int32(height - clip[3])
	w = int32(clip[2] - clip[0])
	h = int32(clip[3] - clip[1])
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	return x, y, w, h, w > 0 && h > 0
}

func createFontTexture() uint32 {
	data := glyphAtlas()
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, atlasWidth, int32(atlasHeight), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(data))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
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
