package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/panes"
	"github.com/go-theft-auto/panes/gui"
)

// Window is a GLFW window with its own OpenGL 3.3 core context. It
// implements panes.Surface. glfw.Init must have succeeded and every method
// runs on the main thread.
type Window struct {
	win *glfw.Window
}

var _ panes.Surface = (*Window)(nil)

// NewWindow opens a window of width×height screen units.
func NewWindow(title string, width, height int) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window %q: %w", title, err)
	}
	return &Window{win: win}, nil
}

// GLFW returns the underlying window.
func (w *Window) GLFW() *glfw.Window { return w.win }

// MakeCurrent binds the window's GL context to the calling thread.
func (w *Window) MakeCurrent() { w.win.MakeContextCurrent() }

// Viewport maps GL output to the whole framebuffer.
func (w *Window) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Clear fills the framebuffer with a packed color.
func (w *Window) Clear(color uint32) {
	r, g, b, a := gui.UnpackRGBA(color)
	gl.ClearColor(float32(r)/255, float32(g)/255, float32(b)/255, float32(a)/255)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// SwapBuffers presents the last frame.
func (w *Window) SwapBuffers() { w.win.SwapBuffers() }

// FramebufferSize returns the drawable size in pixels.
func (w *Window) FramebufferSize() panes.Size {
	width, height := w.win.GetFramebufferSize()
	return panes.Size{W: width, H: height}
}

// pixelScale returns framebuffer pixels per screen unit, per axis.
func (w *Window) pixelScale() (float64, float64) {
	ww, wh := w.win.GetSize()
	fw, fh := w.win.GetFramebufferSize()
	return ratio(fw, ww), ratio(fh, wh)
}

func ratio(pixels, units int) float64 {
	if units <= 0 {
		return 1
	}
	return float64(pixels) / float64(units)
}

// ShouldClose reports whether the user asked to close the window.
func (w *Window) ShouldClose() bool { return w.win.ShouldClose() }

// Destroy closes the window and its GL context.
func (w *Window) Destroy() { w.win.Destroy() }
