package opengl

import (
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/panes"
	"github.com/go-theft-auto/panes/gui"
)

// GLFWProfile decodes GLFW callbacks: scroll offsets are already in
// notches, buttons are GLFW button numbers and modifiers are
// glfw.ModifierKey bits. GLFW key codes fit below gui.KeyCount unchanged.
func GLFWProfile() panes.HostProfile {
	return panes.HostProfile{
		WheelNotch: 1,
		Buttons: map[int]gui.MouseButton{
			int(glfw.MouseButtonLeft):   gui.MouseButtonLeft,
			int(glfw.MouseButtonRight):  gui.MouseButtonRight,
			int(glfw.MouseButtonMiddle): gui.MouseButtonMiddle,
		},
		CtrlMask:  uint32(glfw.ModControl),
		ShiftMask: uint32(glfw.ModShift),
		AltMask:   uint32(glfw.ModAlt),
		KeyLimit:  int(gui.KeyCount),
	}
}

// HostAdapter forwards the callbacks of one Window to one SurfaceBridge.
// The bridge must be created with GLFWProfile.
type HostAdapter struct {
	window *Window
	bridge *panes.SurfaceBridge
}

// Attach installs the window callbacks and makes the bridge ready with the
// window's framebuffer size. On failure the callbacks are removed again.
func Attach(window *Window, bridge *panes.SurfaceBridge) (*HostAdapter, error) {
	a := &HostAdapter{window: window, bridge: bridge}
	win := window.win
	win.SetFramebufferSizeCallback(a.framebufferSizeCallback)
	win.SetRefreshCallback(a.refreshCallback)
	win.SetCursorPosCallback(a.cursorPosCallback)
	win.SetMouseButtonCallback(a.mouseButtonCallback)
	win.SetScrollCallback(a.scrollCallback)
	win.SetKeyCallback(a.keyCallback)
	win.SetCharCallback(a.charCallback)

	if err := bridge.OnSurfaceReady(window, window.FramebufferSize()); err != nil {
		a.detach()
		return nil, err
	}
	return a, nil
}

// Window returns the hosted window.
func (a *HostAdapter) Window() *Window { return a.window }

// Bridge returns the bridge fed by this adapter.
func (a *HostAdapter) Bridge() *panes.SurfaceBridge { return a.bridge }

// Redraw produces one frame and presents it.
func (a *HostAdapter) Redraw() {
	if err := a.bridge.OnRedrawRequested(); err != nil {
		a.report("redraw", err)
		return
	}
	if a.bridge.State() == panes.StateReady {
		a.window.SwapBuffers()
	}
}

// Close tears the bridge down and unhooks the window. The window itself
// stays open for the caller to destroy.
func (a *HostAdapter) Close() error {
	err := a.bridge.OnTeardown()
	if err == nil {
		a.detach()
	}
	return err
}

func (a *HostAdapter) detach() {
	win := a.window.win
	win.SetFramebufferSizeCallback(nil)
	win.SetRefreshCallback(nil)
	win.SetCursorPosCallback(nil)
	win.SetMouseButtonCallback(nil)
	win.SetScrollCallback(nil)
	win.SetKeyCallback(nil)
	win.SetCharCallback(nil)
}

func (a *HostAdapter) report(event string, err error) {
	if err != nil {
		panes.Logger().Warn("Host callback failed", slog.String("event", event), slog.Any("err", err))
	}
}

func (a *HostAdapter) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	a.report("resize", a.bridge.OnResize(width, height))
}

func (a *HostAdapter) refreshCallback(_ *glfw.Window) {
	a.Redraw()
}

// Cursor positions arrive in screen units; the GUI lays out in pixels.
func (a *HostAdapter) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	sx, sy := a.window.pixelScale()
	a.report("pointer-move", a.bridge.OnPointerMove(float32(xpos*sx), float32(ypos*sy)))
}

func (a *HostAdapter) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	a.report("pointer-button", a.bridge.OnPointerButton(int(button), action != glfw.Release))
}

func (a *HostAdapter) scrollCallback(_ *glfw.Window, _, yoff float64) {
	a.report("wheel", a.bridge.OnWheel(float32(yoff)))
}

func (a *HostAdapter) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
	a.report("key", a.bridge.OnKey(int(key), action != glfw.Release, uint32(mods)))
}

func (a *HostAdapter) charCallback(_ *glfw.Window, char rune) {
	a.report("text", a.bridge.OnText(string(char)))
}
