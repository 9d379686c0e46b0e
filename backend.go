package panes

import "github.com/go-theft-auto/panes/gui"

// Backend turns draw data into graphics API calls for one context.
// All methods run with the owning context current.
type Backend interface {
	// Init creates GPU resources. A failed Init leaves nothing to shut down.
	Init() error
	// Shutdown releases what Init created.
	Shutdown()
	// NewFrame is called before the GUI frame begins.
	NewFrame()
	// RenderDrawData submits one frame.
	RenderDrawData(data *gui.DrawData) error
	// FontTextureID is the glyph atlas texture, valid after Init.
	FontTextureID() uint32
}

// BackendFactory builds an uninitialized Backend for a new context.
type BackendFactory func() Backend

// Surface is the host-owned drawable a bridge renders into. The bridge
// references it but never owns it.
type Surface interface {
	// MakeCurrent binds the surface's graphics context to this thread.
	MakeCurrent()
	// Viewport maps rendering to a w×h pixel area.
	Viewport(w, h int)
	// Clear fills the surface with color (packed 0xAABBGGRR).
	Clear(color uint32)
}

// FrameProgram produces one frame of GUI. The context is current and in a
// frame for the duration of the call; rc.UI() gives the frame API.
type FrameProgram interface {
	ProduceFrame(rc *RenderContext)
}

// FrameProgramFunc adapts a function to FrameProgram.
type FrameProgramFunc func(rc *RenderContext)

// ProduceFrame calls f(rc).
func (f FrameProgramFunc) ProduceFrame(rc *RenderContext) { f(rc) }
