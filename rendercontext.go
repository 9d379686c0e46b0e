package panes

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/go-theft-auto/panes/gui"
)

// ContextID identifies a RenderContext for its whole life.
type ContextID uuid.UUID

func (id ContextID) String() string {
	return uuid.UUID(id).String()
}

// Size is a surface size in pixels.
type Size struct {
	W, H int
}

func (s Size) clamp() Size {
	return Size{W: max(s.W, 0), H: max(s.H, 0)}
}

// defaultFrameDelta is the delta time of a context's first frame.
const defaultFrameDelta = float32(1) / DefaultRefreshRate

// RenderContext is one GUI instance bound to one backend and one surface.
// Contexts are created and destroyed by a Registry and owned by exactly
// one SurfaceBridge.
type RenderContext struct {
	id       ContextID
	registry *Registry

	ui      *gui.GUI
	input   *gui.InputState
	backend Backend

	backendReady bool
	destroyed    bool

	size      Size
	frame     *gui.Context
	lastFrame time.Time
}

// ID returns the context identity.
func (rc *RenderContext) ID() ContextID { return rc.id }

// Size returns the surface size the next frame is laid out for.
func (rc *RenderContext) Size() Size { return rc.size }

// DisplaySize is Size as GUI coordinates.
func (rc *RenderContext) DisplaySize() gui.Vec2 {
	return gui.Vec2{X: float32(rc.size.W), Y: float32(rc.size.H)}
}

// Input returns the context's input state.
func (rc *RenderContext) Input() *gui.InputState { return rc.input }

// GUI returns the GUI instance, for style changes between frames.
func (rc *RenderContext) GUI() *gui.GUI { return rc.ui }

// Backend returns the rendering backend.
func (rc *RenderContext) Backend() Backend { return rc.backend }

// BackendReady reports whether the backend is initialized.
func (rc *RenderContext) BackendReady() bool { return rc.backendReady }

// Destroyed reports whether the registry has removed the context.
func (rc *RenderContext) Destroyed() bool { return rc.destroyed }

// IsCurrent reports whether rc is its registry's current context.
func (rc *RenderContext) IsCurrent() bool {
	return rc.registry.current == rc
}

// InFrame reports whether a frame is being produced.
func (rc *RenderContext) InFrame() bool { return rc.frame != nil }

// UI returns the frame API. It panics unless rc is current and in a frame.
func (rc *RenderContext) UI() *gui.Context {
	if rc.frame == nil {
		panic("panes: UI used outside a frame of context " + rc.id.String())
	}
	if !rc.IsCurrent() {
		panic("panes: UI used on context " + rc.id.String() + " which is not current")
	}
	return rc.frame
}

// ReinitBackend shuts the backend down and initializes it again. It is the
// only way a backend is ever re-initialized, and it always logs. It panics
// while any context of the registry is producing a frame.
func (rc *RenderContext) ReinitBackend() error {
	if rc.destroyed {
		return fmt.Errorf("reinit backend: %w: %s", ErrUnknownContext, rc.id)
	}
	if p := rc.registry.producing; p != nil {
		panic("panes: ReinitBackend of context " + rc.id.String() + " during a frame of context " + p.id.String())
	}
	r := rc.registry
	r.MustActivate(rc.id)
	log := Logger().With(slog.String("context", rc.id.String()))
	log.Warn("Re-initializing backend", slog.Bool("wasReady", rc.backendReady))

	if rc.backendReady {
		rc.backend.Shutdown()
		rc.backendReady = false
		r.emit(EventBackendShutdown, rc.id)
	}
	if err := rc.backend.Init(); err != nil {
		log.Error("Backend re-init failed", slog.Any("err", err))
		return fmt.Errorf("%w: %w", ErrBackendInit, err)
	}
	rc.backendReady = true
	rc.ui.SetFontTexture(rc.backend.FontTextureID())
	return nil
}

func (rc *RenderContext) beginFrame(now time.Time) {
	dt := defaultFrameDelta
	if !rc.lastFrame.IsZero() {
		dt = float32(now.Sub(rc.lastFrame).Seconds())
	}
	rc.lastFrame = now
	rc.backend.NewFrame()
	// NewFrame may have recreated the glyph atlas.
	rc.ui.SetFontTexture(rc.backend.FontTextureID())
	rc.frame = rc.ui.Begin(rc.input, rc.DisplaySize(), dt)
}

func (rc *RenderContext) endFrame() *gui.DrawData {
	rc.frame = nil
	return rc.ui.End()
}
