package panes

import (
	"fmt"
	"log/slog"
	"time"
)

// BridgeState is the lifecycle state of a SurfaceBridge.
type BridgeState int

const (
	StateUninitialized BridgeState = iota
	StateReady
	StateDestroyed
)

func (s BridgeState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateReady:
		return "ready"
	case StateDestroyed:
		return "destroyed"
	}
	return fmt.Sprintf("BridgeState(%d)", int(s))
}

// FrameStats counts redraw outcomes.
type FrameStats struct {
	Produced uint64
	Skipped  uint64
}

// BridgeOption configures a SurfaceBridge.
type BridgeOption func(*SurfaceBridge)

// WithHostProfile sets how host input events are decoded.
func WithHostProfile(p HostProfile) BridgeOption {
	return func(b *SurfaceBridge) { b.profile = p }
}

// WithFrameClock ties clock to the bridge lifecycle: it is started when
// the surface becomes ready and stopped on teardown.
func WithFrameClock(clock *FrameClock) BridgeOption {
	return func(b *SurfaceBridge) { b.clock = clock }
}

// WithTimeSource replaces time.Now for frame delta times.
func WithTimeSource(now func() time.Time) BridgeOption {
	return func(b *SurfaceBridge) { b.now = now }
}

// SurfaceBridge binds one host surface to one RenderContext. The host
// adapter forwards its callbacks to the On* methods, all on the UI thread.
//
// While any bridge of the same registry is producing a frame, callbacks
// from every other surface are queued on the registry and run in arrival
// order once that frame completes, so the producing context stays current
// until its draw data is submitted. The producing bridge's own input and
// resize callbacks are queued the same way.
type SurfaceBridge struct {
	registry *Registry
	program  FrameProgram
	profile  HostProfile
	input    *InputTranslator
	clock    *FrameClock
	now      func() time.Time

	surface Surface
	rc      *RenderContext
	state   BridgeState
	size    Size
	inFrame bool
	stats   FrameStats
}

// NewSurfaceBridge returns an uninitialized bridge that will draw program
// with a context from reg.
func NewSurfaceBridge(reg *Registry, program FrameProgram, opts ...BridgeOption) *SurfaceBridge {
	b := &SurfaceBridge{
		registry: reg,
		program:  program,
		profile:  DefaultHostProfile(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.input = NewInputTranslator(reg, b.profile)
	return b
}

// State returns the lifecycle state.
func (b *SurfaceBridge) State() BridgeState { return b.state }

// Size returns the last known surface size.
func (b *SurfaceBridge) Size() Size { return b.size }

// Context returns the owned context, nil unless Ready.
func (b *SurfaceBridge) Context() *RenderContext { return b.rc }

// Stats returns redraw counters.
func (b *SurfaceBridge) Stats() FrameStats { return b.stats }

// Clock returns the frame clock, if any.
func (b *SurfaceBridge) Clock() *FrameClock { return b.clock }

func (b *SurfaceBridge) logger() *slog.Logger {
	if b.rc == nil {
		return Logger()
	}
	return Logger().With(slog.String("context", b.rc.id.String()))
}

// OnSurfaceReady creates the context with surface's graphics context
// current. On failure the bridge stays uninitialized and may be retried.
func (b *SurfaceBridge) OnSurfaceReady(surface Surface, size Size) error {
	switch b.state {
	case StateDestroyed:
		return ErrSurfaceDestroyed
	case StateReady:
		b.logger().Debug("Surface ready again ignored")
		return nil
	}
	if b.registry.producing != nil {
		b.registry.deferCall(func() {
			if err := b.OnSurfaceReady(surface, size); err != nil {
				Logger().Error("Deferred surface ready failed", slog.Any("err", err))
			}
		})
		return nil
	}
	surface.MakeCurrent()
	rc, err := b.registry.CreateContext()
	if err != nil {
		return fmt.Errorf("surface ready: %w", err)
	}
	b.surface = surface
	b.rc = rc
	b.state = StateReady
	b.size = size.clamp()
	rc.size = b.size
	surface.Viewport(b.size.W, b.size.H)
	if b.clock != nil {
		b.clock.Start(b.now())
	}
	b.logger().Info("Surface ready", slog.Int("width", b.size.W), slog.Int("height", b.size.H))
	return nil
}

// OnResize records the new size. Zero is legal and negative sizes clamp
// to zero.
func (b *SurfaceBridge) OnResize(w, h int) error {
	if b.state == StateDestroyed {
		return ErrSurfaceDestroyed
	}
	if b.registry.producing != nil {
		b.registry.deferCall(func() { _ = b.OnResize(w, h) })
		return nil
	}
	b.size = Size{W: w, H: h}.clamp()
	if b.state != StateReady {
		return nil
	}
	b.registry.MustActivate(b.rc.id)
	b.rc.size = b.size
	b.surface.MakeCurrent()
	b.surface.Viewport(b.size.W, b.size.H)
	return nil
}

// OnRedrawRequested produces exactly one frame. Before the surface is
// ready it does nothing. Submission failures skip the frame and are only
// logged. A request made during another bridge's frame is queued and
// produced after it.
func (b *SurfaceBridge) OnRedrawRequested() error {
	switch b.state {
	case StateDestroyed:
		return ErrSurfaceDestroyed
	case StateUninitialized:
		Logger().Debug("Redraw before surface ready ignored")
		return nil
	}
	if b.inFrame {
		return ErrReentrantRedraw
	}
	if b.registry.producing != nil {
		b.registry.deferCall(func() { _ = b.OnRedrawRequested() })
		return nil
	}
	rc := b.rc
	if !rc.backendReady {
		b.stats.Skipped++
		b.logger().Warn("Frame skipped, backend not initialized")
		return nil
	}

	b.inFrame = true
	b.registry.startFrame(rc)
	defer b.finishFrame()

	b.registry.MustActivate(rc.id)
	b.surface.MakeCurrent()
	b.surface.Viewport(b.size.W, b.size.H)
	b.surface.Clear(rc.ui.Style().WindowBgColor)

	rc.beginFrame(b.now())
	b.program.ProduceFrame(rc)
	// The program may have activated another context itself.
	if !rc.IsCurrent() {
		b.registry.MustActivate(rc.id)
		b.surface.MakeCurrent()
	}
	data := rc.endFrame()

	err := rc.backend.RenderDrawData(data)
	data.Release()
	rc.input.Drain()
	if err != nil {
		b.stats.Skipped++
		b.logger().Warn("Frame skipped", slog.Any("err", err))
		return nil
	}
	b.stats.Produced++
	return nil
}

func (b *SurfaceBridge) finishFrame() {
	if b.rc.InFrame() {
		// The program panicked; close the GUI frame so teardown stays legal.
		b.rc.endFrame().Release()
	}
	b.inFrame = false
	b.registry.finishFrame()
}

// OnPointerMove forwards a pointer position.
func (b *SurfaceBridge) OnPointerMove(x, y float32) error {
	return b.deliver("pointer-move", func(rc *RenderContext) { b.input.PointerMove(rc, x, y) })
}

// OnPointerButton forwards a host button transition.
func (b *SurfaceBridge) OnPointerButton(button int, pressed bool) error {
	return b.deliver("pointer-button", func(rc *RenderContext) { b.input.PointerButton(rc, button, pressed) })
}

// OnWheel forwards a raw vertical wheel delta.
func (b *SurfaceBridge) OnWheel(raw float32) error {
	return b.deliver("wheel", func(rc *RenderContext) { b.input.Wheel(rc, raw) })
}

// OnKey forwards a key transition with the host modifier mask.
func (b *SurfaceBridge) OnKey(code int, pressed bool, mods uint32) error {
	return b.deliver("key", func(rc *RenderContext) { b.input.Key(rc, code, pressed, mods) })
}

// OnText forwards committed text.
func (b *SurfaceBridge) OnText(text string) error {
	return b.deliver("text", func(rc *RenderContext) { b.input.Text(rc, text) })
}

func (b *SurfaceBridge) deliver(kind string, apply func(rc *RenderContext)) error {
	switch b.state {
	case StateDestroyed:
		return ErrSurfaceDestroyed
	case StateUninitialized:
		Logger().Debug("Input before surface ready dropped", slog.String("event", kind))
		return nil
	}
	if b.registry.producing != nil {
		b.registry.deferCall(func() { _ = b.deliver(kind, apply) })
		return nil
	}
	apply(b.rc)
	return nil
}

// OnTeardown stops the clock and removes the context: backend shutdown,
// then GUI destruction, then registry removal. Later calls are no-ops.
// During another bridge's frame it is queued until that frame ends.
func (b *SurfaceBridge) OnTeardown() error {
	if b.state == StateDestroyed {
		return nil
	}
	if b.inFrame {
		b.logger().Error("Teardown during frame refused")
		return ErrTeardownDuringFrame
	}
	if b.registry.producing != nil {
		b.registry.deferCall(func() { _ = b.OnTeardown() })
		return nil
	}
	if b.clock != nil {
		b.clock.Stop()
	}
	if b.state == StateReady {
		b.surface.MakeCurrent()
		b.registry.RemoveContext(b.rc.id)
		b.logger().Info("Surface torn down", slog.Uint64("frames", b.stats.Produced))
	}
	b.state = StateDestroyed
	b.surface = nil
	b.rc = nil
	return nil
}
