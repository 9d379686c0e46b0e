package gui

import "errors"

// ErrDestroyed is returned by GUI methods after Destroy.
var ErrDestroyed = errors.New("gui: destroyed")

// GUI is one immediate-mode GUI instance: its widget state, style and
// frame context. It does not render; End hands the frame's DrawData to
// the caller, which submits it to a backend.
type GUI struct {
	stateStore StateStore
	style      Style
	ctx        *Context
	fontTex    uint32
	inFrame    bool
	destroyed  bool
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithStyle sets the GUI style.
func WithStyle(style Style) GUIOption {
	return func(g *GUI) { g.style = style }
}

// WithStateStore sets a custom state store.
func WithStateStore(store StateStore) GUIOption {
	return func(g *GUI) { g.stateStore = store }
}

// New creates a GUI instance.
func New(opts ...GUIOption) *GUI {
	g := &GUI{
		stateStore: make(MapStateStore),
		style:      DefaultStyle(),
		ctx:        NewContext(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// SetFontTexture sets the texture holding the built-in glyph atlas.
// Backends call it once their font texture exists.
func (g *GUI) SetFontTexture(id uint32) {
	g.fontTex = id
}

// Begin starts a frame laid out for displaySize and returns its Context.
// input is read during the frame and must not be mutated until End.
func (g *GUI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	if g.destroyed {
		panic(ErrDestroyed)
	}
	ctx := g.ctx
	ctx.DrawList = AcquireDrawList()
	ctx.ForegroundDrawList = AcquireDrawList()
	ctx.Input = input
	ctx.stateStore = g.stateStore
	ctx.FontTextureID = g.fontTex
	ctx.SetStyle(g.style)
	ctx.Reset(displaySize, deltaTime)
	if input != nil {
		input.UpdateKeyRepeat(deltaTime)
	}
	g.inFrame = true
	return ctx
}

// End finishes the frame and returns its draw data. The caller owns the
// result and releases it after submission.
func (g *GUI) End() *DrawData {
	ctx := g.ctx
	if !g.inFrame {
		return &DrawData{DisplaySize: ctx.DisplaySize}
	}
	g.inFrame = false

	data := &DrawData{DisplaySize: ctx.DisplaySize}
	for _, dl := range []*DrawList{ctx.DrawList, ctx.ForegroundDrawList} {
		dl.Finalize()
		if len(dl.CmdBuffer) == 0 {
			ReleaseDrawList(dl)
			continue
		}
		data.Lists = append(data.Lists, dl)
	}
	ctx.DrawList = nil
	ctx.ForegroundDrawList = nil
	ctx.Input = nil
	return data
}

// InFrame reports whether Begin was called without a matching End.
func (g *GUI) InFrame() bool {
	return g.inFrame
}

// Context returns the frame context. Only valid between Begin and End.
func (g *GUI) Context() *Context {
	return g.ctx
}

// Style returns the GUI style.
func (g *GUI) Style() Style {
	return g.style
}

// SetStyle replaces the GUI style from the next frame on.
func (g *GUI) SetStyle(style Style) {
	g.style = style
}

// Destroy drops all widget state. The GUI cannot begin frames afterwards.
// Destroying twice is a no-op.
func (g *GUI) Destroy() {
	if g.destroyed {
		return
	}
	if g.inFrame {
		g.End().Release()
	}
	g.destroyed = true
	g.stateStore = nil
	g.ctx.measureCache.Purge()
}

// Destroyed reports whether Destroy was called.
func (g *GUI) Destroyed() bool {
	return g.destroyed
}
