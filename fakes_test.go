package panes_test

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/panes"
	"github.com/go-theft-auto/panes/gui"
)

// eventLog is shared by fakes and registry observers to check ordering.
type eventLog struct {
	entries []string
}

func (l *eventLog) add(format string, args ...any) {
	l.entries = append(l.entries, fmt.Sprintf(format, args...))
}

func (l *eventLog) index(entry string) int {
	return slices.Index(l.entries, entry)
}

func (l *eventLog) count(entry string) int {
	n := 0
	for _, e := range l.entries {
		if e == entry {
			n++
		}
	}
	return n
}

func (l *eventLog) observer() panes.RegistryOption {
	return panes.WithObserver(func(e panes.Event) {
		if e.Kind != panes.EventActivated {
			l.add("%s %s", e.Kind, e.ID)
		}
	})
}

var errFakeInit = errors.New("fake: no GL context")

type fakeBackend struct {
	reg       *panes.Registry
	log       *eventLog
	initErr   error
	renderErr error
	fontTex   uint32

	inits, shutdowns, newFrames int
	submitted                   []gui.Vec2
	vertices                    []int
	renderedWith                []panes.ContextID
}

func (b *fakeBackend) Init() error {
	b.inits++
	return b.initErr
}

func (b *fakeBackend) Shutdown() {
	b.shutdowns++
	if b.log != nil {
		// Shutdown runs with its own context current.
		owner := "none"
		if rc := b.reg.Current(); rc != nil {
			owner = rc.ID().String()
		}
		b.log.add("backend shutdown %s", owner)
	}
}

func (b *fakeBackend) NewFrame() { b.newFrames++ }

func (b *fakeBackend) RenderDrawData(data *gui.DrawData) error {
	if rc := b.reg.Current(); rc != nil {
		b.renderedWith = append(b.renderedWith, rc.ID())
	}
	if b.renderErr != nil {
		return b.renderErr
	}
	b.submitted = append(b.submitted, data.DisplaySize)
	b.vertices = append(b.vertices, data.TotalVtxCount())
	return nil
}

func (b *fakeBackend) FontTextureID() uint32 { return b.fontTex }

// backendFarm hands out fake backends and keeps them in creation order.
type backendFarm struct {
	reg      *panes.Registry
	log      *eventLog
	initErr  error
	backends []*fakeBackend
}

func (f *backendFarm) factory() panes.Backend {
	b := &fakeBackend{reg: f.reg, log: f.log, initErr: f.initErr, fontTex: 7}
	f.backends = append(f.backends, b)
	return b
}

func (f *backendFarm) last() *fakeBackend {
	return f.backends[len(f.backends)-1]
}

type fakeSurface struct {
	makeCurrent int
	viewports   []panes.Size
	clears      []uint32
}

func (s *fakeSurface) MakeCurrent() { s.makeCurrent++ }

func (s *fakeSurface) Viewport(w, h int) {
	s.viewports = append(s.viewports, panes.Size{W: w, H: h})
}

func (s *fakeSurface) Clear(color uint32) { s.clears = append(s.clears, color) }

func (s *fakeSurface) lastViewport() panes.Size {
	return s.viewports[len(s.viewports)-1]
}

func newTestRegistry(opts ...panes.RegistryOption) (*panes.Registry, *backendFarm) {
	farm := &backendFarm{}
	farm.reg = panes.NewRegistry(farm.factory, opts...)
	return farm.reg, farm
}

// newLoggedRegistry records registry events and backend shutdowns in log.
func newLoggedRegistry(log *eventLog) (*panes.Registry, *backendFarm) {
	farm := &backendFarm{log: log}
	farm.reg = panes.NewRegistry(farm.factory, log.observer())
	return farm.reg, farm
}

// assertTeardownOrder checks backend shutdown, GUI destruction and
// registry removal of id happened once each and in that order.
func assertTeardownOrder(t *testing.T, log *eventLog, id panes.ContextID) {
	t.Helper()
	shutdown := log.index("backend shutdown " + id.String())
	destroyed := log.index("context-destroyed " + id.String())
	removed := log.index("removed " + id.String())
	require.NotEqual(t, -1, shutdown, "backend shutdown of %s", id)
	require.NotEqual(t, -1, destroyed, "destroy of %s", id)
	require.NotEqual(t, -1, removed, "removal of %s", id)
	assert.Less(t, shutdown, destroyed)
	assert.Less(t, destroyed, removed)
	assert.Equal(t, 1, log.count("removed "+id.String()))
}

// readyBridge returns a bridge that is Ready at size.
func readyBridge(reg *panes.Registry, program panes.FrameProgram, size panes.Size, opts ...panes.BridgeOption) (*panes.SurfaceBridge, *fakeSurface) {
	surface := &fakeSurface{}
	b := panes.NewSurfaceBridge(reg, program, opts...)
	if err := b.OnSurfaceReady(surface, size); err != nil {
		panic(err)
	}
	return b, surface
}

// programFunc is a FrameProgram that draws one line of text and then
// runs fn.
func programFunc(fn func(rc *panes.RenderContext)) panes.FrameProgram {
	return panes.FrameProgramFunc(func(rc *panes.RenderContext) {
		rc.UI().Text("frame")
		if fn != nil {
			fn(rc)
		}
	})
}
