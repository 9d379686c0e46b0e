package panes_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/panes"
	"github.com/go-theft-auto/panes/gui"
)

func TestBridgeLifecycle(t *testing.T) {
	reg, farm := newTestRegistry()
	b := panes.NewSurfaceBridge(reg, programFunc(nil))
	assert.Equal(t, panes.StateUninitialized, b.State())
	assert.Nil(t, b.Context())

	surface := &fakeSurface{}
	require.NoError(t, b.OnSurfaceReady(surface, panes.Size{W: 320, H: 200}))
	assert.Equal(t, panes.StateReady, b.State())
	require.NotNil(t, b.Context())
	assert.Equal(t, panes.Size{W: 320, H: 200}, b.Context().Size())
	assert.Equal(t, 1, reg.Len())

	require.NoError(t, b.OnSurfaceReady(surface, panes.Size{W: 1, H: 1}), "second ready is ignored")
	assert.Equal(t, 1, reg.Len())

	require.NoError(t, b.OnRedrawRequested())
	assert.Equal(t, panes.FrameStats{Produced: 1}, b.Stats())
	assert.Equal(t, []uint32{gui.DefaultStyle().WindowBgColor}, surface.clears)
	assert.Equal(t, 1, farm.last().newFrames)

	require.NoError(t, b.OnTeardown())
	assert.Equal(t, panes.StateDestroyed, b.State())
	assert.Nil(t, b.Context())
	assert.Zero(t, reg.Len())
	assert.Equal(t, 1, farm.last().shutdowns)

	require.NoError(t, b.OnTeardown(), "second teardown is a no-op")
	assert.Equal(t, 1, farm.last().shutdowns)
}

func TestBridgeCallbacksAfterTeardown(t *testing.T) {
	reg, _ := newTestRegistry()
	b, _ := readyBridge(reg, programFunc(nil), panes.Size{W: 10, H: 10})
	require.NoError(t, b.OnTeardown())

	assert.ErrorIs(t, b.OnRedrawRequested(), panes.ErrSurfaceDestroyed)
	assert.ErrorIs(t, b.OnResize(1, 1), panes.ErrSurfaceDestroyed)
	assert.ErrorIs(t, b.OnPointerMove(1, 1), panes.ErrSurfaceDestroyed)
	assert.ErrorIs(t, b.OnPointerButton(1, true), panes.ErrSurfaceDestroyed)
	assert.ErrorIs(t, b.OnWheel(120), panes.ErrSurfaceDestroyed)
	assert.ErrorIs(t, b.OnKey(65, true, 0), panes.ErrSurfaceDestroyed)
	assert.ErrorIs(t, b.OnText("a"), panes.ErrSurfaceDestroyed)
	assert.ErrorIs(t, b.OnSurfaceReady(&fakeSurface{}, panes.Size{}), panes.ErrSurfaceDestroyed)
}

func TestBridgeBeforeReady(t *testing.T) {
	reg, farm := newTestRegistry()
	b := panes.NewSurfaceBridge(reg, programFunc(nil))

	require.NoError(t, b.OnPointerMove(5, 5))
	require.NoError(t, b.OnKey(65, true, 0))
	require.NoError(t, b.OnRedrawRequested())
	require.NoError(t, b.OnResize(640, 480))
	assert.Equal(t, panes.Size{W: 640, H: 480}, b.Size())
	assert.Empty(t, farm.backends, "nothing is created before ready")

	require.NoError(t, b.OnSurfaceReady(&fakeSurface{}, panes.Size{W: 300, H: 200}))
	in := b.Context().Input()
	assert.Empty(t, in.Events(), "input before ready is dropped")
	assert.Zero(t, in.MouseX)
	assert.Equal(t, panes.Size{W: 300, H: 200}, b.Size())
}

func TestBridgeTeardownBeforeReady(t *testing.T) {
	reg, _ := newTestRegistry()
	b := panes.NewSurfaceBridge(reg, programFunc(nil))
	require.NoError(t, b.OnTeardown())
	assert.Equal(t, panes.StateDestroyed, b.State())
	assert.Zero(t, reg.Len())
}

func TestBridgeReadyFailure(t *testing.T) {
	reg, farm := newTestRegistry()
	farm.initErr = errFakeInit
	b := panes.NewSurfaceBridge(reg, programFunc(nil))

	err := b.OnSurfaceReady(&fakeSurface{}, panes.Size{W: 10, H: 10})
	assert.ErrorIs(t, err, panes.ErrBackendInit)
	assert.Equal(t, panes.StateUninitialized, b.State())
	assert.Zero(t, reg.Len())

	farm.initErr = nil
	require.NoError(t, b.OnSurfaceReady(&fakeSurface{}, panes.Size{W: 10, H: 10}))
	assert.Equal(t, panes.StateReady, b.State())
}

func TestSingleCurrentContextDuringFrames(t *testing.T) {
	reg, _ := newTestRegistry()
	var checks int
	program := programFunc(func(rc *panes.RenderContext) {
		assert.Same(t, rc, reg.Current())
		current := 0
		for _, id := range reg.IDs() {
			other, _ := reg.Lookup(id)
			if other.IsCurrent() {
				current++
			}
		}
		assert.Equal(t, 1, current)
		checks++
	})
	a, _ := readyBridge(reg, program, panes.Size{W: 100, H: 100})
	b, _ := readyBridge(reg, program, panes.Size{W: 100, H: 100})

	for _i := 0; _i < 5; _i++ {
		require.NoError(t, a.OnRedrawRequested())
		require.NoError(t, b.OnPointerMove(3, 4))
		require.NoError(t, b.OnRedrawRequested())
		require.NoError(t, a.OnWheel(120))
	}
	assert.Equal(t, 10, checks)
}

func TestWheelAccumulatesThenDrains(t *testing.T) {
	reg, _ := newTestRegistry()
	var seen []float32
	b, _ := readyBridge(reg, programFunc(func(rc *panes.RenderContext) {
		seen = append(seen, rc.UI().Input.MouseWheelY)
	}), panes.Size{W: 100, H: 100})

	require.NoError(t, b.OnWheel(120))
	require.NoError(t, b.OnWheel(60))
	require.NoError(t, b.OnWheel(-30))
	require.NoError(t, b.OnRedrawRequested())
	require.NoError(t, b.OnRedrawRequested())

	assert.Equal(t, []float32{1.25, 0}, seen)
}

func TestInputOrderPreserved(t *testing.T) {
	reg, _ := newTestRegistry()
	var frames [][]string
	b, _ := readyBridge(reg, programFunc(func(rc *panes.RenderContext) {
		var names []string
		for _, e := range rc.UI().Input.Events() {
			names = append(names, e.String())
		}
		frames = append(frames, names)
	}), panes.Size{W: 100, H: 100})

	require.NoError(t, b.OnKey(int(gui.KeyA), true, 0))
	require.NoError(t, b.OnText("x"))
	require.NoError(t, b.OnKey(int(gui.KeyA), false, 0))
	require.NoError(t, b.OnRedrawRequested())
	require.NoError(t, b.OnRedrawRequested())

	require.Len(t, frames, 2)
	assert.Equal(t, []string{"key(A down)", "char('x')", "key(A up)"}, frames[0])
	assert.Empty(t, frames[1])
}

func TestResizeThroughZero(t *testing.T) {
	reg, farm := newTestRegistry()
	b, surface := readyBridge(reg, programFunc(nil), panes.Size{W: 0, H: 0})

	require.NoError(t, b.OnResize(0, 0))
	require.NoError(t, b.OnRedrawRequested())
	require.NoError(t, b.OnResize(800, 600))
	require.NoError(t, b.OnRedrawRequested())

	backend := farm.last()
	assert.Equal(t, []gui.Vec2{{}, {X: 800, Y: 600}}, backend.submitted)
	assert.Equal(t, panes.Size{W: 800, H: 600}, surface.lastViewport())
	assert.Equal(t, panes.FrameStats{Produced: 2}, b.Stats())
}

func TestNegativeResizeClamps(t *testing.T) {
	reg, _ := newTestRegistry()
	b, surface := readyBridge(reg, programFunc(nil), panes.Size{W: 10, H: 10})
	require.NoError(t, b.OnResize(-5, 20))
	assert.Equal(t, panes.Size{W: 0, H: 20}, b.Size())
	assert.Equal(t, panes.Size{W: 0, H: 20}, surface.lastViewport())
}

func TestTwoBridgesKeepTheirSizes(t *testing.T) {
	reg, farm := newTestRegistry()
	a, surfA := readyBridge(reg, programFunc(nil), panes.Size{W: 100, H: 50})
	backendA := farm.last()
	b, surfB := readyBridge(reg, programFunc(nil), panes.Size{W: 200, H: 70})
	backendB := farm.last()

	var wantA, wantB []gui.Vec2
	widthB := 200
	for i := 0; i < 10; i++ {
		require.NoError(t, a.OnResize(100+i, 50))
		require.NoError(t, b.OnRedrawRequested())
		wantB = append(wantB, gui.Vec2{X: float32(widthB), Y: 70})

		widthB = 200 + i
		require.NoError(t, b.OnResize(widthB, 70))
		require.NoError(t, a.OnRedrawRequested())
		wantA = append(wantA, gui.Vec2{X: float32(100 + i), Y: 50})
	}

	assert.Equal(t, wantA, backendA.submitted)
	assert.Equal(t, wantB, backendB.submitted)
	assert.Equal(t, panes.Size{W: 109, H: 50}, surfA.lastViewport())
	assert.Equal(t, panes.Size{W: 209, H: 70}, surfB.lastViewport())
}

func TestReentrantRedraw(t *testing.T) {
	reg, _ := newTestRegistry()
	var b *panes.SurfaceBridge
	var inner error
	b, _ = readyBridge(reg, programFunc(func(*panes.RenderContext) {
		inner = b.OnRedrawRequested()
	}), panes.Size{W: 10, H: 10})

	require.NoError(t, b.OnRedrawRequested())
	assert.ErrorIs(t, inner, panes.ErrReentrantRedraw)
	assert.Equal(t, uint64(1), b.Stats().Produced)
}

func TestTeardownDuringFrameRefused(t *testing.T) {
	reg, _ := newTestRegistry()
	var b *panes.SurfaceBridge
	var inner error
	b, _ = readyBridge(reg, programFunc(func(*panes.RenderContext) {
		inner = b.OnTeardown()
	}), panes.Size{W: 10, H: 10})

	require.NoError(t, b.OnRedrawRequested())
	assert.ErrorIs(t, inner, panes.ErrTeardownDuringFrame)
	assert.Equal(t, panes.StateReady, b.State())
	assert.Equal(t, 1, reg.Len())
}

func TestInputDuringFrameAppliedAfter(t *testing.T) {
	reg, _ := newTestRegistry()
	var b *panes.SurfaceBridge
	var during []float32
	b, _ = readyBridge(reg, programFunc(func(rc *panes.RenderContext) {
		require.NoError(t, b.OnPointerMove(40, 50))
		require.NoError(t, b.OnResize(30, 30))
		during = append(during, rc.UI().Input.MouseX, rc.DisplaySize().X)
	}), panes.Size{W: 10, H: 10})

	require.NoError(t, b.OnRedrawRequested())
	assert.Equal(t, []float32{0, 10}, during, "frame input is stable")
	assert.Equal(t, float32(40), b.Context().Input().MouseX)
	assert.Equal(t, panes.Size{W: 30, H: 30}, b.Size())
}

func TestRenderFailureSkipsFrame(t *testing.T) {
	reg, farm := newTestRegistry()
	b, _ := readyBridge(reg, programFunc(nil), panes.Size{W: 10, H: 10})
	farm.last().renderErr = errors.New("lost device")

	require.NoError(t, b.OnWheel(120))
	require.NoError(t, b.OnRedrawRequested())
	assert.Equal(t, panes.FrameStats{Skipped: 1}, b.Stats())
	assert.Zero(t, b.Context().Input().MouseWheelY, "consumed input is drained")

	farm.last().renderErr = nil
	require.NoError(t, b.OnRedrawRequested())
	assert.Equal(t, panes.FrameStats{Produced: 1, Skipped: 1}, b.Stats())
}

func TestRedrawWithoutBackendSkips(t *testing.T) {
	reg, farm := newTestRegistry()
	b, _ := readyBridge(reg, programFunc(nil), panes.Size{W: 10, H: 10})
	farm.last().initErr = errFakeInit
	require.Error(t, b.Context().ReinitBackend())

	require.NoError(t, b.OnRedrawRequested())
	assert.Equal(t, panes.FrameStats{Skipped: 1}, b.Stats())
}

func TestProgramPanicLeavesBridgeUsable(t *testing.T) {
	reg, _ := newTestRegistry()
	fail := true
	b, _ := readyBridge(reg, programFunc(func(*panes.RenderContext) {
		if fail {
			panic("boom")
		}
	}), panes.Size{W: 10, H: 10})

	assert.Panics(t, func() { _ = b.OnRedrawRequested() })
	fail = false
	require.NoError(t, b.OnRedrawRequested())
	require.NoError(t, b.OnTeardown())
}

func TestBridgeDrivesClock(t *testing.T) {
	reg, _ := newTestRegistry()
	start := time.Unix(1000, 0)
	var b *panes.SurfaceBridge
	clock, err := panes.NewFrameClock(60, func() { _ = b.OnRedrawRequested() })
	require.NoError(t, err)

	b = panes.NewSurfaceBridge(reg, programFunc(nil),
		panes.WithFrameClock(clock),
		panes.WithTimeSource(func() time.Time { return start }))
	assert.False(t, clock.Running())

	require.NoError(t, b.OnSurfaceReady(&fakeSurface{}, panes.Size{W: 10, H: 10}))
	assert.True(t, clock.Running())
	assert.Same(t, clock, b.Clock())

	assert.False(t, clock.Advance(start.Add(10*time.Millisecond)))
	assert.True(t, clock.Advance(start.Add(16*time.Millisecond)))
	assert.Equal(t, uint64(1), b.Stats().Produced)

	require.NoError(t, b.OnTeardown())
	assert.False(t, clock.Running())
	assert.False(t, clock.Advance(start.Add(time.Second)))
}

func TestBridgeHostProfile(t *testing.T) {
	reg, _ := newTestRegistry()
	profile := panes.DefaultHostProfile()
	profile.WheelNotch = 1
	b, _ := readyBridge(reg, programFunc(nil), panes.Size{W: 10, H: 10}, panes.WithHostProfile(profile))

	require.NoError(t, b.OnWheel(2))
	assert.Equal(t, float32(2), b.Context().Input().MouseWheelY)
}

func TestBridgeTeardownOrder(t *testing.T) {
	log := &eventLog{}
	reg, _ := newLoggedRegistry(log)
	var bridges []*panes.SurfaceBridge
	var ids []panes.ContextID
	for _i := 0; _i < 3; _i++ {
		b, _ := readyBridge(reg, programFunc(nil), panes.Size{W: 40, H: 30})
		require.NoError(t, b.OnRedrawRequested())
		bridges = append(bridges, b)
		ids = append(ids, b.Context().ID())
	}

	for _, i := range []int{1, 0, 2} {
		require.NoError(t, bridges[i].OnTeardown())
		assertTeardownOrder(t, log, ids[i])
	}
	assert.Zero(t, reg.Len())
	assert.Nil(t, reg.Current())
}

func TestOtherSurfaceWaitsForFrame(t *testing.T) {
	reg, farm := newTestRegistry()
	var a, b *panes.SurfaceBridge
	var surfB *fakeSurface
	var calls []error
	a, _ = readyBridge(reg, programFunc(func(rc *panes.RenderContext) {
		makeCurrentB := surfB.makeCurrent
		calls = append(calls,
			b.OnPointerMove(1, 2),
			b.OnResize(50, 50),
			b.OnRedrawRequested())

		assert.Same(t, rc, reg.Current())
		assert.NotPanics(t, func() { rc.UI().Text("still mine") })
		assert.Equal(t, makeCurrentB, surfB.makeCurrent, "B's surface untouched during A's frame")
		assert.Zero(t, b.Context().Input().MouseX)
	}), panes.Size{W: 100, H: 80})
	backendA := farm.last()
	b, surfB = readyBridge(reg, programFunc(nil), panes.Size{W: 20, H: 20})
	backendB := farm.last()

	require.NoError(t, a.OnRedrawRequested())
	assert.Equal(t, []error{nil, nil, nil}, calls)
	assert.Equal(t, []panes.ContextID{a.Context().ID()}, backendA.renderedWith)

	assert.Equal(t, float32(1), b.Context().Input().MouseX)
	assert.Equal(t, panes.Size{W: 50, H: 50}, b.Size())
	assert.Equal(t, panes.FrameStats{Produced: 1}, b.Stats(), "queued redraw runs after A's frame")
	assert.Equal(t, []gui.Vec2{{X: 50, Y: 50}}, backendB.submitted)
	assert.Equal(t, []panes.ContextID{b.Context().ID()}, backendB.renderedWith)
	assert.Same(t, b.Context(), reg.Current())
}

func TestOtherSurfaceTeardownWaitsForFrame(t *testing.T) {
	reg, _ := newTestRegistry()
	var a, b *panes.SurfaceBridge
	a, _ = readyBridge(reg, programFunc(func(rc *panes.RenderContext) {
		assert.NoError(t, b.OnTeardown())
		assert.Equal(t, panes.StateReady, b.State())
		assert.Panics(t, func() { _ = b.Context().ReinitBackend() })
		assert.Same(t, rc, reg.Current())
	}), panes.Size{W: 10, H: 10})
	b, _ = readyBridge(reg, programFunc(nil), panes.Size{W: 10, H: 10})

	require.NoError(t, a.OnRedrawRequested())
	assert.Equal(t, panes.StateDestroyed, b.State())
	assert.Equal(t, 1, reg.Len())
	assert.Same(t, a.Context(), reg.Current())
}

func TestProgramActivatingAnotherContextStillSubmitsToItsOwn(t *testing.T) {
	reg, farm := newTestRegistry()
	other, err := reg.CreateContext()
	require.NoError(t, err)
	a, surfA := readyBridge(reg, programFunc(func(*panes.RenderContext) {
		require.NoError(t, reg.Activate(other.ID()))
	}), panes.Size{W: 10, H: 10})
	backendA := farm.last()
	before := surfA.makeCurrent

	require.NoError(t, a.OnRedrawRequested())
	assert.Equal(t, []panes.ContextID{a.Context().ID()}, backendA.renderedWith)
	assert.Equal(t, before+2, surfA.makeCurrent, "surface made current again before submission")
	assert.Equal(t, panes.FrameStats{Produced: 1}, a.Stats())
}

func TestFontTextureFollowsBackend(t *testing.T) {
	reg, farm := newTestRegistry()
	var seen []uint32
	b, _ := readyBridge(reg, programFunc(func(rc *panes.RenderContext) {
		seen = append(seen, rc.UI().FontTextureID)
	}), panes.Size{W: 10, H: 10})

	require.NoError(t, b.OnRedrawRequested())
	farm.last().fontTex = 9
	require.NoError(t, b.OnRedrawRequested())
	assert.Equal(t, []uint32{7, 9}, seen)
}
