// Package panes embeds immediate-mode GUI rendering in panes owned by a
// host application.
//
// A host creates one SurfaceBridge per pane and forwards its widget
// callbacks to it. Each bridge owns a RenderContext obtained from a shared
// Registry, which keeps every context's GUI state and graphics backend
// apart and makes exactly one of them current at a time:
//
//	reg := panes.NewRegistry(func() panes.Backend { return opengl.NewRenderer() })
//	bridge := panes.NewSurfaceBridge(reg, panels.NewHello(nil))
//
//	bridge.OnSurfaceReady(window, panes.Size{W: 800, H: 600})
//	bridge.OnPointerMove(120, 40)
//	bridge.OnRedrawRequested()
//	bridge.OnTeardown()
//
// A FrameProgram builds each frame through rc.UI(), the frame API of the
// gui package. A FrameClock turns a refresh rate into redraw requests
// without owning a goroutine; the host pump advances it.
//
// Everything here runs on the host's UI thread. Nothing is safe for
// concurrent use except SetLogger, Logger and WatchConfig.
package panes
