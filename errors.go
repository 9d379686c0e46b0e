package panes

import "errors"

var (
	// ErrBackendInit wraps failures of Backend.Init. The context that was
	// being created is discarded and never registered.
	ErrBackendInit = errors.New("panes: backend init failed")

	// ErrUnknownContext is returned when activating an ID the registry
	// does not hold.
	ErrUnknownContext = errors.New("panes: unknown context")

	// ErrSurfaceDestroyed is returned by bridge callbacks after teardown.
	ErrSurfaceDestroyed = errors.New("panes: surface destroyed")

	// ErrReentrantRedraw is returned when a redraw is requested while the
	// same bridge is still producing a frame.
	ErrReentrantRedraw = errors.New("panes: redraw re-entered")

	// ErrTeardownDuringFrame is returned when the host tears a surface
	// down from inside its own redraw.
	ErrTeardownDuringFrame = errors.New("panes: teardown during frame")

	// ErrNotReady is returned by operations that need a ready surface.
	ErrNotReady = errors.New("panes: surface not ready")

	// ErrInvalidRate is returned for refresh rates below 1.
	ErrInvalidRate = errors.New("panes: refresh rate must be positive")
)
