package panes

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/go-theft-auto/panes/gui"
)

// EventKind names a step in a context's lifecycle.
type EventKind int

const (
	EventCreated EventKind = iota
	EventActivated
	EventBackendShutdown
	EventContextDestroyed
	EventRemoved
)

var eventNames = [...]string{"created", "activated", "backend-shutdown", "context-destroyed", "removed"}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
	return eventNames[k]
}

// Event is delivered to a registry observer.
type Event struct {
	Kind EventKind
	ID   ContextID
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithObserver receives every lifecycle event in order.
func WithObserver(fn func(Event)) RegistryOption {
	return func(r *Registry) { r.observer = fn }
}

// WithGUIOptions configures the GUI of every created context.
func WithGUIOptions(opts ...gui.GUIOption) RegistryOption {
	return func(r *Registry) { r.guiOpts = append(r.guiOpts, opts...) }
}

// Registry holds the live RenderContexts in creation order and tracks
// which one is current. Every GUI-touching operation activates its
// context through the registry first, so at most one context is current.
//
// A Registry is used from a single thread and does no locking.
type Registry struct {
	contexts   []*RenderContext
	current    *RenderContext
	newBackend BackendFactory
	guiOpts    []gui.GUIOption
	observer   func(Event)

	// producing owns the frame in progress. Callbacks for any surface that
	// arrive meanwhile wait in deferred until it finishes.
	producing *RenderContext
	deferred  []func()

	activations uint64
}

// NewRegistry creates an empty registry whose contexts get backends from
// newBackend.
func NewRegistry(newBackend BackendFactory, opts ...RegistryOption) *Registry {
	r := &Registry{newBackend: newBackend}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) emit(kind EventKind, id ContextID) {
	if r.observer != nil {
		r.observer(Event{Kind: kind, ID: id})
	}
}

func (r *Registry) makeCurrent(rc *RenderContext) {
	r.current = rc
	if rc == nil {
		return
	}
	r.activations++
	r.emit(EventActivated, rc.id)
}

func (r *Registry) index(id ContextID) int {
	return slices.IndexFunc(r.contexts, func(rc *RenderContext) bool { return rc.id == id })
}

// CreateContext allocates a context, makes it current and initializes its
// backend. When Init fails nothing is registered, the previously current
// context is restored and the error wraps ErrBackendInit.
func (r *Registry) CreateContext() (*RenderContext, error) {
	prev := r.current
	rc := &RenderContext{
		id:       ContextID(uuid.New()),
		registry: r,
		ui:       gui.New(r.guiOpts...),
		input:    gui.NewInputState(),
	}
	log := Logger().With(slog.String("context", rc.id.String()))

	r.makeCurrent(rc)
	if r.newBackend != nil {
		rc.backend = r.newBackend()
	}
	if rc.backend == nil {
		rc.ui.Destroy()
		r.makeCurrent(prev)
		log.Error("No backend for context")
		return nil, fmt.Errorf("%w: no backend", ErrBackendInit)
	}
	if err := rc.backend.Init(); err != nil {
		rc.ui.Destroy()
		r.makeCurrent(prev)
		log.Error("Backend init failed", slog.Any("err", err))
		return nil, fmt.Errorf("%w: %w", ErrBackendInit, err)
	}
	rc.backendReady = true
	rc.ui.SetFontTexture(rc.backend.FontTextureID())

	r.contexts = append(r.contexts, rc)
	r.emit(EventCreated, rc.id)
	log.Info("Context created", slog.Int("live", len(r.contexts)))
	return rc, nil
}

// RemoveContext shuts down the backend of id, destroys its GUI and removes
// it, in that order. Removing an absent id is a no-op. The previously
// current context is restored unless it was the removed one.
//
// It panics if the context is producing a frame.
func (r *Registry) RemoveContext(id ContextID) {
	i := r.index(id)
	if i < 0 {
		Logger().Debug("Remove of absent context ignored", slog.String("context", id.String()))
		return
	}
	rc := r.contexts[i]
	if rc.InFrame() {
		panic("panes: RemoveContext during a frame of context " + id.String())
	}
	prev := r.current

	r.makeCurrent(rc)
	if rc.backendReady {
		rc.backend.Shutdown()
		rc.backendReady = false
		r.emit(EventBackendShutdown, id)
	}

	// Never destroyed while current.
	r.current = nil
	rc.ui.Destroy()
	rc.destroyed = true
	r.emit(EventContextDestroyed, id)

	r.contexts = slices.Delete(r.contexts, i, i+1)
	r.emit(EventRemoved, id)

	if prev != nil && prev != rc {
		r.makeCurrent(prev)
	}
	Logger().Info("Context removed", slog.String("context", id.String()), slog.Int("live", len(r.contexts)))
}

// Activate makes id current.
func (r *Registry) Activate(id ContextID) error {
	i := r.index(id)
	if i < 0 {
		return fmt.Errorf("activate: %w: %s", ErrUnknownContext, id)
	}
	if rc := r.contexts[i]; r.current != rc {
		r.makeCurrent(rc)
	}
	return nil
}

// MustActivate is Activate for callers that own the context. An unknown
// id there is a programming error, so it panics.
func (r *Registry) MustActivate(id ContextID) {
	if err := r.Activate(id); err != nil {
		panic(err)
	}
}

// Current returns the current context, or nil.
func (r *Registry) Current() *RenderContext { return r.current }

// Lookup returns the live context with id.
func (r *Registry) Lookup(id ContextID) (*RenderContext, bool) {
	if i := r.index(id); i >= 0 {
		return r.contexts[i], true
	}
	return nil, false
}

// Len returns the number of live contexts.
func (r *Registry) Len() int { return len(r.contexts) }

// IDs returns the live context IDs in creation order.
func (r *Registry) IDs() []ContextID {
	ids := make([]ContextID, len(r.contexts))
	for i, rc := range r.contexts {
		ids[i] = rc.id
	}
	return ids
}

// ActivationCount counts context switches since the registry was created.
func (r *Registry) ActivationCount() uint64 { return r.activations }

// Producing returns the context whose frame is in progress, or nil.
func (r *Registry) Producing() *RenderContext { return r.producing }

func (r *Registry) startFrame(rc *RenderContext) { r.producing = rc }

// finishFrame releases frame ownership and runs deferred callbacks in
// arrival order. A callback that starts another frame drains the rest of
// the queue itself.
func (r *Registry) finishFrame() {
	r.producing = nil
	for len(r.deferred) > 0 && r.producing == nil {
		fn := r.deferred[0]
		r.deferred = r.deferred[1:]
		fn()
	}
}

func (r *Registry) deferCall(fn func()) {
	r.deferred = append(r.deferred, fn)
}
