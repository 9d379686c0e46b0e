package gui

// StateStore persists widget state between frames of one GUI instance.
type StateStore interface {
	Get(id ID) (any, bool)
	Set(id ID, value any)
	Delete(id ID)
}

// MapStateStore is the in-memory StateStore used by default.
type MapStateStore map[ID]any

func (m MapStateStore) Get(id ID) (any, bool) {
	v, ok := m[id]
	return v, ok
}

func (m MapStateStore) Set(id ID, value any) {
	m[id] = value
}

func (m MapStateStore) Delete(id ID) {
	delete(m, id)
}

// GetState returns the state stored for id, or def when absent or of
// another type.
func GetState[T any](ctx *Context, id ID, def T) T {
	if v, ok := ctx.stateStore.Get(id); ok {
		if typed, ok := v.(T); ok {
			return typed
		}
	}
	return def
}

// SetState stores state for id.
func SetState[T any](ctx *Context, id ID, value T) {
	ctx.stateStore.Set(id, value)
}

// SliderState tracks a slider drag.
type SliderState struct {
	Dragging bool
}

// ComboBoxState tracks an open combo list.
type ComboBoxState struct {
	Open         bool
	HoveredIndex int
}
