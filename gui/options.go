package gui

// Option configures a widget.
type Option func(*options)

type options struct {
	values map[string]any
}

// OptKey is a typed widget option key with a default.
//
//	var OptTint = gui.NewOptKey("tint", gui.ColorWhite)
//	ctx.Button("Go", gui.WithOpt(OptTint, gui.ColorRed))
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates an option key.
func NewOptKey[T any](name string, def T) OptKey[T] {
	return OptKey[T]{name: name, def: def}
}

// WithOpt sets an option value.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.values == nil {
			o.values = make(map[string]any)
		}
		o.values[key.name] = value
	}
}

// GetOpt returns the value for key, or its default when unset.
func GetOpt[T any](o options, key OptKey[T]) T {
	if v, ok := o.values[key.name].(T); ok {
		return v
	}
	return key.def
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies opts and returns one value. For widgets defined in
// other packages.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

var (
	OptID                = NewOptKey("id", "")
	OptDisabled          = NewOptKey("disabled", false)
	OptWidth             = NewOptKey[float32]("width", 0)
	OptHeight            = NewOptKey[float32]("height", 0)
	OptFormat            = NewOptKey("format", "")
	OptStep              = NewOptKey[float32]("step", 0)
	OptMaxDropdownHeight = NewOptKey[float32]("maxDropdownHeight", 200)
)

// WithID sets an explicit ID label, decoupling state from the display label.
func WithID(id string) Option { return WithOpt(OptID, id) }

// WithDisabled greys the widget out and ignores input.
func WithDisabled(disabled bool) Option { return WithOpt(OptDisabled, disabled) }

// WithWidth fixes the widget width.
func WithWidth(width float32) Option { return WithOpt(OptWidth, width) }

// WithHeight fixes the widget height.
func WithHeight(height float32) Option { return WithOpt(OptHeight, height) }

// WithFormat sets a fmt verb for the displayed value.
func WithFormat(format string) Option { return WithOpt(OptFormat, format) }

// WithStep sets the keyboard and wheel increment.
func WithStep(step float32) Option { return WithOpt(OptStep, step) }

// WithMaxDropdownHeight caps the height of an open combo list.
func WithMaxDropdownHeight(h float32) Option { return WithOpt(OptMaxDropdownHeight, h) }
