package gui

// LayoutType is the stacking direction of a layout.
type LayoutType uint8

const (
	LayoutVertical LayoutType = iota
	LayoutHorizontal
)

// Layout tracks one container on the layout stack.
type Layout struct {
	Type LayoutType

	StartX, StartY float32

	// Available size, and the content size accumulated so far.
	Width, Height       float32
	MaxWidth, MaxHeight float32

	Gap      float32
	GapX     float32
	GapY     float32
	Padding  float32
	PaddingX float32
	PaddingY float32

	ItemCount int

	lastItem Rect
	sameLine bool
}

func (l *Layout) gapX(fallback float32) float32 {
	switch {
	case l.GapX != 0:
		return l.GapX
	case l.Gap != 0:
		return l.Gap
	}
	return fallback
}

func (l *Layout) gapY(fallback float32) float32 {
	switch {
	case l.GapY != 0:
		return l.GapY
	case l.Gap != 0:
		return l.Gap
	}
	return fallback
}

// LayoutOption configures a layout container.
type LayoutOption func(*Layout)

// Gap sets the spacing between children.
func Gap(pixels float32) LayoutOption {
	return func(l *Layout) { l.Gap = pixels }
}

// Padding sets the inner padding.
func Padding(pixels float32) LayoutOption {
	return func(l *Layout) { l.Padding = pixels }
}

// PaddingXY sets horizontal and vertical padding separately.
func PaddingXY(x, y float32) LayoutOption {
	return func(l *Layout) {
		l.PaddingX = x
		l.PaddingY = y
	}
}

// Width fixes the container width. Zero means size to content.
func Width(w float32) LayoutOption {
	return func(l *Layout) { l.Width = w }
}

// Height fixes the container height. Zero means size to content.
func Height(h float32) LayoutOption {
	return func(l *Layout) { l.Height = h }
}

func (ctx *Context) pushLayoutWith(l *Layout) {
	l.StartX = ctx.cursor.X
	l.StartY = ctx.cursor.Y
	if l.Width == 0 {
		l.Width = ctx.currentLayoutWidth()
	}
	if l.Height == 0 {
		l.Height = ctx.currentLayoutHeight()
	}
	ctx.layoutStack = append(ctx.layoutStack, l)
}

// popLayout removes the innermost layout and returns its content bounds.
// The caller advances the parent.
func (ctx *Context) popLayout() Rect {
	n := len(ctx.layoutStack)
	if n == 0 {
		return Rect{}
	}
	l := ctx.layoutStack[n-1]
	ctx.layoutStack = ctx.layoutStack[:n-1]
	return Rect{X: l.StartX, Y: l.StartY, W: l.MaxWidth, H: l.MaxHeight}
}

func (ctx *Context) stack(typ LayoutType, opts []LayoutOption, contents func()) {
	start := ctx.ItemPos()
	l := &Layout{Type: typ, Gap: ctx.style.ItemSpacing}
	for _, opt := range opts {
		opt(l)
	}
	ctx.pushLayoutWith(l)
	contents()
	b := ctx.popLayout()
	ctx.cursor = start
	ctx.AdvanceCursor(Vec2{b.W, b.H})
}

// VStack stacks its contents vertically.
//
//	ctx.VStack(gui.Gap(8))(func() {
//	    ctx.Text("Line 1")
//	    ctx.Text("Line 2")
//	})
func (ctx *Context) VStack(opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		ctx.stack(LayoutVertical, opts, contents)
	}
}

// HStack stacks its contents horizontally.
func (ctx *Context) HStack(opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		ctx.stack(LayoutHorizontal, opts, contents)
	}
}

// Panel draws a background, an optional title header and its contents.
// The background is inserted after the contents so it fits them.
//
//	ctx.Panel("Menu", gui.Gap(8), gui.Padding(12))(func() {
//	    ctx.Text("Hello")
//	})
func (ctx *Context) Panel(title string, opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		l := &Layout{
			Type:    LayoutVertical,
			Padding: ctx.style.PanelPadding,
			Gap:     ctx.style.ItemSpacing,
		}
		for _, opt := range opts {
			opt(l)
		}
		padX := l.PaddingX
		if padX == 0 {
			padX = l.Padding
		}
		padY := l.PaddingY
		if padY == 0 {
			padY = l.Padding
		}
		userW, userH := l.Width, l.Height

		start := ctx.ItemPos()
		headerH := float32(0)
		if title != "" {
			headerH = ctx.lineHeight() + padY*2
		}

		ctx.cursor.X += padX
		ctx.cursor.Y += padY + headerH
		ctx.pushLayoutWith(l)
		contents()
		b := ctx.popLayout()

		w := max(b.W+padX*2, userW)
		h := max(b.H+padY*2+headerH, userH)

		ctx.DrawList.InsertRect(start.X, start.Y, w, h, ctx.style.PanelColor)
		if title != "" {
			ctx.DrawList.AddRect(start.X, start.Y, w, headerH, ctx.style.PanelHeaderBgColor)
			color := ctx.style.PanelHeaderTextColor
			if color == 0 {
				color = ctx.style.TextColor
			}
			ctx.AddText(start.X+padX, start.Y+(headerH-ctx.lineHeight())/2, title, color)
		}
		if ctx.style.BorderSize > 0 {
			ctx.DrawList.AddRectOutline(start.X, start.Y, w, h, ctx.style.PanelBorderColor, ctx.style.BorderSize)
		}
		if ctx.isHovered(Rect{X: start.X, Y: start.Y, W: w, H: h}) {
			ctx.WantCaptureMouse = true
		}

		ctx.cursor = start
		ctx.AdvanceCursor(Vec2{w, h})
	}
}

// Window is a Panel pinned to the origin and covering the whole display.
func (ctx *Context) Window(title string, opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		ctx.cursor = Vec2{}
		full := []LayoutOption{Width(ctx.DisplaySize.X), Height(ctx.DisplaySize.Y)}
		ctx.Panel(title, append(full, opts...)...)(contents)
	}
}

// SameLine places the next item to the right of the previous one.
func (ctx *Context) SameLine() {
	l := ctx.currentLayout()
	if l == nil || l.Type != LayoutVertical || l.ItemCount == 0 {
		return
	}
	ctx.cursor.X = l.lastItem.X + l.lastItem.W + l.gapX(ctx.style.ItemSpacing)
	ctx.cursor.Y = l.lastItem.Y
	l.sameLine = true
}

// Spacing adds vertical space.
func (ctx *Context) Spacing(pixels float32) {
	ctx.cursor.Y += pixels
}

// Separator draws a horizontal rule across the layout.
func (ctx *Context) Separator() {
	pos := ctx.ItemPos()
	w := ctx.currentLayoutWidth()
	ctx.DrawList.AddLine(pos.X, pos.Y+2, pos.X+w, pos.Y+2, ctx.style.SeparatorColor, 1)
	ctx.AdvanceCursor(Vec2{w, 4})
}
