package gui

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// measureCacheSize bounds the cross-frame text measurement cache.
const measureCacheSize = 512

type measureKey struct {
	text         string
	scale        float32
	charW, charH float32
}

// Context holds the per-frame state of one GUI instance. It is NOT
// context.Context. A Context is only usable between GUI.Begin and GUI.End.
type Context struct {
	DrawList           *DrawList
	ForegroundDrawList *DrawList // popups, drawn after DrawList

	style      Style
	styleStack []Style

	cursor      Vec2
	layoutStack []*Layout

	// Read-only during the frame.
	Input *InputState

	stateStore StateStore

	idStack   []ID
	idCounter uint32

	DisplaySize Vec2
	FrameCount  uint64
	DeltaTime   float32

	activeID  ID // held by the pointer
	focusedID ID // last clicked, receives keys

	// Set by the backend through GUI.SetFontTexture.
	FontTextureID uint32

	// Outputs telling the host whether the GUI consumed input this frame.
	WantCaptureMouse    bool
	WantCaptureKeyboard bool

	// Popups claim a rect for the next frame so widgets underneath ignore
	// the pointer while it is open.
	popupRect     Rect
	prevPopupRect Rect

	measureCache *lru.Cache[measureKey, Vec2]
}

// NewContext creates a Context with empty stacks and a measurement cache.
func NewContext() *Context {
	cache, err := lru.New[measureKey, Vec2](measureCacheSize)
	if err != nil {
		// Only fails for a non-positive size.
		panic(err)
	}
	return &Context{
		styleStack:   make([]Style, 0, 8),
		layoutStack:  make([]*Layout, 0, 16),
		idStack:      make([]ID, 0, 32),
		measureCache: cache,
	}
}

// Style returns the active style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle replaces the active style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// PushStyle temporarily overrides the style until PopStyle.
func (ctx *Context) PushStyle(style Style) {
	ctx.styleStack = append(ctx.styleStack, ctx.style)
	ctx.style = style
}

// PopStyle restores the style saved by the matching PushStyle.
func (ctx *Context) PopStyle() {
	n := len(ctx.styleStack)
	if n > 0 {
		ctx.style = ctx.styleStack[n-1]
		ctx.styleStack = ctx.styleStack[:n-1]
	}
}

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	ctx.cursor = Vec2{}
	ctx.layoutStack = ctx.layoutStack[:0]
	ctx.styleStack = ctx.styleStack[:0]
	ctx.idStack = ctx.idStack[:0]
	ctx.idCounter = 0
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.FrameCount++

	ctx.WantCaptureMouse = false
	ctx.WantCaptureKeyboard = false

	ctx.prevPopupRect = ctx.popupRect
	ctx.popupRect = Rect{}

	if !ctx.MouseDown(MouseButtonLeft) {
		ctx.activeID = 0
	}
}

// MouseDown is a nil-safe shortcut for ctx.Input.MouseDown.
func (ctx *Context) MouseDown(b MouseButton) bool {
	return ctx.Input != nil && ctx.Input.MouseDown(b)
}

func (ctx *Context) mousePos() Vec2 {
	return Vec2{ctx.Input.MouseX, ctx.Input.MouseY}
}

func (ctx *Context) isHovered(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	p := ctx.mousePos()
	return rect.Contains(p)
}

// isHoveredBehindPopup is isHovered for widgets that an open popup may
// cover.
func (ctx *Context) isHoveredBehindPopup(rect Rect) bool {
	if !ctx.isHovered(rect) {
		return false
	}
	return !ctx.prevPopupRect.Contains(ctx.mousePos())
}

// IsHovered reports whether the pointer is inside rect.
func (ctx *Context) IsHovered(rect Rect) bool {
	return ctx.isHovered(rect)
}

func (ctx *Context) isClicked(id ID, rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	hovered := ctx.isHoveredBehindPopup(rect)
	clicked := ctx.Input.MouseClicked(MouseButtonLeft)
	if clicked && guiVerbose() {
		guiLogger().Debug("click",
			"id", id,
			"hit", hovered,
			"rect", rect,
			"mouse", ctx.mousePos())
	}
	if hovered && clicked {
		ctx.activeID = id
		ctx.focusedID = id
		return true
	}
	return false
}

func (ctx *Context) isPressed(id ID, rect Rect) bool {
	return ctx.isHoveredBehindPopup(rect) && ctx.MouseDown(MouseButtonLeft)
}

// IsFocused reports whether id was the last widget clicked.
func (ctx *Context) IsFocused(id ID) bool {
	return id != 0 && ctx.focusedID == id
}

// claimPopup reserves rect on top of everything for the next frame.
func (ctx *Context) claimPopup(rect Rect) {
	ctx.popupRect = rect
	ctx.WantCaptureMouse = true
}

// SetCursorPos moves the layout cursor.
func (ctx *Context) SetCursorPos(x, y float32) {
	ctx.cursor = Vec2{X: x, Y: y}
}

// CursorPos returns the layout cursor.
func (ctx *Context) CursorPos() Vec2 {
	return ctx.cursor
}

func (ctx *Context) lineHeight() float32 {
	return ctx.style.CharHeight * ctx.style.FontScale
}

// LineHeight is the height of one line of text in the active style.
func (ctx *Context) LineHeight() float32 {
	return ctx.lineHeight()
}

// MeasureText returns the size of text in the built-in monospace font.
// Results are cached across frames per text and font metrics.
func (ctx *Context) MeasureText(text string) Vec2 {
	key := measureKey{
		text:  text,
		scale: ctx.style.FontScale,
		charW: ctx.style.CharWidth,
		charH: ctx.style.CharHeight,
	}
	if v, ok := ctx.measureCache.Get(key); ok {
		return v
	}
	n := 0
	for range text {
		n++
	}
	v := Vec2{
		X: float32(n) * key.charW * key.scale,
		Y: key.charH * key.scale,
	}
	ctx.measureCache.Add(key, v)
	return v
}

func (ctx *Context) currentLayoutWidth() float32 {
	if l := ctx.currentLayout(); l != nil {
		return l.Width - l.Padding*2 - l.PaddingX*2
	}
	return ctx.DisplaySize.X
}

// CurrentLayoutWidth is the width available to the next item.
func (ctx *Context) CurrentLayoutWidth() float32 {
	return ctx.currentLayoutWidth()
}

func (ctx *Context) currentLayoutHeight() float32 {
	if l := ctx.currentLayout(); l != nil {
		return l.Height - l.Padding*2 - l.PaddingY*2
	}
	return ctx.DisplaySize.Y
}

func (ctx *Context) currentLayout() *Layout {
	if n := len(ctx.layoutStack); n > 0 {
		return ctx.layoutStack[n-1]
	}
	return nil
}

// AddText draws text in the active style onto the main draw list.
func (ctx *Context) AddText(x, y float32, text string, color uint32) {
	ctx.AddTextTo(ctx.DrawList, x, y, text, color)
}

// AddTextTo draws text onto dl, usually ForegroundDrawList.
func (ctx *Context) AddTextTo(dl *DrawList, x, y float32, text string, color uint32) {
	if dl == nil {
		return
	}
	dl.SetTexture(ctx.FontTextureID)
	dl.AddText(x, y, text, color, ctx.style.FontScale, ctx.style.CharWidth, ctx.style.CharHeight)
	dl.SetTexture(0)
}

// beginItem applies the layout gap before an item that is not the first
// and not placed by SameLine.
func (ctx *Context) beginItem() {
	l := ctx.currentLayout()
	if l == nil || l.ItemCount == 0 || l.sameLine {
		return
	}
	if l.Type == LayoutVertical {
		ctx.cursor.Y += l.gapY(ctx.style.ItemSpacing)
	} else {
		ctx.cursor.X += l.gapX(ctx.style.ItemSpacing)
	}
}

// ItemPos returns the position of the next item with the layout gap
// applied. Widgets call it once before drawing.
func (ctx *Context) ItemPos() Vec2 {
	ctx.beginItem()
	return ctx.cursor
}

// AdvanceCursor moves past an item of the given size placed at the cursor.
func (ctx *Context) AdvanceCursor(size Vec2) {
	l := ctx.currentLayout()
	if l == nil {
		ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
		return
	}
	item := Rect{X: ctx.cursor.X, Y: ctx.cursor.Y, W: size.X, H: size.Y}
	if l.Type == LayoutVertical {
		bottom := item.Y + item.H
		if l.sameLine {
			bottom = max(bottom, l.lastItem.Y+l.lastItem.H)
		}
		ctx.cursor.X = l.StartX
		ctx.cursor.Y = bottom
		l.MaxWidth = max(l.MaxWidth, item.X+item.W-l.StartX)
		l.MaxHeight = ctx.cursor.Y - l.StartY
		if l.sameLine {
			item.H = bottom - item.Y
		}
	} else {
		ctx.cursor.X += size.X
		l.MaxWidth = ctx.cursor.X - l.StartX
		l.MaxHeight = max(l.MaxHeight, size.Y)
	}
	l.sameLine = false
	l.lastItem = item
	l.ItemCount++
}
