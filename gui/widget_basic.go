package gui

// Text draws a line of text.
func (ctx *Context) Text(text string) {
	ctx.TextColored(text, ctx.style.TextColor)
}

// TextColored draws a line of text in color.
func (ctx *Context) TextColored(text string, color uint32) {
	pos := ctx.ItemPos()
	ctx.AddText(pos.X, pos.Y, text, color)
	ctx.AdvanceCursor(ctx.MeasureText(text))
}

// TextDisabled draws a line of text in the disabled color.
func (ctx *Context) TextDisabled(text string) {
	ctx.TextColored(text, ctx.style.TextDisabledColor)
}

// LabelText draws "label: value" with the label dimmed.
func (ctx *Context) LabelText(label, value string) {
	pos := ctx.ItemPos()
	prefix := label + ": "
	lw := ctx.MeasureText(prefix).X
	ctx.AddText(pos.X, pos.Y, prefix, ctx.style.TextDisabledColor)
	ctx.AddText(pos.X+lw, pos.Y, value, ctx.style.TextColor)
	size := ctx.MeasureText(value)
	size.X += lw
	ctx.AdvanceCursor(size)
}

// Button draws a push button and reports whether it was clicked this frame.
func (ctx *Context) Button(label string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)

	textSize := ctx.MeasureText(label)
	size := Vec2{
		X: textSize.X + ctx.style.ButtonPadding*2,
		Y: textSize.Y + ctx.style.ButtonPadding*2,
	}
	if w := GetOpt(o, OptWidth); w > 0 {
		size.X = w
	}
	if h := GetOpt(o, OptHeight); h > 0 {
		size.Y = h
	}
	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
	disabled := GetOpt(o, OptDisabled)

	bg := ctx.style.ButtonColor
	textColor := ctx.style.TextColor
	switch {
	case disabled:
		textColor = ctx.style.TextDisabledColor
	case ctx.isPressed(id, rect):
		bg = ctx.style.ButtonActiveColor
	case ctx.isHoveredBehindPopup(rect):
		bg = ctx.style.ButtonHoveredColor
	}
	ctx.DrawList.AddRect(pos.X, pos.Y, size.X, size.Y, bg)
	ctx.AddText(pos.X+(size.X-textSize.X)/2, pos.Y+(size.Y-textSize.Y)/2, label, textColor)

	clicked := !disabled && ctx.isClicked(id, rect)
	ctx.AdvanceCursor(size)
	return clicked
}

// Checkbox toggles *value on click and reports whether it changed.
func (ctx *Context) Checkbox(label string, value *bool, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)

	box := ctx.lineHeight()
	w := box + ctx.style.ItemSpacing + ctx.MeasureText(label).X
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: box}
	disabled := GetOpt(o, OptDisabled)

	bg := ctx.style.InputBgColor
	if !disabled && ctx.isHoveredBehindPopup(rect) {
		bg = ctx.style.HoveredBgColor
	}
	ctx.DrawList.AddRect(pos.X, pos.Y, box, box, bg)
	ctx.DrawList.AddRectOutline(pos.X, pos.Y, box, box, ctx.style.InputBorderColor, 1)
	if *value {
		inset := box * 0.25
		ctx.DrawList.AddRect(pos.X+inset, pos.Y+inset, box-inset*2, box-inset*2, ctx.style.CheckMarkColor)
	}

	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	ctx.AddText(pos.X+box+ctx.style.ItemSpacing, pos.Y, label, textColor)

	changed := false
	if !disabled && ctx.isClicked(id, rect) {
		*value = !*value
		changed = true
	}
	ctx.AdvanceCursor(Vec2{w, box})
	return changed
}
