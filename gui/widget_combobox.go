package gui

// ComboBox draws a dropdown over items and reports whether *selected
// changed. The open list is drawn on the foreground layer.
//
//	kinds := []string{"Low", "Medium", "High"}
//	if ctx.ComboBox("Quality", &quality, kinds) {
//	    apply(quality)
//	}
func (ctx *Context) ComboBox(label string, selected *int, items []string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)
	state := GetState(ctx, id, ComboBoxState{HoveredIndex: -1})

	labelW := float32(0)
	if label != "" {
		labelW = ctx.MeasureText(label).X + ctx.style.ItemSpacing
	}
	comboW := GetOpt(o, OptWidth)
	if comboW <= 0 {
		comboW = 120
		for _, item := range items {
			comboW = max(comboW, ctx.MeasureText(item).X+ctx.style.ButtonPadding*2+20)
		}
	}
	h := ctx.lineHeight() + ctx.style.ButtonPadding*2
	const arrow = float32(8)

	if label != "" {
		ctx.AddText(pos.X, pos.Y+(h-ctx.lineHeight())/2, label, ctx.style.TextColor)
	}

	hx, hy := pos.X+labelW, pos.Y
	header := Rect{X: hx, Y: hy, W: comboW, H: h}

	bg := ctx.style.ButtonColor
	if state.Open || ctx.isHoveredBehindPopup(header) {
		bg = ctx.style.ButtonHoveredColor
	}
	ctx.DrawList.AddRect(hx, hy, comboW, h, bg)
	ctx.DrawList.AddRectOutline(hx, hy, comboW, h, ctx.style.InputBorderColor, 1)

	if *selected >= 0 && *selected < len(items) {
		ctx.AddText(hx+ctx.style.ButtonPadding, hy+(h-ctx.lineHeight())/2, items[*selected], ctx.style.TextColor)
	}

	ax, ay := hx+comboW-ctx.style.ButtonPadding-arrow, hy+h/2
	if state.Open {
		ctx.DrawList.AddTriangle(ax+arrow/2, ay-arrow/4, ax, ay+arrow/4, ax+arrow, ay+arrow/4, ctx.style.ComboArrowColor)
	} else {
		ctx.DrawList.AddTriangle(ax+arrow/2, ay+arrow/4, ax, ay-arrow/4, ax+arrow, ay-arrow/4, ctx.style.ComboArrowColor)
	}

	changed := false
	justOpened := false
	if ctx.isClicked(id, header) {
		state.Open = !state.Open
		state.HoveredIndex = *selected
		justOpened = state.Open
	}
	if !state.Open && ctx.IsFocused(id) && ctx.Input != nil &&
		(ctx.Input.KeyPressed(KeyEnter) || ctx.Input.KeyPressed(KeySpace)) {
		state.Open = true
		state.HoveredIndex = *selected
		justOpened = true
	}

	if state.Open {
		changed = ctx.comboList(&state, selected, items, header, GetOpt(o, OptMaxDropdownHeight), justOpened)
	}

	SetState(ctx, id, state)
	ctx.AdvanceCursor(Vec2{labelW + comboW, h})
	return changed
}

func (ctx *Context) comboList(state *ComboBoxState, selected *int, items []string, header Rect, maxH float32, justOpened bool) bool {
	fg := ctx.ForegroundDrawList
	if fg == nil {
		fg = ctx.DrawList
	}
	itemH := ctx.lineHeight() + ctx.style.ItemSpacing
	listY := header.Y + header.H
	listH := min(float32(len(items))*itemH, maxH)
	list := Rect{X: header.X, Y: listY, W: header.W, H: listH}

	ctx.claimPopup(list)
	ctx.WantCaptureKeyboard = true

	fg.AddRect(list.X, list.Y, list.W, list.H, ctx.style.DropdownBgColor)
	fg.AddRectOutline(list.X, list.Y, list.W, list.H, ctx.style.InputBorderColor, 1)
	fg.PushClipRect(list.X, list.Y, list.X+list.W, list.Y+list.H)
	defer fg.PopClipRect()

	changed := false
	pick := func(i int) {
		if i != *selected {
			*selected = i
			changed = true
		}
		state.Open = false
	}

	clicked := ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonLeft)
	for i, item := range items {
		r := Rect{X: list.X + 2, Y: listY + float32(i)*itemH, W: list.W - 4, H: itemH}
		if r.Y >= list.Y+list.H {
			break
		}
		hovered := ctx.isHovered(r)
		if hovered {
			state.HoveredIndex = i
		}
		switch {
		case i == *selected:
			fg.AddRect(r.X, r.Y, r.W, r.H, ctx.style.SelectedBgColor)
		case i == state.HoveredIndex:
			fg.AddRect(r.X, r.Y, r.W, r.H, ctx.style.HoveredBgColor)
		}
		ctx.AddTextTo(fg, r.X+ctx.style.ItemSpacing, r.Y+ctx.style.ItemSpacing/2, item, ctx.style.TextColor)
		if hovered && clicked && !justOpened {
			pick(i)
		}
	}

	if ctx.Input == nil || !state.Open {
		return changed
	}
	if clicked && !justOpened && !ctx.isHovered(list) && !ctx.isHovered(header) {
		state.Open = false
	}
	if ctx.Input.KeyPressed(KeyEscape) {
		state.Open = false
	}
	if ctx.Input.KeyRepeated(KeyUp) && state.HoveredIndex > 0 {
		state.HoveredIndex--
	}
	if ctx.Input.KeyRepeated(KeyDown) && state.HoveredIndex < len(items)-1 {
		state.HoveredIndex++
	}
	if !justOpened && ctx.Input.KeyPressed(KeyEnter) && state.HoveredIndex >= 0 && state.HoveredIndex < len(items) {
		pick(state.HoveredIndex)
	}
	return changed
}
