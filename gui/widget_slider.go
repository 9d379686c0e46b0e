package gui

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
)

// SliderFloat draws a horizontal slider over [lo, hi] and reports whether
// *value changed. It follows drags, the wheel while hovered, and the
// Left/Right keys while focused.
func (ctx *Context) SliderFloat(label string, value *float32, lo, hi float32, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)
	state := GetState(ctx, id, SliderState{})

	labelW := float32(0)
	if label != "" {
		labelW = ctx.MeasureText(label).X + ctx.style.ItemSpacing
	}
	w := GetOpt(o, OptWidth)
	if w <= 0 {
		w = 150
	}
	h := ctx.lineHeight()
	trackH := h * 0.5
	const grabW = float32(12)

	if label != "" {
		ctx.AddText(pos.X, pos.Y, label, ctx.style.TextColor)
	}
	tx, ty := pos.X+labelW, pos.Y+(h-trackH)/2
	rect := Rect{X: tx, Y: pos.Y, W: w, H: h}
	hovered := ctx.isHoveredBehindPopup(rect)

	step := GetOpt(o, OptStep)
	if step <= 0 {
		step = (hi - lo) / 100
	}
	set := func(v float32) bool {
		v = clampf(v, lo, hi)
		if v == *value {
			return false
		}
		*value = v
		return true
	}

	changed := false
	if ctx.Input != nil && !GetOpt(o, OptDisabled) {
		if ctx.isClicked(id, rect) {
			state.Dragging = true
		}
		if state.Dragging {
			if ctx.Input.MouseDown(MouseButtonLeft) {
				ratio := clampf((ctx.Input.MouseX-tx-grabW/2)/(w-grabW), 0, 1)
				v := lo + ratio*(hi-lo)
				if s := GetOpt(o, OptStep); s > 0 {
					v = lo + math32.Floor((v-lo)/s+0.5)*s
				}
				changed = set(v) || changed
			} else {
				state.Dragging = false
			}
		}
		if hovered && ctx.Input.MouseWheelY != 0 {
			changed = set(*value+ctx.Input.MouseWheelY*step) || changed
		}
		if ctx.IsFocused(id) {
			if ctx.Input.KeyRepeated(KeyLeft) {
				changed = set(*value-step) || changed
			}
			if ctx.Input.KeyRepeated(KeyRight) {
				changed = set(*value+step) || changed
			}
		}
	}

	ratio := float32(0)
	if hi > lo {
		ratio = (*value - lo) / (hi - lo)
	}
	ctx.DrawList.AddRect(tx, ty, w, trackH, ctx.style.SliderTrackColor)
	if fill := ratio * w; fill > 0 {
		ctx.DrawList.AddRect(tx, ty, fill, trackH, ctx.style.SliderFillColor)
	}
	grab := ctx.style.SliderGrabColor
	switch {
	case state.Dragging:
		grab = ctx.style.SliderGrabActive
	case hovered:
		grab = ctx.style.SliderGrabHovered
	}
	gx := tx + ratio*(w-grabW)
	ctx.DrawList.AddRect(gx, pos.Y, grabW, h, grab)
	ctx.DrawList.AddRectOutline(gx, pos.Y, grabW, h, ctx.style.InputBorderColor, 1)

	format := GetOpt(o, OptFormat)
	if format == "" {
		format = "%.2f"
	}
	var text string
	if strings.Contains(format, "%d") {
		text = fmt.Sprintf(format, int(*value))
	} else {
		text = fmt.Sprintf(format, *value)
	}
	ctx.AddText(tx+w+ctx.style.ItemSpacing, pos.Y, text, ctx.style.TextColor)

	SetState(ctx, id, state)
	ctx.AdvanceCursor(Vec2{labelW + w + ctx.style.ItemSpacing + ctx.MeasureText(text).X, h})
	return changed
}

// SliderInt is SliderFloat with integer steps.
func (ctx *Context) SliderInt(label string, value *int, lo, hi int, opts ...Option) bool {
	v := float32(*value)
	opts = append([]Option{WithFormat("%d")}, opts...)
	opts = append(opts, WithStep(1))
	if !ctx.SliderFloat(label, &v, float32(lo), float32(hi), opts...) {
		return false
	}
	*value = int(math32.Floor(v+0.5))
	return true
}
