package gui

import "hash/fnv"

// ID identifies a widget across frames. The same label at the same call
// position under the same parent yields the same ID every frame.
type ID uint64

// GetID derives an ID from label, the parent on the ID stack and the
// per-frame call counter, so repeated labels in a loop stay distinct.
func (ctx *Context) GetID(label string) ID {
	ctx.idCounter++
	h := fnv.New64a()
	h.Write([]byte(label))
	return ID(uint64(ctx.CurrentID())<<32 | uint64(ctx.idCounter)<<16 | h.Sum64()&0xFFFF)
}

// widgetID resolves the ID of a widget, honoring WithID.
func (ctx *Context) widgetID(label string, o options) ID {
	if explicit := GetOpt(o, OptID); explicit != "" {
		return ctx.GetID(explicit)
	}
	return ctx.GetID(label)
}

// PushID scopes subsequent IDs under label.
func (ctx *Context) PushID(label string) {
	ctx.idStack = append(ctx.idStack, ctx.GetID(label))
}

// PopID ends the scope opened by PushID.
func (ctx *Context) PopID() {
	if n := len(ctx.idStack); n > 0 {
		ctx.idStack = ctx.idStack[:n-1]
	}
}

// CurrentID returns the innermost pushed ID, or 0.
func (ctx *Context) CurrentID() ID {
	if n := len(ctx.idStack); n > 0 {
		return ctx.idStack[n-1]
	}
	return 0
}
