package panes

import (
	"log/slog"

	"github.com/go-theft-auto/panes/gui"
)

// HostProfile describes how a host encodes its input events.
type HostProfile struct {
	// WheelNotch is the raw wheel delta of one detent.
	WheelNotch float32
	// Buttons maps host button codes to logical buttons. Codes not in the
	// map are ignored.
	Buttons map[int]gui.MouseButton
	// Modifier bits in the host's modifier mask.
	CtrlMask, ShiftMask, AltMask uint32
	// KeyLimit bounds the accepted key codes to [0, KeyLimit).
	KeyLimit int
}

// DefaultHostProfile is the profile of a Qt-style host: wheel angle deltas
// in eighths of a degree and single-bit button flags.
func DefaultHostProfile() HostProfile {
	return HostProfile{
		WheelNotch: 120,
		Buttons: map[int]gui.MouseButton{
			1: gui.MouseButtonLeft,
			2: gui.MouseButtonRight,
			4: gui.MouseButtonMiddle,
		},
		CtrlMask:  0x04000000,
		ShiftMask: 0x02000000,
		AltMask:   0x08000000,
		KeyLimit:  int(gui.KeyCount),
	}
}

// InputTranslator turns host events into InputState mutations. Every
// mutation activates the target context first.
type InputTranslator struct {
	registry *Registry
	profile  HostProfile
}

// NewInputTranslator returns a translator for contexts of reg.
func NewInputTranslator(reg *Registry, profile HostProfile) *InputTranslator {
	if profile.WheelNotch == 0 {
		profile.WheelNotch = 1
	}
	if profile.KeyLimit <= 0 || profile.KeyLimit > int(gui.KeyCount) {
		profile.KeyLimit = int(gui.KeyCount)
	}
	return &InputTranslator{registry: reg, profile: profile}
}

// Profile returns the normalized host profile.
func (t *InputTranslator) Profile() HostProfile { return t.profile }

func (t *InputTranslator) input(rc *RenderContext) *gui.InputState {
	t.registry.MustActivate(rc.id)
	return rc.input
}

// PointerMove sets the pointer position in surface pixels.
func (t *InputTranslator) PointerMove(rc *RenderContext, x, y float32) {
	t.input(rc).SetMousePos(x, y)
}

// PointerButton sets a button level. It reports false for buttons the
// profile does not map.
func (t *InputTranslator) PointerButton(rc *RenderContext, button int, pressed bool) bool {
	b, ok := t.profile.Buttons[button]
	if !ok {
		Logger().Debug("Unmapped pointer button dropped", slog.Int("button", button))
		return false
	}
	t.input(rc).SetMouseButton(b, pressed)
	return true
}

// Wheel accumulates a vertical wheel delta in notches.
func (t *InputTranslator) Wheel(rc *RenderContext, raw float32) {
	t.input(rc).AddMouseWheel(0, raw/t.profile.WheelNotch)
}

// Key recomputes the modifiers from mods and queues the transition. Codes
// outside the profile's range change only the modifiers and report false.
func (t *InputTranslator) Key(rc *RenderContext, code int, pressed bool, mods uint32) bool {
	in := t.input(rc)
	p := t.profile
	in.SetModifiers(mods&p.CtrlMask != 0, mods&p.ShiftMask != 0, mods&p.AltMask != 0)
	if code < 0 || code >= p.KeyLimit {
		Logger().Debug("Key code out of range dropped", slog.Int("code", code))
		return false
	}
	in.AddKeyEvent(gui.Key(code), pressed)
	return true
}

// Text queues one character event per rune of text, in order.
func (t *InputTranslator) Text(rc *RenderContext, text string) {
	in := t.input(rc)
	for _, r := range text {
		in.AddInputChar(r)
	}
}
