package panes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/panes"
	"github.com/go-theft-auto/panes/gui"
)

func newTranslator(t *testing.T, profile panes.HostProfile) (*panes.InputTranslator, *panes.RenderContext, *panes.RenderContext) {
	t.Helper()
	reg, _ := newTestRegistry()
	a, err := reg.CreateContext()
	require.NoError(t, err)
	b, err := reg.CreateContext()
	require.NoError(t, err)
	return panes.NewInputTranslator(reg, profile), a, b
}

func TestTranslatorActivatesTarget(t *testing.T) {
	tr, a, b := newTranslator(t, panes.DefaultHostProfile())
	require.True(t, b.IsCurrent())

	tr.PointerMove(a, 12, 34)
	assert.True(t, a.IsCurrent())
	assert.Equal(t, float32(12), a.Input().MouseX)
	assert.Equal(t, float32(34), a.Input().MouseY)
	assert.Zero(t, b.Input().MouseX)
}

func TestTranslatorButtons(t *testing.T) {
	tr, a, _ := newTranslator(t, panes.DefaultHostProfile())

	assert.True(t, tr.PointerButton(a, 1, true))
	assert.True(t, tr.PointerButton(a, 4, true))
	assert.False(t, tr.PointerButton(a, 8, true), "unmapped buttons are ignored")

	in := a.Input()
	assert.True(t, in.MouseDown(gui.MouseButtonLeft))
	assert.True(t, in.MouseClicked(gui.MouseButtonLeft))
	assert.True(t, in.MouseDown(gui.MouseButtonMiddle))
	assert.False(t, in.MouseDown(gui.MouseButtonRight))

	tr.PointerButton(a, 1, false)
	assert.False(t, in.MouseDown(gui.MouseButtonLeft))
	assert.True(t, in.MouseReleased(gui.MouseButtonLeft))
}

func TestTranslatorModifiersRecomputed(t *testing.T) {
	p := panes.DefaultHostProfile()
	tr, a, _ := newTranslator(t, p)
	in := a.Input()

	tr.Key(a, int(gui.KeyC), true, p.CtrlMask|p.ShiftMask)
	assert.True(t, in.ModCtrl)
	assert.True(t, in.ModShift)
	assert.False(t, in.ModAlt)

	tr.Key(a, int(gui.KeyC), false, p.AltMask)
	assert.False(t, in.ModCtrl)
	assert.False(t, in.ModShift)
	assert.True(t, in.ModAlt)
}

func TestTranslatorKeyRange(t *testing.T) {
	p := panes.DefaultHostProfile()
	tr, a, _ := newTranslator(t, p)
	in := a.Input()

	assert.False(t, tr.Key(a, 512, true, p.CtrlMask))
	assert.False(t, tr.Key(a, -1, true, 0))
	assert.Empty(t, in.Events(), "out of range codes queue nothing")
	assert.False(t, in.ModCtrl, "modifiers still follow the latest event")

	assert.True(t, tr.Key(a, 511, true, 0))
	assert.True(t, in.KeyDown(511))
}

func TestTranslatorKeyLimit(t *testing.T) {
	p := panes.DefaultHostProfile()
	p.KeyLimit = 256
	tr, a, _ := newTranslator(t, p)

	assert.False(t, tr.Key(a, int(gui.KeyEscape), true, 0))
	assert.True(t, tr.Key(a, int(gui.KeyA), true, 0))
}

func TestTranslatorText(t *testing.T) {
	tr, a, _ := newTranslator(t, panes.DefaultHostProfile())
	tr.Text(a, "hé!")
	tr.Text(a, "")

	assert.Equal(t, []rune{'h', 'é', '!'}, a.Input().InputChars)
	assert.Len(t, a.Input().Events(), 3)
}

func TestTranslatorWheelNotch(t *testing.T) {
	tr, a, _ := newTranslator(t, panes.DefaultHostProfile())
	tr.Wheel(a, 240)
	tr.Wheel(a, -60)
	assert.Equal(t, float32(1.5), a.Input().MouseWheelY)

	p := panes.DefaultHostProfile()
	p.WheelNotch = 0
	p.KeyLimit = 0
	tr2 := panes.NewInputTranslator(panes.NewRegistry(nil), p)
	assert.Equal(t, float32(1), tr2.Profile().WheelNotch)
	assert.Equal(t, int(gui.KeyCount), tr2.Profile().KeyLimit)
}
