package gui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/panes/gui"
)

func TestWheelAccumulatesUntilDrain(t *testing.T) {
	in := gui.NewInputState()
	in.AddMouseWheel(0, 1)
	in.AddMouseWheel(0, 0.5)
	in.AddMouseWheel(0.25, -0.25)

	assert.Equal(t, float32(1.25), in.MouseWheelY)
	assert.Equal(t, float32(0.25), in.MouseWheelX)

	in.Drain()
	assert.Zero(t, in.MouseWheelY)
	assert.Zero(t, in.MouseWheelX)
}

func TestEventsKeepDeliveryOrder(t *testing.T) {
	in := gui.NewInputState()
	in.AddKeyEvent(gui.KeyA, true)
	in.AddInputChar('x')
	in.AddKeyEvent(gui.KeyA, false)

	assert.Equal(t, []gui.InputEvent{
		{Kind: gui.InputEventKey, Key: gui.KeyA, Down: true},
		{Kind: gui.InputEventChar, Char: 'x'},
		{Kind: gui.InputEventKey, Key: gui.KeyA, Down: false},
	}, in.Events())
	assert.True(t, in.KeyPressed(gui.KeyA))
	assert.True(t, in.KeyReleased(gui.KeyA))
	assert.False(t, in.KeyDown(gui.KeyA))
	assert.Equal(t, []rune{'x'}, in.InputChars)

	in.Drain()
	assert.Empty(t, in.Events())
	assert.Empty(t, in.InputChars)
	assert.False(t, in.KeyPressed(gui.KeyA))
}

func TestDrainKeepsLevelState(t *testing.T) {
	in := gui.NewInputState()
	in.SetMousePos(3, 4)
	in.SetMouseButton(gui.MouseButtonRight, true)
	in.AddKeyEvent(gui.KeyEnter, true)
	in.SetModifiers(true, false, true)

	assert.True(t, in.MouseClicked(gui.MouseButtonRight))
	in.Drain()

	assert.Equal(t, float32(3), in.MouseX)
	assert.Equal(t, float32(4), in.MouseY)
	assert.True(t, in.MouseDown(gui.MouseButtonRight))
	assert.False(t, in.MouseClicked(gui.MouseButtonRight))
	assert.True(t, in.KeyDown(gui.KeyEnter))
	assert.True(t, in.ModCtrl)
	assert.False(t, in.ModShift)
	assert.True(t, in.ModAlt)

	in.SetMouseButton(gui.MouseButtonRight, false)
	assert.True(t, in.MouseReleased(gui.MouseButtonRight))
}

func TestOutOfRangeInputIgnored(t *testing.T) {
	in := gui.NewInputState()
	in.AddKeyEvent(gui.KeyCount, true)
	in.AddKeyEvent(-1, true)
	in.SetMouseButton(gui.MouseButtonCount, true)

	assert.Empty(t, in.Events())
	assert.False(t, in.KeyDown(gui.KeyCount))
	assert.False(t, in.MouseDown(gui.MouseButtonCount))
}

func TestKeyRepeat(t *testing.T) {
	in := gui.NewInputState()
	in.AddKeyEvent(gui.KeyLeft, true)
	assert.True(t, in.KeyRepeated(gui.KeyLeft), "initial press")

	in.Drain()
	in.UpdateKeyRepeat(0.1)
	assert.False(t, in.KeyRepeated(gui.KeyLeft), "inside the delay")
	assert.False(t, in.KeyRepeated(gui.KeyRight))
}

func TestKeyName(t *testing.T) {
	cases := map[gui.Key]string{
		gui.KeyA:      "A",
		gui.Key9:      "9",
		gui.KeyF1:     "F1",
		gui.KeyF12:    "F12",
		gui.KeyEscape: "Esc",
		gui.KeySpace:  "Space",
		gui.Key(400):  "#400",
	}
	for k, want := range cases {
		assert.Equal(t, want, gui.KeyName(k))
	}
	assert.Equal(t, "key(A down)", gui.InputEvent{Key: gui.KeyA, Down: true}.String())
	assert.Equal(t, "char('x')", gui.InputEvent{Kind: gui.InputEventChar, Char: 'x'}.String())
}
