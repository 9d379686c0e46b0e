package gui

import "strconv"

// MouseButton is one of the three logical pointer buttons.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key is a keyboard key code. Printable keys use their ASCII upper-case
// value and named keys follow GLFW numbering, so every valid code is
// below KeyCount.
type Key int

const (
	KeySpace Key = 32
	Key0     Key = 48
	Key9     Key = 57
	KeyA     Key = 65
	KeyC     Key = 67
	KeyV     Key = 86
	KeyX     Key = 88
	KeyZ     Key = 90

	KeyEscape    Key = 256
	KeyEnter     Key = 257
	KeyTab       Key = 258
	KeyBackspace Key = 259
	KeyInsert    Key = 260
	KeyDelete    Key = 261
	KeyRight     Key = 262
	KeyLeft      Key = 263
	KeyDown      Key = 264
	KeyUp        Key = 265
	KeyPageUp    Key = 266
	KeyPageDown  Key = 267
	KeyHome      Key = 268
	KeyEnd       Key = 269
	KeyF1        Key = 290
	KeyF12       Key = 301

	KeyCount Key = 512
)

// Key repeat timing, in seconds.
const (
	KeyRepeatDelay    float32 = 0.4
	KeyRepeatInterval float32 = 0.03
)

// InputEventKind distinguishes queued input events.
type InputEventKind uint8

const (
	InputEventKey InputEventKind = iota
	InputEventChar
)

// InputEvent is one edge-triggered event in delivery order.
type InputEvent struct {
	Kind InputEventKind
	Key  Key
	Down bool
	Char rune
}

func (e InputEvent) String() string {
	if e.Kind == InputEventChar {
		return "char(" + strconv.QuoteRune(e.Char) + ")"
	}
	if e.Down {
		return "key(" + KeyName(e.Key) + " down)"
	}
	return "key(" + KeyName(e.Key) + " up)"
}

// InputState is the input model of one GUI context. Pointer position,
// buttons and modifiers are level state (last write wins). Key and text
// events are queued in order, and wheel deltas accumulate. Everything
// edge-triggered is drained by Drain once a frame has consumed it.
type InputState struct {
	MouseX, MouseY float32

	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool
	mouseUp      [MouseButtonCount]bool

	// Accumulated since the last drained frame, in notches.
	MouseWheelX float32
	MouseWheelY float32

	keyDown     [KeyCount]bool
	keyPressed  [KeyCount]bool
	keyUp       [KeyCount]bool
	keyHoldTime [KeyCount]float32

	InputChars []rune

	ModCtrl  bool
	ModShift bool
	ModAlt   bool

	events []InputEvent
}

// NewInputState returns an empty InputState.
func NewInputState() *InputState {
	return &InputState{
		InputChars: make([]rune, 0, 16),
		events:     make([]InputEvent, 0, 16),
	}
}

// Drain clears everything a frame consumes: edge flags, queued events,
// typed characters and the wheel accumulator. Level state survives.
func (s *InputState) Drain() {
	clear(s.mouseClicked[:])
	clear(s.mouseUp[:])
	clear(s.keyPressed[:])
	clear(s.keyUp[:])
	s.InputChars = s.InputChars[:0]
	s.events = s.events[:0]
	s.MouseWheelX = 0
	s.MouseWheelY = 0
}

// SetMousePos sets the pointer position in surface pixels.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// SetMouseButton sets a button level and records the click/release edge.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}
	was := s.mouseDown[button]
	s.mouseDown[button] = down
	if down && !was {
		s.mouseClicked[button] = true
	}
	if !down && was {
		s.mouseUp[button] = true
	}
}

// AddMouseWheel accumulates a wheel delta.
func (s *InputState) AddMouseWheel(x, y float32) {
	s.MouseWheelX += x
	s.MouseWheelY += y
}

// SetModifiers replaces the modifier flags.
func (s *InputState) SetModifiers(ctrl, shift, alt bool) {
	s.ModCtrl = ctrl
	s.ModShift = shift
	s.ModAlt = alt
}

// AddKeyEvent queues a key transition and updates the key level.
// Keys outside [0, KeyCount) are ignored.
func (s *InputState) AddKeyEvent(key Key, down bool) {
	if key < 0 || key >= KeyCount {
		return
	}
	s.events = append(s.events, InputEvent{Kind: InputEventKey, Key: key, Down: down})

	was := s.keyDown[key]
	s.keyDown[key] = down
	if down && !was {
		s.keyPressed[key] = true
		s.keyHoldTime[key] = 0
	}
	if !down && was {
		s.keyUp[key] = true
		s.keyHoldTime[key] = 0
	}
}

// AddInputChar queues a typed character.
func (s *InputState) AddInputChar(ch rune) {
	s.events = append(s.events, InputEvent{Kind: InputEventChar, Char: ch})
	s.InputChars = append(s.InputChars, ch)
}

// Events returns the queued events in delivery order. The slice is only
// valid until the next Drain.
func (s *InputState) Events() []InputEvent {
	return s.events
}

// UpdateKeyRepeat advances hold times of held keys by dt seconds.
func (s *InputState) UpdateKeyRepeat(dt float32) {
	for k := range s.keyDown {
		if s.keyDown[k] {
			s.keyHoldTime[k] += dt
		}
	}
}

// MouseDown reports whether button is held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked reports whether button went down since the last drain.
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseReleased reports whether button went up since the last drain.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}

// KeyDown reports whether key is held.
func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed reports whether key went down since the last drain.
func (s *InputState) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyReleased reports whether key went up since the last drain.
func (s *InputState) KeyReleased(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyUp[key]
}

// KeyRepeated is true on the initial press, then after KeyRepeatDelay,
// then every KeyRepeatInterval while the key stays down.
func (s *InputState) KeyRepeated(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	if s.keyPressed[key] {
		return true
	}
	if !s.keyDown[key] {
		return false
	}
	hold := s.keyHoldTime[key]
	if hold < KeyRepeatDelay {
		return false
	}
	since := hold - KeyRepeatDelay
	// Assumes roughly 60 fps between calls.
	return int(since/KeyRepeatInterval) > int((since-0.016)/KeyRepeatInterval)
}

// KeyName returns a short display name for k.
func KeyName(k Key) string {
	switch {
	case k >= KeyA && k <= KeyZ, k >= Key0 && k <= Key9:
		return string(rune(k))
	case k >= KeyF1 && k <= KeyF12:
		return "F" + strconv.Itoa(int(k-KeyF1)+1)
	}
	switch k {
	case KeySpace:
		return "Space"
	case KeyEscape:
		return "Esc"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyInsert:
		return "Ins"
	case KeyDelete:
		return "Del"
	case KeyRight:
		return "Right"
	case KeyLeft:
		return "Left"
	case KeyDown:
		return "Down"
	case KeyUp:
		return "Up"
	case KeyPageUp:
		return "PgUp"
	case KeyPageDown:
		return "PgDn"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	}
	return "#" + strconv.Itoa(int(k))
}
