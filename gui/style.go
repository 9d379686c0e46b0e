package gui

import "strings"

// Style defines the look of every widget in a context.
type Style struct {
	TextColor         uint32
	TextDisabledColor uint32

	PanelColor           uint32
	PanelBorderColor     uint32
	PanelHeaderBgColor   uint32
	PanelHeaderTextColor uint32

	ButtonColor        uint32
	ButtonHoveredColor uint32
	ButtonActiveColor  uint32

	SelectedBgColor uint32
	HoveredBgColor  uint32

	InputBgColor     uint32
	InputBorderColor uint32
	CheckMarkColor   uint32

	SeparatorColor uint32

	SliderTrackColor  uint32
	SliderFillColor   uint32
	SliderGrabColor   uint32
	SliderGrabHovered uint32
	SliderGrabActive  uint32

	DropdownBgColor uint32
	ComboArrowColor uint32

	FontScale     float32
	CharWidth     float32
	CharHeight    float32
	ItemSpacing   float32
	PanelPadding  float32
	ButtonPadding float32
	InputPadding  float32
	BorderSize    float32

	// Clear color of the host surface, applied by the backend before the
	// frame is rendered.
	WindowBgColor uint32
}

// DefaultStyle is a neutral dark theme.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,

		PanelColor:         RGBA(20, 20, 20, 200),
		PanelBorderColor:   RGBA(80, 80, 80, 255),
		PanelHeaderBgColor: RGBA(40, 40, 45, 255),

		ButtonColor:        RGBA(50, 50, 50, 255),
		ButtonHoveredColor: RGBA(70, 70, 70, 255),
		ButtonActiveColor:  RGBA(90, 90, 90, 255),

		SelectedBgColor: RGBA(50, 100, 150, 255),
		HoveredBgColor:  RGBA(60, 60, 60, 255),

		InputBgColor:     RGBA(30, 30, 30, 255),
		InputBorderColor: RGBA(100, 100, 100, 255),
		CheckMarkColor:   RGBA(90, 160, 230, 255),

		SeparatorColor: RGBA(80, 80, 80, 255),

		SliderTrackColor:  RGBA(40, 40, 40, 255),
		SliderFillColor:   RGBA(50, 100, 150, 255),
		SliderGrabColor:   RGBA(100, 100, 100, 255),
		SliderGrabHovered: RGBA(120, 120, 120, 255),
		SliderGrabActive:  RGBA(140, 140, 140, 255),

		DropdownBgColor: RGBA(25, 25, 25, 250),
		ComboArrowColor: RGBA(180, 180, 180, 255),

		FontScale:     1,
		CharWidth:     8,
		CharHeight:    8,
		ItemSpacing:   4,
		PanelPadding:  8,
		ButtonPadding: 6,
		InputPadding:  4,
		BorderSize:    1,

		WindowBgColor: RGBA(31, 31, 36, 255),
	}
}

// ClassicStyle is a blue-tinted theme with a larger font.
func ClassicStyle() Style {
	s := DefaultStyle()
	s.PanelColor = RGBA(18, 24, 40, 230)
	s.PanelHeaderBgColor = RGBA(40, 60, 110, 255)
	s.PanelHeaderTextColor = RGBA(230, 230, 255, 255)
	s.ButtonColor = RGBA(45, 70, 120, 255)
	s.ButtonHoveredColor = RGBA(60, 95, 160, 255)
	s.ButtonActiveColor = RGBA(80, 120, 200, 255)
	s.SelectedBgColor = RGBA(70, 110, 190, 255)
	s.FontScale = 1.5
	return s
}

// LightStyle is a light theme.
func LightStyle() Style {
	s := DefaultStyle()
	s.TextColor = RGBA(20, 20, 20, 255)
	s.TextDisabledColor = RGBA(140, 140, 140, 255)
	s.PanelColor = RGBA(235, 235, 235, 240)
	s.PanelBorderColor = RGBA(160, 160, 160, 255)
	s.PanelHeaderBgColor = RGBA(200, 200, 210, 255)
	s.ButtonColor = RGBA(210, 210, 210, 255)
	s.ButtonHoveredColor = RGBA(190, 200, 220, 255)
	s.ButtonActiveColor = RGBA(160, 180, 220, 255)
	s.HoveredBgColor = RGBA(220, 225, 235, 255)
	s.InputBgColor = RGBA(250, 250, 250, 255)
	s.DropdownBgColor = RGBA(245, 245, 245, 250)
	s.ComboArrowColor = RGBA(60, 60, 60, 255)
	s.WindowBgColor = RGBA(200, 200, 200, 255)
	return s
}

// StyleByName resolves "default", "classic" or "light" (case-insensitive).
// An empty name yields DefaultStyle.
func StyleByName(name string) (Style, bool) {
	switch strings.ToLower(name) {
	case "", "default", "dark":
		return DefaultStyle(), true
	case "classic":
		return ClassicStyle(), true
	case "light":
		return LightStyle(), true
	}
	return Style{}, false
}
