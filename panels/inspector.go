package panels

import (
	"fmt"

	"github.com/go-theft-auto/panes"
	"github.com/go-theft-auto/panes/gui"
)

const inspectorHistory = 8

// Inspector shows what a context receives: surface size, pointer,
// modifiers and the most recent input events. Its refresh rate slider
// calls SetRate.
type Inspector struct {
	Title string
	// SetRate applies a new refresh rate; nil hides the slider.
	SetRate func(rate int) error

	rate    int
	wheel   float32
	history []string
	frames  uint64
	rateErr error
}

var _ panes.FrameProgram = (*Inspector)(nil)

// NewInspector returns an inspector starting at rate.
func NewInspector(rate int, setRate func(int) error) *Inspector {
	return &Inspector{Title: "Input Inspector", SetRate: setRate, rate: rate}
}

// History returns recent input events, oldest first.
func (p *Inspector) History() []string { return p.history }

// Rate returns the rate shown on the slider.
func (p *Inspector) Rate() int { return p.rate }

// ProduceFrame records the frame's input and draws the panel.
func (p *Inspector) ProduceFrame(rc *panes.RenderContext) {
	ctx := rc.UI()
	p.frames++
	in := ctx.Input
	for _, e := range in.Events() {
		p.history = append(p.history, e.String())
	}
	if n := len(p.history); n > inspectorHistory {
		p.history = append(p.history[:0], p.history[n-inspectorHistory:]...)
	}
	p.wheel += in.MouseWheelY

	ctx.Window(p.Title)(func() {
		size := rc.Size()
		ctx.LabelText("Context", rc.ID().String()[:8])
		ctx.LabelText("Surface", fmt.Sprintf("%dx%d", size.W, size.H))
		ctx.LabelText("Frames", fmt.Sprint(p.frames))
		ctx.LabelText("Pointer", fmt.Sprintf("%.0f, %.0f", in.MouseX, in.MouseY))
		ctx.LabelText("Buttons", buttons(in))
		ctx.LabelText("Wheel", fmt.Sprintf("%+.2f", p.wheel))
		ctx.LabelText("Modifiers", modifiers(in))
		ctx.Separator()
		for _, e := range p.history {
			ctx.TextDisabled(e)
		}
		if p.SetRate != nil {
			ctx.Separator()
			rate := p.rate
			if ctx.SliderInt("Refresh rate", &rate, 1, 240) {
				p.applyRate(rate)
			}
			if p.rateErr != nil {
				ctx.TextColored(p.rateErr.Error(), gui.ColorRed)
			}
		}
	})
}

func (p *Inspector) applyRate(rate int) {
	p.rateErr = p.SetRate(rate)
	if p.rateErr == nil {
		p.rate = rate
	}
}

func buttons(in *gui.InputState) string {
	s := ""
	for b, name := range []string{"L", "R", "M"} {
		if in.MouseDown(gui.MouseButton(b)) {
			s += name
		} else {
			s += "-"
		}
	}
	return s
}

func modifiers(in *gui.InputState) string {
	s := ""
	for _, m := range []struct {
		on   bool
		name string
	}{{in.ModCtrl, "Ctrl "}, {in.ModShift, "Shift "}, {in.ModAlt, "Alt "}} {
		if m.on {
			s += m.name
		}
	}
	if s == "" {
		return "none"
	}
	return s[:len(s)-1]
}
