// Package panels holds ready-made frame programs.
package panels

import (
	"log/slog"

	"github.com/go-theft-auto/panes"
	"github.com/go-theft-auto/panes/gui"
)

// Command runs a host action for the chosen object kind.
type Command func(kind string)

// ObjectKinds are the kinds Hello offers.
var ObjectKinds = []string{"mesh", "camera", "light", "locator"}

// Hello greets the user and creates objects through a host command.
type Hello struct {
	Title string

	run    Command
	choice int
}

var _ panes.FrameProgram = (*Hello)(nil)

// NewHello returns the panel. A nil run only logs the request.
func NewHello(run Command) *Hello {
	return &Hello{Title: "Panes Example", run: run}
}

// Selected returns the chosen kind.
func (h *Hello) Selected() string { return ObjectKinds[h.choice] }

// ProduceFrame draws the panel.
func (h *Hello) ProduceFrame(rc *panes.RenderContext) {
	h.Draw(rc.UI())
}

// Draw lays the panel out over the whole display.
func (h *Hello) Draw(ctx *gui.Context) {
	ctx.Window(h.Title)(func() {
		ctx.Text("Hello, User!")
		ctx.Text("This is a simple example of an embedded GUI pane.")
		ctx.ComboBox("Select Item Type:", &h.choice, ObjectKinds, gui.WithWidth(200))
		ctx.SameLine()
		if ctx.Button("Create Object") {
			h.create(h.Selected())
		}
	})
}

func (h *Hello) create(kind string) {
	if h.run == nil {
		panes.Logger().Info("Create object requested", slog.String("kind", kind))
		return
	}
	h.run(kind)
}
