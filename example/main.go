// Example hosts panes in GLFW windows: a Hello pane and an input inspector
// that share one context registry, each redrawn by its own frame clock.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Flags:
//
//	-config panes.toml   settings file, reloaded when it changes
//	-single              open only the Hello pane
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/bugph0bia/go-logging"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/panes"
	"github.com/go-theft-auto/panes/backend/opengl"
	"github.com/go-theft-auto/panes/gui"
	"github.com/go-theft-auto/panes/panels"
)

var (
	configPath = flag.String("config", "panes.toml", "settings file")
	single     = flag.Bool("single", false, "open a single pane")
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

// registry is created on first use and shared by every pane.
var registry = sync.OnceValue(func() *panes.Registry {
	return panes.NewRegistry(opengl.NewRenderer)
})

func main() {
	flag.Parse()
	if err := run(); err != nil {
		slog.Error("Exiting", slog.Any("err", err))
		os.Exit(1)
	}
}

func setupLogging(cfg panes.Config) {
	if cfg.LogFile != "" {
		logging.MaxSizeMB = 8
		logging.WithStdout = true
		slog.SetDefault(logging.NewLogger(cfg.LogFile))
	}
	if cfg.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	gui.SetVerbose(cfg.Verbose)
	panes.SetLogger(slog.Default())
}

// pane is one window with its adapter and clock.
type pane struct {
	window  *opengl.Window
	adapter *opengl.HostAdapter
	clock   *panes.FrameClock
}

func openPane(title string, cfg panes.Config, program panes.FrameProgram) (*pane, error) {
	p := &pane{}
	clock, err := panes.NewFrameClock(cfg.RefreshRate, func() { p.adapter.Redraw() })
	if err != nil {
		return nil, err
	}
	p.clock = clock

	window, err := opengl.NewWindow(title, cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	p.window = window

	bridge := panes.NewSurfaceBridge(registry(), program,
		panes.WithHostProfile(opengl.GLFWProfile()),
		panes.WithFrameClock(clock))
	p.adapter, err = opengl.Attach(window, bridge)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("open %q: %w", title, err)
	}
	bridge.Context().GUI().SetStyle(cfg.GUIStyle())
	return p, nil
}

func (p *pane) close() {
	if err := p.adapter.Close(); err != nil {
		slog.Error("Closing pane", slog.Any("err", err))
	}
	p.window.Destroy()
}

func run() error {
	cfg, err := panes.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	setupLogging(cfg)

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	var open []*pane
	defer func() {
		for _, p := range open {
			p.close()
		}
	}()

	hello, err := openPane(cfg.Title, cfg, panels.NewHello(nil))
	if err != nil {
		return err
	}
	open = append(open, hello)

	if !*single {
		var inspector *pane
		insp := panels.NewInspector(cfg.RefreshRate, func(rate int) error {
			return inspector.clock.SetRate(rate)
		})
		inspector, err = openPane(cfg.Title+" (inspector)", cfg, insp)
		if err != nil {
			return err
		}
		open = append(open, inspector)
	}
	slog.Info("Panes open", slog.Int("contexts", registry().Len()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reloads := make(chan panes.Config, 1)
	if err := panes.WatchConfig(ctx, *configPath, reloads); err != nil {
		slog.Warn("Config reload disabled", slog.Any("err", err))
	}

	for len(open) > 0 {
		now := time.Now()
		wait := time.Second
		for _, p := range open {
			wait = min(wait, p.clock.Until(now))
		}
		glfw.WaitEventsTimeout(wait.Seconds())

		select {
		case next := <-reloads:
			for _, p := range open {
				if err := p.clock.SetRate(next.RefreshRate); err != nil {
					slog.Warn("Refresh rate not applied", slog.Any("err", err))
				}
				if rc := p.adapter.Bridge().Context(); rc != nil {
					rc.GUI().SetStyle(next.GUIStyle())
				}
			}
		default:
		}

		now = time.Now()
		kept := open[:0]
		for _, p := range open {
			if p.window.ShouldClose() {
				p.close()
				continue
			}
			p.clock.Advance(now)
			kept = append(kept, p)
		}
		open = kept
	}

	if n := registry().Len(); n != 0 {
		return fmt.Errorf("%d contexts left after all panes closed", n)
	}
	return nil
}
