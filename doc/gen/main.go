// Command gen renders the example panels through a SurfaceBridge on a
// hidden window, captures framebuffer pixels and saves JPEG screenshots
// to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/panes"
	"github.com/go-theft-auto/panes/backend/opengl"
	"github.com/go-theft-auto/panes/panels"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single panel screenshot to capture.
type screenshot struct {
	name    string // filename without extension
	width   int
	height  int
	program func() panes.FrameProgram
	// script feeds input before the frame with the same index.
	script []func(b *panes.SurfaceBridge)
	frames int // frames to render (0 = default 2)
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	// Hidden and larger than every screenshot; resizes are never requested
	// because GLFW applies them asynchronously.
	glfw.WindowHint(glfw.Visible, glfw.False)
	window, err := opengl.NewWindow("screenshot-gen", 800, 600)
	if err != nil {
		return err
	}
	defer window.Destroy()

	reg := panes.NewRegistry(opengl.NewRenderer)

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(reg, window, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}
	if reg.Len() != 0 {
		return fmt.Errorf("%d contexts leaked", reg.Len())
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

// capture gives every screenshot a fresh bridge, so a fresh context.
func capture(reg *panes.Registry, window *opengl.Window, s screenshot, outDir string) error {
	bridge := panes.NewSurfaceBridge(reg, s.program(), panes.WithHostProfile(opengl.GLFWProfile()))
	if err := bridge.OnSurfaceReady(window, panes.Size{W: s.width, H: s.height}); err != nil {
		return err
	}
	defer bridge.OnTeardown()

	frames := max(s.frames, len(s.script), 2)
	for i := range frames {
		if i < len(s.script) {
			s.script[i](bridge)
		}
		if err := bridge.OnRedrawRequested(); err != nil {
			return err
		}
	}
	if stats := bridge.Stats(); stats.Skipped > 0 {
		return fmt.Errorf("%d frames skipped", stats.Skipped)
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// OpenGL rows start at the bottom.
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	rowLen := s.width * 4
	for y := range s.height {
		src := (s.height - 1 - y) * rowLen
		copy(img.Pix[y*rowLen:(y+1)*rowLen], pixels[src:src+rowLen])
	}

	f, err := os.Create(filepath.Join(outDir, s.name+".jpg"))
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

func press(x, y float32) func(b *panes.SurfaceBridge) {
	return func(b *panes.SurfaceBridge) {
		_ = b.OnPointerMove(x, y)
		_ = b.OnPointerButton(int(glfw.MouseButtonLeft), true)
	}
}

func release(b *panes.SurfaceBridge) {
	_ = b.OnPointerButton(int(glfw.MouseButtonLeft), false)
}

func buildScreenshots() []screenshot {
	hello := func() panes.FrameProgram { return panels.NewHello(nil) }
	inspector := func() panes.FrameProgram {
		return panels.NewInspector(60, func(int) error { return nil })
	}
	return []screenshot{
		{name: "hello", width: 600, height: 160, program: hello},
		{
			name: "hello_combo_open", width: 600, height: 160, program: hello,
			script: []func(*panes.SurfaceBridge){press(160, 60), release},
		},
		{
			name: "inspector", width: 420, height: 260, program: inspector,
			script: []func(*panes.SurfaceBridge){
				func(b *panes.SurfaceBridge) {
					_ = b.OnPointerMove(200, 100)
					_ = b.OnKey(int(glfw.KeyH), true, uint32(glfw.ModShift))
					_ = b.OnText("H")
					_ = b.OnKey(int(glfw.KeyH), false, uint32(glfw.ModShift))
					_ = b.OnWheel(2)
				},
			},
		},
	}
}
