package opengl

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/panes"
	"github.com/go-theft-auto/panes/gui"
)

func TestCheckVersion(t *testing.T) {
	for _, s := range []string{
		"3.3.0 NVIDIA 535.54.03",
		"4.1 Metal - 76.3",
		"4.6 (Core Profile) Mesa 23.1.4",
	} {
		assert.NoError(t, checkVersion(s), s)
	}
	for _, s := range []string{"3.2.0 Mesa 10.0", "2.1 INTEL", "", "OpenGL ES 3.0"} {
		assert.ErrorIs(t, checkVersion(s), ErrUnsupportedVersion, s)
	}
}

func TestParseVersion(t *testing.T) {
	v, err := parseVersion("4.1 Metal - 76.3")
	require.NoError(t, err)
	assert.Equal(t, uint64(4), v.Major())
	assert.Equal(t, uint64(1), v.Minor())
}

func TestScissorRect(t *testing.T) {
	x, y, w, h, ok := scissorRect([4]float32{10, 20, 110, 70}, 600)
	assert.True(t, ok)
	assert.Equal(t, [4]int32{10, 530, 100, 50}, [4]int32{x, y, w, h})

	x, y, w, h, ok = scissorRect([4]float32{-10, 0, 50, 700}, 600)
	assert.True(t, ok)
	assert.Equal(t, [4]int32{0, 0, 50, 600}, [4]int32{x, y, w, h})

	_, _, _, _, ok = scissorRect([4]float32{50, 50, 50, 80}, 600)
	assert.False(t, ok)
}

func TestGlyphAtlas(t *testing.T) {
	data := glyphAtlas()
	require.Len(t, data, 128*48)

	// Top row of '!' is 0x18: columns 3 and 4 lit.
	i := int('!' - 32)
	ox, oy := i%16*8, i/16*8
	row := data[oy*atlasWidth+ox : oy*atlasWidth+ox+8]
	assert.Equal(t, []byte{0, 0, 0, 0xFF, 0xFF, 0, 0, 0}, row)

	for _, px := range data[:8] {
		assert.Zero(t, px, "space is blank")
	}
}

func TestOrthoMatrix(t *testing.T) {
	m := orthoMatrix(0, 800, 600, 0, -1, 1)
	// Top-left maps to (-1, 1), bottom-right to (1, -1).
	apply := func(x, y float32) (float32, float32) {
		return m[0]*x + m[12], m[5]*y + m[13]
	}
	x, y := apply(0, 0)
	assert.InDelta(t, -1, x, 1e-6)
	assert.InDelta(t, 1, y, 1e-6)
	x, y = apply(800, 600)
	assert.InDelta(t, 1, x, 1e-6)
	assert.InDelta(t, -1, y, 1e-6)
}

func TestGLFWProfile(t *testing.T) {
	p := GLFWProfile()
	assert.Equal(t, gui.MouseButtonLeft, p.Buttons[int(glfw.MouseButtonLeft)])
	assert.Equal(t, gui.MouseButtonRight, p.Buttons[int(glfw.MouseButtonRight)])
	assert.Equal(t, gui.MouseButtonMiddle, p.Buttons[int(glfw.MouseButtonMiddle)])
	assert.Less(t, int(glfw.KeyLast), p.KeyLimit)

	for guiKey, glfwKey := range map[gui.Key]glfw.Key{
		gui.KeyA:      glfw.KeyA,
		gui.Key9:      glfw.Key9,
		gui.KeySpace:  glfw.KeySpace,
		gui.KeyEscape: glfw.KeyEscape,
		gui.KeyEnter:  glfw.KeyEnter,
		gui.KeyUp:     glfw.KeyUp,
		gui.KeyEnd:    glfw.KeyEnd,
		gui.KeyF1:     glfw.KeyF1,
		gui.KeyF12:    glfw.KeyF12,
	} {
		assert.Equal(t, int(guiKey), int(glfwKey), gui.KeyName(guiKey))
	}
}

func TestGLFWProfileTranslatesModifiers(t *testing.T) {
	reg := panes.NewRegistry(func() panes.Backend { return nopBackend{} })
	rc, err := reg.CreateContext()
	require.NoError(t, err)
	tr := panes.NewInputTranslator(reg, GLFWProfile())

	tr.Key(rc, int(glfw.KeyC), true, uint32(glfw.ModControl|glfw.ModAlt))
	assert.True(t, rc.Input().ModCtrl)
	assert.False(t, rc.Input().ModShift)
	assert.True(t, rc.Input().ModAlt)

	tr.Wheel(rc, -1)
	assert.Equal(t, float32(-1), rc.Input().MouseWheelY)
}

func TestRenderWithoutInit(t *testing.T) {
	r := NewRenderer()
	assert.ErrorIs(t, r.RenderDrawData(&gui.DrawData{}), ErrNotInitialized)
}

type nopBackend struct{}

func (nopBackend) Init() error                        { return nil }
func (nopBackend) Shutdown()                          {}
func (nopBackend) NewFrame()                          {}
func (nopBackend) RenderDrawData(*gui.DrawData) error { return nil }
func (nopBackend) FontTextureID() uint32              { return 0 }
