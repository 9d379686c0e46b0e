package gui

import "github.com/chewxy/math32"

// Vec2 is a 2D position or size in surface pixels.
type Vec2 struct {
	X, Y float32
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y float32
	W, H float32
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Vertex matches the attribute layout the OpenGL backend binds:
// position, uv, packed color.
type Vertex struct {
	Pos      [2]float32
	TexCoord [2]float32
	Color    uint32
}

// DrawCmd is one batched draw call over a range of a DrawList's indices.
type DrawCmd struct {
	ElemCount    uint32
	ClipRect     [4]float32 // x1, y1, x2, y2
	TextureID    uint32     // 0 = solid color
	VertexOffset uint32
	IndexOffset  uint32
}

// Packed colors are 0xAABBGGRR.
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorRed         uint32 = 0xFF0000FF
	ColorGreen       uint32 = 0xFF00FF00
	ColorYellow      uint32 = 0xFF00FFFF
	ColorGray        uint32 = 0xFF808080
	ColorTransparent uint32 = 0x00000000
)

// RGBA packs 8-bit components.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// RGBAf packs float components in [0, 1].
func RGBAf(r, g, b, a float32) uint32 {
	return RGBA(
		uint8(clampf(r, 0, 1)*255),
		uint8(clampf(g, 0, 1)*255),
		uint8(clampf(b, 0, 1)*255),
		uint8(clampf(a, 0, 1)*255),
	)
}

// UnpackRGBA is the inverse of RGBA.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

func clampf(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(v, hi))
}
