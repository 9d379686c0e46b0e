package gui

import (
	"sync"

	"github.com/chewxy/math32"
)

var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList takes a cleared DrawList from the pool.
// Return it with ReleaseDrawList.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns dl to the pool.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates the vertices, indices and commands of one layer of a
// frame. Indices are relative to their command's VertexOffset.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	clipStack    [][4]float32
	currentClip  [4]float32
	textureID    uint32
	cmdOffset    uint32
	idxCmdOffset uint32
}

// Clear resets dl while keeping its capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// PushClipRect clips subsequent primitives to (x1,y1)-(x2,y2).
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = [4]float32{x1, y1, x2, y2}
	dl.splitDraw()
}

// PopClipRect restores the previous clip rectangle.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n == 0 {
		return
	}
	dl.currentClip = dl.clipStack[n-1]
	dl.clipStack = dl.clipStack[:n-1]
	dl.splitDraw()
}

// SetTexture starts a new command when the texture changes.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID {
		return
	}
	dl.textureID = textureID
	dl.splitDraw()
}

func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

func (dl *DrawList) addQuad(a, b, c, d Vertex) {
	if len(dl.CmdBuffer) == 0 {
		dl.splitDraw()
	}
	idx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, a, b, c, d)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRect draws a filled rectangle. Fully transparent colors are skipped.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.addQuad(
		Vertex{Pos: [2]float32{x, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, Color: color},
	)
}

// AddRectOutline draws the four edges of a rectangle.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	dl.AddRect(x, y, w, thickness, color)
	dl.AddRect(x, y+h-thickness, w, thickness, color)
	dl.AddRect(x, y+thickness, thickness, h-2*thickness, color)
	dl.AddRect(x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}

// AddLine draws a line as a quad of the given thickness.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	dx, dy := x2-x1, y2-y1
	inv := float32(1)
	if l := math32.Hypot(dx, dy); l > 0 {
		inv = 1 / l
	}
	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5
	dl.addQuad(
		Vertex{Pos: [2]float32{x1 + nx, y1 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 + nx, y2 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 - nx, y2 - ny}, Color: color},
		Vertex{Pos: [2]float32{x1 - nx, y1 - ny}, Color: color},
	)
}

// AddTriangle draws a filled triangle.
func (dl *DrawList) AddTriangle(x1, y1, x2, y2, x3, y3 float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	if len(dl.CmdBuffer) == 0 {
		dl.splitDraw()
	}
	idx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer,
		Vertex{Pos: [2]float32{x1, y1}, Color: color},
		Vertex{Pos: [2]float32{x2, y2}, Color: color},
		Vertex{Pos: [2]float32{x3, y3}, Color: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2)
}

// AddText draws monospace text from the built-in 16x6 glyph atlas
// (ASCII 32-127 in a 128x48 texture). Callers set the font texture first.
func (dl *DrawList) AddText(x, y float32, text string, color uint32, scale, charWidth, charHeight float32) {
	if color&0xFF000000 == 0 || text == "" {
		return
	}
	cw := charWidth * scale
	ch := charHeight * scale
	col := 0
	for _, r := range text {
		if r < 32 || r > 127 {
			r = '?'
		}
		i := int(r - 32)
		gx, gy := float32(i%16), float32(i/16)
		u0, v0 := gx*8/128, gy*8/48
		u1, v1 := (gx+1)*8/128, (gy+1)*8/48
		px := x + float32(col)*cw
		dl.addQuad(
			Vertex{Pos: [2]float32{px, y}, TexCoord: [2]float32{u0, v0}, Color: color},
			Vertex{Pos: [2]float32{px + cw, y}, TexCoord: [2]float32{u1, v0}, Color: color},
			Vertex{Pos: [2]float32{px + cw, y + ch}, TexCoord: [2]float32{u1, v1}, Color: color},
			Vertex{Pos: [2]float32{px, y + ch}, TexCoord: [2]float32{u0, v1}, Color: color},
		)
		col++
	}
}

// InsertRect puts a solid rectangle underneath everything already recorded.
// Panels use it to draw their background once the content size is known.
func (dl *DrawList) InsertRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	verts := []Vertex{
		{Pos: [2]float32{x, y}, Color: color},
		{Pos: [2]float32{x + w, y}, Color: color},
		{Pos: [2]float32{x + w, y + h}, Color: color},
		{Pos: [2]float32{x, y + h}, Color: color},
	}
	dl.VtxBuffer = append(verts, dl.VtxBuffer...)
	dl.IdxBuffer = append([]uint16{0, 1, 2, 0, 2, 3}, dl.IdxBuffer...)

	// Indices stay relative, only the offsets shift.
	for i := range dl.CmdBuffer {
		dl.CmdBuffer[i].VertexOffset += 4
		dl.CmdBuffer[i].IndexOffset += 6
	}
	dl.cmdOffset += 4
	dl.idxCmdOffset += 6

	bg := DrawCmd{ElemCount: 6, ClipRect: dl.currentClip}
	dl.CmdBuffer = append([]DrawCmd{bg}, dl.CmdBuffer...)
}

// Finalize closes the last command and drops empty ones.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	kept := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			kept = append(kept, cmd)
		}
	}
	dl.CmdBuffer = kept
}

// DrawData is the finished output of one frame: the draw lists in back to
// front order and the display size they were laid out for.
type DrawData struct {
	DisplaySize Vec2
	Lists       []*DrawList
}

// TotalVtxCount sums the vertices of all lists.
func (d *DrawData) TotalVtxCount() int {
	n := 0
	for _, dl := range d.Lists {
		n += len(dl.VtxBuffer)
	}
	return n
}

// TotalCmdCount sums the commands of all lists.
func (d *DrawData) TotalCmdCount() int {
	n := 0
	for _, dl := range d.Lists {
		n += len(dl.CmdBuffer)
	}
	return n
}

// Release returns the lists to the pool. d must not be used afterwards.
func (d *DrawData) Release() {
	for _, dl := range d.Lists {
		ReleaseDrawList(dl)
	}
	d.Lists = nil
}
