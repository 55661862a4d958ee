package scene

import (
	"sync"

	"github.com/go-theft-auto/gridtable"
)

// drawListPool provides reuse of DrawList buffers between frames.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			CmdBuffer: make([]DrawCmd, 0, 64),
			clipStack: make([]gridtable.Rect, 0, 8),
		}
	},
}

// AcquireDrawList gets a cleared DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// CmdKind identifies a drawing primitive.
type CmdKind uint8

const (
	CmdRect        CmdKind = iota // Filled rectangle
	CmdRectOutline                // Rectangle outline
	CmdLine                       // Line segment
	CmdText                       // Single line of text
)

// DrawCmd is one drawing primitive in absolute coordinates.
type DrawCmd struct {
	Kind CmdKind

	Rect      gridtable.Rect // CmdRect, CmdRectOutline; text origin for CmdText
	From, To  gridtable.Vec2 // CmdLine
	Color     uint32
	Thickness float32 // CmdRectOutline, CmdLine
	Text      string  // CmdText
	Scale     float32 // CmdText

	// Clip is the clip rectangle active when the command was added.
	Clip gridtable.Rect
}

// Clipped reports whether a clip rectangle was active when the command was added.
func (c DrawCmd) Clipped() bool { return c.Clip != noClip }

// noClip is the very large default clip rectangle.
var noClip = gridtable.Rect{X: -1e9, Y: -1e9, W: 2e9, H: 2e9}

// DrawList accumulates drawing commands for a frame.
type DrawList struct {
	CmdBuffer []DrawCmd

	clipStack   []gridtable.Rect
	currentClip gridtable.Rect
}

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = noClip
}

// PushClipRect pushes a new clip rectangle onto the stack.
// All subsequent primitives carry this rectangle.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = gridtable.Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// PopClipRect pops the clip rectangle stack.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n > 0 {
		dl.currentClip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
	}
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 { // Skip fully transparent
		return
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		Kind:  CmdRect,
		Rect:  gridtable.Rect{X: x, Y: y, W: w, H: h},
		Color: color,
		Clip:  dl.currentClip,
	})
}

// AddRectOutline draws a rectangle outline.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		Kind:      CmdRectOutline,
		Rect:      gridtable.Rect{X: x, Y: y, W: w, H: h},
		Color:     color,
		Thickness: thickness,
		Clip:      dl.currentClip,
	})
}

// AddLine draws a line between two points.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		Kind:      CmdLine,
		From:      gridtable.Vec2{X: x1, Y: y1},
		To:        gridtable.Vec2{X: x2, Y: y2},
		Color:     color,
		Thickness: thickness,
		Clip:      dl.currentClip,
	})
}

// AddText draws text with its top-left corner at (x, y).
func (dl *DrawList) AddText(x, y float32, text string, color uint32, scale float32) {
	if color&0xFF000000 == 0 || len(text) == 0 {
		return
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		Kind:  CmdText,
		Rect:  gridtable.Rect{X: x, Y: y},
		Color: color,
		Text:  text,
		Scale: scale,
		Clip:  dl.currentClip,
	})
}

// Bounds returns the extent of every shape in the list, origin included.
// Text commands contribute only their origin.
func (dl *DrawList) Bounds() gridtable.Rect {
	var r gridtable.Rect
	for _, cmd := range dl.CmdBuffer {
		switch cmd.Kind {
		case CmdLine:
			r = r.Union(gridtable.Rect{X: cmd.From.X, Y: cmd.From.Y})
			r = r.Union(gridtable.Rect{X: cmd.To.X, Y: cmd.To.Y})
		default:
			r = r.Union(cmd.Rect)
		}
	}
	return r
}
