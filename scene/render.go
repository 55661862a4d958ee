package scene

import "github.com/go-theft-auto/gridtable"

// Renderer is the interface that rendering backends must implement.
//
// Implementations:
//   - raster.Rasterizer (gg, offscreen images and PNG output)
//   - opengl.Renderer (OpenGL 4.1, presents a frame in a GLFW window)
type Renderer interface {
	// Render draws all commands in the DrawList.
	Render(dl *DrawList) error

	// Resize updates the target dimensions in pixels.
	Resize(width, height int)
}

// Painter is implemented by nodes that draw something themselves.
// at is the node's absolute top-left corner.
type Painter interface {
	Paint(dl *DrawList, at gridtable.Vec2)
}

// Style controls table decorations added by Draw.
type Style struct {
	GridColor     uint32
	GridThickness float32

	// CellBounds outlines every placed cell in CellBoundsColor.
	CellBounds      bool
	CellBoundsColor uint32

	// Viewport is the visible area in absolute coordinates. Table rows outside it are
	// skipped. An empty viewport draws every row.
	Viewport gridtable.Rect
}

// DefaultStyle draws gray one-pixel grid lines and no cell outlines.
var DefaultStyle = Style{
	GridColor:       ColorGray,
	GridThickness:   1,
	CellBoundsColor: ColorMagenta,
}

// Draw appends the commands for n and its subtree to dl using DefaultStyle.
func Draw(dl *DrawList, n gridtable.Node) {
	DrawStyled(dl, n, DefaultStyle)
}

// DrawStyled appends the commands for n and its subtree to dl.
func DrawStyled(dl *DrawList, n gridtable.Node, style Style) {
	drawNode(dl, n, gridtable.Vec2{}, style)
}

func drawNode(dl *DrawList, n gridtable.Node, parent gridtable.Vec2, style Style) {
	if v, ok := n.(interface{ Visible() bool }); ok && !v.Visible() {
		return
	}
	at := parent.Add(n.Position()).Sub(n.Pivot())

	if t, ok := n.(*gridtable.Table); ok {
		drawTable(dl, t, at, style)
		return
	}

	if p, ok := n.(Painter); ok {
		p.Paint(dl, at)
	}
	if c, ok := n.(interface{ Children() []gridtable.Node }); ok {
		for _, child := range c.Children() {
			drawNode(dl, child, at, style)
		}
	}
}

// drawTable draws the table's root children, then its grid lines on top.
func drawTable(dl *DrawList, t *gridtable.Table, at gridtable.Vec2, style Style) {
	l := t.Layout()
	rows := t.RowCount()
	first, last := 0, rows
	if !style.Viewport.Empty() {
		first, last = l.RowRange(style.Viewport.Y-at.Y, style.Viewport.Bottom()-at.Y)
	}

	// Row anchors come first among the root's children.
	root := t.Root()
	if c, ok := root.(interface{ Children() []gridtable.Node }); ok {
		for i, child := range c.Children() {
			if i < rows && (i < first || i >= last) {
				continue
			}
			drawNode(dl, child, at, style)
		}
	}

	for _, seg := range l.GridLines() {
		from, to := at.Add(seg.From), at.Add(seg.To)
		dl.AddLine(from.X, from.Y, to.X, to.Y, style.GridColor, style.GridThickness)
	}
	if style.CellBounds {
		for _, p := range l.Cells {
			if p.Row < first || p.Row >= last {
				continue
			}
			b := p.Bounds.Translate(at)
			dl.AddRectOutline(b.X, b.Y, b.W, b.H, style.CellBoundsColor, 1)
		}
	}
}
