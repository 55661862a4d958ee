// Package scene is a small retained scene graph that satisfies gridtable.Node.
//
// Nodes keep positions relative to their parent and measure themselves as the union of
// their own box and their children's boxes, always including their local origin. The tree
// is turned into drawing commands with Draw, and any Renderer can consume those commands.
//
//	host := scene.NewHost()
//	t := gridtable.New(host)
//	t.AddRow()
//	t.AddCell(scene.NewLabel("hello", scene.ColorWhite))
//
//	dl := scene.AcquireDrawList()
//	scene.Draw(dl, t)
//	renderer.Render(dl)
//	scene.ReleaseDrawList(dl)
package scene

import (
	"slices"

	"github.com/go-theft-auto/gridtable"
)

// base holds the state every scene node shares: transform, children and lifecycle.
type base struct {
	pos      gridtable.Vec2
	pivot    gridtable.Vec2
	hidden   bool
	children []gridtable.Node

	destroyed bool
	onDestroy []func()
}

// Position returns the offset within the parent.
func (b *base) Position() gridtable.Vec2 { return b.pos }

// SetPosition moves the node within its parent.
func (b *base) SetPosition(x, y float32) { b.pos = gridtable.Vec2{X: x, Y: y} }

// Pivot returns the local point Position refers to.
func (b *base) Pivot() gridtable.Vec2 { return b.pivot }

// SetPivot sets the local point Position refers to.
func (b *base) SetPivot(x, y float32) { b.pivot = gridtable.Vec2{X: x, Y: y} }

// SetVisible shows or hides the node and its subtree when drawing.
// Hidden nodes are still measured.
func (b *base) SetVisible(v bool) { b.hidden = !v }

// Visible reports whether the node is drawn.
func (b *base) Visible() bool { return !b.hidden }

// Children returns the node's children in order. The slice must not be modified.
func (b *base) Children() []gridtable.Node { return b.children }

// AddChild appends child.
func (b *base) AddChild(child gridtable.Node) {
	if child == nil {
		return
	}
	b.children = append(b.children, child)
}

// AddChildAt inserts child at index; an index past the end appends.
func (b *base) AddChildAt(child gridtable.Node, index int) {
	if child == nil {
		return
	}
	index = max(0, min(index, len(b.children)))
	b.children = slices.Insert(b.children, index, child)
}

// RemoveChildAt detaches the child at index and returns it, or nil.
func (b *base) RemoveChildAt(index int) gridtable.Node {
	if index < 0 || index >= len(b.children) {
		return nil
	}
	child := b.children[index]
	b.children = slices.Delete(b.children, index, index+1)
	return child
}

// OnDestroy registers fn to run when the node is destroyed.
func (b *base) OnDestroy(fn func()) {
	b.onDestroy = append(b.onDestroy, fn)
}

// Destroy destroys every child, runs the destroy hooks and marks the node dead.
// Calling it twice is a no-op.
func (b *base) Destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	for _, c := range b.children {
		c.Destroy()
	}
	b.children = nil
	for _, fn := range b.onDestroy {
		fn()
	}
	b.onDestroy = nil
}

// Destroyed reports whether Destroy has been called.
func (b *base) Destroyed() bool { return b.destroyed }

// bounds returns own unioned with every child's box in local coordinates.
func (b *base) bounds(own gridtable.Rect) gridtable.Rect {
	r := own
	for _, c := range b.children {
		off := c.Position().Sub(c.Pivot())
		r = r.Union(gridtable.Rect{W: c.Width(), H: c.Height()}.Translate(off))
	}
	return r
}

// Container is a node with no visual of its own. Its size is the extent of its children.
type Container struct {
	base
}

// NewContainer creates an empty container.
func NewContainer() *Container {
	return &Container{}
}

// Width returns the measured width of the children.
func (c *Container) Width() float32 { return c.bounds(gridtable.Rect{}).W }

// Height returns the measured height of the children.
func (c *Container) Height() float32 { return c.bounds(gridtable.Rect{}).H }

// Box is a fixed-size rectangle with an optional fill and outline.
type Box struct {
	base
	W, H        float32
	Fill        uint32
	Stroke      uint32
	StrokeWidth float32
}

// NewBox creates a filled box.
func NewBox(w, h float32, fill uint32) *Box {
	return &Box{W: w, H: h, Fill: fill, StrokeWidth: 1}
}

// SetSize changes the box size. Call Relayout on the owning table afterwards.
func (b *Box) SetSize(w, h float32) {
	b.W, b.H = w, h
}

// Width returns the box width, or the children's extent if larger.
func (b *Box) Width() float32 { return b.bounds(gridtable.Rect{W: b.W, H: b.H}).W }

// Height returns the box height, or the children's extent if larger.
func (b *Box) Height() float32 { return b.bounds(gridtable.Rect{W: b.W, H: b.H}).H }

// Paint draws the box at the given absolute position.
func (b *Box) Paint(dl *DrawList, at gridtable.Vec2) {
	dl.AddRect(at.X, at.Y, b.W, b.H, b.Fill)
	if b.StrokeWidth > 0 {
		dl.AddRectOutline(at.X, at.Y, b.W, b.H, b.Stroke, b.StrokeWidth)
	}
}

// Label is a single line of text measured by a TextMeasurer.
type Label struct {
	base
	Text  string
	Color uint32
	Scale float32

	measurer TextMeasurer
}

// NewLabel creates a label measured with DefaultMeasurer.
func NewLabel(text string, color uint32) *Label {
	return &Label{Text: text, Color: color, Scale: 1, measurer: DefaultMeasurer}
}

// WithMeasurer sets the measurer and returns the label.
func (l *Label) WithMeasurer(m TextMeasurer) *Label {
	if m != nil {
		l.measurer = m
	}
	return l
}

func (l *Label) size() gridtable.Rect {
	sz := l.measurer.MeasureText(l.Text, l.Scale)
	return gridtable.Rect{W: sz.X, H: sz.Y}
}

// Width returns the measured text width.
func (l *Label) Width() float32 { return l.bounds(l.size()).W }

// Height returns the measured text height.
func (l *Label) Height() float32 { return l.bounds(l.size()).H }

// Paint draws the text with its top-left corner at the given absolute position.
func (l *Label) Paint(dl *DrawList, at gridtable.Vec2) {
	dl.AddText(at.X, at.Y, l.Text, l.Color, l.Scale)
}

// Host creates scene containers for tables.
type Host struct{}

// NewHost returns a Host.
func NewHost() *Host { return &Host{} }

// NewContainer returns a new *Container.
func (*Host) NewContainer() gridtable.Node { return NewContainer() }

var (
	_ gridtable.Node = (*Container)(nil)
	_ gridtable.Node = (*Box)(nil)
	_ gridtable.Node = (*Label)(nil)
	_ gridtable.Host = (*Host)(nil)
)
