package gridtable_test

import (
	"github.com/go-theft-auto/gridtable"
)

// fakeNode is a minimal scene node for tests. Leaves report a fixed size; containers
// measure the union of their children's boxes and their own origin.
type fakeNode struct {
	name      string
	pos       gridtable.Vec2
	pivot     gridtable.Vec2
	w, h      float32
	container bool
	children  []gridtable.Node
	destroyed bool
}

func leaf(name string, w, h float32) *fakeNode {
	return &fakeNode{name: name, w: w, h: h}
}

func (n *fakeNode) Position() gridtable.Vec2 { return n.pos }
func (n *fakeNode) SetPosition(x, y float32) { n.pos = gridtable.Vec2{X: x, Y: y} }
func (n *fakeNode) Pivot() gridtable.Vec2    { return n.pivot }
func (n *fakeNode) SetPivot(x, y float32)    { n.pivot = gridtable.Vec2{X: x, Y: y} }

func (n *fakeNode) bounds() gridtable.Rect {
	if !n.container {
		return gridtable.Rect{W: n.w, H: n.h}
	}
	var r gridtable.Rect
	for _, c := range n.children {
		cb := gridtable.Rect{W: c.Width(), H: c.Height()}
		off := c.Position().Sub(c.Pivot())
		r = r.Union(cb.Translate(off))
	}
	return r
}

func (n *fakeNode) Width() float32  { return n.bounds().W }
func (n *fakeNode) Height() float32 { return n.bounds().H }

func (n *fakeNode) AddChild(child gridtable.Node) {
	n.children = append(n.children, child)
}

func (n *fakeNode) AddChildAt(child gridtable.Node, index int) {
	if index >= len(n.children) {
		n.children = append(n.children, child)
		return
	}
	n.children = append(n.children[:index], append([]gridtable.Node{child}, n.children[index:]...)...)
}

func (n *fakeNode) RemoveChildAt(index int) gridtable.Node {
	if index < 0 || index >= len(n.children) {
		return nil
	}
	child := n.children[index]
	n.children = append(n.children[:index], n.children[index+1:]...)
	return child
}

func (n *fakeNode) Destroy() {
	for _, c := range n.children {
		c.Destroy()
	}
	n.children = nil
	n.destroyed = true
}

// fakeHost records every container it creates.
type fakeHost struct {
	created []*fakeNode
}

func (h *fakeHost) NewContainer() gridtable.Node {
	n := &fakeNode{container: true}
	h.created = append(h.created, n)
	return n
}

func newTable(opts ...gridtable.Option) (*gridtable.Table, *fakeHost) {
	h := &fakeHost{}
	return gridtable.New(h, opts...), h
}
