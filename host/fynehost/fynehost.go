// Package fynehost lets a gridtable.Table arrange fyne canvas objects.
//
//	tbl := gridtable.New(fynehost.NewHost())
//	tbl.AddRow()
//	tbl.AddCell(fynehost.Wrap(widget.NewLabel("name")))
//	w.SetContent(fynehost.Object(tbl))
package fynehost

import (
	"fmt"
	"log/slog"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/go-theft-auto/gridtable"
)

// Node adapts a fyne.CanvasObject to gridtable.Node.
//
// Container nodes hold a *fyne.Container without a layout and keep its Objects in child
// order. Leaf nodes wrap any canvas object and ignore child operations.
type Node struct {
	obj      fyne.CanvasObject
	box      *fyne.Container
	pos      gridtable.Vec2
	pivot    gridtable.Vec2
	children []gridtable.Node

	destroyed bool
}

// Wrap adapts a leaf canvas object. Its measured size is Size(), or MinSize() while it has
// not been resized.
func Wrap(obj fyne.CanvasObject) *Node {
	p := obj.Position()
	return &Node{obj: obj, pos: gridtable.Vec2{X: p.X, Y: p.Y}}
}

// NewContainer creates a container node backed by container.NewWithoutLayout.
func NewContainer() *Node {
	box := container.NewWithoutLayout()
	return &Node{obj: box, box: box}
}

// Object returns the underlying canvas object.
func (n *Node) Object() fyne.CanvasObject { return n.obj }

// Children returns the child nodes in order.
func (n *Node) Children() []gridtable.Node { return n.children }

// Destroyed reports whether Destroy has been called.
func (n *Node) Destroyed() bool { return n.destroyed }

// Position returns the offset within the parent.
func (n *Node) Position() gridtable.Vec2 { return n.pos }

// SetPosition moves the canvas object so its pivot lands on (x, y).
func (n *Node) SetPosition(x, y float32) {
	n.pos = gridtable.Vec2{X: x, Y: y}
	n.move()
}

// Pivot returns the local point Position refers to.
func (n *Node) Pivot() gridtable.Vec2 { return n.pivot }

// SetPivot sets the local point Position refers to.
func (n *Node) SetPivot(x, y float32) {
	n.pivot = gridtable.Vec2{X: x, Y: y}
	n.move()
}

func (n *Node) move() {
	at := n.pos.Sub(n.pivot)
	n.obj.Move(fyne.NewPos(at.X, at.Y))
}

// Width returns the measured width.
func (n *Node) Width() float32 { return n.bounds().W }

// Height returns the measured height.
func (n *Node) Height() float32 { return n.bounds().H }

func (n *Node) bounds() gridtable.Rect {
	if n.box == nil {
		sz := n.obj.Size()
		if sz.Width == 0 && sz.Height == 0 {
			sz = n.obj.MinSize()
		}
		return gridtable.Rect{W: sz.Width, H: sz.Height}
	}

	var r gridtable.Rect
	for _, c := range n.children {
		off := c.Position().Sub(c.Pivot())
		r = r.Union(gridtable.Rect{W: c.Width(), H: c.Height()}.Translate(off))
	}
	return r
}

// AddChild appends child to a container node.
func (n *Node) AddChild(child gridtable.Node) {
	n.AddChildAt(child, len(n.children))
}

// AddChildAt inserts child at index in a container node; an index past the end appends.
func (n *Node) AddChildAt(child gridtable.Node, index int) {
	if child == nil {
		return
	}
	if n.box == nil {
		slog.Debug("fynehost: child added to a leaf node was ignored")
		return
	}
	obj := Object(child)
	if obj == nil {
		slog.Debug("fynehost: child has no canvas object", "type", fmt.Sprintf("%T", child))
		return
	}

	index = max(0, min(index, len(n.children)))
	n.children = slices.Insert(n.children, index, child)
	n.box.Objects = slices.Insert(n.box.Objects, index, obj)
}

// RemoveChildAt detaches the child at index and returns it, or nil.
func (n *Node) RemoveChildAt(index int) gridtable.Node {
	if index < 0 || index >= len(n.children) {
		return nil
	}
	child := n.children[index]
	n.children = slices.Delete(n.children, index, index+1)
	n.box.Objects = slices.Delete(n.box.Objects, index, index+1)
	return child
}

// Destroy destroys every child, hides the canvas object and empties the container.
func (n *Node) Destroy() {
	if n.destroyed {
		return
	}
	n.destroyed = true
	for _, c := range n.children {
		c.Destroy()
	}
	n.children = nil
	if n.box != nil {
		n.box.Objects = nil
	}
	n.obj.Hide()
}

// Object returns the canvas object behind a gridtable node: the wrapped object of a *Node,
// or the root container of a table built on this host. It returns nil otherwise.
func Object(node gridtable.Node) fyne.CanvasObject {
	switch v := node.(type) {
	case *Node:
		return v.obj
	case interface{ Root() gridtable.Node }:
		return Object(v.Root())
	default:
		return nil
	}
}

// Fit resizes every container under node to its measured size so fyne lays out and hit
// tests them correctly. Call it after the table changes, before refreshing the canvas.
func Fit(node gridtable.Node) {
	if t, ok := node.(interface{ Root() gridtable.Node }); ok {
		node = t.Root()
	}
	n, ok := node.(*Node)
	if !ok || n.box == nil {
		return
	}
	for _, c := range n.children {
		Fit(c)
	}
	b := n.bounds()
	n.box.Resize(fyne.NewSize(b.Right(), b.Bottom()))
}

// Host creates fyne container nodes for tables.
type Host struct{}

// NewHost returns a Host.
func NewHost() *Host { return &Host{} }

// NewContainer returns a container *Node.
func (*Host) NewContainer() gridtable.Node { return NewContainer() }

var (
	_ gridtable.Node = (*Node)(nil)
	_ gridtable.Host = (*Host)(nil)
)
