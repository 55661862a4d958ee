package gridtable

// Node is the capability a host scene graph must provide for anything placed in a Table.
//
// Positions are relative to the node's parent. Width and Height are the node's measured
// size as reported by the host; the table never sets them. Child order is significant:
// AddChildAt and RemoveChildAt address children by their index in that order.
//
// Implementations:
//   - scene.Container, scene.Box, scene.Label (in-memory scene graph)
//   - fynehost.Node (fyne canvas objects)
//   - *Table itself, so tables can be nested in other containers
type Node interface {
	// Position returns the node's offset within its parent.
	Position() Vec2
	// SetPosition moves the node within its parent.
	SetPosition(x, y float32)

	// Pivot returns the local point that Position refers to.
	Pivot() Vec2
	// SetPivot sets the local point that Position refers to.
	SetPivot(x, y float32)

	// Width returns the measured width.
	Width() float32
	// Height returns the measured height.
	Height() float32

	// AddChild appends child to the end of the child list.
	AddChild(child Node)
	// AddChildAt inserts child at index, shifting later children.
	// An index past the end appends.
	AddChildAt(child Node, index int)
	// RemoveChildAt detaches and returns the child at index, or nil if there is none.
	// The child is not destroyed.
	RemoveChildAt(index int) Node

	// Destroy releases the node and everything it owns, children included.
	// A destroyed node must not be reused.
	Destroy()
}

// Host creates the container nodes a Table needs for itself and for its row anchors.
type Host interface {
	NewContainer() Node
}

// HostFunc adapts a plain function to the Host interface.
type HostFunc func() Node

// NewContainer calls f.
func (f HostFunc) NewContainer() Node { return f() }
