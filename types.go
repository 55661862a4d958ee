// Package gridtable arranges visual nodes into an auto-sizing grid of rows and cells.
// It does not draw anything itself: a host scene graph supplies the nodes through the
// Node and Host interfaces and the table only positions them.
package gridtable

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X float32 `json:"x"` // Top-left position
	Y float32 `json:"y"`
	W float32 `json:"width"` // Width and height
	H float32 `json:"height"`
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float32 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float32 { return r.Y + r.H }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Union returns the smallest rectangle containing both r and other.
// A zero-sized operand still contributes its origin.
func (r Rect) Union(other Rect) Rect {
	x0 := minf(r.X, other.X)
	y0 := minf(r.Y, other.Y)
	x1 := maxf(r.Right(), other.Right())
	y1 := maxf(r.Bottom(), other.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Translate returns the rectangle moved by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, W: r.W, H: r.H}
}

// maxf returns the maximum of two float32 values.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// minf returns the minimum of two float32 values.
func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
