package gridtable

import "slices"

// Placement is the computed box of one cell in table coordinates.
type Placement struct {
	Row    int  `json:"row"`
	Column int  `json:"column"`
	Bounds Rect `json:"bounds"`
}

// Segment is a straight line between two points in table coordinates.
type Segment struct {
	From Vec2 `json:"from"`
	To   Vec2 `json:"to"`
}

// Layout is the result of one layout pass.
//
// RowOffsets has RowCount+1 entries: the y of every row plus the y just below the last
// row. ColumnOffsets has MaxCols+1 entries: the x (within a row) of every column plus the
// x just after the last column.
type Layout struct {
	RowOffsets    []float32   `json:"rowOffsets"`
	RowHeights    []float32   `json:"rowHeights"`
	ColumnOffsets []float32   `json:"columnOffsets"`
	ColumnWidths  []float32   `json:"columnWidths"`
	Cells         []Placement `json:"cells"`

	// Title is the title's box, zero when the table has no title.
	Title Rect `json:"title"`

	gridLines []Segment
}

// GridLines returns the row and column separators, or nil unless the table was created
// with grid lines enabled.
func (l Layout) GridLines() []Segment { return l.gridLines }

// Clone returns a deep copy of l.
func (l Layout) Clone() Layout {
	return Layout{
		RowOffsets:    slices.Clone(l.RowOffsets),
		RowHeights:    slices.Clone(l.RowHeights),
		ColumnOffsets: slices.Clone(l.ColumnOffsets),
		ColumnWidths:  slices.Clone(l.ColumnWidths),
		Cells:         slices.Clone(l.Cells),
		Title:         l.Title,
		gridLines:     slices.Clone(l.gridLines),
	}
}

// Layout returns a copy of the most recent layout pass.
func (t *Table) Layout() Layout { return t.layout.Clone() }

// Relayout recomputes every row offset, column offset and cell position from the
// current measured sizes and returns the result. Mutations call it automatically.
func (t *Table) Relayout() Layout {
	t.relayout()
	return t.layout.Clone()
}

// relayout is a full recompute in three passes: row offsets, column offsets, placement.
// Cost is O(rows * maxCols) per pass.
func (t *Table) relayout() {
	var l Layout

	// Pass 1: each row is as tall as its tallest cell plus the gap; empty rows are
	// just the gap.
	start := t.rowStart.Y
	if t.title != nil {
		start += t.title.Height()
	}
	l.RowOffsets = make([]float32, len(t.rows)+1)
	l.RowHeights = make([]float32, len(t.rows))
	l.RowOffsets[0] = start
	for i, row := range t.rows {
		h := t.rowGap
		for j, c := range row.cells {
			ch := c.node.Height() + t.rowGap
			if j == 0 || ch > h {
				h = ch
			}
		}
		l.RowHeights[i] = h
		l.RowOffsets[i+1] = l.RowOffsets[i] + h
	}

	// Pass 2: each column is as wide as its widest present cell. Ragged rows simply
	// contribute nothing to columns they do not reach.
	l.ColumnWidths = make([]float32, t.maxCols)
	l.ColumnOffsets = make([]float32, t.maxCols+1)
	l.ColumnOffsets[0] = t.cellStart.X
	for c := 0; c < t.maxCols; c++ {
		var w float32
		for r := range t.rows {
			if n, ok := t.cellAt(r, c); ok {
				w = maxf(w, n.Width())
			}
		}
		l.ColumnWidths[c] = w
		l.ColumnOffsets[c+1] = l.ColumnOffsets[c] + w + t.colGap
	}

	// Pass 3: rows move vertically, cells move horizontally within their row.
	l.Cells = make([]Placement, 0, len(t.rows)*max(t.maxCols, 1))
	for r, row := range t.rows {
		row.offset = l.RowOffsets[r]
		row.anchor.SetPosition(t.rowStart.X, row.offset)
		for c, cell := range row.cells {
			n := cell.node
			y := n.Position().Y
			n.SetPosition(l.ColumnOffsets[c], y)
			l.Cells = append(l.Cells, Placement{
				Row:    r,
				Column: c,
				Bounds: Rect{
					X: t.rowStart.X + l.ColumnOffsets[c],
					Y: row.offset + y,
					W: n.Width(),
					H: n.Height(),
				},
			})
		}
	}

	// The title is centered over the grid alone; measuring the root would include the
	// title's previous position.
	if t.title != nil {
		tw := t.title.Width()
		t.title.SetPivot(tw/2, 0)
		cx := l.gridWidth() / 2
		t.title.SetPosition(cx, t.rowStart.Y)
		l.Title = Rect{X: cx - tw/2, Y: t.rowStart.Y, W: tw, H: t.title.Height()}
	}

	if t.gridLines {
		l.gridLines = t.gridSegments(l)
	}

	t.layout = l
	t.trace(EventLayout, -1, -1, nil)
}

// gridWidth is the right edge of the widest row in table coordinates, measured from 0.
func (l Layout) gridWidth() float32 {
	var w float32
	for _, p := range l.Cells {
		w = maxf(w, p.Bounds.X+p.Bounds.W)
	}
	return w
}

// gridSegments returns horizontal lines at every row boundary and vertical lines at
// every column boundary, spanning the grid's extent.
func (t *Table) gridSegments(l Layout) []Segment {
	if len(t.rows) == 0 || t.maxCols == 0 {
		return nil
	}

	left := t.rowStart.X + l.ColumnOffsets[0]
	right := t.rowStart.X + l.ColumnOffsets[t.maxCols]
	top := l.RowOffsets[0]
	bottom := l.RowOffsets[len(t.rows)]

	segs := make([]Segment, 0, len(l.RowOffsets)+len(l.ColumnOffsets))
	for _, y := range l.RowOffsets {
		segs = append(segs, Segment{From: Vec2{X: left, Y: y}, To: Vec2{X: right, Y: y}})
	}
	for _, x := range l.ColumnOffsets {
		x += t.rowStart.X
		segs = append(segs, Segment{From: Vec2{X: x, Y: top}, To: Vec2{X: x, Y: bottom}})
	}
	return segs
}
