package gridtable

import "slices"

// Cell holds exactly one node placed in a Row. It never outlives its Row.
type Cell struct {
	node Node
}

// Node returns the wrapped content node.
func (c *Cell) Node() Node { return c.node }

// Row is an ordered, possibly empty sequence of cells sharing one anchor node.
// Every cell node is a child of the anchor, in cell order.
type Row struct {
	anchor Node
	cells  []*Cell
	offset float32
}

// Len returns the number of cells in the row.
func (r *Row) Len() int { return len(r.cells) }

// Offset returns the row's vertical offset from the most recent layout pass.
func (r *Row) Offset() float32 { return r.offset }

// Anchor returns the node that positions the row.
func (r *Row) Anchor() Node { return r.anchor }

// Cells returns the row's content nodes in order.
func (r *Row) Cells() []Node {
	nodes := make([]Node, len(r.cells))
	for i, c := range r.cells {
		nodes[i] = c.node
	}
	return nodes
}

// Table arranges nodes into rows and auto-sized columns.
//
// Every structural mutation ends with a full relayout, so positions are always those of
// the latest pass. A Table is not safe for concurrent use and must not be mutated from
// inside a layout pass (for example from a host measurement callback).
//
// Usage:
//
//	t := gridtable.New(scene.NewHost(), gridtable.WithColumnSeparation(4))
//	t.AddRow()
//	t.AddCell(scene.NewBox(20, 10, scene.ColorWhite))
//	t.AddCell(scene.NewBox(30, 10, scene.ColorWhite))
type Table struct {
	host Host
	root Node

	rows    []*Row
	maxCols int

	rowGap    float32
	colGap    float32
	rowStart  Vec2
	cellStart Vec2

	title     Node
	gridLines bool

	tracer Tracer
	layout Layout
}

// New creates an empty table whose nodes are created by host.
func New(host Host, opts ...Option) *Table {
	if host == nil {
		panic("gridtable: New called with nil Host")
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Table{
		host:      host,
		root:      host.NewContainer(),
		rows:      make([]*Row, 0, 4),
		rowGap:    cfg.RowSeparation,
		colGap:    cfg.ColumnSeparation,
		rowStart:  cfg.RowStart,
		cellStart: cfg.CellStart,
		title:     cfg.Title,
		gridLines: cfg.DrawGridLines,
		tracer:    nopTracer{},
	}

	if cfg.DebugMode {
		if cfg.Tracer != nil {
			t.tracer = cfg.Tracer
		} else {
			t.tracer = NewSlogTracer(nil)
		}
	}

	if t.title != nil {
		t.root.AddChild(t.title)
	}

	t.relayout()
	return t
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int { return len(t.rows) }

// MaxCols returns the largest cell count any row has reached.
// It does not shrink when cells or rows are deleted.
func (t *Table) MaxCols() int { return t.maxCols }

// RowGap returns the current vertical gap.
func (t *Table) RowGap() float32 { return t.rowGap }

// ColumnGap returns the current horizontal gap.
func (t *Table) ColumnGap() float32 { return t.colGap }

// Title returns the header node, or nil.
func (t *Table) Title() Node { return t.title }

// Root returns the container node holding the row anchors and the title.
func (t *Table) Root() Node { return t.root }

// Row returns the row at index.
func (t *Table) Row(index int) (*Row, bool) {
	if index < 0 || index >= len(t.rows) {
		return nil, false
	}
	return t.rows[index], true
}

// AddRow appends an empty row.
func (t *Table) AddRow() {
	row := t.newRow()

	if n := len(t.rows); n == 0 {
		row.anchor.SetPosition(t.rowStart.X, t.rowStart.Y)
	} else {
		prev := t.rows[n-1].anchor
		row.anchor.SetPosition(t.rowStart.X, prev.Position().Y+prev.Height())
	}

	t.root.AddChildAt(row.anchor, len(t.rows))
	t.rows = append(t.rows, row)

	t.trace(EventAddRow, len(t.rows)-1, -1, nil)
	t.relayout()
}

// AddRowAt inserts an empty row at index, shifting later rows down.
// index may equal RowCount to append.
func (t *Table) AddRowAt(index int) error {
	if index < 0 || index > len(t.rows) {
		err := rowOutOfRange(index, len(t.rows)+1)
		t.trace(EventAddRowAt, index, -1, err)
		return err
	}

	row := t.newRow()
	row.anchor.SetPosition(t.rowStart.X, t.rowStart.Y)
	t.root.AddChildAt(row.anchor, index)
	t.rows = slices.Insert(t.rows, index, row)

	t.trace(EventAddRowAt, index, -1, nil)
	t.relayout()
	return nil
}

// DeleteRow destroys the row at index together with all of its cells.
func (t *Table) DeleteRow(index int) error {
	if index < 0 || index >= len(t.rows) {
		err := rowOutOfRange(index, len(t.rows))
		t.trace(EventDeleteRow, index, -1, err)
		return err
	}

	row := t.rows[index]
	t.root.RemoveChildAt(index)
	row.anchor.Destroy()
	row.cells = nil
	t.rows = slices.Delete(t.rows, index, index+1)

	t.trace(EventDeleteRow, index, -1, nil)
	t.relayout()
	return nil
}

// AddCell appends content to the last row.
func (t *Table) AddCell(content Node) error {
	if len(t.rows) == 0 {
		t.trace(EventAddCell, -1, -1, ErrNoRows)
		return ErrNoRows
	}
	return t.AddCellInRow(len(t.rows)-1, content)
}

// AddCellInRow appends content to the row at rowIndex.
func (t *Table) AddCellInRow(rowIndex int, content Node) error {
	if err := t.checkInsert(rowIndex, content); err != nil {
		t.trace(EventAddCell, rowIndex, -1, err)
		return err
	}

	row := t.rows[rowIndex]
	t.insertCell(row, len(row.cells), content)

	t.trace(EventAddCell, rowIndex, len(row.cells)-1, nil)
	t.relayout()
	return nil
}

// AddCellAt inserts content at cellIndex in the row at rowIndex, shifting later cells
// right. A cellIndex past the end of the row appends.
func (t *Table) AddCellAt(content Node, rowIndex, cellIndex int) error {
	err := t.checkInsert(rowIndex, content)
	if err == nil && cellIndex < 0 {
		err = cellOutOfRange(cellIndex, len(t.rows[rowIndex].cells)+1)
	}
	if err != nil {
		t.trace(EventAddCellAt, rowIndex, cellIndex, err)
		return err
	}

	row := t.rows[rowIndex]
	cellIndex = min(cellIndex, len(row.cells))
	t.insertCell(row, cellIndex, content)

	t.trace(EventAddCellAt, rowIndex, cellIndex, nil)
	t.relayout()
	return nil
}

// DeleteCell destroys the cell at (rowIndex, cellIndex) and its node.
func (t *Table) DeleteCell(rowIndex, cellIndex int) error {
	if rowIndex < 0 || rowIndex >= len(t.rows) {
		err := rowOutOfRange(rowIndex, len(t.rows))
		t.trace(EventDeleteCell, rowIndex, cellIndex, err)
		return err
	}
	row := t.rows[rowIndex]
	if cellIndex < 0 || cellIndex >= len(row.cells) {
		err := cellOutOfRange(cellIndex, len(row.cells))
		t.trace(EventDeleteCell, rowIndex, cellIndex, err)
		return err
	}

	cell := row.cells[cellIndex]
	row.anchor.RemoveChildAt(cellIndex)
	cell.node.Destroy()
	row.cells = slices.Delete(row.cells, cellIndex, cellIndex+1)

	t.trace(EventDeleteCell, rowIndex, cellIndex, nil)
	t.relayout()
	return nil
}

// GetCell returns the content at (rowIndex, cellIndex). The boolean is false when
// either index is out of range; GetCell never fails.
func (t *Table) GetCell(rowIndex, cellIndex int) (Node, bool) {
	n, ok := t.cellAt(rowIndex, cellIndex)
	t.trace(EventGetCell, rowIndex, cellIndex, nil)
	return n, ok
}

// ClampCells reduces the column gap by amount and relays out.
// No floor is applied: a gap can become negative and columns then overlap.
func (t *Table) ClampCells(amount float32) {
	t.colGap -= amount
	t.trace(EventClamp, -1, -1, nil)
	t.relayout()
}

// ClampRows reduces the row gap by amount and relays out.
// No floor is applied: a gap can become negative and rows then overlap.
func (t *Table) ClampRows(amount float32) {
	t.rowGap -= amount
	t.trace(EventClamp, -1, -1, nil)
	t.relayout()
}

// cellAt is the untraced lookup used by the layout passes.
func (t *Table) cellAt(rowIndex, cellIndex int) (Node, bool) {
	if rowIndex < 0 || rowIndex >= len(t.rows) {
		return nil, false
	}
	cells := t.rows[rowIndex].cells
	if cellIndex < 0 || cellIndex >= len(cells) {
		return nil, false
	}
	return cells[cellIndex].node, true
}

func (t *Table) newRow() *Row {
	return &Row{
		anchor: t.host.NewContainer(),
		cells:  make([]*Cell, 0, max(t.maxCols, 1)),
	}
}

func (t *Table) checkInsert(rowIndex int, content Node) error {
	if content == nil {
		return ErrNilContent
	}
	if rowIndex < 0 || rowIndex >= len(t.rows) {
		return rowOutOfRange(rowIndex, len(t.rows))
	}
	return nil
}

func (t *Table) insertCell(row *Row, index int, content Node) {
	content.SetPosition(t.cellStart.X, t.cellStart.Y)
	row.anchor.AddChildAt(content, index)
	row.cells = slices.Insert(row.cells, index, &Cell{node: content})
	if len(row.cells) > t.maxCols {
		t.maxCols = len(row.cells)
	}
}

func (t *Table) trace(kind EventKind, row, cell int, err error) {
	t.tracer.Trace(Event{
		Kind: kind,
		Row:  row,
		Cell: cell,
		Rows: len(t.rows),
		Cols: t.maxCols,
		Err:  err,
	})
}

// The methods below make *Table a Node so it can be nested in other containers.
// Child operations address only decoration children, which follow the row anchors
// and the title in the root container.

// Position returns the table's offset within its parent.
func (t *Table) Position() Vec2 { return t.root.Position() }

// SetPosition moves the table within its parent.
func (t *Table) SetPosition(x, y float32) { t.root.SetPosition(x, y) }

// Pivot returns the table's pivot.
func (t *Table) Pivot() Vec2 { return t.root.Pivot() }

// SetPivot sets the table's pivot.
func (t *Table) SetPivot(x, y float32) { t.root.SetPivot(x, y) }

// Width returns the measured width of the whole table.
func (t *Table) Width() float32 { return t.root.Width() }

// Height returns the measured height of the whole table.
func (t *Table) Height() float32 { return t.root.Height() }

// AddChild appends a decoration child.
func (t *Table) AddChild(child Node) { t.root.AddChild(child) }

// AddChildAt inserts a decoration child at index among the decorations.
func (t *Table) AddChildAt(child Node, index int) {
	t.root.AddChildAt(child, t.decorationBase()+max(index, 0))
}

// RemoveChildAt detaches the decoration child at index.
func (t *Table) RemoveChildAt(index int) Node {
	if index < 0 {
		return nil
	}
	return t.root.RemoveChildAt(t.decorationBase() + index)
}

// Destroy destroys the table, every row, every cell and the title.
func (t *Table) Destroy() {
	t.root.Destroy()
	for _, row := range t.rows {
		row.cells = nil
	}
	t.rows = nil
	t.title = nil
	t.layout = Layout{}
}

func (t *Table) decorationBase() int {
	n := len(t.rows)
	if t.title != nil {
		n++
	}
	return n
}
