package gridtable_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/go-theft-auto/gridtable"
)

func TestAddRow_CountAndOffsets(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7} {
		tbl, _ := newTable()
		for i := 0; i < n; i++ {
			tbl.AddRow()
		}

		if tbl.RowCount() != n {
			t.Fatalf("n=%d: expected RowCount %d, got %d", n, n, tbl.RowCount())
		}

		// Empty rows contribute exactly the row gap.
		for i := 0; i < n; i++ {
			row, ok := tbl.Row(i)
			if !ok {
				t.Fatalf("n=%d: row %d missing", n, i)
			}
			want := float32(5 + 10*i)
			if row.Offset() != want {
				t.Errorf("n=%d: row %d offset = %v, want %v", n, i, row.Offset(), want)
			}
			if got := row.Anchor().Position(); got != (gridtable.Vec2{X: 5, Y: want}) {
				t.Errorf("n=%d: row %d anchor at %+v", n, i, got)
			}
		}
	}
}

func TestRowOffsetsAreCumulativeHeights(t *testing.T) {
	tbl, _ := newTable()
	heights := []float32{12, 30, 7}
	for _, h := range heights {
		tbl.AddRow()
		if err := tbl.AddCell(leaf("c", 10, h)); err != nil {
			t.Fatal(err)
		}
	}

	want := float32(5)
	for i, h := range heights {
		row, _ := tbl.Row(i)
		if row.Offset() != want {
			t.Errorf("row %d offset = %v, want %v", i, row.Offset(), want)
		}
		want += h + 10
	}
	if last := tbl.Layout().RowOffsets[len(heights)]; last != want {
		t.Errorf("trailing row offset = %v, want %v", last, want)
	}
}

func TestScenario_TwoRows(t *testing.T) {
	tbl, _ := newTable()
	a, b, c := leaf("A", 20, 10), leaf("B", 30, 10), leaf("C", 15, 10)

	tbl.AddRow()
	mustAdd(t, tbl.AddCell(a))
	mustAdd(t, tbl.AddCell(b))
	tbl.AddRow()
	mustAdd(t, tbl.AddCell(c))

	l := tbl.Layout()
	if len(l.ColumnOffsets) != 3 {
		t.Fatalf("expected 3 column offsets (start + 2 columns), got %v", l.ColumnOffsets)
	}
	wantCols := []float32{5, 5 + 20 + 10, 5 + 20 + 10 + 30 + 10}
	if !reflect.DeepEqual(l.ColumnOffsets, wantCols) {
		t.Errorf("column offsets = %v, want %v", l.ColumnOffsets, wantCols)
	}

	row1, _ := tbl.Row(1)
	if row1.Offset() != 5+10+10 {
		t.Errorf("row 1 offset = %v, want 25", row1.Offset())
	}

	if a.pos.X != 5 || b.pos.X != 35 || c.pos.X != 5 {
		t.Errorf("cell x positions = %v %v %v", a.pos.X, b.pos.X, c.pos.X)
	}
	if a.pos.Y != 5 {
		t.Errorf("cell y should stay at the cell start, got %v", a.pos.Y)
	}
}

func TestAddCell_NoRows(t *testing.T) {
	tbl, _ := newTable()
	err := tbl.AddCell(leaf("x", 1, 1))
	if !errors.Is(err, gridtable.ErrNoRows) {
		t.Fatalf("expected ErrNoRows, got %v", err)
	}
	if tbl.MaxCols() != 0 {
		t.Errorf("MaxCols changed on failed add: %d", tbl.MaxCols())
	}
}

func TestAddCell_NilContent(t *testing.T) {
	tbl, _ := newTable()
	tbl.AddRow()
	if err := tbl.AddCell(nil); !errors.Is(err, gridtable.ErrNilContent) {
		t.Fatalf("expected ErrNilContent, got %v", err)
	}
	if err := tbl.AddCellAt(nil, 0, 0); !errors.Is(err, gridtable.ErrNilContent) {
		t.Fatalf("expected ErrNilContent from AddCellAt, got %v", err)
	}
}

func TestAddCellInRow(t *testing.T) {
	tbl, _ := newTable()
	tbl.AddRow()
	tbl.AddRow()

	first := leaf("first", 5, 5)
	mustAdd(t, tbl.AddCellInRow(0, first))

	if got, ok := tbl.GetCell(0, 0); !ok || got != first {
		t.Errorf("expected cell in row 0, got %v %v", got, ok)
	}
	if row, _ := tbl.Row(1); row.Len() != 0 {
		t.Errorf("row 1 should stay empty, has %d cells", row.Len())
	}

	err := tbl.AddCellInRow(2, leaf("x", 1, 1))
	var oor *gridtable.IndexOutOfRangeError
	if !errors.As(err, &oor) || oor.Axis != gridtable.AxisRow || oor.Index != 2 {
		t.Fatalf("expected row IndexOutOfRange, got %v", err)
	}
}

func TestAddCellAt(t *testing.T) {
	tbl, _ := newTable()
	tbl.AddRow()

	a, b, c, d := leaf("a", 1, 1), leaf("b", 1, 1), leaf("c", 1, 1), leaf("d", 1, 1)

	// Empty row, index 0 initializes the sequence.
	mustAdd(t, tbl.AddCellAt(a, 0, 0))
	// Past the end appends.
	mustAdd(t, tbl.AddCellAt(c, 0, 10))
	// In range inserts and shifts.
	mustAdd(t, tbl.AddCellAt(b, 0, 1))
	mustAdd(t, tbl.AddCellAt(d, 0, 0))

	row, _ := tbl.Row(0)
	want := []gridtable.Node{d, a, b, c}
	if !reflect.DeepEqual(row.Cells(), want) {
		t.Fatalf("cells = %v, want %v", names(row.Cells()), names(want))
	}

	anchor := row.Anchor().(*fakeNode)
	if !reflect.DeepEqual(anchor.children, want) {
		t.Errorf("anchor children out of order: %v", names(anchor.children))
	}
	if tbl.MaxCols() != 4 {
		t.Errorf("MaxCols = %d, want 4", tbl.MaxCols())
	}
}

func TestAddCellAt_InvalidIndices(t *testing.T) {
	tbl, _ := newTable()
	tbl.AddRow()

	tests := []struct {
		name      string
		row, cell int
		axis      gridtable.Axis
	}{
		{"negative row", -1, 0, gridtable.AxisRow},
		{"row past end", 1, 0, gridtable.AxisRow},
		{"negative cell", 0, -1, gridtable.AxisCell},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tbl.AddCellAt(leaf("x", 1, 1), tt.row, tt.cell)
			var oor *gridtable.IndexOutOfRangeError
			if !errors.As(err, &oor) {
				t.Fatalf("expected IndexOutOfRangeError, got %v", err)
			}
			if oor.Axis != tt.axis {
				t.Errorf("axis = %v, want %v", oor.Axis, tt.axis)
			}
		})
	}
}

func TestAddRowAt(t *testing.T) {
	tbl, h := newTable()
	tbl.AddRow()
	mustAdd(t, tbl.AddCell(leaf("top", 10, 20)))
	tbl.AddRow()
	mustAdd(t, tbl.AddCell(leaf("bottom", 10, 20)))

	if err := tbl.AddRowAt(1); err != nil {
		t.Fatal(err)
	}
	if tbl.RowCount() != 3 {
		t.Fatalf("RowCount = %d, want 3", tbl.RowCount())
	}

	mid, _ := tbl.Row(1)
	if mid.Len() != 0 {
		t.Errorf("inserted row should be empty")
	}
	if mid.Offset() != 5+30 {
		t.Errorf("inserted row offset = %v, want 35", mid.Offset())
	}
	last, _ := tbl.Row(2)
	if last.Offset() != 5+30+10 {
		t.Errorf("shifted row offset = %v, want 45", last.Offset())
	}

	root := h.created[0]
	if root.children[1] != mid.Anchor() {
		t.Errorf("anchor not inserted at root index 1")
	}

	// Appending at RowCount is allowed, past it is not.
	if err := tbl.AddRowAt(3); err != nil {
		t.Errorf("AddRowAt(RowCount) failed: %v", err)
	}
	if err := tbl.AddRowAt(5); !errors.Is(err, gridtable.ErrIndexOutOfRange) {
		t.Errorf("expected IndexOutOfRange, got %v", err)
	}
	if err := tbl.AddRowAt(-1); !errors.Is(err, gridtable.ErrIndexOutOfRange) {
		t.Errorf("expected IndexOutOfRange, got %v", err)
	}
}

func TestDeleteRow_RemovesExactlyThatRow(t *testing.T) {
	tbl, _ := newTable()
	var cells []*fakeNode
	for i := 0; i < 3; i++ {
		tbl.AddRow()
		c := leaf("r", 10, 10)
		cells = append(cells, c)
		mustAdd(t, tbl.AddCell(c))
	}
	victim, _ := tbl.Row(1)
	victimAnchor := victim.Anchor().(*fakeNode)

	if err := tbl.DeleteRow(1); err != nil {
		t.Fatal(err)
	}

	if tbl.RowCount() != 2 {
		t.Fatalf("RowCount = %d, want 2", tbl.RowCount())
	}
	if got, _ := tbl.GetCell(1, 0); got != cells[2] {
		t.Errorf("old row 2 should now be row 1")
	}
	if !victimAnchor.destroyed || !cells[1].destroyed {
		t.Errorf("deleted row anchor and its cells must be destroyed")
	}
	if cells[0].destroyed || cells[2].destroyed {
		t.Errorf("other rows must survive")
	}

	row1, _ := tbl.Row(1)
	if row1.Offset() != 5+20 {
		t.Errorf("rows should close the gap, row 1 offset = %v", row1.Offset())
	}
}

func TestDeleteInvalid_LeavesGridUnmodified(t *testing.T) {
	tbl, _ := newTable()
	tbl.AddRow()
	mustAdd(t, tbl.AddCell(leaf("a", 10, 10)))
	mustAdd(t, tbl.AddCell(leaf("b", 10, 10)))
	before := tbl.Layout()

	tests := []struct {
		name string
		op   func() error
		axis gridtable.Axis
	}{
		{"row >= count", func() error { return tbl.DeleteRow(1) }, gridtable.AxisRow},
		{"row < 0", func() error { return tbl.DeleteRow(-1) }, gridtable.AxisRow},
		{"cell row >= count", func() error { return tbl.DeleteCell(3, 0) }, gridtable.AxisRow},
		{"cell >= count", func() error { return tbl.DeleteCell(0, 2) }, gridtable.AxisCell},
		{"cell < 0", func() error { return tbl.DeleteCell(0, -1) }, gridtable.AxisCell},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.op()
			var oor *gridtable.IndexOutOfRangeError
			if !errors.As(err, &oor) {
				t.Fatalf("expected IndexOutOfRangeError, got %v", err)
			}
			if oor.Axis != tt.axis {
				t.Errorf("axis = %v, want %v", oor.Axis, tt.axis)
			}
			if tbl.RowCount() != 1 {
				t.Errorf("RowCount changed to %d", tbl.RowCount())
			}
			if row, _ := tbl.Row(0); row.Len() != 2 {
				t.Errorf("cell count changed to %d", row.Len())
			}
			if !reflect.DeepEqual(before, tbl.Layout()) {
				t.Errorf("layout changed after failed delete")
			}
		})
	}
}

func TestDeleteCell(t *testing.T) {
	tbl, _ := newTable()
	tbl.AddRow()
	a, b, c := leaf("a", 10, 10), leaf("b", 20, 10), leaf("c", 30, 10)
	mustAdd(t, tbl.AddCell(a))
	mustAdd(t, tbl.AddCell(b))
	mustAdd(t, tbl.AddCell(c))

	if err := tbl.DeleteCell(0, 1); err != nil {
		t.Fatal(err)
	}
	if !b.destroyed {
		t.Errorf("deleted cell node must be destroyed")
	}

	row, _ := tbl.Row(0)
	if !reflect.DeepEqual(row.Cells(), []gridtable.Node{a, c}) {
		t.Errorf("cells after delete = %v", names(row.Cells()))
	}
	if c.pos.X != 5+10+10 {
		t.Errorf("later cell should move left, x = %v", c.pos.X)
	}
}

func TestMaxCols_NeverShrinks(t *testing.T) {
	tbl, _ := newTable()
	tbl.AddRow()
	for i := 0; i < 3; i++ {
		mustAdd(t, tbl.AddCell(leaf("c", 10, 10)))
	}
	tbl.AddRow()
	mustAdd(t, tbl.AddCell(leaf("d", 10, 10)))

	if tbl.MaxCols() != 3 {
		t.Fatalf("MaxCols = %d, want 3", tbl.MaxCols())
	}

	mustAdd(t, tbl.DeleteCell(0, 0))
	if tbl.MaxCols() != 3 {
		t.Errorf("MaxCols shrank after DeleteCell: %d", tbl.MaxCols())
	}
	mustAdd(t, tbl.DeleteRow(0))
	if tbl.MaxCols() != 3 {
		t.Errorf("MaxCols shrank after DeleteRow: %d", tbl.MaxCols())
	}

	// Trailing columns nobody reaches are zero wide and only add the gap.
	l := tbl.Layout()
	want := []float32{5, 25, 35, 45}
	if !reflect.DeepEqual(l.ColumnOffsets, want) {
		t.Errorf("column offsets = %v, want %v", l.ColumnOffsets, want)
	}
}

func TestGetCell_NotFound(t *testing.T) {
	tbl, _ := newTable()

	if n, ok := tbl.GetCell(0, 0); ok || n != nil {
		t.Errorf("empty table lookup should be absent")
	}

	tbl.AddRow()
	if _, ok := tbl.GetCell(0, 0); ok {
		t.Errorf("row without cells should be absent")
	}
	mustAdd(t, tbl.AddCell(leaf("a", 1, 1)))

	for _, coord := range [][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}} {
		if _, ok := tbl.GetCell(coord[0], coord[1]); ok {
			t.Errorf("GetCell(%d,%d) should be absent", coord[0], coord[1])
		}
	}
}

func TestTableIsNode(t *testing.T) {
	title := leaf("title", 40, 8)
	tbl, h := newTable(gridtable.WithTitle(title))
	var _ gridtable.Node = tbl

	tbl.AddRow()
	deco := leaf("deco", 1, 1)
	tbl.AddChildAt(deco, 0)
	tbl.AddRow()

	root := h.created[0]
	// [row0, row1, title, deco]
	if len(root.children) != 4 || root.children[2] != title || root.children[3] != deco {
		t.Fatalf("unexpected root children: %v", names(root.children))
	}
	if got := tbl.RemoveChildAt(0); got != deco {
		t.Errorf("RemoveChildAt(0) should remove the decoration, got %v", got)
	}
	if tbl.RowCount() != 2 {
		t.Errorf("rows must not be touched by decoration removal")
	}

	tbl.SetPosition(100, 50)
	if root.pos != (gridtable.Vec2{X: 100, Y: 50}) {
		t.Errorf("SetPosition should move the root container")
	}

	tbl.Destroy()
	if !root.destroyed || !title.destroyed {
		t.Errorf("Destroy should destroy the root and title")
	}
	if tbl.RowCount() != 0 {
		t.Errorf("destroyed table should report no rows")
	}
}

func TestTracer(t *testing.T) {
	var events []gridtable.Event
	tbl, _ := newTable(gridtable.WithTracer(gridtable.TracerFunc(func(ev gridtable.Event) {
		events = append(events, ev)
	})))

	tbl.AddRow()
	mustAdd(t, tbl.AddCell(leaf("a", 1, 1)))
	_ = tbl.DeleteRow(4)
	tbl.GetCell(0, 0)

	var kinds []gridtable.EventKind
	for _, ev := range events {
		kinds = append(kinds, ev.Kind)
	}
	want := []gridtable.EventKind{
		gridtable.EventLayout, // construction
		gridtable.EventAddRow, gridtable.EventLayout,
		gridtable.EventAddCell, gridtable.EventLayout,
		gridtable.EventDeleteRow,
		gridtable.EventGetCell,
	}
	if !reflect.DeepEqual(kinds, want) {
		t.Fatalf("event kinds = %v, want %v", kinds, want)
	}

	del := events[5]
	if !errors.Is(del.Err, gridtable.ErrIndexOutOfRange) || del.Row != 4 {
		t.Errorf("failed delete should carry its error, got %+v", del)
	}
}

func TestTracer_DisabledByDefault(t *testing.T) {
	called := false
	cfg := gridtable.DefaultConfig()
	cfg.Tracer = gridtable.TracerFunc(func(gridtable.Event) { called = true })

	tbl, _ := newTable(gridtable.WithConfig(cfg))
	tbl.AddRow()

	if called {
		t.Errorf("tracer must not run unless DebugMode is set")
	}
}

func TestIndexOutOfRangeError(t *testing.T) {
	err := error(&gridtable.IndexOutOfRangeError{Axis: gridtable.AxisCell, Index: 4, Bound: 2})
	if err.Error() != "cell index 4 out of range [0,2)" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, gridtable.ErrIndexOutOfRange) {
		t.Errorf("errors.Is should match ErrIndexOutOfRange")
	}
	if errors.Is(err, gridtable.ErrNoRows) {
		t.Errorf("errors.Is should not match unrelated sentinels")
	}
}

func mustAdd(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func names(nodes []gridtable.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		if f, ok := n.(*fakeNode); ok {
			out[i] = f.name
		}
	}
	return out
}
