package scene

import (
	"testing"

	"github.com/go-theft-auto/gridtable"
)

func TestContainerMeasuresChildren(t *testing.T) {
	c := NewContainer()
	if c.Width() != 0 || c.Height() != 0 {
		t.Fatalf("empty container should be 0x0, got %vx%v", c.Width(), c.Height())
	}

	a := NewBox(20, 10, ColorWhite)
	a.SetPosition(5, 5)
	b := NewBox(10, 30, ColorWhite)
	b.SetPosition(40, 0)
	c.AddChild(a)
	c.AddChild(b)

	// Union of origin, (5,5,20,10) and (40,0,10,30).
	if c.Width() != 50 || c.Height() != 30 {
		t.Errorf("got %vx%v, want 50x30", c.Width(), c.Height())
	}
}

func TestPivotShiftsChildBox(t *testing.T) {
	c := NewContainer()
	b := NewBox(20, 10, ColorWhite)
	b.SetPivot(10, 0)
	b.SetPosition(10, 0)
	c.AddChild(b)

	if c.Width() != 20 {
		t.Errorf("pivoted child should occupy [0,20), got width %v", c.Width())
	}
}

func TestBoxGrowsWithChildren(t *testing.T) {
	b := NewBox(10, 10, ColorWhite)
	child := NewBox(5, 5, ColorWhite)
	child.SetPosition(20, 0)
	b.AddChild(child)

	if b.Width() != 25 || b.Height() != 10 {
		t.Errorf("got %vx%v, want 25x10", b.Width(), b.Height())
	}

	b.SetSize(40, 12)
	if b.Width() != 40 || b.Height() != 12 {
		t.Errorf("after SetSize got %vx%v, want 40x12", b.Width(), b.Height())
	}
}

func TestLabelMeasure(t *testing.T) {
	l := NewLabel("héllo", ColorWhite)
	if l.Width() != 40 || l.Height() != 8 {
		t.Errorf("got %vx%v, want 40x8", l.Width(), l.Height())
	}

	l.WithMeasurer(MonoMeasurer{CharWidth: 6, CharHeight: 12})
	l.Scale = 2
	if l.Width() != 60 || l.Height() != 24 {
		t.Errorf("got %vx%v, want 60x24", l.Width(), l.Height())
	}

	if NewLabel("", ColorWhite).Width() != 0 {
		t.Errorf("empty label should have zero width")
	}
}

func TestChildOrder(t *testing.T) {
	c := NewContainer()
	a, b, d := NewContainer(), NewContainer(), NewContainer()
	c.AddChild(a)
	c.AddChildAt(b, 0)
	c.AddChildAt(d, 99)

	got := c.Children()
	if len(got) != 3 || got[0] != b || got[1] != a || got[2] != d {
		t.Fatalf("unexpected order %v", got)
	}

	if c.RemoveChildAt(5) != nil {
		t.Errorf("out-of-range remove should return nil")
	}
	if c.RemoveChildAt(0) != b || len(c.Children()) != 2 {
		t.Errorf("RemoveChildAt(0) should detach b")
	}
}

func TestDestroyCascades(t *testing.T) {
	root := NewContainer()
	child := NewBox(1, 1, ColorWhite)
	root.AddChild(child)

	hooks := 0
	root.OnDestroy(func() { hooks++ })
	child.OnDestroy(func() { hooks++ })

	root.Destroy()
	root.Destroy()

	if !root.Destroyed() || !child.Destroyed() {
		t.Errorf("destroy should cascade to children")
	}
	if hooks != 2 {
		t.Errorf("hooks ran %d times, want 2", hooks)
	}
	if len(root.Children()) != 0 {
		t.Errorf("destroyed node should drop its children")
	}
}

func TestDrawTable(t *testing.T) {
	tbl := gridtable.New(NewHost(), gridtable.WithGridLines(true))
	tbl.AddRow()
	if err := tbl.AddCell(NewBox(20, 10, ColorRed)); err != nil {
		t.Fatal(err)
	}

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	Draw(dl, tbl)

	if len(dl.CmdBuffer) != 5 {
		t.Fatalf("expected 1 rect and 4 grid lines, got %d commands", len(dl.CmdBuffer))
	}

	rect := dl.CmdBuffer[0]
	if rect.Kind != CmdRect {
		t.Fatalf("first command should be the box, got kind %d", rect.Kind)
	}
	// Row anchor at (5,5), cell at (5,5) within the row.
	want := gridtable.Rect{X: 10, Y: 10, W: 20, H: 10}
	if rect.Rect != want {
		t.Errorf("box drawn at %+v, want %+v", rect.Rect, want)
	}

	top := dl.CmdBuffer[1]
	if top.Kind != CmdLine || top.From != (gridtable.Vec2{X: 10, Y: 5}) || top.To != (gridtable.Vec2{X: 40, Y: 5}) {
		t.Errorf("unexpected top grid line %+v", top)
	}
}

func TestDrawOffsetsNestedTable(t *testing.T) {
	tbl := gridtable.New(NewHost())
	tbl.AddRow()
	if err := tbl.AddCell(NewBox(4, 4, ColorRed)); err != nil {
		t.Fatal(err)
	}

	outer := NewContainer()
	outer.SetPosition(100, 200)
	outer.AddChild(tbl)

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	Draw(dl, outer)

	if len(dl.CmdBuffer) != 1 {
		t.Fatalf("got %d commands, want 1", len(dl.CmdBuffer))
	}
	if r := dl.CmdBuffer[0].Rect; r.X != 110 || r.Y != 210 {
		t.Errorf("nested box drawn at (%v,%v), want (110,210)", r.X, r.Y)
	}
}

func TestDrawSkipsHidden(t *testing.T) {
	c := NewContainer()
	b := NewBox(5, 5, ColorRed)
	b.SetVisible(false)
	c.AddChild(b)

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	Draw(dl, c)

	if len(dl.CmdBuffer) != 0 {
		t.Errorf("hidden nodes should not draw, got %d commands", len(dl.CmdBuffer))
	}
	if c.Width() != 5 {
		t.Errorf("hidden nodes are still measured, got width %v", c.Width())
	}
}

func TestDrawCellBounds(t *testing.T) {
	tbl := gridtable.New(NewHost())
	tbl.AddRow()
	if err := tbl.AddCell(NewLabel("ab", ColorWhite)); err != nil {
		t.Fatal(err)
	}

	style := DefaultStyle
	style.CellBounds = true

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	DrawStyled(dl, tbl, style)

	last := dl.CmdBuffer[len(dl.CmdBuffer)-1]
	if last.Kind != CmdRectOutline || last.Rect != (gridtable.Rect{X: 10, Y: 10, W: 16, H: 8}) {
		t.Errorf("unexpected cell outline %+v", last)
	}
}

func TestDrawCullsRowsOutsideViewport(t *testing.T) {
	tbl := gridtable.New(NewHost())
	for range 3 {
		tbl.AddRow()
		if err := tbl.AddCell(NewBox(10, 10, ColorRed)); err != nil {
			t.Fatal(err)
		}
	}

	// Rows span [5,25) [25,45) [45,65).
	style := DefaultStyle
	style.Viewport = gridtable.Rect{W: 100, H: 30}

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	DrawStyled(dl, tbl, style)
	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("got %d commands, want the 2 visible rows", len(dl.CmdBuffer))
	}

	// Moving the table up brings the last row into view instead.
	tbl.SetPosition(0, -40)
	dl.Clear()
	DrawStyled(dl, tbl, style)
	if len(dl.CmdBuffer) != 2 || dl.CmdBuffer[1].Rect.Y != 10 {
		t.Errorf("unexpected commands after scrolling: %+v", dl.CmdBuffer)
	}
}

func TestDrawListSkipsTransparent(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddRect(0, 0, 1, 1, ColorTransparent)
	dl.AddLine(0, 0, 1, 1, ColorTransparent, 1)
	dl.AddText(0, 0, "x", ColorTransparent, 1)
	dl.AddText(0, 0, "", ColorWhite, 1)

	if len(dl.CmdBuffer) != 0 {
		t.Errorf("expected no commands, got %d", len(dl.CmdBuffer))
	}
}

func TestDrawListClip(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.PushClipRect(0, 0, 10, 10)
	dl.AddRect(1, 1, 2, 2, ColorWhite)
	dl.PopClipRect()
	dl.AddRect(1, 1, 2, 2, ColorWhite)

	if dl.CmdBuffer[0].Clip != (gridtable.Rect{W: 10, H: 10}) {
		t.Errorf("first rect should carry the pushed clip, got %+v", dl.CmdBuffer[0].Clip)
	}
	if dl.CmdBuffer[1].Clip != noClip {
		t.Errorf("second rect should carry no clip, got %+v", dl.CmdBuffer[1].Clip)
	}
}

func TestDrawListBounds(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddRect(10, 10, 20, 5, ColorWhite)
	dl.AddLine(0, 40, 5, 50, ColorWhite, 1)

	if got := dl.Bounds(); got != (gridtable.Rect{W: 30, H: 50}) {
		t.Errorf("got %+v", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"", ColorGray, false},
		{"Red", ColorRed, false},
		{"#ff0000", ColorRed, false},
		{"#00ff0080", RGBA(0, 255, 0, 128), false},
		{"#abc", 0, true},
		{"chartreuse", 0, true},
		{"#gggggg", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.in, ColorGray)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseColor(%q) = %#x, want %#x", tt.in, got, tt.want)
		}
	}
}

func TestToColor(t *testing.T) {
	c := ToColor(RGBA(1, 2, 3, 4))
	if c.R != 1 || c.G != 2 || c.B != 3 || c.A != 4 {
		t.Errorf("got %+v", c)
	}
}
