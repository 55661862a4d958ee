package fynehost

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"

	"github.com/go-theft-auto/gridtable"
)

func rect(w, h float32) *canvas.Rectangle {
	r := canvas.NewRectangle(color.White)
	r.Resize(fyne.NewSize(w, h))
	return r
}

func TestTablePlacesCanvasObjects(t *testing.T) {
	test.NewTempApp(t)

	a, b, c := rect(20, 10), rect(30, 10), rect(15, 10)

	tbl := gridtable.New(NewHost())
	tbl.AddRow()
	for _, obj := range []*canvas.Rectangle{a, b} {
		if err := tbl.AddCell(Wrap(obj)); err != nil {
			t.Fatal(err)
		}
	}
	tbl.AddRow()
	if err := tbl.AddCell(Wrap(c)); err != nil {
		t.Fatal(err)
	}

	// Cells sit at (columnOffset, cellStart.Y) within their row container.
	if got := a.Position(); got != fyne.NewPos(5, 5) {
		t.Errorf("a at %v, want (5,5)", got)
	}
	if got := b.Position(); got != fyne.NewPos(35, 5) {
		t.Errorf("b at %v, want (35,5)", got)
	}

	row1, _ := tbl.Row(1)
	anchor := Object(row1.Anchor())
	// Row 0 is 10+10 tall, so row 1 starts at 5+20.
	if got := anchor.Position(); got != fyne.NewPos(5, 25) {
		t.Errorf("row 1 at %v, want (5,25)", got)
	}
}

func TestContainerObjectsFollowChildOrder(t *testing.T) {
	test.NewTempApp(t)

	box := NewContainer()
	a, b, c := Wrap(rect(1, 1)), Wrap(rect(1, 1)), Wrap(rect(1, 1))
	box.AddChild(a)
	box.AddChild(c)
	box.AddChildAt(b, 1)

	cont := box.Object().(*fyne.Container)
	want := []fyne.CanvasObject{a.Object(), b.Object(), c.Object()}
	if len(cont.Objects) != 3 {
		t.Fatalf("got %d objects", len(cont.Objects))
	}
	for i := range want {
		if cont.Objects[i] != want[i] {
			t.Errorf("object %d out of order", i)
		}
	}

	if box.RemoveChildAt(0) != a || len(cont.Objects) != 2 || cont.Objects[0] != b.Object() {
		t.Errorf("RemoveChildAt(0) should detach a")
	}
}

func TestLeafMeasurement(t *testing.T) {
	test.NewTempApp(t)

	sized := Wrap(rect(12, 7))
	if sized.Width() != 12 || sized.Height() != 7 {
		t.Errorf("got %vx%v, want 12x7", sized.Width(), sized.Height())
	}

	unsized := canvas.NewRectangle(color.White)
	unsized.SetMinSize(fyne.NewSize(4, 3))
	n := Wrap(unsized)
	if n.Width() != 4 || n.Height() != 3 {
		t.Errorf("unsized leaf should fall back to MinSize, got %vx%v", n.Width(), n.Height())
	}
}

func TestLeafIgnoresChildren(t *testing.T) {
	test.NewTempApp(t)

	leaf := Wrap(rect(5, 5))
	leaf.AddChild(Wrap(rect(50, 50)))
	if len(leaf.Children()) != 0 || leaf.Width() != 5 {
		t.Errorf("leaf nodes should ignore children")
	}
}

func TestPivotMovesObject(t *testing.T) {
	test.NewTempApp(t)

	r := rect(20, 10)
	n := Wrap(r)
	n.SetPivot(10, 0)
	n.SetPosition(50, 4)

	if got := r.Position(); got != fyne.NewPos(40, 4) {
		t.Errorf("got %v, want (40,4)", got)
	}
}

func TestDeleteRowHidesObjects(t *testing.T) {
	test.NewTempApp(t)

	r := rect(10, 10)
	tbl := gridtable.New(NewHost())
	tbl.AddRow()
	if err := tbl.AddCell(Wrap(r)); err != nil {
		t.Fatal(err)
	}
	if err := tbl.DeleteRow(0); err != nil {
		t.Fatal(err)
	}

	if r.Visible() {
		t.Errorf("deleted cell should be hidden")
	}
	root := Object(tbl).(*fyne.Container)
	if len(root.Objects) != 0 {
		t.Errorf("root should be empty, has %d objects", len(root.Objects))
	}
}

func TestTitleAndFit(t *testing.T) {
	test.NewTempApp(t)

	title := rect(40, 6)
	tbl := gridtable.New(NewHost(), gridtable.WithTitle(Wrap(title)))
	tbl.AddRow()
	if err := tbl.AddCell(Wrap(rect(100, 10))); err != nil {
		t.Fatal(err)
	}

	Fit(tbl)
	root := Object(tbl)
	if root.Size().Width != tbl.Width() || root.Size().Height != tbl.Height() {
		t.Errorf("Fit should size the root to %vx%v, got %v", tbl.Width(), tbl.Height(), root.Size())
	}
	if title.Position().Y != 5 {
		t.Errorf("title should sit at the row start, got y=%v", title.Position().Y)
	}
}
