// Example fyne arranges fyne widgets with a gridtable.Table.
//
//	go run ./example/fyne/
//
// The buttons add and remove rows. Every change is followed by Fit and a refresh so
// fyne sees the new container sizes.
package main

import (
	"fmt"
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/go-theft-auto/gridtable"
	"github.com/go-theft-auto/gridtable/host/fynehost"
)

var cars = []struct {
	name  string
	speed float32
	color color.NRGBA
}{
	{"Infernus", 240, color.NRGBA{R: 0xe0, G: 0x30, B: 0x30, A: 0xff}},
	{"Cheetah", 225, color.NRGBA{R: 0xf0, G: 0xc0, B: 0x20, A: 0xff}},
	{"Banshee", 200, color.NRGBA{R: 0x30, G: 0x80, B: 0xff, A: 0xff}},
	{"Stinger", 190, color.NRGBA{R: 0x30, G: 0xc0, B: 0x60, A: 0xff}},
}

func main() {
	a := app.New()
	w := a.NewWindow("gridtable fyne example")

	title := fynehost.Wrap(widget.NewLabelWithStyle("Garage", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}))
	t := gridtable.New(fynehost.NewHost(),
		gridtable.WithTitle(title),
		gridtable.WithRowSeparation(4),
		gridtable.WithColumnSeparation(8),
	)
	defer t.Destroy()

	grid := fynehost.Object(t)
	refresh := func() {
		fynehost.Fit(t)
		grid.Refresh()
	}

	next := 0
	add := widget.NewButton("Add car", func() {
		car := cars[next%len(cars)]
		next++

		bar := canvas.NewRectangle(car.color)
		bar.SetMinSize(fyne.NewSize(car.speed, 16))

		t.AddRow()
		for _, obj := range []fyne.CanvasObject{
			widget.NewLabel(car.name),
			bar,
			widget.NewLabel(fmt.Sprintf("%.0f km/h", car.speed)),
		} {
			if err := t.AddCell(fynehost.Wrap(obj)); err != nil {
				slog.Error("add cell", "error", err)
				return
			}
		}
		refresh()
	})
	remove := widget.NewButton("Remove last", func() {
		if err := t.DeleteRow(t.RowCount() - 1); err != nil {
			slog.Warn("remove row", "error", err)
			return
		}
		refresh()
	})
	tighten := widget.NewButton("Tighten", func() {
		t.ClampCells(2)
		t.ClampRows(1)
		refresh()
	})

	for range 2 {
		add.OnTapped()
	}

	w.SetContent(container.NewBorder(
		container.NewHBox(add, remove, tighten),
		nil, nil, nil,
		container.NewScroll(grid),
	))
	w.Resize(fyne.NewSize(520, 360))
	w.ShowAndRun()
}
