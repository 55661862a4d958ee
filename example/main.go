// Example shows a score table in a GLFW window and lets the keyboard tighten it.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Left/Right and Up/Down change the column and row gaps, G toggles grid lines,
// B outlines every cell, D deletes the last row and Escape quits.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/gridtable"
	"github.com/go-theft-auto/gridtable/backend/opengl"
	"github.com/go-theft-auto/gridtable/scene"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "gridtable example"
)

var scores = []struct {
	name  string
	score float32
	color uint32
}{
	{"Tommy", 182, scene.ColorRed},
	{"Lance", 121, scene.ColorCyan},
	{"Ken", 96, scene.ColorYellow},
	{"Sonny", 240, scene.ColorMagenta},
}

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var table *gridtable.Table
	var viewer *opengl.Viewer

	viewer, err := opengl.NewViewer(opengl.ViewerConfig{
		Title:  windowTitle,
		Width:  windowWidth,
		Height: windowHeight,
		Style:  scene.DefaultStyle,
		OnKey: func(key opengl.Key, shift bool) bool {
			return handleKey(table, viewer, key, shift)
		},
	})
	if err != nil {
		return err
	}
	defer viewer.Close()

	table, err = buildTable(viewer.Measurer())
	if err != nil {
		return err
	}
	defer table.Destroy()

	table.SetPosition(40, 40)
	return viewer.Run(table)
}

func buildTable(m scene.TextMeasurer) (*gridtable.Table, error) {
	title := scene.NewLabel("HIGH SCORES", scene.ColorWhite).WithMeasurer(m)
	title.Scale = 2

	t := gridtable.New(scene.NewHost(),
		gridtable.WithTitle(title),
		gridtable.WithRowSeparation(6),
		gridtable.WithColumnSeparation(12),
		gridtable.WithGridLines(true),
	)

	for _, s := range scores {
		t.AddRow()
		cells := []gridtable.Node{
			scene.NewLabel(s.name, scene.ColorWhite).WithMeasurer(m),
			scene.NewBox(s.score, 12, s.color),
			scene.NewLabel(fmt.Sprintf("%.0f", s.score), scene.ColorLightGray).WithMeasurer(m),
		}
		for _, c := range cells {
			if err := t.AddCell(c); err != nil {
				t.Destroy()
				return nil, err
			}
		}
	}
	return t, nil
}

func handleKey(t *gridtable.Table, v *opengl.Viewer, key opengl.Key, shift bool) bool {
	step := float32(1)
	if shift {
		step = 5
	}

	switch key {
	case opengl.KeyLeft:
		t.ClampCells(step)
	case opengl.KeyRight:
		t.ClampCells(-step)
	case opengl.KeyUp:
		t.ClampRows(step)
	case opengl.KeyDown:
		t.ClampRows(-step)
	case opengl.KeyG:
		s := v.Style()
		if s.GridColor == scene.ColorTransparent {
			s.GridColor = scene.DefaultStyle.GridColor
		} else {
			s.GridColor = scene.ColorTransparent
		}
		v.SetStyle(s)
	case opengl.KeyB:
		s := v.Style()
		s.CellBounds = !s.CellBounds
		v.SetStyle(s)
	case opengl.KeyD:
		if t.RowCount() == 0 {
			return false
		}
		if err := t.DeleteRow(t.RowCount() - 1); err != nil {
			return false
		}
	default:
		return false
	}
	return true
}
