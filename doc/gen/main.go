// Command gen builds sample tables, rasterizes them and saves JPEG screenshots to
// doc/imgs/.
//
// Usage:
//
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"

	"github.com/go-theft-auto/gridtable"
	"github.com/go-theft-auto/gridtable/render/raster"
	"github.com/go-theft-auto/gridtable/scene"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single table screenshot to capture.
type screenshot struct {
	name   string // filename without extension
	width  int
	height int
	style  scene.Style
	build  func(m scene.TextMeasurer) *gridtable.Table
}

func run() error {
	m, err := raster.NewMeasurer("", 0)
	if err != nil {
		return err
	}

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(m, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(m scene.TextMeasurer, s screenshot, outDir string) error {
	t := s.build(m)
	defer t.Destroy()

	r, err := raster.New(s.width, s.height, raster.WithBackground(scene.RGBA(30, 30, 36, 255)))
	if err != nil {
		return err
	}

	dl := scene.AcquireDrawList()
	defer scene.ReleaseDrawList(dl)
	scene.DrawStyled(dl, t, s.style)
	if err := r.Render(dl); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(outDir, s.name+".jpg"))
	if err != nil {
		return err
	}
	defer f.Close()

	return jpeg.Encode(f, r.Image(), &jpeg.Options{Quality: 90})
}

func buildScreenshots() []screenshot {
	outlined := scene.DefaultStyle
	outlined.CellBounds = true

	return []screenshot{
		{name: "basic", width: 220, height: 120, style: scene.DefaultStyle, build: basicTable},
		{name: "ragged", width: 220, height: 120, style: outlined, build: raggedTable},
		{name: "titled", width: 260, height: 140, style: scene.DefaultStyle, build: titledTable},
		{name: "clamped", width: 220, height: 120, style: outlined, build: clampedTable},
		{name: "nested", width: 300, height: 160, style: scene.DefaultStyle, build: nestedTable},
	}
}

func swatches(t *gridtable.Table, widths []float32, colors []uint32) {
	t.AddRow()
	for i, w := range widths {
		_ = t.AddCell(scene.NewBox(w, 14, colors[i%len(colors)]))
	}
}

var palette = []uint32{scene.ColorRed, scene.ColorGreen, scene.ColorBlue, scene.ColorYellow}

func basicTable(_ scene.TextMeasurer) *gridtable.Table {
	t := gridtable.New(scene.NewHost(), gridtable.WithGridLines(true))
	swatches(t, []float32{30, 50, 20}, palette)
	swatches(t, []float32{45, 20, 35}, palette[1:])
	swatches(t, []float32{20, 40, 40}, palette[2:])
	return t
}

func raggedTable(_ scene.TextMeasurer) *gridtable.Table {
	t := gridtable.New(scene.NewHost(), gridtable.WithGridLines(true))
	swatches(t, []float32{30}, palette)
	swatches(t, []float32{25, 40, 20, 15}, palette)
	t.AddRow()
	swatches(t, []float32{50, 10}, palette[2:])
	return t
}

func titledTable(m scene.TextMeasurer) *gridtable.Table {
	title := scene.NewLabel("STANDINGS", scene.ColorWhite).WithMeasurer(m)
	t := gridtable.New(scene.NewHost(),
		gridtable.WithTitle(title),
		gridtable.WithGridLines(true),
		gridtable.WithRowSeparation(6),
	)
	for i, name := range []string{"Vercetti", "Diaz", "Forelli"} {
		t.AddRow()
		_ = t.AddCell(scene.NewLabel(name, scene.ColorWhite).WithMeasurer(m))
		_ = t.AddCell(scene.NewBox(float32(90-25*i), 10, palette[i]))
	}
	return t
}

func clampedTable(_ scene.TextMeasurer) *gridtable.Table {
	t := basicTable(nil)
	t.ClampCells(14)
	t.ClampRows(12)
	return t
}

func nestedTable(m scene.TextMeasurer) *gridtable.Table {
	outer := gridtable.New(scene.NewHost(), gridtable.WithGridLines(true))
	outer.AddRow()
	_ = outer.AddCell(scene.NewLabel("inner:", scene.ColorWhite).WithMeasurer(m))
	_ = outer.AddCell(basicTable(m))
	outer.AddRow()
	_ = outer.AddCell(scene.NewLabel("ragged:", scene.ColorWhite).WithMeasurer(m))
	_ = outer.AddCell(raggedTable(m))
	return outer
}
