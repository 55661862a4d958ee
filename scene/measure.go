package scene

import (
	"unicode/utf8"

	"github.com/go-theft-auto/gridtable"
)

// TextMeasurer reports the size text occupies when drawn.
// Labels use it to compute their measured size, so it must agree with the renderer
// that eventually draws them.
//
// Implementations:
//   - MonoMeasurer (fixed character cell, no dependencies)
//   - raster.Measurer (font metrics of the gg rasterizer)
type TextMeasurer interface {
	// MeasureText returns the pixel dimensions of text at the given scale.
	MeasureText(text string, scale float32) gridtable.Vec2

	// LineHeight returns the line height at the given scale.
	LineHeight(scale float32) float32
}

// MonoMeasurer measures text as a row of fixed-size character cells.
type MonoMeasurer struct {
	CharWidth  float32
	CharHeight float32
}

// DefaultMeasurer uses 8x8 character cells.
var DefaultMeasurer TextMeasurer = MonoMeasurer{CharWidth: 8, CharHeight: 8}

// MeasureText returns len(text) cells wide and one cell tall. Empty text is 0x0.
func (m MonoMeasurer) MeasureText(text string, scale float32) gridtable.Vec2 {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return gridtable.Vec2{}
	}
	return gridtable.Vec2{X: float32(n) * m.CharWidth * scale, Y: m.CharHeight * scale}
}

// LineHeight returns the cell height at scale.
func (m MonoMeasurer) LineHeight(scale float32) float32 {
	return m.CharHeight * scale
}
