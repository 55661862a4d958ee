package raster

import (
	"fmt"
	"sync"

	"github.com/fogleman/gg"

	"github.com/go-theft-auto/gridtable"
	"github.com/go-theft-auto/gridtable/scene"
)

// Measurer implements scene.TextMeasurer with gg font metrics.
type Measurer struct {
	mu      sync.Mutex
	context *gg.Context
}

// NewMeasurer measures with the TrueType font at path. An empty path uses gg's built-in
// 7x13 face.
func NewMeasurer(path string, points float64) (*Measurer, error) {
	dc := gg.NewContext(1, 1)
	if path != "" {
		if err := dc.LoadFontFace(path, points); err != nil {
			return nil, fmt.Errorf("load font %s: %w", path, err)
		}
	}
	return &Measurer{context: dc}, nil
}

// MeasureText returns the advance width and font height of text at scale.
// Empty text measures 0x0.
func (m *Measurer) MeasureText(text string, scale float32) gridtable.Vec2 {
	if text == "" {
		return gridtable.Vec2{}
	}
	m.mu.Lock()
	w, h := m.context.MeasureString(text)
	m.mu.Unlock()
	return gridtable.Vec2{X: float32(w) * scale, Y: float32(h) * scale}
}

// LineHeight returns the font height at scale.
func (m *Measurer) LineHeight(scale float32) float32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return float32(m.context.FontHeight()) * scale
}

var _ scene.TextMeasurer = (*Measurer)(nil)
