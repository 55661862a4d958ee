// Package raster draws scene display lists into images with github.com/fogleman/gg.
package raster

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"

	"github.com/go-theft-auto/gridtable/scene"
)

// Rasterizer implements scene.Renderer into an offscreen gg context.
type Rasterizer struct {
	context    *gg.Context
	background uint32
	fontPath   string
	fontPoints float64
}

// Option configures a Rasterizer.
type Option func(*Rasterizer)

// WithBackground sets the color the frame is cleared to before drawing.
func WithBackground(c uint32) Option {
	return func(r *Rasterizer) { r.background = c }
}

// WithFont draws text with the TrueType font at path. An empty path keeps gg's built-in
// 7x13 face.
func WithFont(path string, points float64) Option {
	return func(r *Rasterizer) {
		r.fontPath = path
		r.fontPoints = points
	}
}

// New creates a rasterizer with a width x height frame.
func New(width, height int, opts ...Option) (*Rasterizer, error) {
	r := &Rasterizer{background: scene.ColorBlack}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.reset(width, height); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Rasterizer) reset(width, height int) error {
	dc := gg.NewContext(max(width, 1), max(height, 1))
	if r.fontPath != "" {
		if err := dc.LoadFontFace(r.fontPath, r.fontPoints); err != nil {
			return fmt.Errorf("load font %s: %w", r.fontPath, err)
		}
	}
	r.context = dc
	return nil
}

// Resize replaces the frame with a new one of the given size. Contents are discarded.
func (r *Rasterizer) Resize(width, height int) {
	if width == r.context.Width() && height == r.context.Height() {
		return
	}
	// The font loaded in New, so reloading it cannot fail here.
	_ = r.reset(width, height)
}

// Size returns the frame size in pixels.
func (r *Rasterizer) Size() (int, int) {
	return r.context.Width(), r.context.Height()
}

// Render clears the frame and draws every command in dl.
func (r *Rasterizer) Render(dl *scene.DrawList) error {
	dc := r.context
	dc.ResetClip()
	dc.SetColor(scene.ToColor(r.background))
	dc.Clear()

	for i := range dl.CmdBuffer {
		cmd := &dl.CmdBuffer[i]
		if cmd.Clipped() {
			dc.DrawRectangle(float64(cmd.Clip.X), float64(cmd.Clip.Y), float64(cmd.Clip.W), float64(cmd.Clip.H))
			dc.Clip()
		}
		if err := r.draw(cmd); err != nil {
			return err
		}
		if cmd.Clipped() {
			dc.ResetClip()
		}
	}
	return nil
}

func (r *Rasterizer) draw(cmd *scene.DrawCmd) error {
	dc := r.context
	dc.SetColor(scene.ToColor(cmd.Color))

	switch cmd.Kind {
	case scene.CmdRect:
		dc.DrawRectangle(float64(cmd.Rect.X), float64(cmd.Rect.Y), float64(cmd.Rect.W), float64(cmd.Rect.H))
		dc.Fill()
	case scene.CmdRectOutline:
		dc.SetLineWidth(float64(cmd.Thickness))
		dc.DrawRectangle(float64(cmd.Rect.X), float64(cmd.Rect.Y), float64(cmd.Rect.W), float64(cmd.Rect.H))
		dc.Stroke()
	case scene.CmdLine:
		dc.SetLineWidth(float64(cmd.Thickness))
		dc.DrawLine(float64(cmd.From.X), float64(cmd.From.Y), float64(cmd.To.X), float64(cmd.To.Y))
		dc.Stroke()
	case scene.CmdText:
		x, y := float64(cmd.Rect.X), float64(cmd.Rect.Y)
		scale := float64(cmd.Scale)
		if scale <= 0 {
			scale = 1
		}
		dc.Push()
		dc.ScaleAbout(scale, scale, x, y)
		dc.DrawStringAnchored(cmd.Text, x, y, 0, 1)
		dc.Pop()
	default:
		return fmt.Errorf("raster: unknown command kind %d", cmd.Kind)
	}
	return nil
}

// Image returns the current frame.
func (r *Rasterizer) Image() image.Image {
	return r.context.Image()
}

// EncodePNG writes the current frame to w as PNG.
func (r *Rasterizer) EncodePNG(w io.Writer) error {
	return r.context.EncodePNG(w)
}

// SavePNG writes the current frame to path as PNG.
func (r *Rasterizer) SavePNG(path string) error {
	if err := r.context.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Measurer returns a text measurer that agrees with this rasterizer's font.
func (r *Rasterizer) Measurer() *Measurer {
	return &Measurer{context: r.measureContext()}
}

func (r *Rasterizer) measureContext() *gg.Context {
	dc := gg.NewContext(1, 1)
	if r.fontPath != "" {
		// Same font New already loaded.
		_ = dc.LoadFontFace(r.fontPath, r.fontPoints)
	}
	return dc
}

var _ scene.Renderer = (*Rasterizer)(nil)
