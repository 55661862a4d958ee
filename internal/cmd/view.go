package cmd

import (
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/gridtable"
	"github.com/go-theft-auto/gridtable/backend/opengl"
	"github.com/go-theft-auto/gridtable/layoutfile"
	"github.com/go-theft-auto/gridtable/render/raster"
	"github.com/go-theft-auto/gridtable/scene"
)

// gapStep is how far one arrow key press moves a gap; shift multiplies it by 5.
const gapStep = 1

// styleHolder is the part of the viewer the key handler restyles.
type styleHolder interface {
	Style() scene.Style
	SetStyle(scene.Style)
}

// tableKeys returns the viewer key bindings for t:
// Left/Right tighten or widen the column gap, Up/Down the row gap,
// G toggles grid lines and B toggles cell outlines.
func tableKeys(t *gridtable.Table, view styleHolder) opengl.KeyFunc {
	return func(key opengl.Key, shift bool) bool {
		step := float32(gapStep)
		if shift {
			step *= 5
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
			s := view.Style()
			if s.GridColor == scene.ColorTransparent {
				s.GridColor = scene.DefaultStyle.GridColor
			} else {
				s.GridColor = scene.ColorTransparent
			}
			view.SetStyle(s)
		case opengl.KeyB:
			s := view.Style()
			s.CellBounds = !s.CellBounds
			view.SetStyle(s)
		case opengl.KeyR:
			// Relayout happens after any handled key.
		default:
			return false
		}
		return true
	}
}

func newViewCmd(opts *globalOptions) *cobra.Command {
	var (
		width, height int
		font          fontFlags
	)

	cmd := &cobra.Command{
		Use:   "view FILE",
		Short: "Show a table in a window",
		Long: `Open an OpenGL window showing the table described by FILE.

Keys: Left/Right tighten or widen columns, Up/Down tighten or widen rows
(hold Shift for larger steps), G toggles grid lines, B toggles cell
outlines, R relays out, Escape quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ff := font.resolve(opts)
			bg, err := scene.ParseColor(opts.cfg.Background, scene.RGBA(30, 30, 36, 255))
			if err != nil {
				return err
			}

			var t *gridtable.Table
			var v *opengl.Viewer
			v, err = opengl.NewViewer(opengl.ViewerConfig{
				Title:  "gridtable - " + args[0],
				Width:  width,
				Height: height,
				Raster: []raster.Option{raster.WithBackground(bg), ff.rasterOption()},
				Style:  scene.DefaultStyle,
				OnKey: func(key opengl.Key, shift bool) bool {
					return tableKeys(t, v)(key, shift)
				},
			})
			if err != nil {
				return err
			}
			defer v.Close()

			t, err = opts.loadTable(cmd.Context(), args[0], layoutfile.Env{Measurer: v.Measurer()})
			if err != nil {
				return err
			}
			defer t.Destroy()

			return v.Run(t)
		},
	}
	cmd.Flags().IntVar(&width, "width", 800, "Window width")
	cmd.Flags().IntVar(&height, "height", 600, "Window height")
	font.register(cmd)
	return cmd
}
