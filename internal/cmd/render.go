package cmd

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-theft-auto/gridtable"
	"github.com/go-theft-auto/gridtable/layoutfile"
	"github.com/go-theft-auto/gridtable/render/raster"
	"github.com/go-theft-auto/gridtable/scene"
)

// renderMargin is added around the table when the image size is derived from it.
const renderMargin = 5

type renderResult struct {
	File     string `json:"file"`
	Out      string `json:"out"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Commands int    `json:"commands"`
}

func (r renderResult) String() string {
	return fmt.Sprintf("wrote %s (%dx%d, %d draw commands)", r.Out, r.Width, r.Height, r.Commands)
}

type renderFlags struct {
	out        string
	width      int
	height     int
	background string
	gridColor  string
	cellBounds bool
	font       fontFlags
}

func newRenderCmd(opts *globalOptions) *cobra.Command {
	var f renderFlags

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a table to a PNG image",
		Example: `  gridtable render scores.yaml
  gridtable render build.js --out build.png --cell-bounds
  gridtable render scores.toml --width 320 --height 200 --background "#202020"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := renderFile(cmd, opts, args[0], f)
			if err != nil {
				return err
			}
			return opts.printer(cmd).Print(cmd.Context(), res)
		},
	}
	cmd.Flags().StringVar(&f.out, "out", "", "Output PNG path (default: FILE with a .png extension)")
	cmd.Flags().IntVar(&f.width, "width", 0, "Image width in pixels (default: fit the table)")
	cmd.Flags().IntVar(&f.height, "height", 0, "Image height in pixels (default: fit the table)")
	cmd.Flags().StringVar(&f.background, "background", "", "Background color name or #rrggbb[aa] (default: config, then black)")
	cmd.Flags().StringVar(&f.gridColor, "grid-color", "", "Grid line color (default gray)")
	cmd.Flags().BoolVar(&f.cellBounds, "cell-bounds", false, "Outline every cell")
	f.font.register(cmd)
	return cmd
}

func renderFile(cmd *cobra.Command, opts *globalOptions, path string, f renderFlags) (renderResult, error) {
	font := f.font.resolve(opts)
	m, err := font.measurer()
	if err != nil {
		return renderResult{}, err
	}

	bgName := f.background
	if bgName == "" {
		bgName = opts.cfg.Background
	}
	bg, err := scene.ParseColor(bgName, scene.ColorBlack)
	if err != nil {
		return renderResult{}, fmt.Errorf("--background: %w", err)
	}

	style := scene.DefaultStyle
	style.CellBounds = f.cellBounds
	if style.GridColor, err = scene.ParseColor(f.gridColor, scene.DefaultStyle.GridColor); err != nil {
		return renderResult{}, fmt.Errorf("--grid-color: %w", err)
	}

	t, err := opts.loadTable(cmd.Context(), path, layoutfile.Env{Measurer: m})
	if err != nil {
		return renderResult{}, err
	}
	defer t.Destroy()

	w, h := f.width, f.height
	if w <= 0 {
		w = fitExtent(t.Position().X + t.Width())
	}
	if h <= 0 {
		h = fitExtent(t.Position().Y + t.Height())
	}

	r, err := raster.New(w, h, raster.WithBackground(bg), font.rasterOption())
	if err != nil {
		return renderResult{}, err
	}

	style.Viewport = gridtable.Rect{W: float32(w), H: float32(h)}
	dl := scene.AcquireDrawList()
	defer scene.ReleaseDrawList(dl)
	scene.DrawStyled(dl, t, style)
	if err := r.Render(dl); err != nil {
		return renderResult{}, err
	}

	out := f.out
	if out == "" {
		out = strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
	}
	if err := r.SavePNG(out); err != nil {
		return renderResult{}, err
	}

	return renderResult{File: path, Out: out, Width: w, Height: h, Commands: len(dl.CmdBuffer)}, nil
}

func fitExtent(v float32) int {
	return max(int(math.Ceil(float64(v)))+renderMargin, 1)
}
