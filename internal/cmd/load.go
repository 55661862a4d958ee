package cmd

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-theft-auto/gridtable"
	"github.com/go-theft-auto/gridtable/layoutfile"
	"github.com/go-theft-auto/gridtable/render/raster"
	"github.com/go-theft-auto/gridtable/script"
)

// fontFlags selects the font labels are measured and drawn with.
type fontFlags struct {
	path   string
	points float64
}

func (f *fontFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.path, "font", "", "TrueType font for labels (default: built-in 7x13 face)")
	cmd.Flags().Float64Var(&f.points, "font-size", 0, "Font size in points (default 13)")
}

// resolve fills unset values from the config file.
func (f fontFlags) resolve(o *globalOptions) fontFlags {
	if f.path == "" {
		f.path = o.cfg.FontPath
	}
	if f.points <= 0 {
		f.points = o.cfg.FontSize
	}
	if f.points <= 0 {
		f.points = 13
	}
	return f
}

func (f fontFlags) measurer() (*raster.Measurer, error) {
	return raster.NewMeasurer(f.path, f.points)
}

func (f fontFlags) rasterOption() raster.Option {
	return raster.WithFont(f.path, f.points)
}

// isScript reports whether path names a table script rather than a layout file.
func isScript(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".js")
}

// loadTable builds the table described by path. Config settings act as defaults that
// the file may override.
func (o *globalOptions) loadTable(ctx context.Context, path string, env layoutfile.Env) (*gridtable.Table, error) {
	if isScript(path) {
		return o.runScript(ctx, path, env)
	}

	doc, err := layoutfile.Load(path)
	if err != nil {
		return nil, err
	}
	if doc.RowSeparation == nil {
		doc.RowSeparation = o.cfg.RowSeparation
	}
	if doc.ColumnSeparation == nil {
		doc.ColumnSeparation = o.cfg.ColumnSeparation
	}
	doc.Debug = doc.Debug || o.debugEnabled()
	return layoutfile.Build(doc, env)
}

func (o *globalOptions) runScript(ctx context.Context, path string, env layoutfile.Env) (*gridtable.Table, error) {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	e := script.New(script.Config{Env: env, TableOptions: o.tableOptions()})
	if err := e.RunFile(ctx, path); err != nil {
		e.Table().Destroy()
		return nil, err
	}
	return e.Table(), nil
}
