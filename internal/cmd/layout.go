package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-theft-auto/gridtable"
	"github.com/go-theft-auto/gridtable/internal/output"
	"github.com/go-theft-auto/gridtable/layoutfile"
)

type cellReport struct {
	Row    int            `json:"row"`
	Column int            `json:"column"`
	Kind   string         `json:"kind"`
	Text   string         `json:"text,omitempty"`
	Bounds gridtable.Rect `json:"bounds"`
}

type layoutReport struct {
	File          string              `json:"file"`
	Rows          int                 `json:"rows"`
	Columns       int                 `json:"columns"`
	Width         float32             `json:"width"`
	Height        float32             `json:"height"`
	RowGap        float32             `json:"rowGap"`
	ColumnGap     float32             `json:"columnGap"`
	RowOffsets    []float32           `json:"rowOffsets"`
	RowHeights    []float32           `json:"rowHeights"`
	ColumnOffsets []float32           `json:"columnOffsets"`
	ColumnWidths  []float32           `json:"columnWidths"`
	Title         *gridtable.Rect     `json:"title,omitempty"`
	Cells         []cellReport        `json:"cells"`
	GridLines     []gridtable.Segment `json:"gridLines,omitempty"`
}

func newLayoutReport(file string, t *gridtable.Table) layoutReport {
	l := t.Layout()
	r := layoutReport{
		File:          file,
		Rows:          t.RowCount(),
		Columns:       t.MaxCols(),
		Width:         t.Width(),
		Height:        t.Height(),
		RowGap:        t.RowGap(),
		ColumnGap:     t.ColumnGap(),
		RowOffsets:    l.RowOffsets,
		RowHeights:    l.RowHeights,
		ColumnOffsets: l.ColumnOffsets,
		ColumnWidths:  l.ColumnWidths,
		Cells:         make([]cellReport, 0, len(l.Cells)),
		GridLines:     l.GridLines(),
	}
	if t.Title() != nil {
		title := l.Title
		r.Title = &title
	}
	for _, p := range l.Cells {
		c := cellReport{Row: p.Row, Column: p.Column, Bounds: p.Bounds}
		if row, ok := t.Row(p.Row); ok {
			c.Kind, c.Text = layoutfile.Describe(row.Cells()[p.Column])
		}
		r.Cells = append(r.Cells, c)
	}
	return r
}

func (r layoutReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d rows x %d columns, %gx%g\n", r.File, r.Rows, r.Columns, r.Width, r.Height)
	fmt.Fprintf(&b, "gaps: row %g, column %g\n", r.RowGap, r.ColumnGap)
	fmt.Fprintf(&b, "row offsets: %v\n", r.RowOffsets)
	fmt.Fprintf(&b, "column offsets: %v\n", r.ColumnOffsets)
	if r.Title != nil {
		fmt.Fprintf(&b, "title: %s\n", formatRect(*r.Title))
	}
	for _, c := range r.Cells {
		fmt.Fprintf(&b, "  [%d,%d] %s %s", c.Row, c.Column, c.Kind, formatRect(c.Bounds))
		if c.Text != "" {
			fmt.Fprintf(&b, " %q", c.Text)
		}
		b.WriteByte('\n')
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Table renders one line per placed cell.
func (r layoutReport) Table() output.Table {
	t := output.Table{Headers: []string{"ROW", "COL", "KIND", "X", "Y", "W", "H", "TEXT"}}
	for _, c := range r.Cells {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(c.Row),
			strconv.Itoa(c.Column),
			c.Kind,
			formatFloat(c.Bounds.X),
			formatFloat(c.Bounds.Y),
			formatFloat(c.Bounds.W),
			formatFloat(c.Bounds.H),
			c.Text,
		})
	}
	return t
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func formatRect(r gridtable.Rect) string {
	return fmt.Sprintf("(%s,%s %sx%s)", formatFloat(r.X), formatFloat(r.Y), formatFloat(r.W), formatFloat(r.H))
}

func newLayoutCmd(opts *globalOptions) *cobra.Command {
	var font fontFlags

	cmd := &cobra.Command{
		Use:   "layout FILE",
		Short: "Compute a table layout and print the placements",
		Long: `Build the table described by FILE and print its row offsets, column offsets
and the bounds of every cell.

FILE is a layout file (.yaml, .yml, .toml) or a table script (.js).`,
		Example: `  gridtable layout scores.yaml
  gridtable layout scores.toml -o table
  gridtable layout build.js -o json --query '.cells | length'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			m, err := font.resolve(opts).measurer()
			if err != nil {
				return err
			}

			t, err := opts.loadTable(ctx, args[0], layoutfile.Env{Measurer: m})
			if err != nil {
				return err
			}
			defer t.Destroy()

			return opts.printer(cmd).Print(ctx, newLayoutReport(args[0], t))
		},
	}
	font.register(cmd)
	return cmd
}
