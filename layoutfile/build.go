package layoutfile

import (
	"fmt"

	"github.com/go-theft-auto/gridtable"
	"github.com/go-theft-auto/gridtable/scene"
)

// Build creates a table from doc. Nodes come from the kind registry. On error the partly
// built table is destroyed.
func Build(doc *Document, env Env) (*gridtable.Table, error) {
	if env.Host == nil {
		env.Host = scene.NewHost()
	}
	if env.Measurer == nil {
		env.Measurer = scene.DefaultMeasurer
	}

	opts := doc.Options()
	if env.Tracer != nil {
		opts = append(opts, gridtable.WithTracer(env.Tracer))
	}
	if doc.Title != nil {
		title, err := NewNode(*doc.Title, env)
		if err != nil {
			return nil, fmt.Errorf("title: %w", err)
		}
		opts = append(opts, gridtable.WithTitle(title))
	}

	t := gridtable.New(env.Host, opts...)
	for r, row := range doc.Rows {
		t.AddRow()
		for c, spec := range row.Cells {
			n, err := NewNode(spec, env)
			if err == nil {
				err = t.AddCell(n)
			}
			if err != nil {
				t.Destroy()
				return nil, fmt.Errorf("row %d cell %d: %w", r, c, err)
			}
		}
	}
	return t, nil
}

// LoadTable loads the document at path and builds it.
func LoadTable(path string, env Env) (*gridtable.Table, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}
	return Build(doc, env)
}
