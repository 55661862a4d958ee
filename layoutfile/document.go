// Package layoutfile reads declarative table documents from YAML or TOML and builds
// tables from them.
//
// A document lists the table options and its rows of cells:
//
//	rowSeparation: 4
//	gridLines: true
//	title: {kind: label, text: Scores}
//	rows:
//	  - cells:
//	      - {kind: label, text: Alice}
//	      - {kind: box, width: 40, height: 8, fill: "#3080ff"}
//	  - cells: []
//
// The same document in TOML uses [[rows]] and [[rows.cells]] tables.
package layoutfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/go-theft-auto/gridtable"
)

// Format is a document encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// ErrUnsupportedFormat is returned for file extensions other than .yaml, .yml and .toml.
var ErrUnsupportedFormat = errors.New("unsupported layout format")

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Point is an x/y pair in a document.
type Point struct {
	X float32 `yaml:"x" toml:"x" json:"x"`
	Y float32 `yaml:"y" toml:"y" json:"y"`
}

// CellSpec describes one node. Which fields apply depends on Kind.
type CellSpec struct {
	Kind        string  `yaml:"kind" toml:"kind" json:"kind"`
	Width       float32 `yaml:"width,omitempty" toml:"width,omitempty" json:"width,omitempty"`
	Height      float32 `yaml:"height,omitempty" toml:"height,omitempty" json:"height,omitempty"`
	Text        string  `yaml:"text,omitempty" toml:"text,omitempty" json:"text,omitempty"`
	Color       string  `yaml:"color,omitempty" toml:"color,omitempty" json:"color,omitempty"`
	Scale       float32 `yaml:"scale,omitempty" toml:"scale,omitempty" json:"scale,omitempty"`
	Fill        string  `yaml:"fill,omitempty" toml:"fill,omitempty" json:"fill,omitempty"`
	Stroke      string  `yaml:"stroke,omitempty" toml:"stroke,omitempty" json:"stroke,omitempty"`
	StrokeWidth float32 `yaml:"strokeWidth,omitempty" toml:"strokeWidth,omitempty" json:"strokeWidth,omitempty"`
}

// RowSpec is one row of cells. An empty row is allowed.
type RowSpec struct {
	Cells []CellSpec `yaml:"cells" toml:"cells" json:"cells"`
}

// Document is a whole table description. Unset options keep gridtable defaults.
type Document struct {
	Title            *CellSpec `yaml:"title,omitempty" toml:"title,omitempty" json:"title,omitempty"`
	RowSeparation    *float32  `yaml:"rowSeparation,omitempty" toml:"rowSeparation,omitempty" json:"rowSeparation,omitempty"`
	ColumnSeparation *float32  `yaml:"columnSeparation,omitempty" toml:"columnSeparation,omitempty" json:"columnSeparation,omitempty"`
	RowStart         *Point    `yaml:"rowStart,omitempty" toml:"rowStart,omitempty" json:"rowStart,omitempty"`
	CellStart        *Point    `yaml:"cellStart,omitempty" toml:"cellStart,omitempty" json:"cellStart,omitempty"`
	GridLines        bool      `yaml:"gridLines,omitempty" toml:"gridLines,omitempty" json:"gridLines,omitempty"`
	Debug            bool      `yaml:"debug,omitempty" toml:"debug,omitempty" json:"debug,omitempty"`
	Rows             []RowSpec `yaml:"rows" toml:"rows" json:"rows"`
}

// Load reads and parses the document at path, choosing the format from its extension.
func Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a document. Unknown fields are errors in both formats.
func Parse(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	return &doc, nil
}

// Marshal encodes doc in the given format.
func Marshal(doc *Document, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatTOML:
		return toml.Marshal(doc)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
}

// Options converts the document settings to table options. The title is not included;
// Build creates it through the kind registry.
func (d *Document) Options() []gridtable.Option {
	var opts []gridtable.Option
	if d.RowSeparation != nil {
		opts = append(opts, gridtable.WithRowSeparation(*d.RowSeparation))
	}
	if d.ColumnSeparation != nil {
		opts = append(opts, gridtable.WithColumnSeparation(*d.ColumnSeparation))
	}
	if d.RowStart != nil {
		opts = append(opts, gridtable.WithRowStart(d.RowStart.X, d.RowStart.Y))
	}
	if d.CellStart != nil {
		opts = append(opts, gridtable.WithCellStart(d.CellStart.X, d.CellStart.Y))
	}
	if d.GridLines {
		opts = append(opts, gridtable.WithGridLines(true))
	}
	if d.Debug {
		opts = append(opts, gridtable.WithDebug(true))
	}
	return opts
}
