package layoutfile

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/go-theft-auto/gridtable"
	"github.com/go-theft-auto/gridtable/scene"
)

// Env carries what node factories need besides the cell spec.
type Env struct {
	// Host creates the table's containers. Defaults to scene.NewHost().
	Host gridtable.Host
	// Measurer sizes label text. Defaults to scene.DefaultMeasurer.
	Measurer scene.TextMeasurer
	// Tracer receives table events when set.
	Tracer gridtable.Tracer
}

// KindFunc creates the node for a cell spec.
type KindFunc func(spec CellSpec, env Env) (gridtable.Node, error)

// Built-in kind names.
const (
	KindBox    = "box"
	KindLabel  = "label"
	KindSpacer = "spacer"
)

// ErrUnknownKind is returned when a cell names a kind that is not registered.
var ErrUnknownKind = errors.New("unknown cell kind")

var (
	kindsMu sync.RWMutex
	kinds   = map[string]KindFunc{
		KindBox:    newBox,
		KindLabel:  newLabel,
		KindSpacer: newSpacer,
	}
)

// RegisterKind registers a node factory under name, replacing any previous one.
//
// Example:
//
//	layoutfile.RegisterKind("badge", func(spec layoutfile.CellSpec, env layoutfile.Env) (gridtable.Node, error) {
//	    return fynehost.Wrap(widget.NewLabel(spec.Text)), nil
//	})
func RegisterKind(name string, fn KindFunc) {
	kindsMu.Lock()
	defer kindsMu.Unlock()
	kinds[name] = fn
}

// UnregisterKind removes a kind from the registry.
func UnregisterKind(name string) {
	kindsMu.Lock()
	defer kindsMu.Unlock()
	delete(kinds, name)
}

// LookupKind returns the factory registered under name.
func LookupKind(name string) (KindFunc, bool) {
	kindsMu.RLock()
	defer kindsMu.RUnlock()
	fn, ok := kinds[name]
	return fn, ok
}

// Kinds returns the registered kind names, sorted.
func Kinds() []string {
	kindsMu.RLock()
	defer kindsMu.RUnlock()
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// NewNode creates the node for spec with the registered factory for spec.Kind.
func NewNode(spec CellSpec, env Env) (gridtable.Node, error) {
	fn, ok := LookupKind(spec.Kind)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, spec.Kind)
	}
	return fn(spec, env)
}

func newBox(spec CellSpec, _ Env) (gridtable.Node, error) {
	if spec.Width < 0 || spec.Height < 0 {
		return nil, fmt.Errorf("box size %vx%v must not be negative", spec.Width, spec.Height)
	}
	fill, err := scene.ParseColor(spec.Fill, scene.ColorWhite)
	if err != nil {
		return nil, err
	}
	stroke, err := scene.ParseColor(spec.Stroke, scene.ColorTransparent)
	if err != nil {
		return nil, err
	}
	b := scene.NewBox(spec.Width, spec.Height, fill)
	b.Stroke = stroke
	if spec.StrokeWidth > 0 {
		b.StrokeWidth = spec.StrokeWidth
	}
	return b, nil
}

func newLabel(spec CellSpec, env Env) (gridtable.Node, error) {
	c, err := scene.ParseColor(spec.Color, scene.ColorWhite)
	if err != nil {
		return nil, err
	}
	l := scene.NewLabel(spec.Text, c).WithMeasurer(env.Measurer)
	if spec.Scale > 0 {
		l.Scale = spec.Scale
	}
	return l, nil
}

// newSpacer is an invisible box. A zero-width spacer holds a column open without
// widening it.
func newSpacer(spec CellSpec, _ Env) (gridtable.Node, error) {
	return scene.NewBox(max(spec.Width, 0), max(spec.Height, 0), scene.ColorTransparent), nil
}

// KindTable names a nested table when describing nodes.
const KindTable = "table"

// Describe names the kind of a built node, plus its text for labels. A box with no
// fill and no outline reads back as a spacer. Nodes from other factories are named by
// their Go type.
func Describe(n gridtable.Node) (kind, text string) {
	switch v := n.(type) {
	case *scene.Label:
		return KindLabel, v.Text
	case *scene.Box:
		if v.Fill == scene.ColorTransparent && v.Stroke == scene.ColorTransparent {
			return KindSpacer, ""
		}
		return KindBox, ""
	case *gridtable.Table:
		return KindTable, ""
	default:
		return fmt.Sprintf("%T", n), ""
	}
}
