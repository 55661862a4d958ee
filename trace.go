package gridtable

import (
	"log/slog"
	"os"
)

// logLevel controls the level of the package logger.
// Default is LevelInfo, which suppresses the Debug records emitted by tracing.
// SetVerbose(true) sets it to LevelDebug.
var logLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging for the package logger.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// logger is the package logger used by the default tracer.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// EventKind identifies the operation a trace event describes.
type EventKind uint8

const (
	EventAddRow EventKind = iota
	EventAddRowAt
	EventDeleteRow
	EventAddCell
	EventAddCellAt
	EventDeleteCell
	EventGetCell
	EventLayout
	EventClamp
)

var eventNames = [...]string{
	EventAddRow:     "addRow",
	EventAddRowAt:   "addRowAt",
	EventDeleteRow:  "deleteRow",
	EventAddCell:    "addCell",
	EventAddCellAt:  "addCellAt",
	EventDeleteCell: "deleteCell",
	EventGetCell:    "getCell",
	EventLayout:     "layout",
	EventClamp:      "clamp",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return "unknown"
}

// Event is a single trace record. Row and Cell are -1 when they do not apply.
type Event struct {
	Kind EventKind
	Row  int
	Cell int

	// Rows and Cols describe the grid after the operation.
	Rows int
	Cols int

	Err error
}

// Tracer receives trace events. Tracers are observational only and must not call back
// into the table.
type Tracer interface {
	Trace(ev Event)
}

// TracerFunc adapts a function to the Tracer interface.
type TracerFunc func(ev Event)

// Trace calls f.
func (f TracerFunc) Trace(ev Event) { f(ev) }

type nopTracer struct{}

func (nopTracer) Trace(Event) {}

// SlogTracer writes events to a slog.Logger at debug level.
type SlogTracer struct {
	Logger *slog.Logger
}

// NewSlogTracer returns a tracer writing to l, or to the package logger when l is nil.
func NewSlogTracer(l *slog.Logger) *SlogTracer {
	if l == nil {
		l = logger
	}
	return &SlogTracer{Logger: l}
}

// Trace logs ev.
func (s *SlogTracer) Trace(ev Event) {
	attrs := []any{
		slog.String("op", ev.Kind.String()),
		slog.Int("rows", ev.Rows),
		slog.Int("cols", ev.Cols),
	}
	if ev.Row >= 0 {
		attrs = append(attrs, slog.Int("row", ev.Row))
	}
	if ev.Cell >= 0 {
		attrs = append(attrs, slog.Int("cell", ev.Cell))
	}
	if ev.Err != nil {
		attrs = append(attrs, slog.Any("err", ev.Err))
	}
	s.Logger.Debug("gridtable", attrs...)
}
