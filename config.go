package gridtable

// Config holds the construction-time settings of a Table.
type Config struct {
	// DebugMode enables tracing. When Tracer is nil a SlogTracer on the package logger is used.
	DebugMode bool

	// RowSeparation is the vertical gap added below every row.
	RowSeparation float32
	// ColumnSeparation is the horizontal gap added after every column.
	ColumnSeparation float32

	// RowStart is the origin of the first row anchor.
	RowStart Vec2
	// CellStart is the origin of the first cell within a row.
	CellStart Vec2

	// Title is an optional header node centered above the grid.
	Title Node

	// DrawGridLines makes Layout.GridLines return separator segments.
	DrawGridLines bool

	// Tracer receives trace events when DebugMode is set.
	Tracer Tracer
}

// DefaultConfig returns the default table settings.
func DefaultConfig() Config {
	return Config{
		RowSeparation:    10,
		ColumnSeparation: 10,
		RowStart:         Vec2{X: 5, Y: 5},
		CellStart:        Vec2{X: 5, Y: 5},
	}
}

// Option configures a Table.
type Option func(*Config)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}

// WithDebug enables or disables tracing.
func WithDebug(on bool) Option {
	return func(c *Config) { c.DebugMode = on }
}

// WithRowSeparation sets the vertical gap between rows.
func WithRowSeparation(px float32) Option {
	return func(c *Config) { c.RowSeparation = px }
}

// WithColumnSeparation sets the horizontal gap between columns.
func WithColumnSeparation(px float32) Option {
	return func(c *Config) { c.ColumnSeparation = px }
}

// WithRowStart sets the origin of the first row.
func WithRowStart(x, y float32) Option {
	return func(c *Config) { c.RowStart = Vec2{X: x, Y: y} }
}

// WithCellStart sets the origin of the first cell within each row.
func WithCellStart(x, y float32) Option {
	return func(c *Config) { c.CellStart = Vec2{X: x, Y: y} }
}

// WithTitle sets the header node. The table takes ownership of it.
func WithTitle(title Node) Option {
	return func(c *Config) { c.Title = title }
}

// WithGridLines enables grid line computation.
func WithGridLines(on bool) Option {
	return func(c *Config) { c.DrawGridLines = on }
}

// WithTracer installs a tracer and enables tracing.
func WithTracer(t Tracer) Option {
	return func(c *Config) {
		c.Tracer = t
		c.DebugMode = t != nil
	}
}
