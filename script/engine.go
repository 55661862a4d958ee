// Package script builds tables from JavaScript with the goja runtime.
//
// Scripts see a global `table` plus node constructors:
//
//	table.addRow();
//	table.addCell(label("name"));
//	table.addCell(box(40, 8, "#3080ff"));
//	table.addCell(label("first"), 0); // into row 0
//	const n = table.getCell(0, 1); // null when absent
//	table.deleteRow(5);            // throws: row index 5 out of range [0,1)
package script

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/dop251/goja"

	"github.com/go-theft-auto/gridtable"
	"github.com/go-theft-auto/gridtable/layoutfile"
	"github.com/go-theft-auto/gridtable/scene"
)

// Config configures an Engine.
type Config struct {
	// Env supplies the host, text measurer and tracer for the table and its nodes.
	Env layoutfile.Env
	// TableOptions are applied when the table is created.
	TableOptions []gridtable.Option
	// Logger receives console output. Defaults to slog.Default().
	Logger *slog.Logger
}

// Engine runs scripts against one table.
type Engine struct {
	vm    *goja.Runtime
	env   layoutfile.Env
	table *gridtable.Table
	log   *slog.Logger

	// nodes caches the JS wrapper of every node handed to a script, so identity holds.
	nodes map[gridtable.Node]goja.Value
}

// New creates an engine with a fresh runtime and an empty table.
func New(cfg Config) *Engine {
	env := cfg.Env
	if env.Host == nil {
		env.Host = scene.NewHost()
	}
	if env.Measurer == nil {
		env.Measurer = scene.DefaultMeasurer
	}
	opts := slices.Clone(cfg.TableOptions)
	if env.Tracer != nil {
		opts = append(opts, gridtable.WithTracer(env.Tracer))
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	vm := goja.New()
	vm.SetFieldNameMapper(goja.TagFieldNameMapper("json", true))

	e := &Engine{
		vm:    vm,
		env:   env,
		table: gridtable.New(env.Host, opts...),
		log:   logger,
		nodes: make(map[gridtable.Node]goja.Value),
	}

	c := &consoleAPI{log: logger}
	c.register(vm)
	e.registerConstructors()
	e.registerTable()

	return e
}

// Table returns the table scripts operate on.
func (e *Engine) Table() *gridtable.Table { return e.table }

// RunString executes src. Cancelling ctx interrupts the script.
func (e *Engine) RunString(ctx context.Context, src string) error {
	return e.run(ctx, "", src)
}

// RunFile executes the script at path.
func (e *Engine) RunFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	return e.run(ctx, path, string(data))
}

func (e *Engine) run(ctx context.Context, name, src string) error {
	stop := context.AfterFunc(ctx, func() {
		e.vm.Interrupt(ctx.Err())
	})
	defer func() {
		stop()
		e.vm.ClearInterrupt()
	}()

	if name == "" {
		_, err := e.vm.RunString(src)
		return wrapError("script", err)
	}
	_, err := e.vm.RunScript(name, src)
	return wrapError(name, err)
}

func wrapError(name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", name, err)
}

// throw raises err as a JS Error carrying the Go error.
func (e *Engine) throw(err error) {
	panic(e.vm.NewGoError(err))
}
