package script

import (
	"github.com/dop251/goja"

	"github.com/go-theft-auto/gridtable"
	"github.com/go-theft-auto/gridtable/layoutfile"
)

// jsNode is the script-side view of a node. Its methods appear uncapitalized in JS.
type jsNode struct {
	node gridtable.Node
}

func (n *jsNode) Width() float32 { return n.node.Width() }

func (n *jsNode) Height() float32 { return n.node.Height() }

func (n *jsNode) Position() gridtable.Vec2 { return n.node.Position() }

func (n *jsNode) Kind() string {
	kind, _ := layoutfile.Describe(n.node)
	return kind
}

func (n *jsNode) Text() string {
	_, text := layoutfile.Describe(n.node)
	return text
}

func (e *Engine) wrap(n gridtable.Node) goja.Value {
	if v, ok := e.nodes[n]; ok {
		return v
	}
	v := e.vm.ToValue(&jsNode{node: n})
	e.nodes[n] = v
	return v
}

func (e *Engine) forget(nodes ...gridtable.Node) {
	for _, n := range nodes {
		delete(e.nodes, n)
	}
}

func (e *Engine) newNode(spec layoutfile.CellSpec) goja.Value {
	n, err := layoutfile.NewNode(spec, e.env)
	if err != nil {
		e.throw(err)
	}
	return e.wrap(n)
}

func (e *Engine) registerConstructors() {
	vm := e.vm

	vm.Set("box", func(call goja.FunctionCall) goja.Value {
		return e.newNode(layoutfile.CellSpec{
			Kind:   layoutfile.KindBox,
			Width:  e.floatArg(call, 0, "box", "width"),
			Height: e.floatArg(call, 1, "box", "height"),
			Fill:   optString(call.Argument(2)),
			Stroke: optString(call.Argument(3)),
		})
	})
	vm.Set("label", func(call goja.FunctionCall) goja.Value {
		return e.newNode(layoutfile.CellSpec{
			Kind:  layoutfile.KindLabel,
			Text:  optString(call.Argument(0)),
			Color: optString(call.Argument(1)),
		})
	})
	vm.Set("spacer", func(call goja.FunctionCall) goja.Value {
		return e.newNode(layoutfile.CellSpec{
			Kind:   layoutfile.KindSpacer,
			Width:  float32(call.Argument(0).ToFloat()),
			Height: float32(call.Argument(1).ToFloat()),
		})
	})
	// node({kind: "box", width: 10, ...}) builds any registered kind.
	vm.Set("node", func(call goja.FunctionCall) goja.Value {
		var spec layoutfile.CellSpec
		if err := vm.ExportTo(call.Argument(0), &spec); err != nil {
			panic(vm.NewTypeError("node: %v", err))
		}
		return e.newNode(spec)
	})
}

func (e *Engine) registerTable() {
	vm := e.vm
	t := e.table
	obj := vm.NewObject()

	obj.Set("addRow", func(goja.FunctionCall) goja.Value {
		t.AddRow()
		return goja.Undefined()
	})
	obj.Set("addRowAt", func(call goja.FunctionCall) goja.Value {
		e.check(t.AddRowAt(e.intArg(call, 0, "addRowAt", "index")))
		return goja.Undefined()
	})
	obj.Set("deleteRow", func(call goja.FunctionCall) goja.Value {
		i := e.intArg(call, 0, "deleteRow", "index")
		var cells []gridtable.Node
		if row, ok := t.Row(i); ok {
			cells = row.Cells()
		}
		e.check(t.DeleteRow(i))
		e.forget(cells...)
		return goja.Undefined()
	})
	// addCell(node, row = rowCount - 1)
	obj.Set("addCell", func(call goja.FunctionCall) goja.Value {
		n := e.nodeArg(call, 0, "addCell")
		if row := call.Argument(1); !goja.IsUndefined(row) && !goja.IsNull(row) {
			e.check(t.AddCellInRow(int(row.ToInteger()), n))
			return goja.Undefined()
		}
		e.check(t.AddCell(n))
		return goja.Undefined()
	})
	obj.Set("addCellInRow", func(call goja.FunctionCall) goja.Value {
		row := e.intArg(call, 0, "addCellInRow", "row")
		e.check(t.AddCellInRow(row, e.nodeArg(call, 1, "addCellInRow")))
		return goja.Undefined()
	})
	obj.Set("addCellAt", func(call goja.FunctionCall) goja.Value {
		n := e.nodeArg(call, 0, "addCellAt")
		row := e.intArg(call, 1, "addCellAt", "row")
		cell := e.intArg(call, 2, "addCellAt", "cell")
		e.check(t.AddCellAt(n, row, cell))
		return goja.Undefined()
	})
	obj.Set("deleteCell", func(call goja.FunctionCall) goja.Value {
		row := e.intArg(call, 0, "deleteCell", "row")
		cell := e.intArg(call, 1, "deleteCell", "cell")
		var n gridtable.Node
		if r, ok := t.Row(row); ok && cell >= 0 && cell < r.Len() {
			n = r.Cells()[cell]
		}
		e.check(t.DeleteCell(row, cell))
		e.forget(n)
		return goja.Undefined()
	})
	obj.Set("getCell", func(call goja.FunctionCall) goja.Value {
		n, ok := t.GetCell(e.intArg(call, 0, "getCell", "row"), e.intArg(call, 1, "getCell", "cell"))
		if !ok {
			return goja.Null()
		}
		return e.wrap(n)
	})
	obj.Set("clampCells", func(call goja.FunctionCall) goja.Value {
		t.ClampCells(e.floatArg(call, 0, "clampCells", "amount"))
		return goja.Undefined()
	})
	obj.Set("clampRows", func(call goja.FunctionCall) goja.Value {
		t.ClampRows(e.floatArg(call, 0, "clampRows", "amount"))
		return goja.Undefined()
	})
	obj.Set("layout", func(goja.FunctionCall) goja.Value {
		return vm.ToValue(t.Layout())
	})
	obj.Set("relayout", func(goja.FunctionCall) goja.Value {
		return vm.ToValue(t.Relayout())
	})
	obj.Set("rowCount", func(goja.FunctionCall) goja.Value {
		return vm.ToValue(t.RowCount())
	})
	obj.Set("maxCols", func(goja.FunctionCall) goja.Value {
		return vm.ToValue(t.MaxCols())
	})
	obj.Set("rowLength", func(call goja.FunctionCall) goja.Value {
		row, ok := t.Row(e.intArg(call, 0, "rowLength", "row"))
		if !ok {
			return goja.Null()
		}
		return vm.ToValue(row.Len())
	})

	vm.Set("table", obj)
}

// check throws err into the script when it is non-nil.
func (e *Engine) check(err error) {
	if err != nil {
		e.throw(err)
	}
}

func (e *Engine) intArg(call goja.FunctionCall, i int, fn, name string) int {
	v := call.Argument(i)
	if goja.IsUndefined(v) || goja.IsNull(v) {
		panic(e.vm.NewTypeError("%s: %s is required", fn, name))
	}
	return int(v.ToInteger())
}

func (e *Engine) floatArg(call goja.FunctionCall, i int, fn, name string) float32 {
	v := call.Argument(i)
	if goja.IsUndefined(v) || goja.IsNull(v) {
		panic(e.vm.NewTypeError("%s: %s is required", fn, name))
	}
	return float32(v.ToFloat())
}

func (e *Engine) nodeArg(call goja.FunctionCall, i int, fn string) gridtable.Node {
	n, ok := call.Argument(i).Export().(*jsNode)
	if !ok {
		panic(e.vm.NewTypeError("%s: argument %d is not a node", fn, i))
	}
	return n.node
}

func optString(v goja.Value) string {
	if goja.IsUndefined(v) || goja.IsNull(v) {
		return ""
	}
	return v.String()
}
