package interp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	cerrors "github.com/rshaporenkov/gobasic/internal/errors"
)

// IO bundles the host streams built-ins read from and write to, so pkg/basic
// can redirect them per Engine instance instead of hard-coding os.Stdin/
// os.Stdout the way a throwaway script would.
type IO struct {
	Out io.Writer
	In  *bufio.Reader
}

// NewGlobalEnvironment builds the process-wide symbol table pre-populated
// with the preset constants and built-in functions spec.md §5/§6 requires.
// Callers install the SAME *Environment into every top-level run's root
// Context so assignments persist across successive invocations of a session.
func NewGlobalEnvironment(io *IO) *Environment {
	env := NewEnvironment()

	env.Set("none", numberNone.Copy())
	env.Set("True", numberTrue.Copy())
	env.Set("False", numberFalse.Copy())
	env.Set("math_pi", numberPi.Copy())

	register := func(name string, params []string, fn func(i *Interpreter, ctx *Context) Outcome) {
		env.Set(name, NewBuiltinFunction(name, params, fn))
	}

	register("print", []string{"value"}, builtinPrint(io))
	register("print_return", []string{"value"}, builtinPrintReturn)
	register("input", nil, builtinInput(io))
	register("input_int", nil, builtinInputInt(io))
	register("clear", nil, builtinClear(io))
	register("cls", nil, builtinClear(io))
	register("is_num", []string{"value"}, builtinIsNum)
	register("is_str", []string{"value"}, builtinIsStr)
	register("is_list", []string{"value"}, builtinIsList)
	register("is_func", []string{"value"}, builtinIsFunc)
	register("append", []string{"list", "value"}, builtinAppend)
	register("pop", []string{"list", "index"}, builtinPop)
	register("extend", []string{"listA", "listB"}, builtinExtend)

	return env
}

func builtinPrint(io *IO) func(*Interpreter, *Context) Outcome {
	return func(i *Interpreter, ctx *Context) Outcome {
		value, _ := ctx.SymbolTable.Get("value")
		fmt.Fprintln(io.Out, value.Render())
		return Ok(numberNone.Copy())
	}
}

// builtinPrintReturn returns the same String instance unchanged when the
// argument is already a String (SPEC_FULL.md §5), else wraps Render() in a
// fresh String — basic.py's execute_print_return checks `isinstance(value,
// String)` before falling back to `String(str(value))`.
func builtinPrintReturn(i *Interpreter, ctx *Context) Outcome {
	value, _ := ctx.SymbolTable.Get("value")
	if s, ok := value.(*String); ok {
		return Ok(s)
	}
	return Ok(NewString(value.Render()))
}

func builtinInput(io *IO) func(*Interpreter, *Context) Outcome {
	return func(i *Interpreter, ctx *Context) Outcome {
		line, _ := io.In.ReadString('\n')
		return Ok(NewString(strings.TrimRight(line, "\r\n")))
	}
}

func builtinInputInt(io *IO) func(*Interpreter, *Context) Outcome {
	return func(i *Interpreter, ctx *Context) Outcome {
		for {
			line, _ := io.In.ReadString('\n')
			text := strings.TrimRight(line, "\r\n")
			n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
			if err == nil {
				return Ok(NewInt(n))
			}
			fmt.Fprintf(io.Out, "'%s' must be an integer.\n", text)
		}
	}
}

func builtinClear(io *IO) func(*Interpreter, *Context) Outcome {
	return func(i *Interpreter, ctx *Context) Outcome {
		fmt.Fprint(io.Out, "\033[H\033[2J")
		return Ok(numberNone.Copy())
	}
}

func typePredicate(name string, pred func(Value) bool) func(*Interpreter, *Context) Outcome {
	return func(i *Interpreter, ctx *Context) Outcome {
		value, _ := ctx.SymbolTable.Get(name)
		return Ok(boolNumber(pred(value)))
	}
}

func builtinIsNum(i *Interpreter, ctx *Context) Outcome {
	return typePredicate("value", func(v Value) bool { _, ok := v.(*Number); return ok })(i, ctx)
}

func builtinIsStr(i *Interpreter, ctx *Context) Outcome {
	return typePredicate("value", func(v Value) bool { _, ok := v.(*String); return ok })(i, ctx)
}

func builtinIsList(i *Interpreter, ctx *Context) Outcome {
	return typePredicate("value", func(v Value) bool { _, ok := v.(*List); return ok })(i, ctx)
}

func builtinIsFunc(i *Interpreter, ctx *Context) Outcome {
	return typePredicate("value", func(v Value) bool { _, ok := v.(CallableValue); return ok })(i, ctx)
}

func builtinAppend(i *Interpreter, ctx *Context) Outcome {
	listVal, _ := ctx.SymbolTable.Get("list")
	value, _ := ctx.SymbolTable.Get("value")

	list, ok := listVal.(*List)
	if !ok {
		start, end := listVal.Span()
		return Fail(cerrors.NewRuntime(start, end, "First arg must be list", frameOf(ctx)))
	}
	list.Append(value)
	return Ok(numberNone.Copy())
}

func builtinPop(i *Interpreter, ctx *Context) Outcome {
	listVal, _ := ctx.SymbolTable.Get("list")
	indexVal, _ := ctx.SymbolTable.Get("index")

	list, ok := listVal.(*List)
	if !ok {
		start, end := listVal.Span()
		return Fail(cerrors.NewRuntime(start, end, "First arg must be list", frameOf(ctx)))
	}
	index, ok := indexVal.(*Number)
	if !ok {
		start, end := indexVal.Span()
		return Fail(cerrors.NewRuntime(start, end, "Second arg must be number", frameOf(ctx)))
	}

	v, ok := list.Pop(int(index.value))
	if !ok {
		start, end := indexVal.Span()
		return Fail(cerrors.NewRuntime(start, end,
			"Element at this index could not be removed from list because list index out of range",
			frameOf(ctx)))
	}
	return Ok(v)
}

func builtinExtend(i *Interpreter, ctx *Context) Outcome {
	aVal, _ := ctx.SymbolTable.Get("listA")
	bVal, _ := ctx.SymbolTable.Get("listB")

	a, ok := aVal.(*List)
	if !ok {
		start, end := aVal.Span()
		return Fail(cerrors.NewRuntime(start, end, "First arg must be list", frameOf(ctx)))
	}
	b, ok := bVal.(*List)
	if !ok {
		start, end := bVal.Span()
		return Fail(cerrors.NewRuntime(start, end, "Second arg must be list", frameOf(ctx)))
	}

	a.Extend(b)
	return Ok(numberNone.Copy())
}
