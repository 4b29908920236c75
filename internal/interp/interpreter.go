// Package interp implements the tree-walking evaluator: the Value model,
// Environment (lexical symbol table), Context (dynamic call frame), the
// Outcome propagating-evaluation sum, and the Interpreter's node dispatch
// (spec.md §4.4), grounded on go-dws's internal/interp package split into
// per-concern files (value.go, environment.go, interpreter.go, ...).
package interp

import (
	"fmt"

	"github.com/rshaporenkov/gobasic/internal/ast"
	cerrors "github.com/rshaporenkov/gobasic/internal/errors"
	"github.com/rshaporenkov/gobasic/internal/token"
)

// Interpreter walks an AST against a dynamic Context chain. Its only mutable
// state is the current call depth, tracked so a runaway recursive program
// fails with a diagnosable RTError instead of crashing the host process —
// every other thread's state lives in the Context passed to visit, so one
// Interpreter can be reused across Run calls within a session, matching
// spec.md §5's "global symbol table is process-wide".
type Interpreter struct {
	maxCallDepth int
	callDepth    int
}

// DefaultMaxCallDepth bounds recursion depth absent an explicit override.
const DefaultMaxCallDepth = 1000

// New creates an Interpreter with the default call-depth limit.
func New() *Interpreter { return &Interpreter{maxCallDepth: DefaultMaxCallDepth} }

// NewWithMaxCallDepth creates an Interpreter with a custom recursion limit.
func NewWithMaxCallDepth(max int) *Interpreter { return &Interpreter{maxCallDepth: max} }

// Visit evaluates the root of a parsed program against ctx. It is the single
// exported entry point `pkg/basic` drives.
func (i *Interpreter) Visit(node ast.Node, ctx *Context) Outcome {
	return i.visit(node, ctx)
}

// visit dispatches on the node's concrete type, mirroring basic.py's
// `visit_<ClassName>` naming via a Go type switch instead of reflection-based
// method lookup (spec.md §9 "Dynamic dispatch on value kind" applies equally
// here: an exhaustive match gives compile-time coverage).
func (i *Interpreter) visit(node ast.Node, ctx *Context) Outcome {
	switch n := node.(type) {
	case *ast.Number:
		return i.visitNumber(n, ctx)
	case *ast.String:
		return i.visitString(n, ctx)
	case *ast.List:
		return i.visitList(n, ctx)
	case *ast.Block:
		return i.visitBlock(n, ctx)
	case *ast.VarAccess:
		return i.visitVarAccess(n, ctx)
	case *ast.VarAssign:
		return i.visitVarAssign(n, ctx)
	case *ast.BinOp:
		return i.visitBinOp(n, ctx)
	case *ast.UnaryOp:
		return i.visitUnaryOp(n, ctx)
	case *ast.If:
		return i.visitIf(n, ctx)
	case *ast.For:
		return i.visitFor(n, ctx)
	case *ast.While:
		return i.visitWhile(n, ctx)
	case *ast.FuncDef:
		return i.visitFuncDef(n, ctx)
	case *ast.Call:
		return i.visitCall(n, ctx)
	case *ast.Return:
		return i.visitReturn(n, ctx)
	case *ast.Continue:
		return ContinueSignal()
	case *ast.Break:
		return BreakSignal()
	default:
		panic(fmt.Sprintf("interp: no visit method for node type %T", node))
	}
}

func (i *Interpreter) visitNumber(n *ast.Number, ctx *Context) Outcome {
	var v *Number
	if n.Token.Type == token.FLOAT {
		f, _ := parseFloat(n.Token.Literal)
		v = NewFloat(f)
	} else {
		iv, _ := parseInt(n.Token.Literal)
		v = NewInt(iv)
	}
	start, end := n.Span()
	v.SetSpan(start, end)
	v.SetContext(ctx)
	return Ok(v)
}

func (i *Interpreter) visitString(n *ast.String, ctx *Context) Outcome {
	v := NewString(n.Token.Literal)
	start, end := n.Span()
	v.SetSpan(start, end)
	v.SetContext(ctx)
	return Ok(v)
}

func (i *Interpreter) visitList(n *ast.List, ctx *Context) Outcome {
	elements := make([]Value, 0, len(n.Elements))
	for _, elemNode := range n.Elements {
		result := i.visit(elemNode, ctx)
		if result.ShouldPropagate() {
			return result
		}
		elements = append(elements, result.Value)
	}
	v := NewList(elements)
	start, end := n.Span()
	v.SetSpan(start, end)
	v.SetContext(ctx)
	return Ok(v)
}

// visitBlock executes a statements sequence in order, evaluating to the
// last statement's value. Any propagating outcome (error, return, continue,
// break) from an earlier statement stops the block immediately.
func (i *Interpreter) visitBlock(n *ast.Block, ctx *Context) Outcome {
	last := Ok(numberNone.Copy())
	for _, stmt := range n.Statements {
		result := i.visit(stmt, ctx)
		if result.ShouldPropagate() {
			return result
		}
		last = result
	}
	return last
}

// visitVarAccess looks up the identifier through the lexical SymbolTable
// chain, never the dynamic Context chain (spec.md §9 "Two parent chains").
// On a hit, the returned Value is a shallow copy re-stamped with this
// access's span/context (spec.md "Ownership").
func (i *Interpreter) visitVarAccess(n *ast.VarAccess, ctx *Context) Outcome {
	val, ok := ctx.SymbolTable.Get(n.Name.Literal)
	if !ok {
		start, end := n.Span()
		return Fail(cerrors.NewRuntime(start, end,
			fmt.Sprintf("'%s' is not defined", n.Name.Literal), frameOf(ctx)))
	}

	start, end := n.Span()
	cp := val.Copy()
	cp.SetSpan(start, end)
	cp.SetContext(ctx)
	return Ok(cp)
}

// visitVarAssign always writes to ctx's own frame; spec.md is explicit that
// `var` has no shadow/outer-write distinction.
func (i *Interpreter) visitVarAssign(n *ast.VarAssign, ctx *Context) Outcome {
	result := i.visit(n.Value, ctx)
	if result.ShouldPropagate() {
		return result
	}
	ctx.SymbolTable.Set(n.Name.Literal, result.Value)
	return Ok(result.Value)
}

func (i *Interpreter) visitUnaryOp(n *ast.UnaryOp, ctx *Context) Outcome {
	result := i.visit(n.Operand, ctx)
	if result.ShouldPropagate() {
		return result
	}

	start, end := n.Span()

	switch {
	case n.Op.Type == token.MINUS:
		num, ok := result.Value.(*Number)
		if !ok {
			return Fail(cerrors.NewRuntime(start, end, "Illegal operation", frameOf(ctx)))
		}
		return Ok(stampSpan(num.Negated(), start, end))
	case n.Op.Matches(token.KEYWORD, "not"):
		num, ok := result.Value.(*Number)
		if !ok {
			return Fail(cerrors.NewRuntime(start, end, "Illegal operation", frameOf(ctx)))
		}
		return Ok(stampSpan(num.Notted(), start, end))
	default:
		return Ok(stampSpan(result.Value, start, end))
	}
}

func stampSpan(v Value, start, end token.Position) Value {
	v.SetSpan(start, end)
	return v
}

func (i *Interpreter) visitBinOp(n *ast.BinOp, ctx *Context) Outcome {
	left := i.visit(n.Left, ctx)
	if left.ShouldPropagate() {
		return left
	}
	right := i.visit(n.Right, ctx)
	if right.ShouldPropagate() {
		return right
	}

	start, end := n.Span()
	result, err := applyBinOp(n.Op, left.Value, right.Value)
	if err != nil {
		return Fail(err)
	}
	return Ok(stampSpan(result, start, end))
}

// applyBinOp is an exhaustive match over operator tokens — the single-pass
// replacement for basic.py's non-early-returning if/elif chain flagged in
// spec.md §9.
func applyBinOp(op token.Token, left, right Value) (Value, *cerrors.Error) {
	switch {
	case op.Type == token.PLUS:
		return dispatchAdd(left, right)
	case op.Type == token.MINUS:
		return dispatchSub(left, right)
	case op.Type == token.MUL:
		return dispatchMul(left, right)
	case op.Type == token.DIV:
		return dispatchDiv(left, right)
	case op.Type == token.POW:
		ln, ok := left.(*Number)
		if !ok {
			return nil, illegalOperation(left, right)
		}
		return ln.PoweredBy(right)
	case op.Type == token.EE:
		ln, ok := left.(*Number)
		if !ok {
			return nil, illegalOperation(left, right)
		}
		return ln.ComparisonEQ(right)
	case op.Type == token.NE:
		ln, ok := left.(*Number)
		if !ok {
			return nil, illegalOperation(left, right)
		}
		return ln.ComparisonNE(right)
	case op.Type == token.LT:
		ln, ok := left.(*Number)
		if !ok {
			return nil, illegalOperation(left, right)
		}
		return ln.ComparisonLT(right)
	case op.Type == token.GT:
		ln, ok := left.(*Number)
		if !ok {
			return nil, illegalOperation(left, right)
		}
		return ln.ComparisonGT(right)
	case op.Type == token.LTE:
		ln, ok := left.(*Number)
		if !ok {
			return nil, illegalOperation(left, right)
		}
		return ln.ComparisonLTE(right)
	case op.Type == token.GTE:
		ln, ok := left.(*Number)
		if !ok {
			return nil, illegalOperation(left, right)
		}
		return ln.ComparisonGTE(right)
	case op.Matches(token.KEYWORD, "and"):
		ln, ok := left.(*Number)
		if !ok {
			return nil, illegalOperation(left, right)
		}
		return ln.AndedBy(right)
	case op.Matches(token.KEYWORD, "or"):
		ln, ok := left.(*Number)
		if !ok {
			return nil, illegalOperation(left, right)
		}
		return ln.OredBy(right)
	default:
		return nil, illegalOperation(left, right)
	}
}

func dispatchAdd(left, right Value) (Value, *cerrors.Error) {
	switch l := left.(type) {
	case *Number:
		return l.AddedTo(right)
	case *String:
		return l.AddedTo(right)
	case *List:
		return l.AddedTo(right)
	default:
		return nil, illegalOperation(left, right)
	}
}

func dispatchSub(left, right Value) (Value, *cerrors.Error) {
	switch l := left.(type) {
	case *Number:
		return l.SubbedBy(right)
	case *List:
		return l.SubbedBy(right)
	default:
		return nil, illegalOperation(left, right)
	}
}

func dispatchMul(left, right Value) (Value, *cerrors.Error) {
	switch l := left.(type) {
	case *Number:
		return l.MultedBy(right)
	case *String:
		return l.MultedBy(right)
	case *List:
		return l.MultedBy(right)
	default:
		return nil, illegalOperation(left, right)
	}
}

func dispatchDiv(left, right Value) (Value, *cerrors.Error) {
	switch l := left.(type) {
	case *Number:
		start, _ := left.Span()
		_, rEnd := right.Span()
		return l.DivedBy(right, start, rEnd)
	case *List:
		return l.DivedBy(right)
	default:
		return nil, illegalOperation(left, right)
	}
}

func (i *Interpreter) visitIf(n *ast.If, ctx *Context) Outcome {
	for _, c := range n.Cases {
		cond := i.visit(c.Condition, ctx)
		if cond.ShouldPropagate() {
			return cond
		}
		if cond.Value.IsTrue() {
			body := i.visit(c.Body, ctx)
			if body.ShouldPropagate() {
				return body
			}
			if c.BlockBody {
				return Ok(numberNone.Copy())
			}
			return Ok(body.Value)
		}
	}

	if n.Else != nil {
		body := i.visit(n.Else.Body, ctx)
		if body.ShouldPropagate() {
			return body
		}
		if n.Else.BlockBody {
			return Ok(numberNone.Copy())
		}
		return Ok(body.Value)
	}

	return Ok(numberNone.Copy())
}

func (i *Interpreter) visitFor(n *ast.For, ctx *Context) Outcome {
	startResult := i.visit(n.Start, ctx)
	if startResult.ShouldPropagate() {
		return startResult
	}
	startNum, ok := startResult.Value.(*Number)
	if !ok {
		s, e := n.Start.Span()
		return Fail(cerrors.NewRuntime(s, e, "Illegal operation", frameOf(ctx)))
	}

	endResult := i.visit(n.End, ctx)
	if endResult.ShouldPropagate() {
		return endResult
	}
	endNum, ok := endResult.Value.(*Number)
	if !ok {
		s, e := n.End.Span()
		return Fail(cerrors.NewRuntime(s, e, "Illegal operation", frameOf(ctx)))
	}

	step := 1.0
	stepIsInt := true
	if n.Step != nil {
		stepResult := i.visit(n.Step, ctx)
		if stepResult.ShouldPropagate() {
			return stepResult
		}
		stepNum, ok := stepResult.Value.(*Number)
		if !ok {
			s, e := n.Step.Span()
			return Fail(cerrors.NewRuntime(s, e, "Illegal operation", frameOf(ctx)))
		}
		step = stepNum.value
		stepIsInt = stepNum.isInt
	}

	loopVarIsInt := startNum.isInt && stepIsInt

	var elements []Value
	cur := startNum.value

	cond := func() bool {
		if step >= 0 {
			return cur < endNum.value
		}
		return cur > endNum.value
	}

	for cond() {
		if loopVarIsInt {
			ctx.SymbolTable.Set(n.Var.Literal, NewInt(int64(cur)))
		} else {
			ctx.SymbolTable.Set(n.Var.Literal, NewFloat(cur))
		}
		cur += step

		body := i.visit(n.Body, ctx)
		if body.Err != nil {
			return body
		}
		if body.LoopBreak {
			break
		}
		if body.LoopContinue {
			continue
		}
		if body.FuncReturn != nil {
			return body
		}
		if !n.BlockBody {
			elements = append(elements, body.Value)
		}
	}

	if n.BlockBody {
		return Ok(numberNone.Copy())
	}
	return Ok(NewList(elements))
}

func (i *Interpreter) visitWhile(n *ast.While, ctx *Context) Outcome {
	var elements []Value

	for {
		cond := i.visit(n.Condition, ctx)
		if cond.ShouldPropagate() {
			return cond
		}
		if !cond.Value.IsTrue() {
			break
		}

		body := i.visit(n.Body, ctx)
		if body.Err != nil {
			return body
		}
		if body.LoopBreak {
			break
		}
		if body.LoopContinue {
			continue
		}
		if body.FuncReturn != nil {
			return body
		}
		if !n.BlockBody {
			elements = append(elements, body.Value)
		}
	}

	if n.BlockBody {
		return Ok(numberNone.Copy())
	}
	return Ok(NewList(elements))
}

func (i *Interpreter) visitFuncDef(n *ast.FuncDef, ctx *Context) Outcome {
	name := ""
	if n.Name != nil {
		name = n.Name.Literal
	}
	paramNames := make([]string, len(n.ParamNames))
	for idx, p := range n.ParamNames {
		paramNames[idx] = p.Literal
	}

	fn := NewFunction(name, paramNames, n.Body, n.AutoReturn, ctx)
	start, end := n.Span()
	fn.SetSpan(start, end)
	fn.SetContext(ctx)

	if n.Name != nil {
		ctx.SymbolTable.Set(n.Name.Literal, fn)
	}

	return Ok(fn)
}

func (i *Interpreter) visitCall(n *ast.Call, ctx *Context) Outcome {
	calleeResult := i.visit(n.Callee, ctx)
	if calleeResult.ShouldPropagate() {
		return calleeResult
	}

	start, end := n.Span()
	callee := calleeResult.Value.Copy()
	callee.SetSpan(start, end)
	callee.SetContext(ctx)

	callable, ok := callee.(CallableValue)
	if !ok {
		return Fail(cerrors.NewRuntime(start, end, "Illegal operation", frameOf(ctx)))
	}

	args := make([]Value, 0, len(n.Args))
	for _, argNode := range n.Args {
		argResult := i.visit(argNode, ctx)
		if argResult.ShouldPropagate() {
			return argResult
		}
		args = append(args, argResult.Value)
	}

	if i.maxCallDepth > 0 && i.callDepth >= i.maxCallDepth {
		return Fail(cerrors.NewRuntime(start, end, "Maximum recursion depth exceeded", frameOf(ctx)))
	}
	i.callDepth++
	result := callable.Execute(i, args, [2]token.Position{start, end})
	i.callDepth--
	return result
}

func (i *Interpreter) visitReturn(n *ast.Return, ctx *Context) Outcome {
	if n.Value == nil {
		return ReturnSignal(numberNone.Copy())
	}
	result := i.visit(n.Value, ctx)
	if result.ShouldPropagate() {
		return result
	}
	return ReturnSignal(result.Value)
}
