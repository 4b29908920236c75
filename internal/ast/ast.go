// Package ast defines the syntax tree produced by internal/parser and walked
// by internal/interp. Every node carries its source span (spec.md §3
// "Invariant": a child node's span lies within its parent's), structured the
// way go-dws's internal/ast groups node variants as small structs
// implementing a common Node interface rather than one tagged union.
package ast

import "github.com/rshaporenkov/gobasic/internal/token"

// Node is implemented by every AST variant.
type Node interface {
	// Span returns the node's start (inclusive) and end (exclusive) position.
	Span() (start, end token.Position)
}

// NodeBase factors the span bookkeeping every node variant embeds. It is
// exported (unlike a lowercase mixin) so internal/parser can populate it
// directly in a struct literal without an accessor method per node kind.
type NodeBase struct {
	Start, End token.Position
}

func (b NodeBase) Span() (token.Position, token.Position) { return b.Start, b.End }

// NewBase builds the embeddable span mixin.
func NewBase(start, end token.Position) NodeBase { return NodeBase{Start: start, End: end} }

// Number is an integer or float literal.
type Number struct {
	NodeBase
	Token token.Token
}

// String is a string literal.
type String struct {
	NodeBase
	Token token.Token
}

// List is a `[a, b, c]` literal.
type List struct {
	NodeBase
	Elements []Node
}

// Block is a `statements` production: a sequence of statements executed in
// order, evaluating to its last statement's value (spec.md §4.2). Distinct
// from List — a List literal constructs a List Value, while a Block is pure
// sequencing used as an if/for/while/func body or the top-level program.
type Block struct {
	NodeBase
	Statements []Node
}

// VarAccess reads a variable by name.
type VarAccess struct {
	NodeBase
	Name token.Token
}

// VarAssign evaluates Value and stores it under Name in the current frame.
type VarAssign struct {
	NodeBase
	Name  token.Token
	Value Node
}

// BinOp is a binary expression; Op may be an operator token or a KEYWORD
// token matching "and"/"or".
type BinOp struct {
	NodeBase
	Left  Node
	Op    token.Token
	Right Node
}

// UnaryOp is a prefix expression: unary `-`, `+`, or `not`.
type UnaryOp struct {
	NodeBase
	Op      token.Token
	Operand Node
}

// IfCase is one `if`/`elif` arm: Condition guards Body; BlockBody marks
// whether Body is a full statements block (evaluates to none) or an inline
// expression (evaluates to its value).
type IfCase struct {
	Condition Node
	Body      Node
	BlockBody bool
}

// ElseCase is the optional trailing `else` arm.
type ElseCase struct {
	Body      Node
	BlockBody bool
}

// If is an if/elif.../else? expression.
type If struct {
	NodeBase
	Cases []IfCase
	Else  *ElseCase
}

// For is a counted loop: `for Var = Start to End (step Step)? then Body`.
type For struct {
	NodeBase
	Var       token.Token
	Start     Node
	End       Node
	Step      Node // nil means default step of 1
	Body      Node
	BlockBody bool
}

// While is a conditional loop: `while Condition then Body`.
type While struct {
	NodeBase
	Condition Node
	Body      Node
	BlockBody bool
}

// FuncDef defines a function, named or anonymous, block-bodied or
// auto-returning.
type FuncDef struct {
	NodeBase
	Name       *token.Token // nil for an anonymous function literal
	ParamNames []token.Token
	Body       Node
	AutoReturn bool
}

// Call invokes Callee with Args, left-to-right.
type Call struct {
	NodeBase
	Callee Node
	Args   []Node
}

// Return is `return expr?`; Value is nil for a bare `return`.
type Return struct {
	NodeBase
	Value Node // nil means "return none"
}

// Continue is `continue`.
type Continue struct {
	NodeBase
}

// Break is `break`.
type Break struct {
	NodeBase
}
