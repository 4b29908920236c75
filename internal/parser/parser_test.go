package parser

import (
	"testing"

	"github.com/rshaporenkov/gobasic/internal/ast"
	"github.com/rshaporenkov/gobasic/internal/lexer"
)

func parseSource(t *testing.T, src string) ast.Node {
	t.Helper()
	tokens, lexErr := lexer.New("<test>", src).Tokenize()
	if lexErr != nil {
		t.Fatalf("lex error: %v", lexErr)
	}
	node, parseErr := Parse(tokens)
	if parseErr != nil {
		t.Fatalf("parse error: %v", parseErr)
	}
	return node
}

func singleStatement(t *testing.T, src string) ast.Node {
	t.Helper()
	node := parseSource(t, src)
	block, ok := node.(*ast.Block)
	if !ok {
		t.Fatalf("expected *ast.Block, got %T", node)
	}
	if len(block.Statements) != 1 {
		t.Fatalf("expected exactly 1 statement, got %d", len(block.Statements))
	}
	return block.Statements[0]
}

func TestParseNumberLiteral(t *testing.T) {
	stmt := singleStatement(t, "42")
	num, ok := stmt.(*ast.Number)
	if !ok {
		t.Fatalf("expected *ast.Number, got %T", stmt)
	}
	if num.Token.Literal != "42" {
		t.Fatalf("expected literal 42, got %q", num.Token.Literal)
	}
}

func TestParseBinOpPrecedence(t *testing.T) {
	// 1 + 2 * 3 should parse as 1 + (2 * 3): BinOp(+, 1, BinOp(*, 2, 3))
	stmt := singleStatement(t, "1 + 2 * 3")
	bin, ok := stmt.(*ast.BinOp)
	if !ok {
		t.Fatalf("expected *ast.BinOp, got %T", stmt)
	}
	if bin.Op.Type.String() != "PLUS" {
		t.Fatalf("expected top-level op PLUS, got %s", bin.Op.Type)
	}
	if _, ok := bin.Right.(*ast.BinOp); !ok {
		t.Fatalf("expected right side to be a nested BinOp, got %T", bin.Right)
	}
}

func TestParsePowerRightAssociativeOverUnary(t *testing.T) {
	// -2 ^ 3 parses as -(2 ^ 3), per spec.md's asymmetric precedence rule.
	stmt := singleStatement(t, "-2 ^ 3")
	unary, ok := stmt.(*ast.UnaryOp)
	if !ok {
		t.Fatalf("expected top-level *ast.UnaryOp, got %T", stmt)
	}
	if _, ok := unary.Operand.(*ast.BinOp); !ok {
		t.Fatalf("expected unary operand to be BinOp(^), got %T", unary.Operand)
	}
}

func TestParseVarAssign(t *testing.T) {
	stmt := singleStatement(t, "var x = 5")
	assign, ok := stmt.(*ast.VarAssign)
	if !ok {
		t.Fatalf("expected *ast.VarAssign, got %T", stmt)
	}
	if assign.Name.Literal != "x" {
		t.Fatalf("expected name x, got %q", assign.Name.Literal)
	}
}

func TestParseListLiteral(t *testing.T) {
	stmt := singleStatement(t, "[1, 2, 3]")
	list, ok := stmt.(*ast.List)
	if !ok {
		t.Fatalf("expected *ast.List, got %T", stmt)
	}
	if len(list.Elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(list.Elements))
	}
}

func TestParseInlineIfElse(t *testing.T) {
	stmt := singleStatement(t, "if 1 then 2 else 3")
	ifNode, ok := stmt.(*ast.If)
	if !ok {
		t.Fatalf("expected *ast.If, got %T", stmt)
	}
	if len(ifNode.Cases) != 1 {
		t.Fatalf("expected 1 case, got %d", len(ifNode.Cases))
	}
	if ifNode.Cases[0].BlockBody {
		t.Fatal("expected inline (non-block) body")
	}
	if ifNode.Else == nil {
		t.Fatal("expected an else case")
	}
}

func TestParseElifChainMerges(t *testing.T) {
	stmt := singleStatement(t, "if 1 then 2 elif 3 then 4 else 5")
	ifNode, ok := stmt.(*ast.If)
	if !ok {
		t.Fatalf("expected *ast.If, got %T", stmt)
	}
	if len(ifNode.Cases) != 2 {
		t.Fatalf("expected 2 merged cases (if + elif), got %d", len(ifNode.Cases))
	}
	if ifNode.Else == nil {
		t.Fatal("expected the trailing else to survive the elif merge")
	}
}

func TestParseBlockIfRequiresEnd(t *testing.T) {
	tokens, lexErr := lexer.New("<test>", "if 1 then\n2\n").Tokenize()
	if lexErr != nil {
		t.Fatalf("lex error: %v", lexErr)
	}
	if _, err := Parse(tokens); err == nil {
		t.Fatal("expected a parse error for a block body missing 'end'")
	}
}

func TestParseForLoopDefaultStep(t *testing.T) {
	stmt := singleStatement(t, "for i = 1 to 10 then i")
	forNode, ok := stmt.(*ast.For)
	if !ok {
		t.Fatalf("expected *ast.For, got %T", stmt)
	}
	if forNode.Step != nil {
		t.Fatal("expected a nil Step when 'step' is omitted")
	}
}

func TestParseWhileInlineBodyNotDoubleAdvanced(t *testing.T) {
	// Regression test for the REDESIGN FLAG: the inline body must be the
	// very next token after 'then', not the one after it.
	stmt := singleStatement(t, "while 1 then 2")
	whileNode, ok := stmt.(*ast.While)
	if !ok {
		t.Fatalf("expected *ast.While, got %T", stmt)
	}
	num, ok := whileNode.Body.(*ast.Number)
	if !ok {
		t.Fatalf("expected inline body to be *ast.Number, got %T", whileNode.Body)
	}
	if num.Token.Literal != "2" {
		t.Fatalf("expected body literal 2, got %q", num.Token.Literal)
	}
}

func TestParseFuncDefAutoReturn(t *testing.T) {
	stmt := singleStatement(t, "func add(a, b) -> a + b")
	fn, ok := stmt.(*ast.FuncDef)
	if !ok {
		t.Fatalf("expected *ast.FuncDef, got %T", stmt)
	}
	if fn.Name == nil || fn.Name.Literal != "add" {
		t.Fatal("expected named function 'add'")
	}
	if !fn.AutoReturn {
		t.Fatal("expected AutoReturn for '->' body")
	}
	if len(fn.ParamNames) != 2 {
		t.Fatalf("expected 2 params, got %d", len(fn.ParamNames))
	}
}

func TestParseCallExpression(t *testing.T) {
	stmt := singleStatement(t, "f(1, 2)")
	call, ok := stmt.(*ast.Call)
	if !ok {
		t.Fatalf("expected *ast.Call, got %T", stmt)
	}
	if len(call.Args) != 2 {
		t.Fatalf("expected 2 args, got %d", len(call.Args))
	}
}

func TestParseReturnWithoutValue(t *testing.T) {
	block, ok := parseSource(t, "func f()\nreturn\nend").(*ast.Block)
	if !ok {
		t.Fatalf("expected *ast.Block")
	}
	fn, ok := block.Statements[0].(*ast.FuncDef)
	if !ok {
		t.Fatalf("expected *ast.FuncDef, got %T", block.Statements[0])
	}
	body, ok := fn.Body.(*ast.Block)
	if !ok {
		t.Fatalf("expected block body, got %T", fn.Body)
	}
	ret, ok := body.Statements[0].(*ast.Return)
	if !ok {
		t.Fatalf("expected *ast.Return, got %T", body.Statements[0])
	}
	if ret.Value != nil {
		t.Fatal("expected a nil Value for a bare 'return'")
	}
}

func TestParseInvalidSyntaxReturnsError(t *testing.T) {
	tokens, _ := lexer.New("<test>", "1 +").Tokenize()
	if _, err := Parse(tokens); err == nil {
		t.Fatal("expected a parse error for a dangling '+'")
	}
}
