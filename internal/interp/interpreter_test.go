package interp

import (
	"testing"

	"github.com/rshaporenkov/gobasic/internal/lexer"
	"github.com/rshaporenkov/gobasic/internal/parser"
)

func evalSource(t *testing.T, src string) Outcome {
	t.Helper()
	tokens, lexErr := lexer.New("<test>", src).Tokenize()
	if lexErr != nil {
		t.Fatalf("lex error: %v", lexErr)
	}
	root, parseErr := parser.Parse(tokens)
	if parseErr != nil {
		t.Fatalf("parse error: %v", parseErr)
	}
	global := NewGlobalEnvironment(&IO{})
	ctx := NewContext("<program>", global)
	return New().Visit(root, ctx)
}

func TestVisitBlockPropagatesErrorImmediately(t *testing.T) {
	result := evalSource(t, "1\nundef\n2")
	if result.Err == nil {
		t.Fatal("expected the undefined-variable error from the second statement to propagate")
	}
}

func TestVisitForBreakStopsLoop(t *testing.T) {
	result := evalSource(t, "var out = []\nfor i = 1 to 10 then\nif i == 3 then break\nvar out = out + i\nend\nout")
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if result.Value.Render() != "[1, 2]" {
		t.Fatalf("expected [1, 2], got %s", result.Value.Render())
	}
}

func TestVisitWhileContinueSkipsRest(t *testing.T) {
	result := evalSource(t, "var n = 0\nvar out = []\nwhile n < 5 then\nvar n = n + 1\nif n == 3 then continue\nvar out = out + n\nend\nout")
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if result.Value.Render() != "[1, 2, 4, 5]" {
		t.Fatalf("expected [1, 2, 4, 5], got %s", result.Value.Render())
	}
}

func TestVisitFuncDefWithBlockBodyReturn(t *testing.T) {
	result := evalSource(t, "func double(n)\nreturn n * 2\nend\ndouble(21)")
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if result.Value.Render() != "42" {
		t.Fatalf("expected 42, got %s", result.Value.Render())
	}
}

func TestVisitFuncAutoReturnWithoutExplicitReturn(t *testing.T) {
	result := evalSource(t, "func inc(n) -> n + 1\ninc(1)")
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if result.Value.Render() != "2" {
		t.Fatalf("expected 2, got %s", result.Value.Render())
	}
}

func TestVisitCallEnforcesMaxCallDepth(t *testing.T) {
	tokens, lexErr := lexer.New("<test>", "func loop(n) -> loop(n + 1)\nloop(0)").Tokenize()
	if lexErr != nil {
		t.Fatalf("lex error: %v", lexErr)
	}
	root, parseErr := parser.Parse(tokens)
	if parseErr != nil {
		t.Fatalf("parse error: %v", parseErr)
	}
	global := NewGlobalEnvironment(&IO{})
	ctx := NewContext("<program>", global)
	result := NewWithMaxCallDepth(5).Visit(root, ctx)
	if result.Err == nil {
		t.Fatal("expected a recursion-depth runtime error")
	}
}

func TestVisitVarAccessReStampsSpanAtAccessSite(t *testing.T) {
	result := evalSource(t, "var x = 1\nx")
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	start, _ := result.Value.Span()
	if start.Line != 1 {
		t.Fatalf("expected the access-site span (line 1), got line %d", start.Line)
	}
}
