// Package parser implements gobasic's recursive-descent grammar (spec.md
// §4.2) over a token slice produced by internal/lexer. Rather than
// replicating basic.py's ParseResult.try_register/to_reverse_count advance
// counter, speculative productions save and restore a plain cursor index —
// the saved-cursor alternative spec.md §9 explicitly sanctions.
package parser

import (
	"github.com/rshaporenkov/gobasic/internal/ast"
	cerrors "github.com/rshaporenkov/gobasic/internal/errors"
	"github.com/rshaporenkov/gobasic/internal/token"
)

// Parser holds the token cursor for the recursive-descent grammar.
type Parser struct {
	tokens []token.Token
	pos    int
}

// Parse runs the full `statements` production over tokens and requires the
// result to consume every token up to EOF.
func Parse(tokens []token.Token) (ast.Node, *cerrors.Error) {
	p := &Parser{tokens: tokens}
	node, err := p.statements()
	if err != nil {
		return nil, err
	}
	if p.current().Type != token.EOF {
		return nil, p.invalidSyntax("Expected '+', '-', '*', '/', '^', '==', '!=', '<', '>', '<=', '>=', 'and' or 'or'")
	}
	return node, nil
}

func (p *Parser) current() token.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() token.Token {
	tok := p.current()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) save() int { return p.pos }

func (p *Parser) restore(mark int) { p.pos = mark }

func (p *Parser) invalidSyntax(expected string) *cerrors.Error {
	tok := p.current()
	return cerrors.New(cerrors.InvalidSyntax, tok.Start, tok.End, "Expected "+expected)
}

func (p *Parser) skipNewlines() int {
	n := 0
	for p.current().Type == token.NEWLINE {
		p.advance()
		n++
	}
	return n
}

// statements := NEWLINE* statement (NEWLINE+ statement)* NEWLINE*
func (p *Parser) statements() (ast.Node, *cerrors.Error) {
	start := p.current().Start
	var stmts []ast.Node

	p.skipNewlines()

	first, err := p.statement()
	if err != nil {
		return nil, err
	}
	stmts = append(stmts, first)

	for {
		newlineCount := p.skipNewlines()
		if newlineCount == 0 {
			break
		}
		mark := p.save()
		stmt, err := p.statement()
		if err != nil {
			// Speculative: trailing newlines before a block terminator
			// ('end'/EOF) are allowed; roll back and stop collecting.
			p.restore(mark)
			break
		}
		stmts = append(stmts, stmt)
	}

	p.skipNewlines()

	end := p.current().Start
	return &ast.Block{Statements: stmts, NodeBase: ast.NewBase(start, end)}, nil
}

// statement := 'return' expr? | 'continue' | 'break' | expr
func (p *Parser) statement() (ast.Node, *cerrors.Error) {
	start := p.current().Start

	if p.current().Matches(token.KEYWORD, "return") {
		p.advance()
		mark := p.save()
		if !p.atStatementEnd() {
			val, err := p.expr()
			if err != nil {
				p.restore(mark)
				return &ast.Return{Value: nil, NodeBase: ast.NewBase(start, p.current().Start)}, nil
			}
			return &ast.Return{Value: val, NodeBase: ast.NewBase(start, p.current().Start)}, nil
		}
		return &ast.Return{Value: nil, NodeBase: ast.NewBase(start, p.current().Start)}, nil
	}

	if p.current().Matches(token.KEYWORD, "continue") {
		p.advance()
		return &ast.Continue{NodeBase: ast.NewBase(start, p.current().Start)}, nil
	}

	if p.current().Matches(token.KEYWORD, "break") {
		p.advance()
		return &ast.Break{NodeBase: ast.NewBase(start, p.current().Start)}, nil
	}

	return p.expr()
}

func (p *Parser) atStatementEnd() bool {
	t := p.current().Type
	return t == token.NEWLINE || t == token.EOF || p.current().Matches(token.KEYWORD, "end")
}

// expr := 'var' IDENT '=' expr | comp_expr (('and'|'or') comp_expr)*
func (p *Parser) expr() (ast.Node, *cerrors.Error) {
	start := p.current().Start

	if p.current().Matches(token.KEYWORD, "var") {
		p.advance()
		if p.current().Type != token.IDENT {
			return nil, p.invalidSyntax("identifier")
		}
		name := p.advance()
		if p.current().Type != token.EQ {
			return nil, p.invalidSyntax("'='")
		}
		p.advance()
		value, err := p.expr()
		if err != nil {
			return nil, err
		}
		return &ast.VarAssign{Name: name, Value: value, NodeBase: ast.NewBase(start, p.current().Start)}, nil
	}

	left, err := p.compExpr()
	if err != nil {
		return nil, err
	}

	for p.current().Matches(token.KEYWORD, "and") || p.current().Matches(token.KEYWORD, "or") {
		op := p.advance()
		right, err := p.compExpr()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Left: left, Op: op, Right: right, NodeBase: ast.NewBase(start, p.current().Start)}
	}

	return left, nil
}

// comp_expr := 'not' comp_expr | arith_expr (COMPARISON arith_expr)*
func (p *Parser) compExpr() (ast.Node, *cerrors.Error) {
	start := p.current().Start

	if p.current().Matches(token.KEYWORD, "not") {
		op := p.advance()
		operand, err := p.compExpr()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: op, Operand: operand, NodeBase: ast.NewBase(start, p.current().Start)}, nil
	}

	left, err := p.arithExpr()
	if err != nil {
		return nil, err
	}

	for isComparisonOp(p.current()) {
		op := p.advance()
		right, err := p.arithExpr()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Left: left, Op: op, Right: right, NodeBase: ast.NewBase(start, p.current().Start)}
	}

	return left, nil
}

func isComparisonOp(t token.Token) bool {
	switch t.Type {
	case token.EE, token.NE, token.LT, token.GT, token.LTE, token.GTE:
		return true
	default:
		return false
	}
}

// arith_expr := term (('+'|'-') term)*
func (p *Parser) arithExpr() (ast.Node, *cerrors.Error) {
	start := p.current().Start
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.current().Type == token.PLUS || p.current().Type == token.MINUS {
		op := p.advance()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Left: left, Op: op, Right: right, NodeBase: ast.NewBase(start, p.current().Start)}
	}
	return left, nil
}

// term := factor (('*'|'/') factor)*
func (p *Parser) term() (ast.Node, *cerrors.Error) {
	start := p.current().Start
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.current().Type == token.MUL || p.current().Type == token.DIV {
		op := p.advance()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Left: left, Op: op, Right: right, NodeBase: ast.NewBase(start, p.current().Start)}
	}
	return left, nil
}

// factor := ('+'|'-') factor | power
func (p *Parser) factor() (ast.Node, *cerrors.Error) {
	start := p.current().Start
	if p.current().Type == token.PLUS || p.current().Type == token.MINUS {
		op := p.advance()
		operand, err := p.factor()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: op, Operand: operand, NodeBase: ast.NewBase(start, p.current().Start)}, nil
	}
	return p.power()
}

// power := call ('^' factor)*
//
// Precedence asymmetry (spec.md §4.2): the left operand is parsed at `call`
// precedence, the right at `factor` precedence, so `-2 ^ 3` parses as
// `-(2 ^ 3)`.
func (p *Parser) power() (ast.Node, *cerrors.Error) {
	start := p.current().Start
	left, err := p.call()
	if err != nil {
		return nil, err
	}
	for p.current().Type == token.POW {
		op := p.advance()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Left: left, Op: op, Right: right, NodeBase: ast.NewBase(start, p.current().Start)}
	}
	return left, nil
}

// call := atom ('(' (expr (',' expr)*)? ')')?
func (p *Parser) call() (ast.Node, *cerrors.Error) {
	start := p.current().Start
	atom, err := p.atom()
	if err != nil {
		return nil, err
	}

	if p.current().Type != token.LPAREN {
		return atom, nil
	}
	p.advance()

	var args []ast.Node
	if p.current().Type != token.RPAREN {
		arg, err := p.expr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		for p.current().Type == token.COMMA {
			p.advance()
			arg, err := p.expr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
	}

	if p.current().Type != token.RPAREN {
		return nil, p.invalidSyntax("',' or ')'")
	}
	p.advance()

	return &ast.Call{Callee: atom, Args: args, NodeBase: ast.NewBase(start, p.current().Start)}, nil
}

// atom := INT | FLOAT | STRING | IDENT | '(' expr ')' | list_expr
//       | if_expr | for_expr | while_expr | func_def
func (p *Parser) atom() (ast.Node, *cerrors.Error) {
	tok := p.current()
	start := tok.Start

	switch {
	case tok.Type == token.INT || tok.Type == token.FLOAT:
		p.advance()
		return &ast.Number{Token: tok, NodeBase: ast.NewBase(start, tok.End)}, nil

	case tok.Type == token.STRING:
		p.advance()
		return &ast.String{Token: tok, NodeBase: ast.NewBase(start, tok.End)}, nil

	case tok.Type == token.IDENT:
		p.advance()
		return &ast.VarAccess{Name: tok, NodeBase: ast.NewBase(start, tok.End)}, nil

	case tok.Type == token.LPAREN:
		p.advance()
		node, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.current().Type != token.RPAREN {
			return nil, p.invalidSyntax("')'")
		}
		p.advance()
		return node, nil

	case tok.Type == token.LSQUARE:
		return p.listExpr()

	case tok.Matches(token.KEYWORD, "if"):
		return p.ifExpr()

	case tok.Matches(token.KEYWORD, "for"):
		return p.forExpr()

	case tok.Matches(token.KEYWORD, "while"):
		return p.whileExpr()

	case tok.Matches(token.KEYWORD, "func"):
		return p.funcDef()

	default:
		return nil, p.invalidSyntax("int, float, identifier, '+', '-', '(', '[', 'if', 'for', 'while', 'func'")
	}
}

// list_expr := '[' (expr (',' expr)*)? ']'
func (p *Parser) listExpr() (ast.Node, *cerrors.Error) {
	start := p.current().Start
	p.advance() // '['

	var elems []ast.Node
	if p.current().Type != token.RSQUARE {
		elem, err := p.expr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)

		for p.current().Type == token.COMMA {
			p.advance()
			elem, err := p.expr()
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
		}
	}

	if p.current().Type != token.RSQUARE {
		return nil, p.invalidSyntax("',' or ']'")
	}
	end := p.current().End
	p.advance()

	return &ast.List{Elements: elems, NodeBase: ast.NewBase(start, end)}, nil
}

// body parses the block-or-inline production shared by if/for/while/func:
// if the next token is NEWLINE, parse a full statements block terminated by
// 'end'; otherwise parse a single inline statement. Returns the body node
// and whether it was a block (spec.md §4.2 "Block vs. inline body").
func (p *Parser) body() (ast.Node, bool, *cerrors.Error) {
	if p.current().Type == token.NEWLINE {
		p.advance()
		stmts, err := p.statements()
		if err != nil {
			return nil, false, err
		}
		if !p.current().Matches(token.KEYWORD, "end") {
			return nil, false, p.invalidSyntax("'end'")
		}
		p.advance()
		return stmts, true, nil
	}

	stmt, err := p.statement()
	if err != nil {
		return nil, false, err
	}
	return stmt, false, nil
}

// if_expr := 'if' expr 'then' body (elif_expr | else_expr)?
func (p *Parser) ifExpr() (ast.Node, *cerrors.Error) {
	start := p.current().Start
	p.advance() // 'if'

	return p.ifExprCases(start)
}

func (p *Parser) ifExprCases(start token.Position) (ast.Node, *cerrors.Error) {
	var cases []ast.IfCase
	var elseCase *ast.ElseCase

	cond, err := p.expr()
	if err != nil {
		return nil, err
	}
	if !p.current().Matches(token.KEYWORD, "then") {
		return nil, p.invalidSyntax("'then'")
	}
	p.advance()

	bodyNode, isBlock, err := p.body()
	if err != nil {
		return nil, err
	}
	cases = append(cases, ast.IfCase{Condition: cond, Body: bodyNode, BlockBody: isBlock})

	switch {
	case p.current().Matches(token.KEYWORD, "elif"):
		p.advance()
		elifNode, err := p.ifExprCases(start)
		if err != nil {
			return nil, err
		}
		elifIf, ok := elifNode.(*ast.If)
		if ok {
			cases = append(cases, elifIf.Cases...)
			elseCase = elifIf.Else
		}
	case p.current().Matches(token.KEYWORD, "else"):
		p.advance()
		bodyNode, isBlock, err := p.body()
		if err != nil {
			return nil, err
		}
		elseCase = &ast.ElseCase{Body: bodyNode, BlockBody: isBlock}
	}

	return &ast.If{Cases: cases, Else: elseCase, NodeBase: ast.NewBase(start, p.current().Start)}, nil
}

// for_expr := 'for' IDENT '=' expr 'to' expr ('step' expr)? 'then' body
func (p *Parser) forExpr() (ast.Node, *cerrors.Error) {
	start := p.current().Start
	p.advance() // 'for'

	if p.current().Type != token.IDENT {
		return nil, p.invalidSyntax("identifier")
	}
	varTok := p.advance()

	if p.current().Type != token.EQ {
		return nil, p.invalidSyntax("'='")
	}
	p.advance()

	startNode, err := p.expr()
	if err != nil {
		return nil, err
	}

	if !p.current().Matches(token.KEYWORD, "to") {
		return nil, p.invalidSyntax("'to'")
	}
	p.advance()

	endNode, err := p.expr()
	if err != nil {
		return nil, err
	}

	var stepNode ast.Node
	if p.current().Matches(token.KEYWORD, "step") {
		p.advance()
		stepNode, err = p.expr()
		if err != nil {
			return nil, err
		}
	}

	if !p.current().Matches(token.KEYWORD, "then") {
		return nil, p.invalidSyntax("'then'")
	}
	p.advance()

	bodyNode, isBlock, err := p.body()
	if err != nil {
		return nil, err
	}

	return &ast.For{
		Var: varTok, Start: startNode, End: endNode, Step: stepNode,
		Body: bodyNode, BlockBody: isBlock,
		NodeBase: ast.NewBase(start, p.current().Start),
	}, nil
}

// while_expr := 'while' expr 'then' body
//
// The REDESIGN FLAG in spec.md §9: the source parser advances twice after
// 'then' before checking for NEWLINE, silently eating the first token of an
// inline body. Fixed here by reusing the shared body() helper, which
// advances exactly once — identical to if/for.
func (p *Parser) whileExpr() (ast.Node, *cerrors.Error) {
	start := p.current().Start
	p.advance() // 'while'

	cond, err := p.expr()
	if err != nil {
		return nil, err
	}

	if !p.current().Matches(token.KEYWORD, "then") {
		return nil, p.invalidSyntax("'then'")
	}
	p.advance()

	bodyNode, isBlock, err := p.body()
	if err != nil {
		return nil, err
	}

	return &ast.While{Condition: cond, Body: bodyNode, BlockBody: isBlock, NodeBase: ast.NewBase(start, p.current().Start)}, nil
}

// func_def := 'func' IDENT? '(' (IDENT (',' IDENT)*)? ')' ( '->' expr | NEWLINE statements 'end' )
func (p *Parser) funcDef() (ast.Node, *cerrors.Error) {
	start := p.current().Start
	p.advance() // 'func'

	var name *token.Token
	if p.current().Type == token.IDENT {
		tok := p.advance()
		name = &tok
	}

	if p.current().Type != token.LPAREN {
		return nil, p.invalidSyntax("'('")
	}
	p.advance()

	var params []token.Token
	if p.current().Type == token.IDENT {
		params = append(params, p.advance())
		for p.current().Type == token.COMMA {
			p.advance()
			if p.current().Type != token.IDENT {
				return nil, p.invalidSyntax("identifier")
			}
			params = append(params, p.advance())
		}
	}

	if p.current().Type != token.RPAREN {
		return nil, p.invalidSyntax("',' or ')'")
	}
	p.advance()

	if p.current().Type == token.ARROW {
		p.advance()
		body, err := p.expr()
		if err != nil {
			return nil, err
		}
		return &ast.FuncDef{
			Name: name, ParamNames: params, Body: body, AutoReturn: true,
			NodeBase: ast.NewBase(start, p.current().Start),
		}, nil
	}

	if p.current().Type != token.NEWLINE {
		return nil, p.invalidSyntax("'->' or newline")
	}
	p.advance()

	body, err := p.statements()
	if err != nil {
		return nil, err
	}
	if !p.current().Matches(token.KEYWORD, "end") {
		return nil, p.invalidSyntax("'end'")
	}
	p.advance()

	return &ast.FuncDef{
		Name: name, ParamNames: params, Body: body, AutoReturn: false,
		NodeBase: ast.NewBase(start, p.current().Start),
	}, nil
}
