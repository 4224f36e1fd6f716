// Package parser implements a Pratt expression parser plus a
// recursive-descent statement parser over the token stream produced by
// package lexer, emitting an ast.Stmt slice. Diagnostics accumulate into
// a multierror rather than aborting on the first one; after an error the
// parser resynchronizes at the next statement boundary and continues.
package parser

import (
	"github.com/hashicorp/go-multierror"
	"github.com/loxlang/loxcore/ast"
	"github.com/loxlang/loxcore/lexer"
	"github.com/loxlang/loxcore/token"
)

const maxParameters = 255

// Parser holds a single-token lookahead buffer over the lexer's output.
type Parser struct {
	lx   *lexer.Lexer
	prev token.Token
	curr token.Token
	errs *multierror.Error
}

// New creates a Parser over src and primes its lookahead buffer.
func New(src string) *Parser {
	p := &Parser{lx: lexer.New(src)}
	p.curr = p.lx.NextToken()
	return p
}

// Parse consumes the entire token stream and returns the parsed
// statements. The returned error is non-nil (a *multierror.Error) iff any
// diagnostic was recorded; the AST is still fully populated in that case,
// since the parser never aborts early — it resyncs and keeps going so all
// errors in the source are reported together.
func (p *Parser) Parse() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for p.curr.Type != token.Eof {
		stmts = append(stmts, p.declaration())
	}
	if p.errs == nil {
		return stmts, nil
	}
	return stmts, p.errs
}

func (p *Parser) addError(err error) {
	p.errs = multierror.Append(p.errs, err)
}

func (p *Parser) advance() token.Token {
	p.prev = p.curr
	p.curr = p.lx.NextToken()
	return p.prev
}

func (p *Parser) check(t token.Type) bool {
	return p.curr.Type == t
}

func (p *Parser) match(t token.Type) bool {
	if p.check(t) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) consume(t token.Type, context string) (token.Token, bool) {
	if p.check(t) {
		return p.advance(), true
	}
	p.addError(&Error{
		Kind:     ExpectStructure,
		Span:     p.curr.Span,
		Expected: context,
		Found:    p.curr.String(),
	})
	return token.Token{}, false
}

// synchronize discards tokens until the next statement-starting keyword
// or the token right after a semicolon, per spec.md §4.2's recovery rule.
func (p *Parser) synchronize() {
	for p.curr.Type != token.Eof {
		if p.prev.Type == token.Semicolon {
			return
		}
		if p.curr.IsStatementBoundary() {
			return
		}
		p.advance()
	}
}

// --- Declarations & statements ---

func (p *Parser) declaration() ast.Stmt {
	before := p.errorCount()
	var stmt ast.Stmt
	switch {
	case p.match(token.Var):
		stmt = p.varDecl()
	case p.match(token.Fun):
		stmt = p.fnDecl("function")
	case p.match(token.Class):
		stmt = p.classDecl()
	default:
		stmt = p.statement()
	}
	if p.errorCount() > before && !p.check(token.Eof) && p.prev.Type != token.Semicolon && !p.curr.IsStatementBoundary() {
		p.synchronize()
	}
	return stmt
}

func (p *Parser) errorCount() int {
	if p.errs == nil {
		return 0
	}
	return len(p.errs.Errors)
}

func (p *Parser) varDecl() ast.Stmt {
	name, ok := p.consume(token.Identifier, "variable name")
	if !ok {
		p.synchronize()
		return &ast.ExprStmt{Expr: &ast.Literal{Value: ast.Lit{Kind: ast.LitNil}}}
	}
	variable := &ast.Variable{Ident: ast.Ident{Name: name.Lexeme, Span: name.Span}}

	var init ast.Expr
	if p.match(token.Equal) {
		init = p.expression()
	}
	p.consumeSemicolon("after variable declaration")
	return &ast.VarDecl{Var: variable, Initializer: init}
}

func (p *Parser) fnDecl(kind string) *ast.FnDecl {
	name, ok := p.consume(token.Identifier, kind+" name")
	variable := &ast.Variable{}
	if ok {
		variable.Ident = ast.Ident{Name: name.Lexeme, Span: name.Span}
	}
	if _, ok := p.consume(token.LeftParen, "'(' after "+kind+" name"); !ok {
		p.synchronize()
		return &ast.FnDecl{Var: variable}
	}

	var params []*ast.Variable
	if !p.check(token.RightParen) {
		for {
			if len(params) >= maxParameters {
				p.addError(&Error{Kind: TooManyParameters, Span: p.curr.Span})
			}
			pname, ok := p.consume(token.Identifier, "parameter name")
			if ok {
				params = append(params, &ast.Variable{Ident: ast.Ident{Name: pname.Lexeme, Span: pname.Span}})
			}
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.consume(token.RightParen, "')' after parameters")
	p.consume(token.LeftBrace, "'{' before "+kind+" body")
	body := p.blockStatements()
	return &ast.FnDecl{Var: variable, Params: params, Body: body}
}

func (p *Parser) classDecl() ast.Stmt {
	name, ok := p.consume(token.Identifier, "class name")
	variable := &ast.Variable{}
	if ok {
		variable.Ident = ast.Ident{Name: name.Lexeme, Span: name.Span}
	}

	var superClass *ast.Variable
	if p.match(token.Less) {
		superName, ok := p.consume(token.Identifier, "superclass name")
		if ok {
			superClass = &ast.Variable{Ident: ast.Ident{Name: superName.Lexeme, Span: superName.Span}}
		}
	}

	p.consume(token.LeftBrace, "'{' before class body")
	var methods []*ast.FnDecl
	for !p.check(token.RightBrace) && p.curr.Type != token.Eof {
		methods = append(methods, p.fnDecl("method"))
	}
	p.consume(token.RightBrace, "'}' after class body")

	return &ast.ClassDecl{Var: variable, SuperClass: superClass, Methods: methods}
}

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.Print):
		return p.printStatement()
	case p.match(token.LeftBrace):
		return &ast.Block{Statements: p.blockStatements()}
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.While):
		return p.whileStatement()
	case p.match(token.For):
		return p.forStatement()
	case p.match(token.Return):
		return p.returnStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() ast.Stmt {
	expr := p.expression()
	p.consumeSemicolon("after value")
	return &ast.Print{Expr: expr}
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consumeSemicolon("after expression")
	return &ast.ExprStmt{Expr: expr}
}

func (p *Parser) blockStatements() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RightBrace) && p.curr.Type != token.Eof {
		stmts = append(stmts, p.declaration())
	}
	p.consume(token.RightBrace, "'}' after block")
	return stmts
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(token.LeftParen, "'(' after 'if'")
	cond := p.expression()
	p.consume(token.RightParen, "')' after if condition")
	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.Else) {
		elseBranch = p.statement()
	}
	return &ast.If{Cond: cond, Then: thenBranch, Else: elseBranch}
}

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(token.LeftParen, "'(' after 'while'")
	cond := p.expression()
	p.consume(token.RightParen, "')' after while condition")
	body := p.statement()
	return &ast.While{Cond: cond, Body: body}
}

// forStatement desugars `for (init; cond; incr) body` into
// `Block[init, While(cond ?? true, Block[body, incr])]`, per spec.md
// §4.2. The outer Block is omitted when there is no initializer, and the
// inner Block (body is used directly) when there is no increment.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(token.LeftParen, "'(' after 'for'")

	var init ast.Stmt
	switch {
	case p.match(token.Semicolon):
		// no initializer
	case p.match(token.Var):
		init = p.varDecl()
	default:
		init = p.expressionStatement()
	}

	var cond ast.Expr
	if !p.check(token.Semicolon) {
		cond = p.expression()
	}
	p.consume(token.Semicolon, "';' after loop condition")

	var incr ast.Expr
	if !p.check(token.RightParen) {
		incr = p.expression()
	}
	p.consume(token.RightParen, "')' after for clauses")

	body := p.statement()

	if incr != nil {
		body = &ast.Block{Statements: []ast.Stmt{body, &ast.ExprStmt{Expr: incr}}}
	}
	if cond == nil {
		cond = &ast.Literal{Value: ast.Lit{Kind: ast.LitBool, Bool: true}}
	}
	loop := ast.Stmt(&ast.While{Cond: cond, Body: body})

	if init != nil {
		loop = &ast.Block{Statements: []ast.Stmt{init, loop}}
	}
	return loop
}

func (p *Parser) returnStatement() ast.Stmt {
	span := p.prev.Span
	var expr ast.Expr
	if !p.check(token.Semicolon) {
		expr = p.expression()
	}
	p.consumeSemicolon("after return value")
	return &ast.Return{Span: span, Expr: expr}
}

func (p *Parser) consumeSemicolon(context string) {
	p.consume(token.Semicolon, "';' "+context)
}

// --- Expressions (Pratt) ---

func (p *Parser) expression() ast.Expr {
	return p.exprPrecedence(precAssign)
}

// exprPrecedence is the Pratt driver: parse a prefix expression, then
// repeatedly fold in infix/postfix continuations whose precedence
// strictly exceeds minOp, or equals it with right fixity.
func (p *Parser) exprPrecedence(minOp int) ast.Expr {
	left := p.parsePrefix()

	for {
		prec, fix, ok := operatorInfo(p.curr.Type)
		if !ok || prec < minOp || (prec == minOp && fix != fixRight) {
			break
		}

		switch p.curr.Type {
		case token.Equal:
			left = p.finishAssign(left)
		case token.Question:
			left = p.finishTernary(left)
		case token.LeftParen:
			left = p.finishCall(left)
		case token.Dot:
			left = p.finishGet(left)
		default:
			left = p.finishBinary(left, prec)
		}
	}
	return left
}

func (p *Parser) finishBinary(left ast.Expr, prec int) ast.Expr {
	opTok := p.advance()
	op, _ := binaryOpOf(opTok.Type)
	right := p.exprPrecedence(prec)
	return &ast.Binary{Op: op, Left: left, Right: right}
}

func binaryOpOf(tt token.Type) (ast.BinaryOp, bool) {
	switch tt {
	case token.Plus:
		return ast.OpPlus, true
	case token.Minus:
		return ast.OpMinus, true
	case token.Star:
		return ast.OpMultiply, true
	case token.Slash:
		return ast.OpDivide, true
	case token.EqualEqual:
		return ast.OpEqual, true
	case token.BangEqual:
		return ast.OpNotEqual, true
	case token.Greater:
		return ast.OpGreater, true
	case token.GreaterEqual:
		return ast.OpGreaterEqual, true
	case token.Less:
		return ast.OpLess, true
	case token.LessEqual:
		return ast.OpLessEqual, true
	case token.And:
		return ast.OpAnd, true
	case token.Or:
		return ast.OpOr, true
	default:
		return 0, false
	}
}

// finishAssign consumes '=' and rewrites left, which must already be an
// ast.VarExpr or ast.Get, into an Assign or Set node. Any other shape is
// an InvalidLeftValue diagnostic.
func (p *Parser) finishAssign(left ast.Expr) ast.Expr {
	p.advance() // '='
	value := p.exprPrecedence(precAssign)

	switch l := left.(type) {
	case *ast.VarExpr:
		return &ast.Assign{Var: l.Var, Value: value}
	case *ast.Get:
		return &ast.Set{Target: l, Value: value}
	default:
		p.addError(&Error{Kind: InvalidLeftValue, Span: left.Span()})
		return left
	}
}

func (p *Parser) finishTernary(cond ast.Expr) ast.Expr {
	p.advance() // '?'
	truthy := p.exprPrecedence(precAssign)
	p.consume(token.Colon, "':' in ternary expression")
	falsy := p.exprPrecedence(precTernary)
	return &ast.Ternary{Cond: cond, Truthy: truthy, Falsy: falsy}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	p.advance() // '('
	var args []ast.Expr
	if !p.check(token.RightParen) {
		for {
			if len(args) >= maxParameters {
				p.addError(&Error{Kind: TooManyParameters, Span: p.curr.Span})
			}
			args = append(args, p.exprPrecedence(precAssign))
			if !p.match(token.Comma) {
				break
			}
		}
	}
	end := p.curr.Span.End
	p.consume(token.RightParen, "')' after arguments")
	return &ast.Call{Callee: callee, Args: args, End: end}
}

func (p *Parser) finishGet(object ast.Expr) ast.Expr {
	p.advance() // '.'
	name, ok := p.consume(token.Identifier, "property name after '.'")
	field := ast.Ident{Name: name.Lexeme, Span: name.Span}
	if !ok {
		field = ast.Ident{Span: p.curr.Span}
	}
	return &ast.Get{Object: object, Field: field}
}

func (p *Parser) parsePrefix() ast.Expr {
	switch p.curr.Type {
	case token.Bang:
		opTok := p.advance()
		operand := p.exprPrecedence(precUnary)
		return &ast.Unary{Op: ast.OpNot, OpSpan: opTok.Span, Operand: operand}
	case token.Minus:
		opTok := p.advance()
		operand := p.exprPrecedence(precUnary)
		return &ast.Unary{Op: ast.OpNegate, OpSpan: opTok.Span, Operand: operand}
	case token.LeftParen:
		return p.groupExpr()
	case token.Number:
		tok := p.advance()
		return &ast.Literal{LitSpan: tok.Span, Value: ast.Lit{Kind: ast.LitNumber, Number: tok.Number}}
	case token.String:
		tok := p.advance()
		return &ast.Literal{LitSpan: tok.Span, Value: ast.Lit{Kind: ast.LitString, String: tok.Lexeme}}
	case token.True:
		tok := p.advance()
		return &ast.Literal{LitSpan: tok.Span, Value: ast.Lit{Kind: ast.LitBool, Bool: true}}
	case token.False:
		tok := p.advance()
		return &ast.Literal{LitSpan: tok.Span, Value: ast.Lit{Kind: ast.LitBool, Bool: false}}
	case token.Nil:
		tok := p.advance()
		return &ast.Literal{LitSpan: tok.Span, Value: ast.Lit{Kind: ast.LitNil}}
	case token.This:
		tok := p.advance()
		return &ast.VarExpr{Var: &ast.Variable{Ident: ast.Ident{Name: "this", Span: tok.Span}}}
	case token.Super:
		tok := p.advance()
		p.consume(token.Dot, "'.' after 'super'")
		method, ok := p.consume(token.Identifier, "superclass method name")
		field := ast.Ident{Name: method.Lexeme, Span: method.Span}
		if !ok {
			field = ast.Ident{Span: p.curr.Span}
		}
		return &ast.SuperExpr{
			Var:    &ast.Variable{Ident: ast.Ident{Name: "super", Span: tok.Span}},
			Method: field,
		}
	case token.Identifier:
		tok := p.advance()
		return &ast.VarExpr{Var: &ast.Variable{Ident: ast.Ident{Name: tok.Lexeme, Span: tok.Span}}}
	default:
		tok := p.advance()
		p.addError(&Error{Kind: UnexpectedToken, Span: tok.Span, Found: tok.String()})
		return &ast.Literal{LitSpan: tok.Span, Value: ast.Lit{Kind: ast.LitNil}}
	}
}

func (p *Parser) groupExpr() ast.Expr {
	start := p.advance() // '('
	inner := p.expression()
	end := p.curr.Span
	p.consume(token.RightParen, "')' after expression")
	return &ast.Group{GroupSpan: start.Span.ExtendWith(end), Inner: inner}
}
