/*
File    : skai/parser/parser_expr.go
Package : parser
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/skai/ast"
	"github.com/akashmaji946/skai/lexer"
)

const maxArgs = 255

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment := or ("=" assignment | compound_op assignment)?
//
// Right-associative: the rhs of "=" is itself an assignment, not an
// "or" expression, so "a = b = c" parses as "a = (b = c)".
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	switch p.curr.Type {
	case lexer.ASSIGN, lexer.PLUS_ASSIGN, lexer.MINUS_ASSIGN, lexer.STAR_ASSIGN,
		lexer.SLASH_ASSIGN, lexer.MOD_ASSIGN, lexer.BIT_AND_ASSIGN,
		lexer.BIT_OR_ASSIGN, lexer.BIT_XOR_ASSIGN:
		loc := p.loc()
		op := p.curr.Type
		p.advance()
		value := p.assignment()
		if !isAssignable(expr) {
			p.errorf("invalid assignment target")
		}
		return &ast.Assign{Loc: loc, Target: expr, Op: op, Value: value}
	}
	return expr
}

// isAssignable enforces the grammar's lhs rule: a bare identifier, or
// an Access/Subscript chain.
func isAssignable(e ast.Expr) bool {
	switch e.(type) {
	case *ast.Identifier, *ast.Access, *ast.Subscript:
		return true
	default:
		return false
	}
}

// or := and ("or" and)*
func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.check(lexer.OR) {
		loc := p.loc()
		p.advance()
		right := p.and()
		expr = &ast.Logical{Loc: loc, Left: expr, Op: lexer.OR, Right: right}
	}
	return expr
}

// and := equality ("and" equality)*
func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.check(lexer.AND) {
		loc := p.loc()
		p.advance()
		right := p.equality()
		expr = &ast.Logical{Loc: loc, Left: expr, Op: lexer.AND, Right: right}
	}
	return expr
}

// equality := comparison (("==" | "!=") comparison)*
func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.check(lexer.EQ) || p.check(lexer.NE) {
		loc, op := p.loc(), p.curr.Type
		p.advance()
		right := p.comparison()
		expr = &ast.Binary{Loc: loc, Left: expr, Op: op, Right: right}
	}
	return expr
}

// comparison := term (("<" | "<=" | ">" | ">=") term)*
func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.check(lexer.LT) || p.check(lexer.LE) || p.check(lexer.GT) || p.check(lexer.GE) {
		loc, op := p.loc(), p.curr.Type
		p.advance()
		right := p.term()
		expr = &ast.Binary{Loc: loc, Left: expr, Op: op, Right: right}
	}
	return expr
}

// term := factor (("+" | "-") factor)*
//
// Only "+" and "-" are parsed at this level; "+=" and "-=" are not
// accepted here. Every compound operator is parsed by assignment()
// above, with assignment precedence, into an Assign node.
func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.check(lexer.PLUS) || p.check(lexer.MINUS) {
		loc, op := p.loc(), p.curr.Type
		p.advance()
		right := p.factor()
		expr = &ast.Binary{Loc: loc, Left: expr, Op: op, Right: right}
	}
	return expr
}

// factor := unary (("&" | "|" | "^" | "/" | "*" | "%") unary)*
func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for {
		switch p.curr.Type {
		case lexer.BIT_AND, lexer.BIT_OR, lexer.BIT_XOR, lexer.SLASH, lexer.STAR, lexer.MOD:
			loc, op := p.loc(), p.curr.Type
			p.advance()
			right := p.unary()
			expr = &ast.Binary{Loc: loc, Left: expr, Op: op, Right: right}
		default:
			return expr
		}
	}
}

// unary := ("!" | "-" | "+") unary | subscript
func (p *Parser) unary() ast.Expr {
	switch p.curr.Type {
	case lexer.BANG, lexer.MINUS, lexer.PLUS:
		loc, op := p.loc(), p.curr.Type
		p.advance()
		operand := p.unary()
		return &ast.Unary{Loc: loc, Op: op, Operand: operand}
	}
	return p.subscript()
}

// subscript := call ("[" expression "]")*
func (p *Parser) subscript() ast.Expr {
	expr := p.call()
	for p.check(lexer.LBRACKET) {
		loc := p.loc()
		p.advance()
		index := p.expression()
		p.expect(lexer.RBRACKET, `"]"`)
		expr = &ast.Subscript{Loc: loc, Object: expr, Index: index}
	}
	return expr
}

// call := access ("(" arg_list? ")")*
func (p *Parser) call() ast.Expr {
	expr := p.access()
	for p.check(lexer.LPAREN) {
		loc := p.loc()
		p.advance()
		var args []ast.Expr
		for !p.check(lexer.RPAREN) {
			if len(args) >= maxArgs {
				p.errorf("too many arguments (max %d)", maxArgs)
			}
			args = append(args, p.expression())
			if !p.match(lexer.COMMA) {
				break
			}
		}
		p.expect(lexer.RPAREN, `")"`)
		expr = &ast.Call{Loc: loc, Callee: expr, Args: args}
	}
	return expr
}

// access := primary ("." primary)*
func (p *Parser) access() ast.Expr {
	expr := p.primary()
	for p.check(lexer.DOT) {
		loc := p.loc()
		p.advance()
		member := p.primary()
		expr = &ast.Access{Loc: loc, Object: expr, Member: member}
	}
	return expr
}

// primary := literal | identifier | "(" expression ")" | array_literal
//          | "break" | "continue" | "self" | lambda
func (p *Parser) primary() ast.Expr {
	loc := p.loc()
	switch p.curr.Type {
	case lexer.INT:
		lit := p.curr.Literal
		p.advance()
		n, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			p.errorf("invalid integer literal %q", lit)
		}
		return ast.NewNumberLit(loc, n)
	case lexer.FLOAT:
		lit := p.curr.Literal
		p.advance()
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			p.errorf("invalid float literal %q", lit)
		}
		return ast.NewFloatLit(loc, f)
	case lexer.STRING:
		lit := p.curr.Literal
		p.advance()
		return ast.NewStringLit(loc, lit)
	case lexer.TRUE:
		p.advance()
		return ast.NewBoolLit(loc, true)
	case lexer.FALSE:
		p.advance()
		return ast.NewBoolLit(loc, false)
	case lexer.NULL:
		p.advance()
		return ast.NewNullLit(loc)
	case lexer.IDENT:
		name := p.curr.Literal
		p.advance()
		return ast.NewIdentifier(loc, name)
	case lexer.SELF:
		p.advance()
		return ast.NewSelf(loc)
	case lexer.BREAK:
		p.advance()
		return ast.NewBreak(loc)
	case lexer.CONTINUE:
		p.advance()
		return ast.NewContinue(loc)
	case lexer.LM:
		return p.lambda()
	case lexer.LPAREN:
		p.advance()
		expr := p.expression()
		p.expect(lexer.RPAREN, `")"`)
		return expr
	case lexer.LBRACKET:
		return p.arrayLit()
	}
	p.errorf("unexpected token %q", p.curr.Literal)
	panic("unreachable")
}

// arrayLit := "[" (expression ("," expression)*)? "]"
func (p *Parser) arrayLit() *ast.ArrayLit {
	loc := p.loc()
	p.advance() // consume "["
	var elems []ast.Expr
	for !p.check(lexer.RBRACKET) {
		elems = append(elems, p.expression())
		if !p.match(lexer.COMMA) {
			break
		}
	}
	p.expect(lexer.RBRACKET, `"]"`)
	return &ast.ArrayLit{Loc: loc, Elements: elems}
}
