/*
File    : skai/parser/parser.go
Package : parser
*/

// Package parser turns a token stream into skai's AST. It is a plain
// recursive-descent parser with one function per precedence level;
// there is no Pratt table, so adding or reordering an operator means
// editing exactly one function's operator set.
package parser

import (
	"github.com/akashmaji946/skai/ast"
	"github.com/akashmaji946/skai/interp"
	"github.com/akashmaji946/skai/lexer"
	"github.com/akashmaji946/skai/sloc"
)

const maxParams = 255

// Parser consumes tokens produced by a Lexer one at a time, keeping a
// single token of lookahead.
type Parser struct {
	l         tokenSource
	curr      lexer.Token
	next      lexer.Token
}

// tokenSource is satisfied by *lexer.Lexer; narrowed to an interface
// so tests can feed a parser a canned token list.
type tokenSource interface {
	NextToken() lexer.Token
}

// New creates a Parser reading from l and primes the two-token
// lookahead window.
func New(l tokenSource) *Parser {
	p := &Parser{l: l}
	p.advance()
	p.advance()
	return p
}

// Parse consumes the whole token stream and returns the top-level
// declaration list. Panics with *interp.Error on the first malformed
// construct.
func Parse(l tokenSource) []ast.Stmt {
	p := New(l)
	var stmts []ast.Stmt
	for !p.atEnd() {
		stmts = append(stmts, p.declaration())
	}
	return stmts
}

func (p *Parser) advance() {
	p.curr = p.next
	p.next = p.l.NextToken()
}

func (p *Parser) atEnd() bool {
	return p.curr.Type == lexer.EOF
}

func (p *Parser) check(t lexer.TokenType) bool {
	return p.curr.Type == t
}

func (p *Parser) checkNext(t lexer.TokenType) bool {
	return p.next.Type == t
}

// match advances and returns true if the current token has type t.
func (p *Parser) match(t lexer.TokenType) bool {
	if p.check(t) {
		p.advance()
		return true
	}
	return false
}

// expect advances past a token of type t, or fails fatally citing
// what.
func (p *Parser) expect(t lexer.TokenType, what string) lexer.Token {
	if !p.check(t) {
		p.errorf("expected %s, got %q", what, p.curr.Literal)
	}
	tok := p.curr
	p.advance()
	return tok
}

func (p *Parser) loc() sloc.Location {
	return p.curr.Loc
}

func (p *Parser) errorf(format string, args ...interface{}) {
	interp.Raise(p.curr.Loc, format, args...)
}
