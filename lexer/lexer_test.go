/*
File    : skai/lexer/lexer_test.go
Package : lexer
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tokenize(t *testing.T, src string) []Token {
	t.Helper()
	l := New("test.sk", src)
	var out []Token
	for {
		tok := l.NextToken()
		if tok.Type == EOF {
			return out
		}
		out = append(out, tok)
	}
}

func types(toks []Token) []TokenType {
	out := make([]TokenType, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}

func TestNextToken_Operators(t *testing.T) {
	toks := tokenize(t, `+ - * / % == != <= >= << >> && || += -= *= /= %=`)
	assert.Equal(t, []TokenType{
		PLUS, MINUS, STAR, SLASH, MOD, EQ, NE, LE, GE, SHL, SHR, AND, OR,
		PLUS_ASSIGN, MINUS_ASSIGN, STAR_ASSIGN, SLASH_ASSIGN, MOD_ASSIGN,
	}, types(toks))
}

func TestNextToken_KeywordsAndIdentifiers(t *testing.T) {
	toks := tokenize(t, `let imm lm fnc class if else while for return break continue self of abc_1 'prime`)
	assert.Equal(t, []TokenType{
		LET, IMM, LM, FNC, CLASS, IF, ELSE, WHILE, FOR, RETURN, BREAK, CONTINUE, SELF, OF, IDENT, IDENT,
	}, types(toks))
	assert.Equal(t, "abc_1", toks[14].Literal)
	assert.Equal(t, "'prime", toks[15].Literal)
}

func TestNextToken_IntegerAndFloat(t *testing.T) {
	toks := tokenize(t, `123 1.5 0.25`)
	assert.Equal(t, []TokenType{INT, FLOAT, FLOAT}, types(toks))
	assert.Equal(t, "123", toks[0].Literal)
	assert.Equal(t, "1.5", toks[1].Literal)
}

func TestNextToken_TrailingDotIsMemberAccess(t *testing.T) {
	// "3.foo" must lex as INT(3) DOT IDENT(foo), not a malformed float.
	toks := tokenize(t, `3.foo`)
	assert.Equal(t, []TokenType{INT, DOT, IDENT}, types(toks))
	assert.Equal(t, "3", toks[0].Literal)
	assert.Equal(t, "foo", toks[2].Literal)
}

func TestNextToken_MultipleDotsIsFatal(t *testing.T) {
	assert.Panics(t, func() {
		tokenize(t, `1.2.3`)
	})
}

func TestNextToken_StringEscapesNotExpanded(t *testing.T) {
	toks := tokenize(t, `"hello\nworld"`)
	assert.Equal(t, []TokenType{STRING}, types(toks))
	assert.Equal(t, `hello\nworld`, toks[0].Literal)
}

func TestNextToken_EscapedQuoteExtendsString(t *testing.T) {
	toks := tokenize(t, `"he said \"hi\""`)
	assert.Equal(t, []TokenType{STRING}, types(toks))
	assert.Equal(t, `he said \"hi\"`, toks[0].Literal)
}

func TestNextToken_UnterminatedStringIsFatal(t *testing.T) {
	assert.Panics(t, func() {
		tokenize(t, `"never closed`)
	})
}

func TestNextToken_LineComment(t *testing.T) {
	toks := tokenize(t, "1 + 2 // trailing comment\n+ 3")
	assert.Equal(t, []TokenType{INT, PLUS, INT, PLUS, INT}, types(toks))
}

func TestNextToken_LineAndColumnTracking(t *testing.T) {
	toks := tokenize(t, "let x\n= 1;")
	assert.Equal(t, 1, toks[0].Loc.Line)
	assign := toks[2]
	assert.Equal(t, ASSIGN, assign.Type)
	assert.Equal(t, 2, assign.Loc.Line)
}

func TestNextToken_UnknownCharacterIsSkipped(t *testing.T) {
	toks := tokenize(t, "1 @ 2")
	assert.Equal(t, []TokenType{INT, INT}, types(toks))
}
