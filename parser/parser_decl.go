/*
File    : skai/parser/parser_decl.go
Package : parser
*/
package parser

import (
	"github.com/akashmaji946/skai/ast"
	"github.com/akashmaji946/skai/lexer"
)

// declaration := var_decl | function_decl | class_decl | statement
func (p *Parser) declaration() ast.Stmt {
	switch p.curr.Type {
	case lexer.LET:
		return p.varDecl()
	case lexer.FNC:
		return p.functionDecl()
	case lexer.CLASS:
		return p.classDecl()
	default:
		return p.statement()
	}
}

// varDecl := "let" ["imm"] name ["=" expr] ";"
func (p *Parser) varDecl() *ast.VarDecl {
	loc := p.loc()
	p.advance() // consume "let"
	isConst := p.match(lexer.IMM)
	name := p.expect(lexer.IDENT, "variable name").Literal

	var init ast.Expr
	if p.match(lexer.ASSIGN) {
		init = p.expression()
	} else if isConst {
		p.errorf("const variable %q must be initialized", name)
	}
	p.expect(lexer.SEMI, `";"`)
	return &ast.VarDecl{Loc: loc, Name: name, Init: init, Const: isConst}
}

// functionDecl := "fnc" name "(" arg_list? ")" block
func (p *Parser) functionDecl() *ast.FunctionDecl {
	loc := p.loc()
	p.advance() // consume "fnc"
	name := p.expect(lexer.IDENT, "function name").Literal
	params := p.paramList()
	body := p.block()
	return &ast.FunctionDecl{Loc: loc, Name: name, Params: params, Body: body}
}

// lambda := "lm" "(" arg_list? ")" block
//
// skai reserves "lm" for an anonymous function literal used as an
// expression (e.g. passed as a callback argument); it shares the
// named form's parameter and body grammar, just without a name.
func (p *Parser) lambda() *ast.FunctionDecl {
	loc := p.loc()
	p.advance() // consume "lm"
	params := p.paramList()
	body := p.block()
	return &ast.FunctionDecl{Loc: loc, Params: params, Body: body}
}

// paramList parses "(" (name ["=" expr] ("," name ["=" expr])*)? ")".
func (p *Parser) paramList() []*ast.Argument {
	p.expect(lexer.LPAREN, `"("`)
	var params []*ast.Argument
	for !p.check(lexer.RPAREN) {
		if len(params) >= maxParams {
			p.errorf("too many parameters (max %d)", maxParams)
		}
		name := p.expect(lexer.IDENT, "parameter name").Literal
		arg := &ast.Argument{Name: name}
		if p.match(lexer.ASSIGN) {
			arg.Default = p.expression()
		}
		params = append(params, arg)
		if !p.match(lexer.COMMA) {
			break
		}
	}
	p.expect(lexer.RPAREN, `")"`)
	return params
}

// classDecl := "class" name ["of" name] "{" function_decl* "}"
//
// Minimal object model per the language's design notes: a class is a
// named bag of method declarations; there is no field declaration
// syntax, and inheritance ("of") is parsed but not resolved further
// than recording the superclass name would require — since the
// closed spec has no slot for it, it is accepted syntactically and
// otherwise ignored.
func (p *Parser) classDecl() *ast.ClassDecl {
	loc := p.loc()
	p.advance() // consume "class"
	name := p.expect(lexer.IDENT, "class name").Literal
	if p.match(lexer.OF) {
		p.expect(lexer.IDENT, "superclass name")
	}
	p.expect(lexer.LBRACE, `"{"`)
	var members []*ast.FunctionDecl
	for !p.check(lexer.RBRACE) && !p.atEnd() {
		members = append(members, p.functionDecl())
	}
	p.expect(lexer.RBRACE, `"}"`)
	return &ast.ClassDecl{Loc: loc, Name: name, Members: members}
}

// statement := if | while | for | return | block | expr ";"
func (p *Parser) statement() ast.Stmt {
	switch p.curr.Type {
	case lexer.IF:
		return p.ifStmt()
	case lexer.WHILE:
		return p.whileStmt()
	case lexer.FOR:
		return p.forStmt()
	case lexer.RETURN:
		return p.returnStmt()
	case lexer.LBRACE:
		return p.block()
	default:
		return p.exprStmt()
	}
}

// ifStmt := "if" ["let" var_decl] expression statement ["else" statement]
func (p *Parser) ifStmt() *ast.If {
	loc := p.loc()
	p.advance() // consume "if"
	var init *ast.VarDecl
	if p.check(lexer.LET) {
		init = p.varDecl()
	}
	cond := p.expression()
	then := p.statement()
	var elseBranch ast.Stmt
	if p.match(lexer.ELSE) {
		elseBranch = p.statement()
	}
	return &ast.If{Loc: loc, Init: init, Cond: cond, Then: then, Else: elseBranch}
}

// whileStmt := "while" ["let" var_decl] expression statement
func (p *Parser) whileStmt() *ast.While {
	loc := p.loc()
	p.advance() // consume "while"
	var init *ast.VarDecl
	if p.check(lexer.LET) {
		init = p.varDecl()
	}
	cond := p.expression()
	body := p.statement()
	return &ast.While{Loc: loc, Init: init, Cond: cond, Body: body}
}

// forStmt := "for" "let" var_decl expression ";" expression statement
//
// The initializer uses the var_decl form and consumes its own
// trailing ";"; the condition is followed by a second ";", then the
// step expression (no trailing ";" of its own — the body follows
// directly).
func (p *Parser) forStmt() *ast.For {
	loc := p.loc()
	p.advance() // consume "for"
	init := p.varDecl()
	cond := p.expression()
	p.expect(lexer.SEMI, `";"`)
	step := p.expression()
	body := p.statement()
	return &ast.For{Loc: loc, Init: init, Cond: cond, Step: step, Body: body}
}

// returnStmt := "return" [expression] ";"
func (p *Parser) returnStmt() *ast.Return {
	loc := p.loc()
	p.advance() // consume "return"
	var value ast.Expr
	if !p.check(lexer.SEMI) {
		value = p.expression()
	}
	p.expect(lexer.SEMI, `";"`)
	return &ast.Return{Loc: loc, Value: value}
}

// block := "{" declaration* "}"
func (p *Parser) block() *ast.Block {
	loc := p.loc()
	p.expect(lexer.LBRACE, `"{"`)
	var stmts []ast.Stmt
	for !p.check(lexer.RBRACE) && !p.atEnd() {
		stmts = append(stmts, p.declaration())
	}
	p.expect(lexer.RBRACE, `"}"`)
	return &ast.Block{Loc: loc, Statements: stmts}
}

// exprStmt := expression ";"
func (p *Parser) exprStmt() ast.Stmt {
	expr := p.expression()
	p.expect(lexer.SEMI, `";"`)
	return expr
}
