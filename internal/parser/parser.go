// Package parser builds a located AST for a MiniSoft program from a token
// stream, stopping at the first unrecoverable syntax error.
package parser

import (
	"fmt"

	"github.com/Adel2411/minisoft-editor/internal/ast"
	"github.com/Adel2411/minisoft-editor/internal/lexer"
)

// Parser is a recursive-descent parser over a MiniSoft token stream.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// New creates a Parser over tokens, which must already be the full output
// of the lexer (EOF-terminated).
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// bail is used internally to unwind to Parse on the first syntax error;
// it is never observed outside this package.
type bail struct{ err *SyntaxError }

// Parse consumes the token stream and returns the Program AST, or the
// first syntax error encountered. It never returns both.
func (p *Parser) Parse() (program *ast.Program, err *SyntaxError) {
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bail)
			if !ok {
				panic(r)
			}
			err = b.err
			program = nil
		}
	}()
	return p.parseProgram(), nil
}

func (p *Parser) cur() lexer.Token  { return p.tokens[p.pos] }
func (p *Parser) peek() lexer.Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return p.tokens[len(p.tokens)-1]
}
func (p *Parser) advance() lexer.Token {
	t := p.cur()
	if p.pos+1 < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *Parser) atEOF() bool { return p.cur().Kind == lexer.EOF }

func (p *Parser) fail(kind ErrorKind, expected []string, message string) {
	tok := p.cur()
	if message == "" {
		if tok.Kind == lexer.EOF {
			message = fmt.Sprintf("unexpected end of input, expected %v", expected)
		} else {
			message = fmt.Sprintf("unexpected token %q, expected %v", tok.Literal, expected)
		}
	}
	panic(bail{&SyntaxError{
		Kind:     kind,
		Actual:   tok.Literal,
		Expected: expected,
		Pos:      tok.Pos,
		Message:  message,
	}})
}

// expectKeyword consumes the current token if it is KEYWORD/literal lit,
// else fails with UnexpectedToken (or UnexpectedEOF at end of input).
func (p *Parser) expectKeyword(lit string) lexer.Token {
	tok := p.cur()
	if tok.Kind == lexer.EOF {
		p.fail(UnexpectedEOF, []string{lit}, "")
	}
	if (tok.Kind == lexer.KEYWORD || tok.Kind == lexer.IDENT) && tok.Literal == lit {
		return p.advance()
	}
	p.fail(UnexpectedToken, []string{lit}, "")
	panic("unreachable")
}

func (p *Parser) expectPunctOrOp(lit string) lexer.Token {
	tok := p.cur()
	if tok.Kind == lexer.EOF {
		p.fail(UnexpectedEOF, []string{lit}, "")
	}
	if (tok.Kind == lexer.PUNCT || tok.Kind == lexer.OPERATOR) && tok.Literal == lit {
		return p.advance()
	}
	p.fail(UnexpectedToken, []string{lit}, "")
	panic("unreachable")
}

func (p *Parser) expectIdent() lexer.Token {
	tok := p.cur()
	if tok.Kind == lexer.EOF {
		p.fail(UnexpectedEOF, []string{"identifier"}, "")
	}
	if tok.Kind == lexer.IDENT {
		return p.advance()
	}
	if tok.Kind == lexer.ILLEGAL {
		p.fail(InvalidToken, []string{"identifier"}, fmt.Sprintf("invalid token %q", tok.Literal))
	}
	p.fail(UnexpectedToken, []string{"identifier"}, "")
	panic("unreachable")
}

func (p *Parser) at(kind lexer.TokenKind, lit string) bool {
	tok := p.cur()
	return tok.Kind == kind && tok.Literal == lit
}

func (p *Parser) atAny(kind lexer.TokenKind, lits ...string) bool {
	tok := p.cur()
	if tok.Kind != kind {
		return false
	}
	for _, l := range lits {
		if tok.Literal == l {
			return true
		}
	}
	return false
}

// parseProgram implements:
//
//	program := 'MainPrgm' IDENT ';' 'Var' decl* 'BeginPg' '{' stmt* '}' 'EndPg' ';'
func (p *Parser) parseProgram() *ast.Program {
	start := p.cur().Span.Start
	p.expectKeyword("MainPrgm")
	name := p.expectIdent()
	p.expectPunctOrOp(";")
	p.expectKeyword("Var")

	var decls []ast.Declaration
	for !p.at(lexer.KEYWORD, "BeginPg") {
		if p.atEOF() {
			p.fail(UnexpectedEOF, []string{"let", "@", "BeginPg"}, "")
		}
		decls = append(decls, p.parseDeclaration())
	}

	p.expectKeyword("BeginPg")
	p.expectPunctOrOp("{")
	var stmts []ast.Statement
	for !p.at(lexer.PUNCT, "}") {
		if p.atEOF() {
			p.fail(UnexpectedEOF, []string{"}"}, "")
		}
		stmts = append(stmts, p.parseStatement())
	}
	p.expectPunctOrOp("}")
	p.expectKeyword("EndPg")
	p.expectPunctOrOp(";")

	if !p.atEOF() {
		p.fail(ExtraToken, nil, fmt.Sprintf("unexpected trailing token %q after EndPg;", p.cur().Literal))
	}

	end := p.tokens[p.pos].Span.Start
	return ast.NewProgram(name.Literal, decls, stmts, ast.Span{Start: start, End: end})
}

func (p *Parser) parseType() ast.Type {
	if p.at(lexer.KEYWORD, "Int") {
		p.advance()
		return ast.IntType
	}
	if p.at(lexer.KEYWORD, "Float") {
		p.advance()
		return ast.FloatType
	}
	p.fail(UnexpectedToken, []string{"Int", "Float"}, "")
	panic("unreachable")
}

// parseDeclaration implements the `decl` production, including the
// '@' 'define' 'Const' alternative.
func (p *Parser) parseDeclaration() ast.Declaration {
	start := p.cur().Span.Start

	if p.at(lexer.PUNCT, "@") {
		p.advance()
		p.expectKeyword("define")
		p.expectKeyword("Const")
		nameTok := p.expectIdent()
		p.expectPunctOrOp(":")
		typ := p.parseType()
		p.expectPunctOrOp("=")
		lit := p.parseLiteral()
		p.expectPunctOrOp(";")
		end := p.tokens[p.pos-1].Span.End
		return ast.NewConstantDecl(nameTok.Literal, typ, lit, ast.Span{Start: start, End: end})
	}

	p.expectKeyword("let")
	names := p.parseNames()
	p.expectPunctOrOp(":")

	isArray := false
	var elemType ast.Type
	var size int
	if p.at(lexer.PUNCT, "[") {
		isArray = true
		p.advance()
		elemType = p.parseType()
		p.expectPunctOrOp(";")
		sizeTok := p.expectIntToken()
		size = sizeTok
		p.expectPunctOrOp("]")
	} else {
		elemType = p.parseType()
	}

	if p.at(lexer.OPERATOR, "=") || p.at(lexer.PUNCT, "=") {
		p.advance()
		if isArray {
			inits := p.parseInitList()
			p.expectPunctOrOp(";")
			end := p.tokens[p.pos-1].Span.End
			return ast.NewArrayWithInitDecl(names, elemType, size, inits, ast.Span{Start: start, End: end})
		}
		init := p.parseExpr()
		p.expectPunctOrOp(";")
		end := p.tokens[p.pos-1].Span.End
		return ast.NewVariableWithInitDecl(names, elemType, init, ast.Span{Start: start, End: end})
	}

	p.expectPunctOrOp(";")
	end := p.tokens[p.pos-1].Span.End
	if isArray {
		return ast.NewArrayDecl(names, elemType, size, ast.Span{Start: start, End: end})
	}
	return ast.NewVariableDecl(names, elemType, ast.Span{Start: start, End: end})
}

func (p *Parser) parseNames() []string {
	names := []string{p.expectIdent().Literal}
	for p.at(lexer.PUNCT, ",") {
		p.advance()
		names = append(names, p.expectIdent().Literal)
	}
	return names
}

// parseInitList implements: '{' expr (',' expr)* '}' | '[' literal (',' literal)* ']'
func (p *Parser) parseInitList() []ast.Expression {
	if p.at(lexer.PUNCT, "{") {
		p.advance()
		var exprs []ast.Expression
		exprs = append(exprs, p.parseExpr())
		for p.at(lexer.PUNCT, ",") {
			p.advance()
			exprs = append(exprs, p.parseExpr())
		}
		p.expectPunctOrOp("}")
		return exprs
	}
	p.expectPunctOrOp("[")
	var exprs []ast.Expression
	exprs = append(exprs, p.parseLiteral())
	for p.at(lexer.PUNCT, ",") {
		p.advance()
		exprs = append(exprs, p.parseLiteral())
	}
	p.expectPunctOrOp("]")
	return exprs
}

func (p *Parser) expectIntToken() int {
	tok := p.cur()
	if tok.Kind == lexer.EOF {
		p.fail(UnexpectedEOF, []string{"integer"}, "")
	}
	if tok.Kind != lexer.INT {
		p.fail(UnexpectedToken, []string{"integer"}, "")
	}
	p.advance()
	return int(parseSignedInt(tok.Literal))
}

func (p *Parser) parseLiteral() *ast.Literal {
	tok := p.cur()
	span := tok.Span
	switch tok.Kind {
	case lexer.INT:
		p.advance()
		return ast.NewIntLiteral(int32(parseSignedInt(tok.Literal)), span)
	case lexer.FLOAT:
		p.advance()
		return ast.NewFloatLiteral(float32(parseFloat(tok.Literal)), span)
	case lexer.STRING:
		p.advance()
		return ast.NewStringLiteral(tok.Literal, span)
	case lexer.EOF:
		p.fail(UnexpectedEOF, []string{"literal"}, "")
	}
	p.fail(UnexpectedToken, []string{"literal"}, "")
	panic("unreachable")
}
