package parser

import (
	"github.com/Adel2411/minisoft-editor/internal/ast"
	"github.com/Adel2411/minisoft-editor/internal/lexer"
)

// parseStatement implements the `stmt` production.
func (p *Parser) parseStatement() ast.Statement {
	start := p.cur().Span.Start

	switch {
	case p.at(lexer.PUNCT, ";"):
		p.advance()
		return ast.NewEmptyStmt(ast.Span{Start: start, End: p.tokens[p.pos-1].Span.End})

	case p.at(lexer.PUNCT, "{"):
		body := p.parseBlock()
		return ast.NewScopeStmt(body, ast.Span{Start: start, End: p.tokens[p.pos-1].Span.End})

	case p.at(lexer.KEYWORD, "if"):
		return p.parseIf(start)

	case p.at(lexer.KEYWORD, "do"):
		return p.parseDoWhile(start)

	case p.at(lexer.KEYWORD, "for"):
		return p.parseFor(start)

	case p.at(lexer.KEYWORD, "input"):
		p.advance()
		p.expectPunctOrOp("(")
		target := p.parseLvalue()
		p.expectPunctOrOp(")")
		p.expectPunctOrOp(";")
		return ast.NewInputStmt(target, ast.Span{Start: start, End: p.tokens[p.pos-1].Span.End})

	case p.at(lexer.KEYWORD, "output"):
		p.advance()
		p.expectPunctOrOp("(")
		args := []ast.Expression{p.parseExpr()}
		for p.at(lexer.PUNCT, ",") {
			p.advance()
			args = append(args, p.parseExpr())
		}
		p.expectPunctOrOp(")")
		p.expectPunctOrOp(";")
		return ast.NewOutputStmt(args, ast.Span{Start: start, End: p.tokens[p.pos-1].Span.End})

	case p.cur().Kind == lexer.IDENT:
		target := p.parseLvalue()
		p.expectPunctOrOp(":=")
		value := p.parseExpr()
		p.expectPunctOrOp(";")
		return ast.NewAssignmentStmt(target, value, ast.Span{Start: start, End: p.tokens[p.pos-1].Span.End})
	}

	if p.atEOF() {
		p.fail(UnexpectedEOF, []string{"statement"}, "")
	}
	if p.cur().Kind == lexer.ILLEGAL {
		p.fail(InvalidToken, []string{"statement"}, "")
	}
	p.fail(UnexpectedToken, []string{"statement"}, "")
	panic("unreachable")
}

func (p *Parser) parseBlock() []ast.Statement {
	p.expectPunctOrOp("{")
	var stmts []ast.Statement
	for !p.at(lexer.PUNCT, "}") {
		if p.atEOF() {
			p.fail(UnexpectedEOF, []string{"}"}, "")
		}
		stmts = append(stmts, p.parseStatement())
	}
	p.expectPunctOrOp("}")
	return stmts
}

func (p *Parser) parseIf(start int) ast.Statement {
	p.advance() // 'if'
	p.expectPunctOrOp("(")
	cond := p.parseExpr()
	p.expectPunctOrOp(")")
	p.expectKeyword("then")
	then := p.parseBlock()
	if p.at(lexer.KEYWORD, "else") {
		p.advance()
		els := p.parseBlock()
		return ast.NewIfThenElseStmt(cond, then, els, ast.Span{Start: start, End: p.tokens[p.pos-1].Span.End})
	}
	return ast.NewIfThenStmt(cond, then, ast.Span{Start: start, End: p.tokens[p.pos-1].Span.End})
}

func (p *Parser) parseDoWhile(start int) ast.Statement {
	p.advance() // 'do'
	body := p.parseBlock()
	p.expectKeyword("while")
	p.expectPunctOrOp("(")
	cond := p.parseExpr()
	p.expectPunctOrOp(")")
	p.expectPunctOrOp(";")
	return ast.NewDoWhileStmt(body, cond, ast.Span{Start: start, End: p.tokens[p.pos-1].Span.End})
}

func (p *Parser) parseFor(start int) ast.Statement {
	p.advance() // 'for'
	v := p.expectIdent()
	p.expectKeyword("from")
	from := p.parseExpr()
	p.expectKeyword("to")
	to := p.parseExpr()
	p.expectKeyword("step")
	step := p.parseExpr()
	body := p.parseBlock()
	return ast.NewForStmt(v.Literal, from, to, step, body, ast.Span{Start: start, End: p.tokens[p.pos-1].Span.End})
}

// parseLvalue implements: lvalue := IDENT | IDENT '[' expr ']'
func (p *Parser) parseLvalue() ast.Lvalue {
	start := p.cur().Span.Start
	name := p.expectIdent()
	if p.at(lexer.PUNCT, "[") {
		p.advance()
		idx := p.parseExpr()
		p.expectPunctOrOp("]")
		return ast.NewArrayAccess(name.Literal, idx, ast.Span{Start: start, End: p.tokens[p.pos-1].Span.End})
	}
	return ast.NewIdentifier(name.Literal, ast.Span{Start: start, End: name.Span.End})
}
