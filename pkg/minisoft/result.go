package minisoft

import (
	"fmt"
	"strings"

	"github.com/Adel2411/minisoft-editor/internal/ast"
	"github.com/Adel2411/minisoft-editor/internal/diag"
	"github.com/Adel2411/minisoft-editor/internal/lexer"
	"github.com/Adel2411/minisoft-editor/internal/parser"
	"github.com/Adel2411/minisoft-editor/internal/quad"
	"github.com/Adel2411/minisoft-editor/internal/semantic"
	"github.com/Adel2411/minisoft-editor/internal/sourcemap"
)

// CompilationResult is the serialization surface for a full compile()
// call: every component is present and ordered from the source, and
// Errors is present if and only if at least one diagnostic exists across
// the three families.
type CompilationResult struct {
	Source      string       `json:"source,omitempty"`
	Tokens      []TokenView  `json:"tokens"`
	AST         *ProgramView `json:"ast"`
	SymbolTable []SymbolView `json:"symbol_table"`
	Quadruples  QuadProgView `json:"quadruples"`
	Errors      *ErrorsView  `json:"errors,omitempty"`
}

// HasErrors reports whether any diagnostic exists.
func (r *CompilationResult) HasErrors() bool { return r.Errors != nil }

type TokenView struct {
	Kind   string `json:"kind"`
	Value  string `json:"value"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Span   [2]int `json:"span"`
}

func tokensToView(tokens []lexer.Token) []TokenView {
	out := make([]TokenView, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, TokenView{
			Kind:   t.Kind.String(),
			Value:  t.Literal,
			Line:   t.Pos.Line,
			Column: t.Pos.Column,
			Span:   [2]int{t.Span.Start, t.Span.End},
		})
	}
	return out
}

// ProgramView is the located-AST serialization: every node carries
// {node, start, end}.
type ProgramView struct {
	Name         string        `json:"name"`
	Declarations []NodeView    `json:"declarations"`
	Statements   []NodeView    `json:"statements"`
	Start        int           `json:"start"`
	End          int           `json:"end"`
}

// NodeView is a generic tagged located node: Type names the AST variant,
// Fields holds its variant-specific payload (which may itself nest
// NodeView values for child expressions/statements).
type NodeView struct {
	Type   string         `json:"type"`
	Fields map[string]any `json:"fields,omitempty"`
	Start  int            `json:"start"`
	End    int            `json:"end"`
}

func programToView(p *ast.Program) *ProgramView {
	if p == nil {
		return &ProgramView{Declarations: []NodeView{}, Statements: []NodeView{}}
	}
	decls := make([]NodeView, 0, len(p.Declarations))
	for _, d := range p.Declarations {
		decls = append(decls, declToView(d))
	}
	stmts := make([]NodeView, 0, len(p.Statements))
	for _, s := range p.Statements {
		stmts = append(stmts, stmtToView(s))
	}
	return &ProgramView{
		Name: p.Name, Declarations: decls, Statements: stmts,
		Start: p.Span().Start, End: p.Span().End,
	}
}

func declToView(d ast.Declaration) NodeView {
	span := d.Span()
	switch decl := d.(type) {
	case *ast.VariableDecl:
		return NodeView{Type: "Variable", Start: span.Start, End: span.End, Fields: map[string]any{
			"names": decl.Names, "type": decl.Type.String(),
		}}
	case *ast.ArrayDecl:
		return NodeView{Type: "Array", Start: span.Start, End: span.End, Fields: map[string]any{
			"names": decl.Names, "type": decl.Type.String(), "size": decl.Size,
		}}
	case *ast.VariableWithInitDecl:
		return NodeView{Type: "VariableWithInit", Start: span.Start, End: span.End, Fields: map[string]any{
			"names": decl.Names, "type": decl.Type.String(), "init": exprToView(decl.Init),
		}}
	case *ast.ArrayWithInitDecl:
		inits := make([]NodeView, 0, len(decl.Inits))
		for _, e := range decl.Inits {
			inits = append(inits, exprToView(e))
		}
		return NodeView{Type: "ArrayWithInit", Start: span.Start, End: span.End, Fields: map[string]any{
			"names": decl.Names, "type": decl.Type.String(), "size": decl.Size, "inits": inits,
		}}
	case *ast.ConstantDecl:
		return NodeView{Type: "Constant", Start: span.Start, End: span.End, Fields: map[string]any{
			"name": decl.Name, "type": decl.Type.String(), "literal": exprToView(decl.Literal),
		}}
	}
	return NodeView{Type: "Unknown", Start: span.Start, End: span.End}
}

func stmtToView(s ast.Statement) NodeView {
	span := s.Span()
	switch stmt := s.(type) {
	case *ast.AssignmentStmt:
		return NodeView{Type: "Assignment", Start: span.Start, End: span.End, Fields: map[string]any{
			"target": exprToView(stmt.Target), "value": exprToView(stmt.Value),
		}}
	case *ast.IfThenStmt:
		return NodeView{Type: "IfThen", Start: span.Start, End: span.End, Fields: map[string]any{
			"cond": exprToView(stmt.Cond), "then": stmtsToView(stmt.Then),
		}}
	case *ast.IfThenElseStmt:
		return NodeView{Type: "IfThenElse", Start: span.Start, End: span.End, Fields: map[string]any{
			"cond": exprToView(stmt.Cond), "then": stmtsToView(stmt.Then), "else": stmtsToView(stmt.Else),
		}}
	case *ast.DoWhileStmt:
		return NodeView{Type: "DoWhile", Start: span.Start, End: span.End, Fields: map[string]any{
			"body": stmtsToView(stmt.Body), "cond": exprToView(stmt.Cond),
		}}
	case *ast.ForStmt:
		return NodeView{Type: "For", Start: span.Start, End: span.End, Fields: map[string]any{
			"var": stmt.Var, "from": exprToView(stmt.From), "to": exprToView(stmt.To),
			"step": exprToView(stmt.Step), "body": stmtsToView(stmt.Body),
		}}
	case *ast.InputStmt:
		return NodeView{Type: "Input", Start: span.Start, End: span.End, Fields: map[string]any{
			"target": exprToView(stmt.Target),
		}}
	case *ast.OutputStmt:
		args := make([]NodeView, 0, len(stmt.Args))
		for _, a := range stmt.Args {
			args = append(args, exprToView(a))
		}
		return NodeView{Type: "Output", Start: span.Start, End: span.End, Fields: map[string]any{"args": args}}
	case *ast.ScopeStmt:
		return NodeView{Type: "Scope", Start: span.Start, End: span.End, Fields: map[string]any{"body": stmtsToView(stmt.Body)}}
	case *ast.EmptyStmt:
		return NodeView{Type: "Empty", Start: span.Start, End: span.End}
	}
	return NodeView{Type: "Unknown", Start: span.Start, End: span.End}
}

func stmtsToView(stmts []ast.Statement) []NodeView {
	out := make([]NodeView, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, stmtToView(s))
	}
	return out
}

func exprToView(e ast.Expression) NodeView {
	span := e.Span()
	switch expr := e.(type) {
	case *ast.Identifier:
		return NodeView{Type: "Identifier", Start: span.Start, End: span.End, Fields: map[string]any{"name": expr.Name}}
	case *ast.ArrayAccess:
		return NodeView{Type: "ArrayAccess", Start: span.Start, End: span.End, Fields: map[string]any{
			"name": expr.Name, "index": exprToView(expr.Index),
		}}
	case *ast.Literal:
		fields := map[string]any{"kind": literalKindName(expr.Kind)}
		switch expr.Kind {
		case ast.IntLiteral:
			fields["value"] = expr.Int
		case ast.FloatLiteral:
			fields["value"] = expr.Float
		default:
			fields["value"] = expr.String
		}
		return NodeView{Type: "Literal", Start: span.Start, End: span.End, Fields: fields}
	case *ast.BinaryOp:
		return NodeView{Type: "BinaryOp", Start: span.Start, End: span.End, Fields: map[string]any{
			"op": expr.Op.String(), "left": exprToView(expr.Left), "right": exprToView(expr.Right),
		}}
	case *ast.UnaryOp:
		return NodeView{Type: "UnaryOp", Start: span.Start, End: span.End, Fields: map[string]any{
			"op": expr.Op.String(), "operand": exprToView(expr.Operand),
		}}
	}
	return NodeView{Type: "Unknown", Start: span.Start, End: span.End}
}

func literalKindName(k ast.LiteralKind) string {
	switch k {
	case ast.IntLiteral:
		return "Int"
	case ast.FloatLiteral:
		return "Float"
	default:
		return "String"
	}
}

// SymbolView is the serialized form of a semantic.Symbol.
type SymbolView struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Type   string `json:"type"`
	Value  any    `json:"value,omitempty"`
	Size   int    `json:"size,omitempty"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

func symbolsToView(t *semantic.SymbolTable) []SymbolView {
	if t == nil {
		return []SymbolView{}
	}
	syms := t.Ordered()
	out := make([]SymbolView, 0, len(syms))
	for _, s := range syms {
		out = append(out, SymbolView{
			Name: s.Name, Kind: s.Kind.String(), Type: s.Type.String(),
			Value: s.Value, Size: s.Size, Line: s.Pos.Line, Column: s.Pos.Column,
		})
	}
	return out
}

// QuadProgView is the serialized form of a quad.Program.
type QuadProgView struct {
	Quadruples []QuadView `json:"quadruples"`
	NextTemp   int        `json:"next_temp"`
	NextLabel  int        `json:"next_label"`
}

// QuadView is one serialized quadruple; each operand is tagged by kind.
type QuadView struct {
	Operation string       `json:"operation"`
	Operand1  OperandView  `json:"operand1"`
	Operand2  OperandView  `json:"operand2"`
	Result    OperandView  `json:"result"`
}

type OperandView struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

func operandToView(o quad.Operand) OperandView {
	kind := "none"
	switch o.Kind {
	case quad.OperandIntConst:
		kind = "int"
	case quad.OperandFloatConst:
		kind = "float"
	case quad.OperandStringConst:
		kind = "string"
	case quad.OperandVar:
		kind = "var"
	case quad.OperandTemp:
		kind = "temp"
	case quad.OperandLabel:
		kind = "label"
	case quad.OperandArrayElem:
		kind = "array_elem"
	}
	return OperandView{Kind: kind, Text: o.String()}
}

// Disassemble renders the quadruple program one instruction per line, in
// the same column layout as quad.Program.String().
func (p QuadProgView) Disassemble() string {
	var sb strings.Builder
	for i, q := range p.Quadruples {
		fmt.Fprintf(&sb, "%4d  %-14s %-10s %-10s %-10s\n", i, q.Operation, q.Operand1.Text, q.Operand2.Text, q.Result.Text)
	}
	return sb.String()
}

func quadProgramToView(p *quad.Program) QuadProgView {
	if p == nil {
		return QuadProgView{Quadruples: []QuadView{}}
	}
	out := make([]QuadView, 0, len(p.Quadruples))
	for _, q := range p.Quadruples {
		out = append(out, QuadView{
			Operation: q.Op.String(),
			Operand1:  operandToView(q.Operand1),
			Operand2:  operandToView(q.Operand2),
			Result:    operandToView(q.Result),
		})
	}
	return QuadProgView{Quadruples: out, NextTemp: p.NextTemp, NextLabel: p.NextLabel}
}

// ErrorsView is present if and only if at least one diagnostic exists.
type ErrorsView struct {
	Lexical  []DiagnosticView `json:"lexical,omitempty"`
	Syntax   *DiagnosticView  `json:"syntax,omitempty"`
	Semantic []DiagnosticView `json:"semantic,omitempty"`
}

// DiagnosticView is a formatted diagnostic: kind, message, position, and
// an optional fix-it suggestion (internal/diag).
type DiagnosticView struct {
	Kind       string `json:"kind"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
}

func errorsToView(lex []*lexer.LexError, syn *parser.SyntaxError, sem []*semantic.SemanticError, _ *sourcemap.SourceMap) *ErrorsView {
	if len(lex) == 0 && syn == nil && len(sem) == 0 {
		return nil
	}
	view := &ErrorsView{}
	for _, e := range lex {
		view.Lexical = append(view.Lexical, DiagnosticView{
			Kind: e.Kind.String(), Message: e.Message, Suggestion: e.Suggestion,
			Line: e.Pos.Line, Column: e.Pos.Column,
		})
	}
	if syn != nil {
		view.Syntax = &DiagnosticView{
			Kind: syn.Kind.String(), Message: syn.Message, Suggestion: diag.Format(syn).Suggestion,
			Line: syn.Pos.Line, Column: syn.Pos.Column,
		}
	}
	for _, e := range sem {
		view.Semantic = append(view.Semantic, DiagnosticView{
			Kind: e.Kind.String(), Message: e.Message, Suggestion: diag.Format(e).Suggestion,
			Line: e.Pos.Line, Column: e.Pos.Column,
		})
	}
	return view
}
