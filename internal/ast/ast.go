// Package ast defines the located abstract syntax tree for MiniSoft.
// Every node pairs a variant payload with a byte span (Located[T] in
// spec terms); spans nest strictly along parent/child edges.
package ast

import "github.com/Adel2411/minisoft-editor/internal/lexer"

// Span is re-exported from lexer so callers need only import ast.
type Span = lexer.Span

// Node is the base interface every AST node implements.
type Node interface {
	Span() Span
}

// Type is a MiniSoft primitive type tag.
type Type int

const (
	IntType Type = iota
	FloatType
	StringType
)

func (t Type) String() string {
	switch t {
	case IntType:
		return "Int"
	case FloatType:
		return "Float"
	case StringType:
		return "String"
	default:
		return "Unknown"
	}
}

// Program is the root AST node: a program name, ordered declarations, and
// ordered statements.
type Program struct {
	Name         string
	Declarations []Declaration
	Statements   []Statement
	span         Span
}

func NewProgram(name string, decls []Declaration, stmts []Statement, span Span) *Program {
	return &Program{Name: name, Declarations: decls, Statements: stmts, span: span}
}
func (p *Program) Span() Span { return p.span }

// Declaration is implemented by every declaration variant.
type Declaration interface {
	Node
	declarationNode()
}

// VariableDecl is Declaration::Variable(names, type).
type VariableDecl struct {
	Names []string
	Type  Type
	span  Span
}

func NewVariableDecl(names []string, typ Type, span Span) *VariableDecl {
	return &VariableDecl{Names: names, Type: typ, span: span}
}
func (d *VariableDecl) Span() Span      { return d.span }
func (d *VariableDecl) declarationNode() {}

// ArrayDecl is Declaration::Array(names, type, size).
type ArrayDecl struct {
	Names []string
	Type  Type
	Size  int
	span  Span
}

func NewArrayDecl(names []string, typ Type, size int, span Span) *ArrayDecl {
	return &ArrayDecl{Names: names, Type: typ, Size: size, span: span}
}
func (d *ArrayDecl) Span() Span      { return d.span }
func (d *ArrayDecl) declarationNode() {}

// VariableWithInitDecl is Declaration::VariableWithInit(names, type, init_expr).
type VariableWithInitDecl struct {
	Names []string
	Type  Type
	Init  Expression
	span  Span
}

func NewVariableWithInitDecl(names []string, typ Type, init Expression, span Span) *VariableWithInitDecl {
	return &VariableWithInitDecl{Names: names, Type: typ, Init: init, span: span}
}
func (d *VariableWithInitDecl) Span() Span      { return d.span }
func (d *VariableWithInitDecl) declarationNode() {}

// ArrayWithInitDecl is Declaration::ArrayWithInit(names, type, size, init_exprs).
type ArrayWithInitDecl struct {
	Names []string
	Type  Type
	Size  int
	Inits []Expression
	span  Span
}

func NewArrayWithInitDecl(names []string, typ Type, size int, inits []Expression, span Span) *ArrayWithInitDecl {
	return &ArrayWithInitDecl{Names: names, Type: typ, Size: size, Inits: inits, span: span}
}
func (d *ArrayWithInitDecl) Span() Span      { return d.span }
func (d *ArrayWithInitDecl) declarationNode() {}

// ConstantDecl is Declaration::Constant(name, type, literal).
type ConstantDecl struct {
	Name    string
	Type    Type
	Literal *Literal
	span    Span
}

func NewConstantDecl(name string, typ Type, lit *Literal, span Span) *ConstantDecl {
	return &ConstantDecl{Name: name, Type: typ, Literal: lit, span: span}
}
func (d *ConstantDecl) Span() Span      { return d.span }
func (d *ConstantDecl) declarationNode() {}
