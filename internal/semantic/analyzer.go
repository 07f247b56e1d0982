// Package semantic walks a MiniSoft AST, builds a flat symbol table, and
// validates declarations, types, constantness, and constant-foldable
// array index bounds. It never stops on the first error it can localize —
// every semantic error is collected in source order.
package semantic

import (
	"fmt"
	"math"

	"github.com/Adel2411/minisoft-editor/internal/ast"
	"github.com/Adel2411/minisoft-editor/internal/sourcemap"
)

// Config controls analyzer limits and reporting options that don't change
// error-kind semantics, only how strictly they're enforced.
type Config struct {
	IntMin           int64
	IntMax           int64
	WarningsAsErrors bool
}

// DefaultConfig returns MiniSoft's fixed 32-bit signed integer range with
// warnings kept separate from errors.
func DefaultConfig() Config {
	return Config{IntMin: math.MinInt32, IntMax: math.MaxInt32}
}

// Analyzer performs semantic analysis on a MiniSoft program.
type Analyzer struct {
	symbols  *SymbolTable
	smap     *sourcemap.SourceMap
	cfg      Config
	errors   []*SemanticError
	warnings []string
}

// New creates an Analyzer over source (needed to resolve AST byte spans
// into line/column for diagnostics) under the default Config.
func New(source string) *Analyzer {
	return NewWithConfig(source, DefaultConfig())
}

// NewWithConfig creates an Analyzer under cfg, honoring a caller-supplied
// integer range and warnings-as-errors policy instead of MiniSoft's fixed
// defaults.
func NewWithConfig(source string, cfg Config) *Analyzer {
	return &Analyzer{symbols: NewSymbolTable(), smap: sourcemap.New(source), cfg: cfg}
}

// Analyze runs a three-pass analysis and returns the populated symbol
// table plus every semantic error found.
func (a *Analyzer) Analyze(prog *ast.Program) (*SymbolTable, []*SemanticError) {
	if len(prog.Statements) == 0 {
		a.errorAt(EmptyProgram, prog.Span().Start, "", "program has no statements")
	}

	// Pass 1: register declarations in order.
	for _, decl := range prog.Declarations {
		a.registerDeclaration(decl)
	}

	// Pass 2 happens inside registerDeclaration for init expressions, so
	// that a later declaration can't be referenced by an earlier init.

	// Pass 3: walk statements in order.
	for _, stmt := range prog.Statements {
		a.checkStatement(stmt)
	}

	a.checkUnusedDeclarations(prog)

	return a.symbols, a.errors
}

// checkUnusedDeclarations reports every declared variable or constant
// never referenced anywhere in Statements. By default this is a warning,
// distinct from Errors(); with Config.WarningsAsErrors it is folded into
// the error list as UnusedDeclaration instead.
func (a *Analyzer) checkUnusedDeclarations(prog *ast.Program) {
	used := make(map[string]bool)
	collectReferencedNames(prog.Statements, used)
	for _, sym := range a.symbols.Ordered() {
		if sym.Kind != VariableKind && sym.Kind != ConstantKind {
			continue
		}
		if used[sym.Name] {
			continue
		}
		kindWord := "variable"
		if sym.Kind == ConstantKind {
			kindWord = "constant"
		}
		msg := fmt.Sprintf("%s '%s' declared at line %d is never used", kindWord, sym.Name, sym.Pos.Line)
		if a.cfg.WarningsAsErrors {
			a.errors = append(a.errors, &SemanticError{Kind: UnusedDeclaration, Name: sym.Name, Pos: sym.Pos, Message: msg})
			continue
		}
		a.warnings = append(a.warnings, msg)
	}
}

func collectReferencedNames(stmts []ast.Statement, out map[string]bool) {
	for _, s := range stmts {
		collectReferencedNamesStmt(s, out)
	}
}

func collectReferencedNamesStmt(stmt ast.Statement, out map[string]bool) {
	switch s := stmt.(type) {
	case *ast.AssignmentStmt:
		collectReferencedNamesLvalue(s.Target, out)
		collectReferencedNamesExpr(s.Value, out)
	case *ast.IfThenStmt:
		collectReferencedNamesExpr(s.Cond, out)
		collectReferencedNames(s.Then, out)
	case *ast.IfThenElseStmt:
		collectReferencedNamesExpr(s.Cond, out)
		collectReferencedNames(s.Then, out)
		collectReferencedNames(s.Else, out)
	case *ast.DoWhileStmt:
		collectReferencedNames(s.Body, out)
		collectReferencedNamesExpr(s.Cond, out)
	case *ast.ForStmt:
		out[s.Var] = true
		collectReferencedNamesExpr(s.From, out)
		collectReferencedNamesExpr(s.To, out)
		collectReferencedNamesExpr(s.Step, out)
		collectReferencedNames(s.Body, out)
	case *ast.InputStmt:
		collectReferencedNamesLvalue(s.Target, out)
	case *ast.OutputStmt:
		for _, arg := range s.Args {
			collectReferencedNamesExpr(arg, out)
		}
	case *ast.ScopeStmt:
		collectReferencedNames(s.Body, out)
	}
}

func collectReferencedNamesLvalue(target ast.Lvalue, out map[string]bool) {
	switch t := target.(type) {
	case *ast.Identifier:
		out[t.Name] = true
	case *ast.ArrayAccess:
		out[t.Name] = true
		collectReferencedNamesExpr(t.Index, out)
	}
}

func collectReferencedNamesExpr(expr ast.Expression, out map[string]bool) {
	switch e := expr.(type) {
	case *ast.Identifier:
		out[e.Name] = true
	case *ast.ArrayAccess:
		out[e.Name] = true
		collectReferencedNamesExpr(e.Index, out)
	case *ast.UnaryOp:
		collectReferencedNamesExpr(e.Operand, out)
	case *ast.BinaryOp:
		collectReferencedNamesExpr(e.Left, out)
		collectReferencedNamesExpr(e.Right, out)
	}
}

// Warnings returns non-fatal observations distinct from the collected
// errors; it never changes error-kind semantics, only adds advisory
// notes a caller may choose to surface.
func (a *Analyzer) Warnings() []string { return a.warnings }

func (a *Analyzer) posOf(offset int) sourcemap.Position { return a.smap.PositionOf(offset) }

func (a *Analyzer) errorAt(kind ErrorKind, offset int, name, message string) {
	a.errors = append(a.errors, &SemanticError{Kind: kind, Name: name, Pos: a.posOf(offset), Message: message})
}

// ---------------------------------------------------------------------
// Declarations
// ---------------------------------------------------------------------

func (a *Analyzer) declare(name string, kind Kind, typ ast.Type, value interface{}, size int, offset int) {
	pos := a.posOf(offset)
	sym := &Symbol{Name: name, Kind: kind, Type: typ, Value: value, Size: size, Pos: pos}
	if original, ok := a.symbols.Declare(sym); !ok {
		a.errors = append(a.errors, &SemanticError{
			Kind:        DuplicateDeclaration,
			Name:        name,
			Pos:         pos,
			OriginalPos: original.Pos,
			Message:     fmt.Sprintf("'%s' is already declared at line %d, column %d", name, original.Pos.Line, original.Pos.Column),
		})
	}
}

func (a *Analyzer) registerDeclaration(decl ast.Declaration) {
	switch d := decl.(type) {
	case *ast.VariableDecl:
		for _, name := range d.Names {
			a.declare(name, VariableKind, d.Type, nil, 0, d.Span().Start)
		}

	case *ast.ArrayDecl:
		if d.Size <= 0 {
			for _, name := range d.Names {
				a.errorAt(InvalidArraySize, d.Span().Start, name,
					fmt.Sprintf("array '%s' must have a strictly positive size, got %d", name, d.Size))
			}
		}
		for _, name := range d.Names {
			a.declare(name, ArrayKind, d.Type, nil, d.Size, d.Span().Start)
		}

	case *ast.VariableWithInitDecl:
		initType, initVal, _ := a.checkExpr(d.Init)
		if initType != d.Type {
			a.errorAt(TypeMismatch, d.Init.Span().Start, "",
				fmt.Sprintf("cannot initialize %s variable with %s value", d.Type, initType))
		}
		for _, name := range d.Names {
			a.declare(name, VariableKind, d.Type, initVal, 0, d.Span().Start)
		}

	case *ast.ArrayWithInitDecl:
		if d.Size <= 0 {
			for _, name := range d.Names {
				a.errorAt(InvalidArraySize, d.Span().Start, name,
					fmt.Sprintf("array '%s' must have a strictly positive size, got %d", name, d.Size))
			}
		}
		if len(d.Inits) != d.Size {
			for _, name := range d.Names {
				a.errors = append(a.errors, &SemanticError{
					Kind: ArraySizeMismatch, Name: name, Pos: a.posOf(d.Span().Start),
					Expected: fmt.Sprintf("%d", d.Size), Found: fmt.Sprintf("%d", len(d.Inits)),
					Message: fmt.Sprintf("array '%s' declared with size %d but initialized with %d elements", name, d.Size, len(d.Inits)),
				})
			}
		}
		values := make([]interface{}, len(d.Inits))
		for i, initExpr := range d.Inits {
			t, v, _ := a.checkExpr(initExpr)
			if t != d.Type {
				a.errorAt(TypeMismatch, initExpr.Span().Start, "",
					fmt.Sprintf("array element %d: cannot assign %s value to %s array", i, t, d.Type))
			}
			values[i] = v
		}
		for _, name := range d.Names {
			a.declare(name, ArrayKind, d.Type, values, d.Size, d.Span().Start)
		}

	case *ast.ConstantDecl:
		litType, litVal := a.literalTypeValue(d.Literal)
		if litType != d.Type {
			a.errorAt(TypeMismatch, d.Literal.Span().Start, d.Name,
				fmt.Sprintf("constant '%s' declared as %s but initialized with %s literal", d.Name, d.Type, litType))
		}
		a.declare(d.Name, ConstantKind, d.Type, litVal, 0, d.Span().Start)
	}
}

func (a *Analyzer) literalTypeValue(lit *ast.Literal) (ast.Type, interface{}) {
	switch lit.Kind {
	case ast.IntLiteral:
		return ast.IntType, lit.Int
	case ast.FloatLiteral:
		return ast.FloatType, lit.Float
	default:
		return ast.StringType, lit.String
	}
}

// ---------------------------------------------------------------------
// Statements
// ---------------------------------------------------------------------

func (a *Analyzer) checkStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.AssignmentStmt:
		a.checkAssignTarget(s.Target)
		targetType, targetOK := a.lvalueType(s.Target)
		valType, _, _ := a.checkExpr(s.Value)
		if targetOK && valType != targetType {
			a.errorAt(TypeMismatch, s.Value.Span().Start, "",
				fmt.Sprintf("cannot assign %s value to %s target", valType, targetType))
		}

	case *ast.IfThenStmt:
		a.checkCondition(s.Cond)
		a.checkBlock(s.Then)

	case *ast.IfThenElseStmt:
		a.checkCondition(s.Cond)
		a.checkBlock(s.Then)
		a.checkBlock(s.Else)

	case *ast.DoWhileStmt:
		a.checkBlock(s.Body)
		a.checkCondition(s.Cond)

	case *ast.ForStmt:
		if sym, ok := a.symbols.Lookup(s.Var); !ok {
			a.errorAt(UndeclaredIdentifier, s.Span().Start, s.Var, fmt.Sprintf("'%s' is not declared", s.Var))
		} else if sym.Kind == ConstantKind {
			a.errors = append(a.errors, &SemanticError{Kind: ConstantModification, Name: s.Var, Pos: a.posOf(s.Span().Start),
				Message: fmt.Sprintf("'%s' is a constant and cannot be used as a loop variable", s.Var)})
		}
		a.checkExpr(s.From)
		a.checkExpr(s.To)
		a.checkExpr(s.Step)
		a.checkBlock(s.Body)

	case *ast.InputStmt:
		a.checkAssignTarget(s.Target)

	case *ast.OutputStmt:
		for _, arg := range s.Args {
			a.checkExpr(arg)
		}

	case *ast.ScopeStmt:
		a.checkBlock(s.Body)

	case *ast.EmptyStmt:
		// no-op
	}
}

func (a *Analyzer) checkBlock(stmts []ast.Statement) {
	for _, s := range stmts {
		a.checkStatement(s)
	}
}

// checkAssignTarget validates an lvalue used as an assignment or input
// target: it must be declared, non-constant, and (for subscripts) an
// actual array with a statically in-range index when foldable.
func (a *Analyzer) checkAssignTarget(target ast.Lvalue) {
	switch t := target.(type) {
	case *ast.Identifier:
		sym, ok := a.symbols.Lookup(t.Name)
		if !ok {
			a.errorAt(UndeclaredIdentifier, t.Span().Start, t.Name, fmt.Sprintf("'%s' is not declared", t.Name))
			return
		}
		if sym.Kind == ConstantKind {
			a.errors = append(a.errors, &SemanticError{Kind: ConstantModification, Name: t.Name, Pos: a.posOf(t.Span().Start),
				Message: fmt.Sprintf("'%s' is a constant and cannot be modified", t.Name)})
		}
		if sym.Kind == ArrayKind {
			a.errorAt(TypeMismatch, t.Span().Start, t.Name, fmt.Sprintf("'%s' is an array and must be subscripted", t.Name))
		}

	case *ast.ArrayAccess:
		sym, ok := a.symbols.Lookup(t.Name)
		idxType, idxVal, _ := a.checkExpr(t.Index)
		if !ok {
			a.errorAt(UndeclaredIdentifier, t.Span().Start, t.Name, fmt.Sprintf("'%s' is not declared", t.Name))
			return
		}
		if sym.Kind != ArrayKind {
			a.errorAt(NonArrayIndexing, t.Span().Start, t.Name, fmt.Sprintf("'%s' is not an array", t.Name))
		} else {
			a.checkArrayIndex(sym, t, idxType, idxVal)
		}
		if idxType != ast.IntType {
			a.errorAt(TypeMismatch, t.Index.Span().Start, "", "array index must be an integer expression")
		}
	}
}

func (a *Analyzer) checkArrayIndex(sym *Symbol, t *ast.ArrayAccess, idxType ast.Type, idxVal interface{}) {
	if idxType != ast.IntType {
		return
	}
	if v, ok := idxVal.(int32); ok {
		idx := int(v)
		if idx < 0 || idx >= sym.Size {
			a.errors = append(a.errors, &SemanticError{
				Kind: ArrayIndexOutOfBounds, Name: t.Name, Pos: a.posOf(t.Span().Start),
				Index: idx, Size: sym.Size,
				Message: fmt.Sprintf("index %d is out of bounds for array '%s' of size %d", idx, t.Name, sym.Size),
			})
		}
	}
}

func (a *Analyzer) lvalueType(target ast.Lvalue) (ast.Type, bool) {
	switch t := target.(type) {
	case *ast.Identifier:
		sym, ok := a.symbols.Lookup(t.Name)
		if !ok {
			return 0, false
		}
		return sym.Type, true
	case *ast.ArrayAccess:
		sym, ok := a.symbols.Lookup(t.Name)
		if !ok {
			return 0, false
		}
		return sym.Type, true
	}
	return 0, false
}

// checkCondition enforces: relational/logical ops always yield Boolean;
// any other integer value used directly as a condition is an error.
func (a *Analyzer) checkCondition(cond ast.Expression) {
	typ, _, isBool := a.checkExpr(cond)
	if typ == ast.IntType && !isBool {
		a.errorAt(InvalidConditionValue, cond.Span().Start, "",
			"condition must be the direct result of a relational or logical operator")
	}
}

// ---------------------------------------------------------------------
// Expressions
// ---------------------------------------------------------------------

// checkExpr type-checks expr, returning its type, its constant-folded
// value when statically known (else nil), and whether it is the direct
// result of a relational/logical operator (a "Boolean" value).
func (a *Analyzer) checkExpr(expr ast.Expression) (ast.Type, interface{}, bool) {
	switch e := expr.(type) {
	case *ast.Literal:
		t, v := a.literalTypeValue(e)
		return t, v, false

	case *ast.Identifier:
		sym, ok := a.symbols.Lookup(e.Name)
		if !ok {
			a.errorAt(UndeclaredIdentifier, e.Span().Start, e.Name, fmt.Sprintf("'%s' is not declared", e.Name))
			return ast.IntType, nil, false
		}
		if sym.Kind == ArrayKind {
			a.errorAt(TypeMismatch, e.Span().Start, e.Name, fmt.Sprintf("'%s' is an array and must be subscripted", e.Name))
		}
		return sym.Type, sym.Value, false

	case *ast.ArrayAccess:
		sym, ok := a.symbols.Lookup(e.Name)
		idxType, idxVal, _ := a.checkExpr(e.Index)
		if !ok {
			a.errorAt(UndeclaredIdentifier, e.Span().Start, e.Name, fmt.Sprintf("'%s' is not declared", e.Name))
			return ast.IntType, nil, false
		}
		if sym.Kind != ArrayKind {
			a.errorAt(NonArrayIndexing, e.Span().Start, e.Name, fmt.Sprintf("'%s' is not an array", e.Name))
		} else {
			a.checkArrayIndex(sym, e, idxType, idxVal)
		}
		if idxType != ast.IntType {
			a.errorAt(TypeMismatch, e.Index.Span().Start, "", "array index must be an integer expression")
		}
		return sym.Type, nil, false

	case *ast.UnaryOp:
		operandType, operandVal, _ := a.checkExpr(e.Operand)
		if e.Op == ast.OpNot {
			if operandType != ast.IntType {
				a.errorAt(TypeMismatch, e.Span().Start, "", "'not' requires a Boolean (integer) operand")
			}
			if v, ok := operandVal.(int32); ok {
				return ast.IntType, boolInt32(v == 0), true
			}
			return ast.IntType, nil, true
		}
		// OpNeg
		if operandType != ast.IntType && operandType != ast.FloatType {
			a.errorAt(TypeMismatch, e.Span().Start, "", "unary '-' requires a numeric operand")
			return operandType, nil, false
		}
		if operandType == ast.IntType {
			if v, ok := operandVal.(int32); ok {
				return ast.IntType, a.checkInt32Overflow(-int64(v), e.Span().Start), false
			}
			return ast.IntType, nil, false
		}
		if v, ok := operandVal.(float32); ok {
			return ast.FloatType, float32(-v), false
		}
		return ast.FloatType, nil, false

	case *ast.BinaryOp:
		return a.checkBinary(e)
	}
	return ast.IntType, nil, false
}

func (a *Analyzer) checkBinary(e *ast.BinaryOp) (ast.Type, interface{}, bool) {
	leftType, leftVal, leftBool := a.checkExpr(e.Left)
	rightType, rightVal, rightBool := a.checkExpr(e.Right)

	switch {
	case e.Op.IsLogical():
		if (leftType != ast.IntType) || (rightType != ast.IntType) {
			a.errorAt(TypeMismatch, e.Span().Start, "", fmt.Sprintf("'%s' requires Boolean (integer) operands", e.Op))
		} else if !leftBool || !rightBool {
			a.errorAt(InvalidConditionValue, e.Span().Start, "",
				fmt.Sprintf("operands of '%s' must themselves be relational or logical results", e.Op))
		}
		lv, lok := leftVal.(int32)
		rv, rok := rightVal.(int32)
		if lok && rok {
			var result bool
			if e.Op == ast.OpAnd {
				result = lv != 0 && rv != 0
			} else {
				result = lv != 0 || rv != 0
			}
			return ast.IntType, boolInt32(result), true
		}
		return ast.IntType, nil, true

	case e.Op.IsRelational():
		if leftType != rightType {
			a.errorAt(TypeMismatch, e.Span().Start, "",
				fmt.Sprintf("cannot compare %s with %s", leftType, rightType))
			return ast.IntType, nil, true
		}
		if v, ok := foldRelational(e.Op, leftType, leftVal, rightVal); ok {
			return ast.IntType, v, true
		}
		return ast.IntType, nil, true

	default: // arithmetic
		if leftType != rightType {
			a.errorAt(TypeMismatch, e.Span().Start, "",
				fmt.Sprintf("arithmetic operands must share a type: %s vs %s", leftType, rightType))
			return leftType, nil, false
		}
		if e.Op == ast.OpDiv {
			if iv, ok := rightVal.(int32); ok && leftType == ast.IntType && iv == 0 {
				a.errors = append(a.errors, &SemanticError{Kind: DivisionByZero, Pos: a.posOf(e.Span().Start),
					Message: "division by a constant-folded zero"})
			}
			if fv, ok := rightVal.(float32); ok && leftType == ast.FloatType && fv == 0 {
				a.errors = append(a.errors, &SemanticError{Kind: DivisionByZero, Pos: a.posOf(e.Span().Start),
					Message: "division by a constant-folded zero"})
			}
		}
		v := a.foldArithmetic(e, leftType, leftVal, rightVal)
		return leftType, v, false
	}
}

func foldRelational(op ast.BinaryOperator, typ ast.Type, left, right interface{}) (int32, bool) {
	switch typ {
	case ast.IntType:
		lv, lok := left.(int32)
		rv, rok := right.(int32)
		if !lok || !rok {
			return 0, false
		}
		return boolInt32(compareOrdered(op, float64(lv), float64(rv))), true
	case ast.FloatType:
		lv, lok := left.(float32)
		rv, rok := right.(float32)
		if !lok || !rok {
			return 0, false
		}
		return boolInt32(compareOrdered(op, float64(lv), float64(rv))), true
	case ast.StringType:
		lv, lok := left.(string)
		rv, rok := right.(string)
		if !lok || !rok {
			return 0, false
		}
		switch op {
		case ast.OpEq:
			return boolInt32(lv == rv), true
		case ast.OpNe:
			return boolInt32(lv != rv), true
		default:
			return boolInt32(compareStrings(op, lv, rv)), true
		}
	}
	return 0, false
}

func compareOrdered(op ast.BinaryOperator, l, r float64) bool {
	switch op {
	case ast.OpEq:
		return l == r
	case ast.OpNe:
		return l != r
	case ast.OpLt:
		return l < r
	case ast.OpGt:
		return l > r
	case ast.OpLe:
		return l <= r
	default:
		return l >= r
	}
}

func compareStrings(op ast.BinaryOperator, l, r string) bool {
	switch op {
	case ast.OpLt:
		return l < r
	case ast.OpGt:
		return l > r
	case ast.OpLe:
		return l <= r
	default:
		return l >= r
	}
}

func boolInt32(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// foldArithmetic evaluates an arithmetic binary op when both operands are
// statically known, reporting TypeMismatch{context:"overflow"} on 32-bit
// integer overflow.
func (a *Analyzer) foldArithmetic(e *ast.BinaryOp, typ ast.Type, left, right interface{}) interface{} {
	if typ == ast.IntType {
		lv, lok := left.(int32)
		rv, rok := right.(int32)
		if !lok || !rok {
			return nil
		}
		var result int64
		switch e.Op {
		case ast.OpAdd:
			result = int64(lv) + int64(rv)
		case ast.OpSub:
			result = int64(lv) - int64(rv)
		case ast.OpMul:
			result = int64(lv) * int64(rv)
		case ast.OpDiv:
			if rv == 0 {
				return nil
			}
			result = int64(lv) / int64(rv)
		}
		return a.checkInt32Overflow(result, e.Span().Start)
	}
	if typ == ast.FloatType {
		lv, lok := left.(float32)
		rv, rok := right.(float32)
		if !lok || !rok {
			return nil
		}
		switch e.Op {
		case ast.OpAdd:
			return lv + rv
		case ast.OpSub:
			return lv - rv
		case ast.OpMul:
			return lv * rv
		case ast.OpDiv:
			if rv == 0 {
				return nil
			}
			return lv / rv
		}
	}
	return nil
}

func (a *Analyzer) checkInt32Overflow(v int64, offset int) interface{} {
	if v < a.cfg.IntMin || v > a.cfg.IntMax {
		a.errors = append(a.errors, &SemanticError{
			Kind: TypeMismatch, Pos: a.posOf(offset), Context: "overflow",
			Message: fmt.Sprintf("constant-folded value %d overflows 32-bit signed integer range", v),
		})
		return nil
	}
	return int32(v)
}

