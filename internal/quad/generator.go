package quad

import (
	"fmt"

	"github.com/Adel2411/minisoft-editor/internal/ast"
	"github.com/Adel2411/minisoft-editor/internal/semantic"
)

// Generator lowers a semantically valid AST into a Program.
type Generator struct {
	prog   *Program
	symtab *semantic.SymbolTable
}

// Generate walks prog and emits its quadruple program. ast must already
// have passed semantic analysis with zero errors; a structurally
// impossible node causes Generate to return an *InternalError rather than
// silently emitting bad IR.
func Generate(program *ast.Program, symtab *semantic.SymbolTable) (result *Program, err error) {
	g := &Generator{prog: &Program{}, symtab: symtab}
	defer func() {
		if r := recover(); r != nil {
			if ie, ok := r.(*InternalError); ok {
				result = nil
				err = ie
				return
			}
			panic(r)
		}
	}()
	for _, stmt := range program.Statements {
		g.genStatement(stmt)
	}
	return g.prog, nil
}

func (g *Generator) newTemp() Operand {
	name := fmt.Sprintf("t%d", g.prog.NextTemp)
	g.prog.NextTemp++
	return Temp(name)
}

func (g *Generator) newLabel() int {
	id := g.prog.NextLabel
	g.prog.NextLabel++
	return id
}

func (g *Generator) emit(op Operation, o1, o2, result Operand) {
	g.prog.Quadruples = append(g.prog.Quadruples, Quadruple{Op: op, Operand1: o1, Operand2: o2, Result: result})
}

func (g *Generator) emitLabel(id int) {
	g.emit(OpLabel, None, None, Label(id))
}

func (g *Generator) genStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.AssignmentStmt:
		rhs := g.genExpr(s.Value)
		g.genAssign(s.Target, rhs)

	case *ast.IfThenStmt:
		cond := g.genExpr(s.Cond)
		lend := g.newLabel()
		g.emit(OpJumpIfFalse, cond, None, Label(lend))
		g.genBlock(s.Then)
		g.emitLabel(lend)

	case *ast.IfThenElseStmt:
		cond := g.genExpr(s.Cond)
		lelse := g.newLabel()
		lend := g.newLabel()
		g.emit(OpJumpIfFalse, cond, None, Label(lelse))
		g.genBlock(s.Then)
		g.emit(OpJump, None, None, Label(lend))
		g.emitLabel(lelse)
		g.genBlock(s.Else)
		g.emitLabel(lend)

	case *ast.DoWhileStmt:
		ltop := g.newLabel()
		g.emitLabel(ltop)
		g.genBlock(s.Body)
		cond := g.genExpr(s.Cond)
		g.emit(OpJumpIfTrue, cond, None, Label(ltop))

	case *ast.ForStmt:
		g.genFor(s)

	case *ast.InputStmt:
		target := g.lvalueOperand(s.Target)
		g.emit(OpInput, None, None, target)

	case *ast.OutputStmt:
		for _, arg := range s.Args {
			v := g.genExpr(arg)
			g.emit(OpOutput, v, None, None)
		}

	case *ast.ScopeStmt:
		g.genBlock(s.Body)

	case *ast.EmptyStmt:
		// no-op, nothing to emit

	default:
		panic(&InternalError{Detail: fmt.Sprintf("unhandled statement %T", stmt)})
	}
}

func (g *Generator) genBlock(stmts []ast.Statement) {
	for _, s := range stmts {
		g.genStatement(s)
	}
}

func (g *Generator) genAssign(target ast.Lvalue, rhs Operand) {
	switch t := target.(type) {
	case *ast.Identifier:
		g.emit(OpAssign, rhs, None, Var(t.Name))
	case *ast.ArrayAccess:
		idx := g.genExpr(t.Index)
		g.emit(OpArrayStore, rhs, idx, Var(t.Name))
	default:
		panic(&InternalError{Detail: fmt.Sprintf("unhandled lvalue %T", target)})
	}
}

func (g *Generator) lvalueOperand(target ast.Lvalue) Operand {
	switch t := target.(type) {
	case *ast.Identifier:
		return Var(t.Name)
	case *ast.ArrayAccess:
		idx := g.genExpr(t.Index)
		return ArrayElem(t.Name, idx)
	default:
		panic(&InternalError{Detail: fmt.Sprintf("unhandled lvalue %T", target)})
	}
}

// genExpr lowers expr in left-to-right evaluation order. Identifiers and
// literals become operands directly with no emit; every interior node
// allocates a fresh temporary and emits one quadruple producing it.
func (g *Generator) genExpr(expr ast.Expression) Operand {
	switch e := expr.(type) {
	case *ast.Literal:
		switch e.Kind {
		case ast.IntLiteral:
			return IntConst(e.Int)
		case ast.FloatLiteral:
			return FloatConst(e.Float)
		default:
			return StrConst(e.String)
		}

	case *ast.Identifier:
		return Var(e.Name)

	case *ast.ArrayAccess:
		idx := g.genExpr(e.Index)
		tmp := g.newTemp()
		g.emit(OpArrayLoad, Var(e.Name), idx, tmp)
		return tmp

	case *ast.UnaryOp:
		operand := g.genExpr(e.Operand)
		tmp := g.newTemp()
		op := OpNeg
		if e.Op == ast.OpNot {
			op = OpNot
		}
		g.emit(op, operand, None, tmp)
		return tmp

	case *ast.BinaryOp:
		left := g.genExpr(e.Left)
		right := g.genExpr(e.Right)
		tmp := g.newTemp()
		g.emit(binaryOpcode(e.Op), left, right, tmp)
		return tmp

	default:
		panic(&InternalError{Detail: fmt.Sprintf("unhandled expression %T", expr)})
	}
}

func binaryOpcode(op ast.BinaryOperator) Operation {
	switch op {
	case ast.OpAdd:
		return OpAdd
	case ast.OpSub:
		return OpSub
	case ast.OpMul:
		return OpMul
	case ast.OpDiv:
		return OpDiv
	case ast.OpEq:
		return OpEq
	case ast.OpNe:
		return OpNe
	case ast.OpLt:
		return OpLt
	case ast.OpGt:
		return OpGt
	case ast.OpLe:
		return OpLe
	case ast.OpGe:
		return OpGe
	case ast.OpAnd:
		return OpAnd
	default:
		return OpOr
	}
}

// genFor lowers the for-loop: the comparison direction depends on the
// sign of the step. When the step is a compile-time
// constant the sign is known and only one comparison is emitted; otherwise
// a runtime sign test picks between the two comparisons via a temporary.
func (g *Generator) genFor(s *ast.ForStmt) {
	from := g.genExpr(s.From)
	g.emit(OpAssign, from, None, Var(s.Var))

	ltop := g.newLabel()
	lend := g.newLabel()
	g.emitLabel(ltop)

	to := g.genExpr(s.To)
	step := g.genExpr(s.Step)

	if stepVal, ok := constIntOperand(step); ok {
		cmp := g.newTemp()
		if stepVal > 0 {
			g.emit(OpGt, Var(s.Var), to, cmp)
		} else {
			g.emit(OpLt, Var(s.Var), to, cmp)
		}
		g.emit(OpJumpIfTrue, cmp, None, Label(lend))
	} else {
		// Runtime sign test: cmpUp = v > to, cmpDown = v < to, pick by
		// the sign of step using a temporary boolean selector.
		isNeg := g.newTemp()
		g.emit(OpLt, step, IntConst(0), isNeg)
		cmpUp := g.newTemp()
		g.emit(OpGt, Var(s.Var), to, cmpUp)
		cmpDown := g.newTemp()
		g.emit(OpLt, Var(s.Var), to, cmpDown)
		selected := g.newTemp()
		lpickdown := g.newLabel()
		lpickend := g.newLabel()
		g.emit(OpJumpIfTrue, isNeg, None, Label(lpickdown))
		g.emit(OpAssign, cmpUp, None, selected)
		g.emit(OpJump, None, None, Label(lpickend))
		g.emitLabel(lpickdown)
		g.emit(OpAssign, cmpDown, None, selected)
		g.emitLabel(lpickend)
		g.emit(OpJumpIfTrue, selected, None, Label(lend))
	}

	g.genBlock(s.Body)

	stepAgain := g.genExpr(s.Step)
	sum := g.newTemp()
	g.emit(OpAdd, Var(s.Var), stepAgain, sum)
	g.emit(OpAssign, sum, None, Var(s.Var))
	g.emit(OpJump, None, None, Label(ltop))
	g.emitLabel(lend)
}

// constIntOperand reports whether op is a statically known integer value.
func constIntOperand(op Operand) (int32, bool) {
	if op.Kind == OperandIntConst {
		return op.IntVal, true
	}
	return 0, false
}
