package parser

import (
	"testing"

	"github.com/Adel2411/minisoft-editor/internal/ast"
	"github.com/Adel2411/minisoft-editor/internal/lexer"
)

func parseSource(t *testing.T, src string) *ast.Program {
	t.Helper()
	tokens, errs := lexer.Lex(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected lex errors: %v", errs)
	}
	program, err := New(tokens).Parse()
	if err != nil {
		t.Fatalf("unexpected syntax error: %s", err.Message)
	}
	return program
}

func TestParseMinimalProgram(t *testing.T) {
	src := `MainPrgm Demo;
Var
	let x : Int;
BeginPg {
	x := 1;
}
EndPg;`

	program := parseSource(t, src)
	if program.Name != "Demo" {
		t.Fatalf("expected program name Demo, got %q", program.Name)
	}
	if len(program.Declarations) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(program.Declarations))
	}
	if len(program.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(program.Statements))
	}
	if _, ok := program.Statements[0].(*ast.AssignmentStmt); !ok {
		t.Fatalf("expected AssignmentStmt, got %T", program.Statements[0])
	}
}

func TestParseArrayDeclarationAndAccess(t *testing.T) {
	src := `MainPrgm Demo;
Var
	let a : [Int; 3];
BeginPg {
	a[0] := 1;
}
EndPg;`

	program := parseSource(t, src)
	decl, ok := program.Declarations[0].(*ast.ArrayDecl)
	if !ok {
		t.Fatalf("expected ArrayDecl, got %T", program.Declarations[0])
	}
	if decl.Size != 3 {
		t.Fatalf("expected size 3, got %d", decl.Size)
	}
	assign := program.Statements[0].(*ast.AssignmentStmt)
	if _, ok := assign.Target.(*ast.ArrayAccess); !ok {
		t.Fatalf("expected ArrayAccess target, got %T", assign.Target)
	}
}

func TestParseConstantDeclaration(t *testing.T) {
	src := `MainPrgm Demo;
Var
	@ define Const Pi : Float = 3.14;
BeginPg {
}
EndPg;`

	program := parseSource(t, src)
	decl, ok := program.Declarations[0].(*ast.ConstantDecl)
	if !ok {
		t.Fatalf("expected ConstantDecl, got %T", program.Declarations[0])
	}
	if decl.Name != "Pi" || decl.Type != ast.FloatType {
		t.Fatalf("unexpected constant decl: %+v", decl)
	}
}

func TestParseForAndIfStatements(t *testing.T) {
	src := `MainPrgm Demo;
Var
	let i : Int;
BeginPg {
	for i from 0 to 10 step 1 {
		if (i > 5) then {
			i := i + 1;
		} else {
			i := i - 1;
		}
	}
}
EndPg;`

	program := parseSource(t, src)
	forStmt, ok := program.Statements[0].(*ast.ForStmt)
	if !ok {
		t.Fatalf("expected ForStmt, got %T", program.Statements[0])
	}
	if forStmt.Var != "i" {
		t.Fatalf("expected loop var i, got %q", forStmt.Var)
	}
	if _, ok := forStmt.Body[0].(*ast.IfThenElseStmt); !ok {
		t.Fatalf("expected IfThenElseStmt in loop body, got %T", forStmt.Body[0])
	}
}

func TestParseTrailingTokenIsExtraTokenError(t *testing.T) {
	src := `MainPrgm Demo;
Var
BeginPg {
}
EndPg; garbage`

	tokens, errs := lexer.Lex(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected lex errors: %v", errs)
	}
	_, syntaxErr := New(tokens).Parse()
	if syntaxErr == nil {
		t.Fatal("expected a syntax error for trailing content")
	}
	if syntaxErr.Kind != ExtraToken {
		t.Fatalf("expected ExtraToken, got %s", syntaxErr.Kind)
	}
}
