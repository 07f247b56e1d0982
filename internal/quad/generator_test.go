package quad

import (
	"testing"

	"github.com/Adel2411/minisoft-editor/internal/lexer"
	"github.com/Adel2411/minisoft-editor/internal/parser"
	"github.com/Adel2411/minisoft-editor/internal/semantic"
)

func generate(t *testing.T, src string) *Program {
	t.Helper()
	tokens, lexErrs := lexer.Lex(src)
	if len(lexErrs) != 0 {
		t.Fatalf("unexpected lex errors: %v", lexErrs)
	}
	program, syntaxErr := parser.New(tokens).Parse()
	if syntaxErr != nil {
		t.Fatalf("unexpected syntax error: %s", syntaxErr.Message)
	}
	symtab, semErrs := semantic.New(src).Analyze(program)
	if len(semErrs) != 0 {
		t.Fatalf("unexpected semantic errors: %v", semErrs)
	}
	prog, err := Generate(program, symtab)
	if err != nil {
		t.Fatalf("unexpected generator error: %v", err)
	}
	return prog
}

func wrap(body string) string {
	return "MainPrgm Demo;\nVar\nlet x : Int;\nlet y : Int;\nBeginPg {\n" + body + "\n}\nEndPg;"
}

func TestGenerateSimpleAssignment(t *testing.T) {
	prog := generate(t, wrap("x := 1;"))
	if len(prog.Quadruples) != 1 {
		t.Fatalf("expected 1 quadruple, got %d: %v", len(prog.Quadruples), prog.Quadruples)
	}
	q := prog.Quadruples[0]
	if q.Op != OpAssign || q.Result.Name != "x" || q.Operand1.IntVal != 1 {
		t.Fatalf("unexpected quadruple: %+v", q)
	}
}

func TestGenerateBinaryExpressionUsesFreshTemp(t *testing.T) {
	prog := generate(t, wrap("x := y + 1;"))
	var adds int
	for _, q := range prog.Quadruples {
		if q.Op == OpAdd {
			adds++
			if q.Result.Kind != OperandTemp {
				t.Fatalf("expected ADD to target a temp, got %+v", q.Result)
			}
		}
	}
	if adds != 1 {
		t.Fatalf("expected exactly one ADD, got %d", adds)
	}
}

func TestGenerateIfThenElseEmitsBothBranchesAndJoinLabel(t *testing.T) {
	src := wrap(`if (x > 0) then {
		y := 1;
	} else {
		y := 2;
	}`)
	prog := generate(t, src)

	var labels, condJumps int
	for _, q := range prog.Quadruples {
		if q.Op == OpLabel {
			labels++
		}
		if q.Op == OpJumpIfFalse || q.Op == OpJumpIfTrue {
			condJumps++
		}
	}
	if labels < 2 {
		t.Fatalf("expected at least 2 labels (else + end), got %d", labels)
	}
	if condJumps != 1 {
		t.Fatalf("expected exactly one conditional jump, got %d", condJumps)
	}
}

func TestGenerateDoWhileLoopsBack(t *testing.T) {
	prog := generate(t, wrap(`do {
		x := x + 1;
	} while (x < 10);`))

	var jumpTrue int
	for _, q := range prog.Quadruples {
		if q.Op == OpJumpIfTrue {
			jumpTrue++
		}
	}
	if jumpTrue != 1 {
		t.Fatalf("expected one JUMP_IF_TRUE looping back to the body, got %d", jumpTrue)
	}
}

func TestGenerateForLoopWithConstantStep(t *testing.T) {
	prog := generate(t, wrap(`for x from 0 to 10 step 1 {
		y := x;
	}`))
	if len(prog.Quadruples) == 0 {
		t.Fatal("expected a non-empty quadruple program")
	}
	// A constant positive step never needs the runtime sign-test branch,
	// which compares the step operand itself against zero.
	for _, q := range prog.Quadruples {
		if q.Op == OpLt && q.Operand1.Kind == OperandIntConst {
			t.Fatalf("constant step should not emit a runtime sign test, got %+v", q)
		}
	}
}

func TestGenerateArrayLoadAndStore(t *testing.T) {
	src := "MainPrgm Demo;\nVar\nlet a : [Int; 3];\nBeginPg {\na[0] := a[1];\n}\nEndPg;"
	prog := generate(t, src)

	var loads, stores int
	for _, q := range prog.Quadruples {
		if q.Op == OpArrayLoad {
			loads++
		}
		if q.Op == OpArrayStore {
			stores++
		}
	}
	if loads != 1 || stores != 1 {
		t.Fatalf("expected 1 load and 1 store, got %d loads, %d stores", loads, stores)
	}
}

func TestGenerateInputOutput(t *testing.T) {
	prog := generate(t, wrap(`input(x);
	output(x, y);`))

	var in, out int
	for _, q := range prog.Quadruples {
		if q.Op == OpInput {
			in++
		}
		if q.Op == OpOutput {
			out++
		}
	}
	if in != 1 {
		t.Fatalf("expected 1 INPUT, got %d", in)
	}
	if out != 2 {
		t.Fatalf("expected 2 OUTPUT (one per argument), got %d", out)
	}
}
