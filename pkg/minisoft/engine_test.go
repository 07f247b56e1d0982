package minisoft

import (
	"encoding/json"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/tidwall/gjson"
)

const sampleProgram = `MainPrgm Demo;
Var
	let x, y : Int;
BeginPg {
	x := 1;
	for y from 0 to 10 step 1 {
		output(y);
	}
}
EndPg;`

func TestCompileValidProgramProducesNoErrors(t *testing.T) {
	result, err := New().Compile(sampleProgram)
	if err != nil {
		t.Fatalf("unexpected generator error: %v", err)
	}
	if result.HasErrors() {
		t.Fatalf("expected no diagnostics, got %+v", result.Errors)
	}
	if len(result.Tokens) == 0 {
		t.Fatal("expected a non-empty token stream")
	}
	if len(result.Quadruples.Quadruples) == 0 {
		t.Fatal("expected a non-empty quadruple program")
	}
}

func TestCompileStopsEarlyOnLexError(t *testing.T) {
	result, err := New().Compile("MainPrgm Demo;\nVar\nlet 1bad : Int;\nBeginPg {\n}\nEndPg;")
	if err != nil {
		t.Fatalf("unexpected generator error: %v", err)
	}
	if !result.HasErrors() || len(result.Errors.Lexical) == 0 {
		t.Fatal("expected lexical diagnostics")
	}
	if result.AST != nil && len(result.AST.Declarations) != 0 {
		t.Fatalf("expected empty AST when lexing fails, got %+v", result.AST)
	}
	if len(result.SymbolTable) != 0 {
		t.Fatalf("expected empty symbol table when lexing fails, got %+v", result.SymbolTable)
	}
	if len(result.Quadruples.Quadruples) != 0 {
		t.Fatal("expected no quadruples when lexing fails")
	}
}

func TestCompilationResultSnapshot(t *testing.T) {
	result, err := New().Compile(sampleProgram)
	if err != nil {
		t.Fatalf("unexpected generator error: %v", err)
	}
	data, err := result.Marshal()
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	snaps.MatchJSON(t, data)
}

func TestPatchProgressLogRoundTrips(t *testing.T) {
	data, err := New().CompileVerbose(sampleProgram)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var roundTrip CompilationResult
	if err := json.Unmarshal(data, &roundTrip); err != nil {
		t.Fatalf("patched document no longer unmarshals into CompilationResult: %v", err)
	}

	log := ProgressLog(data)
	if len(log) == 0 {
		t.Fatal("expected a non-empty progress log")
	}
	if !gjson.GetBytes(data, "tokens.0.kind").Exists() {
		t.Fatal("expected the original tokens field to survive the patch")
	}
}

func TestErrorCountMatchesStructuredErrors(t *testing.T) {
	result, err := New().Compile("MainPrgm Demo;\nVar\nlet x : Int;\nBeginPg {\ny := 1;\n}\nEndPg;")
	if err != nil {
		t.Fatalf("unexpected generator error: %v", err)
	}
	data, err := result.Marshal()
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if got := ErrorCount(data); got != len(result.Errors.Semantic) {
		t.Fatalf("ErrorCount = %d, want %d", got, len(result.Errors.Semantic))
	}
}
