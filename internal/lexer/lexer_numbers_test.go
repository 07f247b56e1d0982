package lexer

import "testing"

func TestIntegerLiterals(t *testing.T) {
	input := "0 7 2147483647"
	want := []string{"0", "7", "2147483647"}

	tokens, errs := Lex(input)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	for i, w := range want {
		if tokens[i].Kind != INT {
			t.Fatalf("tests[%d]: kind wrong, got %s", i, tokens[i].Kind)
		}
		if tokens[i].Literal != w {
			t.Fatalf("tests[%d]: literal wrong, expected %q, got %q", i, w, tokens[i].Literal)
		}
	}
}

func TestIntegerOverflowIsLexError(t *testing.T) {
	_, errs := Lex("2147483648")
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %d", len(errs))
	}
	if errs[0].Kind != IntegerOutOfRange {
		t.Fatalf("expected IntegerOutOfRange, got %s", errs[0].Kind)
	}
}

func TestFloatLiterals(t *testing.T) {
	input := "3.14 0.5 1.5e10 1.5E-3"
	want := []string{"3.14", "0.5", "1.5e10", "1.5E-3"}

	tokens, errs := Lex(input)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	for i, w := range want {
		if tokens[i].Kind != FLOAT {
			t.Fatalf("tests[%d]: kind wrong, got %s", i, tokens[i].Kind)
		}
		if tokens[i].Literal != w {
			t.Fatalf("tests[%d]: literal wrong, expected %q, got %q", i, w, tokens[i].Literal)
		}
	}
}

func TestSignedLiteralParenthesized(t *testing.T) {
	tokens, errs := Lex("(-5)")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(tokens) != 2 { // signed INT + EOF
		t.Fatalf("expected 1 folded token + EOF, got %d tokens", len(tokens))
	}
	if tokens[0].Kind != INT || tokens[0].Literal != "-5" {
		t.Fatalf("expected folded signed INT -5, got %s %q", tokens[0].Kind, tokens[0].Literal)
	}
}

func TestSignedLiteralWithInteriorSpaceIsRejected(t *testing.T) {
	_, errs := Lex("( -5 )")
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %d", len(errs))
	}
	if errs[0].Kind != SignedNumberNotParenthesized {
		t.Fatalf("expected SignedNumberNotParenthesized, got %s", errs[0].Kind)
	}
}

func TestIdentifierStartingWithDigitIsLexError(t *testing.T) {
	_, errs := Lex("1abc")
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %d", len(errs))
	}
	if errs[0].Kind != IdentifierStartsWithNumber {
		t.Fatalf("expected IdentifierStartsWithNumber, got %s", errs[0].Kind)
	}
}
