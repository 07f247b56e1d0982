package lexer

import "testing"

func TestIdentifierAtMaxLengthIsAccepted(t *testing.T) {
	// Exactly 14 characters: the boundary itself must lex cleanly.
	ident := "abcdefghijklmn"
	if len(ident) != 14 {
		t.Fatalf("fixture must be 14 characters, got %d", len(ident))
	}
	tokens, errs := Lex(ident)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if tokens[0].Kind != IDENT || tokens[0].Literal != ident {
		t.Fatalf("expected IDENT %q, got %s %q", ident, tokens[0].Kind, tokens[0].Literal)
	}
}

func TestIdentifierOneOverMaxLengthIsLexError(t *testing.T) {
	// One character past the boundary: must be rejected.
	ident := "abcdefghijklmno"
	if len(ident) != 15 {
		t.Fatalf("fixture must be 15 characters, got %d", len(ident))
	}
	_, errs := Lex(ident)
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %d", len(errs))
	}
	if errs[0].Kind != IdentifierTooLong {
		t.Fatalf("expected IdentifierTooLong, got %s", errs[0].Kind)
	}
}

func TestConsecutiveUnderscoresIsLexError(t *testing.T) {
	_, errs := Lex("foo__bar")
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %d", len(errs))
	}
	if errs[0].Kind != ConsecutiveUnderscores {
		t.Fatalf("expected ConsecutiveUnderscores, got %s", errs[0].Kind)
	}
}

func TestTrailingUnderscoreIsLexError(t *testing.T) {
	_, errs := Lex("foo_")
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %d", len(errs))
	}
	if errs[0].Kind != TrailingUnderscore {
		t.Fatalf("expected TrailingUnderscore, got %s", errs[0].Kind)
	}
}

func TestPlainIdentifierAndKeywordAreClassifiedCorrectly(t *testing.T) {
	tokens, errs := Lex("MainPrgm foo")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if tokens[0].Kind != KEYWORD {
		t.Fatalf("expected KEYWORD for 'MainPrgm', got %s", tokens[0].Kind)
	}
	if tokens[1].Kind != IDENT {
		t.Fatalf("expected IDENT for 'foo', got %s", tokens[1].Kind)
	}
}

func TestUnterminatedStringIsLexError(t *testing.T) {
	_, errs := Lex(`"hello`)
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %d", len(errs))
	}
	if errs[0].Kind != UnterminatedString {
		t.Fatalf("expected UnterminatedString, got %s", errs[0].Kind)
	}
}

func TestTerminatedStringLexesCleanly(t *testing.T) {
	tokens, errs := Lex(`"hello"`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if tokens[0].Kind != STRING || tokens[0].Literal != "hello" {
		t.Fatalf("expected STRING %q, got %s %q", "hello", tokens[0].Kind, tokens[0].Literal)
	}
}

func TestNonASCIICharacterIsLexError(t *testing.T) {
	_, errs := Lex("café")
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %d", len(errs))
	}
	if errs[0].Kind != NonASCIICharacters {
		t.Fatalf("expected NonASCIICharacters, got %s", errs[0].Kind)
	}
}

func TestInvalidTokenIsLexError(t *testing.T) {
	_, errs := Lex("$")
	if len(errs) != 1 {
		t.Fatalf("expected one error, got %d", len(errs))
	}
	if errs[0].Kind != InvalidToken {
		t.Fatalf("expected InvalidToken, got %s", errs[0].Kind)
	}
}

func TestLexWithConfigHonorsOverriddenIdentifierLength(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxIdentifierLength = 3
	_, errs := LexWithConfig("abcd", cfg)
	if len(errs) != 1 || errs[0].Kind != IdentifierTooLong {
		t.Fatalf("expected IdentifierTooLong under a 3-character limit, got %v", errs)
	}

	_, errs = LexWithConfig("ab", cfg)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors under a 3-character limit: %v", errs)
	}
}

func TestLexWithConfigHonorsOverriddenIntegerRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IntMax = 100

	tokens, errs := LexWithConfig("100", cfg)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if tokens[0].Kind != INT {
		t.Fatalf("expected INT, got %s", tokens[0].Kind)
	}

	_, errs = LexWithConfig("101", cfg)
	if len(errs) != 1 || errs[0].Kind != IntegerOutOfRange {
		t.Fatalf("expected IntegerOutOfRange under intMax=100, got %v", errs)
	}
}
