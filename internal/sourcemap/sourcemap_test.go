package sourcemap

import "testing"

func TestPositionOfFirstLine(t *testing.T) {
	m := New("abc\ndef")
	pos := m.PositionOf(1)
	if pos.Line != 1 || pos.Column != 2 {
		t.Fatalf("expected line 1, column 2, got %+v", pos)
	}
}

func TestPositionOfSecondLine(t *testing.T) {
	m := New("abc\ndef")
	pos := m.PositionOf(5) // 'e' in "def"
	if pos.Line != 2 || pos.Column != 2 {
		t.Fatalf("expected line 2, column 2, got %+v", pos)
	}
}

func TestPositionOfHandlesMultiByteRunes(t *testing.T) {
	m := New("é x") // 'é' is 2 bytes in UTF-8
	pos := m.PositionOf(2) // byte offset of ' ' after é
	if pos.Column != 2 {
		t.Fatalf("expected column 2 (1 rune consumed), got %d", pos.Column)
	}
}

func TestLineReturnsRawTextWithoutNewline(t *testing.T) {
	m := New("first\nsecond\nthird")
	if got := m.Line(2); got != "second" {
		t.Fatalf("expected %q, got %q", "second", got)
	}
	if got := m.Line(3); got != "third" {
		t.Fatalf("expected %q, got %q", "third", got)
	}
}

func TestLineOutOfRangeReturnsEmpty(t *testing.T) {
	m := New("only one line")
	if got := m.Line(5); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
