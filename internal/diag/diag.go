// Package diag renders any MiniSoft diagnostic (lexical, syntax, or
// semantic) into a one-line human-readable message with source context
// and an optional fix-it suggestion. The formatter is pure; it holds no
// state.
package diag

import (
	"fmt"
	"strings"

	"github.com/Adel2411/minisoft-editor/internal/lexer"
	"github.com/Adel2411/minisoft-editor/internal/parser"
	"github.com/Adel2411/minisoft-editor/internal/semantic"
	"github.com/Adel2411/minisoft-editor/internal/sourcemap"
)

// Diagnostic is implemented by every error family's variant type.
type Diagnostic interface {
	error
}

// Formatted is the pure rendering of one Diagnostic.
type Formatted struct {
	Message    string
	Suggestion string
	Line       int
	Column     int
}

// Format renders d into a human-readable message plus optional suggestion.
func Format(d Diagnostic) Formatted {
	switch e := d.(type) {
	case *lexer.LexError:
		return Formatted{Message: e.Message, Suggestion: e.Suggestion, Line: e.Pos.Line, Column: e.Pos.Column}
	case *parser.SyntaxError:
		sugg := ""
		if len(e.Expected) > 0 {
			sugg = "expected one of: " + strings.Join(e.Expected, ", ")
		}
		return Formatted{Message: e.Message, Suggestion: sugg, Line: e.Pos.Line, Column: e.Pos.Column}
	case *semantic.SemanticError:
		return Formatted{Message: e.Message, Suggestion: suggestFor(e), Line: e.Pos.Line, Column: e.Pos.Column}
	default:
		return Formatted{Message: d.Error()}
	}
}

func suggestFor(e *semantic.SemanticError) string {
	switch e.Kind {
	case semantic.DuplicateDeclaration:
		return fmt.Sprintf("rename this declaration or remove the one at line %d", e.OriginalPos.Line)
	case semantic.ConstantModification:
		return "declare a variable instead of a constant if it needs to change"
	case semantic.DivisionByZero:
		return "guard the divisor or use a non-zero constant"
	case semantic.ArrayIndexOutOfBounds:
		return fmt.Sprintf("use an index in [0, %d)", e.Size)
	case semantic.InvalidConditionValue:
		return "use a relational or logical expression, e.g. x > 0"
	default:
		return ""
	}
}

// FormatWithSource renders d with the offending source line and a caret.
func FormatWithSource(d Diagnostic, smap *sourcemap.SourceMap) string {
	return FormatWithSourceColor(d, smap, false)
}

const (
	ansiBoldRed = "\033[1;31m"
	ansiReset   = "\033[0m"
)

// FormatWithSourceColor renders d like FormatWithSource, but when color is
// true wraps the message and caret line in ANSI bold-red escapes for
// terminal output.
func FormatWithSourceColor(d Diagnostic, smap *sourcemap.SourceMap, color bool) string {
	f := Format(d)
	var sb strings.Builder

	header := fmt.Sprintf("line %d, column %d: %s", f.Line, f.Column, f.Message)
	if color {
		header = ansiBoldRed + header + ansiReset
	}
	fmt.Fprintf(&sb, "%s\n", header)

	if smap != nil {
		line := smap.Line(f.Line)
		if line != "" {
			fmt.Fprintf(&sb, "    %s\n", line)
			caret := strings.Repeat(" ", max(0, f.Column-1)) + "^"
			if color {
				caret = ansiBoldRed + caret + ansiReset
			}
			fmt.Fprintf(&sb, "    %s\n", caret)
		}
	}
	if f.Suggestion != "" {
		fmt.Fprintf(&sb, "    suggestion: %s\n", f.Suggestion)
	}
	return sb.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
