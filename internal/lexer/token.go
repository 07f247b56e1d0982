package lexer

import "github.com/Adel2411/minisoft-editor/internal/sourcemap"

// TokenKind discriminates the class of lexeme a Token represents.
type TokenKind int

const (
	EOF TokenKind = iota
	IDENT
	INT
	FLOAT
	STRING
	KEYWORD
	OPERATOR
	PUNCT
	ILLEGAL
)

func (k TokenKind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case IDENT:
		return "IDENT"
	case INT:
		return "INT"
	case FLOAT:
		return "FLOAT"
	case STRING:
		return "STRING"
	case KEYWORD:
		return "KEYWORD"
	case OPERATOR:
		return "OPERATOR"
	case PUNCT:
		return "PUNCT"
	default:
		return "ILLEGAL"
	}
}

// Span is a half-open byte range [Start, End) into the source text.
type Span struct {
	Start int
	End   int
}

// Token is a single lexeme: its kind, raw text, resolved position, and span.
type Token struct {
	Kind    TokenKind
	Literal string
	Pos     sourcemap.Position
	Span    Span
}

// Keywords is the set of MiniSoft reserved words; anything not in this
// table that matches the identifier grammar lexes as IDENT.
var Keywords = map[string]bool{
	"MainPrgm": true,
	"Var":      true,
	"let":      true,
	"BeginPg":  true,
	"EndPg":    true,
	"Int":      true,
	"Float":    true,
	"define":   true, // second token of "@define"
	"Const":    true,
	"if":       true,
	"then":     true,
	"else":     true,
	"do":       true,
	"while":    true,
	"for":      true,
	"from":     true,
	"to":       true,
	"step":     true,
	"input":    true,
	"output":   true,
	"and":      true,
	"or":       true,
	"not":      true,
}
