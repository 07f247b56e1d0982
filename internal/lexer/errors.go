package lexer

import "github.com/Adel2411/minisoft-editor/internal/sourcemap"

// ErrorKind discriminates the lexical error variants the lexer reports.
type ErrorKind int

const (
	UnterminatedString ErrorKind = iota
	NonASCIICharacters
	IdentifierTooLong
	InvalidIdentifier
	ConsecutiveUnderscores
	TrailingUnderscore
	IdentifierStartsWithNumber
	IntegerOutOfRange
	SignedNumberNotParenthesized
	InvalidToken
)

func (k ErrorKind) String() string {
	switch k {
	case UnterminatedString:
		return "UnterminatedString"
	case NonASCIICharacters:
		return "NonAsciiCharacters"
	case IdentifierTooLong:
		return "IdentifierTooLong"
	case InvalidIdentifier:
		return "InvalidIdentifier"
	case ConsecutiveUnderscores:
		return "ConsecutiveUnderscores"
	case TrailingUnderscore:
		return "TrailingUnderscore"
	case IdentifierStartsWithNumber:
		return "IdentifierStartsWithNumber"
	case IntegerOutOfRange:
		return "IntegerOutOfRange"
	case SignedNumberNotParenthesized:
		return "SignedNumberNotParenthesized"
	default:
		return "InvalidToken"
	}
}

// LexError is a single lexical diagnostic: the offending lexeme, its
// resolved position, a human-readable message, and an optional fix-it
// suggestion. LexError implements error so it can flow through ordinary
// Go error handling in callers that only care about the count.
type LexError struct {
	Kind       ErrorKind
	Lexeme     string
	Pos        sourcemap.Position
	Message    string
	Suggestion string
}

func (e *LexError) Error() string {
	return e.Message
}
