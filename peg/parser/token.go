// File: token.go
// Title: Token Definitions
// Description: Defines the token records the packrat engine consumes.
//              Tokens are produced by a tokenizer collaborator and are
//              immutable; the engine only ever reads them by index.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-08
// Modified: 2025-03-08
//
// Change History:
// - 2025-03-08 v0.1.0: Initial implementation

package parser

import "fmt"

// TokenKind represents the lexical category of a token
type TokenKind int

const (
	// KindEOF marks the end of input inside the lexer; token streams handed
	// to a Session never contain it
	KindEOF TokenKind = iota

	// KindIllegal marks input the lexer could not classify
	KindIllegal

	// KindIdentifier is a name: letters, digits, underscores
	KindIdentifier

	// KindNumber is an integer or float literal
	KindNumber

	// KindString is a quoted string literal
	KindString

	// KindOperator is a one- or two-character operator such as = or !=
	KindOperator

	// KindDelimiter is a bracket, parenthesis, brace, comma, or semicolon
	KindDelimiter
)

// String returns the string representation of the token kind
func (k TokenKind) String() string {
	switch k {
	case KindEOF:
		return "EOF"
	case KindIllegal:
		return "ILLEGAL"
	case KindIdentifier:
		return "IDENTIFIER"
	case KindNumber:
		return "NUMBER"
	case KindString:
		return "STRING"
	case KindOperator:
		return "OPERATOR"
	case KindDelimiter:
		return "DELIMITER"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with position information.
// Row and Column are 1-based source coordinates.
type Token struct {
	Kind   TokenKind // Lexical category
	Value  string    // Token text
	Row    int       // Line number (1-based)
	Column int       // Column number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Kind {
	case KindEOF:
		return "EOF"
	case KindIllegal:
		return fmt.Sprintf("ILLEGAL(%s)", t.Value)
	default:
		return fmt.Sprintf("%s(%s)", t.Kind.String(), t.Value)
	}
}

// TokenRef is a successful primitive match: the consumed token together
// with its index in the stream. Grammar rules are encouraged to return
// indices rather than token copies.
type TokenRef struct {
	Index int
	Token Token
}
