// File: lexer.go
// Title: Reference Tokenizer
// Description: Implements a small tokenizer producing the token records
//              the packrat engine consumes. The engine itself never
//              depends on it; it exists so examples and tests can build
//              realistic token streams with accurate source coordinates.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-08
// Modified: 2025-03-08
//
// Change History:
// - 2025-03-08 v0.1.0: Initial implementation

package parser

import (
	pkrerror "github.com/msto63/packrat/core/error"
)

// Lexer performs lexical analysis over a source string
type Lexer struct {
	input    string
	position int  // Current position in input (points to current char)
	readPos  int  // Current reading position (after current char)
	ch       byte // Current char under examination
	row      int  // Current line number (1-based)
	column   int  // Current column number (1-based)
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		row:    1,
		column: 0,
	}
	l.readChar() // Initialize first character
	return l
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	row := l.row
	column := l.column

	switch l.ch {
	case '=', '!', '<', '>':
		if l.peekChar() == '=' {
			ch := l.ch
			l.readChar()
			tok := Token{Kind: KindOperator, Value: string(ch) + string(l.ch), Row: row, Column: column}
			l.readChar()
			return tok
		}
		return l.single(KindOperator, row, column)
	case '+', '-', '*', '/', '.', ':':
		return l.single(KindOperator, row, column)
	case '(', ')', '[', ']', '{', '}', ',', ';':
		return l.single(KindDelimiter, row, column)
	case '"':
		value := l.readString()
		tok := Token{Kind: KindString, Value: value, Row: row, Column: column}
		l.readChar()
		return tok
	case 0:
		return Token{Kind: KindEOF, Row: row, Column: column}
	default:
		if isLetter(l.ch) {
			return Token{Kind: KindIdentifier, Value: l.readIdentifier(), Row: row, Column: column}
		}
		if isDigit(l.ch) {
			return Token{Kind: KindNumber, Value: l.readNumber(), Row: row, Column: column}
		}
		return l.single(KindIllegal, row, column)
	}
}

// Tokenize scans the entire input and returns its tokens. The EOF
// sentinel is not included: the engine treats the returned slice as the
// complete, finite stream.
func (l *Lexer) Tokenize() ([]Token, error) {
	tokens := make([]Token, 0)

	for {
		tok := l.NextToken()

		if tok.Kind == KindEOF {
			break
		}

		if tok.Kind == KindIllegal {
			return tokens, pkrerror.New("illegal character in input").
				WithCode(pkrerror.CodeLexical).
				WithOperation("lexer.Tokenize").
				WithDetail("character", tok.Value).
				WithDetail("row", tok.Row).
				WithDetail("column", tok.Column)
		}

		tokens = append(tokens, tok)
	}

	return tokens, nil
}

// TokenizeInput is a convenience function that tokenizes a source string
func TokenizeInput(input string) ([]Token, error) {
	return NewLexer(input).Tokenize()
}

// single emits a one-character token of the given kind and advances
func (l *Lexer) single(kind TokenKind, row, column int) Token {
	tok := Token{Kind: kind, Value: string(l.ch), Row: row, Column: column}
	l.readChar()
	return tok
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // NUL represents end of input
	} else {
		l.ch = l.input[l.readPos]
	}

	l.position = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.row++
		l.column = 0
	} else {
		l.column++
	}
}

// peekChar returns the next character without advancing position
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// readIdentifier reads an identifier (letters, digits, underscores)
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads a numeric literal (integer or float)
func (l *Lexer) readNumber() string {
	start := l.position

	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar() // consume '.'
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	return l.input[start:l.position]
}

// readString reads a double-quoted string literal
func (l *Lexer) readString() string {
	start := l.position + 1 // Skip opening quote

	for {
		l.readChar()
		if l.ch == '"' || l.ch == 0 {
			break
		}
		if l.ch == '\\' {
			l.readChar() // Skip escaped character
		}
	}

	return l.input[start:l.position]
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// isLetter checks if the character can start or continue an identifier
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

// isDigit checks if the character is a digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
