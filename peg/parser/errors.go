// File: errors.go
// Title: Structured Parse Error
// Description: Implements the structured error type for unrecoverable
//              parse failures. Parse errors carry the source position at
//              which they were raised and abort the parse entirely; the
//              ordinary no-match marker handles recoverable alternatives.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-08
// Modified: 2025-03-08
//
// Change History:
// - 2025-03-08 v0.1.0: Initial implementation

package parser

import (
	"fmt"

	pkrerror "github.com/msto63/packrat/core/error"
)

// ParseError represents an unrecoverable parse failure with position
// information. It propagates through every combinator without being
// retried by ordered choice or repetition.
type ParseError struct {
	Message string
	Row     int
	Column  int
	Code    pkrerror.Code
}

// Error implements the standard error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Row, e.Column, e.Message)
}

// NewParseError creates a parse error at the given source position
func NewParseError(message string, row, column int) *ParseError {
	return &ParseError{
		Message: message,
		Row:     row,
		Column:  column,
		Code:    pkrerror.CodeSyntax,
	}
}

// WithCode sets the error code
func (e *ParseError) WithCode(code pkrerror.Code) *ParseError {
	e.Code = code
	return e
}

// Structured converts the parse error into the library's structured error
// type for logging and code-based handling
func (e *ParseError) Structured() *pkrerror.Error {
	code := e.Code
	if code == "" {
		code = pkrerror.CodeSyntax
	}

	return pkrerror.New(e.Message).
		WithCode(code).
		WithOperation("parse").
		WithDetail("row", e.Row).
		WithDetail("column", e.Column)
}

// SyntaxError creates a parse error at the session's current position.
// Grammar rules raise it once a disambiguating prefix has matched and a
// required construct is absent.
func (s *Session) SyntaxError(message string) *ParseError {
	row, column := s.LineInfo()
	return NewParseError(message, row, column)
}

// UnexpectedTokenError creates a parse error describing an unexpected
// token at the session's current position
func (s *Session) UnexpectedTokenError(token Token) *ParseError {
	return NewParseError(fmt.Sprintf("unexpected token %s", token), token.Row, token.Column).
		WithCode(pkrerror.CodeUnexpectedToken)
}

// EndOfInputError creates a parse error reporting that input ended at the
// last successfully consumed location. Grammar-layer callers synthesize it
// when a top-level rule fails without raising a more specific error.
func (s *Session) EndOfInputError() *ParseError {
	row, column := s.LineInfo()
	return NewParseError("unexpected end of input", row, column).
		WithCode(pkrerror.CodeEndOfInput)
}
