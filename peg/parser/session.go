// File: session.go
// Title: Parser Session and Stream Access
// Description: Implements the parser session that owns one token stream,
//              one cursor, and one memoization table. The two stream
//              primitives EatToken and ConsumeString are the only
//              operations that move the cursor forward; all combinators
//              are built on top of them.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-08
// Modified: 2025-03-08
//
// Change History:
// - 2025-03-08 v0.1.0: Initial implementation

package parser

import (
	pkrlog "github.com/msto63/packrat/core/log"
)

// position is a cursor snapshot: stream index plus the source coordinates
// of the most recently consumed token
type position struct {
	cursor int
	row    int
	column int
}

// Session is one parse run over one token stream. It owns the cursor and
// the memoization table; all three share a lifecycle and none outlives the
// parse. Sessions are single-threaded: concurrent parses need independent
// sessions.
type Session struct {
	tokens       []Token
	tokensLength int

	// cursor is the index of the most recently consumed token, -1 before
	// the first token. row/column mirror that token's source location for
	// error reporting; cursor alone decides what has been consumed.
	cursor int
	row    int
	column int

	memo   *memoTable
	logger *pkrlog.Logger
	trace  bool

	// reads counts primitive token accesses, letting callers verify that
	// memoized invocations touch the stream zero additional times
	reads int
}

// SessionConfig configures optional session behavior
type SessionConfig struct {
	// Logger receives trace output; nil disables session logging
	Logger *pkrlog.Logger

	// Trace enables memo hit/miss tracing at trace level
	Trace bool
}

// NewSession creates a parse session over the given token stream
func NewSession(tokens []Token) *Session {
	return NewSessionWithConfig(tokens, SessionConfig{})
}

// NewSessionWithConfig creates a parse session with explicit configuration
func NewSessionWithConfig(tokens []Token, config SessionConfig) *Session {
	return &Session{
		tokens:       tokens,
		tokensLength: len(tokens),
		cursor:       -1,
		row:          0,
		column:       -1,
		memo:         newMemoTable(),
		logger:       config.Logger,
		trace:        config.Trace,
	}
}

// LineInfo returns the source coordinates of the most recently consumed token
func (s *Session) LineInfo() (row, column int) {
	return s.row, s.column
}

// Cursor returns the index of the most recently consumed token (-1 before
// the first token)
func (s *Session) Cursor() int {
	return s.cursor
}

// Remaining returns the number of tokens not yet consumed
func (s *Session) Remaining() int {
	return s.tokensLength - (s.cursor + 1)
}

// AtEnd reports whether every token has been consumed
func (s *Session) AtEnd() bool {
	return s.cursor+1 >= s.tokensLength
}

// TokenAt returns the token at the given stream index
func (s *Session) TokenAt(index int) (Token, bool) {
	if index < 0 || index >= s.tokensLength {
		return Token{}, false
	}
	return s.tokens[index], true
}

// TokenReads returns the number of primitive token accesses performed so far
func (s *Session) TokenReads() int {
	return s.reads
}

// EatToken consumes the next token unconditionally. It returns the token
// and its stream index, or no-match when no token remains.
func (s *Session) EatToken() Result {
	if s.cursor+1 >= s.tokensLength {
		return NoMatch()
	}

	s.cursor++
	token := s.tokens[s.cursor]
	s.reads++

	s.row = token.Row
	s.column = token.Column

	return Match(TokenRef{Index: s.cursor, Token: token})
}

// ConsumeString consumes the next token iff its text equals the given
// string. On a mismatch the cursor is left untouched.
func (s *Session) ConsumeString(text string) Result {
	if s.cursor+1 >= s.tokensLength {
		return NoMatch()
	}

	token := s.tokens[s.cursor+1]
	s.reads++

	if token.Value != text {
		return NoMatch()
	}

	s.cursor++
	s.row = token.Row
	s.column = token.Column

	return Match(TokenRef{Index: s.cursor, Token: token})
}

// snapshot captures the cursor state for later restoration
func (s *Session) snapshot() position {
	return position{cursor: s.cursor, row: s.row, column: s.column}
}

// restore resets the cursor state to a previously captured snapshot
func (s *Session) restore(p position) {
	s.cursor = p.cursor
	s.row = p.row
	s.column = p.column
}

// backtrack runs f and restores the cursor verbatim iff f reports
// no-match, so a failed rule at any depth never leaks cursor movement to
// its caller. Structured errors abort the parse and skip restoration.
func (s *Session) backtrack(f func() (Result, error)) (Result, error) {
	saved := s.snapshot()

	result, err := f()
	if err != nil {
		return NoMatch(), err
	}

	if !result.Matched() {
		s.restore(saved)
	}

	return result, nil
}
