// File: combinators_test.go
// Title: PEG Combinator Unit Tests
// Description: Tests for sequence, repetition, ordered choice, and
//              lookahead, covering sequence atomicity, first-match
//              choice, repetition totality, non-consuming lookahead,
//              and error propagation through nested combinators.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-08
// Modified: 2025-03-08
//
// Change History:
// - 2025-03-08 v0.1.0: Initial test suite

package parser

import (
	"testing"
)

func TestSession_All(t *testing.T) {
	tests := []struct {
		name       string
		tokens     []Token
		patterns   []Pattern
		wantMatch  bool
		wantLen    int
		wantCursor int
	}{
		{
			name:       "All literals match",
			tokens:     identTokens("foo", "bar"),
			patterns:   []Pattern{Lit("foo"), Lit("bar")},
			wantMatch:  true,
			wantLen:    2,
			wantCursor: 1,
		},
		{
			name:       "Later failure restores cursor",
			tokens:     identTokens("foo", "bar"),
			patterns:   []Pattern{Lit("foo"), Lit("baz")},
			wantMatch:  false,
			wantCursor: -1,
		},
		{
			name:       "Empty sequence trivially succeeds",
			tokens:     identTokens("foo"),
			patterns:   nil,
			wantMatch:  true,
			wantLen:    0,
			wantCursor: -1,
		},
		{
			name:       "Ignored patterns elided from result",
			tokens:     identTokens("foo", "bar"),
			patterns:   []Pattern{Lit("foo").Ignored(), Lit("bar")},
			wantMatch:  true,
			wantLen:    1,
			wantCursor: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(tt.tokens)

			result, err := s.All(tt.patterns...)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if result.Matched() != tt.wantMatch {
				t.Errorf("Expected matched=%v, got %v", tt.wantMatch, result.Matched())
			}
			if tt.wantMatch && len(result.List()) != tt.wantLen {
				t.Errorf("Expected %d result items, got %d", tt.wantLen, len(result.List()))
			}
			if s.Cursor() != tt.wantCursor {
				t.Errorf("Expected cursor %d, got %d", tt.wantCursor, s.Cursor())
			}
		})
	}
}

func TestSession_OptMore(t *testing.T) {
	tests := []struct {
		name       string
		tokens     []Token
		patterns   []Pattern
		wantLen    int
		wantCursor int
	}{
		{
			name:       "Repeats until first failure",
			tokens:     identTokens("a", "a", "a", "b"),
			patterns:   []Pattern{Lit("a")},
			wantLen:    3,
			wantCursor: 2,
		},
		{
			name:       "Zero iterations still succeed",
			tokens:     identTokens("b"),
			patterns:   []Pattern{Lit("a")},
			wantLen:    0,
			wantCursor: -1,
		},
		{
			name:       "Empty stream yields empty list",
			tokens:     nil,
			patterns:   []Pattern{Lit("a")},
			wantLen:    0,
			wantCursor: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(tt.tokens)

			result, err := s.OptMore(tt.patterns...)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if !result.Matched() {
				t.Fatal("Expected zero-or-more to always succeed")
			}
			if len(result.List()) != tt.wantLen {
				t.Errorf("Expected %d iterations, got %d", tt.wantLen, len(result.List()))
			}
			if s.Cursor() != tt.wantCursor {
				t.Errorf("Expected cursor %d, got %d", tt.wantCursor, s.Cursor())
			}
		})
	}
}

func TestSession_OptMore_KeepsAccumulatedMatches(t *testing.T) {
	// The failing final attempt must not replace the collected list
	s := NewSession(identTokens("a", "x", "a", "x", "a", "stop"))

	result, err := s.OptMore(Lit("a"), Lit("x"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(result.List()) != 2 {
		t.Errorf("Expected 2 complete iterations, got %d", len(result.List()))
	}
	// The partial third iteration ("a" without "x") must be rolled back
	if s.Cursor() != 3 {
		t.Errorf("Expected cursor 3 after two iterations, got %d", s.Cursor())
	}
}

func TestSession_More(t *testing.T) {
	tests := []struct {
		name       string
		tokens     []Token
		patterns   []Pattern
		wantMatch  bool
		wantLen    int
		wantCursor int
	}{
		{
			name:       "One iteration suffices",
			tokens:     identTokens("a", "b"),
			patterns:   []Pattern{Lit("a")},
			wantMatch:  true,
			wantLen:    1,
			wantCursor: 0,
		},
		{
			name:       "Several iterations",
			tokens:     identTokens("a", "a", "b"),
			patterns:   []Pattern{Lit("a")},
			wantMatch:  true,
			wantLen:    2,
			wantCursor: 1,
		},
		{
			name:       "Zero iterations fail",
			tokens:     identTokens("b"),
			patterns:   []Pattern{Lit("a")},
			wantMatch:  false,
			wantCursor: -1,
		},
		{
			name:       "Empty stream fails",
			tokens:     nil,
			patterns:   []Pattern{Lit("a")},
			wantMatch:  false,
			wantCursor: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(tt.tokens)

			result, err := s.More(tt.patterns...)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if result.Matched() != tt.wantMatch {
				t.Errorf("Expected matched=%v, got %v", tt.wantMatch, result.Matched())
			}
			if tt.wantMatch && len(result.List()) != tt.wantLen {
				t.Errorf("Expected %d iterations, got %d", tt.wantLen, len(result.List()))
			}
			if s.Cursor() != tt.wantCursor {
				t.Errorf("Expected cursor %d, got %d", tt.wantCursor, s.Cursor())
			}
		})
	}
}

func TestSession_Alt(t *testing.T) {
	tests := []struct {
		name       string
		tokens     []Token
		patterns   []Pattern
		wantMatch  bool
		wantValue  interface{}
		wantCursor int
	}{
		{
			name:       "First alternative wins",
			tokens:     identTokens("foo"),
			patterns:   []Pattern{Ref(Identifier), Lit("foo")},
			wantMatch:  true,
			wantValue:  0,
			wantCursor: 0,
		},
		{
			name:       "Failed alternative restores cursor before the next",
			tokens:     identTokens("x"),
			patterns:   []Pattern{Lit("y"), Ref(Identifier)},
			wantMatch:  true,
			wantValue:  0,
			wantCursor: 0,
		},
		{
			name:       "All alternatives fail",
			tokens:     identTokens("x"),
			patterns:   []Pattern{Lit("y"), Lit("z")},
			wantMatch:  false,
			wantCursor: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(tt.tokens)

			result, err := s.Alt(tt.patterns...)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if result.Matched() != tt.wantMatch {
				t.Errorf("Expected matched=%v, got %v", tt.wantMatch, result.Matched())
			}
			if tt.wantMatch && result.Value() != tt.wantValue {
				t.Errorf("Expected value %v, got %v", tt.wantValue, result.Value())
			}
			if s.Cursor() != tt.wantCursor {
				t.Errorf("Expected cursor %d, got %d", tt.wantCursor, s.Cursor())
			}
		})
	}
}

func TestSession_Alt_IgnoredWinner(t *testing.T) {
	s := NewSession(identTokens("foo"))

	result, err := s.Alt(Lit("foo").Ignored())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !result.Matched() {
		t.Fatal("Expected match")
	}
	if result.Value() != nil {
		t.Errorf("Expected nil value for ignored winner, got %v", result.Value())
	}
	if s.Cursor() != 0 {
		t.Errorf("Expected cursor 0, got %d", s.Cursor())
	}
}

func TestSession_And(t *testing.T) {
	tests := []struct {
		name      string
		tokens    []Token
		patterns  []Pattern
		wantMatch bool
	}{
		{
			name:      "Would succeed",
			tokens:    identTokens("foo", "bar"),
			patterns:  []Pattern{Lit("foo"), Lit("bar")},
			wantMatch: true,
		},
		{
			name:      "Would fail",
			tokens:    identTokens("foo"),
			patterns:  []Pattern{Lit("bar")},
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(tt.tokens)

			result, err := s.And(tt.patterns...)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if result.Matched() != tt.wantMatch {
				t.Errorf("Expected matched=%v, got %v", tt.wantMatch, result.Matched())
			}
			// Lookahead never consumes, successful or not
			if s.Cursor() != -1 {
				t.Errorf("Expected cursor -1 after lookahead, got %d", s.Cursor())
			}
		})
	}
}

func TestSession_Not(t *testing.T) {
	tests := []struct {
		name      string
		tokens    []Token
		patterns  []Pattern
		wantMatch bool
	}{
		{
			name:      "Sequence would fail",
			tokens:    identTokens("foo"),
			patterns:  []Pattern{Lit("bar")},
			wantMatch: true,
		},
		{
			name:      "Sequence would succeed",
			tokens:    identTokens("foo"),
			patterns:  []Pattern{Lit("foo")},
			wantMatch: false,
		},
		{
			name:      "Empty stream",
			tokens:    nil,
			patterns:  []Pattern{Lit("foo")},
			wantMatch: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(tt.tokens)

			result, err := s.Not(tt.patterns...)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if result.Matched() != tt.wantMatch {
				t.Errorf("Expected matched=%v, got %v", tt.wantMatch, result.Matched())
			}
			if s.Cursor() != -1 {
				t.Errorf("Expected cursor -1 after lookahead, got %d", s.Cursor())
			}
		})
	}
}

func TestCombinators_ErrorPropagation(t *testing.T) {
	failing := NewRule("prop_fail", func(s *Session) (Result, error) {
		return NoMatch(), NewParseError("unrecoverable", 1, 1)
	})

	tests := []struct {
		name string
		run  func(s *Session) (Result, error)
	}{
		{
			name: "Through sequence",
			run: func(s *Session) (Result, error) {
				return s.All(Ref(failing))
			},
		},
		{
			name: "Through zero-or-more",
			run: func(s *Session) (Result, error) {
				return s.OptMore(Ref(failing))
			},
		},
		{
			name: "Through one-or-more",
			run: func(s *Session) (Result, error) {
				return s.More(Ref(failing))
			},
		},
		{
			name: "Through ordered choice",
			run: func(s *Session) (Result, error) {
				return s.Alt(Lit("x"), Ref(failing))
			},
		},
		{
			name: "Through negative lookahead",
			run: func(s *Session) (Result, error) {
				return s.Not(Ref(failing))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(identTokens("foo"))

			_, err := tt.run(s)
			if err == nil {
				t.Fatal("Expected structured error to propagate, got nil")
			}
		})
	}
}
