// File: combinators.go
// Title: PEG Combinators
// Description: Implements the parsing expression combinators: sequence,
//              zero-or-more, one-or-more, ordered choice, and positive/
//              negative lookahead. Combinators compose the stream
//              primitives with the backtracking behavior so a failed
//              attempt never consumes input.
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

// Pattern is one element of a combinator's argument list: either a literal
// token text or a reference to a named rule. Marking a pattern as ignored
// elides its matched value from the aggregated result, which is how
// grammars consume but discard punctuation.
type Pattern struct {
	literal string
	rule    *Rule
	isRule  bool
	ignore  bool
}

// Lit creates a pattern that matches the next token's literal text
func Lit(text string) Pattern {
	return Pattern{literal: text}
}

// Ref creates a pattern that applies a named rule
func Ref(rule *Rule) Pattern {
	return Pattern{rule: rule, isRule: true}
}

// Ignored marks the pattern's matched value for elision from the
// aggregated sequence or choice result
func (p Pattern) Ignored() Pattern {
	p.ignore = true
	return p
}

// String returns a string representation of the pattern
func (p Pattern) String() string {
	if p.isRule {
		if p.rule == nil {
			return "rule(<nil>)"
		}
		return fmt.Sprintf("rule(%s)", p.rule.Name())
	}
	return fmt.Sprintf("%q", p.literal)
}

// matchPattern dispatches one pattern: literals go through the stream
// primitive, rule references through Apply with full packrat behavior
func (s *Session) matchPattern(p Pattern) (Result, error) {
	if p.isRule {
		if p.rule == nil {
			return NoMatch(), pkrerror.New("pattern references an undefined rule").
				WithCode(pkrerror.CodeInternal).
				WithOperation("parser.matchPattern")
		}
		return s.Apply(p.rule)
	}

	return s.ConsumeString(p.literal), nil
}

// All matches every sub-pattern in order (PEG sequence). If any
// sub-pattern fails the whole sequence reports no-match and the cursor is
// restored to the sequence's start. On success it returns the ordered list
// of sub-results with ignored entries elided. A sequence with zero
// sub-patterns trivially succeeds with an empty list.
func (s *Session) All(patterns ...Pattern) (Result, error) {
	return s.backtrack(func() (Result, error) {
		return s.sequence(patterns)
	})
}

// sequence is the shared sequence body used by All and the lookaheads
func (s *Session) sequence(patterns []Pattern) (Result, error) {
	result := make([]interface{}, 0, len(patterns))

	for _, p := range patterns {
		sub, err := s.matchPattern(p)
		if err != nil {
			return NoMatch(), err
		}

		if !sub.Matched() {
			return NoMatch(), nil
		}

		if !p.ignore {
			result = append(result, sub.Value())
		}
	}

	return Match(result), nil
}

// OptMore greedily matches the sequence zero or more times (PEG *). It
// never fails: zero iterations succeed with an empty list, and the final
// failing attempt contributes neither cursor movement nor output. Each
// element of the returned list is one iteration's sequence result.
func (s *Session) OptMore(patterns ...Pattern) (Result, error) {
	collected := make([]interface{}, 0)

	for {
		before := s.cursor

		attempt, err := s.All(patterns...)
		if err != nil {
			return NoMatch(), err
		}

		if !attempt.Matched() {
			break
		}

		collected = append(collected, attempt.Value())

		// A successful iteration that consumed nothing would repeat forever
		if s.cursor == before {
			break
		}
	}

	return Match(collected), nil
}

// More greedily matches the sequence one or more times (PEG +). It fails
// iff the very first iteration fails, leaving the cursor at the start.
func (s *Session) More(patterns ...Pattern) (Result, error) {
	return s.backtrack(func() (Result, error) {
		collected := make([]interface{}, 0)

		for {
			before := s.cursor

			attempt, err := s.All(patterns...)
			if err != nil {
				return NoMatch(), err
			}

			if !attempt.Matched() {
				break
			}

			collected = append(collected, attempt.Value())

			if s.cursor == before {
				break
			}
		}

		if len(collected) == 0 {
			return NoMatch(), nil
		}

		return Match(collected), nil
	})
}

// Alt tries each sub-pattern in order at the same starting position and
// returns the first success (PEG ordered choice |). There is no
// longest-match semantics: the first alternative that matches wins. Alt
// fails only when every alternative fails, leaving the cursor at the
// original start. An ignored winning alternative yields a success with a
// nil value so the match itself stays observable.
func (s *Session) Alt(patterns ...Pattern) (Result, error) {
	for _, p := range patterns {
		sub, err := s.matchPattern(p)
		if err != nil {
			return NoMatch(), err
		}

		if sub.Matched() {
			if p.ignore {
				return Match(nil), nil
			}
			return sub, nil
		}
	}

	return NoMatch(), nil
}

// And evaluates the sequence purely to test whether it would succeed (PEG
// positive lookahead &). The cursor is restored unconditionally: lookahead
// never consumes input. On success it returns the sequence's result.
func (s *Session) And(patterns ...Pattern) (Result, error) {
	saved := s.snapshot()

	result, err := s.sequence(patterns)
	s.restore(saved)

	if err != nil {
		return NoMatch(), err
	}

	return result, nil
}

// Not evaluates the sequence purely to test whether it would fail (PEG
// negative lookahead !). The cursor is restored unconditionally. It
// returns a success sentinel when the sequence would fail and no-match
// when it would succeed.
func (s *Session) Not(patterns ...Pattern) (Result, error) {
	saved := s.snapshot()

	result, err := s.sequence(patterns)
	s.restore(saved)

	if err != nil {
		return NoMatch(), err
	}

	if result.Matched() {
		return NoMatch(), nil
	}

	return Match(true), nil
}
