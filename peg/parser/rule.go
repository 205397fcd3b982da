// File: rule.go
// Title: Grammar Rules and Rule Application
// Description: Defines the Rule type and the Apply entry point that wraps
//              every rule invocation with memoization around backtracking.
//              Rule names are the memo identity and must be unique per
//              grammar rule; colliding names silently corrupt unrelated
//              cached results.
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
	pkrlog "github.com/msto63/packrat/core/log"
	pkrstringx "github.com/msto63/packrat/utils/stringx"
)

// RuleBody is the executable part of a grammar rule. It returns no-match
// for recoverable failure and a non-nil error only for unrecoverable
// conditions.
type RuleBody func(*Session) (Result, error)

// Rule represents one grammar production. The name is the rule's stable
// identity in the memoization table: it must be unique per distinct rule,
// not per call site.
type Rule struct {
	name string
	body RuleBody
}

// NewRule creates a grammar rule with the given stable name
func NewRule(name string, body RuleBody) *Rule {
	return &Rule{
		name: name,
		body: body,
	}
}

// Name returns the rule's stable identity
func (r *Rule) Name() string {
	return r.name
}

// Apply invokes a rule at the session's current position with full packrat
// behavior: the memo table is consulted first, and on a miss the rule body
// runs wrapped in the backtracking behavior before its settled outcome is
// cached. A cache hit replays the stored end-of-rule cursor state without
// re-executing the body or touching the token stream.
func (s *Session) Apply(rule *Rule) (Result, error) {
	if rule == nil || rule.body == nil {
		return NoMatch(), pkrerror.New("cannot apply an undefined rule").
			WithCode(pkrerror.CodeInternal).
			WithOperation("parser.Apply")
	}
	if pkrstringx.IsBlank(rule.name) {
		return NoMatch(), pkrerror.New("rule has no stable identity for memoization").
			WithCode(pkrerror.CodeRuleConflict).
			WithOperation("parser.Apply")
	}

	start := s.cursor

	if entry, ok := s.memo.lookup(start, rule.name); ok {
		s.restore(entry.end)

		if s.trace && s.logger != nil {
			s.logger.Trace("memo hit", pkrlog.Fields{
				"rule":     rule.name,
				"position": start,
				"matched":  entry.result.Matched(),
			})
		}

		return entry.result, nil
	}

	result, err := s.backtrack(func() (Result, error) {
		return rule.body(s)
	})
	if err != nil {
		// Fatal outcomes abort the parse and are never cached
		return NoMatch(), err
	}

	s.memo.store(start, rule.name, memoEntry{
		result: result,
		end:    s.snapshot(),
	})

	if s.trace && s.logger != nil {
		s.logger.Trace("memo store", pkrlog.Fields{
			"rule":     rule.name,
			"position": start,
			"matched":  result.Matched(),
		})
	}

	return result, nil
}
