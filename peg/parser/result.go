// File: result.go
// Title: Parse Outcome Type
// Description: Defines the tagged outcome of a rule invocation. A Result
//              is either a success carrying a value or the distinguished
//              no-match marker; the two are never conflated so that a
//              matched-but-empty sequence stays distinguishable from a
//              failed alternative.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-08
// Modified: 2025-03-08
//
// Change History:
// - 2025-03-08 v0.1.0: Initial implementation

package parser

import "fmt"

// Result represents the outcome of one rule or combinator invocation.
// The zero value is the no-match marker.
type Result struct {
	matched bool
	value   interface{}
}

// Match creates a successful result carrying the given value. A nil value
// is a valid success payload (used by ignored alternatives).
func Match(value interface{}) Result {
	return Result{matched: true, value: value}
}

// NoMatch returns the distinguished "did not match" marker
func NoMatch() Result {
	return Result{}
}

// Matched reports whether the invocation matched
func (r Result) Matched() bool {
	return r.matched
}

// Value returns the success payload; nil when the result is no-match
func (r Result) Value() interface{} {
	return r.value
}

// List returns the payload as an ordered list of sub-results. It returns
// nil when the result is no-match or the payload is not a list.
func (r Result) List() []interface{} {
	if !r.matched {
		return nil
	}
	list, ok := r.value.([]interface{})
	if !ok {
		return nil
	}
	return list
}

// TokenRef returns the payload as a token reference when the result came
// from a stream primitive
func (r Result) TokenRef() (TokenRef, bool) {
	if !r.matched {
		return TokenRef{}, false
	}
	ref, ok := r.value.(TokenRef)
	return ref, ok
}

// String returns a string representation of the result
func (r Result) String() string {
	if !r.matched {
		return "no-match"
	}
	if r.value == nil {
		return "match()"
	}
	return fmt.Sprintf("match(%v)", r.value)
}
