// File: grammar.go
// Title: Example Grammar Rules
// Description: Provides a small set of grammar rules built on the
//              combinators. They are the pattern every real grammar rule
//              follows: a named Rule whose body composes the stream
//              primitives and combinators, applied through Session.Apply
//              for memoized, backtrackable execution.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-08
// Modified: 2025-03-08
//
// Change History:
// - 2025-03-08 v0.1.0: Initial implementation

package parser

// Identifier matches a single identifier token and yields its stream
// index. Rules return references into the token stream, not token copies.
var Identifier = NewRule("identifier", func(s *Session) (Result, error) {
	payload := s.EatToken()
	if !payload.Matched() {
		return NoMatch(), nil
	}

	ref, _ := payload.TokenRef()
	if ref.Token.Kind != KindIdentifier {
		return NoMatch(), nil
	}

	return Match(ref.Index), nil
})

// TerminalIdentifier matches an identifier that is not followed by a "."
// operator, demonstrating negative lookahead: the guard tests the next
// token without consuming it.
var TerminalIdentifier = NewRule("terminal_identifier", func(s *Session) (Result, error) {
	ident, err := s.Apply(Identifier)
	if err != nil {
		return NoMatch(), err
	}
	if !ident.Matched() {
		return NoMatch(), nil
	}

	guard, err := s.Not(Lit("."))
	if err != nil {
		return NoMatch(), err
	}
	if !guard.Matched() {
		return NoMatch(), nil
	}

	return Match(ident.Value()), nil
})

// NameList matches one identifier followed by zero or more comma-separated
// identifiers, yielding the list of matched token indices. The comma
// separators are consumed but ignored.
var NameList = NewRule("name_list", func(s *Session) (Result, error) {
	first, err := s.Apply(Identifier)
	if err != nil {
		return NoMatch(), err
	}
	if !first.Matched() {
		return NoMatch(), nil
	}

	indices := []int{first.Value().(int)}

	rest, err := s.OptMore(Lit(",").Ignored(), Ref(Identifier))
	if err != nil {
		return NoMatch(), err
	}

	for _, iteration := range rest.List() {
		items := iteration.([]interface{})
		indices = append(indices, items[0].(int))
	}

	return Match(indices), nil
})

// ParseNameList is the grammar-layer entry point for NameList. A failed
// top-level parse is turned into a structured error synthesized from the
// final cursor position; the engine itself never does this.
func ParseNameList(s *Session) ([]int, error) {
	result, err := s.Apply(NameList)
	if err != nil {
		return nil, err
	}

	if !result.Matched() {
		if s.AtEnd() {
			return nil, s.EndOfInputError()
		}

		next, _ := s.TokenAt(s.Cursor() + 1)
		return nil, s.UnexpectedTokenError(next)
	}

	return result.Value().([]int), nil
}
