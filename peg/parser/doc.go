// File: doc.go
// Title: Parser Package Documentation
// Description: Documents the packrat parsing core: sessions, stream
//              primitives, memoization, backtracking, and the PEG
//              combinators grammar rules are built from.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-08
// Modified: 2025-03-08
//
// Change History:
// - 2025-03-08 v0.1.0: Initial implementation

/*
Package parser implements a packrat parsing core: recursive descent over a
token stream where every rule's outcome is memoized by input position,
giving linear-time parsing for grammars with unrestricted backtracking.

A Session owns one token stream, one cursor, and one memoization table.
Grammar rules are named Rule values whose bodies compose the two stream
primitives (EatToken, ConsumeString) with the PEG combinators:

	All      sequence; fails atomically, consuming nothing
	OptMore  zero or more; never fails
	More     one or more
	Alt      ordered choice; strictly first match wins
	And/Not  positive/negative lookahead; never consume input

Rules are applied through Session.Apply, which wraps the body with
backtracking (the cursor is restored verbatim when a rule reports
no-match) and memoization (each (position, rule) pair is computed at most
once per session).

Two failure channels are kept strictly apart: the no-match Result marker
is the recoverable "this alternative does not apply here" signal, while a
ParseError aborts the parse entirely and is never retried by choice or
repetition combinators.
*/
package parser
