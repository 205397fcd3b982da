// File: memo.go
// Title: Memoization Table
// Description: Implements the session-scoped memoization table that makes
//              the engine a packrat parser. Results are keyed by (stream
//              position, rule identity); each pair is computed at most
//              once per session, bounding total work by positions x rules
//              regardless of how often alternatives backtrack.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-08
// Modified: 2025-03-08
//
// Change History:
// - 2025-03-08 v0.1.0: Initial implementation

package parser

// memoEntry holds the settled outcome of a rule at one position together
// with the cursor state the rule left behind. Replaying the end state on a
// cache hit keeps memoized successes indistinguishable from re-execution.
type memoEntry struct {
	result Result
	end    position
}

// memoTable maps stream position -> rule identity -> settled outcome.
// It grows monotonically over one parse session and is discarded with it.
type memoTable struct {
	entries map[int]map[string]memoEntry
	hits    int
	misses  int
}

// newMemoTable creates an empty memoization table
func newMemoTable() *memoTable {
	return &memoTable{
		entries: make(map[int]map[string]memoEntry),
	}
}

// lookup returns the cached entry for (pos, rule) if one exists
func (m *memoTable) lookup(pos int, rule string) (memoEntry, bool) {
	if byRule, ok := m.entries[pos]; ok {
		if entry, ok := byRule[rule]; ok {
			m.hits++
			return entry, true
		}
	}

	m.misses++
	return memoEntry{}, false
}

// store records the settled outcome for (pos, rule). The first computation
// wins: an existing entry is never overwritten, which keeps cached results
// idempotent even if a rule is re-entered through an unexpected path.
func (m *memoTable) store(pos int, rule string, entry memoEntry) {
	byRule, ok := m.entries[pos]
	if !ok {
		byRule = make(map[string]memoEntry)
		m.entries[pos] = byRule
	}

	if _, exists := byRule[rule]; exists {
		return
	}

	byRule[rule] = entry
}

// size returns the total number of cached entries
func (m *memoTable) size() int {
	total := 0
	for _, byRule := range m.entries {
		total += len(byRule)
	}
	return total
}

// MemoStats reports memoization effectiveness for one session
type MemoStats struct {
	Hits    int
	Misses  int
	Entries int
}

// MemoStats returns the session's memoization counters
func (s *Session) MemoStats() MemoStats {
	return MemoStats{
		Hits:    s.memo.hits,
		Misses:  s.memo.misses,
		Entries: s.memo.size(),
	}
}
