package match

import "github.com/ava12/cxearley/grammar"

// historyAtStart returns m and its leftmost descendants, recursively
// down to a terminal: m, m.Children[0], m.Children[0].Children[0], ...
// Grounded on original_source/interactions.py's history_at_start,
// which walks the same left spine of a match's own derivation.
func historyAtStart(m *CompleteMatch) []*CompleteMatch {
	var out []*CompleteMatch
	for m != nil {
		out = append(out, m)
		if len(m.Children) == 0 {
			break
		}
		m = m.Children[0]
	}
	return out
}

// historyAtClose is historyAtStart's mirror: m and its rightmost
// descendants down to a terminal. Grounded on
// original_source/interactions.py's history_at_close.
func historyAtClose(m *CompleteMatch) []*CompleteMatch {
	var out []*CompleteMatch
	for m != nil {
		out = append(out, m)
		if len(m.Children) == 0 {
			break
		}
		m = m.Children[len(m.Children)-1]
	}
	return out
}

func anySatisfies(history []*CompleteMatch, exp *grammar.Expectation) bool {
	if exp == nil {
		return true
	}
	for _, m := range history {
		if exp.Satisfies(m.Ext()) {
			return true
		}
	}
	return false
}

// Compatible implements the adjacency predicate of spec §4.2: two
// complete matches with l.End == r.Start may sit next to each other
// when l's right expectation (if any) is satisfied by some match
// along r's own starting derivation spine, and r's left expectation
// (if any) is satisfied by some match along l's own closing
// derivation spine.
//
// A unit-rename substitution (e.g. B built from a single child b)
// only ever changes a match's external name; the terminal that
// actually witnessed a context expectation lower in the grammar can
// be several renames below the wrapping match's own Ext(). Checking
// only l.Ext()/r.Ext() directly — as spec §4.2's prose literally
// reads in isolation — can therefore never see through one level of
// substitution, which breaks spec §8's own Grammar G1 scenario (a
// B built via `&a⟨B→b⟩` failing to satisfy a neighboring `&b` demand
// because B's own external name is "B", not "b"). Walking each
// match's own close/start spine is the adaptation of
// original_source/interactions.py's can_concat (which walks
// history_at_close/history_at_start) that resolves this while staying
// within this package's name-based Expectation model, rather than
// that function's fuller match-identity/wrapping-span bookkeeping
// (see DESIGN.md's G1 open-question entry).
//
// It governs three call sites: deciding whether two children inside a
// forward match may concatenate (chart.Feed), whether a forward
// match's last child and a candidate right-context match may
// concatenate (chart.Settle), and whether a candidate left-brother
// and the match spawning a new forward match may concatenate
// (chart.Spawn).
func Compatible(l, r *CompleteMatch) bool {
	if re := l.rightExpectation(); re != nil && !anySatisfies(historyAtStart(r), re) {
		return false
	}
	if le := r.leftExpectation(); le != nil && !anySatisfies(historyAtClose(l), le) {
		return false
	}
	return true
}
