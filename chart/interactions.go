package chart

import (
	"github.com/ava12/cxearley/grammar"
	"github.com/ava12/cxearley/match"
)

// Feed advances forward match f with candidate next child cm. It
// reports false — refusing the feed — when cm is not adjacent, is not
// the awaited external name, or fails the adjacency predicate against
// whichever match currently sits immediately to its left (the last
// fed child, or the left brother if none has been fed yet).
func Feed(f *match.ForwardMatch, cm *match.CompleteMatch) (*match.ForwardMatch, bool) {
	if f.Done() || f.End != cm.Start || f.Awaited()[0] != cm.Ext() {
		return nil, false
	}

	var leftNeighbor *match.CompleteMatch
	if n := len(f.ChildrenSoFar); n > 0 {
		leftNeighbor = f.ChildrenSoFar[n-1]
	} else {
		leftNeighbor = f.LeftBrother
	}
	if leftNeighbor != nil && !match.Compatible(leftNeighbor, cm) {
		return nil, false
	}

	return f.Fed(cm), true
}

// Settle closes a fully-fed forward match f against a candidate
// right-context complete match r. r must be nil when f's rule carries
// no right expectation, or when boundary is true (f sits at the
// outermost right edge of the input, where a negative expectation is
// satisfied with no witness — spec §4.2). Settle reports false when r
// fails to satisfy the expectation, isn't adjacent, or fails the
// adjacency predicate against f's last child — or when closing would
// complete a unit-rename cycle (spec §4.3).
func Settle(g *grammar.Grammar, f *match.ForwardMatch, r *match.CompleteMatch, boundary bool) (*match.CompleteMatch, bool) {
	if !f.Done() {
		return nil, false
	}

	last := f.ChildrenSoFar[len(f.ChildrenSoFar)-1]

	switch {
	case f.Rule.Right == nil:
		r = nil

	case boundary && f.Rule.Right.Polarity == grammar.Negative:
		r = nil

	case r == nil || r.Start != f.End || !f.Rule.Right.Satisfies(r.Ext()) || !match.Compatible(last, r):
		return nil, false
	}

	// The produced match's span is [f.Start, f.End): right context does
	// not extend it (spec §4.4).
	extIdx, _ := g.ExtIndex(f.Rule.Ext)
	return match.NewSubstitution(f.RuleName, f.Rule, f.Start, f.End, f.ChildrenSoFar, f.LeftBrother, r, extIdx, g.ExtCount())
}
