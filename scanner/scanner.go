// Package scanner applies a grammar's terminal rules against an input
// string at a given byte position. It is the adapter spec.md treats
// as an opaque regex engine: terminal rules are scanned with Go's
// standard regexp package.
package scanner

import (
	"github.com/ava12/cxearley/grammar"
	"github.com/ava12/cxearley/match"
)

// Scan applies every terminal rule in g against input[pos:] and
// returns one seed complete match per rule that matches, anchored at
// pos. Zero-width terminal matches are rejected, preserving spec
// invariant 1 (start < end for every complete match).
func Scan(g *grammar.Grammar, input string, pos int) []*match.CompleteMatch {
	var out []*match.CompleteMatch
	extCount := g.ExtCount()

	for _, name := range g.Terminals() {
		rule := g.Rule(name).(grammar.TerminalRule)
		loc := rule.Regexp().FindStringIndex(input[pos:])
		if loc == nil || loc[1] == 0 {
			continue
		}

		extIdx, _ := g.ExtIndex(rule.Ext)
		out = append(out, match.NewTerminal(name, rule, pos, pos+loc[1], extIdx, extCount))
	}

	return out
}
