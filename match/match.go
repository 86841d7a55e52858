// Package match defines complete and forward matches — the nodes of
// the chart's match graph — and the adjacency/compatibility predicate
// that governs when two complete matches may sit next to each other.
package match

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/ava12/cxearley/grammar"
	"github.com/ava12/cxearley/internal/extset"
)

// CompleteMatch is a proof that input[Start:End] matches Rule.
// Complete matches are immutable once constructed; they may be shared
// as children, left context, or right context of many other matches.
type CompleteMatch struct {
	Rule     grammar.Rule
	RuleName grammar.RuleName
	Start    int
	End      int
	Depth    int
	Children []*CompleteMatch

	// LeftCtx and RightCtx are the matches that witnessed this match's
	// left/right context expectation, or nil if the rule has none (or,
	// for RightCtx, none was chosen to witness it).
	LeftCtx  *CompleteMatch
	RightCtx *CompleteMatch

	// chain is the set of external-name indices reached by the chain
	// of unit renames ending at this match; see §4.3.
	chain extset.Set
}

// Ext returns the match's external name.
func (m *CompleteMatch) Ext() string { return m.Rule.External() }

func (m *CompleteMatch) rightExpectation() *grammar.Expectation {
	if sr, ok := m.Rule.(grammar.SubstitutionRule); ok {
		return sr.Right
	}
	return nil
}

func (m *CompleteMatch) leftExpectation() *grammar.Expectation {
	if sr, ok := m.Rule.(grammar.SubstitutionRule); ok {
		return sr.Left
	}
	return nil
}

// RenameChainLen reports the number of distinct external names in
// this match's unit-rename chain history; used by tests checking the
// depth bound (spec §8 property 5).
func (m *CompleteMatch) RenameChainLen() int { return m.chain.Len() }

// NewTerminal builds a seed complete match produced by scanning the
// input; its depth is always 1 and its rename chain starts at its own
// external name.
func NewTerminal(name grammar.RuleName, rule grammar.TerminalRule, start, end, extIdx, extCount int) *CompleteMatch {
	return &CompleteMatch{
		Rule:     rule,
		RuleName: name,
		Start:    start,
		End:      end,
		Depth:    1,
		chain:    extset.New(extCount).Add(extIdx),
	}
}

// NewSubstitution builds a complete match produced by closing a
// forward match of a SubstitutionRule. ok is false when the rule is a
// unit rename (a single child) whose resulting external name is
// already present in the child's rename chain: the spec requires such
// a derivation to be refused outright rather than constructed (§4.3).
func NewSubstitution(
	name grammar.RuleName, rule grammar.SubstitutionRule, start, end int,
	children []*CompleteMatch, leftCtx, rightCtx *CompleteMatch,
	extIdx, extCount int,
) (*CompleteMatch, bool) {
	var depth int
	var chain extset.Set

	if len(children) == 1 {
		child := children[0]
		if child.chain.Contains(extIdx) {
			return nil, false
		}
		depth = child.Depth + 1
		chain = child.chain.Add(extIdx)
	} else {
		depth = 1
		chain = extset.New(extCount).Add(extIdx)
	}

	return &CompleteMatch{
		Rule:     rule,
		RuleName: name,
		Start:    start,
		End:      end,
		Depth:    depth,
		Children: children,
		LeftCtx:  leftCtx,
		RightCtx: rightCtx,
		chain:    chain,
	}, true
}

func appendInt(buf []byte, v int) []byte {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], uint64(v))
	return append(buf, tmp[:]...)
}

// Key returns the dedup key described in spec §4.6: the rule name,
// span, depth, and the (recursive) keys of the left/right context and
// children.
func (m *CompleteMatch) Key() []byte {
	buf := make([]byte, 0, 32+8*len(m.Children))
	buf = appendInt(buf, int(m.RuleName))
	buf = appendInt(buf, m.Start)
	buf = appendInt(buf, m.End)
	buf = appendInt(buf, m.Depth)
	buf = appendCtxKey(buf, m.LeftCtx)
	buf = appendCtxKey(buf, m.RightCtx)
	buf = appendInt(buf, len(m.Children))
	for _, c := range m.Children {
		buf = append(buf, c.Key()...)
	}
	return buf
}

func appendCtxKey(buf []byte, ctx *CompleteMatch) []byte {
	if ctx == nil {
		return appendInt(buf, -1)
	}
	buf = appendInt(buf, 1)
	return append(buf, ctx.Key()...)
}

func (m *CompleteMatch) String() string {
	var left, right string
	if m.LeftCtx != nil {
		left = fmt.Sprintf("*%s%d ", m.LeftCtx.Ext(), m.LeftCtx.Depth)
	}
	if m.RightCtx != nil {
		right = fmt.Sprintf(" *%s%d", m.RightCtx.Ext(), m.RightCtx.Depth)
	}

	children := "/.../"
	if len(m.Children) > 0 {
		exts := make([]string, len(m.Children))
		for i, c := range m.Children {
			exts[i] = c.Ext()
		}
		children = strings.Join(exts, " ")
	}

	return fmt.Sprintf("%s((%s → %s))%d%s [%d:%d]", left, m.Ext(), children, m.Depth, right, m.Start, m.End)
}

// ForwardMatch is an in-progress derivation of a SubstitutionRule: the
// children before Dot are settled, the rest are still awaited.
type ForwardMatch struct {
	Rule     grammar.SubstitutionRule
	RuleName grammar.RuleName
	Start    int
	End      int
	Dot      int

	LeftBrother   *CompleteMatch
	ChildrenSoFar []*CompleteMatch
}

// Ext returns the forward match's eventual external name.
func (f *ForwardMatch) Ext() string { return f.Rule.Ext }

// Awaited returns the external names still awaited past Dot.
func (f *ForwardMatch) Awaited() []string { return f.Rule.Act[f.Dot:] }

// Done reports whether every child in the rule's action has been fed.
func (f *ForwardMatch) Done() bool { return f.Dot == len(f.Rule.Act) }

// NewForward spawns a forward match at the prediction step: no
// children have been fed yet.
func NewForward(name grammar.RuleName, rule grammar.SubstitutionRule, start int, leftBrother *CompleteMatch) *ForwardMatch {
	return &ForwardMatch{
		Rule:        rule,
		RuleName:    name,
		Start:       start,
		End:         start,
		LeftBrother: leftBrother,
	}
}

// Fed returns a new forward match advanced by one child; it does not
// mutate f. The caller (chart.Feed) is responsible for checking
// compatibility and rule-matching before calling Fed.
func (f *ForwardMatch) Fed(child *CompleteMatch) *ForwardMatch {
	children := make([]*CompleteMatch, len(f.ChildrenSoFar)+1)
	copy(children, f.ChildrenSoFar)
	children[len(f.ChildrenSoFar)] = child

	return &ForwardMatch{
		Rule:          f.Rule,
		RuleName:      f.RuleName,
		Start:         f.Start,
		End:           child.End,
		Dot:           f.Dot + 1,
		LeftBrother:   f.LeftBrother,
		ChildrenSoFar: children,
	}
}

// Key returns the dedup key described in spec §4.6.
func (f *ForwardMatch) Key() []byte {
	buf := make([]byte, 0, 32+8*len(f.ChildrenSoFar))
	buf = appendInt(buf, int(f.RuleName))
	buf = appendInt(buf, f.Start)
	buf = appendInt(buf, f.End)
	buf = appendInt(buf, f.Dot)
	buf = appendCtxKey(buf, f.LeftBrother)
	buf = appendInt(buf, len(f.ChildrenSoFar))
	for _, c := range f.ChildrenSoFar {
		buf = append(buf, c.Key()...)
	}
	return buf
}

func (f *ForwardMatch) String() string {
	var left string
	if f.LeftBrother != nil {
		left = fmt.Sprintf("*%s%d ", f.LeftBrother.Ext(), f.LeftBrother.Depth)
	}

	done := make([]string, len(f.ChildrenSoFar))
	for i, c := range f.ChildrenSoFar {
		done[i] = c.Ext()
	}

	var right string
	if f.Rule.Right != nil {
		right = " " + f.Rule.Right.String()
	}

	return fmt.Sprintf("%s(%s → %s • %s)%s [%d:%d]",
		left, f.Ext(), strings.Join(done, " "), strings.Join(f.Awaited(), " "), right, f.Start, f.End)
}
