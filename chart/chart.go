// Package chart implements the indexed match set and agenda work
// queue of spec §4.6, and the feed/settle/spawn interaction
// operations of §4.4 that saturate it.
package chart

import (
	"github.com/rs/zerolog"

	"github.com/ava12/cxearley/grammar"
	"github.com/ava12/cxearley/internal/agenda"
	"github.com/ava12/cxearley/internal/matchkey"
	"github.com/ava12/cxearley/match"
)

// workItem is a tagged union over the two kinds of agenda entries:
// exactly one of complete/forward is non-nil.
type workItem struct {
	complete *match.CompleteMatch
	forward  *match.ForwardMatch
}

// Chart is the per-parse indexed set of matches plus its work queue.
// It is not safe for concurrent use; each parse owns its own Chart.
type Chart struct {
	g      *grammar.Grammar
	length int

	completeByStart map[int][]*match.CompleteMatch
	completeByEnd   map[int][]*match.CompleteMatch
	forwardByEnd    map[int][]*match.ForwardMatch

	completeKeys *matchkey.Map[*match.CompleteMatch]
	forwardKeys  *matchkey.Map[*match.ForwardMatch]

	work *agenda.Queue[workItem]

	logger zerolog.Logger
}

// New returns an empty Chart for grammar g over an input of the given
// length. length is used only to recognize the right edge of the
// input, where a negative right expectation is satisfied even with no
// witness (spec §4.2).
// logger receives a debug trace of insertions, duplicates, and
// rejections; pass zerolog.Nop() for silence.
func New(g *grammar.Grammar, length int, logger zerolog.Logger) *Chart {
	return &Chart{
		g:               g,
		length:          length,
		completeByStart: make(map[int][]*match.CompleteMatch),
		completeByEnd:   make(map[int][]*match.CompleteMatch),
		forwardByEnd:    make(map[int][]*match.ForwardMatch),
		completeKeys:    matchkey.New[*match.CompleteMatch](64),
		forwardKeys:     matchkey.New[*match.ForwardMatch](64),
		work:            agenda.New[workItem](),
		logger:          logger,
	}
}

// InsertComplete adds cm to the chart and enqueues it on the agenda,
// unless an equal match (by dedup key) is already present, in which
// case the insertion is dropped silently and InsertComplete reports
// false.
func (c *Chart) InsertComplete(cm *match.CompleteMatch) bool {
	if !c.completeKeys.Set(cm.Key(), cm) {
		c.logger.Debug().Stringer("match", cm).Msg("duplicate complete match")
		return false
	}

	c.completeByStart[cm.Start] = append(c.completeByStart[cm.Start], cm)
	c.completeByEnd[cm.End] = append(c.completeByEnd[cm.End], cm)
	c.work.Append(workItem{complete: cm})
	c.logger.Debug().Stringer("match", cm).Msg("complete")
	return true
}

// InsertForward adds fm to the chart and enqueues it on the agenda,
// with the same dedup semantics as InsertComplete.
func (c *Chart) InsertForward(fm *match.ForwardMatch) bool {
	if !c.forwardKeys.Set(fm.Key(), fm) {
		c.logger.Debug().Stringer("match", fm).Msg("duplicate forward match")
		return false
	}

	c.forwardByEnd[fm.End] = append(c.forwardByEnd[fm.End], fm)
	c.work.Append(workItem{forward: fm})
	c.logger.Debug().Stringer("match", fm).Msg("predict")
	return true
}

func (c *Chart) pop() (workItem, bool) {
	return c.work.First()
}

// CompleteStartingAt returns every complete match with the given
// start position, optionally restricted to those satisfying exp (a
// nil exp means unrestricted).
func (c *Chart) CompleteStartingAt(pos int, exp *grammar.Expectation) []*match.CompleteMatch {
	return filterComplete(c.completeByStart[pos], exp)
}

// CompleteEndingAt returns every complete match with the given end
// position, optionally restricted to those satisfying exp.
func (c *Chart) CompleteEndingAt(pos int, exp *grammar.Expectation) []*match.CompleteMatch {
	return filterComplete(c.completeByEnd[pos], exp)
}

func filterComplete(in []*match.CompleteMatch, exp *grammar.Expectation) []*match.CompleteMatch {
	if exp == nil {
		return in
	}
	out := make([]*match.CompleteMatch, 0, len(in))
	for _, m := range in {
		if exp.Satisfies(m.Ext()) {
			out = append(out, m)
		}
	}
	return out
}

// ForwardWaitingAt returns every forward match whose current End
// equals pos and which awaits ext next — either as the next child in
// its action, or (if already fed every child) as the right-context
// expectation closing it.
func (c *Chart) ForwardWaitingAt(pos int, ext string) []*match.ForwardMatch {
	var out []*match.ForwardMatch
	for _, f := range c.forwardByEnd[pos] {
		if forwardWants(f, ext) {
			out = append(out, f)
		}
	}
	return out
}

func forwardWants(f *match.ForwardMatch, ext string) bool {
	if !f.Done() {
		return f.Awaited()[0] == ext
	}
	return f.Rule.Right != nil && f.Rule.Right.Satisfies(ext)
}

// Spanning returns every complete match spanning [0, length), optionally
// restricted to the given external name (expect == "" means unrestricted).
func (c *Chart) Spanning(length int, expect string) []*match.CompleteMatch {
	var exp *grammar.Expectation
	if expect != "" {
		e := grammar.EX(grammar.Positive, expect)
		exp = &e
	}

	var out []*match.CompleteMatch
	for _, m := range filterComplete(c.completeByStart[0], exp) {
		if m.End == length {
			out = append(out, m)
		}
	}
	return out
}
