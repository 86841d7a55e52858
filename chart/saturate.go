package chart

import (
	"context"

	"github.com/ava12/cxearley/grammar"
	"github.com/ava12/cxearley/match"
)

// Saturate drains the agenda, performing the spawn/feed/settle actions
// each popped match enables, until no work remains or ctx is done. If
// maxWork is positive, Saturate stops and reports exceeded = true after
// processing that many agenda items, leaving the chart in whatever
// (valid, partial) state it reached.
func Saturate(ctx context.Context, c *Chart, maxWork int) (processed int, exceeded bool, err error) {
	for {
		select {
		case <-ctx.Done():
			return processed, false, ctx.Err()
		default:
		}

		if maxWork > 0 && processed >= maxWork {
			return processed, true, nil
		}

		item, ok := c.pop()
		if !ok {
			return processed, false, nil
		}
		processed++

		if item.complete != nil {
			processComplete(c, item.complete)
		} else {
			processForward(c, item.forward)
		}
	}
}

// processComplete performs everything a newly inserted complete match
// enables: spawning new forward matches that await its external name
// first, and feeding or settling forward matches already waiting for
// it at this position.
func processComplete(c *Chart, cm *match.CompleteMatch) {
	Spawn(c, cm)

	for _, f := range c.ForwardWaitingAt(cm.Start, cm.Ext()) {
		if !f.Done() {
			if fed, ok := Feed(f, cm); ok {
				c.InsertForward(fed)
			}
		} else if settled, ok := Settle(c.g, f, cm, false); ok {
			c.InsertComplete(settled)
		}
	}
}

// processForward offers a newly inserted, fully-fed forward match to
// settle against every compatible right-context candidate already in
// the chart. A forward match still awaiting a child is fed every
// complete match with the awaited external name that already starts
// at its end; children that arrive later reach it through
// processComplete above.
func processForward(c *Chart, f *match.ForwardMatch) {
	if !f.Done() {
		next := grammar.EX(grammar.Positive, f.Awaited()[0])
		for _, cm := range c.CompleteStartingAt(f.End, &next) {
			if fed, ok := Feed(f, cm); ok {
				c.InsertForward(fed)
			}
		}
		return
	}

	if f.Rule.Right == nil {
		if settled, ok := Settle(c.g, f, nil, false); ok {
			c.InsertComplete(settled)
		}
		return
	}

	candidates := c.CompleteStartingAt(f.End, f.Rule.Right)
	for _, r := range candidates {
		if settled, ok := Settle(c.g, f, r, false); ok {
			c.InsertComplete(settled)
		}
	}

	if len(candidates) == 0 && f.End == c.length {
		if settled, ok := Settle(c.g, f, nil, true); ok {
			c.InsertComplete(settled)
		}
	}
}
