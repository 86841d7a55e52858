// Package parser is the top-level driver: it registers a grammar,
// then for each input builds a fresh chart, seeds it from the
// scanner, saturates it, and harvests the spanning matches (spec
// §4.7).
package parser

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ava12/cxearley/chart"
	"github.com/ava12/cxearley/grammar"
	"github.com/ava12/cxearley/match"
	"github.com/ava12/cxearley/scanner"
)

// Parser is an immutable, registered grammar ready to parse any
// number of inputs. A Parser is safe for concurrent use: each Parse
// call builds and owns its own chart (spec §5 — the grammar may be
// shared across parses, the chart may not).
type Parser struct {
	grammar *grammar.Grammar
	logger  zerolog.Logger
	maxWork int
	debug   bool
}

// New registers rules and returns a Parser, or the *errors.Error
// grammar.New reports for a malformed rule set (an empty-action
// substitution rule).
func New(rules []grammar.Rule, opts ...Option) (*Parser, error) {
	g, err := grammar.New(rules...)
	if err != nil {
		return nil, err
	}

	p := &Parser{grammar: g, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Warnings returns the grammar's non-fatal registration diagnostics
// (duplicate rules, externals referenced but never produced).
func (p *Parser) Warnings() []string { return p.grammar.Warnings() }

// Parse scans input for every terminal match, saturates the chart,
// and returns every complete derivation spanning the whole input. If
// expect is non-empty the result is restricted to matches whose
// external name equals expect, and Parse reports an *errors.Error of
// code UnknownExpectError up front if no rule produces that name at
// all. When no derivation spans the input, Parse returns a nil slice
// and a nil error.
//
// Parse is synchronous and single-threaded; ctx is polled between
// agenda items and aborts the call with a CancelledError wrapping
// ctx.Err() once it is done.
func (p *Parser) Parse(ctx context.Context, input, expect string) (matches []*match.CompleteMatch, err error) {
	if expect != "" && !p.grammar.Defines(expect) {
		return nil, unknownExpectError(expect)
	}

	if p.debug {
		defer func() {
			if r := recover(); r != nil {
				matches, err = nil, invariantViolationError(r)
			}
		}()
	}

	c := chart.New(p.grammar, len(input), p.logger)
	for pos := 0; pos <= len(input); pos++ {
		for _, cm := range scanner.Scan(p.grammar, input, pos) {
			c.InsertComplete(cm)
		}
	}

	processed, exceeded, serr := chart.Saturate(ctx, c, p.maxWork)
	if serr != nil {
		return nil, cancelledError(serr)
	}
	if exceeded {
		return nil, budgetExceededError(p.maxWork)
	}
	p.logger.Debug().Int("processed", processed).Str("input", input).Msg("saturation complete")

	spanning := c.Spanning(len(input), expect)
	if p.debug {
		match.CheckInvariants(spanning, p.grammar.ExtCount())
	}

	return spanning, nil
}
