package parser

import "github.com/rs/zerolog"

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithLogger attaches a zerolog.Logger that receives a debug trace of
// chart insertions, duplicates, and rejections for every Parse call.
// The default is zerolog.Nop().
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// WithMaxWork bounds the number of agenda items a single Parse call
// will process before giving up with a BudgetExceededError. The
// algorithmic contract terminates on all inputs without a budget
// (spec §5); this is an implementation-level safety valve for hostile
// or mistaken grammars during development. 0 (the default) means
// unbounded.
func WithMaxWork(maxWork int) Option {
	return func(p *Parser) {
		p.maxWork = maxWork
	}
}

// WithDebug enables invariant checking, once saturation is done, of
// the spanning matches Parse returns and every match reachable from
// them, at a performance cost; an internal invariant failure is
// reported as an *errors.Error of code InvariantViolationError rather
// than panicking. Meant for use while developing or extending a
// grammar, not in production parsing.
func WithDebug(debug bool) Option {
	return func(p *Parser) {
		p.debug = debug
	}
}
