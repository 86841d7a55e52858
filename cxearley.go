/*
Package cxearley is a recognizer/parser for a context-sensitive
extension of context-free grammars.

Each production (a grammar.SubstitutionRule) optionally carries a left
and right context expectation, positive or negative. The parser runs a
generalized Earley-style chart algorithm: two sibling matches may only
sit next to each other when their context expectations are mutually
satisfied, and chains of unit-rename productions are bounded so that a
cyclic grammar still terminates.

Consists of subpackages:
  - errors: the structured error type shared by every subpackage;
  - grammar: rule, expectation and grammar registration;
  - match: complete and forward match representations plus the
    adjacency/compatibility predicate;
  - scanner: terminal-rule application against an input string;
  - chart: the indexed match set, its work queue, and the feed/settle/
    spawn interaction operations;
  - parser: the driver that seeds, saturates, and harvests a parse.

Typical usage:

	g := []grammar.Rule{
		grammar.MustTR("a", "a"),
		grammar.SR("S", []string{"a"}, nil, nil),
	}
	p, err := parser.New(g)
	if err != nil {
		...
	}
	matches, err := p.Parse(context.Background(), "a", "S")

matches is the (possibly empty) list of complete derivations spanning
the whole input. The engine is not incremental: every call to Parse
re-parses its input from scratch.
*/
package cxearley

// Error code class bases, grouped by hundreds in the style each
// subpackage's own errors.go follows for its local codes.
const (
	GrammarErrors  = 1   // grammar registration: empty action
	ScanErrors     = 101 // bad terminal regexp
	ParseErrors    = 201 // parser misuse, e.g. unknown expected external
	InternalErrors = 301 // invariant violations, debug mode only
)
