// Package grammar defines the rule and expectation types of a
// context-sensitive grammar and the registration step that assigns
// each rule a stable RuleName and builds the indexes the chart
// engine needs.
package grammar

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ava12/cxearley/errors"
)

// Polarity distinguishes a positive expectation (&A, satisfied only by
// an external name equal to A) from a negative one (!A, satisfied by
// any external name other than A).
type Polarity byte

const (
	Positive Polarity = '&'
	Negative Polarity = '!'
)

// Expectation is a polarity-tagged requirement on a neighbor's
// external name.
type Expectation struct {
	Polarity Polarity
	Ext      string
}

// EX builds an Expectation.
func EX(polarity Polarity, ext string) Expectation {
	return Expectation{Polarity: polarity, Ext: ext}
}

// Satisfies reports whether a match with the given external name
// meets this expectation.
func (e Expectation) Satisfies(ext string) bool {
	if e.Polarity == Negative {
		return ext != e.Ext
	}
	return ext == e.Ext
}

func (e Expectation) String() string {
	return string(e.Polarity) + e.Ext
}

// Rule is implemented by TerminalRule and SubstitutionRule.
type Rule interface {
	External() string
	key() string
}

// TerminalRule matches directly against the input via a regular
// expression; it carries no expectations.
type TerminalRule struct {
	Ext     string
	Pattern string

	re *regexp.Regexp
}

// External returns the rule's external name.
func (r TerminalRule) External() string { return r.Ext }

// Regexp returns the compiled pattern, anchored to match only at the
// start of the string handed to it (scanner.Scan relies on this to
// scan at an arbitrary input offset by slicing the input first).
func (r TerminalRule) Regexp() *regexp.Regexp { return r.re }

func (r TerminalRule) key() string { return "T:" + r.Ext + "\x00" + r.Pattern }

func (r TerminalRule) String() string {
	return fmt.Sprintf("〈%s → /%s/〉", r.Ext, r.Pattern)
}

// TR compiles pattern and returns a TerminalRule, or a *errors.Error
// of code BadPatternError if the pattern is invalid.
func TR(ext, pattern string) (TerminalRule, error) {
	re, err := regexp.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		return TerminalRule{}, errors.Wrap(BadPatternError, err, "invalid regular expression "+pattern)
	}
	return TerminalRule{Ext: ext, Pattern: pattern, re: re}, nil
}

// MustTR is TR but panics on an invalid pattern; meant for rule
// tables built from Go literals rather than user input.
func MustTR(ext, pattern string) TerminalRule {
	r, err := TR(ext, pattern)
	if err != nil {
		panic(err)
	}
	return r
}

// SubstitutionRule replaces a tuple of expected child external names
// with a single result external name, optionally conditioned on left
// and/or right context.
type SubstitutionRule struct {
	Ext   string
	Act   []string
	Left  *Expectation
	Right *Expectation
}

// External returns the rule's external name.
func (r SubstitutionRule) External() string { return r.Ext }

func (r SubstitutionRule) key() string {
	var b strings.Builder
	b.WriteString("S:")
	b.WriteString(r.Ext)
	b.WriteByte('\x00')
	b.WriteString(strings.Join(r.Act, ","))
	if r.Left != nil {
		b.WriteString("/L")
		b.WriteString(r.Left.String())
	}
	if r.Right != nil {
		b.WriteString("/R")
		b.WriteString(r.Right.String())
	}
	return b.String()
}

func (r SubstitutionRule) String() string {
	left, right := "", ""
	if r.Left != nil {
		left = r.Left.String()
	}
	if r.Right != nil {
		right = r.Right.String()
	}
	return fmt.Sprintf("%s〈%s → %s〉%s", left, r.Ext, strings.Join(r.Act, " "), right)
}

// SR builds a SubstitutionRule. act must be non-empty; New rejects
// rules with an empty action.
func SR(ext string, act []string, left, right *Expectation) SubstitutionRule {
	return SubstitutionRule{Ext: ext, Act: act, Left: left, Right: right}
}

// RuleName is an opaque, dense identifier assigned to a rule at
// registration; it is the rule's identity for dedup and display.
type RuleName int

// Grammar is an immutable, registered set of rules plus the indexes
// the chart engine consults while saturating.
type Grammar struct {
	rules            []Rule
	byFirstExt       map[string][]RuleName
	leftContextRules []RuleName
	terminals        []RuleName
	extIndex         map[string]int
	defined          map[string]bool
	warnings         []string
}

// New registers rules, assigning each a RuleName and compiling the
// indexes used by the chart engine. Duplicate identical rules are
// dropped silently (recorded in Warnings); a SubstitutionRule with an
// empty action is a fatal *errors.Error of code EmptyActionError.
func New(rules ...Rule) (*Grammar, error) {
	g := &Grammar{
		byFirstExt: make(map[string][]RuleName),
		extIndex:   make(map[string]int),
	}

	seen := make(map[string]bool, len(rules))
	referenced := make(map[string]bool)

	for _, r := range rules {
		if sr, ok := r.(SubstitutionRule); ok && len(sr.Act) == 0 {
			return nil, errors.Format(EmptyActionError, "substitution rule for %q has an empty action", sr.Ext)
		}

		k := r.key()
		if seen[k] {
			g.warnings = append(g.warnings, fmt.Sprintf("duplicate rule ignored: %s", r))
			continue
		}
		seen[k] = true

		name := RuleName(len(g.rules))
		g.rules = append(g.rules, r)
		g.internExt(r.External())

		switch rr := r.(type) {
		case TerminalRule:
			g.terminals = append(g.terminals, name)
		case SubstitutionRule:
			first := rr.Act[0]
			g.internExt(first)
			g.byFirstExt[first] = append(g.byFirstExt[first], name)
			for _, a := range rr.Act[1:] {
				referenced[a] = true
			}
			if rr.Left != nil {
				g.internExt(rr.Left.Ext)
				g.leftContextRules = append(g.leftContextRules, name)
			}
			if rr.Right != nil {
				g.internExt(rr.Right.Ext)
			}
		}
	}

	g.defined = make(map[string]bool, len(g.rules))
	for _, r := range g.rules {
		g.defined[r.External()] = true
	}
	for ext := range referenced {
		if !g.defined[ext] {
			g.warnings = append(g.warnings, fmt.Sprintf(
				"external %q is only ever referenced in a non-first action position and no rule produces it; rules awaiting it will never fire", ext))
		}
	}

	return g, nil
}

func (g *Grammar) internExt(ext string) int {
	if i, ok := g.extIndex[ext]; ok {
		return i
	}
	i := len(g.extIndex)
	g.extIndex[ext] = i
	return i
}

// Warnings returns non-fatal registration diagnostics (duplicate
// rules, externals referenced but never produced).
func (g *Grammar) Warnings() []string { return g.warnings }

// Rule returns the rule registered under name.
func (g *Grammar) Rule(name RuleName) Rule { return g.rules[name] }

// ByFirstExt returns every SubstitutionRule whose first awaited
// external name is ext.
func (g *Grammar) ByFirstExt(ext string) []RuleName { return g.byFirstExt[ext] }

// Terminals returns every registered TerminalRule.
func (g *Grammar) Terminals() []RuleName { return g.terminals }

// LeftContextRules returns every SubstitutionRule that declares a left
// expectation. Used by chart.Spawn's mirror direction: a newly
// inserted complete match may itself be the left-context witness a
// rule is waiting on, for a first-child match that already sits in
// the chart (spec §4.4's spawn step only spells out the trigger-first
// direction; this is its symmetric counterpart, needed so a rule like
// `&W⟨Z→C⟩` still fires when its own witness W is completed only
// after C has already been inserted — see DESIGN.md).
func (g *Grammar) LeftContextRules() []RuleName { return g.leftContextRules }

// ExtIndex returns the dense index assigned to ext, and whether ext
// was seen during registration. Used to size and index the
// rename-chain bitset (see internal/extset).
func (g *Grammar) ExtIndex(ext string) (int, bool) {
	i, ok := g.extIndex[ext]
	return i, ok
}

// ExtCount returns the number of distinct external names seen during
// registration.
func (g *Grammar) ExtCount() int { return len(g.extIndex) }

// Defines reports whether some registered rule produces ext as its
// own external name (as opposed to only appearing in an action or a
// context expectation).
func (g *Grammar) Defines(ext string) bool { return g.defined[ext] }
