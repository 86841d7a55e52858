package chart

import (
	"github.com/ava12/cxearley/grammar"
	"github.com/ava12/cxearley/match"
)

// Spawn implements the prediction step of spec §4.4: when complete
// match cm is added to the chart, every SubstitutionRule that expects
// cm's external name as its first child gets a chance to start a new
// forward match with cm as its first fed child.
//
// It also runs the symmetric direction: cm may itself be the
// left-context witness some rule is waiting on for a first-child
// match that is already sitting in the chart (spec §4.4 only spells
// out the trigger-arrives-first direction; a mutually cyclic set of
// rules — see DESIGN.md's G1 notes — can just as well have the
// witness complete after its dependent first-child match already
// exists, and that spawn must not be missed).
func Spawn(c *Chart, cm *match.CompleteMatch) {
	for _, name := range c.g.ByFirstExt(cm.Ext()) {
		rule := c.g.Rule(name).(grammar.SubstitutionRule)
		spawnRule(c, name, rule, cm)
	}
	spawnAsLeftContext(c, cm)
}

// spawnAsLeftContext retroactively spawns every rule whose left
// expectation cm satisfies, against first-child matches that already
// start where cm ends.
func spawnAsLeftContext(c *Chart, l *match.CompleteMatch) {
	for _, name := range c.g.LeftContextRules() {
		rule := c.g.Rule(name).(grammar.SubstitutionRule)
		if !rule.Left.Satisfies(l.Ext()) {
			continue
		}
		first := grammar.EX(grammar.Positive, rule.Act[0])
		for _, x := range c.CompleteStartingAt(l.End, &first) {
			if match.Compatible(l, x) {
				startForward(c, name, rule, l, x)
			}
		}
	}
}

func spawnRule(c *Chart, name grammar.RuleName, rule grammar.SubstitutionRule, cm *match.CompleteMatch) {
	switch {
	case rule.Left == nil:
		startForward(c, name, rule, nil, cm)

	case rule.Left.Polarity == grammar.Positive:
		for _, l := range c.CompleteEndingAt(cm.Start, rule.Left) {
			if match.Compatible(l, cm) {
				startForward(c, name, rule, l, cm)
			}
		}

	default: // negative left expectation
		all := c.CompleteEndingAt(cm.Start, nil)
		for _, l := range all {
			if rule.Left.Satisfies(l.Ext()) && match.Compatible(l, cm) {
				startForward(c, name, rule, l, cm)
			}
		}
		if len(all) == 0 {
			startForward(c, name, rule, nil, cm)
		}
	}
}

func startForward(c *Chart, name grammar.RuleName, rule grammar.SubstitutionRule, leftBrother, cm *match.CompleteMatch) {
	f := match.NewForward(name, rule, cm.Start, leftBrother)
	fed, ok := Feed(f, cm)
	if !ok {
		return
	}
	c.InsertForward(fed)
}
