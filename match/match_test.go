package match

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava12/cxearley/grammar"
)

func TestTerminalDepthIsOne(t *testing.T) {
	a := grammar.MustTR("a", "a")
	m := NewTerminal(0, a, 0, 1, 0, 4)
	require.Equal(t, 1, m.Depth)
	require.Equal(t, "a", m.Ext())
	require.Equal(t, 1, m.RenameChainLen())
}

func TestUnitRenameAdvancesDepth(t *testing.T) {
	a := grammar.MustTR("a", "a")
	leaf := NewTerminal(0, a, 0, 1, 0, 4)

	wrap := grammar.SR("B", []string{"a"}, nil, nil)
	m, ok := NewSubstitution(1, wrap, 0, 1, []*CompleteMatch{leaf}, nil, nil, 1, 4)
	require.True(t, ok)
	require.Equal(t, 2, m.Depth)
	require.Equal(t, 2, m.RenameChainLen())
}

func TestUnitRenameCycleRejected(t *testing.T) {
	a := grammar.MustTR("a", "a")
	leaf := NewTerminal(0, a, 0, 1, 0, 4)

	toB := grammar.SR("B", []string{"a"}, nil, nil)
	b, ok := NewSubstitution(1, toB, 0, 1, []*CompleteMatch{leaf}, nil, nil, 1, 4)
	require.True(t, ok)

	backToA := grammar.SR("a", []string{"B"}, nil, nil)
	_, ok = NewSubstitution(2, backToA, 0, 1, []*CompleteMatch{b}, nil, nil, 0, 4)
	require.False(t, ok, "re-deriving 'a' in its own unit-rename chain must be refused")
}

func TestBranchingResetsDepth(t *testing.T) {
	a := grammar.MustTR("a", "a")
	b := grammar.MustTR("b", "b")
	leafA := NewTerminal(0, a, 0, 1, 0, 4)
	leafB := NewTerminal(1, b, 1, 2, 1, 4)

	wrap := grammar.SR("W", []string{"a"}, nil, nil)
	wrapped, ok := NewSubstitution(2, wrap, 0, 1, []*CompleteMatch{leafA}, nil, nil, 2, 4)
	require.True(t, ok)
	require.Equal(t, 2, wrapped.Depth)

	branch := grammar.SR("S", []string{"W", "b"}, nil, nil)
	s, ok := NewSubstitution(3, branch, 0, 2, []*CompleteMatch{wrapped, leafB}, nil, nil, 3, 4)
	require.True(t, ok)
	require.Equal(t, 1, s.Depth, "branching must reset depth to 1 regardless of children's depth")
}

func TestCompatibleRespectsExpectations(t *testing.T) {
	a := grammar.MustTR("a", "a")
	b := grammar.MustTR("b", "b")
	leafA := NewTerminal(0, a, 0, 1, 0, 2)
	leafB := NewTerminal(1, b, 1, 2, 1, 2)

	require.True(t, Compatible(leafA, leafB), "no expectations means always compatible")

	right := grammar.EX(grammar.Positive, "b")
	ruleWithRight := grammar.SR("C", []string{"a"}, nil, &right)
	withRight, ok := NewSubstitution(2, ruleWithRight, 0, 1, []*CompleteMatch{leafA}, nil, nil, 2, 2)
	require.True(t, ok)
	require.True(t, Compatible(withRight, leafB))

	negRight := grammar.EX(grammar.Negative, "b")
	ruleWithNegRight := grammar.SR("D", []string{"a"}, nil, &negRight)
	withNegRight, ok := NewSubstitution(3, ruleWithNegRight, 0, 1, []*CompleteMatch{leafA}, nil, nil, 3, 2)
	require.True(t, ok)
	require.False(t, Compatible(withNegRight, leafB))
}

func TestKeyStability(t *testing.T) {
	a := grammar.MustTR("a", "a")
	m1 := NewTerminal(0, a, 0, 1, 0, 2)
	m2 := NewTerminal(0, a, 0, 1, 0, 2)
	require.Equal(t, m1.Key(), m2.Key())

	m3 := NewTerminal(0, a, 0, 2, 0, 2)
	require.NotEqual(t, m1.Key(), m3.Key())
}
