package match

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava12/cxearley/grammar"
)

func TestCheckInvariantsAcceptsWellFormedMatch(t *testing.T) {
	a := grammar.MustTR("a", "a")
	b := grammar.MustTR("b", "b")
	leafA := NewTerminal(0, a, 0, 1, 0, 2)
	leafB := NewTerminal(1, b, 1, 2, 1, 2)

	s := grammar.SR("S", []string{"a", "b"}, nil, nil)
	m, ok := NewSubstitution(2, s, 0, 2, []*CompleteMatch{leafA, leafB}, nil, nil, 2, 2)
	require.True(t, ok)

	require.NotPanics(t, func() { CheckInvariants([]*CompleteMatch{m}, 2) })
}

func TestCheckInvariantsCatchesGap(t *testing.T) {
	a := grammar.MustTR("a", "a")
	c := grammar.MustTR("c", "c")
	leafA := NewTerminal(0, a, 0, 1, 0, 2)
	leafC := NewTerminal(1, c, 2, 3, 1, 2) // deliberately leaves a gap at [1:2)

	s := grammar.SR("S", []string{"a", "c"}, nil, nil)
	m, ok := NewSubstitution(2, s, 0, 3, []*CompleteMatch{leafA, leafC}, nil, nil, 2, 2)
	require.True(t, ok)

	require.Panics(t, func() { CheckInvariants([]*CompleteMatch{m}, 2) })
}
