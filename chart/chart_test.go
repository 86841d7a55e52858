package chart

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/ava12/cxearley/grammar"
	"github.com/ava12/cxearley/scanner"
)

func seedAll(c *Chart, g *grammar.Grammar, input string) {
	for p := 0; p <= len(input); p++ {
		for _, cm := range scanner.Scan(g, input, p) {
			c.InsertComplete(cm)
		}
	}
}

func TestSaturateSimpleConcatenation(t *testing.T) {
	a := grammar.MustTR("a", "a")
	b := grammar.MustTR("b", "b")
	s := grammar.SR("S", []string{"a", "b"}, nil, nil)

	g, err := grammar.New(a, b, s)
	require.NoError(t, err)

	c := New(g, 2, zerolog.Nop())
	seedAll(c, g, "ab")

	_, exceeded, err := Saturate(context.Background(), c, 0)
	require.NoError(t, err)
	require.False(t, exceeded)

	spanning := c.Spanning(2, "S")
	require.Len(t, spanning, 1)
	require.Equal(t, 0, spanning[0].Start)
	require.Equal(t, 2, spanning[0].End)
}

func TestSaturateNoSpawnWithoutFullMatch(t *testing.T) {
	a := grammar.MustTR("a", "a")
	b := grammar.MustTR("b", "b")
	s := grammar.SR("S", []string{"a", "b"}, nil, nil)

	g, err := grammar.New(a, b, s)
	require.NoError(t, err)

	c := New(g, 1, zerolog.Nop())
	seedAll(c, g, "a")

	_, _, err = Saturate(context.Background(), c, 0)
	require.NoError(t, err)
	require.Empty(t, c.Spanning(1, "S"))
}

func TestSaturatePositiveLeftContext(t *testing.T) {
	a := grammar.MustTR("a", "a")
	b := grammar.MustTR("b", "b")
	left := grammar.EX(grammar.Positive, "a")
	cRule := grammar.SR("C", []string{"b"}, &left, nil)

	g, err := grammar.New(a, b, cRule)
	require.NoError(t, err)

	c := New(g, 2, zerolog.Nop())
	seedAll(c, g, "ab")
	_, _, err = Saturate(context.Background(), c, 0)
	require.NoError(t, err)

	matches := c.CompleteStartingAt(1, nil)
	var foundC bool
	for _, m := range matches {
		if m.Ext() == "C" {
			foundC = true
			require.NotNil(t, m.LeftCtx)
			require.Equal(t, "a", m.LeftCtx.Ext())
		}
	}
	require.True(t, foundC, "C should form after a, witnessed by the leading a")

	c2 := New(g, 2, zerolog.Nop())
	seedAll(c2, g, "bb")
	_, _, err = Saturate(context.Background(), c2, 0)
	require.NoError(t, err)
	for _, m := range c2.CompleteStartingAt(1, nil) {
		require.NotEqual(t, "C", m.Ext(), "C must not form without a preceding a")
	}
}

func TestSaturateNegativeRightContextAtBoundary(t *testing.T) {
	a := grammar.MustTR("a", "a")
	notA := grammar.EX(grammar.Negative, "a")
	w := grammar.SR("W", []string{"a"}, nil, &notA)

	g, err := grammar.New(a, w)
	require.NoError(t, err)

	c := New(g, 1, zerolog.Nop())
	seedAll(c, g, "a")
	_, _, err = Saturate(context.Background(), c, 0)
	require.NoError(t, err)

	require.Len(t, c.Spanning(1, "W"), 1, "negative right context at the outer boundary is satisfied")
}

func TestInsertCompleteDedupIsIdempotent(t *testing.T) {
	a := grammar.MustTR("a", "a")
	g, err := grammar.New(a)
	require.NoError(t, err)

	c := New(g, 1, zerolog.Nop())
	m1 := scanner.Scan(g, "a", 0)[0]
	m2 := scanner.Scan(g, "a", 0)[0]

	require.True(t, c.InsertComplete(m1))
	require.False(t, c.InsertComplete(m2), "an equal match by dedup key must not be reinserted")
}

func TestMaxWorkBudget(t *testing.T) {
	a := grammar.MustTR("a", "a")
	b := grammar.MustTR("b", "b")
	s := grammar.SR("S", []string{"a", "b"}, nil, nil)

	g, err := grammar.New(a, b, s)
	require.NoError(t, err)

	c := New(g, 2, zerolog.Nop())
	seedAll(c, g, "ab")

	_, exceeded, err := Saturate(context.Background(), c, 1)
	require.NoError(t, err)
	require.True(t, exceeded)
}
