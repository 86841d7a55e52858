package scanner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava12/cxearley/grammar"
)

func TestScanMatchesAllTerminalsAtPosition(t *testing.T) {
	a := grammar.MustTR("a", "a")
	digits := grammar.MustTR("d", `[0-9]+`)
	g, e := grammar.New(a, digits)
	require.NoError(t, e)

	out := Scan(g, "a123b", 1)
	require.Len(t, out, 1)
	require.Equal(t, "d", out[0].Ext())
	require.Equal(t, 1, out[0].Start)
	require.Equal(t, 4, out[0].End)
}

func TestScanRejectsZeroWidthMatch(t *testing.T) {
	empty := grammar.MustTR("e", `a*`)
	g, e := grammar.New(empty)
	require.NoError(t, e)

	out := Scan(g, "bbb", 0)
	require.Empty(t, out, "a zero-width terminal match must not be produced")
}

func TestScanNoMatch(t *testing.T) {
	a := grammar.MustTR("a", "a")
	g, e := grammar.New(a)
	require.NoError(t, e)

	out := Scan(g, "zzz", 0)
	require.Empty(t, out)
}
