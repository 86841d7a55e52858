package match

import "fmt"

// CheckInvariants walks every match reachable from matches via child
// and context edges and panics if it finds one violating an invariant
// from spec §3/§4: positive span, depth bounded by the external-name
// count, and children tiling their parent's span with no gap or
// overlap. It is meant to run only under a debug flag — parser.Parse
// recovers the panic into a structured internal error — since it
// walks the whole reachable match-graph once per call.
func CheckInvariants(matches []*CompleteMatch, extCount int) {
	seen := make(map[*CompleteMatch]bool)
	for _, m := range matches {
		checkMatch(m, extCount, seen)
	}
}

func checkMatch(m *CompleteMatch, extCount int, seen map[*CompleteMatch]bool) {
	if m == nil || seen[m] {
		return
	}
	seen[m] = true

	if m.Start >= m.End {
		panic(fmt.Sprintf("match %s has a non-positive span", m))
	}
	if m.Depth < 1 || m.Depth > extCount {
		panic(fmt.Sprintf("match %s has depth %d out of bound [1,%d]", m, m.Depth, extCount))
	}

	pos := m.Start
	for _, c := range m.Children {
		if c.Start != pos {
			panic(fmt.Sprintf("match %s's children leave a gap or overlap before %s", m, c))
		}
		pos = c.End
		checkMatch(c, extCount, seen)
	}
	if len(m.Children) > 0 && pos != m.End {
		panic(fmt.Sprintf("match %s's children do not tile its span", m))
	}

	if m.LeftCtx != nil {
		if m.LeftCtx.End != m.Start {
			panic(fmt.Sprintf("match %s's left context does not end where the match starts", m))
		}
		checkMatch(m.LeftCtx, extCount, seen)
	}
	if m.RightCtx != nil {
		if m.RightCtx.Start != m.End {
			panic(fmt.Sprintf("match %s's right context does not start where the match ends", m))
		}
		checkMatch(m.RightCtx, extCount, seen)
	}
}
