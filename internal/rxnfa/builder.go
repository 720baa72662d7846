package rxnfa

import "github.com/jsinger67/scnr-sub000/internal/ids"

// Fragment is a piece of an NFA under construction: one entry state and one
// exit state with no outgoing edges of its own yet (the caller patches them
// by composing fragments).
type Fragment struct {
	Start ids.StateID
	End   ids.StateID
}

// EmptyFragment returns a fragment that matches the empty string: an
// epsilon-only edge from Start to End, used to lower OpEmptyMatch and as the
// base case for {0,0} bounded repetition.
func (n *NFA) EmptyFragment() Fragment {
	s := n.newState()
	e := n.newState()
	n.addEpsilon(s, e)
	return Fragment{Start: s, End: e}
}

// ConsumingFragment builds a two-state fragment that consumes one character
// belonging to class.
func (n *NFA) ConsumingFragment(class ids.CharClassID) Fragment {
	s := n.newState()
	e := n.newState()
	n.addConsuming(s, class, e)
	return Fragment{Start: s, End: e}
}

// Concat sequences a then b: a's accepting state becomes non-accepting and
// epsilon-transitions into b's start.
func (n *NFA) Concat(a, b Fragment) Fragment {
	n.addEpsilon(a.End, b.Start)
	return Fragment{Start: a.Start, End: b.End}
}

// Alternation builds a|b: a fresh start state epsilon-branches into both
// operands' starts, and both operands' ends epsilon-join into a fresh end.
func (n *NFA) Alternation(a, b Fragment) Fragment {
	s := n.newState()
	e := n.newState()
	n.addEpsilon(s, a.Start)
	n.addEpsilon(s, b.Start)
	n.addEpsilon(a.End, e)
	n.addEpsilon(b.End, e)
	return Fragment{Start: s, End: e}
}

// ZeroOrOne builds f?: adds a direct epsilon skip edge from f's start to its
// end, so the fragment's language becomes {ε} ∪ L(f).
func (n *NFA) ZeroOrOne(f Fragment) Fragment {
	n.addEpsilon(f.Start, f.End)
	return f
}

// OneOrMore builds f+: adds a loop-back epsilon edge from f's end to its
// start, so the fragment's language becomes L(f) L(f)*.
func (n *NFA) OneOrMore(f Fragment) Fragment {
	n.addEpsilon(f.End, f.Start)
	return f
}

// ZeroOrMore builds f*: combines the skip edge of ZeroOrOne with the
// loop-back edge of OneOrMore.
func (n *NFA) ZeroOrMore(f Fragment) Fragment {
	n.addEpsilon(f.Start, f.End)
	n.addEpsilon(f.End, f.Start)
	return f
}

// Clone deep-copies every state reachable from f.Start (following both
// epsilon and consuming edges) into freshly allocated states, and returns a
// fragment over the copy. Thompson fragments are self-contained — every edge
// inside a fragment stays inside it — so a forward reachability walk from
// Start visits exactly the fragment's own states, regardless of how their
// IDs are interleaved with sibling fragments built earlier.
func (n *NFA) Clone(f Fragment) Fragment {
	order := make([]ids.StateID, 0, 8)
	visited := make(map[ids.StateID]bool)
	var walk func(ids.StateID)
	walk = func(s ids.StateID) {
		if visited[s] {
			return
		}
		visited[s] = true
		order = append(order, s)
		for _, e := range n.States[s].Epsilons {
			walk(e)
		}
		if n.States[s].HasConsuming {
			walk(n.States[s].ConsumingNext)
		}
	}
	walk(f.Start)

	remap := make(map[ids.StateID]ids.StateID, len(order))
	for _, old := range order {
		remap[old] = n.newState()
	}
	for _, old := range order {
		st := n.States[old]
		neu := remap[old]
		for _, e := range st.Epsilons {
			n.addEpsilon(neu, remap[e])
		}
		if st.HasConsuming {
			n.addConsuming(neu, st.Class, remap[st.ConsumingNext])
		}
	}
	return Fragment{Start: remap[f.Start], End: remap[f.End]}
}

// BoundedRepeat builds f{min,max} for max >= min >= 0: min required copies
// concatenated with (max-min) further copies each wrapped in ZeroOrOne, so
// every suffix beyond the required count is independently skippable.
func (n *NFA) BoundedRepeat(f Fragment, min, max int) Fragment {
	parts := make([]Fragment, 0, max)
	used := false
	nextCopy := func() Fragment {
		if !used {
			used = true
			return f
		}
		return n.Clone(f)
	}
	for i := 0; i < min; i++ {
		parts = append(parts, nextCopy())
	}
	for i := 0; i < max-min; i++ {
		parts = append(parts, n.ZeroOrOne(nextCopy()))
	}
	if len(parts) == 0 {
		return n.EmptyFragment()
	}
	result := parts[0]
	for _, p := range parts[1:] {
		result = n.Concat(result, p)
	}
	return result
}

// AtLeastRepeat builds f{min,} for min >= 0.
func (n *NFA) AtLeastRepeat(f Fragment, min int) Fragment {
	if min == 0 {
		return n.ZeroOrMore(f)
	}
	parts := make([]Fragment, 0, min)
	parts = append(parts, f)
	for i := 1; i < min; i++ {
		parts = append(parts, n.Clone(f))
	}
	last := len(parts) - 1
	parts[last] = n.OneOrMore(parts[last])
	result := parts[0]
	for _, p := range parts[1:] {
		result = n.Concat(result, p)
	}
	return result
}
