package rxnfa

import (
	"testing"

	"github.com/jsinger67/scnr-sub000/internal/charclass"
	"github.com/jsinger67/scnr-sub000/internal/ids"
)

// acceptsLength runs a freshly built single-fragment NFA against a rune
// count and reports whether it has a path that consumes exactly that many
// runes of class class and ends at f.End.
func acceptsLength(n *NFA, f Fragment, class ids.CharClassID, count int) bool {
	current := n.EpsilonClosure([]ids.StateID{f.Start})
	for i := 0; i < count; i++ {
		var next []ids.StateID
		for _, s := range current {
			st := n.States[s]
			if st.HasConsuming && st.Class == class {
				next = append(next, st.ConsumingNext)
			}
		}
		if len(next) == 0 {
			return false
		}
		current = n.EpsilonClosure(next)
	}
	for _, s := range current {
		if s == f.End {
			return true
		}
	}
	return false
}

func newTestNFA() (*NFA, ids.CharClassID, *charclass.Registry) {
	n := &NFA{}
	reg := charclass.NewRegistry()
	class := reg.Intern(charclass.ClassSpec{Ranges: []charclass.Interval{{Lo: 'a', Hi: 'a'}}})
	reg.Finalize()
	return n, class, reg
}

func TestBoundedRepeatAcceptsOnlyInRange(t *testing.T) {
	n, class, _ := newTestNFA()
	base := n.ConsumingFragment(class)
	f := n.BoundedRepeat(base, 2, 4)

	for count := 0; count <= 5; count++ {
		want := count >= 2 && count <= 4
		got := acceptsLength(n, f, class, count)
		if got != want {
			t.Errorf("a{2,4} accepts %d a's = %v, want %v", count, got, want)
		}
	}
}

func TestAtLeastRepeatZeroMinAcceptsEmpty(t *testing.T) {
	n, class, _ := newTestNFA()
	base := n.ConsumingFragment(class)
	f := n.AtLeastRepeat(base, 0)

	if !acceptsLength(n, f, class, 0) {
		t.Error("a{0,} must accept the empty string")
	}
	if !acceptsLength(n, f, class, 3) {
		t.Error("a{0,} must accept 3 a's")
	}
}

func TestAtLeastRepeatPositiveMinRejectsShort(t *testing.T) {
	n, class, _ := newTestNFA()
	base := n.ConsumingFragment(class)
	f := n.AtLeastRepeat(base, 2)

	if acceptsLength(n, f, class, 1) {
		t.Error("a{2,} must reject a single a")
	}
	if !acceptsLength(n, f, class, 2) {
		t.Error("a{2,} must accept exactly 2 a's")
	}
	if !acceptsLength(n, f, class, 5) {
		t.Error("a{2,} must accept more than the minimum")
	}
}

func TestCloneProducesIndependentFragment(t *testing.T) {
	n, class, _ := newTestNFA()
	base := n.ConsumingFragment(class)
	clone := n.Clone(base)

	if clone.Start == base.Start || clone.End == base.End {
		t.Fatal("Clone must allocate fresh states, not alias the original fragment")
	}
	if !acceptsLength(n, clone, class, 1) {
		t.Error("the cloned fragment should accept the same language as the original")
	}
}
