package charclass

import (
	"reflect"
	"testing"

	"github.com/jsinger67/scnr-sub000/internal/ids"
)

func TestInternDedupesStructurallyEqualClasses(t *testing.T) {
	r := NewRegistry()
	a := r.Intern(ClassSpec{Ranges: []Interval{{'a', 'f'}}})
	b := r.Intern(ClassSpec{Ranges: []Interval{{'a', 'c'}, {'d', 'f'}}})
	if a != b {
		t.Fatalf("expected structurally equal classes to share an ID, got %d and %d", a, b)
	}
	c := r.Intern(ClassSpec{Ranges: []Interval{{'a', 'e'}}})
	if a == c {
		t.Fatalf("expected different ranges to get different IDs")
	}
}

func TestElementaryIntervalsHexDigitOverlap(t *testing.T) {
	// [a-f][0-9a-f]: the two classes overlap on a-f, so the elementary
	// partition must separate 0-9, a-f as distinct pieces.
	r := NewRegistry()
	hexLower := r.Intern(ClassSpec{Ranges: []Interval{{'a', 'f'}}})
	hexAny := r.Intern(ClassSpec{Ranges: []Interval{{'0', '9'}, {'a', 'f'}}})
	r.Finalize()

	want := []Interval{{'0', '9'}, {'a', 'f'}}
	got := make([]Interval, r.NumElementaryIntervals())
	for i := range got {
		got[i] = r.ElementaryInterval(ids.DisjointClassID(i))
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("elementary intervals = %v, want %v", got, want)
	}

	hexLowerDisjoint := r.DisjointClasses(hexLower)
	if !reflect.DeepEqual(hexLowerDisjoint, []ids.DisjointClassID{1}) {
		t.Fatalf("hexLower disjoint classes = %v, want [1]", hexLowerDisjoint)
	}
	hexAnyDisjoint := r.DisjointClasses(hexAny)
	if !reflect.DeepEqual(hexAnyDisjoint, []ids.DisjointClassID{0, 1}) {
		t.Fatalf("hexAny disjoint classes = %v, want [0 1]", hexAnyDisjoint)
	}
}

func TestElementaryIntervalsDisjointClassesAlreadySeparate(t *testing.T) {
	r := NewRegistry()
	digits := r.Intern(ClassSpec{Ranges: []Interval{{'0', '9'}}})
	underscore := r.Intern(ClassSpec{Ranges: []Interval{{'_', '_'}}})
	dot := r.Intern(ClassSpec{Ranges: []Interval{{'.', '.'}}})
	r.Finalize()

	if len(r.DisjointClasses(digits)) != 1 {
		t.Fatalf("digits should map to exactly one elementary interval")
	}
	if len(r.DisjointClasses(underscore)) != 1 {
		t.Fatalf("underscore should map to exactly one elementary interval")
	}
	if len(r.DisjointClasses(dot)) != 1 {
		t.Fatalf("dot should map to exactly one elementary interval")
	}
	du := r.DisjointClasses(digits)[0]
	uu := r.DisjointClasses(underscore)[0]
	do := r.DisjointClasses(dot)[0]
	if du == uu || du == do || uu == do {
		t.Fatalf("disjoint classes should be mutually distinct: %v %v %v", du, uu, do)
	}
}

func TestMatchesUsesOriginalRangesNotElementaryPartition(t *testing.T) {
	r := NewRegistry()
	vowels := r.Intern(ClassSpec{Ranges: []Interval{{'a', 'a'}, {'e', 'e'}, {'i', 'i'}, {'o', 'o'}, {'u', 'u'}}})
	r.Finalize()
	for _, c := range []rune{'a', 'e', 'i', 'o', 'u'} {
		if !r.Matches(vowels, c) {
			t.Errorf("expected %q to match vowels class", c)
		}
	}
	for _, c := range []rune{'b', 'x', '0'} {
		if r.Matches(vowels, c) {
			t.Errorf("expected %q to not match vowels class", c)
		}
	}
}

func TestDisjointClassForRoundTrip(t *testing.T) {
	r := NewRegistry()
	r.Intern(ClassSpec{Ranges: []Interval{{'a', 'z'}}})
	r.Intern(ClassSpec{Ranges: []Interval{{'A', 'Z'}}})
	r.Finalize()

	for _, c := range []rune{'a', 'm', 'z', 'A', 'Z'} {
		d, ok := r.DisjointClassFor(c)
		if !ok {
			t.Fatalf("expected %q to be covered by some elementary interval", c)
		}
		iv := r.ElementaryInterval(d)
		if c < iv.Lo || c > iv.Hi {
			t.Fatalf("elementary interval %v does not actually contain %q", iv, c)
		}
	}
	if _, ok := r.DisjointClassFor('0'); ok {
		t.Fatalf("digit should not be covered by any registered class")
	}
}
