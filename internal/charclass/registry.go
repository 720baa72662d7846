// Package charclass implements the character-class registry: interning of
// character classes encountered while lowering a pattern tree, and the
// elementary-interval algorithm that partitions every registered class into
// a disjoint set of maximal sub-ranges so that DFA transitions can be keyed
// on a single small integer instead of a set of possibly-overlapping rune
// ranges.
package charclass

import (
	"sort"
	"strings"

	"github.com/jsinger67/scnr-sub000/internal/ids"
)

const maxRune = 0x10FFFF

// Interval is an inclusive rune range [Lo, Hi].
type Interval struct {
	Lo, Hi rune
}

func (iv Interval) contains(r rune) bool { return r >= iv.Lo && r <= iv.Hi }

// ClassSpec is an unregistered character class: a set of inclusive rune
// ranges, not required to be sorted or merged by the caller. Intern
// normalizes it before interning.
type ClassSpec struct {
	Ranges []Interval
}

// normalize sorts ranges by Lo and merges adjacent/overlapping ranges.
func normalize(ranges []Interval) []Interval {
	if len(ranges) == 0 {
		return nil
	}
	cp := make([]Interval, len(ranges))
	copy(cp, ranges)
	sort.Slice(cp, func(i, j int) bool { return cp[i].Lo < cp[j].Lo })
	out := make([]Interval, 0, len(cp))
	cur := cp[0]
	for _, iv := range cp[1:] {
		if iv.Lo <= cur.Hi+1 {
			if iv.Hi > cur.Hi {
				cur.Hi = iv.Hi
			}
			continue
		}
		out = append(out, cur)
		cur = iv
	}
	out = append(out, cur)
	return out
}

func key(ranges []Interval) string {
	var sb strings.Builder
	for _, iv := range ranges {
		sb.WriteString(string(rune(iv.Lo)))
		sb.WriteByte(0)
		sb.WriteString(string(rune(iv.Hi)))
		sb.WriteByte(1)
	}
	return sb.String()
}

type registeredClass struct {
	ranges     []Interval
	disjoint   []ids.DisjointClassID // populated by Finalize
}

// Registry interns character classes and, once Finalize is called, exposes
// the disjoint elementary-interval partition of every class registered so
// far. Registry is not safe for concurrent use.
type Registry struct {
	byKey      map[string]ids.CharClassID
	classes    []registeredClass
	elementary []Interval
	finalized  bool
}

// NewRegistry returns an empty, unfinalized registry.
func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string]ids.CharClassID)}
}

// Intern registers spec (after normalization) and returns its CharClassID,
// reusing an existing ID if a structurally identical class was already
// interned. Panics if called after Finalize.
func (r *Registry) Intern(spec ClassSpec) ids.CharClassID {
	if r.finalized {
		panic("charclass: Intern called after Finalize")
	}
	norm := normalize(spec.Ranges)
	k := key(norm)
	if id, ok := r.byKey[k]; ok {
		return id
	}
	id := ids.CharClassID(len(r.classes))
	r.classes = append(r.classes, registeredClass{ranges: norm})
	r.byKey[k] = id
	return id
}

// Matches reports whether r falls within the character class id, using the
// class's original (pre-partition) ranges. Valid before and after Finalize.
func (r *Registry) Matches(id ids.CharClassID, c rune) bool {
	ranges := r.classes[id].ranges
	i := sort.Search(len(ranges), func(i int) bool { return ranges[i].Hi >= c })
	return i < len(ranges) && ranges[i].contains(c)
}

// Finalize computes the elementary-interval partition: the boundary-
// collection algorithm. Every registered class's range endpoints contribute
// a boundary; the space between consecutive boundaries becomes one candidate
// elementary interval, kept only if some registered class overlaps it. Each
// class then records which elementary intervals it fully contains.
//
// After Finalize, Intern must not be called again, and DisjointClasses /
// ElementaryInterval become valid.
func (r *Registry) Finalize() {
	if r.finalized {
		return
	}
	boundarySet := make(map[rune]struct{})
	for _, c := range r.classes {
		for _, iv := range c.ranges {
			boundarySet[iv.Lo] = struct{}{}
			if iv.Hi < maxRune {
				boundarySet[iv.Hi+1] = struct{}{}
			}
		}
	}
	boundaries := make([]rune, 0, len(boundarySet))
	for b := range boundarySet {
		boundaries = append(boundaries, b)
	}
	sort.Slice(boundaries, func(i, j int) bool { return boundaries[i] < boundaries[j] })

	elem := make([]Interval, 0, len(boundaries))
	for i := 0; i < len(boundaries); i++ {
		start := boundaries[i]
		var end rune
		if i+1 < len(boundaries) {
			end = boundaries[i+1] - 1
		} else {
			end = maxRune
		}
		if start > end {
			continue
		}
		overlaps := false
		for _, c := range r.classes {
			for _, iv := range c.ranges {
				if iv.Lo <= end && start <= iv.Hi {
					overlaps = true
					break
				}
			}
			if overlaps {
				break
			}
		}
		if overlaps {
			elem = append(elem, Interval{Lo: start, Hi: end})
		}
	}
	r.elementary = elem

	for ci := range r.classes {
		c := &r.classes[ci]
		for ei, iv := range elem {
			for _, cr := range c.ranges {
				if cr.Lo <= iv.Lo && iv.Hi <= cr.Hi {
					c.disjoint = append(c.disjoint, ids.DisjointClassID(ei))
					break
				}
			}
		}
	}
	r.finalized = true
}

// DisjointClasses returns the elementary-interval IDs that together cover
// character class id exactly. Valid only after Finalize.
func (r *Registry) DisjointClasses(id ids.CharClassID) []ids.DisjointClassID {
	if !r.finalized {
		panic("charclass: DisjointClasses called before Finalize")
	}
	return r.classes[id].disjoint
}

// ElementaryInterval returns the rune range denoted by a DisjointClassID.
// Valid only after Finalize.
func (r *Registry) ElementaryInterval(d ids.DisjointClassID) Interval {
	return r.elementary[d]
}

// NumElementaryIntervals returns the number of disjoint elementary intervals
// produced by Finalize.
func (r *Registry) NumElementaryIntervals() int {
	return len(r.elementary)
}

// DisjointClassFor returns the single elementary interval ID that contains c,
// and whether one was found (c might not be covered by any registered
// class). Subset construction does not call it; it labels transitions via
// DisjointClasses.
func (r *Registry) DisjointClassFor(c rune) (ids.DisjointClassID, bool) {
	i := sort.Search(len(r.elementary), func(i int) bool { return r.elementary[i].Hi >= c })
	if i < len(r.elementary) && r.elementary[i].contains(c) {
		return ids.DisjointClassID(i), true
	}
	return 0, false
}
