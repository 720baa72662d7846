// Package ids declares the distinct integer handle types shared across the
// scanner's internal packages. Keeping them as separate named types (instead
// of passing bare uint32s around) makes it a compile error to, say, pass a
// CharClassID where a StateID is expected.
package ids

// CharClassID identifies an interned character class as registered with the
// character-class registry, before disjoint partitioning.
type CharClassID uint32

// DisjointClassID identifies one elementary interval produced by partitioning
// all registered character classes into maximal non-overlapping ranges. DFA
// transitions are labeled with DisjointClassID, never CharClassID.
type DisjointClassID uint32

// StateID identifies a state within an NFA or a DFA. The two are never mixed:
// callers track which automaton a StateID belongs to by context.
type StateID uint32

// TerminalID identifies the token type produced by a pattern, as supplied by
// the caller when the pattern was added (not assigned by the engine).
type TerminalID uint32

// InvalidState is a sentinel for "no state", used for absent transitions.
const InvalidState StateID = ^StateID(0)
