package scnr

import (
	"encoding/json"
	"fmt"
)

// MarshalModes serializes a set of scanner-mode definitions to JSON, in the
// shape a ScannerBuilder or BuildModes accepts — i.e. the definitions, not
// a compiled Scanner. A compiled Scanner (its DFAs, elementary-interval
// partition, lookahead automata) is never itself serialized; re-parsing and
// re-compiling the mode definitions is cheap and avoids having to keep a
// binary artifact format in sync with this package's internals.
//
// The wire shape is the external interchange format: each mode's
// transitions are emitted as [terminal_id, next_mode_index] pairs rather
// than the {terminal_id, target_mode} shape ModeTransition uses internally,
// so external tooling never has to know mode names, only the document's own
// mode ordering.
//
// Plain encoding/json is used deliberately: the wire structs below are
// simple and flat, the exact case stdlib's encoder is built for. None of
// the ecosystem (de)serialization libraries this module otherwise draws on
// (Aho-Corasick, gologger) have anything to do with structured
// serialization, so there is no third-party library from this module's
// dependency stack the job could reasonably be handed to.
func MarshalModes(modes []ScannerMode) ([]byte, error) {
	index := make(map[string]int, len(modes))
	for i, m := range modes {
		index[m.Name] = i
	}

	wire := make([]wireMode, len(modes))
	for i, m := range modes {
		wm := wireMode{Name: m.Name, Patterns: m.Patterns}
		if len(m.Transitions) > 0 {
			wm.Transitions = make([][2]uint32, len(m.Transitions))
			for j, tr := range m.Transitions {
				target, ok := index[tr.TargetMode]
				if !ok {
					return nil, &Error{Kind: IoErrorKind, Cause: fmt.Errorf("scnr: mode %q transitions to unknown mode %q", m.Name, tr.TargetMode)}
				}
				wm.Transitions[j] = [2]uint32{tr.TerminalID, uint32(target)}
			}
		}
		wire[i] = wm
	}
	return json.Marshal(wire)
}

// UnmarshalModes parses scanner-mode definitions previously produced by
// MarshalModes.
func UnmarshalModes(data []byte) ([]ScannerMode, error) {
	var wire []wireMode
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, &Error{Kind: IoErrorKind, Cause: err}
	}

	modes := make([]ScannerMode, len(wire))
	for i, wm := range wire {
		m := ScannerMode{Name: wm.Name, Patterns: wm.Patterns}
		if len(wm.Transitions) > 0 {
			m.Transitions = make([]ModeTransition, len(wm.Transitions))
			for j, pair := range wm.Transitions {
				targetIdx := int(pair[1])
				if targetIdx < 0 || targetIdx >= len(wire) {
					return nil, &Error{Kind: IoErrorKind, Cause: fmt.Errorf("scnr: mode %q transitions to out-of-range mode index %d", wm.Name, targetIdx)}
				}
				m.Transitions[j] = ModeTransition{TerminalID: pair[0], TargetMode: wire[targetIdx].Name}
			}
		}
		modes[i] = m
	}
	return modes, nil
}

// wireMode mirrors the external serialization format documented for
// ScannerMode: transitions as [terminal_id, next_mode_index] pairs instead
// of {terminal_id, target_mode} objects.
type wireMode struct {
	Name        string      `json:"name"`
	Patterns    []Pattern   `json:"patterns"`
	Transitions [][2]uint32 `json:"transitions,omitempty"`
}
