package scnr

import "github.com/jsinger67/scnr-sub000/internal/conv"

// ScannerBuilder accumulates scanner modes (and an optional Config) before
// compiling them into a Scanner. Prefer Build/BuildModes for the common
// cases; use ScannerBuilder when modes are assembled incrementally, e.g.
// one mode per grammar rule emitted by a generator.
type ScannerBuilder struct {
	modes  []ScannerMode
	config Config
}

// NewBuilder returns an empty builder with DefaultConfig.
func NewBuilder() *ScannerBuilder {
	return &ScannerBuilder{config: DefaultConfig()}
}

// WithConfig overrides the builder's Config.
func (b *ScannerBuilder) WithConfig(c Config) *ScannerBuilder {
	b.config = c
	return b
}

// AddMode appends one mode.
func (b *ScannerBuilder) AddMode(m ScannerMode) *ScannerBuilder {
	b.modes = append(b.modes, m)
	return b
}

// AddModes appends several modes.
func (b *ScannerBuilder) AddModes(modes []ScannerMode) *ScannerBuilder {
	b.modes = append(b.modes, modes...)
	return b
}

// Build compiles the accumulated modes into a Scanner.
func (b *ScannerBuilder) Build() (*Scanner, error) {
	return buildScanner(b.modes, b.config)
}

// SimpleScannerBuilder builds a single-mode, INITIAL-only Scanner from a
// flat pattern list, assigning sequential terminal IDs in list order. It is
// equivalent to Build, kept as a named type for callers that want to hold a
// builder value (e.g. to defer compilation) rather than call Build directly.
type SimpleScannerBuilder struct {
	patterns []string
	config   Config
}

// NewSimpleScannerBuilder returns a builder with DefaultConfig and no
// patterns.
func NewSimpleScannerBuilder() *SimpleScannerBuilder {
	return &SimpleScannerBuilder{config: DefaultConfig()}
}

// WithConfig overrides the builder's Config.
func (b *SimpleScannerBuilder) WithConfig(c Config) *SimpleScannerBuilder {
	b.config = c
	return b
}

// AddPattern appends one pattern; its terminal ID is its position in the
// final list.
func (b *SimpleScannerBuilder) AddPattern(regex string) *SimpleScannerBuilder {
	b.patterns = append(b.patterns, regex)
	return b
}

// Build compiles the accumulated patterns into a single-mode Scanner.
func (b *SimpleScannerBuilder) Build() (*Scanner, error) {
	pats := make([]Pattern, len(b.patterns))
	for i, p := range b.patterns {
		pats[i] = Pattern{Regex: p, TerminalID: conv.IntToUint32(i)}
	}
	return buildScanner([]ScannerMode{NewScannerMode("INITIAL", pats)}, b.config)
}
