package prefilter

import "testing"

func TestNextOccurrenceFindsEarliestLiteral(t *testing.T) {
	pf, err := Build([]string{"func", "return", "package"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	pos, ok := pf.NextOccurrence("package main\nfunc f() { return }", 0)
	if !ok || pos != 0 {
		t.Fatalf("NextOccurrence = %d, %v, want 0, true", pos, ok)
	}
	pos, ok = pf.NextOccurrence("package main\nfunc f() { return }", 1)
	if !ok || pos != 13 {
		t.Fatalf("NextOccurrence(from=1) = %d, %v, want 13, true", pos, ok)
	}
}

func TestNextOccurrenceNoMatch(t *testing.T) {
	pf, err := Build([]string{"func", "return"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, ok := pf.NextOccurrence("package main", 0); ok {
		t.Fatal("expected no occurrence of func/return in this input")
	}
}

func TestNextOccurrenceFromPastEndOfInput(t *testing.T) {
	pf, err := Build([]string{"func"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, ok := pf.NextOccurrence("func", 10); ok {
		t.Fatal("a from offset past the input end must never match")
	}
}

func TestNilLiteralIsSafeToQuery(t *testing.T) {
	var pf *Literal
	if _, ok := pf.NextOccurrence("anything", 0); ok {
		t.Fatal("a nil *Literal must report no occurrence, not panic")
	}
}
