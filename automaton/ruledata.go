// Package automaton provides a rule-based representation of DFAs and
// NFAs: rules dispatch on character predicates, rulebooks collect rules
// and answer next-state/next-states queries, and designs package a
// rulebook with a start state and an accepting set behind an
// Accept(string) entry point.
package automaton

import "fmt"

// RuleData is a single member of a character set: either an exact
// character or an inclusive range.
type RuleData struct {
	char        rune
	start, end  rune
	isRange     bool
}

// Char builds a RuleData that matches exactly one rune.
func Char(c rune) RuleData {
	return RuleData{char: c}
}

// Range builds a RuleData that matches any rune in [lo, hi] inclusive.
func Range(lo, hi rune) RuleData {
	return RuleData{start: lo, end: hi, isRange: true}
}

// AppliesTo reports whether c is a member of this datum.
func (d RuleData) AppliesTo(c rune) bool {
	if d.isRange {
		return d.start <= c && c <= d.end
	}
	return d.char == c
}

// String renders the datum the way it would appear inside a [...] set.
func (d RuleData) String() string {
	if d.isRange {
		return fmt.Sprintf("%c-%c", d.start, d.end)
	}
	return string(d.char)
}
