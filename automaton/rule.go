package automaton

import "fmt"

// RuleKind tags which predicate a Rule applies: a single character, a
// free (epsilon) move, a wildcard, or a character set with optional
// negation.
type RuleKind int

const (
	// RuleChar fires on input equal to a specific rune.
	RuleChar RuleKind = iota
	// RuleFree is an epsilon transition: it only fires when the
	// advancement step is explicitly asking for free moves.
	RuleFree
	// RuleAny fires on any present input symbol.
	RuleAny
	// RuleSet fires on a present symbol iff negated XOR membership in
	// the set holds.
	RuleSet
)

func (k RuleKind) String() string {
	switch k {
	case RuleChar:
		return "char"
	case RuleFree:
		return "free"
	case RuleAny:
		return "any"
	case RuleSet:
		return "set"
	default:
		return "unknown"
	}
}

// Rule is a triple (from, predicate, to): it applies to (state, input)
// iff from == state and the predicate fires for input, per RuleKind's
// semantics.
type Rule[S comparable] struct {
	From, To S
	Kind     RuleKind

	char    rune       // valid for RuleChar
	set     []RuleData // valid for RuleSet
	negated bool       // valid for RuleSet
}

// NewRuleChar builds a rule that fires on input exactly equal to c.
func NewRuleChar[S comparable](from S, c rune, to S) Rule[S] {
	return Rule[S]{From: from, To: to, Kind: RuleChar, char: c}
}

// NewRuleFree builds an epsilon rule.
func NewRuleFree[S comparable](from, to S) Rule[S] {
	return Rule[S]{From: from, To: to, Kind: RuleFree}
}

// NewRuleAny builds a rule that fires on any present symbol.
func NewRuleAny[S comparable](from, to S) Rule[S] {
	return Rule[S]{From: from, To: to, Kind: RuleAny}
}

// NewRuleSet builds a rule that fires on a present symbol iff negated
// XOR (the symbol is a member of set).
func NewRuleSet[S comparable](from S, set []RuleData, negated bool, to S) Rule[S] {
	return Rule[S]{From: from, To: to, Kind: RuleSet, set: set, negated: negated}
}

// AppliesTo reports whether this rule fires leaving state for the given
// optional input symbol. A nil-less encoding is used: present reports
// whether c carries an actual symbol (false means "advance on no
// input", i.e. an epsilon step).
func (r Rule[S]) AppliesTo(state S, c rune, present bool) bool {
	if r.From != state {
		return false
	}
	if !present {
		return r.Kind == RuleFree
	}
	switch r.Kind {
	case RuleChar:
		return r.char == c
	case RuleFree:
		return false
	case RuleAny:
		return true
	case RuleSet:
		member := false
		for _, d := range r.set {
			if d.AppliesTo(c) {
				member = true
				break
			}
		}
		return r.negated != member
	default:
		return false
	}
}

// Follow returns the state this rule transitions to.
func (r Rule[S]) Follow() S {
	return r.To
}

func (r Rule[S]) describe() string {
	switch r.Kind {
	case RuleChar:
		return string(r.char)
	case RuleFree:
		return "free"
	case RuleAny:
		return "any"
	case RuleSet:
		sign := ""
		if r.negated {
			sign = "^"
		}
		out := "[" + sign
		for _, d := range r.set {
			out += d.String()
		}
		return out + "]"
	default:
		return "?"
	}
}

func (r Rule[S]) String() string {
	return fmt.Sprintf("%v --%s--> %v", r.From, r.describe(), r.To)
}
