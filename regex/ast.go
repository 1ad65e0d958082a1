// Package regex defines the regular-expression AST, its pretty-printer,
// and the Thompson construction that compiles it to an NFA design
// capable of deciding exact-match membership.
package regex

import "github.com/yodalee/nfaregex/automaton"

// Node is the sealed interface implemented by the nine regex AST
// variants. It carries no behavior itself: the translator (tonfa.go)
// and the pretty-printer (string.go) both dispatch on the concrete type
// with a type switch, keeping "what a pattern is" separate from "how it
// compiles" and "how it prints".
type Node interface {
	node()
}

// EmptyNode matches only the empty string.
type EmptyNode struct{}

// LiteralNode matches exactly one specific rune.
type LiteralNode struct {
	Char rune
}

// SetNode matches a present symbol iff Negated XOR membership in
// Members holds.
type SetNode struct {
	Members []automaton.RuleData
	Negated bool
}

// AnyNode matches any single present symbol.
type AnyNode struct{}

// ConcatNode matches Left immediately followed by Right.
type ConcatNode struct {
	Left, Right Node
}

// ChooseNode matches Left or Right.
type ChooseNode struct {
	Left, Right Node
}

// RepeatNode matches zero or more repetitions of Sub (Kleene star).
type RepeatNode struct {
	Sub Node
}

// PlusNode matches one or more repetitions of Sub.
type PlusNode struct {
	Sub Node
}

// OptionalNode matches zero or one occurrence of Sub.
type OptionalNode struct {
	Sub Node
}

func (EmptyNode) node()    {}
func (LiteralNode) node()  {}
func (SetNode) node()      {}
func (AnyNode) node()      {}
func (ConcatNode) node()   {}
func (ChooseNode) node()   {}
func (RepeatNode) node()   {}
func (PlusNode) node()     {}
func (OptionalNode) node() {}

// Empty builds an AST node matching only the empty string.
func Empty() Node { return EmptyNode{} }

// Literal builds an AST node matching exactly the rune c.
func Literal(c rune) Node { return LiteralNode{Char: c} }

// CharSet builds an AST node matching a character set, optionally
// negated.
func CharSet(members []automaton.RuleData, negated bool) Node {
	return SetNode{Members: members, Negated: negated}
}

// Any builds an AST node matching any single symbol.
func Any() Node { return AnyNode{} }

// Concat builds an AST node matching l immediately followed by r.
func Concat(l, r Node) Node { return ConcatNode{Left: l, Right: r} }

// Choose builds an AST node matching l or r.
func Choose(l, r Node) Node { return ChooseNode{Left: l, Right: r} }

// Repeat builds an AST node matching zero or more repetitions of p.
func Repeat(p Node) Node { return RepeatNode{Sub: p} }

// Plus builds an AST node matching one or more repetitions of p.
func Plus(p Node) Node { return PlusNode{Sub: p} }

// Optional builds an AST node matching zero or one occurrence of p.
func Optional(p Node) Node { return OptionalNode{Sub: p} }
