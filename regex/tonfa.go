package regex

import "github.com/yodalee/nfaregex/automaton"

// toNFA performs the Thompson construction: each Node variant compiles
// to an NFA design with exactly one fresh start state and a set of
// accept states (possibly more than one). Every state minted here is
// fresh relative to every other state minted in this call tree, which
// is what makes composing sub-rulebooks by simple concatenation of
// their rule slices sound — no labelled transition of one fragment can
// ever be mistaken for a transition of another.
func toNFA(n Node) *automaton.NFADesign[token] {
	switch v := n.(type) {
	case EmptyNode:
		s := newToken()
		return automaton.NewNFADesign(s, automaton.NewSet(s), automaton.NewNFARulebook[token](nil))

	case LiteralNode:
		start, accept := newToken(), newToken()
		rule := automaton.NewRuleChar(start, v.Char, accept)
		return automaton.NewNFADesign(start, automaton.NewSet(accept), automaton.NewNFARulebook([]automaton.Rule[token]{rule}))

	case AnyNode:
		start, accept := newToken(), newToken()
		rule := automaton.NewRuleAny(start, accept)
		return automaton.NewNFADesign(start, automaton.NewSet(accept), automaton.NewNFARulebook([]automaton.Rule[token]{rule}))

	case SetNode:
		start, accept := newToken(), newToken()
		rule := automaton.NewRuleSet(start, v.Members, v.Negated, accept)
		return automaton.NewNFADesign(start, automaton.NewSet(accept), automaton.NewNFARulebook([]automaton.Rule[token]{rule}))

	case ConcatNode:
		left := toNFA(v.Left)
		right := toNFA(v.Right)

		rules := append(left.Rulebook().Rules(), right.Rulebook().Rules()...)
		for s := range left.Accepting() {
			rules = append(rules, automaton.NewRuleFree(s, right.Start()))
		}

		return automaton.NewNFADesign(left.Start(), right.Accepting(), automaton.NewNFARulebook(rules))

	case ChooseNode:
		left := toNFA(v.Left)
		right := toNFA(v.Right)
		start := newToken()

		rules := append(left.Rulebook().Rules(), right.Rulebook().Rules()...)
		rules = append(rules,
			automaton.NewRuleFree(start, left.Start()),
			automaton.NewRuleFree(start, right.Start()),
		)
		accepting := left.Accepting().Union(right.Accepting())

		return automaton.NewNFADesign(start, accepting, automaton.NewNFARulebook(rules))

	case RepeatNode:
		sub := toNFA(v.Sub)
		start := newToken()

		accepting := sub.Accepting().Union(automaton.NewSet(start))

		rules := sub.Rulebook().Rules()
		for s := range accepting {
			rules = append(rules, automaton.NewRuleFree(s, sub.Start()))
		}

		return automaton.NewNFADesign(start, accepting, automaton.NewNFARulebook(rules))

	case PlusNode:
		sub := toNFA(v.Sub)
		start := newToken()

		rules := sub.Rulebook().Rules()
		for s := range sub.Accepting() {
			rules = append(rules, automaton.NewRuleFree(s, sub.Start()))
		}
		rules = append(rules, automaton.NewRuleFree(start, sub.Start()))

		return automaton.NewNFADesign(start, sub.Accepting(), automaton.NewNFARulebook(rules))

	case OptionalNode:
		sub := toNFA(v.Sub)
		start := newToken()

		accepting := sub.Accepting().Union(automaton.NewSet(start))
		rules := append(sub.Rulebook().Rules(), automaton.NewRuleFree(start, sub.Start()))

		return automaton.NewNFADesign(start, accepting, automaton.NewNFARulebook(rules))

	default:
		// Unreachable: Node is sealed to the nine variants above.
		panic("regex: unknown AST node type")
	}
}

// ToNFA exposes the Thompson construction for callers that want to
// inspect or reuse the compiled design directly (e.g. the CLI's
// --verbose state/rule counts) instead of going through Matches.
func ToNFA(n Node) *automaton.NFADesign[token] {
	return toNFA(n)
}

// Matches compiles pattern to an NFA design and reports whether it
// accepts the entire input string: exact-match semantics, not partial
// or leftmost matching. Translation is not cached — every call
// recompiles — so the result is a pure function of (pattern, input)
// modulo the fresh state identities minted along the way, which never
// escape this call.
func Matches(pattern Node, input string) bool {
	return toNFA(pattern).Accept(input)
}
