package regex

import "strings"

// precedence levels: Choose 0, Concat 1, Repeat/Plus/Optional 2, atoms 3.
const (
	precChoose  = 0
	precConcat  = 1
	precPostfix = 2
	precAtom    = 3
)

func precedence(n Node) int {
	switch n.(type) {
	case EmptyNode, LiteralNode, AnyNode, SetNode:
		return precAtom
	case ConcatNode:
		return precConcat
	case ChooseNode:
		return precChoose
	case RepeatNode, PlusNode, OptionalNode:
		return precPostfix
	default:
		return precAtom
	}
}

// bracket renders n, wrapping it in parentheses iff its precedence is
// strictly less than outerPrecedence.
func bracket(n Node, outerPrecedence int) string {
	if precedence(n) < outerPrecedence {
		return "(" + String(n) + ")"
	}
	return String(n)
}

// String pretty-prints an AST back into surface syntax, parenthesizing
// a subterm iff its precedence is strictly less than the enclosing
// operator's. Round-tripping the result through a parser yields a
// pattern accepting the same language, though not necessarily the
// identical tree.
func String(n Node) string {
	switch v := n.(type) {
	case EmptyNode:
		return ""
	case LiteralNode:
		return string(v.Char)
	case AnyNode:
		return "."
	case SetNode:
		var b strings.Builder
		b.WriteByte('[')
		if v.Negated {
			b.WriteByte('^')
		}
		for _, m := range v.Members {
			b.WriteString(m.String())
		}
		b.WriteByte(']')
		return b.String()
	case ConcatNode:
		return bracket(v.Left, precConcat) + bracket(v.Right, precConcat)
	case ChooseNode:
		return bracket(v.Left, precChoose) + "|" + bracket(v.Right, precChoose)
	case RepeatNode:
		return bracket(v.Sub, precPostfix) + "*"
	case PlusNode:
		return bracket(v.Sub, precPostfix) + "+"
	case OptionalNode:
		return bracket(v.Sub, precPostfix) + "?"
	default:
		return ""
	}
}
