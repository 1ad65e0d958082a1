// Package parser turns surface regex syntax into a regex.Node tree by
// driving the standard library's regexp/syntax parser — an
// already-debugged tokenizer and grammar for the surface syntax — and
// translating the resulting *syntax.Regexp into our own, smaller AST.
// Constructs outside this engine's scope (anchors, bounded repetition,
// backreferences, word boundaries) are rejected here with a *SyntaxError
// rather than silently approximated.
package parser

import (
	"fmt"
	"regexp/syntax"

	"github.com/yodalee/nfaregex/automaton"
	"github.com/yodalee/nfaregex/regex"
)

// SyntaxError reports a pattern that regexp/syntax rejected, or that it
// accepted but this engine cannot express, with the reason.
type SyntaxError struct {
	Pattern string
	Reason  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("parser: %q: %s", e.Pattern, e.Reason)
}

// Parse compiles pattern's surface syntax into a regex.Node.
func Parse(pattern string) (regex.Node, error) {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return nil, &SyntaxError{Pattern: pattern, Reason: err.Error()}
	}
	// Deliberately not calling re.Simplify(): Simplify rewrites bounded
	// repetition {m,n} into concatenated copies, which would silently
	// make this engine support a construct it otherwise rejects.
	return convert(pattern, re)
}

func convert(pattern string, re *syntax.Regexp) (regex.Node, error) {
	switch re.Op {
	case syntax.OpEmptyMatch:
		return regex.Empty(), nil

	case syntax.OpLiteral:
		return literalChain(re.Rune), nil

	case syntax.OpCharClass:
		return charClass(re.Rune), nil

	case syntax.OpAnyChar, syntax.OpAnyCharNotNL:
		return regex.Any(), nil

	case syntax.OpConcat:
		return foldConcat(pattern, re.Sub)

	case syntax.OpAlternate:
		return foldChoose(pattern, re.Sub)

	case syntax.OpStar:
		sub, err := convert(pattern, re.Sub[0])
		if err != nil {
			return nil, err
		}
		return regex.Repeat(sub), nil

	case syntax.OpPlus:
		sub, err := convert(pattern, re.Sub[0])
		if err != nil {
			return nil, err
		}
		return regex.Plus(sub), nil

	case syntax.OpQuest:
		sub, err := convert(pattern, re.Sub[0])
		if err != nil {
			return nil, err
		}
		return regex.Optional(sub), nil

	case syntax.OpCapture:
		// Parens are grouping only: this engine has no capture groups,
		// so a capture node is transparent.
		if len(re.Sub) == 0 {
			return regex.Empty(), nil
		}
		return convert(pattern, re.Sub[0])

	case syntax.OpRepeat:
		return nil, &SyntaxError{Pattern: pattern, Reason: "bounded repetition {m,n} is not supported"}

	case syntax.OpBeginLine, syntax.OpEndLine, syntax.OpBeginText, syntax.OpEndText:
		return nil, &SyntaxError{Pattern: pattern, Reason: "anchors are not supported"}

	case syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		return nil, &SyntaxError{Pattern: pattern, Reason: "word boundaries are not supported"}

	case syntax.OpNoMatch:
		return nil, &SyntaxError{Pattern: pattern, Reason: "pattern can never match"}

	default:
		return nil, &SyntaxError{Pattern: pattern, Reason: fmt.Sprintf("unsupported construct (op=%v)", re.Op)}
	}
}

func literalChain(runes []rune) regex.Node {
	if len(runes) == 0 {
		return regex.Empty()
	}
	node := regex.Literal(runes[len(runes)-1])
	for i := len(runes) - 2; i >= 0; i-- {
		node = regex.Concat(regex.Literal(runes[i]), node)
	}
	return node
}

// charClass converts regexp/syntax's flattened [lo,hi,lo,hi,...] rune
// pairs into our RuleData ranges. regexp/syntax already folds negation
// (e.g. [^a-z]) into the complement ranges before we ever see the tree,
// so this always emits Negated=false; the Negated=true constructor path
// is exercised directly by the regex package's own tests instead (see
// DESIGN.md).
func charClass(pairs []rune) regex.Node {
	members := make([]automaton.RuleData, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		lo, hi := pairs[i], pairs[i+1]
		if lo == hi {
			members = append(members, automaton.Char(lo))
		} else {
			members = append(members, automaton.Range(lo, hi))
		}
	}
	return regex.CharSet(members, false)
}

func foldConcat(pattern string, subs []*syntax.Regexp) (regex.Node, error) {
	if len(subs) == 0 {
		return regex.Empty(), nil
	}
	nodes := make([]regex.Node, len(subs))
	for i, sub := range subs {
		n, err := convert(pattern, sub)
		if err != nil {
			return nil, err
		}
		nodes[i] = n
	}
	out := nodes[len(nodes)-1]
	for i := len(nodes) - 2; i >= 0; i-- {
		out = regex.Concat(nodes[i], out)
	}
	return out, nil
}

func foldChoose(pattern string, subs []*syntax.Regexp) (regex.Node, error) {
	if len(subs) == 0 {
		return regex.Empty(), nil
	}
	nodes := make([]regex.Node, len(subs))
	for i, sub := range subs {
		n, err := convert(pattern, sub)
		if err != nil {
			return nil, err
		}
		nodes[i] = n
	}
	out := nodes[len(nodes)-1]
	for i := len(nodes) - 2; i >= 0; i-- {
		out = regex.Choose(nodes[i], out)
	}
	return out, nil
}
