package action

import (
	"github.com/qtreebank/goparser/internal/graph"
	"github.com/qtreebank/goparser/internal/morph"
	"github.com/qtreebank/goparser/internal/subgraph"
)

// IsValid is the validity predicate checked against every action before
// it is executed. A nil action (stop) is always valid.
func IsValid(g *graph.SyntaxGraph, stack *Stack, queue *Queue, a *ParserAction) bool {
	if a == nil {
		return true
	}

	switch a.Type {
	case Shift:
		return queue.Peek() != nil

	case Right:
		return stack.Node(1) != nil &&
			g.Head(stack.Node(0)) == nil &&
			!g.IsCyclicDependency(stack.Node(0), stack.Node(1))

	case Left:
		return stack.Node(1) != nil &&
			g.Head(stack.Node(1)) == nil &&
			!g.IsCyclicDependency(stack.Node(1), stack.Node(0))

	case Phrase:
		s0, s1 := stack.Node(0), stack.Node(1)
		return s0 != nil && s1 != nil && !s0.IsPhrase() && !s1.IsPhrase()

	case Reduce:
		return a.StackIndex != 1 || stack.Size() >= 2

	case Subgraph:
		start := stack.Node(0)
		if start == nil {
			return false
		}
		end := subgraph.End(g, start)
		return end != nil && g.Phrase(start, end) == nil

	case Subject:
		s0 := stack.Node(0)
		return s0 != nil && s0.PartOfSpeech() == morph.Verb && !hasSubject(g, s0)

	case Empty:
		s0 := stack.Node(0)
		if s0 == nil {
			return false
		}
		if s0.IsPhrase() {
			s0 = s0.Start
		}
		previous := g.PreviousSegmentNode(s0)
		return previous == nil || previous.Word.Type != morph.Elided

	default:
		return false
	}
}

func hasSubject(g *graph.SyntaxGraph, head *graph.SyntaxNode) bool {
	for _, e := range g.Edges {
		if e.Head != head {
			continue
		}
		switch e.Relation {
		case graph.Subject, graph.PassiveSubject, graph.SpecialSubject:
			return true
		}
	}
	return false
}
