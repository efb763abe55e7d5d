// Package subgraph implements the subgraph-end search: given a node that
// is the presumed left edge of a projective subtree, find the rightmost
// segment node reachable from it through right-leaning effective heads.
// The walk is bounded and iterative, kept linear since graphs are short.
package subgraph

import (
	"github.com/qtreebank/goparser/internal/graph"
	"github.com/qtreebank/goparser/internal/morph"
)

// End finds the rightmost segment node reachable from start by repeatedly
// following effective heads back to start, or nil if no such node exists.
// start must be a segment node; phrases are rejected immediately.
func End(g *graph.SyntaxGraph, start *graph.SyntaxNode) *graph.SyntaxNode {
	if start.IsPhrase() {
		return nil
	}

	nodes := g.SegmentNodes
	for i := len(nodes) - 1; i > start.Index; i-- {
		end := nodes[i]

		cur := end
		for cur != nil && cur != start {
			cur = effectiveHead(g, cur)
		}
		if cur == start {
			return end
		}
	}
	return nil
}

// effectiveHead applies the six head-resolution rules, in order.
func effectiveHead(g *graph.SyntaxGraph, cur *graph.SyntaxNode) *graph.SyntaxNode {
	// Rule 1: graph head, resolved through a phrase's start, must be
	// strictly left of cur.
	if head := g.Head(cur); head != nil {
		if head.IsPhrase() {
			head = head.Start
		}
		if head.Index < cur.Index {
			return head
		}
	}

	// Rule 2: cur is the start of some phrase; use that phrase's head if
	// it is a non-phrase strictly left of cur.
	for _, phrase := range g.Phrases {
		if phrase.Start != cur {
			continue
		}
		phraseHead := g.Head(phrase)
		if phraseHead != nil && !phraseHead.IsPhrase() && phraseHead.Index < cur.Index {
			return phraseHead
		}
	}

	// Rule 3: cur is the head of some dependent to its left.
	for _, e := range g.Edges {
		if e.Head != cur {
			continue
		}
		dependent := e.Dependent
		if dependent.IsPhrase() {
			if dependent.Start.Index < cur.Index {
				return dependent.Start
			}
		} else if dependent.Index < cur.Index {
			return dependent
		}
	}

	// Rule 4: disconnected POS:VOC, POS:PREV.
	if previous := g.PreviousSegmentNode(cur); previous != nil {
		switch previous.PartOfSpeech() {
		case morph.Vocative, morph.Preventive:
			return previous
		}
	}

	// Rule 5: disconnected POS:EXP.
	if cur.PartOfSpeech() == morph.Exceptive {
		return g.PreviousSegmentNode(cur)
	}

	return nil
}
