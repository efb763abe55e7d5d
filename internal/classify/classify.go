// Package classify implements the phrase-type classifier: given a graph
// and a span [start,end] of segment nodes, it assigns one of six phrase
// tags by first-match-wins rule evaluation over the span's
// minimum-covering edges.
package classify

import (
	"github.com/qtreebank/goparser/internal/graph"
	"github.com/qtreebank/goparser/internal/morph"
)

// PhraseType classifies the span [start,end] (inclusive, both segment
// nodes). start and end must not be phrase nodes.
func PhraseType(g *graph.SyntaxGraph, start, end *graph.SyntaxNode) graph.PhraseType {
	if start.PartOfSpeech() == morph.SubordinatingConjunction || start.PartOfSpeech() == morph.Purpose {
		return graph.SubordinateClause
	}

	var genitive, verbalSubject, condition, predicate bool

	for _, e := range g.Edges {
		if !isMinimumCoveringPhraseForEdge(g, start, end, e) {
			continue
		}

		switch e.Relation {
		case graph.Genitive:
			genitive = true
		case graph.Subject, graph.PassiveSubject:
			if e.Head.PartOfSpeech() == morph.Verb {
				verbalSubject = true
			}
		case graph.Condition:
			condition = true
		case graph.Predicate, graph.SpecialPredicate, graph.SpecialSubject:
			predicate = true
		}
	}

	switch {
	case genitive:
		return graph.PrepositionPhrase
	case verbalSubject:
		return graph.VerbalSentence
	case condition:
		return graph.ConditionalSentence
	case predicate:
		return graph.NominalSentence
	}

	for i := start.Index; i <= end.Index; i++ {
		node := g.SegmentNodes[i]
		if node.Word.Type != morph.Elided {
			continue
		}
		pos := node.PartOfSpeech()
		if pos != morph.Verb && pos != morph.Noun {
			continue
		}
		phrase := minimumCoveringPhrase(g, node)
		if phrase == nil || phrase.End.Index-phrase.Start.Index >= end.Index-start.Index {
			if pos == morph.Verb {
				return graph.VerbalSentence
			}
			return graph.NominalSentence
		}
	}

	return graph.Sentence
}

// minimumCoveringPhrase returns the existing phrase of smallest span that
// contains node.Index, or nil.
func minimumCoveringPhrase(g *graph.SyntaxGraph, node *graph.SyntaxNode) *graph.SyntaxNode {
	var best *graph.SyntaxNode
	bestStart, bestEnd := 0, 0
	for _, p := range g.Phrases {
		s, e := p.Start.Index, p.End.Index
		if node.Index < s || node.Index > e {
			continue
		}
		if best == nil || e-s < bestEnd-bestStart {
			best, bestStart, bestEnd = p, s, e
		}
	}
	return best
}

func isMinimumCoveringPhraseForEdge(g *graph.SyntaxGraph, start, end *graph.SyntaxNode, e *graph.Edge) bool {
	return isMinimumCoveringPhraseForNode(g, start, end, e.Head) && isMinimumCoveringPhraseForNode(g, start, end, e.Dependent)
}

func isMinimumCoveringPhraseForNode(g *graph.SyntaxGraph, start, end, node *graph.SyntaxNode) bool {
	startIndex, endIndex := start.Index, end.Index

	if node.IsPhrase() {
		return node.Start.Index >= startIndex && node.End.Index <= endIndex
	}

	if node.Index < startIndex || node.Index > endIndex {
		return false
	}

	phrase := minimumCoveringPhrase(g, node)
	return phrase == nil || endIndex-startIndex <= phrase.End.Index-phrase.Start.Index
}
