package feature

import (
	"github.com/qtreebank/goparser/internal/graph"
	"github.com/qtreebank/goparser/internal/morph"
)

// EnsembleCount is the number of independent classifier buckets: one for
// an empty stack, one per part of speech, and one per phrase type.
const EnsembleCount = morph.PartOfSpeechCount + graph.PhraseTypeCount + 1

// EnsembleIndex routes a parser state to a classifier bucket by the kind
// of its stack top: 0 for an empty stack, the part of speech's 1-based
// number for a segment node, and an offset past the part-of-speech range
// for a phrase node.
func EnsembleIndex(node *graph.SyntaxNode) int {
	if node == nil {
		return 0
	}
	if node.IsPhrase() {
		return morph.PartOfSpeechCount + int(node.PhraseType) + 1
	}
	return int(node.PartOfSpeech()) + 1
}
