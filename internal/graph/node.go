package graph

import "github.com/qtreebank/goparser/internal/morph"

// NodeKind distinguishes the two SyntaxNode shapes.
type NodeKind int

const (
	SegmentKind NodeKind = iota
	PhraseKind
)

// SyntaxNode is a tagged-variant node of a SyntaxGraph: either a segment
// node (one morpheme or one elided word) or a phrase node (a span of
// segment nodes tagged with a PhraseType). Nodes are allocated once into
// the owning graph's arena and referenced everywhere else by pointer;
// pointer equality is the Go counterpart of the Python `is` identity test.
type SyntaxNode struct {
	Kind NodeKind

	// Segment node fields.
	Word          *Word
	SegmentNumber int

	// Phrase node fields.
	PhraseType PhraseType
	Start      *SyntaxNode
	End        *SyntaxNode

	// Index is the node's position: 0-based and contiguous for segment
	// nodes (kept in sync by SyntaxGraph on every insertion), and
	// segmentNodeCount+phrasePosition for phrase nodes, frozen at the
	// time the phrase was appended (see SyntaxGraph.AddPhrase).
	Index int
}

// IsPhrase reports whether n is a phrase node.
func (n *SyntaxNode) IsPhrase() bool { return n.Kind == PhraseKind }

// Segment returns the underlying morphological segment for a token/
// reference segment node, or nil for phrase nodes and elided words.
func (n *SyntaxNode) Segment() *morph.Segment {
	if n == nil || n.IsPhrase() || n.Word.Type == morph.Elided {
		return nil
	}
	return n.Word.Token.Segment(n.SegmentNumber)
}

// PartOfSpeech returns the elided part of speech for an elided word, or the
// part of speech of the referenced segment for a token/reference word. It
// panics if called on a phrase node, matching the source's assumption that
// callers always check IsPhrase first.
func (n *SyntaxNode) PartOfSpeech() morph.PartOfSpeech {
	if n.Word.Type == morph.Elided {
		return n.Word.ElidedPOS
	}
	return n.Word.Token.Segment(n.SegmentNumber).PartOfSpeech
}

// Same is the identity predicate: a is the same node as b.
func Same(a, b *SyntaxNode) bool { return a == b }

// Equivalent is the cross-graph structural equality predicate used by the
// oracle to map nodes of an output graph onto nodes of a gold graph. It is
// deliberately distinct from Same: within a single graph the rest of this
// package relies on identity, never on Equivalent.
func Equivalent(a, b *SyntaxNode) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.IsPhrase() != b.IsPhrase() {
		return false
	}
	if a.IsPhrase() {
		return Equivalent(a.Start, b.Start) && Equivalent(a.End, b.End)
	}
	if a.Word.Type != b.Word.Type {
		return false
	}
	if a.Word.Type == morph.Elided {
		return a.Word.ElidedPOS == b.Word.ElidedPOS &&
			a.Word.HasText == b.Word.HasText &&
			a.Word.ElidedText == b.Word.ElidedText
	}
	return a.Segment() == b.Segment()
}
