// Package feature couples parser state to the learned classifiers: it
// extracts a sparse binary feature vector from the (graph, stack, queue)
// triple and computes the ensemble index that routes a state to one of
// the per-bucket sub-models.
package feature

import (
	"github.com/qtreebank/goparser/internal/action"
	"github.com/qtreebank/goparser/internal/graph"
	"github.com/qtreebank/goparser/internal/morph"
	"github.com/qtreebank/goparser/internal/subgraph"
)

// Instance is a sparse binary feature vector: FeatureVector holds the
// ascending positions of the set bits, and Size the total number of
// feature positions declared while building it.
type Instance struct {
	FeatureVector []int
	Size          int
}

// Extract builds the feature vector for the current parser state. For each
// of the four state slots {stack(0), stack(1), stack(2), queue head} it
// emits one block of features: one-hot part of speech, one-hot phrase
// type, the slot's segment features, a one-hot lemma id, one dependent bit
// per relation, a subgraph-start bit, and a bit for an edge between the
// two stack tops.
func Extract(lemmas *morph.Interner, g *graph.SyntaxGraph, stack *action.Stack, queue *action.Queue) *Instance {
	instance := &Instance{}

	for _, x := range []*graph.SyntaxNode{stack.Node(0), stack.Node(1), stack.Node(2), queue.Peek()} {
		isSegment := x != nil && !x.IsPhrase()
		isPhrase := x != nil && x.IsPhrase()

		instance.addEnum(isSegment, posValue(x), morph.PartOfSpeechCount)
		instance.addEnum(isPhrase, phraseTypeValue(x), graph.PhraseTypeCount)

		var s *morph.Segment
		if x != nil {
			s = x.Segment()
		}

		instance.addEnum(s != nil && s.HasVoice(), voiceValue(s), voiceCount)
		instance.addEnum(s != nil && s.HasMood(), moodValue(s), moodCount)
		instance.addEnum(s != nil && s.HasCase(), caseValue(s), caseCount)
		instance.addEnum(s != nil && s.HasState(), stateValue(s), stateCount)
		instance.addEnum(s != nil && s.HasPronounType(), pronounTypeValue(s), pronounTypeCount)
		instance.addEnum(s != nil, segmentTypeValue(s), segmentTypeCount)
		instance.addEnum(s != nil && s.HasSpecial(), specialValue(s), specialCount)

		instance.addValue(lemmaValue(lemmas, s), lemmas.Count())

		for _, relation := range graph.Relations {
			instance.addBit(hasDependent(g, x, relation))
		}

		instance.addBit(isValidSubgraph(g, x))
		instance.addBit(isEdge(g, stack))
	}

	return instance
}

// addBit declares one feature position, set iff bit is true.
func (in *Instance) addBit(bit bool) {
	if bit {
		in.FeatureVector = append(in.FeatureVector, in.Size)
	}
	in.Size++
}

// addEnum declares count feature positions for a one-hot enum block and
// sets the bit at the enum's numeric value when present. Values are the
// closed tag sets' 1-based numbers, so the set bit lands at offset+1..
// offset+count within the block.
func (in *Instance) addEnum(present bool, value, count int) {
	if present {
		in.FeatureVector = append(in.FeatureVector, in.Size+value)
	}
	in.Size += count
}

// addValue declares size feature positions for a dense integer domain and
// sets the bit at the value's offset; a negative value sets nothing.
func (in *Instance) addValue(value, size int) {
	if value >= 0 {
		in.FeatureVector = append(in.FeatureVector, in.Size+value)
	}
	in.Size += size
}

// Domain sizes of the segment feature enums. These enums have no Count
// constant (VoiceType models only its non-default value as a Go constant),
// so their domain sizes are carried here.
const (
	voiceCount       = 2
	moodCount        = 3
	caseCount        = 3
	stateCount       = 2
	pronounTypeCount = 3
	segmentTypeCount = 3
	specialCount     = 3
)

// The closed tag sets number their members from 1; the Go enums start
// some of them at 0. These helpers recover the 1-based numeric value each
// feature block is laid out with.
func posValue(x *graph.SyntaxNode) int {
	if x == nil || x.IsPhrase() {
		return 0
	}
	return int(x.PartOfSpeech()) + 1
}

func phraseTypeValue(x *graph.SyntaxNode) int {
	if x == nil || !x.IsPhrase() {
		return 0
	}
	return int(x.PhraseType) + 1
}

func voiceValue(s *morph.Segment) int {
	if s == nil {
		return 0
	}
	return int(s.Voice) + 1
}

func moodValue(s *morph.Segment) int {
	if s == nil {
		return 0
	}
	return int(s.Mood) + 1
}

func caseValue(s *morph.Segment) int {
	if s == nil {
		return 0
	}
	return int(s.Case)
}

func stateValue(s *morph.Segment) int {
	if s == nil {
		return 0
	}
	return int(s.State)
}

func pronounTypeValue(s *morph.Segment) int {
	if s == nil {
		return 0
	}
	return int(s.PronounType)
}

func segmentTypeValue(s *morph.Segment) int {
	if s == nil {
		return 0
	}
	return int(s.Type) + 1
}

func specialValue(s *morph.Segment) int {
	if s == nil {
		return 0
	}
	return int(s.Special) + 1
}

func lemmaValue(lemmas *morph.Interner, s *morph.Segment) int {
	if s == nil || !s.HasLemma() {
		return -1
	}
	id, ok := lemmas.ValueOf(s.Lemma)
	if !ok {
		return -1
	}
	return id
}

func hasDependent(g *graph.SyntaxGraph, head *graph.SyntaxNode, relation graph.Relation) bool {
	if head == nil {
		return false
	}
	for _, e := range g.Edges {
		if e.Head == head && e.Relation == relation {
			return true
		}
	}
	return false
}

func isValidSubgraph(g *graph.SyntaxGraph, node *graph.SyntaxNode) bool {
	if node == nil || node.IsPhrase() || g.Head(node) != nil {
		return false
	}
	end := subgraph.End(g, node)
	return end != nil && g.Head(end) != nil && g.Phrase(node, end) == nil
}

func isEdge(g *graph.SyntaxGraph, stack *action.Stack) bool {
	return stack.Node(0) != nil &&
		stack.Node(1) != nil &&
		g.Edge(stack.Node(0), stack.Node(1)) != nil
}
