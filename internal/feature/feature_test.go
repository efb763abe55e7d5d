package feature_test

import (
	"testing"

	"github.com/qtreebank/goparser/internal/action"
	"github.com/qtreebank/goparser/internal/feature"
	"github.com/qtreebank/goparser/internal/graph"
	"github.com/qtreebank/goparser/internal/graphtest"
	"github.com/qtreebank/goparser/internal/morph"
)

func slotSize(lemmas *morph.Interner) int {
	// POS + phrase type + voice + mood + case + state + pronoun type +
	// segment type + special + lemma + relations + subgraph bit + edge bit
	return morph.PartOfSpeechCount + graph.PhraseTypeCount +
		2 + 3 + 3 + 2 + 3 + 3 + 3 +
		lemmas.Count() + graph.RelationCount + 2
}

func TestExtractEmptyState(t *testing.T) {
	lemmas := morph.NewInterner()
	g := graph.New()
	p := action.New(g)

	instance := feature.Extract(lemmas, g, p.Stack, p.Queue)

	if len(instance.FeatureVector) != 0 {
		t.Fatalf("expected no set bits for an empty state, got %v", instance.FeatureVector)
	}
	if want := 4 * slotSize(lemmas); instance.Size != want {
		t.Fatalf("expected size %d, got %d", want, instance.Size)
	}
	if feature.EnsembleIndex(p.Stack.Node(0)) != 0 {
		t.Fatalf("expected ensemble index 0 for an empty stack")
	}
}

func TestExtractSetsPartOfSpeechAndSegmentBits(t *testing.T) {
	lemmas := morph.NewInterner()
	lemmas.Add("ramaY")

	g := graph.New()
	noun := graphtest.AddTokenWord(g, graphtest.Token(1, 1, 1,
		graphtest.Seg(morph.Stem, morph.Noun, 1, graphtest.WithLemma("ramaY"), graphtest.WithCase(morph.Nominative))))

	p := action.New(g)
	p.Stack.Push(noun)

	instance := feature.Extract(lemmas, g, p.Stack, p.Queue)

	// The stack-top slot is the first block, so the one-hot POS bit for
	// Noun lands at the slot's very start plus its 1-based number.
	bits := make(map[int]bool, len(instance.FeatureVector))
	for _, b := range instance.FeatureVector {
		bits[b] = true
	}
	if !bits[int(morph.Noun)+1] {
		t.Fatalf("expected POS bit %d set, got %v", int(morph.Noun)+1, instance.FeatureVector)
	}

	// Ascending positions throughout.
	for i := 1; i < len(instance.FeatureVector); i++ {
		if instance.FeatureVector[i] <= instance.FeatureVector[i-1] {
			t.Fatalf("expected ascending bit positions, got %v", instance.FeatureVector)
		}
	}

	if want := 4 * slotSize(lemmas); instance.Size != want {
		t.Fatalf("expected size %d, got %d", want, instance.Size)
	}
}

func TestEnsembleIndexDistinguishesNodeKinds(t *testing.T) {
	g := graph.New()
	noun := graphtest.AddTokenWord(g, graphtest.Token(1, 1, 1, graphtest.Seg(morph.Stem, morph.Noun, 1)))
	verb := graphtest.AddTokenWord(g, graphtest.Token(1, 1, 2, graphtest.Seg(morph.Stem, morph.Verb, 1)))
	phrase := g.AddPhrase(graph.VerbalSentence, noun, verb)

	if got := feature.EnsembleIndex(noun); got != int(morph.Noun)+1 {
		t.Fatalf("noun bucket: expected %d, got %d", int(morph.Noun)+1, got)
	}
	if got := feature.EnsembleIndex(verb); got != int(morph.Verb)+1 {
		t.Fatalf("verb bucket: expected %d, got %d", int(morph.Verb)+1, got)
	}
	want := morph.PartOfSpeechCount + int(graph.VerbalSentence) + 1
	if got := feature.EnsembleIndex(phrase); got != want {
		t.Fatalf("phrase bucket: expected %d, got %d", want, got)
	}
	if feature.EnsembleCount <= want {
		t.Fatalf("ensemble count %d does not cover bucket %d", feature.EnsembleCount, want)
	}
}
