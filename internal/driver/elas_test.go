package driver_test

import (
	"testing"

	"github.com/qtreebank/goparser/internal/driver"
	"github.com/qtreebank/goparser/internal/graph"
	"github.com/qtreebank/goparser/internal/graphtest"
	"github.com/qtreebank/goparser/internal/morph"
	"github.com/qtreebank/goparser/internal/oracle"
)

func buildGoldGraphs(t *testing.T) []*graph.SyntaxGraph {
	t.Helper()

	// Verb with an elided pronoun subject.
	g1 := graph.New()
	verb := graphtest.AddTokenWord(g1, graphtest.Token(1, 1, 1, graphtest.Seg(morph.Stem, morph.Verb, 1)))
	pronoun := g1.InsertElidedWord(1, morph.Pronoun, "", false)
	if err := g1.AddEdge(pronoun, verb, graph.Subject); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	// Preposition phrase over two tokens.
	g2 := graph.New()
	prep := graphtest.AddTokenWord(g2, graphtest.Token(1, 2, 1, graphtest.Seg(morph.Stem, morph.Preposition, 1)))
	noun := graphtest.AddTokenWord(g2, graphtest.Token(1, 2, 2, graphtest.Seg(morph.Stem, morph.Noun, 1)))
	if err := g2.AddEdge(noun, prep, graph.Genitive); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	g2.AddPhrase(graph.PrepositionPhrase, prep, noun)

	return []*graph.SyntaxGraph{g1, g2}
}

func TestOracleEdgePrecisionIsPerfect(t *testing.T) {
	var elas driver.ELAS

	for _, expected := range buildGoldGraphs(t) {
		output := expected.OnlyTokens()
		oracle.New(expected, output).ExpectedActions()

		elas.Compare(expected, output)

		for _, outputEdge := range output.Edges {
			if !expected.ContainsEquivalentEdge(outputEdge) {
				t.Fatalf("oracle produced an edge absent from the gold graph: %v -> %v",
					outputEdge.Dependent, outputEdge.Head)
			}
		}
	}

	if elas.Precision() != 1.0 {
		t.Fatalf("expected oracle precision 1.0, got %v", elas.Precision())
	}
	if elas.Recall() <= 0 || elas.Recall() > 1.0 {
		t.Fatalf("recall out of range: %v", elas.Recall())
	}
	if f1 := elas.F1(); f1 <= 0 || f1 > 1.0 {
		t.Fatalf("F1 out of range: %v", f1)
	}
}

func TestOracleIsDeterministic(t *testing.T) {
	for _, expected := range buildGoldGraphs(t) {
		first := oracle.New(expected, expected.OnlyTokens()).ExpectedActions()
		second := oracle.New(expected, expected.OnlyTokens()).ExpectedActions()
		if len(first) != len(second) {
			t.Fatalf("oracle produced %d then %d actions", len(first), len(second))
		}
		for i := range first {
			if first[i] != second[i] {
				t.Fatalf("action %d differs between runs: %v vs %v", i, first[i], second[i])
			}
		}
	}
}
