package textformat_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/qtreebank/goparser/internal/graph"
	"github.com/qtreebank/goparser/internal/graphtest"
	"github.com/qtreebank/goparser/internal/morph"
	"github.com/qtreebank/goparser/internal/orth"
	"github.com/qtreebank/goparser/internal/textformat"
)

func buildCorpus() *orth.Corpus {
	return orth.NewCorpus([]*orth.Token{
		graphtest.Token(1, 1, 1, graphtest.Seg(morph.Stem, morph.Verb, 1)),
		graphtest.Token(1, 1, 2,
			graphtest.Seg(morph.Prefix, morph.Determiner, 1),
			graphtest.Seg(morph.Stem, morph.Noun, 2)),
	})
}

const graphText = `-- words
n1 = word(1:1:1)
n2 = word(1:1:2)
n3 = PRON(هُوَ)
n4 = N(*)

-- phrases
n5 = VS(n1 - n3)

-- edges
subj(n3 - n1)
obj(n2 - n1)

go
`

func TestReadGraph(t *testing.T) {
	g, err := textformat.NewReader(buildCorpus(), strings.NewReader(graphText)).ReadGraph()
	if err != nil {
		t.Fatalf("ReadGraph: %v", err)
	}
	if g == nil {
		t.Fatalf("expected a graph")
	}

	if len(g.Words) != 4 || len(g.SegmentNodes) != 4 {
		t.Fatalf("expected 4 words and 4 segment nodes, got %d/%d", len(g.Words), len(g.SegmentNodes))
	}
	if g.SegmentNodes[1].SegmentNumber != 2 {
		t.Fatalf("expected the determiner segment to be skipped")
	}

	pronoun := g.Words[2]
	if pronoun.Type != morph.Elided || pronoun.ElidedPOS != morph.Pronoun || !pronoun.HasText || pronoun.ElidedText != "هُوَ" {
		t.Fatalf("unexpected elided pronoun word: %+v", pronoun)
	}
	if star := g.Words[3]; star.Type != morph.Elided || star.HasText {
		t.Fatalf("expected * to mean no elided text, got %+v", star)
	}

	if len(g.Phrases) != 1 {
		t.Fatalf("expected one phrase")
	}
	phrase := g.Phrases[0]
	if phrase.PhraseType != graph.VerbalSentence ||
		phrase.Start != g.SegmentNodes[0] || phrase.End != g.SegmentNodes[2] {
		t.Fatalf("unexpected phrase: %+v", phrase)
	}
	if phrase.Index != 4 {
		t.Fatalf("expected phrase index 4, got %d", phrase.Index)
	}

	if len(g.Edges) != 2 {
		t.Fatalf("expected two edges")
	}
	if g.Edges[0].Dependent != g.SegmentNodes[2] || g.Edges[0].Head != g.SegmentNodes[0] ||
		g.Edges[0].Relation != graph.Subject {
		t.Fatalf("unexpected first edge: %+v", g.Edges[0])
	}
}

func TestReadGraphsStopsAtEOF(t *testing.T) {
	text := graphText + "\n" + graphText
	graphs, err := textformat.ReadGraphs(buildCorpus(), strings.NewReader(text))
	if err != nil {
		t.Fatalf("ReadGraphs: %v", err)
	}
	if len(graphs) != 2 {
		t.Fatalf("expected 2 graphs, got %d", len(graphs))
	}
}

func TestWriteGraphRoundTrip(t *testing.T) {
	corpus := buildCorpus()
	g, err := textformat.NewReader(corpus, strings.NewReader(graphText)).ReadGraph()
	if err != nil {
		t.Fatalf("ReadGraph: %v", err)
	}

	var buf bytes.Buffer
	if err := textformat.NewWriter(&buf).WriteGraph(g); err != nil {
		t.Fatalf("WriteGraph: %v", err)
	}

	again, err := textformat.NewReader(corpus, bytes.NewReader(buf.Bytes())).ReadGraph()
	if err != nil {
		t.Fatalf("re-read: %v\n%s", err, buf.String())
	}
	if len(again.Words) != len(g.Words) ||
		len(again.SegmentNodes) != len(g.SegmentNodes) ||
		len(again.Phrases) != len(g.Phrases) ||
		len(again.Edges) != len(g.Edges) {
		t.Fatalf("round trip changed the graph:\n%s", buf.String())
	}
	for i := range g.Edges {
		if !again.ContainsEquivalentEdge(g.Edges[i]) {
			t.Fatalf("round trip lost edge %v", g.Edges[i])
		}
	}
}

func TestReadGraphRejectsOutOfSequenceNodes(t *testing.T) {
	text := "-- words\nn2 = word(1:1:1)\ngo\n"
	_, err := textformat.NewReader(buildCorpus(), strings.NewReader(text)).ReadGraph()
	var formatErr textformat.FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected a FormatError, got %v", err)
	}
	if formatErr.Line != 2 {
		t.Fatalf("expected the error to point at line 2, got %d", formatErr.Line)
	}
}

func TestReadGraphRejectsUnknownRelation(t *testing.T) {
	text := "-- words\nn1 = word(1:1:1)\nbogus(n1 - n1)\ngo\n"
	_, err := textformat.NewReader(buildCorpus(), strings.NewReader(text)).ReadGraph()
	var formatErr textformat.FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected a FormatError, got %v", err)
	}
}
