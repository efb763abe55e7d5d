// Package goparser is the public face of the treebank parser: it ties the
// morphology ingest, the graph text format, the oracle, and the training
// and inference drivers together behind a single Treebank type.
package goparser

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/qtreebank/goparser/internal/action"
	"github.com/qtreebank/goparser/internal/classifier"
	"github.com/qtreebank/goparser/internal/driver"
	"github.com/qtreebank/goparser/internal/graph"
	"github.com/qtreebank/goparser/internal/morph"
	"github.com/qtreebank/goparser/internal/oracle"
	"github.com/qtreebank/goparser/internal/orth"
	"github.com/qtreebank/goparser/internal/textformat"
)

type (
	Graph        = graph.SyntaxGraph
	ParserAction = action.ParserAction
	BucketSet    = classifier.BucketSet
	Model        = classifier.Model
	Predictor    = classifier.Predictor
	ELAS         = driver.ELAS
)

// Treebank is a loaded corpus: the lemma interner, the token index, and
// the syntax graphs read so far.
type Treebank struct {
	Lemmas *morph.Interner
	Corpus *orth.Corpus
	Graphs []*Graph
}

// LoadMorphology reads tab-separated morphology rows from r and builds
// the corpus token index, interning every lemma it sees.
func LoadMorphology(r io.Reader) (*Treebank, error) {
	lemmas := morph.NewInterner()
	tsv := orth.NewTsvReader(lemmas)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := tsv.ReadLine(line); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := tsv.Close(); err != nil {
		return nil, err
	}

	return &Treebank{Lemmas: lemmas, Corpus: orth.NewCorpus(tsv.Tokens)}, nil
}

// LoadMorphologyFile reads morphology from a TSV file at path.
func LoadMorphologyFile(path string) (*Treebank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadMorphology(f)
}

// ReadSyntax reads every syntax graph in r's text stream and appends them
// to the treebank.
func (t *Treebank) ReadSyntax(r io.Reader) error {
	graphs, err := textformat.ReadGraphs(t.Corpus, r)
	if err != nil {
		return err
	}
	t.Graphs = append(t.Graphs, graphs...)
	return nil
}

// ReadSyntaxFile reads syntax graphs from a text file at path.
func (t *Treebank) ReadSyntaxFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return t.ReadSyntax(f)
}

// WriteSyntax writes the treebank's graphs to w in the text format.
func (t *Treebank) WriteSyntax(w io.Writer) error {
	return textformat.NewWriter(w).WriteGraphs(t.Graphs)
}

// Oracle derives the canonical action sequence that reconstructs the gold
// graph from its tokens, leaving the reconstruction in output.
func Oracle(gold, output *Graph) []ParserAction {
	return oracle.New(gold, output).ExpectedActions()
}

// Train runs the oracle over every loaded graph and returns the per-bucket
// training problems.
func (t *Treebank) Train() (*BucketSet, error) {
	return driver.Train(t.Lemmas, t.Graphs)
}

// Parse drives the model against a token-only graph, mutating it in place.
func (t *Treebank) Parse(m *Model, g *Graph) error {
	return driver.Infer(m, t.Lemmas, g)
}
