package textformat

import (
	"fmt"
	"io"

	"github.com/qtreebank/goparser/internal/graph"
	"github.com/qtreebank/goparser/internal/morph"
)

// Writer encodes syntax graphs to the text format, the inverse of Reader.
type Writer struct {
	w io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteGraphs writes every graph, blank-line separated.
func (w *Writer) WriteGraphs(graphs []*graph.SyntaxGraph) error {
	for i, g := range graphs {
		if i > 0 {
			if _, err := fmt.Fprintln(w.w); err != nil {
				return err
			}
		}
		if err := w.WriteGraph(g); err != nil {
			return err
		}
	}
	return nil
}

// WriteGraph writes one graph, ending with its `go` terminator.
func (w *Writer) WriteGraph(g *graph.SyntaxGraph) error {
	if len(g.Words) > 0 {
		if _, err := fmt.Fprintln(w.w, "-- words"); err != nil {
			return err
		}
		index := 0
		for _, word := range g.Words {
			written, err := w.writeWord(index, word)
			if err != nil {
				return err
			}
			index += written
		}
	}

	if len(g.Phrases) > 0 {
		if _, err := fmt.Fprintln(w.w, "\n-- phrases"); err != nil {
			return err
		}
		for _, phrase := range g.Phrases {
			if _, err := fmt.Fprintf(w.w, "%s = %s(%s - %s)\n",
				nodeName(phrase.Index), phrase.PhraseType.Tag(),
				nodeName(phrase.Start.Index), nodeName(phrase.End.Index)); err != nil {
				return err
			}
		}
	}

	if len(g.Edges) > 0 {
		if _, err := fmt.Fprintln(w.w, "\n-- edges"); err != nil {
			return err
		}
		for _, edge := range g.Edges {
			if _, err := fmt.Fprintf(w.w, "%s(%s - %s)\n",
				edge.Relation.Tag(), nodeName(edge.Dependent.Index), nodeName(edge.Head.Index)); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintln(w.w, "\ngo")
	return err
}

func (w *Writer) writeWord(index int, word *graph.Word) (int, error) {
	if word.Type == morph.Elided {
		text := "*"
		if word.HasText {
			text = word.ElidedText
		}
		_, err := fmt.Fprintf(w.w, "%s = %s(%s)\n", nodeName(index), word.ElidedPOS.Tag(), text)
		return 1, err
	}

	constructor := "word"
	if word.Type == morph.Reference {
		constructor = "reference"
	}

	count := 0
	for _, segment := range word.Token.Segments {
		if segment.PartOfSpeech == morph.Determiner {
			continue
		}
		if count > 0 {
			if _, err := fmt.Fprint(w.w, ", "); err != nil {
				return count, err
			}
		}
		if _, err := fmt.Fprint(w.w, nodeName(index+count)); err != nil {
			return count, err
		}
		count++
	}

	_, err := fmt.Fprintf(w.w, " = %s(%s)\n", constructor, word.Token.Location)
	return count, err
}

func nodeName(index int) string {
	return fmt.Sprintf("n%d", index+1)
}
