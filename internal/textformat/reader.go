package textformat

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/qtreebank/goparser/internal/graph"
	"github.com/qtreebank/goparser/internal/morph"
	"github.com/qtreebank/goparser/internal/orth"
)

// TokenSource resolves a location to its morphologically-analysed token.
// orth.Corpus is the usual implementation.
type TokenSource interface {
	Token(loc orth.Location) (*orth.Token, error)
}

// Reader decodes syntax graphs from the text format, one graph per `go`
// terminator line.
type Reader struct {
	tokens       TokenSource
	scanner      *bufio.Scanner
	line         int
	graph        *graph.SyntaxGraph
	nodeSequence int
}

func NewReader(tokens TokenSource, r io.Reader) *Reader {
	return &Reader{tokens: tokens, scanner: bufio.NewScanner(r)}
}

// ReadGraph reads the next graph from the stream, or nil when the stream
// is exhausted.
func (r *Reader) ReadGraph() (*graph.SyntaxGraph, error) {
	r.graph = graph.New()
	r.nodeSequence = 0

	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		if line == "go" {
			return r.graph, nil
		}
		if err := r.readLine(line); err != nil {
			return nil, err
		}
	}
	if err := r.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, nil
}

// ReadGraphs reads every graph in the stream.
func ReadGraphs(tokens TokenSource, r io.Reader) ([]*graph.SyntaxGraph, error) {
	reader := NewReader(tokens, r)
	var graphs []*graph.SyntaxGraph
	for {
		g, err := reader.ReadGraph()
		if err != nil {
			return nil, err
		}
		if g == nil {
			return graphs, nil
		}
		graphs = append(graphs, g)
	}
}

func (r *Reader) readLine(text string) error {
	ast, err := lineParser.ParseString("", text)
	if err != nil {
		return FormatError{Line: r.line, Message: err.Error()}
	}
	if ast.Decl != nil {
		return r.readDecl(ast.Decl)
	}
	return r.readEdge(ast.Edge)
}

func (r *Reader) readDecl(decl *declAST) error {
	for _, name := range decl.Names {
		number, err := r.parseNodeName(name)
		if err != nil {
			return err
		}
		if expected := r.nodeSequence + 1; number != expected {
			return FormatError{Line: r.line, Message: "expected node n" + strconv.Itoa(expected) + ", not " + name}
		}
		r.nodeSequence++
	}

	switch {
	case decl.Tag == "word":
		return r.readWord(morph.Token, decl)
	case decl.Tag == "reference":
		return r.readWord(morph.Reference, decl)
	}

	if phraseType, ok := graph.ParsePhraseType(decl.Tag); ok {
		return r.readPhrase(phraseType, decl)
	}
	if pos, ok := morph.ParsePartOfSpeech(decl.Tag); ok {
		return r.readElidedWord(pos, decl)
	}
	return FormatError{Line: r.line, Message: "unknown declaration tag " + strconv.Quote(decl.Tag)}
}

func (r *Reader) readWord(wordType morph.WordType, decl *declAST) error {
	loc := decl.Body.Location
	if loc == nil {
		return FormatError{Line: r.line, Message: "expected a location"}
	}
	tokenNumber := 0
	if loc.Token != nil {
		tokenNumber = *loc.Token
	}
	token, err := r.tokens.Token(orth.NewLocation(loc.Chapter, loc.Verse, tokenNumber))
	if err != nil {
		return FormatError{Line: r.line, Message: err.Error()}
	}
	r.graph.AddWord(wordType, token, "", false, 0)
	return nil
}

func (r *Reader) readElidedWord(pos morph.PartOfSpeech, decl *declAST) error {
	body := decl.Body
	if body.Interval != nil || body.Location != nil {
		return FormatError{Line: r.line, Message: "expected elided text or *"}
	}
	r.graph.AddWord(morph.Elided, nil, body.Text, !body.Star, pos)
	return nil
}

func (r *Reader) readPhrase(phraseType graph.PhraseType, decl *declAST) error {
	start, end, err := r.interval(decl.Body.Interval)
	if err != nil {
		return err
	}
	r.graph.AddPhrase(phraseType, start, end)
	return nil
}

func (r *Reader) readEdge(edge *edgeAST) error {
	relation, ok := graph.ParseRelation(edge.Tag)
	if !ok {
		return FormatError{Line: r.line, Message: "unknown relation tag " + strconv.Quote(edge.Tag)}
	}
	start, end, err := r.interval(&intervalAST{Start: edge.Start, End: edge.End})
	if err != nil {
		return err
	}
	if err := r.graph.AddEdge(start, end, relation); err != nil {
		return FormatError{Line: r.line, Message: err.Error()}
	}
	return nil
}

func (r *Reader) interval(interval *intervalAST) (*graph.SyntaxNode, *graph.SyntaxNode, error) {
	if interval == nil {
		return nil, nil, FormatError{Line: r.line, Message: "expected a node interval"}
	}
	start, err := r.node(interval.Start)
	if err != nil {
		return nil, nil, err
	}
	end, err := r.node(interval.End)
	if err != nil {
		return nil, nil, err
	}
	return start, end, nil
}

func (r *Reader) node(name string) (*graph.SyntaxNode, error) {
	number, err := r.parseNodeName(name)
	if err != nil {
		return nil, err
	}
	index := number - 1
	segmentNodeCount := len(r.graph.SegmentNodes)
	if index < segmentNodeCount {
		return r.graph.SegmentNodes[index], nil
	}
	if index-segmentNodeCount < len(r.graph.Phrases) {
		return r.graph.Phrases[index-segmentNodeCount], nil
	}
	return nil, FormatError{Line: r.line, Message: "node " + name + " is not declared"}
}

func (r *Reader) parseNodeName(name string) (int, error) {
	if !strings.HasPrefix(name, "n") {
		return 0, FormatError{Line: r.line, Message: "node name " + strconv.Quote(name) + " should start with n"}
	}
	number, err := strconv.Atoi(name[1:])
	if err != nil {
		return 0, FormatError{Line: r.line, Message: "malformed node name " + strconv.Quote(name)}
	}
	return number, nil
}
