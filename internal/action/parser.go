package action

import (
	"github.com/qtreebank/goparser/internal/classify"
	"github.com/qtreebank/goparser/internal/graph"
	"github.com/qtreebank/goparser/internal/morph"
	"github.com/qtreebank/goparser/internal/subgraph"
)

// MaxSteps bounds a single parse: a driver that executes more actions than
// this without seeing a stop signal has diverged.
const MaxSteps = 250

// Parser executes ParserActions against a working SyntaxGraph, maintaining
// the Stack/Queue transition-system state. It has no opinion about which
// action comes next: that is the oracle's job when training, or a
// classifier's job at inference time (see internal/oracle and
// internal/driver).
type Parser struct {
	Graph *graph.SyntaxGraph
	Stack *Stack
	Queue *Queue
}

// New returns a Parser positioned at the start of g.
func New(g *graph.SyntaxGraph) *Parser {
	return &Parser{Graph: g, Stack: &Stack{}, Queue: NewQueue(g)}
}

// Execute mutates the parser state according to a, without validating it;
// callers that accept predictions from an external model must validate
// with IsValid first.
func (p *Parser) Execute(a ParserAction) error {
	switch a.Type {
	case Shift:
		return p.shift()
	case Right:
		return p.right(a.Relation)
	case Left:
		return p.left(a.Relation)
	case Phrase:
		return p.phrase()
	case Reduce:
		return p.Stack.Reduce(a.StackIndex)
	case Subgraph:
		return p.subgraph()
	case Subject:
		return p.subject()
	case Empty:
		return p.empty(a.POS)
	}
	return nil
}

func (p *Parser) shift() error {
	node := p.Queue.Read()
	if node == nil {
		return EmptyQueue()
	}
	p.Stack.Push(node)
	return nil
}

func (p *Parser) right(r graph.Relation) error {
	return p.Graph.AddEdge(p.Stack.Node(0), p.Stack.Node(1), r)
}

func (p *Parser) left(r graph.Relation) error {
	return p.Graph.AddEdge(p.Stack.Node(1), p.Stack.Node(0), r)
}

func (p *Parser) phrase() error {
	start, end := p.Stack.Node(1), p.Stack.Node(0)
	if start.IsPhrase() || end.IsPhrase() {
		return InvalidPhraseEndpoint()
	}
	phraseType := classify.PhraseType(p.Graph, start, end)
	p.Stack.Push(p.Graph.AddPhrase(phraseType, start, end))
	return nil
}

func (p *Parser) subgraph() error {
	start := p.Stack.Node(0)
	end := subgraph.End(p.Graph, start)
	if end == nil {
		return NoSubgraphEnd()
	}
	phraseType := classify.PhraseType(p.Graph, start, end)
	p.Stack.Push(p.Graph.AddPhrase(phraseType, start, end))
	return nil
}

func (p *Parser) subject() error {
	verb := p.Stack.Node(0)
	p.Stack.Push(p.addElidedPronoun(verb))
	return p.right(subjectRelation(verb))
}

func (p *Parser) empty(pos morph.PartOfSpeech) error {
	start := p.Stack.Node(0)
	if start.IsPhrase() {
		start = start.Start
	}
	wordIndex := p.Graph.WordIndex(start)
	node := p.Graph.InsertElidedWord(wordIndex, pos, "", false)
	p.Stack.Insert(0, node)
	return nil
}

func (p *Parser) addElidedPronoun(verb *graph.SyntaxNode) *graph.SyntaxNode {
	seg := verb.Segment()
	text, hasText := "", false
	if seg != nil && seg.HasPerson() && seg.HasGender() && seg.HasNumber() {
		if s := morph.SurfacePronoun(seg.Person, seg.Gender, seg.Number); s != "" {
			text, hasText = s, true
		}
	}
	wordIndex := p.Graph.WordIndex(verb) + 1
	return p.Graph.InsertElidedWord(wordIndex, morph.Pronoun, text, hasText)
}

func subjectRelation(verb *graph.SyntaxNode) graph.Relation {
	seg := verb.Segment()
	if seg != nil && seg.HasSpecial() {
		return graph.SpecialSubject
	}
	if seg != nil && seg.HasVoice() && seg.Voice == morph.Passive {
		return graph.PassiveSubject
	}
	return graph.Subject
}

// PostProcess is the inference-only completion pass: scanning right to
// left, every token verb without a subject-class edge gets an elided
// pronoun subject inserted after it.
func (p *Parser) PostProcess() error {
	for i := len(p.Graph.SegmentNodes) - 1; i >= 0; i-- {
		verb := p.Graph.SegmentNodes[i]
		if verb.PartOfSpeech() != morph.Verb || verb.Word.Type != morph.Token {
			continue
		}
		if hasSubject(p.Graph, verb) {
			continue
		}
		pronoun := p.addElidedPronoun(verb)
		if err := p.Graph.AddEdge(pronoun, verb, subjectRelation(verb)); err != nil {
			return err
		}
	}
	return nil
}
