package action

import (
	"github.com/qtreebank/goparser/internal/graph"
	"github.com/qtreebank/goparser/internal/morph"
)

// Type is one of the eight transition kinds.
type Type int

const (
	Shift Type = iota
	Right
	Left
	Phrase
	Reduce
	Subgraph
	Subject
	Empty
)

// ParserAction is a single transition. Only the field relevant to Type is
// meaningful; the others are zero.
type ParserAction struct {
	Type       Type
	Relation   graph.Relation
	StackIndex int
	POS        morph.PartOfSpeech
}

func ShiftAction() ParserAction { return ParserAction{Type: Shift} }

func RightAction(r graph.Relation) ParserAction { return ParserAction{Type: Right, Relation: r} }

func LeftAction(r graph.Relation) ParserAction { return ParserAction{Type: Left, Relation: r} }

func PhraseAction() ParserAction { return ParserAction{Type: Phrase} }

func ReduceAction(stackIndex int) ParserAction { return ParserAction{Type: Reduce, StackIndex: stackIndex} }

func SubgraphAction() ParserAction { return ParserAction{Type: Subgraph} }

func SubjectAction() ParserAction { return ParserAction{Type: Subject} }

func EmptyAction(pos morph.PartOfSpeech) ParserAction { return ParserAction{Type: Empty, POS: pos} }

func (a ParserAction) String() string {
	switch a.Type {
	case Shift:
		return "SHIFT"
	case Right:
		return "RIGHT(" + a.Relation.Tag() + ")"
	case Left:
		return "LEFT(" + a.Relation.Tag() + ")"
	case Phrase:
		return "PHRASE"
	case Reduce:
		if a.StackIndex == 0 {
			return "REDUCE(0)"
		}
		return "REDUCE(1)"
	case Subgraph:
		return "SUBGRAPH"
	case Subject:
		return "SUBJECT"
	case Empty:
		return "EMPTY(" + a.POS.Tag() + ")"
	default:
		return "?"
	}
}
