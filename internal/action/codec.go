package action

import (
	"fmt"

	"github.com/qtreebank/goparser/internal/graph"
	"github.com/qtreebank/goparser/internal/morph"
)

// emptyPOSOffset and emptyPOSFromOffset cover exactly the three part-of-
// speech values the oracle ever emits for EMPTY (it filters PRONOUN
// itself, which is inserted only via SUBJECT). Any other POS is an
// encoder bug, not a data condition, so it panics rather than silently
// mis-encoding.
func emptyPOSOffset(pos morph.PartOfSpeech) int {
	switch pos {
	case morph.Noun:
		return 0
	case morph.Adjective:
		return 1
	case morph.Verb:
		return 2
	default:
		panic(fmt.Sprintf("action: EMPTY has no codec slot for part of speech %v", pos))
	}
}

func emptyPOSFromOffset(offset int) morph.PartOfSpeech {
	switch offset {
	case 0:
		return morph.Noun
	case 1:
		return morph.Adjective
	case 2:
		return morph.Verb
	default:
		panic(fmt.Sprintf("action: no EMPTY part of speech at codec offset %d", offset))
	}
}

// Encode is the action codec: a bijection between a (possibly nil,
// meaning "stop") *ParserAction and a nonnegative integer.
// With R = graph.RelationCount:
//
//	0            stop
//	1            SHIFT
//	2..R+1       RIGHT(relation)
//	R+2..2R+1    LEFT(relation)
//	2R+2         PHRASE
//	2R+3..2R+4   REDUCE(0/1)
//	2R+5         SUBGRAPH
//	2R+6         SUBJECT
//	2R+7..2R+9   EMPTY(NOUN/ADJECTIVE/VERB)
func Encode(a *ParserAction) int {
	if a == nil {
		return 0
	}
	r := graph.RelationCount

	switch a.Type {
	case Shift:
		return 1
	case Right:
		return int(a.Relation) + 2
	case Left:
		return r + int(a.Relation) + 2
	case Phrase:
		return 2*r + 2
	case Reduce:
		return 2*r + 3 + a.StackIndex
	case Subgraph:
		return 2*r + 5
	case Subject:
		return 2*r + 6
	case Empty:
		return 2*r + 7 + emptyPOSOffset(a.POS)
	default:
		return 0
	}
}

// Decode is the inverse of Encode.
func Decode(value int) *ParserAction {
	if value == 0 {
		return nil
	}
	r := graph.RelationCount

	if value == 1 {
		a := ShiftAction()
		return &a
	}
	n := r + 1
	if value <= n {
		a := RightAction(graph.Relation(value - 2))
		return &a
	}
	n += r
	if value <= n {
		a := LeftAction(graph.Relation(value - (r + 2)))
		return &a
	}
	n++
	if value == n {
		a := PhraseAction()
		return &a
	}
	n += 2
	if value <= n {
		a := ReduceAction(value - (2*r + 3))
		return &a
	}
	n++
	if value == n {
		a := SubgraphAction()
		return &a
	}
	n++
	if value == n {
		a := SubjectAction()
		return &a
	}
	a := EmptyAction(emptyPOSFromOffset(value - (2*r + 7)))
	return &a
}
