package graph

import (
	"github.com/qtreebank/goparser/internal/morph"
	"github.com/qtreebank/goparser/internal/orth"
)

// Word is a single orthographic unit contributed to a SyntaxGraph: a
// morphologically-analysed token, a reference to one, or an elided
// (grammatically implied, never pronounced) word.
type Word struct {
	Type morph.WordType

	// Token is present when Type is Token or Reference.
	Token *orth.Token

	// ElidedText and ElidedPOS are present when Type is Elided.
	ElidedText string
	HasText    bool
	ElidedPOS  morph.PartOfSpeech
}
