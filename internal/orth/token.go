package orth

import "github.com/qtreebank/goparser/internal/morph"

// Token is a single word's location plus its decoded morphological segments.
type Token struct {
	Location Location
	Segments []*morph.Segment
}

func NewToken(loc Location) *Token {
	return &Token{Location: loc}
}

// Segment returns the segment at the given 1-based segment number, matching
// the numbering stamped onto each Segment by the morphology reader.
func (t *Token) Segment(segmentNumber int) *morph.Segment {
	return t.Segments[segmentNumber-1]
}

// Verse groups the tokens of a single verse.
type Verse struct {
	Location Location
	Tokens   []*Token
}

// Chapter groups the verses of a single chapter.
type Chapter struct {
	Verses []*Verse
}
