// Package graphtest builds small, hand-wired syntax graphs for use by the
// test suites of graph, subgraph, classify, action, oracle, and feature,
// factored out because those packages all need the same token and graph
// scaffolding.
package graphtest

import (
	"github.com/qtreebank/goparser/internal/graph"
	"github.com/qtreebank/goparser/internal/morph"
	"github.com/qtreebank/goparser/internal/orth"
)

// SegOpt mutates a freshly built Segment.
type SegOpt func(*morph.Segment)

func WithLemma(l string) SegOpt        { return func(s *morph.Segment) { s.SetLemma(l) } }
func WithPerson(p morph.PersonType) SegOpt { return func(s *morph.Segment) { s.SetPerson(p) } }
func WithGender(g morph.GenderType) SegOpt { return func(s *morph.Segment) { s.SetGender(g) } }
func WithNumber(n morph.NumberType) SegOpt { return func(s *morph.Segment) { s.SetNumber(n) } }
func WithMood(m morph.MoodType) SegOpt     { return func(s *morph.Segment) { s.SetMood(m) } }
func WithVoice(v morph.VoiceType) SegOpt   { return func(s *morph.Segment) { s.SetVoice(v) } }
func WithCase(c morph.CaseType) SegOpt     { return func(s *morph.Segment) { s.SetCase(c) } }
func WithState(st morph.StateType) SegOpt  { return func(s *morph.Segment) { s.SetState(st) } }
func WithPronounType(p morph.PronounType) SegOpt {
	return func(s *morph.Segment) { s.SetPronounType(p) }
}
func WithSpecial(sp morph.SpecialType) SegOpt { return func(s *morph.Segment) { s.SetSpecial(sp) } }

// Seg builds a single segment, 1-based segmentNumber, with optional
// agreement features.
func Seg(t morph.SegmentType, pos morph.PartOfSpeech, segmentNumber int, opts ...SegOpt) *morph.Segment {
	s := morph.NewSegment(t, pos)
	s.SegmentNumber = segmentNumber
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Token builds a Token at the given location with the given segments.
func Token(chapter, verse, tok int, segments ...*morph.Segment) *orth.Token {
	t := orth.NewToken(orth.NewLocation(chapter, verse, tok))
	t.Segments = segments
	return t
}

// AddTokenWord appends a Token word built from a single stem segment to g
// and returns its one segment node.
func AddTokenWord(g *graph.SyntaxGraph, tok *orth.Token) *graph.SyntaxNode {
	g.AddWord(morph.Token, tok, "", false, 0)
	return g.SegmentNodes[len(g.SegmentNodes)-1]
}

// AddMultiSegmentWord appends a Token word with len(tok.Segments) segments
// (minus any Determiner segments) and returns all of its segment nodes in
// order.
func AddMultiSegmentWord(g *graph.SyntaxGraph, tok *orth.Token) []*graph.SyntaxNode {
	before := len(g.SegmentNodes)
	g.AddWord(morph.Token, tok, "", false, 0)
	return g.SegmentNodes[before:]
}
