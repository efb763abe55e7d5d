// Package graph implements the syntax-graph data model: segment nodes,
// phrase nodes, dependency edges, and the elided-word insertions that
// together form the hybrid dependency/constituency structure the parser
// builds and the oracle replays.
package graph

import (
	"github.com/qtreebank/goparser/internal/morph"
	"github.com/qtreebank/goparser/internal/orth"
)

// SyntaxGraph owns every Word, segment node, phrase node, and edge of one
// parse. It is an arena: nodes are appended to SegmentNodes/Phrases and
// referenced elsewhere by pointer, exactly mirroring the Python source's
// reliance on object identity.
type SyntaxGraph struct {
	Words        []*Word
	SegmentNodes []*SyntaxNode
	Phrases      []*SyntaxNode
	Edges        []*Edge
}

// New returns an empty SyntaxGraph.
func New() *SyntaxGraph {
	return &SyntaxGraph{}
}

// WordIndex returns the position of node's owning Word in g.Words, or -1
// for phrase nodes.
func (g *SyntaxGraph) WordIndex(node *SyntaxNode) int {
	if node.IsPhrase() {
		return -1
	}
	for i, w := range g.Words {
		if w == node.Word {
			return i
		}
	}
	return -1
}

// AddWord appends a Word of the given type and contributes its segment
// node(s): one per non-Determiner segment for a Token/Reference word, or
// exactly one for an Elided word. No edges are touched.
func (g *SyntaxGraph) AddWord(wordType morph.WordType, token *orth.Token, elidedText string, hasElidedText bool, elidedPOS morph.PartOfSpeech) *Word {
	word := &Word{Type: wordType, Token: token, ElidedText: elidedText, HasText: hasElidedText, ElidedPOS: elidedPOS}
	g.Words = append(g.Words, word)

	index := len(g.SegmentNodes)
	if wordType == morph.Elided {
		g.SegmentNodes = append(g.SegmentNodes, &SyntaxNode{Kind: SegmentKind, Word: word, Index: index})
		return word
	}

	for _, seg := range token.Segments {
		if seg.PartOfSpeech == morph.Determiner {
			continue
		}
		g.SegmentNodes = append(g.SegmentNodes, &SyntaxNode{
			Kind:          SegmentKind,
			Word:          word,
			SegmentNumber: seg.SegmentNumber,
			Index:         index,
		})
		index++
	}
	return word
}

// InsertElidedWord creates an elided Word and its single segment node via
// AddWord, then re-homes both: the word is moved into position
// wordPosition in g.Words, and the new segment node is moved to just
// before the first segment node of the word currently occupying
// wordPosition. Every segment node's Index is then reassigned to its new
// position. Phrase indices are left untouched (see design notes).
func (g *SyntaxGraph) InsertElidedWord(wordPosition int, pos morph.PartOfSpeech, text string, hasText bool) *SyntaxNode {
	elidedWord := g.AddWord(morph.Elided, nil, text, hasText, pos)

	// Anchor on the word currently occupying wordPosition: its first
	// segment node is where the new node lands. When wordPosition points
	// at the freshly appended word itself, the node stays at the end.
	elidedIndex := g.segmentNodeIndexForWord(g.Words[wordPosition])

	segmentNodeCount := len(g.SegmentNodes)
	elidedNode := g.SegmentNodes[len(g.SegmentNodes)-1]
	g.SegmentNodes = g.SegmentNodes[:len(g.SegmentNodes)-1]
	g.SegmentNodes = insertNode(g.SegmentNodes, elidedIndex, elidedNode)

	g.Words = g.Words[:len(g.Words)-1]
	g.Words = insertWord(g.Words, wordPosition, elidedWord)

	for i := 0; i < segmentNodeCount; i++ {
		g.SegmentNodes[i].Index = i
	}
	return elidedNode
}

func (g *SyntaxGraph) segmentNodeIndexForWord(word *Word) int {
	for i, n := range g.SegmentNodes {
		if n.Word == word {
			return i
		}
	}
	return len(g.SegmentNodes)
}

func insertNode(s []*SyntaxNode, i int, n *SyntaxNode) []*SyntaxNode {
	s = append(s, nil)
	copy(s[i+1:], s[i:])
	s[i] = n
	return s
}

func insertWord(s []*Word, i int, w *Word) []*Word {
	s = append(s, nil)
	copy(s[i+1:], s[i:])
	s[i] = w
	return s
}

// PreviousSegmentNode returns the segment node immediately before node, or
// nil if node is the first.
func (g *SyntaxGraph) PreviousSegmentNode(node *SyntaxNode) *SyntaxNode {
	if node.Index <= 0 {
		return nil
	}
	return g.SegmentNodes[node.Index-1]
}

// NextSegmentNode returns the segment node immediately after node, or nil
// if node is the last.
func (g *SyntaxGraph) NextSegmentNode(node *SyntaxNode) *SyntaxNode {
	if node.Index == len(g.SegmentNodes)-1 {
		return nil
	}
	return g.SegmentNodes[node.Index+1]
}

// AddPhrase appends a new phrase node spanning [start,end]. No overlap
// check is performed.
func (g *SyntaxGraph) AddPhrase(phraseType PhraseType, start, end *SyntaxNode) *SyntaxNode {
	node := &SyntaxNode{
		Kind:       PhraseKind,
		PhraseType: phraseType,
		Start:      start,
		End:        end,
		Index:      len(g.SegmentNodes) + len(g.Phrases),
	}
	g.Phrases = append(g.Phrases, node)
	return node
}

// Phrase returns the first existing phrase with identical endpoints, or
// nil.
func (g *SyntaxGraph) Phrase(start, end *SyntaxNode) *SyntaxNode {
	for _, p := range g.Phrases {
		if p.Start == start && p.End == end {
			return p
		}
	}
	return nil
}

// Head returns the head of the first edge whose dependent is node, or nil.
// At most one exists, by the single-head invariant.
func (g *SyntaxGraph) Head(dependent *SyntaxNode) *SyntaxNode {
	for _, e := range g.Edges {
		if e.Dependent == dependent {
			return e.Head
		}
	}
	return nil
}

// Edge returns the edge between a and b in either direction, or nil.
func (g *SyntaxGraph) Edge(a, b *SyntaxNode) *Edge {
	for _, e := range g.Edges {
		if (e.Dependent == a && e.Head == b) || (e.Head == a && e.Dependent == b) {
			return e
		}
	}
	return nil
}

// IsCyclicDependency reports whether adding dependent -> head would close
// a cycle: it walks the head chain starting at head and checks whether it
// ever reaches dependent.
func (g *SyntaxGraph) IsCyclicDependency(dependent, head *SyntaxNode) bool {
	node := head
	for {
		node = g.Head(node)
		if node == nil {
			return false
		}
		if node == dependent {
			return true
		}
	}
}

// AddEdge appends a new dependency edge, failing if dependent already has
// a head or if the edge would close a cycle.
func (g *SyntaxGraph) AddEdge(dependent, head *SyntaxNode, relation Relation) error {
	if g.Head(dependent) != nil {
		return DuplicateHead()
	}
	if g.IsCyclicDependency(dependent, head) {
		return CyclicDependency()
	}
	g.Edges = append(g.Edges, &Edge{Dependent: dependent, Head: head, Relation: relation})
	return nil
}

// ContainsEquivalentEdge reports whether g has an edge structurally
// equivalent to e: the same relation between Equivalent endpoints. Used to
// compare edges across graphs, where pointer identity never holds.
func (g *SyntaxGraph) ContainsEquivalentEdge(e *Edge) bool {
	for _, candidate := range g.Edges {
		if candidate.Relation == e.Relation &&
			Equivalent(candidate.Dependent, e.Dependent) &&
			Equivalent(candidate.Head, e.Head) {
			return true
		}
	}
	return false
}

// OnlyTokens returns a new graph containing only the non-elided words of
// g, in their original order. It has no edges and no phrases: it is the
// working graph the parser mutates from scratch.
func (g *SyntaxGraph) OnlyTokens() *SyntaxGraph {
	out := New()
	for _, w := range g.Words {
		if w.Type != morph.Elided {
			out.AddWord(w.Type, w.Token, "", false, 0)
		}
	}
	return out
}

// Location returns the location of the first token word in the graph.
func (g *SyntaxGraph) Location() (orth.Location, bool) {
	for _, w := range g.Words {
		if w.Type == morph.Token {
			return w.Token.Location, true
		}
	}
	return orth.Location{}, false
}
