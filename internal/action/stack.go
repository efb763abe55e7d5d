// Package action implements the shift/reduce transition system: the
// Stack and Queue that make up parser state, the eight ParserAction
// kinds, the action codec (a bijection to a small nonnegative integer),
// the validity predicate, and the Parser that executes an action by
// mutating a working SyntaxGraph.
package action

import "github.com/qtreebank/goparser/internal/graph"

// Stack holds the parser's partial derivation, top-of-stack addressed at
// depth 0. Internally nodes are kept with the top at the end of the
// slice, matching the source's Python list (nodes[-1] is the top).
type Stack struct {
	nodes []*graph.SyntaxNode
}

// Push adds node as the new top of stack.
func (s *Stack) Push(node *graph.SyntaxNode) {
	s.nodes = append(s.nodes, node)
}

// Insert places node at the given stack depth, pushing what was there
// (and everything above it) one depth deeper. depth 0 inserts just below
// the current top.
func (s *Stack) Insert(depth int, node *graph.SyntaxNode) {
	i := len(s.nodes) - depth - 1
	s.nodes = append(s.nodes, nil)
	copy(s.nodes[i+1:], s.nodes[i:])
	s.nodes[i] = node
}

// Reduce removes the node at the given stack depth. It fails if depth is
// out of range.
func (s *Stack) Reduce(depth int) error {
	i := len(s.nodes) - depth - 1
	if i < 0 || i >= len(s.nodes) {
		return InvalidReduce(depth)
	}
	s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
	return nil
}

// Node returns the node at the given stack depth (0 = top), or nil if the
// stack is not that deep.
func (s *Stack) Node(depth int) *graph.SyntaxNode {
	i := len(s.nodes) - depth - 1
	if i < 0 || i >= len(s.nodes) {
		return nil
	}
	return s.nodes[i]
}

// Size is the number of nodes currently on the stack.
func (s *Stack) Size() int { return len(s.nodes) }

func (s *Stack) String() string {
	out := "["
	for i := len(s.nodes) - 1; i >= 0; i-- {
		if i != len(s.nodes)-1 {
			out += " "
		}
		n := s.nodes[i]
		if n.IsPhrase() {
			out += n.PhraseType.Tag()
		} else {
			out += n.PartOfSpeech().Tag()
		}
	}
	return out + "]"
}
