package action

import "github.com/qtreebank/goparser/internal/graph"

// Queue walks the working graph's segment nodes left to right, starting
// at segment 0.
type Queue struct {
	g    *graph.SyntaxGraph
	node *graph.SyntaxNode
}

// NewQueue returns a Queue positioned at g's first segment node (nil if g
// has none).
func NewQueue(g *graph.SyntaxGraph) *Queue {
	q := &Queue{g: g}
	if len(g.SegmentNodes) > 0 {
		q.node = g.SegmentNodes[0]
	}
	return q
}

// Peek returns the node the queue is positioned at, without consuming it.
func (q *Queue) Peek() *graph.SyntaxNode { return q.node }

// Read returns the current node and advances the queue to the next
// segment node.
func (q *Queue) Read() *graph.SyntaxNode {
	cur := q.node
	if cur != nil {
		q.node = q.g.NextSegmentNode(cur)
	}
	return cur
}
