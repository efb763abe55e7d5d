package driver

import "github.com/qtreebank/goparser/internal/graph"

// ELAS accumulates edge-level accuracy over one or more (expected,
// output) graph pairs: an output edge counts as equivalent when the
// expected graph contains a structurally equal edge.
type ELAS struct {
	expectedEdges   int
	outputEdges     int
	equivalentEdges int
}

// Compare accumulates one graph pair.
func (e *ELAS) Compare(expected, output *graph.SyntaxGraph) {
	e.expectedEdges += len(expected.Edges)

	for _, outputEdge := range output.Edges {
		e.outputEdges++
		if expected.ContainsEquivalentEdge(outputEdge) {
			e.equivalentEdges++
		}
	}
}

// Precision is the fraction of output edges found in the expected graphs,
// or 0 when no edges were output.
func (e *ELAS) Precision() float64 {
	if e.outputEdges == 0 {
		return 0
	}
	return float64(e.equivalentEdges) / float64(e.outputEdges)
}

// Recall is the fraction of expected edges recovered in the output
// graphs, or 0 when no edges were expected.
func (e *ELAS) Recall() float64 {
	if e.expectedEdges == 0 {
		return 0
	}
	return float64(e.equivalentEdges) / float64(e.expectedEdges)
}

// F1 is the harmonic mean of precision and recall.
func (e *ELAS) F1() float64 {
	precision := e.Precision()
	recall := e.Recall()
	if precision+recall == 0 {
		return 0
	}
	return 2 * (precision * recall) / (precision + recall)
}
