package action

import (
	"fmt"

	"github.com/qtreebank/goparser/internal/graph"
)

func InvalidReduce(depth int) error {
	return graph.InvariantError{Kind: "InvalidReduce", Message: fmt.Sprintf("can't reduce: %d", depth)}
}

func EmptyQueue() error {
	return graph.InvariantError{Kind: "EmptyQueue", Message: "shift on an empty queue"}
}

func InvalidPhraseEndpoint() error {
	return graph.InvariantError{Kind: "InvalidPhraseEndpoint", Message: "expected a pair of segments, not phrases"}
}

func NoSubgraphEnd() error {
	return graph.InvariantError{Kind: "NoSubgraphEnd", Message: "failed to find subgraph end"}
}
