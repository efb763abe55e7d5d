// Package driver turns a treebank into per-bucket training problems
// (Train) and replays a loaded model against a token-only graph (Infer),
// falling back to a safe action whenever a prediction fails validation.
package driver

import (
	"github.com/qtreebank/goparser/internal/action"
	"github.com/qtreebank/goparser/internal/classifier"
	"github.com/qtreebank/goparser/internal/feature"
	"github.com/qtreebank/goparser/internal/graph"
	"github.com/qtreebank/goparser/internal/morph"
	"github.com/qtreebank/goparser/internal/oracle"
)

// Train runs the oracle over every gold graph and accumulates one
// labelled instance per parser state, bucketed by the ensemble index of
// the stack top. Each graph contributes a final stop-labelled instance
// for its terminal state.
func Train(lemmas *morph.Interner, graphs []*graph.SyntaxGraph) (*classifier.BucketSet, error) {
	problems := classifier.NewBucketSet()

	for _, expected := range graphs {
		actions := oracle.New(expected, expected.OnlyTokens()).ExpectedActions()

		output := expected.OnlyTokens()
		parser := action.New(output)
		for _, a := range actions {
			addInstance(problems, lemmas, output, parser, &a)
			if err := parser.Execute(a); err != nil {
				return nil, err
			}
		}
		addInstance(problems, lemmas, output, parser, nil)
	}

	return problems, nil
}

func addInstance(problems *classifier.BucketSet, lemmas *morph.Interner, g *graph.SyntaxGraph, parser *action.Parser, a *action.ParserAction) {
	index := feature.EnsembleIndex(parser.Stack.Node(0))
	instance := feature.Extract(lemmas, g, parser.Stack, parser.Queue)
	problems.Add(index, instance, action.Encode(a))
}

// Infer drives the parser loop against g to completion: at each step the
// model predicts an action, invalid predictions are replaced by
// REDUCE(0), and a nil prediction stops the loop. The verbal-subject
// post-processing pass then completes the graph.
func Infer(m *classifier.Model, lemmas *morph.Interner, g *graph.SyntaxGraph) error {
	parser := action.New(g)

	steps := 0
	for {
		a := m.Action(lemmas, g, parser.Stack, parser.Queue)
		if !action.IsValid(g, parser.Stack, parser.Queue, a) {
			fallback := action.ReduceAction(0)
			a = &fallback
		}
		if a == nil {
			break
		}
		if err := parser.Execute(*a); err != nil {
			return err
		}
		steps++
		if steps > action.MaxSteps {
			return Diverged(steps)
		}
	}

	return parser.PostProcess()
}
