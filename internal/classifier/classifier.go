// Package classifier dispatches parser states to the per-bucket action
// models of the ensemble. The learned model itself is a black box behind
// the Predictor interface: this package owns only the constant buckets,
// the accumulated training problems, and the dispatch wrapper that turns
// a prediction back into a ParserAction.
package classifier

import (
	"github.com/qtreebank/goparser/internal/action"
	"github.com/qtreebank/goparser/internal/feature"
	"github.com/qtreebank/goparser/internal/graph"
	"github.com/qtreebank/goparser/internal/morph"
)

// Hyperparameters of the support-vector machine an external trainer fits
// for every multi-label bucket. Carried here as metadata: fitting and
// prediction are outside this module.
const (
	SvmC      = 0.5
	SvmKernel = "poly"
	SvmDegree = 2
	SvmGamma  = 0.2
	SvmCoef0  = 0
)

// Predictor maps a sparse feature vector to an encoded action code. It is
// the black-box boundary to the trained model.
type Predictor interface {
	Predict(instance *feature.Instance) int
}

// bucket is one sub-model of the ensemble: either a constant action code
// (the bucket saw a single distinct label during training) or a trained
// Predictor.
type bucket struct {
	code     int
	constant bool
	model    Predictor
}

// Model is the loaded ensemble: one sub-model per bucket, immutable after
// construction. Dispatch performs no mutation, so a single Model may be
// shared across goroutines parsing independent graphs.
type Model struct {
	buckets [feature.EnsembleCount]*bucket
}

func NewModel() *Model {
	return &Model{}
}

// SetConstant installs a constant bucket that always predicts code.
func (m *Model) SetConstant(index, code int) {
	m.buckets[index] = &bucket{code: code, constant: true}
}

// SetPredictor installs a trained sub-model for the bucket.
func (m *Model) SetPredictor(index int, p Predictor) {
	m.buckets[index] = &bucket{model: p}
}

// Action predicts the next action for the current parser state, or nil
// (stop) when the state's bucket has no sub-model. Predictions are raw:
// validating them against the transition system is the caller's job.
func (m *Model) Action(lemmas *morph.Interner, g *graph.SyntaxGraph, stack *action.Stack, queue *action.Queue) *action.ParserAction {
	b := m.buckets[feature.EnsembleIndex(stack.Node(0))]
	if b == nil {
		return nil
	}
	if b.constant {
		return action.Decode(b.code)
	}
	instance := feature.Extract(lemmas, g, stack, queue)
	return action.Decode(b.model.Predict(instance))
}
