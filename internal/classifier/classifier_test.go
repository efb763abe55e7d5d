package classifier_test

import (
	"bytes"
	"testing"

	"github.com/qtreebank/goparser/internal/action"
	"github.com/qtreebank/goparser/internal/classifier"
	"github.com/qtreebank/goparser/internal/feature"
	"github.com/qtreebank/goparser/internal/graph"
	"github.com/qtreebank/goparser/internal/graphtest"
	"github.com/qtreebank/goparser/internal/morph"
)

type fixedPredictor struct {
	code int
}

func (p fixedPredictor) Predict(*feature.Instance) int { return p.code }

func TestModelDispatchesByStackTop(t *testing.T) {
	lemmas := morph.NewInterner()
	g := graph.New()
	noun := graphtest.AddTokenWord(g, graphtest.Token(1, 1, 1, graphtest.Seg(morph.Stem, morph.Noun, 1)))

	p := action.New(g)

	m := classifier.NewModel()
	shift := action.ShiftAction()
	m.SetConstant(0, action.Encode(&shift))
	reduce := action.ReduceAction(0)
	m.SetPredictor(feature.EnsembleIndex(noun), fixedPredictor{code: action.Encode(&reduce)})

	// Empty stack routes to bucket 0's constant.
	got := m.Action(lemmas, g, p.Stack, p.Queue)
	if got == nil || got.Type != action.Shift {
		t.Fatalf("expected SHIFT from the empty-stack bucket, got %v", got)
	}

	// A noun on top routes to the noun bucket's predictor.
	p.Stack.Push(noun)
	got = m.Action(lemmas, g, p.Stack, p.Queue)
	if got == nil || got.Type != action.Reduce || got.StackIndex != 0 {
		t.Fatalf("expected REDUCE(0) from the noun bucket, got %v", got)
	}
}

func TestModelReturnsStopForMissingBucket(t *testing.T) {
	lemmas := morph.NewInterner()
	g := graph.New()
	p := action.New(g)

	m := classifier.NewModel()
	if got := m.Action(lemmas, g, p.Stack, p.Queue); got != nil {
		t.Fatalf("expected stop for an empty model, got %v", got)
	}
}

func TestBucketSetModelSplitsConstantsFromProblems(t *testing.T) {
	bs := classifier.NewBucketSet()

	shift := action.ShiftAction()
	reduce := action.ReduceAction(0)

	// Bucket 1: single distinct label.
	bs.Add(1, &feature.Instance{Size: 8}, action.Encode(&shift))
	bs.Add(1, &feature.Instance{Size: 8}, action.Encode(&shift))

	// Bucket 2: two labels, needs fitting.
	bs.Add(2, &feature.Instance{FeatureVector: []int{0}, Size: 8}, action.Encode(&shift))
	bs.Add(2, &feature.Instance{FeatureVector: []int{1}, Size: 8}, action.Encode(&reduce))

	fitted := 0
	m, err := bs.Model(func(index int, p *classifier.Problem) (classifier.Predictor, error) {
		fitted++
		if index != 2 {
			t.Fatalf("expected only bucket 2 to need fitting, got %d", index)
		}
		if len(p.Labels) != 2 || p.FeatureCount != 8 {
			t.Fatalf("unexpected problem handed to fit: %+v", p)
		}
		return fixedPredictor{code: action.Encode(&reduce)}, nil
	})
	if err != nil {
		t.Fatalf("Model: %v", err)
	}
	if fitted != 1 {
		t.Fatalf("expected exactly one fit call, got %d", fitted)
	}
	if m == nil {
		t.Fatalf("expected a model")
	}
}

func TestBucketSetJSONRoundTrip(t *testing.T) {
	bs := classifier.NewBucketSet()
	shift := action.ShiftAction()
	reduce := action.ReduceAction(0)
	bs.Add(3, &feature.Instance{Size: 4}, action.Encode(&shift))
	bs.Add(5, &feature.Instance{FeatureVector: []int{0, 2}, Size: 4}, action.Encode(&shift))
	bs.Add(5, &feature.Instance{FeatureVector: []int{1}, Size: 4}, action.Encode(&reduce))

	var buf bytes.Buffer
	if err := classifier.WriteJSON(bs, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	loaded, err := classifier.ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	if label, ok := loaded.Problems[3].SingleLabel(); !ok || label != action.Encode(&shift) {
		t.Fatalf("expected bucket 3 to round-trip as a constant")
	}
	p := loaded.Problems[5]
	if p == nil || len(p.Labels) != 2 || p.FeatureCount != 4 {
		t.Fatalf("expected bucket 5 to round-trip its problem, got %+v", p)
	}
	if len(p.FeatureVectors) != 2 || len(p.FeatureVectors[0]) != 2 {
		t.Fatalf("unexpected feature vectors: %v", p.FeatureVectors)
	}
}
