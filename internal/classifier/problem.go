package classifier

import (
	"github.com/qtreebank/goparser/internal/feature"
)

// Problem accumulates the labelled training instances of one ensemble
// bucket: the sparse feature vectors, the shared feature count, and the
// encoded action labels.
type Problem struct {
	FeatureVectors [][]int
	FeatureCount   int
	Labels         []int
}

// Add appends one labelled instance.
func (p *Problem) Add(instance *feature.Instance, label int) {
	p.FeatureVectors = append(p.FeatureVectors, instance.FeatureVector)
	p.FeatureCount = instance.Size
	p.Labels = append(p.Labels, label)
}

// SingleLabel returns the problem's only distinct label, or false if the
// problem carries more than one.
func (p *Problem) SingleLabel() (int, bool) {
	if len(p.Labels) == 0 {
		return 0, false
	}
	first := p.Labels[0]
	for _, l := range p.Labels[1:] {
		if l != first {
			return 0, false
		}
	}
	return first, true
}

// BucketSet is the output of the training driver: one Problem per
// ensemble bucket that saw at least one state, nil elsewhere.
type BucketSet struct {
	Problems [feature.EnsembleCount]*Problem
}

func NewBucketSet() *BucketSet {
	return &BucketSet{}
}

// Add records one labelled instance under the given bucket.
func (bs *BucketSet) Add(index int, instance *feature.Instance, label int) {
	if bs.Problems[index] == nil {
		bs.Problems[index] = &Problem{}
	}
	bs.Problems[index].Add(instance, label)
}

// Model converts the bucket set into a loaded ensemble: single-label
// problems become constant buckets, and every multi-label problem is
// handed to fit, which returns the trained Predictor for it.
func (bs *BucketSet) Model(fit func(index int, p *Problem) (Predictor, error)) (*Model, error) {
	m := NewModel()
	for i, p := range bs.Problems {
		if p == nil {
			continue
		}
		if label, ok := p.SingleLabel(); ok {
			m.SetConstant(i, label)
			continue
		}
		trained, err := fit(i, p)
		if err != nil {
			return nil, err
		}
		m.SetPredictor(i, trained)
	}
	return m, nil
}
