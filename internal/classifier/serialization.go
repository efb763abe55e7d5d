package classifier

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/qtreebank/goparser/internal/feature"
)

type serializedBucket struct {
	Index   int                `json:"index"`
	Kind    string             `json:"kind"`
	Action  int                `json:"action,omitempty"`
	Problem *serializedProblem `json:"problem,omitempty"`
}

type serializedProblem struct {
	FeatureCount   int     `json:"featureCount"`
	FeatureVectors [][]int `json:"featureVectors"`
	Labels         []int   `json:"labels"`
}

type serializedBucketSet struct {
	Buckets []serializedBucket `json:"buckets"`
}

func toSerializedBucketSet(bs *BucketSet) serializedBucketSet {
	var sbs serializedBucketSet
	for i, p := range bs.Problems {
		if p == nil {
			continue
		}
		if label, ok := p.SingleLabel(); ok {
			sbs.Buckets = append(sbs.Buckets, serializedBucket{Index: i, Kind: "constant", Action: label})
			continue
		}
		sbs.Buckets = append(sbs.Buckets, serializedBucket{
			Index: i,
			Kind:  "problem",
			Problem: &serializedProblem{
				FeatureCount:   p.FeatureCount,
				FeatureVectors: p.FeatureVectors,
				Labels:         p.Labels,
			},
		})
	}
	return sbs
}

func fromSerializedBucketSet(sbs serializedBucketSet) (*BucketSet, error) {
	bs := NewBucketSet()
	for _, sb := range sbs.Buckets {
		if sb.Index < 0 || sb.Index >= feature.EnsembleCount {
			return nil, fmt.Errorf("bucket index %d out of range", sb.Index)
		}
		switch sb.Kind {
		case "constant":
			bs.Problems[sb.Index] = &Problem{Labels: []int{sb.Action}}
		case "problem":
			if sb.Problem == nil {
				return nil, fmt.Errorf("bucket %d: missing problem data", sb.Index)
			}
			bs.Problems[sb.Index] = &Problem{
				FeatureVectors: sb.Problem.FeatureVectors,
				FeatureCount:   sb.Problem.FeatureCount,
				Labels:         sb.Problem.Labels,
			}
		default:
			return nil, fmt.Errorf("bucket %d: unknown kind %q", sb.Index, sb.Kind)
		}
	}
	return bs, nil
}

// WriteJSON encodes a bucket set to JSON and writes it to w. Constant
// buckets are stored as their single action code; multi-label buckets
// carry the full problem for an external trainer to consume.
func WriteJSON(bs *BucketSet, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toSerializedBucketSet(bs))
}

// ReadJSON decodes a bucket set from JSON read from r.
func ReadJSON(r io.Reader) (*BucketSet, error) {
	var sbs serializedBucketSet
	if err := json.NewDecoder(r).Decode(&sbs); err != nil {
		return nil, fmt.Errorf("decoding bucket set JSON: %w", err)
	}
	return fromSerializedBucketSet(sbs)
}

// SaveJSON writes a bucket set to a JSON file at path.
func SaveJSON(bs *BucketSet, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(bs, f)
}

// LoadJSON reads a bucket set from a JSON file at path.
func LoadJSON(path string) (*BucketSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
