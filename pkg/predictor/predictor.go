// Package predictor ranks categories for a line of text using a trained model.
package predictor

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/papercomputeco/charnn/pkg/alphabet"
	"github.com/papercomputeco/charnn/pkg/category"
	"github.com/papercomputeco/charnn/pkg/rnn"
)

// DefaultK is the number of predictions returned by the inference entry points.
const DefaultK = 3

var (
	// ErrRegistryMismatch is returned when the category registry and the model
	// disagree on the number of categories, or the alphabet and the model
	// disagree on the input size.
	ErrRegistryMismatch = errors.New("predictor: registry does not match model")

	// ErrInvalidK is returned when fewer than one prediction is requested.
	ErrInvalidK = errors.New("predictor: k must be positive")
)

// Prediction is a category with its log-probability score.
type Prediction struct {
	Category string  `json:"category"`
	Index    int     `json:"-"`
	Score    float64 `json:"score"`
}

// Predictor is read-only with respect to the model and safe for concurrent
// use once built.
type Predictor struct {
	model    *rnn.Model
	registry *category.Registry
	alphabet *alphabet.Alphabet
}

// New pairs a model with its registry and alphabet, failing if their
// dimensions disagree.
func New(model *rnn.Model, registry *category.Registry, a *alphabet.Alphabet) (*Predictor, error) {
	if model.OutputSize() != registry.Len() {
		return nil, fmt.Errorf("%w: model has %d outputs, registry has %d categories",
			ErrRegistryMismatch, model.OutputSize(), registry.Len())
	}
	if model.InputSize() != a.Size() {
		return nil, fmt.Errorf("%w: model has %d inputs, alphabet has %d characters",
			ErrRegistryMismatch, model.InputSize(), a.Size())
	}

	return &Predictor{
		model:    model,
		registry: registry,
		alphabet: a,
	}, nil
}

// Registry returns the category registry the predictor maps indices through.
func (p *Predictor) Registry() *category.Registry {
	return p.registry
}

// Predict normalizes and encodes line, runs the full forward pass, and returns
// the min(k, categories) highest scoring categories by descending score. Ties
// keep registry order.
func (p *Predictor) Predict(line string, k int) ([]Prediction, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}

	_, seq, err := p.alphabet.NormalizeAndEncode(line)
	if err != nil {
		return nil, err
	}

	logProbs, err := p.model.Evaluate(seq)
	if err != nil {
		return nil, err
	}

	return TopK(logProbs, k, p.registry), nil
}

// Top1 returns the single most probable category for line.
func (p *Predictor) Top1(line string) (Prediction, error) {
	preds, err := p.Predict(line, 1)
	if err != nil {
		return Prediction{}, err
	}
	return preds[0], nil
}

// TopK selects the k largest scores and maps their indices to labels.
func TopK(scores []float64, k int, registry *category.Registry) []Prediction {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(scores[b], scores[a])
	})

	k = min(k, len(order))
	out := make([]Prediction, k)
	for i, idx := range order[:k] {
		out[i] = Prediction{
			Category: registry.Name(idx),
			Index:    idx,
			Score:    scores[idx],
		}
	}
	return out
}
