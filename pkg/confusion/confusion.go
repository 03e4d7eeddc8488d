// Package confusion tallies true-versus-predicted categories over randomly
// sampled examples into a row-normalized confusion matrix.
package confusion

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/papercomputeco/charnn/pkg/dataset"
	"github.com/papercomputeco/charnn/pkg/predictor"
)

// ErrNoSamples is returned when asked to evaluate zero samples.
var ErrNoSamples = errors.New("confusion: sample count must be positive")

// Matrix is an N x N table where row i, column j is the fraction of samples of
// category i predicted as category j.
//
// Rows for categories that were never sampled are left all zero rather than
// divided by zero; Sampled reports which rows those are.
type Matrix struct {
	Labels []string

	counts     *mat.Dense
	normalized *mat.Dense
	rowTotals  []int
	correct    int
	total      int
}

// Evaluator is read-only with respect to the model.
type Evaluator struct {
	predictor *predictor.Predictor
	data      *dataset.Dataset
	rng       *rand.Rand
}

// New creates an Evaluator. The rng drives example sampling.
func New(p *predictor.Predictor, data *dataset.Dataset, rng *rand.Rand) (*Evaluator, error) {
	if p.Registry().Len() != data.Registry().Len() {
		return nil, fmt.Errorf("%w: predictor has %d categories, dataset has %d",
			predictor.ErrRegistryMismatch, p.Registry().Len(), data.Registry().Len())
	}
	return &Evaluator{predictor: p, data: data, rng: rng}, nil
}

// Evaluate draws samples random examples, predicts the top category for each,
// and returns the row-normalized tally.
func (e *Evaluator) Evaluate(samples int) (*Matrix, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNoSamples, samples)
	}

	labels := e.data.Registry().Names()
	n := len(labels)
	m := &Matrix{
		Labels:    labels,
		counts:    mat.NewDense(n, n, nil),
		rowTotals: make([]int, n),
	}

	for range samples {
		ex := e.data.Sample(e.rng)

		guess, err := e.predictor.Top1(ex.Line)
		if err != nil {
			return nil, fmt.Errorf("predicting %q: %w", ex.Line, err)
		}

		m.counts.Set(ex.Index, guess.Index, m.counts.At(ex.Index, guess.Index)+1)
		m.rowTotals[ex.Index]++
		m.total++
		if guess.Index == ex.Index {
			m.correct++
		}
	}

	m.normalize()
	return m, nil
}

func (m *Matrix) normalize() {
	n := len(m.Labels)
	m.normalized = mat.NewDense(n, n, nil)
	for i := range n {
		if m.rowTotals[i] == 0 {
			continue
		}
		row := mat.Row(nil, i, m.counts)
		for j := range row {
			row[j] /= float64(m.rowTotals[i])
		}
		m.normalized.SetRow(i, row)
	}
}

// Size is the number of categories.
func (m *Matrix) Size() int {
	return len(m.Labels)
}

// At returns the fraction of category i samples predicted as category j.
func (m *Matrix) At(i, j int) float64 {
	return m.normalized.At(i, j)
}

// Count returns the raw number of category i samples predicted as category j.
func (m *Matrix) Count(i, j int) int {
	return int(m.counts.At(i, j))
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	return mat.Row(nil, i, m.normalized)
}

// Sampled reports whether category i received at least one sample.
func (m *Matrix) Sampled(i int) bool {
	return m.rowTotals[i] > 0
}

// Diagonal returns the per-category recall.
func (m *Matrix) Diagonal() []float64 {
	out := make([]float64, len(m.Labels))
	for i := range out {
		out[i] = m.normalized.At(i, i)
	}
	return out
}

// Accuracy is the overall fraction of samples predicted correctly.
func (m *Matrix) Accuracy() float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.correct) / float64(m.total)
}

// Samples is the total number of samples tallied.
func (m *Matrix) Samples() int {
	return m.total
}
