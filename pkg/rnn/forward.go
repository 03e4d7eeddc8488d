package rnn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Trace records a forward pass over one sequence. It holds everything the
// backward pass needs.
type Trace struct {
	// Inputs are the one-hot vectors consumed, in order.
	Inputs [][]float64

	// Hidden holds len(Inputs)+1 states; Hidden[0] is the zero state and
	// Hidden[t] is the state after consuming Inputs[t-1].
	Hidden []*mat.VecDense

	// Output is the log-probability distribution of the final step.
	Output *mat.VecDense
}

// Forward runs the sequence through the model from a zero hidden state. Steps
// are evaluated strictly in order; only the final output is kept.
func (m *Model) Forward(inputs [][]float64) (*Trace, error) {
	if len(inputs) == 0 {
		return nil, ErrEmptySequence
	}

	tr := &Trace{
		Inputs: inputs,
		Hidden: make([]*mat.VecDense, 0, len(inputs)+1),
	}

	hidden := m.InitHidden()
	tr.Hidden = append(tr.Hidden, hidden)

	for t, x := range inputs {
		output, next, err := m.Step(hidden, x)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", t, err)
		}
		hidden = next
		tr.Hidden = append(tr.Hidden, hidden)
		tr.Output = output
	}

	return tr, nil
}

// Evaluate runs Forward and returns only the final log-probabilities.
func (m *Model) Evaluate(inputs [][]float64) ([]float64, error) {
	tr, err := m.Forward(inputs)
	if err != nil {
		return nil, err
	}
	return tr.LogProbs(), nil
}

// LogProbs returns a copy of the final output distribution.
func (tr *Trace) LogProbs() []float64 {
	return append([]float64(nil), tr.Output.RawVector().Data...)
}
