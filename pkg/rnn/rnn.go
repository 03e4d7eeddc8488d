// Package rnn implements a single-layer recurrent classifier over one-hot
// character vectors, together with its manual backward pass and plain SGD
// update.
//
// At every step the previous hidden state and the current input are combined
// by a linear map with bias followed by tanh:
//
//	h' = tanh(Wx·x + Wh·h + bh)
//
// and the output is a log-probability distribution over categories:
//
//	y = logsoftmax(Wo·h' + bo)
//
// Only the output of the final step is used for classification.
//
// A Model is not safe for concurrent mutation. Forward passes only read the
// parameters; Apply is the single writer.
package rnn

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrShapeMismatch indicates an input, target, or tensor with the wrong dimensions.
	ErrShapeMismatch = errors.New("rnn: shape mismatch")

	// ErrEmptySequence indicates a forward pass over zero steps.
	ErrEmptySequence = errors.New("rnn: empty sequence")

	// ErrInvalidSize indicates a non-positive layer size.
	ErrInvalidSize = errors.New("rnn: invalid size")
)

// Model holds the trainable parameters.
type Model struct {
	inputSize  int
	hiddenSize int
	outputSize int

	wx *mat.Dense    // hiddenSize x inputSize
	wh *mat.Dense    // hiddenSize x hiddenSize
	bh *mat.VecDense // hiddenSize
	wo *mat.Dense    // outputSize x hiddenSize
	bo *mat.VecDense // outputSize
}

// New creates a model with parameters drawn uniformly from
// [-1/sqrt(fanIn), 1/sqrt(fanIn)] for each layer.
func New(inputSize, hiddenSize, outputSize int, rng *rand.Rand) (*Model, error) {
	if inputSize <= 0 || hiddenSize <= 0 || outputSize <= 0 {
		return nil, fmt.Errorf("%w: input=%d hidden=%d output=%d",
			ErrInvalidSize, inputSize, hiddenSize, outputSize)
	}

	m := newZeroModel(inputSize, hiddenSize, outputSize)

	hiddenBound := 1 / math.Sqrt(float64(inputSize+hiddenSize))
	outputBound := 1 / math.Sqrt(float64(hiddenSize))

	fillUniform(m.wx.RawMatrix().Data, hiddenBound, rng)
	fillUniform(m.wh.RawMatrix().Data, hiddenBound, rng)
	fillUniform(m.bh.RawVector().Data, hiddenBound, rng)
	fillUniform(m.wo.RawMatrix().Data, outputBound, rng)
	fillUniform(m.bo.RawVector().Data, outputBound, rng)

	return m, nil
}

func newZeroModel(inputSize, hiddenSize, outputSize int) *Model {
	return &Model{
		inputSize:  inputSize,
		hiddenSize: hiddenSize,
		outputSize: outputSize,
		wx:         mat.NewDense(hiddenSize, inputSize, nil),
		wh:         mat.NewDense(hiddenSize, hiddenSize, nil),
		bh:         mat.NewVecDense(hiddenSize, nil),
		wo:         mat.NewDense(outputSize, hiddenSize, nil),
		bo:         mat.NewVecDense(outputSize, nil),
	}
}

func fillUniform(dst []float64, bound float64, rng *rand.Rand) {
	for i := range dst {
		dst[i] = (rng.Float64()*2 - 1) * bound
	}
}

// InputSize is the one-hot input dimension.
func (m *Model) InputSize() int { return m.inputSize }

// HiddenSize is the hidden state dimension.
func (m *Model) HiddenSize() int { return m.hiddenSize }

// OutputSize is the number of categories.
func (m *Model) OutputSize() int { return m.outputSize }

// InitHidden returns the zero hidden state every sequence starts from.
func (m *Model) InitHidden() *mat.VecDense {
	return mat.NewVecDense(m.hiddenSize, nil)
}

// Step consumes one input vector. It returns the log-probability output for
// this step and the next hidden state; hidden is not modified.
func (m *Model) Step(hidden *mat.VecDense, input []float64) (*mat.VecDense, *mat.VecDense, error) {
	if len(input) != m.inputSize {
		return nil, nil, fmt.Errorf("%w: input has %d components, want %d", ErrShapeMismatch, len(input), m.inputSize)
	}
	if hidden.Len() != m.hiddenSize {
		return nil, nil, fmt.Errorf("%w: hidden has %d components, want %d", ErrShapeMismatch, hidden.Len(), m.hiddenSize)
	}

	x := mat.NewVecDense(m.inputSize, input)

	next := mat.NewVecDense(m.hiddenSize, nil)
	next.MulVec(m.wx, x)

	recur := mat.NewVecDense(m.hiddenSize, nil)
	recur.MulVec(m.wh, hidden)

	next.AddVec(next, recur)
	next.AddVec(next, m.bh)

	h := next.RawVector().Data
	for i := range h {
		h[i] = math.Tanh(h[i])
	}

	logits := mat.NewVecDense(m.outputSize, nil)
	logits.MulVec(m.wo, next)
	logits.AddVec(logits, m.bo)

	return logSoftmax(logits), next, nil
}

// logSoftmax returns log(softmax(v)) computed with the log-sum-exp trick.
func logSoftmax(v *mat.VecDense) *mat.VecDense {
	data := v.RawVector().Data
	lse := floats.LogSumExp(data)

	out := make([]float64, len(data))
	for i, x := range data {
		out[i] = x - lse
	}
	return mat.NewVecDense(len(out), out)
}
