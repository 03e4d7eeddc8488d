package rnn

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Gradients has one entry per model parameter, with matching shapes.
type Gradients struct {
	Wx *mat.Dense
	Wh *mat.Dense
	Bh *mat.VecDense
	Wo *mat.Dense
	Bo *mat.VecDense
}

// Loss is the negative log-likelihood of target under the final output.
func (tr *Trace) Loss(target int) float64 {
	return -tr.Output.AtVec(target)
}

// Backward computes the negative log-likelihood of target against the final
// output of tr and its gradient with respect to every parameter, by
// backpropagation through time over the whole sequence.
func (m *Model) Backward(tr *Trace, target int) (*Gradients, float64, error) {
	if target < 0 || target >= m.outputSize {
		return nil, 0, fmt.Errorf("%w: target %d outside [0, %d)", ErrShapeMismatch, target, m.outputSize)
	}
	if tr == nil || len(tr.Inputs) == 0 || tr.Output == nil {
		return nil, 0, ErrEmptySequence
	}

	steps := len(tr.Inputs)
	g := &Gradients{
		Wx: mat.NewDense(m.hiddenSize, m.inputSize, nil),
		Wh: mat.NewDense(m.hiddenSize, m.hiddenSize, nil),
		Bh: mat.NewVecDense(m.hiddenSize, nil),
		Wo: mat.NewDense(m.outputSize, m.hiddenSize, nil),
		Bo: mat.NewVecDense(m.outputSize, nil),
	}

	// d(-log p[target]) / d logits = softmax(logits) - onehot(target)
	dLogits := mat.NewVecDense(m.outputSize, nil)
	for i := range m.outputSize {
		dLogits.SetVec(i, math.Exp(tr.Output.AtVec(i)))
	}
	dLogits.SetVec(target, dLogits.AtVec(target)-1)

	last := tr.Hidden[steps]
	g.Wo.RankOne(g.Wo, 1, dLogits, last)
	g.Bo.CopyVec(dLogits)

	dHidden := mat.NewVecDense(m.hiddenSize, nil)
	dHidden.MulVec(m.wo.T(), dLogits)

	dPre := mat.NewVecDense(m.hiddenSize, nil)
	for t := steps; t >= 1; t-- {
		h := tr.Hidden[t].RawVector().Data
		for i, hi := range h {
			dPre.SetVec(i, dHidden.AtVec(i)*(1-hi*hi))
		}

		x := mat.NewVecDense(m.inputSize, tr.Inputs[t-1])
		g.Wx.RankOne(g.Wx, 1, dPre, x)
		g.Wh.RankOne(g.Wh, 1, dPre, tr.Hidden[t-1])
		g.Bh.AddVec(g.Bh, dPre)

		dHidden.MulVec(m.wh.T(), dPre)
	}

	return g, tr.Loss(target), nil
}

// Apply performs one plain SGD update in place: p -= rate * grad for every
// parameter.
func (m *Model) Apply(g *Gradients, rate float64) {
	floats.AddScaled(m.wx.RawMatrix().Data, -rate, g.Wx.RawMatrix().Data)
	floats.AddScaled(m.wh.RawMatrix().Data, -rate, g.Wh.RawMatrix().Data)
	floats.AddScaled(m.bh.RawVector().Data, -rate, g.Bh.RawVector().Data)
	floats.AddScaled(m.wo.RawMatrix().Data, -rate, g.Wo.RawMatrix().Data)
	floats.AddScaled(m.bo.RawVector().Data, -rate, g.Bo.RawVector().Data)
}
