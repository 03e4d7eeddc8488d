package rnn

import (
	"encoding/json"
	"math"
	"math/rand/v2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var cab = [][]float64{
	{0, 0, 1},
	{1, 0, 0},
	{0, 1, 0},
}

func newTestModel(input, hidden, output int) *Model {
	m, err := New(input, hidden, output, rand.New(rand.NewPCG(7, 11)))
	Expect(err).NotTo(HaveOccurred())
	return m
}

func sumExp(logProbs []float64) float64 {
	total := 0.0
	for _, lp := range logProbs {
		total += math.Exp(lp)
	}
	return total
}

var _ = Describe("Model", func() {
	Describe("New", func() {
		It("rejects non-positive sizes", func() {
			_, err := New(3, 0, 2, rand.New(rand.NewPCG(1, 1)))
			Expect(err).To(MatchError(ErrInvalidSize))
		})

		It("reports its sizes", func() {
			m := newTestModel(57, 16, 5)
			Expect(m.InputSize()).To(Equal(57))
			Expect(m.HiddenSize()).To(Equal(16))
			Expect(m.OutputSize()).To(Equal(5))
			Expect(m.InitHidden().Len()).To(Equal(16))
		})
	})

	Describe("Step", func() {
		It("returns a normalized distribution and a new hidden state", func() {
			m := newTestModel(3, 4, 2)
			hidden := m.InitHidden()

			output, next, err := m.Step(hidden, cab[0])
			Expect(err).NotTo(HaveOccurred())
			Expect(output.Len()).To(Equal(2))
			Expect(next.Len()).To(Equal(4))
			Expect(sumExp(output.RawVector().Data)).To(BeNumerically("~", 1.0, 1e-12))

			// the previous state is left untouched
			for i := range hidden.Len() {
				Expect(hidden.AtVec(i)).To(Equal(0.0))
			}
		})

		It("rejects inputs of the wrong dimension", func() {
			m := newTestModel(3, 4, 2)
			_, _, err := m.Step(m.InitHidden(), []float64{1, 0})
			Expect(err).To(MatchError(ErrShapeMismatch))
		})
	})

	Describe("Forward", func() {
		It("rejects an empty sequence", func() {
			_, err := newTestModel(3, 4, 2).Forward(nil)
			Expect(err).To(MatchError(ErrEmptySequence))
		})

		It("threads the hidden state through every step", func() {
			m := newTestModel(3, 4, 2)
			tr, err := m.Forward(cab)
			Expect(err).NotTo(HaveOccurred())
			Expect(tr.Hidden).To(HaveLen(4))

			hidden := m.InitHidden()
			var output []float64
			for _, x := range cab {
				out, next, err := m.Step(hidden, x)
				Expect(err).NotTo(HaveOccurred())
				hidden = next
				output = out.RawVector().Data
			}
			Expect(tr.LogProbs()).To(Equal(output))
		})

		It("depends on input order", func() {
			m := newTestModel(3, 4, 2)
			a, err := m.Evaluate(cab)
			Expect(err).NotTo(HaveOccurred())
			b, err := m.Evaluate([][]float64{cab[2], cab[1], cab[0]})
			Expect(err).NotTo(HaveOccurred())
			Expect(a).NotTo(Equal(b))
		})
	})

	Describe("Backward", func() {
		It("matches finite-difference gradients for every parameter", func() {
			m := newTestModel(3, 4, 2)
			const target = 1
			const eps = 1e-6

			tr, err := m.Forward(cab)
			Expect(err).NotTo(HaveOccurred())
			g, loss, err := m.Backward(tr, target)
			Expect(err).NotTo(HaveOccurred())
			Expect(loss).To(BeNumerically(">", 0))

			lossAt := func() float64 {
				tr, err := m.Forward(cab)
				Expect(err).NotTo(HaveOccurred())
				return tr.Loss(target)
			}

			pairs := []struct {
				name   string
				params []float64
				grads  []float64
			}{
				{"wx", m.wx.RawMatrix().Data, g.Wx.RawMatrix().Data},
				{"wh", m.wh.RawMatrix().Data, g.Wh.RawMatrix().Data},
				{"bh", m.bh.RawVector().Data, g.Bh.RawVector().Data},
				{"wo", m.wo.RawMatrix().Data, g.Wo.RawMatrix().Data},
				{"bo", m.bo.RawVector().Data, g.Bo.RawVector().Data},
			}

			for _, p := range pairs {
				for i := range p.params {
					orig := p.params[i]
					p.params[i] = orig + eps
					plus := lossAt()
					p.params[i] = orig - eps
					minus := lossAt()
					p.params[i] = orig

					numeric := (plus - minus) / (2 * eps)
					Expect(p.grads[i]).To(BeNumerically("~", numeric, 1e-6), "%s[%d]", p.name, i)
				}
			}
		})

		It("rejects a target outside the output range", func() {
			m := newTestModel(3, 4, 2)
			tr, err := m.Forward(cab)
			Expect(err).NotTo(HaveOccurred())
			_, _, err = m.Backward(tr, 2)
			Expect(err).To(MatchError(ErrShapeMismatch))
		})
	})

	Describe("Apply", func() {
		It("lowers the loss on the example it was computed for", func() {
			m := newTestModel(3, 8, 2)

			tr, err := m.Forward(cab)
			Expect(err).NotTo(HaveOccurred())
			g, before, err := m.Backward(tr, 0)
			Expect(err).NotTo(HaveOccurred())

			m.Apply(g, 0.05)

			after, err := m.Forward(cab)
			Expect(err).NotTo(HaveOccurred())
			Expect(after.Loss(0)).To(BeNumerically("<", before))
		})
	})

	Describe("Snapshot", func() {
		It("rebuilds a model with identical outputs", func() {
			m := newTestModel(3, 4, 2)

			data, err := json.Marshal(m.Snapshot())
			Expect(err).NotTo(HaveOccurred())

			var s Snapshot
			Expect(json.Unmarshal(data, &s)).To(Succeed())
			Expect(s.HiddenSize).To(Equal(4))

			loaded, err := FromSnapshot(&s)
			Expect(err).NotTo(HaveOccurred())

			want, err := m.Evaluate(cab)
			Expect(err).NotTo(HaveOccurred())
			got, err := loaded.Evaluate(cab)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		})

		It("rejects a tensor with the wrong shape", func() {
			s := newTestModel(3, 4, 2).Snapshot()
			s.Tensors[0].Shape = []int{4, 2}
			_, err := FromSnapshot(s)
			Expect(err).To(MatchError(ErrBadSnapshot))
		})

		It("rejects a missing tensor", func() {
			s := newTestModel(3, 4, 2).Snapshot()
			s.Tensors = s.Tensors[:4]
			_, err := FromSnapshot(s)
			Expect(err).To(MatchError(ErrBadSnapshot))
		})

		It("rejects an unknown version", func() {
			s := newTestModel(3, 4, 2).Snapshot()
			s.Version = 99
			_, err := FromSnapshot(s)
			Expect(err).To(MatchError(ErrBadSnapshot))
		})
	})
})
