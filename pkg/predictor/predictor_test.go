package predictor_test

import (
	"math/rand/v2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/charnn/pkg/alphabet"
	"github.com/papercomputeco/charnn/pkg/category"
	"github.com/papercomputeco/charnn/pkg/predictor"
	"github.com/papercomputeco/charnn/pkg/rnn"
)

func newRegistry(names ...string) *category.Registry {
	r, err := category.New(names)
	Expect(err).NotTo(HaveOccurred())
	return r
}

func newModel(input, output int) *rnn.Model {
	m, err := rnn.New(input, 8, output, rand.New(rand.NewPCG(3, 5)))
	Expect(err).NotTo(HaveOccurred())
	return m
}

var _ = Describe("Predictor", func() {
	var a *alphabet.Alphabet

	BeforeEach(func() {
		a = alphabet.NewDefault()
	})

	Describe("New", func() {
		It("fails when the registry length disagrees with the model", func() {
			_, err := predictor.New(newModel(a.Size(), 3), newRegistry("A", "B"), a)
			Expect(err).To(MatchError(predictor.ErrRegistryMismatch))
		})

		It("fails when the alphabet disagrees with the model", func() {
			_, err := predictor.New(newModel(10, 2), newRegistry("A", "B"), a)
			Expect(err).To(MatchError(predictor.ErrRegistryMismatch))
		})
	})

	Describe("Predict", func() {
		var p *predictor.Predictor

		BeforeEach(func() {
			var err error
			p, err = predictor.New(newModel(a.Size(), 5), newRegistry("Arabic", "Czech", "Dutch", "Greek", "Irish"), a)
			Expect(err).NotTo(HaveOccurred())
		})

		It("returns exactly k entries ordered by non-increasing score", func() {
			for _, line := range []string{"Satoshi", "O'Neal", "a", "de la Vega"} {
				for k := 1; k <= 5; k++ {
					preds, err := p.Predict(line, k)
					Expect(err).NotTo(HaveOccurred())
					Expect(preds).To(HaveLen(k))
					for i := 1; i < len(preds); i++ {
						Expect(preds[i].Score).To(BeNumerically("<=", preds[i-1].Score))
					}
				}
			}
		})

		It("caps the result at the number of categories", func() {
			preds, err := p.Predict("Nakamura", 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(preds).To(HaveLen(5))
		})

		It("returns log-probability scores", func() {
			preds, err := p.Predict("Nakamura", 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(preds[0].Score).To(BeNumerically("<=", 0))
		})

		It("normalizes accented input", func() {
			accented, err := p.Predict("Dvořák", 3)
			Expect(err).NotTo(HaveOccurred())
			plain, err := p.Predict("Dvorak", 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(accented).To(Equal(plain))
		})

		It("rejects a line that is empty after normalization", func() {
			_, err := p.Predict("1234", 3)
			Expect(err).To(MatchError(alphabet.ErrEmptyLine))
		})

		It("rejects non-positive k", func() {
			_, err := p.Predict("Smith", 0)
			Expect(err).To(MatchError(predictor.ErrInvalidK))
		})
	})

	It("returns 2 entries when 3 are requested from 2 categories", func() {
		p, err := predictor.New(newModel(a.Size(), 2), newRegistry("Italian", "English"), a)
		Expect(err).NotTo(HaveOccurred())

		preds, err := p.Predict("Rossi", 3)
		Expect(err).NotTo(HaveOccurred())
		Expect(preds).To(HaveLen(2))
		Expect([]string{preds[0].Category, preds[1].Category}).To(ConsistOf("Italian", "English"))
	})

	Describe("TopK", func() {
		It("maps indices to labels by descending score", func() {
			r := newRegistry("A", "B", "C", "D")
			preds := predictor.TopK([]float64{-2.0, -0.1, -3.0, -0.5}, 3, r)
			Expect(preds).To(Equal([]predictor.Prediction{
				{Category: "B", Index: 1, Score: -0.1},
				{Category: "D", Index: 3, Score: -0.5},
				{Category: "A", Index: 0, Score: -2.0},
			}))
		})

		It("keeps registry order for ties", func() {
			r := newRegistry("A", "B", "C")
			preds := predictor.TopK([]float64{-1, -1, -1}, 2, r)
			Expect(preds[0].Category).To(Equal("A"))
			Expect(preds[1].Category).To(Equal("B"))
		})
	})
})
