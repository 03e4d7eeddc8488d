package confusion_test

import (
	"math/rand/v2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/charnn/pkg/alphabet"
	"github.com/papercomputeco/charnn/pkg/category"
	"github.com/papercomputeco/charnn/pkg/confusion"
	"github.com/papercomputeco/charnn/pkg/dataset"
	"github.com/papercomputeco/charnn/pkg/predictor"
	"github.com/papercomputeco/charnn/pkg/rnn"
)

var _ = Describe("Evaluator", func() {
	var (
		data *dataset.Dataset
		p    *predictor.Predictor
	)

	BeforeEach(func() {
		a := alphabet.NewDefault()
		r, err := category.New([]string{"Greek", "Korean", "Scottish"})
		Expect(err).NotTo(HaveOccurred())

		data, err = dataset.New(r, map[string][]string{
			"Greek":    {"Papadopoulos", "Nikolaidis", "Georgiou"},
			"Korean":   {"Kim", "Park", "Choi"},
			"Scottish": {"MacDonald", "Campbell"},
		})
		Expect(err).NotTo(HaveOccurred())

		m, err := rnn.New(a.Size(), 12, r.Len(), rand.New(rand.NewPCG(9, 9)))
		Expect(err).NotTo(HaveOccurred())

		p, err = predictor.New(m, r, a)
		Expect(err).NotTo(HaveOccurred())
	})

	It("produces rows that sum to one for every sampled category", func() {
		e, err := confusion.New(p, data, rand.New(rand.NewPCG(1, 2)))
		Expect(err).NotTo(HaveOccurred())

		m, err := e.Evaluate(600)
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Size()).To(Equal(3))
		Expect(m.Samples()).To(Equal(600))
		Expect(m.Labels).To(Equal([]string{"Greek", "Korean", "Scottish"}))

		for i := range m.Size() {
			Expect(m.Sampled(i)).To(BeTrue())
			sum := 0.0
			for _, v := range m.Row(i) {
				Expect(v).To(BeNumerically(">=", 0))
				Expect(v).To(BeNumerically("<=", 1))
				sum += v
			}
			Expect(sum).To(BeNumerically("~", 1.0, 1e-9))
		}
	})

	It("keeps counts consistent with accuracy", func() {
		e, err := confusion.New(p, data, rand.New(rand.NewPCG(4, 4)))
		Expect(err).NotTo(HaveOccurred())

		m, err := e.Evaluate(300)
		Expect(err).NotTo(HaveOccurred())

		correct, total := 0, 0
		for i := range m.Size() {
			for j := range m.Size() {
				total += m.Count(i, j)
				if i == j {
					correct += m.Count(i, j)
				}
			}
		}
		Expect(total).To(Equal(300))
		Expect(m.Accuracy()).To(BeNumerically("~", float64(correct)/300, 1e-12))
	})

	It("leaves unsampled rows at zero", func() {
		e, err := confusion.New(p, data, rand.New(rand.NewPCG(5, 6)))
		Expect(err).NotTo(HaveOccurred())

		m, err := e.Evaluate(1)
		Expect(err).NotTo(HaveOccurred())

		sampled := 0
		for i := range m.Size() {
			if !m.Sampled(i) {
				Expect(m.Row(i)).To(Equal([]float64{0, 0, 0}))
				continue
			}
			sampled++
		}
		Expect(sampled).To(Equal(1))
	})

	It("rejects a non-positive sample count", func() {
		e, err := confusion.New(p, data, rand.New(rand.NewPCG(1, 1)))
		Expect(err).NotTo(HaveOccurred())

		_, err = e.Evaluate(0)
		Expect(err).To(MatchError(confusion.ErrNoSamples))
	})
})
