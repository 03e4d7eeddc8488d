package dataset_test

import (
	"math/rand/v2"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/charnn/pkg/alphabet"
	"github.com/papercomputeco/charnn/pkg/category"
	"github.com/papercomputeco/charnn/pkg/dataset"
)

var _ = Describe("Dataset", func() {
	var (
		tmpDir string
		abc    *alphabet.Alphabet
	)

	writeCategory := func(name, body string) {
		dir := filepath.Join(tmpDir, dataset.NamesDir)
		Expect(os.MkdirAll(dir, 0o755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(dir, name+".txt"), []byte(body), 0o644)).To(Succeed())
	}

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "dataset-test-*")
		Expect(err).NotTo(HaveOccurred())
		abc = alphabet.NewDefault()
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	Describe("Load", func() {
		It("reads normalized lines per category in discovery order", func() {
			writeCategory("Polish", "Ślusàrski\nNowak\n")
			writeCategory("Irish", "O'Brien\n\n1234\nMurphy\n")

			d, err := dataset.Load(tmpDir, abc)
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Registry().Names()).To(Equal([]string{"Irish", "Polish"}))
			Expect(d.Lines(0)).To(Equal([]string{"O'Brien", "Murphy"}))
			Expect(d.Lines(1)).To(Equal([]string{"Slusarski", "Nowak"}))
			Expect(d.Size()).To(Equal(4))
		})

		It("fails for a category without usable lines", func() {
			writeCategory("Irish", "Murphy\n")
			writeCategory("Empty", "\n42\n")

			_, err := dataset.Load(tmpDir, abc)
			Expect(err).To(MatchError(dataset.ErrEmptyCategory))
		})

		It("fails when the names directory is missing", func() {
			_, err := dataset.Load(tmpDir, abc)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Sample", func() {
		It("draws categories uniformly with replacement", func() {
			r, err := category.New([]string{"A", "B"})
			Expect(err).NotTo(HaveOccurred())

			d, err := dataset.New(r, map[string][]string{
				"A": {"xyz"},
				"B": {"abc", "cab", "bca", "acb", "bac", "cba"},
			})
			Expect(err).NotTo(HaveOccurred())

			rng := rand.New(rand.NewPCG(1, 2))
			counts := map[string]int{}
			for range 4000 {
				ex := d.Sample(rng)
				Expect(ex.Category).To(Equal(r.Name(ex.Index)))
				Expect(d.Lines(ex.Index)).To(ContainElement(ex.Line))
				counts[ex.Category]++
			}

			// Category choice does not depend on collection size.
			Expect(counts["A"]).To(BeNumerically("~", 2000, 200))
			Expect(counts["B"]).To(BeNumerically("~", 2000, 200))
		})
	})
})
