package alphabet_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/charnn/pkg/alphabet"
)

var _ = Describe("Alphabet", func() {
	Describe("New", func() {
		It("rejects an empty alphabet", func() {
			_, err := alphabet.New("")
			Expect(err).To(MatchError(alphabet.ErrInvalidAlphabet))
		})

		It("rejects repeated characters", func() {
			_, err := alphabet.New("abca")
			Expect(err).To(MatchError(alphabet.ErrInvalidAlphabet))
		})

		It("sizes the default alphabet to letters plus punctuation", func() {
			Expect(alphabet.NewDefault().Size()).To(Equal(57))
		})
	})

	Describe("Normalize", func() {
		var a *alphabet.Alphabet

		BeforeEach(func() {
			a = alphabet.NewDefault()
		})

		It("strips diacritics", func() {
			Expect(a.Normalize("Ślusàrski")).To(Equal("Slusarski"))
			Expect(a.Normalize("Müller")).To(Equal("Muller"))
		})

		It("drops characters outside the alphabet and keeps order and case", func() {
			Expect(a.Normalize("O'Néal-Smith 2")).To(Equal("O'NealSmith "))
		})

		It("returns an empty string when nothing survives", func() {
			Expect(a.Normalize("123-456")).To(BeEmpty())
		})
	})

	Describe("Encode", func() {
		It("one-hot encodes each character", func() {
			a, err := alphabet.New("abc")
			Expect(err).NotTo(HaveOccurred())

			seq, err := a.Encode("cab")
			Expect(err).NotTo(HaveOccurred())
			Expect(seq).To(Equal(alphabet.Sequence{
				{0, 0, 1},
				{1, 0, 0},
				{0, 1, 0},
			}))
			Expect(seq.Indices()).To(Equal([]int{2, 0, 1}))
		})

		It("produces one vector per character with exactly one hot component", func() {
			a := alphabet.NewDefault()
			for _, line := range []string{"a", "Nguyen", "O'Brien", "de la Cruz", "St. John;"} {
				seq, err := a.Encode(line)
				Expect(err).NotTo(HaveOccurred())
				Expect(seq.Len()).To(Equal(len([]rune(line))))

				for _, v := range seq {
					Expect(v).To(HaveLen(a.Size()))
					ones, sum := 0, 0.0
					for _, x := range v {
						if x == 1 {
							ones++
						}
						sum += x
					}
					Expect(ones).To(Equal(1))
					Expect(sum).To(Equal(1.0))
				}
			}
		})

		It("rejects characters outside the alphabet", func() {
			a, err := alphabet.New("abc")
			Expect(err).NotTo(HaveOccurred())

			_, err = a.Encode("abd")
			Expect(err).To(MatchError(alphabet.ErrUnknownCharacter))
			Expect(err.Error()).To(ContainSubstring("position 2"))
		})

		It("rejects an empty line", func() {
			_, err := alphabet.NewDefault().Encode("")
			Expect(err).To(MatchError(alphabet.ErrEmptyLine))
		})
	})

	Describe("NormalizeAndEncode", func() {
		It("normalizes before encoding", func() {
			line, seq, err := alphabet.NewDefault().NormalizeAndEncode("José")
			Expect(err).NotTo(HaveOccurred())
			Expect(line).To(Equal("Jose"))
			Expect(seq.Len()).To(Equal(4))
		})

		It("rejects input that normalizes to nothing", func() {
			_, _, err := alphabet.NewDefault().NormalizeAndEncode("42")
			Expect(err).To(MatchError(alphabet.ErrEmptyLine))
		})
	})
})
