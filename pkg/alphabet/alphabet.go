// Package alphabet provides the fixed character set accepted by the encoder,
// text normalization, and one-hot encoding of lines into vector sequences.
package alphabet

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Default is the character set used for name classification: ASCII letters,
// space, and a small set of punctuation.
const Default = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ .,;'"

var (
	// ErrEmptyLine is returned when a line has no characters to encode.
	ErrEmptyLine = errors.New("alphabet: empty line")

	// ErrUnknownCharacter is returned when a character is not part of the alphabet.
	ErrUnknownCharacter = errors.New("alphabet: unknown character")

	// ErrInvalidAlphabet is returned for empty alphabets or alphabets with repeated characters.
	ErrInvalidAlphabet = errors.New("alphabet: invalid alphabet")
)

// Alphabet is an ordered set of unique characters. The position of a character
// is its one-hot index.
type Alphabet struct {
	chars []rune
	index map[rune]int
}

// New creates an Alphabet from the characters of s, in order.
func New(s string) (*Alphabet, error) {
	chars := []rune(s)
	if len(chars) == 0 {
		return nil, fmt.Errorf("%w: no characters", ErrInvalidAlphabet)
	}

	index := make(map[rune]int, len(chars))
	for i, r := range chars {
		if _, dup := index[r]; dup {
			return nil, fmt.Errorf("%w: repeated character %q", ErrInvalidAlphabet, r)
		}
		index[r] = i
	}

	return &Alphabet{chars: chars, index: index}, nil
}

// NewDefault returns the Default alphabet.
func NewDefault() *Alphabet {
	a, err := New(Default)
	if err != nil {
		panic(err)
	}
	return a
}

// Size is the number of characters, which is also the one-hot vector dimension.
func (a *Alphabet) Size() int {
	return len(a.chars)
}

// String returns the characters in order.
func (a *Alphabet) String() string {
	return string(a.chars)
}

// Index returns the position of r, and false when r is not in the alphabet.
func (a *Alphabet) Index(r rune) (int, bool) {
	i, ok := a.index[r]
	return i, ok
}

// Contains reports whether r is in the alphabet.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// Normalize strips diacritics (canonical decomposition, combining marks
// removed) and then drops every character not in the alphabet. Relative order
// and case are preserved.
func (a *Alphabet) Normalize(raw string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	decomposed, _, err := transform.String(t, raw)
	if err != nil {
		decomposed = norm.NFD.String(raw)
	}

	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if a.Contains(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
