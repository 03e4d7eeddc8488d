package alphabet

import "fmt"

// Sequence is an ordered list of one-hot vectors, one per character.
type Sequence [][]float64

// Len returns the number of steps in the sequence.
func (s Sequence) Len() int {
	return len(s)
}

// Indices returns the hot position of every vector.
func (s Sequence) Indices() []int {
	out := make([]int, len(s))
	for t, v := range s {
		for i, x := range v {
			if x == 1 {
				out[t] = i
				break
			}
		}
	}
	return out
}

// Encode converts line into a sequence of one-hot vectors of dimension Size.
//
// Characters outside the alphabet are rejected with ErrUnknownCharacter rather
// than being mapped to a fallback slot. Run Normalize first to drop them.
func (a *Alphabet) Encode(line string) (Sequence, error) {
	if line == "" {
		return nil, ErrEmptyLine
	}

	seq := make(Sequence, 0, len(line))
	for pos, r := range []rune(line) {
		i, ok := a.index[r]
		if !ok {
			return nil, fmt.Errorf("%w: %q at position %d", ErrUnknownCharacter, r, pos)
		}
		v := make([]float64, len(a.chars))
		v[i] = 1
		seq = append(seq, v)
	}

	return seq, nil
}

// NormalizeAndEncode normalizes raw and encodes the result. It returns
// ErrEmptyLine when nothing survives normalization.
func (a *Alphabet) NormalizeAndEncode(raw string) (string, Sequence, error) {
	line := a.Normalize(raw)
	if line == "" {
		return "", nil, fmt.Errorf("%w: %q has no characters in the alphabet", ErrEmptyLine, raw)
	}

	seq, err := a.Encode(line)
	if err != nil {
		return "", nil, err
	}
	return line, seq, nil
}
