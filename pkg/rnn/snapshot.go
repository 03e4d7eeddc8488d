package rnn

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SnapshotVersion is the current parameter snapshot format.
const SnapshotVersion = 1

// ErrBadSnapshot indicates a snapshot that cannot be turned back into a model.
var ErrBadSnapshot = errors.New("rnn: bad snapshot")

// Tensor is a named, shaped parameter in row-major order.
type Tensor struct {
	Name  string    `json:"name"`
	Shape []int     `json:"shape"`
	Data  []float64 `json:"data"`
}

// Snapshot is the self-describing serialized form of a Model. Sizes are
// recorded explicitly so loading never has to infer them.
type Snapshot struct {
	Version    int      `json:"version"`
	Activation string   `json:"activation"`
	InputSize  int      `json:"input_size"`
	HiddenSize int      `json:"hidden_size"`
	OutputSize int      `json:"output_size"`
	Tensors    []Tensor `json:"tensors"`
}

const activationTanh = "tanh"

// parameter names, in snapshot order
const (
	tensorWx = "input_hidden.weight"
	tensorWh = "hidden_hidden.weight"
	tensorBh = "hidden.bias"
	tensorWo = "hidden_output.weight"
	tensorBo = "output.bias"
)

// Snapshot copies the model parameters into a Snapshot.
func (m *Model) Snapshot() *Snapshot {
	return &Snapshot{
		Version:    SnapshotVersion,
		Activation: activationTanh,
		InputSize:  m.inputSize,
		HiddenSize: m.hiddenSize,
		OutputSize: m.outputSize,
		Tensors: []Tensor{
			denseTensor(tensorWx, m.wx),
			denseTensor(tensorWh, m.wh),
			vecTensor(tensorBh, m.bh),
			denseTensor(tensorWo, m.wo),
			vecTensor(tensorBo, m.bo),
		},
	}
}

func denseTensor(name string, d *mat.Dense) Tensor {
	r, c := d.Dims()
	return Tensor{Name: name, Shape: []int{r, c}, Data: append([]float64(nil), d.RawMatrix().Data...)}
}

func vecTensor(name string, v *mat.VecDense) Tensor {
	return Tensor{Name: name, Shape: []int{v.Len()}, Data: append([]float64(nil), v.RawVector().Data...)}
}

// FromSnapshot rebuilds a Model, validating every tensor shape against the
// recorded sizes.
func FromSnapshot(s *Snapshot) (*Model, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil snapshot", ErrBadSnapshot)
	}
	if s.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: unsupported version %d (expected %d)", ErrBadSnapshot, s.Version, SnapshotVersion)
	}
	if s.Activation != activationTanh {
		return nil, fmt.Errorf("%w: unsupported activation %q", ErrBadSnapshot, s.Activation)
	}
	if s.InputSize <= 0 || s.HiddenSize <= 0 || s.OutputSize <= 0 {
		return nil, fmt.Errorf("%w: sizes input=%d hidden=%d output=%d",
			ErrBadSnapshot, s.InputSize, s.HiddenSize, s.OutputSize)
	}

	m := newZeroModel(s.InputSize, s.HiddenSize, s.OutputSize)
	targets := map[string]struct {
		shape []int
		data  []float64
	}{
		tensorWx: {[]int{s.HiddenSize, s.InputSize}, m.wx.RawMatrix().Data},
		tensorWh: {[]int{s.HiddenSize, s.HiddenSize}, m.wh.RawMatrix().Data},
		tensorBh: {[]int{s.HiddenSize}, m.bh.RawVector().Data},
		tensorWo: {[]int{s.OutputSize, s.HiddenSize}, m.wo.RawMatrix().Data},
		tensorBo: {[]int{s.OutputSize}, m.bo.RawVector().Data},
	}

	seen := make(map[string]bool, len(targets))
	for _, t := range s.Tensors {
		target, ok := targets[t.Name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown tensor %q", ErrBadSnapshot, t.Name)
		}
		if seen[t.Name] {
			return nil, fmt.Errorf("%w: tensor %q repeated", ErrBadSnapshot, t.Name)
		}
		if !shapeEqual(t.Shape, target.shape) || len(t.Data) != len(target.data) {
			return nil, fmt.Errorf("%w: tensor %q has shape %v with %d values, want %v",
				ErrBadSnapshot, t.Name, t.Shape, len(t.Data), target.shape)
		}
		copy(target.data, t.Data)
		seen[t.Name] = true
	}

	for name := range targets {
		if !seen[name] {
			return nil, fmt.Errorf("%w: missing tensor %q", ErrBadSnapshot, name)
		}
	}

	return m, nil
}

func shapeEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
