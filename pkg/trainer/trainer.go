// Package trainer drives the recurrent model over randomly sampled examples,
// applying one plain SGD update per iteration.
package trainer

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/papercomputeco/charnn/pkg/alphabet"
	"github.com/papercomputeco/charnn/pkg/dataset"
	"github.com/papercomputeco/charnn/pkg/rnn"
)

const (
	defaultLearningRate  = 0.005
	defaultReportPercent = 5.0
)

// ErrNonFiniteLoss is reported by Result.Check when training diverged.
var ErrNonFiniteLoss = errors.New("trainer: loss is not finite")

// Config controls a training run.
type Config struct {
	// Iterations is the number of examples drawn and trained on.
	Iterations int

	// LearningRate scales every gradient step. Defaults to 0.005.
	LearningRate float64

	// ReportPercent is the progress cadence as a percentage of Iterations.
	// Defaults to 5.
	ReportPercent float64

	// Logger receives progress records. Defaults to slog.Default().
	Logger *slog.Logger

	// OnProgress, when set, is called at every report in addition to logging.
	OnProgress func(Progress)
}

// Progress is emitted at the reporting cadence.
type Progress struct {
	Iteration int
	Percent   float64
	Elapsed   time.Duration
	Loss      float64
	Line      string
	Category  string
	Guess     string
	Correct   bool
}

// Result summarizes a run.
type Result struct {
	Iterations int

	// Loss is the mean per-iteration loss over the whole run.
	Loss float64

	Elapsed time.Duration
}

// Check returns ErrNonFiniteLoss when the mean loss is NaN or infinite.
func (r Result) Check() error {
	if math.IsNaN(r.Loss) || math.IsInf(r.Loss, 0) {
		return fmt.Errorf("%w: %v after %d iterations", ErrNonFiniteLoss, r.Loss, r.Iterations)
	}
	return nil
}

// Trainer owns the only write access to the model parameters during a run.
type Trainer struct {
	model    *rnn.Model
	data     *dataset.Dataset
	alphabet *alphabet.Alphabet
	rng      *rand.Rand
	config   Config
	logger   *slog.Logger
}

// New creates a Trainer. The rng drives example sampling.
func New(model *rnn.Model, data *dataset.Dataset, a *alphabet.Alphabet, rng *rand.Rand, config Config) (*Trainer, error) {
	if config.Iterations <= 0 {
		return nil, fmt.Errorf("iterations must be positive, got %d", config.Iterations)
	}
	if config.LearningRate == 0 {
		config.LearningRate = defaultLearningRate
	}
	if config.ReportPercent <= 0 {
		config.ReportPercent = defaultReportPercent
	}
	if model.InputSize() != a.Size() {
		return nil, fmt.Errorf("%w: model input size %d, alphabet size %d", rnn.ErrShapeMismatch, model.InputSize(), a.Size())
	}
	if model.OutputSize() != data.Registry().Len() {
		return nil, fmt.Errorf("%w: model output size %d, %d categories", rnn.ErrShapeMismatch, model.OutputSize(), data.Registry().Len())
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Trainer{
		model:    model,
		data:     data,
		alphabet: a,
		rng:      rng,
		config:   config,
		logger:   logger,
	}, nil
}

// TrainStep runs the model over seq from a zero hidden state, computes the
// negative log-likelihood of target against the final output, backpropagates,
// and applies p -= rate * grad to every parameter. It returns the final output
// distribution and the loss before the update.
func TrainStep(model *rnn.Model, target int, seq alphabet.Sequence, rate float64) ([]float64, float64, error) {
	tr, err := model.Forward(seq)
	if err != nil {
		return nil, 0, err
	}

	grads, loss, err := model.Backward(tr, target)
	if err != nil {
		return nil, 0, err
	}

	model.Apply(grads, rate)

	return tr.LogProbs(), loss, nil
}

// Run performs Config.Iterations train steps on examples sampled with
// replacement and returns the mean loss. A non-finite loss is not recovered
// from; it propagates into Result.Loss.
func (t *Trainer) Run() (Result, error) {
	n := t.config.Iterations
	every := int(float64(n) * t.config.ReportPercent / 100)
	if every < 1 {
		every = 1
	}

	registry := t.data.Registry()
	start := time.Now()
	total := 0.0

	for iter := 1; iter <= n; iter++ {
		ex := t.data.Sample(t.rng)

		seq, err := t.alphabet.Encode(ex.Line)
		if err != nil {
			return Result{}, fmt.Errorf("iteration %d: encoding %q: %w", iter, ex.Line, err)
		}

		output, loss, err := TrainStep(t.model, ex.Index, seq, t.config.LearningRate)
		if err != nil {
			return Result{}, fmt.Errorf("iteration %d: %w", iter, err)
		}
		total += loss

		if iter%every == 0 {
			guess := registry.Name(floats.MaxIdx(output))
			t.report(Progress{
				Iteration: iter,
				Percent:   float64(iter) / float64(n) * 100,
				Elapsed:   time.Since(start),
				Loss:      loss,
				Line:      ex.Line,
				Category:  ex.Category,
				Guess:     guess,
				Correct:   guess == ex.Category,
			})
		}
	}

	return Result{
		Iterations: n,
		Loss:       total / float64(n),
		Elapsed:    time.Since(start),
	}, nil
}

func (t *Trainer) report(p Progress) {
	t.logger.Info("training progress",
		"iteration", p.Iteration,
		"percent", fmt.Sprintf("%.0f%%", p.Percent),
		"elapsed", p.Elapsed.Round(time.Second).String(),
		"loss", fmt.Sprintf("%.4f", p.Loss),
		"line", p.Line,
		"guess", p.Guess,
		"category", p.Category,
		"correct", p.Correct,
	)

	if t.config.OnProgress != nil {
		t.config.OnProgress(p)
	}
}
