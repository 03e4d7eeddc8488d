// Package artifact lays out trained runs on disk.
//
//	<root>/categories.json          categories of the most recent run
//	<root>/<run-id>/model.json      alphabet and parameter snapshot
//	<root>/<run-id>/categories.json categories the model was trained with
//	<root>/<run-id>/train.log       JSON training log
package artifact

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/papercomputeco/charnn/pkg/alphabet"
	"github.com/papercomputeco/charnn/pkg/category"
	"github.com/papercomputeco/charnn/pkg/rnn"
)

const (
	categoriesFile = "categories.json"
	modelFile      = "model.json"
	logFile        = "train.log"
)

var (
	// ErrEmptyRunID is returned when a run id is blank.
	ErrEmptyRunID = errors.New("artifact: empty run id")

	// ErrRunMismatch is returned when a saved model does not fit its saved
	// categories or alphabet.
	ErrRunMismatch = errors.New("artifact: model does not match its categories or alphabet")
)

// Layout resolves artifact paths under a results root.
type Layout struct {
	Root string
}

// Bundle is everything needed to serve predictions for one run.
type Bundle struct {
	RunID    string
	Model    *rnn.Model
	Registry *category.Registry
	Alphabet *alphabet.Alphabet
}

// modelDocument is the on-disk shape of model.json.
type modelDocument struct {
	Alphabet string        `json:"alphabet"`
	Model    *rnn.Snapshot `json:"model"`
}

// NewLayout returns a Layout rooted at root.
func NewLayout(root string) *Layout {
	return &Layout{Root: root}
}

// CategoriesPath is the fixed location of the latest categories file.
func (l *Layout) CategoriesPath() string {
	return filepath.Join(l.Root, categoriesFile)
}

// RunDir is the directory holding one run's artifacts.
func (l *Layout) RunDir(id string) string {
	return filepath.Join(l.Root, id)
}

// ModelPath is the location of a run's model.json.
func (l *Layout) ModelPath(id string) string {
	return filepath.Join(l.RunDir(id), modelFile)
}

// RunCategoriesPath is the location of a run's own categories.json.
func (l *Layout) RunCategoriesPath(id string) string {
	return filepath.Join(l.RunDir(id), categoriesFile)
}

// LogPath is the location of a run's JSON training log.
func (l *Layout) LogPath(id string) string {
	return filepath.Join(l.RunDir(id), logFile)
}

// CreateRunDir makes the run directory so logs can be written before the
// model is saved.
func (l *Layout) CreateRunDir(id string) error {
	if id == "" {
		return ErrEmptyRunID
	}
	if err := os.MkdirAll(l.RunDir(id), 0o755); err != nil {
		return fmt.Errorf("creating run dir: %w", err)
	}
	return nil
}

// SaveRun writes the model and categories for run id, and refreshes the
// fixed categories file at the root.
func (l *Layout) SaveRun(id string, model *rnn.Model, registry *category.Registry, a *alphabet.Alphabet) error {
	if id == "" {
		return ErrEmptyRunID
	}
	if model.OutputSize() != registry.Len() || model.InputSize() != a.Size() {
		return ErrRunMismatch
	}

	if err := l.CreateRunDir(id); err != nil {
		return err
	}

	doc := modelDocument{
		Alphabet: a.String(),
		Model:    model.Snapshot(),
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding model: %w", err)
	}

	path := l.ModelPath(id)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing model %s: %w", path, err)
	}

	if err := category.Save(registry, l.RunCategoriesPath(id)); err != nil {
		return err
	}

	return category.Save(registry, l.CategoriesPath())
}

// LoadRun reads back a run written by SaveRun. Categories always come from
// the run directory; the fixed file at the root may belong to a newer run.
func (l *Layout) LoadRun(id string) (*Bundle, error) {
	if id == "" {
		return nil, ErrEmptyRunID
	}

	path := l.ModelPath(id)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model %s: %w", path, err)
	}

	var doc modelDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing model %s: %w", path, err)
	}
	if doc.Model == nil {
		return nil, fmt.Errorf("parsing model %s: %w", path, rnn.ErrBadSnapshot)
	}

	model, err := rnn.FromSnapshot(doc.Model)
	if err != nil {
		return nil, fmt.Errorf("loading model %s: %w", path, err)
	}

	a, err := alphabet.New(doc.Alphabet)
	if err != nil {
		return nil, fmt.Errorf("loading alphabet %s: %w", path, err)
	}

	registry, err := category.Load(l.RunCategoriesPath(id))
	if err != nil {
		return nil, err
	}

	if model.OutputSize() != registry.Len() || model.InputSize() != a.Size() {
		return nil, fmt.Errorf("%w: run %s", ErrRunMismatch, id)
	}

	return &Bundle{
		RunID:    id,
		Model:    model,
		Registry: registry,
		Alphabet: a,
	}, nil
}
