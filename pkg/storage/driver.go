// Package storage persists training run records.
package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Run describes one completed training run and where its artifacts live.
type Run struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	DataPath     string    `json:"data_path"`
	ArtifactDir  string    `json:"artifact_dir"`
	HiddenSize   int       `json:"hidden_size"`
	Iterations   int       `json:"iterations"`
	LearningRate float64   `json:"learning_rate"`
	Seed         uint64    `json:"seed"`
	Loss         float64   `json:"loss"`
	Accuracy     float64   `json:"accuracy"`
	Categories   []string  `json:"categories"`
}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// Driver defines the interface for persisting and retrieving run records.
type Driver interface {
	// Put stores a run. Returns true if the run was newly inserted,
	// false if a run with the same ID already exists, in which case it is a no-op.
	Put(ctx context.Context, run *Run) (bool, error)

	// Get retrieves a run by its ID.
	Get(ctx context.Context, id string) (*Run, error)

	// List returns all runs, newest first.
	List(ctx context.Context) ([]*Run, error)

	// Latest returns the most recently created run.
	Latest(ctx context.Context) (*Run, error)

	// Close closes the store and releases any resources.
	Close() error
}
