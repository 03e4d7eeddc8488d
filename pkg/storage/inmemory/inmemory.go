// Package inmemory provides a process-local run store.
package inmemory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/papercomputeco/charnn/pkg/storage"
)

// Driver implements storage.Driver using an in-memory map.
type Driver struct {
	// mu is a read write sync mutex for locking the mapping of runs
	mu sync.RWMutex

	// runs is keyed by run ID
	runs map[string]*storage.Run
}

// NewDriver creates a new in-memory store.
func NewDriver() *Driver {
	return &Driver{
		runs: make(map[string]*storage.Run),
	}
}

// Put stores a run. Returns true if the run was newly inserted.
func (s *Driver) Put(_ context.Context, run *storage.Run) (bool, error) {
	if run == nil {
		return false, storage.ErrNilRun
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.runs[run.ID]; ok {
		return false, nil
	}

	stored := *run
	stored.Categories = slices.Clone(run.Categories)
	s.runs[run.ID] = &stored
	return true, nil
}

// Get retrieves a run by its ID.
func (s *Driver) Get(_ context.Context, id string) (*storage.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.runs[id]
	if !ok {
		return nil, storage.ErrNotFound{ID: id}
	}

	out := *run
	return &out, nil
}

// List returns all runs, newest first.
func (s *Driver) List(_ context.Context) ([]*storage.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*storage.Run, 0, len(s.runs))
	for _, run := range s.runs {
		out := *run
		result = append(result, &out)
	}

	slices.SortFunc(result, func(a, b *storage.Run) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return result, nil
}

// Latest returns the most recently created run.
func (s *Driver) Latest(ctx context.Context) (*storage.Run, error) {
	runs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, storage.ErrNotFound{}
	}
	return runs[0], nil
}

// Count returns the number of stored runs.
func (s *Driver) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.runs)
}

// Close is a no-op for the in-memory store.
func (s *Driver) Close() error {
	return nil
}
