package storage

import "errors"

// ErrNilRun is returned when storing a nil run.
var ErrNilRun = errors.New("cannot store nil run")

// ErrNotFound is returned when a run doesn't exist in the store.
// An empty ID means the store has no runs at all.
type ErrNotFound struct {
	ID string
}

func (e ErrNotFound) Error() string {
	if e.ID == "" {
		return "run not found"
	}

	return "run not found: " + e.ID
}
