// Package entdriver
package entdriver

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"

	"github.com/papercomputeco/charnn/pkg/storage"
	"github.com/papercomputeco/charnn/pkg/storage/ent"
	"github.com/papercomputeco/charnn/pkg/storage/ent/hook"
	"github.com/papercomputeco/charnn/pkg/storage/ent/run"
)

// RunDriver provides run storage operations using an ent client.
// Backend drivers embed it and own the client lifecycle.
type RunDriver struct {
	Client *ent.Client
}

// New wraps client in a RunDriver. Run rows are write-once, so the
// client rejects every update and delete mutation from here on.
func New(client *ent.Client) *RunDriver {
	client.Run.Use(hook.Reject(ent.OpUpdate | ent.OpUpdateOne | ent.OpDelete | ent.OpDeleteOne))
	return &RunDriver{Client: client}
}

// Put stores a run. Returns true if the run was newly inserted,
// false if a run with the same ID already exists.
func (d *RunDriver) Put(ctx context.Context, r *storage.Run) (bool, error) {
	if r == nil {
		return false, storage.ErrNilRun
	}

	exists, err := d.Client.Run.Query().
		Where(run.ID(r.ID)).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check existence: %w", err)
	}
	if exists {
		return false, nil
	}

	create := d.Client.Run.Create().
		SetID(r.ID).
		SetDataPath(r.DataPath).
		SetArtifactDir(r.ArtifactDir).
		SetHiddenSize(r.HiddenSize).
		SetIterations(r.Iterations).
		SetLearningRate(r.LearningRate).
		SetSeed(int64(r.Seed)).
		SetLoss(r.Loss).
		SetAccuracy(r.Accuracy).
		SetCategories(r.Categories)

	if !r.CreatedAt.IsZero() {
		create.SetCreatedAt(r.CreatedAt)
	}

	if err := create.Exec(ctx); err != nil {
		return false, fmt.Errorf("could not execute run creation: %w", err)
	}

	return true, nil
}

// Get retrieves a run by its ID.
func (d *RunDriver) Get(ctx context.Context, id string) (*storage.Run, error) {
	entRun, err := d.Client.Run.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound{ID: id}
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return entRunToRun(entRun), nil
}

// List returns all runs, newest first. Ties break on ID.
func (d *RunDriver) List(ctx context.Context) ([]*storage.Run, error) {
	entRuns, err := d.newestFirst().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}

	runs := make([]*storage.Run, 0, len(entRuns))
	for _, r := range entRuns {
		runs = append(runs, entRunToRun(r))
	}
	return runs, nil
}

// Latest returns the most recently created run.
func (d *RunDriver) Latest(ctx context.Context) (*storage.Run, error) {
	entRun, err := d.newestFirst().First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to get latest run: %w", err)
	}
	return entRunToRun(entRun), nil
}

// Close closes the ent client.
func (d *RunDriver) Close() error {
	return d.Client.Close()
}

func (d *RunDriver) newestFirst() *ent.RunQuery {
	return d.Client.Run.Query().
		Order(run.ByCreatedAt(sql.OrderDesc()), run.ByID())
}

func entRunToRun(r *ent.Run) *storage.Run {
	return &storage.Run{
		ID:           r.ID,
		CreatedAt:    r.CreatedAt.UTC(),
		DataPath:     r.DataPath,
		ArtifactDir:  r.ArtifactDir,
		HiddenSize:   r.HiddenSize,
		Iterations:   r.Iterations,
		LearningRate: r.LearningRate,
		Seed:         uint64(r.Seed),
		Loss:         r.Loss,
		Accuracy:     r.Accuracy,
		Categories:   r.Categories,
	}
}
