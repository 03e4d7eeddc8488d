// Package traincmder provides the train command.
package traincmder

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/charnn/cmd/charnn/cmdutil"
	"github.com/papercomputeco/charnn/pkg/alphabet"
	"github.com/papercomputeco/charnn/pkg/artifact"
	"github.com/papercomputeco/charnn/pkg/cliui"
	"github.com/papercomputeco/charnn/pkg/config"
	"github.com/papercomputeco/charnn/pkg/confusion"
	"github.com/papercomputeco/charnn/pkg/dataset"
	"github.com/papercomputeco/charnn/pkg/eventstream"
	"github.com/papercomputeco/charnn/pkg/logger"
	"github.com/papercomputeco/charnn/pkg/predictor"
	"github.com/papercomputeco/charnn/pkg/rnn"
	"github.com/papercomputeco/charnn/pkg/storage"
	"github.com/papercomputeco/charnn/pkg/trainer"
)

const trainLongDesc string = `Train a character-level recurrent classifier on a names corpus.

The data directory must contain names/<Category>.txt files with one name per
line. Each run is saved under the output directory as <run-id>/model.json
together with the categories it was trained on, and is recorded in the run
store so predict, evaluate, and serve can find it.

Examples:
  charnn train --data data --iterations 100000
  charnn train --hidden 64 --learning-rate 0.01 --seed 7`

const trainShortDesc string = "Train a name classifier"

var flagKeys = []string{
	config.FlagDataPath,
	config.FlagOutputDir,
	config.FlagHiddenSize,
	config.FlagIterations,
	config.FlagLearningRate,
	config.FlagReportPercent,
	config.FlagConfusionSamples,
	config.FlagSeed,
	config.FlagStorageProvider,
	config.FlagSQLite,
	config.FlagBrokers,
	config.FlagTopic,
}

type trainCommander struct {
	cfg    *config.Config
	debug  bool
	logger *slog.Logger
	out    io.Writer

	// flag targets; values are read back through viper
	dataPath, outputDir, storageProvider, sqlitePath, brokers, topic string
	hidden, iterations, confusionSamples, seed                       uint
	learningRate, reportPercent                                      float64
}

func NewTrainCmd() *cobra.Command {
	cmder := &trainCommander{}

	cmd := &cobra.Command{
		Use:   "train",
		Short: trainShortDesc,
		Long:  trainLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.cfg, err = cmdutil.ResolveConfig(cmd, flagKeys...)
			if err != nil {
				return err
			}
			cmder.debug = cmdutil.ReadGlobals(cmd).Debug
			cmder.logger = cmdutil.NewLogger(cmd)
			cmder.out = cmd.OutOrStdout()

			return cmder.run(cmd.Context())
		},
	}

	config.AddStringFlag(cmd, config.Registry, config.FlagDataPath, &cmder.dataPath)
	config.AddStringFlag(cmd, config.Registry, config.FlagOutputDir, &cmder.outputDir)
	config.AddUintFlag(cmd, config.Registry, config.FlagHiddenSize, &cmder.hidden)
	config.AddUintFlag(cmd, config.Registry, config.FlagIterations, &cmder.iterations)
	config.AddFloatFlag(cmd, config.Registry, config.FlagLearningRate, &cmder.learningRate)
	config.AddFloatFlag(cmd, config.Registry, config.FlagReportPercent, &cmder.reportPercent)
	config.AddUintFlag(cmd, config.Registry, config.FlagConfusionSamples, &cmder.confusionSamples)
	config.AddUintFlag(cmd, config.Registry, config.FlagSeed, &cmder.seed)
	config.AddStringFlag(cmd, config.Registry, config.FlagStorageProvider, &cmder.storageProvider)
	config.AddStringFlag(cmd, config.Registry, config.FlagSQLite, &cmder.sqlitePath)
	config.AddStringFlag(cmd, config.Registry, config.FlagBrokers, &cmder.brokers)
	config.AddStringFlag(cmd, config.Registry, config.FlagTopic, &cmder.topic)

	return cmd
}

func (c *trainCommander) run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	a := alphabet.NewDefault()

	var data *dataset.Dataset
	err := cliui.Step(c.out, "Loading "+c.cfg.Data.Path, func() error {
		var err error
		data, err = dataset.Load(c.cfg.Data.Path, a)
		return err
	})
	if err != nil {
		return err
	}
	registry := data.Registry()

	rng, seed := cmdutil.NewRand(uint64(c.cfg.Train.Seed))
	model, err := rnn.New(a.Size(), int(c.cfg.Train.HiddenSize), registry.Len(), rng)
	if err != nil {
		return err
	}

	runID := storage.NewRunID()
	layout := artifact.NewLayout(c.cfg.Output.Dir)
	if err := layout.CreateRunDir(runID); err != nil {
		return err
	}

	logFile, err := os.Create(layout.LogPath(runID))
	if err != nil {
		return fmt.Errorf("creating training log: %w", err)
	}
	defer logFile.Close()

	runLog := logger.Multi(
		c.logger,
		logger.New(logger.WithWriter(logFile), logger.WithJSON(true), logger.WithDebug(c.debug)),
	).With("run_id", runID)

	runLog.Info("training",
		"data", c.cfg.Data.Path,
		"categories", registry.Len(),
		"examples", data.Size(),
		"hidden_size", c.cfg.Train.HiddenSize,
		"iterations", c.cfg.Train.Iterations,
		"learning_rate", c.cfg.Train.LearningRate,
		"seed", seed,
	)

	t, err := trainer.New(model, data, a, rng, trainer.Config{
		Iterations:    int(c.cfg.Train.Iterations),
		LearningRate:  c.cfg.Train.LearningRate,
		ReportPercent: c.cfg.Train.ReportPercent,
		Logger:        runLog,
	})
	if err != nil {
		return err
	}

	result, err := t.Run()
	if err != nil {
		return err
	}
	if err := result.Check(); err != nil {
		return err
	}

	if err := layout.SaveRun(runID, model, registry, a); err != nil {
		return err
	}

	p, err := predictor.New(model, registry, a)
	if err != nil {
		return err
	}
	evaluator, err := confusion.New(p, data, rng)
	if err != nil {
		return err
	}

	var matrix *confusion.Matrix
	err = cliui.Step(c.out, "Evaluating confusion matrix", func() error {
		var err error
		matrix, err = evaluator.Evaluate(int(c.cfg.Train.ConfusionSamples))
		return err
	})
	if err != nil {
		return err
	}

	artifactDir, err := filepath.Abs(layout.RunDir(runID))
	if err != nil {
		return err
	}

	run := &storage.Run{
		ID:           runID,
		CreatedAt:    time.Now().UTC(),
		DataPath:     c.cfg.Data.Path,
		ArtifactDir:  artifactDir,
		HiddenSize:   model.HiddenSize(),
		Iterations:   result.Iterations,
		LearningRate: c.cfg.Train.LearningRate,
		Seed:         seed,
		Loss:         result.Loss,
		Accuracy:     matrix.Accuracy(),
		Categories:   registry.Names(),
	}

	if err := c.record(ctx, run, matrix); err != nil {
		return err
	}

	runLog.Info("training complete",
		"loss", result.Loss,
		"accuracy", matrix.Accuracy(),
		"elapsed", result.Elapsed.String(),
		"artifacts", artifactDir,
	)

	fmt.Fprintln(c.out, cliui.ConfusionTable(matrix.Labels, matrix.At))
	fmt.Fprintf(c.out, "%s %s\n", cliui.KeyStyle.Render("run:"), cliui.ValueStyle.Render(runID))
	fmt.Fprintf(c.out, "%s %s\n", cliui.KeyStyle.Render("mean loss:"), cliui.ValueStyle.Render(fmt.Sprintf("%.4f", result.Loss)))
	fmt.Fprintf(c.out, "%s %s\n", cliui.KeyStyle.Render("accuracy:"), cliui.ValueStyle.Render(fmt.Sprintf("%.1f%%", 100*matrix.Accuracy())))

	return nil
}

// record persists the run and publishes its completion event. A publish
// failure is logged but does not fail the run; the artifacts are already saved.
func (c *trainCommander) record(ctx context.Context, run *storage.Run, matrix *confusion.Matrix) error {
	store, err := cmdutil.OpenRunStore(c.cfg, c.logger)
	if err != nil {
		return err
	}
	defer store.Close()

	if _, err := store.Put(ctx, run); err != nil {
		return fmt.Errorf("recording run: %w", err)
	}

	publisher, err := cmdutil.NewPublisher(c.cfg, c.logger)
	if err != nil {
		return err
	}
	defer publisher.Close()

	event := eventstream.NewRunCompletedEvent(run, matrix.Diagonal(), cmdutil.EventSource())
	if err := publisher.PublishRun(ctx, event); err != nil {
		c.logger.Warn("failed to publish run event", "run_id", run.ID, "error", err)
	}

	return nil
}
