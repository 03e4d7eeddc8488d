// Package evaluatecmder provides the evaluate command.
package evaluatecmder

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/charnn/cmd/charnn/cmdutil"
	"github.com/papercomputeco/charnn/pkg/cliui"
	"github.com/papercomputeco/charnn/pkg/config"
	"github.com/papercomputeco/charnn/pkg/confusion"
	"github.com/papercomputeco/charnn/pkg/dataset"
	"github.com/papercomputeco/charnn/pkg/predictor"
)

const evaluateLongDesc string = `Evaluate a trained run with a confusion matrix.

Draws random examples from the data directory, predicts each one, and prints
how often each actual category was guessed as each other category. Rows are
normalized so every sampled row sums to 1.

The data directory must have the same categories, in the same order, as the
run was trained on.

Examples:
  charnn evaluate
  charnn evaluate --samples 2000 --seed 3`

const evaluateShortDesc string = "Print a confusion matrix for a trained run"

var flagKeys = []string{
	config.FlagDataPath,
	config.FlagOutputDir,
	config.FlagEvaluateSamples,
	config.FlagSeed,
	config.FlagStorageProvider,
	config.FlagSQLite,
}

type evaluateCommander struct {
	cfg    *config.Config
	logger *slog.Logger
	out    io.Writer

	runID string

	dataPath, outputDir, storageProvider, sqlitePath string
	samples, seed                                    uint
}

func NewEvaluateCmd() *cobra.Command {
	cmder := &evaluateCommander{}

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: evaluateShortDesc,
		Long:  evaluateLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cmder.cfg, err = cmdutil.ResolveConfig(cmd, flagKeys...)
			if err != nil {
				return err
			}
			cmder.logger = cmdutil.NewLogger(cmd)
			cmder.out = cmd.OutOrStdout()

			return cmder.run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&cmder.runID, cmdutil.FlagRun, "r", "", "Run ID to load (default: latest run)")
	config.AddStringFlag(cmd, config.Registry, config.FlagDataPath, &cmder.dataPath)
	config.AddStringFlag(cmd, config.Registry, config.FlagOutputDir, &cmder.outputDir)
	config.AddUintFlag(cmd, config.Registry, config.FlagEvaluateSamples, &cmder.samples)
	config.AddUintFlag(cmd, config.Registry, config.FlagSeed, &cmder.seed)
	config.AddStringFlag(cmd, config.Registry, config.FlagStorageProvider, &cmder.storageProvider)
	config.AddStringFlag(cmd, config.Registry, config.FlagSQLite, &cmder.sqlitePath)

	return cmd
}

func (c *evaluateCommander) run(ctx context.Context) error {
	store, err := cmdutil.OpenRunStore(c.cfg, c.logger)
	if err != nil {
		return err
	}
	defer store.Close()

	bundle, err := cmdutil.LoadRun(ctx, c.cfg, store, c.runID)
	if err != nil {
		return err
	}

	data, err := dataset.Load(c.cfg.Data.Path, bundle.Alphabet)
	if err != nil {
		return err
	}
	if !data.Registry().Equal(bundle.Registry) {
		return fmt.Errorf("%w: run %s was trained on %v, data has %v",
			predictor.ErrRegistryMismatch, bundle.RunID, bundle.Registry.Names(), data.Registry().Names())
	}

	p, err := predictor.New(bundle.Model, bundle.Registry, bundle.Alphabet)
	if err != nil {
		return err
	}

	rng, seed := cmdutil.NewRand(uint64(c.cfg.Train.Seed))
	evaluator, err := confusion.New(p, data, rng)
	if err != nil {
		return err
	}

	var matrix *confusion.Matrix
	err = cliui.Step(c.out, fmt.Sprintf("Sampling %d examples", c.cfg.Train.ConfusionSamples), func() error {
		var err error
		matrix, err = evaluator.Evaluate(int(c.cfg.Train.ConfusionSamples))
		return err
	})
	if err != nil {
		return err
	}

	c.logger.Debug("evaluated", "run_id", bundle.RunID, "seed", seed, "accuracy", matrix.Accuracy())

	fmt.Fprintln(c.out, cliui.ConfusionTable(matrix.Labels, matrix.At))
	for i, label := range matrix.Labels {
		if !matrix.Sampled(i) {
			fmt.Fprintln(c.out, cliui.DimStyle.Render(fmt.Sprintf("  %s was never sampled", label)))
		}
	}
	fmt.Fprintf(c.out, "%s %s\n", cliui.KeyStyle.Render("accuracy:"), cliui.ValueStyle.Render(fmt.Sprintf("%.1f%%", 100*matrix.Accuracy())))
	return nil
}
