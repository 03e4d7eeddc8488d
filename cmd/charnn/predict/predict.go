// Package predictcmder provides the predict command.
package predictcmder

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/charnn/cmd/charnn/cmdutil"
	"github.com/papercomputeco/charnn/pkg/cliui"
	"github.com/papercomputeco/charnn/pkg/config"
	"github.com/papercomputeco/charnn/pkg/predictor"
)

const predictLongDesc string = `Predict the most likely origins of a name.

Uses the latest recorded run unless --run is given. Scores are log
probabilities; higher is more likely.

Examples:
  charnn predict Dostoevsky
  charnn predict Satoshi -k 5
  charnn predict Jackson --run 6f1c...`

const predictShortDesc string = "Predict the origin of a name"

var flagKeys = []string{
	config.FlagOutputDir,
	config.FlagStorageProvider,
	config.FlagSQLite,
}

type predictCommander struct {
	cfg    *config.Config
	logger *slog.Logger
	out    io.Writer

	runID string
	k     int

	outputDir, storageProvider, sqlitePath string
}

func NewPredictCmd() *cobra.Command {
	cmder := &predictCommander{}

	cmd := &cobra.Command{
		Use:   "predict <line>",
		Short: predictShortDesc,
		Long:  predictLongDesc,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cmder.cfg, err = cmdutil.ResolveConfig(cmd, flagKeys...)
			if err != nil {
				return err
			}
			cmder.logger = cmdutil.NewLogger(cmd)
			cmder.out = cmd.OutOrStdout()

			return cmder.run(cmd.Context(), args[0])
		},
	}

	cmd.Flags().StringVarP(&cmder.runID, cmdutil.FlagRun, "r", "", "Run ID to load (default: latest run)")
	cmd.Flags().IntVarP(&cmder.k, "top", "k", predictor.DefaultK, "Number of predictions to show")
	config.AddStringFlag(cmd, config.Registry, config.FlagOutputDir, &cmder.outputDir)
	config.AddStringFlag(cmd, config.Registry, config.FlagStorageProvider, &cmder.storageProvider)
	config.AddStringFlag(cmd, config.Registry, config.FlagSQLite, &cmder.sqlitePath)

	return cmd
}

func (c *predictCommander) run(ctx context.Context, line string) error {
	store, err := cmdutil.OpenRunStore(c.cfg, c.logger)
	if err != nil {
		return err
	}
	defer store.Close()

	bundle, err := cmdutil.LoadRun(ctx, c.cfg, store, c.runID)
	if err != nil {
		return err
	}

	p, err := predictor.New(bundle.Model, bundle.Registry, bundle.Alphabet)
	if err != nil {
		return err
	}

	if c.logger.Enabled(ctx, slog.LevelDebug) {
		if normalized, seq, err := bundle.Alphabet.NormalizeAndEncode(line); err == nil {
			c.logger.Debug("encoded input", "normalized", normalized, "indices", seq.Indices())
		}
	}

	preds, err := p.Predict(line, c.k)
	if err != nil {
		return fmt.Errorf("predicting %q: %w", line, err)
	}

	c.logger.Debug("predicted", "run_id", bundle.RunID, "line", line, "k", c.k)

	rows := make([][]string, len(preds))
	for i, pred := range preds {
		rows[i] = []string{fmt.Sprintf("%d", i+1), pred.Category, fmt.Sprintf("%.4f", pred.Score)}
	}

	fmt.Fprintf(c.out, "%s %s\n", cliui.KeyStyle.Render(">"), cliui.ValueStyle.Render(line))
	fmt.Fprintln(c.out, cliui.Table([]string{"#", "CATEGORY", "SCORE"}, rows))
	return nil
}
