// Package runscmder provides the runs command for listing recorded training runs.
package runscmder

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/charnn/cmd/charnn/cmdutil"
	"github.com/papercomputeco/charnn/pkg/cliui"
	"github.com/papercomputeco/charnn/pkg/config"
	"github.com/papercomputeco/charnn/pkg/utils"
)

const runsLongDesc string = `List recorded training runs, newest first.

Examples:
  charnn runs
  charnn runs --sqlite results/runs.db`

const runsShortDesc string = "List recorded training runs"

var flagKeys = []string{
	config.FlagOutputDir,
	config.FlagStorageProvider,
	config.FlagSQLite,
}

type runsCommander struct {
	outputDir, storageProvider, sqlitePath string
}

func NewRunsCmd() *cobra.Command {
	cmder := &runsCommander{}

	cmd := &cobra.Command{
		Use:   "runs",
		Short: runsShortDesc,
		Long:  runsLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := cmdutil.ResolveConfig(cmd, flagKeys...)
			if err != nil {
				return err
			}
			return runList(cmd.Context(), cfg, cmd, cmd.OutOrStdout())
		},
	}

	config.AddStringFlag(cmd, config.Registry, config.FlagOutputDir, &cmder.outputDir)
	config.AddStringFlag(cmd, config.Registry, config.FlagStorageProvider, &cmder.storageProvider)
	config.AddStringFlag(cmd, config.Registry, config.FlagSQLite, &cmder.sqlitePath)

	return cmd
}

func runList(ctx context.Context, cfg *config.Config, cmd *cobra.Command, out io.Writer) error {
	store, err := cmdutil.OpenRunStore(cfg, cmdutil.NewLogger(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(ctx)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(out, cliui.DimStyle.Render("No runs recorded yet."))
		return nil
	}

	rows := make([][]string, len(runs))
	for i, run := range runs {
		rows[i] = []string{
			run.ID,
			run.CreatedAt.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%d", run.Iterations),
			fmt.Sprintf("%d", run.HiddenSize),
			fmt.Sprintf("%.4f", run.Loss),
			fmt.Sprintf("%.1f%%", 100*run.Accuracy),
			utils.Truncate(fmt.Sprintf("%d: %v", len(run.Categories), run.Categories), 40),
		}
	}

	fmt.Fprintln(out, cliui.Table(
		[]string{"ID", "CREATED", "ITERATIONS", "HIDDEN", "LOSS", "ACCURACY", "CATEGORIES"},
		rows,
	))
	return nil
}
