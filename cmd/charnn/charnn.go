// Package charnncmder
package charnncmder

import (
	"github.com/spf13/cobra"

	"github.com/papercomputeco/charnn/cmd/charnn/cmdutil"
	configcmder "github.com/papercomputeco/charnn/cmd/charnn/config"
	evaluatecmder "github.com/papercomputeco/charnn/cmd/charnn/evaluate"
	predictcmder "github.com/papercomputeco/charnn/cmd/charnn/predict"
	runscmder "github.com/papercomputeco/charnn/cmd/charnn/runs"
	servecmder "github.com/papercomputeco/charnn/cmd/charnn/serve"
	traincmder "github.com/papercomputeco/charnn/cmd/charnn/train"
	versioncmder "github.com/papercomputeco/charnn/cmd/version"
)

const charnnLongDesc string = `charnn classifies names by language of origin with a character-level
recurrent network.

Typical workflow:
  charnn train --data data       Train on data/names/<Category>.txt
  charnn predict Dostoevsky      Show the top 3 guesses
  charnn evaluate                Print a confusion matrix
  charnn serve                   Serve predictions over HTTP`

const charnnShortDesc string = "charnn - name origin classifier"

func NewCharnnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "charnn",
		Short:        charnnShortDesc,
		Long:         charnnLongDesc,
		SilenceUsage: true,
	}

	// Global flags
	AddGlobalFlags(cmd)

	// Add subcommands
	cmd.AddCommand(traincmder.NewTrainCmd())
	cmd.AddCommand(predictcmder.NewPredictCmd())
	cmd.AddCommand(evaluatecmder.NewEvaluateCmd())
	cmd.AddCommand(servecmder.NewServeCmd())
	cmd.AddCommand(runscmder.NewRunsCmd())
	cmd.AddCommand(configcmder.NewConfigCmd())
	cmd.AddCommand(versioncmder.NewVersionCmd())

	return cmd
}

// AddGlobalFlags registers the persistent flags every charnn binary shares.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().Bool(cmdutil.FlagDebug, false, "Enable debug logging")
	cmd.PersistentFlags().Bool(cmdutil.FlagJSONLogs, false, "Write logs as JSON")
	cmd.PersistentFlags().String(cmdutil.FlagConfigDir, "", "Directory holding config.toml (default: ./.charnn or ~/.charnn)")
}
