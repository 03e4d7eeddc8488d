// Package configcmder provides the config command for managing persistent
// charnn configuration stored in the .charnn/ directory.
package configcmder

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/charnn/cmd/charnn/cmdutil"
	"github.com/papercomputeco/charnn/pkg/cliui"
	"github.com/papercomputeco/charnn/pkg/config"
)

const configLongDesc string = `Manage persistent charnn configuration.

Configuration is stored as config.toml in the .charnn/ directory and provides
default values for command flags. CLI flags and CHARNN_* environment
variables always take precedence over config file values.

Keys use dotted notation matching the TOML section structure:
  data.path, output.dir,
  train.hidden_size, train.iterations, train.learning_rate,
  train.report_percent, train.confusion_samples, train.seed,
  serve.listen, storage.provider, storage.sqlite_path,
  eventstream.brokers, eventstream.topic

Use subcommands to get, set, or list configuration values:
  charnn config set <key> <value>    Set a configuration value
  charnn config get <key>            Get a configuration value
  charnn config list                 List all configuration values

Examples:
  charnn config set train.hidden_size 256
  charnn config set eventstream.brokers localhost:9092
  charnn config get train.learning_rate
  charnn config list`

const configShortDesc string = "Manage persistent charnn configuration"

func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: configShortDesc,
		Long:  configLongDesc,
	}

	cmd.AddCommand(newSetCmd())
	cmd.AddCommand(newGetCmd())
	cmd.AddCommand(newListCmd())

	return cmd
}

func validateKey(key string) error {
	if !config.IsValidConfigKey(key) {
		return fmt.Errorf("unknown config key: %q\n\nValid keys: %s",
			key, strings.Join(config.ValidConfigKeys(), ", "))
	}
	return nil
}

func completeKeys(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return config.ValidConfigKeys(), cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

func openConfiger(cmd *cobra.Command) (*config.Configer, error) {
	cfger, err := config.NewConfiger(cmdutil.ReadGlobals(cmd).ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfger, nil
}

func printTarget(out io.Writer, cfger *config.Configer) {
	if target := cfger.GetTarget(); target != "" {
		fmt.Fprintf(out, "\n  %s %s\n\n",
			cliui.KeyStyle.Render("Config file:"),
			cliui.DimStyle.Render(target),
		)
		return
	}
	fmt.Fprintf(out, "\n  %s\n\n", cliui.DimStyle.Render("No config file found. Using defaults."))
}
