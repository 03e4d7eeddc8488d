package configcmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/charnn/pkg/cliui"
	"github.com/papercomputeco/charnn/pkg/config"
	"github.com/papercomputeco/charnn/pkg/dotdir"
)

const setLongDesc string = `Set a configuration value.

Sets the given key to the provided value in the config.toml file
stored in the .charnn/ directory. When no .charnn/ directory exists yet,
one is created in the current directory.

Examples:
  charnn config set data.path /srv/names
  charnn config set train.learning_rate 0.01
  charnn config set storage.provider memory`

const setShortDesc string = "Set a configuration value"

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "set <key> <value>",
		Short:             setShortDesc,
		Long:              setLongDesc,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if err := validateKey(key); err != nil {
				return err
			}

			cfger, err := openConfiger(cmd)
			if err != nil {
				return err
			}

			if cfger.GetTarget() == "" {
				dir, err := dotdir.NewManager().InitLocal()
				if err != nil {
					return err
				}
				if cfger, err = config.NewConfiger(dir); err != nil {
					return fmt.Errorf("loading config: %w", err)
				}
			}

			if err := cfger.SetConfigValue(key, value); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printTarget(out, cfger)
			fmt.Fprintf(out, "  %s Set %s = %s\n\n",
				cliui.SuccessMark,
				cliui.KeyStyle.Render(key),
				cliui.ValueStyle.Render(value),
			)
			return nil
		},
	}

	return cmd
}
