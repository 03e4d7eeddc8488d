package configcmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/charnn/pkg/cliui"
	"github.com/papercomputeco/charnn/pkg/config"
)

const listLongDesc string = `List all configuration values.

Displays all configuration keys and their current values from the
config.toml file stored in the .charnn/ directory, with defaults filled in.

Examples:
  charnn config list`

const listShortDesc string = "List all configuration values"

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: listShortDesc,
		Long:  listLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfger, err := openConfiger(cmd)
			if err != nil {
				return err
			}

			keys := config.ValidConfigKeys()
			rows := make([][]string, 0, len(keys))
			for _, key := range keys {
				value, err := cfger.GetConfigValue(key)
				if err != nil {
					return err
				}
				if value == "" {
					value = "<not set>"
				}
				rows = append(rows, []string{key, value})
			}

			out := cmd.OutOrStdout()
			printTarget(out, cfger)
			fmt.Fprintln(out, cliui.Table([]string{"KEY", "VALUE"}, rows))
			return nil
		},
	}

	return cmd
}
