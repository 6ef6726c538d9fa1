package cmd

import (
	"fmt"

	"github.com/brogergvhs/shinydex/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective config, or manage config profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		cfg, used, err := config.LoadMerged(config.Options{
			Store:        &store,
			IgnoreConfig: flagIgnoreConfig,
			Debug:        flagDebug,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Loaded config from:\n  %s\n\n", used)
		if used == "(default config in memory)" {
			fmt.Fprintln(out, "Run `shinydex config init` to create an actual config")
			fmt.Fprintln(out)
		}
		cfg.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
