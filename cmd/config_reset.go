package cmd

import (
	"fmt"

	"github.com/brogergvhs/shinydex/internal/config"

	"github.com/spf13/cobra"
)

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the active config to default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		activePath, err := store.ActivePath()
		if err != nil {
			return fmt.Errorf("%w (run `shinydex config init` first)", err)
		}

		if err := config.SaveYAML(config.DefaultConfig(), activePath); err != nil {
			return err
		}

		fmt.Fprintf(out, "Reset active config: %s\n", activePath)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)
}
