package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/brogergvhs/shinydex/internal/config"

	"github.com/spf13/cobra"
)

var flagInitYes bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the Default config and make it active",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		defaultPath := store.PathFor(config.DefaultLabel)

		if _, err := os.Stat(defaultPath); err == nil {
			fmt.Fprintln(out, "Configuration already exists at:")
			fmt.Fprintln(out, "  ", defaultPath)
			fmt.Fprintln(out, "Use `shinydex config reset` to recreate it.")
			return nil
		}

		fmt.Fprintln(out, "Configuration file will be saved at:")
		fmt.Fprintln(out, "  ", defaultPath)
		fmt.Fprintln(out)

		fmt.Fprintln(out, "Default configuration:")
		config.DefaultConfig().Print(out)
		fmt.Fprintln(out)

		if !flagInitYes {
			reader := bufio.NewReader(cmd.InOrStdin())
			fmt.Fprintf(out, "Create Default config at %s? [y/N]: ", defaultPath)
			resp, _ := reader.ReadString('\n')
			resp = strings.TrimSpace(strings.ToLower(resp))

			if resp != "y" && resp != "yes" {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
		}

		path, err := store.InitDefault()
		if err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}

		fmt.Fprintln(out, "Config created at:", path)
		fmt.Fprintln(out, "This config is now active (label: Default).")

		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&flagInitYes, "yes", "y", false, "don't ask for confirmation")
	configCmd.AddCommand(configInitCmd)
}
