package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var forceRemove bool

var configRemoveCmd = &cobra.Command{
	Use:   "remove <label>",
	Short: "Remove a config (<config_label>)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		label := args[0]

		active, _ := store.CurrentLabel()

		if label == active && !forceRemove {
			fmt.Fprintf(out, "Config %q is currently active. Remove it anyway? [y/N]: ", label)

			reader := bufio.NewReader(cmd.InOrStdin())
			resp, _ := reader.ReadString('\n')
			resp = strings.TrimSpace(strings.ToLower(resp))

			if resp != "y" && resp != "yes" {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
		}

		if err := store.Remove(label); err != nil {
			return err
		}

		if label == active {
			if now, err := store.CurrentLabel(); err == nil {
				fmt.Fprintln(out, "Fallback switched to:", now)
			} else {
				fmt.Fprintln(out, "No config is active now.")
			}
		}
		fmt.Fprintf(out, "Removed configuration %q\n", label)
		return nil
	},
}

func init() {
	configRemoveCmd.Flags().BoolVarP(&forceRemove, "force", "f", false, "remove the active config without asking")
	configCmd.AddCommand(configRemoveCmd)
}
