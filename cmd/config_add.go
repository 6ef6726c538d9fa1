package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var configAddCmd = &cobra.Command{
	Use:   "add [label]",
	Short: "Create a new config profile with default values",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		var label string
		if len(args) == 1 {
			label = args[0]
		} else {
			reader := bufio.NewReader(cmd.InOrStdin())
			fmt.Fprint(out, "Enter label for new config: ")
			label, _ = reader.ReadString('\n')
		}

		label = strings.TrimSpace(label)
		if label == "" {
			return fmt.Errorf("label cannot be empty")
		}

		path, err := store.Create(label)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Created new config: %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configAddCmd)
}
