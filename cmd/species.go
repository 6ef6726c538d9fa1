package cmd

import (
	"github.com/brogergvhs/shinydex/internal/config"
	"github.com/brogergvhs/shinydex/internal/shiny"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var speciesCmd = &cobra.Command{
	Use:   "species",
	Short: "List the species that get scraped and how their sprites are labeled",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := config.LoadMerged(config.Options{
			Store:        &store,
			IgnoreConfig: flagIgnoreConfig,
		})
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.AppendHeader(table.Row{"#", "Species", "Labeling", "Excluded"})

		for i, sp := range shiny.Species() {
			excluded := ""
			if shiny.IsExcluded(sp, cfg.Exclude) {
				excluded = "yes"
			}
			t.AppendRow(table.Row{i + 1, sp, shiny.LabelerFor(sp).Kind(), excluded})
		}

		t.SetStyle(table.StyleRounded)
		t.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(speciesCmd)
}
