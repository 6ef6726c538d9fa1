package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/brogergvhs/shinydex/internal/shiny"
	"github.com/brogergvhs/shinydex/internal/util"

	"github.com/spf13/cobra"
)

var (
	flagMappingOut     string
	flagMappingPokedex string
	flagMappingMerge   bool
)

var mappingCmd = &cobra.Command{
	Use:   "mapping <links_file>",
	Short: "Turn a scraped links file into a JSON sprite mapping keyed by species and form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		lines, err := util.ReadLines(args[0])
		if err != nil {
			return fmt.Errorf("cannot read links file: %w", err)
		}

		records := make([]shiny.Record, 0, len(lines))
		for _, l := range lines {
			r, err := shiny.ParseRecord(l)
			if err != nil {
				fmt.Fprintf(out, "skipping: %v\n", err)
				continue
			}
			records = append(records, r)
		}

		var ids map[string]int
		if flagMappingPokedex != "" {
			if ids, err = shiny.LoadPokedex(flagMappingPokedex); err != nil {
				return err
			}
		}

		base := map[string]string{}
		if flagMappingMerge {
			if base, err = shiny.LoadMapping(flagMappingOut); err != nil {
				return err
			}
		}

		m := shiny.BuildMapping(records, ids, base)
		for _, name := range m.Unknown {
			fmt.Fprintf(out, "Pokemon not found: %s\n", name)
		}

		data, err := json.MarshalIndent(m.Entries, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(flagMappingOut, data, 0644); err != nil {
			return fmt.Errorf("write mapping: %w", err)
		}

		fmt.Fprintf(out, "Total entries in mapping: %d\n", len(m.Entries))
		fmt.Fprintf(out, "Processed %d unique species/forms\n", m.Processed)
		fmt.Fprintf(out, "Updated file: %s\n", flagMappingOut)
		return nil
	},
}

func init() {
	mappingCmd.Flags().StringVar(&flagMappingOut, "out", "shiny-mapping.json", "JSON mapping file to write")
	mappingCmd.Flags().StringVar(&flagMappingPokedex, "pokedex", "", "pokedex JSON used to key entries by national dex id")
	mappingCmd.Flags().BoolVar(&flagMappingMerge, "merge", false, "merge into the existing mapping file instead of replacing it")

	rootCmd.AddCommand(mappingCmd)
}
