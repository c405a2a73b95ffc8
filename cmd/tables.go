package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/coauthornet/affiliation"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Inspect country resolution tables",
	Long: `Show and check the abbreviation and alias tables used to resolve
affiliations. A custom tables file replaces the built-in one; start from
"coauthornet tables show > tables.yaml" and edit.`,
}

var tablesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective tables as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			tables *affiliation.Tables
			err    error
		)
		if settings.Countries.Tables != "" {
			tables, err = affiliation.LoadTables(settings.Countries.Tables)
		} else {
			tables, err = affiliation.DefaultTables()
		}
		if err != nil {
			return err
		}

		out, err := yaml.Marshal(tables)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

var tablesValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a tables file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tables, err := affiliation.LoadTables(args[0])
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %d abbreviations, %d aliases\n", args[0], len(tables.Abbreviations), len(tables.Aliases))

		catalogue, err := affiliation.DefaultCatalogue()
		if err != nil {
			return err
		}
		for _, m := range append(tables.Abbreviations, tables.Aliases...) {
			if _, err := catalogue.Search(m.Country); err != nil {
				fmt.Fprintf(out, "  note: %q maps to %q, which is not a catalogue country name\n", m.Key, m.Country)
			}
		}
		fmt.Fprintln(out, "OK")
		return nil
	},
}

func init() {
	tablesCmd.AddCommand(tablesShowCmd)
	tablesCmd.AddCommand(tablesValidateCmd)
}
