package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resolveTables string

var resolveCmd = &cobra.Command{
	Use:   "resolve <affiliation>...",
	Short: "Resolve affiliations to countries",
	Long: `Resolve one or more affiliation strings and print the country and the
resolution tier that produced it, separated by a tab.

Examples:
  coauthornet resolve "Seoul National University, Korea"
  coauthornet resolve "Dept of Physics, MIT, Cambridge, MA, USA" "Université Paris-Saclay, France"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := buildResolver(resolveTables)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, aff := range args {
			m := resolver.Match(aff)
			fmt.Fprintf(out, "%s\t%s\n", m.Country, m.Tier)
		}
		return nil
	},
}

func init() {
	resolveCmd.Flags().StringVar(&resolveTables, "tables", "", "Abbreviation and alias tables YAML (default: built in)")
}
