package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/coauthornet/format"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List available export formats",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Available formats:")

		rows := [][]string{}
		for _, name := range format.List() {
			f, _ := format.Get(name)
			var caps []string
			if _, ok := f.(format.Exporter); ok {
				caps = append(caps, "export")
			}
			if _, ok := f.(format.NodeParser); ok {
				caps = append(caps, "nodes")
			}
			rows = append(rows, []string{
				name,
				strings.Join(caps, ","),
				"." + strings.Join(f.Extensions(), ", ."),
				f.Description(),
			})
		}
		printTable(out, []string{"Name", "Supports", "Extensions", "Description"}, rows)
		return nil
	},
}
