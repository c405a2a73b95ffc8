package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/lehigh-university-libraries/coauthornet/helpers"
)

// maxColumnWidth caps a column so long affiliations don't wrap the terminal.
const maxColumnWidth = 48

// printTable writes rows as aligned columns with a dashed rule under the
// header. Widths are measured in terminal cells so CJK names line up.
func printTable(w io.Writer, header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = helpers.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], min(helpers.Width(cell), maxColumnWidth))
			}
		}
	}

	line := func(cells []string) {
		parts := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = helpers.Truncate(cells[i], widths[i])
			}
			if i == len(widths)-1 {
				parts[i] = cell
			} else {
				parts[i] = helpers.PadRight(cell, widths[i])
			}
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	line(header)
	rule := make([]string, len(widths))
	for i, n := range widths {
		rule[i] = strings.Repeat("-", n)
	}
	line(rule)
	for _, row := range rows {
		line(row)
	}
}
