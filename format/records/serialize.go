package records

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lehigh-university-libraries/coauthornet/format"
	"github.com/lehigh-university-libraries/coauthornet/graph"
)

// Export writes one record per node in graph order. Affiliations are
// written verbatim, so embedded line breaks become continuation lines.
func (f *Format) Export(w io.Writer, g *graph.Graph, opts *format.ExportOptions) error {
	if opts == nil {
		opts = format.NewExportOptions()
	}
	sep := delimiterOrDefault(opts.Delimiter)

	bw := bufio.NewWriter(w)
	for _, name := range g.Names() {
		aff, _ := g.Affiliation(name)
		if _, err := fmt.Fprintf(bw, "%s%c%s\n", name, sep, aff); err != nil {
			return err
		}
	}
	return bw.Flush()
}
