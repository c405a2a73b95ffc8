package main

import (
	"github.com/lehigh-university-libraries/coauthornet/cmd"

	// Register format plugins
	_ "github.com/lehigh-university-libraries/coauthornet/format/csv"
	_ "github.com/lehigh-university-libraries/coauthornet/format/gexf"
	_ "github.com/lehigh-university-libraries/coauthornet/format/jsongraph"
	_ "github.com/lehigh-university-libraries/coauthornet/format/records"
)

func main() {
	cmd.Execute()
}
