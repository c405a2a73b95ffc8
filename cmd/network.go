package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/coauthornet/bib"
	"github.com/lehigh-university-libraries/coauthornet/format"
	csvfmt "github.com/lehigh-university-libraries/coauthornet/format/csv"
	"github.com/lehigh-university-libraries/coauthornet/graph"

	// Register the formats not referenced directly
	_ "github.com/lehigh-university-libraries/coauthornet/format/gexf"
	_ "github.com/lehigh-university-libraries/coauthornet/format/jsongraph"
)

var (
	networkInput       string
	networkOutput      string
	networkNodesOutput string
	networkThreshold   int
	networkFormat      string
	networkDelimiter   string
	networkTop         int
	networkCompact     bool
)

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Build and export a co-authorship network",
	Long: `Build a weighted co-authorship graph from an articles JSON file, keep the
collaborations seen at least --threshold times, and export the result.

Formats:
  csv      edge table (source,target,weight); node table with --nodes-output
  gexf     GEXF 1.3 document for Gephi
  json     nodes and edges as a JSON document
  records  name;affiliation lines, the input of the countries command

The output format defaults to the --output file extension, then csv.
Input defaults to stdin, output defaults to stdout.

Examples:
  coauthornet network -i articles.json -o edges.csv --nodes-output nodes.csv
  coauthornet network -i articles.json --threshold 3 --to gexf -o network.gexf
  coauthornet network -i articles.json --to records -o nodes.txt
  cat articles.json | coauthornet network --to json --top 20`,
	RunE: runNetwork,
}

func init() {
	networkCmd.Flags().StringVarP(&networkInput, "input", "i", "", "Articles JSON file (default: stdin)")
	networkCmd.Flags().StringVarP(&networkOutput, "output", "o", "", "Output file (default: stdout)")
	networkCmd.Flags().StringVar(&networkNodesOutput, "nodes-output", "", "Node table file (csv format only)")
	networkCmd.Flags().IntVar(&networkThreshold, "threshold", 0, "Minimum collaboration count to keep an edge (default from settings)")
	networkCmd.Flags().StringVar(&networkFormat, "to", "", "Output format (csv, gexf, json, records)")
	networkCmd.Flags().StringVar(&networkDelimiter, "delimiter", "", "Field delimiter for csv and records output")
	networkCmd.Flags().IntVar(&networkTop, "top", 10, "Show the N most connected authors on stderr (0 to disable)")
	networkCmd.Flags().BoolVar(&networkCompact, "compact", false, "Disable indentation in json and gexf output")
}

func runNetwork(cmd *cobra.Command, args []string) (err error) {
	threshold := settings.Network.Threshold
	if cmd.Flags().Changed("threshold") {
		threshold = networkThreshold
	}
	if threshold < 1 {
		return fmt.Errorf("threshold must be at least 1, got %d", threshold)
	}

	exporter, err := selectExporter(networkFormat, networkOutput)
	if err != nil {
		return err
	}

	opts := format.NewExportOptions()
	opts.Pretty = !networkCompact
	if networkDelimiter != "" {
		if opts.Delimiter, err = parseDelimiter(networkDelimiter); err != nil {
			return err
		}
	}

	input, _, closeInput, err := openInput(networkInput)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeInput(); cerr != nil && err == nil {
			err = fmt.Errorf("closing input file: %w", cerr)
		}
	}()

	articles, err := bib.ReadArticles(input)
	if err != nil {
		return fmt.Errorf("reading articles: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Parsed %d articles\n", len(articles))

	full := graph.Build(articles)
	filtered := graph.Filter(full, threshold)
	slog.Info("built network",
		"authors", full.NodeCount(),
		"collaborations", full.EdgeCount(),
		"threshold", threshold,
		"kept_authors", filtered.NodeCount(),
		"kept_collaborations", filtered.EdgeCount())

	if networkNodesOutput != "" {
		if exporter.Name() != "csv" {
			return fmt.Errorf("--nodes-output is only supported by the csv format")
		}
		nodes, err := os.Create(networkNodesOutput)
		if err != nil {
			return fmt.Errorf("creating nodes file: %w", err)
		}
		defer func() {
			if cerr := nodes.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing nodes file: %w", cerr)
			}
		}()
		opts.ExtraWriters = map[string]io.Writer{csvfmt.ExtraNodes: nodes}
	}

	output, closeOutput, err := createOutput(networkOutput)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOutput(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}()

	if err := exporter.Export(output, filtered, opts); err != nil {
		return fmt.Errorf("exporting %s: %w", exporter.Name(), err)
	}

	if networkTop > 0 {
		printNetworkSummary(os.Stderr, full, filtered, networkTop)
	}
	return nil
}

// selectExporter picks the named format, else the one matching the output
// file extension, else csv.
func selectExporter(name, outputPath string) (format.Exporter, error) {
	if name == "" && outputPath != "" {
		if f, err := format.DetectFormat(outputPath); err == nil {
			name = f.Name()
		}
	}
	if name == "" {
		name = "csv"
	}
	exporter, err := format.GetExporter(name)
	if err != nil {
		return nil, fmt.Errorf("unknown output format %q: %w", name, err)
	}
	return exporter, nil
}

func printNetworkSummary(w io.Writer, full, filtered *graph.Graph, top int) {
	before := graph.Summarize(full)
	after := graph.Summarize(filtered)
	fmt.Fprintf(w, "Authors: %d (%d after filtering)\n", before.Nodes, after.Nodes)
	fmt.Fprintf(w, "Collaborations: %d (%d after filtering), max weight %d\n\n", before.Edges, after.Edges, after.MaxWeight)

	authors := graph.TopAuthors(filtered, top)
	if len(authors) == 0 {
		return
	}
	rows := make([][]string, len(authors))
	for i, a := range authors {
		aff, _ := filtered.Affiliation(a.Name)
		rows[i] = []string{a.Name, strconv.Itoa(a.Degree), strconv.Itoa(a.Strength), aff}
	}
	printTable(w, []string{"Author", "Co-authors", "Weight", "Affiliation"}, rows)
}
