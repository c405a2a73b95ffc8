package cmd

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/coauthornet/affiliation"
	"github.com/lehigh-university-libraries/coauthornet/format"
	csvfmt "github.com/lehigh-university-libraries/coauthornet/format/csv"
	"github.com/lehigh-university-libraries/coauthornet/format/records"
)

var (
	countriesInput        string
	countriesOutput       string
	countriesFrom         string
	countriesTables       string
	countriesDelimiter    string
	countriesOutDelimiter string
	countriesVerbose      bool
)

var countriesCmd = &cobra.Command{
	Use:   "countries",
	Short: "Resolve each author's affiliation to a country",
	Long: `Read a node table of authors and affiliations and write the country of
each author as an id;country table.

The input is normally the name;affiliation record file written by
"network --to records"; csv and json node tables are detected from content.
Authors whose affiliation cannot be placed get the country "Unknown".

Input defaults to stdin, output defaults to stdout.

Examples:
  coauthornet countries -i nodes.txt -o author_countries.csv
  coauthornet countries -i nodes.csv --from csv --delimiter , --verbose
  coauthornet countries -i nodes.txt --tables my-tables.yaml`,
	RunE: runCountries,
}

func init() {
	countriesCmd.Flags().StringVarP(&countriesInput, "input", "i", "", "Node table file (default: stdin)")
	countriesCmd.Flags().StringVarP(&countriesOutput, "output", "o", "", "Output file (default: stdout)")
	countriesCmd.Flags().StringVar(&countriesFrom, "from", "", "Input format (records, csv, json; default: detect)")
	countriesCmd.Flags().StringVar(&countriesTables, "tables", "", "Abbreviation and alias tables YAML (default: built in)")
	countriesCmd.Flags().StringVar(&countriesDelimiter, "delimiter", "", "Input field delimiter (default from settings)")
	countriesCmd.Flags().StringVar(&countriesOutDelimiter, "out-delimiter", ";", "Output field delimiter")
	countriesCmd.Flags().BoolVarP(&countriesVerbose, "verbose", "v", false, "Show resolution statistics")
}

// buildResolver loads the tables from path (flag, then settings, then the
// built-in defaults) and the embedded country catalogue.
func buildResolver(path string) (*affiliation.Resolver, error) {
	if path == "" {
		path = settings.Countries.Tables
	}

	catalogue, err := affiliation.DefaultCatalogue()
	if err != nil {
		return nil, fmt.Errorf("loading country catalogue: %w", err)
	}

	var tables *affiliation.Tables
	if path != "" {
		tables, err = affiliation.LoadTables(path)
	} else {
		tables, err = affiliation.DefaultTables()
	}
	if err != nil {
		return nil, fmt.Errorf("loading tables: %w", err)
	}
	slog.Debug("loaded resolver tables", "path", path, "abbreviations", len(tables.Abbreviations), "aliases", len(tables.Aliases))

	return affiliation.NewResolver(tables, catalogue), nil
}

// selectNodeParser returns the named parser, or detects one from content,
// falling back to the record format.
func selectNodeParser(name string, content []byte) (format.NodeParser, error) {
	if name != "" {
		p, err := format.GetNodeParser(name)
		if err != nil {
			return nil, fmt.Errorf("unknown input format %q: %w", name, err)
		}
		return p, nil
	}
	if p, err := format.DetectNodeParser(content); err == nil {
		return p, nil
	}
	return format.GetNodeParser((&records.Format{}).Name())
}

func runCountries(cmd *cobra.Command, args []string) (err error) {
	outDelimiter, err := parseDelimiter(countriesOutDelimiter)
	if err != nil {
		return err
	}

	resolver, err := buildResolver(countriesTables)
	if err != nil {
		return err
	}

	input, inputName, closeInput, err := openInput(countriesInput)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeInput(); cerr != nil && err == nil {
			err = fmt.Errorf("closing input file: %w", cerr)
		}
	}()

	content, err := io.ReadAll(input)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	parser, err := selectNodeParser(countriesFrom, content)
	if err != nil {
		return err
	}

	parseOpts := format.NewParseOptions()
	parseOpts.SourceName = inputName
	delimiter := countriesDelimiter
	if delimiter == "" && parser.Name() == (&records.Format{}).Name() {
		delimiter = settings.Countries.Delimiter
	}
	if delimiter != "" {
		if parseOpts.Delimiter, err = parseDelimiter(delimiter); err != nil {
			return err
		}
	}

	table, err := parser.ParseNodes(bytes.NewReader(content), parseOpts)
	if err != nil {
		return fmt.Errorf("parsing %s node table: %w", parser.Name(), err)
	}
	fmt.Fprintf(os.Stderr, "Parsed %d authors\n", table.Len())

	rows := make([]csvfmt.CountryRecord, 0, table.Len())
	tiers := make(map[string]int)
	countries := make(map[string]int)
	for _, name := range table.Names() {
		aff, _ := table.Get(name)
		m := resolver.Match(aff)
		tiers[m.Tier]++
		countries[m.Country]++
		if m.Country == affiliation.Unknown {
			slog.Debug("unresolved affiliation", "author", name, "affiliation", aff)
		}
		rows = append(rows, csvfmt.CountryRecord{Name: name, Country: m.Country})
	}

	output, closeOutput, err := createOutput(countriesOutput)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOutput(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}()

	if err := csvfmt.WriteCountries(output, rows, outDelimiter); err != nil {
		return fmt.Errorf("writing countries: %w", err)
	}

	unknown := countries[affiliation.Unknown]
	fmt.Fprintf(os.Stderr, "Resolved %d of %d authors (%d Unknown)\n", len(rows)-unknown, len(rows), unknown)

	if countriesVerbose {
		printResolutionSummary(os.Stderr, resolver.TierNames(), tiers, countries)
	}
	return nil
}

func printResolutionSummary(w io.Writer, tierOrder []string, tiers, countries map[string]int) {
	order := append([]string{affiliation.TierEmpty}, tierOrder...)
	order = append(order, affiliation.TierNone)

	tierRows := make([][]string, 0, len(order))
	for _, t := range order {
		if tiers[t] > 0 {
			tierRows = append(tierRows, []string{t, strconv.Itoa(tiers[t])})
		}
	}
	fmt.Fprintln(w)
	printTable(w, []string{"Tier", "Authors"}, tierRows)

	names := make([]string, 0, len(countries))
	for c := range countries {
		names = append(names, c)
	}
	sort.Slice(names, func(i, j int) bool {
		if countries[names[i]] != countries[names[j]] {
			return countries[names[i]] > countries[names[j]]
		}
		return names[i] < names[j]
	})
	countryRows := make([][]string, len(names))
	for i, c := range names {
		countryRows[i] = []string{c, strconv.Itoa(countries[c])}
	}
	fmt.Fprintln(w)
	printTable(w, []string{"Country", "Authors"}, countryRows)
}
