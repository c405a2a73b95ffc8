package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/coauthornet/bib"
	"github.com/lehigh-university-libraries/coauthornet/pubmed"
)

var (
	fetchTerm      string
	fetchRetMax    int
	fetchBatchSize int
	fetchEmail     string
	fetchAPIKey    string
	fetchOutput    string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download articles from PubMed",
	Long: `Search PubMed and download the matching articles with their authors and
affiliations as an articles JSON file.

Requests are batched and spaced to respect NCBI's rate limit. Set an email
address (NCBI asks for one) and optionally an API key with flags, the
settings file, or COAUTHORNET_EMAIL / COAUTHORNET_API_KEY.

Output defaults to stdout.

Examples:
  coauthornet fetch --term "crispr AND 2023[dp]" -o articles.json
  coauthornet fetch --term "malaria vaccine" --retmax 500 --email me@example.org`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVarP(&fetchTerm, "term", "t", "", "PubMed search query")
	fetchCmd.Flags().IntVar(&fetchRetMax, "retmax", 0, "Maximum number of articles (default from settings)")
	fetchCmd.Flags().IntVar(&fetchBatchSize, "batch-size", 0, "Articles per efetch request (default from settings)")
	fetchCmd.Flags().StringVar(&fetchEmail, "email", "", "Contact email sent to NCBI")
	fetchCmd.Flags().StringVar(&fetchAPIKey, "api-key", "", "NCBI API key")
	fetchCmd.Flags().StringVarP(&fetchOutput, "output", "o", "", "Output file (default: stdout)")
	_ = fetchCmd.MarkFlagRequired("term")
}

// newPubMedClient builds a client from settings, then flags.
func newPubMedClient(cmd *cobra.Command) *pubmed.Client {
	cfg := settings.PubMed

	client := pubmed.NewClient(cfg.Email)
	client.APIKey = cfg.APIKey
	if cfg.Tool != "" {
		client.Tool = cfg.Tool
	}
	if cfg.BatchSize > 0 {
		client.BatchSize = cfg.BatchSize
	}
	client.Delay = cfg.Delay

	if cmd.Flags().Changed("email") {
		client.Email = fetchEmail
	}
	if cmd.Flags().Changed("api-key") {
		client.APIKey = fetchAPIKey
	}
	if cmd.Flags().Changed("batch-size") && fetchBatchSize > 0 {
		client.BatchSize = fetchBatchSize
	}
	return client
}

func runFetch(cmd *cobra.Command, args []string) (err error) {
	retmax := settings.PubMed.RetMax
	if cmd.Flags().Changed("retmax") {
		retmax = fetchRetMax
	}

	client := newPubMedClient(cmd)
	articles, err := client.SearchAndFetch(cmd.Context(), fetchTerm, retmax)
	if err != nil {
		return fmt.Errorf("fetching from PubMed: %w", err)
	}

	output, closeOutput, err := createOutput(fetchOutput)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOutput(); cerr != nil && err == nil {
			err = fmt.Errorf("closing output file: %w", cerr)
		}
	}()

	if err := bib.WriteArticles(output, articles); err != nil {
		return fmt.Errorf("writing articles: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Fetched %d articles\n", len(articles))
	return nil
}
