// Package cmd provides CLI commands for coauthornet.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/coauthornet/config"
)

var (
	configFile string

	// settings is loaded before every command runs.
	settings = config.Default()
)

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

var rootCmd = &cobra.Command{
	Use:   "coauthornet",
	Short: "Build co-authorship networks and place authors by country",
	Long: `Coauthornet builds co-authorship networks from bibliographic records and
resolves author affiliations to countries.

The pipeline has three steps: fetch articles from PubMed, build and filter the
co-authorship graph, then resolve each author's affiliation to a country.

Examples:
  coauthornet fetch --term "crispr AND 2023[dp]" -o articles.json
  coauthornet network -i articles.json --threshold 2 --to csv -o edges.csv --nodes-output nodes.csv
  coauthornet network -i articles.json --to records -o nodes.txt
  coauthornet countries -i nodes.txt -o author_countries.csv
  coauthornet resolve "Seoul National University, Korea"`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(); err != nil {
			return err
		}
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		settings = cfg
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	setupLogger()
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Settings file (default: ~/.coauthornet/config.yaml)")
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(networkCmd)
	rootCmd.AddCommand(countriesCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(tablesCmd)
}
