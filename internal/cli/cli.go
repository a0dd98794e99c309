package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/zjtippetts/Data-Acquisition-NBA/internal/clean"
	"github.com/zjtippetts/Data-Acquisition-NBA/internal/export"
	"github.com/zjtippetts/Data-Acquisition-NBA/internal/logger"
	"github.com/zjtippetts/Data-Acquisition-NBA/internal/scraper"
	"github.com/zjtippetts/Data-Acquisition-NBA/internal/storage"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// DefaultSeasons covers the five most recent completed seasons.
var DefaultSeasons = []string{"2021", "2022", "2023", "2024", "2025"}

var (
	flagSeasons   string
	flagDataDir   string
	flagFormat    string
	flagDelay     time.Duration
	flagSaveHTML  bool
	flagFromFiles bool
	flagExcel     bool
	flagVerbose   bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nba-stats",
		Short: "Scrape and clean NBA player statistics",
		Long: `Scrapes per-game and advanced player statistics from
basketball-reference.com, merges the two datasets, and writes a cleaned table
ready for analysis.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagVerbose {
				logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
			}
		},
	}

	cmd.PersistentFlags().StringVar(&flagSeasons, "seasons", strings.Join(DefaultSeasons, ","), "Comma-separated season end years")
	cmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "data", "Data directory for raw and processed files")
	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Summary format: text or json")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newScrapeCmd(), newCleanCmd(), newRunCmd())

	return cmd
}

func newScrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Fetch raw per-game and advanced tables for each season",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := runScrape(cmd)
			return err
		},
	}
	cmd.Flags().DurationVar(&flagDelay, "delay", scraper.DefaultDelay, "Pause between requests")
	cmd.Flags().BoolVar(&flagSaveHTML, "save-html", false, "Keep a copy of each fetched page")
	cmd.Flags().BoolVar(&flagFromFiles, "from-files", false, "Parse previously saved HTML instead of fetching")
	return cmd
}

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Merge and clean the raw datasets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(cmd)
		},
	}
	cmd.Flags().BoolVar(&flagExcel, "xlsx", false, "Also write the merged table as an Excel workbook")
	return cmd
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Scrape then clean in one go",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := runScrape(cmd)
			if err != nil {
				return err
			}
			if len(summary.Succeeded) == 0 {
				return fmt.Errorf("no season scraped successfully, nothing to clean")
			}
			return runClean(cmd)
		},
	}
	cmd.Flags().DurationVar(&flagDelay, "delay", scraper.DefaultDelay, "Pause between requests")
	cmd.Flags().BoolVar(&flagSaveHTML, "save-html", false, "Keep a copy of each fetched page")
	cmd.Flags().BoolVar(&flagFromFiles, "from-files", false, "Parse previously saved HTML instead of fetching")
	cmd.Flags().BoolVar(&flagExcel, "xlsx", false, "Also write the merged table as an Excel workbook")
	return cmd
}

func runScrape(cmd *cobra.Command) (*ScrapeSummary, error) {
	format, err := parseFormat(flagFormat)
	if err != nil {
		return nil, err
	}
	seasons := splitSeasons(flagSeasons)
	if len(seasons) == 0 {
		return nil, fmt.Errorf("no seasons given")
	}

	store, err := storage.New(flagDataDir)
	if err != nil {
		return nil, fmt.Errorf("initializing storage: %w", err)
	}

	sc := scraper.New()
	sc.SetDelay(flagDelay)

	batch := &Batch{
		Scraper:   sc,
		Store:     store,
		SaveHTML:  flagSaveHTML,
		FromFiles: flagFromFiles,
	}

	summary := batch.Run(seasons)
	if err := WriteScrapeSummary(cmd.OutOrStdout(), summary, format); err != nil {
		return nil, fmt.Errorf("writing summary: %w", err)
	}
	if len(summary.Succeeded) == 0 {
		return summary, fmt.Errorf("every season failed")
	}
	return summary, nil
}

func runClean(cmd *cobra.Command) error {
	format, err := parseFormat(flagFormat)
	if err != nil {
		return err
	}

	store, err := storage.New(flagDataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	perGame, err := store.LoadRaw(string(scraper.KindPerGame))
	if err != nil {
		return err
	}
	advanced, err := store.LoadRaw(string(scraper.KindAdvanced))
	if err != nil {
		return err
	}

	merged, report := clean.Clean(perGame, advanced)

	if err := store.SaveProcessed(merged); err != nil {
		return err
	}
	if flagExcel {
		if err := export.WriteExcel(merged, store.ProcessedExcelPath()); err != nil {
			return fmt.Errorf("writing Excel output: %w", err)
		}
	}

	return WriteCleanSummary(cmd.OutOrStdout(), &CleanSummary{
		Report:    report,
		CSVPath:   store.ProcessedCSVPath(),
		ExcelPath: excelPathIf(flagExcel, store),
	}, format)
}

func excelPathIf(enabled bool, store *storage.Storage) string {
	if !enabled {
		return ""
	}
	return store.ProcessedExcelPath()
}

// splitSeasons parses the --seasons flag, tolerating spaces and empties.
func splitSeasons(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseFormat(s string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(s))
	if format != FormatText && format != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", s)
	}
	return format, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
