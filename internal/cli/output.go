package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/zjtippetts/Data-Acquisition-NBA/internal/clean"
)

// OutputFormat specifies the summary format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// CleanSummary is what the clean command reports.
type CleanSummary struct {
	Report    *clean.Report `json:"report"`
	CSVPath   string        `json:"csv_path"`
	ExcelPath string        `json:"excel_path,omitempty"`
}

// WriteScrapeSummary writes the batch result in the requested format.
func WriteScrapeSummary(w io.Writer, summary *ScrapeSummary, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, summary)
	case FormatText:
		return writeScrapeText(w, summary)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteCleanSummary writes the cleaning report in the requested format.
func WriteCleanSummary(w io.Writer, summary *CleanSummary, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, summary)
	case FormatText:
		return writeCleanText(w, summary)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func writeScrapeText(w io.Writer, summary *ScrapeSummary) error {
	if len(summary.Succeeded) > 0 {
		fmt.Fprintf(w, "Scraped seasons: %s\n", strings.Join(summary.Succeeded, ", "))
	} else {
		fmt.Fprintln(w, "No season scraped successfully.")
	}

	kinds := make([]string, 0, len(summary.RowCounts))
	for kind := range summary.RowCounts {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		fmt.Fprintf(w, "  %s: %d rows -> %s\n", kind, summary.RowCounts[kind], summary.RawPaths[kind])
	}

	for _, f := range summary.Failed {
		if f.Season != "" {
			fmt.Fprintf(w, "FAILED %s %s: %s\n", f.Kind, f.Season, f.Error)
		} else {
			fmt.Fprintf(w, "FAILED %s: %s\n", f.Kind, f.Error)
		}
	}

	return nil
}

func writeCleanText(w io.Writer, summary *CleanSummary) error {
	r := summary.Report
	fmt.Fprintf(w, "Merged %d per-game and %d advanced rows into %d cleaned rows.\n",
		r.PerGameRows, r.AdvancedRows, r.MergedRows)
	if r.DroppedPerGame > 0 || r.DroppedAdvanced > 0 {
		fmt.Fprintf(w, "  Inner join dropped %d per-game and %d advanced rows.\n",
			r.DroppedPerGame, r.DroppedAdvanced)
	}

	names := make([]string, 0, len(r.Counters))
	for name := range r.Counters {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if r.Counters[name] > 0 {
			fmt.Fprintf(w, "  %s: %d\n", name, r.Counters[name])
		}
	}

	fmt.Fprintf(w, "Output: %s\n", summary.CSVPath)
	if summary.ExcelPath != "" {
		fmt.Fprintf(w, "Output: %s\n", summary.ExcelPath)
	}
	return nil
}
