package cli

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/zjtippetts/Data-Acquisition-NBA/internal/scraper"
	"github.com/zjtippetts/Data-Acquisition-NBA/internal/storage"
	"github.com/zjtippetts/Data-Acquisition-NBA/internal/table"
)

// stubSource serves canned tables and fails configured seasons.
type stubSource struct {
	failSeasons map[string]bool
}

func (s *stubSource) season(kind scraper.Kind, season string) (*table.Table, error) {
	if s.failSeasons[season] {
		return nil, fmt.Errorf("season %s %s: %w", season, kind, scraper.ErrTableNotFound)
	}
	tbl := table.New("Rk", "Player", "Player_URL", "Season", "Team")
	tbl.Append(table.Row{
		"Rk": "1", "Player": "A",
		"Player_URL": "u1", "Season": season, "Team": "BOS",
	})
	return tbl, nil
}

func (s *stubSource) FetchSeason(kind scraper.Kind, season, savePath string) (*table.Table, error) {
	return s.season(kind, season)
}

func (s *stubSource) ParseSeasonFile(path string, kind scraper.Kind, season string) (*table.Table, error) {
	return s.season(kind, season)
}

func newTestBatch(t *testing.T, failSeasons ...string) *Batch {
	t.Helper()
	store, err := storage.New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	fail := make(map[string]bool)
	for _, s := range failSeasons {
		fail[s] = true
	}
	return &Batch{
		Scraper: &stubSource{failSeasons: fail},
		Store:   store,
	}
}

func TestBatchRunAllSucceed(t *testing.T) {
	b := newTestBatch(t)

	summary := b.Run([]string{"2023", "2024"})

	if len(summary.Succeeded) != 2 {
		t.Fatalf("expected 2 succeeded seasons, got %v", summary.Succeeded)
	}
	if len(summary.Failed) != 0 {
		t.Fatalf("expected no failures, got %v", summary.Failed)
	}
	if summary.RowCounts["per_game"] != 2 {
		t.Errorf("expected 2 combined per-game rows, got %d", summary.RowCounts["per_game"])
	}
	if summary.RowCounts["advanced"] != 2 {
		t.Errorf("expected 2 combined advanced rows, got %d", summary.RowCounts["advanced"])
	}

	// Raw CSVs must be loadable again.
	tbl, err := b.Store.LoadRaw("per_game")
	if err != nil {
		t.Fatalf("LoadRaw failed: %v", err)
	}
	if len(tbl.Rows) != 2 {
		t.Errorf("expected 2 raw rows on disk, got %d", len(tbl.Rows))
	}
}

func TestBatchRunIsolatesFailures(t *testing.T) {
	b := newTestBatch(t, "2022")

	summary := b.Run([]string{"2021", "2022", "2023"})

	// A missing table fails that season only; the batch keeps going.
	if len(summary.Succeeded) != 2 {
		t.Fatalf("expected 2 succeeded seasons, got %v", summary.Succeeded)
	}
	for _, s := range summary.Succeeded {
		if s == "2022" {
			t.Error("2022 must not be listed as succeeded")
		}
	}
	if len(summary.Failed) != 2 { // both kinds fail for 2022
		t.Fatalf("expected 2 failure records, got %v", summary.Failed)
	}
	for _, f := range summary.Failed {
		if f.Season != "2022" {
			t.Errorf("unexpected failed season: %+v", f)
		}
	}
	if summary.RowCounts["per_game"] != 2 {
		t.Errorf("expected rows only from succeeded seasons, got %d", summary.RowCounts["per_game"])
	}
}

func TestBatchRunAllFail(t *testing.T) {
	b := newTestBatch(t, "2021", "2022")

	summary := b.Run([]string{"2021", "2022"})

	if len(summary.Succeeded) != 0 {
		t.Fatalf("expected no succeeded seasons, got %v", summary.Succeeded)
	}
	if len(summary.RowCounts) != 0 {
		t.Errorf("expected no raw files written, got %v", summary.RowCounts)
	}
}

func TestBatchRawOutputColumnOrder(t *testing.T) {
	b := newTestBatch(t)
	b.Run([]string{"2024"})

	tbl, err := b.Store.LoadRaw("per_game")
	if err != nil {
		t.Fatal(err)
	}

	// Identifier-like columns come first in fixed priority order.
	want := []string{"Rk", "Player", "Player_URL", "Season", "Team"}
	for i, col := range want {
		if tbl.Columns[i] != col {
			t.Errorf("column %d: expected %s, got %s", i, col, tbl.Columns[i])
		}
	}
}

func TestWriteScrapeSummaryText(t *testing.T) {
	summary := &ScrapeSummary{
		Succeeded: []string{"2023", "2024"},
		Failed: []SeasonFailure{
			{Kind: "per_game", Season: "2022", Error: "table not found"},
		},
		RowCounts: map[string]int{"per_game": 1100},
		RawPaths:  map[string]string{"per_game": "data/raw/nba_per_game_raw.csv"},
	}

	var buf bytes.Buffer
	if err := WriteScrapeSummary(&buf, summary, FormatText); err != nil {
		t.Fatalf("WriteScrapeSummary failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "2023, 2024") {
		t.Errorf("expected succeeded seasons in output, got:\n%s", out)
	}
	if !strings.Contains(out, "FAILED per_game 2022") {
		t.Errorf("expected failure line in output, got:\n%s", out)
	}
}

func TestWriteScrapeSummaryJSON(t *testing.T) {
	summary := &ScrapeSummary{Succeeded: []string{"2024"}}

	var buf bytes.Buffer
	if err := WriteScrapeSummary(&buf, summary, FormatJSON); err != nil {
		t.Fatalf("WriteScrapeSummary failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"succeeded"`) {
		t.Errorf("expected JSON keys in output, got:\n%s", buf.String())
	}
}

func TestSplitSeasons(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"2021,2022,2023", 3},
		{" 2021 , 2022 ", 2},
		{"2021,,2022", 2},
		{"", 0},
	}

	for _, tt := range tests {
		if got := splitSeasons(tt.in); len(got) != tt.want {
			t.Errorf("splitSeasons(%q) = %v, expected %d entries", tt.in, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	if _, err := parseFormat("text"); err != nil {
		t.Errorf("expected text to parse: %v", err)
	}
	if _, err := parseFormat("JSON"); err != nil {
		t.Errorf("expected JSON to parse case-insensitively: %v", err)
	}
	if _, err := parseFormat("yaml"); err == nil {
		t.Error("expected error for unknown format")
	}
}
