package clean

import (
	"testing"

	"github.com/zjtippetts/Data-Acquisition-NBA/internal/table"
)

func TestRemoveLeagueAverage(t *testing.T) {
	tbl := table.New(ColPlayer, "PTS")
	tbl.Append(table.Row{ColPlayer: "A", "PTS": "10"})
	tbl.Append(table.Row{ColPlayer: "League Average", "PTS": "114.2"})
	tbl.Append(table.Row{ColPlayer: "B", "PTS": "20"})

	out := RemoveLeagueAverage(tbl)

	if len(out.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(out.Rows))
	}
	for i := range out.Rows {
		if table.CellString(out.Cell(i, ColPlayer)) == "League Average" {
			t.Error("League Average row survived")
		}
	}
}

func TestCleanEndToEnd(t *testing.T) {
	perGame := table.New("Rk", ColPlayer, ColPlayerURL, ColSeason, ColTeam, "G", "PTS", ColAwards)
	perGame.Append(table.Row{"Rk": "1", ColPlayer: "A", ColPlayerURL: "u1", ColSeason: "2024", ColTeam: "2TM", "G": "70", "PTS": "18.0", ColAwards: "AS,MVP-7"})
	perGame.Append(table.Row{"Rk": "2", ColPlayer: "A", ColPlayerURL: "u1", ColSeason: "2024", ColTeam: "HOU", "G": "40", "PTS": "19.0", ColAwards: "AS,MVP-7"})
	perGame.Append(table.Row{"Rk": "3", ColPlayer: "A", ColPlayerURL: "u1", ColSeason: "2024", ColTeam: "BRK", "G": "30", "PTS": "17.0", ColAwards: "AS,MVP-7"})
	perGame.Append(table.Row{"Rk": "4", ColPlayer: "B", ColPlayerURL: "u2", ColSeason: "2024", ColTeam: "DEN", "G": "79", "PTS": "26.4", ColAwards: "MVP-1"})
	perGame.Append(table.Row{"Rk": "5", ColPlayer: "League Average", ColPlayerURL: nil, ColSeason: "2024", ColTeam: nil, "G": nil, "PTS": "114.2", ColAwards: nil})

	advanced := table.New("Rk", ColPlayer, ColPlayerURL, ColSeason, ColTeam, "G", "PER", ColAwards)
	advanced.Append(table.Row{"Rk": "1", ColPlayer: "A", ColPlayerURL: "u1", ColSeason: "2024", ColTeam: "2TM", "G": "70", "PER": "18.5", ColAwards: "AS,MVP-7"})
	advanced.Append(table.Row{"Rk": "2", ColPlayer: "A", ColPlayerURL: "u1", ColSeason: "2024", ColTeam: "HOU", "G": "40", "PER": "19.1", ColAwards: "AS,MVP-7"})
	advanced.Append(table.Row{"Rk": "3", ColPlayer: "A", ColPlayerURL: "u1", ColSeason: "2024", ColTeam: "BRK", "G": "30", "PER": "17.7", ColAwards: "AS,MVP-7"})
	advanced.Append(table.Row{"Rk": "4", ColPlayer: "B", ColPlayerURL: "u2", ColSeason: "2024", ColTeam: "DEN", "G": "79", "PER": "31.3", ColAwards: "MVP-1"})
	advanced.Append(table.Row{"Rk": "5", ColPlayer: "League Average", ColPlayerURL: nil, ColSeason: "2024", ColTeam: nil, "G": nil, "PER": "15.0", ColAwards: nil})

	out, report := Clean(perGame, advanced)

	// Player A collapses to the 2TM row, player B is a singleton.
	if len(out.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(out.Rows))
	}
	if got := out.Cell(0, ColTeam); got != "2TM (BRK, HOU)" {
		t.Errorf("expected collapsed team 2TM (BRK, HOU), got %v", got)
	}
	if out.HasColumn("Rk") {
		t.Error("expected Rk column to be dropped")
	}
	if out.HasColumn(ColAwards) {
		t.Error("expected Awards column to be expanded away")
	}
	if got := out.Cell(0, "AS"); got != "yes" {
		t.Errorf("expected AS yes for player A, got %v", got)
	}
	if got := out.Cell(0, "MVP_VOTING"); got != 7 {
		t.Errorf("expected MVP_VOTING 7 for player A, got %v", got)
	}
	if got := out.Cell(1, "MVP_VOTING"); got != 1 {
		t.Errorf("expected MVP_VOTING 1 for player B, got %v", got)
	}
	// Advanced-only column survives the merge.
	if got := out.Cell(1, "PER"); got != "31.3" {
		t.Errorf("expected PER 31.3 for player B, got %v", got)
	}

	if report.MergedRows != 2 {
		t.Errorf("expected report to show 2 merged rows, got %d", report.MergedRows)
	}
	if report.PerGameRows != 5 || report.AdvancedRows != 5 {
		t.Errorf("expected input counts 5/5, got %d/%d", report.PerGameRows, report.AdvancedRows)
	}
}

func TestCleanDoesNotMutateInputs(t *testing.T) {
	perGame := table.New(ColPlayer, ColPlayerURL, ColSeason, ColTeam, "PTS", ColAwards)
	perGame.Append(table.Row{ColPlayer: "A", ColPlayerURL: "u1", ColSeason: "2024", ColTeam: "BOS", "PTS": "25.0", ColAwards: "AS"})
	perGame.Append(table.Row{ColPlayer: "League Average", ColPlayerURL: nil, ColSeason: "2024", ColTeam: nil, "PTS": "114.2", ColAwards: nil})

	advanced := table.New(ColPlayer, ColPlayerURL, ColSeason, ColTeam, "PER", ColAwards)
	advanced.Append(table.Row{ColPlayer: "A", ColPlayerURL: "u1", ColSeason: "2024", ColTeam: "BOS", "PER": "22.1", ColAwards: "AS"})

	Clean(perGame, advanced)

	// Each stage returns a fresh table; the caller's inputs keep their
	// rows and columns, including the advanced Awards column.
	if !advanced.HasColumn(ColAwards) {
		t.Error("advanced input lost its Awards column")
	}
	if got := advanced.Cell(0, ColAwards); got != "AS" {
		t.Errorf("advanced input Awards cell changed: %v", got)
	}
	if len(perGame.Rows) != 2 {
		t.Errorf("per-game input row count changed: %d", len(perGame.Rows))
	}
	if got := perGame.Cell(1, ColPlayer); got != "League Average" {
		t.Errorf("per-game input rows changed: %v", got)
	}
}

func TestCleanCountersPerRun(t *testing.T) {
	build := func() (*table.Table, *table.Table) {
		perGame := table.New(ColPlayer, ColPlayerURL, ColSeason, ColTeam, "PTS", ColAwards)
		perGame.Append(table.Row{ColPlayer: "A", ColPlayerURL: "u1", ColSeason: "2024", ColTeam: "PHI", "PTS": "15.0", ColAwards: nil})
		perGame.Append(table.Row{ColPlayer: "A", ColPlayerURL: "u1", ColSeason: "2024", ColTeam: "DEN", "PTS": "14.0", ColAwards: nil})

		advanced := table.New(ColPlayer, ColPlayerURL, ColSeason, ColTeam, "PER")
		advanced.Append(table.Row{ColPlayer: "A", ColPlayerURL: "u1", ColSeason: "2024", ColTeam: "PHI", "PER": "20.0"})
		advanced.Append(table.Row{ColPlayer: "A", ColPlayerURL: "u1", ColSeason: "2024", ColTeam: "DEN", "PER": "19.0"})
		return perGame, advanced
	}

	// Each run hits the no-marker fallback exactly once; a second run in
	// the same process must report the same count, not an accumulated one.
	perGame, advanced := build()
	_, first := Clean(perGame, advanced)

	perGame, advanced = build()
	_, second := Clean(perGame, advanced)

	if first.Counters["clean.collapser_fallbacks"] != 1 {
		t.Errorf("first run: expected 1 fallback, got %d", first.Counters["clean.collapser_fallbacks"])
	}
	if second.Counters["clean.collapser_fallbacks"] != 1 {
		t.Errorf("second run: expected 1 fallback, got %d", second.Counters["clean.collapser_fallbacks"])
	}
}

func TestCleanJoinShortfallReported(t *testing.T) {
	perGame := table.New(ColPlayer, ColPlayerURL, ColSeason, ColTeam, "PTS", ColAwards)
	perGame.Append(table.Row{ColPlayer: "A", ColPlayerURL: "u1", ColSeason: "2024", ColTeam: "BOS", "PTS": "25.0", ColAwards: nil})
	perGame.Append(table.Row{ColPlayer: "B", ColPlayerURL: "u2", ColSeason: "2024", ColTeam: "DEN", "PTS": "26.4", ColAwards: nil})

	advanced := table.New(ColPlayer, ColPlayerURL, ColSeason, ColTeam, "PER")
	advanced.Append(table.Row{ColPlayer: "A", ColPlayerURL: "u1", ColSeason: "2024", ColTeam: "BOS", "PER": "22.1"})

	out, report := Clean(perGame, advanced)

	if len(out.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(out.Rows))
	}
	if report.DroppedPerGame != 1 {
		t.Errorf("expected 1 dropped per-game row in report, got %d", report.DroppedPerGame)
	}
	if report.DroppedAdvanced != 0 {
		t.Errorf("expected 0 dropped advanced rows, got %d", report.DroppedAdvanced)
	}
}
