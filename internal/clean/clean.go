package clean

import (
	"github.com/zjtippetts/Data-Acquisition-NBA/internal/logger"
	"github.com/zjtippetts/Data-Acquisition-NBA/internal/table"
)

const (
	// ColPlayer is the player name column.
	ColPlayer = "Player"
	// ColRank is the page's running row number, meaningless after merging.
	ColRank = "Rk"
	// leagueAverageLabel marks the league-wide summary row on every page.
	leagueAverageLabel = "League Average"
)

// Report summarizes what the cleaning pipeline changed or dropped.
type Report struct {
	PerGameRows     int              `json:"per_game_rows"`
	AdvancedRows    int              `json:"advanced_rows"`
	MergedRows      int              `json:"merged_rows"`
	DroppedPerGame  int              `json:"dropped_per_game"`
	DroppedAdvanced int              `json:"dropped_advanced"`
	Counters        map[string]int64 `json:"counters,omitempty"`
}

// RemoveLeagueAverage drops the league-wide summary rows.
func RemoveLeagueAverage(t *table.Table) *table.Table {
	out := table.New(t.Columns...)
	for _, row := range t.Rows {
		if table.CellString(row[ColPlayer]) == leagueAverageLabel {
			continue
		}
		out.Append(row)
	}
	if removed := len(t.Rows) - len(out.Rows); removed > 0 {
		logger.Debug("removed league average rows", logger.Fields{
			"rows": removed,
		})
	}
	return out
}

// Clean runs the full cleaning pipeline over the raw per-game and advanced
// tables and returns the merged, expanded, collapsed result.
//
// Stage order matters: merging first keeps the awards expansion global over
// the final dataset, and collapsing last means the total-row promotion sees
// the merged columns.
func Clean(perGame, advanced *table.Table) (*table.Table, *Report) {
	// Counters are process-global; start each run from zero so the report
	// covers this run only.
	logger.GetCounters().Reset()

	report := &Report{
		PerGameRows:  len(perGame.Rows),
		AdvancedRows: len(advanced.Rows),
	}

	perGame = RemoveLeagueAverage(perGame)
	advanced = RemoveLeagueAverage(advanced)

	// Both pages carry the awards field; the per-game copy is authoritative
	// and keeping both would survive the merge under one name anyway.
	advanced.DropColumn(ColAwards)

	merged := Merge(perGame, advanced)
	report.DroppedPerGame = merged.DroppedA
	report.DroppedAdvanced = merged.DroppedB

	out := ExpandAwards(merged.Table)
	out = CollapseMultiTeam(out)

	// The page row number restarts every season and never survives a merge
	// meaningfully.
	out.DropColumn(ColRank)

	report.MergedRows = len(out.Rows)
	report.Counters = logger.GetCounters().Snapshot()

	return out, report
}
