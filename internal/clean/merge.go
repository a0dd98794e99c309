package clean

import (
	"github.com/zjtippetts/Data-Acquisition-NBA/internal/logger"
	"github.com/zjtippetts/Data-Acquisition-NBA/internal/table"
)

// Annotation columns shared with the scraper output.
const (
	ColPlayerURL = "Player_URL"
	ColSeason    = "Season"
)

// MergeKeys are the join keys for combining the two datasets. Both sources
// must agree on the same player, season, and team before a row is merged.
var MergeKeys = []string{ColPlayerURL, ColSeason, ColTeam}

// mergeKey is the composite join key.
type mergeKey struct {
	url, season, team string
}

// MergeResult is a merged table plus the rows each side lost to the inner
// join.
type MergeResult struct {
	Table    *table.Table
	DroppedA int
	DroppedB int
}

// Merge inner-joins the primary table A (per-game) with the secondary table
// B (advanced) on MergeKeys. Rows keyed in only one source are dropped and
// counted; the merged table only carries player-season-team rows both
// sources report. For columns both sources report, A is authoritative and
// B's copy is discarded. Columns unique to B are appended after A's.
func Merge(a, b *table.Table) *MergeResult {
	aCols := make(map[string]bool, len(a.Columns))
	for _, col := range a.Columns {
		aCols[col] = true
	}
	isKey := make(map[string]bool, len(MergeKeys))
	for _, col := range MergeKeys {
		isKey[col] = true
	}

	var bUnique []string
	for _, col := range b.Columns {
		if !aCols[col] && !isKey[col] {
			bUnique = append(bUnique, col)
		}
	}

	// Join keys first, then A's remaining columns, then B's unique ones.
	cols := make([]string, 0, len(a.Columns)+len(bUnique))
	cols = append(cols, MergeKeys...)
	for _, col := range a.Columns {
		if !isKey[col] {
			cols = append(cols, col)
		}
	}
	cols = append(cols, bUnique...)
	out := table.New(cols...)

	// First occurrence wins when B repeats a key.
	bByKey := make(map[mergeKey]table.Row, len(b.Rows))
	for _, row := range b.Rows {
		k := keyOf(row)
		if _, dup := bByKey[k]; !dup {
			bByKey[k] = row
		}
	}

	matchedB := make(map[mergeKey]bool)
	for _, aRow := range a.Rows {
		k := keyOf(aRow)
		bRow, ok := bByKey[k]
		if !ok {
			continue
		}
		matchedB[k] = true

		merged := make(table.Row, len(cols))
		for _, col := range a.Columns {
			merged[col] = aRow[col]
		}
		for _, col := range bUnique {
			merged[col] = bRow[col]
		}
		out.Append(merged)
	}

	res := &MergeResult{
		Table:    out,
		DroppedA: len(a.Rows) - len(out.Rows),
		DroppedB: len(b.Rows) - countMatched(b, matchedB),
	}

	if res.DroppedA > 0 || res.DroppedB > 0 {
		logger.AddCounter("clean.join_dropped", int64(res.DroppedA+res.DroppedB))
		logger.Info("inner join dropped unmatched rows", logger.Fields{
			"dropped_per_game": res.DroppedA,
			"dropped_advanced": res.DroppedB,
		})
	}

	return res
}

func keyOf(row table.Row) mergeKey {
	return mergeKey{
		url:    table.CellString(row[ColPlayerURL]),
		season: table.CellString(row[ColSeason]),
		team:   table.CellString(row[ColTeam]),
	}
}

func countMatched(b *table.Table, matched map[mergeKey]bool) int {
	n := 0
	for _, row := range b.Rows {
		if matched[keyOf(row)] {
			n++
		}
	}
	return n
}
