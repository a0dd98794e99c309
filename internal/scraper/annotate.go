package scraper

import (
	"github.com/zjtippetts/Data-Acquisition-NBA/internal/logger"
	"github.com/zjtippetts/Data-Acquisition-NBA/internal/table"
)

// Column names added during annotation.
const (
	ColPlayerURL = "Player_URL"
	ColSeason    = "Season"
	ColRank      = "Rk"
)

// Annotate builds the annotated season table: repeated header rows are
// dropped, each remaining row is assigned the next player URL in order, and
// every row gets the season label.
//
// The URL list and the table rows are two independently derived sequences
// assumed to correspond by position. When the list runs out early the
// remaining rows get a nil URL rather than failing; the shortfall is logged.
func Annotate(tbl *table.Table, playerURLs []string, season string) *table.Table {
	cols := append([]string{}, tbl.Columns...)
	out := table.New(cols...)
	out.AddColumn(ColPlayerURL, nil)
	out.AddColumn(ColSeason, nil)

	next := 0
	for _, row := range tbl.Rows {
		if isHeaderRow(row) {
			continue
		}

		annotated := make(table.Row, len(out.Columns))
		for _, col := range tbl.Columns {
			annotated[col] = row[col]
		}
		if next < len(playerURLs) {
			annotated[ColPlayerURL] = playerURLs[next]
			next++
		} else {
			annotated[ColPlayerURL] = nil
		}
		annotated[ColSeason] = season

		out.Append(annotated)
	}

	if next < len(out.Rows) {
		logger.Warn("player links exhausted before last row", logger.Fields{
			"season":    season,
			"rows":      len(out.Rows),
			"links":     len(playerURLs),
			"shortfall": len(out.Rows) - next,
		})
	}

	return out
}

// isHeaderRow reports whether a row is a repeated header row: the rank cell
// is either empty or the literal header token.
func isHeaderRow(row table.Row) bool {
	v := row[ColRank]
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ColRank
}
