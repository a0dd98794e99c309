package clean

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zjtippetts/Data-Acquisition-NBA/internal/logger"
	"github.com/zjtippetts/Data-Acquisition-NBA/internal/table"
)

// ColTeam is the team/franchise column on league pages.
const ColTeam = "Team"

// Combined-total rows for a player traded mid-season carry either the plain
// "TOT" label or a counted "2TM"/"3TM" form, depending on page vintage.
const (
	teamTotalLabel  = "TOT"
	teamTotalSuffix = "TM"
)

// isTeamTotal reports whether a Team value marks a combined-total row.
func isTeamTotal(team string) bool {
	return team == teamTotalLabel || strings.HasSuffix(team, teamTotalSuffix)
}

// playerSeason is the grouping key for collapsing: one canonical row per
// player per season.
type playerSeason struct {
	url    string
	season string
}

// CollapseMultiTeam reduces each (Player_URL, Season) group to one row.
//
// A player traded mid-season appears once per team plus a combined-total row
// whose Team contains the "TM" marker. The total row is kept and its Team is
// rewritten to list the individual teams, e.g. "2TM (BRK, HOU)". Groups with
// no marker row keep their first row; the discarded rows are counted and
// logged, since dropping them loses their per-team splits.
//
// Rows with no player URL cannot be grouped and pass through unchanged.
func CollapseMultiTeam(t *table.Table) *table.Table {
	type group struct {
		indices []int
	}

	groups := make(map[playerSeason]*group)
	order := make([]playerSeason, 0)
	var ungrouped []int

	for i, row := range t.Rows {
		url, ok := row[ColPlayerURL].(string)
		if !ok || url == "" {
			ungrouped = append(ungrouped, i)
			continue
		}
		key := playerSeason{url: url, season: table.CellString(row[ColSeason])}
		g, seen := groups[key]
		if !seen {
			g = &group{}
			groups[key] = g
			order = append(order, key)
		}
		g.indices = append(g.indices, i)
	}

	out := table.New(t.Columns...)
	dropped := 0
	fallbacks := 0

	appendAt := func(i int, team any) {
		row := make(table.Row, len(t.Columns))
		for _, col := range t.Columns {
			row[col] = t.Rows[i][col]
		}
		if team != nil {
			row[ColTeam] = team
		}
		out.Append(row)
	}

	emitGroup := func(g *group) {
		if len(g.indices) == 1 {
			appendAt(g.indices[0], nil)
			return
		}

		marker := -1
		var teams []string
		for _, i := range g.indices {
			team := table.CellString(t.Rows[i][ColTeam])
			if isTeamTotal(team) {
				if marker == -1 {
					marker = i
				}
				continue
			}
			if team != "" && !contains(teams, team) {
				teams = append(teams, team)
			}
		}

		if marker == -1 {
			// Lossy fallback: no combined-total row to promote, keep
			// the first row and discard the per-team splits.
			fallbacks++
			logger.Warn("multi-team group without total row, keeping first", logger.Fields{
				"player_url": table.CellString(t.Rows[g.indices[0]][ColPlayerURL]),
				"season":     table.CellString(t.Rows[g.indices[0]][ColSeason]),
				"rows":       len(g.indices),
			})
			appendAt(g.indices[0], nil)
			dropped += len(g.indices) - 1
			return
		}

		team := table.CellString(t.Rows[marker][ColTeam])
		if len(teams) > 0 {
			sort.Strings(teams)
			team = fmt.Sprintf("%s (%s)", team, strings.Join(teams, ", "))
		}
		appendAt(marker, team)
		dropped += len(g.indices) - 1
	}

	// Grouped rows come out in first-occurrence order, then the ungrouped
	// remainder; deterministic for deterministic input.
	for _, key := range order {
		emitGroup(groups[key])
	}
	for _, i := range ungrouped {
		appendAt(i, nil)
	}

	if dropped > 0 {
		logger.AddCounter("clean.multi_team_rows_dropped", int64(dropped))
		logger.Info("collapsed multi-team player seasons", logger.Fields{
			"rows_dropped": dropped,
		})
	}
	if fallbacks > 0 {
		logger.AddCounter("clean.collapser_fallbacks", int64(fallbacks))
	}

	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
