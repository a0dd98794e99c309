package clean

import (
	"sort"
	"strconv"
	"strings"

	"github.com/zjtippetts/Data-Acquisition-NBA/internal/logger"
	"github.com/zjtippetts/Data-Acquisition-NBA/internal/table"
)

// ColAwards is the free-text award column on per-game pages. Values are
// comma-separated tokens, either bare ("AS") or ranked ("MVP-3").
const ColAwards = "Awards"

// VotingSuffix is appended to the column name of ranked award categories.
const VotingSuffix = "_VOTING"

// awardEntry is one parsed token from the awards field.
type awardEntry struct {
	base string
	rank string // "" when the token carries no rank
}

// awardSchema describes every award category seen across the whole table.
// A category ranked anywhere in the dataset is ranked everywhere.
type awardSchema struct {
	simple []string // sorted bare-category names
	voting []string // sorted ranked-category names
	ranked map[string]bool
}

// ExpandAwards replaces the free-text Awards column with one column per
// award category: bare categories get a presence column (empty by default,
// "yes" when held), ranked categories get a <name>_VOTING column holding the
// finishing rank as an int. The original Awards column is dropped. Tables
// without an Awards column pass through unchanged.
func ExpandAwards(t *table.Table) *table.Table {
	if !t.HasColumn(ColAwards) {
		logger.Warn("no awards column found, skipping award parsing", nil)
		return t
	}

	schema := discoverAwards(t)

	out := table.New(t.Columns...)
	for _, name := range schema.simple {
		out.AddColumn(name, nil)
	}
	for _, name := range schema.voting {
		out.AddColumn(name+VotingSuffix, nil)
	}

	for _, row := range t.Rows {
		expanded := make(table.Row, len(out.Columns))
		for _, col := range t.Columns {
			expanded[col] = row[col]
		}
		for _, name := range schema.simple {
			expanded[name] = ""
		}
		for _, name := range schema.voting {
			expanded[name+VotingSuffix] = nil
		}

		for _, entry := range parseAwards(row[ColAwards]) {
			if !schema.ranked[entry.base] {
				expanded[entry.base] = "yes"
				continue
			}
			if entry.rank == "" {
				// Bare occurrence of a category that is ranked
				// elsewhere; nothing to record.
				continue
			}
			if n, err := strconv.Atoi(entry.rank); err == nil {
				expanded[entry.base+VotingSuffix] = n
			} else {
				// Not an integer rank: keep the raw token rather
				// than failing the row.
				logger.IncrCounter("clean.rank_parse_failures")
				expanded[entry.base+VotingSuffix] = entry.rank
			}
		}

		out.Append(expanded)
	}

	out.DropColumn(ColAwards)

	logger.Info("expanded awards column", logger.Fields{
		"simple": len(schema.simple),
		"voting": len(schema.voting),
	})

	return out
}

// discoverAwards is the first pass: collect every category across the table
// and classify each as ranked or not. The result is fixed before any output
// column is written.
func discoverAwards(t *table.Table) awardSchema {
	ranked := make(map[string]bool)
	for _, row := range t.Rows {
		for _, entry := range parseAwards(row[ColAwards]) {
			if entry.rank != "" {
				ranked[entry.base] = true
			} else if _, seen := ranked[entry.base]; !seen {
				ranked[entry.base] = false
			}
		}
	}

	schema := awardSchema{ranked: ranked}
	for name, isRanked := range ranked {
		if isRanked {
			schema.voting = append(schema.voting, name)
		} else {
			schema.simple = append(schema.simple, name)
		}
	}
	sort.Strings(schema.simple)
	sort.Strings(schema.voting)
	return schema
}

// parseAwards tokenizes one awards cell. nil and blank cells yield nothing.
// A ranked token keeps everything after the first dash as its rank text, so
// "MVP-3" parses as base MVP, rank 3.
func parseAwards(v any) []awardEntry {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return nil
	}

	var entries []awardEntry
	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		base, rank, found := strings.Cut(token, "-")
		if !found {
			entries = append(entries, awardEntry{base: token})
			continue
		}
		entries = append(entries, awardEntry{base: base, rank: rank})
	}
	return entries
}
