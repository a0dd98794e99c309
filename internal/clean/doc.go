// Package clean reconciles the scraped per-game and advanced tables into one
// merged, analysis-ready table.
//
// The pipeline removes League Average rows, inner-joins the two datasets on
// (Player_URL, Season, Team) with per-game values authoritative, expands the
// free-text Awards field into per-award columns, and collapses multi-team
// player seasons down to their combined-total row. Every stage takes a table
// and returns a new one; anomalies degrade to documented defaults and are
// counted in the run report rather than raised.
package clean
