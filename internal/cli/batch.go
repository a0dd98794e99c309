package cli

import (
	"github.com/zjtippetts/Data-Acquisition-NBA/internal/logger"
	"github.com/zjtippetts/Data-Acquisition-NBA/internal/scraper"
	"github.com/zjtippetts/Data-Acquisition-NBA/internal/storage"
	"github.com/zjtippetts/Data-Acquisition-NBA/internal/table"
)

// SeasonSource yields one annotated table per (kind, season). Satisfied by
// *scraper.Scraper; stubbed in tests.
type SeasonSource interface {
	FetchSeason(kind scraper.Kind, season, savePath string) (*table.Table, error)
	ParseSeasonFile(path string, kind scraper.Kind, season string) (*table.Table, error)
}

// Batch drives the acquisition run: every dataset kind for every season,
// with per-season failures isolated so one bad page never sinks the rest.
type Batch struct {
	Scraper   SeasonSource
	Store     *storage.Storage
	SaveHTML  bool
	FromFiles bool
}

// SeasonFailure records one (kind, season) that could not be scraped.
type SeasonFailure struct {
	Kind   string `json:"kind"`
	Season string `json:"season"`
	Error  string `json:"error"`
}

// ScrapeSummary reports how the batch went.
type ScrapeSummary struct {
	Succeeded []string          `json:"succeeded"`
	Failed    []SeasonFailure   `json:"failed"`
	RowCounts map[string]int    `json:"row_counts"`
	RawPaths  map[string]string `json:"raw_paths,omitempty"`
}

// Run scrapes both dataset kinds for every season, combines the per-season
// tables per kind, and saves the combined raw CSVs. A season counts as
// succeeded when both kinds loaded.
func (b *Batch) Run(seasons []string) *ScrapeSummary {
	summary := &ScrapeSummary{
		RowCounts: make(map[string]int),
		RawPaths:  make(map[string]string),
	}

	kinds := []scraper.Kind{scraper.KindPerGame, scraper.KindAdvanced}
	combined := make(map[scraper.Kind]*table.Table)

	for _, season := range seasons {
		ok := true
		for _, kind := range kinds {
			tbl, err := b.fetchOne(kind, season)
			if err != nil {
				logger.Error("season failed", logger.Fields{
					"season": season,
					"kind":   string(kind),
				}, err)
				summary.Failed = append(summary.Failed, SeasonFailure{
					Kind:   string(kind),
					Season: season,
					Error:  err.Error(),
				})
				ok = false
				continue
			}

			logger.Info("scraped season", logger.Fields{
				"season": season,
				"kind":   string(kind),
				"rows":   len(tbl.Rows),
			})

			if combined[kind] == nil {
				combined[kind] = tbl
			} else {
				combined[kind].Concat(tbl)
			}
		}
		if ok {
			summary.Succeeded = append(summary.Succeeded, season)
		}
	}

	for _, kind := range kinds {
		tbl := combined[kind]
		if tbl == nil {
			continue
		}
		tbl.ReorderPriority(table.PriorityColumns...)
		if err := b.Store.SaveRaw(tbl, string(kind)); err != nil {
			logger.Error("could not save raw data", logger.Fields{
				"kind": string(kind),
			}, err)
			summary.Failed = append(summary.Failed, SeasonFailure{
				Kind:  string(kind),
				Error: err.Error(),
			})
			continue
		}
		summary.RowCounts[string(kind)] = len(tbl.Rows)
		summary.RawPaths[string(kind)] = b.Store.RawCSVPath(string(kind))
	}

	return summary
}

func (b *Batch) fetchOne(kind scraper.Kind, season string) (*table.Table, error) {
	if b.FromFiles {
		return b.Scraper.ParseSeasonFile(b.Store.RawHTMLPath(string(kind), season), kind, season)
	}
	savePath := ""
	if b.SaveHTML {
		savePath = b.Store.RawHTMLPath(string(kind), season)
	}
	return b.Scraper.FetchSeason(kind, season, savePath)
}
