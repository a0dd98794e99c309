package scraper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/zjtippetts/Data-Acquisition-NBA/internal/table"
)

// ErrTableNotFound is returned when none of the candidate table ids match.
var ErrTableNotFound = errors.New("table not found")

// LoadTable finds the first table matching any of the candidate ids, in
// priority order, and reads it into a Table. Column headers are taken
// verbatim from the last header row. Repeated header rows embedded in the
// table body are kept as data rows; filtering them needs row content
// inspection and happens in Annotate.
func LoadTable(doc *goquery.Document, ids ...string) (*table.Table, error) {
	for _, id := range ids {
		sel := doc.Find(fmt.Sprintf("table#%s", id))
		if sel.Length() == 0 {
			continue
		}
		return readTable(sel.First()), nil
	}
	return nil, fmt.Errorf("%w: tried ids %s", ErrTableNotFound, strings.Join(ids, ", "))
}

// readTable converts a goquery table selection into a Table.
func readTable(sel *goquery.Selection) *table.Table {
	// basketball-reference tables sometimes stack an over-header row above
	// the real one; the last thead row carries the per-column names.
	var headers []string
	sel.Find("thead tr").Last().Find("th, td").Each(func(i int, cell *goquery.Selection) {
		headers = append(headers, strings.TrimSpace(cell.Text()))
	})

	tbl := table.New(headers...)

	sel.Find("tbody tr").Each(func(i int, tr *goquery.Selection) {
		row := make(table.Row, len(headers))
		tr.Find("th, td").Each(func(j int, cell *goquery.Selection) {
			if j >= len(headers) {
				return
			}
			text := strings.TrimSpace(cell.Text())
			if text == "" {
				row[headers[j]] = nil
			} else {
				row[headers[j]] = text
			}
		})
		tbl.Append(row)
	})

	return tbl
}
