// Package scraper fetches NBA league statistics pages from
// basketball-reference.com and turns them into annotated tables.
//
// A season page carries one stats table per dataset kind (per-game or
// advanced) under a known table id, plus player profile links embedded as
// hyperlinks. The scraper loads the table, extracts the profile links in
// document order, and annotates each data row with its player URL and the
// season label. Repeated header rows embedded mid-table are dropped during
// annotation. Requests are sent with a polite delay and retried with
// exponential backoff.
package scraper
