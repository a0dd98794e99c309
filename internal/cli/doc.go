// Package cli implements the command-line interface for nba-stats.
//
// The cli package provides the Cobra-based CLI with subcommands for scraping
// season pages (scrape), merging and cleaning the raw datasets (clean), and
// running both back to back (run). It coordinates the scraper, clean,
// storage, and export packages and reports a per-season success/failure
// summary in text or JSON.
package cli
