// Package storage manages the on-disk data directory layout.
//
// Raw per-dataset CSVs and saved HTML pages live under <dir>/raw, the final
// merged table under <dir>/processed. Paths support ~ expansion and
// directories are created on demand.
package storage
