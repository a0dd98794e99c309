package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zjtippetts/Data-Acquisition-NBA/internal/table"
)

// Storage resolves file locations inside the data directory.
type Storage struct {
	dataDir string
}

// New creates a Storage rooted at dataDir, expanding a leading ~ and
// creating the raw and processed subdirectories.
func New(dataDir string) (*Storage, error) {
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	for _, sub := range []string{"raw", "processed"} {
		if err := os.MkdirAll(filepath.Join(dataDir, sub), 0755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	return &Storage{dataDir: dataDir}, nil
}

// RawCSVPath is where the combined raw table for a dataset kind is written.
func (s *Storage) RawCSVPath(kind string) string {
	return filepath.Join(s.dataDir, "raw", fmt.Sprintf("nba_%s_raw.csv", kind))
}

// RawHTMLPath is where a fetched season page is saved.
func (s *Storage) RawHTMLPath(kind, season string) string {
	return filepath.Join(s.dataDir, "raw", fmt.Sprintf("nba_%s_%s.html", season, kind))
}

// ProcessedCSVPath is where the merged, cleaned table is written.
func (s *Storage) ProcessedCSVPath() string {
	return filepath.Join(s.dataDir, "processed", "nba_merged.csv")
}

// ProcessedExcelPath is the Excel flavor of the merged output.
func (s *Storage) ProcessedExcelPath() string {
	return filepath.Join(s.dataDir, "processed", "nba_merged.xlsx")
}

// SaveRaw writes the combined raw table for a dataset kind.
func (s *Storage) SaveRaw(t *table.Table, kind string) error {
	path := s.RawCSVPath(kind)
	if err := t.SaveCSV(path); err != nil {
		return fmt.Errorf("saving raw %s data: %w", kind, err)
	}
	return nil
}

// LoadRaw reads back the combined raw table for a dataset kind.
func (s *Storage) LoadRaw(kind string) (*table.Table, error) {
	t, err := table.LoadCSV(s.RawCSVPath(kind))
	if err != nil {
		return nil, fmt.Errorf("loading raw %s data: %w", kind, err)
	}
	return t, nil
}

// SaveProcessed writes the merged, cleaned table.
func (s *Storage) SaveProcessed(t *table.Table) error {
	if err := t.SaveCSV(s.ProcessedCSVPath()); err != nil {
		return fmt.Errorf("saving processed data: %w", err)
	}
	return nil
}
