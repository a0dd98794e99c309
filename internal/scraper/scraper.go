package scraper

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"

	"github.com/zjtippetts/Data-Acquisition-NBA/internal/logger"
	"github.com/zjtippetts/Data-Acquisition-NBA/internal/table"
)

const (
	BaseURL   = "https://www.basketball-reference.com"
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	Timeout   = 10 * time.Second

	// DefaultDelay is the pause between requests. basketball-reference
	// rate-limits aggressive clients.
	DefaultDelay = 2 * time.Second
)

// Kind identifies a dataset kind scraped from a season page.
type Kind string

const (
	KindPerGame  Kind = "per_game"
	KindAdvanced Kind = "advanced"
)

// TableIDs returns the candidate table ids for this kind, in priority order.
func (k Kind) TableIDs() []string {
	switch k {
	case KindPerGame:
		return []string{"per_game_stats", "per_game"}
	case KindAdvanced:
		return []string{"advanced", "advanced_stats"}
	default:
		return nil
	}
}

// PageURL returns the league page URL for this kind and season.
func (k Kind) PageURL(season string) string {
	return fmt.Sprintf("%s/leagues/NBA_%s_%s.html", BaseURL, season, k)
}

// Scraper fetches and parses basketball-reference league pages
type Scraper struct {
	client  *http.Client
	baseURL string
	delay   time.Duration
	maxWait time.Duration
}

// New creates a new Scraper instance
func New() *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		baseURL: BaseURL,
		delay:   DefaultDelay,
		maxWait: 30 * time.Second,
	}
}

// SetDelay overrides the pause inserted after every fetch.
func (s *Scraper) SetDelay(d time.Duration) {
	s.delay = d
}

// FetchSeason fetches the page for (kind, season), parses the stats table,
// and returns the annotated per-season table. When savePath is non-empty the
// raw HTML is written there as well.
func (s *Scraper) FetchSeason(kind Kind, season, savePath string) (*table.Table, error) {
	url := kind.PageURL(season)

	html, err := s.fetchHTML(url)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}

	if savePath != "" {
		if err := saveHTML(savePath, html); err != nil {
			// Losing the raw copy is not worth failing the season.
			logger.Warn("could not save raw HTML", logger.Fields{
				"path": savePath,
			})
		}
	}

	tbl, err := s.parseSeason(strings.NewReader(html), kind, season)
	if err != nil {
		return nil, err
	}

	time.Sleep(s.delay)
	return tbl, nil
}

// ParseSeasonFile parses a previously saved HTML file instead of fetching.
func (s *Scraper) ParseSeasonFile(path string, kind Kind, season string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return s.parseSeason(f, kind, season)
}

// parseSeason loads the stats table, extracts player links, and annotates.
func (s *Scraper) parseSeason(r io.Reader, kind Kind, season string) (*table.Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	tbl, err := LoadTable(doc, kind.TableIDs()...)
	if err != nil {
		return nil, fmt.Errorf("season %s %s: %w", season, kind, err)
	}

	links := ExtractPlayerLinks(doc, s.baseURL)
	if len(links) == 0 {
		logger.Warn("no player links found", logger.Fields{
			"season": season,
			"kind":   string(kind),
		})
	}

	return Annotate(tbl, links, season), nil
}

// fetchHTML performs a GET with browser-like headers, retrying transient
// failures with exponential backoff.
func (s *Scraper) fetchHTML(url string) (string, error) {
	var body string

	operation := func() error {
		req, err := http.NewRequest("GET", url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("User-Agent", UserAgent)
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")

		resp, err := s.client.Do(req)
		if err != nil {
			return fmt.Errorf("fetching page: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
				return backoff.Permanent(err)
			}
			return err
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading body: %w", err)
		}
		body = string(data)
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = s.maxWait

	if err := backoff.Retry(operation, bo); err != nil {
		return "", err
	}
	return body, nil
}

// saveHTML writes raw page HTML to disk, creating parent directories.
func saveHTML(path, html string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return fmt.Errorf("writing HTML: %w", err)
	}
	return nil
}
