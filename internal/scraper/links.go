package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractPlayerLinks scans the whole document for player profile links
// (hrefs under /players/ ending in .html) and returns them as absolute URLs
// in document order. An empty result is not an error; callers degrade to
// unknown identifiers.
func ExtractPlayerLinks(doc *goquery.Document, baseURL string) []string {
	var links []string

	doc.Find("a[href]").Each(func(i int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}
		if !isPlayerLink(href) {
			return
		}
		if strings.HasPrefix(href, "/") {
			href = baseURL + href
		}
		links = append(links, href)
	})

	return links
}

// isPlayerLink reports whether href points at a player profile page.
func isPlayerLink(href string) bool {
	return strings.Contains(href, "/players/") && strings.HasSuffix(href, ".html")
}
