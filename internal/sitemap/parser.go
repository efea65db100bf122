package sitemap

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Document is one parsed sitemap XML document: either a sitemap index
// (SitemapURLs non-empty) or a URL set. A document never contributes both;
// index entries take precedence.
type Document struct {
	SitemapURLs []string
	PageURLs    []string
}

// IsIndex reports whether the document references nested sitemaps rather
// than terminal page URLs.
func (d Document) IsIndex() bool {
	return len(d.SitemapURLs) > 0
}

type xmlLoc struct {
	Loc string `xml:"loc"`
}

// xmlDocument matches both <sitemapindex> and <urlset> roots. Element names
// are matched by local name, which covers documents in the
// http://www.sitemaps.org/schemas/sitemap/0.9 namespace as well as
// unnamespaced ones.
type xmlDocument struct {
	XMLName  xml.Name
	Sitemaps []xmlLoc `xml:"sitemap"`
	URLs     []xmlLoc `xml:"url"`
}

// ParseDocument parses sitemap XML into a Document. Entries with a missing
// or blank <loc> are skipped, not treated as errors.
func ParseDocument(data []byte) (Document, error) {
	var parsed xmlDocument
	if err := xml.Unmarshal(data, &parsed); err != nil {
		return Document{}, fmt.Errorf("parse sitemap xml: %w", err)
	}

	var doc Document
	for _, entry := range parsed.Sitemaps {
		if loc := strings.TrimSpace(entry.Loc); loc != "" {
			doc.SitemapURLs = append(doc.SitemapURLs, loc)
		}
	}
	if doc.IsIndex() {
		return doc, nil
	}

	for _, entry := range parsed.URLs {
		if loc := strings.TrimSpace(entry.Loc); loc != "" {
			doc.PageURLs = append(doc.PageURLs, loc)
		}
	}
	return doc, nil
}
