package metadata

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/rasulkireev/cleanapp/internal/domain"
)

// Fetcher enriches digest pages with a title and description scraped from
// the page itself. Enrichment is best-effort: any failure yields empty
// metadata and never aborts the digest.
type Fetcher struct {
	httpClient *http.Client
	logger     *slog.Logger
}

func NewFetcher(timeout time.Duration, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (f *Fetcher) Fetch(ctx context.Context, url string) domain.PageMetadata {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		f.logger.Debug("metadata request failed", "url", url, "error", err)
		return domain.PageMetadata{}
	}
	req.Header.Set("User-Agent", "CleanApp/1.0")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		f.logger.Debug("metadata fetch failed", "url", url, "error", err)
		return domain.PageMetadata{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f.logger.Debug("metadata fetch skipped", "url", url, "status", resp.StatusCode)
		return domain.PageMetadata{}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		f.logger.Debug("metadata parse failed", "url", url, "error", err)
		return domain.PageMetadata{}
	}

	meta := domain.PageMetadata{
		Title:       strings.TrimSpace(doc.Find("title").First().Text()),
		Description: strings.TrimSpace(doc.Find(`meta[name="description"]`).AttrOr("content", "")),
	}
	if meta.Description == "" {
		meta.Description = strings.TrimSpace(doc.Find(`meta[property="og:description"]`).AttrOr("content", ""))
	}

	return meta
}
