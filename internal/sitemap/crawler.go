package sitemap

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/rasulkireev/cleanapp/internal/domain"
)

// Getter is the fetch capability the crawler consumes.
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Crawler discovers page URLs by depth-first expansion of a sitemap graph.
// Bounds: recursion depth, a visited set for cycles, and a global cap on
// sitemaps processed per crawl. Branch failures are local; only a root fetch
// failure aborts the crawl.
type Crawler struct {
	fetcher     Getter
	maxDepth    int
	maxSitemaps int
	logger      *slog.Logger
}

func NewCrawler(fetcher Getter, maxDepth, maxSitemaps int, logger *slog.Logger) *Crawler {
	return &Crawler{
		fetcher:     fetcher,
		maxDepth:    maxDepth,
		maxSitemaps: maxSitemaps,
		logger:      logger,
	}
}

// traversal carries the mutable crawl state through the recursion instead of
// closing over shared variables.
type traversal struct {
	visited map[string]struct{}
	found   map[string]struct{}
	stats   domain.CrawlStats
}

// Crawl expands the sitemap graph rooted at rootURL and returns the
// discovered page URLs in sorted order. The returned error is non-nil only
// when the root document itself cannot be fetched.
func (c *Crawler) Crawl(ctx context.Context, rootURL string) ([]string, domain.CrawlStats, error) {
	start := time.Now()

	t := &traversal{
		visited: make(map[string]struct{}),
		found:   make(map[string]struct{}),
	}

	data, err := c.fetcher.Get(ctx, rootURL)
	if err != nil {
		t.stats.Duration = time.Since(start)
		return nil, t.stats, err
	}

	t.visited[rootURL] = struct{}{}
	t.stats.SitemapsVisited++
	c.expand(ctx, t, rootURL, data, 0)

	urls := make([]string, 0, len(t.found))
	for url := range t.found {
		urls = append(urls, url)
	}
	sort.Strings(urls)

	t.stats.PagesDiscovered = len(urls)
	t.stats.Duration = time.Since(start)

	return urls, t.stats, nil
}

func (c *Crawler) expand(ctx context.Context, t *traversal, url string, data []byte, depth int) {
	doc, err := ParseDocument(data)
	if err != nil {
		c.logger.Warn("failed to parse sitemap document",
			"url", url,
			"depth", depth,
			"error", err,
		)
		t.stats.BranchErrors++
		return
	}

	if !doc.IsIndex() {
		for _, pageURL := range doc.PageURLs {
			t.found[pageURL] = struct{}{}
		}
		return
	}

	for _, nested := range doc.SitemapURLs {
		if _, seen := t.visited[nested]; seen {
			c.logger.Warn("sitemap cycle detected, skipping branch",
				"url", nested,
				"depth", depth,
			)
			t.stats.BoundSkips++
			continue
		}
		if depth+1 > c.maxDepth {
			c.logger.Warn("max sitemap depth reached, skipping branch",
				"url", nested,
				"depth", depth+1,
				"max_depth", c.maxDepth,
			)
			t.stats.BoundSkips++
			continue
		}
		if t.stats.SitemapsVisited >= c.maxSitemaps {
			c.logger.Warn("max sitemaps per crawl reached, skipping branch",
				"url", nested,
				"max_sitemaps", c.maxSitemaps,
			)
			t.stats.BoundSkips++
			continue
		}

		t.visited[nested] = struct{}{}
		t.stats.SitemapsVisited++

		nestedData, err := c.fetcher.Get(ctx, nested)
		if err != nil {
			c.logger.Warn("failed to fetch nested sitemap",
				"url", nested,
				"depth", depth+1,
				"error", err,
			)
			t.stats.BranchErrors++
			continue
		}

		c.expand(ctx, t, nested, nestedData, depth+1)
	}
}
