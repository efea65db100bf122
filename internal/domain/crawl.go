package domain

import "time"

// CrawlStats summarizes one full traversal of a sitemap graph.
type CrawlStats struct {
	SitemapsVisited int
	PagesDiscovered int
	BranchErrors    int
	BoundSkips      int
	Duration        time.Duration
}

// ReconcileOps is the diff between a crawl's discovered URL set and the
// persisted page set for one sitemap.
type ReconcileOps struct {
	ToCreate     []string
	ToDeactivate []int64
	ToReactivate []int64
}

// Empty reports whether applying the ops would change nothing.
func (o ReconcileOps) Empty() bool {
	return len(o.ToCreate) == 0 && len(o.ToDeactivate) == 0 && len(o.ToReactivate) == 0
}

// ReparseStats summarizes one reparse pass over a sitemap.
type ReparseStats struct {
	SitemapID        int64
	Crawl            CrawlStats
	PagesCreated     int
	PagesDeactivated int
	PagesReactivated int
	Deactivated      bool // the sitemap itself was deactivated (root unreachable)
}
