package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rasulkireev/cleanapp/internal/domain"
)

// CrawlService drives sitemap ingestion: crawl the sitemap graph, reconcile
// the discovered URL set against the persisted pages, and apply the diff in
// one transaction. Each sitemap is an independent unit of work.
type CrawlService struct {
	sitemaps  SitemapStore
	pages     PageStore
	crawler   Crawler
	txManager TransactionManager
	logger    *slog.Logger
}

func NewCrawlService(
	sitemaps SitemapStore,
	pages PageStore,
	crawler Crawler,
	txManager TransactionManager,
	logger *slog.Logger,
) *CrawlService {
	return &CrawlService{
		sitemaps:  sitemaps,
		pages:     pages,
		crawler:   crawler,
		txManager: txManager,
		logger:    logger,
	}
}

// ProcessSitemap crawls one sitemap and reconciles its page set. A root
// fetch failure deactivates the sitemap as a whole and is not returned as an
// error; page-level anomalies only deactivate individual pages.
func (s *CrawlService) ProcessSitemap(ctx context.Context, sitemapID int64) (*domain.ReparseStats, error) {
	sm, err := s.sitemaps.GetByID(ctx, sitemapID)
	if err != nil {
		return nil, fmt.Errorf("get sitemap %d: %w", sitemapID, err)
	}

	stats := &domain.ReparseStats{SitemapID: sitemapID}

	if !sm.IsActive {
		s.logger.Debug("skipping inactive sitemap", "sitemap_id", sitemapID)
		return stats, nil
	}

	discovered, crawlStats, err := s.crawler.Crawl(ctx, sm.URL)
	stats.Crawl = crawlStats
	if err != nil {
		s.logger.Warn("root sitemap unreachable, deactivating",
			"sitemap_id", sitemapID,
			"url", sm.URL,
			"error", err,
		)
		if err := s.sitemaps.SetActive(ctx, sitemapID, false); err != nil {
			return stats, fmt.Errorf("deactivate sitemap %d: %w", sitemapID, err)
		}
		stats.Deactivated = true
		return stats, nil
	}

	existing, err := s.pages.ListBySitemap(ctx, sitemapID)
	if err != nil {
		return stats, fmt.Errorf("list pages for sitemap %d: %w", sitemapID, err)
	}

	ops := Reconcile(discovered, existing)
	if ops.Empty() {
		s.logger.Debug("sitemap unchanged",
			"sitemap_id", sitemapID,
			"pages_discovered", crawlStats.PagesDiscovered,
		)
		return stats, nil
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		created, err := s.pages.CreateBatch(txCtx, sitemapID, sm.AccountID, ops.ToCreate)
		if err != nil {
			return fmt.Errorf("create pages: %w", err)
		}
		stats.PagesCreated = created

		if err := s.pages.SetActiveByIDs(txCtx, ops.ToDeactivate, false); err != nil {
			return fmt.Errorf("deactivate pages: %w", err)
		}
		stats.PagesDeactivated = len(ops.ToDeactivate)

		if err := s.pages.SetActiveByIDs(txCtx, ops.ToReactivate, true); err != nil {
			return fmt.Errorf("reactivate pages: %w", err)
		}
		stats.PagesReactivated = len(ops.ToReactivate)

		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("apply reconcile ops for sitemap %d: %w", sitemapID, err)
	}

	s.logger.Info("sitemap reparsed",
		"sitemap_id", sitemapID,
		"sitemaps_visited", crawlStats.SitemapsVisited,
		"pages_discovered", crawlStats.PagesDiscovered,
		"branch_errors", crawlStats.BranchErrors,
		"bound_skips", crawlStats.BoundSkips,
		"pages_created", stats.PagesCreated,
		"pages_deactivated", stats.PagesDeactivated,
		"pages_reactivated", stats.PagesReactivated,
		"duration", crawlStats.Duration,
	)

	return stats, nil
}

// ReparseAll re-crawls every active sitemap. Failures are per sitemap; one
// bad sitemap does not stop the pass.
func (s *CrawlService) ReparseAll(ctx context.Context) error {
	sitemaps, err := s.sitemaps.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("list active sitemaps: %w", err)
	}

	var failures int
	for _, sm := range sitemaps {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if _, err := s.ProcessSitemap(ctx, sm.ID); err != nil {
			s.logger.Error("reparse failed", "sitemap_id", sm.ID, "error", err)
			failures++
		}
	}

	s.logger.Info("reparse pass completed",
		"sitemaps", len(sitemaps),
		"failures", failures,
	)
	return nil
}
