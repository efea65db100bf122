package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/rasulkireev/cleanapp/internal/domain"
)

type SitemapStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Sitemap, error)
	ListActive(ctx context.Context) ([]domain.Sitemap, error)
	ListActiveByAccount(ctx context.Context, accountID int64) ([]domain.Sitemap, error)
	SetActive(ctx context.Context, id int64, active bool) error
}

type PageStore interface {
	ListBySitemap(ctx context.Context, sitemapID int64) ([]domain.Page, error)
	CreateBatch(ctx context.Context, sitemapID, accountID int64, urls []string) (int, error)
	SetActiveByIDs(ctx context.Context, ids []int64, active bool) error
	LockSitemap(ctx context.Context, sitemapID int64) error
	SelectDue(ctx context.Context, sitemapID int64, dueBefore time.Time, limit int) ([]domain.Page, error)
	CountDue(ctx context.Context, sitemapID int64, dueBefore time.Time) (int, error)
	MarkReserved(ctx context.Context, ids []int64, sentAt time.Time) error
}

type AccountStore interface {
	ListWithActiveSitemaps(ctx context.Context) ([]domain.Account, error)
	Recipients(ctx context.Context, accountID int64) ([]string, error)
}

type DigestSendStore interface {
	LastSentAt(ctx context.Context, accountID int64) (*time.Time, error)
	Record(ctx context.Context, accountID int64, sentAt time.Time) error
}

type Crawler interface {
	Crawl(ctx context.Context, rootURL string) ([]string, domain.CrawlStats, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PageReserver is the review-queue reservation capability consumed by the
// digest scan.
type PageReserver interface {
	ReservePages(ctx context.Context, sitemap domain.Sitemap, now time.Time) ([]domain.Page, error)
}

// Emailer is the outbound email transport capability.
type Emailer interface {
	Send(ctx context.Context, recipients []string, subject, htmlBody, textBody string) error
}

// MetadataFetcher enriches pages with display metadata, best-effort.
type MetadataFetcher interface {
	Fetch(ctx context.Context, url string) domain.PageMetadata
}
