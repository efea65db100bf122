package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/rasulkireev/cleanapp/internal/domain"
	"github.com/rasulkireev/cleanapp/internal/service/mocks"
)

type CrawlServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	sitemaps  *mocks.MockSitemapStore
	pages     *mocks.MockPageStore
	crawler   *mocks.MockCrawler
	txManager *mocks.MockTransactionManager

	service *CrawlService
	logger  *slog.Logger
}

func (s *CrawlServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.sitemaps = mocks.NewMockSitemapStore(s.ctrl)
	s.pages = mocks.NewMockPageStore(s.ctrl)
	s.crawler = mocks.NewMockCrawler(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewCrawlService(s.sitemaps, s.pages, s.crawler, s.txManager, s.logger)
}

func (s *CrawlServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestCrawlServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CrawlServiceTestSuite))
}

func (s *CrawlServiceTestSuite) activeSitemap() *domain.Sitemap {
	return &domain.Sitemap{
		ID:        1,
		AccountID: 100,
		URL:       "https://a.com/sitemap.xml",
		IsActive:  true,
	}
}

func (s *CrawlServiceTestSuite) expectTransaction() {
	s.txManager.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func (s *CrawlServiceTestSuite) TestProcessSitemap_AppliesDiff() {
	ctx := context.Background()

	discovered := []string{"https://a.com/back", "https://a.com/kept", "https://a.com/new"}
	existing := []domain.Page{
		{ID: 10, URL: "https://a.com/kept", IsActive: true},
		{ID: 11, URL: "https://a.com/gone", IsActive: true},
		{ID: 12, URL: "https://a.com/back", IsActive: false},
	}

	s.sitemaps.EXPECT().GetByID(ctx, int64(1)).Return(s.activeSitemap(), nil)
	s.crawler.EXPECT().Crawl(ctx, "https://a.com/sitemap.xml").
		Return(discovered, domain.CrawlStats{SitemapsVisited: 1, PagesDiscovered: 3}, nil)
	s.pages.EXPECT().ListBySitemap(ctx, int64(1)).Return(existing, nil)

	s.expectTransaction()
	s.pages.EXPECT().CreateBatch(gomock.Any(), int64(1), int64(100), []string{"https://a.com/new"}).Return(1, nil)
	s.pages.EXPECT().SetActiveByIDs(gomock.Any(), []int64{11}, false).Return(nil)
	s.pages.EXPECT().SetActiveByIDs(gomock.Any(), []int64{12}, true).Return(nil)

	stats, err := s.service.ProcessSitemap(ctx, 1)

	s.NoError(err)
	s.Equal(1, stats.PagesCreated)
	s.Equal(1, stats.PagesDeactivated)
	s.Equal(1, stats.PagesReactivated)
	s.False(stats.Deactivated)
}

func (s *CrawlServiceTestSuite) TestProcessSitemap_UnchangedSkipsWrite() {
	ctx := context.Background()

	s.sitemaps.EXPECT().GetByID(ctx, int64(1)).Return(s.activeSitemap(), nil)
	s.crawler.EXPECT().Crawl(ctx, "https://a.com/sitemap.xml").
		Return([]string{"https://a.com/kept"}, domain.CrawlStats{SitemapsVisited: 1, PagesDiscovered: 1}, nil)
	s.pages.EXPECT().ListBySitemap(ctx, int64(1)).
		Return([]domain.Page{{ID: 10, URL: "https://a.com/kept", IsActive: true}}, nil)

	stats, err := s.service.ProcessSitemap(ctx, 1)

	s.NoError(err)
	s.Zero(stats.PagesCreated)
}

func (s *CrawlServiceTestSuite) TestProcessSitemap_RootFetchFailureDeactivates() {
	ctx := context.Background()

	s.sitemaps.EXPECT().GetByID(ctx, int64(1)).Return(s.activeSitemap(), nil)
	s.crawler.EXPECT().Crawl(ctx, "https://a.com/sitemap.xml").
		Return(nil, domain.CrawlStats{}, errors.New("unexpected status: 404"))
	s.sitemaps.EXPECT().SetActive(ctx, int64(1), false).Return(nil)

	stats, err := s.service.ProcessSitemap(ctx, 1)

	s.NoError(err)
	s.True(stats.Deactivated)
}

func (s *CrawlServiceTestSuite) TestProcessSitemap_InactiveSkipped() {
	ctx := context.Background()

	inactive := s.activeSitemap()
	inactive.IsActive = false
	s.sitemaps.EXPECT().GetByID(ctx, int64(1)).Return(inactive, nil)

	stats, err := s.service.ProcessSitemap(ctx, 1)

	s.NoError(err)
	s.Zero(stats.Crawl.SitemapsVisited)
}

func (s *CrawlServiceTestSuite) TestProcessSitemap_NotFound() {
	ctx := context.Background()

	s.sitemaps.EXPECT().GetByID(ctx, int64(1)).Return(nil, errors.New("not found"))

	_, err := s.service.ProcessSitemap(ctx, 1)
	s.Error(err)
}

func (s *CrawlServiceTestSuite) TestProcessSitemap_TransactionFailure() {
	ctx := context.Background()

	s.sitemaps.EXPECT().GetByID(ctx, int64(1)).Return(s.activeSitemap(), nil)
	s.crawler.EXPECT().Crawl(ctx, "https://a.com/sitemap.xml").
		Return([]string{"https://a.com/new"}, domain.CrawlStats{SitemapsVisited: 1, PagesDiscovered: 1}, nil)
	s.pages.EXPECT().ListBySitemap(ctx, int64(1)).Return(nil, nil)

	s.expectTransaction()
	s.pages.EXPECT().CreateBatch(gomock.Any(), int64(1), int64(100), []string{"https://a.com/new"}).
		Return(0, errors.New("db down"))

	_, err := s.service.ProcessSitemap(ctx, 1)
	s.Error(err)
}

func (s *CrawlServiceTestSuite) TestReparseAll_FailuresAreIsolated() {
	ctx := context.Background()

	active := []domain.Sitemap{
		{ID: 1, AccountID: 100, URL: "https://a.com/sitemap.xml", IsActive: true},
		{ID: 2, AccountID: 100, URL: "https://b.com/sitemap.xml", IsActive: true},
	}

	s.sitemaps.EXPECT().ListActive(ctx).Return(active, nil)

	s.sitemaps.EXPECT().GetByID(ctx, int64(1)).Return(nil, errors.New("db hiccup"))

	second := &active[1]
	s.sitemaps.EXPECT().GetByID(ctx, int64(2)).Return(second, nil)
	s.crawler.EXPECT().Crawl(ctx, "https://b.com/sitemap.xml").
		Return(nil, domain.CrawlStats{SitemapsVisited: 1}, nil)
	s.pages.EXPECT().ListBySitemap(ctx, int64(2)).Return(nil, nil)

	err := s.service.ReparseAll(ctx)
	s.NoError(err)
}
