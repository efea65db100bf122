package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/rasulkireev/cleanapp/internal/domain"
	"github.com/rasulkireev/cleanapp/internal/service/mocks"
)

type ReviewQueueTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	pages     *mocks.MockPageStore
	txManager *mocks.MockTransactionManager

	queue  *ReviewQueue
	logger *slog.Logger
}

func (s *ReviewQueueTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.pages = mocks.NewMockPageStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.queue = NewReviewQueue(s.pages, s.txManager, s.logger)
}

func (s *ReviewQueueTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReviewQueueTestSuite(t *testing.T) {
	suite.Run(t, new(ReviewQueueTestSuite))
}

func (s *ReviewQueueTestSuite) expectTransaction() {
	s.txManager.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func (s *ReviewQueueTestSuite) TestReservePages_StampsBatch() {
	ctx := context.Background()
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	sitemap := domain.Sitemap{ID: 7, PagesPerReview: 2, ReviewCadence: domain.CadenceDaily}

	due := []domain.Page{
		{ID: 10, SitemapID: 7, URL: "https://a.com/1", IsActive: true, NeedsReview: true},
		{ID: 11, SitemapID: 7, URL: "https://a.com/2", IsActive: true, NeedsReview: true, ReviewQueueAttempts: 3},
	}

	s.expectTransaction()
	s.pages.EXPECT().LockSitemap(gomock.Any(), int64(7)).Return(nil)
	s.pages.EXPECT().
		SelectDue(gomock.Any(), int64(7), now.Add(-24*time.Hour), 2).
		Return(due, nil)
	s.pages.EXPECT().MarkReserved(gomock.Any(), []int64{10, 11}, now).Return(nil)

	reserved, err := s.queue.ReservePages(ctx, sitemap, now)

	s.NoError(err)
	s.Len(reserved, 2)
	for _, page := range reserved {
		s.NotNil(page.LastReviewEmailSentAt)
		s.Equal(now, *page.LastReviewEmailSentAt)
	}
	s.Equal(1, reserved[0].ReviewQueueAttempts)
	s.Equal(4, reserved[1].ReviewQueueAttempts)
}

func (s *ReviewQueueTestSuite) TestReservePages_NothingDue() {
	ctx := context.Background()
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	sitemap := domain.Sitemap{ID: 7, PagesPerReview: 5, ReviewCadence: domain.CadenceWeekly}

	s.expectTransaction()
	s.pages.EXPECT().LockSitemap(gomock.Any(), int64(7)).Return(nil)
	s.pages.EXPECT().
		SelectDue(gomock.Any(), int64(7), now.Add(-7*24*time.Hour), 5).
		Return(nil, nil)

	reserved, err := s.queue.ReservePages(ctx, sitemap, now)

	s.NoError(err)
	s.Empty(reserved)
}

func (s *ReviewQueueTestSuite) TestReservePages_LimitFloorsAtOne() {
	ctx := context.Background()
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	sitemap := domain.Sitemap{ID: 7, PagesPerReview: 0, ReviewCadence: domain.CadenceDaily}

	s.expectTransaction()
	s.pages.EXPECT().LockSitemap(gomock.Any(), int64(7)).Return(nil)
	s.pages.EXPECT().
		SelectDue(gomock.Any(), int64(7), gomock.Any(), 1).
		Return(nil, nil)

	_, err := s.queue.ReservePages(ctx, sitemap, now)
	s.NoError(err)
}

func (s *ReviewQueueTestSuite) TestReservePages_LockError() {
	ctx := context.Background()
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	sitemap := domain.Sitemap{ID: 7, PagesPerReview: 2, ReviewCadence: domain.CadenceDaily}

	s.expectTransaction()
	s.pages.EXPECT().LockSitemap(gomock.Any(), int64(7)).Return(errors.New("lock timeout"))

	reserved, err := s.queue.ReservePages(ctx, sitemap, now)

	s.Error(err)
	s.Nil(reserved)
}

func (s *ReviewQueueTestSuite) TestReservePages_MarkReservedErrorAbortsBatch() {
	ctx := context.Background()
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	sitemap := domain.Sitemap{ID: 7, PagesPerReview: 2, ReviewCadence: domain.CadenceDaily}

	due := []domain.Page{{ID: 10, SitemapID: 7, IsActive: true, NeedsReview: true}}

	s.expectTransaction()
	s.pages.EXPECT().LockSitemap(gomock.Any(), int64(7)).Return(nil)
	s.pages.EXPECT().SelectDue(gomock.Any(), int64(7), gomock.Any(), 2).Return(due, nil)
	s.pages.EXPECT().MarkReserved(gomock.Any(), []int64{10}, now).Return(errors.New("db down"))

	reserved, err := s.queue.ReservePages(ctx, sitemap, now)

	s.Error(err)
	s.Nil(reserved)
}
