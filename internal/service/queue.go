package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rasulkireev/cleanapp/internal/domain"
)

// ReviewQueue reserves batches of due pages for review digests. A page is
// due when it has never been sent or its cadence window has elapsed
// (inclusive at the boundary). Selection order is deterministic; the whole
// reservation is one transaction serialized per sitemap, so concurrent calls
// cannot double-reserve a page.
type ReviewQueue struct {
	pages     PageStore
	txManager TransactionManager
	logger    *slog.Logger
}

func NewReviewQueue(pages PageStore, txManager TransactionManager, logger *slog.Logger) *ReviewQueue {
	return &ReviewQueue{
		pages:     pages,
		txManager: txManager,
		logger:    logger,
	}
}

// ReservePages selects up to sitemap.PagesPerReview due pages and stamps
// them in the same transaction. Zero due pages yields an empty batch, not an
// error.
func (q *ReviewQueue) ReservePages(ctx context.Context, sitemap domain.Sitemap, now time.Time) ([]domain.Page, error) {
	dueBefore := now.Add(-sitemap.ReviewCadence.Window())

	limit := sitemap.PagesPerReview
	if limit < 1 {
		limit = 1
	}

	var reserved []domain.Page
	err := q.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := q.pages.LockSitemap(txCtx, sitemap.ID); err != nil {
			return fmt.Errorf("lock sitemap: %w", err)
		}

		due, err := q.pages.SelectDue(txCtx, sitemap.ID, dueBefore, limit)
		if err != nil {
			return fmt.Errorf("select due pages: %w", err)
		}
		if len(due) == 0 {
			return nil
		}

		ids := make([]int64, len(due))
		for i, page := range due {
			ids[i] = page.ID
		}

		if err := q.pages.MarkReserved(txCtx, ids, now); err != nil {
			return fmt.Errorf("mark reserved: %w", err)
		}

		sentAt := now
		for i := range due {
			due[i].LastReviewEmailSentAt = &sentAt
			due[i].ReviewQueueAttempts++
		}
		reserved = due
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(reserved) > 0 {
		q.logger.Debug("reserved pages for review",
			"sitemap_id", sitemap.ID,
			"count", len(reserved),
		)
	}

	return reserved, nil
}
