package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/rasulkireev/cleanapp/internal/domain"
)

const pageColumns = `id, sitemap_id, account_id, url, is_active, needs_review, reviewed,
	reviewed_at, last_review_email_sent_at, review_queue_attempts, created_at, updated_at`

type PageStore struct {
	db *sqlx.DB
}

func NewPageStore(db *sqlx.DB) *PageStore {
	return &PageStore{db: db}
}

func (s *PageStore) ListBySitemap(ctx context.Context, sitemapID int64) ([]domain.Page, error) {
	query := fmt.Sprintf(`SELECT %s FROM pages WHERE sitemap_id = $1 ORDER BY id`, pageColumns)

	var pages []domain.Page
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &pages, query, sitemapID)
	return pages, err
}

// CreateBatch inserts newly discovered pages. A concurrent crawl inserting
// the same (sitemap_id, url) is a no-op, not an error. Returns the number of
// rows actually created.
func (s *PageStore) CreateBatch(ctx context.Context, sitemapID, accountID int64, urls []string) (int, error) {
	if len(urls) == 0 {
		return 0, nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO pages (sitemap_id, account_id, url) VALUES ")
	valueArgs := make([]interface{}, 0, len(urls)+2)
	valueArgs = append(valueArgs, sitemapID, accountID)

	for i, url := range urls {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($1, $2, $")
		sb.WriteString(strconv.Itoa(i + 3))
		sb.WriteString(")")
		valueArgs = append(valueArgs, url)
	}
	sb.WriteString(" ON CONFLICT (sitemap_id, url) DO NOTHING")

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), valueArgs...)
	if err != nil {
		return 0, err
	}

	created, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(created), nil
}

func (s *PageStore) SetActiveByIDs(ctx context.Context, ids []int64, active bool) error {
	if len(ids) == 0 {
		return nil
	}

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE pages SET is_active = $2, updated_at = $3 WHERE id = ANY($1)`,
		pq.Array(ids), active, time.Now().UTC(),
	)
	return err
}

// LockSitemap serializes reservations for one sitemap across processes. The
// advisory lock is transaction-scoped, so it must run inside a transaction
// and is released at commit or rollback.
func (s *PageStore) LockSitemap(ctx context.Context, sitemapID int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`SELECT pg_advisory_xact_lock($1)`, sitemapID,
	)
	return err
}

// SelectDue returns up to limit eligible pages whose cadence window has
// elapsed, in the canonical reservation order: never-sent first, then stalest
// send, ties broken by review and discovery order. Rows are locked FOR UPDATE
// so a concurrent reservation serializes behind this one.
func (s *PageStore) SelectDue(ctx context.Context, sitemapID int64, dueBefore time.Time, limit int) ([]domain.Page, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM pages
		WHERE sitemap_id = $1
		  AND is_active AND needs_review AND NOT reviewed
		  AND (last_review_email_sent_at IS NULL OR last_review_email_sent_at <= $2)
		ORDER BY last_review_email_sent_at ASC NULLS FIRST,
		         reviewed_at ASC NULLS FIRST,
		         created_at ASC,
		         id ASC
		LIMIT $3
		FOR UPDATE`, pageColumns)

	var pages []domain.Page
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &pages, query, sitemapID, dueBefore, limit)
	return pages, err
}

func (s *PageStore) CountDue(ctx context.Context, sitemapID int64, dueBefore time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM pages
		WHERE sitemap_id = $1
		  AND is_active AND needs_review AND NOT reviewed
		  AND (last_review_email_sent_at IS NULL OR last_review_email_sent_at <= $2)`

	var count int
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &count, query, sitemapID, dueBefore)
	return count, err
}

// MarkReserved stamps the selected batch in one statement so a crash leaves
// either zero or all pages stamped.
func (s *PageStore) MarkReserved(ctx context.Context, ids []int64, sentAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE pages
		 SET last_review_email_sent_at = $2,
		     review_queue_attempts = review_queue_attempts + 1,
		     updated_at = $2
		 WHERE id = ANY($1)`,
		pq.Array(ids), sentAt,
	)
	return err
}

func (s *PageStore) MarkReviewed(ctx context.Context, id int64, reviewedAt time.Time) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE pages SET reviewed = TRUE, reviewed_at = $2, updated_at = $2 WHERE id = $1`,
		id, reviewedAt,
	)
	return err
}

func (s *PageStore) SetNeedsReview(ctx context.Context, ids []int64, needsReview bool) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE pages SET needs_review = $2, updated_at = $3 WHERE id = ANY($1)`,
		pq.Array(ids), needsReview, time.Now().UTC(),
	)
	if err != nil {
		return 0, err
	}
	updated, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(updated), nil
}
