package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/rasulkireev/cleanapp/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

const sitemapColumns = `id, account_id, url, pages_per_review, review_cadence,
	client_label, is_active, created_at, updated_at`

type SitemapStore struct {
	db *sqlx.DB
}

func NewSitemapStore(db *sqlx.DB) *SitemapStore {
	return &SitemapStore{db: db}
}

func (s *SitemapStore) Create(ctx context.Context, sm *domain.Sitemap) error {
	query := `
		INSERT INTO sitemaps (account_id, url, pages_per_review, review_cadence, client_label, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	return sqlx.GetContext(ctx, GetExecutor(ctx, s.db), sm, query,
		sm.AccountID,
		sm.URL,
		sm.PagesPerReview,
		sm.ReviewCadence,
		sm.ClientLabel,
		sm.IsActive,
	)
}

func (s *SitemapStore) GetByID(ctx context.Context, id int64) (*domain.Sitemap, error) {
	var sm domain.Sitemap
	query := fmt.Sprintf(`SELECT %s FROM sitemaps WHERE id = $1`, sitemapColumns)

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &sm, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sm, nil
}

func (s *SitemapStore) ListActive(ctx context.Context) ([]domain.Sitemap, error) {
	query := fmt.Sprintf(`SELECT %s FROM sitemaps WHERE is_active ORDER BY id`, sitemapColumns)

	var sitemaps []domain.Sitemap
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &sitemaps, query)
	return sitemaps, err
}

func (s *SitemapStore) ListActiveByAccount(ctx context.Context, accountID int64) ([]domain.Sitemap, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM sitemaps WHERE account_id = $1 AND is_active ORDER BY id`,
		sitemapColumns,
	)

	var sitemaps []domain.Sitemap
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &sitemaps, query, accountID)
	return sitemaps, err
}

func (s *SitemapStore) SetActive(ctx context.Context, id int64, active bool) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE sitemaps SET is_active = $2, updated_at = $3 WHERE id = $1`,
		id, active, time.Now().UTC(),
	)
	return err
}
