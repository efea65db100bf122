package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/rasulkireev/cleanapp/internal/domain"
)

type AccountStore struct {
	db *sqlx.DB
}

func NewAccountStore(db *sqlx.DB) *AccountStore {
	return &AccountStore{db: db}
}

// ListWithActiveSitemaps returns the accounts worth evaluating on a digest
// scan tick: those owning at least one active sitemap.
func (s *AccountStore) ListWithActiveSitemaps(ctx context.Context) ([]domain.Account, error) {
	query := `
		SELECT DISTINCT a.id, a.email, a.timezone, a.preferred_send_time, a.created_at
		FROM accounts a
		INNER JOIN sitemaps sm ON sm.account_id = a.id AND sm.is_active
		ORDER BY a.id`

	var accounts []domain.Account
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &accounts, query)
	return accounts, err
}

// Recipients returns the enabled notification addresses for an account,
// falling back to the account's own email when none are configured.
func (s *AccountStore) Recipients(ctx context.Context, accountID int64) ([]string, error) {
	query := `
		SELECT email_address FROM email_preferences
		WHERE account_id = $1 AND enabled
		ORDER BY email_address`

	var recipients []string
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &recipients, query, accountID); err != nil {
		return nil, err
	}
	if len(recipients) > 0 {
		return recipients, nil
	}

	var email string
	if err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &email,
		`SELECT email FROM accounts WHERE id = $1`, accountID); err != nil {
		return nil, err
	}
	return []string{email}, nil
}
