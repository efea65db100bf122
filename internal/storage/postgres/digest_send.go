package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
)

type DigestSendStore struct {
	db *sqlx.DB
}

func NewDigestSendStore(db *sqlx.DB) *DigestSendStore {
	return &DigestSendStore{db: db}
}

// LastSentAt returns the timestamp of the account's most recent digest, or
// nil when no digest has ever been sent.
func (s *DigestSendStore) LastSentAt(ctx context.Context, accountID int64) (*time.Time, error) {
	var sentAt time.Time
	query := `
		SELECT created_at FROM digest_sends
		WHERE account_id = $1
		ORDER BY created_at DESC
		LIMIT 1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &sentAt, query, accountID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sentAt, nil
}

func (s *DigestSendStore) Record(ctx context.Context, accountID int64, sentAt time.Time) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`INSERT INTO digest_sends (account_id, created_at) VALUES ($1, $2)`,
		accountID, sentAt,
	)
	return err
}
