package domain

import "time"

// Account owns sitemaps and receives digest emails. PreferredSendTime is the
// local wall-clock time of day in "15:04" form; nil means the default applies.
type Account struct {
	ID                int64     `db:"id"`
	Email             string    `db:"email"`
	Timezone          string    `db:"timezone"`
	PreferredSendTime *string   `db:"preferred_send_time"`
	CreatedAt         time.Time `db:"created_at"`
}

// EmailPreference is one recipient address for an account's digests.
type EmailPreference struct {
	ID           int64  `db:"id"`
	AccountID    int64  `db:"account_id"`
	EmailAddress string `db:"email_address"`
	Enabled      bool   `db:"enabled"`
}

// DigestSendRecord marks one successfully dispatched digest.
type DigestSendRecord struct {
	ID        int64     `db:"id"`
	AccountID int64     `db:"account_id"`
	CreatedAt time.Time `db:"created_at"`
}
