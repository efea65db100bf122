package domain

import "time"

// Cadence is how often a sitemap's pages are surfaced for review.
type Cadence string

const (
	CadenceDaily   Cadence = "daily"
	CadenceWeekly  Cadence = "weekly"
	CadenceMonthly Cadence = "monthly"
)

// Window returns the minimum time between two reservations of the same page.
// Unknown cadences fall back to daily, the most conservative window.
func (c Cadence) Window() time.Duration {
	switch c {
	case CadenceWeekly:
		return 7 * 24 * time.Hour
	case CadenceMonthly:
		return 30 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// urgency ranks cadences; lower is more frequent.
func (c Cadence) urgency() int {
	switch c {
	case CadenceDaily:
		return 0
	case CadenceWeekly:
		return 1
	case CadenceMonthly:
		return 2
	default:
		return 3
	}
}

func (c Cadence) Valid() bool {
	switch c {
	case CadenceDaily, CadenceWeekly, CadenceMonthly:
		return true
	}
	return false
}

// MostUrgentCadence picks the most frequent cadence from the set
// (daily beats weekly beats monthly). Returns false when the slice is empty.
func MostUrgentCadence(cadences []Cadence) (Cadence, bool) {
	if len(cadences) == 0 {
		return "", false
	}
	best := cadences[0]
	for _, c := range cadences[1:] {
		if c.urgency() < best.urgency() {
			best = c
		}
	}
	return best, true
}

// Sitemap is a tracked root XML document enumerating an account's pages.
// Deactivated, never deleted, when archived or unreachable during reparse.
type Sitemap struct {
	ID             int64     `db:"id"`
	AccountID      int64     `db:"account_id"`
	URL            string    `db:"url"`
	PagesPerReview int       `db:"pages_per_review"`
	ReviewCadence  Cadence   `db:"review_cadence"`
	ClientLabel    string    `db:"client_label"`
	IsActive       bool      `db:"is_active"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// Page belongs to exactly one sitemap. Pages are only ever deactivated,
// never deleted, and reactivated if they reappear in a later crawl.
type Page struct {
	ID                    int64      `db:"id"`
	SitemapID             int64      `db:"sitemap_id"`
	AccountID             int64      `db:"account_id"`
	URL                   string     `db:"url"`
	IsActive              bool       `db:"is_active"`
	NeedsReview           bool       `db:"needs_review"`
	Reviewed              bool       `db:"reviewed"`
	ReviewedAt            *time.Time `db:"reviewed_at"`
	LastReviewEmailSentAt *time.Time `db:"last_review_email_sent_at"`
	ReviewQueueAttempts   int        `db:"review_queue_attempts"`
	CreatedAt             time.Time  `db:"created_at"`
	UpdatedAt             time.Time  `db:"updated_at"`
}

// Eligible reports whether the page may enter a review reservation at all,
// regardless of its due window.
func (p Page) Eligible() bool {
	return p.IsActive && p.NeedsReview && !p.Reviewed
}
