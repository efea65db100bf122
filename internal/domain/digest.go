package domain

import "time"

// PageMetadata is best-effort enrichment scraped from the page itself.
// Zero value means enrichment failed or was skipped.
type PageMetadata struct {
	Title       string
	Description string
}

// DigestPage is a reserved page plus best-effort metadata for presentation.
type DigestPage struct {
	Page        Page
	Title       string
	Description string
	ReviewURL   string
}

// SitemapDigest is one sitemap's contribution to a digest: the pages reserved
// this cycle and how many pages are due overall.
type SitemapDigest struct {
	Sitemap       Sitemap
	Pages         []DigestPage
	PagesCount    int
	DuePagesCount int
}

// ClientGroup aggregates sitemaps sharing a normalized client label.
type ClientGroup struct {
	Label         string
	Sites         []SitemapDigest
	SitesCount    int
	PagesCount    int
	DuePagesCount int
}

// Digest is the assembled payload handed to the email transport.
type Digest struct {
	AccountID     int64
	PeriodLabel   string
	Subject       string
	Groups        []ClientGroup
	TotalSitemaps int
	TotalPages    int
	GeneratedAt   time.Time
}

// ScanStats summarizes one digest scan tick across all accounts.
type ScanStats struct {
	AccountsChecked int
	DigestsSent     int
	Errors          int
	Duration        time.Duration
}
