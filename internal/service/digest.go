package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rasulkireev/cleanapp/internal/digest"
	"github.com/rasulkireev/cleanapp/internal/domain"
)

// DigestService evaluates accounts on each scan tick and dispatches review
// digests to the ones that are due. Each account is an independent unit of
// work; a failure for one account never stops the scan.
type DigestService struct {
	accounts AccountStore
	sitemaps SitemapStore
	pages    PageStore
	queue    PageReserver
	sends    DigestSendStore
	emailer  Emailer
	metadata MetadataFetcher
	policy   digest.Policy
	siteURL  string
	logger   *slog.Logger
	now      func() time.Time
}

func NewDigestService(
	accounts AccountStore,
	sitemaps SitemapStore,
	pages PageStore,
	queue PageReserver,
	sends DigestSendStore,
	emailer Emailer,
	metadata MetadataFetcher,
	policy digest.Policy,
	siteURL string,
	logger *slog.Logger,
) *DigestService {
	return &DigestService{
		accounts: accounts,
		sitemaps: sitemaps,
		pages:    pages,
		queue:    queue,
		sends:    sends,
		emailer:  emailer,
		metadata: metadata,
		policy:   policy,
		siteURL:  siteURL,
		logger:   logger,
		now:      time.Now,
	}
}

// ScanAccounts runs one digest scan tick over all accounts with active
// sitemaps.
func (s *DigestService) ScanAccounts(ctx context.Context) (*domain.ScanStats, error) {
	start := s.now()

	accounts, err := s.accounts.ListWithActiveSitemaps(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	stats := &domain.ScanStats{}
	for _, account := range accounts {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}
		stats.AccountsChecked++

		sent, err := s.evaluateAccount(ctx, account)
		if err != nil {
			s.logger.Error("digest evaluation failed",
				"account_id", account.ID,
				"error", err,
			)
			stats.Errors++
			continue
		}
		if sent {
			stats.DigestsSent++
		}
	}

	stats.Duration = time.Since(start)
	s.logger.Info("digest scan completed",
		"accounts_checked", stats.AccountsChecked,
		"digests_sent", stats.DigestsSent,
		"errors", stats.Errors,
		"duration", stats.Duration,
	)

	return stats, nil
}

func (s *DigestService) evaluateAccount(ctx context.Context, account domain.Account) (bool, error) {
	now := s.now()

	sitemaps, err := s.sitemaps.ListActiveByAccount(ctx, account.ID)
	if err != nil {
		return false, fmt.Errorf("list sitemaps: %w", err)
	}
	if len(sitemaps) == 0 {
		return false, nil
	}

	lastSent, err := s.sends.LastSentAt(ctx, account.ID)
	if err != nil {
		return false, fmt.Errorf("last digest send: %w", err)
	}

	cadences := make([]domain.Cadence, len(sitemaps))
	for i, sm := range sitemaps {
		cadences[i] = sm.ReviewCadence
	}

	if !s.policy.ShouldSend(account, cadences, lastSent, now) {
		return false, nil
	}

	return s.sendDigest(ctx, account, sitemaps, now)
}

func (s *DigestService) sendDigest(ctx context.Context, account domain.Account, sitemaps []domain.Sitemap, now time.Time) (bool, error) {
	var sites []domain.SitemapDigest

	for _, sm := range sitemaps {
		dueBefore := now.Add(-sm.ReviewCadence.Window())
		dueCount, err := s.pages.CountDue(ctx, sm.ID, dueBefore)
		if err != nil {
			s.logger.Error("count due pages failed", "sitemap_id", sm.ID, "error", err)
			continue
		}

		reserved, err := s.queue.ReservePages(ctx, sm, now)
		if err != nil {
			s.logger.Error("reservation failed", "sitemap_id", sm.ID, "error", err)
			continue
		}
		if len(reserved) == 0 {
			continue
		}

		pages := make([]domain.DigestPage, len(reserved))
		for i, page := range reserved {
			meta := s.metadata.Fetch(ctx, page.URL)
			pages[i] = domain.DigestPage{
				Page:        page,
				Title:       meta.Title,
				Description: meta.Description,
				ReviewURL:   fmt.Sprintf("%s/pages/%d/review", s.siteURL, page.ID),
			}
		}

		sites = append(sites, domain.SitemapDigest{
			Sitemap:       sm,
			Pages:         pages,
			PagesCount:    len(pages),
			DuePagesCount: dueCount,
		})
	}

	d, ok := digest.Compose(account.ID, sites, now)
	if !ok {
		s.logger.Debug("nothing to send", "account_id", account.ID)
		return false, nil
	}

	recipients, err := s.accounts.Recipients(ctx, account.ID)
	if err != nil {
		return false, fmt.Errorf("resolve recipients: %w", err)
	}

	htmlBody := digest.RenderHTML(d)
	textBody := digest.RenderText(d)
	if err := s.emailer.Send(ctx, recipients, d.Subject, htmlBody, textBody); err != nil {
		return false, fmt.Errorf("send digest: %w", err)
	}

	if err := s.sends.Record(ctx, account.ID, now); err != nil {
		return false, fmt.Errorf("record digest send: %w", err)
	}

	s.logger.Info("digest sent",
		"account_id", account.ID,
		"recipients", len(recipients),
		"total_sitemaps", d.TotalSitemaps,
		"total_pages", d.TotalPages,
		"period", d.PeriodLabel,
	)

	return true, nil
}
