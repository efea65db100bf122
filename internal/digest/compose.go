package digest

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rasulkireev/cleanapp/internal/domain"
)

// DefaultClientLabel is the bucket for sitemaps without a client label.
const DefaultClientLabel = "Unlabeled clients"

// NormalizeClientLabel trims the label and maps blank ones to the default
// bucket.
func NormalizeClientLabel(label string) string {
	if trimmed := strings.TrimSpace(label); trimmed != "" {
		return trimmed
	}
	return DefaultClientLabel
}

// PeriodLabel names the digest period after the most urgent cadence present.
func PeriodLabel(cadences []domain.Cadence) string {
	cadence, ok := domain.MostUrgentCadence(cadences)
	if !ok {
		return "Review digest"
	}

	switch cadence {
	case domain.CadenceDaily:
		return "Daily review digest"
	case domain.CadenceWeekly:
		return "Weekly summary"
	case domain.CadenceMonthly:
		return "Monthly summary"
	default:
		return "Review digest"
	}
}

// Compose assembles the reserved pages of one account into a digest, grouped
// by normalized client label and sorted case-insensitively. Returns false
// when no sitemap yielded any reserved pages: there is nothing to send.
func Compose(accountID int64, sites []domain.SitemapDigest, now time.Time) (*domain.Digest, bool) {
	var withPages []domain.SitemapDigest
	for _, site := range sites {
		if len(site.Pages) > 0 {
			withPages = append(withPages, site)
		}
	}
	if len(withPages) == 0 {
		return nil, false
	}

	groupIndex := make(map[string]int)
	var groups []domain.ClientGroup
	totalPages := 0
	var cadences []domain.Cadence

	for _, site := range withPages {
		label := NormalizeClientLabel(site.Sitemap.ClientLabel)

		i, seen := groupIndex[label]
		if !seen {
			i = len(groups)
			groupIndex[label] = i
			groups = append(groups, domain.ClientGroup{Label: label})
		}

		groups[i].Sites = append(groups[i].Sites, site)
		groups[i].SitesCount++
		groups[i].PagesCount += site.PagesCount
		groups[i].DuePagesCount += site.DuePagesCount

		totalPages += len(site.Pages)
		cadences = append(cadences, site.Sitemap.ReviewCadence)
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return strings.ToLower(groups[a].Label) < strings.ToLower(groups[b].Label)
	})

	return &domain.Digest{
		AccountID:     accountID,
		PeriodLabel:   PeriodLabel(cadences),
		Subject:       subject(totalPages),
		Groups:        groups,
		TotalSitemaps: len(withPages),
		TotalPages:    totalPages,
		GeneratedAt:   now,
	}, true
}

func subject(totalPages int) string {
	if totalPages == 1 {
		return "Time to Review 1 Page"
	}
	return fmt.Sprintf("Time to Review %d Pages", totalPages)
}
