package service

import "github.com/rasulkireev/cleanapp/internal/domain"

// Reconcile diffs a crawl's discovered URL set against the persisted pages
// of one sitemap. Pages absent from the crawl are deactivated, never deleted;
// previously deactivated pages that reappear are reactivated. Running the
// same unchanged crawl twice yields empty ops on the second run.
func Reconcile(discovered []string, existing []domain.Page) domain.ReconcileOps {
	discoveredSet := make(map[string]struct{}, len(discovered))
	for _, url := range discovered {
		discoveredSet[url] = struct{}{}
	}

	existingSet := make(map[string]struct{}, len(existing))
	for _, page := range existing {
		existingSet[page.URL] = struct{}{}
	}

	var ops domain.ReconcileOps

	for _, url := range discovered {
		if _, known := existingSet[url]; !known {
			ops.ToCreate = append(ops.ToCreate, url)
		}
	}

	for _, page := range existing {
		_, present := discoveredSet[page.URL]
		switch {
		case page.IsActive && !present:
			ops.ToDeactivate = append(ops.ToDeactivate, page.ID)
		case !page.IsActive && present:
			ops.ToReactivate = append(ops.ToReactivate, page.ID)
		}
	}

	return ops
}
