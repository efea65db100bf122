package digest

import (
	"fmt"
	"html"
	"strings"

	"github.com/rasulkireev/cleanapp/internal/domain"
)

// RenderText produces the plain-text body for a digest. Presentation beyond
// this fallback belongs to the delivery worker consuming the digest payload.
func RenderText(d *domain.Digest) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s\n\n", d.PeriodLabel)
	fmt.Fprintf(&sb, "%d page(s) from %d site(s) are waiting for review.\n", d.TotalPages, d.TotalSitemaps)

	for _, group := range d.Groups {
		fmt.Fprintf(&sb, "\n%s (%d site(s), %d due)\n", group.Label, group.SitesCount, group.DuePagesCount)
		for _, site := range group.Sites {
			fmt.Fprintf(&sb, "  %s\n", site.Sitemap.URL)
			for _, page := range site.Pages {
				title := page.Title
				if title == "" {
					title = page.Page.URL
				}
				fmt.Fprintf(&sb, "    - %s\n      %s\n", title, page.ReviewURL)
			}
		}
	}

	return sb.String()
}

// RenderHTML produces a minimal HTML alternative of the same content.
func RenderHTML(d *domain.Digest) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "<h1>%s</h1>\n", html.EscapeString(d.PeriodLabel))
	fmt.Fprintf(&sb, "<p>%d page(s) from %d site(s) are waiting for review.</p>\n", d.TotalPages, d.TotalSitemaps)

	for _, group := range d.Groups {
		fmt.Fprintf(&sb, "<h2>%s</h2>\n<ul>\n", html.EscapeString(group.Label))
		for _, site := range group.Sites {
			fmt.Fprintf(&sb, "<li>%s<ul>\n", html.EscapeString(site.Sitemap.URL))
			for _, page := range site.Pages {
				title := page.Title
				if title == "" {
					title = page.Page.URL
				}
				fmt.Fprintf(&sb, `<li><a href="%s">%s</a></li>`+"\n",
					html.EscapeString(page.ReviewURL), html.EscapeString(title))
			}
			sb.WriteString("</ul></li>\n")
		}
		sb.WriteString("</ul>\n")
	}

	return sb.String()
}
