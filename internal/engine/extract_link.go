package engine

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Apply button/link selectors in priority order. The anchor-text scan sits
// where site CSS gives no stable hook.
var applySelectors = []string{
	"a.apply-button",
	"a.job-apply",
	"a[data-automation='job-detail-apply']",
	"a.btn-apply",
	".jobsearch-IndeedApplyButton",
}

// ExtractApplicationLink returns the first apply button/link href, scanning
// known selectors and then anchors whose text mentions applying. Falls back
// to the original listing URL; this field is never absent.
func ExtractApplicationLink(p *Page, originalURL string) string {
	if p.doc == nil {
		return originalURL
	}
	for _, sel := range applySelectors {
		if href, ok := p.doc.Find(sel).First().Attr("href"); ok && strings.TrimSpace(href) != "" {
			return strings.TrimSpace(href)
		}
	}
	if href := applyAnchorByText(p.doc); href != "" {
		return href
	}
	return originalURL
}

// applyAnchorByText finds the first <a> whose visible text contains "apply".
func applyAnchorByText(doc *goquery.Document) string {
	var found string
	doc.Find("a").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if !strings.Contains(strings.ToLower(s.Text()), "apply") {
			return true
		}
		if href, ok := s.Attr("href"); ok && strings.TrimSpace(href) != "" {
			found = strings.TrimSpace(href)
			return false
		}
		return true
	})
	return found
}
