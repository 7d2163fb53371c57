package engine

import (
	"context"
	"log/slog"
	"net/url"
	"regexp"
	"strings"
)

const defaultSearchLimit = 10

// Snippet patterns that indicate a location, in priority order.
var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)location:?\s*([^.;]+)`),
	regexp.MustCompile(`(?i)in\s+([A-Za-z\s,]+(?:remote|hybrid|on-site))`),
	regexp.MustCompile(`(?i)remote|hybrid|on-site`),
}

// SearchJobs queries the search provider for job listings and maps raw
// results to ListingStubs. Never fails: any provider error or empty result
// yields an empty slice, and the query is never rewritten or retried with
// variations. Results keep provider order, at most limit entries.
func SearchJobs(ctx context.Context, query, location string, limit int) []ListingStub {
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	searchQuery := query + " jobs"
	if location != "" {
		searchQuery += " in " + location
	}

	metrics.SearchRequests.Add(1)

	if cfg.SearchProvider == nil {
		slog.Warn("job search skipped: no search provider configured")
		return []ListingStub{}
	}
	results, err := cfg.SearchProvider.Search(ctx, searchQuery, limit)
	if err != nil {
		slog.Warn("job search failed", slog.String("query", searchQuery), slog.Any("error", err))
		return []ListingStub{}
	}

	listings := make([]ListingStub, 0, len(results))
	for _, r := range results {
		listings = append(listings, ListingStub{
			Title:    titleFromResult(r.Title),
			Company:  companyFromTitle(r.Title),
			URL:      r.URL,
			Location: inferLocation(r.Title, r.Snippet, location),
			Snippet:  r.Snippet,
			Source:   sourceDomain(r.URL),
		})
		if len(listings) == limit {
			break
		}
	}
	return listings
}

// titleFromResult keeps the part of a search-result title before the first
// " - " separator (the rest is usually company/site chrome).
func titleFromResult(title string) string {
	head, _, _ := strings.Cut(title, " - ")
	return strings.TrimSpace(head)
}

// companyFromTitle takes the second " - "-delimited segment as the company
// name when present. Later segments are usually site chrome ("... - Indeed").
func companyFromTitle(title string) string {
	parts := strings.Split(title, " - ")
	if len(parts) < 2 {
		return SentinelCompany
	}
	company := strings.TrimSpace(parts[1])
	if company == "" {
		return SentinelCompany
	}
	return company
}

// inferLocation derives a location with a 3-stage priority search: a title
// segment of the form "... - X in Y", then snippet patterns, then the
// caller-supplied default. First match wins; partial signals never merge.
func inferLocation(title, snippet, defaultLocation string) string {
	if _, tail, found := strings.Cut(title, " - "); found {
		if _, loc, ok := strings.Cut(tail, " in "); ok && strings.TrimSpace(loc) != "" {
			return strings.TrimSpace(loc)
		}
	}

	for _, re := range locationPatterns {
		m := re.FindStringSubmatch(snippet)
		if m == nil {
			continue
		}
		loc := m[0]
		if len(m) > 1 && m[1] != "" {
			loc = m[1]
		}
		if loc = strings.TrimSpace(loc); loc != "" {
			return loc
		}
	}

	if defaultLocation != "" {
		return defaultLocation
	}
	return SentinelLocation
}

// sourceDomain returns the bare host name of a listing URL (no scheme, no
// "www." prefix), or the sentinel for malformed URLs.
func sourceDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return SentinelSource
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}
