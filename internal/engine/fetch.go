package engine

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// userAgents is the identity pool for fetch attempts: the first entry is the
// primary identity, the rest are tried in order on non-success status.
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/130.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:132.0) Gecko/20100101 Firefox/132.0",
}

// newFetchClient creates an HTTP client with settings suited to fetching
// arbitrary job pages.
func newFetchClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 5,
			IdleConnTimeout:     30 * time.Second,
			TLSHandshakeTimeout: 15 * time.Second,
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return errors.New("stopped after 10 redirects")
			}
			return nil
		},
	}
}

// browserHeaders returns a realistic browser header set for the given
// identity, which reduces block rates on employer sites.
func browserHeaders(userAgent string) map[string]string {
	return map[string]string{
		"User-Agent":                userAgent,
		"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
		"Accept-Language":           "en-US,en;q=0.5",
		"Accept-Encoding":           "gzip",
		"Referer":                   "https://www.google.com/",
		"DNT":                       "1",
		"Connection":                "keep-alive",
		"Upgrade-Insecure-Requests": "1",
		"Cache-Control":             "max-age=0",
	}
}

// FetchJobRecord resolves a job listing URL to a fully populated JobRecord.
// It is a total function: unrecoverable fetch failure yields a placeholder
// record derived from the URL, and every extraction miss is replaced by a
// sentinel or generated value. The caller never sees an error.
func FetchJobRecord(ctx context.Context, rawURL string) JobRecord {
	page, err := fetchPage(ctx, rawURL)
	if err != nil {
		slog.Warn("job fetch failed, using placeholder record",
			slog.String("url", rawURL), slog.Any("error", err))
		return placeholderRecord(rawURL)
	}

	description := descriptionSection(page)
	requirements := ExtractRequirements(page.Text)

	// Both labelled extractions came up empty: the page is likely a shell or
	// blocked content. Look for the same posting on alternate sources.
	if description == "" && len(requirements) == 0 {
		description, requirements = recoverFromAlternates(ctx, page, description, requirements)
	}

	if description == "" {
		description = ExtractDescription(page)
	}
	if description == "" {
		description = fmt.Sprintf(
			"This job listing is for a %s position. The full job details and requirements can be accessed on the original job posting.",
			pseudoTitle(rawURL))
	}

	if len(requirements) == 0 {
		requirements = dedupeLimit(keywordSentences(page.Text, requirementKeywordRes), maxRequirements)
	}
	if len(requirements) == 0 {
		title := pseudoTitle(rawURL)
		requirements = []string{
			fmt.Sprintf("Relevant experience in %s or related field", title),
			"Strong communication skills",
			"Problem-solving abilities",
			"Ability to work effectively in a team",
		}
	}

	fullText := Truncate(page.Text, cfg.MaxFullText)
	if fullText == "" {
		fullText = description
	}

	return JobRecord{
		Description:     description,
		Requirements:    requirements,
		Salary:          ExtractSalary(page.Text),
		JobType:         ExtractJobType(page.Text),
		Benefits:        ExtractBenefits(page.Text),
		ApplicationLink: ExtractApplicationLink(page, rawURL),
		FullText:        fullText,
	}
}

// fetchPage performs the GET with the primary identity and rotates through
// alternate user agents on non-2xx status, stopping at the first success.
func fetchPage(ctx context.Context, rawURL string) (*Page, error) {
	metrics.FetchRequests.Add(1)

	var lastErr error
	for _, agent := range userAgents {
		body, status, err := fetchOnce(ctx, rawURL, agent)
		if err != nil {
			lastErr = err
			continue
		}
		if status < 200 || status > 299 {
			lastErr = fmt.Errorf("status %d", status)
			continue
		}
		return Normalize(string(body)), nil
	}

	metrics.FetchErrors.Add(1)
	return nil, fmt.Errorf("all identities exhausted for %s: %w", rawURL, lastErr)
}

// fetchOnce issues a single GET under one identity. Each attempt gets its
// own deadline so an identity rotation never inherits a spent budget.
func fetchOnce(ctx context.Context, rawURL, userAgent string) ([]byte, int, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.FetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, err
	}
	for k, v := range browserHeaders(userAgent) {
		req.Header.Set(k, v)
	}

	resp, err := cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := readResponseBody(resp)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}

// readResponseBody reads the response body, handling gzip decompression.
func readResponseBody(resp *http.Response) ([]byte, error) {
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		return io.ReadAll(gz)
	}
	return io.ReadAll(resp.Body)
}

// recoverFromAlternates derives a probable title/company from the page's
// <title> tag, searches for the same posting elsewhere, and extracts from up
// to MaxRecoveryURLs alternate pages sequentially. Individual failures are
// swallowed; the loop short-circuits once both fields are filled. Globally
// rate-capped so a burst of shell pages cannot flood the search provider.
func recoverFromAlternates(ctx context.Context, page *Page, description string, requirements []string) (string, []string) {
	segments := strings.Split(page.Title(), " - ")
	title := strings.TrimSpace(segments[0])
	company := ""
	if len(segments) > 1 {
		company = strings.TrimSpace(segments[1])
	}
	if title == "" || cfg.SearchProvider == nil {
		return description, requirements
	}

	if recoveryLimiter != nil && !recoveryLimiter.Allow() {
		metrics.RecoveryThrottled.Add(1)
		slog.Debug("secondary recovery throttled", slog.String("title", title))
		return description, requirements
	}

	query := title + " job description"
	if company != "" {
		query += " " + company
	}

	metrics.RecoverySearches.Add(1)
	results, err := cfg.SearchProvider.Search(ctx, query, cfg.MaxRecoveryURLs)
	if err != nil {
		slog.Debug("secondary recovery search failed", slog.Any("error", err))
		return description, requirements
	}

	for i, r := range results {
		if i == cfg.MaxRecoveryURLs {
			break
		}
		alt, err := fetchPage(ctx, r.URL)
		if err != nil {
			continue
		}
		if description == "" {
			description = descriptionSection(alt)
		}
		if len(requirements) == 0 {
			requirements = ExtractRequirements(alt.Text)
		}
		if description != "" && len(requirements) > 0 {
			break
		}
	}
	return description, requirements
}

// pseudoTitle derives a human-readable title from a URL's last path segment.
func pseudoTitle(rawURL string) string {
	segment := ""
	if u, err := url.Parse(rawURL); err == nil {
		for _, part := range strings.Split(u.Path, "/") {
			if part != "" {
				segment = part
			}
		}
		if segment == "" {
			segment = u.Hostname()
		}
	}
	if segment == "" {
		return "Unknown"
	}
	segment = strings.NewReplacer("-", " ", "_", " ").Replace(segment)
	return TitleCase(segment)
}

// placeholderRecord builds a generic JobRecord when the page could not be
// fetched at all. Every field is populated so downstream rendering never
// special-cases a failed fetch.
func placeholderRecord(rawURL string) JobRecord {
	title := pseudoTitle(rawURL)
	return JobRecord{
		Description: fmt.Sprintf(
			"This is a job listing for a %s position. The original job posting contains more detailed information.", title),
		Requirements: []string{
			fmt.Sprintf("Experience with %s or similar roles", title),
			"Relevant skills and qualifications",
			"Education requirements as specified in the job posting",
			"Communication and teamwork skills",
		},
		Salary:          "Please refer to the original job listing for salary information",
		JobType:         "Full-time (refer to original listing for confirmation)",
		Benefits:        []string{"Visit the original job listing for complete benefits information"},
		ApplicationLink: rawURL,
		FullText: fmt.Sprintf(
			"This is a simplified version of the job listing. Please visit the original posting at %s for complete details.", rawURL),
	}
}
