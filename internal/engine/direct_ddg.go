package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	stealth "github.com/anatolykoptev/go-stealth"
)

// DDGClient implements SearchProvider against DuckDuckGo using a browser
// TLS fingerprint. The HTML lite endpoint is primary; the d.js JSON API
// (which needs a VQD token) is the fallback.
type DDGClient struct {
	bc     *stealth.BrowserClient
	region string
}

// NewDDGClient wraps a stealth browser client as a search provider.
func NewDDGClient(bc *stealth.BrowserClient, region string) *DDGClient {
	if region == "" {
		region = "wt-wt"
	}
	return &DDGClient{bc: bc, region: region}
}

var vqdPatterns = []*regexp.Regexp{
	regexp.MustCompile(`vqd='([^']+)'`),
	regexp.MustCompile(`vqd="([^"]+)"`),
	regexp.MustCompile(`vqd=([a-zA-Z0-9_-]+)`),
}

// ddgResult represents a single DuckDuckGo search result from d.js.
type ddgResult struct {
	T string `json:"t"` // title
	A string `json:"a"` // abstract/content (HTML)
	U string `json:"u"` // URL
	C string `json:"c"` // content URL (alternative)
}

// Search queries DuckDuckGo and returns up to maxResults entries.
func (d *DDGClient) Search(ctx context.Context, query string, maxResults int) ([]SearchResult, error) {
	results, err := d.searchHTML(ctx, query)
	if err == nil && len(results) > 0 {
		return capResults(results, maxResults), nil
	}
	if err != nil {
		slog.Debug("ddg html failed, trying d.js", slog.Any("error", err))
	}

	vqd, err := d.getVQD(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ddg vqd: %w", err)
	}
	results, err = d.searchDJS(ctx, query, vqd)
	if err != nil {
		return nil, fmt.Errorf("ddg d.js: %w", err)
	}
	return capResults(results, maxResults), nil
}

func capResults(results []SearchResult, max int) []SearchResult {
	if max > 0 && len(results) > max {
		return results[:max]
	}
	return results
}

// searchHTML queries DDG via the HTML lite endpoint and parses results.
func (d *DDGClient) searchHTML(ctx context.Context, query string) ([]SearchResult, error) {
	formBody := fmt.Sprintf("q=%s&kl=%s&df=", url.QueryEscape(query), url.QueryEscape(d.region))

	headers := stealth.ChromeHeaders()
	headers["referer"] = "https://html.duckduckgo.com/"
	headers["content-type"] = "application/x-www-form-urlencoded"

	data, _, status, err := d.bc.Do("POST", "https://html.duckduckgo.com/html/", headers, strings.NewReader(formBody))
	if err != nil {
		return nil, err
	}
	if status != 200 {
		return nil, fmt.Errorf("ddg html status %d", status)
	}

	return parseDDGHTML(data)
}

// parseDDGHTML extracts search results from the DDG HTML lite response.
func parseDDGHTML(data []byte) ([]SearchResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(data)))
	if err != nil {
		return nil, fmt.Errorf("goquery parse: %w", err)
	}

	var results []SearchResult
	doc.Find(".result, .web-result").Each(func(_ int, s *goquery.Selection) {
		link := s.Find("a.result__a, .result__title a, a.result-link").First()
		title := strings.TrimSpace(link.Text())
		href, exists := link.Attr("href")
		if !exists || title == "" {
			return
		}

		// DDG wraps URLs in redirects — extract the actual URL.
		href = ddgUnwrapURL(href)
		if href == "" {
			return
		}

		snippet := strings.TrimSpace(s.Find(".result__snippet, .result__body").First().Text())

		results = append(results, SearchResult{Title: title, URL: href, Snippet: snippet})
	})
	return results, nil
}

// ddgUnwrapURL extracts the actual URL from DDG redirect wrappers.
// DDG HTML wraps links as: //duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com&rut=...
func ddgUnwrapURL(href string) string {
	if strings.Contains(href, "duckduckgo.com/l/") || strings.Contains(href, "uddg=") {
		if u, err := url.Parse(href); err == nil {
			if uddg := u.Query().Get("uddg"); uddg != "" {
				return uddg
			}
		}
	}
	if strings.HasPrefix(href, "http") {
		return href
	}
	return ""
}

// getVQD fetches the VQD token required for DuckDuckGo d.js searches.
func (d *DDGClient) getVQD(ctx context.Context, query string) (string, error) {
	u := "https://duckduckgo.com/?q=" + url.QueryEscape(query)

	headers := stealth.ChromeHeaders()
	headers["referer"] = "https://duckduckgo.com/"

	data, _, status, err := d.bc.Do("GET", u, headers, nil)
	if err != nil {
		return "", err
	}
	if status != 200 {
		return "", fmt.Errorf("ddg homepage status %d", status)
	}

	if vqd := extractVQD(string(data)); vqd != "" {
		return vqd, nil
	}
	return "", fmt.Errorf("vqd token not found in response (%d bytes)", len(data))
}

func extractVQD(body string) string {
	for _, pat := range vqdPatterns {
		if m := pat.FindStringSubmatch(body); len(m) > 1 {
			return m[1]
		}
	}
	return ""
}

// searchDJS queries DDG via the d.js JSON API (fallback).
func (d *DDGClient) searchDJS(ctx context.Context, query, vqd string) ([]SearchResult, error) {
	params := url.Values{
		"q":   {query},
		"vqd": {vqd},
		"kl":  {d.region},
		"df":  {""},
		"l":   {"us-en"},
		"o":   {"json"},
	}
	u := "https://links.duckduckgo.com/d.js?" + params.Encode()

	headers := stealth.ChromeHeaders()
	headers["referer"] = "https://duckduckgo.com/"
	headers["accept"] = "application/json, text/javascript, */*; q=0.01"

	data, _, status, err := d.bc.Do("GET", u, headers, nil)
	if err != nil {
		return nil, err
	}
	if status != 200 && status != 202 {
		return nil, fmt.Errorf("ddg d.js status %d", status)
	}

	return parseDDGResponse(data)
}

// parseDDGResponse extracts search results from a DDG d.js response.
// The response may be JSONP or a raw JSON array.
func parseDDGResponse(data []byte) ([]SearchResult, error) {
	body := strings.TrimSpace(string(data))

	// Strip JSONP wrapper if present: DDGjsonp_xxx({results:[...]})
	if idx := strings.Index(body, "["); idx >= 0 {
		if end := strings.LastIndex(body, "]"); end > idx {
			body = body[idx : end+1]
		}
	}

	var raw []ddgResult
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		return nil, fmt.Errorf("ddg json parse: %w (first 200 bytes: %s)", err, Truncate(body, 200))
	}

	var results []SearchResult
	for _, r := range raw {
		resultURL := r.U
		if resultURL == "" {
			resultURL = r.C
		}
		if resultURL == "" || r.T == "" {
			continue
		}
		// Skip DDG internal/ad entries.
		if strings.HasPrefix(resultURL, "https://duckduckgo.com/") {
			continue
		}
		results = append(results, SearchResult{
			Title:   StripTags(r.T),
			URL:     resultURL,
			Snippet: StripTags(r.A),
		})
	}
	return results, nil
}
