package engine

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Containers and attributes commonly used for job description blocks,
// in priority order.
var descriptionSelectors = []string{
	"div.job-description",
	"div.description",
	"#job-description",
	".jobSectionHeader",
	"[data-testid='jobDescriptionText']",
	".description__text",
}

// Section-header patterns: description header up to the next known section.
var descriptionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)(?:Job|Position) Description[:\n](.*?)(?:Requirements|Qualifications|Responsibilities|About)`),
	regexp.MustCompile(`(?is)About the job[:\n](.*?)(?:Requirements|Qualifications|Responsibilities)`),
	regexp.MustCompile(`(?is)Overview[:\n](.*?)(?:Requirements|Qualifications|Responsibilities)`),
}

// descriptionStrategies are tried in order; the first non-empty result wins.
var descriptionStrategies = []func(*Page) string{
	descriptionFromSelectors,
	descriptionFromHeaders,
}

// descriptionSection runs the structural and pattern strategies only.
// Empty result means no labelled description was found, which is what the
// fetch orchestrator's secondary recovery keys on.
func descriptionSection(p *Page) string {
	for _, strategy := range descriptionStrategies {
		if s := strategy(p); s != "" {
			return s
		}
	}
	return ""
}

// ExtractDescription returns the job description, falling back to the first
// 500 characters of normalized text when no labelled section exists. Returns
// "" only for a page with no text at all.
func ExtractDescription(p *Page) string {
	if s := descriptionSection(p); s != "" {
		return s
	}
	if p.Text == "" {
		return ""
	}
	if utf8.RuneCountInString(p.Text) <= 500 {
		return p.Text
	}
	return Truncate(p.Text, 500) + "..."
}

func descriptionFromSelectors(p *Page) string {
	for _, sel := range descriptionSelectors {
		if text := p.selectText(sel); text != "" {
			return text
		}
	}
	return ""
}

func descriptionFromHeaders(p *Page) string {
	for _, re := range descriptionPatterns {
		if m := re.FindStringSubmatch(p.Text); len(m) > 1 {
			if s := strings.TrimSpace(m[1]); s != "" {
				return s
			}
		}
	}
	return ""
}
