package engine

import (
	"regexp"
	"strings"
)

const maxRequirements = 10

// Requirements-labelled sections, bounded by the next known section header.
var requirementSectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)Requirements?[:\n](.*?)(?:Benefits|Apply|About Us|Company)`),
	regexp.MustCompile(`(?is)Qualifications?[:\n](.*?)(?:Benefits|Apply|About Us|Company)`),
	regexp.MustCompile(`(?is)Skills[:\n](.*?)(?:Benefits|Apply|About Us|Company)`),
}

// bulletRe matches bullet-marked lines (leading *, -, or •).
var bulletRe = regexp.MustCompile(`[*\-•]\s*([^\n*\-•]+)`)

// Sentence openers that usually introduce a requirement when no labelled
// section exists.
var requirementKeywords = []string{
	"experience with", "proficient in", "knowledge of", "degree in",
	"years of experience", "background in", "skill", "ability to",
}

var requirementKeywordRes = compileKeywordSentences(requirementKeywords)

// compileKeywordSentences builds per-keyword patterns that capture from the
// keyword to the end of the sentence.
func compileKeywordSentences(keywords []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(keywords))
	for i, kw := range keywords {
		res[i] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(kw) + `[^.]+\.`)
	}
	return res
}

// ExtractRequirements pulls an ordered, deduplicated requirements list
// (at most 10 entries) from normalized text. Empty when neither a labelled
// section nor keyword-anchored sentences exist.
func ExtractRequirements(text string) []string {
	reqs := requirementsFromSection(text)
	if len(reqs) == 0 {
		reqs = keywordSentences(text, requirementKeywordRes)
	}
	return dedupeLimit(reqs, maxRequirements)
}

// requirementsFromSection locates a requirements-labelled section and splits
// it into entries: bullet-marked lines first, else lines longer than 15 chars.
func requirementsFromSection(text string) []string {
	var section string
	for _, re := range requirementSectionPatterns {
		if m := re.FindStringSubmatch(text); len(m) > 1 {
			section = strings.TrimSpace(m[1])
			break
		}
	}
	if section == "" {
		return nil
	}
	return splitSectionItems(section, 15)
}

// splitSectionItems extracts bullet points from a section, falling back to
// newline-split lines longer than minLen characters.
func splitSectionItems(section string, minLen int) []string {
	var items []string
	for _, m := range bulletRe.FindAllStringSubmatch(section, -1) {
		if it := strings.TrimSpace(m[1]); it != "" {
			items = append(items, it)
		}
	}
	if len(items) > 0 {
		return items
	}
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > minLen {
			items = append(items, line)
		}
	}
	return items
}

// keywordSentences scans the whole text for sentences starting with any of
// the compiled keyword patterns, collecting up to sentence-end punctuation.
func keywordSentences(text string, patterns []*regexp.Regexp) []string {
	var out []string
	for _, re := range patterns {
		for _, m := range re.FindAllString(text, -1) {
			if s := strings.TrimSpace(m); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
