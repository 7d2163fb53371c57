package engine

import (
	"regexp"
	"strings"
)

const maxBenefits = 8

// --- Salary ---

// Salary patterns in priority order: $-prefixed range with optional
// per-period suffix, currency-code-prefixed range, range-suffixed code.
var salaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\$\d{1,3}(?:,\d{3})*(?:\.\d{2})?(?:\s*-\s*\$\d{1,3}(?:,\d{3})*(?:\.\d{2})?)?(?:\s*(?:per|a|/)\s*(?:year|yr|month|mo|hour|hr|annum))?`),
	regexp.MustCompile(`(?i)(?:USD|EUR|GBP|AUD|CAD)\s*\d{1,3}(?:,\d{3})*(?:\.\d{2})?(?:\s*-\s*(?:USD|EUR|GBP|AUD|CAD)\s*\d{1,3}(?:,\d{3})*(?:\.\d{2})?)?`),
	regexp.MustCompile(`(?i)\d{1,3}(?:,\d{3})*(?:\.\d{2})?\s*(?:USD|EUR|GBP|AUD|CAD)(?:\s*-\s*\d{1,3}(?:,\d{3})*(?:\.\d{2})?\s*(?:USD|EUR|GBP|AUD|CAD))?`),
}

// ExtractSalary returns the first salary-looking substring of text, or the
// sentinel when no currency markers exist.
func ExtractSalary(text string) string {
	for _, re := range salaryPatterns {
		if m := re.FindString(text); m != "" {
			return strings.TrimSpace(m)
		}
	}
	return SentinelSalary
}

// --- Job type ---

var (
	jobTypeLabelRe     = regexp.MustCompile(`(?i)(?:Job|Employment) Type:?\s*([^\n.;]+)`)
	jobTypeCanonicalRe = regexp.MustCompile(`(?i)(Full[- ]Time|Part[- ]Time|Contract|Temporary|Freelance|Permanent|Remote)`)
)

var jobTypeKeywords = []string{
	"full-time", "part-time", "contract", "temporary",
	"freelance", "permanent", "remote", "hybrid",
}

var jobTypeKeywordRes = compileWholeWord(jobTypeKeywords)

// ExtractJobType returns the employment type: explicit label match verbatim,
// else a canonical term or whole-word keyword hit title-cased, else the
// sentinel.
func ExtractJobType(text string) string {
	if m := jobTypeLabelRe.FindStringSubmatch(text); len(m) > 1 {
		if jt := strings.TrimSpace(m[1]); jt != "" {
			return jt
		}
	}
	if m := jobTypeCanonicalRe.FindStringSubmatch(text); len(m) > 1 {
		return TitleCase(m[1])
	}
	for i, re := range jobTypeKeywordRes {
		if re.MatchString(text) {
			return TitleCase(jobTypeKeywords[i])
		}
	}
	return SentinelJobType
}

// --- Benefits ---

var benefitSectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?is)Benefits[:\n](.*?)(?:Apply|About Us|Company)`),
	regexp.MustCompile(`(?is)Perks[:\n](.*?)(?:Apply|About Us|Company)`),
	regexp.MustCompile(`(?is)What we offer[:\n](.*?)(?:Apply|About Us|Company)`),
}

var benefitKeywords = []string{
	"health insurance", "dental insurance", "vision insurance",
	"401k", "retirement", "paid time off", "pto", "vacation",
	"remote work", "flexible", "bonus",
}

var benefitKeywordRes = compileWholeWord(benefitKeywords)

// ExtractBenefits pulls an ordered, deduplicated benefits list (at most 8
// entries): a labelled section's bullets or lines first, else title-cased
// whole-word keyword hits. May be empty.
func ExtractBenefits(text string) []string {
	var benefits []string
	for _, re := range benefitSectionPatterns {
		if m := re.FindStringSubmatch(text); len(m) > 1 {
			if section := strings.TrimSpace(m[1]); section != "" {
				benefits = splitSectionItems(section, 10)
				break
			}
		}
	}
	if len(benefits) == 0 {
		for i, re := range benefitKeywordRes {
			if re.MatchString(text) {
				benefits = append(benefits, TitleCase(benefitKeywords[i]))
			}
		}
	}
	return dedupeLimit(benefits, maxBenefits)
}

// compileWholeWord builds case-insensitive whole-word patterns for keywords.
func compileWholeWord(keywords []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(keywords))
	for i, kw := range keywords {
		res[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
	}
	return res
}
