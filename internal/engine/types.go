package engine

// Sentinel values substituted when a field cannot be determined.
// Downstream code renders them as-is; they are never empty strings.
const (
	SentinelCompany  = "Unknown Company"
	SentinelSource   = "Unknown Source"
	SentinelLocation = "Not specified"
	SentinelSalary   = "Salary not specified"
	SentinelJobType  = "Not specified"
)

// ListingStub is a lightweight search-result entry before the full page
// fetch. Company and location are inferred from title/snippet text, not
// authoritative.
type ListingStub struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	URL      string `json:"url"`
	Location string `json:"location"`
	Snippet  string `json:"snippet"`
	Source   string `json:"source"`
}

// JobRecord is a fully materialized job posting reconstructed from one
// listing URL. Every field is populated: extraction misses are represented
// by sentinels or empty lists, never by absent values.
type JobRecord struct {
	Description     string   `json:"description"`
	Requirements    []string `json:"requirements"`
	Salary          string   `json:"salary"`
	JobType         string   `json:"job_type"`
	Benefits        []string `json:"benefits"`
	ApplicationLink string   `json:"application_link"`
	FullText        string   `json:"full_text"`
}

// FitAnalysis statuses. Parse and service failures produce distinguishable
// fallback analyses; Status makes the failure mode explicit instead of
// leaving callers to infer it from the percentage.
const (
	FitStatusOK            = "ok"
	FitStatusParseFallback = "parse_fallback"
	FitStatusUnavailable   = "unavailable"
)

// FitAnalysis compares one JobRecord against one resume.
type FitAnalysis struct {
	MatchPercentage        int      `json:"match_percentage"`
	MatchingQualifications []string `json:"matching_qualifications"`
	MissingQualifications  []string `json:"missing_qualifications"`
	ResumeImprovementTips  []string `json:"resume_improvement_tips"`
	SkillsToDevelop        []string `json:"skills_to_develop"`
	Status                 string   `json:"status,omitempty"`
}

// CourseSuggestion is one learning recommendation for a skill gap.
type CourseSuggestion struct {
	Skill      string `json:"skill"`
	CourseName string `json:"course_name"`
	Platform   string `json:"platform"`
	Reason     string `json:"reason"`
}

// --- Tool input/output types ---

type JobSearchInput struct {
	Query    string `json:"query" jsonschema:"Job title or keywords to search for"`
	Location string `json:"location,omitempty" jsonschema:"Optional location for the job (e.g. Berlin, Remote)"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Max listings to return (default 10)"`
}

type JobSearchOutput struct {
	Query    string        `json:"query"`
	Listings []ListingStub `json:"listings"`
}

type JobDetailsInput struct {
	URL string `json:"url" jsonschema:"URL of the job listing to fetch"`
}

type JobFitInput struct {
	URL          string   `json:"url,omitempty" jsonschema:"Job listing URL (record is fetched or served from cache)"`
	Description  string   `json:"description,omitempty" jsonschema:"Inline job description, used instead of fetching url"`
	Requirements []string `json:"requirements,omitempty" jsonschema:"Inline job requirements, used with description"`
	Resume       string   `json:"resume" jsonschema:"Candidate resume as plain text"`
}

type CourseSuggestInput struct {
	Skills []string `json:"skills" jsonschema:"Skills to find courses for, usually FitAnalysis.skills_to_develop"`
}

type CourseSuggestOutput struct {
	Suggestions []CourseSuggestion `json:"suggestions"`
}
