package engine

import (
	"context"
	"errors"
	"testing"
)

type stubProvider struct {
	results []SearchResult
	err     error
	queries []string
}

func (s *stubProvider) Search(ctx context.Context, query string, maxResults int) ([]SearchResult, error) {
	s.queries = append(s.queries, query)
	return s.results, s.err
}

func TestSearchJobs(t *testing.T) {
	t.Run("maps results to listings", func(t *testing.T) {
		provider := &stubProvider{results: []SearchResult{
			{
				Title:   "Senior Go Developer - TechCorp",
				URL:     "https://www.indeed.com/viewjob?jk=abc123",
				Snippet: "Location: Berlin. Build distributed systems.",
			},
		}}
		Init(Config{SearchProvider: provider})

		got := SearchJobs(context.Background(), "golang", "", 10)
		if len(got) != 1 {
			t.Fatalf("got %d listings, want 1", len(got))
		}
		l := got[0]
		if l.Title != "Senior Go Developer" {
			t.Errorf("Title = %q, want %q", l.Title, "Senior Go Developer")
		}
		if l.Company != "TechCorp" {
			t.Errorf("Company = %q, want %q", l.Company, "TechCorp")
		}
		if l.Location != "Berlin" {
			t.Errorf("Location = %q, want %q", l.Location, "Berlin")
		}
		if l.Source != "indeed.com" {
			t.Errorf("Source = %q, want %q", l.Source, "indeed.com")
		}
		if l.URL != "https://www.indeed.com/viewjob?jk=abc123" {
			t.Errorf("URL = %q", l.URL)
		}
	})

	t.Run("location appended to query", func(t *testing.T) {
		provider := &stubProvider{}
		Init(Config{SearchProvider: provider})

		SearchJobs(context.Background(), "data engineer", "London", 5)
		if len(provider.queries) != 1 {
			t.Fatalf("provider called %d times, want 1", len(provider.queries))
		}
		want := "data engineer jobs in London"
		if provider.queries[0] != want {
			t.Errorf("query = %q, want %q", provider.queries[0], want)
		}
	})

	t.Run("provider error yields empty slice", func(t *testing.T) {
		Init(Config{SearchProvider: &stubProvider{err: errors.New("network down")}})

		got := SearchJobs(context.Background(), "golang", "", 10)
		if got == nil {
			t.Fatal("got nil, want empty slice")
		}
		if len(got) != 0 {
			t.Errorf("got %d listings, want 0", len(got))
		}
	})

	t.Run("no provider yields empty slice", func(t *testing.T) {
		Init(Config{})

		got := SearchJobs(context.Background(), "golang", "", 10)
		if got == nil || len(got) != 0 {
			t.Errorf("got %v, want empty slice", got)
		}
	})

	t.Run("limit caps listings", func(t *testing.T) {
		results := make([]SearchResult, 5)
		for i := range results {
			results[i] = SearchResult{Title: "Job", URL: "https://example.com"}
		}
		Init(Config{SearchProvider: &stubProvider{results: results}})

		got := SearchJobs(context.Background(), "golang", "", 2)
		if len(got) != 2 {
			t.Errorf("got %d listings, want 2", len(got))
		}
	})
}

func TestCompanyFromTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Senior Go Developer - TechCorp", "TechCorp"},
		{"Senior Go Developer - TechCorp - Indeed.com", "TechCorp"},
		{"Senior Go Developer", SentinelCompany},
		{"Engineer - ", SentinelCompany},
		{"", SentinelCompany},
	}
	for _, tt := range tests {
		if got := companyFromTitle(tt.title); got != tt.want {
			t.Errorf("companyFromTitle(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestInferLocation(t *testing.T) {
	tests := []struct {
		name            string
		title           string
		snippet         string
		defaultLocation string
		want            string
	}{
		{
			name:  "title segment wins",
			title: "Data Engineer - Acme in London",
			want:  "London",
		},
		{
			name:    "snippet label",
			title:   "Data Engineer - Acme",
			snippet: "Location: New York. Apply today.",
			want:    "New York",
		},
		{
			name:    "snippet work mode keyword",
			title:   "Data Engineer",
			snippet: "This is a Remote position with quarterly meetups.",
			want:    "Remote",
		},
		{
			name:            "caller default",
			title:           "Data Engineer",
			snippet:         "Great team and culture.",
			defaultLocation: "Berlin",
			want:            "Berlin",
		},
		{
			name:    "sentinel when nothing matches",
			title:   "Data Engineer",
			snippet: "Great team and culture.",
			want:    SentinelLocation,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := inferLocation(tt.title, tt.snippet, tt.defaultLocation)
			if got != tt.want {
				t.Errorf("inferLocation() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSourceDomain(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.linkedin.com/jobs/view/123", "linkedin.com"},
		{"https://boards.greenhouse.io/acme/jobs/1", "boards.greenhouse.io"},
		{"not a url", SentinelSource},
		{"", SentinelSource},
	}
	for _, tt := range tests {
		if got := sourceDomain(tt.url); got != tt.want {
			t.Errorf("sourceDomain(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
