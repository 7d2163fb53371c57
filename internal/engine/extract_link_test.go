package engine

import "testing"

func TestExtractApplicationLink(t *testing.T) {
	const original = "https://example.com/jobs/123"

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "apply button selector",
			html: `<html><body><a class="apply-button" href="https://apply.example.com/123">Apply</a></body></html>`,
			want: "https://apply.example.com/123",
		},
		{
			name: "selector beats anchor text",
			html: `<html><body>
				<a href="https://other.example.com">Apply here</a>
				<a class="btn-apply" href="https://apply.example.com/real">Go</a>
			</body></html>`,
			want: "https://apply.example.com/real",
		},
		{
			name: "anchor text scan",
			html: `<html><body>
				<a href="/about">About us</a>
				<a href="/apply-now">Apply for this job</a>
			</body></html>`,
			want: "/apply-now",
		},
		{
			name: "anchor without href skipped",
			html: `<html><body><a name="apply">Apply</a><a href="/apply">Apply now</a></body></html>`,
			want: "/apply",
		},
		{
			name: "fallback to listing url",
			html: `<html><body><p>No links here</p></body></html>`,
			want: original,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractApplicationLink(Normalize(tt.html), original)
			if got != tt.want {
				t.Errorf("ExtractApplicationLink() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractApplicationLinkNilDoc(t *testing.T) {
	const original = "https://example.com/jobs/123"
	if got := ExtractApplicationLink(&Page{}, original); got != original {
		t.Errorf("got %q, want original URL", got)
	}
}
