package engine

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestStripTags(t *testing.T) {
	t.Run("removes markup", func(t *testing.T) {
		got := StripTags("<p>Build <b>Go</b> services</p>")
		for _, want := range []string{"Build", "Go", "services"} {
			if !strings.Contains(got, want) {
				t.Errorf("StripTags() = %q, missing %q", got, want)
			}
		}
		if strings.Contains(got, "<") {
			t.Errorf("StripTags() = %q, still contains markup", got)
		}
	})

	t.Run("drops script and style content", func(t *testing.T) {
		got := StripTags("<div>visible<script>var hidden = 1;</script><style>.x{}</style></div>")
		if !strings.Contains(got, "visible") {
			t.Errorf("StripTags() = %q, missing visible text", got)
		}
		if strings.Contains(got, "hidden") || strings.Contains(got, ".x{}") {
			t.Errorf("StripTags() = %q, leaked script/style content", got)
		}
	})
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 3); got != "hel" {
		t.Errorf("Truncate() = %q, want %q", got, "hel")
	}
	if got := Truncate("hello", 10); got != "hello" {
		t.Errorf("Truncate() = %q, want %q", got, "hello")
	}
	if got := Truncate("héllo", 2); got != "hé" {
		t.Errorf("Truncate() = %q, want %q", got, "hé")
	}
	if got := Truncate("aé", 1); !utf8.ValidString(got) || got != "a" {
		t.Errorf("Truncate() = %q, want rune-boundary cut", got)
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"full-time", "Full-Time"},
		{"senior go developer", "Senior Go Developer"},
		{"REMOTE", "Remote"},
	}
	for _, tt := range tests {
		if got := TitleCase(tt.in); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDedupeLimit(t *testing.T) {
	t.Run("preserves first-seen order", func(t *testing.T) {
		got := dedupeLimit([]string{"b", "a", "b", "  a  ", "c"}, 10)
		assertStringSlice(t, got, []string{"b", "a", "c"})
	})

	t.Run("drops empties and caps", func(t *testing.T) {
		got := dedupeLimit([]string{"", "x", "y", "z"}, 2)
		assertStringSlice(t, got, []string{"x", "y"})
	})
}
