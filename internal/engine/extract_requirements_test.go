package engine

import (
	"fmt"
	"strings"
	"testing"
)

func TestExtractRequirements(t *testing.T) {
	t.Run("bulleted section", func(t *testing.T) {
		text := "Requirements:\n* 5+ years of Go experience\n* Familiarity with Kubernetes clusters\nBenefits:\n* Snacks"
		got := ExtractRequirements(text)
		want := []string{"5+ years of Go experience", "Familiarity with Kubernetes clusters"}
		assertStringSlice(t, got, want)
	})

	t.Run("qualifications header", func(t *testing.T) {
		text := "Qualifications:\n* BSc in Computer Science\nApply now"
		got := ExtractRequirements(text)
		assertStringSlice(t, got, []string{"BSc in Computer Science"})
	})

	t.Run("unbulleted section falls back to long lines", func(t *testing.T) {
		text := "Requirements:\nStrong SQL and data modeling skills\nGit\nExperience operating production services\nApply now"
		got := ExtractRequirements(text)
		want := []string{
			"Strong SQL and data modeling skills",
			"Experience operating production services",
		}
		assertStringSlice(t, got, want)
	})

	t.Run("keyword sentences when no section", func(t *testing.T) {
		text := "We want someone great. Candidates need experience with distributed systems and Go. Knowledge of Postgres internals is a plus."
		got := ExtractRequirements(text)
		if len(got) != 2 {
			t.Fatalf("got %d requirements (%v), want 2", len(got), got)
		}
		if !strings.HasPrefix(got[0], "experience with") {
			t.Errorf("got[0] = %q, want experience-with sentence", got[0])
		}
	})

	t.Run("deduplicated and capped at ten", func(t *testing.T) {
		var b strings.Builder
		b.WriteString("Requirements:\n")
		for i := 0; i < 15; i++ {
			fmt.Fprintf(&b, "* Requirement number %d\n", i)
		}
		b.WriteString("* Requirement number 0\n")
		b.WriteString("Benefits")
		got := ExtractRequirements(b.String())
		if len(got) != 10 {
			t.Errorf("got %d requirements, want 10", len(got))
		}
	})

	t.Run("empty when nothing matches", func(t *testing.T) {
		got := ExtractRequirements("Welcome to our careers page.")
		if len(got) != 0 {
			t.Errorf("got %v, want empty", got)
		}
	})
}

func TestSplitSectionItems(t *testing.T) {
	t.Run("bullets win over lines", func(t *testing.T) {
		section := "intro line that is quite long\n- first bullet item\n- second bullet item"
		got := splitSectionItems(section, 15)
		assertStringSlice(t, got, []string{"first bullet item", "second bullet item"})
	})

	t.Run("short lines dropped", func(t *testing.T) {
		got := splitSectionItems("Go\nA line comfortably over the threshold", 15)
		assertStringSlice(t, got, []string{"A line comfortably over the threshold"})
	})
}

func assertStringSlice(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d items %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d = %q, want %q", i, got[i], want[i])
		}
	}
}
