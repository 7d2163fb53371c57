package engine

import "testing"

func TestExtractSalary(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "dollar range with period",
			text: "Compensation: $80,000 - $95,000 per year plus equity.",
			want: "$80,000 - $95,000 per year",
		},
		{
			name: "single dollar amount",
			text: "Pays $25/hr depending on experience",
			want: "$25/hr",
		},
		{
			name: "currency code prefix",
			text: "Salary band EUR 60,000 - EUR 75,000 for this level",
			want: "EUR 60,000 - EUR 75,000",
		},
		{
			name: "currency code suffix",
			text: "We pay 55,000 GBP for this role",
			want: "55,000 GBP",
		},
		{
			name: "no salary",
			text: "Competitive compensation and great culture",
			want: SentinelSalary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSalary(tt.text)
			if got != tt.want {
				t.Errorf("ExtractSalary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractJobType(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "explicit label",
			text: "Job Type: Full-time\nSalary: competitive",
			want: "Full-time",
		},
		{
			name: "employment type label",
			text: "Employment Type: Contract; 6 months",
			want: "Contract",
		},
		{
			name: "canonical term title-cased",
			text: "This is a remote position with quarterly meetups.",
			want: "Remote",
		},
		{
			name: "keyword title-cased",
			text: "We run a hybrid schedule, three days in office.",
			want: "Hybrid",
		},
		{
			name: "sentinel",
			text: "Join our engineering team today.",
			want: SentinelJobType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractJobType(tt.text)
			if got != tt.want {
				t.Errorf("ExtractJobType() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractBenefits(t *testing.T) {
	t.Run("labelled section bullets", func(t *testing.T) {
		text := "Benefits:\n* Health insurance for you and family\n* Generous learning budget\nApply today"
		got := ExtractBenefits(text)
		want := []string{"Health insurance for you and family", "Generous learning budget"}
		assertStringSlice(t, got, want)
	})

	t.Run("perks header", func(t *testing.T) {
		text := "Perks:\n* Quarterly offsites somewhere warm\nAbout Us: we are Acme"
		got := ExtractBenefits(text)
		assertStringSlice(t, got, []string{"Quarterly offsites somewhere warm"})
	})

	t.Run("keyword scan when no section", func(t *testing.T) {
		text := "We provide health insurance, a 401k match, and paid time off."
		got := ExtractBenefits(text)
		want := []string{"Health Insurance", "401K", "Paid Time Off"}
		assertStringSlice(t, got, want)
	})

	t.Run("capped at eight", func(t *testing.T) {
		text := "health insurance dental insurance vision insurance 401k retirement " +
			"paid time off pto vacation remote work flexible bonus"
		got := ExtractBenefits(text)
		if len(got) != 8 {
			t.Errorf("got %d benefits %v, want 8", len(got), got)
		}
	})

	t.Run("empty when nothing matches", func(t *testing.T) {
		got := ExtractBenefits("Write Go. Ship software.")
		if len(got) != 0 {
			t.Errorf("got %v, want empty", got)
		}
	})
}
