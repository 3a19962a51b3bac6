package search

import (
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "simple query",
			raw:  "Unpaid Invoices",
			want: []string{"unpaid", "invoices"},
		},
		{
			name: "extra whitespace",
			raw:  "  overdue   bills  ",
			want: []string{"overdue", "bills"},
		},
		{
			name: "empty",
			raw:  "",
			want: []string{},
		},
		{
			name: "whitespace only",
			raw:  "   \t ",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tt.raw, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Tokenize(%q)[%d] = %q, want %q", tt.raw, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAnalyzeLexicalCorrections(t *testing.T) {
	tests := []struct {
		name          string
		raw           string
		wantCorrected string
		wantDomain    bool
	}{
		{
			name:          "single misspelling",
			raw:           "invioce recent",
			wantCorrected: "invoice recent",
			wantDomain:    true, // via the corrected token
		},
		{
			name:          "two misspellings",
			raw:           "cleint expence",
			wantCorrected: "client expense",
			wantDomain:    true,
		},
		{
			name:          "no misspelling",
			raw:           "overdue invoices",
			wantCorrected: "",
			wantDomain:    true,
		},
		{
			name:          "no domain vocabulary",
			raw:           "hello world",
			wantCorrected: "",
			wantDomain:    false,
		},
		{
			name:          "empty query",
			raw:           "",
			wantCorrected: "",
			wantDomain:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzeLexical(tt.raw)
			if got.CorrectedQuery != tt.wantCorrected {
				t.Errorf("CorrectedQuery = %q, want %q", got.CorrectedQuery, tt.wantCorrected)
			}
			if got.HasDomainTerm != tt.wantDomain {
				t.Errorf("HasDomainTerm = %v, want %v", got.HasDomainTerm, tt.wantDomain)
			}
		})
	}
}

func TestAnalyzeLexicalEmptyHasNoTokens(t *testing.T) {
	got := AnalyzeLexical("   ")
	if len(got.Tokens) != 0 {
		t.Errorf("Tokens = %v, want empty", got.Tokens)
	}
	if got.CorrectedQuery != "" {
		t.Errorf("CorrectedQuery = %q, want empty", got.CorrectedQuery)
	}
}
