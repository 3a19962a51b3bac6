package search

import (
	"strings"
	"testing"
)

func TestClassifyCategory(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Category
	}{
		{"invoice keyword", "unpaid invoices from march", CategoryInvoice},
		{"bill keyword", "water bill", CategoryInvoice},
		{"client keyword", "new client onboarding", CategoryClient},
		{"customer keyword", "customer addresses", CategoryClient},
		{"expense keyword", "travel expenses", CategoryExpense},
		{"cost keyword", "shipping costs", CategoryExpense},
		{"report keyword", "monthly report", CategoryReport},
		{"analytics keyword", "revenue analytics", CategoryReport},
		{"no match", "hello there", CategoryGeneral},
		{"empty", "", CategoryGeneral},
		// invoice/bill outranks client/customer when both fire
		{"priority order", "invoices for client acme", CategoryInvoice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Classify(tt.query)
			if got != tt.want {
				t.Errorf("Classify(%q) category = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestClassifyConfidence(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  float64
	}{
		// base 0.5, len<3 penalty
		{"short no domain", "hi", 0.2},
		// base only: 3..10 chars, no domain keyword
		{"plain word", "hello", 0.5},
		// domain keyword, len<=10: 0.5+0.3
		{"short domain", "bill", 0.8},
		// domain keyword, len>10: 0.5+0.3+0.1
		{"medium domain", "unpaid bills!", 0.9},
		// domain keyword, len>20: 0.5+0.3+0.1+0.1 clamped to 1
		{"long domain clamped", "all overdue invoices from last quarter", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got := Classify(tt.query)
			if got != tt.want {
				t.Errorf("Classify(%q) confidence = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestClassifyConfidenceAlwaysClamped(t *testing.T) {
	queries := []string{
		"",
		"a",
		"xy",
		"invoice",
		strings.Repeat("invoice report client expense ", 10),
	}
	for _, q := range queries {
		_, conf := Classify(q)
		if conf < 0 || conf > 1 {
			t.Errorf("Classify(%q) confidence = %v, outside [0,1]", q, conf)
		}
	}
}

func TestClassifyShortQueryBelowBase(t *testing.T) {
	_, conf := Classify("xy")
	if conf >= 0.5 {
		t.Errorf("short query confidence = %v, want < 0.5", conf)
	}
}
