package search

import (
	"strings"
)

// Classify assigns exactly one category via first-match substring testing
// in fixed priority order, and a heuristic confidence score.
//
// Confidence rule: base 0.5; +0.3 when any domain keyword is present;
// +0.1 when the query is longer than 10 characters, another +0.1 over 20;
// -0.3 when shorter than 3 characters. Clamped to [0,1].
//
// Callers that have a corrected query should classify that one, so a
// fixed typo still routes to the right category.
func Classify(query string) (Category, float64) {
	trimmed := strings.TrimSpace(query)
	lower := strings.ToLower(trimmed)

	category := CategoryGeneral
	for _, entry := range categoryKeywords {
		if containsAnyKeyword(lower, entry.Keywords) {
			category = entry.Category
			break
		}
	}

	confidence := 0.5
	if HasDomainKeyword(trimmed) {
		confidence += 0.3
	}
	if len(trimmed) > 10 {
		confidence += 0.1
	}
	if len(trimmed) > 20 {
		confidence += 0.1
	}
	if len(trimmed) < 3 {
		confidence -= 0.3
	}

	return category, clamp01(confidence)
}

func containsAnyKeyword(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
