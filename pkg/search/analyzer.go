package search

import (
	"strings"
)

// LexicalResult holds the output of the lexical analysis pass
type LexicalResult struct {
	Tokens         []string // normalized lowercase tokens
	HasDomainTerm  bool
	CorrectedQuery string // empty unless at least one token was corrected
}

// Tokenize lowercases and whitespace-splits a query into tokens.
// An empty or whitespace-only query yields no tokens.
func Tokenize(raw string) []string {
	fields := strings.Fields(strings.ToLower(raw))
	return fields
}

// AnalyzeLexical tokenizes the raw query, flags business vocabulary and
// applies the misspelling table. Always returns a best-effort result.
func AnalyzeLexical(raw string) LexicalResult {
	tokens := Tokenize(raw)
	result := LexicalResult{Tokens: tokens}
	if len(tokens) == 0 {
		return result
	}

	result.HasDomainTerm = HasDomainKeyword(raw)

	corrected := make([]string, len(tokens))
	changed := false
	for i, tok := range tokens {
		if fix, ok := misspellings[tok]; ok {
			corrected[i] = fix
			changed = true
		} else {
			corrected[i] = tok
		}
	}

	if changed {
		result.CorrectedQuery = strings.Join(corrected, " ")
		// A correction may introduce a domain term the raw query lacked
		if !result.HasDomainTerm {
			result.HasDomainTerm = HasDomainKeyword(result.CorrectedQuery)
		}
	}

	return result
}

// HasDomainKeyword reports whether any business-domain keyword occurs in
// the query. Substring testing, not weighting.
func HasDomainKeyword(raw string) bool {
	lower := strings.ToLower(raw)
	for _, kw := range domainKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
