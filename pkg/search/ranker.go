package search

import (
	"fmt"
	"sort"
	"strings"
)

// Candidate confidences. Fixed by the ranking contract.
const (
	correctionConfidence  = 0.9
	expansionConfidence   = 0.8
	expansionStep         = 0.1
	filterConfidence      = 0.7
	relatedConfidence     = 0.6
	relatedStep           = 0.05
	combinationConfidence = 0.6
	popularConfidence     = 0.5

	maxContextual = 2
)

// Rank assembles candidate suggestions from an analysis plus optional
// context, sorts them by descending confidence (stable, preserving
// assembly order on ties) and truncates to MaxSuggestions.
func Rank(analysis *QueryAnalysis, sc *SearchContext) []Suggestion {
	if analysis == nil {
		return []Suggestion{}
	}

	candidates := make([]Suggestion, 0, 16)

	// 1. Spelling correction
	if analysis.CorrectedQuery != "" {
		candidates = append(candidates, Suggestion{
			Type:        SuggestionCorrection,
			Title:       fmt.Sprintf("Did you mean %q?", analysis.CorrectedQuery),
			Query:       analysis.CorrectedQuery,
			Description: "Search with corrected spelling",
			Confidence:  correctionConfidence,
			Icon:        IconFor(SuggestionCorrection),
		})
	}

	// 2. Semantic expansions, decaying per item
	for i, expansion := range analysis.Expansions {
		conf := expansionConfidence - float64(i)*expansionStep
		if conf < 0 {
			conf = 0
		}
		candidates = append(candidates, Suggestion{
			Type:        SuggestionExpansion,
			Title:       expansion,
			Query:       expansion,
			Description: "Alternative phrasing",
			Confidence:  conf,
			Icon:        IconFor(SuggestionExpansion),
		})
	}

	// 3. Extracted filters
	for _, filter := range analysis.SuggestedFilters {
		candidates = append(candidates, Suggestion{
			Type:        SuggestionFilter,
			Title:       filter.Name,
			Query:       analysis.Query,
			Description: filter.Description,
			Confidence:  filterConfidence,
			Icon:        IconFor(SuggestionFilter),
			Filters:     map[string]interface{}{filter.Key: filter.Value},
		})
	}

	// 4. Related topics, decaying per item
	for i, topic := range analysis.RelatedTopics {
		conf := relatedConfidence - float64(i)*relatedStep
		if conf < 0 {
			conf = 0
		}
		candidates = append(candidates, Suggestion{
			Type:        SuggestionRelated,
			Title:       topic,
			Query:       topic,
			Description: "Related topic",
			Confidence:  conf,
			Icon:        IconFor(SuggestionRelated),
		})
	}

	// 5. Contextual suggestions: at most two slots. The combination with
	// the most recent prior search is assembled first, then popular
	// topics in their input order fill what remains.
	candidates = append(candidates, contextualSuggestions(analysis.Query, sc)...)

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Confidence > candidates[j].Confidence
	})

	if len(candidates) > MaxSuggestions {
		candidates = candidates[:MaxSuggestions]
	}
	return candidates
}

func contextualSuggestions(query string, sc *SearchContext) []Suggestion {
	if sc == nil {
		return nil
	}

	var out []Suggestion
	lowerQuery := strings.ToLower(query)

	if len(sc.RecentQueries) > 0 {
		recent := strings.TrimSpace(sc.RecentQueries[0])
		if recent != "" && !strings.EqualFold(recent, strings.TrimSpace(query)) {
			out = append(out, Suggestion{
				Type:        SuggestionCombination,
				Title:       fmt.Sprintf("Combine with %q", recent),
				Query:       strings.TrimSpace(query) + " " + recent,
				Description: "Merge with your previous search",
				Confidence:  combinationConfidence,
				Icon:        IconFor(SuggestionCombination),
			})
		}
	}

	for _, topic := range sc.PopularTopics {
		if len(out) >= maxContextual {
			break
		}
		topic = strings.TrimSpace(topic)
		if topic == "" || strings.Contains(lowerQuery, strings.ToLower(topic)) {
			continue
		}
		out = append(out, Suggestion{
			Type:        SuggestionPopular,
			Title:       topic,
			Query:       topic,
			Description: "Popular search",
			Confidence:  popularConfidence,
			Icon:        IconFor(SuggestionPopular),
		})
	}

	return out
}
