package search

import (
	"context"
	"strings"
	"time"
)

// Pipeline runs the full query intelligence flow: lexical analysis,
// filter extraction and classification run eagerly and pure; only the
// semantic expansion suspends on the network. Nothing here returns an
// error to the caller; every failure mode degrades to an empty or
// default value.
type Pipeline struct {
	expander *Expander
	now      func() time.Time
}

func NewPipeline(expander *Expander) *Pipeline {
	return &Pipeline{
		expander: expander,
		now:      time.Now,
	}
}

// AnalyzeQuery computes the structural analysis of one query.
// The corrected query, when present, is the one classified, so a fixed
// typo still lands in the right category.
func (p *Pipeline) AnalyzeQuery(ctx context.Context, query string, sc *SearchContext) *QueryAnalysis {
	started := p.now()

	lexical := AnalyzeLexical(query)

	effective := query
	if lexical.CorrectedQuery != "" {
		effective = lexical.CorrectedQuery
	}

	category, confidence := Classify(effective)
	filters := ExtractFilters(effective, p.now())

	analysis := &QueryAnalysis{
		Query:            query,
		CorrectedQuery:   lexical.CorrectedQuery,
		Category:         category,
		Confidence:       confidence,
		SuggestedFilters: filters,
	}

	// Skip the network hop for blank input: a whitespace-only query is a
	// valid zero-result input, not something to expand.
	if strings.TrimSpace(query) != "" && p.expander != nil {
		expansion := p.expander.Expand(ctx, effective, sc)
		analysis.Expansions = expansion.Expansions
		analysis.RelatedTopics = expansion.RelatedTopics
	}

	analysis.ProcessingTime = p.now().Sub(started)
	return analysis
}

// GenerateSuggestions produces the ranked, length-bounded suggestion
// list for a query. An empty query yields an empty list, which callers
// render as an explicit "no suggestions" state.
func (p *Pipeline) GenerateSuggestions(ctx context.Context, query string, sc *SearchContext) []Suggestion {
	if strings.TrimSpace(query) == "" {
		return []Suggestion{}
	}
	analysis := p.AnalyzeQuery(ctx, query, sc)
	return Rank(analysis, sc)
}

// ImproveQuery rewrites the query via the hosted model. On any failure
// the original input comes back unchanged.
func (p *Pipeline) ImproveQuery(ctx context.Context, query, intent string) string {
	if p.expander == nil {
		return query
	}
	return p.expander.Improve(ctx, query, intent)
}
