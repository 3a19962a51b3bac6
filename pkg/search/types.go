package search

import (
	"time"
)

// Category is the coarse label assigned to a query. Closed set.
type Category string

const (
	CategoryInvoice Category = "invoice"
	CategoryClient  Category = "client"
	CategoryExpense Category = "expense"
	CategoryReport  Category = "report"
	CategoryGeneral Category = "general"
)

// SuggestionType tags where a suggestion came from
type SuggestionType string

const (
	SuggestionCorrection  SuggestionType = "correction"
	SuggestionExpansion   SuggestionType = "expansion"
	SuggestionFilter      SuggestionType = "filter"
	SuggestionRelated     SuggestionType = "related"
	SuggestionCombination SuggestionType = "combination"
	SuggestionPopular     SuggestionType = "popular"
)

// Icon identifies the UI asset rendered next to a suggestion.
// Closed enum so the UI layer can own a total mapping; there is no
// "unknown icon" state to resolve at render time.
type Icon string

const (
	IconSpellcheck Icon = "spellcheck"
	IconSparkles   Icon = "sparkles"
	IconFilter     Icon = "filter"
	IconTag        Icon = "tag"
	IconHistory    Icon = "history"
	IconTrending   Icon = "trending"
)

// IconFor maps a suggestion type to its icon. Total over SuggestionType.
func IconFor(t SuggestionType) Icon {
	switch t {
	case SuggestionCorrection:
		return IconSpellcheck
	case SuggestionExpansion:
		return IconSparkles
	case SuggestionFilter:
		return IconFilter
	case SuggestionRelated:
		return IconTag
	case SuggestionCombination:
		return IconHistory
	case SuggestionPopular:
		return IconTrending
	}
	return IconSparkles
}

// SearchContext is optional caller-supplied history used for contextual
// suggestions. The pipeline only reads it.
type SearchContext struct {
	RecentQueries []string          // most-recent-first
	PopularTopics []string
	Preferences   map[string]string
}

// DateRange bounds a date filter value
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// FilterProposal is a structured key/value constraint inferred from the
// query text, offered as a one-click refinement.
type FilterProposal struct {
	Name        string
	Key         string
	Value       interface{}
	Description string
}

// QueryAnalysis is the immutable result of analyzing one query
type QueryAnalysis struct {
	Query            string
	CorrectedQuery   string // empty when no correction found
	Category         Category
	Confidence       float64 // always in [0,1]
	SuggestedFilters []FilterProposal
	Expansions       []string
	RelatedTopics    []string
	ProcessingTime   time.Duration
}

// Suggestion is one actionable entry shown beneath the search box
type Suggestion struct {
	Type        SuggestionType
	Title       string
	Query       string // the query to apply if selected
	Description string
	Confidence  float64 // always in [0,1]
	Icon        Icon
	Filters     map[string]interface{} // optional, for filter suggestions
}

// MaxSuggestions bounds the emitted list
const MaxSuggestions = 8
