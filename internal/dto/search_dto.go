package dto

import (
	"time"
)

// SearchContextPayload is the optional caller-supplied history. When
// omitted, the server assembles one from session history and popular
// queries.
type SearchContextPayload struct {
	RecentQueries []string          `json:"recent_queries"`
	PopularTopics []string          `json:"popular_topics"`
	Preferences   map[string]string `json:"preferences"`
}

type AnalyzeSearchRequest struct {
	Query   string                `json:"query" validate:"max=500"`
	Context *SearchContextPayload `json:"context,omitempty"`
}

type FilterProposalPayload struct {
	Name        string      `json:"name"`
	Key         string      `json:"key"`
	Value       interface{} `json:"value"`
	Description string      `json:"description"`
}

type AnalyzeSearchResponse struct {
	Query            string                  `json:"query"`
	CorrectedQuery   *string                 `json:"corrected_query"`
	Category         string                  `json:"category"`
	Confidence       float64                 `json:"confidence"`
	SuggestedFilters []FilterProposalPayload `json:"suggested_filters"`
	Expansions       []string                `json:"expansions"`
	RelatedTopics    []string                `json:"related_topics"`
	ProcessingTimeMs int64                   `json:"processing_time_ms"`
}

type GenerateSuggestionsRequest struct {
	Query   string                `json:"query" validate:"max=500"`
	Context *SearchContextPayload `json:"context,omitempty"`
}

type SuggestionPayload struct {
	Type        string                 `json:"type"`
	Title       string                 `json:"title"`
	Query       string                 `json:"query"`
	Description string                 `json:"description"`
	Confidence  float64                `json:"confidence"`
	Icon        string                 `json:"icon"`
	Filters     map[string]interface{} `json:"filters,omitempty"`
}

type GenerateSuggestionsResponse struct {
	Suggestions []SuggestionPayload `json:"suggestions"`
}

type ImproveQueryRequest struct {
	Query  string `json:"query" validate:"required,max=500"`
	Intent string `json:"intent" validate:"max=200"`
}

type ImproveQueryResponse struct {
	Query         string `json:"query"`
	ImprovedQuery string `json:"improved_query"`
}

type TrackUsageRequest struct {
	SuggestionType string `json:"suggestion_type" validate:"required"`
	Title          string `json:"title" validate:"required"`
	Query          string `json:"query"`
	WasUsed        bool   `json:"was_used"`
}

// SuggestionUsageMessage travels over the internal usage topic
type SuggestionUsageMessage struct {
	SessionId      string    `json:"session_id"`
	SuggestionType string    `json:"suggestion_type"`
	Title          string    `json:"title"`
	Query          string    `json:"query"`
	WasUsed        bool      `json:"was_used"`
	Timestamp      time.Time `json:"timestamp"`
}
