package events

import "time"

const (
	TypeSuggestionUsed      = "SEARCH_SUGGESTION_USED"
	TypeSuggestionDismissed = "SEARCH_SUGGESTION_DISMISSED"
)

// NewSuggestionUsageEvent builds the analytics event for one accepted or
// rejected suggestion.
func NewSuggestionUsageEvent(sessionId, suggestionType, title, query string, wasUsed bool) Event {
	eventType := TypeSuggestionDismissed
	if wasUsed {
		eventType = TypeSuggestionUsed
	}
	return BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"session_id":      sessionId,
			"suggestion_type": suggestionType,
			"title":           title,
			"query":           query,
			"was_used":        wasUsed,
		},
		OccurredAt: time.Now(),
	}
}
