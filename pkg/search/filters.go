package search

import (
	"strings"
	"time"
)

// Filter keys emitted by the extractor
const (
	FilterKeyDateRange  = "date_range"
	FilterKeyAuthor     = "author"
	FilterKeyHasSummary = "has_summary"
)

// Author filter values
const (
	AuthorUser      = "user"
	AuthorAssistant = "assistant"
)

// filterTrigger is one row of the trigger table. Rows are scanned in
// order and every matching row fires, independently of the others.
type filterTrigger struct {
	Phrases []string
	Build   func(now time.Time) FilterProposal
}

var filterTriggers = []filterTrigger{
	{
		Phrases: []string{"recent"},
		Build: func(now time.Time) FilterProposal {
			return FilterProposal{
				Name:        "Recent",
				Key:         FilterKeyDateRange,
				Value:       DateRange{From: now.AddDate(0, 0, -7), To: now},
				Description: "Last 7 days",
			}
		},
	},
	{
		Phrases: []string{"today"},
		Build: func(now time.Time) FilterProposal {
			return FilterProposal{
				Name:        "Today",
				Key:         FilterKeyDateRange,
				Value:       DateRange{From: startOfDay(now), To: endOfDay(now)},
				Description: "Today only",
			}
		},
	},
	{
		Phrases: []string{"yesterday"},
		Build: func(now time.Time) FilterProposal {
			y := now.AddDate(0, 0, -1)
			return FilterProposal{
				Name:        "Yesterday",
				Key:         FilterKeyDateRange,
				Value:       DateRange{From: startOfDay(y), To: endOfDay(y)},
				Description: "Yesterday only",
			}
		},
	},
	{
		Phrases: []string{"my", "i said", "i asked"},
		Build: func(now time.Time) FilterProposal {
			return FilterProposal{
				Name:        "My content",
				Key:         FilterKeyAuthor,
				Value:       AuthorUser,
				Description: "Only things you wrote",
			}
		},
	},
	{
		Phrases: []string{"assistant", "ai"},
		Build: func(now time.Time) FilterProposal {
			return FilterProposal{
				Name:        "Assistant content",
				Key:         FilterKeyAuthor,
				Value:       AuthorAssistant,
				Description: "Only assistant answers",
			}
		},
	},
	{
		Phrases: []string{"summary", "summarized"},
		Build: func(now time.Time) FilterProposal {
			return FilterProposal{
				Name:        "Has summary",
				Key:         FilterKeyHasSummary,
				Value:       true,
				Description: "Entries with a summary",
			}
		},
	},
}

// ExtractFilters scans the query for trigger phrases and emits a filter
// proposal per matching table row. Emission order follows the table, not
// the input. No triggers means an empty list, never an error.
func ExtractFilters(query string, now time.Time) []FilterProposal {
	lower := strings.ToLower(query)
	if strings.TrimSpace(lower) == "" {
		return nil
	}

	var proposals []FilterProposal
	for _, trigger := range filterTriggers {
		if containsAnyKeyword(lower, trigger.Phrases) {
			proposals = append(proposals, trigger.Build(now))
		}
	}
	return proposals
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
