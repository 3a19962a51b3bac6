package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"invoxa-search-be/pkg/llm"
)

// expanderTimeout caps the external hop. On timeout the absorb-failure
// contract applies like any other remote error.
const expanderTimeout = 15 * time.Second

// Expansion is what the hosted model contributes to an analysis
type Expansion struct {
	Expansions    []string `json:"expansions"`
	RelatedTopics []string `json:"relatedTopics"`
}

// Expander delegates phrasing alternatives and related topics to a hosted
// text-generation service. Failures are absorbed, never propagated:
// suggestions are an enhancement, not a correctness-critical path.
type Expander struct {
	provider llm.Provider
	logger   *log.Logger
}

func NewExpander(provider llm.Provider, logger *log.Logger) *Expander {
	if logger == nil {
		logger = log.Default()
	}
	return &Expander{
		provider: provider,
		logger:   logger,
	}
}

// Expand asks the model for 3-5 alternative phrasings and 3-5 related
// business topics. Any remote or parse failure yields empty arrays.
func (e *Expander) Expand(ctx context.Context, query string, sc *SearchContext) Expansion {
	if e.provider == nil || strings.TrimSpace(query) == "" {
		return Expansion{}
	}

	ctx, cancel := context.WithTimeout(ctx, expanderTimeout)
	defer cancel()

	prompt := buildExpandPrompt(query, sc)
	response, err := e.provider.Generate(ctx, prompt, llm.WithTemperature(0.3), llm.WithMaxTokens(400))
	if err != nil {
		e.logger.Printf("[WARN] semantic expansion failed: %v", err)
		return Expansion{}
	}

	expansion, err := parseExpansion(response)
	if err != nil {
		e.logger.Printf("[WARN] semantic expansion parse failed: %v", err)
		return Expansion{}
	}
	return expansion
}

// Improve asks the model to rewrite the query for better search results.
// On any failure it returns the original, unmodified query.
func (e *Expander) Improve(ctx context.Context, query, intent string) string {
	if e.provider == nil || strings.TrimSpace(query) == "" {
		return query
	}

	ctx, cancel := context.WithTimeout(ctx, expanderTimeout)
	defer cancel()

	prompt := buildImprovePrompt(query, intent)
	response, err := e.provider.Generate(ctx, prompt, llm.WithTemperature(0.2), llm.WithMaxTokens(100))
	if err != nil {
		e.logger.Printf("[WARN] query improvement failed: %v", err)
		return query
	}

	improved := strings.TrimSpace(stripCodeFence(response))
	improved = strings.Trim(improved, `"`)
	if improved == "" {
		return query
	}
	return improved
}

func buildExpandPrompt(query string, sc *SearchContext) string {
	var sb strings.Builder

	sb.WriteString("You expand search queries for an invoicing and business management app.\n")
	sb.WriteString("Given the user's search query, produce alternative phrasings and related business topics.\n\n")
	sb.WriteString(fmt.Sprintf("QUERY: %q\n", query))

	if sc != nil {
		if len(sc.RecentQueries) > 0 {
			sb.WriteString("RECENT_SEARCHES:\n")
			for _, q := range sc.RecentQueries {
				sb.WriteString(fmt.Sprintf("  - %q\n", q))
			}
		}
		if len(sc.PopularTopics) > 0 {
			sb.WriteString(fmt.Sprintf("POPULAR_TOPICS: %s\n", strings.Join(sc.PopularTopics, ", ")))
		}
	}

	sb.WriteString("\nRespond with ONLY this JSON format, no other text:\n")
	sb.WriteString(`{"expansions": ["3-5 alternative phrasings"], "relatedTopics": ["3-5 related business topics"]}`)
	return sb.String()
}

func buildImprovePrompt(query, intent string) string {
	var sb strings.Builder
	sb.WriteString("Rewrite this search query for an invoicing and business management app so it finds better results.\n")
	sb.WriteString(fmt.Sprintf("QUERY: %q\n", query))
	if intent != "" {
		sb.WriteString(fmt.Sprintf("USER_INTENT: %s\n", intent))
	}
	sb.WriteString("Respond with ONLY the rewritten query as plain text. No quotes, no explanation.")
	return sb.String()
}

func parseExpansion(response string) (Expansion, error) {
	cleaned := stripCodeFence(response)

	// Models sometimes wrap the JSON in prose; cut to the outermost object
	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return Expansion{}, fmt.Errorf("no JSON object in response")
	}

	var expansion Expansion
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &expansion); err != nil {
		return Expansion{}, fmt.Errorf("unmarshal expansion: %w", err)
	}
	return expansion, nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
