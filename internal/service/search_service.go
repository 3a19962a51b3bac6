package service

import (
	"context"
	"strings"
	"time"

	"invoxa-search-be/internal/dto"
	"invoxa-search-be/internal/entity"
	"invoxa-search-be/internal/pkg/logger"
	"invoxa-search-be/internal/repository/contract"
	"invoxa-search-be/internal/repository/memory"
	"invoxa-search-be/pkg/search"

	"github.com/google/uuid"
)

// Bounds on the server-assembled context
const (
	popularTopicLimit = 5
	recentQueryLimit  = 10
)

type ISearchService interface {
	Analyze(ctx context.Context, sessionId string, req *dto.AnalyzeSearchRequest) (*dto.AnalyzeSearchResponse, error)
	Suggest(ctx context.Context, sessionId string, req *dto.GenerateSuggestionsRequest) (*dto.GenerateSuggestionsResponse, error)
	Improve(ctx context.Context, sessionId string, req *dto.ImproveQueryRequest) (*dto.ImproveQueryResponse, error)
	TrackUsage(ctx context.Context, sessionId string, req *dto.TrackUsageRequest) error
}

type searchService struct {
	pipeline         *search.Pipeline
	eventRepo        contract.SearchEventRepository
	contextRepo      *memory.SessionContextRepository
	publisherService IPublisherService
	sysLogger        logger.ILogger
}

func NewSearchService(
	pipeline *search.Pipeline,
	eventRepo contract.SearchEventRepository,
	contextRepo *memory.SessionContextRepository,
	publisherService IPublisherService,
	sysLogger logger.ILogger,
) ISearchService {
	return &searchService{
		pipeline:         pipeline,
		eventRepo:        eventRepo,
		contextRepo:      contextRepo,
		publisherService: publisherService,
		sysLogger:        sysLogger,
	}
}

func (s *searchService) Analyze(ctx context.Context, sessionId string, req *dto.AnalyzeSearchRequest) (*dto.AnalyzeSearchResponse, error) {
	sc := s.buildContext(ctx, sessionId, req.Context)

	analysis := s.pipeline.AnalyzeQuery(ctx, req.Query, sc)

	s.recordEvent(ctx, sessionId, analysis)
	s.remember(sessionId, req.Query)

	return toAnalyzeResponse(analysis), nil
}

func (s *searchService) Suggest(ctx context.Context, sessionId string, req *dto.GenerateSuggestionsRequest) (*dto.GenerateSuggestionsResponse, error) {
	// Empty input is a valid zero-result query, rendered by the UI as an
	// explicit empty state.
	if strings.TrimSpace(req.Query) == "" {
		return &dto.GenerateSuggestionsResponse{Suggestions: []dto.SuggestionPayload{}}, nil
	}

	sc := s.buildContext(ctx, sessionId, req.Context)

	analysis := s.pipeline.AnalyzeQuery(ctx, req.Query, sc)
	suggestions := search.Rank(analysis, sc)

	s.recordEvent(ctx, sessionId, analysis)
	s.remember(sessionId, req.Query)

	payloads := make([]dto.SuggestionPayload, 0, len(suggestions))
	for _, sug := range suggestions {
		payloads = append(payloads, dto.SuggestionPayload{
			Type:        string(sug.Type),
			Title:       sug.Title,
			Query:       sug.Query,
			Description: sug.Description,
			Confidence:  sug.Confidence,
			Icon:        string(sug.Icon),
			Filters:     sug.Filters,
		})
	}

	return &dto.GenerateSuggestionsResponse{Suggestions: payloads}, nil
}

func (s *searchService) Improve(ctx context.Context, sessionId string, req *dto.ImproveQueryRequest) (*dto.ImproveQueryResponse, error) {
	improved := s.pipeline.ImproveQuery(ctx, req.Query, req.Intent)
	return &dto.ImproveQueryResponse{
		Query:         req.Query,
		ImprovedQuery: improved,
	}, nil
}

func (s *searchService) TrackUsage(ctx context.Context, sessionId string, req *dto.TrackUsageRequest) error {
	msg := &dto.SuggestionUsageMessage{
		SessionId:      sessionId,
		SuggestionType: req.SuggestionType,
		Title:          req.Title,
		Query:          req.Query,
		WasUsed:        req.WasUsed,
		Timestamp:      time.Now(),
	}
	return s.publisherService.PublishSuggestionUsage(ctx, msg)
}

// buildContext prefers the caller's context; when absent it assembles
// one server-side from session history and popular queries. Assembly is
// best-effort: a failing aggregation query just means fewer suggestions.
func (s *searchService) buildContext(ctx context.Context, sessionId string, payload *dto.SearchContextPayload) *search.SearchContext {
	if payload != nil {
		return &search.SearchContext{
			RecentQueries: payload.RecentQueries,
			PopularTopics: payload.PopularTopics,
			Preferences:   payload.Preferences,
		}
	}

	sc := &search.SearchContext{
		RecentQueries: s.contextRepo.Recent(sessionId),
	}

	// Cold cache (process restart, expired session): rebuild the recent
	// list from the persisted events for the session.
	if len(sc.RecentQueries) == 0 {
		events, err := s.eventRepo.RecentBySession(ctx, sessionId, recentQueryLimit)
		if err != nil {
			s.sysLogger.Warn("search", "Failed to load session history", map[string]interface{}{"error": err.Error()})
		} else {
			for _, ev := range events {
				sc.RecentQueries = append(sc.RecentQueries, ev.Query)
			}
		}
	}

	topics, err := s.eventRepo.TopQueries(ctx, popularTopicLimit)
	if err != nil {
		s.sysLogger.Warn("search", "Failed to load popular topics", map[string]interface{}{"error": err.Error()})
	} else {
		sc.PopularTopics = topics
	}

	return sc
}

func (s *searchService) recordEvent(ctx context.Context, sessionId string, analysis *search.QueryAnalysis) {
	if strings.TrimSpace(analysis.Query) == "" {
		return
	}

	event := &entity.SearchEvent{
		Id:         uuid.New(),
		SessionId:  sessionId,
		Query:      analysis.Query,
		Category:   string(analysis.Category),
		Confidence: analysis.Confidence,
		LatencyMs:  analysis.ProcessingTime.Milliseconds(),
		CreatedAt:  time.Now(),
	}
	if analysis.CorrectedQuery != "" {
		corrected := analysis.CorrectedQuery
		event.CorrectedQuery = &corrected
	}
	if len(analysis.SuggestedFilters) > 0 {
		filters := make(map[string]interface{}, len(analysis.SuggestedFilters))
		for _, f := range analysis.SuggestedFilters {
			filters[f.Key] = f.Value
		}
		event.Filters = filters
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		// Analytics only: a failed write never fails the search
		s.sysLogger.Error("search", "Failed to persist search event", map[string]interface{}{"error": err.Error()})
	}
}

func (s *searchService) remember(sessionId, query string) {
	if strings.TrimSpace(query) == "" {
		return
	}
	s.contextRepo.Remember(sessionId, query)
}

func toAnalyzeResponse(analysis *search.QueryAnalysis) *dto.AnalyzeSearchResponse {
	res := &dto.AnalyzeSearchResponse{
		Query:            analysis.Query,
		Category:         string(analysis.Category),
		Confidence:       analysis.Confidence,
		SuggestedFilters: make([]dto.FilterProposalPayload, 0, len(analysis.SuggestedFilters)),
		Expansions:       analysis.Expansions,
		RelatedTopics:    analysis.RelatedTopics,
		ProcessingTimeMs: analysis.ProcessingTime.Milliseconds(),
	}
	if res.Expansions == nil {
		res.Expansions = []string{}
	}
	if res.RelatedTopics == nil {
		res.RelatedTopics = []string{}
	}
	if analysis.CorrectedQuery != "" {
		corrected := analysis.CorrectedQuery
		res.CorrectedQuery = &corrected
	}
	for _, f := range analysis.SuggestedFilters {
		res.SuggestedFilters = append(res.SuggestedFilters, dto.FilterProposalPayload{
			Name:        f.Name,
			Key:         f.Key,
			Value:       f.Value,
			Description: f.Description,
		})
	}
	return res
}
