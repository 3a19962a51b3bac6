package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"testing"

	"invoxa-search-be/internal/dto"
	"invoxa-search-be/internal/entity"
	"invoxa-search-be/internal/repository/memory"
	"invoxa-search-be/pkg/llm"
	"invoxa-search-be/pkg/search"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventRepo struct {
	mu           sync.Mutex
	created      []*entity.SearchEvent
	topQueries   []string
	recentEvents []*entity.SearchEvent
	topErr       error
	recentErr    error
	createErr    error
}

func (r *fakeEventRepo) Create(ctx context.Context, event *entity.SearchEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, event)
	return nil
}

func (r *fakeEventRepo) TopQueries(ctx context.Context, limit int) ([]string, error) {
	if r.topErr != nil {
		return nil, r.topErr
	}
	if limit < len(r.topQueries) {
		return r.topQueries[:limit], nil
	}
	return r.topQueries, nil
}

func (r *fakeEventRepo) RecentBySession(ctx context.Context, sessionId string, limit int) ([]*entity.SearchEvent, error) {
	if r.recentErr != nil {
		return nil, r.recentErr
	}
	if limit < len(r.recentEvents) {
		return r.recentEvents[:limit], nil
	}
	return r.recentEvents, nil
}

type fakePublisher struct {
	mu        sync.Mutex
	published []*dto.SuggestionUsageMessage
	err       error
}

func (p *fakePublisher) PublishSuggestionUsage(ctx context.Context, msg *dto.SuggestionUsageMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, msg)
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

type failingProvider struct{}

func (failingProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return "", errors.New("model unavailable")
}

func (failingProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return "", errors.New("model unavailable")
}

type fixture struct {
	service   ISearchService
	eventRepo *fakeEventRepo
	publisher *fakePublisher
	contexts  *memory.SessionContextRepository
}

func newFixture() *fixture {
	quiet := log.New(quietWriter{}, "", 0)
	pipeline := search.NewPipeline(search.NewExpander(failingProvider{}, quiet))

	eventRepo := &fakeEventRepo{topQueries: []string{"invoices", "expense report"}}
	publisher := &fakePublisher{}
	contexts := memory.NewSessionContextRepository()

	return &fixture{
		service:   NewSearchService(pipeline, eventRepo, contexts, publisher, noopLogger{}),
		eventRepo: eventRepo,
		publisher: publisher,
		contexts:  contexts,
	}
}

type quietWriter struct{}

func (quietWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestAnalyzeCorrectsAndRecords(t *testing.T) {
	f := newFixture()

	res, err := f.service.Analyze(context.Background(), "session-1", &dto.AnalyzeSearchRequest{
		Query: "invioce recent",
	})
	require.NoError(t, err)

	require.NotNil(t, res.CorrectedQuery)
	assert.Equal(t, "invoice recent", *res.CorrectedQuery)
	assert.Equal(t, "invoice", res.Category)
	assert.NotEmpty(t, res.SuggestedFilters)
	assert.NotNil(t, res.Expansions)
	assert.NotNil(t, res.RelatedTopics)

	require.Len(t, f.eventRepo.created, 1)
	event := f.eventRepo.created[0]
	assert.Equal(t, "session-1", event.SessionId)
	assert.Equal(t, "invioce recent", event.Query)
	require.NotNil(t, event.CorrectedQuery)
	assert.Equal(t, "invoice recent", *event.CorrectedQuery)

	assert.Equal(t, []string{"invioce recent"}, f.contexts.Recent("session-1"))
}

func TestAnalyzeEmptyQueryNotRecorded(t *testing.T) {
	f := newFixture()

	res, err := f.service.Analyze(context.Background(), "session-1", &dto.AnalyzeSearchRequest{
		Query: "   ",
	})
	require.NoError(t, err)

	assert.Equal(t, "general", res.Category)
	assert.Nil(t, res.CorrectedQuery)
	assert.Empty(t, res.Expansions)
	assert.Empty(t, f.eventRepo.created)
	assert.Empty(t, f.contexts.Recent("session-1"))
}

func TestAnalyzeSurvivesEventWriteFailure(t *testing.T) {
	f := newFixture()
	f.eventRepo.createErr = errors.New("db down")

	res, err := f.service.Analyze(context.Background(), "session-1", &dto.AnalyzeSearchRequest{
		Query: "unpaid invoices",
	})
	require.NoError(t, err)
	assert.Equal(t, "invoice", res.Category)
}

func TestSuggestEmptyQueryReturnsEmptyList(t *testing.T) {
	f := newFixture()

	res, err := f.service.Suggest(context.Background(), "session-1", &dto.GenerateSuggestionsRequest{
		Query: "",
	})
	require.NoError(t, err)
	require.NotNil(t, res.Suggestions)
	assert.Empty(t, res.Suggestions)
	assert.Empty(t, f.eventRepo.created)
}

func TestSuggestUsesServerAssembledContext(t *testing.T) {
	f := newFixture()
	f.contexts.Remember("session-1", "march report")

	res, err := f.service.Suggest(context.Background(), "session-1", &dto.GenerateSuggestionsRequest{
		Query: "payroll",
	})
	require.NoError(t, err)

	// Recent session history feeds a combination suggestion, popular
	// queries feed a popular one.
	var combination, popular *dto.SuggestionPayload
	for i := range res.Suggestions {
		switch res.Suggestions[i].Type {
		case "combination":
			combination = &res.Suggestions[i]
		case "popular":
			popular = &res.Suggestions[i]
		}
	}
	require.NotNil(t, combination)
	assert.Equal(t, "payroll march report", combination.Query)
	require.NotNil(t, popular)
	assert.Equal(t, "invoices", popular.Title)
}

func TestSuggestRebuildsHistoryFromEvents(t *testing.T) {
	f := newFixture()
	// Cold cache: nothing remembered for the session, but persisted
	// events exist from a previous process lifetime.
	f.eventRepo.recentEvents = []*entity.SearchEvent{
		{Query: "march report"},
		{Query: "old query"},
	}

	res, err := f.service.Suggest(context.Background(), "session-1", &dto.GenerateSuggestionsRequest{
		Query: "payroll",
	})
	require.NoError(t, err)

	for _, s := range res.Suggestions {
		if s.Type == "combination" {
			assert.Equal(t, "payroll march report", s.Query)
			return
		}
	}
	t.Fatal("expected a combination suggestion rebuilt from persisted history")
}

func TestSuggestSurvivesHistoryLoadFailure(t *testing.T) {
	f := newFixture()
	f.eventRepo.recentErr = errors.New("db down")

	res, err := f.service.Suggest(context.Background(), "session-1", &dto.GenerateSuggestionsRequest{
		Query: "recent invoices",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Suggestions)
	for _, s := range res.Suggestions {
		assert.NotEqual(t, "combination", s.Type)
	}
}

func TestSuggestCallerContextWins(t *testing.T) {
	f := newFixture()
	f.contexts.Remember("session-1", "server side query")

	res, err := f.service.Suggest(context.Background(), "session-1", &dto.GenerateSuggestionsRequest{
		Query: "payroll",
		Context: &dto.SearchContextPayload{
			RecentQueries: []string{"caller query"},
		},
	})
	require.NoError(t, err)

	for _, s := range res.Suggestions {
		if s.Type == "combination" {
			assert.Equal(t, "payroll caller query", s.Query)
			return
		}
	}
	t.Fatal("expected a combination suggestion from the caller context")
}

func TestSuggestBoundedAndSorted(t *testing.T) {
	f := newFixture()

	res, err := f.service.Suggest(context.Background(), "session-1", &dto.GenerateSuggestionsRequest{
		Query: "invioce recent summary",
	})
	require.NoError(t, err)

	assert.LessOrEqual(t, len(res.Suggestions), search.MaxSuggestions)
	for i := 1; i < len(res.Suggestions); i++ {
		assert.GreaterOrEqual(t, res.Suggestions[i-1].Confidence, res.Suggestions[i].Confidence)
	}
}

func TestSuggestSurvivesTopQueriesFailure(t *testing.T) {
	f := newFixture()
	f.eventRepo.topErr = errors.New("aggregation timeout")

	res, err := f.service.Suggest(context.Background(), "session-1", &dto.GenerateSuggestionsRequest{
		Query: "recent invoices",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Suggestions)
	for _, s := range res.Suggestions {
		assert.NotEqual(t, "popular", s.Type)
	}
}

func TestImproveReturnsOriginalWhenModelFails(t *testing.T) {
	f := newFixture()

	res, err := f.service.Improve(context.Background(), "session-1", &dto.ImproveQueryRequest{
		Query: "cleint list",
	})
	require.NoError(t, err)
	assert.Equal(t, "cleint list", res.Query)
	assert.Equal(t, "cleint list", res.ImprovedQuery)
}

func TestTrackUsagePublishes(t *testing.T) {
	f := newFixture()

	err := f.service.TrackUsage(context.Background(), "session-1", &dto.TrackUsageRequest{
		SuggestionType: "correction",
		Title:          "invoice recent",
		Query:          "invoice recent",
		WasUsed:        true,
	})
	require.NoError(t, err)

	require.Len(t, f.publisher.published, 1)
	msg := f.publisher.published[0]
	assert.Equal(t, "session-1", msg.SessionId)
	assert.Equal(t, "correction", msg.SuggestionType)
	assert.True(t, msg.WasUsed)
	assert.False(t, msg.Timestamp.IsZero())
}
