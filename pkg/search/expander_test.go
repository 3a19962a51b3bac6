package search

import (
	"context"
	"errors"
	"log"
	"reflect"
	"testing"

	"invoxa-search-be/pkg/llm"
)

// stubProvider returns a canned response or error for every call.
type stubProvider struct {
	response string
	err      error
}

func (s *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return s.response, s.err
}

func (s *stubProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.response, s.err
}

func quietLogger() *log.Logger {
	return log.New(discardWriter{}, "", 0)
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestExpandParsesCleanJSON(t *testing.T) {
	provider := &stubProvider{
		response: `{"expansions": ["unpaid invoices", "open invoices"], "relatedTopics": ["payments", "reminders"]}`,
	}
	e := NewExpander(provider, quietLogger())

	got := e.Expand(context.Background(), "invoices", nil)
	if !reflect.DeepEqual(got.Expansions, []string{"unpaid invoices", "open invoices"}) {
		t.Errorf("Expansions = %v", got.Expansions)
	}
	if !reflect.DeepEqual(got.RelatedTopics, []string{"payments", "reminders"}) {
		t.Errorf("RelatedTopics = %v", got.RelatedTopics)
	}
}

func TestExpandParsesFencedJSON(t *testing.T) {
	provider := &stubProvider{
		response: "```json\n{\"expansions\": [\"a\"], \"relatedTopics\": [\"b\"]}\n```",
	}
	e := NewExpander(provider, quietLogger())

	got := e.Expand(context.Background(), "invoices", nil)
	if len(got.Expansions) != 1 || got.Expansions[0] != "a" {
		t.Errorf("Expansions = %v, want [a]", got.Expansions)
	}
}

func TestExpandParsesJSONWrappedInProse(t *testing.T) {
	provider := &stubProvider{
		response: `Sure, here is the result: {"expansions": ["a"], "relatedTopics": []} hope that helps`,
	}
	e := NewExpander(provider, quietLogger())

	got := e.Expand(context.Background(), "invoices", nil)
	if len(got.Expansions) != 1 || got.Expansions[0] != "a" {
		t.Errorf("Expansions = %v, want [a]", got.Expansions)
	}
}

func TestExpandAbsorbsProviderError(t *testing.T) {
	provider := &stubProvider{err: errors.New("connection refused")}
	e := NewExpander(provider, quietLogger())

	got := e.Expand(context.Background(), "invoices", nil)
	if len(got.Expansions) != 0 || len(got.RelatedTopics) != 0 {
		t.Errorf("got %+v, want empty expansion", got)
	}
}

func TestExpandAbsorbsMalformedResponse(t *testing.T) {
	provider := &stubProvider{response: "no json here at all"}
	e := NewExpander(provider, quietLogger())

	got := e.Expand(context.Background(), "invoices", nil)
	if len(got.Expansions) != 0 || len(got.RelatedTopics) != 0 {
		t.Errorf("got %+v, want empty expansion", got)
	}
}

func TestExpandSkipsBlankQuery(t *testing.T) {
	provider := &stubProvider{response: `{"expansions": ["should not be asked"], "relatedTopics": []}`}
	e := NewExpander(provider, quietLogger())

	got := e.Expand(context.Background(), "   ", nil)
	if len(got.Expansions) != 0 {
		t.Errorf("blank query reached the provider: %+v", got)
	}
}

func TestImproveReturnsRewrite(t *testing.T) {
	provider := &stubProvider{response: "\"invoices created in the last 30 days\"\n"}
	e := NewExpander(provider, quietLogger())

	got := e.Improve(context.Background(), "recnet invoices", "")
	if got != "invoices created in the last 30 days" {
		t.Errorf("Improve = %q", got)
	}
}

func TestImproveFallsBackToOriginal(t *testing.T) {
	original := "invoices from Q1"

	tests := []struct {
		name     string
		provider *stubProvider
	}{
		{"provider error", &stubProvider{err: errors.New("timeout")}},
		{"empty response", &stubProvider{response: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExpander(tt.provider, quietLogger())
			if got := e.Improve(context.Background(), original, ""); got != original {
				t.Errorf("Improve = %q, want original %q", got, original)
			}
		})
	}
}
