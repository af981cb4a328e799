package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/quizdrill/internal/store"
)

// captureRepo records LLM events appended through the EventRepo interface.
type captureRepo struct {
	llmEvents []store.LLMEventData
}

func (c *captureRepo) AppendAnswer(context.Context, store.AnswerEventData) error   { return nil }
func (c *captureRepo) AppendSession(context.Context, store.SessionEventData) error { return nil }

func (c *captureRepo) AppendLLMRequest(_ context.Context, data store.LLMEventData) error {
	c.llmEvents = append(c.llmEvents, data)
	return nil
}

func (c *captureRepo) QueryLLMEvents(context.Context, int) ([]store.LLMEvent, error) {
	return nil, nil
}

func (c *captureRepo) GetLLMEvent(context.Context, int) (*store.LLMEvent, error) {
	return nil, nil
}

func TestLogging_RecordsSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{"explanation":"x","memory_hook":"y"}`),
			Usage:   Usage{InputTokens: 12, OutputTokens: 34, TotalTokens: 46},
		},
	)
	repo := &captureRepo{}
	p := WithLogging(mock, "mock", repo)

	ctx := WithPurpose(context.Background(), "explanation")
	req := Request{
		System:   "You explain quiz answers.",
		Messages: []Message{{Role: RoleUser, Content: "Why is the answer B?"}},
	}

	if _, err := p.Generate(ctx, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.llmEvents) != 1 {
		t.Fatalf("expected 1 logged event, got %d", len(repo.llmEvents))
	}
	ev := repo.llmEvents[0]
	if !ev.Success {
		t.Error("expected success = true")
	}
	if ev.Provider != "mock" {
		t.Errorf("provider = %q, want mock", ev.Provider)
	}
	if ev.Purpose != "explanation" {
		t.Errorf("purpose = %q, want explanation", ev.Purpose)
	}
	if ev.InputTokens != 12 || ev.OutputTokens != 34 {
		t.Errorf("tokens = %d/%d, want 12/34", ev.InputTokens, ev.OutputTokens)
	}
	if !strings.Contains(ev.RequestBody, "Why is the answer B?") {
		t.Errorf("request body missing user message: %q", ev.RequestBody)
	}
	if !strings.Contains(ev.RequestBody, "[system]") {
		t.Errorf("request body missing system section: %q", ev.RequestBody)
	}
	if ev.ResponseBody == "" {
		t.Error("expected response body to be recorded")
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	repo := &captureRepo{}
	p := WithLogging(mock, "anthropic", repo)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}

	if len(repo.llmEvents) != 1 {
		t.Fatalf("expected 1 logged event, got %d", len(repo.llmEvents))
	}
	ev := repo.llmEvents[0]
	if ev.Success {
		t.Error("expected success = false")
	}
	if ev.ErrorMessage == "" {
		t.Error("expected error message to be recorded")
	}
}

func TestLogging_UnknownPurpose(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	repo := &captureRepo{}
	p := WithLogging(mock, "mock", repo)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.llmEvents[0].Purpose != "unknown" {
		t.Errorf("purpose = %q, want unknown", repo.llmEvents[0].Purpose)
	}
}

func TestSerializeRequest_IncludesSchema(t *testing.T) {
	req := Request{
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
		Schema:   explanationSchema(),
	}
	out := serializeRequest(req)
	if !strings.Contains(out, "[schema: answer-explanation]") {
		t.Errorf("serialized request missing schema section: %q", out)
	}
	if !strings.Contains(out, "[user]") {
		t.Errorf("serialized request missing user section: %q", out)
	}
}
