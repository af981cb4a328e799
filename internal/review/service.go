package review

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/abhisek/quizdrill/internal/llm"
)

// Service generates answer explanations asynchronously. Results are keyed
// by question index so the UI can request explanations for several
// questions and collect them as they finish.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu       sync.Mutex
	done     map[int]Result
	inFlight map[int]bool
}

// NewService creates an explanation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{
		provider: provider,
		cfg:      cfg,
		done:     make(map[int]Result),
		inFlight: make(map[int]bool),
	}
}

// RequestExplanation starts async generation for the given question index.
// Duplicate requests while one is in flight are ignored.
func (s *Service) RequestExplanation(ctx context.Context, index int, input Input) {
	s.mu.Lock()
	if s.inFlight[index] {
		s.mu.Unlock()
		return
	}
	s.inFlight[index] = true
	delete(s.done, index)
	s.mu.Unlock()

	go func() {
		expl, err := s.generate(ctx, index, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.inFlight, index)
		s.done[index] = Result{Explanation: expl, Err: err}
	}()
}

// Consume returns the finished result for the given question index, if any.
// The result is cleared on consumption.
func (s *Service) Consume(index int) (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	res, ok := s.done[index]
	if ok {
		delete(s.done, index)
	}
	return res, ok
}

// Pending reports whether generation is in flight for the given index.
func (s *Service) Pending(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight[index]
}

type explanationOutput struct {
	Explanation string `json:"explanation"`
	MemoryHook  string `json:"memory_hook"`
}

func (s *Service) generate(ctx context.Context, index int, input Input) (*Explanation, error) {
	expl, err := s.Explain(ctx, input)
	if err != nil {
		return nil, err
	}
	expl.QuestionIndex = index
	return expl, nil
}

// Explain generates a single explanation synchronously. RequestExplanation
// wraps it; the llm test command calls it directly.
func (s *Service) Explain(ctx context.Context, input Input) (*Explanation, error) {
	ctx = llm.WithPurpose(ctx, "explanation")

	req := llm.Request{
		System: explanationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildExplanationUserMessage(input)},
		},
		Schema:      ExplanationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("explanation generation: %w", err)
	}

	var out explanationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse explanation response: %w", err)
	}

	return &Explanation{
		Explanation: out.Explanation,
		MemoryHook:  out.MemoryHook,
	}, nil
}
