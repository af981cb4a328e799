package quiz

import (
	"errors"
	"testing"
)

func validChoice() Question {
	return Question{
		Kind:    SingleChoice,
		Prompt:  "Which level of the memory hierarchy is fastest?",
		Options: []string{"A. Cache", "B. Main memory", "C. Disk", "D. Tape"},
		Answer:  "A",
	}
}

func TestValidateAcceptsWellFormed(t *testing.T) {
	qs := []Question{
		validChoice(),
		{
			Kind:    TrueFalse,
			Prompt:  "A byte is eight bits.",
			Options: []string{"(T) True", "(F) False"},
			Answer:  "T",
		},
		{
			Kind:   FreeText,
			Prompt: "How many bits in a byte?",
			Answer: "8",
		},
	}
	for i, q := range qs {
		if err := q.Validate(); err != nil {
			t.Errorf("question %d: unexpected error: %v", i, err)
		}
	}
}

func TestValidateRejectsMalformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Question)
	}{
		{"unknown kind", func(q *Question) { q.Kind = "essay" }},
		{"empty prompt", func(q *Question) { q.Prompt = "  " }},
		{"empty answer", func(q *Question) { q.Answer = "" }},
		{"no options", func(q *Question) { q.Options = nil }},
		{"empty option", func(q *Question) { q.Options = []string{"A. Cache", ""} }},
		{"answer matches no token", func(q *Question) { q.Answer = "E" }},
		{"answer matches two tokens", func(q *Question) {
			q.Options = []string{"A. Cache", "a. cache again"}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validChoice()
			tt.mutate(&q)
			err := q.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var malformed *MalformedQuestionError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected *MalformedQuestionError, got %T", err)
			}
		})
	}
}

func TestValidateFreeTextIgnoresOptions(t *testing.T) {
	q := Question{Kind: FreeText, Prompt: "p", Answer: "a"}
	if err := q.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateAnswerIsCaseInsensitive(t *testing.T) {
	q := validChoice()
	q.Answer = "a"
	if err := q.Validate(); err != nil {
		t.Fatalf("lowercase answer should match option token: %v", err)
	}
}
