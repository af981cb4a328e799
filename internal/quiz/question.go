package quiz

import (
	"fmt"
	"strings"
)

// Kind identifies the question type.
type Kind string

const (
	SingleChoice Kind = "single_choice"
	TrueFalse    Kind = "true_false"
	FreeText     Kind = "fill_in"
)

// Valid reports whether k is one of the recognized kinds.
func (k Kind) Valid() bool {
	switch k {
	case SingleChoice, TrueFalse, FreeText:
		return true
	}
	return false
}

// Display returns a short human-readable label for the kind.
func (k Kind) Display() string {
	switch k {
	case SingleChoice:
		return "Multiple Choice"
	case TrueFalse:
		return "True / False"
	case FreeText:
		return "Fill In"
	}
	return "Question"
}

// HasOptions reports whether questions of this kind carry an option list.
func (k Kind) HasOptions() bool {
	return k == SingleChoice || k == TrueFalse
}

// Question is one immutable entry of a loaded bank. Questions are identified
// by their zero-based position in the bank; they carry no ID of their own.
type Question struct {
	Kind    Kind
	Prompt  string
	Options []string // display strings; empty for FreeText
	Answer  string   // canonical answer (option token or expected literal)
}

// MalformedQuestionError reports a question that fails construction
// invariants. Fatal at load time.
type MalformedQuestionError struct {
	Reason string
}

func (e *MalformedQuestionError) Error() string {
	return "malformed question: " + e.Reason
}

// Validate checks the construction invariants: a recognized kind, a
// non-empty prompt and answer, options present exactly when the kind calls
// for them, and — for choice kinds — a canonical answer matching the
// extracted token of exactly one option.
func (q Question) Validate() error {
	if !q.Kind.Valid() {
		return &MalformedQuestionError{Reason: fmt.Sprintf("unknown kind %q", string(q.Kind))}
	}
	if strings.TrimSpace(q.Prompt) == "" {
		return &MalformedQuestionError{Reason: "empty prompt"}
	}
	if strings.TrimSpace(q.Answer) == "" {
		return &MalformedQuestionError{Reason: "empty answer"}
	}

	if !q.Kind.HasOptions() {
		return nil
	}

	if len(q.Options) == 0 {
		return &MalformedQuestionError{Reason: fmt.Sprintf("%s question has no options", string(q.Kind))}
	}

	matches := 0
	for _, opt := range q.Options {
		if opt == "" {
			return &MalformedQuestionError{Reason: "empty option text"}
		}
		if strings.EqualFold(ExtractToken(opt), strings.TrimSpace(q.Answer)) {
			matches++
		}
	}
	switch matches {
	case 0:
		return &MalformedQuestionError{Reason: fmt.Sprintf("answer %q matches no option token", q.Answer)}
	case 1:
		return nil
	default:
		return &MalformedQuestionError{Reason: fmt.Sprintf("answer %q matches %d option tokens", q.Answer, matches)}
	}
}
