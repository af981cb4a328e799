package session

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyAnswer rejects a submission whose answer is blank after
	// trimming. No state changes.
	ErrEmptyAnswer = errors.New("answer is empty")

	// ErrAlreadyAnswered rejects a second submission for a graded question.
	// Submission is one-shot; no state changes.
	ErrAlreadyAnswered = errors.New("question already answered")
)

// IndexError reports a navigation or lookup index outside [0, Len-1].
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}
