package session

import (
	"strings"

	"github.com/abhisek/quizdrill/internal/quiz"
)

// CurrentQuestion returns the question at the current index.
func (s *Session) CurrentQuestion() quiz.Question {
	return s.questions[s.current]
}

// Question returns the question at index i.
func (s *Session) Question(i int) (quiz.Question, error) {
	if i < 0 || i >= len(s.questions) {
		return quiz.Question{}, &IndexError{Index: i, Len: len(s.questions)}
	}
	return s.questions[i], nil
}

// StatusAt returns the grading status of question i, or Unanswered for an
// out-of-range index.
func (s *Session) StatusAt(i int) Status {
	if i < 0 || i >= len(s.statuses) {
		return Unanswered
	}
	return s.statuses[i]
}

// IsAnswered reports whether question i has been graded.
func (s *Session) IsAnswered(i int) bool {
	return s.StatusAt(i) != Unanswered
}

// Answer returns the raw answer logged for question i, exactly as submitted.
// ok is false when no submission has been recorded for i.
func (s *Session) Answer(i int) (answer string, ok bool) {
	answer, ok = s.answers[i]
	return answer, ok
}

// AnsweredCount returns how many questions have been graded.
func (s *Session) AnsweredCount() int {
	n := 0
	for _, st := range s.statuses {
		if st != Unanswered {
			n++
		}
	}
	return n
}

// CorrectCount returns how many questions were answered correctly.
func (s *Session) CorrectCount() int {
	n := 0
	for _, st := range s.statuses {
		if st == Correct {
			n++
		}
	}
	return n
}

// IncorrectCount returns how many questions were answered incorrectly.
func (s *Session) IncorrectCount() int {
	n := 0
	for _, st := range s.statuses {
		if st == Incorrect {
			n++
		}
	}
	return n
}

// Submit grades the answer for question i. The raw answer is logged exactly
// as supplied; grading trims and uppercases both sides (quiz.IsCorrect).
// For choice kinds the caller passes the canonical token of the selected
// option, not the display text.
//
// Fails with ErrEmptyAnswer when raw is blank after trimming, with
// ErrAlreadyAnswered when i was already graded, and with *IndexError when i
// is out of range — in every failure case no state changes. On success the
// resulting status is returned for immediate feedback.
func (s *Session) Submit(i int, raw string) (Status, error) {
	if i < 0 || i >= len(s.questions) {
		return Unanswered, &IndexError{Index: i, Len: len(s.questions)}
	}
	if strings.TrimSpace(raw) == "" {
		return Unanswered, ErrEmptyAnswer
	}
	if s.statuses[i] != Unanswered {
		return s.statuses[i], ErrAlreadyAnswered
	}

	s.answers[i] = raw
	if quiz.IsCorrect(raw, s.questions[i].Answer) {
		s.statuses[i] = Correct
		s.score += PointsPerCorrect
	} else {
		s.statuses[i] = Incorrect
	}
	return s.statuses[i], nil
}

// MoveTo sets the current index. Navigation has no grading side effect and
// never resets an answered question.
func (s *Session) MoveTo(i int) error {
	if i < 0 || i >= len(s.questions) {
		return &IndexError{Index: i, Len: len(s.questions)}
	}
	s.current = i
	return nil
}

// CanPrev reports whether a previous question exists.
func (s *Session) CanPrev() bool { return s.current > 0 }

// CanNext reports whether a next question exists.
func (s *Session) CanNext() bool { return s.current < len(s.questions)-1 }

// Prev moves to the previous question; no-op at the first question.
func (s *Session) Prev() {
	if s.CanPrev() {
		s.current--
	}
}

// Next moves to the next question; no-op at the last question.
func (s *Session) Next() {
	if s.CanNext() {
		s.current++
	}
}
