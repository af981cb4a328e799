package session

import "github.com/abhisek/quizdrill/internal/quiz"

// Status is the grading state of one question within a session.
type Status int

const (
	Unanswered Status = iota
	Correct
	Incorrect
)

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	}
	return "unanswered"
}

// PointsPerCorrect is the score awarded for each correctly answered question.
const PointsPerCorrect = 10

// Session is the state of one run over a loaded question sequence. It is
// created once per loaded bank and mutated only through its methods, by a
// single actor (the UI event loop); readers never see partial updates
// because every operation completes synchronously.
//
// Statuses transition Unanswered → Correct or Unanswered → Incorrect exactly
// once; there is no re-grading. The score is derived: always
// PointsPerCorrect × count(Correct).
type Session struct {
	id        string
	questions []quiz.Question
	statuses  []Status
	answers   map[int]string // index -> raw submitted answer
	current   int
	score     int
}

// New creates a session over the given question sequence. The slice is
// owned by the session from here on; callers must not mutate it.
func New(questions []quiz.Question, id string) *Session {
	return &Session{
		id:        id,
		questions: questions,
		statuses:  make([]Status, len(questions)),
		answers:   make(map[int]string),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Len returns the number of questions in the session.
func (s *Session) Len() int { return len(s.questions) }

// Current returns the current question index.
func (s *Session) Current() int { return s.current }

// Score returns the accumulated score.
func (s *Session) Score() int { return s.score }

// Questions returns the loaded question sequence (read-only by convention).
func (s *Session) Questions() []quiz.Question { return s.questions }

// Statuses returns the per-question statuses (read-only by convention).
func (s *Session) Statuses() []Status { return s.statuses }
