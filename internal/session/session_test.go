package session

import (
	"errors"
	"testing"

	"github.com/abhisek/quizdrill/internal/quiz"
)

func twoQuestions() []quiz.Question {
	return []quiz.Question{
		{
			Kind:    quiz.SingleChoice,
			Prompt:  "Pick one",
			Options: []string{"A. x", "B. y"},
			Answer:  "B",
		},
		{
			Kind:    quiz.TrueFalse,
			Prompt:  "True or false",
			Options: []string{"(T) t", "(F) f"},
			Answer:  "F",
		},
	}
}

func TestNewSessionStartsClean(t *testing.T) {
	s := New(twoQuestions(), "test-session")

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if s.Current() != 0 {
		t.Errorf("Current() = %d, want 0", s.Current())
	}
	if s.Score() != 0 {
		t.Errorf("Score() = %d, want 0", s.Score())
	}
	for i := range s.Len() {
		if s.IsAnswered(i) {
			t.Errorf("question %d answered before any submission", i)
		}
	}
}

func TestSubmitGradesAndScores(t *testing.T) {
	s := New(twoQuestions(), "test-session")

	st, err := s.Submit(0, "B")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if st != Correct {
		t.Errorf("status = %v, want Correct", st)
	}
	if s.Score() != PointsPerCorrect {
		t.Errorf("Score() = %d, want %d", s.Score(), PointsPerCorrect)
	}

	st, err = s.Submit(1, "T")
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if st != Incorrect {
		t.Errorf("status = %v, want Incorrect", st)
	}
	if s.Score() != PointsPerCorrect {
		t.Errorf("Score() = %d after wrong answer, want %d", s.Score(), PointsPerCorrect)
	}
}

func TestSubmitLogsRawAnswer(t *testing.T) {
	s := New(twoQuestions(), "test-session")

	if _, err := s.Submit(0, " b "); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	got, ok := s.Answer(0)
	if !ok {
		t.Fatal("no answer logged")
	}
	if got != " b " {
		t.Errorf("logged answer = %q, want raw %q", got, " b ")
	}
	if s.StatusAt(0) != Correct {
		t.Errorf("whitespace/case should not affect grading, status = %v", s.StatusAt(0))
	}
}

func TestSubmitRejectsEmpty(t *testing.T) {
	s := New(twoQuestions(), "test-session")

	for _, raw := range []string{"", "   ", "\t\n"} {
		_, err := s.Submit(0, raw)
		if !errors.Is(err, ErrEmptyAnswer) {
			t.Errorf("Submit(%q) error = %v, want ErrEmptyAnswer", raw, err)
		}
	}
	if s.IsAnswered(0) {
		t.Error("rejected submission mutated status")
	}
	if _, ok := s.Answer(0); ok {
		t.Error("rejected submission logged an answer")
	}
}

func TestSubmitIsOneShot(t *testing.T) {
	s := New(twoQuestions(), "test-session")

	if _, err := s.Submit(0, "A"); err != nil {
		t.Fatalf("first Submit: %v", err)
	}
	scoreBefore := s.Score()

	st, err := s.Submit(0, "B")
	if !errors.Is(err, ErrAlreadyAnswered) {
		t.Fatalf("second Submit error = %v, want ErrAlreadyAnswered", err)
	}
	if st != Incorrect {
		t.Errorf("second Submit returned status %v, want the locked Incorrect", st)
	}
	if s.Score() != scoreBefore {
		t.Errorf("score changed on rejected re-submit: %d -> %d", scoreBefore, s.Score())
	}
	if got, _ := s.Answer(0); got != "A" {
		t.Errorf("logged answer changed to %q, want original %q", got, "A")
	}
}

func TestSubmitOutOfRange(t *testing.T) {
	s := New(twoQuestions(), "test-session")

	for _, i := range []int{-1, 2, 99} {
		_, err := s.Submit(i, "A")
		var ie *IndexError
		if !errors.As(err, &ie) {
			t.Errorf("Submit(%d) error = %v, want *IndexError", i, err)
		}
	}
}

func TestScoreInvariantHoldsAfterEveryOperation(t *testing.T) {
	qs := []quiz.Question{
		{Kind: quiz.FreeText, Prompt: "a", Answer: "1"},
		{Kind: quiz.FreeText, Prompt: "b", Answer: "2"},
		{Kind: quiz.FreeText, Prompt: "c", Answer: "3"},
	}
	s := New(qs, "test-session")

	check := func(step string) {
		t.Helper()
		if s.Score() != PointsPerCorrect*s.CorrectCount() {
			t.Fatalf("%s: score %d != %d * correct %d", step, s.Score(), PointsPerCorrect, s.CorrectCount())
		}
	}

	check("initial")
	s.Submit(0, "1")
	check("after correct")
	s.Submit(1, "wrong")
	check("after incorrect")
	s.MoveTo(2)
	check("after MoveTo")
	s.Submit(2, "3")
	check("after second correct")
	s.Submit(2, "3")
	check("after rejected re-submit")
}

func TestMoveToBounds(t *testing.T) {
	s := New(twoQuestions(), "test-session")

	if err := s.MoveTo(1); err != nil {
		t.Fatalf("MoveTo(1): %v", err)
	}
	if s.Current() != 1 {
		t.Errorf("Current() = %d, want 1", s.Current())
	}

	for _, i := range []int{-1, 2} {
		err := s.MoveTo(i)
		var ie *IndexError
		if !errors.As(err, &ie) {
			t.Errorf("MoveTo(%d) error = %v, want *IndexError", i, err)
		}
		if s.Current() != 1 {
			t.Errorf("failed MoveTo mutated current to %d", s.Current())
		}
	}
}

func TestPrevNextClamp(t *testing.T) {
	s := New(twoQuestions(), "test-session")

	if s.CanPrev() {
		t.Error("CanPrev() at first question")
	}
	s.Prev() // no-op
	if s.Current() != 0 {
		t.Errorf("Prev at bound moved to %d", s.Current())
	}

	s.Next()
	if s.Current() != 1 {
		t.Errorf("Next moved to %d, want 1", s.Current())
	}
	if s.CanNext() {
		t.Error("CanNext() at last question")
	}
	s.Next() // no-op
	if s.Current() != 1 {
		t.Errorf("Next at bound moved to %d", s.Current())
	}
}

func TestRevisitIsIdempotentRead(t *testing.T) {
	s := New(twoQuestions(), "test-session")
	s.Submit(1, "T")

	for range 3 {
		s.MoveTo(0)
		s.MoveTo(1)
		if s.StatusAt(1) != Incorrect {
			t.Fatalf("status drifted to %v", s.StatusAt(1))
		}
		if got, _ := s.Answer(1); got != "T" {
			t.Fatalf("logged answer drifted to %q", got)
		}
	}
}

func TestCounts(t *testing.T) {
	s := New(twoQuestions(), "test-session")
	s.Submit(0, "B")
	s.Submit(1, "T")

	if s.AnsweredCount() != 2 {
		t.Errorf("AnsweredCount() = %d, want 2", s.AnsweredCount())
	}
	if s.CorrectCount() != 1 {
		t.Errorf("CorrectCount() = %d, want 1", s.CorrectCount())
	}
	if s.IncorrectCount() != 1 {
		t.Errorf("IncorrectCount() = %d, want 1", s.IncorrectCount())
	}
}
