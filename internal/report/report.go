// Package report builds the plain-text wrong-answer report. Building is a
// pure function over session state; persisting the text is the sink's job
// (see sink.go), so the builder stays independently testable.
package report

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/quizdrill/internal/quiz"
	"github.com/abhisek/quizdrill/internal/session"
)

// ErrNothingToReport signals that no question was answered incorrectly.
// It is an empty-result condition, not a failure: callers surface an
// informational notice and must not write a report file.
var ErrNothingToReport = errors.New("no incorrect answers to report")

// NotRecorded marks a missing logged answer in a report record. With the
// engine's invariants an incorrect status always has a logged answer, but
// the builder does not rely on that.
const NotRecorded = "(not recorded)"

const separatorWidth = 30

// Build produces the report text for all incorrectly answered questions, in
// ascending index order. The answers map holds raw submissions keyed by
// question index. Returns ErrNothingToReport when no status is Incorrect.
func Build(questions []quiz.Question, statuses []session.Status, answers map[int]string, generatedAt time.Time) (string, error) {
	var wrong []int
	for i, st := range statuses {
		if st == session.Incorrect {
			wrong = append(wrong, i)
		}
	}
	if len(wrong) == 0 {
		return "", ErrNothingToReport
	}

	var b strings.Builder
	b.WriteString("=== Wrong Answer Report ===\n")
	fmt.Fprintf(&b, "Generated: %s\n", generatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Incorrect questions: %d\n", len(wrong))
	b.WriteString(strings.Repeat("=", separatorWidth) + "\n\n")

	for _, i := range wrong {
		q := questions[i]

		fmt.Fprintf(&b, "[Question %d] (%s)\n", i+1, string(q.Kind))
		fmt.Fprintf(&b, "Prompt: %s\n", q.Prompt)

		if q.Kind.HasOptions() {
			b.WriteString("Options:\n")
			for _, opt := range q.Options {
				fmt.Fprintf(&b, "  %s\n", opt)
			}
		}

		answer, ok := answers[i]
		if !ok {
			answer = NotRecorded
		}
		fmt.Fprintf(&b, "Your answer: %s\n", answer)
		fmt.Fprintf(&b, "Correct answer: %s\n", q.Answer)
		b.WriteString(strings.Repeat("-", separatorWidth) + "\n\n")
	}

	return b.String(), nil
}
