package quizscreen

import "time"

// exportDoneMsg is sent when a report export attempt finishes.
type exportDoneMsg struct {
	Path    string
	Nothing bool // no incorrect answers, no file written
	Err     error
}

// explainPollMsg is sent at short intervals while explanations are pending.
type explainPollMsg time.Time

// endSessionMsg is sent to trigger the end-of-session flow.
type endSessionMsg struct{}
