package store

import (
	"context"
	"time"
)

// AnswerEventData captures one graded submission.
type AnswerEventData struct {
	SessionID     string
	QuestionIndex int
	Kind          string
	Prompt        string
	UserAnswer    string
	CorrectAnswer string
	Correct       bool
	ScoreAfter    int
}

// SessionEventData captures a session lifecycle action: "start", "end", or
// "export".
type SessionEventData struct {
	SessionID    string
	Action       string
	Questions    int
	Answered     int
	Correct      int
	Score        int
	DurationSecs int
}

// LLMEventData captures a single LLM API call.
type LLMEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a stored LLM event row.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMEventData
}

// EventRepo provides append access to drill events. Appends are best-effort
// from the caller's perspective: a failed append must never fail the user
// action that produced it.
type EventRepo interface {
	AppendAnswer(ctx context.Context, data AnswerEventData) error
	AppendSession(ctx context.Context, data SessionEventData) error
	AppendLLMRequest(ctx context.Context, data LLMEventData) error

	// QueryLLMEvents returns the most recent LLM events, newest first.
	// limit <= 0 means no limit.
	QueryLLMEvents(ctx context.Context, limit int) ([]LLMEvent, error)

	// GetLLMEvent returns one event by ID, or nil when not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)
}

// Overview aggregates drill history for the stats command.
type Overview struct {
	Sessions  int
	Exports   int
	Answered  int
	Correct   int
	BestScore int
}

// Accuracy returns the overall fraction of correct answers, 0 when nothing
// has been answered.
func (o Overview) Accuracy() float64 {
	if o.Answered == 0 {
		return 0
	}
	return float64(o.Correct) / float64(o.Answered)
}

// KindStat is the per-question-kind accuracy breakdown.
type KindStat struct {
	Kind     string
	Answered int
	Correct  int
}

// StatsRepo aggregates the event log.
type StatsRepo interface {
	Overview(ctx context.Context) (Overview, error)
	KindBreakdown(ctx context.Context) ([]KindStat, error)
}
