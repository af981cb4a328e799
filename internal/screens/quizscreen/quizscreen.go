package quizscreen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdrill/internal/quiz"
	"github.com/abhisek/quizdrill/internal/report"
	"github.com/abhisek/quizdrill/internal/review"
	"github.com/abhisek/quizdrill/internal/router"
	"github.com/abhisek/quizdrill/internal/screen"
	"github.com/abhisek/quizdrill/internal/screens/board"
	"github.com/abhisek/quizdrill/internal/screens/summary"
	"github.com/abhisek/quizdrill/internal/session"
	"github.com/abhisek/quizdrill/internal/store"
	"github.com/abhisek/quizdrill/internal/ui/components"
	"github.com/abhisek/quizdrill/internal/ui/layout"
)

const explainPollInterval = 250 * time.Millisecond

// QuizScreen drives one quiz session: question display, answer input,
// grading feedback, navigation, and report export.
type QuizScreen struct {
	sess      *session.Session
	events    store.EventRepo      // nil in tests
	reviewSvc *review.Service      // nil when no LLM is configured

	opts  components.OptionList
	input components.TextInput

	showQuitConfirm bool
	notice          string
	lastExport      string

	explanations map[int]*review.Explanation
	requested    map[int]bool

	startedAt time.Time
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen over the given session.
func New(sess *session.Session, events store.EventRepo, reviewSvc *review.Service) *QuizScreen {
	s := &QuizScreen{
		sess:         sess,
		events:       events,
		reviewSvc:    reviewSvc,
		explanations: make(map[int]*review.Explanation),
		requested:    make(map[int]bool),
		startedAt:    time.Now(),
	}
	s.syncInputs()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return tea.Batch(
		s.appendSessionEventCmd("start"),
		s.focusCmd(),
	)
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.showQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}

	hints := []layout.KeyHint{
		{Key: "←→", Description: "Question"},
	}
	if s.sess.IsAnswered(s.sess.Current()) {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Next"})
	} else if s.sess.CurrentQuestion().Kind.HasOptions() {
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Option"},
			layout.KeyHint{Key: "Enter", Description: "Submit"},
		)
	} else {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Submit"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "b", Description: "Board"},
		layout.KeyHint{Key: "e", Description: "Export"},
		layout.KeyHint{Key: "Esc", Description: "End"},
	)
	return hints
}

// syncInputs rebuilds the input widgets for the current question. Graded
// questions render from session state, so widgets only matter while the
// question is open.
func (s *QuizScreen) syncInputs() {
	q := s.sess.CurrentQuestion()
	if q.Kind.HasOptions() {
		s.opts = components.NewOptionList(q.Options)
	} else {
		s.input = components.NewTextInput("Type your answer...", 80)
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case board.JumpMsg:
		s.notice = ""
		if err := s.sess.MoveTo(msg.Index); err == nil {
			s.syncInputs()
		}
		return s, s.focusCmd()

	case exportDoneMsg:
		return s.handleExportDone(msg)

	case explainPollMsg:
		return s.handleExplainPoll()

	case endSessionMsg:
		return s.handleEndSession()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Remaining messages (cursor blink etc.) go to the text input.
	if s.freeTextOpen() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// focusCmd returns the text input focus command when a free-text question
// is open, nil otherwise.
func (s *QuizScreen) focusCmd() tea.Cmd {
	if s.freeTextOpen() {
		return s.input.Init()
	}
	return nil
}

// freeTextOpen reports whether the current question takes typed input and
// is still open for answering.
func (s *QuizScreen) freeTextOpen() bool {
	return !s.sess.CurrentQuestion().Kind.HasOptions() && !s.sess.IsAnswered(s.sess.Current())
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.showQuitConfirm {
		switch key {
		case "y", "Y":
			s.showQuitConfirm = false
			return s, func() tea.Msg { return endSessionMsg{} }
		case "n", "N", "esc":
			s.showQuitConfirm = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.showQuitConfirm = true
		return s, nil
	case "left":
		s.notice = ""
		if s.sess.CanPrev() {
			s.sess.Prev()
			s.syncInputs()
		}
		return s, s.focusCmd()
	case "right":
		s.notice = ""
		if s.sess.CanNext() {
			s.sess.Next()
			s.syncInputs()
		}
		return s, s.focusCmd()
	case "ctrl+b":
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: board.New(s.sess)} }
	case "ctrl+e":
		return s, s.exportCmd()
	case "enter":
		if s.sess.IsAnswered(s.sess.Current()) {
			s.notice = ""
			if s.sess.CanNext() {
				s.sess.Next()
				s.syncInputs()
			}
			return s, s.focusCmd()
		}
		return s.submit()
	}

	// While a free-text answer is being typed, letter keys belong to the
	// input; board and export stay reachable via ctrl+b / ctrl+e.
	if s.freeTextOpen() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	// Option navigation on an open choice question. Token keys win over
	// the board/export shortcuts when they match an option, so "b" picks
	// option B on an A-D question but opens the board on a true/false one.
	if q := s.sess.CurrentQuestion(); q.Kind.HasOptions() && !s.sess.IsAnswered(s.sess.Current()) {
		switch key {
		case "up", "k":
			s.opts.MoveUp()
			return s, nil
		case "down", "j":
			s.opts.MoveDown()
			return s, nil
		default:
			if len(key) == 1 && s.opts.SelectToken(strings.ToUpper(key)) {
				return s, nil
			}
		}
	}

	switch key {
	case "b":
		return s, func() tea.Msg { return router.PushScreenMsg{Screen: board.New(s.sess)} }
	case "e":
		return s, s.exportCmd()
	}

	return s, nil
}

func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	idx := s.sess.Current()
	q := s.sess.CurrentQuestion()

	var raw string
	if q.Kind.HasOptions() {
		raw = s.opts.SelectedToken()
	} else {
		raw = s.input.Value()
	}

	status, err := s.sess.Submit(idx, raw)
	if err != nil {
		if errors.Is(err, session.ErrEmptyAnswer) {
			s.notice = "Type an answer first."
			return s, nil
		}
		s.notice = err.Error()
		return s, nil
	}

	s.notice = ""
	if !q.Kind.HasOptions() {
		s.input.Submit(status == session.Correct)
	}

	cmds := []tea.Cmd{s.appendAnswerCmd(idx, q, raw, status)}

	if status == session.Incorrect && s.reviewSvc != nil && !s.requested[idx] {
		s.requested[idx] = true
		s.reviewSvc.RequestExplanation(context.Background(), idx, review.Input{
			Question:   q,
			UserAnswer: raw,
			WasCorrect: false,
		})
		cmds = append(cmds, explainPollTick())
	}

	return s, tea.Batch(cmds...)
}

func (s *QuizScreen) handleExplainPoll() (screen.Screen, tea.Cmd) {
	pending := false
	for idx := range s.requested {
		if s.explanations[idx] != nil {
			continue
		}
		if res, ok := s.reviewSvc.Consume(idx); ok {
			if res.Err == nil && res.Explanation != nil {
				s.explanations[idx] = res.Explanation
			}
			// Errors drop silently; the note is optional.
			continue
		}
		if s.reviewSvc.Pending(idx) {
			pending = true
		}
	}

	if pending {
		return s, explainPollTick()
	}
	return s, nil
}

func (s *QuizScreen) handleExportDone(msg exportDoneMsg) (screen.Screen, tea.Cmd) {
	switch {
	case msg.Nothing:
		s.notice = "No wrong answers yet — nothing to export."
	case msg.Err != nil:
		s.notice = fmt.Sprintf("Export failed: %v", msg.Err)
	default:
		s.notice = fmt.Sprintf("Report written to %s", msg.Path)
		s.lastExport = msg.Path
	}
	return s, nil
}

func (s *QuizScreen) handleEndSession() (screen.Screen, tea.Cmd) {
	stats := summary.Stats{
		Score:      s.sess.Score(),
		Total:      s.sess.Len(),
		Answered:   s.sess.AnsweredCount(),
		Correct:    s.sess.CorrectCount(),
		Incorrect:  s.sess.IncorrectCount(),
		Duration:   time.Since(s.startedAt),
		ReportPath: s.lastExport,
	}

	return s, tea.Batch(
		s.appendSessionEventCmd("end"),
		func() tea.Msg {
			return router.PushScreenMsg{Screen: summary.New(stats)}
		},
	)
}

func (s *QuizScreen) exportCmd() tea.Cmd {
	// Snapshot session state on the update loop; the session must never be
	// read from the command goroutine.
	questions := s.sess.Questions()
	statuses := append([]session.Status(nil), s.sess.Statuses()...)
	answers := make(map[int]string)
	for i := range s.sess.Len() {
		if a, ok := s.sess.Answer(i); ok {
			answers[i] = a
		}
	}
	appendExport := s.appendSessionEventCmd("export")

	return func() tea.Msg {
		now := time.Now()

		text, err := report.Build(questions, statuses, answers, now)
		if errors.Is(err, report.ErrNothingToReport) {
			return exportDoneMsg{Nothing: true}
		}
		if err != nil {
			return exportDoneMsg{Err: err}
		}

		path := report.DefaultFilename(now)
		if err := report.Write(path, text); err != nil {
			return exportDoneMsg{Err: err}
		}

		if appendExport != nil {
			appendExport()
		}
		return exportDoneMsg{Path: path}
	}
}

func (s *QuizScreen) appendAnswerCmd(idx int, q quiz.Question, raw string, status session.Status) tea.Cmd {
	if s.events == nil {
		return nil
	}
	data := store.AnswerEventData{
		SessionID:     s.sess.ID(),
		QuestionIndex: idx,
		Kind:          string(q.Kind),
		Prompt:        q.Prompt,
		UserAnswer:    raw,
		CorrectAnswer: q.Answer,
		Correct:       status == session.Correct,
		ScoreAfter:    s.sess.Score(),
	}
	return func() tea.Msg {
		if err := s.events.AppendAnswer(context.Background(), data); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record answer event: %v\n", err)
		}
		return nil
	}
}

func (s *QuizScreen) appendSessionEventCmd(action string) tea.Cmd {
	if s.events == nil {
		return nil
	}
	data := store.SessionEventData{
		SessionID:    s.sess.ID(),
		Action:       action,
		Questions:    s.sess.Len(),
		Answered:     s.sess.AnsweredCount(),
		Correct:      s.sess.CorrectCount(),
		Score:        s.sess.Score(),
		DurationSecs: int(time.Since(s.startedAt).Seconds()),
	}
	return func() tea.Msg {
		if err := s.events.AppendSession(context.Background(), data); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record session event: %v\n", err)
		}
		return nil
	}
}

func explainPollTick() tea.Cmd {
	return tea.Tick(explainPollInterval, func(t time.Time) tea.Msg {
		return explainPollMsg(t)
	})
}
