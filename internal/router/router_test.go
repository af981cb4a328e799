package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdrill/internal/screen"
)

// stubScreen is a minimal screen.Screen for router tests.
type stubScreen struct {
	name     string
	initRan  *bool
	lastMsg  tea.Msg
	recorded *[]tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	if s.initRan != nil {
		*s.initRan = true
	}
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.lastMsg = msg
	if s.recorded != nil {
		*s.recorded = append(*s.recorded, msg)
	}
	return s, nil
}

func (s *stubScreen) View(width, height int) string { return s.name }
func (s *stubScreen) Title() string                 { return s.name }

func TestRouter_InitialScreen(t *testing.T) {
	r := New(&stubScreen{name: "quiz"})

	if r.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", r.Depth())
	}
	if r.Active().Title() != "quiz" {
		t.Errorf("active = %q, want quiz", r.Active().Title())
	}
}

func TestRouter_PushCallsInit(t *testing.T) {
	r := New(&stubScreen{name: "quiz"})

	initRan := false
	r.Push(&stubScreen{name: "board", initRan: &initRan})

	if !initRan {
		t.Error("expected Init to run on push")
	}
	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	if r.Active().Title() != "board" {
		t.Errorf("active = %q, want board", r.Active().Title())
	}
}

func TestRouter_PopReturnsToPrevious(t *testing.T) {
	r := New(&stubScreen{name: "quiz"})
	r.Push(&stubScreen{name: "board"})

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1", r.Depth())
	}
	if r.Active().Title() != "quiz" {
		t.Errorf("active = %q, want quiz", r.Active().Title())
	}
}

func TestRouter_PopNeverEmptiesStack(t *testing.T) {
	r := New(&stubScreen{name: "quiz"})

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1", r.Depth())
	}
}

func TestRouter_UpdateHandlesNavigationMessages(t *testing.T) {
	r := New(&stubScreen{name: "quiz"})

	r.Update(PushScreenMsg{Screen: &stubScreen{name: "board"}})
	if r.Active().Title() != "board" {
		t.Fatalf("active = %q, want board after push", r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "quiz" {
		t.Fatalf("active = %q, want quiz after pop", r.Active().Title())
	}
}

func TestRouter_UpdateForwardsToActiveScreen(t *testing.T) {
	var quizMsgs, boardMsgs []tea.Msg
	r := New(&stubScreen{name: "quiz", recorded: &quizMsgs})
	r.Push(&stubScreen{name: "board", recorded: &boardMsgs})

	type customMsg struct{}
	r.Update(customMsg{})

	if len(boardMsgs) != 1 {
		t.Errorf("board received %d messages, want 1", len(boardMsgs))
	}
	if len(quizMsgs) != 0 {
		t.Errorf("quiz received %d messages, want 0", len(quizMsgs))
	}
}
