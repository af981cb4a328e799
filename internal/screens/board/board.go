package board

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdrill/internal/router"
	"github.com/abhisek/quizdrill/internal/screen"
	"github.com/abhisek/quizdrill/internal/session"
	"github.com/abhisek/quizdrill/internal/ui/layout"
	"github.com/abhisek/quizdrill/internal/ui/theme"
)

const columns = 10

// JumpMsg tells the quiz screen to show the given question index. The board
// has already moved the session when it sends this; the quiz screen only
// needs to resync its widgets.
type JumpMsg struct {
	Index int
}

// BoardScreen shows every question as a numbered cell, colour-coded by
// status, and lets the learner jump anywhere in the session.
type BoardScreen struct {
	sess   *session.Session
	cursor int
}

var _ screen.Screen = (*BoardScreen)(nil)
var _ screen.KeyHintProvider = (*BoardScreen)(nil)

// New creates a board over the given session, with the cursor on the
// current question.
func New(sess *session.Session) *BoardScreen {
	return &BoardScreen{sess: sess, cursor: sess.Current()}
}

func (b *BoardScreen) Init() tea.Cmd {
	return nil
}

func (b *BoardScreen) Title() string {
	return "Question Board"
}

func (b *BoardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓←→", Description: "Move"},
		{Key: "Enter", Description: "Jump"},
		{Key: "Esc", Description: "Back"},
	}
}

func (b *BoardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	n := b.sess.Len()
	switch kmsg.String() {
	case "left", "h":
		if b.cursor > 0 {
			b.cursor--
		}
	case "right", "l":
		if b.cursor < n-1 {
			b.cursor++
		}
	case "up", "k":
		if b.cursor-columns >= 0 {
			b.cursor -= columns
		}
	case "down", "j":
		if b.cursor+columns < n {
			b.cursor += columns
		}
	case "enter":
		// Move the session here, on the update loop: message delivery
		// order is not guaranteed, and a JumpMsg arriving before the pop
		// would be dropped while the board is still active. The sequenced
		// JumpMsg only tells the quiz screen to rebuild its widgets.
		idx := b.cursor
		_ = b.sess.MoveTo(idx)
		return b, tea.Sequence(
			func() tea.Msg { return router.PopScreenMsg{} },
			func() tea.Msg { return JumpMsg{Index: idx} },
		)
	case "esc", "b":
		return b, func() tea.Msg { return router.PopScreenMsg{} }
	}

	return b, nil
}

func (b *BoardScreen) View(width, height int) string {
	var out strings.Builder

	out.WriteString("\n")
	out.WriteString(theme.Subtitle.Width(width).Render("Jump to any question"))
	out.WriteString("\n\n")

	n := b.sess.Len()
	var grid strings.Builder
	for i := 0; i < n; i++ {
		cell := fmt.Sprintf(" %2d ", i+1)

		style := theme.Unanswered
		switch b.sess.StatusAt(i) {
		case session.Correct:
			style = theme.Correct
		case session.Incorrect:
			style = theme.Incorrect
		}
		if i == b.sess.Current() {
			style = style.Underline(true)
		}
		if i == b.cursor {
			style = style.Reverse(true)
		}

		grid.WriteString(style.Render(cell))
		if (i+1)%columns == 0 {
			grid.WriteString("\n")
		}
	}

	out.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, grid.String()))
	out.WriteString("\n\n")

	legend := strings.Join([]string{
		theme.Correct.Render("■") + " correct",
		theme.Incorrect.Render("■") + " incorrect",
		theme.Unanswered.Render("■") + " unanswered",
		theme.Body.Underline(true).Render("current"),
	}, "    ")
	out.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, legend))

	return out.String()
}
