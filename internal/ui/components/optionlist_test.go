package components

import (
	"strings"
	"testing"
)

func sampleList() OptionList {
	return NewOptionList([]string{
		"A. Stack",
		"B. Queue",
		"C. Heap",
		"D. Tree",
	})
}

func TestOptionList_ExtractsTokens(t *testing.T) {
	l := sampleList()
	want := []string{"A", "B", "C", "D"}
	for i, tok := range l.Tokens {
		if tok != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, tok, want[i])
		}
	}
}

func TestOptionList_CursorClamps(t *testing.T) {
	l := sampleList()

	l.MoveUp()
	if l.Selected != 0 {
		t.Errorf("selected = %d after MoveUp at top, want 0", l.Selected)
	}

	for range 10 {
		l.MoveDown()
	}
	if l.Selected != 3 {
		t.Errorf("selected = %d after repeated MoveDown, want 3", l.Selected)
	}
}

func TestOptionList_SelectToken(t *testing.T) {
	l := sampleList()

	if !l.SelectToken("c") {
		t.Fatal("expected SelectToken(c) to match")
	}
	if l.Selected != 2 {
		t.Errorf("selected = %d, want 2", l.Selected)
	}
	if l.SelectedToken() != "C" {
		t.Errorf("selected token = %q, want C", l.SelectedToken())
	}

	if l.SelectToken("Z") {
		t.Error("expected SelectToken(Z) to miss")
	}
	if l.Selected != 2 {
		t.Errorf("selected moved on miss: %d", l.Selected)
	}
}

func TestOptionList_LockedViewMarksChoice(t *testing.T) {
	l := sampleList()

	view := l.View(true, " b ", "C")

	lines := strings.Split(view, "\n")
	if !strings.Contains(lines[1], "●") {
		t.Errorf("chosen option not marked: %q", lines[1])
	}
	for i, line := range lines[:4] {
		if i != 1 && strings.Contains(line, "●") {
			t.Errorf("unexpected marker on line %d: %q", i, line)
		}
	}
}

func TestOptionList_UnlockedViewShowsCursor(t *testing.T) {
	l := sampleList()
	l.MoveDown()

	view := l.View(false, "", "")
	lines := strings.Split(view, "\n")
	if !strings.Contains(lines[1], "▸") {
		t.Errorf("cursor missing on selected line: %q", lines[1])
	}
}
