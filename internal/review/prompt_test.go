package review

import (
	"strings"
	"testing"

	"github.com/abhisek/quizdrill/internal/quiz"
)

func TestBuildExplanationUserMessageChoiceQuestion(t *testing.T) {
	msg := buildExplanationUserMessage(Input{
		Question: quiz.Question{
			Kind:    quiz.SingleChoice,
			Prompt:  "Which layer of the OSI model does TCP operate at?",
			Options: []string{"A. Network", "B. Transport", "C. Session", "D. Application"},
			Answer:  "B",
		},
		UserAnswer: "A",
		WasCorrect: false,
	})

	for _, want := range []string{
		"Question (Multiple Choice): Which layer of the OSI model does TCP operate at?",
		"Options:",
		"- A. Network",
		"- B. Transport",
		"Correct answer: B",
		"Their answer: A",
		"They answered incorrectly.",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q\n%s", want, msg)
		}
	}
}

func TestBuildExplanationUserMessageFreeTextQuestion(t *testing.T) {
	msg := buildExplanationUserMessage(Input{
		Question: quiz.Question{
			Kind:   quiz.FreeText,
			Prompt: "What is the default port for HTTP?",
			Answer: "80",
		},
		UserAnswer: "80",
		WasCorrect: true,
	})

	if strings.Contains(msg, "Options:") {
		t.Errorf("free-text message should not list options\n%s", msg)
	}
	for _, want := range []string{
		"Question (Fill In): What is the default port for HTTP?",
		"Correct answer: 80",
		"They answered correctly.",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q\n%s", want, msg)
		}
	}
}
