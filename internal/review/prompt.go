package review

import (
	"fmt"
	"strings"
)

const explanationSystemPrompt = `You are a concise study coach helping someone drill exam questions. They just answered a question and want to understand the correct answer well enough to never miss it again.`

func buildExplanationUserMessage(input Input) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Question (%s): %s\n", input.Question.Kind.Display(), input.Question.Prompt))

	if input.Question.Kind.HasOptions() {
		b.WriteString("Options:\n")
		for _, opt := range input.Question.Options {
			b.WriteString(fmt.Sprintf("- %s\n", opt))
		}
	}

	b.WriteString(fmt.Sprintf("Correct answer: %s\n", input.Question.Answer))
	b.WriteString(fmt.Sprintf("Their answer: %s\n", input.UserAnswer))
	if input.WasCorrect {
		b.WriteString("They answered correctly.\n")
	} else {
		b.WriteString("They answered incorrectly.\n")
	}

	b.WriteString(`
Instructions:
1. Explain in 2-4 sentences why the correct answer is correct. If they were wrong, briefly address the likely confusion behind their answer.
2. Give one short memory hook: a mnemonic, contrast, or association that makes the fact stick.
3. Be factual and direct. No praise, no filler.`)

	return b.String()
}
