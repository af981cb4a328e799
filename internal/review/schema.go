package review

import "github.com/abhisek/quizdrill/internal/llm"

// ExplanationSchema defines the JSON schema for answer explanations.
var ExplanationSchema = &llm.Schema{
	Name:        "answer-explanation",
	Description: "An explanation of a quiz answer with a short memory aid",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanation": map[string]any{
				"type":        "string",
				"description": "Clear explanation of why the correct answer is correct (2-4 sentences)",
			},
			"memory_hook": map[string]any{
				"type":        "string",
				"description": "A short mnemonic or association to remember this fact (one sentence)",
			},
		},
		"required":             []any{"explanation", "memory_hook"},
		"additionalProperties": false,
	},
}
