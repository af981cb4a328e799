// Package bank loads and validates question-bank files. A bank is a JSON
// array of records with type, question, options, and answer fields. Any
// problem (missing file, malformed structure, invariant violation, empty
// collection) is fatal: the session cannot start on a partial bank, so the
// loader never degrades.
package bank

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/quizdrill/internal/quiz"
)

// LoadError reports a bank that could not be loaded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load question bank %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// record is the wire shape of one bank entry.
type record struct {
	Type     string   `json:"type"`
	Question string   `json:"question"`
	Options  []string `json:"options,omitempty"`
	Answer   string   `json:"answer"`
}

// Load reads, schema-validates, and decodes the bank at path, returning the
// ordered immutable question sequence. The returned slice is ready to hand
// to session.New.
func Load(path string) ([]quiz.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return Parse(path, data)
}

// Parse validates and decodes raw bank bytes. Split from Load so the check
// command and tests can feed bytes directly.
func Parse(path string, data []byte) ([]quiz.Question, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := compiled()
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("schema validation: %w", err)}
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("decode records: %w", err)}
	}
	if len(records) == 0 {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("bank is empty")}
	}

	questions := make([]quiz.Question, len(records))
	for i, r := range records {
		q := quiz.Question{
			Kind:    quiz.Kind(r.Type),
			Prompt:  r.Question,
			Options: r.Options,
			Answer:  r.Answer,
		}
		if err := q.Validate(); err != nil {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("question %d: %w", i+1, err)}
		}
		questions[i] = q
	}

	return questions, nil
}
