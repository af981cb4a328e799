package review

import "github.com/abhisek/quizdrill/internal/quiz"

// Explanation is an LLM-generated note on why an answer is what it is.
type Explanation struct {
	QuestionIndex int
	Explanation   string
	MemoryHook    string
}

// Input holds the context needed to explain one graded question.
type Input struct {
	Question   quiz.Question
	UserAnswer string
	WasCorrect bool
}

// Result is a finished generation attempt for one question.
type Result struct {
	Explanation *Explanation
	Err         error
}
