package domain

import (
	"errors"
	"strings"
)

// Common validation errors for Question.
var (
	ErrEmptyQuestionPrompt = errors.New("question prompt cannot be empty")
	ErrInvalidChoiceLetter = errors.New("correct choice must be one of A, B, C, D")
)

// Question is a single multiple-choice item belonging to a cognitive test.
// TestID is the back-reference to the owning test, set when the question is
// attached.
type Question struct {
	ID            int    `json:"id"`
	TestID        int    `json:"test_id"`
	Prompt        string `json:"prompt"`
	ChoiceA       string `json:"choice_a"`
	ChoiceB       string `json:"choice_b"`
	ChoiceC       string `json:"choice_c"`
	ChoiceD       string `json:"choice_d"`
	CorrectChoice string `json:"correct_choice"`
}

// NewQuestion creates a Question with the given prompt, four choices, and
// answer key. The key is normalized to uppercase regardless of input case.
// The ID is zero until the store assigns one.
// Returns an error if validation fails.
func NewQuestion(prompt, choiceA, choiceB, choiceC, choiceD, correctChoice string) (*Question, error) {
	q := &Question{
		Prompt:        prompt,
		ChoiceA:       choiceA,
		ChoiceB:       choiceB,
		ChoiceC:       choiceC,
		ChoiceD:       choiceD,
		CorrectChoice: strings.ToUpper(correctChoice),
	}

	if err := q.Validate(); err != nil {
		return nil, err
	}

	return q, nil
}

// Validate checks if the Question has valid data.
// Returns an error if the prompt is empty or the answer key is not a valid
// choice letter.
func (q *Question) Validate() error {
	if q.Prompt == "" {
		return ErrEmptyQuestionPrompt
	}
	switch q.CorrectChoice {
	case "A", "B", "C", "D":
	default:
		return ErrInvalidChoiceLetter
	}
	return nil
}

// Choice returns the choice text for the given letter, matching
// case-insensitively. Returns an empty string for an unknown letter.
func (q *Question) Choice(letter string) string {
	switch strings.ToUpper(letter) {
	case "A":
		return q.ChoiceA
	case "B":
		return q.ChoiceB
	case "C":
		return q.ChoiceC
	case "D":
		return q.ChoiceD
	default:
		return ""
	}
}

// IsCorrect reports whether the given answer matches the answer key.
// The comparison is a case-insensitive single-letter match.
func (q *Question) IsCorrect(answer string) bool {
	return strings.EqualFold(q.CorrectChoice, answer)
}
