package domain

import (
	"errors"
	"math"
)

// TestStatus represents whether a cognitive test can be taken by students.
type TestStatus string

// Possible test status values.
const (
	TestStatusActive   TestStatus = "ACTIVE"
	TestStatusInactive TestStatus = "INACTIVE"
)

// Common validation errors for CognitiveTest.
var (
	ErrEmptyTestTitle      = errors.New("test title cannot be empty")
	ErrInvalidTestDuration = errors.New("test duration must be positive")
)

// Default duration for new tests, in minutes.
const defaultTestDuration = 30

// CognitiveTest is a multiple-choice quiz composed of questions in insertion
// order, which is also the presentation order. New tests start ACTIVE.
type CognitiveTest struct {
	ID              int        `json:"id"`
	Title           string     `json:"title"`
	DurationMinutes int        `json:"duration_minutes"`
	Questions       []Question `json:"questions"`
	Status          TestStatus `json:"status"`
}

// NewCognitiveTest creates a CognitiveTest with the given title and duration.
// A non-positive duration falls back to the 30 minute default. The ID is zero
// until the store assigns one.
// Returns an error if validation fails.
func NewCognitiveTest(title string, durationMinutes int) (*CognitiveTest, error) {
	if durationMinutes <= 0 {
		durationMinutes = defaultTestDuration
	}

	t := &CognitiveTest{
		Title:           title,
		DurationMinutes: durationMinutes,
		Questions:       []Question{},
		Status:          TestStatusActive,
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate checks if the CognitiveTest has valid data.
func (t *CognitiveTest) Validate() error {
	if t.Title == "" {
		return ErrEmptyTestTitle
	}
	if t.DurationMinutes <= 0 {
		return ErrInvalidTestDuration
	}
	return nil
}

// AddQuestion attaches a question to the test, stamping the question with
// the test's id so the back-reference invariant holds.
// Returns an error if the question is invalid.
func (t *CognitiveTest) AddQuestion(q Question) error {
	if err := q.Validate(); err != nil {
		return err
	}
	q.TestID = t.ID
	t.Questions = append(t.Questions, q)
	return nil
}

// RemoveQuestion removes the question with the given id from the test.
// Returns false if no question with that id exists.
func (t *CognitiveTest) RemoveQuestion(questionID int) bool {
	for i, q := range t.Questions {
		if q.ID == questionID {
			t.Questions = append(t.Questions[:i], t.Questions[i+1:]...)
			return true
		}
	}
	return false
}

// QuestionCount returns the number of questions in the test.
func (t *CognitiveTest) QuestionCount() int {
	return len(t.Questions)
}

// QuestionAt returns the question at the given zero-based index.
// Returns nil when the index is out of range.
func (t *CognitiveTest) QuestionAt(index int) *Question {
	if index < 0 || index >= len(t.Questions) {
		return nil
	}
	return &t.Questions[index]
}

// Score grades a sequence of answer letters against the test's questions,
// position by position, and returns the percentage of correct answers in
// [0,100] rounded to two decimal places.
//
// Only min(len(questions), len(answers)) positions are compared, and that
// count is also the divisor, so extra answers are ignored. A test with no
// questions scores 0.
func (t *CognitiveTest) Score(answers []string) float64 {
	if len(t.Questions) == 0 {
		return 0.0
	}

	total := len(t.Questions)
	if len(answers) < total {
		total = len(answers)
	}
	if total == 0 {
		return 0.0
	}

	correct := 0
	for i := 0; i < total; i++ {
		if t.Questions[i].IsCorrect(answers[i]) {
			correct++
		}
	}

	score := float64(correct) / float64(total) * 100
	return math.Round(score*100) / 100
}

// Activate marks the test as takeable by students.
func (t *CognitiveTest) Activate() {
	t.Status = TestStatusActive
}

// Deactivate hides the test from students.
func (t *CognitiveTest) Deactivate() {
	t.Status = TestStatusInactive
}

// IsActive reports whether the test is ACTIVE.
func (t *CognitiveTest) IsActive() bool {
	return t.Status == TestStatusActive
}
