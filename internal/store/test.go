package store

import (
	"context"

	"github.com/goop-edu/goop-api/internal/domain"
)

// TestStore defines the interface for cognitive test persistence and the
// (student, test) → score result relation.
type TestStore interface {
	// CreateTest assigns the next test id and inserts the test. Questions
	// already attached are re-stamped with the assigned id so the
	// back-reference invariant holds.
	// Returns validation errors from the domain CognitiveTest if data is
	// invalid.
	CreateTest(ctx context.Context, test *domain.CognitiveTest) error

	// GetAllTests returns a defensive copy of the test collection in
	// insertion order, questions included.
	GetAllTests(ctx context.Context) []domain.CognitiveTest

	// GetTestByID retrieves a test by id.
	// Returns ErrTestNotFound if the test does not exist.
	GetTestByID(ctx context.Context, id int) (*domain.CognitiveTest, error)

	// UpdateTest replaces the stored test matching by id.
	// Returns ErrTestNotFound if the test does not exist.
	UpdateTest(ctx context.Context, test *domain.CognitiveTest) error

	// ActiveTests returns only the tests whose status is ACTIVE.
	ActiveTests(ctx context.Context) []domain.CognitiveTest

	// SaveTestResult records score for the (studentID, testID) pair,
	// overwriting any previous attempt, then recomputes the student's
	// cognitive score as the arithmetic mean of all of that student's
	// recorded scores across all tests.
	// Returns ErrStudentNotFound if the student does not exist and
	// domain.ErrScoreOutOfRange for a score outside [0,100].
	SaveTestResult(ctx context.Context, studentID, testID int, score float64) error

	// TestResult returns the stored score for the pair and whether one was
	// recorded. The boolean disambiguates "scored zero" from "never taken".
	TestResult(ctx context.Context, studentID, testID int) (float64, bool)

	// TestResultOrZero returns the stored score, or 0.0 when the student
	// never took the test. A 0.0 return is therefore ambiguous; callers who
	// care use TestResult.
	TestResultOrZero(ctx context.Context, studentID, testID int) float64
}
