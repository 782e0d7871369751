package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/goop-edu/goop-api/internal/platform/logger"
	"github.com/goop-edu/goop-api/internal/store"
)

// AssessmentServiceError is a custom error type for assessment service errors.
type AssessmentServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for AssessmentServiceError.
func (e *AssessmentServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("assessment service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("assessment service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *AssessmentServiceError) Unwrap() error {
	return e.Err
}

// NewAssessmentServiceError creates a new AssessmentServiceError.
func NewAssessmentServiceError(operation, message string, err error) *AssessmentServiceError {
	return &AssessmentServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// AssessmentService orchestrates cognitive test submissions: it scores a
// student's answer sheet against the test's answer key and records the result,
// which also refreshes the student's aggregate cognitive score.
type AssessmentService struct {
	testStore store.TestStore
	logger    *slog.Logger
}

// NewAssessmentService creates a new AssessmentService.
func NewAssessmentService(testStore store.TestStore, logger *slog.Logger) *AssessmentService {
	return &AssessmentService{
		testStore: testStore,
		logger:    logger.With(slog.String("component", "assessment_service")),
	}
}

// SubmitTest scores the given answers against the test's answer key, persists
// the result for the student, and returns the score on the 0-100 scale.
// Submissions against inactive tests are rejected with ErrTestInactive.
func (s *AssessmentService) SubmitTest(
	ctx context.Context,
	studentID, testID int,
	answers []string,
) (float64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	test, err := s.testStore.GetTestByID(ctx, testID)
	if err != nil {
		return 0, NewAssessmentServiceError("submit", "failed to load test", err)
	}

	if !test.IsActive() {
		log.Debug("submission rejected for inactive test",
			slog.Int("test_id", testID),
			slog.Int("student_id", studentID))
		return 0, ErrTestInactive
	}

	score := test.Score(answers)

	if err := s.testStore.SaveTestResult(ctx, studentID, testID, score); err != nil {
		return 0, NewAssessmentServiceError("submit", "failed to save test result", err)
	}

	log.Info("test submitted",
		slog.Int("student_id", studentID),
		slog.Int("test_id", testID),
		slog.Float64("score", score),
		slog.Int("answers", len(answers)))

	return score, nil
}

// ResultFor returns the student's recorded score for a test. The boolean
// reports whether the student has taken the test, distinguishing a genuine
// zero from no attempt.
func (s *AssessmentService) ResultFor(ctx context.Context, studentID, testID int) (float64, bool) {
	return s.testStore.TestResult(ctx, studentID, testID)
}
