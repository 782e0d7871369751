package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/goop-edu/goop-api/internal/domain"
	"github.com/goop-edu/goop-api/internal/platform/logger"
	"github.com/goop-edu/goop-api/internal/store"
)

// ProjectServiceError is a custom error type for project service errors.
type ProjectServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ProjectServiceError.
func (e *ProjectServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("project service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("project service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ProjectServiceError) Unwrap() error {
	return e.Err
}

// NewProjectServiceError creates a new ProjectServiceError.
func NewProjectServiceError(operation, message string, err error) *ProjectServiceError {
	return &ProjectServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// ProjectService orchestrates the project lifecycle: students start and submit
// their own projects, teachers validate submissions with a grade. State
// transitions themselves are enforced by the domain entity; this service adds
// ownership checks and persistence.
type ProjectService struct {
	projectStore store.ProjectStore
	logger       *slog.Logger
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectStore store.ProjectStore, logger *slog.Logger) *ProjectService {
	return &ProjectService{
		projectStore: projectStore,
		logger:       logger.With(slog.String("component", "project_service")),
	}
}

// StartProject moves the student's project into the in-progress state and
// returns the updated project. Starting an already started project is a no-op.
// Students may only start projects assigned to them.
func (s *ProjectService) StartProject(
	ctx context.Context,
	studentID, projectID int,
) (*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	project, err := s.projectStore.GetProjectByID(ctx, projectID)
	if err != nil {
		return nil, NewProjectServiceError("start", "failed to load project", err)
	}
	if project.StudentID != studentID {
		return nil, ErrNotOwned
	}

	project.Start()

	if err := s.projectStore.UpdateProject(ctx, project); err != nil {
		return nil, NewProjectServiceError("start", "failed to persist project", err)
	}

	log.Info("project started",
		slog.Int("project_id", projectID),
		slog.Int("student_id", studentID))

	return project, nil
}

// SubmitProject records the student's deliverable and moves the project to the
// submitted state. The optional code is kept alongside the project so teachers
// can review it during validation.
func (s *ProjectService) SubmitProject(
	ctx context.Context,
	studentID, projectID int,
	artifact, code string,
) (*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	project, err := s.projectStore.GetProjectByID(ctx, projectID)
	if err != nil {
		return nil, NewProjectServiceError("submit", "failed to load project", err)
	}
	if project.StudentID != studentID {
		return nil, ErrNotOwned
	}

	if err := project.Submit(artifact); err != nil {
		return nil, err
	}

	if err := s.projectStore.UpdateProject(ctx, project); err != nil {
		return nil, NewProjectServiceError("submit", "failed to persist project", err)
	}
	if code != "" {
		s.projectStore.SaveProjectCode(ctx, projectID, code)
	}

	log.Info("project submitted",
		slog.Int("project_id", projectID),
		slog.Int("student_id", studentID),
		slog.Bool("has_code", code != ""))

	return project, nil
}

// GradeProject validates a submitted project with the given score, completing
// its lifecycle. Domain rules reject scores outside 0-100 and projects that
// have not been submitted yet.
func (s *ProjectService) GradeProject(
	ctx context.Context,
	projectID int,
	score float64,
) (*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	project, err := s.projectStore.GetProjectByID(ctx, projectID)
	if err != nil {
		return nil, NewProjectServiceError("grade", "failed to load project", err)
	}

	if err := project.Grade(score); err != nil {
		return nil, err
	}

	if err := s.projectStore.UpdateProject(ctx, project); err != nil {
		return nil, NewProjectServiceError("grade", "failed to persist project", err)
	}

	log.Info("project graded",
		slog.Int("project_id", projectID),
		slog.Float64("score", score))

	return project, nil
}

// SubmittedCode returns the code blob saved with a project submission, if any.
func (s *ProjectService) SubmittedCode(ctx context.Context, projectID int) (string, bool) {
	return s.projectStore.SavedProjectCode(ctx, projectID)
}
