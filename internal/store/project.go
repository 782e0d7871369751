package store

import (
	"context"

	"github.com/goop-edu/goop-api/internal/domain"
)

// ProjectStore defines the interface for project persistence, the
// project-owner linkage, and the per-project code blob map.
type ProjectStore interface {
	// CreateProject assigns the next project id, inserts the project, and
	// appends the id to the owning student's project list — atomically with
	// respect to the call. If the referenced student does not exist the
	// whole operation fails with ErrIntegrityViolation and nothing is
	// inserted.
	CreateProject(ctx context.Context, project *domain.Project) error

	// GetAllProjects returns a defensive copy of the project collection in
	// insertion order.
	GetAllProjects(ctx context.Context) []domain.Project

	// GetProjectByID retrieves a project by id.
	// Returns ErrProjectNotFound if the project does not exist.
	GetProjectByID(ctx context.Context, id int) (*domain.Project, error)

	// UpdateProject replaces the stored project matching by id (full
	// replace, not a partial patch).
	// Returns ErrProjectNotFound if the project does not exist.
	UpdateProject(ctx context.Context, project *domain.Project) error

	// DeleteProject removes the project and detaches its id from the owning
	// student. Project ids are never reused after deletion.
	// Returns ErrProjectNotFound if the project does not exist.
	DeleteProject(ctx context.Context, id int) error

	// ProjectsByStudent returns the projects owned by the given student, in
	// insertion order.
	ProjectsByStudent(ctx context.Context, studentID int) []domain.Project

	// SaveProjectCode stores an opaque code blob keyed by project id,
	// independent of the project entity's own fields.
	SaveProjectCode(ctx context.Context, projectID int, code string)

	// SavedProjectCode returns the stored blob and whether one exists.
	SavedProjectCode(ctx context.Context, projectID int) (string, bool)
}
