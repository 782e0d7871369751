package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/goop-edu/goop-api/internal/api/shared"
	"github.com/goop-edu/goop-api/internal/domain"
	"github.com/goop-edu/goop-api/internal/platform/logger"
	"github.com/goop-edu/goop-api/internal/service"
	"github.com/goop-edu/goop-api/internal/store"
)

// ProjectHandler handles project API requests.
type ProjectHandler struct {
	projectStore   store.ProjectStore
	projectService *service.ProjectService
	validator      *validator.Validate
	logger         *slog.Logger
}

// NewProjectHandler creates a new ProjectHandler with the given dependencies.
func NewProjectHandler(
	projectStore store.ProjectStore,
	projectService *service.ProjectService,
	logger *slog.Logger,
) *ProjectHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ProjectHandler")
	}

	return &ProjectHandler{
		projectStore:   projectStore,
		projectService: projectService,
		validator:      validator.New(),
		logger:         logger.With(slog.String("component", "project_handler")),
	}
}

// ListProjects handles GET /projects requests. Students see their own
// projects; teachers see all of them.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	var projects []domain.Project
	if isTeacher(r) {
		projects = h.projectStore.GetAllProjects(r.Context())
	} else {
		projects = h.projectStore.ProjectsByStudent(r.Context(), userID)
	}

	responses := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		responses = append(responses, projectToResponse(&projects[i]))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// GetProject handles GET /projects/{id} requests.
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := handleUserIDAndPathID(w, r, "id")
	if !ok {
		return
	}

	project, err := h.projectStore.GetProjectByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if !isTeacher(r) && project.StudentID != userID {
		HandleAPIError(w, r, service.ErrNotOwned, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, projectToResponse(project))
}

// CreateProject handles POST /projects requests. Restricted to teachers; the
// authenticated teacher becomes the project's assigner.
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	teacherID, ok := getUserIDFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "User ID not found or invalid")
		return
	}

	var req CreateProjectRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	deadline, err := time.Parse(time.RFC3339, req.Deadline)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Invalid deadline: must be an RFC 3339 timestamp")
		return
	}

	project, err := domain.NewProject(req.Title, req.Description, deadline, req.StudentID, teacherID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.projectStore.CreateProject(r.Context(), project); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("project assigned",
		slog.Int("project_id", project.ID),
		slog.Int("student_id", project.StudentID))

	shared.RespondWithJSON(w, r, http.StatusCreated, projectToResponse(project))
}

// UpdateProject handles PUT /projects/{id} requests. Restricted to teachers.
// Only the assignment itself is editable; lifecycle state moves exclusively
// through the start, submission, and grade endpoints.
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	existing, err := h.projectStore.GetProjectByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateProjectRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	deadline, err := time.Parse(time.RFC3339, req.Deadline)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Invalid deadline: must be an RFC 3339 timestamp")
		return
	}

	existing.Title = req.Title
	existing.Description = req.Description
	existing.Deadline = deadline

	if err := h.projectStore.UpdateProject(r.Context(), existing); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("project updated", slog.Int("project_id", existing.ID))

	shared.RespondWithJSON(w, r, http.StatusOK, projectToResponse(existing))
}

// DeleteProject handles DELETE /projects/{id} requests. Restricted to
// teachers. The id is also detached from the owning student's list.
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.projectStore.DeleteProject(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("project deleted", slog.Int("project_id", id))

	w.WriteHeader(http.StatusNoContent)
}

// StartProject handles POST /projects/{id}/start requests.
func (h *ProjectHandler) StartProject(w http.ResponseWriter, r *http.Request) {
	studentID, id, ok := handleUserIDAndPathID(w, r, "id")
	if !ok {
		return
	}

	project, err := h.projectService.StartProject(r.Context(), studentID, id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, projectToResponse(project))
}

// SubmitProject handles POST /projects/{id}/submission requests.
func (h *ProjectHandler) SubmitProject(w http.ResponseWriter, r *http.Request) {
	studentID, id, ok := handleUserIDAndPathID(w, r, "id")
	if !ok {
		return
	}

	var req SubmitProjectRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	project, err := h.projectService.SubmitProject(r.Context(), studentID, id, req.Artifact, req.Code)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, projectToResponse(project))
}

// GradeProject handles POST /projects/{id}/grade requests. Restricted to
// teachers.
func (h *ProjectHandler) GradeProject(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req GradeProjectRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	project, err := h.projectService.GradeProject(r.Context(), id, req.Score)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, projectToResponse(project))
}

// GetProjectCode handles GET /projects/{id}/code requests. Students may only
// read their own project's code; teachers may read any.
func (h *ProjectHandler) GetProjectCode(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := handleUserIDAndPathID(w, r, "id")
	if !ok {
		return
	}

	project, err := h.projectStore.GetProjectByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if !isTeacher(r) && project.StudentID != userID {
		HandleAPIError(w, r, service.ErrNotOwned, "")
		return
	}

	code, found := h.projectService.SubmittedCode(r.Context(), id)
	if !found {
		shared.RespondWithError(w, r, http.StatusNotFound, "No code submitted for this project")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ProjectCodeResponse{
		ProjectID: id,
		Code:      code,
	})
}

// projectToResponse maps a project entity to its API representation,
// including deadline views derived from the current date.
func projectToResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:                p.ID,
		Title:             p.Title,
		Description:       p.Description,
		Status:            p.Status(),
		Deadline:          p.Deadline.Format(time.RFC3339),
		DeadlineFormatted: p.DeadlineFormatted(),
		DaysRemaining:     p.DaysRemaining(),
		Overdue:           p.IsOverdue(),
		Score:             p.Score,
		StudentID:         p.StudentID,
		TeacherID:         p.TeacherID,
		Artifact:          p.Artifact,
	}
}
