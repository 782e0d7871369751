package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/goop-edu/goop-api/internal/api/shared"
	"github.com/goop-edu/goop-api/internal/domain"
	"github.com/goop-edu/goop-api/internal/platform/logger"
	"github.com/goop-edu/goop-api/internal/service"
	"github.com/goop-edu/goop-api/internal/store"
)

// TestHandler handles cognitive test API requests.
type TestHandler struct {
	testStore         store.TestStore
	assessmentService *service.AssessmentService
	validator         *validator.Validate
	logger            *slog.Logger
}

// NewTestHandler creates a new TestHandler with the given dependencies.
func NewTestHandler(
	testStore store.TestStore,
	assessmentService *service.AssessmentService,
	logger *slog.Logger,
) *TestHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TestHandler")
	}

	return &TestHandler{
		testStore:         testStore,
		assessmentService: assessmentService,
		validator:         validator.New(),
		logger:            logger.With(slog.String("component", "test_handler")),
	}
}

// ListTests handles GET /tests requests. Students only see active tests;
// teachers see everything.
func (h *TestHandler) ListTests(w http.ResponseWriter, r *http.Request) {
	teacher := isTeacher(r)

	var tests []domain.CognitiveTest
	if teacher {
		tests = h.testStore.GetAllTests(r.Context())
	} else {
		tests = h.testStore.ActiveTests(r.Context())
	}

	responses := make([]TestResponse, 0, len(tests))
	for i := range tests {
		responses = append(responses, testToResponse(&tests[i], teacher))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// GetTest handles GET /tests/{id} requests. The answer key is stripped from
// student views.
func (h *TestHandler) GetTest(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	test, err := h.testStore.GetTestByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, testToResponse(test, isTeacher(r)))
}

// CreateTest handles POST /tests requests. Restricted to teachers.
func (h *TestHandler) CreateTest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTestRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	test, err := domain.NewCognitiveTest(req.Title, req.DurationMinutes)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	for _, q := range req.Questions {
		question, err := domain.NewQuestion(
			q.Prompt, q.ChoiceA, q.ChoiceB, q.ChoiceC, q.ChoiceD, q.CorrectChoice)
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
		if err := test.AddQuestion(*question); err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
	}

	if err := h.testStore.CreateTest(r.Context(), test); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("test created",
		slog.Int("test_id", test.ID),
		slog.Int("questions", test.QuestionCount()))

	shared.RespondWithJSON(w, r, http.StatusCreated, testToResponse(test, true))
}

// UpdateTest handles PUT /tests/{id} requests. Restricted to teachers.
// Title, duration, and the ACTIVE/INACTIVE switch are editable; the
// question set is fixed at creation.
func (h *TestHandler) UpdateTest(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	existing, err := h.testStore.GetTestByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateTestRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	existing.Title = req.Title
	if req.DurationMinutes > 0 {
		existing.DurationMinutes = req.DurationMinutes
	}
	if req.Active != nil {
		if *req.Active {
			existing.Activate()
		} else {
			existing.Deactivate()
		}
	}

	if err := h.testStore.UpdateTest(r.Context(), existing); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	log.Info("test updated",
		slog.Int("test_id", existing.ID),
		slog.String("status", string(existing.Status)))

	shared.RespondWithJSON(w, r, http.StatusOK, testToResponse(existing, true))
}

// SubmitAnswers handles POST /tests/{id}/submissions requests. The
// authenticated student's answer sheet is scored and recorded.
func (h *TestHandler) SubmitAnswers(w http.ResponseWriter, r *http.Request) {
	studentID, testID, ok := handleUserIDAndPathID(w, r, "id")
	if !ok {
		return
	}

	var req SubmitAnswersRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	score, err := h.assessmentService.SubmitTest(r.Context(), studentID, testID, req.Answers)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TestResultResponse{
		StudentID: studentID,
		TestID:    testID,
		Score:     score,
		Taken:     true,
	})
}

// GetResult handles GET /tests/{id}/results/{studentID} requests. Students may
// only read their own results; teachers may read any.
func (h *TestHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	requesterID, testID, ok := handleUserIDAndPathID(w, r, "id")
	if !ok {
		return
	}

	studentID, err := getPathID(r, "studentID")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if !isTeacher(r) && requesterID != studentID {
		shared.RespondWithError(w, r, http.StatusForbidden, "Insufficient permissions")
		return
	}

	score, taken := h.assessmentService.ResultFor(r.Context(), studentID, testID)
	shared.RespondWithJSON(w, r, http.StatusOK, TestResultResponse{
		StudentID: studentID,
		TestID:    testID,
		Score:     score,
		Taken:     taken,
	})
}

// testToResponse maps a test entity to its API representation. The answer key
// is only included when includeKey is true (teacher views).
func testToResponse(t *domain.CognitiveTest, includeKey bool) TestResponse {
	questions := make([]QuestionResponse, 0, len(t.Questions))
	for _, q := range t.Questions {
		qr := QuestionResponse{
			ID:      q.ID,
			Prompt:  q.Prompt,
			ChoiceA: q.ChoiceA,
			ChoiceB: q.ChoiceB,
			ChoiceC: q.ChoiceC,
			ChoiceD: q.ChoiceD,
		}
		if includeKey {
			qr.CorrectChoice = q.CorrectChoice
		}
		questions = append(questions, qr)
	}

	return TestResponse{
		ID:              t.ID,
		Title:           t.Title,
		DurationMinutes: t.DurationMinutes,
		Status:          t.Status,
		Questions:       questions,
	}
}
