package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/goop-edu/goop-api/internal/api"
	apimiddleware "github.com/goop-edu/goop-api/internal/api/middleware"
	"github.com/goop-edu/goop-api/internal/domain"
	"github.com/goop-edu/goop-api/internal/platform/memory"
	"github.com/goop-edu/goop-api/internal/service"
	"github.com/goop-edu/goop-api/internal/service/auth"
)

// Seeded fixture accounts.
const (
	sandyID   = 1
	budiID    = 2
	bambangID = 4
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testEnv bundles a seeded store with a router mounting the full API surface.
type testEnv struct {
	store  *memory.Store
	router chi.Router
}

// newTestEnv assembles the handlers against a freshly seeded in-memory store,
// mirroring the server's route table.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := newTestLogger()
	recordStore := memory.NewStore(log)
	jwtService := auth.RequireTestJWTService(t)

	authHandler := api.NewAuthHandler(recordStore, jwtService, log)
	userHandler := api.NewUserHandler(recordStore, log)
	materialHandler := api.NewMaterialHandler(recordStore, log)
	testHandler := api.NewTestHandler(
		recordStore, service.NewAssessmentService(recordStore, log), log)
	projectHandler := api.NewProjectHandler(
		recordStore, service.NewProjectService(recordStore, log), log)

	authMiddleware := apimiddleware.NewAuthMiddleware(jwtService)
	teacherOnly := apimiddleware.RequireRole(domain.RoleTeacher)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/auth/logout", authHandler.Logout)
			r.Get("/auth/me", authHandler.Me)

			r.Get("/students", userHandler.ListStudents)
			r.Get("/students/{id}", userHandler.GetStudent)
			r.Get("/teachers", userHandler.ListTeachers)
			r.Get("/teachers/{id}", userHandler.GetTeacher)

			r.Get("/materials", materialHandler.ListMaterials)
			r.Get("/materials/{id}", materialHandler.GetMaterial)

			r.Get("/tests", testHandler.ListTests)
			r.Get("/tests/{id}", testHandler.GetTest)
			r.Post("/tests/{id}/submissions", testHandler.SubmitAnswers)
			r.Get("/tests/{id}/results/{studentID}", testHandler.GetResult)

			r.Get("/projects", projectHandler.ListProjects)
			r.Get("/projects/{id}", projectHandler.GetProject)
			r.Post("/projects/{id}/start", projectHandler.StartProject)
			r.Post("/projects/{id}/submission", projectHandler.SubmitProject)
			r.Get("/projects/{id}/code", projectHandler.GetProjectCode)

			r.Group(func(r chi.Router) {
				r.Use(teacherOnly)

				r.Post("/students", userHandler.CreateStudent)
				r.Put("/students/{id}", userHandler.UpdateStudent)
				r.Post("/teachers", userHandler.CreateTeacher)
				r.Put("/teachers/{id}", userHandler.UpdateTeacher)
				r.Post("/materials", materialHandler.CreateMaterial)
				r.Put("/materials/{id}", materialHandler.UpdateMaterial)
				r.Post("/tests", testHandler.CreateTest)
				r.Put("/tests/{id}", testHandler.UpdateTest)
				r.Post("/projects", projectHandler.CreateProject)
				r.Put("/projects/{id}", projectHandler.UpdateProject)
				r.Delete("/projects/{id}", projectHandler.DeleteProject)
				r.Post("/projects/{id}/grade", projectHandler.GradeProject)
			})
		})
	})

	return &testEnv{store: recordStore, router: r}
}

// do performs a request against the test router. A non-empty authHeader is
// set as the Authorization header.
func (e *testEnv) do(t *testing.T, method, path, authHeader string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// asStudent returns an Authorization header for the given student account.
func asStudent(t *testing.T, id int) string {
	t.Helper()
	return auth.GenerateAuthHeaderForTestingT(t, id, domain.RoleStudent)
}

// asTeacher returns an Authorization header for the given teacher account.
func asTeacher(t *testing.T, id int) string {
	t.Helper()
	return auth.GenerateAuthHeaderForTestingT(t, id, domain.RoleTeacher)
}

// decodeBody unmarshals the recorded response body into target.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target))
}
