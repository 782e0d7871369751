package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/goop-edu/goop-api/internal/api"
	apiMiddleware "github.com/goop-edu/goop-api/internal/api/middleware"
	"github.com/goop-edu/goop-api/internal/domain"
)

// setupRouter creates and configures the application router with all routes and middleware.
// It accepts the application dependencies to create handlers and register routes.
// Returns the configured router.
func (app *application) setupRouter() http.Handler {
	// Create a router
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // Add trace IDs for improved error handling

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(app.recordStore, app.jwtService, app.logger)
	userHandler := api.NewUserHandler(app.recordStore, app.logger)
	materialHandler := api.NewMaterialHandler(app.recordStore, app.logger)
	testHandler := api.NewTestHandler(app.recordStore, app.assessmentService, app.logger)
	projectHandler := api.NewProjectHandler(app.recordStore, app.projectService, app.logger)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)
	teacherOnly := apiMiddleware.RequireRole(domain.RoleTeacher)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/auth/logout", authHandler.Logout)
			r.Get("/auth/me", authHandler.Me)

			// Account endpoints
			r.Get("/students", userHandler.ListStudents)
			r.Get("/students/{id}", userHandler.GetStudent)
			r.Get("/teachers", userHandler.ListTeachers)
			r.Get("/teachers/{id}", userHandler.GetTeacher)

			// Material endpoints
			r.Get("/materials", materialHandler.ListMaterials)
			r.Get("/materials/{id}", materialHandler.GetMaterial)

			// Test endpoints
			r.Get("/tests", testHandler.ListTests)
			r.Get("/tests/{id}", testHandler.GetTest)
			r.Post("/tests/{id}/submissions", testHandler.SubmitAnswers)
			r.Get("/tests/{id}/results/{studentID}", testHandler.GetResult)

			// Project endpoints
			r.Get("/projects", projectHandler.ListProjects)
			r.Get("/projects/{id}", projectHandler.GetProject)
			r.Post("/projects/{id}/start", projectHandler.StartProject)
			r.Post("/projects/{id}/submission", projectHandler.SubmitProject)
			r.Get("/projects/{id}/code", projectHandler.GetProjectCode)

			// Teacher-only management endpoints
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

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
