package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apiMiddleware "github.com/tasktrack/tasktrack/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // Trace IDs for log and error correlation

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokenService)

	// Authentication endpoint (public)
	r.Post("/login", app.authHandler.Login)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Post("/tasks", app.taskHandler.CreateTask)
		r.Get("/tasks", app.taskHandler.ListTasks)
		r.Get("/tasks/{id}", app.taskHandler.GetTask)
		r.Put("/tasks/{id}", app.taskHandler.UpdateTaskStatus)
		r.Delete("/tasks/{id}", app.taskHandler.DeleteTask)
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
