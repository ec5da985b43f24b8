package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/taskboard-io/taskboard-api/internal/api"
	apiMiddleware "github.com/taskboard-io/taskboard-api/internal/api/middleware"
	"github.com/taskboard-io/taskboard-api/internal/service"
	"github.com/taskboard-io/taskboard-api/internal/ws"
)

// newRouter creates and configures the application router with all routes
// and middleware.
func newRouter(taskService service.TaskService, hub *ws.Hub, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	taskHandler := api.NewTaskHandler(taskService, log)

	r.Route("/api/task", func(r chi.Router) {
		r.Post("/createTask", taskHandler.CreateTask)
		r.Put("/editTask", taskHandler.EditTask)
		r.Get("/viewTasks", taskHandler.ViewTasks)
		r.Delete("/deleteTask", taskHandler.DeleteTask)
	})

	// Real-time channel; clients connect here and receive mutation events.
	r.Get("/ws", hub.ServeWS)

	// Static API documentation passthrough.
	r.Get("/api-docs", serveAPIDocs)

	// Liveness endpoints.
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("Server is running")); err != nil {
			log.Error("Failed to write liveness response", "error", err)
		}
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			log.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
