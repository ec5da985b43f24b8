// Package api provides HTTP handlers for the API.
package api

import (
	"log/slog"
	"net/http"

	"github.com/taskboard-io/taskboard-api/internal/api/shared"
	"github.com/taskboard-io/taskboard-api/internal/platform/logger"
	"github.com/taskboard-io/taskboard-api/internal/service"
)

// TaskHandler handles task-related HTTP requests.
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService service.TaskService, log *slog.Logger) *TaskHandler {
	if log == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskService: taskService,
		logger:      log.With(slog.String("component", "task_handler")),
	}
}

// CreateTask handles POST /api/task/createTask requests.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, msgBadPayload)
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("validation error", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, validationMessage(err))
		return
	}

	if err := h.taskService.Create(r.Context(), req.Name, req.Title, req.Description); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), ErrorMessage(err), err)
		return
	}

	log.Debug("task created", slog.String("task_title", req.Title))
	shared.RespondWithSuccess(w, r, "Task created successfully.")
}

// EditTask handles PUT /api/task/editTask requests.
func (h *TaskHandler) EditTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req EditTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, msgBadPayload)
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("validation error", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, validationMessage(err))
		return
	}

	if err := h.taskService.Edit(r.Context(), req.ID, req.Name, req.Title, req.Description); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), ErrorMessage(err), err)
		return
	}

	log.Debug("task updated", slog.Int64("task_id", req.ID))
	shared.RespondWithSuccess(w, r, "Task updated successfully.")
}

// ViewTasks handles GET /api/task/viewTasks requests.
func (h *TaskHandler) ViewTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tasks, err := h.taskService.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), ErrorMessage(err), err)
		return
	}

	log.Debug("tasks listed", slog.Int("count", len(tasks)))
	shared.RespondWithSuccess(w, r, tasks)
}

// DeleteTask handles DELETE /api/task/deleteTask requests.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req DeleteTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, msgBadPayload)
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("validation error", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, validationMessage(err))
		return
	}

	if err := h.taskService.SoftDelete(r.Context(), req.ID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), ErrorMessage(err), err)
		return
	}

	log.Debug("task deleted", slog.Int64("task_id", req.ID))
	shared.RespondWithSuccess(w, r, "Task deleted successfully.")
}
