package handlers

import (
	"net/http"

	"github.com/rohanvs/tasklink/internal/apperr"
	"github.com/rohanvs/tasklink/internal/logger"
	"github.com/rohanvs/tasklink/internal/models"
	"github.com/rohanvs/tasklink/internal/service"
)

type TaskHandler struct {
	taskService *service.TaskService
	log         *logger.Logger
}

func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		log:         logger.New("task-handler"),
	}
}

func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, apperr.New(apperr.Validation, "invalid request body"))
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), req.TaskName, req.Creator)
	if err != nil {
		h.log.Error("CreateTask failed: %v", err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, models.CreateTaskResponse{Task: *task})
}

func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")

	tasks, err := h.taskService.ListTasksByUser(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, models.ListTasksResponse{Tasks: tasks})
}
