package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"balanceflow-backend/internal/task/usecase"
	"balanceflow-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{taskUsecase: taskUsecase}
}

// AddTask creates a new task for the authenticated user.
// POST /api/task
func (h *TaskHandler) AddTask(c *gin.Context) {
	userID := c.GetUint("userID")

	var req usecase.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Title and category are required")
		return
	}

	if _, err := h.taskUsecase.AddTask(userID, &req); err != nil {
		if errors.Is(err, usecase.ErrInvalidPriority) {
			response.Error(c, http.StatusBadRequest, "Invalid priority value")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Success(c, http.StatusCreated, "Task created successfully", nil)
}

// GetTasks lists the user's tasks ordered by due date.
// GET /api/task
func (h *TaskHandler) GetTasks(c *gin.Context) {
	userID := c.GetUint("userID")

	tasks, err := h.taskUsecase.GetTasks(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, "Tasks fetched successfully", tasks)
}

// UpdateTask applies a partial update to one task.
// PUT /api/task/:taskId
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID := c.GetUint("userID")

	taskID, err := strconv.ParseUint(c.Param("taskId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Task ID is required")
		return
	}

	var req usecase.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if _, err := h.taskUsecase.UpdateTask(userID, uint(taskID), &req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrTaskNotFound):
			response.Error(c, http.StatusNotFound, "Task not found")
		case errors.Is(err, usecase.ErrInvalidPriority):
			response.Error(c, http.StatusBadRequest, "Invalid priority value")
		default:
			response.Error(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response.Success(c, http.StatusOK, "Task updated successfully", nil)
}

// ToggleTaskStatus flips a task between pending and completed.
// PATCH /api/task/:taskId/status
func (h *TaskHandler) ToggleTaskStatus(c *gin.Context) {
	userID := c.GetUint("userID")

	taskID, err := strconv.ParseUint(c.Param("taskId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Task ID is required")
		return
	}

	if err := h.taskUsecase.ToggleTaskStatus(userID, uint(taskID)); err != nil {
		if errors.Is(err, usecase.ErrTaskNotFound) {
			response.Error(c, http.StatusNotFound, "Task not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, "Task status updated", nil)
}

// DeleteTask removes one task owned by the user.
// DELETE /api/task/:taskId
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID := c.GetUint("userID")

	taskID, err := strconv.ParseUint(c.Param("taskId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Task ID is required")
		return
	}

	if err := h.taskUsecase.DeleteTask(userID, uint(taskID)); err != nil {
		if errors.Is(err, usecase.ErrTaskNotFound) {
			response.Error(c, http.StatusNotFound, "Task not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, "Task deleted successfully", nil)
}
