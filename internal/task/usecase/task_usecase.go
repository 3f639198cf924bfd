package usecase

import (
	"errors"
	"time"

	"balanceflow-backend/internal/task/domain"
	"balanceflow-backend/internal/task/repository"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidPriority = errors.New("invalid priority value")
)

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Category    string  `json:"category" binding:"required"`
	DueDate     *string `json:"due_date"`
	Priority    string  `json:"priority"`
}

// UpdateTaskRequest carries a partial update; nil fields are left alone.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	DueDate     *string `json:"due_date"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
}

// TaskUsecase implements per-user task CRUD and the status toggle
type TaskUsecase interface {
	AddTask(userID uint, req *CreateTaskRequest) (*domain.Task, error)
	GetTasks(userID uint) ([]*domain.Task, error)
	UpdateTask(userID, taskID uint, req *UpdateTaskRequest) (*domain.Task, error)
	ToggleTaskStatus(userID, taskID uint) error
	DeleteTask(userID, taskID uint) error
}

type taskUsecase struct {
	taskRepo repository.TaskRepository
}

func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{taskRepo: taskRepo}
}

func (u *taskUsecase) AddTask(userID uint, req *CreateTaskRequest) (*domain.Task, error) {
	priority := domain.PriorityMedium
	if req.Priority != "" {
		priority = domain.Priority(req.Priority)
		if !priority.Valid() {
			return nil, ErrInvalidPriority
		}
	}

	task := &domain.Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    priority,
		Status:      domain.TaskStatusPending,
	}

	if req.DueDate != nil && *req.DueDate != "" {
		if t, err := parseDate(*req.DueDate); err == nil {
			task.DueDate = &t
		}
	}

	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) GetTasks(userID uint) ([]*domain.Task, error) {
	return u.taskRepo.FindByUserID(userID)
}

func (u *taskUsecase) UpdateTask(userID, taskID uint, req *UpdateTaskRequest) (*domain.Task, error) {
	if req.Priority != nil && !domain.Priority(*req.Priority).Valid() {
		return nil, ErrInvalidPriority
	}

	task, err := u.taskRepo.FindByIDAndUser(taskID, userID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = req.Description
	}
	if req.Category != nil {
		task.Category = *req.Category
	}
	if req.Priority != nil {
		task.Priority = domain.Priority(*req.Priority)
	}
	if req.Status != nil {
		task.Status = domain.TaskStatus(*req.Status)
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			task.DueDate = nil
		} else if t, err := parseDate(*req.DueDate); err == nil {
			task.DueDate = &t
		}
	}

	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) ToggleTaskStatus(userID, taskID uint) error {
	rows, err := u.taskRepo.ToggleStatus(taskID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (u *taskUsecase) DeleteTask(userID, taskID uint) error {
	rows, err := u.taskRepo.DeleteByIDAndUser(taskID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// parseDate accepts RFC3339 timestamps and bare dates.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
