package repository

import "balanceflow-backend/internal/task/domain"

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	Create(task *domain.Task) error

	// FindByUserID returns the user's tasks ordered by due date, soonest first.
	FindByUserID(userID uint) ([]*domain.Task, error)

	FindByIDAndUser(id, userID uint) (*domain.Task, error)

	Update(task *domain.Task) error

	// ToggleStatus flips pending<->completed in a single statement and
	// reports how many rows matched.
	ToggleStatus(id, userID uint) (int64, error)

	// DeleteByIDAndUser reports how many rows were removed.
	DeleteByIDAndUser(id, userID uint) (int64, error)
}
