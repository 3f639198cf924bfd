package repository

import "balanceflow-backend/internal/income/domain"

// IncomeRepository defines the interface for income data access
type IncomeRepository interface {
	Create(income *domain.Income) error

	// FindByUserID returns the user's incomes, newest transaction first.
	FindByUserID(userID uint) ([]*domain.Income, error)

	FindByIDAndUser(id, userID uint) (*domain.Income, error)

	Update(income *domain.Income) error

	// DeleteByIDAndUser reports how many rows were removed.
	DeleteByIDAndUser(id, userID uint) (int64, error)
}
