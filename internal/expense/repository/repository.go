package repository

import "balanceflow-backend/internal/expense/domain"

// ExpenseRepository defines the interface for expense data access
type ExpenseRepository interface {
	Create(expense *domain.Expense) error

	// FindByUserID returns the user's expenses, newest transaction first.
	FindByUserID(userID uint) ([]*domain.Expense, error)

	FindByIDAndUser(id, userID uint) (*domain.Expense, error)

	Update(expense *domain.Expense) error

	// DeleteByIDAndUser reports how many rows were removed so callers can
	// distinguish "not found" from success.
	DeleteByIDAndUser(id, userID uint) (int64, error)
}
