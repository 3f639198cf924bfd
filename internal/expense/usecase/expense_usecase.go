package usecase

import (
	"errors"
	"time"

	"balanceflow-backend/internal/expense/domain"
	"balanceflow-backend/internal/expense/repository"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrInvalidAmount   = errors.New("amount must be greater than zero")
	ErrInvalidDate     = errors.New("invalid transaction date")
)

// CreateExpenseRequest carries the fields for a new expense record.
type CreateExpenseRequest struct {
	Title           string  `json:"title" binding:"required"`
	Amount          float64 `json:"amount"`
	Category        string  `json:"category" binding:"required"`
	Notes           *string `json:"notes"`
	TransactionDate string  `json:"transaction_date" binding:"required"`
	PaymentMethod   *string `json:"payment_method"`
}

// UpdateExpenseRequest carries a partial update; nil fields are left alone.
type UpdateExpenseRequest struct {
	Title           *string  `json:"title"`
	Amount          *float64 `json:"amount"`
	Category        *string  `json:"category"`
	Notes           *string  `json:"notes"`
	TransactionDate *string  `json:"transaction_date"`
	PaymentMethod   *string  `json:"payment_method"`
}

// ExpenseUsecase implements per-user expense CRUD
type ExpenseUsecase interface {
	AddExpense(userID uint, req *CreateExpenseRequest) (*domain.Expense, error)
	GetExpenses(userID uint) ([]*domain.Expense, error)
	UpdateExpense(userID, expenseID uint, req *UpdateExpenseRequest) (*domain.Expense, error)
	DeleteExpense(userID, expenseID uint) error
}

type expenseUsecase struct {
	expenseRepo repository.ExpenseRepository
}

func NewExpenseUsecase(expenseRepo repository.ExpenseRepository) ExpenseUsecase {
	return &expenseUsecase{expenseRepo: expenseRepo}
}

func (u *expenseUsecase) AddExpense(userID uint, req *CreateExpenseRequest) (*domain.Expense, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	txDate, err := parseDate(req.TransactionDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	expense := &domain.Expense{
		UserID:          userID,
		Title:           req.Title,
		Amount:          req.Amount,
		Category:        req.Category,
		Notes:           req.Notes,
		TransactionDate: txDate,
		PaymentMethod:   req.PaymentMethod,
	}
	if err := u.expenseRepo.Create(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (u *expenseUsecase) GetExpenses(userID uint) ([]*domain.Expense, error) {
	return u.expenseRepo.FindByUserID(userID)
}

func (u *expenseUsecase) UpdateExpense(userID, expenseID uint, req *UpdateExpenseRequest) (*domain.Expense, error) {
	if req.Amount != nil && *req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	expense, err := u.expenseRepo.FindByIDAndUser(expenseID, userID)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrExpenseNotFound
	}

	if req.Title != nil {
		expense.Title = *req.Title
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.Notes != nil {
		expense.Notes = req.Notes
	}
	if req.TransactionDate != nil {
		txDate, err := parseDate(*req.TransactionDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		expense.TransactionDate = txDate
	}
	if req.PaymentMethod != nil {
		expense.PaymentMethod = req.PaymentMethod
	}

	if err := u.expenseRepo.Update(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (u *expenseUsecase) DeleteExpense(userID, expenseID uint) error {
	rows, err := u.expenseRepo.DeleteByIDAndUser(expenseID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrExpenseNotFound
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
