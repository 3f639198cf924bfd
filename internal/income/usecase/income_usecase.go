package usecase

import (
	"errors"
	"time"

	"balanceflow-backend/internal/income/domain"
	"balanceflow-backend/internal/income/repository"
)

var (
	ErrIncomeNotFound = errors.New("income not found")
	ErrInvalidAmount  = errors.New("amount must be greater than zero")
	ErrInvalidDate    = errors.New("invalid transaction date")
)

type CreateIncomeRequest struct {
	Title           string  `json:"title" binding:"required"`
	Amount          float64 `json:"amount"`
	Category        string  `json:"category" binding:"required"`
	Notes           *string `json:"notes"`
	TransactionDate string  `json:"transaction_date" binding:"required"`
}

// UpdateIncomeRequest carries a partial update; nil fields are left alone.
type UpdateIncomeRequest struct {
	Title           *string  `json:"title"`
	Amount          *float64 `json:"amount"`
	Category        *string  `json:"category"`
	Notes           *string  `json:"notes"`
	TransactionDate *string  `json:"transaction_date"`
}

// IncomeUsecase implements per-user income CRUD
type IncomeUsecase interface {
	AddIncome(userID uint, req *CreateIncomeRequest) (*domain.Income, error)
	GetIncomes(userID uint) ([]*domain.Income, error)
	UpdateIncome(userID, incomeID uint, req *UpdateIncomeRequest) (*domain.Income, error)
	DeleteIncome(userID, incomeID uint) error
}

type incomeUsecase struct {
	incomeRepo repository.IncomeRepository
}

func NewIncomeUsecase(incomeRepo repository.IncomeRepository) IncomeUsecase {
	return &incomeUsecase{incomeRepo: incomeRepo}
}

func (u *incomeUsecase) AddIncome(userID uint, req *CreateIncomeRequest) (*domain.Income, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	txDate, err := parseDate(req.TransactionDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	income := &domain.Income{
		UserID:          userID,
		Title:           req.Title,
		Amount:          req.Amount,
		Category:        req.Category,
		Notes:           req.Notes,
		TransactionDate: txDate,
	}
	if err := u.incomeRepo.Create(income); err != nil {
		return nil, err
	}
	return income, nil
}

func (u *incomeUsecase) GetIncomes(userID uint) ([]*domain.Income, error) {
	return u.incomeRepo.FindByUserID(userID)
}

func (u *incomeUsecase) UpdateIncome(userID, incomeID uint, req *UpdateIncomeRequest) (*domain.Income, error) {
	if req.Amount != nil && *req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	income, err := u.incomeRepo.FindByIDAndUser(incomeID, userID)
	if err != nil {
		return nil, err
	}
	if income == nil {
		return nil, ErrIncomeNotFound
	}

	if req.Title != nil {
		income.Title = *req.Title
	}
	if req.Amount != nil {
		income.Amount = *req.Amount
	}
	if req.Category != nil {
		income.Category = *req.Category
	}
	if req.Notes != nil {
		income.Notes = req.Notes
	}
	if req.TransactionDate != nil {
		txDate, err := parseDate(*req.TransactionDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		income.TransactionDate = txDate
	}

	if err := u.incomeRepo.Update(income); err != nil {
		return nil, err
	}
	return income, nil
}

func (u *incomeUsecase) DeleteIncome(userID, incomeID uint) error {
	rows, err := u.incomeRepo.DeleteByIDAndUser(incomeID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrIncomeNotFound
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
