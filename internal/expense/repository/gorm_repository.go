package repository

import (
	"errors"

	"balanceflow-backend/internal/expense/domain"

	"gorm.io/gorm"
)

// gormExpenseRepository implements ExpenseRepository using GORM
type gormExpenseRepository struct {
	db *gorm.DB
}

func NewGormExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &gormExpenseRepository{db: db}
}

func (r *gormExpenseRepository) Create(expense *domain.Expense) error {
	return r.db.Create(expense).Error
}

func (r *gormExpenseRepository) FindByUserID(userID uint) ([]*domain.Expense, error) {
	var expenses []*domain.Expense
	err := r.db.Where("user_id = ?", userID).
		Order("transaction_date DESC").
		Find(&expenses).Error
	return expenses, err
}

func (r *gormExpenseRepository) FindByIDAndUser(id, userID uint) (*domain.Expense, error) {
	var expense domain.Expense
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&expense).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &expense, nil
}

func (r *gormExpenseRepository) Update(expense *domain.Expense) error {
	return r.db.Save(expense).Error
}

func (r *gormExpenseRepository) DeleteByIDAndUser(id, userID uint) (int64, error) {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Expense{})
	return res.RowsAffected, res.Error
}
