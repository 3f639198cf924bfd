package repository

import (
	"errors"

	"balanceflow-backend/internal/income/domain"

	"gorm.io/gorm"
)

// gormIncomeRepository implements IncomeRepository using GORM
type gormIncomeRepository struct {
	db *gorm.DB
}

func NewGormIncomeRepository(db *gorm.DB) IncomeRepository {
	return &gormIncomeRepository{db: db}
}

func (r *gormIncomeRepository) Create(income *domain.Income) error {
	return r.db.Create(income).Error
}

func (r *gormIncomeRepository) FindByUserID(userID uint) ([]*domain.Income, error) {
	var incomes []*domain.Income
	err := r.db.Where("user_id = ?", userID).
		Order("transaction_date DESC").
		Find(&incomes).Error
	return incomes, err
}

func (r *gormIncomeRepository) FindByIDAndUser(id, userID uint) (*domain.Income, error) {
	var income domain.Income
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&income).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &income, nil
}

func (r *gormIncomeRepository) Update(income *domain.Income) error {
	return r.db.Save(income).Error
}

func (r *gormIncomeRepository) DeleteByIDAndUser(id, userID uint) (int64, error) {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Income{})
	return res.RowsAffected, res.Error
}
