package repository

import (
	"errors"

	"balanceflow-backend/internal/task/domain"

	"gorm.io/gorm"
)

// gormTaskRepository implements TaskRepository using GORM
type gormTaskRepository struct {
	db *gorm.DB
}

func NewGormTaskRepository(db *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: db}
}

func (r *gormTaskRepository) Create(task *domain.Task) error {
	return r.db.Create(task).Error
}

func (r *gormTaskRepository) FindByUserID(userID uint) ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := r.db.Where("user_id = ?", userID).
		Order("due_date ASC").
		Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) FindByIDAndUser(id, userID uint) (*domain.Task, error) {
	var task domain.Task
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormTaskRepository) Update(task *domain.Task) error {
	return r.db.Save(task).Error
}

func (r *gormTaskRepository) ToggleStatus(id, userID uint) (int64, error) {
	res := r.db.Model(&domain.Task{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("status", gorm.Expr(
			"CASE WHEN status = ? THEN ? ELSE ? END",
			domain.TaskStatusPending, domain.TaskStatusCompleted, domain.TaskStatusPending,
		))
	return res.RowsAffected, res.Error
}

func (r *gormTaskRepository) DeleteByIDAndUser(id, userID uint) (int64, error) {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Task{})
	return res.RowsAffected, res.Error
}
