package repository

import (
	"errors"
	"time"

	"balanceflow-backend/internal/auth/domain"

	"gorm.io/gorm"
)

// ErrDuplicateEmail is returned when the unique index on users.email rejects
// an insert. The index, not the pre-insert lookup, is the authoritative guard
// against two concurrent signups racing on the same address.
var ErrDuplicateEmail = errors.New("email already registered")

// userRepository implements UserRepository using GORM
type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *domain.User) error {
	err := r.db.Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *userRepository) FindByEmail(email string) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(id uint) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByGoogleID(googleID string) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("google_id = ?", googleID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmailAndOTP(email, code string, now time.Time) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("email = ? AND verification_otp = ? AND otp_expires_at > ?", email, code, now).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) MarkVerified(email string) error {
	return r.db.Model(&domain.User{}).Where("email = ?", email).
		Updates(map[string]interface{}{
			"is_verified":      true,
			"verification_otp": nil,
			"otp_expires_at":   nil,
		}).Error
}

func (r *userRepository) SetOTP(email, code string, expiresAt time.Time) (int64, error) {
	res := r.db.Model(&domain.User{}).Where("email = ?", email).
		Updates(map[string]interface{}{
			"verification_otp": code,
			"otp_expires_at":   expiresAt,
		})
	return res.RowsAffected, res.Error
}

func (r *userRepository) SetResetToken(email, token string, expiresAt time.Time) (int64, error) {
	res := r.db.Model(&domain.User{}).Where("email = ?", email).
		Updates(map[string]interface{}{
			"reset_token":      token,
			"reset_expires_at": expiresAt,
		})
	return res.RowsAffected, res.Error
}

func (r *userRepository) FindByResetToken(token string, now time.Time) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("reset_token = ? AND reset_expires_at > ?", token, now).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ResetPasswordByToken(token, passwordHash string) error {
	return r.db.Model(&domain.User{}).Where("reset_token = ?", token).
		Updates(map[string]interface{}{
			"password":         passwordHash,
			"reset_token":      nil,
			"reset_expires_at": nil,
		}).Error
}

func (r *userRepository) UpdatePassword(id uint, passwordHash string) error {
	return r.db.Model(&domain.User{}).Where("id = ?", id).
		Update("password", passwordHash).Error
}
