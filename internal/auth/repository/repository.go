package repository

import (
	"time"

	"balanceflow-backend/internal/auth/domain"
)

// UserRepository defines the data access surface the auth usecase depends on.
// Lookups return (nil, nil) when no row matches; update-style methods report
// how many rows matched so callers can tell "not found" apart from success.
type UserRepository interface {
	Create(user *domain.User) error
	FindByEmail(email string) (*domain.User, error)
	FindByID(id uint) (*domain.User, error)
	FindByGoogleID(googleID string) (*domain.User, error)

	// FindByEmailAndOTP matches a row whose pending OTP equals code and has
	// not expired as of now.
	FindByEmailAndOTP(email, code string, now time.Time) (*domain.User, error)

	// MarkVerified flips is_verified and clears the OTP fields.
	MarkVerified(email string) error

	// SetOTP overwrites any pending OTP and its expiry.
	SetOTP(email, code string, expiresAt time.Time) (int64, error)

	SetResetToken(email, token string, expiresAt time.Time) (int64, error)
	FindByResetToken(token string, now time.Time) (*domain.User, error)

	// ResetPasswordByToken stores the new hash and clears the reset fields.
	ResetPasswordByToken(token, passwordHash string) error

	UpdatePassword(id uint, passwordHash string) error
}
