package domain

import "time"

// User is the single persisted identity record. Verification and
// password-reset state live inline on the row; there is no sessions table.
type User struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	Name     string  `json:"name" gorm:"not null"`
	Email    string  `json:"email" gorm:"uniqueIndex;not null"`
	Password *string `json:"-"` // nil means the account must use Google sign-in
	GoogleID *string `json:"-" gorm:"column:google_id;uniqueIndex"`

	IsVerified      bool       `json:"is_verified" gorm:"default:false"`
	VerificationOTP *string    `json:"-" gorm:"column:verification_otp"`
	OTPExpiresAt    *time.Time `json:"-" gorm:"column:otp_expires_at"`

	ResetToken     *string    `json:"-" gorm:"column:reset_token;index"`
	ResetExpiresAt *time.Time `json:"-" gorm:"column:reset_expires_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
