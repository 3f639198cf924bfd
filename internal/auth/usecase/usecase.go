package usecase

import (
	"errors"

	authdto "balanceflow-backend/internal/auth/dto"
)

// Expected failures from the account lifecycle. Handlers map these to status
// codes; anything else is an internal error and is never surfaced verbatim.
var (
	ErrEmailTaken            = errors.New("email already registered")
	ErrEmailSendFailed       = errors.New("failed to send email")
	ErrInvalidOrExpiredOTP   = errors.New("invalid or expired OTP")
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrGoogleAccount         = errors.New("use Google login")
	ErrAccountNotVerified    = errors.New("account not verified")
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")
	ErrPasswordConfirmation  = errors.New("new password confirmation does not match")
	ErrPasswordUnchanged     = errors.New("new password must be different from current password")
	ErrIncorrectPassword     = errors.New("current password is incorrect")
)

// AuthUsecase orchestrates every account state transition: signup, OTP
// verification and resend, login, Google-account linking and the three
// password flows.
type AuthUsecase interface {
	Signup(req *authdto.SignupRequest) error
	VerifyOTP(req *authdto.VerifyOTPRequest) (*authdto.TokenResponse, error)
	ResendOTP(email string) error
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	GoogleLogin(req *authdto.GoogleLoginRequest) error
	ForgotPassword(email string) (string, error)
	ResetPassword(token, newPassword string) error
	ChangePassword(userID uint, req *authdto.ChangePasswordRequest) error
	Me(userID uint) (*authdto.MeResponse, error)
}
