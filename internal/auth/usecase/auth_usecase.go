package usecase

import (
	"errors"
	"fmt"
	"log"
	"time"

	authdomain "balanceflow-backend/internal/auth/domain"
	authdto "balanceflow-backend/internal/auth/dto"
	"balanceflow-backend/internal/auth/repository"
	"balanceflow-backend/internal/mailer"
	"balanceflow-backend/pkg/hash"
	"balanceflow-backend/pkg/otp"
	"balanceflow-backend/pkg/token"
)

const (
	otpLength       = 6
	otpTTLMinutes   = 10
	resetTTLMinutes = 15
)

// authUsecase implements AuthUsecase
type authUsecase struct {
	userRepo repository.UserRepository
	hasher   *hash.Hasher
	tokens   *token.Issuer
	mail     mailer.Mailer
}

func NewAuthUsecase(userRepo repository.UserRepository, hasher *hash.Hasher, tokens *token.Issuer, mail mailer.Mailer) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		mail:     mail,
	}
}

func (u *authUsecase) Signup(req *authdto.SignupRequest) error {
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}

	hashed, err := u.hasher.Hash(req.Password)
	if err != nil {
		return err
	}

	code, err := otp.Generate(otpLength)
	if err != nil {
		return err
	}
	expiresAt := otp.ExpiryFromNow(otpTTLMinutes)

	user := &authdomain.User{
		Name:            req.Name,
		Email:           req.Email,
		Password:        &hashed,
		VerificationOTP: &code,
		OTPExpiresAt:    &expiresAt,
	}
	if err := u.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return ErrEmailTaken
		}
		return err
	}

	// The row is kept even when the send fails; the account stays reachable
	// through resend-otp.
	if err := u.mail.Send(req.Email, "Verify Your Email - BalanceFlow", signupEmailBody(req.Name, code)); err != nil {
		log.Printf("signup: verification email to %s failed: %v", req.Email, err)
		return ErrEmailSendFailed
	}

	return nil
}

func (u *authUsecase) VerifyOTP(req *authdto.VerifyOTPRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmailAndOTP(req.Email, req.OTP, time.Now())
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Wrong code, no pending code and expired code all look the same.
		return nil, ErrInvalidOrExpiredOTP
	}

	if err := u.userRepo.MarkVerified(req.Email); err != nil {
		return nil, err
	}

	signed, err := u.tokens.Issue(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{
		Token: signed,
		User:  authdto.UserSummary{ID: user.ID, Name: user.Name, Email: user.Email},
	}, nil
}

func (u *authUsecase) ResendOTP(email string) error {
	code, err := otp.Generate(otpLength)
	if err != nil {
		return err
	}

	rows, err := u.userRepo.SetOTP(email, code, otp.ExpiryFromNow(otpTTLMinutes))
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}

	if err := u.mail.Send(email, "Your OTP Code - BalanceFlow", resendEmailBody(code)); err != nil {
		log.Printf("resend-otp: email to %s failed: %v", email, err)
		return ErrEmailSendFailed
	}

	return nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Same answer as a wrong password so addresses cannot be enumerated.
		return nil, ErrInvalidCredentials
	}

	if user.Password == nil {
		return nil, ErrGoogleAccount
	}

	if !u.hasher.Verify(req.Password, *user.Password) {
		return nil, ErrInvalidCredentials
	}

	if !user.IsVerified {
		code, err := otp.Generate(otpLength)
		if err != nil {
			return nil, err
		}
		if _, err := u.userRepo.SetOTP(req.Email, code, otp.ExpiryFromNow(otpTTLMinutes)); err != nil {
			return nil, err
		}
		// The login is rejected either way, so a failed send only gets logged.
		if err := u.mail.Send(req.Email, "Verify your account", fmt.Sprintf("Your verification code is: %s", code)); err != nil {
			log.Printf("login: verification email to %s failed: %v", req.Email, err)
		}
		return nil, ErrAccountNotVerified
	}

	signed, err := u.tokens.Issue(user.ID, user.Email, user.Name)
	if err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{
		Token: signed,
		User:  authdto.UserSummary{ID: user.ID, Name: user.Name, Email: user.Email},
	}, nil
}

func (u *authUsecase) GoogleLogin(req *authdto.GoogleLoginRequest) error {
	user, err := u.userRepo.FindByGoogleID(req.GoogleID)
	if err != nil {
		return err
	}
	if user != nil {
		// Repeated sign-ins with the same Google account are a no-op.
		return nil
	}

	// Pre-verified and passwordless; no session token is issued in this flow.
	newUser := &authdomain.User{
		Name:       req.Name,
		Email:      req.Email,
		GoogleID:   &req.GoogleID,
		IsVerified: true,
	}
	return u.userRepo.Create(newUser)
}

func (u *authUsecase) ForgotPassword(email string) (string, error) {
	resetToken, err := otp.NewResetToken()
	if err != nil {
		return "", err
	}

	rows, err := u.userRepo.SetResetToken(email, resetToken, otp.ExpiryFromNow(resetTTLMinutes))
	if err != nil {
		return "", err
	}
	if rows == 0 {
		return "", ErrUserNotFound
	}

	// The token goes back in the response body; nothing is emailed here.
	return resetToken, nil
}

func (u *authUsecase) ResetPassword(resetToken, newPassword string) error {
	user, err := u.userRepo.FindByResetToken(resetToken, time.Now())
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidOrExpiredToken
	}

	hashed, err := u.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	return u.userRepo.ResetPasswordByToken(resetToken, hashed)
}

func (u *authUsecase) ChangePassword(userID uint, req *authdto.ChangePasswordRequest) error {
	if req.NewPassword != req.NewPasswordConfirmation {
		return ErrPasswordConfirmation
	}
	// Plaintext compare; the hashed current-password check comes after.
	if req.CurrentPassword == req.NewPassword {
		return ErrPasswordUnchanged
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil || user.Password == nil {
		return ErrUserNotFound
	}

	if !u.hasher.Verify(req.CurrentPassword, *user.Password) {
		return ErrIncorrectPassword
	}

	hashed, err := u.hasher.Hash(req.NewPassword)
	if err != nil {
		return err
	}
	return u.userRepo.UpdatePassword(userID, hashed)
}

func (u *authUsecase) Me(userID uint) (*authdto.MeResponse, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return &authdto.MeResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}, nil
}

func signupEmailBody(name, code string) string {
	return fmt.Sprintf("<p>Hello %s,</p><p>Your OTP for email verification is: <b>%s</b></p><p>This OTP will expire in %d minutes.</p>", name, code, otpTTLMinutes)
}

func resendEmailBody(code string) string {
	return fmt.Sprintf("<p>Hello,</p><p>Your OTP for email verification is: <b>%s</b></p><p>This OTP will expire in %d minutes.</p>", code, otpTTLMinutes)
}
