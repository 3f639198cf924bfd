package delivery

import (
	"errors"
	"net/http"

	authdto "balanceflow-backend/internal/auth/dto"
	"balanceflow-backend/internal/auth/usecase"
	"balanceflow-backend/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles the account-lifecycle HTTP endpoints
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Signup creates an unverified account and emails the first OTP.
// POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req authdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "All fields are required")
		return
	}

	if err := h.authUsecase.Signup(&req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailTaken):
			response.Error(c, http.StatusConflict, "Email already registered")
		case errors.Is(err, usecase.ErrEmailSendFailed):
			response.Error(c, http.StatusInternalServerError, "Failed to send verification email. Check is email valid")
		default:
			response.Error(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response.Success(c, http.StatusCreated, "Signup successful. OTP sent.", nil)
}

// VerifyOTP consumes a pending OTP and returns a session token.
// POST /api/auth/verify-otp
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req authdto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Email and OTP are required")
		return
	}

	res, err := h.authUsecase.VerifyOTP(&req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidOrExpiredOTP) {
			response.Error(c, http.StatusBadRequest, "Invalid or expired OTP")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, "Account verified successfully", res)
}

// ResendOTP overwrites the pending OTP and emails the fresh one.
// POST /api/auth/resend-otp
func (h *AuthHandler) ResendOTP(c *gin.Context) {
	var req authdto.ResendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Email is required")
		return
	}

	if err := h.authUsecase.ResendOTP(req.Email); err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "User not found")
		case errors.Is(err, usecase.ErrEmailSendFailed):
			response.Error(c, http.StatusInternalServerError, "Failed to send OTP email. Check if the email is valid.")
		default:
			response.Error(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response.Success(c, http.StatusOK, "OTP resent successfully. Check your email.", nil)
}

// Login authenticates a verified account; an unverified one gets a fresh OTP
// cycle and a 403.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Email and password required")
		return
	}

	res, err := h.authUsecase.Login(&req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "Invalid credentials")
		case errors.Is(err, usecase.ErrGoogleAccount):
			response.Error(c, http.StatusBadRequest, "Use Google login")
		case errors.Is(err, usecase.ErrAccountNotVerified):
			response.Error(c, http.StatusForbidden, "Account not verified. OTP sent to your email.")
		default:
			response.Error(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response.Success(c, http.StatusOK, "Login successful", res)
}

// GoogleLogin links or creates a pre-verified Google-backed account.
// POST /api/auth/google-login
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req authdto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid Google data")
		return
	}

	if err := h.authUsecase.GoogleLogin(&req); err != nil {
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, "Google login successful", nil)
}

// ForgotPassword issues a time-limited reset token, returned in the payload.
// POST /api/auth/forgot-password
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req authdto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Email is required")
		return
	}

	resetToken, err := h.authUsecase.ForgotPassword(req.Email)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, "Reset link sent", authdto.ForgotPasswordResponse{Token: resetToken})
}

// ResetPassword consumes a reset token and stores the new password hash.
// POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req authdto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request")
		return
	}

	if err := h.authUsecase.ResetPassword(req.Token, req.NewPassword); err != nil {
		if errors.Is(err, usecase.ErrInvalidOrExpiredToken) {
			response.Error(c, http.StatusBadRequest, "Invalid or expired token")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, "Password updated successfully", nil)
}

// ChangePassword rotates the password of the authenticated user.
// POST /api/auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := c.GetUint("userID")

	var req authdto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "All fields are required")
		return
	}

	if err := h.authUsecase.ChangePassword(userID, &req); err != nil {
		switch {
		case errors.Is(err, usecase.ErrPasswordConfirmation):
			response.Error(c, http.StatusBadRequest, "New password confirmation does not match")
		case errors.Is(err, usecase.ErrPasswordUnchanged):
			response.Error(c, http.StatusBadRequest, "New password must be different from current password")
		case errors.Is(err, usecase.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "User not found")
		case errors.Is(err, usecase.ErrIncorrectPassword):
			response.Error(c, http.StatusBadRequest, "Current password is incorrect")
		default:
			response.Error(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response.Success(c, http.StatusOK, "Password changed successfully", nil)
}

// Me returns the authenticated user's summary.
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetUint("userID")

	user, err := h.authUsecase.Me(userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Success(c, http.StatusOK, "User details fetched successfully", user)
}
