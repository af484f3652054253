package dto

import "github.com/hireline/applicant-tracking-api/internal/models"

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type Verify2FALoginRequest struct {
	UserID string `json:"userId" binding:"required"`
	Token  string `json:"token" binding:"required"`
}

type Verify2FASetupRequest struct {
	Token string `json:"token" binding:"required"`
}

type Disable2FARequest struct {
	Password string `json:"password" binding:"required"`
	Token    string `json:"token" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

type ResetPasswordRequest struct {
	NewPassword     string `json:"newPassword" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	Bio      *string `json:"bio"`
	Phone    *string `json:"phone"`
}

// LoginResponse carries either a session token or a 2FA challenge.
type LoginResponse struct {
	Message     string       `json:"message"`
	Requires2FA bool         `json:"requires2FA,omitempty"`
	UserID      string       `json:"userId,omitempty"`
	Token       string       `json:"token,omitempty"`
	User        *models.User `json:"user,omitempty"`
}

// TwoFASetup is returned when 2FA enrollment starts.
type TwoFASetup struct {
	Secret     string `json:"secret"`
	OtpauthURL string `json:"otpauthUrl"`
	Message    string `json:"message"`
}
