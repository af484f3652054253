package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hireline/applicant-tracking-api/internal/dto"
	apierrors "github.com/hireline/applicant-tracking-api/internal/errors"
	"github.com/hireline/applicant-tracking-api/internal/middleware"
	"github.com/hireline/applicant-tracking-api/internal/services"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login checks credentials and either issues a session token or a 2FA
// challenge.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Email and password are required")
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Verify2FALogin completes a challenged login with a TOTP code.
func (h *AuthHandler) Verify2FALogin(c *gin.Context) {
	var req dto.Verify2FALoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "User ID and OTP are required")
		return
	}

	resp, err := h.auth.Verify2FALogin(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Enable2FA starts second-factor enrollment for the logged-in user.
func (h *AuthHandler) Enable2FA(c *gin.Context) {
	setup, err := h.auth.Enable2FA(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, setup)
}

// Verify2FASetup finishes enrollment with the first valid code.
func (h *AuthHandler) Verify2FASetup(c *gin.Context) {
	var req dto.Verify2FASetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "OTP code is required")
		return
	}

	if err := h.auth.Verify2FASetup(c.Request.Context(), middleware.UserID(c), req.Token); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "2FA has been successfully enabled for your account"})
}

// Disable2FA removes the second factor after re-authentication.
func (h *AuthHandler) Disable2FA(c *gin.Context) {
	var req dto.Disable2FARequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Password and current OTP are required to disable 2FA")
		return
	}

	if err := h.auth.Disable2FA(c.Request.Context(), middleware.UserID(c), &req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "2FA has been disabled for your account"})
}

// TwoFAStatus reports whether the account has a second factor enabled.
func (h *AuthHandler) TwoFAStatus(c *gin.Context) {
	enabled, err := h.auth.TwoFAStatus(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"is2FAEnabled": enabled})
}

// ForgotPassword emails a password reset link.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Email is required")
		return
	}

	if err := h.auth.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset email sent. Please check your inbox."})
}

// ResetPassword consumes a reset token from the URL and sets a new password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "New password and confirmation are required")
		return
	}

	if err := h.auth.ResetPassword(c.Request.Context(), c.Param("token"), &req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password has been reset successfully. You can now log in with your new password."})
}

// ChangePassword rotates the password of the logged-in user.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Current password, new password, and confirmation are required")
		return
	}

	if err := h.auth.ChangePassword(c.Request.Context(), middleware.UserID(c), &req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

// GetAdmin returns the administrative account.
func (h *AuthHandler) GetAdmin(c *gin.Context) {
	user, err := h.auth.GetAdmin(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": user})
}

// UpdateUser edits an account. Only admins may edit other users or change
// roles.
func (h *AuthHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.auth.UpdateUser(c.Request.Context(), c.Param("id"), middleware.UserID(c), middleware.Role(c), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    user,
	})
}
