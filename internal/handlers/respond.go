// Package handlers contains the gin HTTP handlers. Handlers bind and
// validate requests, call into the service layer and translate its sentinel
// errors into API responses.
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	apierrors "github.com/hireline/applicant-tracking-api/internal/errors"
	"github.com/hireline/applicant-tracking-api/internal/services"
)

// respondServiceError maps service sentinel errors onto API responses.
// Anything unmatched becomes a 500 with the detail suppressed.
func respondServiceError(c *gin.Context, err error) {
	var validation *services.ValidationError
	if errors.As(err, &validation) {
		apierrors.BadRequestWithDetails(c, "Missing required fields", gin.H{"missingFields": validation.Missing})
		return
	}

	switch {
	case errors.Is(err, services.ErrInvalidID):
		apierrors.BadRequest(c, "Invalid ID format")
	case errors.Is(err, services.ErrPositionNotFound),
		errors.Is(err, services.ErrApplicationNotFound),
		errors.Is(err, services.ErrInterviewNotFound),
		errors.Is(err, services.ErrInterviewerNotFound),
		errors.Is(err, services.ErrApplicantNotFound),
		errors.Is(err, services.ErrMemberNotFound),
		errors.Is(err, services.ErrMessageNotFound),
		errors.Is(err, services.ErrNotificationNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrNoResume):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrDuplicateApplication):
		apierrors.Duplicate(c, "You have already applied for this position")
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.Duplicate(c, err.Error())
	case errors.Is(err, services.ErrInvalidStatus):
		apierrors.BadRequestCode(c, apierrors.ErrCodeInvalidStatus, "Invalid status value")
	case errors.Is(err, services.ErrMissingContactInfo):
		apierrors.BadRequestCode(c, apierrors.ErrCodeMissingContactInfo, "Missing email for applicant or interviewer")
	case errors.Is(err, services.ErrPositionClosed),
		errors.Is(err, services.ErrInvalidGraduationYear),
		errors.Is(err, services.ErrReasonRequired),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrEmptyMessage),
		errors.Is(err, services.ErrPasswordMismatch),
		errors.Is(err, services.ErrPasswordTooShort),
		errors.Is(err, services.ErrPasswordUnchanged),
		errors.Is(err, services.ErrTwoFAEnabled),
		errors.Is(err, services.ErrTwoFANotEnabled),
		errors.Is(err, services.ErrTwoFANotConfigured),
		errors.Is(err, services.ErrInvalid2FACode),
		errors.Is(err, services.ErrInvalidResetToken):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.RespondWithError(c, 401, apierrors.NewAPIError(apierrors.ErrCodeInvalidCredentials, err.Error()))
	case errors.Is(err, services.ErrNotAuthorized):
		apierrors.Forbidden(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
