// Package services implements the business rules on top of the repository
// layer. Handlers translate the sentinel errors declared here into HTTP
// responses; services themselves never touch gin.
package services

import "errors"

var (
	ErrInvalidID = errors.New("invalid id")

	ErrPositionNotFound = errors.New("position not found")
	ErrPositionClosed   = errors.New("position is not accepting applications")

	ErrApplicationNotFound   = errors.New("application not found")
	ErrDuplicateApplication  = errors.New("application already submitted for this position")
	ErrInvalidGraduationYear = errors.New("invalid graduation year format")
	ErrNoResume              = errors.New("no resume for this application")
	ErrEmptyMessage          = errors.New("subject and message are required")

	ErrInterviewNotFound   = errors.New("interview not found")
	ErrInterviewerNotFound = errors.New("interviewer not found")
	ErrApplicantNotFound   = errors.New("applicant not found")
	ErrReasonRequired      = errors.New("cancellation reason is required")
	ErrMissingContactInfo  = errors.New("contact email is missing")

	ErrMemberNotFound = errors.New("member not found")
	ErrInvalidRole    = errors.New("role is not allowed")

	ErrMessageNotFound = errors.New("message not found")

	ErrNotificationNotFound = errors.New("notification not found")

	ErrInvalidStatus = errors.New("invalid status value")

	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalid2FACode     = errors.New("invalid two-factor code")
	ErrTwoFAEnabled       = errors.New("two-factor authentication is already enabled")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrEmailTaken         = errors.New("email already exists")
	ErrTwoFANotEnabled    = errors.New("two-factor authentication is not enabled")
	ErrTwoFANotConfigured = errors.New("two-factor authentication has not been set up")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrPasswordUnchanged  = errors.New("new password must differ from the current one")
)

// ValidationError reports required fields that were absent from a request.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields"
}
