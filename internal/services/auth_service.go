package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"golang.org/x/crypto/bcrypt"

	"github.com/hireline/applicant-tracking-api/internal/dto"
	"github.com/hireline/applicant-tracking-api/internal/logging"
	"github.com/hireline/applicant-tracking-api/internal/mailer"
	"github.com/hireline/applicant-tracking-api/internal/models"
	"github.com/hireline/applicant-tracking-api/internal/repository"
	"github.com/hireline/applicant-tracking-api/internal/security"
	"github.com/hireline/applicant-tracking-api/internal/tasks"
)

const (
	sessionTokenTTL = 7 * 24 * time.Hour
	resetTokenTTL   = 15 * time.Minute
	passwordCost    = 12
	totpIssuer      = "Applicant Tracking"
)

// AuthService authenticates the administrative account, including TOTP
// second factors and the password reset flow.
type AuthService struct {
	users          repository.UserRepository
	tokens         *security.TokenProvider
	mail           mailer.Mailer
	runner         tasks.Runner
	frontendURL    string
	log            *logging.Logger
	validateTOTP   func(code, secret string) bool
	generateSecret func(account string) (secret, url string, err error)
}

func NewAuthService(
	users repository.UserRepository,
	tokens *security.TokenProvider,
	mail mailer.Mailer,
	runner tasks.Runner,
	frontendURL string,
	log *logging.Logger,
) *AuthService {
	return &AuthService{
		users:       users,
		tokens:      tokens,
		mail:        mail,
		runner:      runner,
		frontendURL: frontendURL,
		log:         log,
		validateTOTP: func(code, secret string) bool {
			ok, err := totp.ValidateCustom(code, secret, time.Now().UTC(), totp.ValidateOpts{
				Period:    30,
				Skew:      1,
				Digits:    otp.DigitsSix,
				Algorithm: otp.AlgorithmSHA1,
			})
			return err == nil && ok
		},
		generateSecret: func(account string) (string, string, error) {
			key, err := totp.Generate(totp.GenerateOpts{
				Issuer:      totpIssuer,
				AccountName: account,
			})
			if err != nil {
				return "", "", err
			}
			return key.Secret(), key.URL(), nil
		},
	}
}

// Login checks credentials. Accounts with a second factor get a challenge
// instead of a token.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	if user.Is2FAEnabled {
		return &dto.LoginResponse{
			Message:     "Please enter your 2FA code to complete login",
			Requires2FA: true,
			UserID:      user.ID.Hex(),
		}, nil
	}
	return s.issueSession(user, "User logged in successfully")
}

func (s *AuthService) issueSession(user *models.User, message string) (*dto.LoginResponse, error) {
	token, err := s.tokens.Generate(user.ID.Hex(), user.Role, sessionTokenTTL)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Message: message,
		Token:   token,
		User:    user,
	}, nil
}

// Verify2FALogin completes a challenged login with a TOTP code.
func (s *AuthService) Verify2FALogin(ctx context.Context, req *dto.Verify2FALoginRequest) (*dto.LoginResponse, error) {
	user, err := s.findUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !user.Is2FAEnabled || user.TwoFASecret == "" {
		return nil, ErrTwoFANotEnabled
	}
	if !s.validateTOTP(req.Token, user.TwoFASecret) {
		return nil, ErrInvalid2FACode
	}
	return s.issueSession(user, "Login successful with 2FA")
}

func (s *AuthService) findUser(ctx context.Context, id string) (*models.User, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	user, err := s.users.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Enable2FA starts enrollment. The secret is stored but the account is not
// protected until the first code is verified.
func (s *AuthService) Enable2FA(ctx context.Context, userID string) (*dto.TwoFASetup, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Is2FAEnabled {
		return nil, ErrTwoFAEnabled
	}

	secret, url, err := s.generateSecret(user.Email)
	if err != nil {
		return nil, err
	}
	user.TwoFASecret = secret
	user.UpdatedAt = time.Now()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return &dto.TwoFASetup{
		Secret:     secret,
		OtpauthURL: url,
		Message:    "Scan the QR code with your authenticator app and enter the code to complete setup",
	}, nil
}

// Verify2FASetup finishes enrollment once the user proves they hold the
// secret.
func (s *AuthService) Verify2FASetup(ctx context.Context, userID, code string) error {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}
	if user.TwoFASecret == "" {
		return ErrTwoFANotConfigured
	}
	if !s.validateTOTP(code, user.TwoFASecret) {
		return ErrInvalid2FACode
	}
	user.Is2FAEnabled = true
	user.UpdatedAt = time.Now()
	return s.users.Update(ctx, user)
}

// Disable2FA removes the second factor. It needs the password and a valid
// current code.
func (s *AuthService) Disable2FA(ctx context.Context, userID string, req *dto.Disable2FARequest) error {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}
	if !user.Is2FAEnabled {
		return ErrTwoFANotEnabled
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return ErrInvalidCredentials
	}
	if !s.validateTOTP(req.Token, user.TwoFASecret) {
		return ErrInvalid2FACode
	}

	user.Is2FAEnabled = false
	user.TwoFASecret = ""
	user.UpdatedAt = time.Now()
	return s.users.Update(ctx, user)
}

// TwoFAStatus reports whether the account has a second factor.
func (s *AuthService) TwoFAStatus(ctx context.Context, userID string) (bool, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.Is2FAEnabled, nil
}

// ForgotPassword issues a short-lived reset token and emails a link for it
// on the background runner.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	token, err := s.tokens.Generate(user.ID.Hex(), "", resetTokenTTL)
	if err != nil {
		return err
	}
	resetLink := fmt.Sprintf("%s/reset-password/%s", s.frontendURL, token)

	s.runner.Submit("password reset email", func() {
		subject, html := mailer.PasswordResetRequest(resetLink)
		if err := s.mail.Send(user.Email, subject, html); err != nil {
			s.log.Error("failed to send reset email", "email", user.Email, "error", err)
		}
	})
	return nil
}

// ResetPassword consumes a reset token and stores a new password.
func (s *AuthService) ResetPassword(ctx context.Context, token string, req *dto.ResetPasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if len(req.NewPassword) < 6 {
		return ErrPasswordTooShort
	}

	claims, err := s.tokens.Parse(token)
	if err != nil {
		return ErrInvalidResetToken
	}
	user, err := s.findUser(ctx, claims.UserID)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), passwordCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	s.runner.Submit("password reset confirmation email", func() {
		subject, html := mailer.PasswordResetConfirmation()
		if err := s.mail.Send(user.Email, subject, html); err != nil {
			s.log.Error("failed to send reset confirmation", "email", user.Email, "error", err)
		}
	})
	return nil
}

// ChangePassword rotates the password of a logged-in user.
func (s *AuthService) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if len(req.NewPassword) < 6 {
		return ErrPasswordTooShort
	}
	if req.CurrentPassword == req.NewPassword {
		return ErrPasswordUnchanged
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), passwordCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	changedAt := time.Now().Format("1/2/2006, 3:04:05 PM")
	s.runner.Submit("password change notice email", func() {
		subject, html := mailer.PasswordChangedNotice(changedAt)
		if err := s.mail.Send(user.Email, subject, html); err != nil {
			s.log.Error("failed to send password change notice", "email", user.Email, "error", err)
		}
	})
	return nil
}

// GetAdmin returns the administrative account.
func (s *AuthService) GetAdmin(ctx context.Context) (*models.User, error) {
	user, err := s.users.FindAdmin(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateUser edits an account. Non-admin callers may only edit themselves,
// and only admins may change roles.
func (s *AuthService) UpdateUser(ctx context.Context, id, actorID, actorRole string, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.findUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if actorRole != "admin" && actorID != id {
		return nil, ErrNotAuthorized
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil && actorRole == "admin" {
		user.Role = *req.Role
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Password != nil {
		if len(*req.Password) < 6 {
			return nil, ErrPasswordTooShort
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), passwordCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	user.UpdatedAt = time.Now()
	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}
