package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hireline/applicant-tracking-api/internal/models"
)

// Sentinel errors returned by all implementations. Services match on these
// instead of driver-specific error values.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// PositionRepository defines data access for job positions.
type PositionRepository interface {
	Create(ctx context.Context, position *models.Position) error

	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Position, error)

	// List returns positions, optionally restricted to active ones.
	List(ctx context.Context, activeOnly bool) ([]models.Position, error)

	// Update replaces the stored document (last write wins).
	Update(ctx context.Context, position *models.Position) error

	Delete(ctx context.Context, id primitive.ObjectID) (*models.Position, error)

	// IncrementApplications atomically adjusts the application counter.
	IncrementApplications(ctx context.Context, id primitive.ObjectID, delta int) error

	CountByStatus(ctx context.Context, status models.PositionStatus) (int64, error)
}

// ApplicationRepository defines data access for candidate applications.
type ApplicationRepository interface {
	// Create persists a new application. Returns ErrDuplicate when an
	// application with the same (email, position) pair already exists.
	Create(ctx context.Context, application *models.Application) error

	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Application, error)

	// FindByEmailAndPosition locates an existing submission for the pair.
	FindByEmailAndPosition(ctx context.Context, email string, position primitive.ObjectID) (*models.Application, error)

	// FindByName locates an application by candidate first and last name.
	FindByName(ctx context.Context, firstName, lastName string) (*models.Application, error)

	List(ctx context.Context) ([]models.Application, error)

	Update(ctx context.Context, application *models.Application) error

	Delete(ctx context.Context, id primitive.ObjectID) (*models.Application, error)

	CountByStatus(ctx context.Context, status models.ApplicationStatus) (int64, error)

	CountAppliedBetween(ctx context.Context, from, to time.Time) (int64, error)

	CountByStatusBetween(ctx context.Context, status models.ApplicationStatus, from, to time.Time) (int64, error)
}

// InterviewRepository defines data access for interviews.
type InterviewRepository interface {
	Create(ctx context.Context, interview *models.Interview) error

	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Interview, error)

	// List returns interviews, most recently created first.
	List(ctx context.Context) ([]models.Interview, error)

	Update(ctx context.Context, interview *models.Interview) error

	Delete(ctx context.Context, id primitive.ObjectID) (*models.Interview, error)

	CountByStatus(ctx context.Context, status models.InterviewStatus) (int64, error)

	CountByStatusBetween(ctx context.Context, status models.InterviewStatus, from, to time.Time) (int64, error)
}

// MemberRepository defines data access for staff members.
type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error

	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Member, error)

	FindByName(ctx context.Context, name string) (*models.Member, error)

	// List returns members, most recently created first.
	List(ctx context.Context) ([]models.Member, error)

	Update(ctx context.Context, member *models.Member) error

	Delete(ctx context.Context, id primitive.ObjectID) (*models.Member, error)
}

// MessageRepository defines data access for contact-form messages.
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error

	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Message, error)

	List(ctx context.Context) ([]models.Message, error)

	Update(ctx context.Context, message *models.Message) error

	Delete(ctx context.Context, id primitive.ObjectID) (*models.Message, error)
}

// NotificationFilter holds listing options for notifications.
type NotificationFilter struct {
	Read     *bool
	Type     models.NotificationType
	Priority models.NotificationPriority
	Page     int
	Limit    int
}

// NotificationRepository defines data access for notifications.
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error

	// List returns matching notifications (most recent first) and the total
	// match count. Limit 0 disables pagination.
	List(ctx context.Context, filter NotificationFilter) ([]models.Notification, int64, error)

	MarkRead(ctx context.Context, id primitive.ObjectID) (*models.Notification, error)

	// MarkAllRead flips every unread notification and reports how many.
	MarkAllRead(ctx context.Context) (int64, error)

	Delete(ctx context.Context, id primitive.ObjectID) (*models.Notification, error)

	CountUnread(ctx context.Context) (int64, error)
}

// UserRepository defines data access for the administrative account.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error

	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)

	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// FindAdmin returns the singleton account with role "admin".
	FindAdmin(ctx context.Context) (*models.User, error)

	Update(ctx context.Context, user *models.User) error
}
