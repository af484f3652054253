package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hireline/applicant-tracking-api/internal/logging"
	"github.com/hireline/applicant-tracking-api/internal/models"
	"github.com/hireline/applicant-tracking-api/internal/repository"
)

const notificationAvatar = "/placeholder.svg?height=40&width=40"

// RelativeTime renders how long ago a moment occurred, for the static time
// label stored on notifications.
func RelativeTime(at, now time.Time) string {
	minutes := int(now.Sub(at).Minutes())
	if minutes < 1 {
		return "Just now"
	}
	if minutes < 60 {
		return fmt.Sprintf("%d minute%s ago", minutes, plural(minutes))
	}
	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%d hour%s ago", hours, plural(hours))
	}
	days := hours / 24
	if days < 7 {
		return fmt.Sprintf("%d day%s ago", days, plural(days))
	}
	return at.Format("1/2/2006")
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}

var roleDescriptions = map[string]string{
	"recruiter":   "access to applications and interview scheduling",
	"manager":     "team management and reporting capabilities",
	"hr":          "HR operations and employee management",
	"coordinator": "project coordination and task management",
	"analyst":     "data analysis and reporting tools",
	"specialist":  "specialized tools and resources",
}

func roleDescription(role string) string {
	if desc, ok := roleDescriptions[strings.ToLower(role)]; ok {
		return desc
	}
	return "appropriate system access and permissions"
}

var rolePermissions = map[string]string{
	"recruiter":        "access to applications and interview scheduling",
	"senior recruiter": "additional permissions for position management",
	"hr manager":       "full HR operations and team management capabilities",
	"team lead":        "team leadership and project oversight permissions",
	"manager":          "departmental management and reporting access",
	"coordinator":      "project coordination and administrative permissions",
	"specialist":       "specialized tools and domain-specific access",
	"analyst":          "data analysis and reporting capabilities",
	"director":         "strategic planning and high-level management access",
	"supervisor":       "supervisory permissions and team oversight",
}

func rolePermissionSummary(role string) string {
	lower := strings.ToLower(role)
	if exact, ok := rolePermissions[lower]; ok {
		return exact
	}
	switch {
	case strings.Contains(lower, "senior"):
		return "elevated permissions and advanced system access"
	case strings.Contains(lower, "manager"):
		return "management permissions and team oversight"
	case strings.Contains(lower, "lead"):
		return "leadership permissions and project management"
	case strings.Contains(lower, "director"):
		return "executive-level permissions and strategic access"
	}
	return "appropriate system permissions and access rights"
}

// MemberChange describes one significant difference found while updating a
// member record.
type MemberChange struct {
	Field    string
	OldValue string
	NewValue string
}

// MemberChanges extracts the differences that warrant a notification. Edits
// to contact details or the bio are deliberately silent.
func MemberChanges(before, after *models.Member) []MemberChange {
	var changes []MemberChange
	if before.Role != after.Role {
		changes = append(changes, MemberChange{Field: "role", OldValue: before.Role, NewValue: after.Role})
	}
	if before.Department != after.Department {
		changes = append(changes, MemberChange{Field: "department", OldValue: before.Department, NewValue: after.Department})
	}
	if before.Name != after.Name {
		changes = append(changes, MemberChange{Field: "name", OldValue: before.Name, NewValue: after.Name})
	}
	return changes
}

// NotificationService records notifications derived from entity mutations
// and serves the notification inbox.
type NotificationService struct {
	repo repository.NotificationRepository
	log  *logging.Logger
	now  func() time.Time
}

func NewNotificationService(repo repository.NotificationRepository, log *logging.Logger) *NotificationService {
	return &NotificationService{repo: repo, log: log, now: time.Now}
}

// SetClock overrides the time source, for tests.
func (s *NotificationService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *NotificationService) record(ctx context.Context, n *models.Notification) {
	now := s.now()
	n.Time = RelativeTime(now, now)
	n.Date = now
	n.Avatar = notificationAvatar
	n.CreatedAt = now
	n.UpdatedAt = now
	if err := s.repo.Create(ctx, n); err != nil {
		s.log.Error("failed to record notification", "title", n.Title, "error", err)
	}
}

// RecordApplicationCreated notes a new application against a position.
func (s *NotificationService) RecordApplicationCreated(ctx context.Context, app *models.Application, pos *models.Position) {
	s.record(ctx, &models.Notification{
		Type:  models.NotificationApplication,
		Title: "New Application Received",
		Message: fmt.Sprintf("%s applied for %s position. Application includes portfolio: %s",
			app.FullName(), pos.Title, app.PortfolioURL),
		ActionURL: fmt.Sprintf("/applications/%s", app.ID.Hex()),
		Priority:  models.NotificationPriorityHigh,
	})
}

// RecordMemberCreated notes a new staff member joining.
func (s *NotificationService) RecordMemberCreated(ctx context.Context, member *models.Member) {
	team := member.Department
	if team == "" {
		team = "team"
	}
	s.record(ctx, &models.Notification{
		Type:  models.NotificationTeam,
		Title: "Team Member Added",
		Message: fmt.Sprintf("%s has been added to the %s team with %s role. They will have %s.",
			member.Name, team, member.Role, roleDescription(member.Role)),
		ActionURL: "/settings",
		Priority:  models.NotificationPriorityLow,
	})
}

// RecordMemberUpdated notes a significant member change. The most important
// change wins: role over department over name. Called only when changes is
// non-empty.
func (s *NotificationService) RecordMemberUpdated(ctx context.Context, member *models.Member, changes []MemberChange) {
	byField := make(map[string]MemberChange, len(changes))
	for _, c := range changes {
		byField[c.Field] = c
	}

	var title, message string
	priority := models.NotificationPriorityLow
	switch {
	case byField["role"].Field != "":
		c := byField["role"]
		title = "Role Permission Updated"
		message = fmt.Sprintf("%s's role has been updated to %s with %s.",
			member.Name, c.NewValue, rolePermissionSummary(c.NewValue))
		priority = models.NotificationPriorityMedium
	case byField["department"].Field != "":
		c := byField["department"]
		title = "Team Assignment Updated"
		message = fmt.Sprintf("%s has been transferred from %s to %s department.",
			member.Name, c.OldValue, c.NewValue)
	case byField["name"].Field != "":
		c := byField["name"]
		title = "Member Profile Updated"
		message = fmt.Sprintf("Team member profile updated: %s is now listed as %s.",
			c.OldValue, c.NewValue)
	default:
		title = "Member Details Updated"
		message = fmt.Sprintf("%s's profile information has been updated.", member.Name)
	}

	s.record(ctx, &models.Notification{
		Type:      models.NotificationTeam,
		Title:     title,
		Message:   message,
		ActionURL: "/settings",
		Priority:  priority,
	})
}

// RecordInterviewUpdated notes what changed on an interview. The first two
// change descriptions are included in the message; priority tracks how
// disruptive the update is for the candidate.
func (s *NotificationService) RecordInterviewUpdated(ctx context.Context, interview *models.Interview, applicant *models.Application, changes []string) {
	priority := models.NotificationPriorityLow
	switch {
	case interview.Status == models.InterviewCancelled:
		priority = models.NotificationPriorityHigh
	case interview.Status == models.InterviewScheduled || hasPrefixChange(changes, "date changed", "time changed"):
		priority = models.NotificationPriorityMedium
	}

	changesText := "details updated"
	if len(changes) > 0 {
		shown := changes
		if len(shown) > 2 {
			shown = shown[:2]
		}
		changesText = strings.Join(shown, " and ")
	}
	changesText = strings.ToUpper(changesText[:1]) + changesText[1:]

	statusLabel := strings.ToUpper(string(interview.Status))
	s.record(ctx, &models.Notification{
		Type:  models.NotificationInterview,
		Title: fmt.Sprintf("Interview %s", statusLabel),
		Message: fmt.Sprintf("Interview for %s (%s position) has been %s. %s.",
			applicant.FullName(), applicant.PositionTitle, statusLabel, changesText),
		ActionURL: fmt.Sprintf("/interviews/%s", interview.ID.Hex()),
		Priority:  priority,
	})
}

func hasPrefixChange(changes []string, prefixes ...string) bool {
	for _, c := range changes {
		for _, p := range prefixes {
			if strings.HasPrefix(c, p) {
				return true
			}
		}
	}
	return false
}

// NotificationPage is a paginated inbox listing.
type NotificationPage struct {
	Notifications []models.Notification
	Page          int
	Pages         int
	Total         int64
	Limit         int
	UnreadCount   int64
}

// List returns a page of notifications matching the filter.
func (s *NotificationService) List(ctx context.Context, filter repository.NotificationFilter) (*NotificationPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	unread, err := s.repo.CountUnread(ctx)
	if err != nil {
		return nil, err
	}

	pages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &NotificationPage{
		Notifications: items,
		Page:          filter.Page,
		Pages:         pages,
		Total:         total,
		Limit:         filter.Limit,
		UnreadCount:   unread,
	}, nil
}

// MarkRead flips a single notification to read.
func (s *NotificationService) MarkRead(ctx context.Context, id string) (*models.Notification, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	n, err := s.repo.MarkRead(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return n, nil
}

// MarkAllRead flips every unread notification and reports how many changed.
func (s *NotificationService) MarkAllRead(ctx context.Context) (int64, error) {
	return s.repo.MarkAllRead(ctx)
}

// Delete removes a notification permanently.
func (s *NotificationService) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return ErrInvalidID
	}
	if _, err := s.repo.Delete(ctx, oid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	return nil
}

// UnreadCount reports how many notifications are unread.
func (s *NotificationService) UnreadCount(ctx context.Context) (int64, error) {
	return s.repo.CountUnread(ctx)
}

// GroupCount pairs totals with how many of them are unread.
type GroupCount struct {
	Total  int64 `json:"total"`
	Unread int64 `json:"unread"`
}

// NotificationStats summarizes the inbox by type and priority.
type NotificationStats struct {
	Total      int64                 `json:"total"`
	Unread     int64                 `json:"unread"`
	Read       int64                 `json:"read"`
	ByType     map[string]GroupCount `json:"byType"`
	ByPriority map[string]GroupCount `json:"byPriority"`
}

// Stats walks the full inbox and tallies totals per type and priority.
func (s *NotificationService) Stats(ctx context.Context) (*NotificationStats, error) {
	items, total, err := s.repo.List(ctx, repository.NotificationFilter{})
	if err != nil {
		return nil, err
	}

	stats := &NotificationStats{
		Total:      total,
		ByType:     make(map[string]GroupCount),
		ByPriority: make(map[string]GroupCount),
	}
	for _, n := range items {
		if !n.Read {
			stats.Unread++
		}
		tc := stats.ByType[string(n.Type)]
		tc.Total++
		if !n.Read {
			tc.Unread++
		}
		stats.ByType[string(n.Type)] = tc

		if n.Priority != "" {
			pc := stats.ByPriority[string(n.Priority)]
			pc.Total++
			if !n.Read {
				pc.Unread++
			}
			stats.ByPriority[string(n.Priority)] = pc
		}
	}
	stats.Read = stats.Total - stats.Unread
	return stats, nil
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(id)
}
