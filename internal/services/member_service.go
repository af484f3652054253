package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/hireline/applicant-tracking-api/internal/dto"
	"github.com/hireline/applicant-tracking-api/internal/logging"
	"github.com/hireline/applicant-tracking-api/internal/models"
	"github.com/hireline/applicant-tracking-api/internal/repository"
	"github.com/hireline/applicant-tracking-api/internal/tasks"
)

// MemberService manages staff members and emits team notifications for the
// changes worth announcing.
type MemberService struct {
	members       repository.MemberRepository
	notifications *NotificationService
	runner        tasks.Runner
	log           *logging.Logger
}

func NewMemberService(members repository.MemberRepository, notifications *NotificationService, runner tasks.Runner, log *logging.Logger) *MemberService {
	return &MemberService{members: members, notifications: notifications, runner: runner, log: log}
}

// Create adds a staff member. Name, email and role are required, and the
// role may never be "admin"; that name is reserved for the privileged
// account.
func (s *MemberService) Create(ctx context.Context, req *dto.CreateMemberRequest) (*models.Member, error) {
	var missing []string
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Role == "" {
		missing = append(missing, "role")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}
	if strings.EqualFold(req.Role, "admin") {
		return nil, ErrInvalidRole
	}

	now := time.Now()
	member := &models.Member{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Role:       req.Role,
		Bio:        req.Bio,
		Status:     req.Status,
		Department: req.Department,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if member.Status == "" {
		member.Status = "active"
	}
	if err := s.members.Create(ctx, member); err != nil {
		return nil, err
	}

	s.runner.Submit("member added notification", func() {
		s.notifications.RecordMemberCreated(context.Background(), member)
	})

	s.log.Info("member added", "id", member.ID.Hex(), "name", member.Name)
	return member, nil
}

func (s *MemberService) List(ctx context.Context) ([]models.Member, error) {
	return s.members.List(ctx)
}

func (s *MemberService) Get(ctx context.Context, id string) (*models.Member, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	member, err := s.members.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

// Update merges the provided fields onto a member. Role, department and
// name changes produce a team notification; contact or bio edits stay
// silent.
func (s *MemberService) Update(ctx context.Context, id string, req *dto.UpdateMemberRequest) (*models.Member, error) {
	member, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Role != nil && strings.EqualFold(*req.Role, "admin") {
		return nil, ErrInvalidRole
	}

	before := *member
	req.Apply(member)
	member.UpdatedAt = time.Now()
	if err := s.members.Update(ctx, member); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	if changes := MemberChanges(&before, member); len(changes) > 0 {
		s.runner.Submit("member update notification", func() {
			s.notifications.RecordMemberUpdated(context.Background(), member, changes)
		})
	}
	return member, nil
}

func (s *MemberService) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return ErrInvalidID
	}
	if _, err := s.members.Delete(ctx, oid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMemberNotFound
		}
		return err
	}
	s.log.Info("member deleted", "id", id)
	return nil
}
