package services

import (
	"context"
	"errors"
	"time"

	"github.com/hireline/applicant-tracking-api/internal/dto"
	"github.com/hireline/applicant-tracking-api/internal/logging"
	"github.com/hireline/applicant-tracking-api/internal/models"
	"github.com/hireline/applicant-tracking-api/internal/repository"
)

// PositionService manages job positions.
type PositionService struct {
	positions repository.PositionRepository
	log       *logging.Logger
}

func NewPositionService(positions repository.PositionRepository, log *logging.Logger) *PositionService {
	return &PositionService{positions: positions, log: log}
}

// Create opens a new position. New positions start active with zero
// application counters.
func (s *PositionService) Create(ctx context.Context, req *dto.CreatePositionRequest) (*models.Position, error) {
	now := time.Now()
	position := &models.Position{
		Title:               req.Title,
		Department:          req.Department,
		Location:            req.Location,
		Type:                req.Type,
		Status:              models.PositionActive,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Responsibilities:    req.Responsibilities,
		Qualifications:      req.Qualifications,
		Optional:            req.Optional,
		Salary:              req.Salary,
		Duration:            req.Duration,
		StartDate:           req.StartDate,
		EndDate:             req.EndDate,
		ApplicationDeadline: req.ApplicationDeadline,
		MaxApplications:     req.MaxApplications,
		Tags:                req.Tags,
		Priority:            models.PositionPriority(req.Priority),
		ExperienceLevel:     req.ExperienceLevel,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if position.Priority == "" {
		position.Priority = models.PositionPriorityMedium
	}
	if err := s.positions.Create(ctx, position); err != nil {
		return nil, err
	}
	s.log.Info("position created", "id", position.ID.Hex(), "title", position.Title)
	return position, nil
}

// List returns every position for admins and only active ones otherwise.
func (s *PositionService) List(ctx context.Context, role string) ([]models.Position, error) {
	return s.positions.List(ctx, role != "admin")
}

func (s *PositionService) Get(ctx context.Context, id string) (*models.Position, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	position, err := s.positions.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPositionNotFound
		}
		return nil, err
	}
	return position, nil
}

// Update merges the provided fields onto the stored position.
func (s *PositionService) Update(ctx context.Context, id string, req *dto.UpdatePositionRequest) (*models.Position, error) {
	position, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(position)
	position.UpdatedAt = time.Now()
	if err := s.positions.Update(ctx, position); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPositionNotFound
		}
		return nil, err
	}
	return position, nil
}

func (s *PositionService) Delete(ctx context.Context, id string) (*models.Position, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	position, err := s.positions.Delete(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPositionNotFound
		}
		return nil, err
	}
	s.log.Info("position deleted", "id", id, "title", position.Title)
	return position, nil
}
