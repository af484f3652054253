// Package dto defines the request and response shapes bound by handlers.
// Update requests use pointer fields so that absent fields leave the stored
// document untouched.
package dto

import (
	"time"

	"github.com/hireline/applicant-tracking-api/internal/models"
)

type CreatePositionRequest struct {
	Title               string     `json:"title" binding:"required"`
	Department          string     `json:"department"`
	Location            string     `json:"location"`
	Type                string     `json:"type"`
	Description         string     `json:"description"`
	Requirements        []string   `json:"requirements"`
	Responsibilities    []string   `json:"responsibilities"`
	Qualifications      []string   `json:"qualifications"`
	Optional            []string   `json:"optional"`
	Salary              string     `json:"salary"`
	Duration            string     `json:"duration"`
	StartDate           *time.Time `json:"startDate"`
	EndDate             *time.Time `json:"endDate"`
	ApplicationDeadline *time.Time `json:"applicationDeadline"`
	MaxApplications     int        `json:"maxApplications"`
	Tags                []string   `json:"tags"`
	Priority            string     `json:"priority"`
	ExperienceLevel     string     `json:"experienceLevel"`
}

type UpdatePositionRequest struct {
	Title               *string    `json:"title"`
	Department          *string    `json:"department"`
	Location            *string    `json:"location"`
	Type                *string    `json:"type"`
	Status              *string    `json:"status"`
	Description         *string    `json:"description"`
	Requirements        []string   `json:"requirements"`
	Responsibilities    []string   `json:"responsibilities"`
	Qualifications      []string   `json:"qualifications"`
	Optional            []string   `json:"optional"`
	Salary              *string    `json:"salary"`
	Duration            *string    `json:"duration"`
	StartDate           *time.Time `json:"startDate"`
	EndDate             *time.Time `json:"endDate"`
	ApplicationDeadline *time.Time `json:"applicationDeadline"`
	MaxApplications     *int       `json:"maxApplications"`
	Tags                []string   `json:"tags"`
	Priority            *string    `json:"priority"`
	ExperienceLevel     *string    `json:"experienceLevel"`
}

// Apply merges the provided fields onto an existing position.
func (r *UpdatePositionRequest) Apply(p *models.Position) {
	if r.Title != nil {
		p.Title = *r.Title
	}
	if r.Department != nil {
		p.Department = *r.Department
	}
	if r.Location != nil {
		p.Location = *r.Location
	}
	if r.Type != nil {
		p.Type = *r.Type
	}
	if r.Status != nil {
		p.Status = models.PositionStatus(*r.Status)
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.Requirements != nil {
		p.Requirements = r.Requirements
	}
	if r.Responsibilities != nil {
		p.Responsibilities = r.Responsibilities
	}
	if r.Qualifications != nil {
		p.Qualifications = r.Qualifications
	}
	if r.Optional != nil {
		p.Optional = r.Optional
	}
	if r.Salary != nil {
		p.Salary = *r.Salary
	}
	if r.Duration != nil {
		p.Duration = *r.Duration
	}
	if r.StartDate != nil {
		p.StartDate = r.StartDate
	}
	if r.EndDate != nil {
		p.EndDate = r.EndDate
	}
	if r.ApplicationDeadline != nil {
		p.ApplicationDeadline = r.ApplicationDeadline
	}
	if r.MaxApplications != nil {
		p.MaxApplications = *r.MaxApplications
	}
	if r.Tags != nil {
		p.Tags = r.Tags
	}
	if r.Priority != nil {
		p.Priority = models.PositionPriority(*r.Priority)
	}
	if r.ExperienceLevel != nil {
		p.ExperienceLevel = *r.ExperienceLevel
	}
}
