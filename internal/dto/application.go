package dto

import (
	"time"

	"github.com/hireline/applicant-tracking-api/internal/models"
)

// SubmitApplicationForm carries the public multipart application form. All
// fields arrive as strings; the service trims, lowercases the email and
// parses the graduation year.
type SubmitApplicationForm struct {
	FirstName      string `form:"firstName"`
	LastName       string `form:"lastName"`
	Email          string `form:"email"`
	Phone          string `form:"phone"`
	University     string `form:"university"`
	Major          string `form:"major"`
	GraduationYear string `form:"graduationYear"`
	GPA            string `form:"gpa"`
	PortfolioURL   string `form:"portfolioUrl"`
	GithubURL      string `form:"githubUrl"`
	LinkedinURL    string `form:"linkedinUrl"`
	CoverLetter    string `form:"coverLetter"`
	AdditionalInfo string `form:"additionalInfo"`
	Skills         string `form:"skills"`
}

type UpdateApplicationStatusRequest struct {
	Status           string `json:"status" binding:"required"`
	SendNotification bool   `json:"sendNotification"`
	Notes            string `json:"notes"`
}

type SendApplicationMessageRequest struct {
	Subject       string `json:"subject"`
	Message       string `json:"message"`
	Priority      string `json:"priority"`
	CopyToTeam    bool   `json:"copyToTeam"`
	ScheduleEmail bool   `json:"scheduleEmail"`
	ScheduledDate string `json:"scheduledDate"`
	ScheduledTime string `json:"scheduledTime"`
	Template      string `json:"template"`
}

// SubmittedApplication is the trimmed acknowledgment returned to the public
// applicant.
type SubmittedApplication struct {
	ID          string                   `json:"id"`
	FullName    string                   `json:"fullName"`
	Email       string                   `json:"email"`
	Position    string                   `json:"position"`
	Status      models.ApplicationStatus `json:"status"`
	SubmittedAt time.Time                `json:"submittedAt"`
}

func NewSubmittedApplication(app *models.Application) SubmittedApplication {
	return SubmittedApplication{
		ID:          app.ID.Hex(),
		FullName:    app.FullName(),
		Email:       app.Email,
		Position:    app.PositionTitle,
		Status:      app.Status,
		SubmittedAt: app.CreatedAt,
	}
}

// SentMessage acknowledges a direct message to a candidate.
type SentMessage struct {
	ApplicationID  string `json:"applicationId"`
	CandidateEmail string `json:"candidateEmail"`
	Subject        string `json:"subject"`
	Priority       string `json:"priority"`
	Template       string `json:"template"`
	SentAt         string `json:"sentAt"`
}
