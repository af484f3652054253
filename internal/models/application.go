package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ApplicationStatus string

const (
	ApplicationPending            ApplicationStatus = "pending"
	ApplicationReviewing          ApplicationStatus = "reviewing"
	ApplicationInterviewScheduled ApplicationStatus = "interview-scheduled"
	ApplicationAccepted           ApplicationStatus = "accepted"
	ApplicationRejected           ApplicationStatus = "rejected"
)

type ApplicationPriority string

const (
	ApplicationPriorityLow    ApplicationPriority = "low"
	ApplicationPriorityNormal ApplicationPriority = "normal"
	ApplicationPriorityHigh   ApplicationPriority = "high"
)

// Application is a candidate's submission against a Position. The position
// title and department are denormalized at creation time so listings survive
// later edits to the Position.
type Application struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	FirstName      string              `bson:"firstName" json:"firstName"`
	LastName       string              `bson:"lastName" json:"lastName"`
	Email          string              `bson:"email" json:"email"`
	Phone          string              `bson:"phone,omitempty" json:"phone"`
	University     string              `bson:"university" json:"university"`
	Major          string              `bson:"major" json:"major"`
	GraduationYear int                 `bson:"graduationYear" json:"graduationYear"`
	GPA            string              `bson:"gpa,omitempty" json:"gpa"`
	PortfolioURL   string              `bson:"portfolioUrl" json:"portfolioUrl"`
	GithubURL      string              `bson:"githubUrl,omitempty" json:"githubUrl"`
	LinkedinURL    string              `bson:"linkedinUrl,omitempty" json:"linkedinUrl"`
	CoverLetter    string              `bson:"coverLetter,omitempty" json:"coverLetter"`
	AdditionalInfo string              `bson:"additionalInfo,omitempty" json:"additionalInfo"`
	Skills         []string            `bson:"skills" json:"skills"`
	Resume         string              `bson:"resume,omitempty" json:"resume"`
	Position       primitive.ObjectID  `bson:"position" json:"position"`
	PositionTitle  string              `bson:"positionTitle" json:"positionTitle"`
	Department     string              `bson:"department,omitempty" json:"department"`
	Status         ApplicationStatus   `bson:"status" json:"status"`
	Priority       ApplicationPriority `bson:"priority" json:"priority"`
	AppliedDate    time.Time           `bson:"appliedDate" json:"appliedDate"`
	CreatedAt      time.Time           `bson:"createdAt" json:"created_at"`
	UpdatedAt      time.Time           `bson:"updatedAt" json:"updated_at"`
}

// FullName joins the candidate's first and last names for display.
func (a *Application) FullName() string {
	return a.FirstName + " " + a.LastName
}
