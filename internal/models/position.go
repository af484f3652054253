package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PositionStatus string

const (
	PositionActive PositionStatus = "active"
	PositionClosed PositionStatus = "closed"
)

type PositionPriority string

const (
	PositionPriorityLow    PositionPriority = "low"
	PositionPriorityMedium PositionPriority = "medium"
	PositionPriorityHigh   PositionPriority = "high"
)

// EmploymentTypes are the accepted values for Position.Type.
var EmploymentTypes = []string{"Full-time", "Part-time", "Remote", "Hybrid"}

type Position struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title               string             `bson:"title" json:"title"`
	Department          string             `bson:"department,omitempty" json:"department"`
	Location            string             `bson:"location,omitempty" json:"location"`
	Type                string             `bson:"type,omitempty" json:"type"`
	Status              PositionStatus     `bson:"status" json:"status"`
	Description         string             `bson:"description,omitempty" json:"description"`
	Requirements        []string           `bson:"requirements,omitempty" json:"requirements"`
	Responsibilities    []string           `bson:"responsibilities,omitempty" json:"responsibilities"`
	Qualifications      []string           `bson:"qualifications,omitempty" json:"qualifications"`
	Optional            []string           `bson:"optional,omitempty" json:"optional"`
	Salary              string             `bson:"salary,omitempty" json:"salary"`
	Duration            string             `bson:"duration,omitempty" json:"duration"`
	StartDate           *time.Time         `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate             *time.Time         `bson:"endDate,omitempty" json:"endDate,omitempty"`
	ApplicationDeadline *time.Time         `bson:"applicationDeadline,omitempty" json:"applicationDeadline,omitempty"`
	MaxApplications     int                `bson:"maxApplications,omitempty" json:"maxApplications"`
	CurrentApplications int                `bson:"currentApplications" json:"currentApplications"`
	AcceptedCandidates  int                `bson:"acceptedCandidates" json:"acceptedCandidates"`
	Tags                []string           `bson:"tags,omitempty" json:"tags"`
	Priority            PositionPriority   `bson:"priority" json:"priority"`
	ExperienceLevel     string             `bson:"experienceLevel,omitempty" json:"experienceLevel"`
	CreatedAt           time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updated_at"`
}
