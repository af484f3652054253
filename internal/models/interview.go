package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InterviewStatus string

const (
	InterviewScheduled InterviewStatus = "scheduled"
	InterviewCompleted InterviewStatus = "completed"
	InterviewCancelled InterviewStatus = "cancelled"
	InterviewNoShow    InterviewStatus = "no_show"
)

// Interview references one Application (the candidate) and one Member (the
// interviewer). Date and time-of-day are deliberately separate fields: the
// date is a calendar day and the time is whatever free text the scheduling
// form collected ("10:30 AM", "after lunch").
type Interview struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Date          time.Time          `bson:"date" json:"date"`
	Time          string             `bson:"time" json:"time"`
	Type          string             `bson:"type" json:"type"`
	Status        InterviewStatus    `bson:"status" json:"status"`
	Location      string             `bson:"location,omitempty" json:"location"`
	MeetingLink   string             `bson:"meetingLink,omitempty" json:"meetingLink"`
	Duration      string             `bson:"duration,omitempty" json:"duration"`
	Notes         string             `bson:"notes,omitempty" json:"notes"`
	ApplicantID   primitive.ObjectID `bson:"applicantId" json:"applicantId"`
	InterviewerID primitive.ObjectID `bson:"interviewerId" json:"interviewerId"`
	CreatedAt     time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updated_at"`
}
