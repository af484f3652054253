package dto

import (
	"time"

	"github.com/hireline/applicant-tracking-api/internal/models"
)

type ScheduleInterviewRequest struct {
	InterviewerID    string    `json:"interviewerId" binding:"required"`
	ApplicantID      string    `json:"applicantId" binding:"required"`
	Date             time.Time `json:"date" binding:"required"`
	Time             string    `json:"time" binding:"required"`
	Type             string    `json:"type"`
	Location         string    `json:"location"`
	MeetingLink      string    `json:"meetingLink"`
	Duration         string    `json:"duration"`
	Notes            string    `json:"notes"`
	Status           string    `json:"status"`
	SendNotification bool      `json:"sendNotification"`
}

// UpdateInterviewRequest reassigns people by display name, matching the way
// the scheduling UI submits edits.
type UpdateInterviewRequest struct {
	CandidateName string     `json:"candidateName"`
	Interviewer   string     `json:"interviewer"`
	Date          *time.Time `json:"date"`
	Time          string     `json:"time"`
	Type          string     `json:"type"`
	Status        string     `json:"status"`
	Location      string     `json:"location"`
	MeetingLink   string     `json:"meetingLink"`
	Notes         string     `json:"notes"`
}

type CancelInterviewRequest struct {
	Reason          string `json:"reason"`
	NotifyCandidate bool   `json:"notifyCandidate"`
}

// InterviewView is an interview joined with the names of its participants.
type InterviewView struct {
	ID            string `json:"id"`
	CandidateName string `json:"candidateName"`
	Position      string `json:"position"`
	Interviewer   string `json:"interviewer"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Type          string `json:"type"`
	Status        string `json:"status"`
	MeetingLink   string `json:"meetingLink"`
	Location      string `json:"location"`
	Notes         string `json:"notes"`
}

func NewInterviewView(interview *models.Interview, applicant *models.Application, interviewer *models.Member) InterviewView {
	return InterviewView{
		ID:            interview.ID.Hex(),
		CandidateName: applicant.FullName(),
		Position:      applicant.PositionTitle,
		Interviewer:   interviewer.Name,
		Date:          interview.Date.Format("2006-01-02"),
		Time:          interview.Time,
		Type:          interview.Type,
		Status:        string(interview.Status),
		MeetingLink:   interview.MeetingLink,
		Location:      interview.Location,
		Notes:         interview.Notes,
	}
}

// DeletedInterview acknowledges a permanent delete.
type DeletedInterview struct {
	DeletedInterviewID string `json:"deletedInterviewId"`
	CandidateName      string `json:"candidateName"`
}
