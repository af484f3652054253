package services

import (
	"fmt"
	"time"

	"github.com/hireline/applicant-tracking-api/internal/models"
)

// ValidApplicationStatus reports whether s is a known application status.
func ValidApplicationStatus(s models.ApplicationStatus) bool {
	switch s {
	case models.ApplicationPending, models.ApplicationReviewing,
		models.ApplicationInterviewScheduled, models.ApplicationAccepted,
		models.ApplicationRejected:
		return true
	}
	return false
}

// ValidInterviewStatus reports whether s is a known interview status.
func ValidInterviewStatus(s models.InterviewStatus) bool {
	switch s {
	case models.InterviewScheduled, models.InterviewCompleted,
		models.InterviewCancelled, models.InterviewNoShow:
		return true
	}
	return false
}

// ValidMessageStatus reports whether s is a known message status.
func ValidMessageStatus(s models.MessageStatus) bool {
	switch s {
	case models.MessageNew, models.MessageRead, models.MessageReplied,
		models.MessageArchived:
		return true
	}
	return false
}

// CanTransition decides whether an application may move between two statuses.
// Every pair of valid statuses is currently allowed, including re-opening a
// decided application. Tightening the workflow means changing only this
// function.
func CanTransition(from, to models.ApplicationStatus) bool {
	return ValidApplicationStatus(to)
}

// InterviewChanges compares an interview before and after an update and
// returns human-readable descriptions of what changed, in a fixed order.
// The date comparison is day-level: a pure time-of-day edit reports only
// the time change.
func InterviewChanges(before, after *models.Interview) []string {
	var changes []string

	if !sameDay(before.Date, after.Date) {
		changes = append(changes, fmt.Sprintf("date changed to %s", after.Date.Format("1/2/2006")))
	}
	if before.Time != after.Time {
		changes = append(changes, fmt.Sprintf("time changed to %s", after.Time))
	}
	if before.Status != after.Status {
		changes = append(changes, fmt.Sprintf("status updated to %s", after.Status))
	}
	if before.InterviewerID != after.InterviewerID {
		changes = append(changes, "interviewer reassigned")
	}
	if before.Type != after.Type {
		changes = append(changes, fmt.Sprintf("type changed to %s", after.Type))
	}
	if before.Location != after.Location {
		changes = append(changes, "location updated")
	}
	if before.MeetingLink != after.MeetingLink {
		changes = append(changes, "meeting link updated")
	}
	return changes
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
