package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hireline/applicant-tracking-api/internal/dto"
	"github.com/hireline/applicant-tracking-api/internal/logging"
	"github.com/hireline/applicant-tracking-api/internal/models"
)

type InterviewServiceTestSuite struct {
	suite.Suite
	interviews    *fakeInterviewRepo
	applications  *fakeApplicationRepo
	members       *fakeMemberRepo
	notifications *fakeNotificationRepo
	mailer        *fakeMailer
	service       *InterviewService
}

func (suite *InterviewServiceTestSuite) SetupTest() {
	suite.interviews = newFakeInterviewRepo()
	suite.applications = newFakeApplicationRepo()
	suite.members = newFakeMemberRepo()
	suite.notifications = newFakeNotificationRepo()
	suite.mailer = &fakeMailer{}

	log := logging.NewNop()
	notificationService := NewNotificationService(suite.notifications, log)
	suite.service = NewInterviewService(
		suite.interviews, suite.applications, suite.members,
		notificationService, suite.mailer, inlineRunner{}, log)
}

func (suite *InterviewServiceTestSuite) createApplicant(first, last, email string) *models.Application {
	app := &models.Application{
		FirstName:     first,
		LastName:      last,
		Email:         email,
		PositionTitle: "Backend Engineer",
		Status:        models.ApplicationPending,
	}
	suite.Require().NoError(suite.applications.Create(context.Background(), app))
	return app
}

func (suite *InterviewServiceTestSuite) createInterviewer(name, email string) *models.Member {
	member := &models.Member{Name: name, Email: email, Role: "Recruiter", Department: "HR"}
	suite.Require().NoError(suite.members.Create(context.Background(), member))
	return member
}

func (suite *InterviewServiceTestSuite) schedule(applicant *models.Application, interviewer *models.Member) *dto.InterviewView {
	view, err := suite.service.Schedule(context.Background(), &dto.ScheduleInterviewRequest{
		InterviewerID: interviewer.ID.Hex(),
		ApplicantID:   applicant.ID.Hex(),
		Date:          time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		Time:          "10:30 AM",
		Type:          "Technical",
		Location:      "Room 4",
	})
	suite.Require().NoError(err)
	return view
}

// TestSchedule_Success tests booking with notification emails to both sides.
func (suite *InterviewServiceTestSuite) TestSchedule_Success() {
	applicant := suite.createApplicant("Ada", "Lovelace", "ada@example.com")
	interviewer := suite.createInterviewer("Grace Hopper", "grace@example.com")

	view, err := suite.service.Schedule(context.Background(), &dto.ScheduleInterviewRequest{
		InterviewerID:    interviewer.ID.Hex(),
		ApplicantID:      applicant.ID.Hex(),
		Date:             time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		Time:             "10:30 AM",
		Type:             "Technical",
		MeetingLink:      "https://meet.example.com/abc",
		SendNotification: true,
	})
	suite.Require().NoError(err)

	assert.Equal(suite.T(), "Ada Lovelace", view.CandidateName)
	assert.Equal(suite.T(), "Grace Hopper", view.Interviewer)
	assert.Equal(suite.T(), "scheduled", view.Status)
	assert.Equal(suite.T(), "2026-09-10", view.Date)

	emails := suite.mailer.emails()
	suite.Require().Len(emails, 2)
	assert.Equal(suite.T(), "ada@example.com", emails[0].To)
	assert.Equal(suite.T(), "grace@example.com", emails[1].To)
	assert.Contains(suite.T(), emails[0].HTML, "https://meet.example.com/abc")
}

// TestSchedule_UnknownInterviewer tests booking against a missing member.
func (suite *InterviewServiceTestSuite) TestSchedule_UnknownInterviewer() {
	applicant := suite.createApplicant("Ada", "Lovelace", "ada@example.com")

	_, err := suite.service.Schedule(context.Background(), &dto.ScheduleInterviewRequest{
		InterviewerID: primitive.NewObjectID().Hex(),
		ApplicantID:   applicant.ID.Hex(),
		Date:          time.Now(),
		Time:          "10:30 AM",
	})
	assert.ErrorIs(suite.T(), err, ErrInterviewerNotFound)
}

// TestSchedule_UnknownApplicant tests booking against a missing application.
func (suite *InterviewServiceTestSuite) TestSchedule_UnknownApplicant() {
	interviewer := suite.createInterviewer("Grace Hopper", "grace@example.com")

	_, err := suite.service.Schedule(context.Background(), &dto.ScheduleInterviewRequest{
		InterviewerID: interviewer.ID.Hex(),
		ApplicantID:   primitive.NewObjectID().Hex(),
		Date:          time.Now(),
		Time:          "10:30 AM",
	})
	assert.ErrorIs(suite.T(), err, ErrApplicantNotFound)
}

// TestSchedule_InvalidStatus tests booking with an unknown status value.
func (suite *InterviewServiceTestSuite) TestSchedule_InvalidStatus() {
	applicant := suite.createApplicant("Ada", "Lovelace", "ada@example.com")
	interviewer := suite.createInterviewer("Grace Hopper", "grace@example.com")

	_, err := suite.service.Schedule(context.Background(), &dto.ScheduleInterviewRequest{
		InterviewerID: interviewer.ID.Hex(),
		ApplicantID:   applicant.ID.Hex(),
		Date:          time.Now(),
		Time:          "10:30 AM",
		Status:        "postponed",
	})
	assert.ErrorIs(suite.T(), err, ErrInvalidStatus)
}

// TestUpdate_CancelledMissingContact tests that a cancellation with no
// applicant email fails before anything is persisted or sent.
func (suite *InterviewServiceTestSuite) TestUpdate_CancelledMissingContact() {
	applicant := suite.createApplicant("Ada", "Lovelace", "")
	interviewer := suite.createInterviewer("Grace Hopper", "grace@example.com")
	view := suite.schedule(applicant, interviewer)

	_, err := suite.service.Update(context.Background(), view.ID, &dto.UpdateInterviewRequest{Status: "cancelled"})
	assert.ErrorIs(suite.T(), err, ErrMissingContactInfo)

	oid, _ := primitive.ObjectIDFromHex(view.ID)
	stored, err := suite.interviews.FindByID(context.Background(), oid)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.InterviewScheduled, stored.Status)
	assert.Empty(suite.T(), suite.mailer.emails())
	assert.Empty(suite.T(), suite.notifications.all())
}

// TestUpdate_Reschedule tests a date change: both parties get emails with
// the old and new slots, and a medium-priority notification is recorded.
func (suite *InterviewServiceTestSuite) TestUpdate_Reschedule() {
	applicant := suite.createApplicant("Ada", "Lovelace", "ada@example.com")
	interviewer := suite.createInterviewer("Grace Hopper", "grace@example.com")
	view := suite.schedule(applicant, interviewer)

	newDate := time.Date(2026, 9, 17, 0, 0, 0, 0, time.UTC)
	updated, err := suite.service.Update(context.Background(), view.ID, &dto.UpdateInterviewRequest{
		Date: &newDate,
		Time: "2:00 PM",
	})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "2026-09-17", updated.Date)

	emails := suite.mailer.emails()
	suite.Require().Len(emails, 2)
	assert.Contains(suite.T(), emails[0].HTML, "9/10/2026")
	assert.Contains(suite.T(), emails[0].HTML, "9/17/2026")
	assert.Contains(suite.T(), emails[0].HTML, "2:00 PM")

	notifications := suite.notifications.all()
	suite.Require().Len(notifications, 1)
	assert.Equal(suite.T(), "Interview SCHEDULED", notifications[0].Title)
	assert.Contains(suite.T(), notifications[0].Message, "Date changed to 9/17/2026 and time changed to 2:00 PM")
}

// TestUpdate_Completed tests completion: only the applicant is emailed.
func (suite *InterviewServiceTestSuite) TestUpdate_Completed() {
	applicant := suite.createApplicant("Ada", "Lovelace", "ada@example.com")
	interviewer := suite.createInterviewer("Grace Hopper", "")
	view := suite.schedule(applicant, interviewer)

	_, err := suite.service.Update(context.Background(), view.ID, &dto.UpdateInterviewRequest{Status: "completed"})
	suite.Require().NoError(err)

	emails := suite.mailer.emails()
	suite.Require().Len(emails, 1)
	assert.Equal(suite.T(), "ada@example.com", emails[0].To)
	assert.Equal(suite.T(), "Interview Completed", emails[0].Subject)

	notifications := suite.notifications.all()
	suite.Require().Len(notifications, 1)
	assert.Equal(suite.T(), "Interview COMPLETED", notifications[0].Title)
	assert.Equal(suite.T(), models.NotificationPriorityLow, notifications[0].Priority)
}

// TestUpdate_ReassignInterviewer tests reassignment by display name.
func (suite *InterviewServiceTestSuite) TestUpdate_ReassignInterviewer() {
	applicant := suite.createApplicant("Ada", "Lovelace", "ada@example.com")
	interviewer := suite.createInterviewer("Grace Hopper", "grace@example.com")
	replacement := suite.createInterviewer("Alan Turing", "alan@example.com")
	view := suite.schedule(applicant, interviewer)

	updated, err := suite.service.Update(context.Background(), view.ID, &dto.UpdateInterviewRequest{
		Interviewer: "Alan Turing",
	})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "Alan Turing", updated.Interviewer)

	oid, _ := primitive.ObjectIDFromHex(view.ID)
	stored, err := suite.interviews.FindByID(context.Background(), oid)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), replacement.ID, stored.InterviewerID)

	notifications := suite.notifications.all()
	suite.Require().Len(notifications, 1)
	assert.Contains(suite.T(), notifications[0].Message, "Interviewer reassigned")
}

// TestUpdate_UnknownInterviewerName tests reassignment to a name that does
// not exist.
func (suite *InterviewServiceTestSuite) TestUpdate_UnknownInterviewerName() {
	applicant := suite.createApplicant("Ada", "Lovelace", "ada@example.com")
	interviewer := suite.createInterviewer("Grace Hopper", "grace@example.com")
	view := suite.schedule(applicant, interviewer)

	_, err := suite.service.Update(context.Background(), view.ID, &dto.UpdateInterviewRequest{
		Interviewer: "Nobody Here",
	})
	assert.ErrorIs(suite.T(), err, ErrInterviewerNotFound)
}

// TestCancel_NotifyWithoutReason tests that notifying requires a reason,
// checked before the status changes.
func (suite *InterviewServiceTestSuite) TestCancel_NotifyWithoutReason() {
	applicant := suite.createApplicant("Ada", "Lovelace", "ada@example.com")
	interviewer := suite.createInterviewer("Grace Hopper", "grace@example.com")
	view := suite.schedule(applicant, interviewer)

	_, err := suite.service.Cancel(context.Background(), view.ID, &dto.CancelInterviewRequest{NotifyCandidate: true})
	assert.ErrorIs(suite.T(), err, ErrReasonRequired)

	oid, _ := primitive.ObjectIDFromHex(view.ID)
	stored, err := suite.interviews.FindByID(context.Background(), oid)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.InterviewScheduled, stored.Status)
	assert.Empty(suite.T(), suite.mailer.emails())
}

// TestCancel_NotifyMissingContact tests that notifying requires both emails.
func (suite *InterviewServiceTestSuite) TestCancel_NotifyMissingContact() {
	applicant := suite.createApplicant("Ada", "Lovelace", "ada@example.com")
	interviewer := suite.createInterviewer("Grace Hopper", "")
	view := suite.schedule(applicant, interviewer)

	_, err := suite.service.Cancel(context.Background(), view.ID, &dto.CancelInterviewRequest{
		Reason:          "Position filled",
		NotifyCandidate: true,
	})
	assert.ErrorIs(suite.T(), err, ErrMissingContactInfo)
	assert.Empty(suite.T(), suite.mailer.emails())
}

// TestCancel_WithReason tests cancellation with notification: both parties
// get an email carrying the reason.
func (suite *InterviewServiceTestSuite) TestCancel_WithReason() {
	applicant := suite.createApplicant("Ada", "Lovelace", "ada@example.com")
	interviewer := suite.createInterviewer("Grace Hopper", "grace@example.com")
	view := suite.schedule(applicant, interviewer)

	cancelled, err := suite.service.Cancel(context.Background(), view.ID, &dto.CancelInterviewRequest{
		Reason:          "Position filled",
		NotifyCandidate: true,
	})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "cancelled", cancelled.Status)

	emails := suite.mailer.emails()
	suite.Require().Len(emails, 2)
	assert.Contains(suite.T(), emails[0].HTML, "Position filled")
	assert.Contains(suite.T(), emails[1].HTML, "Position filled")
}

// TestCancel_Silent tests cancellation without notification.
func (suite *InterviewServiceTestSuite) TestCancel_Silent() {
	applicant := suite.createApplicant("Ada", "Lovelace", "ada@example.com")
	interviewer := suite.createInterviewer("Grace Hopper", "grace@example.com")
	view := suite.schedule(applicant, interviewer)

	cancelled, err := suite.service.Cancel(context.Background(), view.ID, &dto.CancelInterviewRequest{})
	suite.Require().NoError(err)
	assert.Equal(suite.T(), "cancelled", cancelled.Status)
	assert.Empty(suite.T(), suite.mailer.emails())
}

// TestPermanentDelete tests removal with the candidate name echoed back.
func (suite *InterviewServiceTestSuite) TestPermanentDelete() {
	applicant := suite.createApplicant("Ada", "Lovelace", "ada@example.com")
	interviewer := suite.createInterviewer("Grace Hopper", "grace@example.com")
	view := suite.schedule(applicant, interviewer)

	deleted, err := suite.service.PermanentDelete(context.Background(), view.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), view.ID, deleted.DeletedInterviewID)
	assert.Equal(suite.T(), "Ada Lovelace", deleted.CandidateName)

	oid, _ := primitive.ObjectIDFromHex(view.ID)
	_, err = suite.interviews.FindByID(context.Background(), oid)
	assert.Error(suite.T(), err)
}

// TestList_SkipsMissingParticipants tests that interviews whose applicant
// was deleted are dropped from the listing.
func (suite *InterviewServiceTestSuite) TestList_SkipsMissingParticipants() {
	applicant := suite.createApplicant("Ada", "Lovelace", "ada@example.com")
	interviewer := suite.createInterviewer("Grace Hopper", "grace@example.com")
	suite.schedule(applicant, interviewer)

	orphan := suite.createApplicant("Brian", "Kernighan", "brian@example.com")
	suite.schedule(orphan, interviewer)
	_, err := suite.applications.Delete(context.Background(), orphan.ID)
	suite.Require().NoError(err)

	views, err := suite.service.List(context.Background())
	suite.Require().NoError(err)
	suite.Require().Len(views, 1)
	assert.Equal(suite.T(), "Ada Lovelace", views[0].CandidateName)
}

func TestInterviewServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InterviewServiceTestSuite))
}
