package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/hireline/applicant-tracking-api/internal/dto"
	"github.com/hireline/applicant-tracking-api/internal/logging"
	"github.com/hireline/applicant-tracking-api/internal/mailer"
	"github.com/hireline/applicant-tracking-api/internal/models"
	"github.com/hireline/applicant-tracking-api/internal/repository"
	"github.com/hireline/applicant-tracking-api/internal/tasks"
)

const emailDateFormat = "1/2/2006"

// InterviewService schedules interviews and keeps both participants
// informed when they change.
type InterviewService struct {
	interviews    repository.InterviewRepository
	applications  repository.ApplicationRepository
	members       repository.MemberRepository
	notifications *NotificationService
	mail          mailer.Mailer
	runner        tasks.Runner
	log           *logging.Logger
}

func NewInterviewService(
	interviews repository.InterviewRepository,
	applications repository.ApplicationRepository,
	members repository.MemberRepository,
	notifications *NotificationService,
	mail mailer.Mailer,
	runner tasks.Runner,
	log *logging.Logger,
) *InterviewService {
	return &InterviewService{
		interviews:    interviews,
		applications:  applications,
		members:       members,
		notifications: notifications,
		mail:          mail,
		runner:        runner,
		log:           log,
	}
}

// Schedule books a new interview between an applicant and an interviewer.
// Both participants must exist. When requested, both are emailed on the
// background runner.
func (s *InterviewService) Schedule(ctx context.Context, req *dto.ScheduleInterviewRequest) (*dto.InterviewView, error) {
	interviewerID, err := parseObjectID(req.InterviewerID)
	if err != nil {
		return nil, ErrInvalidID
	}
	applicantID, err := parseObjectID(req.ApplicantID)
	if err != nil {
		return nil, ErrInvalidID
	}

	interviewer, err := s.members.FindByID(ctx, interviewerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInterviewerNotFound
		}
		return nil, err
	}
	applicant, err := s.applications.FindByID(ctx, applicantID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrApplicantNotFound
		}
		return nil, err
	}

	status := models.InterviewStatus(req.Status)
	if status == "" {
		status = models.InterviewScheduled
	}
	if !ValidInterviewStatus(status) {
		return nil, ErrInvalidStatus
	}

	now := time.Now()
	interview := &models.Interview{
		Date:          req.Date,
		Time:          req.Time,
		Type:          req.Type,
		Status:        status,
		Location:      req.Location,
		MeetingLink:   req.MeetingLink,
		Duration:      req.Duration,
		Notes:         req.Notes,
		ApplicantID:   applicantID,
		InterviewerID: interviewerID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.interviews.Create(ctx, interview); err != nil {
		return nil, err
	}

	if req.SendNotification {
		place := req.Location
		if place == "" {
			place = req.MeetingLink
		}
		date := req.Date.Format(emailDateFormat)
		s.runner.Submit("interview scheduled emails", func() {
			subject, html := mailer.InterviewScheduledApplicant(
				applicant.FirstName, date, req.Time, req.Type, interviewer.Name, place, req.Notes)
			if err := s.mail.Send(applicant.Email, subject, html); err != nil {
				s.log.Error("failed to email applicant", "email", applicant.Email, "error", err)
			}
			subject, html = mailer.InterviewAssignedInterviewer(
				interviewer.Name, applicant.FullName(), date, req.Time, req.Type, place, req.Notes)
			if err := s.mail.Send(interviewer.Email, subject, html); err != nil {
				s.log.Error("failed to email interviewer", "email", interviewer.Email, "error", err)
			}
		})
	}

	s.log.Info("interview scheduled", "id", interview.ID.Hex(), "applicant", applicant.FullName())
	view := dto.NewInterviewView(interview, applicant, interviewer)
	return &view, nil
}

// List returns every interview joined with participant names, most recently
// created first. Interviews whose participants were deleted are skipped.
func (s *InterviewService) List(ctx context.Context) ([]dto.InterviewView, error) {
	interviews, err := s.interviews.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]dto.InterviewView, 0, len(interviews))
	for i := range interviews {
		applicant, interviewer, err := s.resolve(ctx, &interviews[i])
		if err != nil {
			s.log.Warn("skipping interview with missing participant", "id", interviews[i].ID.Hex())
			continue
		}
		views = append(views, dto.NewInterviewView(&interviews[i], applicant, interviewer))
	}
	return views, nil
}

func (s *InterviewService) resolve(ctx context.Context, interview *models.Interview) (*models.Application, *models.Member, error) {
	applicant, err := s.applications.FindByID(ctx, interview.ApplicantID)
	if err != nil {
		return nil, nil, err
	}
	interviewer, err := s.members.FindByID(ctx, interview.InterviewerID)
	if err != nil {
		return nil, nil, err
	}
	return applicant, interviewer, nil
}

func (s *InterviewService) find(ctx context.Context, id string) (*models.Interview, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	interview, err := s.interviews.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, err
	}
	return interview, nil
}

// Update edits an interview. Participants can be reassigned by display name.
// Contact details are verified before anything is stored: a cancellation or
// reschedule needs both emails, a completion needs the applicant's. Status
// emails and a change notification go out on the background runner.
func (s *InterviewService) Update(ctx context.Context, id string, req *dto.UpdateInterviewRequest) (*dto.InterviewView, error) {
	existing, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	applicant, interviewer, err := s.resolve(ctx, existing)
	if err != nil {
		return nil, err
	}

	interviewerID := existing.InterviewerID
	newInterviewer := interviewer
	if req.Interviewer != "" && req.Interviewer != interviewer.Name {
		found, err := s.members.FindByName(ctx, req.Interviewer)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrInterviewerNotFound
			}
			return nil, err
		}
		interviewerID = found.ID
		newInterviewer = found
	}

	applicantID := existing.ApplicantID
	newApplicant := applicant
	if req.CandidateName != "" && req.CandidateName != applicant.FullName() {
		first, last, ok := splitName(req.CandidateName)
		if !ok {
			return nil, ErrApplicantNotFound
		}
		found, err := s.applications.FindByName(ctx, first, last)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrApplicantNotFound
			}
			return nil, err
		}
		applicantID = found.ID
		newApplicant = found
	}

	if req.Status != "" && !ValidInterviewStatus(models.InterviewStatus(req.Status)) {
		return nil, ErrInvalidStatus
	}

	updated := *existing
	updated.InterviewerID = interviewerID
	updated.ApplicantID = applicantID
	if req.Date != nil {
		updated.Date = *req.Date
	}
	if req.Time != "" {
		updated.Time = req.Time
	}
	if req.Type != "" {
		updated.Type = req.Type
	}
	if req.Status != "" {
		updated.Status = models.InterviewStatus(req.Status)
	}
	if req.Location != "" {
		updated.Location = req.Location
	}
	if req.MeetingLink != "" {
		updated.MeetingLink = req.MeetingLink
	}
	if req.Notes != "" {
		updated.Notes = req.Notes
	}
	updated.UpdatedAt = time.Now()

	changes := InterviewChanges(existing, &updated)

	switch updated.Status {
	case models.InterviewCancelled, models.InterviewScheduled:
		if applicant.Email == "" || interviewer.Email == "" {
			return nil, ErrMissingContactInfo
		}
	case models.InterviewCompleted:
		if applicant.Email == "" {
			return nil, ErrMissingContactInfo
		}
	}

	if err := s.interviews.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, err
	}

	oldDate := existing.Date.Format(emailDateFormat)
	oldTime := existing.Time
	newDate := updated.Date.Format(emailDateFormat)
	newTime := updated.Time
	reason := req.Notes

	switch updated.Status {
	case models.InterviewCancelled:
		s.runner.Submit("interview cancellation emails", func() {
			subject, html := mailer.InterviewCancelledApplicant(applicant.FirstName, oldDate, oldTime, reason)
			if err := s.mail.Send(applicant.Email, subject, html); err != nil {
				s.log.Error("failed to send cancellation email", "email", applicant.Email, "error", err)
			}
			subject, html = mailer.InterviewCancelledInterviewer(interviewer.Name, applicant.FullName(), oldDate, oldTime, reason)
			if err := s.mail.Send(interviewer.Email, subject, html); err != nil {
				s.log.Error("failed to send cancellation email", "email", interviewer.Email, "error", err)
			}
		})
	case models.InterviewScheduled:
		s.runner.Submit("interview reschedule emails", func() {
			subject, html := mailer.InterviewRescheduledApplicant(applicant.FirstName, oldDate, oldTime, newDate, newTime, reason)
			if err := s.mail.Send(applicant.Email, subject, html); err != nil {
				s.log.Error("failed to send reschedule email", "email", applicant.Email, "error", err)
			}
			subject, html = mailer.InterviewRescheduledInterviewer(interviewer.Name, applicant.FullName(), oldDate, oldTime, newDate, newTime, reason)
			if err := s.mail.Send(interviewer.Email, subject, html); err != nil {
				s.log.Error("failed to send reschedule email", "email", interviewer.Email, "error", err)
			}
		})
	case models.InterviewCompleted:
		s.runner.Submit("interview completion email", func() {
			subject, html := mailer.InterviewCompleted(applicant.FirstName, oldDate, oldTime)
			if err := s.mail.Send(applicant.Email, subject, html); err != nil {
				s.log.Error("failed to send completion email", "email", applicant.Email, "error", err)
			}
		})
	}

	if len(changes) > 0 {
		notifyFor := newApplicant
		s.runner.Submit("interview change notification", func() {
			s.notifications.RecordInterviewUpdated(context.Background(), &updated, notifyFor, changes)
		})
	}

	view := dto.NewInterviewView(&updated, newApplicant, newInterviewer)
	return &view, nil
}

// Cancel marks an interview cancelled without removing it. Notifying the
// candidate requires a reason and contact emails for both participants,
// all verified before the status changes.
func (s *InterviewService) Cancel(ctx context.Context, id string, req *dto.CancelInterviewRequest) (*dto.InterviewView, error) {
	interview, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	applicant, interviewer, err := s.resolve(ctx, interview)
	if err != nil {
		return nil, err
	}

	if req.NotifyCandidate {
		if req.Reason == "" {
			return nil, ErrReasonRequired
		}
		if applicant.Email == "" || interviewer.Email == "" {
			return nil, ErrMissingContactInfo
		}
	}

	interview.Status = models.InterviewCancelled
	interview.UpdatedAt = time.Now()
	if err := s.interviews.Update(ctx, interview); err != nil {
		return nil, err
	}

	if req.NotifyCandidate {
		date := interview.Date.Format(emailDateFormat)
		timeOfDay := interview.Time
		reason := req.Reason
		s.runner.Submit("interview cancellation emails", func() {
			subject, html := mailer.InterviewCancelledApplicant(applicant.FirstName, date, timeOfDay, reason)
			if err := s.mail.Send(applicant.Email, subject, html); err != nil {
				s.log.Error("failed to send cancellation email", "email", applicant.Email, "error", err)
			}
			subject, html = mailer.InterviewCancelledInterviewer(interviewer.Name, applicant.FullName(), date, timeOfDay, reason)
			if err := s.mail.Send(interviewer.Email, subject, html); err != nil {
				s.log.Error("failed to send cancellation email", "email", interviewer.Email, "error", err)
			}
		})
	}

	s.log.Info("interview cancelled", "id", id)
	view := dto.NewInterviewView(interview, applicant, interviewer)
	return &view, nil
}

// PermanentDelete removes an interview outright.
func (s *InterviewService) PermanentDelete(ctx context.Context, id string) (*dto.DeletedInterview, error) {
	interview, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	candidateName := "Unknown Candidate"
	if applicant, err := s.applications.FindByID(ctx, interview.ApplicantID); err == nil {
		candidateName = applicant.FullName()
	}

	if _, err := s.interviews.Delete(ctx, interview.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, err
	}

	s.log.Info("interview permanently deleted", "id", id)
	return &dto.DeletedInterview{DeletedInterviewID: id, CandidateName: candidateName}, nil
}

// CountScheduledBetween reports scheduled interviews inside a time window.
func (s *InterviewService) CountScheduledBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return s.interviews.CountByStatusBetween(ctx, models.InterviewScheduled, from, to)
}

func splitName(full string) (first, last string, ok bool) {
	parts := strings.Fields(full)
	if len(parts) < 2 {
		return "", "", false
	}
	return parts[0], strings.Join(parts[1:], " "), true
}
