package services

import (
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"github.com/hireline/applicant-tracking-api/internal/dto"
	"github.com/hireline/applicant-tracking-api/internal/files"
	"github.com/hireline/applicant-tracking-api/internal/logging"
	"github.com/hireline/applicant-tracking-api/internal/mailer"
	"github.com/hireline/applicant-tracking-api/internal/models"
	"github.com/hireline/applicant-tracking-api/internal/repository"
	"github.com/hireline/applicant-tracking-api/internal/tasks"
)

// teamCopyAddress receives copies of candidate correspondence when requested.
const teamCopyAddress = "hr-team@yourcompany.com"

type messageTemplate struct {
	ID      string
	Name    string
	Subject string
	Body    string
}

var messageTemplates = []messageTemplate{
	{ID: "custom", Name: "Custom Message"},
	{
		ID:      "acknowledgment",
		Name:    "Application Acknowledgment",
		Subject: "Thank you for your application - {{position}}",
		Body: "Dear {{candidateName}},\n\nThank you for your interest in the {{position}} position at our company. We have received your application and are currently reviewing it.\n\n" +
			"We will be in touch within the next few days regarding the next steps in our hiring process.\n\nBest regards,\nThe Hiring Team",
	},
	{
		ID:      "interview-request",
		Name:    "Interview Request",
		Subject: "Interview Invitation - {{position}}",
		Body: "Dear {{candidateName}},\n\nWe are pleased to inform you that we would like to schedule an interview for the {{position}} position.\n\n" +
			"Please let us know your availability for the coming week, and we will coordinate a suitable time.\n\nWe look forward to speaking with you soon.\n\nBest regards,\nThe Hiring Team",
	},
	{
		ID:      "status-update",
		Name:    "Status Update",
		Subject: "Update on your application - {{position}}",
		Body: "Dear {{candidateName}},\n\nWe wanted to provide you with an update on your application for the {{position}} position.\n\n" +
			"Your application is currently under review, and we will contact you with next steps soon.\n\nThank you for your patience.\n\nBest regards,\nThe Hiring Team",
	},
	{
		ID:      "additional-info",
		Name:    "Request Additional Information",
		Subject: "Additional Information Required - {{position}}",
		Body: "Dear {{candidateName}},\n\nThank you for your application for the {{position}} position. To proceed with your application, we need some additional information from you.\n\n" +
			"Please provide the following at your earliest convenience:\n- [Specify what information is needed]\n\n" +
			"You can reply directly to this email with the requested information.\n\nBest regards,\nThe Hiring Team",
	},
}

func findTemplate(id string) (messageTemplate, bool) {
	for _, t := range messageTemplates {
		if t.ID == id {
			return t, true
		}
	}
	return messageTemplate{}, false
}

// ApplicationService manages candidate applications end to end, from the
// public submission form through status decisions and correspondence.
type ApplicationService struct {
	applications  repository.ApplicationRepository
	positions     repository.PositionRepository
	notifications *NotificationService
	mail          mailer.Mailer
	runner        tasks.Runner
	store         *files.Store
	log           *logging.Logger
}

func NewApplicationService(
	applications repository.ApplicationRepository,
	positions repository.PositionRepository,
	notifications *NotificationService,
	mail mailer.Mailer,
	runner tasks.Runner,
	store *files.Store,
	log *logging.Logger,
) *ApplicationService {
	return &ApplicationService{
		applications:  applications,
		positions:     positions,
		notifications: notifications,
		mail:          mail,
		runner:        runner,
		store:         store,
		log:           log,
	}
}

// Submit handles the public application form against a position. The caller
// gets an answer as soon as the application is stored; the confirmation
// email and the staff notification run on the background runner.
func (s *ApplicationService) Submit(ctx context.Context, positionID string, form *dto.SubmitApplicationForm, resume *multipart.FileHeader) (*models.Application, error) {
	oid, err := parseObjectID(positionID)
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
	if position.Status == models.PositionClosed {
		return nil, ErrPositionClosed
	}

	email := strings.ToLower(strings.TrimSpace(form.Email))
	if email != "" {
		if _, err := s.applications.FindByEmailAndPosition(ctx, email, oid); err == nil {
			return nil, ErrDuplicateApplication
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	if missing := missingApplicationFields(form); len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}

	graduationYear, err := strconv.Atoi(strings.TrimSpace(form.GraduationYear))
	if err != nil {
		return nil, ErrInvalidGraduationYear
	}

	now := time.Now()
	application := &models.Application{
		FirstName:      strings.TrimSpace(form.FirstName),
		LastName:       strings.TrimSpace(form.LastName),
		Email:          email,
		Phone:          strings.TrimSpace(form.Phone),
		University:     strings.TrimSpace(form.University),
		Major:          strings.TrimSpace(form.Major),
		GraduationYear: graduationYear,
		GPA:            strings.TrimSpace(form.GPA),
		PortfolioURL:   strings.TrimSpace(form.PortfolioURL),
		GithubURL:      strings.TrimSpace(form.GithubURL),
		LinkedinURL:    strings.TrimSpace(form.LinkedinURL),
		CoverLetter:    strings.TrimSpace(form.CoverLetter),
		AdditionalInfo: strings.TrimSpace(form.AdditionalInfo),
		Skills:         parseSkills(form.Skills),
		Position:       oid,
		PositionTitle:  position.Title,
		Department:     position.Department,
		Status:         models.ApplicationPending,
		Priority:       models.ApplicationPriorityNormal,
		AppliedDate:    now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if resume != nil {
		path, err := s.store.SaveResume(resume)
		if err != nil {
			return nil, err
		}
		application.Resume = path
	}

	if err := s.applications.Create(ctx, application); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateApplication
		}
		return nil, err
	}

	if err := s.positions.IncrementApplications(ctx, oid, 1); err != nil {
		s.log.Error("failed to increment application counter", "position", positionID, "error", err)
	}

	s.runner.Submit("application received side effects", func() {
		ctx := context.Background()
		s.notifications.RecordApplicationCreated(ctx, application, position)
		subject, html := mailer.ApplicationReceived(application.FirstName, position.Title, position.Department)
		if err := s.mail.Send(application.Email, subject, html); err != nil {
			s.log.Error("failed to send application confirmation", "email", application.Email, "error", err)
		}
	})

	s.log.Info("application submitted", "id", application.ID.Hex(), "position", position.Title)
	return application, nil
}

func missingApplicationFields(form *dto.SubmitApplicationForm) []string {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"firstName", form.FirstName},
		{"lastName", form.LastName},
		{"email", form.Email},
		{"university", form.University},
		{"major", form.Major},
		{"graduationYear", form.GraduationYear},
		{"portfolioUrl", form.PortfolioURL},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// parseSkills accepts the JSON-array form the web client submits. Anything
// else yields an empty list.
func parseSkills(raw string) []string {
	var skills []string
	if err := json.Unmarshal([]byte(raw), &skills); err != nil {
		return []string{}
	}
	return skills
}

func (s *ApplicationService) List(ctx context.Context) ([]models.Application, error) {
	return s.applications.List(ctx)
}

func (s *ApplicationService) Get(ctx context.Context, id string) (*models.Application, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	application, err := s.applications.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return application, nil
}

// UpdateStatus moves an application through the review workflow. The status
// must be a known value; when requested, the candidate is emailed on the
// background runner after the change is stored.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id string, req *dto.UpdateApplicationStatusRequest) (*models.Application, error) {
	status := models.ApplicationStatus(req.Status)
	if !ValidApplicationStatus(status) {
		return nil, ErrInvalidStatus
	}

	application, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(application.Status, status) {
		return nil, ErrInvalidStatus
	}

	application.Status = status
	application.UpdatedAt = time.Now()
	if err := s.applications.Update(ctx, application); err != nil {
		return nil, err
	}

	if req.SendNotification {
		notes := req.Notes
		s.runner.Submit("application status email", func() {
			var subject, html string
			switch status {
			case models.ApplicationAccepted:
				subject, html = mailer.ApplicationAccepted(application.FirstName, application.PositionTitle)
			case models.ApplicationRejected:
				subject, html = mailer.ApplicationRejected(application.FirstName, application.PositionTitle)
			default:
				subject, html = mailer.ApplicationStatusChanged(application.FirstName, string(status), notes)
			}
			if err := s.mail.Send(application.Email, subject, html); err != nil {
				s.log.Error("failed to send status email", "email", application.Email, "error", err)
			}
		})
	}

	s.log.Info("application status updated", "id", id, "status", status)
	return application, nil
}

// SendMessage emails a candidate directly, optionally from a canned
// template. A priority on the request also re-prioritizes the application.
// Scheduled sends are acknowledged without dispatching anything.
func (s *ApplicationService) SendMessage(ctx context.Context, id string, req *dto.SendApplicationMessageRequest) (*dto.SentMessage, error) {
	application, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	template, ok := findTemplate(req.Template)
	if !ok || template.Subject == "" {
		template.Subject = req.Subject
		template.Body = req.Message
	}

	subject := s.expandTemplate(template.Subject, application)
	body := s.expandTemplate(template.Body, application)
	if strings.TrimSpace(subject) == "" || strings.TrimSpace(body) == "" {
		return nil, ErrEmptyMessage
	}

	if req.Priority != "" {
		application.Priority = models.ApplicationPriority(req.Priority)
		application.UpdatedAt = time.Now()
		if err := s.applications.Update(ctx, application); err != nil {
			return nil, err
		}
	}

	templateID := req.Template
	if templateID == "" {
		templateID = "custom"
	}
	result := &dto.SentMessage{
		ApplicationID:  id,
		CandidateEmail: application.Email,
		Subject:        subject,
		Priority:       string(application.Priority),
		Template:       templateID,
		SentAt:         time.Now().Format(time.RFC3339),
	}

	if req.ScheduleEmail {
		// Scheduled delivery is acknowledged only; nothing is persisted or
		// dispatched yet.
		return result, nil
	}

	html := mailer.CandidateMessage(body)
	if err := s.mail.Send(application.Email, subject, html); err != nil {
		return nil, err
	}
	if req.CopyToTeam {
		if err := s.mail.Send(teamCopyAddress, "COPY: "+subject, html); err != nil {
			s.log.Error("failed to send team copy", "error", err)
		}
	}
	return result, nil
}

func (s *ApplicationService) expandTemplate(text string, application *models.Application) string {
	text = strings.ReplaceAll(text, "{{candidateName}}", application.FirstName)
	text = strings.ReplaceAll(text, "{{position}}", application.PositionTitle)
	return strings.ReplaceAll(text, "\n", "<br>")
}

// ResumeDownload locates the stored resume of an application and returns its
// filesystem path with download metadata.
func (s *ApplicationService) ResumeDownload(ctx context.Context, id string) (path, name, contentType string, err error) {
	application, err := s.Get(ctx, id)
	if err != nil {
		return "", "", "", err
	}
	if application.Resume == "" {
		return "", "", "", ErrNoResume
	}
	path, err = s.store.Resolve(application.Resume)
	if err != nil {
		return "", "", "", err
	}
	name = files.DownloadName(application.FirstName, application.LastName, application.Resume)
	return path, name, files.ContentType(application.Resume), nil
}

// Delete removes an application and its stored resume, if any. Reports
// whether a resume file was attached.
func (s *ApplicationService) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return false, ErrInvalidID
	}
	application, err := s.applications.Delete(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, ErrApplicationNotFound
		}
		return false, err
	}
	if application.Resume == "" {
		return false, nil
	}
	if err := s.store.Remove(application.Resume); err != nil {
		s.log.Error("failed to remove resume file", "path", application.Resume, "error", err)
	}
	return true, nil
}
