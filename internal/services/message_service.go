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
)

var subjectLabels = map[string]string{
	"internship":  "Internship Inquiry",
	"partnership": "Partnership Opportunity",
	"services":    "Service Information",
	"careers":     "Career Opportunities",
	"general":     "General Inquiry",
}

// MessagePriorityFor classifies an inbound message. Short messages about
// commercial subjects and anything filed under "general" jump the queue;
// short careers questions can wait.
func MessagePriorityFor(subject string, body string) models.MessagePriority {
	short := len(body) < 100
	switch {
	case short && (subject == "internship" || subject == "partnership" || subject == "services"):
		return models.MessagePriorityHigh
	case short && subject == "careers":
		return models.MessagePriorityLow
	case subject == "general":
		return models.MessagePriorityHigh
	}
	return models.MessagePriorityMedium
}

// acknowledgmentFor picks the canned first paragraph of a reply based on
// the subject line.
func acknowledgmentFor(subjectLine string) string {
	lower := strings.ToLower(subjectLine)
	switch {
	case strings.Contains(lower, "job application"):
		return "We have received your job application and our recruitment team is currently reviewing your credentials. You will be contacted should your profile meet the required criteria."
	case strings.Contains(lower, "scholarship application"):
		return "We have received your scholarship application. Our review committee will carefully assess your submission, and you will be informed of the outcome in due course."
	case strings.Contains(lower, "application"):
		return "We have received your application and it is under review. You will be notified once the evaluation process is complete."
	case strings.Contains(lower, "inquiry"):
		return "Thank you for your inquiry. We value your interest and will provide you with the requested information shortly."
	case strings.Contains(lower, "support"):
		return "We acknowledge your support request. Our team is looking into your concern and will provide you with the necessary assistance as soon as possible."
	}
	return "Thank you for reaching out to us. We have received your message and will respond at the earliest convenience."
}

// MessageService stores contact-form messages and sends replies.
type MessageService struct {
	messages repository.MessageRepository
	mail     mailer.Mailer
	log      *logging.Logger
}

func NewMessageService(messages repository.MessageRepository, mail mailer.Mailer, log *logging.Logger) *MessageService {
	return &MessageService{messages: messages, mail: mail, log: log}
}

// Create stores an inbound contact message. All six form fields are
// required; priority is derived once from subject and length.
func (s *MessageService) Create(ctx context.Context, req *dto.CreateMessageRequest) (*models.Message, error) {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"firstName", req.FirstName},
		{"lastName", req.LastName},
		{"email", req.Email},
		{"phone", req.Phone},
		{"subject", req.Subject},
		{"message", req.Message},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}

	now := time.Now()
	message := &models.Message{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    models.MessageNew,
		Priority:  MessagePriorityFor(req.Subject, req.Message),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, err
	}
	s.log.Info("contact message received", "id", message.ID.Hex(), "subject", message.Subject)
	return message, nil
}

func (s *MessageService) List(ctx context.Context) ([]models.Message, error) {
	return s.messages.List(ctx)
}

func (s *MessageService) find(ctx context.Context, id string) (*models.Message, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	message, err := s.messages.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}
	return message, nil
}

// UpdateStatus moves a message through the inbox workflow.
func (s *MessageService) UpdateStatus(ctx context.Context, id string, status string) (*models.Message, error) {
	if !ValidMessageStatus(models.MessageStatus(status)) {
		return nil, ErrInvalidStatus
	}
	message, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	message.Status = models.MessageStatus(status)
	message.UpdatedAt = time.Now()
	if err := s.messages.Update(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// Reply emails the sender synchronously and marks the message replied only
// after the send succeeds.
func (s *MessageService) Reply(ctx context.Context, id string, replyText string) (*models.Message, error) {
	message, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	subjectLine, ok := subjectLabels[message.Subject]
	if !ok {
		subjectLine = subjectLabels["general"]
	}
	body := mailer.MessageReply(message.FirstName, message.LastName, acknowledgmentFor(subjectLine), replyText)
	if err := s.mail.Send(message.Email, subjectLine, body); err != nil {
		return nil, err
	}

	message.Status = models.MessageReplied
	message.UpdatedAt = time.Now()
	if err := s.messages.Update(ctx, message); err != nil {
		return nil, err
	}
	s.log.Info("reply sent", "id", id, "email", message.Email)
	return message, nil
}

func (s *MessageService) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return ErrInvalidID
	}
	if _, err := s.messages.Delete(ctx, oid); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMessageNotFound
		}
		return err
	}
	return nil
}
