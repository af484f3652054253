package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/hireline/applicant-tracking-api/internal/dto"
	"github.com/hireline/applicant-tracking-api/internal/logging"
	"github.com/hireline/applicant-tracking-api/internal/models"
)

// TestMessagePriorityFor tests the priority classification table.
func TestMessagePriorityFor(t *testing.T) {
	long := strings.Repeat("x", 120)

	tests := []struct {
		name    string
		subject string
		body    string
		want    models.MessagePriority
	}{
		{"short internship", "internship", "Do you take interns?", models.MessagePriorityHigh},
		{"short partnership", "partnership", "Let's talk.", models.MessagePriorityHigh},
		{"short services", "services", "Pricing?", models.MessagePriorityHigh},
		{"short careers", "careers", "Any openings?", models.MessagePriorityLow},
		{"general always high", "general", long, models.MessagePriorityHigh},
		{"long internship", "internship", long, models.MessagePriorityMedium},
		{"long careers", "careers", long, models.MessagePriorityMedium},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MessagePriorityFor(tt.subject, tt.body))
		})
	}
}

type MessageServiceTestSuite struct {
	suite.Suite
	messages *fakeMessageRepo
	mailer   *fakeMailer
	service  *MessageService
}

func (suite *MessageServiceTestSuite) SetupTest() {
	suite.messages = newFakeMessageRepo()
	suite.mailer = &fakeMailer{}
	suite.service = NewMessageService(suite.messages, suite.mailer, logging.NewNop())
}

func (suite *MessageServiceTestSuite) createMessage(subject, body string) *models.Message {
	message, err := suite.service.Create(context.Background(), &dto.CreateMessageRequest{
		FirstName: "Linus",
		LastName:  "Torvalds",
		Email:     "linus@example.com",
		Phone:     "555-0100",
		Subject:   subject,
		Message:   body,
	})
	suite.Require().NoError(err)
	return message
}

// TestCreate_Success tests that a new message starts unread with a derived
// priority.
func (suite *MessageServiceTestSuite) TestCreate_Success() {
	message := suite.createMessage("internship", "Do you take interns?")
	assert.Equal(suite.T(), models.MessageNew, message.Status)
	assert.Equal(suite.T(), models.MessagePriorityHigh, message.Priority)
}

// TestCreate_MissingFields tests that all six fields are required.
func (suite *MessageServiceTestSuite) TestCreate_MissingFields() {
	_, err := suite.service.Create(context.Background(), &dto.CreateMessageRequest{
		FirstName: "Linus",
		Subject:   "general",
	})

	var validation *ValidationError
	suite.Require().ErrorAs(err, &validation)
	assert.Equal(suite.T(), []string{"lastName", "email", "phone", "message"}, validation.Missing)
}

// TestUpdateStatus tests the workflow transitions and the rejection of
// unknown statuses.
func (suite *MessageServiceTestSuite) TestUpdateStatus() {
	message := suite.createMessage("general", "Hello there.")

	updated, err := suite.service.UpdateStatus(context.Background(), message.ID.Hex(), "read")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.MessageRead, updated.Status)

	_, err = suite.service.UpdateStatus(context.Background(), message.ID.Hex(), "pinned")
	assert.ErrorIs(suite.T(), err, ErrInvalidStatus)
}

// TestReply_Success tests that a reply is sent with the subject label and
// a matching acknowledgment, then the message is marked replied.
func (suite *MessageServiceTestSuite) TestReply_Success() {
	message := suite.createMessage("careers", "Is the backend role still open?")

	replied, err := suite.service.Reply(context.Background(), message.ID.Hex(), "The role is still open.")
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.MessageReplied, replied.Status)

	emails := suite.mailer.emails()
	suite.Require().Len(emails, 1)
	assert.Equal(suite.T(), "linus@example.com", emails[0].To)
	assert.Equal(suite.T(), "Career Opportunities", emails[0].Subject)
	assert.Contains(suite.T(), emails[0].HTML, "Dear Linus Torvalds,")
	assert.Contains(suite.T(), emails[0].HTML, "The role is still open.")
}

// TestReply_MailFailure tests that a failed send leaves the message status
// untouched.
func (suite *MessageServiceTestSuite) TestReply_MailFailure() {
	message := suite.createMessage("general", "Hello there.")
	suite.mailer.fail = errors.New("smtp unavailable")

	_, err := suite.service.Reply(context.Background(), message.ID.Hex(), "Hi.")
	suite.Require().Error(err)

	stored, err := suite.messages.FindByID(context.Background(), message.ID)
	suite.Require().NoError(err)
	assert.Equal(suite.T(), models.MessageNew, stored.Status)
}

// TestDelete tests removal and the not-found path.
func (suite *MessageServiceTestSuite) TestDelete() {
	message := suite.createMessage("general", "Hello there.")

	suite.Require().NoError(suite.service.Delete(context.Background(), message.ID.Hex()))
	err := suite.service.Delete(context.Background(), message.ID.Hex())
	assert.ErrorIs(suite.T(), err, ErrMessageNotFound)
}

func TestMessageServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessageServiceTestSuite))
}
