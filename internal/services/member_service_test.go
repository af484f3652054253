package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/hireline/applicant-tracking-api/internal/dto"
	"github.com/hireline/applicant-tracking-api/internal/logging"
	"github.com/hireline/applicant-tracking-api/internal/models"
)

type MemberServiceTestSuite struct {
	suite.Suite
	members       *fakeMemberRepo
	notifications *fakeNotificationRepo
	service       *MemberService
}

func (suite *MemberServiceTestSuite) SetupTest() {
	suite.members = newFakeMemberRepo()
	suite.notifications = newFakeNotificationRepo()

	log := logging.NewNop()
	notificationService := NewNotificationService(suite.notifications, log)
	suite.service = NewMemberService(suite.members, notificationService, inlineRunner{}, log)
}

func (suite *MemberServiceTestSuite) createMember(name, role, department string) *models.Member {
	member, err := suite.service.Create(context.Background(), &dto.CreateMemberRequest{
		Name:       name,
		Email:      "staff@example.com",
		Role:       role,
		Department: department,
	})
	suite.Require().NoError(err)
	return member
}

// TestCreate_Success tests creation with defaults and the team notification.
func (suite *MemberServiceTestSuite) TestCreate_Success() {
	member := suite.createMember("Grace Hopper", "Recruiter", "HR")
	assert.Equal(suite.T(), "active", member.Status)

	notifications := suite.notifications.all()
	suite.Require().Len(notifications, 1)
	assert.Equal(suite.T(), "Team Member Added", notifications[0].Title)
	assert.Equal(suite.T(), models.NotificationPriorityLow, notifications[0].Priority)
	assert.Contains(suite.T(), notifications[0].Message, "access to applications and interview scheduling")
}

// TestCreate_MissingFields tests that absent required fields are named.
func (suite *MemberServiceTestSuite) TestCreate_MissingFields() {
	_, err := suite.service.Create(context.Background(), &dto.CreateMemberRequest{Name: "Grace Hopper"})

	var validation *ValidationError
	suite.Require().ErrorAs(err, &validation)
	assert.Equal(suite.T(), []string{"email", "role"}, validation.Missing)
}

// TestCreate_AdminRoleRejected tests that the admin role name is reserved.
func (suite *MemberServiceTestSuite) TestCreate_AdminRoleRejected() {
	_, err := suite.service.Create(context.Background(), &dto.CreateMemberRequest{
		Name:  "Grace Hopper",
		Email: "grace@example.com",
		Role:  "Admin",
	})
	assert.ErrorIs(suite.T(), err, ErrInvalidRole)
}

// TestUpdate_BioStaysSilent tests that a bio edit records no notification.
func (suite *MemberServiceTestSuite) TestUpdate_BioStaysSilent() {
	member := suite.createMember("Grace Hopper", "Recruiter", "HR")
	before := len(suite.notifications.all())

	bio := "COBOL pioneer."
	_, err := suite.service.Update(context.Background(), member.ID.Hex(), &dto.UpdateMemberRequest{Bio: &bio})
	suite.Require().NoError(err)
	assert.Len(suite.T(), suite.notifications.all(), before)
}

// TestUpdate_RoleChange tests that a role change records one medium
// notification describing the new permissions.
func (suite *MemberServiceTestSuite) TestUpdate_RoleChange() {
	member := suite.createMember("Grace Hopper", "Recruiter", "HR")
	before := len(suite.notifications.all())

	role := "Senior Recruiter"
	_, err := suite.service.Update(context.Background(), member.ID.Hex(), &dto.UpdateMemberRequest{Role: &role})
	suite.Require().NoError(err)

	notifications := suite.notifications.all()
	suite.Require().Len(notifications, before+1)
	latest := notifications[len(notifications)-1]
	assert.Equal(suite.T(), "Role Permission Updated", latest.Title)
	assert.Equal(suite.T(), models.NotificationPriorityMedium, latest.Priority)
	assert.Contains(suite.T(), latest.Message, "additional permissions for position management")
}

// TestUpdate_DepartmentChange tests the transfer notification.
func (suite *MemberServiceTestSuite) TestUpdate_DepartmentChange() {
	member := suite.createMember("Grace Hopper", "Recruiter", "HR")

	department := "Engineering"
	_, err := suite.service.Update(context.Background(), member.ID.Hex(), &dto.UpdateMemberRequest{Department: &department})
	suite.Require().NoError(err)

	notifications := suite.notifications.all()
	latest := notifications[len(notifications)-1]
	assert.Equal(suite.T(), "Team Assignment Updated", latest.Title)
	assert.Contains(suite.T(), latest.Message, "transferred from HR to Engineering")
}

// TestUpdate_RoleWinsOverName tests that when several fields change at
// once, the role change drives the notification.
func (suite *MemberServiceTestSuite) TestUpdate_RoleWinsOverName() {
	member := suite.createMember("Grace Hopper", "Recruiter", "HR")

	role := "HR Manager"
	name := "Grace B. Hopper"
	_, err := suite.service.Update(context.Background(), member.ID.Hex(), &dto.UpdateMemberRequest{Role: &role, Name: &name})
	suite.Require().NoError(err)

	notifications := suite.notifications.all()
	latest := notifications[len(notifications)-1]
	assert.Equal(suite.T(), "Role Permission Updated", latest.Title)
}

// TestUpdate_AdminRoleRejected tests that updates cannot grant admin.
func (suite *MemberServiceTestSuite) TestUpdate_AdminRoleRejected() {
	member := suite.createMember("Grace Hopper", "Recruiter", "HR")

	role := "admin"
	_, err := suite.service.Update(context.Background(), member.ID.Hex(), &dto.UpdateMemberRequest{Role: &role})
	assert.ErrorIs(suite.T(), err, ErrInvalidRole)
}

// TestDelete tests removal and the not-found path.
func (suite *MemberServiceTestSuite) TestDelete() {
	member := suite.createMember("Grace Hopper", "Recruiter", "HR")

	suite.Require().NoError(suite.service.Delete(context.Background(), member.ID.Hex()))
	err := suite.service.Delete(context.Background(), member.ID.Hex())
	assert.ErrorIs(suite.T(), err, ErrMemberNotFound)
}

func TestMemberServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MemberServiceTestSuite))
}
