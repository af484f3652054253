package services

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hireline/applicant-tracking-api/internal/models"
	"github.com/hireline/applicant-tracking-api/internal/repository"
)

// inlineRunner executes submitted tasks immediately so tests observe
// background side effects without waiting.
type inlineRunner struct{}

func (inlineRunner) Submit(name string, fn func()) { fn() }
func (inlineRunner) Wait()                         {}

type sentEmail struct {
	To      string
	Subject string
	HTML    string
}

// fakeMailer records every send. Setting fail makes all sends error.
type fakeMailer struct {
	mu   sync.Mutex
	sent []sentEmail
	fail error
}

func (m *fakeMailer) Send(to, subject, html string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.sent = append(m.sent, sentEmail{To: to, Subject: subject, HTML: html})
	return nil
}

func (m *fakeMailer) emails() []sentEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]sentEmail, len(m.sent))
	copy(out, m.sent)
	return out
}

type fakePositionRepo struct {
	mu        sync.Mutex
	positions map[primitive.ObjectID]models.Position
}

func newFakePositionRepo() *fakePositionRepo {
	return &fakePositionRepo{positions: make(map[primitive.ObjectID]models.Position)}
}

func (r *fakePositionRepo) Create(ctx context.Context, position *models.Position) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if position.ID.IsZero() {
		position.ID = primitive.NewObjectID()
	}
	r.positions[position.ID] = *position
	return nil
}

func (r *fakePositionRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Position, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.positions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *fakePositionRepo) List(ctx context.Context, activeOnly bool) ([]models.Position, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Position{}
	for _, p := range r.positions {
		if activeOnly && p.Status != models.PositionActive {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePositionRepo) Update(ctx context.Context, position *models.Position) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.positions[position.ID]; !ok {
		return repository.ErrNotFound
	}
	r.positions[position.ID] = *position
	return nil
}

func (r *fakePositionRepo) Delete(ctx context.Context, id primitive.ObjectID) (*models.Position, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.positions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.positions, id)
	return &p, nil
}

func (r *fakePositionRepo) IncrementApplications(ctx context.Context, id primitive.ObjectID, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.positions[id]
	if !ok {
		return repository.ErrNotFound
	}
	p.CurrentApplications += delta
	r.positions[id] = p
	return nil
}

func (r *fakePositionRepo) CountByStatus(ctx context.Context, status models.PositionStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, p := range r.positions {
		if p.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeApplicationRepo struct {
	mu           sync.Mutex
	applications map[primitive.ObjectID]models.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: make(map[primitive.ObjectID]models.Application)}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, application *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.applications {
		if a.Email == application.Email && a.Position == application.Position {
			return repository.ErrDuplicate
		}
	}
	if application.ID.IsZero() {
		application.ID = primitive.NewObjectID()
	}
	r.applications[application.ID] = *application
	return nil
}

func (r *fakeApplicationRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.applications[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &a, nil
}

func (r *fakeApplicationRepo) FindByEmailAndPosition(ctx context.Context, email string, position primitive.ObjectID) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.applications {
		if a.Email == email && a.Position == position {
			found := a
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeApplicationRepo) FindByName(ctx context.Context, firstName, lastName string) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.applications {
		if a.FirstName == firstName && a.LastName == lastName {
			found := a
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeApplicationRepo) List(ctx context.Context) ([]models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Application{}
	for _, a := range r.applications {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeApplicationRepo) Update(ctx context.Context, application *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.applications[application.ID]; !ok {
		return repository.ErrNotFound
	}
	r.applications[application.ID] = *application
	return nil
}

func (r *fakeApplicationRepo) Delete(ctx context.Context, id primitive.ObjectID) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.applications[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.applications, id)
	return &a, nil
}

func (r *fakeApplicationRepo) CountByStatus(ctx context.Context, status models.ApplicationStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, a := range r.applications {
		if a.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeApplicationRepo) CountAppliedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, a := range r.applications {
		if !a.AppliedDate.Before(from) && !a.AppliedDate.After(to) {
			n++
		}
	}
	return n, nil
}

func (r *fakeApplicationRepo) CountByStatusBetween(ctx context.Context, status models.ApplicationStatus, from, to time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, a := range r.applications {
		if a.Status == status && !a.AppliedDate.Before(from) && !a.AppliedDate.After(to) {
			n++
		}
	}
	return n, nil
}

type fakeInterviewRepo struct {
	mu         sync.Mutex
	interviews map[primitive.ObjectID]models.Interview
}

func newFakeInterviewRepo() *fakeInterviewRepo {
	return &fakeInterviewRepo{interviews: make(map[primitive.ObjectID]models.Interview)}
}

func (r *fakeInterviewRepo) Create(ctx context.Context, interview *models.Interview) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if interview.ID.IsZero() {
		interview.ID = primitive.NewObjectID()
	}
	r.interviews[interview.ID] = *interview
	return nil
}

func (r *fakeInterviewRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.interviews[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &i, nil
}

func (r *fakeInterviewRepo) List(ctx context.Context) ([]models.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Interview{}
	for _, i := range r.interviews {
		out = append(out, i)
	}
	return out, nil
}

func (r *fakeInterviewRepo) Update(ctx context.Context, interview *models.Interview) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.interviews[interview.ID]; !ok {
		return repository.ErrNotFound
	}
	r.interviews[interview.ID] = *interview
	return nil
}

func (r *fakeInterviewRepo) Delete(ctx context.Context, id primitive.ObjectID) (*models.Interview, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.interviews[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.interviews, id)
	return &i, nil
}

func (r *fakeInterviewRepo) CountByStatus(ctx context.Context, status models.InterviewStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, i := range r.interviews {
		if i.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *fakeInterviewRepo) CountByStatusBetween(ctx context.Context, status models.InterviewStatus, from, to time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, i := range r.interviews {
		if i.Status == status && !i.Date.Before(from) && !i.Date.After(to) {
			n++
		}
	}
	return n, nil
}

type fakeMemberRepo struct {
	mu      sync.Mutex
	members map[primitive.ObjectID]models.Member
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{members: make(map[primitive.ObjectID]models.Member)}
}

func (r *fakeMemberRepo) Create(ctx context.Context, member *models.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if member.ID.IsZero() {
		member.ID = primitive.NewObjectID()
	}
	r.members[member.ID] = *member
	return nil
}

func (r *fakeMemberRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.members[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &m, nil
}

func (r *fakeMemberRepo) FindByName(ctx context.Context, name string) (*models.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.members {
		if m.Name == name {
			found := m
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeMemberRepo) List(ctx context.Context) ([]models.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Member{}
	for _, m := range r.members {
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeMemberRepo) Update(ctx context.Context, member *models.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.members[member.ID]; !ok {
		return repository.ErrNotFound
	}
	r.members[member.ID] = *member
	return nil
}

func (r *fakeMemberRepo) Delete(ctx context.Context, id primitive.ObjectID) (*models.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.members[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.members, id)
	return &m, nil
}

type fakeMessageRepo struct {
	mu       sync.Mutex
	messages map[primitive.ObjectID]models.Message
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{messages: make(map[primitive.ObjectID]models.Message)}
}

func (r *fakeMessageRepo) Create(ctx context.Context, message *models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if message.ID.IsZero() {
		message.ID = primitive.NewObjectID()
	}
	r.messages[message.ID] = *message
	return nil
}

func (r *fakeMessageRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.messages[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &m, nil
}

func (r *fakeMessageRepo) List(ctx context.Context) ([]models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []models.Message{}
	for _, m := range r.messages {
		out = append(out, m)
	}
	return out, nil
}

func (r *fakeMessageRepo) Update(ctx context.Context, message *models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.messages[message.ID]; !ok {
		return repository.ErrNotFound
	}
	r.messages[message.ID] = *message
	return nil
}

func (r *fakeMessageRepo) Delete(ctx context.Context, id primitive.ObjectID) (*models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.messages[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(r.messages, id)
	return &m, nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications []models.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(ctx context.Context, notification *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if notification.ID.IsZero() {
		notification.ID = primitive.NewObjectID()
	}
	r.notifications = append(r.notifications, *notification)
	return nil
}

func (r *fakeNotificationRepo) List(ctx context.Context, filter repository.NotificationFilter) ([]models.Notification, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := []models.Notification{}
	for _, n := range r.notifications {
		if filter.Read != nil && n.Read != *filter.Read {
			continue
		}
		if filter.Type != "" && n.Type != filter.Type {
			continue
		}
		if filter.Priority != "" && n.Priority != filter.Priority {
			continue
		}
		matched = append(matched, n)
	}
	total := int64(len(matched))

	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		start := (page - 1) * filter.Limit
		if start > len(matched) {
			start = len(matched)
		}
		end := start + filter.Limit
		if end > len(matched) {
			end = len(matched)
		}
		matched = matched[start:end]
	}
	return matched, total, nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, id primitive.ObjectID) (*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.notifications {
		if r.notifications[i].ID == id {
			r.notifications[i].Read = true
			n := r.notifications[i]
			return &n, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeNotificationRepo) MarkAllRead(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for i := range r.notifications {
		if !r.notifications[i].Read {
			r.notifications[i].Read = true
			n++
		}
	}
	return n, nil
}

func (r *fakeNotificationRepo) Delete(ctx context.Context, id primitive.ObjectID) (*models.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.notifications {
		if r.notifications[i].ID == id {
			n := r.notifications[i]
			r.notifications = append(r.notifications[:i], r.notifications[i+1:]...)
			return &n, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeNotificationRepo) CountUnread(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, item := range r.notifications {
		if !item.Read {
			n++
		}
	}
	return n, nil
}

func (r *fakeNotificationRepo) all() []models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]models.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) FindAdmin(ctx context.Context) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Role == "admin" {
			found := u
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	for id, u := range r.users {
		if id != user.ID && u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	r.users[user.ID] = *user
	return nil
}
