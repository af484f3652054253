package services

import (
	"context"
	"time"

	"github.com/hireline/applicant-tracking-api/internal/cache"
	"github.com/hireline/applicant-tracking-api/internal/logging"
	"github.com/hireline/applicant-tracking-api/internal/models"
	"github.com/hireline/applicant-tracking-api/internal/repository"
)

// DashboardSummary holds the headline numbers for the dashboard cards.
type DashboardSummary struct {
	TotalApplication    int64 `json:"totalApplication"`
	Position            int64 `json:"position"`
	ApplicationAccepted int64 `json:"applicationAccepted"`
	InterviewScheduled  int64 `json:"interviewScheduled"`
}

// StatusSummary counts applications per workflow status. Interviewed counts
// completed interviews rather than an application status.
type StatusSummary struct {
	Pending            int64 `json:"pending"`
	Reviewing          int64 `json:"reviewing"`
	Interviewed        int64 `json:"interviewed"`
	InterviewScheduled int64 `json:"interviewScheduled"`
	Accepted           int64 `json:"accepted"`
	Rejected           int64 `json:"rejected"`
}

// DashboardService aggregates counts for the overview screens. Each summary
// has its own 30 second cache slot that clients opt into with ?cache=true.
type DashboardService struct {
	applications repository.ApplicationRepository
	positions    repository.PositionRepository
	interviews   repository.InterviewRepository
	summary      *cache.Slot[DashboardSummary]
	status       *cache.Slot[StatusSummary]
	log          *logging.Logger
	now          func() time.Time
}

func NewDashboardService(
	applications repository.ApplicationRepository,
	positions repository.PositionRepository,
	interviews repository.InterviewRepository,
	log *logging.Logger,
) *DashboardService {
	return &DashboardService{
		applications: applications,
		positions:    positions,
		interviews:   interviews,
		summary:      cache.NewSlot[DashboardSummary](cache.DefaultTTL),
		status:       cache.NewSlot[StatusSummary](cache.DefaultTTL),
		log:          log,
		now:          time.Now,
	}
}

// SetClock overrides the time source for both cache slots, for tests.
func (s *DashboardService) SetClock(now func() time.Time) {
	s.now = now
	s.summary.SetClock(now)
	s.status.SetClock(now)
}

// Summary returns the headline counts: applications this month, active
// positions, acceptances this quarter and interviews scheduled this week
// (Monday through Sunday). Reports whether the result came from cache.
func (s *DashboardService) Summary(ctx context.Context, useCache bool) (*cache.Entry[DashboardSummary], bool, error) {
	if useCache {
		if entry, ok := s.summary.Get(); ok {
			return entry, true, nil
		}
	}

	now := s.now()
	monthStart, monthEnd := monthWindow(now)
	quarterStart, quarterEnd := quarterWindow(now)
	weekStart, weekEnd := weekWindow(now)

	totalApplication, err := s.applications.CountAppliedBetween(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, false, err
	}
	activePositions, err := s.positions.CountByStatus(ctx, models.PositionActive)
	if err != nil {
		return nil, false, err
	}
	accepted, err := s.applications.CountByStatusBetween(ctx, models.ApplicationAccepted, quarterStart, quarterEnd)
	if err != nil {
		return nil, false, err
	}
	scheduled, err := s.interviews.CountByStatusBetween(ctx, models.InterviewScheduled, weekStart, weekEnd)
	if err != nil {
		return nil, false, err
	}

	entry := s.summary.Set(DashboardSummary{
		TotalApplication:    totalApplication,
		Position:            activePositions,
		ApplicationAccepted: accepted,
		InterviewScheduled:  scheduled,
	})
	return entry, false, nil
}

// StatusCounts returns the per-status application tallies plus completed
// interviews. Reports whether the result came from cache.
func (s *DashboardService) StatusCounts(ctx context.Context, useCache bool) (*cache.Entry[StatusSummary], bool, error) {
	if useCache {
		if entry, ok := s.status.Get(); ok {
			return entry, true, nil
		}
	}

	pending, err := s.applications.CountByStatus(ctx, models.ApplicationPending)
	if err != nil {
		return nil, false, err
	}
	reviewing, err := s.applications.CountByStatus(ctx, models.ApplicationReviewing)
	if err != nil {
		return nil, false, err
	}
	interviewed, err := s.interviews.CountByStatus(ctx, models.InterviewCompleted)
	if err != nil {
		return nil, false, err
	}
	interviewScheduled, err := s.applications.CountByStatus(ctx, models.ApplicationInterviewScheduled)
	if err != nil {
		return nil, false, err
	}
	accepted, err := s.applications.CountByStatus(ctx, models.ApplicationAccepted)
	if err != nil {
		return nil, false, err
	}
	rejected, err := s.applications.CountByStatus(ctx, models.ApplicationRejected)
	if err != nil {
		return nil, false, err
	}

	entry := s.status.Set(StatusSummary{
		Pending:            pending,
		Reviewing:          reviewing,
		Interviewed:        interviewed,
		InterviewScheduled: interviewScheduled,
		Accepted:           accepted,
		Rejected:           rejected,
	})
	return entry, false, nil
}

// monthWindow spans the calendar month containing t.
func monthWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return start, end
}

// quarterWindow spans the calendar quarter containing t.
func quarterWindow(t time.Time) (time.Time, time.Time) {
	quarterStartMonth := time.Month(((int(t.Month())-1)/3)*3 + 1)
	start := time.Date(t.Year(), quarterStartMonth, 1, 0, 0, 0, 0, t.Location())
	end := start.AddDate(0, 3, 0).Add(-time.Millisecond)
	return start, end
}

// weekWindow spans Monday 00:00 through Sunday 23:59:59.999 around t.
func weekWindow(t time.Time) (time.Time, time.Time) {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).AddDate(0, 0, -daysSinceMonday)
	end := start.AddDate(0, 0, 7).Add(-time.Millisecond)
	return start, end
}
