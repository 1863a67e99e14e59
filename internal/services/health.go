package services

import (
	"context"
	"time"

	"github.com/wellnest/wellnest-server/internal/model"
	"github.com/wellnest/wellnest-server/internal/store"
)

// HealthService applies the daily-upsert rule to health-metric entries and
// serves the day-keyed month view.
type HealthService struct {
	store store.Store
	now   func() time.Time
}

func NewHealthService(s store.Store) *HealthService {
	return &HealthService{store: s, now: time.Now}
}

// HealthInput carries one day's health metrics.
type HealthInput struct {
	FatigueLevel int
	SleepHours   float64
	SleepQuality int
	Stress       int
}

// LogToday records the metrics for the current UTC day, overwriting any
// existing record for (user, today) in a single atomic store upsert.
func (s *HealthService) LogToday(ctx context.Context, userID string, in HealthInput) (*model.HealthEntry, error) {
	day, _ := dayWindow(s.now())
	e := &model.HealthEntry{
		UserID:       userID,
		FatigueLevel: in.FatigueLevel,
		SleepHours:   in.SleepHours,
		SleepQuality: in.SleepQuality,
		Stress:       in.Stress,
		Day:          day,
	}
	return s.store.Health().UpsertDay(ctx, e)
}

// MonthGrid returns one slot per calendar day of (year, month), keyed
// "d-m-yyyy". Days without a record map to nil. The result always holds
// exactly daysInMonth(year, month) entries.
func (s *HealthService) MonthGrid(ctx context.Context, userID string, year int, month time.Month) (map[string]*model.HealthMetrics, error) {
	from, to := monthWindow(year, month)
	recs, err := s.store.Health().ListRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	grid := make(map[string]*model.HealthMetrics, daysInMonth(year, month))
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		grid[dayKey(d)] = nil
	}
	for _, r := range recs {
		grid[dayKey(r.Day)] = &model.HealthMetrics{
			FatigueLevel: r.FatigueLevel,
			SleepHours:   r.SleepHours,
			SleepQuality: r.SleepQuality,
			Stress:       r.Stress,
		}
	}
	return grid, nil
}
