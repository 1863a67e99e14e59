package services

import (
	"context"
	"time"

	"github.com/wellnest/wellnest-server/internal/model"
	"github.com/wellnest/wellnest-server/internal/store"
)

const defaultScore = 5

// MoodService applies the daily-upsert rule to mood entries.
type MoodService struct {
	store store.Store
	now   func() time.Time
}

func NewMoodService(s store.Store) *MoodService {
	return &MoodService{store: s, now: time.Now}
}

// MoodInput carries one day's mood payload. Sleep and Physical default to 5
// when omitted.
type MoodInput struct {
	Mood     string
	Reason   string
	Sleep    *int
	Physical *int
}

// LogToday records the mood for the current UTC day. If an entry already
// exists for (user, today) its mutable fields are overwritten in a single
// atomic store upsert; the original creation timestamp is preserved.
func (s *MoodService) LogToday(ctx context.Context, userID string, in MoodInput) (*model.MoodEntry, error) {
	now := s.now().UTC()
	dayStart, dayEnd := dayWindow(now)

	e := &model.MoodEntry{
		UserID:    userID,
		Mood:      in.Mood,
		Reason:    in.Reason,
		Sleep:     defaultScore,
		Physical:  defaultScore,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Sleep != nil {
		e.Sleep = *in.Sleep
	}
	if in.Physical != nil {
		e.Physical = *in.Physical
	}
	return s.store.Moods().UpsertDaily(ctx, e, dayStart, dayEnd)
}

// History returns the user's full mood history, newest first.
func (s *MoodService) History(ctx context.Context, userID string) ([]*model.MoodEntry, error) {
	return s.store.Moods().ListByUser(ctx, userID)
}
