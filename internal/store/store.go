package store

import (
	"context"
	"time"

	"github.com/wellnest/wellnest-server/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (e.g., mongo).
type Store interface {
	Users() Users
	Moods() Moods
	Health() Health
	Reminders() Reminders

	// Ping reports whether the backing database is reachable.
	Ping(ctx context.Context) error
}

type Users interface {
	// Create inserts a new user. A uniqueness violation on email surfaces
	// as model.ErrDuplicateEmail.
	Create(ctx context.Context, u *model.User) (*model.User, error)
	GetByID(ctx context.Context, userID string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// Update applies the non-nil fields of upd and returns the updated user.
	Update(ctx context.Context, userID string, upd model.UserUpdate) (*model.User, error)
}

type Moods interface {
	// UpsertDaily atomically overwrites the mutable fields of the entry
	// whose CreatedAt falls in [dayStart, dayEnd) for e.UserID, or inserts
	// e when no such entry exists. The stored CreatedAt is never modified
	// by an overwrite.
	UpsertDaily(ctx context.Context, e *model.MoodEntry, dayStart, dayEnd time.Time) (*model.MoodEntry, error)
	// ListByUser returns all entries for the user, newest first.
	ListByUser(ctx context.Context, userID string) ([]*model.MoodEntry, error)
}

type Health interface {
	// UpsertDay atomically overwrites the metrics of the entry keyed by
	// (e.UserID, e.Day), or inserts e when no such entry exists.
	UpsertDay(ctx context.Context, e *model.HealthEntry) (*model.HealthEntry, error)
	// ListRange returns entries with Day in [from, to), ordered by day.
	ListRange(ctx context.Context, userID string, from, to time.Time) ([]*model.HealthEntry, error)
}

type Reminders interface {
	Create(ctx context.Context, r *model.Reminder) (*model.Reminder, error)
	GetByID(ctx context.Context, reminderID string) (*model.Reminder, error)
	// ListByUser returns the user's reminders ordered by time-of-day.
	ListByUser(ctx context.Context, userID string) ([]*model.Reminder, error)
	// Update applies the non-nil fields of upd and returns the updated reminder.
	Update(ctx context.Context, reminderID string, upd model.ReminderUpdate) (*model.Reminder, error)
	// SetLastCompleted stamps the most recent completion time.
	SetLastCompleted(ctx context.Context, reminderID string, t time.Time) (*model.Reminder, error)
	Delete(ctx context.Context, reminderID string) error
}
