package services

import (
	"context"
	"time"

	"github.com/wellnest/wellnest-server/internal/model"
	"github.com/wellnest/wellnest-server/internal/store"
)

// ReminderService manages reminders and enforces that only the owning
// identity may mutate one.
type ReminderService struct {
	store store.Store
	now   func() time.Time
}

func NewReminderService(s store.Store) *ReminderService {
	return &ReminderService{store: s, now: time.Now}
}

// ReminderInput carries the fields accepted when creating a reminder.
type ReminderInput struct {
	Title    string
	Time     string
	Days     []string
	IsActive *bool
}

func (s *ReminderService) List(ctx context.Context, userID string) ([]*model.Reminder, error) {
	return s.store.Reminders().ListByUser(ctx, userID)
}

func (s *ReminderService) Create(ctx context.Context, userID string, in ReminderInput) (*model.Reminder, error) {
	r := &model.Reminder{
		UserID:   userID,
		Title:    in.Title,
		Time:     in.Time,
		Days:     in.Days,
		IsActive: true,
	}
	if in.IsActive != nil {
		r.IsActive = *in.IsActive
	}
	return s.store.Reminders().Create(ctx, r)
}

// Update applies a partial update after the ownership check. Absent fields
// keep their prior values.
func (s *ReminderService) Update(ctx context.Context, userID, reminderID string, upd model.ReminderUpdate) (*model.Reminder, error) {
	if err := s.authorizeMutation(ctx, userID, reminderID); err != nil {
		return nil, err
	}
	return s.store.Reminders().Update(ctx, reminderID, upd)
}

// Complete stamps the reminder's last-completed time with now so the day of
// the most recent completion stays recoverable.
func (s *ReminderService) Complete(ctx context.Context, userID, reminderID string) (*model.Reminder, error) {
	if err := s.authorizeMutation(ctx, userID, reminderID); err != nil {
		return nil, err
	}
	return s.store.Reminders().SetLastCompleted(ctx, reminderID, s.now().UTC())
}

func (s *ReminderService) Delete(ctx context.Context, userID, reminderID string) error {
	if err := s.authorizeMutation(ctx, userID, reminderID); err != nil {
		return err
	}
	return s.store.Reminders().Delete(ctx, reminderID)
}

// authorizeMutation resolves the reminder before comparing owners: a missing
// resource is ErrNotFound, an existing one owned by someone else is
// ErrNotOwner.
func (s *ReminderService) authorizeMutation(ctx context.Context, userID, reminderID string) error {
	r, err := s.store.Reminders().GetByID(ctx, reminderID)
	if err != nil {
		return err
	}
	if r.UserID != userID {
		return model.ErrNotOwner
	}
	return nil
}
