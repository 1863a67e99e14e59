// Package storetest provides an in-memory store.Store and a compliance
// suite shared by all store implementations.
package storetest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wellnest/wellnest-server/internal/model"
	"github.com/wellnest/wellnest-server/internal/store"
)

// NewMemory returns a store.Store backed by process memory. It honors the
// same contracts as the mongo implementation (unique email, atomic daily
// upsert, half-open range queries) and is safe for concurrent use.
func NewMemory() store.Store { return &memoryStore{} }

type memoryStore struct {
	mu        sync.Mutex
	users     []*model.User
	moods     []*model.MoodEntry
	health    []*model.HealthEntry
	reminders []*model.Reminder
}

func (s *memoryStore) Users() store.Users         { return &memUsers{s} }
func (s *memoryStore) Moods() store.Moods         { return &memMoods{s} }
func (s *memoryStore) Health() store.Health       { return &memHealth{s} }
func (s *memoryStore) Reminders() store.Reminders { return &memReminders{s} }

func (s *memoryStore) Ping(ctx context.Context) error { return nil }

// --- Users ---

type memUsers struct{ p *memoryStore }

func (u *memUsers) Create(ctx context.Context, m *model.User) (*model.User, error) {
	u.p.mu.Lock()
	defer u.p.mu.Unlock()
	for _, ex := range u.p.users {
		if strings.EqualFold(ex.Email, m.Email) || ex.UserID == m.UserID {
			return nil, model.ErrDuplicateEmail
		}
	}
	out := *m
	if out.UserID == "" {
		out.UserID = uuid.New().String()
	}
	now := time.Now().UTC()
	out.CreatedAt = now
	out.UpdatedAt = now
	if out.WellnessGoals == nil {
		out.WellnessGoals = []string{}
	}
	u.p.users = append(u.p.users, &out)
	cp := out
	return &cp, nil
}

func (u *memUsers) GetByID(ctx context.Context, userID string) (*model.User, error) {
	u.p.mu.Lock()
	defer u.p.mu.Unlock()
	for _, ex := range u.p.users {
		if ex.UserID == userID {
			cp := *ex
			return &cp, nil
		}
	}
	return nil, model.ErrNotFound
}

func (u *memUsers) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	u.p.mu.Lock()
	defer u.p.mu.Unlock()
	for _, ex := range u.p.users {
		if ex.Email == email {
			cp := *ex
			return &cp, nil
		}
	}
	return nil, model.ErrNotFound
}

func (u *memUsers) Update(ctx context.Context, userID string, upd model.UserUpdate) (*model.User, error) {
	u.p.mu.Lock()
	defer u.p.mu.Unlock()
	for _, ex := range u.p.users {
		if ex.UserID != userID {
			continue
		}
		if upd.Name != nil {
			ex.Name = *upd.Name
		}
		if upd.Sport != nil {
			ex.Sport = upd.Sport
		}
		if upd.Age != nil {
			ex.Age = upd.Age
		}
		if upd.Gender != nil {
			ex.Gender = upd.Gender
		}
		if upd.HeightCm != nil {
			ex.HeightCm = upd.HeightCm
		}
		if upd.WeightKg != nil {
			ex.WeightKg = upd.WeightKg
		}
		if upd.WellnessGoals != nil {
			ex.WellnessGoals = *upd.WellnessGoals
		}
		ex.UpdatedAt = time.Now().UTC()
		cp := *ex
		return &cp, nil
	}
	return nil, model.ErrNotFound
}

// --- Moods ---

type memMoods struct{ p *memoryStore }

func (m *memMoods) UpsertDaily(ctx context.Context, e *model.MoodEntry, dayStart, dayEnd time.Time) (*model.MoodEntry, error) {
	m.p.mu.Lock()
	defer m.p.mu.Unlock()
	for _, ex := range m.p.moods {
		if ex.UserID != e.UserID {
			continue
		}
		if ex.CreatedAt.Before(dayStart) || !ex.CreatedAt.Before(dayEnd) {
			continue
		}
		ex.Mood = e.Mood
		ex.Reason = e.Reason
		ex.Sleep = e.Sleep
		ex.Physical = e.Physical
		ex.UpdatedAt = e.UpdatedAt
		cp := *ex
		return &cp, nil
	}
	out := *e
	out.EntryID = uuid.New().String()
	m.p.moods = append(m.p.moods, &out)
	cp := out
	return &cp, nil
}

func (m *memMoods) ListByUser(ctx context.Context, userID string) ([]*model.MoodEntry, error) {
	m.p.mu.Lock()
	defer m.p.mu.Unlock()
	var out []*model.MoodEntry
	for _, ex := range m.p.moods {
		if ex.UserID == userID {
			cp := *ex
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// --- Health ---

type memHealth struct{ p *memoryStore }

func (h *memHealth) UpsertDay(ctx context.Context, e *model.HealthEntry) (*model.HealthEntry, error) {
	h.p.mu.Lock()
	defer h.p.mu.Unlock()
	for _, ex := range h.p.health {
		if ex.UserID == e.UserID && ex.Day.Equal(e.Day) {
			ex.FatigueLevel = e.FatigueLevel
			ex.SleepHours = e.SleepHours
			ex.SleepQuality = e.SleepQuality
			ex.Stress = e.Stress
			cp := *ex
			return &cp, nil
		}
	}
	out := *e
	out.EntryID = uuid.New().String()
	h.p.health = append(h.p.health, &out)
	cp := out
	return &cp, nil
}

func (h *memHealth) ListRange(ctx context.Context, userID string, from, to time.Time) ([]*model.HealthEntry, error) {
	h.p.mu.Lock()
	defer h.p.mu.Unlock()
	var out []*model.HealthEntry
	for _, ex := range h.p.health {
		if ex.UserID != userID {
			continue
		}
		if ex.Day.Before(from) || !ex.Day.Before(to) {
			continue
		}
		cp := *ex
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out, nil
}

// --- Reminders ---

type memReminders struct{ p *memoryStore }

func (r *memReminders) Create(ctx context.Context, m *model.Reminder) (*model.Reminder, error) {
	r.p.mu.Lock()
	defer r.p.mu.Unlock()
	out := *m
	if out.ReminderID == "" {
		out.ReminderID = uuid.New().String()
	}
	now := time.Now().UTC()
	out.CreatedAt = now
	out.UpdatedAt = now
	if out.Days == nil {
		out.Days = []string{}
	}
	r.p.reminders = append(r.p.reminders, &out)
	cp := out
	return &cp, nil
}

func (r *memReminders) GetByID(ctx context.Context, reminderID string) (*model.Reminder, error) {
	r.p.mu.Lock()
	defer r.p.mu.Unlock()
	for _, ex := range r.p.reminders {
		if ex.ReminderID == reminderID {
			cp := *ex
			return &cp, nil
		}
	}
	return nil, model.ErrNotFound
}

func (r *memReminders) ListByUser(ctx context.Context, userID string) ([]*model.Reminder, error) {
	r.p.mu.Lock()
	defer r.p.mu.Unlock()
	var out []*model.Reminder
	for _, ex := range r.p.reminders {
		if ex.UserID == userID {
			cp := *ex
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time < out[j].Time })
	return out, nil
}

func (r *memReminders) Update(ctx context.Context, reminderID string, upd model.ReminderUpdate) (*model.Reminder, error) {
	r.p.mu.Lock()
	defer r.p.mu.Unlock()
	for _, ex := range r.p.reminders {
		if ex.ReminderID != reminderID {
			continue
		}
		if upd.Title != nil {
			ex.Title = *upd.Title
		}
		if upd.Time != nil {
			ex.Time = *upd.Time
		}
		if upd.Days != nil {
			ex.Days = *upd.Days
		}
		if upd.IsActive != nil {
			ex.IsActive = *upd.IsActive
		}
		ex.UpdatedAt = time.Now().UTC()
		cp := *ex
		return &cp, nil
	}
	return nil, model.ErrNotFound
}

func (r *memReminders) SetLastCompleted(ctx context.Context, reminderID string, t time.Time) (*model.Reminder, error) {
	r.p.mu.Lock()
	defer r.p.mu.Unlock()
	for _, ex := range r.p.reminders {
		if ex.ReminderID == reminderID {
			ts := t
			ex.LastCompleted = &ts
			ex.UpdatedAt = time.Now().UTC()
			cp := *ex
			return &cp, nil
		}
	}
	return nil, model.ErrNotFound
}

func (r *memReminders) Delete(ctx context.Context, reminderID string) error {
	r.p.mu.Lock()
	defer r.p.mu.Unlock()
	for i, ex := range r.p.reminders {
		if ex.ReminderID == reminderID {
			r.p.reminders = append(r.p.reminders[:i], r.p.reminders[i+1:]...)
			return nil
		}
	}
	return model.ErrNotFound
}
