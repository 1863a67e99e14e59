package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/wellnest/wellnest-server/internal/model"
	"github.com/wellnest/wellnest-server/internal/store"
)

// Run exercises a compliance suite against a store.Store implementation.
// Implementations should provide a clean, isolated store from makeStore.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	userID := "u-" + uuid.New().String()
	email := userID + "@example.test"

	// Users
	u, err := s.Users().Create(ctx, &model.User{UserID: userID, Email: email, Name: "Test User", PasswordHash: "$2a$10$x"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if u.CreatedAt.IsZero() {
		t.Fatalf("CreateUser: zero creation time")
	}
	if got, err := s.Users().GetByID(ctx, userID); err != nil || got.Email != email {
		t.Fatalf("GetByID: got=%v err=%v", got, err)
	}
	if got, err := s.Users().GetByEmail(ctx, email); err != nil || got.UserID != userID {
		t.Fatalf("GetByEmail: got=%v err=%v", got, err)
	}
	if _, err := s.Users().Create(ctx, &model.User{Email: email, Name: "Dup", PasswordHash: "$2a$10$x"}); !errors.Is(err, model.ErrDuplicateEmail) {
		t.Fatalf("duplicate email: expected ErrDuplicateEmail, got %v", err)
	}
	if _, err := s.Users().GetByID(ctx, "no-such-user"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("GetByID missing: expected ErrNotFound, got %v", err)
	}
	sport := "running"
	if got, err := s.Users().Update(ctx, userID, model.UserUpdate{Sport: &sport}); err != nil || got.Sport == nil || *got.Sport != "running" {
		t.Fatalf("UpdateUser: got=%v err=%v", got, err)
	} else if got.Name != "Test User" {
		t.Fatalf("UpdateUser: untouched field changed: %q", got.Name)
	}

	// Moods: repeated same-day upserts collapse to one record keeping the
	// first creation time, and a different day yields a second record.
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	next := day.Add(24 * time.Hour)
	first := &model.MoodEntry{UserID: userID, Mood: "happy", Reason: "sun", Sleep: 5, Physical: 5, CreatedAt: day.Add(9 * time.Hour), UpdatedAt: day.Add(9 * time.Hour)}
	m1, err := s.Moods().UpsertDaily(ctx, first, day, next)
	if err != nil {
		t.Fatalf("UpsertDaily insert: %v", err)
	}
	second := &model.MoodEntry{UserID: userID, Mood: "sad", Reason: "rain", Sleep: 7, Physical: 4, CreatedAt: day.Add(20 * time.Hour), UpdatedAt: day.Add(20 * time.Hour)}
	m2, err := s.Moods().UpsertDaily(ctx, second, day, next)
	if err != nil {
		t.Fatalf("UpsertDaily overwrite: %v", err)
	}
	if m2.EntryID != m1.EntryID {
		t.Fatalf("same-day upsert created a second record: %s vs %s", m1.EntryID, m2.EntryID)
	}
	if m2.Mood != "sad" || m2.Reason != "rain" {
		t.Fatalf("overwrite lost payload: %+v", m2)
	}
	if !m2.CreatedAt.Equal(m1.CreatedAt) {
		t.Fatalf("overwrite moved creation time: %v vs %v", m2.CreatedAt, m1.CreatedAt)
	}
	other := &model.MoodEntry{UserID: userID, Mood: "neutral", Sleep: 5, Physical: 5, CreatedAt: next.Add(8 * time.Hour), UpdatedAt: next.Add(8 * time.Hour)}
	if _, err := s.Moods().UpsertDaily(ctx, other, next, next.Add(24*time.Hour)); err != nil {
		t.Fatalf("UpsertDaily day2: %v", err)
	}
	hist, err := s.Moods().ListByUser(ctx, userID)
	if err != nil || len(hist) != 2 {
		t.Fatalf("ListByUser: n=%d err=%v", len(hist), err)
	}
	if !hist[0].CreatedAt.After(hist[1].CreatedAt) {
		t.Fatalf("ListByUser: not newest first: %v then %v", hist[0].CreatedAt, hist[1].CreatedAt)
	}

	// Health: one record per (user, day); range query is half-open.
	d1 := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)
	h1 := &model.HealthEntry{UserID: userID, FatigueLevel: 3, SleepHours: 7, SleepQuality: 8, Stress: 2, Day: d1}
	if _, err := s.Health().UpsertDay(ctx, h1); err != nil {
		t.Fatalf("UpsertDay insert: %v", err)
	}
	h1b := &model.HealthEntry{UserID: userID, FatigueLevel: 9, SleepHours: 4, SleepQuality: 2, Stress: 8, Day: d1}
	got, err := s.Health().UpsertDay(ctx, h1b)
	if err != nil {
		t.Fatalf("UpsertDay overwrite: %v", err)
	}
	if got.FatigueLevel != 9 || got.Stress != 8 {
		t.Fatalf("UpsertDay overwrite lost values: %+v", got)
	}
	d2 := d1.Add(24 * time.Hour)
	if _, err := s.Health().UpsertDay(ctx, &model.HealthEntry{UserID: userID, FatigueLevel: 1, SleepHours: 8, SleepQuality: 9, Stress: 1, Day: d2}); err != nil {
		t.Fatalf("UpsertDay day2: %v", err)
	}
	recs, err := s.Health().ListRange(ctx, userID, d1, d2)
	if err != nil || len(recs) != 1 {
		t.Fatalf("ListRange half-open: n=%d err=%v", len(recs), err)
	}
	if recs[0].FatigueLevel != 9 {
		t.Fatalf("ListRange returned stale values: %+v", recs[0])
	}
	recs, err = s.Health().ListRange(ctx, userID, d1, d2.Add(24*time.Hour))
	if err != nil || len(recs) != 2 {
		t.Fatalf("ListRange full: n=%d err=%v", len(recs), err)
	}
	if !recs[0].Day.Before(recs[1].Day) {
		t.Fatalf("ListRange: not ordered by day")
	}

	// Reminders
	rem, err := s.Reminders().Create(ctx, &model.Reminder{UserID: userID, Title: "stretch", Time: "18:30", IsActive: true})
	if err != nil || rem.ReminderID == "" {
		t.Fatalf("CreateReminder: got=%v err=%v", rem, err)
	}
	if _, err := s.Reminders().Create(ctx, &model.Reminder{UserID: userID, Title: "hydrate", Time: "08:00", Days: []string{"mon", "wed"}, IsActive: true}); err != nil {
		t.Fatalf("CreateReminder 2: %v", err)
	}
	lst, err := s.Reminders().ListByUser(ctx, userID)
	if err != nil || len(lst) != 2 {
		t.Fatalf("ListReminders: n=%d err=%v", len(lst), err)
	}
	if lst[0].Time != "08:00" {
		t.Fatalf("ListReminders: not ordered by time: %v", lst[0].Time)
	}
	title := "stretch more"
	upd, err := s.Reminders().Update(ctx, rem.ReminderID, model.ReminderUpdate{Title: &title})
	if err != nil || upd.Title != "stretch more" {
		t.Fatalf("UpdateReminder: got=%v err=%v", upd, err)
	}
	if upd.Time != "18:30" {
		t.Fatalf("UpdateReminder: absent field changed: %q", upd.Time)
	}
	done := time.Now().UTC().Truncate(time.Millisecond)
	comp, err := s.Reminders().SetLastCompleted(ctx, rem.ReminderID, done)
	if err != nil || comp.LastCompleted == nil || !comp.LastCompleted.Equal(done) {
		t.Fatalf("SetLastCompleted: got=%v err=%v", comp, err)
	}
	if err := s.Reminders().Delete(ctx, rem.ReminderID); err != nil {
		t.Fatalf("DeleteReminder: %v", err)
	}
	if err := s.Reminders().Delete(ctx, rem.ReminderID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("DeleteReminder twice: expected ErrNotFound, got %v", err)
	}
	if _, err := s.Reminders().GetByID(ctx, rem.ReminderID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("GetByID after delete: expected ErrNotFound, got %v", err)
	}

	// Ping
	if err := s.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}
