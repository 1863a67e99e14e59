package model

import "time"

// User represents an account in the system. PasswordHash is persisted but
// never serialized into API responses.
type User struct {
	UserID        string     `json:"userId" bson:"userId"`
	Email         string     `json:"email" bson:"email"`
	Name          string     `json:"name" bson:"name"`
	PasswordHash  string     `json:"-" bson:"passwordHash"`
	Sport         *string    `json:"sport,omitempty" bson:"sport,omitempty"`
	Age           *int       `json:"age,omitempty" bson:"age,omitempty"`
	Gender        *string    `json:"gender,omitempty" bson:"gender,omitempty"`
	HeightCm      *float64   `json:"heightCm,omitempty" bson:"heightCm,omitempty"`
	WeightKg      *float64   `json:"weightKg,omitempty" bson:"weightKg,omitempty"`
	WellnessGoals []string   `json:"wellnessGoals" bson:"wellnessGoals"`
	CreatedAt     time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// UserUpdate carries the optional fields of a partial profile update.
// Nil means "leave unchanged". Email and password are not settable here.
type UserUpdate struct {
	Name          *string
	Sport         *string
	Age           *int
	Gender        *string
	HeightCm      *float64
	WeightKg      *float64
	WellnessGoals *[]string
}

// MoodEntry is a daily mood record. At most one exists per user per UTC
// calendar day; CreatedAt is the day key and is immutable after insert.
type MoodEntry struct {
	EntryID   string    `json:"entryId" bson:"entryId"`
	UserID    string    `json:"userId" bson:"userId"`
	Mood      string    `json:"mood" bson:"mood"`
	Reason    string    `json:"reason" bson:"reason"`
	Sleep     int       `json:"sleep" bson:"sleep"`
	Physical  int       `json:"physical" bson:"physical"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// HealthEntry is a daily health-metric record. Day is normalized to UTC
// midnight and, together with UserID, uniquely identifies the record.
type HealthEntry struct {
	EntryID      string    `json:"entryId" bson:"entryId"`
	UserID       string    `json:"userId" bson:"userId"`
	FatigueLevel int       `json:"fatigueLevel" bson:"fatigueLevel"`
	SleepHours   float64   `json:"sleepHours" bson:"sleepHours"`
	SleepQuality int       `json:"sleepQuality" bson:"sleepQuality"`
	Stress       int       `json:"stress" bson:"stress"`
	Day          time.Time `json:"day" bson:"day"`
}

// HealthMetrics is the mutable portion of a HealthEntry, used for the
// day-keyed month view.
type HealthMetrics struct {
	FatigueLevel int     `json:"fatigueLevel"`
	SleepHours   float64 `json:"sleepHours"`
	SleepQuality int     `json:"sleepQuality"`
	Stress       int     `json:"stress"`
}

// Reminder is a recurring or one-time reminder owned by a user. An empty
// Days slice means one-time. LastCompleted records the most recent
// check-off so the day of completion stays recoverable.
type Reminder struct {
	ReminderID    string     `json:"reminderId" bson:"reminderId"`
	UserID        string     `json:"userId" bson:"userId"`
	Title         string     `json:"title" bson:"title"`
	Time          string     `json:"time" bson:"time"`
	Days          []string   `json:"days" bson:"days"`
	IsActive      bool       `json:"isActive" bson:"isActive"`
	LastCompleted *time.Time `json:"lastCompleted" bson:"lastCompleted"`
	CreatedAt     time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// ReminderUpdate carries the optional fields of a partial reminder update.
// Nil means "keep the prior value".
type ReminderUpdate struct {
	Title    *string
	Time     *string
	Days     *[]string
	IsActive *bool
}
