package validate

import (
	"fmt"
	"regexp"

	"github.com/wellnest/wellnest-server/internal/services"
)

var emailRx = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// timeOfDayRx matches "HH:MM" in 24-hour time, e.g. "08:00" or "18:30".
var timeOfDayRx = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// moodLabels is the closed set of accepted mood keywords.
var moodLabels = map[string]bool{
	"excited": true,
	"happy":   true,
	"neutral": true,
	"sad":     true,
	"angry":   true,
}

var weekdays = map[string]bool{
	"mon": true, "tue": true, "wed": true, "thu": true,
	"fri": true, "sat": true, "sun": true,
}

func Email(v string) error {
	if v == "" {
		return fmt.Errorf("email is required")
	}
	if len(v) > 320 || !emailRx.MatchString(v) {
		return fmt.Errorf("invalid email")
	}
	return nil
}

func NonEmpty(field, v string) error {
	if v == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

func intInRange(field string, v, lo, hi int) error {
	if v < lo || v > hi {
		return fmt.Errorf("%s must be between %d and %d", field, lo, hi)
	}
	return nil
}

// -------- Request specific helpers ----------

// Register validates input for creating a new account.
func Register(name, email, password string) error {
	if err := NonEmpty("name", name); err != nil {
		return err
	}
	if err := Email(email); err != nil {
		return err
	}
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	return nil
}

// Login validates that both credential fields are present.
func Login(email, password string) error {
	if err := NonEmpty("email", email); err != nil {
		return err
	}
	return NonEmpty("password", password)
}

// Mood validates a daily mood payload: enum membership plus optional 1-10
// scores.
func Mood(mood string, sleep, physical *int) error {
	if mood == "" {
		return fmt.Errorf("mood is required")
	}
	if !moodLabels[mood] {
		return fmt.Errorf("mood must be one of excited, happy, neutral, sad, angry")
	}
	if sleep != nil {
		if err := intInRange("sleep", *sleep, 1, 10); err != nil {
			return err
		}
	}
	if physical != nil {
		if err := intInRange("physical", *physical, 1, 10); err != nil {
			return err
		}
	}
	return nil
}

// HealthMetrics validates a daily health payload.
func HealthMetrics(in services.HealthInput) error {
	if err := intInRange("fatigueLevel", in.FatigueLevel, 0, 10); err != nil {
		return err
	}
	if in.SleepHours < 0 || in.SleepHours > 24 {
		return fmt.Errorf("sleepHours must be between 0 and 24")
	}
	if err := intInRange("sleepQuality", in.SleepQuality, 0, 10); err != nil {
		return err
	}
	return intInRange("stress", in.Stress, 0, 10)
}

// YearMonth validates a month-view query.
func YearMonth(year, month int) error {
	if year < 1970 || year > 9999 {
		return fmt.Errorf("year must be between 1970 and 9999")
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("month must be between 1 and 12")
	}
	return nil
}

// Reminder validates reminder create input: title and time are required,
// days (when present) must be weekday abbreviations.
func Reminder(title, timeOfDay string, days []string) error {
	if err := NonEmpty("title", title); err != nil {
		return err
	}
	if err := TimeOfDay(timeOfDay); err != nil {
		return err
	}
	return Weekdays(days)
}

// TimeOfDay validates an "HH:MM" string.
func TimeOfDay(v string) error {
	if v == "" {
		return fmt.Errorf("time is required")
	}
	if !timeOfDayRx.MatchString(v) {
		return fmt.Errorf("time must be HH:MM in 24-hour format")
	}
	return nil
}

// Weekdays validates a set of weekday abbreviations. Empty is allowed and
// means a one-time reminder.
func Weekdays(days []string) error {
	for _, d := range days {
		if !weekdays[d] {
			return fmt.Errorf("invalid weekday %q; expected mon..sun", d)
		}
	}
	return nil
}
