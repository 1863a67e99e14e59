package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wellnest/wellnest-server/internal/services"
)

func TestEmail(t *testing.T) {
	assert.NoError(t, Email("a@x.com"))
	assert.Error(t, Email(""))
	assert.Error(t, Email("not-an-email"))
	assert.Error(t, Email("a b@x.com"))
}

func TestRegister(t *testing.T) {
	assert.NoError(t, Register("A", "a@x.com", "secret1"))
	assert.Error(t, Register("", "a@x.com", "secret1"))
	assert.Error(t, Register("A", "bad", "secret1"))
	assert.Error(t, Register("A", "a@x.com", "short"))
}

func TestMood(t *testing.T) {
	assert.NoError(t, Mood("happy", nil, nil))
	assert.Error(t, Mood("", nil, nil))
	assert.Error(t, Mood("ecstatic", nil, nil))

	bad := 11
	ok := 10
	assert.Error(t, Mood("happy", &bad, nil))
	assert.Error(t, Mood("happy", nil, &bad))
	assert.NoError(t, Mood("happy", &ok, &ok))
}

func TestHealthMetrics(t *testing.T) {
	assert.NoError(t, HealthMetrics(services.HealthInput{FatigueLevel: 5, SleepHours: 7.5, SleepQuality: 8, Stress: 2}))
	assert.Error(t, HealthMetrics(services.HealthInput{FatigueLevel: 11, SleepHours: 7, SleepQuality: 8, Stress: 2}))
	assert.Error(t, HealthMetrics(services.HealthInput{FatigueLevel: 5, SleepHours: 25, SleepQuality: 8, Stress: 2}))
	assert.Error(t, HealthMetrics(services.HealthInput{FatigueLevel: 5, SleepHours: 7, SleepQuality: -1, Stress: 2}))
	assert.Error(t, HealthMetrics(services.HealthInput{FatigueLevel: 5, SleepHours: 7, SleepQuality: 8, Stress: 99}))
}

func TestYearMonth(t *testing.T) {
	assert.NoError(t, YearMonth(2025, 2))
	assert.Error(t, YearMonth(2025, 0))
	assert.Error(t, YearMonth(2025, 13))
	assert.Error(t, YearMonth(999, 5))
}

func TestReminder(t *testing.T) {
	assert.NoError(t, Reminder("stretch", "18:30", nil))
	assert.NoError(t, Reminder("stretch", "08:00", []string{"mon", "fri"}))
	assert.Error(t, Reminder("", "18:30", nil))
	assert.Error(t, Reminder("stretch", "25:00", nil))
	assert.Error(t, Reminder("stretch", "8:00", nil))
	assert.Error(t, Reminder("stretch", "18:30", []string{"monday"}))
}
