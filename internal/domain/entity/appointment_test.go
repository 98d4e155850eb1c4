package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{"scheduled to confirmed", AppointmentStatusScheduled, AppointmentStatusConfirmed, true},
		{"scheduled to in_progress", AppointmentStatusScheduled, AppointmentStatusInProgress, true},
		{"scheduled to completed", AppointmentStatusScheduled, AppointmentStatusCompleted, false},
		{"confirmed to in_progress", AppointmentStatusConfirmed, AppointmentStatusInProgress, true},
		{"confirmed to confirmed", AppointmentStatusConfirmed, AppointmentStatusConfirmed, false},
		{"in_progress to completed", AppointmentStatusInProgress, AppointmentStatusCompleted, true},
		{"in_progress to cancelled", AppointmentStatusInProgress, AppointmentStatusCancelled, true},
		{"in_progress to no_show", AppointmentStatusInProgress, AppointmentStatusNoShow, true},
		{"completed is terminal", AppointmentStatusCompleted, AppointmentStatusCancelled, false},
		{"cancelled is terminal", AppointmentStatusCancelled, AppointmentStatusScheduled, false},
		{"no_show is terminal", AppointmentStatusNoShow, AppointmentStatusConfirmed, false},
		{"scheduled to rescheduled", AppointmentStatusScheduled, AppointmentStatusRescheduled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{Status: tt.from}
			assert.Equal(t, tt.allowed, a.CanTransitionTo(tt.to))
		})
	}
}

func TestAppointmentCanBeCancelled(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	future := &Appointment{
		Status:          AppointmentStatusScheduled,
		AppointmentDate: time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "09:00",
	}
	assert.True(t, future.CanBeCancelled(now))

	future.Status = AppointmentStatusConfirmed
	assert.True(t, future.CanBeCancelled(now))

	future.Status = AppointmentStatusInProgress
	assert.False(t, future.CanBeCancelled(now))

	past := &Appointment{
		Status:          AppointmentStatusScheduled,
		AppointmentDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "09:00",
	}
	assert.False(t, past.CanBeCancelled(now))
}

func TestAppointmentStartsAtAndEndTime(t *testing.T) {
	a := &Appointment{
		AppointmentDate: time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "14:30:00",
		DurationMinutes: 45,
	}

	assert.Equal(t, time.Date(2026, 5, 20, 14, 30, 0, 0, time.UTC), a.StartsAt())
	assert.Equal(t, "15:15", a.EndTime())
}

func TestAppointmentStartsAtMalformedTime(t *testing.T) {
	date := time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)

	for _, clock := range []string{"", "9", "9:3", "not-a-time"} {
		a := &Appointment{AppointmentDate: date, AppointmentTime: clock}
		assert.Equal(t, date, a.StartsAt(), clock)
	}
}

func TestAppointmentIsActive(t *testing.T) {
	for _, s := range ActiveAppointmentStatuses {
		a := &Appointment{Status: s}
		assert.True(t, a.IsActive(), string(s))
	}

	a := &Appointment{Status: AppointmentStatusCompleted}
	assert.False(t, a.IsActive())
	a.Status = AppointmentStatusCancelled
	assert.False(t, a.IsActive())
}

func TestIsValidAppointmentStatus(t *testing.T) {
	assert.True(t, IsValidAppointmentStatus("scheduled"))
	assert.True(t, IsValidAppointmentStatus("no_show"))
	assert.False(t, IsValidAppointmentStatus("pending"))
	assert.False(t, IsValidAppointmentStatus(""))
}
