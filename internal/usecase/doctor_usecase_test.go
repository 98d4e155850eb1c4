package usecase

import (
	"testing"

	"hospital-management-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAvailabilitySlotsEmptyDay(t *testing.T) {
	slots := buildAvailabilitySlots(nil)

	require.Len(t, slots, (workdayEndHour-workdayStartHour)*60/slotMinutes)
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "09:30", slots[0].EndTime)
	assert.Equal(t, "16:30", slots[len(slots)-1].StartTime)
	assert.Equal(t, "17:00", slots[len(slots)-1].EndTime)

	for _, s := range slots {
		assert.True(t, s.Available, s.StartTime)
	}
}

func TestBuildAvailabilitySlotsMarksBusy(t *testing.T) {
	appointments := []entity.Appointment{
		{AppointmentTime: "10:00:00", DurationMinutes: 30},
		{AppointmentTime: "14:00", DurationMinutes: 60},
	}

	slots := buildAvailabilitySlots(appointments)

	byStart := map[string]bool{}
	for _, s := range slots {
		byStart[s.StartTime] = s.Available
	}

	assert.False(t, byStart["10:00"])
	assert.True(t, byStart["10:30"])
	assert.False(t, byStart["14:00"])
	assert.False(t, byStart["14:30"])
	assert.True(t, byStart["15:00"])
}

func TestBuildAvailabilitySlotsLongAppointmentOverlap(t *testing.T) {
	// 45 minutes starting mid-slot blocks both slots it touches
	appointments := []entity.Appointment{
		{AppointmentTime: "09:15", DurationMinutes: 45},
	}

	slots := buildAvailabilitySlots(appointments)

	assert.False(t, slots[0].Available)
	assert.False(t, slots[1].Available)
	assert.True(t, slots[2].Available)
}

func TestClockToMinutes(t *testing.T) {
	assert.Equal(t, 9*60, clockToMinutes("09:00"))
	assert.Equal(t, 14*60+30, clockToMinutes("14:30:00"))
	assert.Equal(t, -1, clockToMinutes("bad"))
	assert.Equal(t, -1, clockToMinutes(""))
}

func TestMinutesToClock(t *testing.T) {
	assert.Equal(t, "09:00", minutesToClock(540))
	assert.Equal(t, "16:30", minutesToClock(990))
}
