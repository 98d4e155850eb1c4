package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateSlotTiming(t *testing.T) {
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		date     time.Time
		clock    string
		duration int
		want     error
	}{
		{"future slot in working hours", time.Date(2026, 6, 11, 0, 0, 0, 0, time.UTC), "10:00", 30, nil},
		{"later today", time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC), "14:00", 30, nil},
		{"earlier today", time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC), "09:00", 30, ErrPastAppointment},
		{"yesterday", time.Date(2026, 6, 9, 0, 0, 0, 0, time.UTC), "10:00", 30, ErrPastAppointment},
		{"exactly now", time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC), "12:00", 30, ErrPastAppointment},
		{"before opening", time.Date(2026, 6, 11, 0, 0, 0, 0, time.UTC), "08:30", 30, ErrOutsideWorkingHours},
		{"runs past closing", time.Date(2026, 6, 11, 0, 0, 0, 0, time.UTC), "16:45", 30, ErrOutsideWorkingHours},
		{"malformed clock", time.Date(2026, 6, 11, 0, 0, 0, 0, time.UTC), "25:99", 30, ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSlotTiming(tt.date, tt.clock, tt.duration, now)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}
