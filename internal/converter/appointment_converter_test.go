package converter

import (
	"testing"
	"time"

	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentToResponse(t *testing.T) {
	patientID := uuid.New()
	doctorID := uuid.New()

	appt := &entity.Appointment{
		ID:              uuid.New(),
		AppointmentCode: "APT-20260310-1A2B3C",
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "10:30:00",
		DurationMinutes: 30,
		Type:            entity.AppointmentTypeConsultation,
		Status:          entity.AppointmentStatusScheduled,
		Priority:        entity.PriorityNormal,
		ChiefComplaint:  "Recurring headaches",
	}

	resp := AppointmentToResponse(appt)
	require.NotNil(t, resp)

	assert.Equal(t, "APT-20260310-1A2B3C", resp.AppointmentCode)
	assert.Equal(t, patientID.String(), resp.PatientID)
	assert.Equal(t, doctorID.String(), resp.DoctorID)
	assert.Equal(t, "2026-03-10", resp.AppointmentDate)
	assert.Equal(t, "10:30", resp.AppointmentTime)
	assert.Equal(t, "11:00", resp.EndTime)
	assert.Equal(t, "scheduled", resp.Status)
	assert.Equal(t, "consultation", resp.Type)
}

func TestAppointmentToResponseNil(t *testing.T) {
	assert.Nil(t, AppointmentToResponse(nil))
}

func TestNormalizeClock(t *testing.T) {
	assert.Equal(t, "09:00", normalizeClock("09:00:00"))
	assert.Equal(t, "14:30", normalizeClock("14:30"))
	assert.Equal(t, "", normalizeClock(""))
}
