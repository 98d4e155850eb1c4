package converter

import (
	"time"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appt *entity.Appointment) *dto.AppointmentResponse {
	if appt == nil {
		return nil
	}

	resp := &dto.AppointmentResponse{
		ID:                 appt.ID.String(),
		AppointmentCode:    appt.AppointmentCode,
		PatientID:          appt.PatientID.String(),
		DoctorID:           appt.DoctorID.String(),
		DepartmentID:       appt.DepartmentID,
		AppointmentDate:    appt.AppointmentDate.Format("2006-01-02"),
		AppointmentTime:    normalizeClock(appt.AppointmentTime),
		EndTime:            appt.EndTime(),
		DurationMinutes:    appt.DurationMinutes,
		Type:               string(appt.Type),
		Priority:           string(appt.Priority),
		Status:             string(appt.Status),
		ChiefComplaint:     appt.ChiefComplaint,
		Symptoms:           appt.Symptoms,
		Notes:              appt.Notes,
		CancellationReason: appt.CancellationReason,
		ReminderSent:       appt.ReminderSent,
		CreatedAt:          appt.CreatedAt.Format(time.RFC3339),
	}
	if appt.CancelledAt != nil {
		resp.CancelledAt = appt.CancelledAt.Format(time.RFC3339)
	}
	if appt.Patient.User.FullName != "" {
		resp.PatientName = appt.Patient.User.FullName
	}
	if appt.Doctor.User.FullName != "" {
		resp.DoctorName = appt.Doctor.User.FullName
	}
	if appt.Department != nil {
		resp.DepartmentName = appt.Department.Name
	}
	return resp
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appts []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appts))
	for i := range appts {
		responses[i] = *AppointmentToResponse(&appts[i])
	}
	return responses
}

// normalizeClock trims a postgres time column value to HH:MM.
func normalizeClock(t string) string {
	if len(t) >= 5 {
		return t[:5]
	}
	return t
}
