package dto

type CreateAppointmentRequest struct {
	PatientID       string `json:"patient_id" validate:"omitempty,uuid"`
	DoctorID        string `json:"doctor_id" validate:"required,uuid"`
	DepartmentID    *int   `json:"department_id" validate:"omitempty,min=1"`
	AppointmentDate string `json:"appointment_date" validate:"required,datetime=2006-01-02"`
	AppointmentTime string `json:"appointment_time" validate:"required,datetime=15:04"`
	DurationMinutes int    `json:"duration_minutes" validate:"omitempty,gte=5,lte=240"`
	Type            string `json:"type" validate:"omitempty,oneof=consultation follow_up checkup procedure surgery emergency telemedicine"`
	Priority        string `json:"priority" validate:"omitempty,oneof=low normal high urgent emergency"`
	ChiefComplaint  string `json:"chief_complaint" validate:"required,max=2000"`
	Symptoms        string `json:"symptoms" validate:"omitempty,max=2000"`
	Notes           string `json:"notes" validate:"omitempty,max=2000"`
}

type UpdateAppointmentRequest struct {
	AppointmentDate string `json:"appointment_date" validate:"omitempty,datetime=2006-01-02"`
	AppointmentTime string `json:"appointment_time" validate:"omitempty,datetime=15:04"`
	DurationMinutes *int   `json:"duration_minutes" validate:"omitempty,gte=5,lte=240"`
	Type            string `json:"type" validate:"omitempty,oneof=consultation follow_up checkup procedure surgery emergency telemedicine"`
	Priority        string `json:"priority" validate:"omitempty,oneof=low normal high urgent emergency"`
	ChiefComplaint  string `json:"chief_complaint" validate:"omitempty,max=2000"`
	Symptoms        string `json:"symptoms" validate:"omitempty,max=2000"`
	Notes           string `json:"notes" validate:"omitempty,max=2000"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled confirmed in_progress completed cancelled no_show rescheduled"`
	Notes  string `json:"notes" validate:"omitempty,max=2000"`
}

type CancelAppointmentRequest struct {
	Reason string `json:"reason" validate:"required,min=3,max=500"`
}

type AppointmentResponse struct {
	ID                 string `json:"id"`
	AppointmentCode    string `json:"appointment_code"`
	PatientID          string `json:"patient_id"`
	PatientName        string `json:"patient_name,omitempty"`
	DoctorID           string `json:"doctor_id"`
	DoctorName         string `json:"doctor_name,omitempty"`
	DepartmentID       *int   `json:"department_id,omitempty"`
	DepartmentName     string `json:"department_name,omitempty"`
	AppointmentDate    string `json:"appointment_date"`
	AppointmentTime    string `json:"appointment_time"`
	EndTime            string `json:"end_time"`
	DurationMinutes    int    `json:"duration_minutes"`
	Type               string `json:"type"`
	Priority           string `json:"priority"`
	Status             string `json:"status"`
	ChiefComplaint     string `json:"chief_complaint,omitempty"`
	Symptoms           string `json:"symptoms,omitempty"`
	Notes              string `json:"notes,omitempty"`
	CancelledAt        string `json:"cancelled_at,omitempty"`
	CancellationReason string `json:"cancellation_reason,omitempty"`
	ReminderSent       bool   `json:"reminder_sent"`
	CreatedAt          string `json:"created_at"`
}

// CalendarDay groups a day's appointments for the calendar view.
type CalendarDay struct {
	Date         string                `json:"date"`
	Appointments []AppointmentResponse `json:"appointments"`
}

type CalendarResponse struct {
	Year  int           `json:"year"`
	Month int           `json:"month"`
	Days  []CalendarDay `json:"days"`
}
