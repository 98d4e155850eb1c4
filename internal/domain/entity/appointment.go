package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled   AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed   AppointmentStatus = "confirmed"
	AppointmentStatusInProgress  AppointmentStatus = "in_progress"
	AppointmentStatusCompleted   AppointmentStatus = "completed"
	AppointmentStatusCancelled   AppointmentStatus = "cancelled"
	AppointmentStatusNoShow      AppointmentStatus = "no_show"
	AppointmentStatusRescheduled AppointmentStatus = "rescheduled"
)

// ActiveAppointmentStatuses are the statuses that occupy a slot.
var ActiveAppointmentStatuses = []AppointmentStatus{
	AppointmentStatusScheduled,
	AppointmentStatusConfirmed,
	AppointmentStatusInProgress,
}

// AppointmentType categorizes the visit
type AppointmentType string

const (
	AppointmentTypeConsultation AppointmentType = "consultation"
	AppointmentTypeFollowUp     AppointmentType = "follow_up"
	AppointmentTypeCheckup      AppointmentType = "checkup"
	AppointmentTypeProcedure    AppointmentType = "procedure"
	AppointmentTypeSurgery      AppointmentType = "surgery"
	AppointmentTypeEmergency    AppointmentType = "emergency"
	AppointmentTypeTelemedicine AppointmentType = "telemedicine"
)

// AppointmentPriority ranks urgency
type AppointmentPriority string

const (
	PriorityLow       AppointmentPriority = "low"
	PriorityNormal    AppointmentPriority = "normal"
	PriorityHigh      AppointmentPriority = "high"
	PriorityUrgent    AppointmentPriority = "urgent"
	PriorityEmergency AppointmentPriority = "emergency"
)

// Appointment represents a booked visit of a patient with a doctor
// at a concrete date and time slot.
type Appointment struct {
	ID              uuid.UUID           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	AppointmentCode string              `gorm:"type:varchar(30);uniqueIndex;not null" json:"appointment_code"`
	PatientID       uuid.UUID           `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID        uuid.UUID           `gorm:"type:uuid;not null;index" json:"doctor_id"`
	DepartmentID    *int                `gorm:"index" json:"department_id,omitempty"`
	AppointmentDate time.Time           `gorm:"type:date;not null;index" json:"appointment_date"`
	AppointmentTime string              `gorm:"type:time;not null" json:"appointment_time"`
	DurationMinutes int                 `gorm:"not null;default:30" json:"duration_minutes"`
	Type            AppointmentType     `gorm:"type:varchar(20);not null;default:'consultation'" json:"type"`
	Status          AppointmentStatus   `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	Priority        AppointmentPriority `gorm:"type:varchar(20);not null;default:'normal'" json:"priority"`
	ChiefComplaint  string              `gorm:"type:text;not null" json:"chief_complaint"`
	Symptoms        string              `gorm:"type:text" json:"symptoms,omitempty"`
	Notes           string              `gorm:"type:text" json:"notes,omitempty"`

	CreatedByID        *uuid.UUID `gorm:"type:uuid" json:"created_by_id,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CancelledByID      *uuid.UUID `gorm:"type:uuid" json:"cancelled_by_id,omitempty"`
	CancellationReason string     `gorm:"type:text" json:"cancellation_reason,omitempty"`

	ReminderSent   bool       `gorm:"not null;default:false;index" json:"reminder_sent"`
	ReminderSentAt *time.Time `json:"reminder_sent_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient    PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor     DoctorProfile  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Department *Department    `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// StartsAt combines the date and HH:MM time into a single instant in UTC.
func (a *Appointment) StartsAt() time.Time {
	clock := a.AppointmentTime
	if len(clock) > 5 {
		clock = clock[:5]
	}
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return a.AppointmentDate
	}
	d := a.AppointmentDate
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
}

// EndTime returns the HH:MM end of the visit.
func (a *Appointment) EndTime() string {
	return a.StartsAt().Add(time.Duration(a.DurationMinutes) * time.Minute).Format("15:04")
}

func (a *Appointment) IsActive() bool {
	for _, s := range ActiveAppointmentStatuses {
		if a.Status == s {
			return true
		}
	}
	return false
}

func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// CanBeCancelled reports whether cancellation is allowed: only
// scheduled or confirmed future appointments.
func (a *Appointment) CanBeCancelled(now time.Time) bool {
	if a.Status != AppointmentStatusScheduled && a.Status != AppointmentStatusConfirmed {
		return false
	}
	return a.StartsAt().After(now)
}

// terminal statuses admit no further transitions
func isTerminalStatus(s AppointmentStatus) bool {
	return s == AppointmentStatusCompleted || s == AppointmentStatusCancelled || s == AppointmentStatusNoShow
}

// CanTransitionTo validates a status change request.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	if isTerminalStatus(a.Status) {
		return false
	}
	switch next {
	case AppointmentStatusConfirmed:
		return a.Status == AppointmentStatusScheduled
	case AppointmentStatusInProgress:
		return a.Status == AppointmentStatusScheduled || a.Status == AppointmentStatusConfirmed
	case AppointmentStatusCompleted:
		return a.Status == AppointmentStatusInProgress
	case AppointmentStatusCancelled, AppointmentStatusNoShow, AppointmentStatusRescheduled:
		return a.Status == AppointmentStatusScheduled || a.Status == AppointmentStatusConfirmed || a.Status == AppointmentStatusInProgress
	default:
		return false
	}
}

func IsValidAppointmentStatus(s string) bool {
	switch AppointmentStatus(s) {
	case AppointmentStatusScheduled, AppointmentStatusConfirmed, AppointmentStatusInProgress,
		AppointmentStatusCompleted, AppointmentStatusCancelled, AppointmentStatusNoShow,
		AppointmentStatusRescheduled:
		return true
	}
	return false
}

// AppointmentFilter is a domain-level filter for querying appointments.
// Used by repository layer to avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	PatientID    *uuid.UUID
	DoctorID     *uuid.UUID
	DepartmentID *int
	Status       string
	Type         string
	DateFrom     string // Format: YYYY-MM-DD
	DateTo       string // Format: YYYY-MM-DD
	Search       string // matches code, complaint, patient or doctor name (ILIKE)
}
