package repository

import (
	"time"

	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindAll(db *gorm.DB, filter *entity.AppointmentFilter, limit, offset int) ([]entity.Appointment, int64, error)
	// FindConflict returns an active appointment occupying the same
	// doctor+date+time slot, nil when the slot is free.
	FindConflict(db *gorm.DB, doctorID uuid.UUID, date time.Time, timeOfDay string) (*entity.Appointment, error)
	// FindActiveByDoctorAndDate lists active appointments for a doctor
	// on a given date, ordered by time. Used by availability.
	FindActiveByDoctorAndDate(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]entity.Appointment, error)
	CountActiveByDoctorAndDate(db *gorm.DB, doctorID uuid.UUID, date time.Time) (int64, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	// FindDueReminders returns active appointments starting inside the
	// window whose reminder has not been sent yet.
	FindDueReminders(db *gorm.DB, from, to time.Time, limit int) ([]entity.Appointment, error)
	MarkReminderSent(db *gorm.DB, id uuid.UUID, sentAt time.Time) error
}
