package repository

import (
	"errors"
	"time"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Patient.User").Preload("Doctor.User").Preload("Department").
		Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB, filter *entity.AppointmentFilter, limit, offset int) ([]entity.Appointment, int64, error) {
	var appointments []entity.Appointment
	var total int64

	query := db.Model(&entity.Appointment{})

	if filter != nil {
		if filter.PatientID != nil {
			query = query.Where("appointments.patient_id = ?", *filter.PatientID)
		}
		if filter.DoctorID != nil {
			query = query.Where("appointments.doctor_id = ?", *filter.DoctorID)
		}
		if filter.DepartmentID != nil {
			query = query.Where("appointments.department_id = ?", *filter.DepartmentID)
		}
		if filter.Status != "" {
			query = query.Where("appointments.status = ?", filter.Status)
		}
		if filter.Type != "" {
			query = query.Where("appointments.type = ?", filter.Type)
		}
		if filter.DateFrom != "" {
			query = query.Where("appointments.appointment_date >= ?", filter.DateFrom)
		}
		if filter.DateTo != "" {
			query = query.Where("appointments.appointment_date <= ?", filter.DateTo)
		}
		if filter.Search != "" {
			pattern := "%" + filter.Search + "%"
			query = query.
				Joins("JOIN patient_profiles ON patient_profiles.user_id = appointments.patient_id").
				Joins("JOIN users AS patient_users ON patient_users.id = patient_profiles.user_id").
				Joins("JOIN doctor_profiles ON doctor_profiles.user_id = appointments.doctor_id").
				Joins("JOIN users AS doctor_users ON doctor_users.id = doctor_profiles.user_id").
				Where(`appointments.appointment_code ILIKE ?
					OR appointments.chief_complaint ILIKE ?
					OR patient_users.full_name ILIKE ?
					OR doctor_users.full_name ILIKE ?`,
					pattern, pattern, pattern, pattern)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Patient.User").Preload("Doctor.User").Preload("Department").
		Order("appointment_date ASC, appointment_time ASC").
		Limit(limit).Offset(offset).
		Find(&appointments).Error
	if err != nil {
		return nil, 0, err
	}
	return appointments, total, nil
}

func (r *appointmentRepository) FindConflict(db *gorm.DB, doctorID uuid.UUID, date time.Time, timeOfDay string) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("doctor_id = ? AND appointment_date = ? AND appointment_time = ? AND status IN ?",
		doctorID, date.Format("2006-01-02"), timeOfDay, entity.ActiveAppointmentStatuses).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindActiveByDoctorAndDate(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("doctor_id = ? AND appointment_date = ? AND status IN ?",
		doctorID, date.Format("2006-01-02"), entity.ActiveAppointmentStatuses).
		Order("appointment_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) CountActiveByDoctorAndDate(db *gorm.DB, doctorID uuid.UUID, date time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("doctor_id = ? AND appointment_date = ? AND status IN ?",
			doctorID, date.Format("2006-01-02"), entity.ActiveAppointmentStatuses).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Patient", "Doctor", "Department").Save(appointment).Error
}

func (r *appointmentRepository) FindDueReminders(db *gorm.DB, from, to time.Time, limit int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Patient.User").Preload("Doctor.User").
		Where("reminder_sent = ? AND status IN ?", false, entity.ActiveAppointmentStatuses).
		Where("(appointment_date + appointment_time) BETWEEN ? AND ?", from, to).
		Order("appointment_date ASC, appointment_time ASC").
		Limit(limit).
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) MarkReminderSent(db *gorm.DB, id uuid.UUID, sentAt time.Time) error {
	return db.Model(&entity.Appointment{}).
		Where("id = ? AND reminder_sent = ?", id, false).
		Updates(map[string]interface{}{
			"reminder_sent":    true,
			"reminder_sent_at": sentAt,
		}).Error
}
