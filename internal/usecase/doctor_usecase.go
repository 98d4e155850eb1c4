package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrDoctorNotFound = errors.New("doctor not found")

// Working hours used for the availability grid.
const (
	workdayStartHour = 9
	workdayEndHour   = 17
	slotMinutes      = 30
)

type DoctorUsecase interface {
	List(ctx context.Context, filter repository.DoctorFilter) ([]dto.DoctorResponse, int64, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*dto.DoctorResponse, error)
	Update(ctx context.Context, actorID, userID uuid.UUID, actorRole string, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorResponse, error)
	// Availability returns the doctor's bookable slots on a date.
	Availability(ctx context.Context, userID uuid.UUID, date time.Time) (*dto.AvailabilityResponse, error)
}

type doctorUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	doctorRepo      repository.DoctorProfileRepository
	appointmentRepo repository.AppointmentRepository
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorProfileRepository,
	appointmentRepo repository.AppointmentRepository,
) DoctorUsecase {
	return &doctorUsecase{db: db, log: log, doctorRepo: doctorRepo, appointmentRepo: appointmentRepo}
}

func (u *doctorUsecase) List(ctx context.Context, filter repository.DoctorFilter) ([]dto.DoctorResponse, int64, error) {
	doctors, total, err := u.doctorRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, 0, err
	}
	return converter.DoctorsToResponses(doctors), total, nil
}

func (u *doctorUsecase) GetByUserID(ctx context.Context, userID uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(doctor), nil
}

// Update edits a doctor profile. Doctors may only edit their own.
func (u *doctorUsecase) Update(ctx context.Context, actorID, userID uuid.UUID, actorRole string, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorResponse, error) {
	if !entity.RoleMatches(actorRole, entity.RoleAdmin) && actorID != userID {
		return nil, ErrForbidden
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByUserID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if req.DepartmentID != nil {
		doctor.DepartmentID = req.DepartmentID
	}
	if req.Specialization != "" {
		doctor.Specialization = req.Specialization
	}
	if req.Biography != "" {
		doctor.Biography = req.Biography
	}
	if req.ConsultationFee != "" {
		fee, err := decimal.NewFromString(req.ConsultationFee)
		if err != nil || fee.IsNegative() {
			return nil, ErrInvalidAmount
		}
		doctor.ConsultationFee = fee
	}
	if req.YearsOfExperience != nil {
		doctor.YearsOfExperience = *req.YearsOfExperience
	}
	if req.MaxPatientsPerDay != nil {
		doctor.MaxPatientsPerDay = *req.MaxPatientsPerDay
	}
	if req.IsAcceptingPatients != nil {
		doctor.IsAcceptingPatients = *req.IsAcceptingPatients
	}
	if req.EmploymentStatus != "" {
		doctor.EmploymentStatus = entity.EmploymentStatus(req.EmploymentStatus)
	}

	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		if isForeignKeyError(err, "department") {
			return nil, ErrDepartmentNotFound
		}
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Availability(ctx context.Context, userID uuid.UUID, date time.Time) (*dto.AvailabilityResponse, error) {
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointments, err := u.appointmentRepo.FindActiveByDoctorAndDate(u.db.WithContext(ctx), userID, date)
	if err != nil {
		u.log.Warnf("Failed to load appointments: %+v", err)
		return nil, err
	}

	remaining := doctor.MaxPatientsPerDay - len(appointments)
	if remaining < 0 {
		remaining = 0
	}

	return &dto.AvailabilityResponse{
		DoctorID:            userID.String(),
		DoctorName:          doctor.User.FullName,
		Date:                date.Format("2006-01-02"),
		IsAcceptingPatients: doctor.IsAcceptingPatients,
		BookedCount:         len(appointments),
		RemainingCapacity:   remaining,
		Slots:               buildAvailabilitySlots(appointments),
	}, nil
}

// buildAvailabilitySlots lays a fixed 30-minute grid over working
// hours and marks slots overlapped by an active appointment as taken.
func buildAvailabilitySlots(appointments []entity.Appointment) []dto.AvailabilitySlot {
	type interval struct{ start, end int }
	busy := make([]interval, 0, len(appointments))
	for i := range appointments {
		a := &appointments[i]
		start := clockToMinutes(a.AppointmentTime)
		if start < 0 {
			continue
		}
		busy = append(busy, interval{start, start + a.DurationMinutes})
	}

	var slots []dto.AvailabilitySlot
	for m := workdayStartHour * 60; m < workdayEndHour*60; m += slotMinutes {
		available := true
		for _, b := range busy {
			if m < b.end && m+slotMinutes > b.start {
				available = false
				break
			}
		}
		slots = append(slots, dto.AvailabilitySlot{
			StartTime: minutesToClock(m),
			EndTime:   minutesToClock(m + slotMinutes),
			Available: available,
		})
	}
	return slots
}

// clockToMinutes parses HH:MM (tolerating HH:MM:SS) to minutes after
// midnight, -1 on malformed input.
func clockToMinutes(clock string) int {
	if len(clock) < 5 {
		return -1
	}
	t, err := time.Parse("15:04", clock[:5])
	if err != nil {
		return -1
	}
	return t.Hour()*60 + t.Minute()
}

func minutesToClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
