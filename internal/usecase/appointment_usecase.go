package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/internal/service"
	"hospital-management-api/pkg/query"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrSlotTaken            = errors.New("the requested slot is already booked")
	ErrDoctorNotAccepting   = errors.New("doctor is not accepting patients")
	ErrPastAppointment      = errors.New("appointment date and time must be in the future")
	ErrOutsideWorkingHours  = errors.New("appointment time is outside working hours")
	ErrInvalidTransition    = errors.New("invalid appointment status transition")
	ErrNotCancellable       = errors.New("appointment can no longer be cancelled")
	ErrPatientIDRequired    = errors.New("patient_id is required")
	ErrAppointmentImmutable = errors.New("appointment can no longer be modified")
)

type AppointmentUsecase interface {
	Create(ctx context.Context, actorID uuid.UUID, actorRole string, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	List(ctx context.Context, actorID uuid.UUID, actorRole string, filter *entity.AppointmentFilter, params query.Params) ([]dto.AppointmentResponse, int64, error)
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*dto.AppointmentResponse, error)
	Update(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID, req *dto.CancelAppointmentRequest) (*dto.AppointmentResponse, error)
	Today(ctx context.Context, actorID uuid.UUID, actorRole string, params query.Params) ([]dto.AppointmentResponse, int64, error)
	Calendar(ctx context.Context, actorID uuid.UUID, actorRole string, year, month int) (*dto.CalendarResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorProfileRepository
	patientRepo     repository.PatientProfileRepository
	capacityService *service.CapacityService
	auditService    service.AuditService
	now             func() time.Time
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorProfileRepository,
	patientRepo repository.PatientProfileRepository,
	capacityService *service.CapacityService,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		capacityService: capacityService,
		auditService:    auditService,
		now:             time.Now,
	}
}

func (u *appointmentUsecase) Create(ctx context.Context, actorID uuid.UUID, actorRole string, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = slotMinutes
	}
	if err := validateSlotTiming(date, req.AppointmentTime, duration, u.now().UTC()); err != nil {
		return nil, err
	}

	// Patients always book for themselves; staff must name a patient.
	patientID := actorID
	if !entity.RoleMatches(actorRole, entity.RolePatient) {
		if req.PatientID == "" {
			return nil, ErrPatientIDRequired
		}
		patientID, err = uuid.Parse(req.PatientID)
		if err != nil {
			return nil, ErrPatientNotFound
		}
	}

	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return nil, ErrDoctorNotFound
	}

	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	if !doctor.IsAcceptingPatients {
		return nil, ErrDoctorNotAccepting
	}

	patient, err := u.patientRepo.FindByUserID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	conflict, err := u.appointmentRepo.FindConflict(u.db.WithContext(ctx), doctorID, date, req.AppointmentTime)
	if err != nil {
		u.log.Warnf("Failed conflict check: %+v", err)
		return nil, err
	}
	if conflict != nil {
		return nil, ErrSlotTaken
	}

	// Reserve a daily capacity slot before touching the database.
	if _, err := u.capacityService.ReserveSlot(ctx, doctorID, date, doctor.MaxPatientsPerDay); err != nil {
		if errors.Is(err, service.ErrCapacityFull) {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to reserve capacity: %+v", err)
		return nil, err
	}

	appointment := &entity.Appointment{
		AppointmentCode: generateEntityCode("APT", date),
		PatientID:       patientID,
		DoctorID:        doctorID,
		DepartmentID:    req.DepartmentID,
		AppointmentDate: date,
		AppointmentTime: req.AppointmentTime,
		DurationMinutes: duration,
		Type:            entity.AppointmentType(defaultString(req.Type, string(entity.AppointmentTypeConsultation))),
		Status:          entity.AppointmentStatusScheduled,
		Priority:        entity.AppointmentPriority(defaultString(req.Priority, string(entity.PriorityNormal))),
		ChiefComplaint:  req.ChiefComplaint,
		Symptoms:        req.Symptoms,
		Notes:           req.Notes,
		CreatedByID:     &actorID,
	}
	if appointment.DepartmentID == nil {
		appointment.DepartmentID = doctor.DepartmentID
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.releaseCapacity(ctx, doctorID, date)
		if isDuplicateKeyError(err, "doctor_slot") {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.auditService.Record(tx, &actorID, entity.AuditActionAppointmentCreate, entity.JSON{
		"appointment_code": appointment.AppointmentCode,
		"doctor_id":        doctorID.String(),
		"patient_id":       patientID.String(),
		"date":             req.AppointmentDate,
		"time":             req.AppointmentTime,
	})

	if err := tx.Commit().Error; err != nil {
		u.releaseCapacity(ctx, doctorID, date)
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	created, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointment.ID)
	if err != nil || created == nil {
		return converter.AppointmentToResponse(appointment), nil
	}
	return converter.AppointmentToResponse(created), nil
}

// List applies role scoping on top of the caller's filter: patients
// see their own appointments, doctors theirs, staff everything.
func (u *appointmentUsecase) List(ctx context.Context, actorID uuid.UUID, actorRole string, filter *entity.AppointmentFilter, params query.Params) ([]dto.AppointmentResponse, int64, error) {
	if filter == nil {
		filter = &entity.AppointmentFilter{}
	}
	scopeAppointmentFilter(filter, actorID, actorRole)
	filter.Search = params.Search

	appointments, total, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx), filter, params.Limit, params.Offset())
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, 0, err
	}
	return converter.AppointmentsToResponses(appointments), total, nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.findVisible(ctx, u.db.WithContext(ctx), actorID, actorRole, id)
	if err != nil {
		return nil, err
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Update(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.findVisible(ctx, tx, actorID, actorRole, id)
	if err != nil {
		return nil, err
	}
	if !appointment.IsActive() {
		return nil, ErrAppointmentImmutable
	}

	reschedule := false
	oldDate := appointment.AppointmentDate
	newDate := appointment.AppointmentDate
	newTime := appointment.AppointmentTime

	if req.AppointmentDate != "" {
		newDate, err = time.Parse("2006-01-02", req.AppointmentDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		reschedule = true
	}
	if req.AppointmentTime != "" {
		newTime = req.AppointmentTime
		reschedule = true
	}

	dateMoved := false
	if reschedule {
		duration := appointment.DurationMinutes
		if req.DurationMinutes != nil {
			duration = *req.DurationMinutes
		}
		if err := validateSlotTiming(newDate, newTime, duration, u.now().UTC()); err != nil {
			return nil, err
		}

		conflict, err := u.appointmentRepo.FindConflict(tx, appointment.DoctorID, newDate, newTime)
		if err != nil {
			u.log.Warnf("Failed conflict check: %+v", err)
			return nil, err
		}
		if conflict != nil && conflict.ID != appointment.ID {
			return nil, ErrSlotTaken
		}

		// Moving to another day consumes that day's capacity and
		// frees the old day's after commit.
		dateMoved = !newDate.Equal(oldDate)
		if dateMoved {
			doctor, err := u.doctorRepo.FindByUserID(tx, appointment.DoctorID)
			if err != nil {
				u.log.Warnf("Failed to find doctor: %+v", err)
				return nil, err
			}
			if doctor == nil {
				return nil, ErrDoctorNotFound
			}
			if _, err := u.capacityService.ReserveSlot(ctx, appointment.DoctorID, newDate, doctor.MaxPatientsPerDay); err != nil {
				if errors.Is(err, service.ErrCapacityFull) {
					return nil, ErrSlotTaken
				}
				u.log.Warnf("Failed to reserve capacity: %+v", err)
				return nil, err
			}
		}

		appointment.AppointmentDate = newDate
		appointment.AppointmentTime = newTime
	}

	if req.DurationMinutes != nil {
		appointment.DurationMinutes = *req.DurationMinutes
	}
	if req.Type != "" {
		appointment.Type = entity.AppointmentType(req.Type)
	}
	if req.Priority != "" {
		appointment.Priority = entity.AppointmentPriority(req.Priority)
	}
	if req.ChiefComplaint != "" {
		appointment.ChiefComplaint = req.ChiefComplaint
	}
	if req.Symptoms != "" {
		appointment.Symptoms = req.Symptoms
	}
	if req.Notes != "" {
		appointment.Notes = req.Notes
	}

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		if dateMoved {
			u.releaseCapacity(ctx, appointment.DoctorID, newDate)
		}
		if isDuplicateKeyError(err, "doctor_slot") {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		if dateMoved {
			u.releaseCapacity(ctx, appointment.DoctorID, newDate)
		}
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if dateMoved {
		u.releaseCapacity(ctx, appointment.DoctorID, oldDate)
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) UpdateStatus(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	// Patients cannot drive the clinical status machine.
	if entity.RoleMatches(actorRole, entity.RolePatient) {
		return nil, ErrForbidden
	}

	next := entity.AppointmentStatus(req.Status)
	if !entity.IsValidAppointmentStatus(req.Status) {
		return nil, ErrInvalidTransition
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.findVisible(ctx, tx, actorID, actorRole, id)
	if err != nil {
		return nil, err
	}

	if !appointment.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	wasActive := appointment.IsActive()
	previous := appointment.Status
	appointment.Status = next
	if req.Notes != "" {
		appointment.Notes = req.Notes
	}
	if next == entity.AppointmentStatusCancelled {
		now := u.now()
		appointment.CancelledAt = &now
		appointment.CancelledByID = &actorID
	}

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return nil, err
	}

	u.auditService.Record(tx, &actorID, entity.AuditActionAppointmentStatus, entity.JSON{
		"appointment_code": appointment.AppointmentCode,
		"from":             string(previous),
		"to":               string(next),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	// Leaving the active set frees the doctor's daily capacity.
	if wasActive && !appointment.IsActive() {
		u.releaseCapacity(ctx, appointment.DoctorID, appointment.AppointmentDate)
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Cancel(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID, req *dto.CancelAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.findVisible(ctx, tx, actorID, actorRole, id)
	if err != nil {
		return nil, err
	}
	if !appointment.CanBeCancelled(u.now()) {
		return nil, ErrNotCancellable
	}

	now := u.now()
	appointment.Status = entity.AppointmentStatusCancelled
	appointment.CancelledAt = &now
	appointment.CancelledByID = &actorID
	appointment.CancellationReason = req.Reason

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to cancel appointment: %+v", err)
		return nil, err
	}

	u.auditService.Record(tx, &actorID, entity.AuditActionAppointmentCancel, entity.JSON{
		"appointment_code": appointment.AppointmentCode,
		"reason":           req.Reason,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.releaseCapacity(ctx, appointment.DoctorID, appointment.AppointmentDate)

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Today(ctx context.Context, actorID uuid.UUID, actorRole string, params query.Params) ([]dto.AppointmentResponse, int64, error) {
	today := u.now().UTC().Format("2006-01-02")
	filter := &entity.AppointmentFilter{
		DateFrom: today,
		DateTo:   today,
	}
	scopeAppointmentFilter(filter, actorID, actorRole)
	appointments, total, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx), filter, params.Limit, params.Offset())
	if err != nil {
		u.log.Warnf("Failed to list today's appointments: %+v", err)
		return nil, 0, err
	}
	return converter.AppointmentsToResponses(appointments), total, nil
}

// Calendar returns the month's appointments grouped per day, scoped
// by role the same way List is.
func (u *appointmentUsecase) Calendar(ctx context.Context, actorID uuid.UUID, actorRole string, year, month int) (*dto.CalendarResponse, error) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	filter := &entity.AppointmentFilter{
		DateFrom: first.Format("2006-01-02"),
		DateTo:   last.Format("2006-01-02"),
	}
	scopeAppointmentFilter(filter, actorID, actorRole)

	appointments, _, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx), filter, calendarFetchLimit, 0)
	if err != nil {
		u.log.Warnf("Failed to load calendar: %+v", err)
		return nil, err
	}

	byDay := make(map[string][]dto.AppointmentResponse)
	for i := range appointments {
		key := appointments[i].AppointmentDate.Format("2006-01-02")
		byDay[key] = append(byDay[key], *converter.AppointmentToResponse(&appointments[i]))
	}

	resp := &dto.CalendarResponse{Year: year, Month: month}
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		if entries, ok := byDay[key]; ok {
			resp.Days = append(resp.Days, dto.CalendarDay{Date: key, Appointments: entries})
		}
	}
	return resp, nil
}

const calendarFetchLimit = 2000

// findVisible loads an appointment and enforces read scoping.
func (u *appointmentUsecase) findVisible(ctx context.Context, db *gorm.DB, actorID uuid.UUID, actorRole string, id uuid.UUID) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	switch {
	case entity.RoleMatches(actorRole, entity.RolePatient) && appointment.PatientID != actorID:
		return nil, ErrForbidden
	case entity.RoleMatches(actorRole, entity.RoleDoctor) && appointment.DoctorID != actorID:
		return nil, ErrForbidden
	}
	return appointment, nil
}

// validateSlotTiming checks the clock format, working hours and that
// the slot starts in the future. Shared by booking and rescheduling.
func validateSlotTiming(date time.Time, clock string, duration int, now time.Time) error {
	startMinutes := clockToMinutes(clock)
	if startMinutes < 0 {
		return ErrInvalidDateFormat
	}
	if startMinutes < workdayStartHour*60 || startMinutes+duration > workdayEndHour*60 {
		return ErrOutsideWorkingHours
	}
	startsAt := time.Date(date.Year(), date.Month(), date.Day(), startMinutes/60, startMinutes%60, 0, 0, time.UTC)
	if !startsAt.After(now) {
		return ErrPastAppointment
	}
	return nil
}

func scopeAppointmentFilter(filter *entity.AppointmentFilter, actorID uuid.UUID, actorRole string) {
	switch {
	case entity.RoleMatches(actorRole, entity.RolePatient):
		id := actorID
		filter.PatientID = &id
	case entity.RoleMatches(actorRole, entity.RoleDoctor):
		id := actorID
		filter.DoctorID = &id
	}
}

func (u *appointmentUsecase) releaseCapacity(ctx context.Context, doctorID uuid.UUID, date time.Time) {
	if err := u.capacityService.ReleaseSlot(ctx, doctorID, date); err != nil {
		u.log.Warnf("Failed to release capacity slot: %+v", err)
	}
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
