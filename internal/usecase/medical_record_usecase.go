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
	ErrMedicalRecordNotFound = errors.New("medical record not found")
	ErrInvalidRecordType     = errors.New("invalid medical record type")
)

type MedicalRecordUsecase interface {
	Create(ctx context.Context, actorID uuid.UUID, actorRole string, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*dto.MedicalRecordResponse, error)
	ListByPatient(ctx context.Context, actorID uuid.UUID, actorRole string, patientID uuid.UUID, recordType string, params query.Params) ([]dto.MedicalRecordResponse, int64, error)
	Update(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	Delete(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) error
}

type medicalRecordUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	recordRepo   repository.MedicalRecordRepository
	patientRepo  repository.PatientProfileRepository
	auditService service.AuditService
}

func NewMedicalRecordUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	recordRepo repository.MedicalRecordRepository,
	patientRepo repository.PatientProfileRepository,
	auditService service.AuditService,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		db:           db,
		log:          log,
		recordRepo:   recordRepo,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

func (u *medicalRecordUsecase) Create(ctx context.Context, actorID uuid.UUID, actorRole string, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return nil, ErrPatientNotFound
	}

	recordType := entity.MedicalRecordType(req.RecordType)
	if req.RecordType == "" {
		recordType = entity.RecordTypeConsultation
	} else if !entity.IsValidRecordType(req.RecordType) {
		return nil, ErrInvalidRecordType
	}

	visitDate := time.Now().UTC()
	if req.VisitDate != "" {
		visitDate, err = time.Parse("2006-01-02", req.VisitDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByUserID(tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	// Only doctors are recorded as the authoring physician; admin
	// entries carry no doctor reference.
	var authorDoctorID *uuid.UUID
	if entity.RoleMatches(actorRole, entity.RoleDoctor) {
		id := actorID
		authorDoctorID = &id
	}

	record := &entity.MedicalRecord{
		RecordCode:       generateEntityCode("MR", visitDate),
		PatientID:        patientID,
		DoctorID:         authorDoctorID,
		RecordType:       recordType,
		Title:            req.Title,
		Description:      req.Description,
		Symptoms:         req.Symptoms,
		Diagnosis:        req.Diagnosis,
		TreatmentPlan:    req.TreatmentPlan,
		Medications:      req.Medications,
		FollowUp:         req.FollowUp,
		IsConfidential:   req.IsConfidential,
		VisitDate:        visitDate,
		TemperatureC:     req.TemperatureC,
		SystolicBP:       req.SystolicBP,
		DiastolicBP:      req.DiastolicBP,
		HeartRate:        req.HeartRate,
		RespiratoryRate:  req.RespiratoryRate,
		OxygenSaturation: req.OxygenSaturation,
	}

	if err := u.recordRepo.Create(tx, record); err != nil {
		u.log.Warnf("Failed to create medical record: %+v", err)
		return nil, err
	}

	u.auditService.Record(tx, &actorID, entity.AuditActionMedicalRecordWrite, entity.JSON{
		"record_code": record.RecordCode,
		"patient_id":  patientID.String(),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) GetByID(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*dto.MedicalRecordResponse, error) {
	record, err := u.findVisible(u.db.WithContext(ctx), actorID, actorRole, id)
	if err != nil {
		return nil, err
	}
	return converter.MedicalRecordToResponse(record), nil
}

// ListByPatient returns a patient's record history. Patients may only
// read their own and never see confidential entries; confidential
// entries are visible to doctors and admins.
func (u *medicalRecordUsecase) ListByPatient(ctx context.Context, actorID uuid.UUID, actorRole string, patientID uuid.UUID, recordType string, params query.Params) ([]dto.MedicalRecordResponse, int64, error) {
	if entity.RoleMatches(actorRole, entity.RolePatient) && actorID != patientID {
		return nil, 0, ErrForbidden
	}
	includeConfidential := entity.RoleMatches(actorRole, entity.RoleAdmin, entity.RoleDoctor)

	records, total, err := u.recordRepo.FindByPatientID(u.db.WithContext(ctx), patientID, recordType, includeConfidential, params.Limit, params.Offset())
	if err != nil {
		u.log.Warnf("Failed to list medical records: %+v", err)
		return nil, 0, err
	}
	return converter.MedicalRecordsToResponses(records), total, nil
}

func (u *medicalRecordUsecase) Update(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID, req *dto.UpdateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	record, err := u.findVisible(tx, actorID, actorRole, id)
	if err != nil {
		return nil, err
	}

	// Only the authoring doctor or an admin may edit.
	if !entity.RoleMatches(actorRole, entity.RoleAdmin) {
		if record.DoctorID == nil || *record.DoctorID != actorID {
			return nil, ErrForbidden
		}
	}

	if req.RecordType != "" {
		if !entity.IsValidRecordType(req.RecordType) {
			return nil, ErrInvalidRecordType
		}
		record.RecordType = entity.MedicalRecordType(req.RecordType)
	}
	if req.Title != "" {
		record.Title = req.Title
	}
	if req.Description != "" {
		record.Description = req.Description
	}
	if req.Symptoms != "" {
		record.Symptoms = req.Symptoms
	}
	if req.Diagnosis != "" {
		record.Diagnosis = req.Diagnosis
	}
	if req.TreatmentPlan != "" {
		record.TreatmentPlan = req.TreatmentPlan
	}
	if req.Medications != "" {
		record.Medications = req.Medications
	}
	if req.FollowUp != "" {
		record.FollowUp = req.FollowUp
	}
	if req.IsConfidential != nil {
		record.IsConfidential = *req.IsConfidential
	}
	if req.TemperatureC != nil {
		record.TemperatureC = req.TemperatureC
	}
	if req.SystolicBP != nil {
		record.SystolicBP = req.SystolicBP
	}
	if req.DiastolicBP != nil {
		record.DiastolicBP = req.DiastolicBP
	}
	if req.HeartRate != nil {
		record.HeartRate = req.HeartRate
	}
	if req.RespiratoryRate != nil {
		record.RespiratoryRate = req.RespiratoryRate
	}
	if req.OxygenSaturation != nil {
		record.OxygenSaturation = req.OxygenSaturation
	}

	if err := u.recordRepo.Update(tx, record); err != nil {
		u.log.Warnf("Failed to update medical record: %+v", err)
		return nil, err
	}

	u.auditService.Record(tx, &actorID, entity.AuditActionMedicalRecordWrite, entity.JSON{
		"record_code": record.RecordCode,
		"edit":        true,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.MedicalRecordToResponse(record), nil
}

func (u *medicalRecordUsecase) Delete(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) error {
	if !entity.RoleMatches(actorRole, entity.RoleAdmin) {
		return ErrForbidden
	}

	rows, err := u.recordRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete medical record: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrMedicalRecordNotFound
	}
	return nil
}

// findVisible loads a record and enforces read scoping: patients see
// their own non-confidential records, doctors and admins see all.
func (u *medicalRecordUsecase) findVisible(db *gorm.DB, actorID uuid.UUID, actorRole string, id uuid.UUID) (*entity.MedicalRecord, error) {
	record, err := u.recordRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find medical record: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrMedicalRecordNotFound
	}
	if entity.RoleMatches(actorRole, entity.RolePatient) {
		if record.PatientID != actorID || record.IsConfidential {
			return nil, ErrForbidden
		}
	}
	return record, nil
}
