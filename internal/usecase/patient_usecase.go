package usecase

import (
	"context"
	"errors"

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

var ErrPatientNotFound = errors.New("patient not found")

type PatientUsecase interface {
	List(ctx context.Context, actorRole string, activeOnly bool, params query.Params) ([]dto.PatientResponse, int64, error)
	GetByUserID(ctx context.Context, actorID, userID uuid.UUID, actorRole string) (*dto.PatientResponse, error)
	Update(ctx context.Context, actorID, userID uuid.UUID, actorRole string, req *dto.UpdatePatientProfileRequest) (*dto.PatientResponse, error)
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientProfileRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientProfileRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{db: db, log: log, patientRepo: patientRepo, auditService: auditService}
}

// List returns the patient roster. Staff only: patients never see
// other patients' profiles.
func (u *patientUsecase) List(ctx context.Context, actorRole string, activeOnly bool, params query.Params) ([]dto.PatientResponse, int64, error) {
	if !entity.RoleMatches(actorRole, entity.RoleAdmin, entity.RoleReceptionist, entity.RoleDoctor, entity.RoleNurse) {
		return nil, 0, ErrForbidden
	}

	patients, total, err := u.patientRepo.FindAll(u.db.WithContext(ctx), params.SearchPattern(), activeOnly, params.Limit, params.Offset())
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, 0, err
	}
	return converter.PatientsToResponses(patients), total, nil
}

// GetByUserID returns a patient profile. Patients may only read their
// own; clinical and administrative staff may read any.
func (u *patientUsecase) GetByUserID(ctx context.Context, actorID, userID uuid.UUID, actorRole string) (*dto.PatientResponse, error) {
	if entity.RoleMatches(actorRole, entity.RolePatient) && actorID != userID {
		return nil, ErrForbidden
	}

	patient, err := u.patientRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Update(ctx context.Context, actorID, userID uuid.UUID, actorRole string, req *dto.UpdatePatientProfileRequest) (*dto.PatientResponse, error) {
	if entity.RoleMatches(actorRole, entity.RolePatient) && actorID != userID {
		return nil, ErrForbidden
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByUserID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if req.BloodType != "" {
		if !entity.IsValidBloodType(req.BloodType) {
			return nil, ErrInvalidBloodType
		}
		patient.BloodType = req.BloodType
	}
	if req.HeightMeters != nil {
		patient.HeightMeters = req.HeightMeters
	}
	if req.WeightKg != nil {
		patient.WeightKg = req.WeightKg
	}
	if req.Allergies != "" {
		patient.Allergies = req.Allergies
	}
	if req.ChronicConditions != "" {
		patient.ChronicConditions = req.ChronicConditions
	}
	if req.CurrentMedications != "" {
		patient.CurrentMedications = req.CurrentMedications
	}
	if req.InsuranceProvider != "" {
		patient.InsuranceProvider = req.InsuranceProvider
	}
	if req.InsurancePolicyNumber != "" {
		patient.InsurancePolicyNumber = req.InsurancePolicyNumber
	}
	if req.EmergencyContactName != "" {
		patient.EmergencyContactName = req.EmergencyContactName
	}
	if req.EmergencyContactPhone != "" {
		patient.EmergencyContactPhone = req.EmergencyContactPhone
	}

	if err := u.patientRepo.Update(tx, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	u.auditService.Record(tx, &actorID, entity.AuditActionProfileUpdate, entity.JSON{
		"target_user_id": userID.String(),
		"profile":        "patient",
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}
