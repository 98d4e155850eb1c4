package repository

import (
	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicalRecordRepository interface {
	Create(db *gorm.DB, record *entity.MedicalRecord) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.MedicalRecord, error)
	// FindByPatientID lists a patient's records newest visit first.
	// When includeConfidential is false, confidential entries are
	// filtered out.
	FindByPatientID(db *gorm.DB, patientID uuid.UUID, recordType string, includeConfidential bool, limit, offset int) ([]entity.MedicalRecord, int64, error)
	Update(db *gorm.DB, record *entity.MedicalRecord) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
