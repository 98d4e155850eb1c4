package repository

import (
	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DoctorFilter narrows doctor listing queries.
type DoctorFilter struct {
	DepartmentID     *int
	Specialization   string
	AcceptingOnly    bool
	SearchPattern    string // ILIKE against name, specialization, code
	Limit, Offset    int
	OrderClause      string
	IncludeInactives bool
}

type DoctorProfileRepository interface {
	Create(db *gorm.DB, profile *entity.DoctorProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error)
	FindAll(db *gorm.DB, filter DoctorFilter) ([]entity.DoctorProfile, int64, error)
	Update(db *gorm.DB, profile *entity.DoctorProfile) error
	Delete(db *gorm.DB, userID uuid.UUID) (int64, error)
}
