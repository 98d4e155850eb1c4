package repository

import (
	"errors"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorProfileRepository struct{}

func NewDoctorProfileRepository() domainRepo.DoctorProfileRepository {
	return &doctorProfileRepository{}
}

func (r *doctorProfileRepository) Create(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Create(profile).Error
}

func (r *doctorProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.Preload("User.Role").Preload("Department").
		Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *doctorProfileRepository) FindAll(db *gorm.DB, filter domainRepo.DoctorFilter) ([]entity.DoctorProfile, int64, error) {
	var profiles []entity.DoctorProfile
	var total int64

	query := db.Model(&entity.DoctorProfile{}).
		Joins("JOIN users ON users.id = doctor_profiles.user_id")

	if !filter.IncludeInactives {
		query = query.Where("users.is_active = ?", true)
	}
	if filter.DepartmentID != nil {
		query = query.Where("doctor_profiles.department_id = ?", *filter.DepartmentID)
	}
	if filter.Specialization != "" {
		query = query.Where("doctor_profiles.specialization ILIKE ?", "%"+filter.Specialization+"%")
	}
	if filter.AcceptingOnly {
		query = query.Where("doctor_profiles.is_accepting_patients = ?", true)
	}
	if filter.SearchPattern != "" {
		query = query.Where(
			"users.full_name ILIKE ? OR doctor_profiles.specialization ILIKE ? OR doctor_profiles.doctor_code ILIKE ?",
			filter.SearchPattern, filter.SearchPattern, filter.SearchPattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := filter.OrderClause
	if order == "" {
		order = "doctor_profiles.created_at DESC"
	}

	err := query.Preload("User").Preload("Department").
		Order(order).
		Limit(filter.Limit).Offset(filter.Offset).
		Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}

func (r *doctorProfileRepository) Update(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Omit("User", "Department").Save(profile).Error
}

func (r *doctorProfileRepository) Delete(db *gorm.DB, userID uuid.UUID) (int64, error) {
	result := db.Where("user_id = ?", userID).Delete(&entity.DoctorProfile{})
	return result.RowsAffected, result.Error
}
