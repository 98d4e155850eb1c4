package repository

import (
	"hospital-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type DepartmentRepository interface {
	Create(db *gorm.DB, department *entity.Department) error
	FindByID(db *gorm.DB, id int) (*entity.Department, error)
	FindAll(db *gorm.DB, searchPattern string, activeOnly bool, limit, offset int) ([]entity.Department, int64, error)
	Update(db *gorm.DB, department *entity.Department) error
	Delete(db *gorm.DB, id int) (int64, error)
}
