package usecase

import (
	"context"
	"errors"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/pkg/query"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDepartmentNameTaken = errors.New("department name already exists")
	ErrDepartmentHasDoctor = errors.New("department still has doctors assigned")
)

type DepartmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error)
	List(ctx context.Context, activeOnly bool, params query.Params) ([]dto.DepartmentResponse, int64, error)
	GetByID(ctx context.Context, id int) (*dto.DepartmentResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error)
	Delete(ctx context.Context, id int) error
}

type departmentUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	departmentRepo repository.DepartmentRepository
	doctorRepo     repository.DoctorProfileRepository
}

func NewDepartmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	departmentRepo repository.DepartmentRepository,
	doctorRepo repository.DoctorProfileRepository,
) DepartmentUsecase {
	return &departmentUsecase{db: db, log: log, departmentRepo: departmentRepo, doctorRepo: doctorRepo}
}

func (u *departmentUsecase) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	dept := &entity.Department{
		Name:        req.Name,
		Description: req.Description,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Location:    req.Location,
		IsActive:    true,
	}
	if req.HeadID != "" {
		headID, err := uuid.Parse(req.HeadID)
		if err != nil {
			return nil, ErrUserNotFound
		}
		dept.HeadID = &headID
	}

	if err := u.departmentRepo.Create(u.db.WithContext(ctx), dept); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrDepartmentNameTaken
		}
		if isForeignKeyError(err, "head") {
			return nil, ErrUserNotFound
		}
		u.log.Warnf("Failed to create department: %+v", err)
		return nil, err
	}

	return converter.DepartmentToResponse(dept), nil
}

func (u *departmentUsecase) List(ctx context.Context, activeOnly bool, params query.Params) ([]dto.DepartmentResponse, int64, error) {
	depts, total, err := u.departmentRepo.FindAll(u.db.WithContext(ctx), params.SearchPattern(), activeOnly, params.Limit, params.Offset())
	if err != nil {
		u.log.Warnf("Failed to list departments: %+v", err)
		return nil, 0, err
	}
	return converter.DepartmentsToResponses(depts), total, nil
}

func (u *departmentUsecase) GetByID(ctx context.Context, id int) (*dto.DepartmentResponse, error) {
	dept, err := u.departmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find department: %+v", err)
		return nil, err
	}
	if dept == nil {
		return nil, ErrDepartmentNotFound
	}
	return converter.DepartmentToResponse(dept), nil
}

func (u *departmentUsecase) Update(ctx context.Context, id int, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	dept, err := u.departmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find department: %+v", err)
		return nil, err
	}
	if dept == nil {
		return nil, ErrDepartmentNotFound
	}

	if req.Name != "" {
		dept.Name = req.Name
	}
	if req.Description != "" {
		dept.Description = req.Description
	}
	if req.PhoneNumber != "" {
		dept.PhoneNumber = req.PhoneNumber
	}
	if req.Email != "" {
		dept.Email = req.Email
	}
	if req.Location != "" {
		dept.Location = req.Location
	}
	if req.HeadID != "" {
		headID, err := uuid.Parse(req.HeadID)
		if err != nil {
			return nil, ErrUserNotFound
		}
		dept.HeadID = &headID
	}
	if req.IsActive != nil {
		dept.IsActive = *req.IsActive
	}

	if err := u.departmentRepo.Update(tx, dept); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrDepartmentNameTaken
		}
		u.log.Warnf("Failed to update department: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DepartmentToResponse(dept), nil
}

func (u *departmentUsecase) Delete(ctx context.Context, id int) error {
	// Refuse deletion while doctors are still assigned.
	doctors, _, err := u.doctorRepo.FindAll(u.db.WithContext(ctx), repository.DoctorFilter{
		DepartmentID:     &id,
		Limit:            1,
		IncludeInactives: true,
	})
	if err != nil {
		u.log.Warnf("Failed to check department doctors: %+v", err)
		return err
	}
	if len(doctors) > 0 {
		return ErrDepartmentHasDoctor
	}

	rows, err := u.departmentRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete department: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrDepartmentNotFound
	}
	return nil
}
