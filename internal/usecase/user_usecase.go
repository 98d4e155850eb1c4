package usecase

import (
	"context"
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

type UserUsecase interface {
	List(ctx context.Context, roleName string, params query.Params) ([]dto.UserResponse, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	Update(ctx context.Context, actorID, id uuid.UUID, actorRole string, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
}

type userUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	auditService service.AuditService
}

func NewUserUsecase(db *gorm.DB, log *logrus.Logger, userRepo repository.UserRepository, auditService service.AuditService) UserUsecase {
	return &userUsecase{db: db, log: log, userRepo: userRepo, auditService: auditService}
}

func (u *userUsecase) List(ctx context.Context, roleName string, params query.Params) ([]dto.UserResponse, int64, error) {
	users, total, err := u.userRepo.FindAll(u.db.WithContext(ctx), roleName, params.SearchPattern(), params.Limit, params.Offset())
	if err != nil {
		u.log.Warnf("Failed to list users: %+v", err)
		return nil, 0, err
	}
	return converter.UsersToResponses(users), total, nil
}

func (u *userUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return converter.UserToResponse(user), nil
}

// Update edits profile fields. Non-admins may only edit their own
// account and may not toggle is_active.
func (u *userUsecase) Update(ctx context.Context, actorID, id uuid.UUID, actorRole string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	isAdmin := entity.RoleMatches(actorRole, entity.RoleAdmin)
	if !isAdmin && actorID != id {
		return nil, ErrForbidden
	}
	if !isAdmin && req.IsActive != nil {
		return nil, ErrForbidden
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		user.DateOfBirth = &dob
	}
	if req.Gender != "" {
		user.Gender = req.Gender
	}
	if req.Address != "" {
		user.Address = req.Address
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	u.auditService.Record(tx, &actorID, entity.AuditActionProfileUpdate, entity.JSON{
		"target_user_id": id.String(),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}
