package converter

import (
	"time"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

// DepartmentToResponse converts a Department entity to DepartmentResponse DTO
func DepartmentToResponse(dept *entity.Department) *dto.DepartmentResponse {
	if dept == nil {
		return nil
	}

	resp := &dto.DepartmentResponse{
		ID:          dept.ID,
		Name:        dept.Name,
		Description: dept.Description,
		PhoneNumber: dept.PhoneNumber,
		Email:       dept.Email,
		Location:    dept.Location,
		DoctorCount: int64(len(dept.Doctors)),
		IsActive:    dept.IsActive,
		CreatedAt:   dept.CreatedAt.Format(time.RFC3339),
	}
	if dept.HeadID != nil {
		resp.HeadID = dept.HeadID.String()
	}
	if dept.Head != nil {
		resp.HeadName = dept.Head.FullName
	}
	return resp
}

// DepartmentsToResponses converts a slice of Department entities to slice of DepartmentResponse DTOs
func DepartmentsToResponses(depts []entity.Department) []dto.DepartmentResponse {
	responses := make([]dto.DepartmentResponse, len(depts))
	for i := range depts {
		responses[i] = *DepartmentToResponse(&depts[i])
	}
	return responses
}
