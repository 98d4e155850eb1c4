package converter

import (
	"time"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

// DoctorToResponse converts a DoctorProfile entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.DoctorProfile) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	resp := &dto.DoctorResponse{
		UserID:              doctor.UserID.String(),
		DoctorCode:          doctor.DoctorCode,
		FullName:            doctor.User.FullName,
		Email:               doctor.User.Email,
		PhoneNumber:         doctor.User.PhoneNumber,
		LicenseNumber:       doctor.LicenseNumber,
		DepartmentID:        doctor.DepartmentID,
		Specialization:      doctor.Specialization,
		Biography:           doctor.Biography,
		ConsultationFee:     doctor.ConsultationFee.StringFixed(2),
		YearsOfExperience:   doctor.YearsOfExperience,
		MaxPatientsPerDay:   doctor.MaxPatientsPerDay,
		IsAcceptingPatients: doctor.IsAcceptingPatients,
		EmploymentStatus:    string(doctor.EmploymentStatus),
		CreatedAt:           doctor.CreatedAt.Format(time.RFC3339),
	}
	if doctor.Department != nil {
		resp.DepartmentName = doctor.Department.Name
	}
	return resp
}

// DoctorsToResponses converts a slice of DoctorProfile entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
