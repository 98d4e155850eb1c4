package converter

import (
	"time"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

// PatientToResponse converts a PatientProfile entity to PatientResponse DTO
func PatientToResponse(patient *entity.PatientProfile) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	resp := &dto.PatientResponse{
		UserID:                patient.UserID.String(),
		PatientCode:           patient.PatientCode,
		FullName:              patient.User.FullName,
		Email:                 patient.User.Email,
		PhoneNumber:           patient.User.PhoneNumber,
		Gender:                patient.User.Gender,
		Address:               patient.User.Address,
		BloodType:             patient.BloodType,
		HeightMeters:          patient.HeightMeters,
		WeightKg:              patient.WeightKg,
		Allergies:             patient.Allergies,
		ChronicConditions:     patient.ChronicConditions,
		CurrentMedications:    patient.CurrentMedications,
		InsuranceProvider:     patient.InsuranceProvider,
		InsurancePolicyNumber: patient.InsurancePolicyNumber,
		EmergencyContactName:  patient.EmergencyContactName,
		EmergencyContactPhone: patient.EmergencyContactPhone,
		CreatedAt:             patient.CreatedAt.Format(time.RFC3339),
	}
	if patient.User.DateOfBirth != nil {
		resp.DateOfBirth = patient.User.DateOfBirth.Format("2006-01-02")
		resp.Age = patient.User.Age(time.Now())
	}
	if bmi := patient.BMI(); bmi > 0 {
		resp.BMI = &bmi
		resp.BMICategory = patient.BMICategory()
	}
	return resp
}

// PatientsToResponses converts a slice of PatientProfile entities to slice of PatientResponse DTOs
func PatientsToResponses(patients []entity.PatientProfile) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
