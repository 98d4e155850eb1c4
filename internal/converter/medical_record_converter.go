package converter

import (
	"time"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

// MedicalRecordToResponse converts a MedicalRecord entity to MedicalRecordResponse DTO
func MedicalRecordToResponse(record *entity.MedicalRecord) *dto.MedicalRecordResponse {
	if record == nil {
		return nil
	}

	resp := &dto.MedicalRecordResponse{
		ID:               record.ID.String(),
		RecordCode:       record.RecordCode,
		PatientID:        record.PatientID.String(),
		RecordType:       string(record.RecordType),
		Title:            record.Title,
		Description:      record.Description,
		Symptoms:         record.Symptoms,
		Diagnosis:        record.Diagnosis,
		TreatmentPlan:    record.TreatmentPlan,
		Medications:      record.Medications,
		FollowUp:         record.FollowUp,
		IsConfidential:   record.IsConfidential,
		VisitDate:        record.VisitDate.Format("2006-01-02"),
		TemperatureC:     record.TemperatureC,
		BloodPressure:    record.BloodPressure(),
		HeartRate:        record.HeartRate,
		RespiratoryRate:  record.RespiratoryRate,
		OxygenSaturation: record.OxygenSaturation,
		CreatedAt:        record.CreatedAt.Format(time.RFC3339),
	}
	if record.Patient.User.FullName != "" {
		resp.PatientName = record.Patient.User.FullName
	}
	if record.DoctorID != nil {
		resp.DoctorID = record.DoctorID.String()
	}
	if record.Doctor != nil && record.Doctor.User.FullName != "" {
		resp.DoctorName = record.Doctor.User.FullName
	}
	return resp
}

// MedicalRecordsToResponses converts a slice of MedicalRecord entities to slice of MedicalRecordResponse DTOs
func MedicalRecordsToResponses(records []entity.MedicalRecord) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, len(records))
	for i := range records {
		responses[i] = *MedicalRecordToResponse(&records[i])
	}
	return responses
}
