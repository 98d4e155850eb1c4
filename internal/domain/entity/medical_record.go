package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MedicalRecordType categorizes a medical record entry
type MedicalRecordType string

const (
	RecordTypeConsultation MedicalRecordType = "consultation"
	RecordTypeDiagnosis    MedicalRecordType = "diagnosis"
	RecordTypeTreatment    MedicalRecordType = "treatment"
	RecordTypePrescription MedicalRecordType = "prescription"
	RecordTypeLabResult    MedicalRecordType = "lab_result"
	RecordTypeImaging      MedicalRecordType = "imaging"
	RecordTypeSurgery      MedicalRecordType = "surgery"
	RecordTypeVaccination  MedicalRecordType = "vaccination"
	RecordTypeDischarge    MedicalRecordType = "discharge"
	RecordTypeOther        MedicalRecordType = "other"
)

func IsValidRecordType(s string) bool {
	switch MedicalRecordType(s) {
	case RecordTypeConsultation, RecordTypeDiagnosis, RecordTypeTreatment, RecordTypePrescription,
		RecordTypeLabResult, RecordTypeImaging, RecordTypeSurgery, RecordTypeVaccination,
		RecordTypeDischarge, RecordTypeOther:
		return true
	}
	return false
}

// MedicalRecord tracks a patient visit, diagnosis or treatment entry.
type MedicalRecord struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RecordCode     string            `gorm:"type:varchar(30);uniqueIndex;not null" json:"record_code"`
	PatientID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID       *uuid.UUID        `gorm:"type:uuid;index" json:"doctor_id,omitempty"`
	RecordType     MedicalRecordType `gorm:"type:varchar(20);not null;default:'consultation';index" json:"record_type"`
	Title          string            `gorm:"type:varchar(200);not null" json:"title"`
	Description    string            `gorm:"type:text;not null" json:"description"`
	Symptoms       string            `gorm:"type:text" json:"symptoms,omitempty"`
	Diagnosis      string            `gorm:"type:text" json:"diagnosis,omitempty"`
	TreatmentPlan  string            `gorm:"type:text" json:"treatment_plan,omitempty"`
	Medications    string            `gorm:"type:text" json:"medications,omitempty"`
	FollowUp       string            `gorm:"type:text" json:"follow_up,omitempty"`
	IsConfidential bool              `gorm:"not null;default:false" json:"is_confidential"`
	VisitDate      time.Time         `gorm:"not null;index" json:"visit_date"`

	// Vital signs
	TemperatureC     *float64 `json:"temperature_c,omitempty"`
	SystolicBP       *int     `json:"systolic_bp,omitempty"`
	DiastolicBP      *int     `json:"diastolic_bp,omitempty"`
	HeartRate        *int     `json:"heart_rate,omitempty"`
	RespiratoryRate  *int     `json:"respiratory_rate,omitempty"`
	OxygenSaturation *float64 `json:"oxygen_saturation,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient PatientProfile `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}

// BloodPressure formats the systolic/diastolic reading, empty when
// either half is missing.
func (m *MedicalRecord) BloodPressure() string {
	if m.SystolicBP == nil || m.DiastolicBP == nil {
		return ""
	}
	return fmt.Sprintf("%d/%d", *m.SystolicBP, *m.DiastolicBP)
}
