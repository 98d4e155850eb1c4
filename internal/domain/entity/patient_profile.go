package entity

import (
	"time"

	"github.com/google/uuid"
)

// Blood type values accepted for patients. "UNK" is the default.
var BloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-", "UNK"}

// PatientProfile represents patient-specific profile data
type PatientProfile struct {
	UserID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	PatientCode           string    `gorm:"type:varchar(30);uniqueIndex;not null" json:"patient_code"`
	BloodType             string    `gorm:"type:varchar(3);not null;default:'UNK';index" json:"blood_type"`
	HeightMeters          *float64  `json:"height_meters,omitempty"`
	WeightKg              *float64  `json:"weight_kg,omitempty"`
	Allergies             string    `gorm:"type:text" json:"allergies,omitempty"`
	ChronicConditions     string    `gorm:"type:text" json:"chronic_conditions,omitempty"`
	CurrentMedications    string    `gorm:"type:text" json:"current_medications,omitempty"`
	InsuranceProvider     string    `gorm:"type:varchar(100)" json:"insurance_provider,omitempty"`
	InsurancePolicyNumber string    `gorm:"type:varchar(50)" json:"insurance_policy_number,omitempty"`
	EmergencyContactName  string    `gorm:"type:varchar(100)" json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string    `gorm:"type:varchar(20)" json:"emergency_contact_phone,omitempty"`
	IsActive              bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt             time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}

// BMI returns the body mass index rounded to two decimals, or 0 when
// height or weight is missing.
func (p *PatientProfile) BMI() float64 {
	if p.HeightMeters == nil || p.WeightKg == nil || *p.HeightMeters <= 0 {
		return 0
	}
	bmi := *p.WeightKg / (*p.HeightMeters * *p.HeightMeters)
	return float64(int(bmi*100+0.5)) / 100
}

// BMICategory classifies the BMI using standard WHO cutoffs.
// Returns empty string when BMI cannot be computed.
func (p *PatientProfile) BMICategory() string {
	bmi := p.BMI()
	switch {
	case bmi == 0:
		return ""
	case bmi < 18.5:
		return "underweight"
	case bmi < 25:
		return "normal"
	case bmi < 30:
		return "overweight"
	default:
		return "obese"
	}
}

func IsValidBloodType(bt string) bool {
	for _, v := range BloodTypes {
		if v == bt {
			return true
		}
	}
	return false
}
