package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EmploymentStatus represents a doctor's employment arrangement
type EmploymentStatus string

const (
	EmploymentFullTime   EmploymentStatus = "full_time"
	EmploymentPartTime   EmploymentStatus = "part_time"
	EmploymentContract   EmploymentStatus = "contract"
	EmploymentConsultant EmploymentStatus = "consultant"
	EmploymentResident   EmploymentStatus = "resident"
)

// DoctorProfile represents doctor-specific profile data
type DoctorProfile struct {
	UserID              uuid.UUID        `gorm:"type:uuid;primaryKey" json:"user_id"`
	DoctorCode          string           `gorm:"type:varchar(30);uniqueIndex;not null" json:"doctor_code"`
	LicenseNumber       string           `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	DepartmentID        *int             `gorm:"index" json:"department_id,omitempty"`
	Specialization      string           `gorm:"type:varchar(100);not null;index" json:"specialization"`
	Biography           string           `gorm:"type:text" json:"biography,omitempty"`
	ConsultationFee     decimal.Decimal  `gorm:"type:decimal(8,2);not null;default:0" json:"consultation_fee"`
	EmploymentStatus    EmploymentStatus `gorm:"type:varchar(20);not null;default:'full_time'" json:"employment_status"`
	YearsOfExperience   int              `gorm:"not null;default:0" json:"years_of_experience"`
	IsAcceptingPatients bool             `gorm:"not null;default:true;index" json:"is_accepting_patients"`
	MaxPatientsPerDay   int              `gorm:"not null;default:20" json:"max_patients_per_day"`
	CreatedAt           time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time        `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User       User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
