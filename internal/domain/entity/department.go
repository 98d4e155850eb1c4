package entity

import (
	"time"

	"github.com/google/uuid"
)

// Department represents a hospital department
type Department struct {
	ID          int        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	HeadID      *uuid.UUID `gorm:"type:uuid" json:"head_id,omitempty"`
	PhoneNumber string     `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	Email       string     `gorm:"type:varchar(255)" json:"email,omitempty"`
	Location    string     `gorm:"type:varchar(200)" json:"location,omitempty"`
	IsActive    bool       `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Head    *User           `gorm:"foreignKey:HeadID" json:"head,omitempty"`
	Doctors []DoctorProfile `gorm:"foreignKey:DepartmentID" json:"doctors,omitempty"`
}

func (Department) TableName() string {
	return "departments"
}
