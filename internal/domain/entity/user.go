package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role represents a user role in the system
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role name constants
const (
	RoleAdmin        = "admin"
	RoleDoctor       = "doctor"
	RolePatient      = "patient"
	RoleNurse        = "nurse"
	RoleReceptionist = "receptionist"
	RolePharmacist   = "pharmacist"
)

// Role ID constants, matching the seed migration
const (
	RoleIDAdmin        = 1
	RoleIDDoctor       = 2
	RoleIDPatient      = 3
	RoleIDNurse        = 4
	RoleIDReceptionist = 5
	RoleIDPharmacist   = 6
)

// RoleMatches reports whether a role name is in the allowed set.
// Comparison is case-insensitive.
func RoleMatches(roleName string, allowed ...string) bool {
	for _, a := range allowed {
		if strings.EqualFold(roleName, a) {
			return true
		}
	}
	return false
}

// IsStaffRole reports whether the role is a non-clinical staff role.
func IsStaffRole(roleName string) bool {
	return RoleMatches(roleName, RoleNurse, RoleReceptionist, RolePharmacist)
}

// User represents the centralized authentication table
type User struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID      int        `gorm:"not null;index" json:"role_id"`
	Email       string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password    string     `gorm:"type:text;not null" json:"-"`
	FullName    string     `gorm:"type:varchar(255);not null" json:"full_name"`
	PhoneNumber string     `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Gender      string     `gorm:"type:char(1)" json:"gender,omitempty"`
	Address     string     `gorm:"type:text" json:"address,omitempty"`
	IsActive    bool       `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role           Role            `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	DoctorProfile  *DoctorProfile  `gorm:"foreignKey:UserID" json:"doctor_profile,omitempty"`
	PatientProfile *PatientProfile `gorm:"foreignKey:UserID" json:"patient_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)

// RoleName returns the loaded role name, empty when the relation
// was not preloaded.
func (u *User) RoleName() string {
	return u.Role.RoleName
}

// Age computes the user's age in full years at the given reference time.
// Returns -1 when date of birth is unknown.
func (u *User) Age(now time.Time) int {
	if u.DateOfBirth == nil {
		return -1
	}
	dob := *u.DateOfBirth
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}
