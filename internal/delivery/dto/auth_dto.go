package dto

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// RegisterPatientRequest covers patient self-registration.
type RegisterPatientRequest struct {
	Email                 string   `json:"email" validate:"required,email"`
	Password              string   `json:"password" validate:"required,min=8"`
	FullName              string   `json:"full_name" validate:"required,min=2"`
	PhoneNumber           string   `json:"phone_number" validate:"omitempty,min=7,max=20"`
	DateOfBirth           string   `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender                string   `json:"gender" validate:"omitempty,oneof=M F O"`
	Address               string   `json:"address" validate:"omitempty"`
	BloodType             string   `json:"blood_type" validate:"omitempty"`
	HeightMeters          *float64 `json:"height_meters" validate:"omitempty,gt=0,lte=3"`
	WeightKg              *float64 `json:"weight_kg" validate:"omitempty,gt=0,lte=1000"`
	Allergies             string   `json:"allergies" validate:"omitempty"`
	ChronicConditions     string   `json:"chronic_conditions" validate:"omitempty"`
	CurrentMedications    string   `json:"current_medications" validate:"omitempty"`
	InsuranceProvider     string   `json:"insurance_provider" validate:"omitempty"`
	InsurancePolicyNumber string   `json:"insurance_policy_number" validate:"omitempty"`
	EmergencyContactName  string   `json:"emergency_contact_name" validate:"omitempty"`
	EmergencyContactPhone string   `json:"emergency_contact_phone" validate:"omitempty"`
}

// RegisterDoctorRequest is used by admins to create doctor accounts.
type RegisterDoctorRequest struct {
	Email             string  `json:"email" validate:"required,email"`
	Password          string  `json:"password" validate:"required,min=8"`
	FullName          string  `json:"full_name" validate:"required,min=2"`
	PhoneNumber       string  `json:"phone_number" validate:"omitempty,min=7,max=20"`
	LicenseNumber     string  `json:"license_number" validate:"required"`
	DepartmentID      *int    `json:"department_id" validate:"omitempty,min=1"`
	Specialization    string  `json:"specialization" validate:"required"`
	Biography         string  `json:"biography" validate:"omitempty"`
	ConsultationFee   string  `json:"consultation_fee" validate:"omitempty"`
	YearsOfExperience int     `json:"years_of_experience" validate:"omitempty,gte=0,lte=70"`
	MaxPatientsPerDay int     `json:"max_patients_per_day" validate:"omitempty,gte=1,lte=100"`
	EmploymentStatus  string  `json:"employment_status" validate:"omitempty,oneof=full_time part_time contract consultant resident"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
