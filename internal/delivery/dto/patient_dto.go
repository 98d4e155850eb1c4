package dto

type UpdatePatientProfileRequest struct {
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

type PatientResponse struct {
	UserID                string   `json:"user_id"`
	PatientCode           string   `json:"patient_code"`
	FullName              string   `json:"full_name"`
	Email                 string   `json:"email"`
	PhoneNumber           string   `json:"phone_number,omitempty"`
	DateOfBirth           string   `json:"date_of_birth,omitempty"`
	Age                   int      `json:"age,omitempty"`
	Gender                string   `json:"gender,omitempty"`
	Address               string   `json:"address,omitempty"`
	BloodType             string   `json:"blood_type"`
	HeightMeters          *float64 `json:"height_meters,omitempty"`
	WeightKg              *float64 `json:"weight_kg,omitempty"`
	BMI                   *float64 `json:"bmi,omitempty"`
	BMICategory           string   `json:"bmi_category,omitempty"`
	Allergies             string   `json:"allergies,omitempty"`
	ChronicConditions     string   `json:"chronic_conditions,omitempty"`
	CurrentMedications    string   `json:"current_medications,omitempty"`
	InsuranceProvider     string   `json:"insurance_provider,omitempty"`
	InsurancePolicyNumber string   `json:"insurance_policy_number,omitempty"`
	EmergencyContactName  string   `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string   `json:"emergency_contact_phone,omitempty"`
	CreatedAt             string   `json:"created_at"`
}
