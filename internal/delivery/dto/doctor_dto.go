package dto

type UpdateDoctorProfileRequest struct {
	DepartmentID        *int   `json:"department_id" validate:"omitempty,min=1"`
	Specialization      string `json:"specialization" validate:"omitempty"`
	Biography           string `json:"biography" validate:"omitempty"`
	ConsultationFee     string `json:"consultation_fee" validate:"omitempty"`
	YearsOfExperience   *int   `json:"years_of_experience" validate:"omitempty,gte=0,lte=70"`
	MaxPatientsPerDay   *int   `json:"max_patients_per_day" validate:"omitempty,gte=1,lte=100"`
	IsAcceptingPatients *bool  `json:"is_accepting_patients" validate:"omitempty"`
	EmploymentStatus    string `json:"employment_status" validate:"omitempty,oneof=full_time part_time contract consultant resident"`
}

type DoctorResponse struct {
	UserID              string `json:"user_id"`
	DoctorCode          string `json:"doctor_code"`
	FullName            string `json:"full_name"`
	Email               string `json:"email"`
	PhoneNumber         string `json:"phone_number,omitempty"`
	LicenseNumber       string `json:"license_number"`
	DepartmentID        *int   `json:"department_id,omitempty"`
	DepartmentName      string `json:"department_name,omitempty"`
	Specialization      string `json:"specialization"`
	Biography           string `json:"biography,omitempty"`
	ConsultationFee     string `json:"consultation_fee"`
	YearsOfExperience   int    `json:"years_of_experience"`
	MaxPatientsPerDay   int    `json:"max_patients_per_day"`
	IsAcceptingPatients bool   `json:"is_accepting_patients"`
	EmploymentStatus    string `json:"employment_status"`
	CreatedAt           string `json:"created_at"`
}

// AvailabilitySlot is a single bookable interval on a doctor's day.
type AvailabilitySlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
}

type AvailabilityResponse struct {
	DoctorID            string             `json:"doctor_id"`
	DoctorName          string             `json:"doctor_name"`
	Date                string             `json:"date"`
	IsAcceptingPatients bool               `json:"is_accepting_patients"`
	BookedCount         int                `json:"booked_count"`
	RemainingCapacity   int                `json:"remaining_capacity"`
	Slots               []AvailabilitySlot `json:"slots"`
}
