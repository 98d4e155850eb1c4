package dto

type CreateDepartmentRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"omitempty"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=7,max=20"`
	Email       string `json:"email" validate:"omitempty,email"`
	Location    string `json:"location" validate:"omitempty,max=200"`
	HeadID      string `json:"head_id" validate:"omitempty,uuid"`
}

type UpdateDepartmentRequest struct {
	Name        string `json:"name" validate:"omitempty,min=2,max=100"`
	Description string `json:"description" validate:"omitempty"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=7,max=20"`
	Email       string `json:"email" validate:"omitempty,email"`
	Location    string `json:"location" validate:"omitempty,max=200"`
	HeadID      string `json:"head_id" validate:"omitempty,uuid"`
	IsActive    *bool  `json:"is_active" validate:"omitempty"`
}

type DepartmentResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Email       string `json:"email,omitempty"`
	Location    string `json:"location,omitempty"`
	HeadID      string `json:"head_id,omitempty"`
	HeadName    string `json:"head_name,omitempty"`
	DoctorCount int64  `json:"doctor_count"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
}
