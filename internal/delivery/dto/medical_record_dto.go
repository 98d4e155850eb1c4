package dto

type CreateMedicalRecordRequest struct {
	PatientID        string   `json:"patient_id" validate:"required,uuid"`
	RecordType       string   `json:"record_type" validate:"omitempty,oneof=consultation diagnosis treatment prescription lab_result imaging surgery vaccination discharge other"`
	Title            string   `json:"title" validate:"required,min=3,max=200"`
	Description      string   `json:"description" validate:"required"`
	Symptoms         string   `json:"symptoms" validate:"omitempty"`
	Diagnosis        string   `json:"diagnosis" validate:"omitempty"`
	TreatmentPlan    string   `json:"treatment_plan" validate:"omitempty"`
	Medications      string   `json:"medications" validate:"omitempty"`
	FollowUp         string   `json:"follow_up" validate:"omitempty"`
	IsConfidential   bool     `json:"is_confidential"`
	VisitDate        string   `json:"visit_date" validate:"omitempty,datetime=2006-01-02"`
	TemperatureC     *float64 `json:"temperature_c" validate:"omitempty,gte=25,lte=45"`
	SystolicBP       *int     `json:"systolic_bp" validate:"omitempty,gte=40,lte=300"`
	DiastolicBP      *int     `json:"diastolic_bp" validate:"omitempty,gte=20,lte=200"`
	HeartRate        *int     `json:"heart_rate" validate:"omitempty,gte=20,lte=300"`
	RespiratoryRate  *int     `json:"respiratory_rate" validate:"omitempty,gte=4,lte=80"`
	OxygenSaturation *float64 `json:"oxygen_saturation" validate:"omitempty,gte=50,lte=100"`
}

type UpdateMedicalRecordRequest struct {
	RecordType       string   `json:"record_type" validate:"omitempty,oneof=consultation diagnosis treatment prescription lab_result imaging surgery vaccination discharge other"`
	Title            string   `json:"title" validate:"omitempty,min=3,max=200"`
	Description      string   `json:"description" validate:"omitempty"`
	Symptoms         string   `json:"symptoms" validate:"omitempty"`
	Diagnosis        string   `json:"diagnosis" validate:"omitempty"`
	TreatmentPlan    string   `json:"treatment_plan" validate:"omitempty"`
	Medications      string   `json:"medications" validate:"omitempty"`
	FollowUp         string   `json:"follow_up" validate:"omitempty"`
	IsConfidential   *bool    `json:"is_confidential" validate:"omitempty"`
	TemperatureC     *float64 `json:"temperature_c" validate:"omitempty,gte=25,lte=45"`
	SystolicBP       *int     `json:"systolic_bp" validate:"omitempty,gte=40,lte=300"`
	DiastolicBP      *int     `json:"diastolic_bp" validate:"omitempty,gte=20,lte=200"`
	HeartRate        *int     `json:"heart_rate" validate:"omitempty,gte=20,lte=300"`
	RespiratoryRate  *int     `json:"respiratory_rate" validate:"omitempty,gte=4,lte=80"`
	OxygenSaturation *float64 `json:"oxygen_saturation" validate:"omitempty,gte=50,lte=100"`
}

type MedicalRecordResponse struct {
	ID               string   `json:"id"`
	RecordCode       string   `json:"record_code"`
	PatientID        string   `json:"patient_id"`
	PatientName      string   `json:"patient_name,omitempty"`
	DoctorID         string   `json:"doctor_id,omitempty"`
	DoctorName       string   `json:"doctor_name,omitempty"`
	RecordType       string   `json:"record_type"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Symptoms         string   `json:"symptoms,omitempty"`
	Diagnosis        string   `json:"diagnosis,omitempty"`
	TreatmentPlan    string   `json:"treatment_plan,omitempty"`
	Medications      string   `json:"medications,omitempty"`
	FollowUp         string   `json:"follow_up,omitempty"`
	IsConfidential   bool     `json:"is_confidential"`
	VisitDate        string   `json:"visit_date"`
	TemperatureC     *float64 `json:"temperature_c,omitempty"`
	BloodPressure    string   `json:"blood_pressure,omitempty"`
	HeartRate        *int     `json:"heart_rate,omitempty"`
	RespiratoryRate  *int     `json:"respiratory_rate,omitempty"`
	OxygenSaturation *float64 `json:"oxygen_saturation,omitempty"`
	CreatedAt        string   `json:"created_at"`
}
