package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/delivery/http/middleware"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/query"
	"hospital-management-api/pkg/response"
	"hospital-management-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{appointmentUsecase: appointmentUsecase, validator: validator}
}

// Create books a new appointment
// @Summary Create appointment
// @Description Book a doctor slot; returns 409 when the slot is taken
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Create Appointment Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.GetUserIDFromContext(r.Context())
	actorRole, _ := middleware.GetRoleFromContext(r.Context())

	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), actorID, actorRole, &req)
	if err != nil {
		switch err {
		case usecase.ErrSlotTaken:
			response.Conflict(w, "The requested slot is already booked")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrDoctorNotAccepting:
			response.Conflict(w, "Doctor is not accepting patients")
		case usecase.ErrPastAppointment, usecase.ErrOutsideWorkingHours, usecase.ErrInvalidDateFormat, usecase.ErrPatientIDRequired:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

// List returns appointments visible to the caller
// @Summary List appointments
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status"
// @Param type query string false "Filter by type"
// @Param doctor_id query string false "Filter by doctor"
// @Param patient_id query string false "Filter by patient"
// @Param department_id query int false "Filter by department"
// @Param date_from query string false "From date (YYYY-MM-DD)"
// @Param date_to query string false "To date (YYYY-MM-DD)"
// @Param search query string false "Search by code, complaint or names"
// @Success 200 {object} response.Response
// @Router /appointments [get]
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.GetUserIDFromContext(r.Context())
	actorRole, _ := middleware.GetRoleFromContext(r.Context())

	params := query.Parse(r.URL.Query())
	filter, err := parseAppointmentFilter(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	appointments, total, err := h.appointmentUsecase.List(r.Context(), actorID, actorRole, filter, params)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Appointments retrieved successfully", appointments, response.NewMeta(params.Page, params.Limit, total))
}

// My returns the caller's own appointments
// @Summary List my appointments
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /appointments/my [get]
func (h *AppointmentHandler) My(w http.ResponseWriter, r *http.Request) {
	// Same as List: role scoping restricts to the caller's records.
	h.List(w, r)
}

// Today returns the authenticated doctor's appointments for today
// @Summary List today's appointments
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /appointments/today [get]
func (h *AppointmentHandler) Today(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.GetUserIDFromContext(r.Context())
	actorRole, _ := middleware.GetRoleFromContext(r.Context())
	params := query.Parse(r.URL.Query())

	appointments, total, err := h.appointmentUsecase.Today(r.Context(), actorID, actorRole, params)
	if err != nil {
		response.InternalServerError(w, "Failed to list today's appointments")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Appointments retrieved successfully", appointments, response.NewMeta(params.Page, params.Limit, total))
}

// Calendar returns a month of appointments grouped by day
// @Summary Appointment calendar
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param year query int false "Year (defaults to current)"
// @Param month query int false "Month 1-12 (defaults to current)"
// @Success 200 {object} response.Response
// @Router /appointments/calendar [get]
func (h *AppointmentHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.GetUserIDFromContext(r.Context())
	actorRole, _ := middleware.GetRoleFromContext(r.Context())

	now := time.Now().UTC()
	year := now.Year()
	month := int(now.Month())
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 2000 || parsed > 2200 {
			response.Error(w, http.StatusBadRequest, "Invalid year", nil)
			return
		}
		year = parsed
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			response.Error(w, http.StatusBadRequest, "Invalid month", nil)
			return
		}
		month = parsed
	}

	calendar, err := h.appointmentUsecase.Calendar(r.Context(), actorID, actorRole, year, month)
	if err != nil {
		response.InternalServerError(w, "Failed to load calendar")
		return
	}

	response.Success(w, http.StatusOK, "Calendar retrieved successfully", calendar)
}

// Get returns an appointment by ID
// @Summary Get appointment by ID
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(r.Context())
	actorRole, _ := middleware.GetRoleFromContext(r.Context())

	appointment, err := h.appointmentUsecase.GetByID(r.Context(), actorID, actorRole, id)
	if err != nil {
		h.writeAppointmentError(w, err, "Failed to get appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

// Update reschedules or edits an active appointment
// @Summary Update appointment
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.UpdateAppointmentRequest true "Update Appointment Request"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointments/{id} [put]
func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(r.Context())
	actorRole, _ := middleware.GetRoleFromContext(r.Context())

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Update(r.Context(), actorID, actorRole, id, &req)
	if err != nil {
		h.writeAppointmentError(w, err, "Failed to update appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", appointment)
}

// UpdateStatus drives the appointment status machine
// @Summary Update appointment status
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.UpdateAppointmentStatusRequest true "Status Request"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointments/{id}/status [patch]
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(r.Context())
	actorRole, _ := middleware.GetRoleFromContext(r.Context())

	var req dto.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.UpdateStatus(r.Context(), actorID, actorRole, id, &req)
	if err != nil {
		h.writeAppointmentError(w, err, "Failed to update appointment status")
		return
	}

	response.Success(w, http.StatusOK, "Appointment status updated successfully", appointment)
}

// Cancel cancels an appointment with a reason
// @Summary Cancel appointment
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.CancelAppointmentRequest true "Cancel Request"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointments/{id}/cancel [post]
func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(r.Context())
	actorRole, _ := middleware.GetRoleFromContext(r.Context())

	var req dto.CancelAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Cancel(r.Context(), actorID, actorRole, id, &req)
	if err != nil {
		h.writeAppointmentError(w, err, "Failed to cancel appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", appointment)
}

func (h *AppointmentHandler) writeAppointmentError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrAppointmentNotFound:
		response.NotFound(w, "Appointment not found")
	case usecase.ErrDoctorNotFound:
		response.NotFound(w, "Doctor not found")
	case usecase.ErrForbidden:
		response.Forbidden(w, "You cannot access this appointment")
	case usecase.ErrSlotTaken:
		response.Conflict(w, "The requested slot is already booked")
	case usecase.ErrInvalidTransition:
		response.Conflict(w, "Invalid appointment status transition")
	case usecase.ErrNotCancellable:
		response.Conflict(w, "Appointment can no longer be cancelled")
	case usecase.ErrAppointmentImmutable:
		response.Conflict(w, "Appointment can no longer be modified")
	case usecase.ErrInvalidDateFormat, usecase.ErrOutsideWorkingHours, usecase.ErrPastAppointment:
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	default:
		response.InternalServerError(w, fallback)
	}
}

func parseAppointmentFilter(r *http.Request) (*entity.AppointmentFilter, error) {
	q := r.URL.Query()
	filter := &entity.AppointmentFilter{
		Status:   q.Get("status"),
		Type:     q.Get("type"),
		DateFrom: q.Get("date_from"),
		DateTo:   q.Get("date_to"),
	}
	if raw := q.Get("doctor_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, usecase.ErrDoctorNotFound
		}
		filter.DoctorID = &id
	}
	if raw := q.Get("patient_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, usecase.ErrPatientNotFound
		}
		filter.PatientID = &id
	}
	if raw := q.Get("department_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return nil, usecase.ErrDepartmentNotFound
		}
		filter.DepartmentID = &id
	}
	today := time.Now().UTC().Format("2006-01-02")
	if q.Get("today") == "true" {
		filter.DateFrom = today
		filter.DateTo = today
	} else if q.Get("upcoming") == "true" && filter.DateFrom == "" {
		filter.DateFrom = today
	}
	return filter, nil
}
