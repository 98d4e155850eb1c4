package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/delivery/http/middleware"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/query"
	"hospital-management-api/pkg/response"
	"hospital-management-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{doctorUsecase: doctorUsecase, validator: validator}
}

// List returns doctors with filters, search and pagination
// @Summary List doctors
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Param department_id query int false "Filter by department"
// @Param specialization query string false "Filter by specialization"
// @Param accepting query bool false "Only doctors accepting patients"
// @Param search query string false "Search by name, specialization or code"
// @Success 200 {object} response.Response
// @Router /doctors [get]
func (h *DoctorHandler) List(w http.ResponseWriter, r *http.Request) {
	params := query.Parse(r.URL.Query())

	filter := repository.DoctorFilter{
		Specialization: r.URL.Query().Get("specialization"),
		AcceptingOnly:  r.URL.Query().Get("accepting") == "true",
		SearchPattern:  params.SearchPattern(),
		Limit:          params.Limit,
		Offset:         params.Offset(),
		OrderClause:    params.OrderClause("created_at"),
	}
	if raw := r.URL.Query().Get("department_id"); raw != "" {
		deptID, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid department_id", nil)
			return
		}
		filter.DepartmentID = &deptID
	}

	doctors, total, err := h.doctorUsecase.List(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list doctors")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Doctors retrieved successfully", doctors, response.NewMeta(params.Page, params.Limit, total))
}

// Get returns a doctor profile by user ID
// @Summary Get doctor by ID
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Param id path string true "Doctor user ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/{id} [get]
func (h *DoctorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	doctor, err := h.doctorUsecase.GetByUserID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

// Me returns the logged-in doctor's own profile
// @Summary Get own doctor profile
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/me [get]
func (h *DoctorHandler) Me(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.GetUserIDFromContext(r.Context())

	doctor, err := h.doctorUsecase.GetByUserID(r.Context(), actorID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor profile not found")
		default:
			response.InternalServerError(w, "Failed to get doctor profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor profile retrieved successfully", doctor)
}

// Update edits a doctor profile
// @Summary Update doctor profile
// @Tags Doctors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Doctor user ID"
// @Param request body dto.UpdateDoctorProfileRequest true "Update Doctor Request"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/{id} [put]
func (h *DoctorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(r.Context())
	actorRole, _ := middleware.GetRoleFromContext(r.Context())

	var req dto.UpdateDoctorProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.Update(r.Context(), actorID, id, actorRole, &req)
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "You cannot edit this doctor profile")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrDepartmentNotFound:
			response.Error(w, http.StatusBadRequest, "Department not found", nil)
		case usecase.ErrInvalidAmount:
			response.Error(w, http.StatusBadRequest, "Invalid consultation fee", nil)
		default:
			response.InternalServerError(w, "Failed to update doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor updated successfully", doctor)
}

// Availability returns the doctor's slot grid for a date
// @Summary Get doctor availability
// @Description List 30-minute slots and whether each is bookable
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Param id path string true "Doctor user ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/{id}/availability [get]
func (h *DoctorHandler) Availability(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor ID", nil)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		dateStr = time.Now().UTC().Format("2006-01-02")
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid date, use YYYY-MM-DD", nil)
		return
	}

	availability, err := h.doctorUsecase.Availability(r.Context(), id, date)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		default:
			response.InternalServerError(w, "Failed to get availability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", availability)
}
