package handler

import (
	"encoding/json"
	"net/http"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/delivery/http/middleware"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/query"
	"hospital-management-api/pkg/response"
	"hospital-management-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{patientUsecase: patientUsecase, validator: validator}
}

// List returns patients with search and pagination
// @Summary List patients
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Param search query string false "Search by name, email or code"
// @Param active query bool false "Only active patients"
// @Success 200 {object} response.Response
// @Router /patients [get]
func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	actorRole, _ := middleware.GetRoleFromContext(r.Context())
	params := query.Parse(r.URL.Query())
	activeOnly := r.URL.Query().Get("active") == "true"

	patients, total, err := h.patientUsecase.List(r.Context(), actorRole, activeOnly, params)
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "You cannot list patients")
		default:
			response.InternalServerError(w, "Failed to list patients")
		}
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Patients retrieved successfully", patients, response.NewMeta(params.Page, params.Limit, total))
}

// Me returns the logged-in patient's own profile
// @Summary Get own patient profile
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/me [get]
func (h *PatientHandler) Me(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.GetUserIDFromContext(r.Context())
	actorRole, _ := middleware.GetRoleFromContext(r.Context())

	patient, err := h.patientUsecase.GetByUserID(r.Context(), actorID, actorID, actorRole)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient profile not found")
		default:
			response.InternalServerError(w, "Failed to get patient profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient profile retrieved successfully", patient)
}

// Get returns a patient profile by user ID
// @Summary Get patient by ID
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Param id path string true "Patient user ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id} [get]
func (h *PatientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(r.Context())
	actorRole, _ := middleware.GetRoleFromContext(r.Context())

	patient, err := h.patientUsecase.GetByUserID(r.Context(), actorID, id, actorRole)
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "You cannot view this patient")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to get patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}

// Update edits a patient profile
// @Summary Update patient profile
// @Tags Patients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Patient user ID"
// @Param request body dto.UpdatePatientProfileRequest true "Update Patient Request"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id} [put]
func (h *PatientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(r.Context())
	actorRole, _ := middleware.GetRoleFromContext(r.Context())

	var req dto.UpdatePatientProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Update(r.Context(), actorID, id, actorRole, &req)
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "You cannot edit this patient profile")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrInvalidBloodType:
			response.Error(w, http.StatusBadRequest, "Invalid blood type", nil)
		default:
			response.InternalServerError(w, "Failed to update patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", patient)
}
