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

type MedicalRecordHandler struct {
	recordUsecase usecase.MedicalRecordUsecase
	validator     *validator.CustomValidator
}

func NewMedicalRecordHandler(recordUsecase usecase.MedicalRecordUsecase, validator *validator.CustomValidator) *MedicalRecordHandler {
	return &MedicalRecordHandler{recordUsecase: recordUsecase, validator: validator}
}

// Create adds a medical record for a patient
// @Summary Create medical record
// @Tags MedicalRecords
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateMedicalRecordRequest true "Create Medical Record Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /medical-records [post]
func (h *MedicalRecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.GetUserIDFromContext(r.Context())
	actorRole, _ := middleware.GetRoleFromContext(r.Context())

	var req dto.CreateMedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.Create(r.Context(), actorID, actorRole, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrInvalidRecordType, usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create medical record")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medical record created successfully", record)
}

// Get returns a medical record by ID
// @Summary Get medical record by ID
// @Tags MedicalRecords
// @Security BearerAuth
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /medical-records/{id} [get]
func (h *MedicalRecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(r.Context())
	actorRole, _ := middleware.GetRoleFromContext(r.Context())

	record, err := h.recordUsecase.GetByID(r.Context(), actorID, actorRole, id)
	if err != nil {
		switch err {
		case usecase.ErrMedicalRecordNotFound:
			response.NotFound(w, "Medical record not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "You cannot view this medical record")
		default:
			response.InternalServerError(w, "Failed to get medical record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical record retrieved successfully", record)
}

// ListByPatient returns a patient's record history
// @Summary List patient medical records
// @Tags MedicalRecords
// @Security BearerAuth
// @Produce json
// @Param id path string true "Patient user ID"
// @Param record_type query string false "Filter by record type"
// @Success 200 {object} response.Response
// @Router /patients/{id}/medical-records [get]
func (h *MedicalRecordHandler) ListByPatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(r.Context())
	actorRole, _ := middleware.GetRoleFromContext(r.Context())
	params := query.Parse(r.URL.Query())

	records, total, err := h.recordUsecase.ListByPatient(r.Context(), actorID, actorRole, patientID, r.URL.Query().Get("record_type"), params)
	if err != nil {
		switch err {
		case usecase.ErrForbidden:
			response.Forbidden(w, "You cannot view these medical records")
		default:
			response.InternalServerError(w, "Failed to list medical records")
		}
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Medical records retrieved successfully", records, response.NewMeta(params.Page, params.Limit, total))
}

// Update edits a medical record
// @Summary Update medical record
// @Tags MedicalRecords
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param request body dto.UpdateMedicalRecordRequest true "Update Medical Record Request"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /medical-records/{id} [put]
func (h *MedicalRecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(r.Context())
	actorRole, _ := middleware.GetRoleFromContext(r.Context())

	var req dto.UpdateMedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.recordUsecase.Update(r.Context(), actorID, actorRole, id, &req)
	if err != nil {
		switch err {
		case usecase.ErrMedicalRecordNotFound:
			response.NotFound(w, "Medical record not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "You cannot edit this medical record")
		case usecase.ErrInvalidRecordType:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update medical record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical record updated successfully", record)
}

// Delete removes a medical record (admin only)
// @Summary Delete medical record
// @Tags MedicalRecords
// @Security BearerAuth
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /medical-records/{id} [delete]
func (h *MedicalRecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(r.Context())
	actorRole, _ := middleware.GetRoleFromContext(r.Context())

	if err := h.recordUsecase.Delete(r.Context(), actorID, actorRole, id); err != nil {
		switch err {
		case usecase.ErrMedicalRecordNotFound:
			response.NotFound(w, "Medical record not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "You cannot delete medical records")
		default:
			response.InternalServerError(w, "Failed to delete medical record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical record deleted successfully", nil)
}
