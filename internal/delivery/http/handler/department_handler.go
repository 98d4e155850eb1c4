package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/query"
	"hospital-management-api/pkg/response"
	"hospital-management-api/pkg/validator"

	"github.com/gorilla/mux"
)

type DepartmentHandler struct {
	departmentUsecase usecase.DepartmentUsecase
	validator         *validator.CustomValidator
}

func NewDepartmentHandler(departmentUsecase usecase.DepartmentUsecase, validator *validator.CustomValidator) *DepartmentHandler {
	return &DepartmentHandler{departmentUsecase: departmentUsecase, validator: validator}
}

// Create adds a new department
// @Summary Create department
// @Tags Departments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateDepartmentRequest true "Create Department Request"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /departments [post]
func (h *DepartmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	dept, err := h.departmentUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrDepartmentNameTaken:
			response.Conflict(w, "Department name already exists")
		case usecase.ErrUserNotFound:
			response.Error(w, http.StatusBadRequest, "Head user not found", nil)
		default:
			response.InternalServerError(w, "Failed to create department")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Department created successfully", dept)
}

// List returns departments with search and pagination
// @Summary List departments
// @Tags Departments
// @Security BearerAuth
// @Produce json
// @Param search query string false "Search by name"
// @Param active query bool false "Only active departments"
// @Success 200 {object} response.Response
// @Router /departments [get]
func (h *DepartmentHandler) List(w http.ResponseWriter, r *http.Request) {
	params := query.Parse(r.URL.Query())
	activeOnly := r.URL.Query().Get("active") == "true"

	depts, total, err := h.departmentUsecase.List(r.Context(), activeOnly, params)
	if err != nil {
		response.InternalServerError(w, "Failed to list departments")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Departments retrieved successfully", depts, response.NewMeta(params.Page, params.Limit, total))
}

// Get returns a department by ID
// @Summary Get department by ID
// @Tags Departments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /departments/{id} [get]
func (h *DepartmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid department ID", nil)
		return
	}

	dept, err := h.departmentUsecase.GetByID(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrDepartmentNotFound:
			response.NotFound(w, "Department not found")
		default:
			response.InternalServerError(w, "Failed to get department")
		}
		return
	}

	response.Success(w, http.StatusOK, "Department retrieved successfully", dept)
}

// Update edits a department
// @Summary Update department
// @Tags Departments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Department ID"
// @Param request body dto.UpdateDepartmentRequest true "Update Department Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /departments/{id} [put]
func (h *DepartmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid department ID", nil)
		return
	}

	var req dto.UpdateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	dept, err := h.departmentUsecase.Update(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrDepartmentNotFound:
			response.NotFound(w, "Department not found")
		case usecase.ErrDepartmentNameTaken:
			response.Conflict(w, "Department name already exists")
		case usecase.ErrUserNotFound:
			response.Error(w, http.StatusBadRequest, "Head user not found", nil)
		default:
			response.InternalServerError(w, "Failed to update department")
		}
		return
	}

	response.Success(w, http.StatusOK, "Department updated successfully", dept)
}

// Delete removes a department without assigned doctors
// @Summary Delete department
// @Tags Departments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /departments/{id} [delete]
func (h *DepartmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid department ID", nil)
		return
	}

	if err := h.departmentUsecase.Delete(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrDepartmentNotFound:
			response.NotFound(w, "Department not found")
		case usecase.ErrDepartmentHasDoctor:
			response.Conflict(w, "Department still has doctors assigned")
		default:
			response.InternalServerError(w, "Failed to delete department")
		}
		return
	}

	response.Success(w, http.StatusOK, "Department deleted successfully", nil)
}
