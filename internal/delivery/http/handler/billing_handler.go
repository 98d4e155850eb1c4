package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

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

type BillingHandler struct {
	billingUsecase usecase.BillingUsecase
	validator      *validator.CustomValidator
}

func NewBillingHandler(billingUsecase usecase.BillingUsecase, validator *validator.CustomValidator) *BillingHandler {
	return &BillingHandler{billingUsecase: billingUsecase, validator: validator}
}

// CreateInvoice creates an invoice with line items
// @Summary Create invoice
// @Tags Billing
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateInvoiceRequest true "Create Invoice Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /invoices [post]
func (h *BillingHandler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.GetUserIDFromContext(r.Context())

	var req dto.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	invoice, err := h.billingUsecase.CreateInvoice(r.Context(), actorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrInvalidAmount, usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create invoice")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Invoice created successfully", invoice)
}

// ListInvoices returns invoices visible to the caller
// @Summary List invoices
// @Tags Billing
// @Security BearerAuth
// @Produce json
// @Param status query string false "Filter by status"
// @Param patient_id query string false "Filter by patient"
// @Param date_from query string false "From invoice date (YYYY-MM-DD)"
// @Param date_to query string false "To invoice date (YYYY-MM-DD)"
// @Param search query string false "Search by code or patient name"
// @Success 200 {object} response.Response
// @Router /invoices [get]
func (h *BillingHandler) ListInvoices(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.GetUserIDFromContext(r.Context())
	actorRole, _ := middleware.GetRoleFromContext(r.Context())
	params := query.Parse(r.URL.Query())

	filter, err := parseInvoiceFilter(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	invoices, total, err := h.billingUsecase.ListInvoices(r.Context(), actorID, actorRole, filter, params)
	if err != nil {
		response.InternalServerError(w, "Failed to list invoices")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Invoices retrieved successfully", invoices, response.NewMeta(params.Page, params.Limit, total))
}

// GetInvoice returns an invoice with line items and payments
// @Summary Get invoice by ID
// @Tags Billing
// @Security BearerAuth
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /invoices/{id} [get]
func (h *BillingHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid invoice ID", nil)
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(r.Context())
	actorRole, _ := middleware.GetRoleFromContext(r.Context())

	invoice, err := h.billingUsecase.GetInvoice(r.Context(), actorID, actorRole, id)
	if err != nil {
		h.writeBillingError(w, err, "Failed to get invoice")
		return
	}

	response.Success(w, http.StatusOK, "Invoice retrieved successfully", invoice)
}

// UpdateInvoice edits invoice terms
// @Summary Update invoice
// @Tags Billing
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body dto.UpdateInvoiceRequest true "Update Invoice Request"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /invoices/{id} [put]
func (h *BillingHandler) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid invoice ID", nil)
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(r.Context())

	var req dto.UpdateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	invoice, err := h.billingUsecase.UpdateInvoice(r.Context(), actorID, id, &req)
	if err != nil {
		h.writeBillingError(w, err, "Failed to update invoice")
		return
	}

	response.Success(w, http.StatusOK, "Invoice updated successfully", invoice)
}

// DeleteInvoice removes a draft invoice
// @Summary Delete invoice
// @Tags Billing
// @Security BearerAuth
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /invoices/{id} [delete]
func (h *BillingHandler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid invoice ID", nil)
		return
	}

	if err := h.billingUsecase.DeleteInvoice(r.Context(), id); err != nil {
		h.writeBillingError(w, err, "Failed to delete invoice")
		return
	}

	response.Success(w, http.StatusOK, "Invoice deleted successfully", nil)
}

// AddLineItem appends a line item and recalculates totals
// @Summary Add invoice line item
// @Tags Billing
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body dto.InvoiceLineItemRequest true "Line Item Request"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /invoices/{id}/items [post]
func (h *BillingHandler) AddLineItem(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid invoice ID", nil)
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(r.Context())

	var req dto.InvoiceLineItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	invoice, err := h.billingUsecase.AddLineItem(r.Context(), actorID, id, &req)
	if err != nil {
		h.writeBillingError(w, err, "Failed to add line item")
		return
	}

	response.Success(w, http.StatusOK, "Line item added successfully", invoice)
}

// RemoveLineItem deletes a line item and recalculates totals
// @Summary Remove invoice line item
// @Tags Billing
// @Security BearerAuth
// @Produce json
// @Param id path string true "Invoice ID"
// @Param itemId path int true "Line Item ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /invoices/{id}/items/{itemId} [delete]
func (h *BillingHandler) RemoveLineItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid invoice ID", nil)
		return
	}
	itemID, err := strconv.ParseInt(vars["itemId"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid line item ID", nil)
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(r.Context())

	invoice, err := h.billingUsecase.RemoveLineItem(r.Context(), actorID, id, itemID)
	if err != nil {
		h.writeBillingError(w, err, "Failed to remove line item")
		return
	}

	response.Success(w, http.StatusOK, "Line item removed successfully", invoice)
}

// RecordPayment records a payment against an invoice
// @Summary Record payment
// @Tags Billing
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param request body dto.CreatePaymentRequest true "Payment Request"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /invoices/{id}/payments [post]
func (h *BillingHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid invoice ID", nil)
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(r.Context())

	var req dto.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	payment, err := h.billingUsecase.RecordPayment(r.Context(), actorID, id, &req)
	if err != nil {
		h.writeBillingError(w, err, "Failed to record payment")
		return
	}

	response.Success(w, http.StatusCreated, "Payment recorded successfully", payment)
}

// Summary aggregates billing statistics
// @Summary Billing summary
// @Tags Billing
// @Security BearerAuth
// @Produce json
// @Param date_from query string false "From invoice date (YYYY-MM-DD)"
// @Param date_to query string false "To invoice date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Router /invoices/summary [get]
func (h *BillingHandler) Summary(w http.ResponseWriter, r *http.Request) {
	filter, err := parseInvoiceFilter(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	summary, err := h.billingUsecase.Summary(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to build billing summary")
		return
	}

	response.Success(w, http.StatusOK, "Billing summary retrieved successfully", summary)
}

func (h *BillingHandler) writeBillingError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrInvoiceNotFound:
		response.NotFound(w, "Invoice not found")
	case usecase.ErrLineItemNotFound:
		response.NotFound(w, "Line item not found")
	case usecase.ErrForbidden:
		response.Forbidden(w, "You cannot access this invoice")
	case usecase.ErrInvoiceNotEditable:
		response.Conflict(w, "Invoice can no longer be modified")
	case usecase.ErrOverpayment:
		response.Conflict(w, "Payment exceeds the outstanding balance")
	case usecase.ErrInvalidAmount, usecase.ErrInvalidDateFormat:
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
	default:
		response.InternalServerError(w, fallback)
	}
}

func parseInvoiceFilter(r *http.Request) (*entity.InvoiceFilter, error) {
	q := r.URL.Query()
	filter := &entity.InvoiceFilter{
		Status:   q.Get("status"),
		DateFrom: q.Get("date_from"),
		DateTo:   q.Get("date_to"),
	}
	if raw := q.Get("patient_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, usecase.ErrPatientNotFound
		}
		filter.PatientID = &id
	}
	return filter, nil
}
