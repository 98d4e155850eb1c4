package converter

import (
	"time"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

// InvoiceToResponse converts an Invoice entity to InvoiceResponse DTO
func InvoiceToResponse(invoice *entity.Invoice) *dto.InvoiceResponse {
	if invoice == nil {
		return nil
	}

	resp := &dto.InvoiceResponse{
		ID:             invoice.ID.String(),
		InvoiceCode:    invoice.InvoiceCode,
		PatientID:      invoice.PatientID.String(),
		InvoiceDate:    invoice.InvoiceDate.Format("2006-01-02"),
		DueDate:        invoice.DueDate.Format("2006-01-02"),
		Status:         string(invoice.Status),
		Subtotal:       invoice.Subtotal.StringFixed(2),
		TaxRate:        invoice.TaxRate.String(),
		TaxAmount:      invoice.TaxAmount.StringFixed(2),
		DiscountAmount: invoice.DiscountAmount.StringFixed(2),
		TotalAmount:    invoice.TotalAmount.StringFixed(2),
		PaidAmount:     invoice.PaidAmount.StringFixed(2),
		BalanceDue:     invoice.BalanceDue().StringFixed(2),
		Notes:          invoice.Notes,
		CreatedAt:      invoice.CreatedAt.Format(time.RFC3339),
	}
	if invoice.AppointmentID != nil {
		resp.AppointmentID = invoice.AppointmentID.String()
	}
	if invoice.Patient.User.FullName != "" {
		resp.PatientName = invoice.Patient.User.FullName
	}
	if len(invoice.LineItems) > 0 {
		resp.LineItems = LineItemsToResponses(invoice.LineItems)
	}
	if len(invoice.Payments) > 0 {
		resp.Payments = PaymentsToResponses(invoice.Payments)
	}
	return resp
}

// InvoicesToResponses converts a slice of Invoice entities to slice of InvoiceResponse DTOs
func InvoicesToResponses(invoices []entity.Invoice) []dto.InvoiceResponse {
	responses := make([]dto.InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = *InvoiceToResponse(&invoices[i])
	}
	return responses
}

// LineItemToResponse converts an InvoiceLineItem entity to its DTO
func LineItemToResponse(item *entity.InvoiceLineItem) *dto.InvoiceLineItemResponse {
	if item == nil {
		return nil
	}
	return &dto.InvoiceLineItemResponse{
		ID:          item.ID,
		Description: item.Description,
		Quantity:    item.Quantity.String(),
		UnitPrice:   item.UnitPrice.StringFixed(2),
		TotalAmount: item.TotalAmount.StringFixed(2),
	}
}

// LineItemsToResponses converts a slice of line items to DTOs
func LineItemsToResponses(items []entity.InvoiceLineItem) []dto.InvoiceLineItemResponse {
	responses := make([]dto.InvoiceLineItemResponse, len(items))
	for i := range items {
		responses[i] = *LineItemToResponse(&items[i])
	}
	return responses
}

// PaymentToResponse converts a Payment entity to PaymentResponse DTO
func PaymentToResponse(payment *entity.Payment) *dto.PaymentResponse {
	if payment == nil {
		return nil
	}
	return &dto.PaymentResponse{
		ID:              payment.ID.String(),
		PaymentCode:     payment.PaymentCode,
		InvoiceID:       payment.InvoiceID.String(),
		Amount:          payment.Amount.StringFixed(2),
		Method:          string(payment.Method),
		Status:          string(payment.Status),
		PaymentDate:     payment.PaymentDate.Format(time.RFC3339),
		ReferenceNumber: payment.ReferenceNumber,
		Notes:           payment.Notes,
		CreatedAt:       payment.CreatedAt.Format(time.RFC3339),
	}
}

// PaymentsToResponses converts a slice of Payment entities to slice of PaymentResponse DTOs
func PaymentsToResponses(payments []entity.Payment) []dto.PaymentResponse {
	responses := make([]dto.PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = *PaymentToResponse(&payments[i])
	}
	return responses
}
