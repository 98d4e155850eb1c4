package handler

import (
	"fmt"
	"net/http"
	"time"

	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/response"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type ExportHandler struct {
	billingUsecase usecase.BillingUsecase
	log            *logrus.Logger
}

func NewExportHandler(billingUsecase usecase.BillingUsecase, log *logrus.Logger) *ExportHandler {
	return &ExportHandler{billingUsecase: billingUsecase, log: log}
}

// ExportInvoices streams the filtered invoice list as an XLSX workbook
// @Summary Export invoices to Excel
// @Tags Billing
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param status query string false "Filter by status"
// @Param date_from query string false "From invoice date (YYYY-MM-DD)"
// @Param date_to query string false "To invoice date (YYYY-MM-DD)"
// @Success 200 {file} binary
// @Router /invoices/export [get]
func (h *ExportHandler) ExportInvoices(w http.ResponseWriter, r *http.Request) {
	filter, err := parseInvoiceFilter(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	invoices, err := h.billingUsecase.ExportInvoices(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to export invoices")
		return
	}

	file := excelize.NewFile()
	defer file.Close()

	const sheet = "Invoices"
	index, err := file.NewSheet(sheet)
	if err != nil {
		response.InternalServerError(w, "Failed to export invoices")
		return
	}
	file.SetActiveSheet(index)
	file.DeleteSheet("Sheet1")

	headers := []string{"Invoice Code", "Patient", "Invoice Date", "Due Date", "Status", "Subtotal", "Tax", "Discount", "Total", "Paid", "Balance Due"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		file.SetCellValue(sheet, cell, header)
	}

	for row, invoice := range invoices {
		values := []interface{}{
			invoice.InvoiceCode,
			invoice.PatientName,
			invoice.InvoiceDate,
			invoice.DueDate,
			invoice.Status,
			invoice.Subtotal,
			invoice.TaxAmount,
			invoice.DiscountAmount,
			invoice.TotalAmount,
			invoice.PaidAmount,
			invoice.BalanceDue,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			file.SetCellValue(sheet, cell, value)
		}
	}

	filename := fmt.Sprintf("invoices_%s.xlsx", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := file.Write(w); err != nil {
		h.log.Warnf("Failed to write invoice export: %+v", err)
	}
}
