package dto

type InvoiceLineItemRequest struct {
	Description string `json:"description" validate:"required,min=1,max=200"`
	Quantity    string `json:"quantity" validate:"required"`
	UnitPrice   string `json:"unit_price" validate:"required"`
}

type CreateInvoiceRequest struct {
	PatientID      string                   `json:"patient_id" validate:"required,uuid"`
	AppointmentID  string                   `json:"appointment_id" validate:"omitempty,uuid"`
	DueDate        string                   `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	TaxRate        string                   `json:"tax_rate" validate:"omitempty"`
	DiscountAmount string                   `json:"discount_amount" validate:"omitempty"`
	Notes          string                   `json:"notes" validate:"omitempty,max=2000"`
	LineItems      []InvoiceLineItemRequest `json:"line_items" validate:"required,min=1,dive"`
}

type UpdateInvoiceRequest struct {
	DueDate        string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	TaxRate        string `json:"tax_rate" validate:"omitempty"`
	DiscountAmount string `json:"discount_amount" validate:"omitempty"`
	Notes          string `json:"notes" validate:"omitempty,max=2000"`
	Status         string `json:"status" validate:"omitempty,oneof=draft sent paid partially_paid overdue cancelled refunded"`
}

type CreatePaymentRequest struct {
	Amount          string `json:"amount" validate:"required"`
	Method          string `json:"method" validate:"required,oneof=cash credit_card debit_card check bank_transfer insurance"`
	ReferenceNumber string `json:"reference_number" validate:"omitempty,max=100"`
	Notes           string `json:"notes" validate:"omitempty,max=1000"`
}

type InvoiceLineItemResponse struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	TotalAmount string `json:"total_amount"`
}

type PaymentResponse struct {
	ID              string `json:"id"`
	PaymentCode     string `json:"payment_code"`
	InvoiceID       string `json:"invoice_id"`
	Amount          string `json:"amount"`
	Method          string `json:"method"`
	Status          string `json:"status"`
	PaymentDate     string `json:"payment_date"`
	ReferenceNumber string `json:"reference_number,omitempty"`
	Notes           string `json:"notes,omitempty"`
	CreatedAt       string `json:"created_at"`
}

type InvoiceResponse struct {
	ID             string                    `json:"id"`
	InvoiceCode    string                    `json:"invoice_code"`
	PatientID      string                    `json:"patient_id"`
	PatientName    string                    `json:"patient_name,omitempty"`
	AppointmentID  string                    `json:"appointment_id,omitempty"`
	InvoiceDate    string                    `json:"invoice_date"`
	DueDate        string                    `json:"due_date"`
	Status         string                    `json:"status"`
	Subtotal       string                    `json:"subtotal"`
	TaxRate        string                    `json:"tax_rate"`
	TaxAmount      string                    `json:"tax_amount"`
	DiscountAmount string                    `json:"discount_amount"`
	TotalAmount    string                    `json:"total_amount"`
	PaidAmount     string                    `json:"paid_amount"`
	BalanceDue     string                    `json:"balance_due"`
	Notes          string                    `json:"notes,omitempty"`
	LineItems      []InvoiceLineItemResponse `json:"line_items,omitempty"`
	Payments       []PaymentResponse         `json:"payments,omitempty"`
	CreatedAt      string                    `json:"created_at"`
}

type BillingSummaryResponse struct {
	TotalInvoiced      string `json:"total_invoiced"`
	TotalPaid          string `json:"total_paid"`
	TotalOutstanding   string `json:"total_outstanding"`
	InvoiceCount       int64  `json:"invoice_count"`
	PaidCount          int64  `json:"paid_count"`
	OverdueCount       int64  `json:"overdue_count"`
	DraftCount         int64  `json:"draft_count"`
	PartiallyPaidCount int64  `json:"partially_paid_count"`
}
