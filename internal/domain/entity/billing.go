package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the billing state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft         InvoiceStatus = "draft"
	InvoiceStatusSent          InvoiceStatus = "sent"
	InvoiceStatusPaid          InvoiceStatus = "paid"
	InvoiceStatusPartiallyPaid InvoiceStatus = "partially_paid"
	InvoiceStatusOverdue       InvoiceStatus = "overdue"
	InvoiceStatusCancelled     InvoiceStatus = "cancelled"
	InvoiceStatusRefunded      InvoiceStatus = "refunded"
)

// Invoice bills a patient, optionally linked to an appointment.
type Invoice struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	InvoiceCode    string          `gorm:"type:varchar(30);uniqueIndex;not null" json:"invoice_code"`
	PatientID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"patient_id"`
	AppointmentID  *uuid.UUID      `gorm:"type:uuid;index" json:"appointment_id,omitempty"`
	InvoiceDate    time.Time       `gorm:"type:date;not null" json:"invoice_date"`
	DueDate        time.Time       `gorm:"type:date;not null;index" json:"due_date"`
	Status         InvoiceStatus   `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"subtotal"`
	TaxRate        decimal.Decimal `gorm:"type:decimal(5,4);not null;default:0" json:"tax_rate"`
	TaxAmount      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"tax_amount"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"discount_amount"`
	TotalAmount    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total_amount"`
	PaidAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"paid_amount"`
	Notes          string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedByID    *uuid.UUID      `gorm:"type:uuid" json:"created_by_id,omitempty"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient     PatientProfile    `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Appointment *Appointment      `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
	LineItems   []InvoiceLineItem `gorm:"foreignKey:InvoiceID" json:"line_items,omitempty"`
	Payments    []Payment         `gorm:"foreignKey:InvoiceID" json:"payments,omitempty"`
}

func (Invoice) TableName() string {
	return "invoices"
}

// RecalculateTotals derives subtotal, tax and total from the loaded
// line items. Call inside the same transaction that mutated them.
func (i *Invoice) RecalculateTotals() {
	subtotal := decimal.Zero
	for _, item := range i.LineItems {
		subtotal = subtotal.Add(item.TotalAmount)
	}
	i.Subtotal = subtotal
	i.TaxAmount = subtotal.Mul(i.TaxRate).Round(2)
	i.TotalAmount = subtotal.Add(i.TaxAmount).Sub(i.DiscountAmount)
}

// ApplyPaidAmount updates paid amount and rolls the status forward.
// Cancelled and refunded invoices are left untouched.
func (i *Invoice) ApplyPaidAmount(paid decimal.Decimal) {
	if i.Status == InvoiceStatusCancelled || i.Status == InvoiceStatusRefunded {
		return
	}
	i.PaidAmount = paid
	switch {
	case paid.GreaterThanOrEqual(i.TotalAmount) && i.TotalAmount.GreaterThan(decimal.Zero):
		i.Status = InvoiceStatusPaid
	case paid.GreaterThan(decimal.Zero):
		i.Status = InvoiceStatusPartiallyPaid
	}
}

// BalanceDue is the outstanding amount.
func (i *Invoice) BalanceDue() decimal.Decimal {
	return i.TotalAmount.Sub(i.PaidAmount)
}

func (i *Invoice) IsPaid() bool {
	return i.PaidAmount.GreaterThanOrEqual(i.TotalAmount) && i.TotalAmount.GreaterThan(decimal.Zero)
}

// IsOverdue reports whether the invoice is past due and unpaid.
func (i *Invoice) IsOverdue(today time.Time) bool {
	return i.DueDate.Before(today.Truncate(24*time.Hour)) && !i.IsPaid() &&
		i.Status != InvoiceStatusCancelled && i.Status != InvoiceStatusRefunded
}

// InvoiceLineItem is a single billed position on an invoice.
type InvoiceLineItem struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"invoice_id"`
	Description string          `gorm:"type:varchar(200);not null" json:"description"`
	Quantity    decimal.Decimal `gorm:"type:decimal(8,2);not null;default:1" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"unit_price"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total_amount"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (InvoiceLineItem) TableName() string {
	return "invoice_line_items"
}

// RecalculateTotal sets total = quantity * unit price.
func (li *InvoiceLineItem) RecalculateTotal() {
	li.TotalAmount = li.Quantity.Mul(li.UnitPrice).Round(2)
}

// PaymentMethod enumerates accepted payment channels
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCreditCard   PaymentMethod = "credit_card"
	PaymentMethodDebitCard    PaymentMethod = "debit_card"
	PaymentMethodCheck        PaymentMethod = "check"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodInsurance    PaymentMethod = "insurance"
)

// PaymentStatus represents the state of a payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// Payment records money received against an invoice.
type Payment struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PaymentCode     string          `gorm:"type:varchar(30);uniqueIndex;not null" json:"payment_code"`
	InvoiceID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"invoice_id"`
	Amount          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Method          PaymentMethod   `gorm:"type:varchar(20);not null;default:'cash'" json:"method"`
	Status          PaymentStatus   `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	PaymentDate     time.Time       `gorm:"not null" json:"payment_date"`
	ReferenceNumber string          `gorm:"type:varchar(100)" json:"reference_number,omitempty"`
	Notes           string          `gorm:"type:text" json:"notes,omitempty"`
	ProcessedByID   *uuid.UUID      `gorm:"type:uuid" json:"processed_by_id,omitempty"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"invoice,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}

// InvoiceFilter is a domain-level filter for querying invoices.
type InvoiceFilter struct {
	PatientID *uuid.UUID
	Status    string
	DateFrom  string // Format: YYYY-MM-DD
	DateTo    string // Format: YYYY-MM-DD
	Search    string
}
