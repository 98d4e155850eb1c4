package repository

import (
	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvoiceSummary aggregates invoice statistics for a date range.
type InvoiceSummary struct {
	TotalInvoices    int64           `json:"total_invoices"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
	OverdueCount     int64           `json:"overdue_count"`
}

type InvoiceRepository interface {
	Create(db *gorm.DB, invoice *entity.Invoice) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Invoice, error)
	FindAll(db *gorm.DB, filter *entity.InvoiceFilter, limit, offset int) ([]entity.Invoice, int64, error)
	Update(db *gorm.DB, invoice *entity.Invoice) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	Summarize(db *gorm.DB, filter *entity.InvoiceFilter) (*InvoiceSummary, error)

	CreateLineItem(db *gorm.DB, item *entity.InvoiceLineItem) error
	FindLineItem(db *gorm.DB, invoiceID uuid.UUID, itemID int64) (*entity.InvoiceLineItem, error)
	DeleteLineItem(db *gorm.DB, invoiceID uuid.UUID, itemID int64) (int64, error)
}

type PaymentRepository interface {
	Create(db *gorm.DB, payment *entity.Payment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Payment, error)
	FindByInvoiceID(db *gorm.DB, invoiceID uuid.UUID) ([]entity.Payment, error)
	// SumCompletedByInvoice totals completed payments for an invoice.
	SumCompletedByInvoice(db *gorm.DB, invoiceID uuid.UUID) (decimal.Decimal, error)
	Update(db *gorm.DB, payment *entity.Payment) error
}
