package repository

import (
	"errors"
	"time"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type invoiceRepository struct{}

func NewInvoiceRepository() domainRepo.InvoiceRepository {
	return &invoiceRepository{}
}

func (r *invoiceRepository) Create(db *gorm.DB, invoice *entity.Invoice) error {
	return db.Create(invoice).Error
}

func (r *invoiceRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := db.Preload("Patient.User").Preload("LineItems").Preload("Payments").
		Where("id = ?", id).First(&invoice).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &invoice, nil
}

func applyInvoiceFilter(query *gorm.DB, filter *entity.InvoiceFilter) *gorm.DB {
	if filter == nil {
		return query
	}
	if filter.PatientID != nil {
		query = query.Where("invoices.patient_id = ?", *filter.PatientID)
	}
	if filter.Status != "" {
		query = query.Where("invoices.status = ?", filter.Status)
	}
	if filter.DateFrom != "" {
		query = query.Where("invoices.invoice_date >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		query = query.Where("invoices.invoice_date <= ?", filter.DateTo)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.
			Joins("JOIN patient_profiles ON patient_profiles.user_id = invoices.patient_id").
			Joins("JOIN users ON users.id = patient_profiles.user_id").
			Where("invoices.invoice_code ILIKE ? OR users.full_name ILIKE ?", pattern, pattern)
	}
	return query
}

func (r *invoiceRepository) FindAll(db *gorm.DB, filter *entity.InvoiceFilter, limit, offset int) ([]entity.Invoice, int64, error) {
	var invoices []entity.Invoice
	var total int64

	query := applyInvoiceFilter(db.Model(&entity.Invoice{}), filter)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Patient.User").Preload("LineItems").
		Order("invoice_date DESC, created_at DESC").
		Limit(limit).Offset(offset).
		Find(&invoices).Error
	if err != nil {
		return nil, 0, err
	}
	return invoices, total, nil
}

func (r *invoiceRepository) Update(db *gorm.DB, invoice *entity.Invoice) error {
	return db.Omit("Patient", "Appointment", "LineItems", "Payments").Save(invoice).Error
}

func (r *invoiceRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ? AND status = ?", id, entity.InvoiceStatusDraft).Delete(&entity.Invoice{})
	return result.RowsAffected, result.Error
}

func (r *invoiceRepository) Summarize(db *gorm.DB, filter *entity.InvoiceFilter) (*domainRepo.InvoiceSummary, error) {
	type row struct {
		TotalInvoices int64
		TotalAmount   decimal.Decimal
		TotalPaid     decimal.Decimal
	}
	var res row

	query := applyInvoiceFilter(db.Model(&entity.Invoice{}), filter)
	err := query.Select(`
		COUNT(invoices.id) AS total_invoices,
		COALESCE(SUM(invoices.total_amount), 0) AS total_amount,
		COALESCE(SUM(invoices.paid_amount), 0) AS total_paid
	`).Scan(&res).Error
	if err != nil {
		return nil, err
	}

	var overdue int64
	overdueQuery := applyInvoiceFilter(db.Model(&entity.Invoice{}), filter)
	err = overdueQuery.
		Where("invoices.due_date < ? AND invoices.status IN ?",
			time.Now().Format("2006-01-02"),
			[]entity.InvoiceStatus{entity.InvoiceStatusSent, entity.InvoiceStatusPartiallyPaid, entity.InvoiceStatusOverdue}).
		Count(&overdue).Error
	if err != nil {
		return nil, err
	}

	return &domainRepo.InvoiceSummary{
		TotalInvoices:    res.TotalInvoices,
		TotalAmount:      res.TotalAmount,
		TotalPaid:        res.TotalPaid,
		TotalOutstanding: res.TotalAmount.Sub(res.TotalPaid),
		OverdueCount:     overdue,
	}, nil
}

func (r *invoiceRepository) CreateLineItem(db *gorm.DB, item *entity.InvoiceLineItem) error {
	return db.Create(item).Error
}

func (r *invoiceRepository) FindLineItem(db *gorm.DB, invoiceID uuid.UUID, itemID int64) (*entity.InvoiceLineItem, error) {
	var item entity.InvoiceLineItem
	err := db.Where("id = ? AND invoice_id = ?", itemID, invoiceID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *invoiceRepository) DeleteLineItem(db *gorm.DB, invoiceID uuid.UUID, itemID int64) (int64, error) {
	result := db.Where("id = ? AND invoice_id = ?", itemID, invoiceID).Delete(&entity.InvoiceLineItem{})
	return result.RowsAffected, result.Error
}

type paymentRepository struct{}

func NewPaymentRepository() domainRepo.PaymentRepository {
	return &paymentRepository{}
}

func (r *paymentRepository) Create(db *gorm.DB, payment *entity.Payment) error {
	return db.Create(payment).Error
}

func (r *paymentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Payment, error) {
	var payment entity.Payment
	err := db.Where("id = ?", id).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindByInvoiceID(db *gorm.DB, invoiceID uuid.UUID) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := db.Where("invoice_id = ?", invoiceID).Order("payment_date DESC").Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) SumCompletedByInvoice(db *gorm.DB, invoiceID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := db.Model(&entity.Payment{}).
		Where("invoice_id = ? AND status = ?", invoiceID, entity.PaymentStatusCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *paymentRepository) Update(db *gorm.DB, payment *entity.Payment) error {
	return db.Omit("Invoice").Save(payment).Error
}
