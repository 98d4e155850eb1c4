package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/internal/service"
	"hospital-management-api/pkg/query"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvoiceNotFound    = errors.New("invoice not found")
	ErrLineItemNotFound   = errors.New("invoice line item not found")
	ErrInvoiceNotEditable = errors.New("invoice can no longer be modified")
	ErrOverpayment        = errors.New("payment exceeds the outstanding balance")
	ErrPaymentNotFound    = errors.New("payment not found")
)

// Default payment terms applied when the request omits a due date.
const defaultDueDays = 30

type BillingUsecase interface {
	CreateInvoice(ctx context.Context, actorID uuid.UUID, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	GetInvoice(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*dto.InvoiceResponse, error)
	ListInvoices(ctx context.Context, actorID uuid.UUID, actorRole string, filter *entity.InvoiceFilter, params query.Params) ([]dto.InvoiceResponse, int64, error)
	UpdateInvoice(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req *dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error)
	DeleteInvoice(ctx context.Context, id uuid.UUID) error
	AddLineItem(ctx context.Context, actorID uuid.UUID, invoiceID uuid.UUID, req *dto.InvoiceLineItemRequest) (*dto.InvoiceResponse, error)
	RemoveLineItem(ctx context.Context, actorID uuid.UUID, invoiceID uuid.UUID, itemID int64) (*dto.InvoiceResponse, error)
	RecordPayment(ctx context.Context, actorID uuid.UUID, invoiceID uuid.UUID, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error)
	Summary(ctx context.Context, filter *entity.InvoiceFilter) (*dto.BillingSummaryResponse, error)
	ExportInvoices(ctx context.Context, filter *entity.InvoiceFilter) ([]dto.InvoiceResponse, error)
}

type billingUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	invoiceRepo  repository.InvoiceRepository
	paymentRepo  repository.PaymentRepository
	patientRepo  repository.PatientProfileRepository
	auditService service.AuditService
	now          func() time.Time
}

func NewBillingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	patientRepo repository.PatientProfileRepository,
	auditService service.AuditService,
) BillingUsecase {
	return &billingUsecase{
		db:           db,
		log:          log,
		invoiceRepo:  invoiceRepo,
		paymentRepo:  paymentRepo,
		patientRepo:  patientRepo,
		auditService: auditService,
		now:          time.Now,
	}
}

func (u *billingUsecase) CreateInvoice(ctx context.Context, actorID uuid.UUID, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		return nil, ErrPatientNotFound
	}

	taxRate := decimal.Zero
	if req.TaxRate != "" {
		taxRate, err = decimal.NewFromString(req.TaxRate)
		if err != nil || taxRate.IsNegative() || taxRate.GreaterThan(decimal.NewFromInt(1)) {
			return nil, ErrInvalidAmount
		}
	}
	discount := decimal.Zero
	if req.DiscountAmount != "" {
		discount, err = decimal.NewFromString(req.DiscountAmount)
		if err != nil || discount.IsNegative() {
			return nil, ErrInvalidAmount
		}
	}

	today := u.now().UTC().Truncate(24 * time.Hour)
	dueDate := today.AddDate(0, 0, defaultDueDays)
	if req.DueDate != "" {
		dueDate, err = time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByUserID(tx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	invoice := &entity.Invoice{
		InvoiceCode:    generateEntityCode("INV", today),
		PatientID:      patientID,
		InvoiceDate:    today,
		DueDate:        dueDate,
		Status:         entity.InvoiceStatusDraft,
		TaxRate:        taxRate,
		DiscountAmount: discount,
		Notes:          req.Notes,
		CreatedByID:    &actorID,
	}
	if req.AppointmentID != "" {
		apptID, err := uuid.Parse(req.AppointmentID)
		if err != nil {
			return nil, ErrAppointmentNotFound
		}
		invoice.AppointmentID = &apptID
	}

	if err := u.invoiceRepo.Create(tx, invoice); err != nil {
		if isForeignKeyError(err, "appointment") {
			return nil, ErrAppointmentNotFound
		}
		u.log.Warnf("Failed to create invoice: %+v", err)
		return nil, err
	}

	for _, itemReq := range req.LineItems {
		item, err := buildLineItem(invoice.ID, &itemReq)
		if err != nil {
			return nil, err
		}
		if err := u.invoiceRepo.CreateLineItem(tx, item); err != nil {
			u.log.Warnf("Failed to create line item: %+v", err)
			return nil, err
		}
		invoice.LineItems = append(invoice.LineItems, *item)
	}

	invoice.RecalculateTotals()
	if err := u.invoiceRepo.Update(tx, invoice); err != nil {
		u.log.Warnf("Failed to store invoice totals: %+v", err)
		return nil, err
	}

	u.auditService.Record(tx, &actorID, entity.AuditActionInvoiceCreate, entity.JSON{
		"invoice_code": invoice.InvoiceCode,
		"patient_id":   patientID.String(),
		"total":        invoice.TotalAmount.String(),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.InvoiceToResponse(invoice), nil
}

func (u *billingUsecase) GetInvoice(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*dto.InvoiceResponse, error) {
	invoice, err := u.invoiceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find invoice: %+v", err)
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}
	if entity.RoleMatches(actorRole, entity.RolePatient) && invoice.PatientID != actorID {
		return nil, ErrForbidden
	}
	return converter.InvoiceToResponse(invoice), nil
}

// ListInvoices scopes patients to their own invoices.
func (u *billingUsecase) ListInvoices(ctx context.Context, actorID uuid.UUID, actorRole string, filter *entity.InvoiceFilter, params query.Params) ([]dto.InvoiceResponse, int64, error) {
	if filter == nil {
		filter = &entity.InvoiceFilter{}
	}
	if entity.RoleMatches(actorRole, entity.RolePatient) {
		id := actorID
		filter.PatientID = &id
	}
	filter.Search = params.Search

	invoices, total, err := u.invoiceRepo.FindAll(u.db.WithContext(ctx), filter, params.Limit, params.Offset())
	if err != nil {
		u.log.Warnf("Failed to list invoices: %+v", err)
		return nil, 0, err
	}
	return converter.InvoicesToResponses(invoices), total, nil
}

func (u *billingUsecase) UpdateInvoice(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req *dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	invoice, err := u.invoiceRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find invoice: %+v", err)
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}
	if invoice.Status == entity.InvoiceStatusPaid || invoice.Status == entity.InvoiceStatusRefunded {
		return nil, ErrInvoiceNotEditable
	}

	if req.DueDate != "" {
		dueDate, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		invoice.DueDate = dueDate
	}
	if req.TaxRate != "" {
		taxRate, err := decimal.NewFromString(req.TaxRate)
		if err != nil || taxRate.IsNegative() || taxRate.GreaterThan(decimal.NewFromInt(1)) {
			return nil, ErrInvalidAmount
		}
		invoice.TaxRate = taxRate
	}
	if req.DiscountAmount != "" {
		discount, err := decimal.NewFromString(req.DiscountAmount)
		if err != nil || discount.IsNegative() {
			return nil, ErrInvalidAmount
		}
		invoice.DiscountAmount = discount
	}
	if req.Notes != "" {
		invoice.Notes = req.Notes
	}
	if req.Status != "" {
		invoice.Status = entity.InvoiceStatus(req.Status)
	}

	invoice.RecalculateTotals()
	if err := u.invoiceRepo.Update(tx, invoice); err != nil {
		u.log.Warnf("Failed to update invoice: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.InvoiceToResponse(invoice), nil
}

// DeleteInvoice removes draft invoices only.
func (u *billingUsecase) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	invoice, err := u.invoiceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find invoice: %+v", err)
		return err
	}
	if invoice == nil {
		return ErrInvoiceNotFound
	}
	if invoice.Status != entity.InvoiceStatusDraft {
		return ErrInvoiceNotEditable
	}

	rows, err := u.invoiceRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete invoice: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrInvoiceNotFound
	}
	return nil
}

func (u *billingUsecase) AddLineItem(ctx context.Context, actorID uuid.UUID, invoiceID uuid.UUID, req *dto.InvoiceLineItemRequest) (*dto.InvoiceResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	invoice, err := u.editableInvoice(tx, invoiceID)
	if err != nil {
		return nil, err
	}

	item, err := buildLineItem(invoiceID, req)
	if err != nil {
		return nil, err
	}
	if err := u.invoiceRepo.CreateLineItem(tx, item); err != nil {
		u.log.Warnf("Failed to create line item: %+v", err)
		return nil, err
	}
	invoice.LineItems = append(invoice.LineItems, *item)

	invoice.RecalculateTotals()
	if err := u.invoiceRepo.Update(tx, invoice); err != nil {
		u.log.Warnf("Failed to store invoice totals: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.InvoiceToResponse(invoice), nil
}

func (u *billingUsecase) RemoveLineItem(ctx context.Context, actorID uuid.UUID, invoiceID uuid.UUID, itemID int64) (*dto.InvoiceResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	invoice, err := u.editableInvoice(tx, invoiceID)
	if err != nil {
		return nil, err
	}

	rows, err := u.invoiceRepo.DeleteLineItem(tx, invoiceID, itemID)
	if err != nil {
		u.log.Warnf("Failed to delete line item: %+v", err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrLineItemNotFound
	}

	kept := invoice.LineItems[:0]
	for _, item := range invoice.LineItems {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	invoice.LineItems = kept

	invoice.RecalculateTotals()
	if err := u.invoiceRepo.Update(tx, invoice); err != nil {
		u.log.Warnf("Failed to store invoice totals: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.InvoiceToResponse(invoice), nil
}

// RecordPayment books a completed payment and rolls the invoice's
// paid amount and status forward from the completed payments total.
func (u *billingUsecase) RecordPayment(ctx context.Context, actorID uuid.UUID, invoiceID uuid.UUID, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.GreaterThan(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	invoice, err := u.invoiceRepo.FindByID(tx, invoiceID)
	if err != nil {
		u.log.Warnf("Failed to find invoice: %+v", err)
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}
	if invoice.Status == entity.InvoiceStatusCancelled || invoice.Status == entity.InvoiceStatusRefunded {
		return nil, ErrInvoiceNotEditable
	}
	if amount.GreaterThan(invoice.BalanceDue()) {
		return nil, ErrOverpayment
	}

	payment := &entity.Payment{
		PaymentCode:     generateEntityCode("PAY", u.now()),
		InvoiceID:       invoiceID,
		Amount:          amount,
		Method:          entity.PaymentMethod(req.Method),
		Status:          entity.PaymentStatusCompleted,
		PaymentDate:     u.now().UTC(),
		ReferenceNumber: req.ReferenceNumber,
		Notes:           req.Notes,
		ProcessedByID:   &actorID,
	}

	if err := u.paymentRepo.Create(tx, payment); err != nil {
		u.log.Warnf("Failed to create payment: %+v", err)
		return nil, err
	}

	paidTotal, err := u.paymentRepo.SumCompletedByInvoice(tx, invoiceID)
	if err != nil {
		u.log.Warnf("Failed to sum payments: %+v", err)
		return nil, err
	}

	invoice.ApplyPaidAmount(paidTotal)
	if err := u.invoiceRepo.Update(tx, invoice); err != nil {
		u.log.Warnf("Failed to update invoice payment state: %+v", err)
		return nil, err
	}

	u.auditService.Record(tx, &actorID, entity.AuditActionPaymentComplete, entity.JSON{
		"payment_code": payment.PaymentCode,
		"invoice_code": invoice.InvoiceCode,
		"amount":       amount.String(),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PaymentToResponse(payment), nil
}

func (u *billingUsecase) Summary(ctx context.Context, filter *entity.InvoiceFilter) (*dto.BillingSummaryResponse, error) {
	if filter == nil {
		filter = &entity.InvoiceFilter{}
	}
	summary, err := u.invoiceRepo.Summarize(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to summarize invoices: %+v", err)
		return nil, err
	}

	counts := map[entity.InvoiceStatus]int64{}
	for _, status := range []entity.InvoiceStatus{entity.InvoiceStatusPaid, entity.InvoiceStatusDraft, entity.InvoiceStatusPartiallyPaid} {
		scoped := *filter
		scoped.Status = string(status)
		_, total, err := u.invoiceRepo.FindAll(u.db.WithContext(ctx), &scoped, 1, 0)
		if err != nil {
			u.log.Warnf("Failed to count %s invoices: %+v", status, err)
			return nil, err
		}
		counts[status] = total
	}

	return &dto.BillingSummaryResponse{
		TotalInvoiced:      summary.TotalAmount.StringFixed(2),
		TotalPaid:          summary.TotalPaid.StringFixed(2),
		TotalOutstanding:   summary.TotalOutstanding.StringFixed(2),
		InvoiceCount:       summary.TotalInvoices,
		PaidCount:          counts[entity.InvoiceStatusPaid],
		OverdueCount:       summary.OverdueCount,
		DraftCount:         counts[entity.InvoiceStatusDraft],
		PartiallyPaidCount: counts[entity.InvoiceStatusPartiallyPaid],
	}, nil
}

// ExportInvoices fetches the full filtered set for spreadsheet export.
func (u *billingUsecase) ExportInvoices(ctx context.Context, filter *entity.InvoiceFilter) ([]dto.InvoiceResponse, error) {
	if filter == nil {
		filter = &entity.InvoiceFilter{}
	}
	invoices, _, err := u.invoiceRepo.FindAll(u.db.WithContext(ctx), filter, exportFetchLimit, 0)
	if err != nil {
		u.log.Warnf("Failed to fetch invoices for export: %+v", err)
		return nil, err
	}
	return converter.InvoicesToResponses(invoices), nil
}

const exportFetchLimit = 10000

func (u *billingUsecase) editableInvoice(db *gorm.DB, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := u.invoiceRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find invoice: %+v", err)
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}
	// Line items are frozen once money has moved.
	if invoice.Status != entity.InvoiceStatusDraft && invoice.Status != entity.InvoiceStatusSent {
		return nil, ErrInvoiceNotEditable
	}
	return invoice, nil
}

func buildLineItem(invoiceID uuid.UUID, req *dto.InvoiceLineItemRequest) (*entity.InvoiceLineItem, error) {
	quantity, err := decimal.NewFromString(req.Quantity)
	if err != nil || !quantity.GreaterThan(decimal.Zero) {
		return nil, ErrInvalidAmount
	}
	unitPrice, err := decimal.NewFromString(req.UnitPrice)
	if err != nil || unitPrice.IsNegative() {
		return nil, ErrInvalidAmount
	}

	item := &entity.InvoiceLineItem{
		InvoiceID:   invoiceID,
		Description: req.Description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	}
	item.RecalculateTotal()
	return item, nil
}
