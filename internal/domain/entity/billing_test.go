package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestInvoiceRecalculateTotals(t *testing.T) {
	inv := &Invoice{
		TaxRate:        dec("0.10"),
		DiscountAmount: dec("5.00"),
		LineItems: []InvoiceLineItem{
			{TotalAmount: dec("100.00")},
			{TotalAmount: dec("49.99")},
		},
	}

	inv.RecalculateTotals()

	assert.Equal(t, "149.99", inv.Subtotal.StringFixed(2))
	assert.Equal(t, "15.00", inv.TaxAmount.StringFixed(2))
	assert.Equal(t, "159.99", inv.TotalAmount.StringFixed(2))
}

func TestInvoiceRecalculateTotalsEmpty(t *testing.T) {
	inv := &Invoice{TaxRate: dec("0.21")}
	inv.RecalculateTotals()

	assert.True(t, inv.Subtotal.IsZero())
	assert.True(t, inv.TaxAmount.IsZero())
	assert.True(t, inv.TotalAmount.IsZero())
}

func TestInvoiceApplyPaidAmount(t *testing.T) {
	inv := &Invoice{Status: InvoiceStatusSent, TotalAmount: dec("200.00")}

	inv.ApplyPaidAmount(dec("50.00"))
	assert.Equal(t, InvoiceStatusPartiallyPaid, inv.Status)
	assert.Equal(t, "150.00", inv.BalanceDue().StringFixed(2))

	inv.ApplyPaidAmount(dec("200.00"))
	assert.Equal(t, InvoiceStatusPaid, inv.Status)
	assert.True(t, inv.IsPaid())
	assert.True(t, inv.BalanceDue().IsZero())
}

func TestInvoiceApplyPaidAmountLeavesCancelled(t *testing.T) {
	inv := &Invoice{Status: InvoiceStatusCancelled, TotalAmount: dec("100.00")}
	inv.ApplyPaidAmount(dec("100.00"))
	assert.Equal(t, InvoiceStatusCancelled, inv.Status)
	assert.True(t, inv.PaidAmount.IsZero())
}

func TestInvoiceZeroTotalIsNeverPaid(t *testing.T) {
	inv := &Invoice{Status: InvoiceStatusDraft}
	inv.ApplyPaidAmount(decimal.Zero)
	assert.Equal(t, InvoiceStatusDraft, inv.Status)
	assert.False(t, inv.IsPaid())
}

func TestInvoiceIsOverdue(t *testing.T) {
	today := time.Date(2026, 4, 15, 10, 0, 0, 0, time.UTC)

	inv := &Invoice{
		Status:      InvoiceStatusSent,
		DueDate:     time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		TotalAmount: dec("100.00"),
	}
	assert.True(t, inv.IsOverdue(today))

	inv.PaidAmount = dec("100.00")
	assert.False(t, inv.IsOverdue(today))

	cancelled := &Invoice{
		Status:      InvoiceStatusCancelled,
		DueDate:     time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		TotalAmount: dec("100.00"),
	}
	assert.False(t, cancelled.IsOverdue(today))
}

func TestLineItemRecalculateTotal(t *testing.T) {
	li := &InvoiceLineItem{Quantity: dec("2.5"), UnitPrice: dec("19.99")}
	li.RecalculateTotal()
	assert.Equal(t, "49.98", li.TotalAmount.StringFixed(2))
}
