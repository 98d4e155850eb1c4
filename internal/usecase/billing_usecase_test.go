package usecase

import (
	"testing"

	"hospital-management-api/internal/delivery/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLineItem(t *testing.T) {
	invoiceID := uuid.New()

	item, err := buildLineItem(invoiceID, &dto.InvoiceLineItemRequest{
		Description: "Consultation fee",
		Quantity:    "2",
		UnitPrice:   "75.50",
	})
	require.NoError(t, err)

	assert.Equal(t, invoiceID, item.InvoiceID)
	assert.Equal(t, "Consultation fee", item.Description)
	assert.Equal(t, "151.00", item.TotalAmount.StringFixed(2))
}

func TestBuildLineItemRejectsBadAmounts(t *testing.T) {
	invoiceID := uuid.New()

	cases := []dto.InvoiceLineItemRequest{
		{Description: "x", Quantity: "0", UnitPrice: "10"},
		{Description: "x", Quantity: "-1", UnitPrice: "10"},
		{Description: "x", Quantity: "abc", UnitPrice: "10"},
		{Description: "x", Quantity: "1", UnitPrice: "-0.01"},
		{Description: "x", Quantity: "1", UnitPrice: ""},
	}

	for _, req := range cases {
		r := req
		_, err := buildLineItem(invoiceID, &r)
		assert.ErrorIs(t, err, ErrInvalidAmount, "qty=%q price=%q", req.Quantity, req.UnitPrice)
	}
}
