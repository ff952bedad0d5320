package pdf_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"tillslip/internal/models"
	"tillslip/internal/pricing"
	"tillslip/pkg/pdf"
)

func sampleReceipt(t *testing.T) (models.Receipt, []pricing.Line, pricing.Totals) {
	t.Helper()
	lines, totals, err := pricing.Compute([]pricing.LineItem{
		{Name: "Widget", Price: decimal.NewFromFloat(10.00), Quantity: 3, DiscountPercent: decimal.NewFromInt(10), TaxPercent: decimal.NewFromInt(5)},
		{Name: "Gadget", Price: decimal.NewFromFloat(5.00), Quantity: 1},
	})
	assert.NoError(t, err)

	clientName := "Alice"
	receipt := models.Receipt{
		ID:         "11111111-2222-3333-4444-555555555555",
		UserID:     "user-1",
		SellerName: "Corner Cafe",
		Client:     &models.Client{ID: "c-1", UserID: "user-1", Name: clientName},
		CreatedAt:  time.Date(2025, time.March, 14, 15, 9, 26, 0, time.UTC),
	}
	return receipt, lines, totals
}

func TestRenderReceipt_ProducesPDF(t *testing.T) {
	receipt, lines, totals := sampleReceipt(t)

	doc, err := pdf.RenderReceipt(receipt, lines, totals)
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
	assert.Greater(t, len(doc), 500)
}

func TestRenderReceipt_Deterministic(t *testing.T) {
	receipt, lines, totals := sampleReceipt(t)

	first, err := pdf.RenderReceipt(receipt, lines, totals)
	assert.NoError(t, err)
	second, err := pdf.RenderReceipt(receipt, lines, totals)
	assert.NoError(t, err)

	// Identical inputs must reproduce identical bytes.
	assert.Equal(t, first, second)
}

func TestRenderReceipt_WithoutClientOrItems(t *testing.T) {
	receipt := models.Receipt{
		ID:         "66666666-7777-8888-9999-000000000000",
		UserID:     "user-1",
		SellerName: "My Business",
		CreatedAt:  time.Date(2025, time.January, 2, 9, 0, 0, 0, time.UTC),
	}
	_, totals, err := pricing.Compute(nil)
	assert.NoError(t, err)

	doc, renderErr := pdf.RenderReceipt(receipt, nil, totals)
	assert.NoError(t, renderErr)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}
