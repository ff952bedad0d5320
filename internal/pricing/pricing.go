// Package pricing turns raw receipt line items into priced lines and
// aggregate totals. All arithmetic uses fixed-point decimals and stays
// exact; amounts are rounded to currency precision only when formatted
// for output (round half up, via Amount).
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"tillslip/internal/apperr"
)

var hundred = decimal.NewFromInt(100)

// LineItem is one raw entry of a receipt request, carrying its own price,
// quantity, discount and tax at the moment of sale.
type LineItem struct {
	Name            string
	Price           decimal.Decimal
	Quantity        int
	DiscountPercent decimal.Decimal
	TaxPercent      decimal.Decimal
}

// Validate checks the numeric constraints on a line item. Zero price and
// zero quantity are allowed; negatives and out-of-range percents are not.
func (i LineItem) Validate() error {
	if i.Price.IsNegative() {
		return fmt.Errorf("%w: item %q: price must not be negative", apperr.ErrValidation, i.Name)
	}
	if i.Quantity < 0 {
		return fmt.Errorf("%w: item %q: quantity must not be negative", apperr.ErrValidation, i.Name)
	}
	if i.DiscountPercent.IsNegative() || i.DiscountPercent.GreaterThan(hundred) {
		return fmt.Errorf("%w: item %q: discount percent must be between 0 and 100", apperr.ErrValidation, i.Name)
	}
	if i.TaxPercent.IsNegative() {
		return fmt.Errorf("%w: item %q: tax percent must not be negative", apperr.ErrValidation, i.Name)
	}
	return nil
}

// Line carries the computed amounts for a single item.
type Line struct {
	Item           LineItem
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	AfterDiscount  decimal.Decimal
	TaxAmount      decimal.Decimal
	Total          decimal.Decimal
}

// Totals aggregates the computed lines of a receipt.
type Totals struct {
	Subtotal      decimal.Decimal
	TotalDiscount decimal.Decimal
	TotalTax      decimal.Decimal
	GrandTotal    decimal.Decimal
}

// Compute prices each item in order and aggregates the receipt totals.
// An empty input yields zero lines and all-zero totals; any invalid item
// fails the whole computation with a validation error.
func Compute(items []LineItem) ([]Line, Totals, error) {
	lines := make([]Line, 0, len(items))
	var totals Totals

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, Totals{}, err
		}

		subtotal := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		discount := subtotal.Mul(item.DiscountPercent).Div(hundred)
		afterDiscount := subtotal.Sub(discount)
		tax := afterDiscount.Mul(item.TaxPercent).Div(hundred)

		lines = append(lines, Line{
			Item:           item,
			Subtotal:       subtotal,
			DiscountAmount: discount,
			AfterDiscount:  afterDiscount,
			TaxAmount:      tax,
			Total:          afterDiscount.Add(tax),
		})

		totals.Subtotal = totals.Subtotal.Add(subtotal)
		totals.TotalDiscount = totals.TotalDiscount.Add(discount)
		totals.TotalTax = totals.TotalTax.Add(tax)
	}

	totals.GrandTotal = totals.Subtotal.Sub(totals.TotalDiscount).Add(totals.TotalTax)
	return lines, totals, nil
}

// Amount formats a currency value at two-decimal precision, rounding half
// away from zero (equal to round half up for the non-negative amounts
// this system produces).
func Amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
