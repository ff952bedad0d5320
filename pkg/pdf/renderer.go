// Package pdf renders computed receipts into paginated PDF documents.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"tillslip/internal/models"
	"tillslip/internal/pricing"
)

// Column widths in millimetres for the itemized table. The sum fits the
// printable width of an A4 page with default margins.
var colWidths = [6]float64{60, 15, 25, 27, 23, 30}

var colHeaders = [6]string{"Product", "Qty", "Unit Price", "Discount %", "Tax %", "Line Total"}

// RenderReceipt builds the printable PDF for a computed receipt: title,
// date and time, seller and optional client, the itemized table and the
// totals block. The output is a pure function of the arguments; the
// document creation date is pinned to the receipt timestamp so identical
// inputs reproduce identical bytes.
func RenderReceipt(receipt models.Receipt, lines []pricing.Line, totals pricing.Totals) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetCreationDate(receipt.CreatedAt)
	doc.AddPage()

	doc.SetFont("Arial", "B", 24)
	doc.CellFormat(0, 12, "Receipt", "", 1, "C", false, 0, "")
	doc.Ln(3)

	doc.SetFont("Arial", "", 14)
	doc.CellFormat(0, 7, "Date: "+receipt.CreatedAt.Format("January 2, 2006"), "", 1, "C", false, 0, "")
	doc.CellFormat(0, 7, "Time: "+receipt.CreatedAt.Format("3:04 PM"), "", 1, "C", false, 0, "")
	doc.Ln(5)

	doc.SetFont("Arial", "", 11)
	doc.CellFormat(0, 6, "Seller: "+receipt.SellerName, "", 1, "L", false, 0, "")
	if receipt.Client != nil {
		doc.CellFormat(0, 6, "Client: "+receipt.Client.Name, "", 1, "L", false, 0, "")
	}
	doc.Ln(5)

	renderTable(doc, lines)
	doc.Ln(6)
	renderTotals(doc, totals)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func renderTable(doc *gofpdf.Fpdf, lines []pricing.Line) {
	// Grey header band, white bold text.
	doc.SetFont("Arial", "B", 10)
	doc.SetFillColor(128, 128, 128)
	doc.SetTextColor(255, 255, 255)
	for i, header := range colHeaders {
		ln := 0
		if i == len(colHeaders)-1 {
			ln = 1
		}
		doc.CellFormat(colWidths[i], 9, header, "1", ln, "C", true, 0, "")
	}

	// Beige body rows.
	doc.SetFont("Arial", "", 10)
	doc.SetFillColor(245, 245, 220)
	doc.SetTextColor(0, 0, 0)
	for _, line := range lines {
		doc.CellFormat(colWidths[0], 8, line.Item.Name, "1", 0, "L", true, 0, "")
		doc.CellFormat(colWidths[1], 8, fmt.Sprintf("%d", line.Item.Quantity), "1", 0, "C", true, 0, "")
		doc.CellFormat(colWidths[2], 8, "$"+pricing.Amount(line.Item.Price), "1", 0, "R", true, 0, "")
		doc.CellFormat(colWidths[3], 8, pricing.Amount(line.Item.DiscountPercent)+"%", "1", 0, "R", true, 0, "")
		doc.CellFormat(colWidths[4], 8, pricing.Amount(line.Item.TaxPercent)+"%", "1", 0, "R", true, 0, "")
		doc.CellFormat(colWidths[5], 8, "$"+pricing.Amount(line.Total), "1", 1, "R", true, 0, "")
	}
}

func renderTotals(doc *gofpdf.Fpdf, totals pricing.Totals) {
	doc.SetFont("Arial", "B", 11)
	doc.CellFormat(0, 7, "Subtotal: $"+pricing.Amount(totals.Subtotal), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 7, "Discount: -$"+pricing.Amount(totals.TotalDiscount), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 7, "Tax: +$"+pricing.Amount(totals.TotalTax), "", 1, "L", false, 0, "")

	// The grand total gets the visual emphasis.
	doc.SetFont("Arial", "B", 14)
	doc.CellFormat(0, 10, "TOTAL: $"+pricing.Amount(totals.GrandTotal), "", 1, "L", false, 0, "")
}
