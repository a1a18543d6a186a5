package services

import "github.com/diewo77/go-billing/internal/models"

// LineAmounts holds the computed amounts of one invoice line.
type LineAmounts struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Totals holds the computed amounts of a whole invoice.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	TaxTotal float64 `json:"taxTotal"`
	Total    float64 `json:"total"`
}

// LineTotal computes subtotal, tax and total for quantity units at unitPrice
// taxed at taxRatePercent (0-100). Inputs are not validated or clamped and no
// rounding is applied.
func LineTotal(quantity int, unitPrice, taxRatePercent float64) LineAmounts {
	subtotal := float64(quantity) * unitPrice
	tax := subtotal * (taxRatePercent / 100)
	return LineAmounts{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}

// InvoiceTotals sums the pre-tax subtotal and tax of each item independently,
// then combines them.
func InvoiceTotals(items []models.InvoiceItem) Totals {
	var t Totals
	for _, item := range items {
		line := LineTotal(item.Quantity, item.UnitPrice, item.TaxRate)
		t.Subtotal += line.Subtotal
		t.TaxTotal += line.Tax
	}
	t.Total = t.Subtotal + t.TaxTotal
	return t
}

// ComputeTotals returns the subtotal, tax and total of inv from its items.
func ComputeTotals(inv *models.Invoice) (subtotal, tax, total float64) {
	if inv == nil {
		return 0, 0, 0
	}
	t := InvoiceTotals(inv.Items)
	return t.Subtotal, t.TaxTotal, t.Total
}

// BuildItem freezes a product snapshot and quantity into an invoice line with
// its computed total.
func BuildItem(id string, product models.ProductSnapshot, quantity int) models.InvoiceItem {
	return models.InvoiceItem{
		ID:              id,
		ProductSnapshot: product,
		Quantity:        quantity,
		Total:           LineTotal(quantity, product.UnitPrice, product.TaxRate).Total,
	}
}
