package services

import (
	"fmt"
	"time"

	"github.com/diewo77/go-billing/internal/models"
)

// NextInvoiceNumber generates the next invoice number for now's year.
// Format: INV-YYYY-NNNN (e.g., INV-2026-0001)
//
// The sequence is the count of existing invoices created in that year plus
// one, so deleting an invoice can hand its number out again.
func NextInvoiceNumber(existing []models.Invoice, now time.Time) string {
	year := now.Year()
	count := 0
	for i := range existing {
		if existing[i].CreatedAt.In(now.Location()).Year() == year {
			count++
		}
	}
	return FormatInvoiceNumber(year, count+1)
}

// FormatInvoiceNumber renders a year and sequence as INV-YYYY-NNNN.
func FormatInvoiceNumber(year, seq int) string {
	return fmt.Sprintf("INV-%d-%04d", year, seq)
}
