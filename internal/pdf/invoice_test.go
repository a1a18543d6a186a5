package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/diewo77/go-billing/internal/models"
)

func sampleInvoice() models.Invoice {
	created := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	return models.Invoice{
		ID:     "inv-1",
		Number: "INV-2026-0007",
		ClientSnapshot: models.ClientSnapshot{
			ClientID: "c1", ClientName: "Infosys Technologies", ClientAddress: "44 Electronics City, Bengaluru",
		},
		Items: []models.InvoiceItem{{
			ID:              "it-1",
			ProductSnapshot: models.ProductSnapshot{ProductID: "p1", ProductName: "UI/UX Design", Description: "Interface design", UnitPrice: 2500, TaxRate: 18},
			Quantity:        4,
			Total:           11800,
		}},
		Subtotal:  10000,
		TaxTotal:  1800,
		Total:     11800,
		Status:    models.InvoiceStatusSent,
		Notes:     "Thank you for your business!",
		CreatedAt: created,
		DueDate:   created.AddDate(0, 0, 30),
	}
}

func TestFromInvoice(t *testing.T) {
	data := FromInvoice(sampleInvoice(), models.CompanyInfo{Name: "Acme Billing", Email: "hi@acme.test", TaxID: "GST123"})

	if data.InvoiceNumber != "INV-2026-0007" {
		t.Errorf("InvoiceNumber = %q", data.InvoiceNumber)
	}
	if data.Date != "Oct 16, 2026" || data.DueDate != "Nov 15, 2026" {
		t.Errorf("dates = %q / %q", data.Date, data.DueDate)
	}
	if data.Status != "SENT" {
		t.Errorf("Status = %q, want SENT", data.Status)
	}
	if data.GrandTotal != 11800 || data.Total != 10000 || data.VAT != 1800 {
		t.Errorf("totals = %v/%v/%v", data.Total, data.VAT, data.GrandTotal)
	}
	if len(data.Items) != 1 || data.Items[0].Description != "UI/UX Design - Interface design" {
		t.Errorf("Items = %+v", data.Items)
	}
	if len(data.Company.Lines) != 2 {
		t.Errorf("Company.Lines = %v, want 2 lines", data.Company.Lines)
	}
}

func TestInvoicePDF(t *testing.T) {
	out, err := InvoicePDF(FromInvoice(sampleInvoice(), models.CompanyInfo{Name: "Acme Billing"}))
	if err != nil {
		t.Fatalf("InvoicePDF() error = %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("InvoicePDF() output does not start with %%PDF")
	}
}

func TestInvoicePDF_NoItems(t *testing.T) {
	out, err := InvoicePDF(InvoiceData{InvoiceNumber: "INV-2026-0001"})
	if err != nil {
		t.Fatalf("InvoicePDF() error = %v", err)
	}
	if len(out) == 0 {
		t.Error("InvoicePDF() returned an empty document")
	}
}
