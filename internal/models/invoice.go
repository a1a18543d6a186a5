package models

import "time"

// ProductSnapshot is the copy of a product taken when an invoice line is created.
// It never follows later edits to the product.
type ProductSnapshot struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unitPrice"`
	TaxRate     float64 `json:"taxRate"`
}

// ClientSnapshot is the copy of a client taken when an invoice is created.
type ClientSnapshot struct {
	ClientID      string `json:"clientId"`
	ClientName    string `json:"clientName"`
	ClientAddress string `json:"clientAddress"`
}

// InvoiceItem represents a line item on an invoice.
type InvoiceItem struct {
	ID string `json:"id"`
	ProductSnapshot
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

// TotalHT calculates the line total excluding tax.
func (item *InvoiceItem) TotalHT() float64 {
	return float64(item.Quantity) * item.UnitPrice
}

// TotalTax calculates the tax amount for this line.
func (item *InvoiceItem) TotalTax() float64 {
	return item.TotalHT() * item.TaxRate / 100
}

// Invoice represents a billing invoice. Items and totals are frozen at creation.
type Invoice struct {
	ID     string `json:"id"`
	Number string `json:"invoiceNumber"`
	ClientSnapshot
	Items     []InvoiceItem `json:"items"`
	Subtotal  float64       `json:"subtotal"`
	TaxTotal  float64       `json:"taxTotal"`
	Total     float64       `json:"total"`
	Status    InvoiceStatus `json:"status"`
	Notes     string        `json:"notes"`
	CreatedAt time.Time     `json:"createdAt"`
	DueDate   time.Time     `json:"dueDate"`
}

// IsDraft returns true if the invoice is in draft status.
func (i *Invoice) IsDraft() bool {
	return i.Status == InvoiceStatusDraft
}

// IsPaid returns true once payment has been recorded.
func (i *Invoice) IsPaid() bool {
	return i.Status == InvoiceStatusPaid
}

// Clone returns a deep copy so callers never share the items slice.
func (i Invoice) Clone() Invoice {
	if i.Items != nil {
		items := make([]InvoiceItem, len(i.Items))
		copy(items, i.Items)
		i.Items = items
	}
	return i
}

// Summary returns the reduced view used for archived invoices.
func (i *Invoice) Summary() InvoiceSummary {
	return InvoiceSummary{
		ID:         i.ID,
		Number:     i.Number,
		ClientName: i.ClientName,
		Total:      i.Total,
		Status:     i.Status,
		CreatedAt:  i.CreatedAt,
	}
}

// InvoiceSummary is the read-only listing of an invoice outside the recent window.
type InvoiceSummary struct {
	ID         string        `json:"id"`
	Number     string        `json:"invoiceNumber"`
	ClientName string        `json:"clientName"`
	Total      float64       `json:"total"`
	Status     InvoiceStatus `json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// LineDraft is one requested line of a new invoice.
type LineDraft struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// InvoiceDraft is what a caller supplies to create an invoice. Client and
// products are resolved and copied into the invoice at creation time.
type InvoiceDraft struct {
	ClientID  string      `json:"clientId"`
	Items     []LineDraft `json:"items"`
	Notes     string      `json:"notes"`
	DueDate   *time.Time  `json:"dueDate,omitempty"`
	DueInDays int         `json:"dueInDays,omitempty"`
}

// DefaultDueInDays applies when a draft carries neither DueDate nor DueInDays.
const DefaultDueInDays = 30

// ResolveDueDate returns the due date for an invoice created at createdAt.
func (d InvoiceDraft) ResolveDueDate(createdAt time.Time) time.Time {
	if d.DueDate != nil {
		return *d.DueDate
	}
	days := d.DueInDays
	if days == 0 {
		days = DefaultDueInDays
	}
	return createdAt.AddDate(0, 0, days)
}

// InvoicePatch holds a partial invoice update. Number and status are not
// patchable; totals are not recomputed when Items is set.
type InvoicePatch struct {
	Client   *ClientSnapshot `json:"client,omitempty"`
	Items    []InvoiceItem   `json:"items,omitempty"`
	Subtotal *float64        `json:"subtotal,omitempty"`
	TaxTotal *float64        `json:"taxTotal,omitempty"`
	Total    *float64        `json:"total,omitempty"`
	Notes    *string         `json:"notes,omitempty"`
	DueDate  *time.Time      `json:"dueDate,omitempty"`
}

// Apply merges the patch into inv.
func (ip InvoicePatch) Apply(inv *Invoice) {
	if ip.Client != nil {
		inv.ClientSnapshot = *ip.Client
	}
	if ip.Items != nil {
		items := make([]InvoiceItem, len(ip.Items))
		copy(items, ip.Items)
		inv.Items = items
	}
	if ip.Subtotal != nil {
		inv.Subtotal = *ip.Subtotal
	}
	if ip.TaxTotal != nil {
		inv.TaxTotal = *ip.TaxTotal
	}
	if ip.Total != nil {
		inv.Total = *ip.Total
	}
	if ip.Notes != nil {
		inv.Notes = *ip.Notes
	}
	if ip.DueDate != nil {
		inv.DueDate = *ip.DueDate
	}
}
