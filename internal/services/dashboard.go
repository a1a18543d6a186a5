package services

import (
	"time"

	"github.com/diewo77/go-billing/internal/models"
)

// DashboardLatest is how many invoices the dashboard lists.
const DashboardLatest = 5

// Stats summarizes billing activity for the dashboard.
type Stats struct {
	InvoicesThisMonth int                     `json:"totalInvoicesThisMonth"`
	RevenueThisMonth  float64                 `json:"totalRevenueThisMonth"`
	PendingInvoices   int                     `json:"pendingInvoices"`
	TotalClients      int                     `json:"totalClients"`
	TotalProducts     int                     `json:"totalProducts"`
	Latest            []models.InvoiceSummary `json:"latest"`
}

// DashboardStats computes the dashboard figures from newest-first invoices.
// Revenue counts every invoice created this month regardless of status.
func DashboardStats(invoices []models.Invoice, clients, products int, now time.Time) Stats {
	s := Stats{TotalClients: clients, TotalProducts: products, Latest: []models.InvoiceSummary{}}
	y, m, _ := now.Date()
	for i := range invoices {
		inv := &invoices[i]
		iy, im, _ := inv.CreatedAt.In(now.Location()).Date()
		if iy == y && im == m {
			s.InvoicesThisMonth++
			s.RevenueThisMonth += inv.Total
		}
		if !inv.IsPaid() {
			s.PendingInvoices++
		}
		if i < DashboardLatest {
			s.Latest = append(s.Latest, inv.Summary())
		}
	}
	return s
}
