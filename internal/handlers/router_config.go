package handlers

import (
	"github.com/diewo77/go-billing/internal/models"
	"github.com/diewo77/go-billing/internal/store"
)

// RouterConfig holds the configured handlers for the application.
type RouterConfig struct {
	ProductHandler   *ProductHandler
	ClientHandler    *ClientHandler
	InvoiceHandler   *InvoiceHandler
	DashboardHandler *DashboardHandler
	CompanyHandler   *CompanyHandler
}

// NewRouterConfig wires every handler to the same store.
func NewRouterConfig(s *store.Store, company models.CompanyInfo) *RouterConfig {
	return &RouterConfig{
		ProductHandler:   NewProductHandler(s),
		ClientHandler:    NewClientHandler(s),
		InvoiceHandler:   NewInvoiceHandler(s, company),
		DashboardHandler: NewDashboardHandler(s),
		CompanyHandler:   NewCompanyHandler(company),
	}
}
