package main

import (
	"net/http"
	"time"

	"github.com/diewo77/go-billing/httpx"
	"github.com/diewo77/go-billing/internal/handlers"
	"github.com/diewo77/go-billing/internal/metrics"
	"github.com/diewo77/go-billing/internal/store"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux       *http.ServeMux
	store     *store.Store
	routerCfg *handlers.RouterConfig
	metrics   *metrics.Metrics
}

// NewApp creates a new application with all routes configured. m may be nil.
func NewApp(s *store.Store, routerCfg *handlers.RouterConfig, m *metrics.Metrics) *App {
	app := &App{
		mux:       http.NewServeMux(),
		store:     s,
		routerCfg: routerCfg,
		metrics:   m,
	}
	app.setupRoutes()
	return app
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if a.metrics == nil {
		a.mux.ServeHTTP(w, r)
		return
	}
	start := time.Now()
	a.mux.ServeHTTP(w, r)
	a.metrics.ObserveRequest(r.Method, time.Since(start))
}

// setupRoutes configures all application routes.
func (a *App) setupRoutes() {
	ph := a.routerCfg.ProductHandler
	ch := a.routerCfg.ClientHandler
	ih := a.routerCfg.InvoiceHandler
	dh := a.routerCfg.DashboardHandler

	a.mux.HandleFunc("GET /health", a.health)
	a.mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	})
	a.mux.HandleFunc("GET /dashboard", dh.Stats)
	a.mux.HandleFunc("POST /seed", dh.Seed)
	a.mux.HandleFunc("GET /company", a.routerCfg.CompanyHandler.Show)

	// Products
	a.mux.HandleFunc("GET /products", ph.List)
	a.mux.HandleFunc("POST /products", ph.Create)
	a.mux.HandleFunc("GET /products/{id}", ph.View)
	a.mux.HandleFunc("POST /products/{id}", ph.Update)
	a.mux.HandleFunc("POST /products/{id}/delete", ph.Delete)

	// Clients
	a.mux.HandleFunc("GET /clients", ch.List)
	a.mux.HandleFunc("POST /clients", ch.Create)
	a.mux.HandleFunc("GET /clients/{id}", ch.View)
	a.mux.HandleFunc("POST /clients/{id}", ch.Update)
	a.mux.HandleFunc("POST /clients/{id}/delete", ch.Delete)

	// Invoices
	a.mux.HandleFunc("GET /invoices", ih.List)
	a.mux.HandleFunc("GET /invoices/next-number", ih.NextNumber)
	a.mux.HandleFunc("POST /invoices", ih.Create)
	a.mux.HandleFunc("GET /invoices/{id}", ih.View)
	a.mux.HandleFunc("POST /invoices/{id}/status", ih.UpdateStatus)
	a.mux.HandleFunc("POST /invoices/{id}/delete", ih.Delete)
	a.mux.HandleFunc("GET /invoices/{id}/pdf", ih.PDF)

	if a.metrics != nil {
		a.mux.Handle("GET /metrics", a.metrics.Handler())
	}
}

func (a *App) health(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]any{"status": "ok", "seeded": a.store.Seeded()})
}
