package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diewo77/go-billing/internal/handlers"
	"github.com/diewo77/go-billing/internal/metrics"
	"github.com/diewo77/go-billing/internal/models"
	"github.com/diewo77/go-billing/internal/persistence/memory"
	"github.com/diewo77/go-billing/internal/store"
)

func newTestApp(t *testing.T) (*App, *memory.Store) {
	t.Helper()
	backend := memory.New()
	m := metrics.New()
	st, err := store.Open(context.Background(), backend, store.WithMetrics(m), store.WithRand(store.SeedRand(3)))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return NewApp(st, handlers.NewRouterConfig(st, models.CompanyInfo{Name: "Test Co"}), m), backend
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t)
	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
}

func TestRootRedirectsToDashboard(t *testing.T) {
	app, _ := newTestApp(t)
	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/dashboard" {
		t.Fatalf("expected 303 to /dashboard, got %d %q", w.Code, w.Header().Get("Location"))
	}
}

func TestSeedFlowPersistsAndExposesMetrics(t *testing.T) {
	app, backend := newTestApp(t)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/seed", nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", w.Code, w.Body.String())
	}
	if backend.Saves() != 1 {
		t.Fatalf("expected 1 snapshot save, got %d", backend.Saves())
	}

	w = httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/invoices", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"archived":[{`) {
		t.Fatalf("expected archived summaries in body: %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := w.Body.String()
	for _, want := range []string{
		`billing_store_operations_total{op="load_seed_data",result="ok"} 1`,
		`billing_invoices{partition="recent"} 10`,
		`billing_invoices{partition="archived"} 5`,
		"billing_http_request_duration_seconds",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestNextNumberRouteWinsOverID(t *testing.T) {
	app, _ := newTestApp(t)
	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/invoices/next-number", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "INV-") {
		t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
	}
}
