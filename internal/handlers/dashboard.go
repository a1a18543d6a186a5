package handlers

import (
	"net/http"

	"github.com/diewo77/go-billing/httpx"
	"github.com/diewo77/go-billing/internal/services"
	"github.com/diewo77/go-billing/internal/store"
)

type DashboardHandler struct {
	store *store.Store
}

func NewDashboardHandler(s *store.Store) *DashboardHandler {
	return &DashboardHandler{store: s}
}

// statsView adds display strings to the dashboard figures.
type statsView struct {
	services.Stats
	RevenueThisMonthDisplay string `json:"totalRevenueThisMonthDisplay"`
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st := h.store.Stats()
	httpx.JSON(w, http.StatusOK, statsView{Stats: st, RevenueThisMonthDisplay: services.FormatCurrency(st.RevenueThisMonth)})
}

// Seed loads the demo data once; later calls report that nothing changed.
func (h *DashboardHandler) Seed(w http.ResponseWriter, r *http.Request) {
	loaded, err := h.store.LoadSeedData(r.Context())
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	status := http.StatusOK
	if loaded {
		status = http.StatusCreated
	}
	httpx.JSON(w, status, map[string]bool{"seeded": true, "loaded": loaded})
}
