package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/diewo77/go-billing/httpx"
	"github.com/diewo77/go-billing/internal/models"
	"github.com/diewo77/go-billing/internal/store"
)

// writeStoreError maps store and domain errors to HTTP responses. Archived
// invoices are not addressable on their own, so they redirect to the list.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
	case errors.Is(err, store.ErrArchived):
		http.Redirect(w, r, "/invoices", http.StatusSeeOther)
	case errors.Is(err, models.ErrUnknownStatus):
		httpx.JSONError(w, http.StatusBadRequest, "unknown_status", nil)
	case errors.Is(err, models.ErrInvalidTransition):
		httpx.JSONError(w, http.StatusConflict, "invalid_transition", err.Error())
	default:
		log.Printf("[http] %s %s: %v", r.Method, r.URL.Path, err)
		httpx.JSONError(w, http.StatusInternalServerError, "persist_failed", nil)
	}
}
